package handlers_fiber

import (
	"smt-backend/internal/api"
	"smt-backend/internal/mapper"
	"smt-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team; unknown or repeated member ids are dropped.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.Team
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	team, err := mapper.FromAPITeam(body)
	if err != nil {
		return h.writeError(c, err)
	}

	created, err := h.uc.CreateTeam(c.Context(), team)
	if err != nil {
		h.log.Infow(err.Error())
		return h.writeError(c, err)
	}
	return respond(c, response.New(mapper.ToAPITeam(*created)))
}

// GetTeam returns a team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPITeam(*team)))
}

// PutTeam renames a team.
func (h *Handler) PutTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var body api.RenameRequest
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	team, err := h.uc.RenameTeam(c.Context(), id, body.Name)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPITeam(*team)))
}

// GetTeamUsers returns every member of a team.
func (h *Handler) GetTeamUsers(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	users, err := h.uc.TeamUsers(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUserList(users)))
}
