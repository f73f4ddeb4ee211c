package handlers_fiber

import (
	"smt-backend/internal/api"
	"smt-backend/internal/mapper"
	"smt-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// PostUserTime records a user's time in a meeting.
func (h *Handler) PostUserTime(c *fiber.Ctx) error {
	var body api.UserTime
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	ut, err := mapper.FromAPIUserTime(body)
	if err != nil {
		return h.writeError(c, err)
	}

	created, err := h.uc.CreateUserTime(c.Context(), ut)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.New(mapper.ToAPIUserTime(*created)))
}

// GetUserTime returns a time record by id.
func (h *Handler) GetUserTime(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	ut, err := h.uc.UserTime(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUserTime(*ut)))
}

// PutUserTime replaces user, meeting and time of a record.
func (h *Handler) PutUserTime(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var body api.UserTime
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	ut, err := mapper.FromAPIUserTime(body)
	if err != nil {
		return h.writeError(c, err)
	}
	ut.ID = id

	updated, err := h.uc.UpdateUserTime(c.Context(), ut)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUserTime(*updated)))
}

// DeleteUserTime removes a time record and returns it.
func (h *Handler) DeleteUserTime(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	ut, err := h.uc.DeleteUserTime(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUserTime(*ut)))
}
