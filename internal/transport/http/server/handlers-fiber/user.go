package handlers_fiber

import (
	"smt-backend/internal/api"
	"smt-backend/internal/mapper"
	"smt-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// PostUserLogin resolves a user by email.
func (h *Handler) PostUserLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	usr, err := h.uc.Login(c.Context(), body.Email)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUser(*usr)))
}

// PostUserSignup registers a user.
func (h *Handler) PostUserSignup(c *fiber.Ctx) error {
	var body api.User
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	usr, err := h.uc.Signup(c.Context(), mapper.FromAPIUser(body))
	if err != nil {
		h.log.Infow("signup rejected", "error", err.Error())
		return h.writeError(c, err)
	}
	return respond(c, response.New(mapper.ToAPIUser(*usr)))
}

// GetUser returns a user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	usr, err := h.uc.User(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUser(*usr)))
}

// PutUser renames a user.
func (h *Handler) PutUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var body api.RenameRequest
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	usr, err := h.uc.RenameUser(c.Context(), id, body.Name)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUser(*usr)))
}

// DeleteUser removes a user and returns it.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	usr, err := h.uc.DeleteUser(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIUser(*usr)))
}
