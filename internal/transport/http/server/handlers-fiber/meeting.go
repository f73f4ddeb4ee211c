package handlers_fiber

import (
	"smt-backend/internal/api"
	"smt-backend/internal/entities"
	"smt-backend/internal/mapper"
	"smt-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

// PostMeeting starts a meeting for a config or stores a standalone one.
func (h *Handler) PostMeeting(c *fiber.Ctx) error {
	var body api.MeetingRequest
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}

	var (
		meeting *entities.Meeting
		err     error
	)
	if mapper.IsConfigOnly(body) {
		configID, perr := entities.ParseID(*body.ConfigID)
		if perr != nil {
			return h.writeError(c, perr)
		}
		meeting, err = h.uc.StartMeeting(c.Context(), configID)
	} else {
		m, perr := mapper.FromAPIMeeting(body)
		if perr != nil {
			return h.writeError(c, perr)
		}
		meeting, err = h.uc.CreateMeeting(c.Context(), m)
	}
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.New(mapper.ToAPIMeeting(*meeting)))
}

// GetMeeting returns a meeting by id.
func (h *Handler) GetMeeting(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	meeting, err := h.uc.Meeting(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIMeeting(*meeting)))
}

// PostMeetingConfig creates a meeting config for an existing team.
func (h *Handler) PostMeetingConfig(c *fiber.Ctx) error {
	var body api.MeetingConfig
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	cfg, err := mapper.FromAPIMeetingConfig(body)
	if err != nil {
		return h.writeError(c, err)
	}

	created, err := h.uc.CreateMeetingConfig(c.Context(), cfg)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.New(mapper.ToAPIMeetingConfig(*created)))
}

// GetMeetingConfig returns a meeting config by id.
func (h *Handler) GetMeetingConfig(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}

	cfg, err := h.uc.MeetingConfig(c.Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIMeetingConfig(*cfg)))
}

// PutMeetingConfig replaces a meeting config.
func (h *Handler) PutMeetingConfig(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var body api.MeetingConfig
	if err := parseBody(c, &body); err != nil {
		return h.writeError(c, err)
	}
	cfg, err := mapper.FromAPIMeetingConfig(body)
	if err != nil {
		return h.writeError(c, err)
	}
	cfg.ID = id

	updated, err := h.uc.UpdateMeetingConfig(c.Context(), cfg)
	if err != nil {
		return h.writeError(c, err)
	}
	return respond(c, response.OK(mapper.ToAPIMeetingConfig(*updated)))
}
