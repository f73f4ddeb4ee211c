package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterHandlers mounts every endpoint under /api.
func RegisterHandlers(router fiber.Router, h *Handler) {
	r := router.Group("/api")

	r.Post("/user/login", h.PostUserLogin)
	r.Post("/user/signup", h.PostUserSignup)
	r.Get("/user/:id", h.GetUser)
	r.Put("/user/:id", h.PutUser)
	r.Delete("/user/:id", h.DeleteUser)

	r.Post("/team", h.PostTeam)
	r.Get("/team/:id", h.GetTeam)
	r.Put("/team/:id", h.PutTeam)
	r.Get("/team/:id/users", h.GetTeamUsers)

	r.Post("/meeting", h.PostMeeting)
	r.Get("/meeting/:id", h.GetMeeting)

	r.Post("/meeting_config", h.PostMeetingConfig)
	r.Get("/meeting_config/:id", h.GetMeetingConfig)
	r.Put("/meeting_config/:id", h.PutMeetingConfig)

	r.Post("/user_time", h.PostUserTime)
	r.Get("/user_time/:id", h.GetUserTime)
	r.Put("/user_time/:id", h.PutUserTime)
	r.Delete("/user_time/:id", h.DeleteUserTime)
}
