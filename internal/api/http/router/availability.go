package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentorly/mentorly_backend/internal/api/http/handler"
)

func (r *Router) registerAvailabilityRoutes(api fiber.Router, h *handler.AvailabilityHandler, authRequired, mentorOnly fiber.Handler) {
	// Per-service windows and exceptions
	api.Get("/services/:id/availability", h.ListWindows)
	api.Post("/services/:id/availability", authRequired, mentorOnly, h.CreateWindow)
	api.Get("/services/:id/exceptions", h.ListExceptions)
	api.Post("/services/:id/exceptions", authRequired, mentorOnly, h.CreateException)

	// Row-addressed edits
	api.Patch("/availability/:id", authRequired, mentorOnly, h.UpdateWindow)
	api.Delete("/availability/:id", authRequired, mentorOnly, h.DeleteWindow)
	api.Patch("/exceptions/:id", authRequired, mentorOnly, h.UpdateException)
	api.Delete("/exceptions/:id", authRequired, mentorOnly, h.DeleteException)
}
