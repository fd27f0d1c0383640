package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentorly/mentorly_backend/internal/api/http/handler"
)

func (r *Router) registerBookingRoutes(api fiber.Router, h *handler.BookingHandler, authRequired fiber.Handler) {
	// Public: bookable slots over the horizon
	api.Get("/services/:id/slots", h.Slots)

	sessions := api.Group("/sessions", authRequired)
	sessions.Post("/", h.Book)
	sessions.Get("/", h.List)
	sessions.Patch("/:id/accept", h.Accept)
	sessions.Patch("/:id/reject", h.Reject)
	sessions.Patch("/:id/cancel", h.Cancel)
}
