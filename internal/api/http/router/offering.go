package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mentorly/mentorly_backend/internal/api/http/handler"
)

func (r *Router) registerOfferingRoutes(api fiber.Router, h *handler.OfferingHandler, authRequired, mentorOnly fiber.Handler) {
	services := api.Group("/services")

	// Public: service details plus the 30-day slot map
	services.Get("/:id", h.Get)

	// Mentor-owned management
	services.Get("/", authRequired, mentorOnly, h.ListMine)
	services.Post("/", authRequired, mentorOnly, h.Create)
	services.Patch("/:id", authRequired, mentorOnly, h.Update)
	services.Delete("/:id", authRequired, mentorOnly, h.Delete)
}
