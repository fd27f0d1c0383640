package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/service/booking"
	"github.com/mentorly/mentorly_backend/internal/service/offering"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

type OfferingHandler struct {
	svc     offering.Service
	booking booking.Service
}

func NewOfferingHandler(svc offering.Service, bookingSvc booking.Service) *OfferingHandler {
	return &OfferingHandler{svc: svc, booking: bookingSvc}
}

func mapOfferingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, offering.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, offering.ErrNotServiceOwner):
		return forbidden(c, err.Error())
	case errors.Is(err, offering.ErrInvalidKind):
		return badRequest(c, err.Error())
	case errors.Is(err, offering.ErrInvalidDuration):
		return badRequest(c, err.Error())
	case errors.Is(err, offering.ErrHasPendingRequests):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/services  (own services, mentor only)
func (h *OfferingHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	services, err := h.svc.List(c.Context(), claims.UserID)
	if err != nil {
		return mapOfferingError(c, err)
	}

	return ok(c, services)
}

// GET /api/v1/services/:id  (public: service details plus the slot map)
func (h *OfferingHandler) Get(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	svc, err := h.svc.GetByID(c.Context(), serviceID)
	if err != nil {
		return mapOfferingError(c, err)
	}

	var q struct {
		Timezone string `query:"timezone"`
	}
	_ = c.Bind().Query(&q)

	viewerID := uuid.Nil
	if claims, valid := pasetotoken.ClaimsFromFiber(c); valid {
		viewerID = claims.UserID
	}

	slots, err := h.booking.AvailableSlots(c.Context(), booking.SlotsRequest{
		ServiceID: serviceID,
		ViewerID:  viewerID,
		Timezone:  q.Timezone,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, fiber.Map{
		"service": svc,
		"slots":   slots,
	})
}

// POST /api/v1/services  (mentor only)
func (h *OfferingHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Kind           string  `json:"kind"`
		Description    *string `json:"description"`
		SessionMinutes int     `json:"session_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Create(c.Context(), claims.UserID, offering.CreateRequest{
		Kind:           body.Kind,
		Description:    body.Description,
		SessionMinutes: body.SessionMinutes,
	})
	if err != nil {
		return mapOfferingError(c, err)
	}

	return created(c, svc)
}

// PATCH /api/v1/services/:id  (mentor only)
func (h *OfferingHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Description    *string `json:"description"`
		SessionMinutes *int    `json:"session_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Update(c.Context(), claims.UserID, serviceID, offering.UpdateRequest{
		Description:    body.Description,
		SessionMinutes: body.SessionMinutes,
	})
	if err != nil {
		return mapOfferingError(c, err)
	}

	return ok(c, svc)
}

// DELETE /api/v1/services/:id  (mentor only)
func (h *OfferingHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, serviceID); err != nil {
		return mapOfferingError(c, err)
	}

	return noContent(c)
}
