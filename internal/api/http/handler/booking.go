package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/service/booking"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrUnavailableSlot):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrDuplicateSlot):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyDecided):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrNotParticipant):
		return forbidden(c, err.Error())
	case errors.Is(err, booking.ErrUnknownTimezone):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrBadTimeFormat):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrInvalidDuration):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/services/:id/slots
func (h *BookingHandler) Slots(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var q struct {
		Timezone string `query:"timezone"`
	}
	_ = c.Bind().Query(&q)

	viewerID := uuid.Nil
	if claims, valid := pasetotoken.ClaimsFromFiber(c); valid {
		viewerID = claims.UserID
	}

	slots, err := h.svc.AvailableSlots(c.Context(), booking.SlotsRequest{
		ServiceID: serviceID,
		ViewerID:  viewerID,
		Timezone:  q.Timezone,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, slots)
}

// POST /api/v1/sessions
func (h *BookingHandler) Book(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		ServiceID   string  `json:"service_id"`
		CommunityID *string `json:"community_id"`
		Date        string  `json:"date"` // "YYYY-MM-DD" in the mentee's timezone
		Start       string  `json:"start"`
		Agenda      string  `json:"agenda"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	req := booking.BookRequest{
		ServiceID: serviceID,
		MenteeID:  claims.UserID,
		Date:      date,
		Start:     body.Start,
		Agenda:    body.Agenda,
	}
	if body.CommunityID != nil {
		id, err := uuid.Parse(*body.CommunityID)
		if err != nil {
			return badRequest(c, "invalid community_id")
		}
		req.CommunityID = &id
	}

	session, err := h.svc.Book(c.Context(), req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, session)
}

// GET /api/v1/sessions
func (h *BookingHandler) List(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := booking.ListRequest{
		UserID:  claims.UserID,
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	sessions, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, sessions)
}

// PATCH /api/v1/sessions/:id/accept  (mentor only)
func (h *BookingHandler) Accept(c fiber.Ctx) error {
	return h.transition(c, h.svc.Accept)
}

// PATCH /api/v1/sessions/:id/reject  (mentor only)
func (h *BookingHandler) Reject(c fiber.Ctx) error {
	return h.transition(c, h.svc.Reject)
}

// PATCH /api/v1/sessions/:id/cancel  (mentee only)
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	return h.transition(c, h.svc.Cancel)
}

func (h *BookingHandler) transition(c fiber.Ctx, fn func(ctx context.Context, actorID, sessionID uuid.UUID) error) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := fn(c.Context(), claims.UserID, sessionID); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}
