package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/service/schedule"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

type AvailabilityHandler struct {
	svc schedule.Service
}

func NewAvailabilityHandler(svc schedule.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	var conflictErr *availability.ConflictError
	var tooShort *availability.WindowTooShortError

	switch {
	case errors.As(err, &conflictErr):
		return badRequest(c, conflictErr.Error())
	case errors.As(err, &tooShort):
		return badRequest(c, tooShort.Error())
	case errors.Is(err, availability.ErrBadTimeFormat):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrInvalidDuration):
		return badRequest(c, err.Error())
	case errors.Is(err, availability.ErrInvalidWeekday):
		return badRequest(c, err.Error())
	case errors.Is(err, schedule.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrWindowNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrExceptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrNotServiceOwner):
		return forbidden(c, err.Error())
	case errors.Is(err, schedule.ErrUnknownTimezone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// ---------------------------------------------------------------------------
// Recurring windows
// ---------------------------------------------------------------------------

// GET /api/v1/services/:id/availability
func (h *AvailabilityHandler) ListWindows(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var q struct {
		Timezone string `query:"timezone"`
	}
	_ = c.Bind().Query(&q)

	loc := availability.StorageZone()
	if q.Timezone != "" {
		loc, err = time.LoadLocation(q.Timezone)
		if err != nil {
			return badRequest(c, "unknown timezone")
		}
	}

	windows, err := h.svc.ListWindows(c.Context(), serviceID, loc)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, windowsResponse(windows))
}

// POST /api/v1/services/:id/availability  (mentor only)
func (h *AvailabilityHandler) CreateWindow(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Day             int    `json:"day"`
		Start           string `json:"start"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	row, err := h.svc.CreateWindow(c.Context(), claims.UserID, serviceID, schedule.WindowInput{
		Day:             body.Day,
		Start:           body.Start,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return created(c, row)
}

// PATCH /api/v1/availability/:id  (mentor only)
func (h *AvailabilityHandler) UpdateWindow(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	windowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid window id")
	}

	var body struct {
		Day             int    `json:"day"`
		Start           string `json:"start"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	row, err := h.svc.UpdateWindow(c.Context(), claims.UserID, windowID, schedule.WindowInput{
		Day:             body.Day,
		Start:           body.Start,
		DurationMinutes: body.DurationMinutes,
	})
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, row)
}

// DELETE /api/v1/availability/:id  (mentor only)
func (h *AvailabilityHandler) DeleteWindow(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	windowID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid window id")
	}

	if err := h.svc.DeleteWindow(c.Context(), claims.UserID, windowID); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Date exceptions
// ---------------------------------------------------------------------------

// GET /api/v1/services/:id/exceptions
func (h *AvailabilityHandler) ListExceptions(c fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	var q struct {
		Timezone string `query:"timezone"`
	}
	_ = c.Bind().Query(&q)

	loc := availability.StorageZone()
	if q.Timezone != "" {
		loc, err = time.LoadLocation(q.Timezone)
		if err != nil {
			return badRequest(c, "unknown timezone")
		}
	}

	windows, err := h.svc.ListExceptions(c.Context(), serviceID, loc)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, exceptionsResponse(windows))
}

// POST /api/v1/services/:id/exceptions  (mentor only)
func (h *AvailabilityHandler) CreateException(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid service id")
	}

	input, err := bindExceptionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	row, err := h.svc.CreateException(c.Context(), claims.UserID, serviceID, input)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return created(c, row)
}

// PATCH /api/v1/exceptions/:id  (mentor only)
func (h *AvailabilityHandler) UpdateException(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	exceptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exception id")
	}

	input, err := bindExceptionInput(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	row, err := h.svc.UpdateException(c.Context(), claims.UserID, exceptionID, input)
	if err != nil {
		return mapScheduleError(c, err)
	}

	return ok(c, row)
}

// DELETE /api/v1/exceptions/:id  (mentor only)
func (h *AvailabilityHandler) DeleteException(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	exceptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid exception id")
	}

	if err := h.svc.DeleteException(c.Context(), claims.UserID, exceptionID); err != nil {
		return mapScheduleError(c, err)
	}

	return noContent(c)
}

// ---------------------------------------------------------------------------
// Body/response shaping
// ---------------------------------------------------------------------------

func bindExceptionInput(c fiber.Ctx) (schedule.ExceptionInput, error) {
	var body struct {
		Date            string `json:"date"` // "YYYY-MM-DD"
		Start           string `json:"start"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return schedule.ExceptionInput{}, errors.New("invalid request body")
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return schedule.ExceptionInput{}, errors.New("date must be YYYY-MM-DD")
	}

	return schedule.ExceptionInput{
		Date:            date,
		Start:           body.Start,
		DurationMinutes: body.DurationMinutes,
	}, nil
}

func windowsResponse(windows []availability.WeeklyWindow) []fiber.Map {
	out := make([]fiber.Map, 0, len(windows))
	for _, w := range windows {
		out = append(out, fiber.Map{
			"id":               w.ID,
			"day":              int(w.Day),
			"day_name":         w.Day.String(),
			"start":            w.Start.String(),
			"duration_minutes": w.Minutes,
		})
	}
	return out
}

func exceptionsResponse(windows []availability.DateWindow) []fiber.Map {
	out := make([]fiber.Map, 0, len(windows))
	for _, w := range windows {
		out = append(out, fiber.Map{
			"id":               w.ID,
			"date":             w.Date.Format("2006-01-02"),
			"start":            w.Start.String(),
			"duration_minutes": w.Minutes,
		})
	}
	return out
}
