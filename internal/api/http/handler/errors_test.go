package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/service/booking"
	"github.com/mentorly/mentorly_backend/internal/service/schedule"
)

// status runs err through the given mapper inside a throwaway fiber app and
// returns the HTTP status the client would see.
func status(t *testing.T, mapper func(fiber.Ctx, error) error, err error) int {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return mapper(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestMapScheduleErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "overlapping window is a client error",
			err:  &availability.ConflictError{Window: "Monday [09:00 - 12:00]", Existing: "Monday [11:00 - 13:00]"},
			want: fiber.StatusBadRequest,
		},
		{
			name: "window too short is a client error",
			err:  &availability.WindowTooShortError{Window: "Monday [09:00 - 09:30]", SessionMinutes: 60},
			want: fiber.StatusBadRequest,
		},
		{
			name: "bad time format",
			err:  availability.ErrBadTimeFormat,
			want: fiber.StatusBadRequest,
		},
		{
			name: "unknown service",
			err:  schedule.ErrServiceNotFound,
			want: fiber.StatusNotFound,
		},
		{
			name: "someone else's service",
			err:  schedule.ErrNotServiceOwner,
			want: fiber.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status(t, mapScheduleError, tt.err); got != tt.want {
				t.Errorf("mapScheduleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMapBookingErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unavailable slot is a client error",
			err:  booking.ErrUnavailableSlot,
			want: fiber.StatusBadRequest,
		},
		{
			name: "slot already taken",
			err:  booking.ErrDuplicateSlot,
			want: fiber.StatusConflict,
		},
		{
			name: "request already decided",
			err:  booking.ErrAlreadyDecided,
			want: fiber.StatusConflict,
		},
		{
			name: "missing session",
			err:  booking.ErrSessionNotFound,
			want: fiber.StatusNotFound,
		},
		{
			name: "outsider acting on a session",
			err:  booking.ErrNotParticipant,
			want: fiber.StatusForbidden,
		},
		{
			name: "bad timezone",
			err:  booking.ErrUnknownTimezone,
			want: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status(t, mapBookingError, tt.err); got != tt.want {
				t.Errorf("mapBookingError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
