package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/repo"
	entexc "github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	entday "github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	entsvc "github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	entuser "github.com/mentorly/mentorly_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// WindowInput carries a recurring window as the mentor entered it,
// in the mentor's own timezone.
type WindowInput struct {
	Day             int
	Start           string // "HH:MM"
	DurationMinutes int
}

// ExceptionInput carries a date-specific window in the mentor's timezone.
type ExceptionInput struct {
	Date            time.Time
	Start           string // "HH:MM"
	DurationMinutes int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Recurring windows
	ListWindows(ctx context.Context, serviceID uuid.UUID, loc *time.Location) ([]availability.WeeklyWindow, error)
	CreateWindow(ctx context.Context, mentorID, serviceID uuid.UUID, req WindowInput) (*repo.DayAvailability, error)
	UpdateWindow(ctx context.Context, mentorID, windowID uuid.UUID, req WindowInput) (*repo.DayAvailability, error)
	DeleteWindow(ctx context.Context, mentorID, windowID uuid.UUID) error

	// Date exceptions
	ListExceptions(ctx context.Context, serviceID uuid.UUID, loc *time.Location) ([]availability.DateWindow, error)
	CreateException(ctx context.Context, mentorID, serviceID uuid.UUID, req ExceptionInput) (*repo.AvailabilityException, error)
	UpdateException(ctx context.Context, mentorID, exceptionID uuid.UUID, req ExceptionInput) (*repo.AvailabilityException, error)
	DeleteException(ctx context.Context, mentorID, exceptionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &scheduleService{db: db}
}

// ---------------------------------------------------------------------------
// Recurring windows
// ---------------------------------------------------------------------------

func (s *scheduleService) ListWindows(ctx context.Context, serviceID uuid.UUID, loc *time.Location) ([]availability.WeeklyWindow, error) {
	rows, err := s.db.DayAvailability.Query().
		Where(entday.ServiceID(serviceID)).
		Order(entday.ByDayOfWeek(), entday.ByStartHour(), entday.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	windows := make([]availability.WeeklyWindow, 0, len(rows))
	for _, r := range rows {
		w := weeklyFromRow(r)
		if loc != nil {
			w = w.InZone(availability.StorageZone(), loc)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (s *scheduleService) CreateWindow(ctx context.Context, mentorID, serviceID uuid.UUID, req WindowInput) (*repo.DayAvailability, error) {
	svc, err := s.ownedService(ctx, mentorID, serviceID)
	if err != nil {
		return nil, err
	}
	loc, err := s.mentorLocation(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	candidate, err := buildWeekly(req)
	if err != nil {
		return nil, err
	}
	// Everything is compared and stored in the storage timezone.
	candidate = candidate.InZone(loc, availability.StorageZone())

	existing, err := s.storedWindows(ctx, serviceID, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := availability.ValidateWeeklyWindow(candidate, svc.SessionMinutes, existing); err != nil {
		return nil, err
	}

	row, err := s.db.DayAvailability.Create().
		SetMentorID(mentorID).
		SetServiceID(serviceID).
		SetDayOfWeek(int8(candidate.Day)).
		SetStartHour(int8(candidate.Start.Hour)).
		SetStartMinute(int8(candidate.Start.Minute)).
		SetDurationMinutes(candidate.Minutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return row, nil
}

func (s *scheduleService) UpdateWindow(ctx context.Context, mentorID, windowID uuid.UUID, req WindowInput) (*repo.DayAvailability, error) {
	row, err := s.db.DayAvailability.Query().
		Where(entday.ID(windowID), entday.MentorID(mentorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrWindowNotFound
		}
		return nil, fmt.Errorf("get window: %w", err)
	}

	svc, err := s.ownedService(ctx, mentorID, row.ServiceID)
	if err != nil {
		return nil, err
	}
	loc, err := s.mentorLocation(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	candidate, err := buildWeekly(req)
	if err != nil {
		return nil, err
	}
	candidate = candidate.InZone(loc, availability.StorageZone())

	// The edited row must not conflict with itself.
	existing, err := s.storedWindows(ctx, row.ServiceID, windowID)
	if err != nil {
		return nil, err
	}
	if err := availability.ValidateWeeklyWindow(candidate, svc.SessionMinutes, existing); err != nil {
		return nil, err
	}

	updated, err := s.db.DayAvailability.UpdateOne(row).
		SetDayOfWeek(int8(candidate.Day)).
		SetStartHour(int8(candidate.Start.Hour)).
		SetStartMinute(int8(candidate.Start.Minute)).
		SetDurationMinutes(candidate.Minutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update window: %w", err)
	}
	return updated, nil
}

func (s *scheduleService) DeleteWindow(ctx context.Context, mentorID, windowID uuid.UUID) error {
	n, err := s.db.DayAvailability.Delete().
		Where(entday.ID(windowID), entday.MentorID(mentorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete window: %w", err)
	}
	if n == 0 {
		return ErrWindowNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Date exceptions
// ---------------------------------------------------------------------------

func (s *scheduleService) ListExceptions(ctx context.Context, serviceID uuid.UUID, loc *time.Location) ([]availability.DateWindow, error) {
	rows, err := s.db.AvailabilityException.Query().
		Where(entexc.ServiceID(serviceID)).
		Order(entexc.ByDate(), entexc.ByStartHour(), entexc.ByStartMinute()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exceptions: %w", err)
	}

	windows := make([]availability.DateWindow, 0, len(rows))
	for _, r := range rows {
		w := dateFromRow(r)
		if loc != nil {
			w = w.InZone(availability.StorageZone(), loc)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (s *scheduleService) CreateException(ctx context.Context, mentorID, serviceID uuid.UUID, req ExceptionInput) (*repo.AvailabilityException, error) {
	svc, err := s.ownedService(ctx, mentorID, serviceID)
	if err != nil {
		return nil, err
	}
	loc, err := s.mentorLocation(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	candidate, err := buildDate(req)
	if err != nil {
		return nil, err
	}
	candidate = candidate.InZone(loc, availability.StorageZone())

	existing, err := s.storedExceptions(ctx, serviceID, candidate.Date, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if err := availability.ValidateDateWindow(candidate, svc.SessionMinutes, existing); err != nil {
		return nil, err
	}

	row, err := s.db.AvailabilityException.Create().
		SetMentorID(mentorID).
		SetServiceID(serviceID).
		SetDate(candidate.Date).
		SetStartHour(int8(candidate.Start.Hour)).
		SetStartMinute(int8(candidate.Start.Minute)).
		SetDurationMinutes(candidate.Minutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create exception: %w", err)
	}
	return row, nil
}

func (s *scheduleService) UpdateException(ctx context.Context, mentorID, exceptionID uuid.UUID, req ExceptionInput) (*repo.AvailabilityException, error) {
	row, err := s.db.AvailabilityException.Query().
		Where(entexc.ID(exceptionID), entexc.MentorID(mentorID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrExceptionNotFound
		}
		return nil, fmt.Errorf("get exception: %w", err)
	}

	svc, err := s.ownedService(ctx, mentorID, row.ServiceID)
	if err != nil {
		return nil, err
	}
	loc, err := s.mentorLocation(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	candidate, err := buildDate(req)
	if err != nil {
		return nil, err
	}
	candidate = candidate.InZone(loc, availability.StorageZone())

	existing, err := s.storedExceptions(ctx, row.ServiceID, candidate.Date, exceptionID)
	if err != nil {
		return nil, err
	}
	if err := availability.ValidateDateWindow(candidate, svc.SessionMinutes, existing); err != nil {
		return nil, err
	}

	updated, err := s.db.AvailabilityException.UpdateOne(row).
		SetDate(candidate.Date).
		SetStartHour(int8(candidate.Start.Hour)).
		SetStartMinute(int8(candidate.Start.Minute)).
		SetDurationMinutes(candidate.Minutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update exception: %w", err)
	}
	return updated, nil
}

func (s *scheduleService) DeleteException(ctx context.Context, mentorID, exceptionID uuid.UUID) error {
	n, err := s.db.AvailabilityException.Delete().
		Where(entexc.ID(exceptionID), entexc.MentorID(mentorID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete exception: %w", err)
	}
	if n == 0 {
		return ErrExceptionNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *scheduleService) ownedService(ctx context.Context, mentorID, serviceID uuid.UUID) (*repo.MentorService, error) {
	svc, err := s.db.MentorService.Query().
		Where(entsvc.ID(serviceID), entsvc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc.MentorID != mentorID {
		return nil, ErrNotServiceOwner
	}
	return svc, nil
}

func (s *scheduleService) mentorLocation(ctx context.Context, mentorID uuid.UUID) (*time.Location, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(mentorID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get mentor: %w", err)
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, u.Timezone)
	}
	return loc, nil
}

// storedWindows loads every recurring window of a service, already in the
// storage timezone, excluding the row being edited (uuid.Nil excludes none).
// The validator only compares same-day and adjacent-day pairs, so loading
// the whole set is safe.
func (s *scheduleService) storedWindows(ctx context.Context, serviceID, exclude uuid.UUID) ([]availability.WeeklyWindow, error) {
	q := s.db.DayAvailability.Query().
		Where(entday.ServiceID(serviceID))
	if exclude != uuid.Nil {
		q = q.Where(entday.IDNEQ(exclude))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load windows: %w", err)
	}

	windows := make([]availability.WeeklyWindow, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, weeklyFromRow(r))
	}
	return windows, nil
}

// storedExceptions loads the exceptions that can conflict with a candidate
// on the given storage-zone date: the date itself plus one day either side.
func (s *scheduleService) storedExceptions(ctx context.Context, serviceID uuid.UUID, date time.Time, exclude uuid.UUID) ([]availability.DateWindow, error) {
	q := s.db.AvailabilityException.Query().
		Where(
			entexc.ServiceID(serviceID),
			entexc.DateGTE(date.AddDate(0, 0, -1)),
			entexc.DateLTE(date.AddDate(0, 0, 1)),
		)
	if exclude != uuid.Nil {
		q = q.Where(entexc.IDNEQ(exclude))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exceptions: %w", err)
	}

	windows := make([]availability.DateWindow, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, dateFromRow(r))
	}
	return windows, nil
}

func buildWeekly(req WindowInput) (availability.WeeklyWindow, error) {
	start, err := availability.ParseTimeOfDay(req.Start)
	if err != nil {
		return availability.WeeklyWindow{}, err
	}
	return availability.NewWeeklyWindow(availability.Weekday(req.Day), start, req.DurationMinutes)
}

func buildDate(req ExceptionInput) (availability.DateWindow, error) {
	start, err := availability.ParseTimeOfDay(req.Start)
	if err != nil {
		return availability.DateWindow{}, err
	}
	return availability.NewDateWindow(req.Date, start, req.DurationMinutes)
}

func weeklyFromRow(r *repo.DayAvailability) availability.WeeklyWindow {
	return availability.WeeklyWindow{
		ID:      r.ID,
		Day:     availability.Weekday(r.DayOfWeek),
		Start:   availability.TimeOfDay{Hour: int(r.StartHour), Minute: int(r.StartMinute)},
		Minutes: r.DurationMinutes,
	}
}

func dateFromRow(r *repo.AvailabilityException) availability.DateWindow {
	return availability.DateWindow{
		ID:      r.ID,
		Date:    availability.DateOnly(r.Date),
		Start:   availability.TimeOfDay{Hour: int(r.StartHour), Minute: int(r.StartMinute)},
		Minutes: r.DurationMinutes,
	}
}
