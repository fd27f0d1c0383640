package booking

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/repo"
	entexc "github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	entday "github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	entsvc "github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	entsess "github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
	entuser "github.com/mentorly/mentorly_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// BookRequest carries a mentee's slot pick. Date and Start are in the
// mentee's own timezone; the service shifts them to the storage zone.
type BookRequest struct {
	ServiceID   uuid.UUID
	MenteeID    uuid.UUID
	CommunityID *uuid.UUID
	Date        time.Time
	Start       string // "HH:MM"
	Agenda      string
}

// SlotsRequest asks for the bookable starts of a service over the
// booking horizon, bucketed by date in the viewer's timezone.
type SlotsRequest struct {
	ServiceID uuid.UUID
	ViewerID  uuid.UUID // uuid.Nil for anonymous viewers
	Timezone  string    // IANA name; empty means the storage zone
}

type ListRequest struct {
	UserID  uuid.UUID
	Status  *string
	Page    int
	PerPage int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// AvailableSlots returns the bookable start times of a service over the
	// horizon, keyed by "YYYY-MM-DD" with "HH:MM" values, both rendered in
	// the viewer's timezone.
	AvailableSlots(ctx context.Context, req SlotsRequest) (map[string][]string, error)

	Book(ctx context.Context, req BookRequest) (*repo.SessionRequest, error)
	List(ctx context.Context, req ListRequest) ([]*repo.SessionRequest, error)

	Accept(ctx context.Context, mentorID, sessionID uuid.UUID) error
	Reject(ctx context.Context, mentorID, sessionID uuid.UUID) error
	Cancel(ctx context.Context, menteeID, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// DefaultHorizonDays is how far ahead slots are offered when the
// booking.horizon_days setting is absent.
const DefaultHorizonDays = 30

type bookingService struct {
	db      *repo.Client
	horizon int
}

func New(db *repo.Client, horizonDays int) Service {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &bookingService{db: db, horizon: horizonDays}
}

// ---------------------------------------------------------------------------
// Slot listing
// ---------------------------------------------------------------------------

func (s *bookingService) AvailableSlots(ctx context.Context, req SlotsRequest) (map[string][]string, error) {
	svc, err := s.liveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	viewerLoc := availability.StorageZone()
	if req.Timezone != "" {
		viewerLoc, err = time.LoadLocation(req.Timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, req.Timezone)
		}
	}

	now := time.Now().UTC()
	horizonStart := availability.DateOnly(now)
	horizonEnd := horizonStart.AddDate(0, 0, s.horizon)

	weekly, err := s.weeklyWindows(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.exceptionsBetween(ctx, svc.ID, horizonStart.AddDate(0, 0, -1), horizonEnd)
	if err != nil {
		return nil, err
	}

	exceptionDates := make(map[time.Time][]availability.DateWindow)
	for _, ex := range exceptions {
		exceptionDates[ex.Date] = append(exceptionDates[ex.Date], ex)
	}

	// Windows anchored to the day before the horizon can roll past midnight
	// into the first horizon day, so generation starts one day early.
	var open []availability.Span
	for d := -1; d < s.horizon; d++ {
		date := horizonStart.AddDate(0, 0, d)
		if dayExceptions, ok := exceptionDates[date]; ok {
			for _, ex := range dayExceptions {
				start, end := ex.At(time.UTC)
				open = append(open, availability.Span{Start: start, End: end})
			}
			continue
		}
		day := availability.WeekdayOf(date.Weekday())
		for _, w := range weekly {
			if w.Day != day {
				continue
			}
			start, end := w.At(date, time.UTC)
			open = append(open, availability.Span{Start: start, End: end})
		}
	}

	busy, err := s.busySpans(ctx, svc.MentorID, req.ViewerID, horizonStart.AddDate(0, 0, -1), horizonEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	starts := availability.GenerateSlots(open, busy, svc.SessionMinutes, svc.SessionMinutes)

	out := make(map[string][]string)
	for _, start := range starts {
		if start.Before(now) || !start.Before(horizonEnd) {
			continue
		}
		local := start.In(viewerLoc)
		key := local.Format("2006-01-02")
		out[key] = append(out[key], local.Format("15:04"))
	}
	for _, times := range out {
		sort.Strings(times)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Booking
// ---------------------------------------------------------------------------

func (s *bookingService) Book(ctx context.Context, req BookRequest) (*repo.SessionRequest, error) {
	svc, err := s.liveService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	menteeLoc, err := s.userLocation(ctx, req.MenteeID)
	if err != nil {
		return nil, err
	}

	start, err := availability.ParseTimeOfDay(req.Start)
	if err != nil {
		return nil, err
	}
	slot, err := availability.NewSlot(req.Date, start, svc.SessionMinutes)
	if err != nil {
		return nil, err
	}
	slot = slot.InZone(menteeLoc, availability.StorageZone())

	// An identical live request wins a dedicated error so the client can
	// tell "someone holds this exact slot" from "outside availability".
	taken, err := s.db.SessionRequest.Query().
		Where(
			entsess.MentorID(svc.MentorID),
			entsess.ServiceID(svc.ID),
			entsess.Date(slot.Date),
			entsess.StartHour(int8(slot.Start.Hour)),
			entsess.StartMinute(int8(slot.Start.Minute)),
			entsess.StatusIn(entsess.StatusPending, entsess.StatusAccepted),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}
	if taken {
		return nil, ErrDuplicateSlot
	}

	startUTC, _ := slot.At(time.UTC)

	existing, err := s.liveSessions(ctx, svc.MentorID, req.MenteeID, slot.Date.AddDate(0, 0, -1), slot.Date.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	exceptions, err := s.exceptionsBetween(ctx, svc.ID, slot.Date, slot.Date)
	if err != nil {
		return nil, err
	}
	weekly, err := s.weeklyWindows(ctx, svc.ID)
	if err != nil {
		return nil, err
	}

	checker := availability.Checker{
		SessionMinutes: svc.SessionMinutes,
		Exceptions:     exceptions,
		Weekly:         weekly,
		Existing:       existing,
	}
	if !checker.CanBook(startUTC) {
		return nil, ErrUnavailableSlot
	}

	c := s.db.SessionRequest.Create().
		SetServiceID(svc.ID).
		SetMentorID(svc.MentorID).
		SetMenteeID(req.MenteeID).
		SetDate(slot.Date).
		SetStartHour(int8(slot.Start.Hour)).
		SetStartMinute(int8(slot.Start.Minute)).
		SetDurationMinutes(svc.SessionMinutes).
		SetStatus(entsess.StatusPending)

	if req.CommunityID != nil {
		c = c.SetCommunityID(*req.CommunityID)
	}
	if req.Agenda != "" {
		c = c.SetAgenda(req.Agenda)
	}

	session, err := c.Save(ctx)
	if err != nil {
		// Two mentees racing for the same slot: the partial unique index
		// rejects the loser.
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("create session request: %w", err)
	}
	return session, nil
}

// ---------------------------------------------------------------------------
// Listing and status transitions
// ---------------------------------------------------------------------------

func (s *bookingService) List(ctx context.Context, req ListRequest) ([]*repo.SessionRequest, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.SessionRequest.Query().
		Where(
			entsess.Or(
				entsess.MentorID(req.UserID),
				entsess.MenteeID(req.UserID),
			),
		)
	if req.Status != nil {
		q = q.Where(entsess.StatusEQ(entsess.Status(*req.Status)))
	}

	sessions, err := q.
		Order(entsess.ByDate(), entsess.ByStartHour(), entsess.ByStartMinute()).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session requests: %w", err)
	}
	return sessions, nil
}

func (s *bookingService) Accept(ctx context.Context, mentorID, sessionID uuid.UUID) error {
	return s.decide(ctx, sessionID, mentorID, true, entsess.StatusAccepted)
}

func (s *bookingService) Reject(ctx context.Context, mentorID, sessionID uuid.UUID) error {
	return s.decide(ctx, sessionID, mentorID, true, entsess.StatusRejected)
}

func (s *bookingService) Cancel(ctx context.Context, menteeID, sessionID uuid.UUID) error {
	session, err := s.db.SessionRequest.Get(ctx, sessionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("get session request: %w", err)
	}
	if session.MenteeID != menteeID {
		return ErrNotParticipant
	}
	if session.Status == entsess.StatusRejected || session.Status == entsess.StatusCancelled {
		return ErrAlreadyDecided
	}
	return s.db.SessionRequest.UpdateOne(session).
		SetStatus(entsess.StatusCancelled).
		Exec(ctx)
}

func (s *bookingService) decide(ctx context.Context, sessionID, actorID uuid.UUID, asMentor bool, next entsess.Status) error {
	session, err := s.db.SessionRequest.Get(ctx, sessionID)
	if err != nil {
		if repo.IsNotFound(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("get session request: %w", err)
	}
	if asMentor && session.MentorID != actorID {
		return ErrNotParticipant
	}
	if session.Status != entsess.StatusPending {
		return ErrAlreadyDecided
	}
	return s.db.SessionRequest.UpdateOne(session).
		SetStatus(next).
		Exec(ctx)
}

// ---------------------------------------------------------------------------
// Loaders
// ---------------------------------------------------------------------------

func (s *bookingService) liveService(ctx context.Context, serviceID uuid.UUID) (*repo.MentorService, error) {
	svc, err := s.db.MentorService.Query().
		Where(entsvc.ID(serviceID), entsvc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *bookingService) userLocation(ctx context.Context, userID uuid.UUID) (*time.Location, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, u.Timezone)
	}
	return loc, nil
}

func (s *bookingService) weeklyWindows(ctx context.Context, serviceID uuid.UUID) ([]availability.WeeklyWindow, error) {
	rows, err := s.db.DayAvailability.Query().
		Where(entday.ServiceID(serviceID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load windows: %w", err)
	}
	windows := make([]availability.WeeklyWindow, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, availability.WeeklyWindow{
			ID:      r.ID,
			Day:     availability.Weekday(r.DayOfWeek),
			Start:   availability.TimeOfDay{Hour: int(r.StartHour), Minute: int(r.StartMinute)},
			Minutes: r.DurationMinutes,
		})
	}
	return windows, nil
}

func (s *bookingService) exceptionsBetween(ctx context.Context, serviceID uuid.UUID, from, to time.Time) ([]availability.DateWindow, error) {
	rows, err := s.db.AvailabilityException.Query().
		Where(
			entexc.ServiceID(serviceID),
			entexc.DateGTE(from),
			entexc.DateLTE(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exceptions: %w", err)
	}
	windows := make([]availability.DateWindow, 0, len(rows))
	for _, r := range rows {
		windows = append(windows, availability.DateWindow{
			ID:      r.ID,
			Date:    availability.DateOnly(r.Date),
			Start:   availability.TimeOfDay{Hour: int(r.StartHour), Minute: int(r.StartMinute)},
			Minutes: r.DurationMinutes,
		})
	}
	return windows, nil
}

// liveSessions loads the PENDING/ACCEPTED sessions of either participant
// whose date falls in [from, to], as storage-zone slots.
func (s *bookingService) liveSessions(ctx context.Context, mentorID, menteeID uuid.UUID, from, to time.Time) ([]availability.Slot, error) {
	parties := []uuid.UUID{mentorID}
	if menteeID != uuid.Nil && menteeID != mentorID {
		parties = append(parties, menteeID)
	}

	rows, err := s.db.SessionRequest.Query().
		Where(
			entsess.Or(
				entsess.MentorIDIn(parties...),
				entsess.MenteeIDIn(parties...),
			),
			entsess.StatusIn(entsess.StatusPending, entsess.StatusAccepted),
			entsess.DateGTE(from),
			entsess.DateLTE(to),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	slots := make([]availability.Slot, 0, len(rows))
	for _, r := range rows {
		slots = append(slots, availability.Slot{
			ID:      r.ID,
			Date:    availability.DateOnly(r.Date),
			Start:   availability.TimeOfDay{Hour: int(r.StartHour), Minute: int(r.StartMinute)},
			Minutes: r.DurationMinutes,
		})
	}
	return slots, nil
}

// busySpans converts the live sessions of the mentor (and the viewer, when
// known) into absolute spans for slot subtraction.
func (s *bookingService) busySpans(ctx context.Context, mentorID, viewerID uuid.UUID, from, to time.Time) ([]availability.Span, error) {
	slots, err := s.liveSessions(ctx, mentorID, viewerID, from, to)
	if err != nil {
		return nil, err
	}
	spans := make([]availability.Span, 0, len(slots))
	for _, slot := range slots {
		start, end := slot.At(time.UTC)
		spans = append(spans, availability.Span{Start: start, End: end})
	}
	return spans, nil
}
