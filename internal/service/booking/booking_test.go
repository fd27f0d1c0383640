package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mentorly/mentorly_backend/internal/repo"
	"github.com/mentorly/mentorly_backend/internal/repo/enttest"
	entsess "github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
	entuser "github.com/mentorly/mentorly_backend/internal/repo/user"
)

// bookingFixture seeds a mentor with a 60-minute service, a Monday
// 09:00-12:00 recurring window and two mentees. All users keep the
// default Etc/UTC timezone so wall-clock inputs need no shifting.
type bookingFixture struct {
	client *repo.Client
	svc    Service
	mentor *repo.User
	mentee *repo.User
	rival  *repo.User
	offer  *repo.MentorService
}

// monday is a fixed Monday far in the future so the recurring window
// seeded for day 0 always applies to it.
var monday = time.Date(2030, time.May, 6, 0, 0, 0, 0, time.UTC)

func newBookingFixture(t *testing.T, dsn string) *bookingFixture {
	t.Helper()
	ctx := context.Background()

	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	mentor, err := client.User.Create().
		SetEmail("mentor@example.com").
		SetRole(entuser.RoleMentor).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed mentor: %v", err)
	}
	mentee, err := client.User.Create().
		SetEmail("mentee@example.com").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed mentee: %v", err)
	}
	rival, err := client.User.Create().
		SetEmail("rival@example.com").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed rival: %v", err)
	}

	offer, err := client.MentorService.Create().
		SetMentorID(mentor.ID).
		SetSessionMinutes(60).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed service: %v", err)
	}

	_, err = client.DayAvailability.Create().
		SetMentorID(mentor.ID).
		SetServiceID(offer.ID).
		SetDayOfWeek(0). // Monday
		SetStartHour(9).
		SetStartMinute(0).
		SetDurationMinutes(180).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed window: %v", err)
	}

	return &bookingFixture{
		client: client,
		svc:    New(client, 30),
		mentor: mentor,
		mentee: mentee,
		rival:  rival,
		offer:  offer,
	}
}

func (f *bookingFixture) book(ctx context.Context, menteeID uuid.UUID, start string) (*repo.SessionRequest, error) {
	return f.svc.Book(ctx, BookRequest{
		ServiceID: f.offer.ID,
		MenteeID:  menteeID,
		Date:      monday,
		Start:     start,
	})
}

func TestBook(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, "file:book?mode=memory&cache=shared&_fk=1")

	first, err := f.book(ctx, f.mentee.ID, "09:00")
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	if first.Status != entsess.StatusPending {
		t.Errorf("Book() status = %s, want %s", first.Status, entsess.StatusPending)
	}
	if first.StartHour != 9 || first.StartMinute != 0 {
		t.Errorf("Book() start = %02d:%02d, want 09:00", first.StartHour, first.StartMinute)
	}

	// A second mentee asking for the held slot gets the dedicated error,
	// not the generic unavailable one.
	if _, err := f.book(ctx, f.rival.ID, "09:00"); !errors.Is(err, ErrDuplicateSlot) {
		t.Errorf("Book() same slot error = %v, want %v", err, ErrDuplicateSlot)
	}

	// Outside the Monday window entirely.
	if _, err := f.book(ctx, f.rival.ID, "20:00"); !errors.Is(err, ErrUnavailableSlot) {
		t.Errorf("Book() outside window error = %v, want %v", err, ErrUnavailableSlot)
	}

	// A rejected request no longer holds the slot.
	if err := f.svc.Reject(ctx, f.mentor.ID, first.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if _, err := f.book(ctx, f.rival.ID, "09:00"); err != nil {
		t.Errorf("Book() after rejection error = %v, want nil", err)
	}
}

// The exact-duplicate pre-check in Book is advisory; under concurrency the
// partial unique index on live requests is the arbiter. Drive the schema
// directly to show the index rejects a second live row for the same slot
// and stops caring once the first row leaves pending/accepted.
func TestLiveRequestUniqueIndex(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t, "file:bookindex?mode=memory&cache=shared&_fk=1")

	create := func(menteeID uuid.UUID) (*repo.SessionRequest, error) {
		return f.client.SessionRequest.Create().
			SetServiceID(f.offer.ID).
			SetMentorID(f.mentor.ID).
			SetMenteeID(menteeID).
			SetDate(monday).
			SetStartHour(9).
			SetStartMinute(0).
			SetDurationMinutes(60).
			Save(ctx)
	}

	first, err := create(f.mentee.ID)
	if err != nil {
		t.Fatalf("first insert: %v", err)
	}

	if _, err := create(f.rival.ID); !repo.IsConstraintError(err) {
		t.Fatalf("second insert error = %v, want constraint error", err)
	}

	_, err = f.client.SessionRequest.UpdateOneID(first.ID).
		SetStatus(entsess.StatusRejected).
		Save(ctx)
	if err != nil {
		t.Fatalf("reject first: %v", err)
	}

	if _, err := create(f.rival.ID); err != nil {
		t.Errorf("insert after rejection error = %v, want nil", err)
	}
}
