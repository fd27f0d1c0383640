package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// MentorService is a bookable offering a mentor publishes: its weekly
// availability windows and date exceptions hang off it, and its
// session_minutes fixes the length of every booked session.
type MentorService struct {
	ent.Schema
}

func (MentorService) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (MentorService) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("mentor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Enum("kind").
			Values("mentorship", "mock_interview", "cv_review", "consultation").
			Default("mentorship"),

		field.Text("description").
			Optional().
			Nillable(),

		field.Int("session_minutes").
			Comment("Length of one booked session; also the slot step"),
	}
}

func (MentorService) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mentor_id"),
	}
}
