package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AvailabilityException is a date-specific window. The presence of any
// exception row for a date replaces every DayAvailability row for that
// date during slot generation and booking checks.
type AvailabilityException struct {
	ent.Schema
}

func (AvailabilityException) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AvailabilityException) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("mentor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → mentor_services.id"),

		field.Time("date").
			Comment("Calendar date at midnight Etc/UTC, no time component"),

		field.Int8("start_hour"),

		field.Int8("start_minute"),

		field.Int("duration_minutes").
			Comment("10..360, validated in the domain layer"),
	}
}

func (AvailabilityException) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_id", "date"),
		index.Fields("mentor_id"),
	}
}
