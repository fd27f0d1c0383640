package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DayAvailability is a mentor's recurring weekly availability window for a
// service. Stored in Etc/UTC; day_of_week uses Monday=0 .. Sunday=6.
type DayAvailability struct {
	ent.Schema
}

func (DayAvailability) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DayAvailability) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("mentor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → mentor_services.id"),

		field.Int8("day_of_week").
			Comment("0=Monday … 6=Sunday, in the storage timezone"),

		field.Int8("start_hour"),

		field.Int8("start_minute"),

		field.Int("duration_minutes").
			Comment("10..360, validated in the domain layer"),
	}
}

func (DayAvailability) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("service_id", "day_of_week"),
		index.Fields("mentor_id"),
	}
}
