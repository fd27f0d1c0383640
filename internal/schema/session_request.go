package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SessionRequest is a mentee's request to book one slot of a mentor's
// service. Requests start out pending and block the slot until the
// mentor rejects them or the mentee cancels.
type SessionRequest struct {
	ent.Schema
}

func (SessionRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (SessionRequest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("service_id", uuid.UUID{}).
			Comment("FK → mentor_services.id"),

		field.UUID("mentor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("mentee_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("community_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Time("date").
			Comment("Calendar date at midnight Etc/UTC"),

		field.Int8("start_hour"),

		field.Int8("start_minute"),

		field.Int("duration_minutes"),

		field.Enum("status").
			Values("pending", "accepted", "rejected", "cancelled").
			Default("pending"),

		field.Text("agenda").
			Optional(),
	}
}

func (SessionRequest) Indexes() []ent.Index {
	return []ent.Index{
		// Two live requests may never hold the same slot. Rejected and
		// cancelled rows fall out of the index so the slot frees up.
		index.Fields("mentor_id", "service_id", "date", "start_hour", "start_minute").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'accepted')")),

		index.Fields("mentee_id"),
		index.Fields("mentor_id", "date"),
	}
}
