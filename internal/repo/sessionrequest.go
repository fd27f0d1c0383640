// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
)

// SessionRequest is the model entity for the SessionRequest schema.
type SessionRequest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → mentor_services.id
	ServiceID uuid.UUID `json:"service_id,omitempty"`
	// FK → users.id
	MentorID uuid.UUID `json:"mentor_id,omitempty"`
	// FK → users.id
	MenteeID uuid.UUID `json:"mentee_id,omitempty"`
	// CommunityID holds the value of the "community_id" field.
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	// Calendar date at midnight Etc/UTC
	Date time.Time `json:"date,omitempty"`
	// StartHour holds the value of the "start_hour" field.
	StartHour int8 `json:"start_hour,omitempty"`
	// StartMinute holds the value of the "start_minute" field.
	StartMinute int8 `json:"start_minute,omitempty"`
	// DurationMinutes holds the value of the "duration_minutes" field.
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Status holds the value of the "status" field.
	Status sessionrequest.Status `json:"status,omitempty"`
	// Agenda holds the value of the "agenda" field.
	Agenda       string `json:"agenda,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRequest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrequest.FieldCommunityID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case sessionrequest.FieldStartHour, sessionrequest.FieldStartMinute, sessionrequest.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case sessionrequest.FieldStatus, sessionrequest.FieldAgenda:
			values[i] = new(sql.NullString)
		case sessionrequest.FieldCreatedAt, sessionrequest.FieldUpdatedAt, sessionrequest.FieldDate:
			values[i] = new(sql.NullTime)
		case sessionrequest.FieldID, sessionrequest.FieldServiceID, sessionrequest.FieldMentorID, sessionrequest.FieldMenteeID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRequest fields.
func (_m *SessionRequest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrequest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case sessionrequest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sessionrequest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sessionrequest.FieldServiceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value != nil {
				_m.ServiceID = *value
			}
		case sessionrequest.FieldMentorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field mentor_id", values[i])
			} else if value != nil {
				_m.MentorID = *value
			}
		case sessionrequest.FieldMenteeID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field mentee_id", values[i])
			} else if value != nil {
				_m.MenteeID = *value
			}
		case sessionrequest.FieldCommunityID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field community_id", values[i])
			} else if value.Valid {
				_m.CommunityID = new(uuid.UUID)
				*_m.CommunityID = *value.S.(*uuid.UUID)
			}
		case sessionrequest.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case sessionrequest.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int8(value.Int64)
			}
		case sessionrequest.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int8(value.Int64)
			}
		case sessionrequest.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case sessionrequest.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sessionrequest.Status(value.String)
			}
		case sessionrequest.FieldAgenda:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agenda", values[i])
			} else if value.Valid {
				_m.Agenda = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRequest.
// This includes values selected through modifiers, order, etc.
func (_m *SessionRequest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRequest.
// Note that you need to call SessionRequest.Unwrap() before calling this method if this SessionRequest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionRequest) Update() *SessionRequestUpdateOne {
	return NewSessionRequestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionRequest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionRequest) Unwrap() *SessionRequest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: SessionRequest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionRequest) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRequest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceID))
	builder.WriteString(", ")
	builder.WriteString("mentor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentorID))
	builder.WriteString(", ")
	builder.WriteString("mentee_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MenteeID))
	builder.WriteString(", ")
	if v := _m.CommunityID; v != nil {
		builder.WriteString("community_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("start_hour=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartHour))
	builder.WriteString(", ")
	builder.WriteString("start_minute=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartMinute))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("agenda=")
	builder.WriteString(_m.Agenda)
	builder.WriteByte(')')
	return builder.String()
}

// SessionRequests is a parsable slice of SessionRequest.
type SessionRequests []*SessionRequest
