// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
)

// AvailabilityException is the model entity for the AvailabilityException schema.
type AvailabilityException struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	MentorID uuid.UUID `json:"mentor_id,omitempty"`
	// FK → mentor_services.id
	ServiceID uuid.UUID `json:"service_id,omitempty"`
	// Calendar date at midnight Etc/UTC, no time component
	Date time.Time `json:"date,omitempty"`
	// StartHour holds the value of the "start_hour" field.
	StartHour int8 `json:"start_hour,omitempty"`
	// StartMinute holds the value of the "start_minute" field.
	StartMinute int8 `json:"start_minute,omitempty"`
	// 10..360, validated in the domain layer
	DurationMinutes int `json:"duration_minutes,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AvailabilityException) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case availabilityexception.FieldStartHour, availabilityexception.FieldStartMinute, availabilityexception.FieldDurationMinutes:
			values[i] = new(sql.NullInt64)
		case availabilityexception.FieldCreatedAt, availabilityexception.FieldUpdatedAt, availabilityexception.FieldDate:
			values[i] = new(sql.NullTime)
		case availabilityexception.FieldID, availabilityexception.FieldMentorID, availabilityexception.FieldServiceID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AvailabilityException fields.
func (_m *AvailabilityException) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case availabilityexception.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case availabilityexception.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case availabilityexception.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case availabilityexception.FieldMentorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field mentor_id", values[i])
			} else if value != nil {
				_m.MentorID = *value
			}
		case availabilityexception.FieldServiceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field service_id", values[i])
			} else if value != nil {
				_m.ServiceID = *value
			}
		case availabilityexception.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case availabilityexception.FieldStartHour:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_hour", values[i])
			} else if value.Valid {
				_m.StartHour = int8(value.Int64)
			}
		case availabilityexception.FieldStartMinute:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_minute", values[i])
			} else if value.Valid {
				_m.StartMinute = int8(value.Int64)
			}
		case availabilityexception.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AvailabilityException.
// This includes values selected through modifiers, order, etc.
func (_m *AvailabilityException) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AvailabilityException.
// Note that you need to call AvailabilityException.Unwrap() before calling this method if this AvailabilityException
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AvailabilityException) Update() *AvailabilityExceptionUpdateOne {
	return NewAvailabilityExceptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AvailabilityException entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AvailabilityException) Unwrap() *AvailabilityException {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: AvailabilityException is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AvailabilityException) String() string {
	var builder strings.Builder
	builder.WriteString("AvailabilityException(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mentor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentorID))
	builder.WriteString(", ")
	builder.WriteString("service_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceID))
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
	builder.WriteByte(')')
	return builder.String()
}

// AvailabilityExceptions is a parsable slice of AvailabilityException.
type AvailabilityExceptions []*AvailabilityException
