// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// DayAvailabilityUpdate is the builder for updating DayAvailability entities.
type DayAvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *DayAvailabilityMutation
}

// Where appends a list predicates to the DayAvailabilityUpdate builder.
func (_u *DayAvailabilityUpdate) Where(ps ...predicate.DayAvailability) *DayAvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DayAvailabilityUpdate) SetUpdatedAt(v time.Time) *DayAvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *DayAvailabilityUpdate) SetMentorID(v uuid.UUID) *DayAvailabilityUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableMentorID(v *uuid.UUID) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *DayAvailabilityUpdate) SetServiceID(v uuid.UUID) *DayAvailabilityUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableServiceID(v *uuid.UUID) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DayAvailabilityUpdate) SetDayOfWeek(v int8) *DayAvailabilityUpdate {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableDayOfWeek(v *int8) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DayAvailabilityUpdate) AddDayOfWeek(v int8) *DayAvailabilityUpdate {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DayAvailabilityUpdate) SetStartHour(v int8) *DayAvailabilityUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableStartHour(v *int8) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DayAvailabilityUpdate) AddStartHour(v int8) *DayAvailabilityUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *DayAvailabilityUpdate) SetStartMinute(v int8) *DayAvailabilityUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableStartMinute(v *int8) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *DayAvailabilityUpdate) AddStartMinute(v int8) *DayAvailabilityUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *DayAvailabilityUpdate) SetDurationMinutes(v int) *DayAvailabilityUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *DayAvailabilityUpdate) SetNillableDurationMinutes(v *int) *DayAvailabilityUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *DayAvailabilityUpdate) AddDurationMinutes(v int) *DayAvailabilityUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the DayAvailabilityMutation object of the builder.
func (_u *DayAvailabilityUpdate) Mutation() *DayAvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DayAvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayAvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DayAvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayAvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DayAvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dayavailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DayAvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dayavailability.Table, dayavailability.Columns, sqlgraph.NewFieldSpec(dayavailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dayavailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(dayavailability.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(dayavailability.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(dayavailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(dayavailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(dayavailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(dayavailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(dayavailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(dayavailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(dayavailability.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(dayavailability.FieldDurationMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dayavailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DayAvailabilityUpdateOne is the builder for updating a single DayAvailability entity.
type DayAvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DayAvailabilityMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DayAvailabilityUpdateOne) SetUpdatedAt(v time.Time) *DayAvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *DayAvailabilityUpdateOne) SetMentorID(v uuid.UUID) *DayAvailabilityUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableMentorID(v *uuid.UUID) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *DayAvailabilityUpdateOne) SetServiceID(v uuid.UUID) *DayAvailabilityUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableServiceID(v *uuid.UUID) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDayOfWeek sets the "day_of_week" field.
func (_u *DayAvailabilityUpdateOne) SetDayOfWeek(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.ResetDayOfWeek()
	_u.mutation.SetDayOfWeek(v)
	return _u
}

// SetNillableDayOfWeek sets the "day_of_week" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableDayOfWeek(v *int8) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetDayOfWeek(*v)
	}
	return _u
}

// AddDayOfWeek adds value to the "day_of_week" field.
func (_u *DayAvailabilityUpdateOne) AddDayOfWeek(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.AddDayOfWeek(v)
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *DayAvailabilityUpdateOne) SetStartHour(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableStartHour(v *int8) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *DayAvailabilityUpdateOne) AddStartHour(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *DayAvailabilityUpdateOne) SetStartMinute(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableStartMinute(v *int8) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *DayAvailabilityUpdateOne) AddStartMinute(v int8) *DayAvailabilityUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *DayAvailabilityUpdateOne) SetDurationMinutes(v int) *DayAvailabilityUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *DayAvailabilityUpdateOne) SetNillableDurationMinutes(v *int) *DayAvailabilityUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *DayAvailabilityUpdateOne) AddDurationMinutes(v int) *DayAvailabilityUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the DayAvailabilityMutation object of the builder.
func (_u *DayAvailabilityUpdateOne) Mutation() *DayAvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the DayAvailabilityUpdate builder.
func (_u *DayAvailabilityUpdateOne) Where(ps ...predicate.DayAvailability) *DayAvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DayAvailabilityUpdateOne) Select(field string, fields ...string) *DayAvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DayAvailability entity.
func (_u *DayAvailabilityUpdateOne) Save(ctx context.Context) (*DayAvailability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DayAvailabilityUpdateOne) SaveX(ctx context.Context) *DayAvailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DayAvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DayAvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DayAvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dayavailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DayAvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *DayAvailability, err error) {
	_spec := sqlgraph.NewUpdateSpec(dayavailability.Table, dayavailability.Columns, sqlgraph.NewFieldSpec(dayavailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DayAvailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dayavailability.FieldID)
		for _, f := range fields {
			if !dayavailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != dayavailability.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dayavailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(dayavailability.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(dayavailability.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DayOfWeek(); ok {
		_spec.SetField(dayavailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDayOfWeek(); ok {
		_spec.AddField(dayavailability.FieldDayOfWeek, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(dayavailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(dayavailability.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(dayavailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(dayavailability.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(dayavailability.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(dayavailability.FieldDurationMinutes, field.TypeInt, value)
	}
	_node = &DayAvailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dayavailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
