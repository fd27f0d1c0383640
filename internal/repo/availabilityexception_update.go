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
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// AvailabilityExceptionUpdate is the builder for updating AvailabilityException entities.
type AvailabilityExceptionUpdate struct {
	config
	hooks    []Hook
	mutation *AvailabilityExceptionMutation
}

// Where appends a list predicates to the AvailabilityExceptionUpdate builder.
func (_u *AvailabilityExceptionUpdate) Where(ps ...predicate.AvailabilityException) *AvailabilityExceptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityExceptionUpdate) SetUpdatedAt(v time.Time) *AvailabilityExceptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *AvailabilityExceptionUpdate) SetMentorID(v uuid.UUID) *AvailabilityExceptionUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableMentorID(v *uuid.UUID) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AvailabilityExceptionUpdate) SetServiceID(v uuid.UUID) *AvailabilityExceptionUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableServiceID(v *uuid.UUID) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AvailabilityExceptionUpdate) SetDate(v time.Time) *AvailabilityExceptionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableDate(v *time.Time) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AvailabilityExceptionUpdate) SetStartHour(v int8) *AvailabilityExceptionUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableStartHour(v *int8) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AvailabilityExceptionUpdate) AddStartHour(v int8) *AvailabilityExceptionUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityExceptionUpdate) SetStartMinute(v int8) *AvailabilityExceptionUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableStartMinute(v *int8) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityExceptionUpdate) AddStartMinute(v int8) *AvailabilityExceptionUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AvailabilityExceptionUpdate) SetDurationMinutes(v int) *AvailabilityExceptionUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdate) SetNillableDurationMinutes(v *int) *AvailabilityExceptionUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AvailabilityExceptionUpdate) AddDurationMinutes(v int) *AvailabilityExceptionUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the AvailabilityExceptionMutation object of the builder.
func (_u *AvailabilityExceptionUpdate) Mutation() *AvailabilityExceptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AvailabilityExceptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityExceptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AvailabilityExceptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityExceptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityExceptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityexception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilityExceptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityexception.Table, availabilityexception.Columns, sqlgraph.NewFieldSpec(availabilityexception.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityexception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(availabilityexception.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(availabilityexception.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(availabilityexception.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(availabilityexception.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(availabilityexception.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilityexception.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilityexception.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(availabilityexception.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(availabilityexception.FieldDurationMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AvailabilityExceptionUpdateOne is the builder for updating a single AvailabilityException entity.
type AvailabilityExceptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AvailabilityExceptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AvailabilityExceptionUpdateOne) SetUpdatedAt(v time.Time) *AvailabilityExceptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *AvailabilityExceptionUpdateOne) SetMentorID(v uuid.UUID) *AvailabilityExceptionUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableMentorID(v *uuid.UUID) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *AvailabilityExceptionUpdateOne) SetServiceID(v uuid.UUID) *AvailabilityExceptionUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableServiceID(v *uuid.UUID) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AvailabilityExceptionUpdateOne) SetDate(v time.Time) *AvailabilityExceptionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableDate(v *time.Time) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *AvailabilityExceptionUpdateOne) SetStartHour(v int8) *AvailabilityExceptionUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableStartHour(v *int8) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *AvailabilityExceptionUpdateOne) AddStartHour(v int8) *AvailabilityExceptionUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *AvailabilityExceptionUpdateOne) SetStartMinute(v int8) *AvailabilityExceptionUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableStartMinute(v *int8) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *AvailabilityExceptionUpdateOne) AddStartMinute(v int8) *AvailabilityExceptionUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *AvailabilityExceptionUpdateOne) SetDurationMinutes(v int) *AvailabilityExceptionUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *AvailabilityExceptionUpdateOne) SetNillableDurationMinutes(v *int) *AvailabilityExceptionUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *AvailabilityExceptionUpdateOne) AddDurationMinutes(v int) *AvailabilityExceptionUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// Mutation returns the AvailabilityExceptionMutation object of the builder.
func (_u *AvailabilityExceptionUpdateOne) Mutation() *AvailabilityExceptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AvailabilityExceptionUpdate builder.
func (_u *AvailabilityExceptionUpdateOne) Where(ps ...predicate.AvailabilityException) *AvailabilityExceptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AvailabilityExceptionUpdateOne) Select(field string, fields ...string) *AvailabilityExceptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AvailabilityException entity.
func (_u *AvailabilityExceptionUpdateOne) Save(ctx context.Context) (*AvailabilityException, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AvailabilityExceptionUpdateOne) SaveX(ctx context.Context) *AvailabilityException {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AvailabilityExceptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AvailabilityExceptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AvailabilityExceptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := availabilityexception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AvailabilityExceptionUpdateOne) sqlSave(ctx context.Context) (_node *AvailabilityException, err error) {
	_spec := sqlgraph.NewUpdateSpec(availabilityexception.Table, availabilityexception.Columns, sqlgraph.NewFieldSpec(availabilityexception.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AvailabilityException.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, availabilityexception.FieldID)
		for _, f := range fields {
			if !availabilityexception.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != availabilityexception.FieldID {
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
		_spec.SetField(availabilityexception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(availabilityexception.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(availabilityexception.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(availabilityexception.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(availabilityexception.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(availabilityexception.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(availabilityexception.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(availabilityexception.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(availabilityexception.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(availabilityexception.FieldDurationMinutes, field.TypeInt, value)
	}
	_node = &AvailabilityException{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{availabilityexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
