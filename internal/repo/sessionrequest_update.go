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
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
	"github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
)

// SessionRequestUpdate is the builder for updating SessionRequest entities.
type SessionRequestUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRequestMutation
}

// Where appends a list predicates to the SessionRequestUpdate builder.
func (_u *SessionRequestUpdate) Where(ps ...predicate.SessionRequest) *SessionRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRequestUpdate) SetUpdatedAt(v time.Time) *SessionRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *SessionRequestUpdate) SetServiceID(v uuid.UUID) *SessionRequestUpdate {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableServiceID(v *uuid.UUID) *SessionRequestUpdate {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *SessionRequestUpdate) SetMentorID(v uuid.UUID) *SessionRequestUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableMentorID(v *uuid.UUID) *SessionRequestUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetMenteeID sets the "mentee_id" field.
func (_u *SessionRequestUpdate) SetMenteeID(v uuid.UUID) *SessionRequestUpdate {
	_u.mutation.SetMenteeID(v)
	return _u
}

// SetNillableMenteeID sets the "mentee_id" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableMenteeID(v *uuid.UUID) *SessionRequestUpdate {
	if v != nil {
		_u.SetMenteeID(*v)
	}
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *SessionRequestUpdate) SetCommunityID(v uuid.UUID) *SessionRequestUpdate {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableCommunityID(v *uuid.UUID) *SessionRequestUpdate {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// ClearCommunityID clears the value of the "community_id" field.
func (_u *SessionRequestUpdate) ClearCommunityID() *SessionRequestUpdate {
	_u.mutation.ClearCommunityID()
	return _u
}

// SetDate sets the "date" field.
func (_u *SessionRequestUpdate) SetDate(v time.Time) *SessionRequestUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableDate(v *time.Time) *SessionRequestUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *SessionRequestUpdate) SetStartHour(v int8) *SessionRequestUpdate {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableStartHour(v *int8) *SessionRequestUpdate {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *SessionRequestUpdate) AddStartHour(v int8) *SessionRequestUpdate {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *SessionRequestUpdate) SetStartMinute(v int8) *SessionRequestUpdate {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableStartMinute(v *int8) *SessionRequestUpdate {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *SessionRequestUpdate) AddStartMinute(v int8) *SessionRequestUpdate {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionRequestUpdate) SetDurationMinutes(v int) *SessionRequestUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableDurationMinutes(v *int) *SessionRequestUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionRequestUpdate) AddDurationMinutes(v int) *SessionRequestUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRequestUpdate) SetStatus(v sessionrequest.Status) *SessionRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableStatus(v *sessionrequest.Status) *SessionRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgenda sets the "agenda" field.
func (_u *SessionRequestUpdate) SetAgenda(v string) *SessionRequestUpdate {
	_u.mutation.SetAgenda(v)
	return _u
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_u *SessionRequestUpdate) SetNillableAgenda(v *string) *SessionRequestUpdate {
	if v != nil {
		_u.SetAgenda(*v)
	}
	return _u
}

// ClearAgenda clears the value of the "agenda" field.
func (_u *SessionRequestUpdate) ClearAgenda() *SessionRequestUpdate {
	_u.mutation.ClearAgenda()
	return _u
}

// Mutation returns the SessionRequestMutation object of the builder.
func (_u *SessionRequestUpdate) Mutation() *SessionRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrequest.Table, sessionrequest.Columns, sqlgraph.NewFieldSpec(sessionrequest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(sessionrequest.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(sessionrequest.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MenteeID(); ok {
		_spec.SetField(sessionrequest.FieldMenteeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CommunityID(); ok {
		_spec.SetField(sessionrequest.FieldCommunityID, field.TypeUUID, value)
	}
	if _u.mutation.CommunityIDCleared() {
		_spec.ClearField(sessionrequest.FieldCommunityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(sessionrequest.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(sessionrequest.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(sessionrequest.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(sessionrequest.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(sessionrequest.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(sessionrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Agenda(); ok {
		_spec.SetField(sessionrequest.FieldAgenda, field.TypeString, value)
	}
	if _u.mutation.AgendaCleared() {
		_spec.ClearField(sessionrequest.FieldAgenda, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRequestUpdateOne is the builder for updating a single SessionRequest entity.
type SessionRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionRequestUpdateOne) SetUpdatedAt(v time.Time) *SessionRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetServiceID sets the "service_id" field.
func (_u *SessionRequestUpdateOne) SetServiceID(v uuid.UUID) *SessionRequestUpdateOne {
	_u.mutation.SetServiceID(v)
	return _u
}

// SetNillableServiceID sets the "service_id" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableServiceID(v *uuid.UUID) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetServiceID(*v)
	}
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *SessionRequestUpdateOne) SetMentorID(v uuid.UUID) *SessionRequestUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableMentorID(v *uuid.UUID) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetMenteeID sets the "mentee_id" field.
func (_u *SessionRequestUpdateOne) SetMenteeID(v uuid.UUID) *SessionRequestUpdateOne {
	_u.mutation.SetMenteeID(v)
	return _u
}

// SetNillableMenteeID sets the "mentee_id" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableMenteeID(v *uuid.UUID) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetMenteeID(*v)
	}
	return _u
}

// SetCommunityID sets the "community_id" field.
func (_u *SessionRequestUpdateOne) SetCommunityID(v uuid.UUID) *SessionRequestUpdateOne {
	_u.mutation.SetCommunityID(v)
	return _u
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableCommunityID(v *uuid.UUID) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetCommunityID(*v)
	}
	return _u
}

// ClearCommunityID clears the value of the "community_id" field.
func (_u *SessionRequestUpdateOne) ClearCommunityID() *SessionRequestUpdateOne {
	_u.mutation.ClearCommunityID()
	return _u
}

// SetDate sets the "date" field.
func (_u *SessionRequestUpdateOne) SetDate(v time.Time) *SessionRequestUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableDate(v *time.Time) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStartHour sets the "start_hour" field.
func (_u *SessionRequestUpdateOne) SetStartHour(v int8) *SessionRequestUpdateOne {
	_u.mutation.ResetStartHour()
	_u.mutation.SetStartHour(v)
	return _u
}

// SetNillableStartHour sets the "start_hour" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableStartHour(v *int8) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetStartHour(*v)
	}
	return _u
}

// AddStartHour adds value to the "start_hour" field.
func (_u *SessionRequestUpdateOne) AddStartHour(v int8) *SessionRequestUpdateOne {
	_u.mutation.AddStartHour(v)
	return _u
}

// SetStartMinute sets the "start_minute" field.
func (_u *SessionRequestUpdateOne) SetStartMinute(v int8) *SessionRequestUpdateOne {
	_u.mutation.ResetStartMinute()
	_u.mutation.SetStartMinute(v)
	return _u
}

// SetNillableStartMinute sets the "start_minute" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableStartMinute(v *int8) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetStartMinute(*v)
	}
	return _u
}

// AddStartMinute adds value to the "start_minute" field.
func (_u *SessionRequestUpdateOne) AddStartMinute(v int8) *SessionRequestUpdateOne {
	_u.mutation.AddStartMinute(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *SessionRequestUpdateOne) SetDurationMinutes(v int) *SessionRequestUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableDurationMinutes(v *int) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *SessionRequestUpdateOne) AddDurationMinutes(v int) *SessionRequestUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionRequestUpdateOne) SetStatus(v sessionrequest.Status) *SessionRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableStatus(v *sessionrequest.Status) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgenda sets the "agenda" field.
func (_u *SessionRequestUpdateOne) SetAgenda(v string) *SessionRequestUpdateOne {
	_u.mutation.SetAgenda(v)
	return _u
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_u *SessionRequestUpdateOne) SetNillableAgenda(v *string) *SessionRequestUpdateOne {
	if v != nil {
		_u.SetAgenda(*v)
	}
	return _u
}

// ClearAgenda clears the value of the "agenda" field.
func (_u *SessionRequestUpdateOne) ClearAgenda() *SessionRequestUpdateOne {
	_u.mutation.ClearAgenda()
	return _u
}

// Mutation returns the SessionRequestMutation object of the builder.
func (_u *SessionRequestUpdateOne) Mutation() *SessionRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRequestUpdate builder.
func (_u *SessionRequestUpdateOne) Where(ps ...predicate.SessionRequest) *SessionRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRequestUpdateOne) Select(field string, fields ...string) *SessionRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRequest entity.
func (_u *SessionRequestUpdateOne) Save(ctx context.Context) (*SessionRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRequestUpdateOne) SaveX(ctx context.Context) *SessionRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionrequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sessionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRequestUpdateOne) sqlSave(ctx context.Context) (_node *SessionRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrequest.Table, sessionrequest.Columns, sqlgraph.NewFieldSpec(sessionrequest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SessionRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrequest.FieldID)
		for _, f := range fields {
			if !sessionrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != sessionrequest.FieldID {
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
		_spec.SetField(sessionrequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ServiceID(); ok {
		_spec.SetField(sessionrequest.FieldServiceID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(sessionrequest.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.MenteeID(); ok {
		_spec.SetField(sessionrequest.FieldMenteeID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CommunityID(); ok {
		_spec.SetField(sessionrequest.FieldCommunityID, field.TypeUUID, value)
	}
	if _u.mutation.CommunityIDCleared() {
		_spec.ClearField(sessionrequest.FieldCommunityID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(sessionrequest.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartHour(); ok {
		_spec.SetField(sessionrequest.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartHour(); ok {
		_spec.AddField(sessionrequest.FieldStartHour, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartMinute(); ok {
		_spec.SetField(sessionrequest.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedStartMinute(); ok {
		_spec.AddField(sessionrequest.FieldStartMinute, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(sessionrequest.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sessionrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Agenda(); ok {
		_spec.SetField(sessionrequest.FieldAgenda, field.TypeString, value)
	}
	if _u.mutation.AgendaCleared() {
		_spec.ClearField(sessionrequest.FieldAgenda, field.TypeString)
	}
	_node = &SessionRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
