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
	"github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// MentorServiceUpdate is the builder for updating MentorService entities.
type MentorServiceUpdate struct {
	config
	hooks    []Hook
	mutation *MentorServiceMutation
}

// Where appends a list predicates to the MentorServiceUpdate builder.
func (_u *MentorServiceUpdate) Where(ps ...predicate.MentorService) *MentorServiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentorServiceUpdate) SetUpdatedAt(v time.Time) *MentorServiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MentorServiceUpdate) SetDeletedAt(v time.Time) *MentorServiceUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MentorServiceUpdate) SetNillableDeletedAt(v *time.Time) *MentorServiceUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MentorServiceUpdate) ClearDeletedAt() *MentorServiceUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *MentorServiceUpdate) SetMentorID(v uuid.UUID) *MentorServiceUpdate {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *MentorServiceUpdate) SetNillableMentorID(v *uuid.UUID) *MentorServiceUpdate {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MentorServiceUpdate) SetKind(v mentorservice.Kind) *MentorServiceUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MentorServiceUpdate) SetNillableKind(v *mentorservice.Kind) *MentorServiceUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentorServiceUpdate) SetDescription(v string) *MentorServiceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentorServiceUpdate) SetNillableDescription(v *string) *MentorServiceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MentorServiceUpdate) ClearDescription() *MentorServiceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSessionMinutes sets the "session_minutes" field.
func (_u *MentorServiceUpdate) SetSessionMinutes(v int) *MentorServiceUpdate {
	_u.mutation.ResetSessionMinutes()
	_u.mutation.SetSessionMinutes(v)
	return _u
}

// SetNillableSessionMinutes sets the "session_minutes" field if the given value is not nil.
func (_u *MentorServiceUpdate) SetNillableSessionMinutes(v *int) *MentorServiceUpdate {
	if v != nil {
		_u.SetSessionMinutes(*v)
	}
	return _u
}

// AddSessionMinutes adds value to the "session_minutes" field.
func (_u *MentorServiceUpdate) AddSessionMinutes(v int) *MentorServiceUpdate {
	_u.mutation.AddSessionMinutes(v)
	return _u
}

// Mutation returns the MentorServiceMutation object of the builder.
func (_u *MentorServiceUpdate) Mutation() *MentorServiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentorServiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorServiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentorServiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorServiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentorServiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentorservice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentorServiceUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := mentorservice.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "MentorService.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MentorServiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentorservice.Table, mentorservice.Columns, sqlgraph.NewFieldSpec(mentorservice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mentorservice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mentorservice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mentorservice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(mentorservice.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mentorservice.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentorservice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mentorservice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMinutes(); ok {
		_spec.SetField(mentorservice.FieldSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionMinutes(); ok {
		_spec.AddField(mentorservice.FieldSessionMinutes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentorservice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentorServiceUpdateOne is the builder for updating a single MentorService entity.
type MentorServiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentorServiceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentorServiceUpdateOne) SetUpdatedAt(v time.Time) *MentorServiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *MentorServiceUpdateOne) SetDeletedAt(v time.Time) *MentorServiceUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *MentorServiceUpdateOne) SetNillableDeletedAt(v *time.Time) *MentorServiceUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *MentorServiceUpdateOne) ClearDeletedAt() *MentorServiceUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetMentorID sets the "mentor_id" field.
func (_u *MentorServiceUpdateOne) SetMentorID(v uuid.UUID) *MentorServiceUpdateOne {
	_u.mutation.SetMentorID(v)
	return _u
}

// SetNillableMentorID sets the "mentor_id" field if the given value is not nil.
func (_u *MentorServiceUpdateOne) SetNillableMentorID(v *uuid.UUID) *MentorServiceUpdateOne {
	if v != nil {
		_u.SetMentorID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MentorServiceUpdateOne) SetKind(v mentorservice.Kind) *MentorServiceUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MentorServiceUpdateOne) SetNillableKind(v *mentorservice.Kind) *MentorServiceUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentorServiceUpdateOne) SetDescription(v string) *MentorServiceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentorServiceUpdateOne) SetNillableDescription(v *string) *MentorServiceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MentorServiceUpdateOne) ClearDescription() *MentorServiceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSessionMinutes sets the "session_minutes" field.
func (_u *MentorServiceUpdateOne) SetSessionMinutes(v int) *MentorServiceUpdateOne {
	_u.mutation.ResetSessionMinutes()
	_u.mutation.SetSessionMinutes(v)
	return _u
}

// SetNillableSessionMinutes sets the "session_minutes" field if the given value is not nil.
func (_u *MentorServiceUpdateOne) SetNillableSessionMinutes(v *int) *MentorServiceUpdateOne {
	if v != nil {
		_u.SetSessionMinutes(*v)
	}
	return _u
}

// AddSessionMinutes adds value to the "session_minutes" field.
func (_u *MentorServiceUpdateOne) AddSessionMinutes(v int) *MentorServiceUpdateOne {
	_u.mutation.AddSessionMinutes(v)
	return _u
}

// Mutation returns the MentorServiceMutation object of the builder.
func (_u *MentorServiceUpdateOne) Mutation() *MentorServiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentorServiceUpdate builder.
func (_u *MentorServiceUpdateOne) Where(ps ...predicate.MentorService) *MentorServiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentorServiceUpdateOne) Select(field string, fields ...string) *MentorServiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentorService entity.
func (_u *MentorServiceUpdateOne) Save(ctx context.Context) (*MentorService, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentorServiceUpdateOne) SaveX(ctx context.Context) *MentorService {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentorServiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentorServiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentorServiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentorservice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentorServiceUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := mentorservice.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "MentorService.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *MentorServiceUpdateOne) sqlSave(ctx context.Context) (_node *MentorService, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentorservice.Table, mentorservice.Columns, sqlgraph.NewFieldSpec(mentorservice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MentorService.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentorservice.FieldID)
		for _, f := range fields {
			if !mentorservice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != mentorservice.FieldID {
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
		_spec.SetField(mentorservice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(mentorservice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(mentorservice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.MentorID(); ok {
		_spec.SetField(mentorservice.FieldMentorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(mentorservice.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentorservice.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mentorservice.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.SessionMinutes(); ok {
		_spec.SetField(mentorservice.FieldSessionMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionMinutes(); ok {
		_spec.AddField(mentorservice.FieldSessionMinutes, field.TypeInt, value)
	}
	_node = &MentorService{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentorservice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
