// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
)

// AvailabilityExceptionCreate is the builder for creating a AvailabilityException entity.
type AvailabilityExceptionCreate struct {
	config
	mutation *AvailabilityExceptionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AvailabilityExceptionCreate) SetCreatedAt(v time.Time) *AvailabilityExceptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AvailabilityExceptionCreate) SetNillableCreatedAt(v *time.Time) *AvailabilityExceptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AvailabilityExceptionCreate) SetUpdatedAt(v time.Time) *AvailabilityExceptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AvailabilityExceptionCreate) SetNillableUpdatedAt(v *time.Time) *AvailabilityExceptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *AvailabilityExceptionCreate) SetMentorID(v uuid.UUID) *AvailabilityExceptionCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *AvailabilityExceptionCreate) SetServiceID(v uuid.UUID) *AvailabilityExceptionCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *AvailabilityExceptionCreate) SetDate(v time.Time) *AvailabilityExceptionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *AvailabilityExceptionCreate) SetStartHour(v int8) *AvailabilityExceptionCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *AvailabilityExceptionCreate) SetStartMinute(v int8) *AvailabilityExceptionCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *AvailabilityExceptionCreate) SetDurationMinutes(v int) *AvailabilityExceptionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AvailabilityExceptionCreate) SetID(v uuid.UUID) *AvailabilityExceptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AvailabilityExceptionCreate) SetNillableID(v *uuid.UUID) *AvailabilityExceptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AvailabilityExceptionMutation object of the builder.
func (_c *AvailabilityExceptionCreate) Mutation() *AvailabilityExceptionMutation {
	return _c.mutation
}

// Save creates the AvailabilityException in the database.
func (_c *AvailabilityExceptionCreate) Save(ctx context.Context) (*AvailabilityException, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AvailabilityExceptionCreate) SaveX(ctx context.Context) *AvailabilityException {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityExceptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityExceptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AvailabilityExceptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := availabilityexception.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := availabilityexception.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := availabilityexception.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AvailabilityExceptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AvailabilityException.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AvailabilityException.updated_at"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`repo: missing required field "AvailabilityException.mentor_id"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`repo: missing required field "AvailabilityException.service_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "AvailabilityException.date"`)}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "AvailabilityException.start_hour"`)}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "AvailabilityException.start_minute"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "AvailabilityException.duration_minutes"`)}
	}
	return nil
}

func (_c *AvailabilityExceptionCreate) sqlSave(ctx context.Context) (*AvailabilityException, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AvailabilityExceptionCreate) createSpec() (*AvailabilityException, *sqlgraph.CreateSpec) {
	var (
		_node = &AvailabilityException{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(availabilityexception.Table, sqlgraph.NewFieldSpec(availabilityexception.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(availabilityexception.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(availabilityexception.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(availabilityexception.FieldMentorID, field.TypeUUID, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(availabilityexception.FieldServiceID, field.TypeUUID, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(availabilityexception.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(availabilityexception.FieldStartHour, field.TypeInt8, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(availabilityexception.FieldStartMinute, field.TypeInt8, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(availabilityexception.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	return _node, _spec
}

// AvailabilityExceptionCreateBulk is the builder for creating many AvailabilityException entities in bulk.
type AvailabilityExceptionCreateBulk struct {
	config
	err      error
	builders []*AvailabilityExceptionCreate
}

// Save creates the AvailabilityException entities in the database.
func (_c *AvailabilityExceptionCreateBulk) Save(ctx context.Context) ([]*AvailabilityException, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AvailabilityException, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AvailabilityExceptionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AvailabilityExceptionCreateBulk) SaveX(ctx context.Context) []*AvailabilityException {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AvailabilityExceptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AvailabilityExceptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
