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
	"github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
)

// DayAvailabilityCreate is the builder for creating a DayAvailability entity.
type DayAvailabilityCreate struct {
	config
	mutation *DayAvailabilityMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DayAvailabilityCreate) SetCreatedAt(v time.Time) *DayAvailabilityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DayAvailabilityCreate) SetNillableCreatedAt(v *time.Time) *DayAvailabilityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DayAvailabilityCreate) SetUpdatedAt(v time.Time) *DayAvailabilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DayAvailabilityCreate) SetNillableUpdatedAt(v *time.Time) *DayAvailabilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *DayAvailabilityCreate) SetMentorID(v uuid.UUID) *DayAvailabilityCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *DayAvailabilityCreate) SetServiceID(v uuid.UUID) *DayAvailabilityCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetDayOfWeek sets the "day_of_week" field.
func (_c *DayAvailabilityCreate) SetDayOfWeek(v int8) *DayAvailabilityCreate {
	_c.mutation.SetDayOfWeek(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *DayAvailabilityCreate) SetStartHour(v int8) *DayAvailabilityCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *DayAvailabilityCreate) SetStartMinute(v int8) *DayAvailabilityCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *DayAvailabilityCreate) SetDurationMinutes(v int) *DayAvailabilityCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *DayAvailabilityCreate) SetID(v uuid.UUID) *DayAvailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DayAvailabilityCreate) SetNillableID(v *uuid.UUID) *DayAvailabilityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DayAvailabilityMutation object of the builder.
func (_c *DayAvailabilityCreate) Mutation() *DayAvailabilityMutation {
	return _c.mutation
}

// Save creates the DayAvailability in the database.
func (_c *DayAvailabilityCreate) Save(ctx context.Context) (*DayAvailability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DayAvailabilityCreate) SaveX(ctx context.Context) *DayAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayAvailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayAvailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DayAvailabilityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dayavailability.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dayavailability.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dayavailability.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DayAvailabilityCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DayAvailability.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DayAvailability.updated_at"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`repo: missing required field "DayAvailability.mentor_id"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`repo: missing required field "DayAvailability.service_id"`)}
	}
	if _, ok := _c.mutation.DayOfWeek(); !ok {
		return &ValidationError{Name: "day_of_week", err: errors.New(`repo: missing required field "DayAvailability.day_of_week"`)}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "DayAvailability.start_hour"`)}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "DayAvailability.start_minute"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "DayAvailability.duration_minutes"`)}
	}
	return nil
}

func (_c *DayAvailabilityCreate) sqlSave(ctx context.Context) (*DayAvailability, error) {
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

func (_c *DayAvailabilityCreate) createSpec() (*DayAvailability, *sqlgraph.CreateSpec) {
	var (
		_node = &DayAvailability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dayavailability.Table, sqlgraph.NewFieldSpec(dayavailability.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dayavailability.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dayavailability.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(dayavailability.FieldMentorID, field.TypeUUID, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(dayavailability.FieldServiceID, field.TypeUUID, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.DayOfWeek(); ok {
		_spec.SetField(dayavailability.FieldDayOfWeek, field.TypeInt8, value)
		_node.DayOfWeek = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(dayavailability.FieldStartHour, field.TypeInt8, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(dayavailability.FieldStartMinute, field.TypeInt8, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(dayavailability.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	return _node, _spec
}

// DayAvailabilityCreateBulk is the builder for creating many DayAvailability entities in bulk.
type DayAvailabilityCreateBulk struct {
	config
	err      error
	builders []*DayAvailabilityCreate
}

// Save creates the DayAvailability entities in the database.
func (_c *DayAvailabilityCreateBulk) Save(ctx context.Context) ([]*DayAvailability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DayAvailability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DayAvailabilityMutation)
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
func (_c *DayAvailabilityCreateBulk) SaveX(ctx context.Context) []*DayAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DayAvailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DayAvailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
