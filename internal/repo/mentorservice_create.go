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
	"github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
)

// MentorServiceCreate is the builder for creating a MentorService entity.
type MentorServiceCreate struct {
	config
	mutation *MentorServiceMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *MentorServiceCreate) SetCreatedAt(v time.Time) *MentorServiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableCreatedAt(v *time.Time) *MentorServiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MentorServiceCreate) SetUpdatedAt(v time.Time) *MentorServiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableUpdatedAt(v *time.Time) *MentorServiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *MentorServiceCreate) SetDeletedAt(v time.Time) *MentorServiceCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableDeletedAt(v *time.Time) *MentorServiceCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *MentorServiceCreate) SetMentorID(v uuid.UUID) *MentorServiceCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *MentorServiceCreate) SetKind(v mentorservice.Kind) *MentorServiceCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableKind(v *mentorservice.Kind) *MentorServiceCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *MentorServiceCreate) SetDescription(v string) *MentorServiceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableDescription(v *string) *MentorServiceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSessionMinutes sets the "session_minutes" field.
func (_c *MentorServiceCreate) SetSessionMinutes(v int) *MentorServiceCreate {
	_c.mutation.SetSessionMinutes(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MentorServiceCreate) SetID(v uuid.UUID) *MentorServiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MentorServiceCreate) SetNillableID(v *uuid.UUID) *MentorServiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MentorServiceMutation object of the builder.
func (_c *MentorServiceCreate) Mutation() *MentorServiceMutation {
	return _c.mutation
}

// Save creates the MentorService in the database.
func (_c *MentorServiceCreate) Save(ctx context.Context) (*MentorService, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentorServiceCreate) SaveX(ctx context.Context) *MentorService {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentorServiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentorServiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentorServiceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mentorservice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mentorservice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := mentorservice.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mentorservice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentorServiceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MentorService.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MentorService.updated_at"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`repo: missing required field "MentorService.mentor_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "MentorService.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := mentorservice.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "MentorService.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionMinutes(); !ok {
		return &ValidationError{Name: "session_minutes", err: errors.New(`repo: missing required field "MentorService.session_minutes"`)}
	}
	return nil
}

func (_c *MentorServiceCreate) sqlSave(ctx context.Context) (*MentorService, error) {
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

func (_c *MentorServiceCreate) createSpec() (*MentorService, *sqlgraph.CreateSpec) {
	var (
		_node = &MentorService{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentorservice.Table, sqlgraph.NewFieldSpec(mentorservice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mentorservice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mentorservice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(mentorservice.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(mentorservice.FieldMentorID, field.TypeUUID, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(mentorservice.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mentorservice.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.SessionMinutes(); ok {
		_spec.SetField(mentorservice.FieldSessionMinutes, field.TypeInt, value)
		_node.SessionMinutes = value
	}
	return _node, _spec
}

// MentorServiceCreateBulk is the builder for creating many MentorService entities in bulk.
type MentorServiceCreateBulk struct {
	config
	err      error
	builders []*MentorServiceCreate
}

// Save creates the MentorService entities in the database.
func (_c *MentorServiceCreateBulk) Save(ctx context.Context) ([]*MentorService, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentorService, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentorServiceMutation)
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
func (_c *MentorServiceCreateBulk) SaveX(ctx context.Context) []*MentorService {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentorServiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentorServiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
