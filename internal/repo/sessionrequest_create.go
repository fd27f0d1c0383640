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
	"github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
)

// SessionRequestCreate is the builder for creating a SessionRequest entity.
type SessionRequestCreate struct {
	config
	mutation *SessionRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionRequestCreate) SetCreatedAt(v time.Time) *SessionRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableCreatedAt(v *time.Time) *SessionRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionRequestCreate) SetUpdatedAt(v time.Time) *SessionRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableUpdatedAt(v *time.Time) *SessionRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetServiceID sets the "service_id" field.
func (_c *SessionRequestCreate) SetServiceID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetServiceID(v)
	return _c
}

// SetMentorID sets the "mentor_id" field.
func (_c *SessionRequestCreate) SetMentorID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetMentorID(v)
	return _c
}

// SetMenteeID sets the "mentee_id" field.
func (_c *SessionRequestCreate) SetMenteeID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetMenteeID(v)
	return _c
}

// SetCommunityID sets the "community_id" field.
func (_c *SessionRequestCreate) SetCommunityID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetCommunityID(v)
	return _c
}

// SetNillableCommunityID sets the "community_id" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableCommunityID(v *uuid.UUID) *SessionRequestCreate {
	if v != nil {
		_c.SetCommunityID(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *SessionRequestCreate) SetDate(v time.Time) *SessionRequestCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetStartHour sets the "start_hour" field.
func (_c *SessionRequestCreate) SetStartHour(v int8) *SessionRequestCreate {
	_c.mutation.SetStartHour(v)
	return _c
}

// SetStartMinute sets the "start_minute" field.
func (_c *SessionRequestCreate) SetStartMinute(v int8) *SessionRequestCreate {
	_c.mutation.SetStartMinute(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *SessionRequestCreate) SetDurationMinutes(v int) *SessionRequestCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionRequestCreate) SetStatus(v sessionrequest.Status) *SessionRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableStatus(v *sessionrequest.Status) *SessionRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgenda sets the "agenda" field.
func (_c *SessionRequestCreate) SetAgenda(v string) *SessionRequestCreate {
	_c.mutation.SetAgenda(v)
	return _c
}

// SetNillableAgenda sets the "agenda" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableAgenda(v *string) *SessionRequestCreate {
	if v != nil {
		_c.SetAgenda(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionRequestCreate) SetID(v uuid.UUID) *SessionRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionRequestCreate) SetNillableID(v *uuid.UUID) *SessionRequestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionRequestMutation object of the builder.
func (_c *SessionRequestCreate) Mutation() *SessionRequestMutation {
	return _c.mutation
}

// Save creates the SessionRequest in the database.
func (_c *SessionRequestCreate) Save(ctx context.Context) (*SessionRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRequestCreate) SaveX(ctx context.Context) *SessionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionrequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sessionrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := sessionrequest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SessionRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "SessionRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.ServiceID(); !ok {
		return &ValidationError{Name: "service_id", err: errors.New(`repo: missing required field "SessionRequest.service_id"`)}
	}
	if _, ok := _c.mutation.MentorID(); !ok {
		return &ValidationError{Name: "mentor_id", err: errors.New(`repo: missing required field "SessionRequest.mentor_id"`)}
	}
	if _, ok := _c.mutation.MenteeID(); !ok {
		return &ValidationError{Name: "mentee_id", err: errors.New(`repo: missing required field "SessionRequest.mentee_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "SessionRequest.date"`)}
	}
	if _, ok := _c.mutation.StartHour(); !ok {
		return &ValidationError{Name: "start_hour", err: errors.New(`repo: missing required field "SessionRequest.start_hour"`)}
	}
	if _, ok := _c.mutation.StartMinute(); !ok {
		return &ValidationError{Name: "start_minute", err: errors.New(`repo: missing required field "SessionRequest.start_minute"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`repo: missing required field "SessionRequest.duration_minutes"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "SessionRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sessionrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SessionRequest.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionRequestCreate) sqlSave(ctx context.Context) (*SessionRequest, error) {
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

func (_c *SessionRequestCreate) createSpec() (*SessionRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrequest.Table, sqlgraph.NewFieldSpec(sessionrequest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionrequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ServiceID(); ok {
		_spec.SetField(sessionrequest.FieldServiceID, field.TypeUUID, value)
		_node.ServiceID = value
	}
	if value, ok := _c.mutation.MentorID(); ok {
		_spec.SetField(sessionrequest.FieldMentorID, field.TypeUUID, value)
		_node.MentorID = value
	}
	if value, ok := _c.mutation.MenteeID(); ok {
		_spec.SetField(sessionrequest.FieldMenteeID, field.TypeUUID, value)
		_node.MenteeID = value
	}
	if value, ok := _c.mutation.CommunityID(); ok {
		_spec.SetField(sessionrequest.FieldCommunityID, field.TypeUUID, value)
		_node.CommunityID = &value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(sessionrequest.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.StartHour(); ok {
		_spec.SetField(sessionrequest.FieldStartHour, field.TypeInt8, value)
		_node.StartHour = value
	}
	if value, ok := _c.mutation.StartMinute(); ok {
		_spec.SetField(sessionrequest.FieldStartMinute, field.TypeInt8, value)
		_node.StartMinute = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(sessionrequest.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sessionrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Agenda(); ok {
		_spec.SetField(sessionrequest.FieldAgenda, field.TypeString, value)
		_node.Agenda = value
	}
	return _node, _spec
}

// SessionRequestCreateBulk is the builder for creating many SessionRequest entities in bulk.
type SessionRequestCreateBulk struct {
	config
	err      error
	builders []*SessionRequestCreate
}

// Save creates the SessionRequest entities in the database.
func (_c *SessionRequestCreateBulk) Save(ctx context.Context) ([]*SessionRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRequestMutation)
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
func (_c *SessionRequestCreateBulk) SaveX(ctx context.Context) []*SessionRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
