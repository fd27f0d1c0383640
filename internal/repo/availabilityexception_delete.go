// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mentorly/mentorly_backend/internal/repo/availabilityexception"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// AvailabilityExceptionDelete is the builder for deleting a AvailabilityException entity.
type AvailabilityExceptionDelete struct {
	config
	hooks    []Hook
	mutation *AvailabilityExceptionMutation
}

// Where appends a list predicates to the AvailabilityExceptionDelete builder.
func (_d *AvailabilityExceptionDelete) Where(ps ...predicate.AvailabilityException) *AvailabilityExceptionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AvailabilityExceptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityExceptionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AvailabilityExceptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(availabilityexception.Table, sqlgraph.NewFieldSpec(availabilityexception.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AvailabilityExceptionDeleteOne is the builder for deleting a single AvailabilityException entity.
type AvailabilityExceptionDeleteOne struct {
	_d *AvailabilityExceptionDelete
}

// Where appends a list predicates to the AvailabilityExceptionDelete builder.
func (_d *AvailabilityExceptionDeleteOne) Where(ps ...predicate.AvailabilityException) *AvailabilityExceptionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AvailabilityExceptionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{availabilityexception.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AvailabilityExceptionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
