// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mentorly/mentorly_backend/internal/repo/dayavailability"
	"github.com/mentorly/mentorly_backend/internal/repo/predicate"
)

// DayAvailabilityDelete is the builder for deleting a DayAvailability entity.
type DayAvailabilityDelete struct {
	config
	hooks    []Hook
	mutation *DayAvailabilityMutation
}

// Where appends a list predicates to the DayAvailabilityDelete builder.
func (_d *DayAvailabilityDelete) Where(ps ...predicate.DayAvailability) *DayAvailabilityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DayAvailabilityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DayAvailabilityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DayAvailabilityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dayavailability.Table, sqlgraph.NewFieldSpec(dayavailability.FieldID, field.TypeUUID))
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

// DayAvailabilityDeleteOne is the builder for deleting a single DayAvailability entity.
type DayAvailabilityDeleteOne struct {
	_d *DayAvailabilityDelete
}

// Where appends a list predicates to the DayAvailabilityDelete builder.
func (_d *DayAvailabilityDeleteOne) Where(ps ...predicate.DayAvailability) *DayAvailabilityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DayAvailabilityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dayavailability.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DayAvailabilityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
