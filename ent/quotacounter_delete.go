// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/predicate"
	"github.com/jeevibe/engine/ent/quotacounter"
)

// QuotaCounterDelete is the builder for deleting a QuotaCounter entity.
type QuotaCounterDelete struct {
	config
	hooks    []Hook
	mutation *QuotaCounterMutation
}

// Where appends a list predicates to the QuotaCounterDelete builder.
func (_d *QuotaCounterDelete) Where(ps ...predicate.QuotaCounter) *QuotaCounterDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuotaCounterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuotaCounterDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuotaCounterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quotacounter.Table, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeInt))
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

// QuotaCounterDeleteOne is the builder for deleting a single QuotaCounter entity.
type QuotaCounterDeleteOne struct {
	_d *QuotaCounterDelete
}

// Where appends a list predicates to the QuotaCounterDelete builder.
func (_d *QuotaCounterDeleteOne) Where(ps ...predicate.QuotaCounter) *QuotaCounterDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuotaCounterDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quotacounter.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuotaCounterDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
