// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/methkalz/quizkit/ent/playeranalytics"
	"github.com/methkalz/quizkit/ent/predicate"
)

// PlayerAnalyticsDelete is the builder for deleting a PlayerAnalytics entity.
type PlayerAnalyticsDelete struct {
	config
	hooks    []Hook
	mutation *PlayerAnalyticsMutation
}

// Where appends a list predicates to the PlayerAnalyticsDelete builder.
func (_d *PlayerAnalyticsDelete) Where(ps ...predicate.PlayerAnalytics) *PlayerAnalyticsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PlayerAnalyticsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlayerAnalyticsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PlayerAnalyticsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(playeranalytics.Table, sqlgraph.NewFieldSpec(playeranalytics.FieldID, field.TypeInt))
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

// PlayerAnalyticsDeleteOne is the builder for deleting a single PlayerAnalytics entity.
type PlayerAnalyticsDeleteOne struct {
	_d *PlayerAnalyticsDelete
}

// Where appends a list predicates to the PlayerAnalyticsDelete builder.
func (_d *PlayerAnalyticsDeleteOne) Where(ps ...predicate.PlayerAnalytics) *PlayerAnalyticsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PlayerAnalyticsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{playeranalytics.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlayerAnalyticsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
