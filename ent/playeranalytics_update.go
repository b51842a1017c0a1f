// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/methkalz/quizkit/ent/playeranalytics"
	"github.com/methkalz/quizkit/ent/predicate"
)

// PlayerAnalyticsUpdate is the builder for updating PlayerAnalytics entities.
type PlayerAnalyticsUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerAnalyticsMutation
}

// Where appends a list predicates to the PlayerAnalyticsUpdate builder.
func (_u *PlayerAnalyticsUpdate) Where(ps ...predicate.PlayerAnalytics) *PlayerAnalyticsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlayerAnalyticsUpdate) SetUserID(v string) *PlayerAnalyticsUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdate) SetNillableUserID(v *string) *PlayerAnalyticsUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PlayerAnalyticsUpdate) SetLessonID(v string) *PlayerAnalyticsUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdate) SetNillableLessonID(v *string) *PlayerAnalyticsUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (_u *PlayerAnalyticsUpdate) SetAccuracyTrend(v []float64) *PlayerAnalyticsUpdate {
	_u.mutation.SetAccuracyTrend(v)
	return _u
}

// AppendAccuracyTrend appends value to the "accuracy_trend" field.
func (_u *PlayerAnalyticsUpdate) AppendAccuracyTrend(v []float64) *PlayerAnalyticsUpdate {
	_u.mutation.AppendAccuracyTrend(v)
	return _u
}

// SetTimeTrend sets the "time_trend" field.
func (_u *PlayerAnalyticsUpdate) SetTimeTrend(v []float64) *PlayerAnalyticsUpdate {
	_u.mutation.SetTimeTrend(v)
	return _u
}

// AppendTimeTrend appends value to the "time_trend" field.
func (_u *PlayerAnalyticsUpdate) AppendTimeTrend(v []float64) *PlayerAnalyticsUpdate {
	_u.mutation.AppendTimeTrend(v)
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *PlayerAnalyticsUpdate) SetWeakAreas(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *PlayerAnalyticsUpdate) AppendWeakAreas(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *PlayerAnalyticsUpdate) SetStrongAreas(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// AppendStrongAreas appends value to the "strong_areas" field.
func (_u *PlayerAnalyticsUpdate) AppendStrongAreas(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.AppendStrongAreas(v)
	return _u
}

// SetPreferredDirection sets the "preferred_direction" field.
func (_u *PlayerAnalyticsUpdate) SetPreferredDirection(v string) *PlayerAnalyticsUpdate {
	_u.mutation.SetPreferredDirection(v)
	return _u
}

// SetNillablePreferredDirection sets the "preferred_direction" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdate) SetNillablePreferredDirection(v *string) *PlayerAnalyticsUpdate {
	if v != nil {
		_u.SetPreferredDirection(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *PlayerAnalyticsUpdate) SetRecommendations(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *PlayerAnalyticsUpdate) AppendRecommendations(v []string) *PlayerAnalyticsUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerAnalyticsUpdate) SetUpdatedAt(v time.Time) *PlayerAnalyticsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerAnalyticsMutation object of the builder.
func (_u *PlayerAnalyticsUpdate) Mutation() *PlayerAnalyticsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerAnalyticsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerAnalyticsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerAnalyticsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerAnalyticsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerAnalyticsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playeranalytics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerAnalyticsUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := playeranalytics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := playeranalytics.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerAnalyticsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playeranalytics.Table, playeranalytics.Columns, sqlgraph.NewFieldSpec(playeranalytics.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(playeranalytics.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(playeranalytics.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccuracyTrend(); ok {
		_spec.SetField(playeranalytics.FieldAccuracyTrend, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccuracyTrend(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldAccuracyTrend, value)
		})
	}
	if value, ok := _u.mutation.TimeTrend(); ok {
		_spec.SetField(playeranalytics.FieldTimeTrend, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeTrend(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldTimeTrend, value)
		})
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(playeranalytics.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldWeakAreas, value)
		})
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(playeranalytics.FieldStrongAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldStrongAreas, value)
		})
	}
	if value, ok := _u.mutation.PreferredDirection(); ok {
		_spec.SetField(playeranalytics.FieldPreferredDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(playeranalytics.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldRecommendations, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playeranalytics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playeranalytics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerAnalyticsUpdateOne is the builder for updating a single PlayerAnalytics entity.
type PlayerAnalyticsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerAnalyticsMutation
}

// SetUserID sets the "user_id" field.
func (_u *PlayerAnalyticsUpdateOne) SetUserID(v string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdateOne) SetNillableUserID(v *string) *PlayerAnalyticsUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PlayerAnalyticsUpdateOne) SetLessonID(v string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdateOne) SetNillableLessonID(v *string) *PlayerAnalyticsUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (_u *PlayerAnalyticsUpdateOne) SetAccuracyTrend(v []float64) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetAccuracyTrend(v)
	return _u
}

// AppendAccuracyTrend appends value to the "accuracy_trend" field.
func (_u *PlayerAnalyticsUpdateOne) AppendAccuracyTrend(v []float64) *PlayerAnalyticsUpdateOne {
	_u.mutation.AppendAccuracyTrend(v)
	return _u
}

// SetTimeTrend sets the "time_trend" field.
func (_u *PlayerAnalyticsUpdateOne) SetTimeTrend(v []float64) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetTimeTrend(v)
	return _u
}

// AppendTimeTrend appends value to the "time_trend" field.
func (_u *PlayerAnalyticsUpdateOne) AppendTimeTrend(v []float64) *PlayerAnalyticsUpdateOne {
	_u.mutation.AppendTimeTrend(v)
	return _u
}

// SetWeakAreas sets the "weak_areas" field.
func (_u *PlayerAnalyticsUpdateOne) SetWeakAreas(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetWeakAreas(v)
	return _u
}

// AppendWeakAreas appends value to the "weak_areas" field.
func (_u *PlayerAnalyticsUpdateOne) AppendWeakAreas(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.AppendWeakAreas(v)
	return _u
}

// SetStrongAreas sets the "strong_areas" field.
func (_u *PlayerAnalyticsUpdateOne) SetStrongAreas(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetStrongAreas(v)
	return _u
}

// AppendStrongAreas appends value to the "strong_areas" field.
func (_u *PlayerAnalyticsUpdateOne) AppendStrongAreas(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.AppendStrongAreas(v)
	return _u
}

// SetPreferredDirection sets the "preferred_direction" field.
func (_u *PlayerAnalyticsUpdateOne) SetPreferredDirection(v string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetPreferredDirection(v)
	return _u
}

// SetNillablePreferredDirection sets the "preferred_direction" field if the given value is not nil.
func (_u *PlayerAnalyticsUpdateOne) SetNillablePreferredDirection(v *string) *PlayerAnalyticsUpdateOne {
	if v != nil {
		_u.SetPreferredDirection(*v)
	}
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *PlayerAnalyticsUpdateOne) SetRecommendations(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *PlayerAnalyticsUpdateOne) AppendRecommendations(v []string) *PlayerAnalyticsUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerAnalyticsUpdateOne) SetUpdatedAt(v time.Time) *PlayerAnalyticsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerAnalyticsMutation object of the builder.
func (_u *PlayerAnalyticsUpdateOne) Mutation() *PlayerAnalyticsMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlayerAnalyticsUpdate builder.
func (_u *PlayerAnalyticsUpdateOne) Where(ps ...predicate.PlayerAnalytics) *PlayerAnalyticsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerAnalyticsUpdateOne) Select(field string, fields ...string) *PlayerAnalyticsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlayerAnalytics entity.
func (_u *PlayerAnalyticsUpdateOne) Save(ctx context.Context) (*PlayerAnalytics, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerAnalyticsUpdateOne) SaveX(ctx context.Context) *PlayerAnalytics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerAnalyticsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerAnalyticsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerAnalyticsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playeranalytics.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerAnalyticsUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := playeranalytics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := playeranalytics.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerAnalyticsUpdateOne) sqlSave(ctx context.Context) (_node *PlayerAnalytics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playeranalytics.Table, playeranalytics.Columns, sqlgraph.NewFieldSpec(playeranalytics.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlayerAnalytics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playeranalytics.FieldID)
		for _, f := range fields {
			if !playeranalytics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playeranalytics.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(playeranalytics.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(playeranalytics.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccuracyTrend(); ok {
		_spec.SetField(playeranalytics.FieldAccuracyTrend, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAccuracyTrend(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldAccuracyTrend, value)
		})
	}
	if value, ok := _u.mutation.TimeTrend(); ok {
		_spec.SetField(playeranalytics.FieldTimeTrend, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeTrend(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldTimeTrend, value)
		})
	}
	if value, ok := _u.mutation.WeakAreas(); ok {
		_spec.SetField(playeranalytics.FieldWeakAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeakAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldWeakAreas, value)
		})
	}
	if value, ok := _u.mutation.StrongAreas(); ok {
		_spec.SetField(playeranalytics.FieldStrongAreas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStrongAreas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldStrongAreas, value)
		})
	}
	if value, ok := _u.mutation.PreferredDirection(); ok {
		_spec.SetField(playeranalytics.FieldPreferredDirection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(playeranalytics.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playeranalytics.FieldRecommendations, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playeranalytics.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PlayerAnalytics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playeranalytics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
