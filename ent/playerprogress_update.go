// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/methkalz/quizkit/ent/playerprogress"
	"github.com/methkalz/quizkit/ent/predicate"
)

// PlayerProgressUpdate is the builder for updating PlayerProgress entities.
type PlayerProgressUpdate struct {
	config
	hooks    []Hook
	mutation *PlayerProgressMutation
}

// Where appends a list predicates to the PlayerProgressUpdate builder.
func (_u *PlayerProgressUpdate) Where(ps ...predicate.PlayerProgress) *PlayerProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlayerProgressUpdate) SetUserID(v string) *PlayerProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableUserID(v *string) *PlayerProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PlayerProgressUpdate) SetLessonID(v string) *PlayerProgressUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableLessonID(v *string) *PlayerProgressUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *PlayerProgressUpdate) SetBestScore(v int) *PlayerProgressUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableBestScore(v *int) *PlayerProgressUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *PlayerProgressUpdate) AddBestScore(v int) *PlayerProgressUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *PlayerProgressUpdate) SetMaxScore(v int) *PlayerProgressUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableMaxScore(v *int) *PlayerProgressUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *PlayerProgressUpdate) AddMaxScore(v int) *PlayerProgressUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *PlayerProgressUpdate) SetAttemptCount(v int) *PlayerProgressUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableAttemptCount(v *int) *PlayerProgressUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *PlayerProgressUpdate) AddAttemptCount(v int) *PlayerProgressUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *PlayerProgressUpdate) SetUnlocked(v bool) *PlayerProgressUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableUnlocked(v *bool) *PlayerProgressUpdate {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlayerProgressUpdate) SetCompletedAt(v time.Time) *PlayerProgressUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlayerProgressUpdate) SetNillableCompletedAt(v *time.Time) *PlayerProgressUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlayerProgressUpdate) ClearCompletedAt() *PlayerProgressUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerProgressUpdate) SetUpdatedAt(v time.Time) *PlayerProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerProgressMutation object of the builder.
func (_u *PlayerProgressUpdate) Mutation() *PlayerProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlayerProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlayerProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := playerprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := playerprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerprogress.Table, playerprogress.Columns, sqlgraph.NewFieldSpec(playerprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(playerprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(playerprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(playerprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(playerprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(playerprogress.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(playerprogress.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(playerprogress.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(playerprogress.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(playerprogress.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(playerprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(playerprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlayerProgressUpdateOne is the builder for updating a single PlayerProgress entity.
type PlayerProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlayerProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *PlayerProgressUpdateOne) SetUserID(v string) *PlayerProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableUserID(v *string) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *PlayerProgressUpdateOne) SetLessonID(v string) *PlayerProgressUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableLessonID(v *string) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *PlayerProgressUpdateOne) SetBestScore(v int) *PlayerProgressUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableBestScore(v *int) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *PlayerProgressUpdateOne) AddBestScore(v int) *PlayerProgressUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *PlayerProgressUpdateOne) SetMaxScore(v int) *PlayerProgressUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableMaxScore(v *int) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *PlayerProgressUpdateOne) AddMaxScore(v int) *PlayerProgressUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *PlayerProgressUpdateOne) SetAttemptCount(v int) *PlayerProgressUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableAttemptCount(v *int) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *PlayerProgressUpdateOne) AddAttemptCount(v int) *PlayerProgressUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *PlayerProgressUpdateOne) SetUnlocked(v bool) *PlayerProgressUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableUnlocked(v *bool) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlayerProgressUpdateOne) SetCompletedAt(v time.Time) *PlayerProgressUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlayerProgressUpdateOne) SetNillableCompletedAt(v *time.Time) *PlayerProgressUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlayerProgressUpdateOne) ClearCompletedAt() *PlayerProgressUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlayerProgressUpdateOne) SetUpdatedAt(v time.Time) *PlayerProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlayerProgressMutation object of the builder.
func (_u *PlayerProgressUpdateOne) Mutation() *PlayerProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlayerProgressUpdate builder.
func (_u *PlayerProgressUpdateOne) Where(ps ...predicate.PlayerProgress) *PlayerProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlayerProgressUpdateOne) Select(field string, fields ...string) *PlayerProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlayerProgress entity.
func (_u *PlayerProgressUpdateOne) Save(ctx context.Context) (*PlayerProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlayerProgressUpdateOne) SaveX(ctx context.Context) *PlayerProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlayerProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlayerProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlayerProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playerprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlayerProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := playerprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := playerprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlayerProgressUpdateOne) sqlSave(ctx context.Context) (_node *PlayerProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playerprogress.Table, playerprogress.Columns, sqlgraph.NewFieldSpec(playerprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlayerProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playerprogress.FieldID)
		for _, f := range fields {
			if !playerprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playerprogress.FieldID {
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
		_spec.SetField(playerprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(playerprogress.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(playerprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(playerprogress.FieldBestScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(playerprogress.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(playerprogress.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(playerprogress.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(playerprogress.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(playerprogress.FieldUnlocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(playerprogress.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(playerprogress.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playerprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PlayerProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playerprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
