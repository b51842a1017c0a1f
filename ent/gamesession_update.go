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
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/predicate"
	"github.com/methkalz/quizkit/ent/schema"
)

// GameSessionUpdate is the builder for updating GameSession entities.
type GameSessionUpdate struct {
	config
	hooks    []Hook
	mutation *GameSessionMutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdate) Where(ps ...predicate.GameSession) *GameSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GameSessionUpdate) SetUserID(v string) *GameSessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableUserID(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *GameSessionUpdate) SetLessonID(v string) *GameSessionUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableLessonID(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *GameSessionUpdate) SetQuestions(v []schema.SessionQuestion) *GameSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *GameSessionUpdate) AppendQuestions(v []schema.SessionQuestion) *GameSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *GameSessionUpdate) SetCurrentIndex(v int) *GameSessionUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableCurrentIndex(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *GameSessionUpdate) AddCurrentIndex(v int) *GameSessionUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *GameSessionUpdate) SetAnswers(v []string) *GameSessionUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *GameSessionUpdate) AppendAnswers(v []string) *GameSessionUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetAwardedPoints sets the "awarded_points" field.
func (_u *GameSessionUpdate) SetAwardedPoints(v []int) *GameSessionUpdate {
	_u.mutation.SetAwardedPoints(v)
	return _u
}

// AppendAwardedPoints appends value to the "awarded_points" field.
func (_u *GameSessionUpdate) AppendAwardedPoints(v []int) *GameSessionUpdate {
	_u.mutation.AppendAwardedPoints(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *GameSessionUpdate) SetScore(v int) *GameSessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableScore(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameSessionUpdate) AddScore(v int) *GameSessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMistakeCount sets the "mistake_count" field.
func (_u *GameSessionUpdate) SetMistakeCount(v int) *GameSessionUpdate {
	_u.mutation.ResetMistakeCount()
	_u.mutation.SetMistakeCount(v)
	return _u
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableMistakeCount(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetMistakeCount(*v)
	}
	return _u
}

// AddMistakeCount adds value to the "mistake_count" field.
func (_u *GameSessionUpdate) AddMistakeCount(v int) *GameSessionUpdate {
	_u.mutation.AddMistakeCount(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *GameSessionUpdate) SetHintsUsed(v int) *GameSessionUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableHintsUsed(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *GameSessionUpdate) AddHintsUsed(v int) *GameSessionUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (_u *GameSessionUpdate) SetHintsPerQuestion(v []int) *GameSessionUpdate {
	_u.mutation.SetHintsPerQuestion(v)
	return _u
}

// AppendHintsPerQuestion appends value to the "hints_per_question" field.
func (_u *GameSessionUpdate) AppendHintsPerQuestion(v []int) *GameSessionUpdate {
	_u.mutation.AppendHintsPerQuestion(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *GameSessionUpdate) SetEndedAt(v time.Time) *GameSessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableEndedAt(v *time.Time) *GameSessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *GameSessionUpdate) ClearEndedAt() *GameSessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *GameSessionUpdate) SetCompleted(v bool) *GameSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableCompleted(v *bool) *GameSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdate) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameSessionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := gamesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := gamesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GameSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(gamesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(gamesession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(gamesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(gamesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(gamesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(gamesession.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.AwardedPoints(); ok {
		_spec.SetField(gamesession.FieldAwardedPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAwardedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldAwardedPoints, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MistakeCount(); ok {
		_spec.SetField(gamesession.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakeCount(); ok {
		_spec.AddField(gamesession.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(gamesession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(gamesession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsPerQuestion(); ok {
		_spec.SetField(gamesession.FieldHintsPerQuestion, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHintsPerQuestion(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldHintsPerQuestion, value)
		})
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(gamesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(gamesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameSessionUpdateOne is the builder for updating a single GameSession entity.
type GameSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *GameSessionUpdateOne) SetUserID(v string) *GameSessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableUserID(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *GameSessionUpdateOne) SetLessonID(v string) *GameSessionUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableLessonID(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *GameSessionUpdateOne) SetQuestions(v []schema.SessionQuestion) *GameSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *GameSessionUpdateOne) AppendQuestions(v []schema.SessionQuestion) *GameSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *GameSessionUpdateOne) SetCurrentIndex(v int) *GameSessionUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableCurrentIndex(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *GameSessionUpdateOne) AddCurrentIndex(v int) *GameSessionUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *GameSessionUpdateOne) SetAnswers(v []string) *GameSessionUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *GameSessionUpdateOne) AppendAnswers(v []string) *GameSessionUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetAwardedPoints sets the "awarded_points" field.
func (_u *GameSessionUpdateOne) SetAwardedPoints(v []int) *GameSessionUpdateOne {
	_u.mutation.SetAwardedPoints(v)
	return _u
}

// AppendAwardedPoints appends value to the "awarded_points" field.
func (_u *GameSessionUpdateOne) AppendAwardedPoints(v []int) *GameSessionUpdateOne {
	_u.mutation.AppendAwardedPoints(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *GameSessionUpdateOne) SetScore(v int) *GameSessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableScore(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameSessionUpdateOne) AddScore(v int) *GameSessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMistakeCount sets the "mistake_count" field.
func (_u *GameSessionUpdateOne) SetMistakeCount(v int) *GameSessionUpdateOne {
	_u.mutation.ResetMistakeCount()
	_u.mutation.SetMistakeCount(v)
	return _u
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableMistakeCount(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetMistakeCount(*v)
	}
	return _u
}

// AddMistakeCount adds value to the "mistake_count" field.
func (_u *GameSessionUpdateOne) AddMistakeCount(v int) *GameSessionUpdateOne {
	_u.mutation.AddMistakeCount(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *GameSessionUpdateOne) SetHintsUsed(v int) *GameSessionUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableHintsUsed(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *GameSessionUpdateOne) AddHintsUsed(v int) *GameSessionUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (_u *GameSessionUpdateOne) SetHintsPerQuestion(v []int) *GameSessionUpdateOne {
	_u.mutation.SetHintsPerQuestion(v)
	return _u
}

// AppendHintsPerQuestion appends value to the "hints_per_question" field.
func (_u *GameSessionUpdateOne) AppendHintsPerQuestion(v []int) *GameSessionUpdateOne {
	_u.mutation.AppendHintsPerQuestion(v)
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *GameSessionUpdateOne) SetEndedAt(v time.Time) *GameSessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableEndedAt(v *time.Time) *GameSessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *GameSessionUpdateOne) ClearEndedAt() *GameSessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *GameSessionUpdateOne) SetCompleted(v bool) *GameSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableCompleted(v *bool) *GameSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdateOne) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdateOne) Where(ps ...predicate.GameSession) *GameSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameSessionUpdateOne) Select(field string, fields ...string) *GameSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameSession entity.
func (_u *GameSessionUpdateOne) Save(ctx context.Context) (*GameSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdateOne) SaveX(ctx context.Context) *GameSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameSessionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := gamesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := gamesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GameSessionUpdateOne) sqlSave(ctx context.Context) (_node *GameSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamesession.FieldID)
		for _, f := range fields {
			if !gamesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gamesession.FieldID {
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
		_spec.SetField(gamesession.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(gamesession.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(gamesession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(gamesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(gamesession.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(gamesession.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.AwardedPoints(); ok {
		_spec.SetField(gamesession.FieldAwardedPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAwardedPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldAwardedPoints, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MistakeCount(); ok {
		_spec.SetField(gamesession.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakeCount(); ok {
		_spec.AddField(gamesession.FieldMistakeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(gamesession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(gamesession.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsPerQuestion(); ok {
		_spec.SetField(gamesession.FieldHintsPerQuestion, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHintsPerQuestion(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gamesession.FieldHintsPerQuestion, value)
		})
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(gamesession.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(gamesession.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
	}
	_node = &GameSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
