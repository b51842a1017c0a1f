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
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/schema"
)

// GameSessionCreate is the builder for creating a GameSession entity.
type GameSessionCreate struct {
	config
	mutation *GameSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *GameSessionCreate) SetSessionID(v string) *GameSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GameSessionCreate) SetUserID(v string) *GameSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *GameSessionCreate) SetLessonID(v string) *GameSessionCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *GameSessionCreate) SetQuestions(v []schema.SessionQuestion) *GameSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *GameSessionCreate) SetCurrentIndex(v int) *GameSessionCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableCurrentIndex(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *GameSessionCreate) SetAnswers(v []string) *GameSessionCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetAwardedPoints sets the "awarded_points" field.
func (_c *GameSessionCreate) SetAwardedPoints(v []int) *GameSessionCreate {
	_c.mutation.SetAwardedPoints(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GameSessionCreate) SetScore(v int) *GameSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableScore(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetMistakeCount sets the "mistake_count" field.
func (_c *GameSessionCreate) SetMistakeCount(v int) *GameSessionCreate {
	_c.mutation.SetMistakeCount(v)
	return _c
}

// SetNillableMistakeCount sets the "mistake_count" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableMistakeCount(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetMistakeCount(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *GameSessionCreate) SetHintsUsed(v int) *GameSessionCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableHintsUsed(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (_c *GameSessionCreate) SetHintsPerQuestion(v []int) *GameSessionCreate {
	_c.mutation.SetHintsPerQuestion(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GameSessionCreate) SetStartedAt(v time.Time) *GameSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableStartedAt(v *time.Time) *GameSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *GameSessionCreate) SetEndedAt(v time.Time) *GameSessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableEndedAt(v *time.Time) *GameSessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *GameSessionCreate) SetCompleted(v bool) *GameSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableCompleted(v *bool) *GameSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// Mutation returns the GameSessionMutation object of the builder.
func (_c *GameSessionCreate) Mutation() *GameSessionMutation {
	return _c.mutation
}

// Save creates the GameSession in the database.
func (_c *GameSessionCreate) Save(ctx context.Context) (*GameSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameSessionCreate) SaveX(ctx context.Context) *GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameSessionCreate) defaults() {
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := gamesession.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := gamesession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.MistakeCount(); !ok {
		v := gamesession.DefaultMistakeCount
		_c.mutation.SetMistakeCount(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := gamesession.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := gamesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := gamesession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GameSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gamesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GameSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := gamesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "GameSession.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := gamesession.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "GameSession.questions"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "GameSession.current_index"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "GameSession.answers"`)}
	}
	if _, ok := _c.mutation.AwardedPoints(); !ok {
		return &ValidationError{Name: "awarded_points", err: errors.New(`ent: missing required field "GameSession.awarded_points"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GameSession.score"`)}
	}
	if _, ok := _c.mutation.MistakeCount(); !ok {
		return &ValidationError{Name: "mistake_count", err: errors.New(`ent: missing required field "GameSession.mistake_count"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "GameSession.hints_used"`)}
	}
	if _, ok := _c.mutation.HintsPerQuestion(); !ok {
		return &ValidationError{Name: "hints_per_question", err: errors.New(`ent: missing required field "GameSession.hints_per_question"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "GameSession.started_at"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "GameSession.completed"`)}
	}
	return nil
}

func (_c *GameSessionCreate) sqlSave(ctx context.Context) (*GameSession, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameSessionCreate) createSpec() (*GameSession, *sqlgraph.CreateSpec) {
	var (
		_node = &GameSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamesession.Table, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gamesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(gamesession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(gamesession.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(gamesession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(gamesession.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(gamesession.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.AwardedPoints(); ok {
		_spec.SetField(gamesession.FieldAwardedPoints, field.TypeJSON, value)
		_node.AwardedPoints = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MistakeCount(); ok {
		_spec.SetField(gamesession.FieldMistakeCount, field.TypeInt, value)
		_node.MistakeCount = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(gamesession.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.HintsPerQuestion(); ok {
		_spec.SetField(gamesession.FieldHintsPerQuestion, field.TypeJSON, value)
		_node.HintsPerQuestion = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(gamesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(gamesession.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameSession.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *GameSessionCreate) OnConflict(opts ...sql.ConflictOption) *GameSessionUpsertOne {
	_c.conflict = opts
	return &GameSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameSessionCreate) OnConflictColumns(columns ...string) *GameSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameSessionUpsertOne{
		create: _c,
	}
}

type (
	// GameSessionUpsertOne is the builder for "upsert"-ing
	//  one GameSession node.
	GameSessionUpsertOne struct {
		create *GameSessionCreate
	}

	// GameSessionUpsert is the "OnConflict" setter.
	GameSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *GameSessionUpsert) SetUserID(v string) *GameSessionUpsert {
	u.Set(gamesession.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateUserID() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldUserID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *GameSessionUpsert) SetLessonID(v string) *GameSessionUpsert {
	u.Set(gamesession.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateLessonID() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldLessonID)
	return u
}

// SetQuestions sets the "questions" field.
func (u *GameSessionUpsert) SetQuestions(v []schema.SessionQuestion) *GameSessionUpsert {
	u.Set(gamesession.FieldQuestions, v)
	return u
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateQuestions() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldQuestions)
	return u
}

// SetCurrentIndex sets the "current_index" field.
func (u *GameSessionUpsert) SetCurrentIndex(v int) *GameSessionUpsert {
	u.Set(gamesession.FieldCurrentIndex, v)
	return u
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateCurrentIndex() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldCurrentIndex)
	return u
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *GameSessionUpsert) AddCurrentIndex(v int) *GameSessionUpsert {
	u.Add(gamesession.FieldCurrentIndex, v)
	return u
}

// SetAnswers sets the "answers" field.
func (u *GameSessionUpsert) SetAnswers(v []string) *GameSessionUpsert {
	u.Set(gamesession.FieldAnswers, v)
	return u
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateAnswers() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldAnswers)
	return u
}

// SetAwardedPoints sets the "awarded_points" field.
func (u *GameSessionUpsert) SetAwardedPoints(v []int) *GameSessionUpsert {
	u.Set(gamesession.FieldAwardedPoints, v)
	return u
}

// UpdateAwardedPoints sets the "awarded_points" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateAwardedPoints() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldAwardedPoints)
	return u
}

// SetScore sets the "score" field.
func (u *GameSessionUpsert) SetScore(v int) *GameSessionUpsert {
	u.Set(gamesession.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateScore() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *GameSessionUpsert) AddScore(v int) *GameSessionUpsert {
	u.Add(gamesession.FieldScore, v)
	return u
}

// SetMistakeCount sets the "mistake_count" field.
func (u *GameSessionUpsert) SetMistakeCount(v int) *GameSessionUpsert {
	u.Set(gamesession.FieldMistakeCount, v)
	return u
}

// UpdateMistakeCount sets the "mistake_count" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateMistakeCount() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldMistakeCount)
	return u
}

// AddMistakeCount adds v to the "mistake_count" field.
func (u *GameSessionUpsert) AddMistakeCount(v int) *GameSessionUpsert {
	u.Add(gamesession.FieldMistakeCount, v)
	return u
}

// SetHintsUsed sets the "hints_used" field.
func (u *GameSessionUpsert) SetHintsUsed(v int) *GameSessionUpsert {
	u.Set(gamesession.FieldHintsUsed, v)
	return u
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateHintsUsed() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldHintsUsed)
	return u
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *GameSessionUpsert) AddHintsUsed(v int) *GameSessionUpsert {
	u.Add(gamesession.FieldHintsUsed, v)
	return u
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (u *GameSessionUpsert) SetHintsPerQuestion(v []int) *GameSessionUpsert {
	u.Set(gamesession.FieldHintsPerQuestion, v)
	return u
}

// UpdateHintsPerQuestion sets the "hints_per_question" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateHintsPerQuestion() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldHintsPerQuestion)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *GameSessionUpsert) SetEndedAt(v time.Time) *GameSessionUpsert {
	u.Set(gamesession.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateEndedAt() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *GameSessionUpsert) ClearEndedAt() *GameSessionUpsert {
	u.SetNull(gamesession.FieldEndedAt)
	return u
}

// SetCompleted sets the "completed" field.
func (u *GameSessionUpsert) SetCompleted(v bool) *GameSessionUpsert {
	u.Set(gamesession.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *GameSessionUpsert) UpdateCompleted() *GameSessionUpsert {
	u.SetExcluded(gamesession.FieldCompleted)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.GameSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GameSessionUpsertOne) UpdateNewValues() *GameSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(gamesession.FieldSessionID)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(gamesession.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GameSessionUpsertOne) Ignore() *GameSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameSessionUpsertOne) DoNothing() *GameSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameSessionCreate.OnConflict
// documentation for more info.
func (u *GameSessionUpsertOne) Update(set func(*GameSessionUpsert)) *GameSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *GameSessionUpsertOne) SetUserID(v string) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateUserID() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *GameSessionUpsertOne) SetLessonID(v string) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateLessonID() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateLessonID()
	})
}

// SetQuestions sets the "questions" field.
func (u *GameSessionUpsertOne) SetQuestions(v []schema.SessionQuestion) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateQuestions() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateQuestions()
	})
}

// SetCurrentIndex sets the "current_index" field.
func (u *GameSessionUpsertOne) SetCurrentIndex(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetCurrentIndex(v)
	})
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *GameSessionUpsertOne) AddCurrentIndex(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddCurrentIndex(v)
	})
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateCurrentIndex() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateCurrentIndex()
	})
}

// SetAnswers sets the "answers" field.
func (u *GameSessionUpsertOne) SetAnswers(v []string) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateAnswers() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateAnswers()
	})
}

// SetAwardedPoints sets the "awarded_points" field.
func (u *GameSessionUpsertOne) SetAwardedPoints(v []int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetAwardedPoints(v)
	})
}

// UpdateAwardedPoints sets the "awarded_points" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateAwardedPoints() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateAwardedPoints()
	})
}

// SetScore sets the "score" field.
func (u *GameSessionUpsertOne) SetScore(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *GameSessionUpsertOne) AddScore(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateScore() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateScore()
	})
}

// SetMistakeCount sets the "mistake_count" field.
func (u *GameSessionUpsertOne) SetMistakeCount(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetMistakeCount(v)
	})
}

// AddMistakeCount adds v to the "mistake_count" field.
func (u *GameSessionUpsertOne) AddMistakeCount(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddMistakeCount(v)
	})
}

// UpdateMistakeCount sets the "mistake_count" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateMistakeCount() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateMistakeCount()
	})
}

// SetHintsUsed sets the "hints_used" field.
func (u *GameSessionUpsertOne) SetHintsUsed(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetHintsUsed(v)
	})
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *GameSessionUpsertOne) AddHintsUsed(v int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddHintsUsed(v)
	})
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateHintsUsed() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateHintsUsed()
	})
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (u *GameSessionUpsertOne) SetHintsPerQuestion(v []int) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetHintsPerQuestion(v)
	})
}

// UpdateHintsPerQuestion sets the "hints_per_question" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateHintsPerQuestion() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateHintsPerQuestion()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *GameSessionUpsertOne) SetEndedAt(v time.Time) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateEndedAt() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *GameSessionUpsertOne) ClearEndedAt() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetCompleted sets the "completed" field.
func (u *GameSessionUpsertOne) SetCompleted(v bool) *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *GameSessionUpsertOne) UpdateCompleted() *GameSessionUpsertOne {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *GameSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GameSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GameSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GameSessionCreateBulk is the builder for creating many GameSession entities in bulk.
type GameSessionCreateBulk struct {
	config
	err      error
	builders []*GameSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the GameSession entities in the database.
func (_c *GameSessionCreateBulk) Save(ctx context.Context) ([]*GameSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameSessionMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *GameSessionCreateBulk) SaveX(ctx context.Context) []*GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GameSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GameSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *GameSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *GameSessionUpsertBulk {
	_c.conflict = opts
	return &GameSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GameSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GameSessionCreateBulk) OnConflictColumns(columns ...string) *GameSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GameSessionUpsertBulk{
		create: _c,
	}
}

// GameSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of GameSession nodes.
type GameSessionUpsertBulk struct {
	create *GameSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GameSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *GameSessionUpsertBulk) UpdateNewValues() *GameSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(gamesession.FieldSessionID)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(gamesession.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GameSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GameSessionUpsertBulk) Ignore() *GameSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GameSessionUpsertBulk) DoNothing() *GameSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GameSessionCreateBulk.OnConflict
// documentation for more info.
func (u *GameSessionUpsertBulk) Update(set func(*GameSessionUpsert)) *GameSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GameSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *GameSessionUpsertBulk) SetUserID(v string) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateUserID() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *GameSessionUpsertBulk) SetLessonID(v string) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateLessonID() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateLessonID()
	})
}

// SetQuestions sets the "questions" field.
func (u *GameSessionUpsertBulk) SetQuestions(v []schema.SessionQuestion) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetQuestions(v)
	})
}

// UpdateQuestions sets the "questions" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateQuestions() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateQuestions()
	})
}

// SetCurrentIndex sets the "current_index" field.
func (u *GameSessionUpsertBulk) SetCurrentIndex(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetCurrentIndex(v)
	})
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *GameSessionUpsertBulk) AddCurrentIndex(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddCurrentIndex(v)
	})
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateCurrentIndex() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateCurrentIndex()
	})
}

// SetAnswers sets the "answers" field.
func (u *GameSessionUpsertBulk) SetAnswers(v []string) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetAnswers(v)
	})
}

// UpdateAnswers sets the "answers" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateAnswers() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateAnswers()
	})
}

// SetAwardedPoints sets the "awarded_points" field.
func (u *GameSessionUpsertBulk) SetAwardedPoints(v []int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetAwardedPoints(v)
	})
}

// UpdateAwardedPoints sets the "awarded_points" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateAwardedPoints() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateAwardedPoints()
	})
}

// SetScore sets the "score" field.
func (u *GameSessionUpsertBulk) SetScore(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *GameSessionUpsertBulk) AddScore(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateScore() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateScore()
	})
}

// SetMistakeCount sets the "mistake_count" field.
func (u *GameSessionUpsertBulk) SetMistakeCount(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetMistakeCount(v)
	})
}

// AddMistakeCount adds v to the "mistake_count" field.
func (u *GameSessionUpsertBulk) AddMistakeCount(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddMistakeCount(v)
	})
}

// UpdateMistakeCount sets the "mistake_count" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateMistakeCount() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateMistakeCount()
	})
}

// SetHintsUsed sets the "hints_used" field.
func (u *GameSessionUpsertBulk) SetHintsUsed(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetHintsUsed(v)
	})
}

// AddHintsUsed adds v to the "hints_used" field.
func (u *GameSessionUpsertBulk) AddHintsUsed(v int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.AddHintsUsed(v)
	})
}

// UpdateHintsUsed sets the "hints_used" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateHintsUsed() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateHintsUsed()
	})
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (u *GameSessionUpsertBulk) SetHintsPerQuestion(v []int) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetHintsPerQuestion(v)
	})
}

// UpdateHintsPerQuestion sets the "hints_per_question" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateHintsPerQuestion() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateHintsPerQuestion()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *GameSessionUpsertBulk) SetEndedAt(v time.Time) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateEndedAt() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *GameSessionUpsertBulk) ClearEndedAt() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetCompleted sets the "completed" field.
func (u *GameSessionUpsertBulk) SetCompleted(v bool) *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *GameSessionUpsertBulk) UpdateCompleted() *GameSessionUpsertBulk {
	return u.Update(func(s *GameSessionUpsert) {
		s.UpdateCompleted()
	})
}

// Exec executes the query.
func (u *GameSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GameSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GameSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GameSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
