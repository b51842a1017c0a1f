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
)

// PlayerProgressCreate is the builder for creating a PlayerProgress entity.
type PlayerProgressCreate struct {
	config
	mutation *PlayerProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PlayerProgressCreate) SetUserID(v string) *PlayerProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PlayerProgressCreate) SetLessonID(v string) *PlayerProgressCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetBestScore sets the "best_score" field.
func (_c *PlayerProgressCreate) SetBestScore(v int) *PlayerProgressCreate {
	_c.mutation.SetBestScore(v)
	return _c
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableBestScore(v *int) *PlayerProgressCreate {
	if v != nil {
		_c.SetBestScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *PlayerProgressCreate) SetMaxScore(v int) *PlayerProgressCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableMaxScore(v *int) *PlayerProgressCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *PlayerProgressCreate) SetAttemptCount(v int) *PlayerProgressCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableAttemptCount(v *int) *PlayerProgressCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetUnlocked sets the "unlocked" field.
func (_c *PlayerProgressCreate) SetUnlocked(v bool) *PlayerProgressCreate {
	_c.mutation.SetUnlocked(v)
	return _c
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableUnlocked(v *bool) *PlayerProgressCreate {
	if v != nil {
		_c.SetUnlocked(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlayerProgressCreate) SetCompletedAt(v time.Time) *PlayerProgressCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableCompletedAt(v *time.Time) *PlayerProgressCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlayerProgressCreate) SetUpdatedAt(v time.Time) *PlayerProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlayerProgressCreate) SetNillableUpdatedAt(v *time.Time) *PlayerProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PlayerProgressMutation object of the builder.
func (_c *PlayerProgressCreate) Mutation() *PlayerProgressMutation {
	return _c.mutation
}

// Save creates the PlayerProgress in the database.
func (_c *PlayerProgressCreate) Save(ctx context.Context) (*PlayerProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerProgressCreate) SaveX(ctx context.Context) *PlayerProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerProgressCreate) defaults() {
	if _, ok := _c.mutation.BestScore(); !ok {
		v := playerprogress.DefaultBestScore
		_c.mutation.SetBestScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := playerprogress.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := playerprogress.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		v := playerprogress.DefaultUnlocked
		_c.mutation.SetUnlocked(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playerprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlayerProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := playerprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PlayerProgress.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := playerprogress.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerProgress.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BestScore(); !ok {
		return &ValidationError{Name: "best_score", err: errors.New(`ent: missing required field "PlayerProgress.best_score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "PlayerProgress.max_score"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "PlayerProgress.attempt_count"`)}
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		return &ValidationError{Name: "unlocked", err: errors.New(`ent: missing required field "PlayerProgress.unlocked"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlayerProgress.updated_at"`)}
	}
	return nil
}

func (_c *PlayerProgressCreate) sqlSave(ctx context.Context) (*PlayerProgress, error) {
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

func (_c *PlayerProgressCreate) createSpec() (*PlayerProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &PlayerProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playerprogress.Table, sqlgraph.NewFieldSpec(playerprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(playerprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(playerprogress.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.BestScore(); ok {
		_spec.SetField(playerprogress.FieldBestScore, field.TypeInt, value)
		_node.BestScore = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(playerprogress.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(playerprogress.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Unlocked(); ok {
		_spec.SetField(playerprogress.FieldUnlocked, field.TypeBool, value)
		_node.Unlocked = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(playerprogress.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playerprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerProgressCreate) OnConflict(opts ...sql.ConflictOption) *PlayerProgressUpsertOne {
	_c.conflict = opts
	return &PlayerProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerProgressCreate) OnConflictColumns(columns ...string) *PlayerProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerProgressUpsertOne{
		create: _c,
	}
}

type (
	// PlayerProgressUpsertOne is the builder for "upsert"-ing
	//  one PlayerProgress node.
	PlayerProgressUpsertOne struct {
		create *PlayerProgressCreate
	}

	// PlayerProgressUpsert is the "OnConflict" setter.
	PlayerProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PlayerProgressUpsert) SetUserID(v string) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateUserID() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldUserID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerProgressUpsert) SetLessonID(v string) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateLessonID() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldLessonID)
	return u
}

// SetBestScore sets the "best_score" field.
func (u *PlayerProgressUpsert) SetBestScore(v int) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldBestScore, v)
	return u
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateBestScore() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldBestScore)
	return u
}

// AddBestScore adds v to the "best_score" field.
func (u *PlayerProgressUpsert) AddBestScore(v int) *PlayerProgressUpsert {
	u.Add(playerprogress.FieldBestScore, v)
	return u
}

// SetMaxScore sets the "max_score" field.
func (u *PlayerProgressUpsert) SetMaxScore(v int) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldMaxScore, v)
	return u
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateMaxScore() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldMaxScore)
	return u
}

// AddMaxScore adds v to the "max_score" field.
func (u *PlayerProgressUpsert) AddMaxScore(v int) *PlayerProgressUpsert {
	u.Add(playerprogress.FieldMaxScore, v)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *PlayerProgressUpsert) SetAttemptCount(v int) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateAttemptCount() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *PlayerProgressUpsert) AddAttemptCount(v int) *PlayerProgressUpsert {
	u.Add(playerprogress.FieldAttemptCount, v)
	return u
}

// SetUnlocked sets the "unlocked" field.
func (u *PlayerProgressUpsert) SetUnlocked(v bool) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldUnlocked, v)
	return u
}

// UpdateUnlocked sets the "unlocked" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateUnlocked() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldUnlocked)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlayerProgressUpsert) SetCompletedAt(v time.Time) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateCompletedAt() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlayerProgressUpsert) ClearCompletedAt() *PlayerProgressUpsert {
	u.SetNull(playerprogress.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerProgressUpsert) SetUpdatedAt(v time.Time) *PlayerProgressUpsert {
	u.Set(playerprogress.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerProgressUpsert) UpdateUpdatedAt() *PlayerProgressUpsert {
	u.SetExcluded(playerprogress.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerProgressUpsertOne) UpdateNewValues() *PlayerProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlayerProgressUpsertOne) Ignore() *PlayerProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerProgressUpsertOne) DoNothing() *PlayerProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerProgressCreate.OnConflict
// documentation for more info.
func (u *PlayerProgressUpsertOne) Update(set func(*PlayerProgressUpsert)) *PlayerProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlayerProgressUpsertOne) SetUserID(v string) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateUserID() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerProgressUpsertOne) SetLessonID(v string) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateLessonID() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetBestScore sets the "best_score" field.
func (u *PlayerProgressUpsertOne) SetBestScore(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetBestScore(v)
	})
}

// AddBestScore adds v to the "best_score" field.
func (u *PlayerProgressUpsertOne) AddBestScore(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddBestScore(v)
	})
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateBestScore() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateBestScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *PlayerProgressUpsertOne) SetMaxScore(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *PlayerProgressUpsertOne) AddMaxScore(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateMaxScore() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateMaxScore()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *PlayerProgressUpsertOne) SetAttemptCount(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *PlayerProgressUpsertOne) AddAttemptCount(v int) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateAttemptCount() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetUnlocked sets the "unlocked" field.
func (u *PlayerProgressUpsertOne) SetUnlocked(v bool) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUnlocked(v)
	})
}

// UpdateUnlocked sets the "unlocked" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateUnlocked() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUnlocked()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlayerProgressUpsertOne) SetCompletedAt(v time.Time) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateCompletedAt() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlayerProgressUpsertOne) ClearCompletedAt() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerProgressUpsertOne) SetUpdatedAt(v time.Time) *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerProgressUpsertOne) UpdateUpdatedAt() *PlayerProgressUpsertOne {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlayerProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlayerProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlayerProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlayerProgressCreateBulk is the builder for creating many PlayerProgress entities in bulk.
type PlayerProgressCreateBulk struct {
	config
	err      error
	builders []*PlayerProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the PlayerProgress entities in the database.
func (_c *PlayerProgressCreateBulk) Save(ctx context.Context) ([]*PlayerProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlayerProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerProgressMutation)
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
func (_c *PlayerProgressCreateBulk) SaveX(ctx context.Context) []*PlayerProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlayerProgressUpsertBulk {
	_c.conflict = opts
	return &PlayerProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerProgressCreateBulk) OnConflictColumns(columns ...string) *PlayerProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerProgressUpsertBulk{
		create: _c,
	}
}

// PlayerProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of PlayerProgress nodes.
type PlayerProgressUpsertBulk struct {
	create *PlayerProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerProgressUpsertBulk) UpdateNewValues() *PlayerProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlayerProgressUpsertBulk) Ignore() *PlayerProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerProgressUpsertBulk) DoNothing() *PlayerProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerProgressCreateBulk.OnConflict
// documentation for more info.
func (u *PlayerProgressUpsertBulk) Update(set func(*PlayerProgressUpsert)) *PlayerProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlayerProgressUpsertBulk) SetUserID(v string) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateUserID() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerProgressUpsertBulk) SetLessonID(v string) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateLessonID() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateLessonID()
	})
}

// SetBestScore sets the "best_score" field.
func (u *PlayerProgressUpsertBulk) SetBestScore(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetBestScore(v)
	})
}

// AddBestScore adds v to the "best_score" field.
func (u *PlayerProgressUpsertBulk) AddBestScore(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddBestScore(v)
	})
}

// UpdateBestScore sets the "best_score" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateBestScore() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateBestScore()
	})
}

// SetMaxScore sets the "max_score" field.
func (u *PlayerProgressUpsertBulk) SetMaxScore(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetMaxScore(v)
	})
}

// AddMaxScore adds v to the "max_score" field.
func (u *PlayerProgressUpsertBulk) AddMaxScore(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddMaxScore(v)
	})
}

// UpdateMaxScore sets the "max_score" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateMaxScore() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateMaxScore()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *PlayerProgressUpsertBulk) SetAttemptCount(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *PlayerProgressUpsertBulk) AddAttemptCount(v int) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateAttemptCount() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetUnlocked sets the "unlocked" field.
func (u *PlayerProgressUpsertBulk) SetUnlocked(v bool) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUnlocked(v)
	})
}

// UpdateUnlocked sets the "unlocked" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateUnlocked() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUnlocked()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlayerProgressUpsertBulk) SetCompletedAt(v time.Time) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateCompletedAt() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlayerProgressUpsertBulk) ClearCompletedAt() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerProgressUpsertBulk) SetUpdatedAt(v time.Time) *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerProgressUpsertBulk) UpdateUpdatedAt() *PlayerProgressUpsertBulk {
	return u.Update(func(s *PlayerProgressUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlayerProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlayerProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
