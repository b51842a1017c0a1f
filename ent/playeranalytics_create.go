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
	"github.com/methkalz/quizkit/ent/playeranalytics"
)

// PlayerAnalyticsCreate is the builder for creating a PlayerAnalytics entity.
type PlayerAnalyticsCreate struct {
	config
	mutation *PlayerAnalyticsMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *PlayerAnalyticsCreate) SetUserID(v string) *PlayerAnalyticsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *PlayerAnalyticsCreate) SetLessonID(v string) *PlayerAnalyticsCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (_c *PlayerAnalyticsCreate) SetAccuracyTrend(v []float64) *PlayerAnalyticsCreate {
	_c.mutation.SetAccuracyTrend(v)
	return _c
}

// SetTimeTrend sets the "time_trend" field.
func (_c *PlayerAnalyticsCreate) SetTimeTrend(v []float64) *PlayerAnalyticsCreate {
	_c.mutation.SetTimeTrend(v)
	return _c
}

// SetWeakAreas sets the "weak_areas" field.
func (_c *PlayerAnalyticsCreate) SetWeakAreas(v []string) *PlayerAnalyticsCreate {
	_c.mutation.SetWeakAreas(v)
	return _c
}

// SetStrongAreas sets the "strong_areas" field.
func (_c *PlayerAnalyticsCreate) SetStrongAreas(v []string) *PlayerAnalyticsCreate {
	_c.mutation.SetStrongAreas(v)
	return _c
}

// SetPreferredDirection sets the "preferred_direction" field.
func (_c *PlayerAnalyticsCreate) SetPreferredDirection(v string) *PlayerAnalyticsCreate {
	_c.mutation.SetPreferredDirection(v)
	return _c
}

// SetNillablePreferredDirection sets the "preferred_direction" field if the given value is not nil.
func (_c *PlayerAnalyticsCreate) SetNillablePreferredDirection(v *string) *PlayerAnalyticsCreate {
	if v != nil {
		_c.SetPreferredDirection(*v)
	}
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *PlayerAnalyticsCreate) SetRecommendations(v []string) *PlayerAnalyticsCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlayerAnalyticsCreate) SetUpdatedAt(v time.Time) *PlayerAnalyticsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlayerAnalyticsCreate) SetNillableUpdatedAt(v *time.Time) *PlayerAnalyticsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PlayerAnalyticsMutation object of the builder.
func (_c *PlayerAnalyticsCreate) Mutation() *PlayerAnalyticsMutation {
	return _c.mutation
}

// Save creates the PlayerAnalytics in the database.
func (_c *PlayerAnalyticsCreate) Save(ctx context.Context) (*PlayerAnalytics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlayerAnalyticsCreate) SaveX(ctx context.Context) *PlayerAnalytics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerAnalyticsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerAnalyticsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlayerAnalyticsCreate) defaults() {
	if _, ok := _c.mutation.PreferredDirection(); !ok {
		v := playeranalytics.DefaultPreferredDirection
		_c.mutation.SetPreferredDirection(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playeranalytics.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlayerAnalyticsCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PlayerAnalytics.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := playeranalytics.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "PlayerAnalytics.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := playeranalytics.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "PlayerAnalytics.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccuracyTrend(); !ok {
		return &ValidationError{Name: "accuracy_trend", err: errors.New(`ent: missing required field "PlayerAnalytics.accuracy_trend"`)}
	}
	if _, ok := _c.mutation.TimeTrend(); !ok {
		return &ValidationError{Name: "time_trend", err: errors.New(`ent: missing required field "PlayerAnalytics.time_trend"`)}
	}
	if _, ok := _c.mutation.WeakAreas(); !ok {
		return &ValidationError{Name: "weak_areas", err: errors.New(`ent: missing required field "PlayerAnalytics.weak_areas"`)}
	}
	if _, ok := _c.mutation.StrongAreas(); !ok {
		return &ValidationError{Name: "strong_areas", err: errors.New(`ent: missing required field "PlayerAnalytics.strong_areas"`)}
	}
	if _, ok := _c.mutation.PreferredDirection(); !ok {
		return &ValidationError{Name: "preferred_direction", err: errors.New(`ent: missing required field "PlayerAnalytics.preferred_direction"`)}
	}
	if _, ok := _c.mutation.Recommendations(); !ok {
		return &ValidationError{Name: "recommendations", err: errors.New(`ent: missing required field "PlayerAnalytics.recommendations"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlayerAnalytics.updated_at"`)}
	}
	return nil
}

func (_c *PlayerAnalyticsCreate) sqlSave(ctx context.Context) (*PlayerAnalytics, error) {
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

func (_c *PlayerAnalyticsCreate) createSpec() (*PlayerAnalytics, *sqlgraph.CreateSpec) {
	var (
		_node = &PlayerAnalytics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playeranalytics.Table, sqlgraph.NewFieldSpec(playeranalytics.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(playeranalytics.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(playeranalytics.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.AccuracyTrend(); ok {
		_spec.SetField(playeranalytics.FieldAccuracyTrend, field.TypeJSON, value)
		_node.AccuracyTrend = value
	}
	if value, ok := _c.mutation.TimeTrend(); ok {
		_spec.SetField(playeranalytics.FieldTimeTrend, field.TypeJSON, value)
		_node.TimeTrend = value
	}
	if value, ok := _c.mutation.WeakAreas(); ok {
		_spec.SetField(playeranalytics.FieldWeakAreas, field.TypeJSON, value)
		_node.WeakAreas = value
	}
	if value, ok := _c.mutation.StrongAreas(); ok {
		_spec.SetField(playeranalytics.FieldStrongAreas, field.TypeJSON, value)
		_node.StrongAreas = value
	}
	if value, ok := _c.mutation.PreferredDirection(); ok {
		_spec.SetField(playeranalytics.FieldPreferredDirection, field.TypeString, value)
		_node.PreferredDirection = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(playeranalytics.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playeranalytics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerAnalytics.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerAnalyticsUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerAnalyticsCreate) OnConflict(opts ...sql.ConflictOption) *PlayerAnalyticsUpsertOne {
	_c.conflict = opts
	return &PlayerAnalyticsUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerAnalyticsCreate) OnConflictColumns(columns ...string) *PlayerAnalyticsUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerAnalyticsUpsertOne{
		create: _c,
	}
}

type (
	// PlayerAnalyticsUpsertOne is the builder for "upsert"-ing
	//  one PlayerAnalytics node.
	PlayerAnalyticsUpsertOne struct {
		create *PlayerAnalyticsCreate
	}

	// PlayerAnalyticsUpsert is the "OnConflict" setter.
	PlayerAnalyticsUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *PlayerAnalyticsUpsert) SetUserID(v string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateUserID() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldUserID)
	return u
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerAnalyticsUpsert) SetLessonID(v string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldLessonID, v)
	return u
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateLessonID() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldLessonID)
	return u
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (u *PlayerAnalyticsUpsert) SetAccuracyTrend(v []float64) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldAccuracyTrend, v)
	return u
}

// UpdateAccuracyTrend sets the "accuracy_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateAccuracyTrend() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldAccuracyTrend)
	return u
}

// SetTimeTrend sets the "time_trend" field.
func (u *PlayerAnalyticsUpsert) SetTimeTrend(v []float64) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldTimeTrend, v)
	return u
}

// UpdateTimeTrend sets the "time_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateTimeTrend() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldTimeTrend)
	return u
}

// SetWeakAreas sets the "weak_areas" field.
func (u *PlayerAnalyticsUpsert) SetWeakAreas(v []string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldWeakAreas, v)
	return u
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateWeakAreas() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldWeakAreas)
	return u
}

// SetStrongAreas sets the "strong_areas" field.
func (u *PlayerAnalyticsUpsert) SetStrongAreas(v []string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldStrongAreas, v)
	return u
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateStrongAreas() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldStrongAreas)
	return u
}

// SetPreferredDirection sets the "preferred_direction" field.
func (u *PlayerAnalyticsUpsert) SetPreferredDirection(v string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldPreferredDirection, v)
	return u
}

// UpdatePreferredDirection sets the "preferred_direction" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdatePreferredDirection() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldPreferredDirection)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *PlayerAnalyticsUpsert) SetRecommendations(v []string) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateRecommendations() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldRecommendations)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerAnalyticsUpsert) SetUpdatedAt(v time.Time) *PlayerAnalyticsUpsert {
	u.Set(playeranalytics.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsert) UpdateUpdatedAt() *PlayerAnalyticsUpsert {
	u.SetExcluded(playeranalytics.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerAnalyticsUpsertOne) UpdateNewValues() *PlayerAnalyticsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlayerAnalyticsUpsertOne) Ignore() *PlayerAnalyticsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerAnalyticsUpsertOne) DoNothing() *PlayerAnalyticsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerAnalyticsCreate.OnConflict
// documentation for more info.
func (u *PlayerAnalyticsUpsertOne) Update(set func(*PlayerAnalyticsUpsert)) *PlayerAnalyticsUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerAnalyticsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlayerAnalyticsUpsertOne) SetUserID(v string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateUserID() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerAnalyticsUpsertOne) SetLessonID(v string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateLessonID() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateLessonID()
	})
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (u *PlayerAnalyticsUpsertOne) SetAccuracyTrend(v []float64) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetAccuracyTrend(v)
	})
}

// UpdateAccuracyTrend sets the "accuracy_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateAccuracyTrend() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateAccuracyTrend()
	})
}

// SetTimeTrend sets the "time_trend" field.
func (u *PlayerAnalyticsUpsertOne) SetTimeTrend(v []float64) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetTimeTrend(v)
	})
}

// UpdateTimeTrend sets the "time_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateTimeTrend() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateTimeTrend()
	})
}

// SetWeakAreas sets the "weak_areas" field.
func (u *PlayerAnalyticsUpsertOne) SetWeakAreas(v []string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetWeakAreas(v)
	})
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateWeakAreas() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateWeakAreas()
	})
}

// SetStrongAreas sets the "strong_areas" field.
func (u *PlayerAnalyticsUpsertOne) SetStrongAreas(v []string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetStrongAreas(v)
	})
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateStrongAreas() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateStrongAreas()
	})
}

// SetPreferredDirection sets the "preferred_direction" field.
func (u *PlayerAnalyticsUpsertOne) SetPreferredDirection(v string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetPreferredDirection(v)
	})
}

// UpdatePreferredDirection sets the "preferred_direction" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdatePreferredDirection() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdatePreferredDirection()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *PlayerAnalyticsUpsertOne) SetRecommendations(v []string) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateRecommendations() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateRecommendations()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerAnalyticsUpsertOne) SetUpdatedAt(v time.Time) *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertOne) UpdateUpdatedAt() *PlayerAnalyticsUpsertOne {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlayerAnalyticsUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerAnalyticsCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerAnalyticsUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlayerAnalyticsUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlayerAnalyticsUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlayerAnalyticsCreateBulk is the builder for creating many PlayerAnalytics entities in bulk.
type PlayerAnalyticsCreateBulk struct {
	config
	err      error
	builders []*PlayerAnalyticsCreate
	conflict []sql.ConflictOption
}

// Save creates the PlayerAnalytics entities in the database.
func (_c *PlayerAnalyticsCreateBulk) Save(ctx context.Context) ([]*PlayerAnalytics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlayerAnalytics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlayerAnalyticsMutation)
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
func (_c *PlayerAnalyticsCreateBulk) SaveX(ctx context.Context) []*PlayerAnalytics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlayerAnalyticsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlayerAnalyticsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlayerAnalytics.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlayerAnalyticsUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlayerAnalyticsCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlayerAnalyticsUpsertBulk {
	_c.conflict = opts
	return &PlayerAnalyticsUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlayerAnalyticsCreateBulk) OnConflictColumns(columns ...string) *PlayerAnalyticsUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlayerAnalyticsUpsertBulk{
		create: _c,
	}
}

// PlayerAnalyticsUpsertBulk is the builder for "upsert"-ing
// a bulk of PlayerAnalytics nodes.
type PlayerAnalyticsUpsertBulk struct {
	create *PlayerAnalyticsCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlayerAnalyticsUpsertBulk) UpdateNewValues() *PlayerAnalyticsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlayerAnalytics.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlayerAnalyticsUpsertBulk) Ignore() *PlayerAnalyticsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlayerAnalyticsUpsertBulk) DoNothing() *PlayerAnalyticsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlayerAnalyticsCreateBulk.OnConflict
// documentation for more info.
func (u *PlayerAnalyticsUpsertBulk) Update(set func(*PlayerAnalyticsUpsert)) *PlayerAnalyticsUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlayerAnalyticsUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *PlayerAnalyticsUpsertBulk) SetUserID(v string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateUserID() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateUserID()
	})
}

// SetLessonID sets the "lesson_id" field.
func (u *PlayerAnalyticsUpsertBulk) SetLessonID(v string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetLessonID(v)
	})
}

// UpdateLessonID sets the "lesson_id" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateLessonID() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateLessonID()
	})
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (u *PlayerAnalyticsUpsertBulk) SetAccuracyTrend(v []float64) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetAccuracyTrend(v)
	})
}

// UpdateAccuracyTrend sets the "accuracy_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateAccuracyTrend() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateAccuracyTrend()
	})
}

// SetTimeTrend sets the "time_trend" field.
func (u *PlayerAnalyticsUpsertBulk) SetTimeTrend(v []float64) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetTimeTrend(v)
	})
}

// UpdateTimeTrend sets the "time_trend" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateTimeTrend() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateTimeTrend()
	})
}

// SetWeakAreas sets the "weak_areas" field.
func (u *PlayerAnalyticsUpsertBulk) SetWeakAreas(v []string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetWeakAreas(v)
	})
}

// UpdateWeakAreas sets the "weak_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateWeakAreas() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateWeakAreas()
	})
}

// SetStrongAreas sets the "strong_areas" field.
func (u *PlayerAnalyticsUpsertBulk) SetStrongAreas(v []string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetStrongAreas(v)
	})
}

// UpdateStrongAreas sets the "strong_areas" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateStrongAreas() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateStrongAreas()
	})
}

// SetPreferredDirection sets the "preferred_direction" field.
func (u *PlayerAnalyticsUpsertBulk) SetPreferredDirection(v string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetPreferredDirection(v)
	})
}

// UpdatePreferredDirection sets the "preferred_direction" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdatePreferredDirection() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdatePreferredDirection()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *PlayerAnalyticsUpsertBulk) SetRecommendations(v []string) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateRecommendations() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateRecommendations()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlayerAnalyticsUpsertBulk) SetUpdatedAt(v time.Time) *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlayerAnalyticsUpsertBulk) UpdateUpdatedAt() *PlayerAnalyticsUpsertBulk {
	return u.Update(func(s *PlayerAnalyticsUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlayerAnalyticsUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlayerAnalyticsCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlayerAnalyticsCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlayerAnalyticsUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
