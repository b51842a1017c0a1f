// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/achievement"
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/playeranalytics"
	"github.com/methkalz/quizkit/ent/playerprogress"
	"github.com/methkalz/quizkit/ent/predicate"
	"github.com/methkalz/quizkit/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAchievement     = "Achievement"
	TypeGameSession     = "GameSession"
	TypePlayerAnalytics = "PlayerAnalytics"
	TypePlayerProgress  = "PlayerProgress"
)

// AchievementMutation represents an operation that mutates the Achievement nodes in the graph.
type AchievementMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	_type         *string
	data          *map[string]interface{}
	unlocked_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Achievement, error)
	predicates    []predicate.Achievement
}

var _ ent.Mutation = (*AchievementMutation)(nil)

// achievementOption allows management of the mutation configuration using functional options.
type achievementOption func(*AchievementMutation)

// newAchievementMutation creates new mutation for the Achievement entity.
func newAchievementMutation(c config, op Op, opts ...achievementOption) *AchievementMutation {
	m := &AchievementMutation{
		config:        c,
		op:            op,
		typ:           TypeAchievement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAchievementID sets the ID field of the mutation.
func withAchievementID(id int) achievementOption {
	return func(m *AchievementMutation) {
		var (
			err   error
			once  sync.Once
			value *Achievement
		)
		m.oldValue = func(ctx context.Context) (*Achievement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Achievement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAchievement sets the old Achievement of the mutation.
func withAchievement(node *Achievement) achievementOption {
	return func(m *AchievementMutation) {
		m.oldValue = func(context.Context) (*Achievement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AchievementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AchievementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AchievementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AchievementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Achievement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AchievementMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AchievementMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AchievementMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *AchievementMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *AchievementMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AchievementMutation) ResetType() {
	m._type = nil
}

// SetData sets the "data" field.
func (m *AchievementMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *AchievementMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *AchievementMutation) ClearData() {
	m.data = nil
	m.clearedFields[achievement.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *AchievementMutation) DataCleared() bool {
	_, ok := m.clearedFields[achievement.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *AchievementMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, achievement.FieldData)
}

// SetUnlockedAt sets the "unlocked_at" field.
func (m *AchievementMutation) SetUnlockedAt(t time.Time) {
	m.unlocked_at = &t
}

// UnlockedAt returns the value of the "unlocked_at" field in the mutation.
func (m *AchievementMutation) UnlockedAt() (r time.Time, exists bool) {
	v := m.unlocked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlockedAt returns the old "unlocked_at" field's value of the Achievement entity.
// If the Achievement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AchievementMutation) OldUnlockedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlockedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlockedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlockedAt: %w", err)
	}
	return oldValue.UnlockedAt, nil
}

// ResetUnlockedAt resets all changes to the "unlocked_at" field.
func (m *AchievementMutation) ResetUnlockedAt() {
	m.unlocked_at = nil
}

// Where appends a list predicates to the AchievementMutation builder.
func (m *AchievementMutation) Where(ps ...predicate.Achievement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AchievementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AchievementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Achievement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AchievementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AchievementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Achievement).
func (m *AchievementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AchievementMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, achievement.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, achievement.FieldType)
	}
	if m.data != nil {
		fields = append(fields, achievement.FieldData)
	}
	if m.unlocked_at != nil {
		fields = append(fields, achievement.FieldUnlockedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AchievementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case achievement.FieldUserID:
		return m.UserID()
	case achievement.FieldType:
		return m.GetType()
	case achievement.FieldData:
		return m.Data()
	case achievement.FieldUnlockedAt:
		return m.UnlockedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AchievementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case achievement.FieldUserID:
		return m.OldUserID(ctx)
	case achievement.FieldType:
		return m.OldType(ctx)
	case achievement.FieldData:
		return m.OldData(ctx)
	case achievement.FieldUnlockedAt:
		return m.OldUnlockedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Achievement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case achievement.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case achievement.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case achievement.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case achievement.FieldUnlockedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlockedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AchievementMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AchievementMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AchievementMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Achievement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AchievementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(achievement.FieldData) {
		fields = append(fields, achievement.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AchievementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AchievementMutation) ClearField(name string) error {
	switch name {
	case achievement.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown Achievement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AchievementMutation) ResetField(name string) error {
	switch name {
	case achievement.FieldUserID:
		m.ResetUserID()
		return nil
	case achievement.FieldType:
		m.ResetType()
		return nil
	case achievement.FieldData:
		m.ResetData()
		return nil
	case achievement.FieldUnlockedAt:
		m.ResetUnlockedAt()
		return nil
	}
	return fmt.Errorf("unknown Achievement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AchievementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AchievementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AchievementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AchievementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AchievementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AchievementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AchievementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Achievement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AchievementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Achievement edge %s", name)
}

// GameSessionMutation represents an operation that mutates the GameSession nodes in the graph.
type GameSessionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	session_id               *string
	user_id                  *string
	lesson_id                *string
	questions                *[]schema.SessionQuestion
	appendquestions          []schema.SessionQuestion
	current_index            *int
	addcurrent_index         *int
	answers                  *[]string
	appendanswers            []string
	awarded_points           *[]int
	appendawarded_points     []int
	score                    *int
	addscore                 *int
	mistake_count            *int
	addmistake_count         *int
	hints_used               *int
	addhints_used            *int
	hints_per_question       *[]int
	appendhints_per_question []int
	started_at               *time.Time
	ended_at                 *time.Time
	completed                *bool
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*GameSession, error)
	predicates               []predicate.GameSession
}

var _ ent.Mutation = (*GameSessionMutation)(nil)

// gamesessionOption allows management of the mutation configuration using functional options.
type gamesessionOption func(*GameSessionMutation)

// newGameSessionMutation creates new mutation for the GameSession entity.
func newGameSessionMutation(c config, op Op, opts ...gamesessionOption) *GameSessionMutation {
	m := &GameSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeGameSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameSessionID sets the ID field of the mutation.
func withGameSessionID(id int) gamesessionOption {
	return func(m *GameSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *GameSession
		)
		m.oldValue = func(ctx context.Context) (*GameSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameSession sets the old GameSession of the mutation.
func withGameSession(node *GameSession) gamesessionOption {
	return func(m *GameSessionMutation) {
		m.oldValue = func(context.Context) (*GameSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *GameSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *GameSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *GameSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *GameSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *GameSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *GameSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *GameSessionMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *GameSessionMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *GameSessionMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetQuestions sets the "questions" field.
func (m *GameSessionMutation) SetQuestions(sq []schema.SessionQuestion) {
	m.questions = &sq
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *GameSessionMutation) Questions() (r []schema.SessionQuestion, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldQuestions(ctx context.Context) (v []schema.SessionQuestion, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds sq to the "questions" field.
func (m *GameSessionMutation) AppendQuestions(sq []schema.SessionQuestion) {
	m.appendquestions = append(m.appendquestions, sq...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *GameSessionMutation) AppendedQuestions() ([]schema.SessionQuestion, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *GameSessionMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetCurrentIndex sets the "current_index" field.
func (m *GameSessionMutation) SetCurrentIndex(i int) {
	m.current_index = &i
	m.addcurrent_index = nil
}

// CurrentIndex returns the value of the "current_index" field in the mutation.
func (m *GameSessionMutation) CurrentIndex() (r int, exists bool) {
	v := m.current_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIndex returns the old "current_index" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldCurrentIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIndex: %w", err)
	}
	return oldValue.CurrentIndex, nil
}

// AddCurrentIndex adds i to the "current_index" field.
func (m *GameSessionMutation) AddCurrentIndex(i int) {
	if m.addcurrent_index != nil {
		*m.addcurrent_index += i
	} else {
		m.addcurrent_index = &i
	}
}

// AddedCurrentIndex returns the value that was added to the "current_index" field in this mutation.
func (m *GameSessionMutation) AddedCurrentIndex() (r int, exists bool) {
	v := m.addcurrent_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIndex resets all changes to the "current_index" field.
func (m *GameSessionMutation) ResetCurrentIndex() {
	m.current_index = nil
	m.addcurrent_index = nil
}

// SetAnswers sets the "answers" field.
func (m *GameSessionMutation) SetAnswers(s []string) {
	m.answers = &s
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *GameSessionMutation) Answers() (r []string, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldAnswers(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds s to the "answers" field.
func (m *GameSessionMutation) AppendAnswers(s []string) {
	m.appendanswers = append(m.appendanswers, s...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *GameSessionMutation) AppendedAnswers() ([]string, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *GameSessionMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetAwardedPoints sets the "awarded_points" field.
func (m *GameSessionMutation) SetAwardedPoints(i []int) {
	m.awarded_points = &i
	m.appendawarded_points = nil
}

// AwardedPoints returns the value of the "awarded_points" field in the mutation.
func (m *GameSessionMutation) AwardedPoints() (r []int, exists bool) {
	v := m.awarded_points
	if v == nil {
		return
	}
	return *v, true
}

// OldAwardedPoints returns the old "awarded_points" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldAwardedPoints(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwardedPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwardedPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwardedPoints: %w", err)
	}
	return oldValue.AwardedPoints, nil
}

// AppendAwardedPoints adds i to the "awarded_points" field.
func (m *GameSessionMutation) AppendAwardedPoints(i []int) {
	m.appendawarded_points = append(m.appendawarded_points, i...)
}

// AppendedAwardedPoints returns the list of values that were appended to the "awarded_points" field in this mutation.
func (m *GameSessionMutation) AppendedAwardedPoints() ([]int, bool) {
	if len(m.appendawarded_points) == 0 {
		return nil, false
	}
	return m.appendawarded_points, true
}

// ResetAwardedPoints resets all changes to the "awarded_points" field.
func (m *GameSessionMutation) ResetAwardedPoints() {
	m.awarded_points = nil
	m.appendawarded_points = nil
}

// SetScore sets the "score" field.
func (m *GameSessionMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *GameSessionMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *GameSessionMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *GameSessionMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *GameSessionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetMistakeCount sets the "mistake_count" field.
func (m *GameSessionMutation) SetMistakeCount(i int) {
	m.mistake_count = &i
	m.addmistake_count = nil
}

// MistakeCount returns the value of the "mistake_count" field in the mutation.
func (m *GameSessionMutation) MistakeCount() (r int, exists bool) {
	v := m.mistake_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMistakeCount returns the old "mistake_count" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldMistakeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMistakeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMistakeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMistakeCount: %w", err)
	}
	return oldValue.MistakeCount, nil
}

// AddMistakeCount adds i to the "mistake_count" field.
func (m *GameSessionMutation) AddMistakeCount(i int) {
	if m.addmistake_count != nil {
		*m.addmistake_count += i
	} else {
		m.addmistake_count = &i
	}
}

// AddedMistakeCount returns the value that was added to the "mistake_count" field in this mutation.
func (m *GameSessionMutation) AddedMistakeCount() (r int, exists bool) {
	v := m.addmistake_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMistakeCount resets all changes to the "mistake_count" field.
func (m *GameSessionMutation) ResetMistakeCount() {
	m.mistake_count = nil
	m.addmistake_count = nil
}

// SetHintsUsed sets the "hints_used" field.
func (m *GameSessionMutation) SetHintsUsed(i int) {
	m.hints_used = &i
	m.addhints_used = nil
}

// HintsUsed returns the value of the "hints_used" field in the mutation.
func (m *GameSessionMutation) HintsUsed() (r int, exists bool) {
	v := m.hints_used
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsUsed returns the old "hints_used" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldHintsUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsUsed: %w", err)
	}
	return oldValue.HintsUsed, nil
}

// AddHintsUsed adds i to the "hints_used" field.
func (m *GameSessionMutation) AddHintsUsed(i int) {
	if m.addhints_used != nil {
		*m.addhints_used += i
	} else {
		m.addhints_used = &i
	}
}

// AddedHintsUsed returns the value that was added to the "hints_used" field in this mutation.
func (m *GameSessionMutation) AddedHintsUsed() (r int, exists bool) {
	v := m.addhints_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetHintsUsed resets all changes to the "hints_used" field.
func (m *GameSessionMutation) ResetHintsUsed() {
	m.hints_used = nil
	m.addhints_used = nil
}

// SetHintsPerQuestion sets the "hints_per_question" field.
func (m *GameSessionMutation) SetHintsPerQuestion(i []int) {
	m.hints_per_question = &i
	m.appendhints_per_question = nil
}

// HintsPerQuestion returns the value of the "hints_per_question" field in the mutation.
func (m *GameSessionMutation) HintsPerQuestion() (r []int, exists bool) {
	v := m.hints_per_question
	if v == nil {
		return
	}
	return *v, true
}

// OldHintsPerQuestion returns the old "hints_per_question" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldHintsPerQuestion(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHintsPerQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHintsPerQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHintsPerQuestion: %w", err)
	}
	return oldValue.HintsPerQuestion, nil
}

// AppendHintsPerQuestion adds i to the "hints_per_question" field.
func (m *GameSessionMutation) AppendHintsPerQuestion(i []int) {
	m.appendhints_per_question = append(m.appendhints_per_question, i...)
}

// AppendedHintsPerQuestion returns the list of values that were appended to the "hints_per_question" field in this mutation.
func (m *GameSessionMutation) AppendedHintsPerQuestion() ([]int, bool) {
	if len(m.appendhints_per_question) == 0 {
		return nil, false
	}
	return m.appendhints_per_question, true
}

// ResetHintsPerQuestion resets all changes to the "hints_per_question" field.
func (m *GameSessionMutation) ResetHintsPerQuestion() {
	m.hints_per_question = nil
	m.appendhints_per_question = nil
}

// SetStartedAt sets the "started_at" field.
func (m *GameSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *GameSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *GameSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *GameSessionMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *GameSessionMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *GameSessionMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[gamesession.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *GameSessionMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[gamesession.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *GameSessionMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, gamesession.FieldEndedAt)
}

// SetCompleted sets the "completed" field.
func (m *GameSessionMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *GameSessionMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the GameSession entity.
// If the GameSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameSessionMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *GameSessionMutation) ResetCompleted() {
	m.completed = nil
}

// Where appends a list predicates to the GameSessionMutation builder.
func (m *GameSessionMutation) Where(ps ...predicate.GameSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameSession).
func (m *GameSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameSessionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.session_id != nil {
		fields = append(fields, gamesession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, gamesession.FieldUserID)
	}
	if m.lesson_id != nil {
		fields = append(fields, gamesession.FieldLessonID)
	}
	if m.questions != nil {
		fields = append(fields, gamesession.FieldQuestions)
	}
	if m.current_index != nil {
		fields = append(fields, gamesession.FieldCurrentIndex)
	}
	if m.answers != nil {
		fields = append(fields, gamesession.FieldAnswers)
	}
	if m.awarded_points != nil {
		fields = append(fields, gamesession.FieldAwardedPoints)
	}
	if m.score != nil {
		fields = append(fields, gamesession.FieldScore)
	}
	if m.mistake_count != nil {
		fields = append(fields, gamesession.FieldMistakeCount)
	}
	if m.hints_used != nil {
		fields = append(fields, gamesession.FieldHintsUsed)
	}
	if m.hints_per_question != nil {
		fields = append(fields, gamesession.FieldHintsPerQuestion)
	}
	if m.started_at != nil {
		fields = append(fields, gamesession.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, gamesession.FieldEndedAt)
	}
	if m.completed != nil {
		fields = append(fields, gamesession.FieldCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamesession.FieldSessionID:
		return m.SessionID()
	case gamesession.FieldUserID:
		return m.UserID()
	case gamesession.FieldLessonID:
		return m.LessonID()
	case gamesession.FieldQuestions:
		return m.Questions()
	case gamesession.FieldCurrentIndex:
		return m.CurrentIndex()
	case gamesession.FieldAnswers:
		return m.Answers()
	case gamesession.FieldAwardedPoints:
		return m.AwardedPoints()
	case gamesession.FieldScore:
		return m.Score()
	case gamesession.FieldMistakeCount:
		return m.MistakeCount()
	case gamesession.FieldHintsUsed:
		return m.HintsUsed()
	case gamesession.FieldHintsPerQuestion:
		return m.HintsPerQuestion()
	case gamesession.FieldStartedAt:
		return m.StartedAt()
	case gamesession.FieldEndedAt:
		return m.EndedAt()
	case gamesession.FieldCompleted:
		return m.Completed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case gamesession.FieldUserID:
		return m.OldUserID(ctx)
	case gamesession.FieldLessonID:
		return m.OldLessonID(ctx)
	case gamesession.FieldQuestions:
		return m.OldQuestions(ctx)
	case gamesession.FieldCurrentIndex:
		return m.OldCurrentIndex(ctx)
	case gamesession.FieldAnswers:
		return m.OldAnswers(ctx)
	case gamesession.FieldAwardedPoints:
		return m.OldAwardedPoints(ctx)
	case gamesession.FieldScore:
		return m.OldScore(ctx)
	case gamesession.FieldMistakeCount:
		return m.OldMistakeCount(ctx)
	case gamesession.FieldHintsUsed:
		return m.OldHintsUsed(ctx)
	case gamesession.FieldHintsPerQuestion:
		return m.OldHintsPerQuestion(ctx)
	case gamesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case gamesession.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case gamesession.FieldCompleted:
		return m.OldCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown GameSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case gamesession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case gamesession.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case gamesession.FieldQuestions:
		v, ok := value.([]schema.SessionQuestion)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case gamesession.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIndex(v)
		return nil
	case gamesession.FieldAnswers:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case gamesession.FieldAwardedPoints:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwardedPoints(v)
		return nil
	case gamesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case gamesession.FieldMistakeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMistakeCount(v)
		return nil
	case gamesession.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsUsed(v)
		return nil
	case gamesession.FieldHintsPerQuestion:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHintsPerQuestion(v)
		return nil
	case gamesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case gamesession.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case gamesession.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown GameSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameSessionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_index != nil {
		fields = append(fields, gamesession.FieldCurrentIndex)
	}
	if m.addscore != nil {
		fields = append(fields, gamesession.FieldScore)
	}
	if m.addmistake_count != nil {
		fields = append(fields, gamesession.FieldMistakeCount)
	}
	if m.addhints_used != nil {
		fields = append(fields, gamesession.FieldHintsUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamesession.FieldCurrentIndex:
		return m.AddedCurrentIndex()
	case gamesession.FieldScore:
		return m.AddedScore()
	case gamesession.FieldMistakeCount:
		return m.AddedMistakeCount()
	case gamesession.FieldHintsUsed:
		return m.AddedHintsUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamesession.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIndex(v)
		return nil
	case gamesession.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case gamesession.FieldMistakeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMistakeCount(v)
		return nil
	case gamesession.FieldHintsUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHintsUsed(v)
		return nil
	}
	return fmt.Errorf("unknown GameSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gamesession.FieldEndedAt) {
		fields = append(fields, gamesession.FieldEndedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameSessionMutation) ClearField(name string) error {
	switch name {
	case gamesession.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	}
	return fmt.Errorf("unknown GameSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameSessionMutation) ResetField(name string) error {
	switch name {
	case gamesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case gamesession.FieldUserID:
		m.ResetUserID()
		return nil
	case gamesession.FieldLessonID:
		m.ResetLessonID()
		return nil
	case gamesession.FieldQuestions:
		m.ResetQuestions()
		return nil
	case gamesession.FieldCurrentIndex:
		m.ResetCurrentIndex()
		return nil
	case gamesession.FieldAnswers:
		m.ResetAnswers()
		return nil
	case gamesession.FieldAwardedPoints:
		m.ResetAwardedPoints()
		return nil
	case gamesession.FieldScore:
		m.ResetScore()
		return nil
	case gamesession.FieldMistakeCount:
		m.ResetMistakeCount()
		return nil
	case gamesession.FieldHintsUsed:
		m.ResetHintsUsed()
		return nil
	case gamesession.FieldHintsPerQuestion:
		m.ResetHintsPerQuestion()
		return nil
	case gamesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case gamesession.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case gamesession.FieldCompleted:
		m.ResetCompleted()
		return nil
	}
	return fmt.Errorf("unknown GameSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GameSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GameSession edge %s", name)
}

// PlayerAnalyticsMutation represents an operation that mutates the PlayerAnalytics nodes in the graph.
type PlayerAnalyticsMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	lesson_id             *string
	accuracy_trend        *[]float64
	appendaccuracy_trend  []float64
	time_trend            *[]float64
	appendtime_trend      []float64
	weak_areas            *[]string
	appendweak_areas      []string
	strong_areas          *[]string
	appendstrong_areas    []string
	preferred_direction   *string
	recommendations       *[]string
	appendrecommendations []string
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PlayerAnalytics, error)
	predicates            []predicate.PlayerAnalytics
}

var _ ent.Mutation = (*PlayerAnalyticsMutation)(nil)

// playeranalyticsOption allows management of the mutation configuration using functional options.
type playeranalyticsOption func(*PlayerAnalyticsMutation)

// newPlayerAnalyticsMutation creates new mutation for the PlayerAnalytics entity.
func newPlayerAnalyticsMutation(c config, op Op, opts ...playeranalyticsOption) *PlayerAnalyticsMutation {
	m := &PlayerAnalyticsMutation{
		config:        c,
		op:            op,
		typ:           TypePlayerAnalytics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerAnalyticsID sets the ID field of the mutation.
func withPlayerAnalyticsID(id int) playeranalyticsOption {
	return func(m *PlayerAnalyticsMutation) {
		var (
			err   error
			once  sync.Once
			value *PlayerAnalytics
		)
		m.oldValue = func(ctx context.Context) (*PlayerAnalytics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlayerAnalytics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayerAnalytics sets the old PlayerAnalytics of the mutation.
func withPlayerAnalytics(node *PlayerAnalytics) playeranalyticsOption {
	return func(m *PlayerAnalyticsMutation) {
		m.oldValue = func(context.Context) (*PlayerAnalytics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerAnalyticsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerAnalyticsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerAnalyticsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerAnalyticsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlayerAnalytics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PlayerAnalyticsMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PlayerAnalyticsMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PlayerAnalyticsMutation) ResetUserID() {
	m.user_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *PlayerAnalyticsMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *PlayerAnalyticsMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *PlayerAnalyticsMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetAccuracyTrend sets the "accuracy_trend" field.
func (m *PlayerAnalyticsMutation) SetAccuracyTrend(f []float64) {
	m.accuracy_trend = &f
	m.appendaccuracy_trend = nil
}

// AccuracyTrend returns the value of the "accuracy_trend" field in the mutation.
func (m *PlayerAnalyticsMutation) AccuracyTrend() (r []float64, exists bool) {
	v := m.accuracy_trend
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyTrend returns the old "accuracy_trend" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldAccuracyTrend(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyTrend: %w", err)
	}
	return oldValue.AccuracyTrend, nil
}

// AppendAccuracyTrend adds f to the "accuracy_trend" field.
func (m *PlayerAnalyticsMutation) AppendAccuracyTrend(f []float64) {
	m.appendaccuracy_trend = append(m.appendaccuracy_trend, f...)
}

// AppendedAccuracyTrend returns the list of values that were appended to the "accuracy_trend" field in this mutation.
func (m *PlayerAnalyticsMutation) AppendedAccuracyTrend() ([]float64, bool) {
	if len(m.appendaccuracy_trend) == 0 {
		return nil, false
	}
	return m.appendaccuracy_trend, true
}

// ResetAccuracyTrend resets all changes to the "accuracy_trend" field.
func (m *PlayerAnalyticsMutation) ResetAccuracyTrend() {
	m.accuracy_trend = nil
	m.appendaccuracy_trend = nil
}

// SetTimeTrend sets the "time_trend" field.
func (m *PlayerAnalyticsMutation) SetTimeTrend(f []float64) {
	m.time_trend = &f
	m.appendtime_trend = nil
}

// TimeTrend returns the value of the "time_trend" field in the mutation.
func (m *PlayerAnalyticsMutation) TimeTrend() (r []float64, exists bool) {
	v := m.time_trend
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTrend returns the old "time_trend" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldTimeTrend(ctx context.Context) (v []float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTrend: %w", err)
	}
	return oldValue.TimeTrend, nil
}

// AppendTimeTrend adds f to the "time_trend" field.
func (m *PlayerAnalyticsMutation) AppendTimeTrend(f []float64) {
	m.appendtime_trend = append(m.appendtime_trend, f...)
}

// AppendedTimeTrend returns the list of values that were appended to the "time_trend" field in this mutation.
func (m *PlayerAnalyticsMutation) AppendedTimeTrend() ([]float64, bool) {
	if len(m.appendtime_trend) == 0 {
		return nil, false
	}
	return m.appendtime_trend, true
}

// ResetTimeTrend resets all changes to the "time_trend" field.
func (m *PlayerAnalyticsMutation) ResetTimeTrend() {
	m.time_trend = nil
	m.appendtime_trend = nil
}

// SetWeakAreas sets the "weak_areas" field.
func (m *PlayerAnalyticsMutation) SetWeakAreas(s []string) {
	m.weak_areas = &s
	m.appendweak_areas = nil
}

// WeakAreas returns the value of the "weak_areas" field in the mutation.
func (m *PlayerAnalyticsMutation) WeakAreas() (r []string, exists bool) {
	v := m.weak_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldWeakAreas returns the old "weak_areas" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldWeakAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeakAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeakAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeakAreas: %w", err)
	}
	return oldValue.WeakAreas, nil
}

// AppendWeakAreas adds s to the "weak_areas" field.
func (m *PlayerAnalyticsMutation) AppendWeakAreas(s []string) {
	m.appendweak_areas = append(m.appendweak_areas, s...)
}

// AppendedWeakAreas returns the list of values that were appended to the "weak_areas" field in this mutation.
func (m *PlayerAnalyticsMutation) AppendedWeakAreas() ([]string, bool) {
	if len(m.appendweak_areas) == 0 {
		return nil, false
	}
	return m.appendweak_areas, true
}

// ResetWeakAreas resets all changes to the "weak_areas" field.
func (m *PlayerAnalyticsMutation) ResetWeakAreas() {
	m.weak_areas = nil
	m.appendweak_areas = nil
}

// SetStrongAreas sets the "strong_areas" field.
func (m *PlayerAnalyticsMutation) SetStrongAreas(s []string) {
	m.strong_areas = &s
	m.appendstrong_areas = nil
}

// StrongAreas returns the value of the "strong_areas" field in the mutation.
func (m *PlayerAnalyticsMutation) StrongAreas() (r []string, exists bool) {
	v := m.strong_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldStrongAreas returns the old "strong_areas" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldStrongAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrongAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrongAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrongAreas: %w", err)
	}
	return oldValue.StrongAreas, nil
}

// AppendStrongAreas adds s to the "strong_areas" field.
func (m *PlayerAnalyticsMutation) AppendStrongAreas(s []string) {
	m.appendstrong_areas = append(m.appendstrong_areas, s...)
}

// AppendedStrongAreas returns the list of values that were appended to the "strong_areas" field in this mutation.
func (m *PlayerAnalyticsMutation) AppendedStrongAreas() ([]string, bool) {
	if len(m.appendstrong_areas) == 0 {
		return nil, false
	}
	return m.appendstrong_areas, true
}

// ResetStrongAreas resets all changes to the "strong_areas" field.
func (m *PlayerAnalyticsMutation) ResetStrongAreas() {
	m.strong_areas = nil
	m.appendstrong_areas = nil
}

// SetPreferredDirection sets the "preferred_direction" field.
func (m *PlayerAnalyticsMutation) SetPreferredDirection(s string) {
	m.preferred_direction = &s
}

// PreferredDirection returns the value of the "preferred_direction" field in the mutation.
func (m *PlayerAnalyticsMutation) PreferredDirection() (r string, exists bool) {
	v := m.preferred_direction
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredDirection returns the old "preferred_direction" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldPreferredDirection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredDirection: %w", err)
	}
	return oldValue.PreferredDirection, nil
}

// ResetPreferredDirection resets all changes to the "preferred_direction" field.
func (m *PlayerAnalyticsMutation) ResetPreferredDirection() {
	m.preferred_direction = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *PlayerAnalyticsMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *PlayerAnalyticsMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *PlayerAnalyticsMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *PlayerAnalyticsMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *PlayerAnalyticsMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlayerAnalyticsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlayerAnalyticsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlayerAnalytics entity.
// If the PlayerAnalytics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerAnalyticsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlayerAnalyticsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PlayerAnalyticsMutation builder.
func (m *PlayerAnalyticsMutation) Where(ps ...predicate.PlayerAnalytics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerAnalyticsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerAnalyticsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlayerAnalytics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerAnalyticsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerAnalyticsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlayerAnalytics).
func (m *PlayerAnalyticsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerAnalyticsMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, playeranalytics.FieldUserID)
	}
	if m.lesson_id != nil {
		fields = append(fields, playeranalytics.FieldLessonID)
	}
	if m.accuracy_trend != nil {
		fields = append(fields, playeranalytics.FieldAccuracyTrend)
	}
	if m.time_trend != nil {
		fields = append(fields, playeranalytics.FieldTimeTrend)
	}
	if m.weak_areas != nil {
		fields = append(fields, playeranalytics.FieldWeakAreas)
	}
	if m.strong_areas != nil {
		fields = append(fields, playeranalytics.FieldStrongAreas)
	}
	if m.preferred_direction != nil {
		fields = append(fields, playeranalytics.FieldPreferredDirection)
	}
	if m.recommendations != nil {
		fields = append(fields, playeranalytics.FieldRecommendations)
	}
	if m.updated_at != nil {
		fields = append(fields, playeranalytics.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerAnalyticsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playeranalytics.FieldUserID:
		return m.UserID()
	case playeranalytics.FieldLessonID:
		return m.LessonID()
	case playeranalytics.FieldAccuracyTrend:
		return m.AccuracyTrend()
	case playeranalytics.FieldTimeTrend:
		return m.TimeTrend()
	case playeranalytics.FieldWeakAreas:
		return m.WeakAreas()
	case playeranalytics.FieldStrongAreas:
		return m.StrongAreas()
	case playeranalytics.FieldPreferredDirection:
		return m.PreferredDirection()
	case playeranalytics.FieldRecommendations:
		return m.Recommendations()
	case playeranalytics.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerAnalyticsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playeranalytics.FieldUserID:
		return m.OldUserID(ctx)
	case playeranalytics.FieldLessonID:
		return m.OldLessonID(ctx)
	case playeranalytics.FieldAccuracyTrend:
		return m.OldAccuracyTrend(ctx)
	case playeranalytics.FieldTimeTrend:
		return m.OldTimeTrend(ctx)
	case playeranalytics.FieldWeakAreas:
		return m.OldWeakAreas(ctx)
	case playeranalytics.FieldStrongAreas:
		return m.OldStrongAreas(ctx)
	case playeranalytics.FieldPreferredDirection:
		return m.OldPreferredDirection(ctx)
	case playeranalytics.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case playeranalytics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlayerAnalytics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerAnalyticsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playeranalytics.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case playeranalytics.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case playeranalytics.FieldAccuracyTrend:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyTrend(v)
		return nil
	case playeranalytics.FieldTimeTrend:
		v, ok := value.([]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTrend(v)
		return nil
	case playeranalytics.FieldWeakAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeakAreas(v)
		return nil
	case playeranalytics.FieldStrongAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrongAreas(v)
		return nil
	case playeranalytics.FieldPreferredDirection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredDirection(v)
		return nil
	case playeranalytics.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case playeranalytics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerAnalytics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerAnalyticsMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerAnalyticsMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerAnalyticsMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlayerAnalytics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerAnalyticsMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerAnalyticsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerAnalyticsMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PlayerAnalytics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerAnalyticsMutation) ResetField(name string) error {
	switch name {
	case playeranalytics.FieldUserID:
		m.ResetUserID()
		return nil
	case playeranalytics.FieldLessonID:
		m.ResetLessonID()
		return nil
	case playeranalytics.FieldAccuracyTrend:
		m.ResetAccuracyTrend()
		return nil
	case playeranalytics.FieldTimeTrend:
		m.ResetTimeTrend()
		return nil
	case playeranalytics.FieldWeakAreas:
		m.ResetWeakAreas()
		return nil
	case playeranalytics.FieldStrongAreas:
		m.ResetStrongAreas()
		return nil
	case playeranalytics.FieldPreferredDirection:
		m.ResetPreferredDirection()
		return nil
	case playeranalytics.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case playeranalytics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlayerAnalytics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerAnalyticsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerAnalyticsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerAnalyticsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerAnalyticsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerAnalyticsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerAnalyticsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerAnalyticsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlayerAnalytics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerAnalyticsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlayerAnalytics edge %s", name)
}

// PlayerProgressMutation represents an operation that mutates the PlayerProgress nodes in the graph.
type PlayerProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	lesson_id        *string
	best_score       *int
	addbest_score    *int
	max_score        *int
	addmax_score     *int
	attempt_count    *int
	addattempt_count *int
	unlocked         *bool
	completed_at     *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PlayerProgress, error)
	predicates       []predicate.PlayerProgress
}

var _ ent.Mutation = (*PlayerProgressMutation)(nil)

// playerprogressOption allows management of the mutation configuration using functional options.
type playerprogressOption func(*PlayerProgressMutation)

// newPlayerProgressMutation creates new mutation for the PlayerProgress entity.
func newPlayerProgressMutation(c config, op Op, opts ...playerprogressOption) *PlayerProgressMutation {
	m := &PlayerProgressMutation{
		config:        c,
		op:            op,
		typ:           TypePlayerProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlayerProgressID sets the ID field of the mutation.
func withPlayerProgressID(id int) playerprogressOption {
	return func(m *PlayerProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *PlayerProgress
		)
		m.oldValue = func(ctx context.Context) (*PlayerProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlayerProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlayerProgress sets the old PlayerProgress of the mutation.
func withPlayerProgress(node *PlayerProgress) playerprogressOption {
	return func(m *PlayerProgressMutation) {
		m.oldValue = func(context.Context) (*PlayerProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlayerProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlayerProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlayerProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlayerProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlayerProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PlayerProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PlayerProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PlayerProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *PlayerProgressMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *PlayerProgressMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *PlayerProgressMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetBestScore sets the "best_score" field.
func (m *PlayerProgressMutation) SetBestScore(i int) {
	m.best_score = &i
	m.addbest_score = nil
}

// BestScore returns the value of the "best_score" field in the mutation.
func (m *PlayerProgressMutation) BestScore() (r int, exists bool) {
	v := m.best_score
	if v == nil {
		return
	}
	return *v, true
}

// OldBestScore returns the old "best_score" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldBestScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestScore: %w", err)
	}
	return oldValue.BestScore, nil
}

// AddBestScore adds i to the "best_score" field.
func (m *PlayerProgressMutation) AddBestScore(i int) {
	if m.addbest_score != nil {
		*m.addbest_score += i
	} else {
		m.addbest_score = &i
	}
}

// AddedBestScore returns the value that was added to the "best_score" field in this mutation.
func (m *PlayerProgressMutation) AddedBestScore() (r int, exists bool) {
	v := m.addbest_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestScore resets all changes to the "best_score" field.
func (m *PlayerProgressMutation) ResetBestScore() {
	m.best_score = nil
	m.addbest_score = nil
}

// SetMaxScore sets the "max_score" field.
func (m *PlayerProgressMutation) SetMaxScore(i int) {
	m.max_score = &i
	m.addmax_score = nil
}

// MaxScore returns the value of the "max_score" field in the mutation.
func (m *PlayerProgressMutation) MaxScore() (r int, exists bool) {
	v := m.max_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScore returns the old "max_score" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldMaxScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScore: %w", err)
	}
	return oldValue.MaxScore, nil
}

// AddMaxScore adds i to the "max_score" field.
func (m *PlayerProgressMutation) AddMaxScore(i int) {
	if m.addmax_score != nil {
		*m.addmax_score += i
	} else {
		m.addmax_score = &i
	}
}

// AddedMaxScore returns the value that was added to the "max_score" field in this mutation.
func (m *PlayerProgressMutation) AddedMaxScore() (r int, exists bool) {
	v := m.addmax_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxScore resets all changes to the "max_score" field.
func (m *PlayerProgressMutation) ResetMaxScore() {
	m.max_score = nil
	m.addmax_score = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *PlayerProgressMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *PlayerProgressMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *PlayerProgressMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *PlayerProgressMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *PlayerProgressMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetUnlocked sets the "unlocked" field.
func (m *PlayerProgressMutation) SetUnlocked(b bool) {
	m.unlocked = &b
}

// Unlocked returns the value of the "unlocked" field in the mutation.
func (m *PlayerProgressMutation) Unlocked() (r bool, exists bool) {
	v := m.unlocked
	if v == nil {
		return
	}
	return *v, true
}

// OldUnlocked returns the old "unlocked" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldUnlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnlocked: %w", err)
	}
	return oldValue.Unlocked, nil
}

// ResetUnlocked resets all changes to the "unlocked" field.
func (m *PlayerProgressMutation) ResetUnlocked() {
	m.unlocked = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlayerProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlayerProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlayerProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[playerprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlayerProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[playerprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlayerProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, playerprogress.FieldCompletedAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlayerProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlayerProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlayerProgress entity.
// If the PlayerProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlayerProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlayerProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PlayerProgressMutation builder.
func (m *PlayerProgressMutation) Where(ps ...predicate.PlayerProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlayerProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlayerProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlayerProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlayerProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlayerProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlayerProgress).
func (m *PlayerProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlayerProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user_id != nil {
		fields = append(fields, playerprogress.FieldUserID)
	}
	if m.lesson_id != nil {
		fields = append(fields, playerprogress.FieldLessonID)
	}
	if m.best_score != nil {
		fields = append(fields, playerprogress.FieldBestScore)
	}
	if m.max_score != nil {
		fields = append(fields, playerprogress.FieldMaxScore)
	}
	if m.attempt_count != nil {
		fields = append(fields, playerprogress.FieldAttemptCount)
	}
	if m.unlocked != nil {
		fields = append(fields, playerprogress.FieldUnlocked)
	}
	if m.completed_at != nil {
		fields = append(fields, playerprogress.FieldCompletedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, playerprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlayerProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playerprogress.FieldUserID:
		return m.UserID()
	case playerprogress.FieldLessonID:
		return m.LessonID()
	case playerprogress.FieldBestScore:
		return m.BestScore()
	case playerprogress.FieldMaxScore:
		return m.MaxScore()
	case playerprogress.FieldAttemptCount:
		return m.AttemptCount()
	case playerprogress.FieldUnlocked:
		return m.Unlocked()
	case playerprogress.FieldCompletedAt:
		return m.CompletedAt()
	case playerprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlayerProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playerprogress.FieldUserID:
		return m.OldUserID(ctx)
	case playerprogress.FieldLessonID:
		return m.OldLessonID(ctx)
	case playerprogress.FieldBestScore:
		return m.OldBestScore(ctx)
	case playerprogress.FieldMaxScore:
		return m.OldMaxScore(ctx)
	case playerprogress.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case playerprogress.FieldUnlocked:
		return m.OldUnlocked(ctx)
	case playerprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case playerprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlayerProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playerprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case playerprogress.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case playerprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestScore(v)
		return nil
	case playerprogress.FieldMaxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScore(v)
		return nil
	case playerprogress.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case playerprogress.FieldUnlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnlocked(v)
		return nil
	case playerprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case playerprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlayerProgressMutation) AddedFields() []string {
	var fields []string
	if m.addbest_score != nil {
		fields = append(fields, playerprogress.FieldBestScore)
	}
	if m.addmax_score != nil {
		fields = append(fields, playerprogress.FieldMaxScore)
	}
	if m.addattempt_count != nil {
		fields = append(fields, playerprogress.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlayerProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case playerprogress.FieldBestScore:
		return m.AddedBestScore()
	case playerprogress.FieldMaxScore:
		return m.AddedMaxScore()
	case playerprogress.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlayerProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case playerprogress.FieldBestScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestScore(v)
		return nil
	case playerprogress.FieldMaxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScore(v)
		return nil
	case playerprogress.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown PlayerProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlayerProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playerprogress.FieldCompletedAt) {
		fields = append(fields, playerprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlayerProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlayerProgressMutation) ClearField(name string) error {
	switch name {
	case playerprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlayerProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlayerProgressMutation) ResetField(name string) error {
	switch name {
	case playerprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case playerprogress.FieldLessonID:
		m.ResetLessonID()
		return nil
	case playerprogress.FieldBestScore:
		m.ResetBestScore()
		return nil
	case playerprogress.FieldMaxScore:
		m.ResetMaxScore()
		return nil
	case playerprogress.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case playerprogress.FieldUnlocked:
		m.ResetUnlocked()
		return nil
	case playerprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case playerprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlayerProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlayerProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlayerProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlayerProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlayerProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlayerProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlayerProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlayerProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlayerProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlayerProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlayerProgress edge %s", name)
}
