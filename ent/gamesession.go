// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/schema"
)

// GameSession is the model entity for the GameSession schema.
type GameSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at session start
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Ordered question snapshot, fixed at start
	Questions []schema.SessionQuestion `json:"questions,omitempty"`
	// CurrentIndex holds the value of the "current_index" field.
	CurrentIndex int `json:"current_index,omitempty"`
	// One slot per question; empty string = unanswered
	Answers []string `json:"answers,omitempty"`
	// Per-question points granted, for overwrite recompute
	AwardedPoints []int `json:"awarded_points,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// MistakeCount holds the value of the "mistake_count" field.
	MistakeCount int `json:"mistake_count,omitempty"`
	// Session total
	HintsUsed int `json:"hints_used,omitempty"`
	// HintsPerQuestion holds the value of the "hints_per_question" field.
	HintsPerQuestion []int `json:"hints_per_question,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed    bool `json:"completed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldQuestions, gamesession.FieldAnswers, gamesession.FieldAwardedPoints, gamesession.FieldHintsPerQuestion:
			values[i] = new([]byte)
		case gamesession.FieldCompleted:
			values[i] = new(sql.NullBool)
		case gamesession.FieldID, gamesession.FieldCurrentIndex, gamesession.FieldScore, gamesession.FieldMistakeCount, gamesession.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case gamesession.FieldSessionID, gamesession.FieldUserID, gamesession.FieldLessonID:
			values[i] = new(sql.NullString)
		case gamesession.FieldStartedAt, gamesession.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameSession fields.
func (_m *GameSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gamesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case gamesession.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case gamesession.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case gamesession.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case gamesession.FieldCurrentIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_index", values[i])
			} else if value.Valid {
				_m.CurrentIndex = int(value.Int64)
			}
		case gamesession.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case gamesession.FieldAwardedPoints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_points", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AwardedPoints); err != nil {
					return fmt.Errorf("unmarshal field awarded_points: %w", err)
				}
			}
		case gamesession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case gamesession.FieldMistakeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_count", values[i])
			} else if value.Valid {
				_m.MistakeCount = int(value.Int64)
			}
		case gamesession.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case gamesession.FieldHintsPerQuestion:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hints_per_question", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.HintsPerQuestion); err != nil {
					return fmt.Errorf("unmarshal field hints_per_question: %w", err)
				}
			}
		case gamesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case gamesession.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case gamesession.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameSession.
// This includes values selected through modifiers, order, etc.
func (_m *GameSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameSession.
// Note that you need to call GameSession.Unwrap() before calling this method if this GameSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameSession) Update() *GameSessionUpdateOne {
	return NewGameSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameSession) Unwrap() *GameSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameSession) String() string {
	var builder strings.Builder
	builder.WriteString("GameSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("current_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentIndex))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("awarded_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.AwardedPoints))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("mistake_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MistakeCount))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("hints_per_question=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsPerQuestion))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteByte(')')
	return builder.String()
}

// GameSessions is a parsable slice of GameSession.
type GameSessions []*GameSession
