// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/playeranalytics"
)

// PlayerAnalytics is the model entity for the PlayerAnalytics schema.
type PlayerAnalytics struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// Per-session accuracy, bounded to the last 10
	AccuracyTrend []float64 `json:"accuracy_trend,omitempty"`
	// Per-session average answer time in seconds, last 10
	TimeTrend []float64 `json:"time_trend,omitempty"`
	// WeakAreas holds the value of the "weak_areas" field.
	WeakAreas []string `json:"weak_areas,omitempty"`
	// StrongAreas holds the value of the "strong_areas" field.
	StrongAreas []string `json:"strong_areas,omitempty"`
	// increase, decrease, or maintain
	PreferredDirection string `json:"preferred_direction,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlayerAnalytics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playeranalytics.FieldAccuracyTrend, playeranalytics.FieldTimeTrend, playeranalytics.FieldWeakAreas, playeranalytics.FieldStrongAreas, playeranalytics.FieldRecommendations:
			values[i] = new([]byte)
		case playeranalytics.FieldID:
			values[i] = new(sql.NullInt64)
		case playeranalytics.FieldUserID, playeranalytics.FieldLessonID, playeranalytics.FieldPreferredDirection:
			values[i] = new(sql.NullString)
		case playeranalytics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlayerAnalytics fields.
func (_m *PlayerAnalytics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playeranalytics.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case playeranalytics.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case playeranalytics.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case playeranalytics.FieldAccuracyTrend:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_trend", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AccuracyTrend); err != nil {
					return fmt.Errorf("unmarshal field accuracy_trend: %w", err)
				}
			}
		case playeranalytics.FieldTimeTrend:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field time_trend", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TimeTrend); err != nil {
					return fmt.Errorf("unmarshal field time_trend: %w", err)
				}
			}
		case playeranalytics.FieldWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakAreas); err != nil {
					return fmt.Errorf("unmarshal field weak_areas: %w", err)
				}
			}
		case playeranalytics.FieldStrongAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strong_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrongAreas); err != nil {
					return fmt.Errorf("unmarshal field strong_areas: %w", err)
				}
			}
		case playeranalytics.FieldPreferredDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preferred_direction", values[i])
			} else if value.Valid {
				_m.PreferredDirection = value.String
			}
		case playeranalytics.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case playeranalytics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlayerAnalytics.
// This includes values selected through modifiers, order, etc.
func (_m *PlayerAnalytics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlayerAnalytics.
// Note that you need to call PlayerAnalytics.Unwrap() before calling this method if this PlayerAnalytics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlayerAnalytics) Update() *PlayerAnalyticsUpdateOne {
	return NewPlayerAnalyticsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlayerAnalytics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlayerAnalytics) Unwrap() *PlayerAnalytics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlayerAnalytics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlayerAnalytics) String() string {
	var builder strings.Builder
	builder.WriteString("PlayerAnalytics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("accuracy_trend=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyTrend))
	builder.WriteString(", ")
	builder.WriteString("time_trend=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTrend))
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAreas))
	builder.WriteString(", ")
	builder.WriteString("strong_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrongAreas))
	builder.WriteString(", ")
	builder.WriteString("preferred_direction=")
	builder.WriteString(_m.PreferredDirection)
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlayerAnalyticsSlice is a parsable slice of PlayerAnalytics.
type PlayerAnalyticsSlice []*PlayerAnalytics
