// Code generated by ent, DO NOT EDIT.

package playeranalytics

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the playeranalytics type in the database.
	Label = "player_analytics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldAccuracyTrend holds the string denoting the accuracy_trend field in the database.
	FieldAccuracyTrend = "accuracy_trend"
	// FieldTimeTrend holds the string denoting the time_trend field in the database.
	FieldTimeTrend = "time_trend"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldStrongAreas holds the string denoting the strong_areas field in the database.
	FieldStrongAreas = "strong_areas"
	// FieldPreferredDirection holds the string denoting the preferred_direction field in the database.
	FieldPreferredDirection = "preferred_direction"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the playeranalytics in the database.
	Table = "player_analytics"
)

// Columns holds all SQL columns for playeranalytics fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLessonID,
	FieldAccuracyTrend,
	FieldTimeTrend,
	FieldWeakAreas,
	FieldStrongAreas,
	FieldPreferredDirection,
	FieldRecommendations,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// DefaultPreferredDirection holds the default value on creation for the "preferred_direction" field.
	DefaultPreferredDirection string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PlayerAnalytics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByPreferredDirection orders the results by the preferred_direction field.
func ByPreferredDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreferredDirection, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
