// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id_type",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
			{
				Name:    "achievement_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementsColumns[1]},
			},
		},
	}
	// GameSessionsColumns holds the columns for the "game_sessions" table.
	GameSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "awarded_points", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "mistake_count", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "hints_per_question", Type: field.TypeJSON},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
	}
	// GameSessionsTable holds the schema information for the "game_sessions" table.
	GameSessionsTable = &schema.Table{
		Name:       "game_sessions",
		Columns:    GameSessionsColumns,
		PrimaryKey: []*schema.Column{GameSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gamesession_session_id",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[1]},
			},
			{
				Name:    "gamesession_user_id_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[2], GameSessionsColumns[3]},
			},
			{
				Name:    "gamesession_completed",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[14]},
			},
			{
				Name:    "gamesession_started_at",
				Unique:  false,
				Columns: []*schema.Column{GameSessionsColumns[12]},
			},
		},
	}
	// PlayerAnalyticsColumns holds the columns for the "player_analytics" table.
	PlayerAnalyticsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "accuracy_trend", Type: field.TypeJSON},
		{Name: "time_trend", Type: field.TypeJSON},
		{Name: "weak_areas", Type: field.TypeJSON},
		{Name: "strong_areas", Type: field.TypeJSON},
		{Name: "preferred_direction", Type: field.TypeString, Default: "maintain"},
		{Name: "recommendations", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlayerAnalyticsTable holds the schema information for the "player_analytics" table.
	PlayerAnalyticsTable = &schema.Table{
		Name:       "player_analytics",
		Columns:    PlayerAnalyticsColumns,
		PrimaryKey: []*schema.Column{PlayerAnalyticsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playeranalytics_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{PlayerAnalyticsColumns[1], PlayerAnalyticsColumns[2]},
			},
		},
	}
	// PlayerProgressesColumns holds the columns for the "player_progresses" table.
	PlayerProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "best_score", Type: field.TypeInt, Default: 0},
		{Name: "max_score", Type: field.TypeInt, Default: 0},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "unlocked", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PlayerProgressesTable holds the schema information for the "player_progresses" table.
	PlayerProgressesTable = &schema.Table{
		Name:       "player_progresses",
		Columns:    PlayerProgressesColumns,
		PrimaryKey: []*schema.Column{PlayerProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playerprogress_user_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{PlayerProgressesColumns[1], PlayerProgressesColumns[2]},
			},
			{
				Name:    "playerprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlayerProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		GameSessionsTable,
		PlayerAnalyticsTable,
		PlayerProgressesTable,
	}
)

func init() {
}
