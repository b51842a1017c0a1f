package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlayerAnalytics holds rolling learning-pattern trends for one
// (user, lesson) pair. One row per pair, rewritten after every session.
type PlayerAnalytics struct {
	ent.Schema
}

func (PlayerAnalytics) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.JSON("accuracy_trend", []float64{}).
			Comment("Per-session accuracy, bounded to the last 10"),
		field.JSON("time_trend", []float64{}).
			Comment("Per-session average answer time in seconds, last 10"),
		field.JSON("weak_areas", []string{}),
		field.JSON("strong_areas", []string{}),
		field.String("preferred_direction").
			Default("maintain").
			Comment("increase, decrease, or maintain"),
		field.JSON("recommendations", []string{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PlayerAnalytics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
	}
}
