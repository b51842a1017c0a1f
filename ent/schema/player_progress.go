package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlayerProgress is the cumulative best-ever record for one (user, lesson)
// pair across attempts. Exactly one row per pair; writes are upserts.
type PlayerProgress struct {
	ent.Schema
}

func (PlayerProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.Int("best_score").
			Default(0).
			Comment("Monotonically non-decreasing across attempts"),
		field.Int("max_score").
			Default(0),
		field.Int("attempt_count").
			Default(0).
			Comment("Increments once per completed session"),
		field.Bool("unlocked").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set when a score reaches the pass threshold"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (PlayerProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "lesson_id").Unique(),
		index.Fields("user_id"),
	}
}
