package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement is an append-only unlock record. At most one row exists per
// (user, type); the unique index backs the check-before-insert guard.
type Achievement struct {
	ent.Schema
}

func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("type").
			NotEmpty().
			Comment("first_lesson, perfect_score, speed_demon, flawless, milestone_N"),
		field.JSON("data", map[string]any{}).
			Optional().
			Comment("Free-form unlock context"),
		field.Time("unlocked_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "type").Unique(),
		index.Fields("user_id"),
	}
}
