package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameSession is one timed play-through of a lesson's question set.
// The question snapshot is frozen at start; later edits to the source
// lesson never affect an in-flight session.
type GameSession struct {
	ent.Schema
}

// SessionChoice is the serialized form of a question choice.
type SessionChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SessionQuestion is the serialized form of a snapshotted question.
type SessionQuestion struct {
	ID               string          `json:"id"`
	Text             string          `json:"text"`
	Type             string          `json:"type"`
	Choices          []SessionChoice `json:"choices"`
	CorrectAnswerID  string          `json:"correct_answer_id"`
	Explanation      string          `json:"explanation,omitempty"`
	Topic            string          `json:"topic,omitempty"`
	Difficulty       string          `json:"difficulty"`
	Points           int             `json:"points"`
	TimeLimitSeconds int             `json:"time_limit_seconds"`
}

func (GameSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID assigned at session start"),
		field.String("user_id").
			NotEmpty(),
		field.String("lesson_id").
			NotEmpty(),
		field.JSON("questions", []SessionQuestion{}).
			Comment("Ordered question snapshot, fixed at start"),
		field.Int("current_index").
			Default(0),
		field.JSON("answers", []string{}).
			Comment("One slot per question; empty string = unanswered"),
		field.JSON("awarded_points", []int{}).
			Comment("Per-question points granted, for overwrite recompute"),
		field.Int("score").
			Default(0),
		field.Int("mistake_count").
			Default(0),
		field.Int("hints_used").
			Default(0).
			Comment("Session total"),
		field.JSON("hints_per_question", []int{}),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Bool("completed").
			Default(false),
	}
}

func (GameSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "lesson_id"),
		index.Fields("completed"),
		index.Fields("started_at"),
	}
}
