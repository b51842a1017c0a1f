package question

import (
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:   "q1",
		Text: "What is 2+2?",
		Type: TypeMultipleChoice,
		Choices: []Choice{
			{ID: "a", Text: "3"},
			{ID: "b", Text: "4"},
		},
		CorrectAnswerID:  "b",
		Difficulty:       DifficultyEasy,
		Points:           10,
		TimeLimitSeconds: 60,
	}
}

func TestValidate_Valid(t *testing.T) {
	q := validQuestion()
	if err := q.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Question)
		wantSub string
	}{
		{"empty id", func(q *Question) { q.ID = "" }, "empty id"},
		{"empty text", func(q *Question) { q.Text = "" }, "empty text"},
		{"unknown type", func(q *Question) { q.Type = "essay" }, "unknown type"},
		{"unknown difficulty", func(q *Question) { q.Difficulty = "brutal" }, "unknown difficulty"},
		{"one choice", func(q *Question) { q.Choices = q.Choices[:1]; q.CorrectAnswerID = "a" }, "need at least 2"},
		{"duplicate choice ids", func(q *Question) { q.Choices[1].ID = "a" }, "duplicate choice id"},
		{"correct answer missing", func(q *Question) { q.CorrectAnswerID = "z" }, "not among choices"},
		{"zero points", func(q *Question) { q.Points = 0 }, "points must be positive"},
		{"negative time limit", func(q *Question) { q.TimeLimitSeconds = -1 }, "negative time limit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(&q)
			err := q.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestNormalize_FillsTimeLimit(t *testing.T) {
	q := validQuestion()
	q.TimeLimitSeconds = 0
	q.Normalize()
	if q.TimeLimitSeconds != DefaultTimeLimitSeconds {
		t.Errorf("TimeLimitSeconds = %d, want %d", q.TimeLimitSeconds, DefaultTimeLimitSeconds)
	}

	q.TimeLimitSeconds = 30
	q.Normalize()
	if q.TimeLimitSeconds != 30 {
		t.Errorf("Normalize overwrote an explicit time limit: %d", q.TimeLimitSeconds)
	}
}

func TestChoiceLookup(t *testing.T) {
	q := validQuestion()
	if c := q.Choice("b"); c == nil || c.Text != "4" {
		t.Errorf("Choice(b) = %+v, want text 4", c)
	}
	if c := q.Choice("nope"); c != nil {
		t.Errorf("Choice(nope) = %+v, want nil", c)
	}
}

func TestSanitize_DropsInvalid(t *testing.T) {
	bad := validQuestion()
	bad.Choices = bad.Choices[:1]
	bad.CorrectAnswerID = "a"

	noLimit := validQuestion()
	noLimit.ID = "q2"
	noLimit.TimeLimitSeconds = 0

	out := Sanitize([]Question{bad, validQuestion(), noLimit})
	if len(out) != 2 {
		t.Fatalf("Sanitize kept %d questions, want 2", len(out))
	}
	if out[1].TimeLimitSeconds != DefaultTimeLimitSeconds {
		t.Errorf("Sanitize did not normalize: TimeLimitSeconds = %d", out[1].TimeLimitSeconds)
	}
}
