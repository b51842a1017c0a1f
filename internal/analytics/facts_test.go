package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/store"
)

func TestFactsFromSession(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(120 * time.Second)
	sess := &store.GameSession{
		Questions: []question.Question{
			{ID: "q1", CorrectAnswerID: "a", Topic: "fractions"},
			{ID: "q2", CorrectAnswerID: "a", Topic: "fractions"},
			{ID: "q3", CorrectAnswerID: "a", Topic: "decimals"},
			{ID: "q4", CorrectAnswerID: "a"},
		},
		Answers:   []string{"a", "b", "a", ""},
		StartedAt: start,
		EndedAt:   &end,
	}

	facts := FactsFromSession(sess)
	if facts.Accuracy != 0.5 {
		t.Errorf("Accuracy = %v, want 0.5", facts.Accuracy)
	}
	if facts.AvgTimeSeconds != 30 {
		t.Errorf("AvgTimeSeconds = %v, want 30", facts.AvgTimeSeconds)
	}
	// One wrong fractions answer taints the whole topic.
	if !reflect.DeepEqual(facts.MistakeTopics, []string{"fractions"}) {
		t.Errorf("MistakeTopics = %v, want [fractions]", facts.MistakeTopics)
	}
	if !reflect.DeepEqual(facts.CleanTopics, []string{"decimals"}) {
		t.Errorf("CleanTopics = %v, want [decimals]", facts.CleanTopics)
	}
}

func TestFactsFromSession_Empty(t *testing.T) {
	facts := FactsFromSession(&store.GameSession{})
	if facts.Accuracy != 0 || facts.AvgTimeSeconds != 0 {
		t.Errorf("empty session facts = %+v, want zero", facts)
	}
}
