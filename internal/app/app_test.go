package app

import (
	"testing"

	"github.com/methkalz/quizkit/internal/difficulty"
	"github.com/methkalz/quizkit/internal/question"
)

func bank() []question.Question {
	mk := func(id string, d question.Difficulty) question.Question {
		return question.Question{ID: id, Difficulty: d}
	}
	return []question.Question{
		mk("e1", question.DifficultyEasy),
		mk("e2", question.DifficultyEasy),
		mk("e3", question.DifficultyEasy),
		mk("m1", question.DifficultyMedium),
		mk("m2", question.DifficultyMedium),
		mk("h1", question.DifficultyHard),
	}
}

func TestComposeSet_MatchesMix(t *testing.T) {
	cfg := difficulty.Config{
		Level:               difficulty.LevelBasic,
		QuestionsPerSession: 5,
		EasyPct:             60,
		MediumPct:           30,
		HardPct:             10,
	}
	// 5 questions at 60/30/10: 1 medium, 0 hard, 4 easy after remainder.
	got := composeSet(bank(), cfg)
	if len(got) != 5 {
		t.Fatalf("got %d questions, want 5", len(got))
	}

	counts := map[question.Difficulty]int{}
	for _, q := range got {
		counts[q.Difficulty]++
	}
	// Only 3 easy exist; the shortfall backfills from the remaining pool.
	if counts[question.DifficultyEasy] != 3 {
		t.Errorf("easy count = %d, want all 3 available", counts[question.DifficultyEasy])
	}
	if counts[question.DifficultyMedium] < 1 {
		t.Errorf("medium count = %d, want at least 1", counts[question.DifficultyMedium])
	}
}

func TestComposeSet_Deterministic(t *testing.T) {
	cfg := difficulty.Config{
		Level:               difficulty.LevelIntermediate,
		QuestionsPerSession: 4,
		EasyPct:             30,
		MediumPct:           50,
		HardPct:             20,
	}
	first := composeSet(bank(), cfg)
	for i := 0; i < 5; i++ {
		again := composeSet(bank(), cfg)
		if len(again) != len(first) {
			t.Fatalf("length changed between runs: %d vs %d", len(again), len(first))
		}
		for j := range first {
			if again[j].ID != first[j].ID {
				t.Fatalf("pick order changed: %s vs %s at %d", again[j].ID, first[j].ID, j)
			}
		}
	}
}

func TestComposeSet_ThinContentUsesEverything(t *testing.T) {
	cfg := difficulty.Config{
		Level:               difficulty.LevelAdvanced,
		QuestionsPerSession: 8,
		EasyPct:             20,
		MediumPct:           40,
		HardPct:             40,
	}
	got := composeSet(bank(), cfg)
	if len(got) != len(bank()) {
		t.Errorf("got %d questions from a bank of %d", len(got), len(bank()))
	}
}
