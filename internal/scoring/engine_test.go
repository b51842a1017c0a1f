package scoring

import (
	"testing"

	"github.com/methkalz/quizkit/internal/question"
)

func perfectFiveResult() SessionResult {
	return SessionResult{
		Answers: []AnswerResult{
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyMedium},
			{Correct: true, Difficulty: question.DifficultyHard},
			{Correct: true, Difficulty: question.DifficultyHard},
		},
		TotalTimeSeconds: 250,
	}
}

func TestComputeScore_PerfectSession(t *testing.T) {
	bd := ComputeScore(perfectFiveResult(), DefaultConfig())

	// 5 correct at 10 base points each.
	if bd.Base != 50 {
		t.Errorf("Base = %d, want 50", bd.Base)
	}
	// 10*(1.0-1)*2 + 10*(1.5-1) + 10*(2.0-1)*2 = 25.
	if got := bd.BonusPoints(BonusDifficulty); got != 25 {
		t.Errorf("difficulty bonus = %d, want 25", got)
	}
	// round(50 * (1.0-0.5) * 1.0) = 25.
	if got := bd.BonusPoints(BonusAccuracy); got != 25 {
		t.Errorf("accuracy bonus = %d, want 25", got)
	}
	// avg 50s under the 60s threshold: round(50 * (60/50-1) * 1.5) = 15.
	if got := bd.BonusPoints(BonusSpeed); got != 15 {
		t.Errorf("speed bonus = %d, want 15", got)
	}
	// streak of 5: (5/3) * 5 = 5.
	if got := bd.BonusPoints(BonusStreak); got != 5 {
		t.Errorf("streak bonus = %d, want 5", got)
	}
	if got := bd.BonusPoints(BonusPerfect); got != 25 {
		t.Errorf("perfect bonus = %d, want 25", got)
	}
	// avg 50s is not under 30s, so no lightning bonus.
	if got := bd.BonusPoints(BonusLightning); got != 0 {
		t.Errorf("lightning bonus = %d, want 0", got)
	}
	// round(50 * 0.2) = 10.
	if got := bd.BonusPoints(BonusNoHints); got != 10 {
		t.Errorf("no-hints bonus = %d, want 10", got)
	}

	want := 50 + 25 + 25 + 15 + 5 + 25 + 10
	if bd.Total != want {
		t.Errorf("Total = %d, want %d", bd.Total, want)
	}
	if bd.Accuracy != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", bd.Accuracy)
	}
	if bd.MaxStreak != 5 {
		t.Errorf("MaxStreak = %d, want 5", bd.MaxStreak)
	}
}

func TestComputeScore_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := ComputeScore(perfectFiveResult(), cfg)
	b := ComputeScore(perfectFiveResult(), cfg)
	if a.Total != b.Total || a.Base != b.Base || len(a.Bonuses) != len(b.Bonuses) {
		t.Errorf("same input produced different breakdowns: %+v vs %+v", a, b)
	}
}

func TestComputeScore_LowAccuracySkipsAccuracyBonus(t *testing.T) {
	// 2 of 5 correct: accuracy 0.4, below the 0.5 pivot.
	result := SessionResult{
		Answers: []AnswerResult{
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: false, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: false, Difficulty: question.DifficultyMedium},
			{Correct: false, Difficulty: question.DifficultyHard},
		},
		TotalTimeSeconds: 500,
	}
	bd := ComputeScore(result, DefaultConfig())

	if got := bd.BonusPoints(BonusAccuracy); got != 0 {
		t.Errorf("accuracy bonus = %d, want 0 (never negative)", got)
	}
	if got := bd.BonusPoints(BonusPerfect); got != 0 {
		t.Errorf("perfect bonus = %d, want 0", got)
	}
	if bd.Total < bd.Base {
		t.Errorf("Total = %d below Base = %d", bd.Total, bd.Base)
	}
}

func TestComputeScore_StreakBrokenByMistake(t *testing.T) {
	result := SessionResult{
		Answers: []AnswerResult{
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: false, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
		},
		TotalTimeSeconds: 500,
	}
	bd := ComputeScore(result, DefaultConfig())

	if bd.MaxStreak != 2 {
		t.Errorf("MaxStreak = %d, want 2", bd.MaxStreak)
	}
	if got := bd.BonusPoints(BonusStreak); got != 0 {
		t.Errorf("streak bonus = %d, want 0 for streak under 3", got)
	}
}

func TestComputeScore_HintsDisableNoHintsBonus(t *testing.T) {
	result := SessionResult{
		Answers: []AnswerResult{
			{Correct: true, Difficulty: question.DifficultyEasy, HintsUsed: 1},
			{Correct: true, Difficulty: question.DifficultyEasy},
		},
		TotalTimeSeconds: 200,
	}
	bd := ComputeScore(result, DefaultConfig())
	if got := bd.BonusPoints(BonusNoHints); got != 0 {
		t.Errorf("no-hints bonus = %d, want 0", got)
	}
}

func TestComputeScore_LightningRequiresAccuracyAndSpeed(t *testing.T) {
	fast := SessionResult{
		Answers: []AnswerResult{
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
			{Correct: true, Difficulty: question.DifficultyEasy},
		},
		TotalTimeSeconds: 100, // avg 20s, under half the 60s threshold
	}
	bd := ComputeScore(fast, DefaultConfig())
	if got := bd.BonusPoints(BonusLightning); got != 25 {
		t.Errorf("lightning bonus = %d, want round(50*0.5)=25", got)
	}

	// Same speed, accuracy below 0.8: no lightning.
	fast.Answers[0].Correct = false
	fast.Answers[1].Correct = false
	bd = ComputeScore(fast, DefaultConfig())
	if got := bd.BonusPoints(BonusLightning); got != 0 {
		t.Errorf("lightning bonus = %d, want 0 at 60%% accuracy", got)
	}
}

func TestComputeScore_EmptySession(t *testing.T) {
	bd := ComputeScore(SessionResult{}, DefaultConfig())
	if bd.Total != 0 || bd.Base != 0 || len(bd.Bonuses) != 0 {
		t.Errorf("empty session breakdown = %+v, want all zero", bd)
	}
}

func TestComputeQuestionScore(t *testing.T) {
	cfg := DefaultConfig()
	q := &question.Question{Difficulty: question.DifficultyHard, TimeLimitSeconds: 60}

	// 10 * 2.0 with the fast boost: round(20 * 1.2) = 24.
	if got := ComputeQuestionScore(q, 10, 0, cfg); got != 24 {
		t.Errorf("fast hard answer = %d, want 24", got)
	}
	// No boost at or over half the limit.
	if got := ComputeQuestionScore(q, 45, 0, cfg); got != 20 {
		t.Errorf("slow hard answer = %d, want 20", got)
	}
	// Hints subtract 2 each.
	if got := ComputeQuestionScore(q, 45, 3, cfg); got != 14 {
		t.Errorf("hinted answer = %d, want 14", got)
	}
	// Floor at 1.
	easy := &question.Question{Difficulty: question.DifficultyEasy, TimeLimitSeconds: 60}
	if got := ComputeQuestionScore(easy, 45, 10, cfg); got != 1 {
		t.Errorf("over-hinted answer = %d, want floor of 1", got)
	}
}
