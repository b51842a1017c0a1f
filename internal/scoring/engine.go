package scoring

import (
	"math"

	"github.com/methkalz/quizkit/internal/question"
)

// ComputeScore derives the full score breakdown for a finished session.
// Pure: the same result and config always yield the same breakdown.
func ComputeScore(result SessionResult, cfg Config) Breakdown {
	total := len(result.Answers)
	bd := Breakdown{TotalQuestions: total}
	if total == 0 {
		return bd
	}

	var difficultyBonus float64
	correct := 0
	streak, maxStreak := 0, 0
	noHints := true

	for _, a := range result.Answers {
		if a.HintsUsed > 0 {
			noHints = false
		}
		if !a.Correct {
			streak = 0
			continue
		}
		correct++
		streak++
		if streak > maxStreak {
			maxStreak = streak
		}
		bd.Base += cfg.BasePoints
		difficultyBonus += float64(cfg.BasePoints) * (cfg.Multiplier(a.Difficulty) - 1)
	}

	bd.Correct = correct
	bd.MaxStreak = maxStreak
	bd.Accuracy = float64(correct) / float64(total)
	bd.AvgTimeSeconds = result.TotalTimeSeconds / float64(total)

	addBonus := func(kind BonusKind, points int) {
		if points > 0 {
			bd.Bonuses = append(bd.Bonuses, Bonus{Kind: kind, Points: points})
		}
	}

	addBonus(BonusDifficulty, int(math.Round(difficultyBonus)))

	accuracyBonus := int(math.Round(float64(bd.Base) * (bd.Accuracy - 0.5) * cfg.AccuracyMultiplier))
	addBonus(BonusAccuracy, accuracyBonus)

	if bd.AvgTimeSeconds > 0 && bd.AvgTimeSeconds < cfg.SpeedCompletionThresholdSeconds {
		ratio := cfg.SpeedCompletionThresholdSeconds/bd.AvgTimeSeconds - 1
		addBonus(BonusSpeed, int(math.Round(float64(bd.Base)*ratio*cfg.TimeBonusMultiplier)))
	}

	if maxStreak >= 3 {
		addBonus(BonusStreak, (maxStreak/3)*cfg.StreakBonusPoints)
	}

	if bd.Accuracy == 1.0 {
		addBonus(BonusPerfect, cfg.PerfectScoreBonus)
	}

	if bd.AvgTimeSeconds > 0 && bd.AvgTimeSeconds < cfg.SpeedCompletionThresholdSeconds/2 && bd.Accuracy >= 0.8 {
		addBonus(BonusLightning, int(math.Round(float64(bd.Base)*0.5)))
	}

	if noHints {
		addBonus(BonusNoHints, int(math.Round(float64(bd.Base)*0.2)))
	}

	bd.Total = bd.Base
	for _, bn := range bd.Bonuses {
		bd.Total += bn.Points
	}
	return bd
}

// ComputeQuestionScore is the simplified per-question award used for live
// feedback during play, independent of the session-level breakdown:
// base times the difficulty multiplier, boosted 20% when answered in under
// half the time limit, minus 2 points per hint, never below 1.
func ComputeQuestionScore(q *question.Question, timeSpentSeconds float64, hintsUsed int, cfg Config) int {
	pts := float64(cfg.BasePoints) * cfg.Multiplier(q.Difficulty)
	if timeSpentSeconds < float64(q.TimeLimitSeconds)/2 {
		pts *= 1.2
	}
	score := int(math.Round(pts)) - 2*hintsUsed
	if score < 1 {
		score = 1
	}
	return score
}
