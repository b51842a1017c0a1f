package scoring

import "github.com/methkalz/quizkit/internal/question"

// Config holds the deployment-wide scoring knobs.
type Config struct {
	BasePoints            int
	DifficultyMultipliers map[question.Difficulty]float64
	TimeBonusMultiplier   float64
	AccuracyMultiplier    float64
	StreakBonusPoints     int
	PerfectScoreBonus     int

	// SpeedCompletionThresholdSeconds is the average answer time below
	// which speed bonuses kick in.
	SpeedCompletionThresholdSeconds float64
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() Config {
	return Config{
		BasePoints: 10,
		DifficultyMultipliers: map[question.Difficulty]float64{
			question.DifficultyEasy:   1.0,
			question.DifficultyMedium: 1.5,
			question.DifficultyHard:   2.0,
		},
		TimeBonusMultiplier:             1.5,
		AccuracyMultiplier:              1.0,
		StreakBonusPoints:               5,
		PerfectScoreBonus:               25,
		SpeedCompletionThresholdSeconds: 60,
	}
}

// Multiplier returns the configured multiplier for a difficulty,
// defaulting to 1.0 for anything unconfigured.
func (c Config) Multiplier(d question.Difficulty) float64 {
	if m, ok := c.DifficultyMultipliers[d]; ok {
		return m
	}
	return 1.0
}
