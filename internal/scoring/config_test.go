package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/methkalz/quizkit/internal/question"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Positive(t, cfg.BasePoints)
	require.Len(t, cfg.DifficultyMultipliers, 3)

	assert.Equal(t, 1.0, cfg.Multiplier(question.DifficultyEasy))
	assert.Equal(t, 1.5, cfg.Multiplier(question.DifficultyMedium))
	assert.Equal(t, 2.0, cfg.Multiplier(question.DifficultyHard))
}

func TestMultiplierDefaultsToOne(t *testing.T) {
	cfg := Config{DifficultyMultipliers: map[question.Difficulty]float64{
		question.DifficultyHard: 3.0,
	}}

	assert.Equal(t, 3.0, cfg.Multiplier(question.DifficultyHard))
	assert.Equal(t, 1.0, cfg.Multiplier(question.DifficultyEasy))
	assert.Equal(t, 1.0, cfg.Multiplier(question.Difficulty("nightmare")))
}
