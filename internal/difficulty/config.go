package difficulty

import "fmt"

// Level is a lesson-wide difficulty setting.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// DefaultMinScoreToPass is the pass threshold percentage when a config
// leaves it unset.
const DefaultMinScoreToPass = 70

// Config describes how a session for a lesson is composed: how many
// questions and the easy/medium/hard percentage mix.
type Config struct {
	Level               Level `json:"level"`
	QuestionsPerSession int   `json:"questions_per_session"`
	EasyPct             int   `json:"easy_pct"`
	MediumPct           int   `json:"medium_pct"`
	HardPct             int   `json:"hard_pct"`
	MinScoreToPass      int   `json:"min_score_to_pass"`
}

// Validate checks a config loaded from an override file.
func (c Config) Validate() error {
	switch c.Level {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("unknown level %q", c.Level)
	}
	if c.QuestionsPerSession <= 0 {
		return fmt.Errorf("questions_per_session must be positive, got %d", c.QuestionsPerSession)
	}
	if sum := c.EasyPct + c.MediumPct + c.HardPct; sum != 100 {
		return fmt.Errorf("difficulty mix must sum to 100, got %d", sum)
	}
	if c.MinScoreToPass < 0 || c.MinScoreToPass > 100 {
		return fmt.Errorf("min_score_to_pass out of range: %d", c.MinScoreToPass)
	}
	return nil
}

// QuestionCounts splits n questions by the percentage mix. Rounding
// remainders go to the easy bucket so the counts always sum to n.
func (c Config) QuestionCounts(n int) (easy, medium, hard int) {
	medium = n * c.MediumPct / 100
	hard = n * c.HardPct / 100
	easy = n - medium - hard
	return easy, medium, hard
}

func basicConfig() Config {
	return Config{
		Level:               LevelBasic,
		QuestionsPerSession: 5,
		EasyPct:             60,
		MediumPct:           30,
		HardPct:             10,
		MinScoreToPass:      DefaultMinScoreToPass,
	}
}

func intermediateConfig() Config {
	return Config{
		Level:               LevelIntermediate,
		QuestionsPerSession: 6,
		EasyPct:             30,
		MediumPct:           50,
		HardPct:             20,
		MinScoreToPass:      DefaultMinScoreToPass,
	}
}

func advancedConfig() Config {
	return Config{
		Level:               LevelAdvanced,
		QuestionsPerSession: 8,
		EasyPct:             20,
		MediumPct:           40,
		HardPct:             40,
		MinScoreToPass:      DefaultMinScoreToPass,
	}
}
