package difficulty

import (
	"encoding/json"
	"fmt"
	"os"
)

// History summarizes a player's prior attempts on a lesson, as consumed by
// Select. AvgScore is the mean of score/maxScore across attempts (0.0-1.0).
type History struct {
	Attempts int
	AvgScore float64
}

// Select returns the difficulty config for the next session. An explicit
// per-lesson config always wins verbatim. Otherwise the config is derived
// from history; fewer than 2 prior attempts always yields basic.
// Deterministic: no hidden state, no randomness.
func Select(explicit *Config, prior *History) Config {
	if explicit != nil {
		return *explicit
	}
	if prior == nil || prior.Attempts < 2 {
		return basicConfig()
	}
	switch {
	case prior.AvgScore >= 0.9 && prior.Attempts >= 3:
		return advancedConfig()
	case prior.AvgScore >= 0.7:
		return intermediateConfig()
	default:
		return basicConfig()
	}
}

// LoadOverrides reads explicit per-lesson configs from a JSON file keyed by
// lesson id. A missing file is not an error; an invalid entry is.
func LoadOverrides(path string) (map[string]Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read difficulty overrides: %w", err)
	}

	var overrides map[string]Config
	if err := json.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("decode difficulty overrides %s: %w", path, err)
	}

	for lessonID, cfg := range overrides {
		if cfg.MinScoreToPass == 0 {
			cfg.MinScoreToPass = DefaultMinScoreToPass
			overrides[lessonID] = cfg
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("difficulty override for lesson %s: %w", lessonID, err)
		}
	}
	return overrides, nil
}
