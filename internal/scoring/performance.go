package scoring

// Level is a display-only performance tier derived from the ratio of total
// score to base score. It never gates progression.
type Level string

const (
	LevelLegendary Level = "legendary"
	LevelMaster    Level = "master"
	LevelExpert    Level = "expert"
	LevelSkilled   Level = "skilled"
	LevelLearner   Level = "learner"
	LevelBeginner  Level = "beginner"
)

// ClassifyPerformance maps total/base ratio to a performance level.
// A zero base classifies as beginner.
func ClassifyPerformance(total, base int) Level {
	if base < 1 {
		base = 1
	}
	ratio := float64(total) / float64(base)
	switch {
	case ratio >= 3.0:
		return LevelLegendary
	case ratio >= 2.5:
		return LevelMaster
	case ratio >= 2.0:
		return LevelExpert
	case ratio >= 1.6:
		return LevelSkilled
	case ratio >= 1.2:
		return LevelLearner
	default:
		return LevelBeginner
	}
}

// DisplayName returns a human-readable label for the level.
func (l Level) DisplayName() string {
	switch l {
	case LevelLegendary:
		return "Legendary"
	case LevelMaster:
		return "Master"
	case LevelExpert:
		return "Expert"
	case LevelSkilled:
		return "Skilled"
	case LevelLearner:
		return "Learner"
	case LevelBeginner:
		return "Beginner"
	default:
		return string(l)
	}
}

// Description returns the fixed blurb shown with the level.
func (l Level) Description() string {
	switch l {
	case LevelLegendary:
		return "Flawless mastery with every bonus earned"
	case LevelMaster:
		return "Outstanding accuracy and speed"
	case LevelExpert:
		return "Strong command of the material"
	case LevelSkilled:
		return "Solid performance with room to push"
	case LevelLearner:
		return "Good progress, keep practicing"
	case LevelBeginner:
		return "Getting started, review and retry"
	default:
		return ""
	}
}
