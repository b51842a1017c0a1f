package progress

import "fmt"

// Achievement types, in evaluation precedence order.
const (
	AchievementFirstLesson  = "first_lesson"
	AchievementPerfectScore = "perfect_score"
	AchievementSpeedDemon   = "speed_demon"
	AchievementFlawless     = "flawless"
)

// milestones are the completed-lesson counts that unlock milestone_N.
var milestones = []int{3, 5, 10, 15, 20}

// MilestoneType returns the achievement type for a milestone count.
func MilestoneType(n int) string {
	return fmt.Sprintf("milestone_%d", n)
}

// speedDemonLimitSeconds is the completion-time bound for speed_demon.
const speedDemonLimitSeconds = 120

// flawlessScoreShare is the minimum score share for flawless.
const flawlessScoreShare = 0.8
