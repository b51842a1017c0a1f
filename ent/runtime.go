// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/methkalz/quizkit/ent/achievement"
	"github.com/methkalz/quizkit/ent/gamesession"
	"github.com/methkalz/quizkit/ent/playeranalytics"
	"github.com/methkalz/quizkit/ent/playerprogress"
	"github.com/methkalz/quizkit/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescType is the schema descriptor for type field.
	achievementDescType := achievementFields[1].Descriptor()
	// achievement.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	achievement.TypeValidator = achievementDescType.Validators[0].(func(string) error)
	// achievementDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementDescUnlockedAt := achievementFields[3].Descriptor()
	// achievement.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievement.DefaultUnlockedAt = achievementDescUnlockedAt.Default.(func() time.Time)
	gamesessionFields := schema.GameSession{}.Fields()
	_ = gamesessionFields
	// gamesessionDescSessionID is the schema descriptor for session_id field.
	gamesessionDescSessionID := gamesessionFields[0].Descriptor()
	// gamesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gamesession.SessionIDValidator = gamesessionDescSessionID.Validators[0].(func(string) error)
	// gamesessionDescUserID is the schema descriptor for user_id field.
	gamesessionDescUserID := gamesessionFields[1].Descriptor()
	// gamesession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	gamesession.UserIDValidator = gamesessionDescUserID.Validators[0].(func(string) error)
	// gamesessionDescLessonID is the schema descriptor for lesson_id field.
	gamesessionDescLessonID := gamesessionFields[2].Descriptor()
	// gamesession.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	gamesession.LessonIDValidator = gamesessionDescLessonID.Validators[0].(func(string) error)
	// gamesessionDescCurrentIndex is the schema descriptor for current_index field.
	gamesessionDescCurrentIndex := gamesessionFields[4].Descriptor()
	// gamesession.DefaultCurrentIndex holds the default value on creation for the current_index field.
	gamesession.DefaultCurrentIndex = gamesessionDescCurrentIndex.Default.(int)
	// gamesessionDescScore is the schema descriptor for score field.
	gamesessionDescScore := gamesessionFields[7].Descriptor()
	// gamesession.DefaultScore holds the default value on creation for the score field.
	gamesession.DefaultScore = gamesessionDescScore.Default.(int)
	// gamesessionDescMistakeCount is the schema descriptor for mistake_count field.
	gamesessionDescMistakeCount := gamesessionFields[8].Descriptor()
	// gamesession.DefaultMistakeCount holds the default value on creation for the mistake_count field.
	gamesession.DefaultMistakeCount = gamesessionDescMistakeCount.Default.(int)
	// gamesessionDescHintsUsed is the schema descriptor for hints_used field.
	gamesessionDescHintsUsed := gamesessionFields[9].Descriptor()
	// gamesession.DefaultHintsUsed holds the default value on creation for the hints_used field.
	gamesession.DefaultHintsUsed = gamesessionDescHintsUsed.Default.(int)
	// gamesessionDescStartedAt is the schema descriptor for started_at field.
	gamesessionDescStartedAt := gamesessionFields[11].Descriptor()
	// gamesession.DefaultStartedAt holds the default value on creation for the started_at field.
	gamesession.DefaultStartedAt = gamesessionDescStartedAt.Default.(func() time.Time)
	// gamesessionDescCompleted is the schema descriptor for completed field.
	gamesessionDescCompleted := gamesessionFields[13].Descriptor()
	// gamesession.DefaultCompleted holds the default value on creation for the completed field.
	gamesession.DefaultCompleted = gamesessionDescCompleted.Default.(bool)
	playeranalyticsFields := schema.PlayerAnalytics{}.Fields()
	_ = playeranalyticsFields
	// playeranalyticsDescUserID is the schema descriptor for user_id field.
	playeranalyticsDescUserID := playeranalyticsFields[0].Descriptor()
	// playeranalytics.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	playeranalytics.UserIDValidator = playeranalyticsDescUserID.Validators[0].(func(string) error)
	// playeranalyticsDescLessonID is the schema descriptor for lesson_id field.
	playeranalyticsDescLessonID := playeranalyticsFields[1].Descriptor()
	// playeranalytics.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	playeranalytics.LessonIDValidator = playeranalyticsDescLessonID.Validators[0].(func(string) error)
	// playeranalyticsDescPreferredDirection is the schema descriptor for preferred_direction field.
	playeranalyticsDescPreferredDirection := playeranalyticsFields[6].Descriptor()
	// playeranalytics.DefaultPreferredDirection holds the default value on creation for the preferred_direction field.
	playeranalytics.DefaultPreferredDirection = playeranalyticsDescPreferredDirection.Default.(string)
	// playeranalyticsDescUpdatedAt is the schema descriptor for updated_at field.
	playeranalyticsDescUpdatedAt := playeranalyticsFields[8].Descriptor()
	// playeranalytics.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playeranalytics.DefaultUpdatedAt = playeranalyticsDescUpdatedAt.Default.(func() time.Time)
	// playeranalytics.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playeranalytics.UpdateDefaultUpdatedAt = playeranalyticsDescUpdatedAt.UpdateDefault.(func() time.Time)
	playerprogressFields := schema.PlayerProgress{}.Fields()
	_ = playerprogressFields
	// playerprogressDescUserID is the schema descriptor for user_id field.
	playerprogressDescUserID := playerprogressFields[0].Descriptor()
	// playerprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	playerprogress.UserIDValidator = playerprogressDescUserID.Validators[0].(func(string) error)
	// playerprogressDescLessonID is the schema descriptor for lesson_id field.
	playerprogressDescLessonID := playerprogressFields[1].Descriptor()
	// playerprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	playerprogress.LessonIDValidator = playerprogressDescLessonID.Validators[0].(func(string) error)
	// playerprogressDescBestScore is the schema descriptor for best_score field.
	playerprogressDescBestScore := playerprogressFields[2].Descriptor()
	// playerprogress.DefaultBestScore holds the default value on creation for the best_score field.
	playerprogress.DefaultBestScore = playerprogressDescBestScore.Default.(int)
	// playerprogressDescMaxScore is the schema descriptor for max_score field.
	playerprogressDescMaxScore := playerprogressFields[3].Descriptor()
	// playerprogress.DefaultMaxScore holds the default value on creation for the max_score field.
	playerprogress.DefaultMaxScore = playerprogressDescMaxScore.Default.(int)
	// playerprogressDescAttemptCount is the schema descriptor for attempt_count field.
	playerprogressDescAttemptCount := playerprogressFields[4].Descriptor()
	// playerprogress.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	playerprogress.DefaultAttemptCount = playerprogressDescAttemptCount.Default.(int)
	// playerprogressDescUnlocked is the schema descriptor for unlocked field.
	playerprogressDescUnlocked := playerprogressFields[5].Descriptor()
	// playerprogress.DefaultUnlocked holds the default value on creation for the unlocked field.
	playerprogress.DefaultUnlocked = playerprogressDescUnlocked.Default.(bool)
	// playerprogressDescUpdatedAt is the schema descriptor for updated_at field.
	playerprogressDescUpdatedAt := playerprogressFields[7].Descriptor()
	// playerprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playerprogress.DefaultUpdatedAt = playerprogressDescUpdatedAt.Default.(func() time.Time)
	// playerprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playerprogress.UpdateDefaultUpdatedAt = playerprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
}
