package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/store"
)

// PassThreshold is the universal share of max score that marks a lesson
// completed and drives the unlock chain. Independent of any per-lesson
// min_score_to_pass used for display.
const PassThreshold = 0.7

const (
	maxWriteAttempts = 3
	backoffStep      = 500 * time.Millisecond
)

// Completion carries the facts of one finished session.
type Completion struct {
	LessonID              string
	Score                 int
	MaxScore              int
	CompletionTimeSeconds float64
	Mistakes              int
}

// Result reports what RecordCompletion changed.
type Result struct {
	Progress        store.PlayerProgress
	Passed          bool
	NewAchievements []string

	// NextLessonID is the advisory auto-unlock target; the authoritative
	// gate remains IsLessonUnlocked.
	NextLessonID string
}

// Engine updates cumulative player progress and evaluates achievement
// rules after each completed session.
type Engine struct {
	progress     store.ProgressRepo
	achievements store.AchievementRepo
	userID       string

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewEngine creates an Engine for one user.
func NewEngine(progressRepo store.ProgressRepo, achievementRepo store.AchievementRepo, userID string) *Engine {
	return &Engine{
		progress:     progressRepo,
		achievements: achievementRepo,
		userID:       userID,
		now:          time.Now,
		sleep:        sleepCtx,
	}
}

// RecordCompletion upserts the player's progress row and, on a passing
// score, evaluates achievements and the advisory next-lesson unlock.
//
// The new row is computed once from a single read, then written with
// absolute values; the write is retried on transient errors with linear
// backoff, so a retry can never double the attempt count. A final write
// failure propagates: the caller must not report the result as saved.
func (e *Engine) RecordCompletion(ctx context.Context, c Completion, lessons []question.Lesson) (*Result, error) {
	if c.MaxScore <= 0 {
		return nil, fmt.Errorf("record completion: max score must be positive, got %d", c.MaxScore)
	}

	prior, err := e.progress.Get(ctx, e.userID, c.LessonID)
	if err != nil {
		if err != store.ErrNotFound {
			return nil, fmt.Errorf("record completion: %w", err)
		}
		prior = &store.PlayerProgress{UserID: e.userID, LessonID: c.LessonID}
	}

	priorCompletions, err := e.progress.CompletedCount(ctx, e.userID)
	if err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	passed := float64(c.Score) >= PassThreshold*float64(c.MaxScore)
	newlyCompleted := passed && prior.CompletedAt == nil

	updated := store.PlayerProgress{
		UserID:       e.userID,
		LessonID:     c.LessonID,
		BestScore:    max(prior.BestScore, c.Score),
		MaxScore:     c.MaxScore,
		AttemptCount: prior.AttemptCount + 1,
		Unlocked:     true,
		CompletedAt:  prior.CompletedAt,
	}
	if newlyCompleted {
		completedAt := e.now()
		updated.CompletedAt = &completedAt
	}

	if err := e.upsertWithRetry(ctx, &updated); err != nil {
		return nil, fmt.Errorf("record completion: %w", err)
	}

	result := &Result{Progress: updated, Passed: passed}
	if !passed {
		return result, nil
	}

	totalCompleted := priorCompletions
	if newlyCompleted {
		totalCompleted++
	}
	result.NewAchievements = e.evaluateAchievements(ctx, c, priorCompletions, totalCompleted)
	result.NextLessonID = e.advisoryUnlock(c.LessonID, lessons)
	return result, nil
}

// upsertWithRetry writes the precomputed row, retrying transient failures
// with linear backoff (attempt x 500ms). Non-transient errors surface
// immediately.
func (e *Engine) upsertWithRetry(ctx context.Context, p *store.PlayerProgress) error {
	var lastErr error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		lastErr = e.progress.Upsert(ctx, p)
		if lastErr == nil {
			return nil
		}
		if !store.IsTransient(lastErr) {
			return lastErr
		}
		if attempt == maxWriteAttempts {
			break
		}
		if err := e.sleep(ctx, time.Duration(attempt)*backoffStep); err != nil {
			return err
		}
	}
	return fmt.Errorf("progress not saved after %d attempts: %w", maxWriteAttempts, lastErr)
}

// evaluateAchievements applies the rules in fixed precedence. Each rule is
// independently idempotent: an existence check on (user, type) guards every
// insert. Failures here are logged and never block completion reporting.
func (e *Engine) evaluateAchievements(ctx context.Context, c Completion, priorCompletions, totalCompleted int) []string {
	var unlocked []string

	tryUnlock := func(achievementType string, data map[string]any) {
		exists, err := e.achievements.Exists(ctx, e.userID, achievementType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: achievement check %s: %v\n", achievementType, err)
			return
		}
		if exists {
			return
		}
		a := &store.Achievement{
			UserID:     e.userID,
			Type:       achievementType,
			Data:       data,
			UnlockedAt: e.now(),
		}
		if err := e.achievements.Insert(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "warning: achievement insert %s: %v\n", achievementType, err)
			return
		}
		unlocked = append(unlocked, achievementType)
	}

	perfect := c.Score >= c.MaxScore

	if priorCompletions == 0 {
		tryUnlock(AchievementFirstLesson, map[string]any{"lesson_id": c.LessonID})
	}
	if perfect {
		tryUnlock(AchievementPerfectScore, map[string]any{"lesson_id": c.LessonID, "score": c.Score})
	}
	if perfect && c.CompletionTimeSeconds > 0 && c.CompletionTimeSeconds < speedDemonLimitSeconds {
		tryUnlock(AchievementSpeedDemon, map[string]any{
			"lesson_id":       c.LessonID,
			"completion_time": c.CompletionTimeSeconds,
		})
	}
	if c.Mistakes == 0 && float64(c.Score) >= flawlessScoreShare*float64(c.MaxScore) {
		tryUnlock(AchievementFlawless, map[string]any{"lesson_id": c.LessonID})
	}
	for _, n := range milestones {
		if totalCompleted == n {
			tryUnlock(MilestoneType(n), map[string]any{"lessons_completed": n})
		}
	}

	return unlocked
}

// advisoryUnlock logs the intent to open the next lesson in order. The
// authoritative gate is IsLessonUnlocked; this only names the target.
func (e *Engine) advisoryUnlock(lessonID string, lessons []question.Lesson) string {
	for i, l := range lessons {
		if l.ID == lessonID && i+1 < len(lessons) {
			next := lessons[i+1]
			fmt.Fprintf(os.Stderr, "unlocking next lesson %s for user %s\n", next.ID, e.userID)
			return next.ID
		}
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
