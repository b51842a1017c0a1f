package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/methkalz/quizkit/internal/question"
)

// ErrNotFound is returned by reads when no matching row exists. Callers
// distinguish it from failures with errors.Is.
var ErrNotFound = errors.New("not found")

// TransientError marks a write failure that is safe to retry: lock
// contention, conflicts, I/O hiccups. Validation failures are never
// wrapped in it.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient persistence error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// GameSession is the persisted state of one play-through. Questions are a
// snapshot frozen at start. Answers, AwardedPoints and HintsPerQuestion are
// parallel to Questions; an empty answer string means unanswered.
type GameSession struct {
	ID               string
	UserID           string
	LessonID         string
	Questions        []question.Question
	CurrentIndex     int
	Answers          []string
	AwardedPoints    []int
	Score            int
	MistakeCount     int
	HintsUsed        int
	HintsPerQuestion []int
	StartedAt        time.Time
	EndedAt          *time.Time
	Completed        bool
}

// PlayerProgress is the cumulative record for one (user, lesson) pair.
type PlayerProgress struct {
	UserID       string
	LessonID     string
	BestScore    int
	MaxScore     int
	AttemptCount int
	Unlocked     bool
	CompletedAt  *time.Time
}

// Achievement is one unlocked achievement row.
type Achievement struct {
	UserID     string
	Type       string
	Data       map[string]any
	UnlockedAt time.Time
}

// PlayerAnalytics is the rolling learning-pattern state for one
// (user, lesson) pair.
type PlayerAnalytics struct {
	UserID             string
	LessonID           string
	AccuracyTrend      []float64
	TimeTrend          []float64
	WeakAreas          []string
	StrongAreas        []string
	PreferredDirection string
	Recommendations    []string
}

// SessionRepo persists game sessions. Update writes absolute field values,
// so repeating the same call is idempotent.
type SessionRepo interface {
	Create(ctx context.Context, s *GameSession) error
	Read(ctx context.Context, sessionID string) (*GameSession, error)
	Update(ctx context.Context, s *GameSession) error

	// FindActive returns the most recent non-completed session for the
	// (user, lesson) pair, or ErrNotFound.
	FindActive(ctx context.Context, userID, lessonID string) (*GameSession, error)

	// PurgeStale deletes non-completed sessions started before the cutoff.
	// Returns the number of rows removed.
	PurgeStale(ctx context.Context, before time.Time) (int, error)
}

// ProgressRepo persists player progress, keyed uniquely on (user, lesson).
type ProgressRepo interface {
	Get(ctx context.Context, userID, lessonID string) (*PlayerProgress, error)
	Upsert(ctx context.Context, p *PlayerProgress) error
	List(ctx context.Context, userID string) ([]PlayerProgress, error)

	// CompletedCount returns how many lessons the user has completed.
	CompletedCount(ctx context.Context, userID string) (int, error)
}

// AchievementRepo persists achievement unlocks. Insert is guarded by Exists
// at the caller; the unique (user, type) index backs the guarantee.
type AchievementRepo interface {
	Exists(ctx context.Context, userID, achievementType string) (bool, error)
	Insert(ctx context.Context, a *Achievement) error
	List(ctx context.Context, userID string) ([]Achievement, error)
}

// AnalyticsRepo persists per-lesson learning analytics.
type AnalyticsRepo interface {
	Get(ctx context.Context, userID, lessonID string) (*PlayerAnalytics, error)
	Upsert(ctx context.Context, a *PlayerAnalytics) error
}

// wrapWrite classifies a repo write failure. Context cancellation passes
// through untouched; everything else is considered retryable at this layer
// (SQLite reports contention as generic busy errors).
func wrapWrite(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &TransientError{Err: fmt.Errorf("%s: %w", op, err)}
}
