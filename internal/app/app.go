package app

import (
	"context"
	"fmt"
	"os"

	"github.com/methkalz/quizkit/internal/analytics"
	"github.com/methkalz/quizkit/internal/difficulty"
	"github.com/methkalz/quizkit/internal/game"
	"github.com/methkalz/quizkit/internal/progress"
	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/scoring"
	"github.com/methkalz/quizkit/internal/store"
)

// Options wires the engine's collaborators. The caller owns the store and
// the content source; App owns nothing mutable beyond the per-user engines.
type Options struct {
	Store   *store.Store
	Source  question.Source
	Scoring scoring.Config

	// Overrides are explicit per-lesson difficulty configs, keyed by
	// lesson id. Nil means every lesson derives from history.
	Overrides map[string]difficulty.Config

	UserID string
}

// App is the per-user composition of the engine: one session manager, one
// progress engine, one analytics engine, sharing the caller's store.
// It replaces the hidden module-level state of earlier incarnations with
// an explicit object the caller owns.
type App struct {
	source    question.Source
	scoring   scoring.Config
	overrides map[string]difficulty.Config
	userID    string

	Manager   *game.Manager
	Progress  *progress.Engine
	Analytics *analytics.Engine
}

// New builds an App from Options.
func New(opts Options) *App {
	return &App{
		source:    opts.Source,
		scoring:   opts.Scoring,
		overrides: opts.Overrides,
		userID:    opts.UserID,
		Manager:   game.NewManager(opts.Store.Sessions(), opts.Scoring, opts.UserID),
		Progress:  progress.NewEngine(opts.Store.Progress(), opts.Store.Achievements(), opts.UserID),
		Analytics: analytics.NewEngine(opts.Store.Analytics(), opts.UserID),
	}
}

// Scoring returns the scoring configuration in use.
func (a *App) Scoring() scoring.Config {
	return a.scoring
}

// Lessons returns the ordered lesson catalog.
func (a *App) Lessons(ctx context.Context) ([]question.Lesson, error) {
	return a.source.Lessons(ctx)
}

// PrepareSession selects the difficulty config for the lesson and builds
// the question set for a new session: explicit override if configured,
// otherwise derived from the player's history.
func (a *App) PrepareSession(ctx context.Context, lessonID string) ([]question.Question, difficulty.Config, error) {
	var explicit *difficulty.Config
	if cfg, ok := a.overrides[lessonID]; ok {
		explicit = &cfg
	}

	attempts, avgScore, err := a.Progress.History(ctx, lessonID)
	if err != nil {
		return nil, difficulty.Config{}, err
	}
	cfg := difficulty.Select(explicit, &difficulty.History{Attempts: attempts, AvgScore: avgScore})

	qs, err := a.source.QuestionsForLesson(ctx, lessonID)
	if err != nil {
		return nil, difficulty.Config{}, err
	}
	return composeSet(qs, cfg), cfg, nil
}

// SessionOutcome is everything a caller needs to report a finished session.
type SessionOutcome struct {
	Session    *store.GameSession
	Breakdown  scoring.Breakdown
	Level      scoring.Level
	Completion *progress.Result
	Analytics  *store.PlayerAnalytics
}

// FinishSession ends the active session, computes the score breakdown, and
// records progress. A progress write failure after retries propagates so
// the caller never claims a saved result; analytics failures are logged
// and non-fatal.
func (a *App) FinishSession(ctx context.Context) (*SessionOutcome, error) {
	sess, err := a.Manager.End(ctx)
	if err != nil {
		return nil, err
	}

	result := game.SessionResultOf(sess)
	breakdown := scoring.ComputeScore(result, a.scoring)
	outcome := &SessionOutcome{
		Session:   sess,
		Breakdown: breakdown,
		Level:     scoring.ClassifyPerformance(breakdown.Total, breakdown.Base),
	}

	lessons, err := a.source.Lessons(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: lesson catalog unavailable: %v\n", err)
	}

	completion := progress.Completion{
		LessonID:              sess.LessonID,
		Score:                 sess.Score,
		MaxScore:              game.MaxScore(sess, a.scoring),
		CompletionTimeSeconds: result.TotalTimeSeconds,
		Mistakes:              sess.MistakeCount,
	}
	outcome.Completion, err = a.Progress.RecordCompletion(ctx, completion, lessons)
	if err != nil {
		return outcome, err
	}

	pa, err := a.Analytics.Analyze(ctx, sess.LessonID, analytics.FactsFromSession(sess))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: analytics not updated: %v\n", err)
	} else {
		outcome.Analytics = pa
	}
	return outcome, nil
}

// composeSet picks questions to match the difficulty mix, preserving the
// source order within each tier. Shortfalls in one tier backfill from the
// remaining questions in source order, so thin content still yields a
// playable set. Deterministic: no shuffling.
func composeSet(qs []question.Question, cfg difficulty.Config) []question.Question {
	n := cfg.QuestionsPerSession
	if n <= 0 || n > len(qs) {
		n = len(qs)
	}
	easyN, mediumN, hardN := cfg.QuestionCounts(n)

	want := map[question.Difficulty]int{
		question.DifficultyEasy:   easyN,
		question.DifficultyMedium: mediumN,
		question.DifficultyHard:   hardN,
	}

	picked := make([]question.Question, 0, n)
	used := make(map[string]bool, n)
	for _, q := range qs {
		if want[q.Difficulty] > 0 {
			want[q.Difficulty]--
			picked = append(picked, q)
			used[q.ID] = true
		}
	}
	for _, q := range qs {
		if len(picked) >= n {
			break
		}
		if !used[q.ID] {
			picked = append(picked, q)
			used[q.ID] = true
		}
	}
	return picked
}
