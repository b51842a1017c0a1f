package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/methkalz/quizkit/internal/store"
)

// TrendWindow bounds the rolling accuracy and time trends.
const TrendWindow = 10

// Direction is the suggested difficulty adjustment for the next session.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
	DirectionMaintain Direction = "maintain"
)

// Accuracy thresholds for the direction suggestion.
const (
	increaseAccuracy = 0.8
	decreaseAccuracy = 0.6
)

// Average-time bounds (seconds) for pacing recommendations.
const (
	slowAvgSeconds = 45
	fastAvgSeconds = 10
)

// maxRecommendations bounds the advice list.
const maxRecommendations = 5

// SessionFacts is the analytics input distilled from one finished session.
type SessionFacts struct {
	Accuracy       float64
	AvgTimeSeconds float64

	// MistakeTopics are topics of questions answered incorrectly or left
	// unanswered this session.
	MistakeTopics []string

	// CleanTopics are topics whose every question was answered correctly
	// this session.
	CleanTopics []string
}

// Engine maintains rolling learning-pattern analytics per (user, lesson)
// and produces textual recommendations from fixed rules.
type Engine struct {
	repo   store.AnalyticsRepo
	userID string
}

// NewEngine creates an analytics Engine for one user.
func NewEngine(repo store.AnalyticsRepo, userID string) *Engine {
	return &Engine{repo: repo, userID: userID}
}

// Analyze folds one session's facts into the stored analytics row and
// persists the result. Weak areas reflect this session's mistakes; strong
// areas accumulate as a set union across sessions.
func (e *Engine) Analyze(ctx context.Context, lessonID string, facts SessionFacts) (*store.PlayerAnalytics, error) {
	prior, err := e.repo.Get(ctx, e.userID, lessonID)
	if err != nil {
		if err != store.ErrNotFound {
			return nil, fmt.Errorf("analyze performance: %w", err)
		}
		prior = &store.PlayerAnalytics{UserID: e.userID, LessonID: lessonID}
	}

	updated := &store.PlayerAnalytics{
		UserID:             e.userID,
		LessonID:           lessonID,
		AccuracyTrend:      appendBounded(prior.AccuracyTrend, facts.Accuracy),
		TimeTrend:          appendBounded(prior.TimeTrend, facts.AvgTimeSeconds),
		WeakAreas:          uniqueSorted(facts.MistakeTopics),
		StrongAreas:        uniqueSorted(append(append([]string{}, prior.StrongAreas...), facts.CleanTopics...)),
		PreferredDirection: string(SuggestDirection(facts.Accuracy)),
	}
	updated.Recommendations = Recommend(facts, updated.WeakAreas)

	if err := e.repo.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("analyze performance: %w", err)
	}
	return updated, nil
}

// SuggestDirection maps session accuracy to a difficulty adjustment.
func SuggestDirection(accuracy float64) Direction {
	switch {
	case accuracy >= increaseAccuracy:
		return DirectionIncrease
	case accuracy < decreaseAccuracy:
		return DirectionDecrease
	default:
		return DirectionMaintain
	}
}

// Recommend produces the bounded advice list from fixed rules.
func Recommend(facts SessionFacts, weakAreas []string) []string {
	var recs []string

	if facts.Accuracy < decreaseAccuracy {
		recs = append(recs, "Review the lesson basics before trying again.")
	}
	if facts.Accuracy >= increaseAccuracy {
		recs = append(recs, "Strong accuracy: try harder content to keep improving.")
	}
	if facts.AvgTimeSeconds > slowAvgSeconds {
		recs = append(recs, "Practice answering faster; aim for under 45 seconds per question.")
	}
	if facts.AvgTimeSeconds > 0 && facts.AvgTimeSeconds < fastAvgSeconds {
		recs = append(recs, "Slow down and re-read each question before answering.")
	}
	if len(weakAreas) > 0 {
		recs = append(recs, "Focus on: "+strings.Join(weakAreas, ", "))
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func appendBounded(trend []float64, v float64) []float64 {
	trend = append(append([]float64{}, trend...), v)
	if len(trend) > TrendWindow {
		trend = trend[len(trend)-TrendWindow:]
	}
	return trend
}

func uniqueSorted(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
