package analytics

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/methkalz/quizkit/internal/store"
)

// mockAnalyticsRepo implements store.AnalyticsRepo in memory.
type mockAnalyticsRepo struct {
	rows map[string]store.PlayerAnalytics // keyed by lessonID for one user
}

func newMockAnalyticsRepo() *mockAnalyticsRepo {
	return &mockAnalyticsRepo{rows: make(map[string]store.PlayerAnalytics)}
}

func (m *mockAnalyticsRepo) Get(_ context.Context, _, lessonID string) (*store.PlayerAnalytics, error) {
	p, ok := m.rows[lessonID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *mockAnalyticsRepo) Upsert(_ context.Context, p *store.PlayerAnalytics) error {
	m.rows[p.LessonID] = *p
	return nil
}

func TestAnalyze_FirstSession(t *testing.T) {
	repo := newMockAnalyticsRepo()
	e := NewEngine(repo, "user-1")

	got, err := e.Analyze(context.Background(), "l1", SessionFacts{
		Accuracy:       0.85,
		AvgTimeSeconds: 30,
		MistakeTopics:  []string{"fractions"},
		CleanTopics:    []string{"addition"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.AccuracyTrend, []float64{0.85}) {
		t.Errorf("AccuracyTrend = %v, want [0.85]", got.AccuracyTrend)
	}
	if !reflect.DeepEqual(got.WeakAreas, []string{"fractions"}) {
		t.Errorf("WeakAreas = %v, want [fractions]", got.WeakAreas)
	}
	if !reflect.DeepEqual(got.StrongAreas, []string{"addition"}) {
		t.Errorf("StrongAreas = %v, want [addition]", got.StrongAreas)
	}
	if got.PreferredDirection != string(DirectionIncrease) {
		t.Errorf("PreferredDirection = %q, want increase", got.PreferredDirection)
	}
	if _, ok := repo.rows["l1"]; !ok {
		t.Error("analytics row not persisted")
	}
}

func TestAnalyze_TrendsBounded(t *testing.T) {
	repo := newMockAnalyticsRepo()
	e := NewEngine(repo, "user-1")
	ctx := context.Background()

	for i := 0; i < TrendWindow+5; i++ {
		if _, err := e.Analyze(ctx, "l1", SessionFacts{
			Accuracy:       float64(i) / 100,
			AvgTimeSeconds: float64(i),
		}); err != nil {
			t.Fatal(err)
		}
	}

	row := repo.rows["l1"]
	if len(row.AccuracyTrend) != TrendWindow {
		t.Errorf("AccuracyTrend length = %d, want %d", len(row.AccuracyTrend), TrendWindow)
	}
	if len(row.TimeTrend) != TrendWindow {
		t.Errorf("TimeTrend length = %d, want %d", len(row.TimeTrend), TrendWindow)
	}
	// Oldest entries are evicted: the window ends with the latest value.
	if last := row.TimeTrend[len(row.TimeTrend)-1]; last != float64(TrendWindow+4) {
		t.Errorf("latest TimeTrend entry = %v, want %v", last, float64(TrendWindow+4))
	}
	if first := row.TimeTrend[0]; first != 5 {
		t.Errorf("oldest retained TimeTrend entry = %v, want 5", first)
	}
}

func TestAnalyze_StrongAreasAccumulate(t *testing.T) {
	repo := newMockAnalyticsRepo()
	e := NewEngine(repo, "user-1")
	ctx := context.Background()

	if _, err := e.Analyze(ctx, "l1", SessionFacts{Accuracy: 1, CleanTopics: []string{"addition"}}); err != nil {
		t.Fatal(err)
	}
	got, err := e.Analyze(ctx, "l1", SessionFacts{Accuracy: 1, CleanTopics: []string{"subtraction"}})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.StrongAreas, []string{"addition", "subtraction"}) {
		t.Errorf("StrongAreas = %v, want accumulated set", got.StrongAreas)
	}
}

func TestSuggestDirection(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     Direction
	}{
		{0.95, DirectionIncrease},
		{0.8, DirectionIncrease},
		{0.79, DirectionMaintain},
		{0.6, DirectionMaintain},
		{0.59, DirectionDecrease},
		{0, DirectionDecrease},
	}
	for _, tc := range cases {
		if got := SuggestDirection(tc.accuracy); got != tc.want {
			t.Errorf("SuggestDirection(%v) = %q, want %q", tc.accuracy, got, tc.want)
		}
	}
}

func TestRecommend(t *testing.T) {
	recs := Recommend(SessionFacts{Accuracy: 0.5, AvgTimeSeconds: 50}, []string{"fractions", "decimals"})
	if len(recs) == 0 {
		t.Fatal("no recommendations for a weak slow session")
	}
	joined := strings.Join(recs, "\n")
	for _, want := range []string{"Review", "faster", "Focus on: fractions, decimals"} {
		if !strings.Contains(joined, want) {
			t.Errorf("recommendations missing %q: %v", want, recs)
		}
	}
	if len(recs) > maxRecommendations {
		t.Errorf("got %d recommendations, max is %d", len(recs), maxRecommendations)
	}

	if recs := Recommend(SessionFacts{Accuracy: 0.7, AvgTimeSeconds: 30}, nil); len(recs) != 0 {
		t.Errorf("steady session produced advice: %v", recs)
	}
}
