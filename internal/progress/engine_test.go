package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/store"
)

// mockProgressRepo implements store.ProgressRepo in memory, with an
// optional error script for Upsert.
type mockProgressRepo struct {
	rows map[string]store.PlayerProgress // keyed by lessonID for one user

	upsertErrs []error // consumed per call; nil entry means success
	upserts    int
}

func newMockProgressRepo() *mockProgressRepo {
	return &mockProgressRepo{rows: make(map[string]store.PlayerProgress)}
}

func (m *mockProgressRepo) Get(_ context.Context, _, lessonID string) (*store.PlayerProgress, error) {
	p, ok := m.rows[lessonID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *mockProgressRepo) Upsert(_ context.Context, p *store.PlayerProgress) error {
	call := m.upserts
	m.upserts++
	if call < len(m.upsertErrs) && m.upsertErrs[call] != nil {
		return m.upsertErrs[call]
	}
	m.rows[p.LessonID] = *p
	return nil
}

func (m *mockProgressRepo) List(_ context.Context, _ string) ([]store.PlayerProgress, error) {
	out := make([]store.PlayerProgress, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProgressRepo) CompletedCount(_ context.Context, _ string) (int, error) {
	n := 0
	for _, p := range m.rows {
		if p.CompletedAt != nil {
			n++
		}
	}
	return n, nil
}

// mockAchievementRepo implements store.AchievementRepo in memory.
type mockAchievementRepo struct {
	rows      map[string]store.Achievement // keyed by type for one user
	insertErr error
	inserts   int
}

func newMockAchievementRepo() *mockAchievementRepo {
	return &mockAchievementRepo{rows: make(map[string]store.Achievement)}
}

func (m *mockAchievementRepo) Exists(_ context.Context, _, achievementType string) (bool, error) {
	_, ok := m.rows[achievementType]
	return ok, nil
}

func (m *mockAchievementRepo) Insert(_ context.Context, a *store.Achievement) error {
	m.inserts++
	if m.insertErr != nil {
		return m.insertErr
	}
	m.rows[a.Type] = *a
	return nil
}

func (m *mockAchievementRepo) List(_ context.Context, _ string) ([]store.Achievement, error) {
	out := make([]store.Achievement, 0, len(m.rows))
	for _, a := range m.rows {
		out = append(out, a)
	}
	return out, nil
}

func newTestEngine() (*Engine, *mockProgressRepo, *mockAchievementRepo, *[]time.Duration) {
	progressRepo := newMockProgressRepo()
	achievementRepo := newMockAchievementRepo()
	e := NewEngine(progressRepo, achievementRepo, "user-1")
	e.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	var slept []time.Duration
	e.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return e, progressRepo, achievementRepo, &slept
}

func catalog() []question.Lesson {
	return []question.Lesson{
		{ID: "l1", Title: "First", OrderIndex: 0},
		{ID: "l2", Title: "Second", OrderIndex: 1},
		{ID: "l3", Title: "Third", OrderIndex: 2},
	}
}

func TestRecordCompletion_PassBoundaryInclusive(t *testing.T) {
	e, repo, _, _ := newTestEngine()

	// 7 of 10 is exactly 70%: passing, completedAt set.
	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 7, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Passed {
		t.Error("70% exactly should pass")
	}
	if result.Progress.CompletedAt == nil {
		t.Error("CompletedAt not set on pass")
	}
	if result.NextLessonID != "l2" {
		t.Errorf("NextLessonID = %q, want l2", result.NextLessonID)
	}
	if got := repo.rows["l1"].AttemptCount; got != 1 {
		t.Errorf("AttemptCount = %d, want 1", got)
	}
}

func TestRecordCompletion_BelowThresholdFails(t *testing.T) {
	e, repo, achievements, _ := newTestEngine()

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 6, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog())
	if err != nil {
		t.Fatal(err)
	}
	if result.Passed {
		t.Error("60% should not pass")
	}
	if result.Progress.CompletedAt != nil {
		t.Error("CompletedAt set on failing score")
	}
	if len(result.NewAchievements) != 0 || achievements.inserts != 0 {
		t.Error("achievements evaluated on failing score")
	}
	// The attempt is still recorded.
	if got := repo.rows["l1"].AttemptCount; got != 1 {
		t.Errorf("AttemptCount = %d, want 1", got)
	}
}

func TestRecordCompletion_BestScoreMonotonic(t *testing.T) {
	e, repo, _, _ := newTestEngine()
	ctx := context.Background()

	for _, score := range []int{8, 5, 9, 2} {
		if _, err := e.RecordCompletion(ctx, Completion{
			LessonID: "l1", Score: score, MaxScore: 10, CompletionTimeSeconds: 200,
		}, catalog()); err != nil {
			t.Fatal(err)
		}
	}

	row := repo.rows["l1"]
	if row.BestScore != 9 {
		t.Errorf("BestScore = %d, want 9", row.BestScore)
	}
	if row.AttemptCount != 4 {
		t.Errorf("AttemptCount = %d, want 4", row.AttemptCount)
	}
}

func TestRecordCompletion_CompletedAtNotCleared(t *testing.T) {
	e, repo, _, _ := newTestEngine()
	ctx := context.Background()

	if _, err := e.RecordCompletion(ctx, Completion{
		LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog()); err != nil {
		t.Fatal(err)
	}
	firstCompletion := repo.rows["l1"].CompletedAt
	if firstCompletion == nil {
		t.Fatal("CompletedAt not set")
	}

	// A later failing attempt keeps the completion timestamp.
	if _, err := e.RecordCompletion(ctx, Completion{
		LessonID: "l1", Score: 1, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog()); err != nil {
		t.Fatal(err)
	}
	got := repo.rows["l1"].CompletedAt
	if got == nil || !got.Equal(*firstCompletion) {
		t.Errorf("CompletedAt = %v, want original %v", got, firstCompletion)
	}
}

func TestRecordCompletion_InvalidMaxScore(t *testing.T) {
	e, _, _, _ := newTestEngine()
	if _, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 5, MaxScore: 0,
	}, catalog()); err == nil {
		t.Fatal("expected error for zero max score")
	}
}

func TestRecordCompletion_RetriesTransientWrites(t *testing.T) {
	e, repo, _, slept := newTestEngine()
	repo.upsertErrs = []error{
		&store.TransientError{Err: errors.New("db locked")},
		&store.TransientError{Err: errors.New("db locked")},
		nil,
	}

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 8, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.upserts != 3 {
		t.Errorf("upserts = %d, want 3", repo.upserts)
	}
	// Linear backoff: 500ms then 1s.
	want := []time.Duration{500 * time.Millisecond, 1000 * time.Millisecond}
	if len(*slept) != len(want) {
		t.Fatalf("slept %v, want %v", *slept, want)
	}
	for i := range want {
		if (*slept)[i] != want[i] {
			t.Errorf("sleep[%d] = %v, want %v", i, (*slept)[i], want[i])
		}
	}
	// The retried write carries the same precomputed row: one attempt.
	if got := result.Progress.AttemptCount; got != 1 {
		t.Errorf("AttemptCount = %d, want 1 despite retries", got)
	}
}

func TestRecordCompletion_ExhaustedRetriesPropagate(t *testing.T) {
	e, repo, _, _ := newTestEngine()
	transient := &store.TransientError{Err: errors.New("db locked")}
	repo.upsertErrs = []error{transient, transient, transient}

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 8, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on unsaved progress", result)
	}
	if repo.upserts != 3 {
		t.Errorf("upserts = %d, want 3", repo.upserts)
	}
}

func TestRecordCompletion_NonTransientFailsFast(t *testing.T) {
	e, repo, _, slept := newTestEngine()
	repo.upsertErrs = []error{errors.New("constraint violation")}

	if _, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 8, MaxScore: 10, CompletionTimeSeconds: 200,
	}, catalog()); err == nil {
		t.Fatal("expected error")
	}
	if repo.upserts != 1 {
		t.Errorf("upserts = %d, want 1 (no retry on non-transient)", repo.upserts)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %v, want no backoff", *slept)
	}
}

func TestAchievements_FirstLessonAndPerfect(t *testing.T) {
	e, _, achievements, _ := newTestEngine()

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 300,
	}, catalog())
	if err != nil {
		t.Fatal(err)
	}

	wantTypes := map[string]bool{
		AchievementFirstLesson:  true,
		AchievementPerfectScore: true,
		AchievementFlawless:     true, // no mistakes, full score
	}
	if len(result.NewAchievements) != len(wantTypes) {
		t.Fatalf("NewAchievements = %v, want %v", result.NewAchievements, wantTypes)
	}
	for _, a := range result.NewAchievements {
		if !wantTypes[a] {
			t.Errorf("unexpected achievement %q", a)
		}
	}
	// 300s is over the speed_demon bound.
	if _, ok := achievements.rows[AchievementSpeedDemon]; ok {
		t.Error("speed_demon unlocked at 300s")
	}
}

func TestAchievements_SpeedDemon(t *testing.T) {
	e, _, achievements, _ := newTestEngine()

	if _, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 90,
	}, catalog()); err != nil {
		t.Fatal(err)
	}
	if _, ok := achievements.rows[AchievementSpeedDemon]; !ok {
		t.Error("speed_demon not unlocked for a 90s perfect run")
	}
}

func TestAchievements_Idempotent(t *testing.T) {
	e, _, achievements, _ := newTestEngine()
	ctx := context.Background()
	c := Completion{LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 300}

	first, err := e.RecordCompletion(ctx, c, catalog())
	if err != nil {
		t.Fatal(err)
	}
	insertsAfterFirst := achievements.inserts

	second, err := e.RecordCompletion(ctx, c, catalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(second.NewAchievements) != 0 {
		t.Errorf("repeat completion re-unlocked %v", second.NewAchievements)
	}
	if achievements.inserts != insertsAfterFirst {
		t.Errorf("repeat completion inserted rows: %d -> %d", insertsAfterFirst, achievements.inserts)
	}
	if len(first.NewAchievements) == 0 {
		t.Error("first completion unlocked nothing")
	}
}

func TestAchievements_InsertFailureNonFatal(t *testing.T) {
	e, _, achievements, _ := newTestEngine()
	achievements.insertErr = errors.New("disk full")

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 300,
	}, catalog())
	if err != nil {
		t.Fatalf("achievement failure blocked completion: %v", err)
	}
	if len(result.NewAchievements) != 0 {
		t.Errorf("failed inserts reported as unlocked: %v", result.NewAchievements)
	}
	if !result.Passed {
		t.Error("completion itself should still be recorded")
	}
}

func TestAchievements_Milestone(t *testing.T) {
	e, repo, achievements, _ := newTestEngine()
	ctx := context.Background()

	// Two lessons already completed; the third crosses the milestone.
	done := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b"} {
		repo.rows[id] = store.PlayerProgress{
			UserID: "user-1", LessonID: id, BestScore: 10, MaxScore: 10,
			AttemptCount: 1, CompletedAt: &done,
		}
	}

	if _, err := e.RecordCompletion(ctx, Completion{
		LessonID: "l1", Score: 10, MaxScore: 10, CompletionTimeSeconds: 300,
	}, catalog()); err != nil {
		t.Fatal(err)
	}
	if _, ok := achievements.rows[MilestoneType(3)]; !ok {
		t.Error("milestone_3 not unlocked at three completions")
	}
}

func TestAdvisoryUnlock_LastLessonHasNoNext(t *testing.T) {
	e, _, _, _ := newTestEngine()

	result, err := e.RecordCompletion(context.Background(), Completion{
		LessonID: "l3", Score: 10, MaxScore: 10, CompletionTimeSeconds: 300,
	}, catalog())
	if err != nil {
		t.Fatal(err)
	}
	if result.NextLessonID != "" {
		t.Errorf("NextLessonID = %q, want empty for the last lesson", result.NextLessonID)
	}
}
