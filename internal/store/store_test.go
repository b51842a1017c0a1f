package store

import (
	"context"
	"testing"
	"time"

	"github.com/methkalz/quizkit/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleSession(id string, startedAt time.Time) *GameSession {
	return &GameSession{
		ID:       id,
		UserID:   "user-1",
		LessonID: "algebra-1",
		Questions: []question.Question{
			{
				ID:   "q1",
				Text: "What is 2+2?",
				Type: question.TypeMultipleChoice,
				Choices: []question.Choice{
					{ID: "a", Text: "3"},
					{ID: "b", Text: "4"},
				},
				CorrectAnswerID:  "b",
				Difficulty:       question.DifficultyEasy,
				Points:           10,
				TimeLimitSeconds: 60,
			},
		},
		Answers:          []string{""},
		AwardedPoints:    []int{0},
		HintsPerQuestion: []int{0},
		StartedAt:        startedAt,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	sess := sampleSession("sess-1", started)
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Read(ctx, "sess-1")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.LessonID != "algebra-1" || len(got.Questions) != 1 {
		t.Errorf("read = %+v, want stored session", got)
	}
	if got.Questions[0].CorrectAnswerID != "b" {
		t.Errorf("question snapshot lost: %+v", got.Questions[0])
	}

	// Mutate and update with absolute values.
	got.Answers[0] = "b"
	got.AwardedPoints[0] = 10
	got.Score = 10
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}

	again, err := repo.Read(ctx, "sess-1")
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if again.Score != 10 || again.Answers[0] != "b" {
		t.Errorf("update not persisted: %+v", again)
	}
}

func TestSessionReadMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Sessions().Read(context.Background(), "ghost"); err != ErrNotFound {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFindActivePicksNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	old := sampleSession("sess-old", base.Add(-time.Hour))
	if err := repo.Create(ctx, old); err != nil {
		t.Fatal(err)
	}
	newer := sampleSession("sess-new", base)
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatal(err)
	}
	done := sampleSession("sess-done", base.Add(time.Minute))
	if err := repo.Create(ctx, done); err != nil {
		t.Fatal(err)
	}
	endedAt := base.Add(2 * time.Minute)
	done.EndedAt = &endedAt
	done.Completed = true
	if err := repo.Update(ctx, done); err != nil {
		t.Fatal(err)
	}

	got, err := repo.FindActive(ctx, "user-1", "algebra-1")
	if err != nil {
		t.Fatalf("find active: %v", err)
	}
	if got.ID != "sess-new" {
		t.Errorf("FindActive = %s, want sess-new (newest non-completed)", got.ID)
	}
}

func TestPurgeStale(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	if err := repo.Create(ctx, sampleSession("sess-stale", base.Add(-48*time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, sampleSession("sess-fresh", base)); err != nil {
		t.Fatal(err)
	}

	n, err := repo.PurgeStale(ctx, base.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 1 {
		t.Errorf("purged %d sessions, want 1", n)
	}
	if _, err := repo.Read(ctx, "sess-stale"); err != ErrNotFound {
		t.Errorf("stale session still readable: %v", err)
	}
	if _, err := repo.Read(ctx, "sess-fresh"); err != nil {
		t.Errorf("fresh session purged: %v", err)
	}
}

func TestProgressUpsertIsIdempotentPerKey(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	row := &PlayerProgress{
		UserID: "user-1", LessonID: "algebra-1",
		BestScore: 8, MaxScore: 10, AttemptCount: 1, Unlocked: true,
	}
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	row.BestScore = 9
	row.AttemptCount = 2
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "user-1", "algebra-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.BestScore != 9 || got.AttemptCount != 2 {
		t.Errorf("got %+v, want updated single row", got)
	}

	all, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("list returned %d rows, want 1 (upsert must not duplicate)", len(all))
	}
}

func TestCompletedCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.Progress()
	ctx := context.Background()

	done := time.Now().UTC().Truncate(time.Second)
	rows := []*PlayerProgress{
		{UserID: "user-1", LessonID: "l1", BestScore: 10, MaxScore: 10, AttemptCount: 1, Unlocked: true, CompletedAt: &done},
		{UserID: "user-1", LessonID: "l2", BestScore: 5, MaxScore: 10, AttemptCount: 2, Unlocked: true},
		{UserID: "user-2", LessonID: "l1", BestScore: 10, MaxScore: 10, AttemptCount: 1, Unlocked: true, CompletedAt: &done},
	}
	for _, r := range rows {
		if err := repo.Upsert(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	n, err := repo.CompletedCount(ctx, "user-1")
	if err != nil {
		t.Fatalf("completed count: %v", err)
	}
	if n != 1 {
		t.Errorf("CompletedCount = %d, want 1", n)
	}
}

func TestAchievementExistsAndInsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Achievements()
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "user-1", "first_lesson")
	if err != nil {
		t.Fatalf("exists (empty): %v", err)
	}
	if exists {
		t.Fatal("achievement reported before insert")
	}

	err = repo.Insert(ctx, &Achievement{
		UserID:     "user-1",
		Type:       "first_lesson",
		Data:       map[string]any{"lesson_id": "algebra-1"},
		UnlockedAt: time.Now().UTC().Truncate(time.Second),
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err = repo.Exists(ctx, "user-1", "first_lesson")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("achievement not found after insert")
	}

	all, err := repo.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 || all[0].Type != "first_lesson" {
		t.Errorf("list = %+v, want the inserted achievement", all)
	}
}

func TestAnalyticsUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Analytics()
	ctx := context.Background()

	if _, err := repo.Get(ctx, "user-1", "algebra-1"); err != ErrNotFound {
		t.Fatalf("error = %v, want ErrNotFound before upsert", err)
	}

	row := &PlayerAnalytics{
		UserID:             "user-1",
		LessonID:           "algebra-1",
		AccuracyTrend:      []float64{0.8},
		TimeTrend:          []float64{30},
		WeakAreas:          []string{"fractions"},
		PreferredDirection: "increase",
	}
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	row.AccuracyTrend = []float64{0.8, 0.9}
	if err := repo.Upsert(ctx, row); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Get(ctx, "user-1", "algebra-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.AccuracyTrend) != 2 || got.WeakAreas[0] != "fractions" {
		t.Errorf("got %+v, want updated row", got)
	}
}
