package progress

import (
	"context"
	"testing"
	"time"

	"github.com/methkalz/quizkit/internal/store"
)

func TestIsLessonUnlocked_LinearChain(t *testing.T) {
	e, repo, _, _ := newTestEngine()
	ctx := context.Background()
	lessons := catalog()

	// No progress at all: only the first lesson is open.
	for i, want := range []bool{true, false, false} {
		got, err := e.IsLessonUnlocked(ctx, lessons, i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("IsLessonUnlocked(%d) = %v, want %v", i, got, want)
		}
	}

	// Completing l1 opens l2 but not l3.
	done := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo.rows["l1"] = store.PlayerProgress{
		UserID: "user-1", LessonID: "l1", BestScore: 8, MaxScore: 10,
		AttemptCount: 1, CompletedAt: &done,
	}
	for i, want := range []bool{true, true, false} {
		got, err := e.IsLessonUnlocked(ctx, lessons, i)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("after l1: IsLessonUnlocked(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestIsLessonUnlocked_AttemptedButNotCompleted(t *testing.T) {
	e, repo, _, _ := newTestEngine()

	// Attempts without a completion do not open the next lesson.
	repo.rows["l1"] = store.PlayerProgress{
		UserID: "user-1", LessonID: "l1", BestScore: 5, MaxScore: 10, AttemptCount: 3,
	}
	got, err := e.IsLessonUnlocked(context.Background(), catalog(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("l2 unlocked without completing l1")
	}
}

func TestIsLessonUnlocked_IndexOutOfRange(t *testing.T) {
	e, _, _, _ := newTestEngine()
	if _, err := e.IsLessonUnlocked(context.Background(), catalog(), 3); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if _, err := e.IsLessonUnlocked(context.Background(), catalog(), -1); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestHistory(t *testing.T) {
	e, repo, _, _ := newTestEngine()
	ctx := context.Background()

	attempts, avg, err := e.History(ctx, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 0 || avg != 0 {
		t.Errorf("empty history = %d, %v; want 0, 0", attempts, avg)
	}

	repo.rows["l1"] = store.PlayerProgress{
		UserID: "user-1", LessonID: "l1", BestScore: 8, MaxScore: 10, AttemptCount: 4,
	}
	attempts, avg, err = e.History(ctx, "l1")
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4", attempts)
	}
	if avg != 0.8 {
		t.Errorf("avgScore = %v, want 0.8", avg)
	}
}
