package progress

import (
	"context"
	"fmt"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/store"
)

// IsLessonUnlocked reports whether the lesson at index in the ordered
// catalog is playable. Index 0 is always unlocked; every later lesson
// requires the previous one to be completed. This yields a strictly linear
// unlock chain.
func (e *Engine) IsLessonUnlocked(ctx context.Context, lessons []question.Lesson, index int) (bool, error) {
	if index < 0 || index >= len(lessons) {
		return false, fmt.Errorf("lesson index %d out of range", index)
	}
	if index == 0 {
		return true, nil
	}

	prev := lessons[index-1]
	p, err := e.progress.Get(ctx, e.userID, prev.ID)
	if err != nil {
		if err == store.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("check unlock for lesson %s: %w", lessons[index].ID, err)
	}
	return p.CompletedAt != nil, nil
}

// History summarizes prior attempts on a lesson for the difficulty
// selector. Returns nil when the player has no recorded attempts.
func (e *Engine) History(ctx context.Context, lessonID string) (attempts int, avgScore float64, err error) {
	p, err := e.progress.Get(ctx, e.userID, lessonID)
	if err != nil {
		if err == store.ErrNotFound {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("load history for lesson %s: %w", lessonID, err)
	}
	if p.MaxScore > 0 {
		avgScore = float64(p.BestScore) / float64(p.MaxScore)
	}
	return p.AttemptCount, avgScore, nil
}
