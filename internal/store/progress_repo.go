package store

import (
	"context"
	"fmt"

	"github.com/methkalz/quizkit/ent"
	"github.com/methkalz/quizkit/ent/playerprogress"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, userID, lessonID string) (*PlayerProgress, error) {
	row, err := r.client.PlayerProgress.Query().
		Where(
			playerprogress.UserID(userID),
			playerprogress.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return fromProgressRow(row), nil
}

// Upsert writes absolute field values keyed on (user, lesson), so repeating
// the same call after a retry leaves the row unchanged.
func (r *progressRepo) Upsert(ctx context.Context, p *PlayerProgress) error {
	builder := r.client.PlayerProgress.Create().
		SetUserID(p.UserID).
		SetLessonID(p.LessonID).
		SetBestScore(p.BestScore).
		SetMaxScore(p.MaxScore).
		SetAttemptCount(p.AttemptCount).
		SetUnlocked(p.Unlocked)
	if p.CompletedAt != nil {
		builder = builder.SetCompletedAt(*p.CompletedAt)
	}
	err := builder.
		OnConflictColumns(playerprogress.FieldUserID, playerprogress.FieldLessonID).
		UpdateNewValues().
		Exec(ctx)
	return wrapWrite("upsert progress", err)
}

func (r *progressRepo) List(ctx context.Context, userID string) ([]PlayerProgress, error) {
	rows, err := r.client.PlayerProgress.Query().
		Where(playerprogress.UserID(userID)).
		Order(ent.Asc(playerprogress.FieldLessonID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	out := make([]PlayerProgress, len(rows))
	for i, row := range rows {
		out[i] = *fromProgressRow(row)
	}
	return out, nil
}

func (r *progressRepo) CompletedCount(ctx context.Context, userID string) (int, error) {
	n, err := r.client.PlayerProgress.Query().
		Where(
			playerprogress.UserID(userID),
			playerprogress.CompletedAtNotNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed lessons: %w", err)
	}
	return n, nil
}

func fromProgressRow(row *ent.PlayerProgress) *PlayerProgress {
	return &PlayerProgress{
		UserID:       row.UserID,
		LessonID:     row.LessonID,
		BestScore:    row.BestScore,
		MaxScore:     row.MaxScore,
		AttemptCount: row.AttemptCount,
		Unlocked:     row.Unlocked,
		CompletedAt:  row.CompletedAt,
	}
}
