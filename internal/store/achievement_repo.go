package store

import (
	"context"
	"fmt"

	"github.com/methkalz/quizkit/ent"
	"github.com/methkalz/quizkit/ent/achievement"
)

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) Exists(ctx context.Context, userID, achievementType string) (bool, error) {
	exists, err := r.client.Achievement.Query().
		Where(
			achievement.UserID(userID),
			achievement.TypeEQ(achievementType),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check achievement: %w", err)
	}
	return exists, nil
}

func (r *achievementRepo) Insert(ctx context.Context, a *Achievement) error {
	builder := r.client.Achievement.Create().
		SetUserID(a.UserID).
		SetType(a.Type).
		SetUnlockedAt(a.UnlockedAt)
	if a.Data != nil {
		builder = builder.SetData(a.Data)
	}
	_, err := builder.Save(ctx)
	return wrapWrite("insert achievement", err)
}

func (r *achievementRepo) List(ctx context.Context, userID string) ([]Achievement, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.UserID(userID)).
		Order(ent.Asc(achievement.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	out := make([]Achievement, len(rows))
	for i, row := range rows {
		out[i] = Achievement{
			UserID:     row.UserID,
			Type:       row.Type,
			Data:       row.Data,
			UnlockedAt: row.UnlockedAt,
		}
	}
	return out, nil
}
