package store

import (
	"context"
	"fmt"

	"github.com/methkalz/quizkit/ent"
	"github.com/methkalz/quizkit/ent/playeranalytics"
)

type analyticsRepo struct {
	client *ent.Client
}

func (r *analyticsRepo) Get(ctx context.Context, userID, lessonID string) (*PlayerAnalytics, error) {
	row, err := r.client.PlayerAnalytics.Query().
		Where(
			playeranalytics.UserID(userID),
			playeranalytics.LessonID(lessonID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get analytics: %w", err)
	}
	return &PlayerAnalytics{
		UserID:             row.UserID,
		LessonID:           row.LessonID,
		AccuracyTrend:      row.AccuracyTrend,
		TimeTrend:          row.TimeTrend,
		WeakAreas:          row.WeakAreas,
		StrongAreas:        row.StrongAreas,
		PreferredDirection: row.PreferredDirection,
		Recommendations:    row.Recommendations,
	}, nil
}

func (r *analyticsRepo) Upsert(ctx context.Context, a *PlayerAnalytics) error {
	err := r.client.PlayerAnalytics.Create().
		SetUserID(a.UserID).
		SetLessonID(a.LessonID).
		SetAccuracyTrend(a.AccuracyTrend).
		SetTimeTrend(a.TimeTrend).
		SetWeakAreas(a.WeakAreas).
		SetStrongAreas(a.StrongAreas).
		SetPreferredDirection(a.PreferredDirection).
		SetRecommendations(a.Recommendations).
		OnConflictColumns(playeranalytics.FieldUserID, playeranalytics.FieldLessonID).
		UpdateNewValues().
		Exec(ctx)
	return wrapWrite("upsert analytics", err)
}
