package store

import (
	"context"
	"fmt"
	"time"

	"github.com/methkalz/quizkit/ent"
	"github.com/methkalz/quizkit/ent/gamesession"
	entschema "github.com/methkalz/quizkit/ent/schema"
	"github.com/methkalz/quizkit/internal/question"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *GameSession) error {
	builder := r.client.GameSession.Create().
		SetSessionID(s.ID).
		SetUserID(s.UserID).
		SetLessonID(s.LessonID).
		SetQuestions(toSchemaQuestions(s.Questions)).
		SetCurrentIndex(s.CurrentIndex).
		SetAnswers(s.Answers).
		SetAwardedPoints(s.AwardedPoints).
		SetScore(s.Score).
		SetMistakeCount(s.MistakeCount).
		SetHintsUsed(s.HintsUsed).
		SetHintsPerQuestion(s.HintsPerQuestion).
		SetStartedAt(s.StartedAt).
		SetCompleted(s.Completed)
	if s.EndedAt != nil {
		builder = builder.SetEndedAt(*s.EndedAt)
	}
	_, err := builder.Save(ctx)
	return wrapWrite("create session", err)
}

func (r *sessionRepo) Read(ctx context.Context, sessionID string) (*GameSession, error) {
	row, err := r.client.GameSession.Query().
		Where(gamesession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	return fromSessionRow(row), nil
}

func (r *sessionRepo) Update(ctx context.Context, s *GameSession) error {
	u := r.client.GameSession.Update().
		Where(gamesession.SessionID(s.ID)).
		SetCurrentIndex(s.CurrentIndex).
		SetAnswers(s.Answers).
		SetAwardedPoints(s.AwardedPoints).
		SetScore(s.Score).
		SetMistakeCount(s.MistakeCount).
		SetHintsUsed(s.HintsUsed).
		SetHintsPerQuestion(s.HintsPerQuestion).
		SetCompleted(s.Completed)
	if s.EndedAt != nil {
		u = u.SetEndedAt(*s.EndedAt)
	} else {
		u = u.ClearEndedAt()
	}
	n, err := u.Save(ctx)
	if err != nil {
		return wrapWrite("update session", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) FindActive(ctx context.Context, userID, lessonID string) (*GameSession, error) {
	row, err := r.client.GameSession.Query().
		Where(
			gamesession.UserID(userID),
			gamesession.LessonID(lessonID),
			gamesession.Completed(false),
		).
		Order(ent.Desc(gamesession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return fromSessionRow(row), nil
}

func (r *sessionRepo) PurgeStale(ctx context.Context, before time.Time) (int, error) {
	n, err := r.client.GameSession.Delete().
		Where(
			gamesession.Completed(false),
			gamesession.StartedAtLT(before),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge stale sessions: %w", err)
	}
	return n, nil
}

func fromSessionRow(row *ent.GameSession) *GameSession {
	return &GameSession{
		ID:               row.SessionID,
		UserID:           row.UserID,
		LessonID:         row.LessonID,
		Questions:        fromSchemaQuestions(row.Questions),
		CurrentIndex:     row.CurrentIndex,
		Answers:          row.Answers,
		AwardedPoints:    row.AwardedPoints,
		Score:            row.Score,
		MistakeCount:     row.MistakeCount,
		HintsUsed:        row.HintsUsed,
		HintsPerQuestion: row.HintsPerQuestion,
		StartedAt:        row.StartedAt,
		EndedAt:          row.EndedAt,
		Completed:        row.Completed,
	}
}

func toSchemaQuestions(qs []question.Question) []entschema.SessionQuestion {
	out := make([]entschema.SessionQuestion, len(qs))
	for i, q := range qs {
		choices := make([]entschema.SessionChoice, len(q.Choices))
		for j, c := range q.Choices {
			choices[j] = entschema.SessionChoice{ID: c.ID, Text: c.Text}
		}
		out[i] = entschema.SessionQuestion{
			ID:               q.ID,
			Text:             q.Text,
			Type:             string(q.Type),
			Choices:          choices,
			CorrectAnswerID:  q.CorrectAnswerID,
			Explanation:      q.Explanation,
			Topic:            q.Topic,
			Difficulty:       string(q.Difficulty),
			Points:           q.Points,
			TimeLimitSeconds: q.TimeLimitSeconds,
		}
	}
	return out
}

func fromSchemaQuestions(qs []entschema.SessionQuestion) []question.Question {
	out := make([]question.Question, len(qs))
	for i, q := range qs {
		choices := make([]question.Choice, len(q.Choices))
		for j, c := range q.Choices {
			choices[j] = question.Choice{ID: c.ID, Text: c.Text}
		}
		out[i] = question.Question{
			ID:               q.ID,
			Text:             q.Text,
			Type:             question.Type(q.Type),
			Choices:          choices,
			CorrectAnswerID:  q.CorrectAnswerID,
			Explanation:      q.Explanation,
			Topic:            q.Topic,
			Difficulty:       question.Difficulty(q.Difficulty),
			Points:           q.Points,
			TimeLimitSeconds: q.TimeLimitSeconds,
		}
	}
	return out
}
