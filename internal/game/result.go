package game

import (
	"math"

	"github.com/methkalz/quizkit/internal/scoring"
	"github.com/methkalz/quizkit/internal/store"
)

// SessionResultOf converts a finished session into the scoring engine's
// input form. Unanswered slots count as incorrect.
func SessionResultOf(s *store.GameSession) scoring.SessionResult {
	answers := make([]scoring.AnswerResult, len(s.Questions))
	for i, q := range s.Questions {
		answers[i] = scoring.AnswerResult{
			Correct:    s.Answers[i] != "" && s.Answers[i] == q.CorrectAnswerID,
			Difficulty: q.Difficulty,
			HintsUsed:  s.HintsPerQuestion[i],
		}
	}

	var totalTime float64
	if s.EndedAt != nil {
		totalTime = s.EndedAt.Sub(s.StartedAt).Seconds()
	}
	return scoring.SessionResult{Answers: answers, TotalTimeSeconds: totalTime}
}

// MaxScore is the score a player earns answering every question correctly
// without the speed boost: the baseline the pass threshold and perfect
// checks are measured against.
func MaxScore(s *store.GameSession, cfg scoring.Config) int {
	total := 0
	for _, q := range s.Questions {
		total += int(math.Round(float64(cfg.BasePoints) * cfg.Multiplier(q.Difficulty)))
	}
	return total
}
