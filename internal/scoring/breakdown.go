package scoring

import "github.com/methkalz/quizkit/internal/question"

// BonusKind names one component of a score breakdown.
type BonusKind string

const (
	BonusDifficulty BonusKind = "difficulty"
	BonusAccuracy   BonusKind = "accuracy"
	BonusSpeed      BonusKind = "speed"
	BonusStreak     BonusKind = "streak"
	BonusPerfect    BonusKind = "perfect"
	BonusLightning  BonusKind = "lightning"
	BonusNoHints    BonusKind = "no_hints"
)

// Bonus is one positive score component beyond the base.
type Bonus struct {
	Kind   BonusKind
	Points int
}

// AnswerResult is the outcome for one question slot, in question order.
type AnswerResult struct {
	Correct    bool
	Difficulty question.Difficulty
	HintsUsed  int
}

// SessionResult is the input to ComputeScore: the ordered per-question
// outcomes plus total wall-clock time.
type SessionResult struct {
	Answers          []AnswerResult
	TotalTimeSeconds float64
}

// Breakdown is the full score decomposition for a finished session.
// Bonuses lists only components with positive value; omitted components
// contribute zero to Total.
type Breakdown struct {
	Base    int
	Bonuses []Bonus
	Total   int

	TotalQuestions int
	Correct        int
	Accuracy       float64
	MaxStreak      int
	AvgTimeSeconds float64
}

// BonusPoints returns the points of the named bonus, or 0 if absent.
func (b *Breakdown) BonusPoints(kind BonusKind) int {
	for _, bn := range b.Bonuses {
		if bn.Kind == kind {
			return bn.Points
		}
	}
	return 0
}
