package question

import "fmt"

// Type identifies how a question is answered.
type Type string

const (
	TypeMultipleChoice Type = "multiple-choice"
	TypeTrueFalse      Type = "true-false"
	TypeFillBlank      Type = "fill-blank"
)

// Difficulty is the tier a question belongs to.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultTimeLimitSeconds applies when a question omits its time limit.
const DefaultTimeLimitSeconds = 60

// Choice is one selectable answer option.
type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is an immutable quiz question. Instances are validated once at
// load time; downstream code may assume a valid shape.
type Question struct {
	ID               string     `json:"id"`
	Text             string     `json:"text"`
	Type             Type       `json:"type"`
	Choices          []Choice   `json:"choices"`
	CorrectAnswerID  string     `json:"correct_answer_id"`
	Explanation      string     `json:"explanation,omitempty"`
	Topic            string     `json:"topic,omitempty"`
	Difficulty       Difficulty `json:"difficulty"`
	Points           int        `json:"points"`
	TimeLimitSeconds int        `json:"time_limit_seconds,omitempty"`
}

// Validate checks structural invariants. It does not mutate the question;
// call Normalize first to fill defaults.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("question has empty id")
	}
	if q.Text == "" {
		return fmt.Errorf("question %s: empty text", q.ID)
	}
	switch q.Type {
	case TypeMultipleChoice, TypeTrueFalse, TypeFillBlank:
	default:
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("question %s: unknown difficulty %q", q.ID, q.Difficulty)
	}
	if len(q.Choices) < 2 {
		return fmt.Errorf("question %s: %d choices, need at least 2", q.ID, len(q.Choices))
	}
	seen := make(map[string]bool, len(q.Choices))
	correctFound := false
	for _, c := range q.Choices {
		if c.ID == "" {
			return fmt.Errorf("question %s: choice with empty id", q.ID)
		}
		if seen[c.ID] {
			return fmt.Errorf("question %s: duplicate choice id %q", q.ID, c.ID)
		}
		seen[c.ID] = true
		if c.ID == q.CorrectAnswerID {
			correctFound = true
		}
	}
	if !correctFound {
		return fmt.Errorf("question %s: correct answer %q not among choices", q.ID, q.CorrectAnswerID)
	}
	if q.Points <= 0 {
		return fmt.Errorf("question %s: points must be positive, got %d", q.ID, q.Points)
	}
	if q.TimeLimitSeconds < 0 {
		return fmt.Errorf("question %s: negative time limit", q.ID)
	}
	return nil
}

// Normalize fills defaulted fields on a freshly decoded question.
func (q *Question) Normalize() {
	if q.TimeLimitSeconds == 0 {
		q.TimeLimitSeconds = DefaultTimeLimitSeconds
	}
}

// Choice returns the choice with the given id, or nil.
func (q *Question) Choice(id string) *Choice {
	for i := range q.Choices {
		if q.Choices[i].ID == id {
			return &q.Choices[i]
		}
	}
	return nil
}
