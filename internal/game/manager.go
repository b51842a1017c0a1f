package game

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/scoring"
	"github.com/methkalz/quizkit/internal/store"
)

// Manager owns the state machine for one play-through at a time:
// Idle -> Active -> {Paused <-> Active} -> Completed. Callers must
// serialize mutating calls; the Manager performs no internal locking.
//
// Session mutations commit in memory first and persist best-effort; a
// failed write is logged, never surfaced mid-game. The authoritative
// completion record is written by the progress engine, which does retry
// and does surface failures.
type Manager struct {
	repo   store.SessionRepo
	cfg    scoring.Config
	userID string

	sess   *store.GameSession
	paused bool

	// questionShownAt feeds the per-question speed boost. It resets on
	// start, resume, and every advance. Pausing does not stop it: the
	// clock is wall-time throughout.
	questionShownAt time.Time

	now func() time.Time
}

// NewManager creates a Manager for one user.
func NewManager(repo store.SessionRepo, cfg scoring.Config, userID string) *Manager {
	return &Manager{repo: repo, cfg: cfg, userID: userID, now: time.Now}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	switch {
	case m.sess == nil:
		return StateIdle
	case m.paused:
		return StatePaused
	default:
		return StateActive
	}
}

// Session returns the in-flight session, or nil when idle.
func (m *Manager) Session() *store.GameSession {
	return m.sess
}

// CurrentQuestion returns the question at the current index, or nil when
// idle.
func (m *Manager) CurrentQuestion() *question.Question {
	if m.sess == nil {
		return nil
	}
	return &m.sess.Questions[m.sess.CurrentIndex]
}

// Start builds a fresh session from a non-empty question snapshot and
// persists it. Any prior in-memory session is superseded; its row stays
// resumable until the stale sweep removes it.
func (m *Manager) Start(ctx context.Context, lessonID string, questions []question.Question) (*store.GameSession, error) {
	if len(questions) == 0 {
		return nil, &ValidationError{Reason: "question list is empty"}
	}

	n := len(questions)
	sess := &store.GameSession{
		ID:               uuid.NewString(),
		UserID:           m.userID,
		LessonID:         lessonID,
		Questions:        questions,
		Answers:          make([]string, n),
		AwardedPoints:    make([]int, n),
		HintsPerQuestion: make([]int, n),
		StartedAt:        m.now(),
	}
	if err := m.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	m.sess = sess
	m.paused = false
	m.questionShownAt = m.now()
	return sess, nil
}

// Resume restores the most recent non-completed session for the lesson,
// verbatim: same question order, answers, and counters. found is false
// when none exists; that is not an error.
func (m *Manager) Resume(ctx context.Context, lessonID string) (sess *store.GameSession, found bool, err error) {
	row, err := m.repo.FindActive(ctx, m.userID, lessonID)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("resume session: %w", err)
	}

	m.sess = row
	m.paused = false
	m.questionShownAt = m.now()
	return row, true, nil
}

// Answer records choiceID against the current question and reports whether
// it was correct. Overwriting is allowed: the prior answer's award is
// subtracted and the new award recomputed, never doubled. Resubmitting the
// identical choice is a no-op. Every incorrect submission increments the
// mistake count.
func (m *Manager) Answer(ctx context.Context, choiceID string) (bool, error) {
	if m.sess == nil {
		return false, &InvalidStateError{Op: "answer", State: StateIdle}
	}
	if m.paused {
		return false, &InvalidStateError{Op: "answer", State: StatePaused}
	}

	idx := m.sess.CurrentIndex
	q := &m.sess.Questions[idx]
	if q.Choice(choiceID) == nil {
		return false, &ValidationError{Reason: fmt.Sprintf("unknown choice id %q for question %s", choiceID, q.ID)}
	}

	correct := choiceID == q.CorrectAnswerID
	if m.sess.Answers[idx] == choiceID {
		return correct, nil
	}

	award := 0
	if correct {
		timeSpent := m.now().Sub(m.questionShownAt).Seconds()
		award = scoring.ComputeQuestionScore(q, timeSpent, m.sess.HintsPerQuestion[idx], m.cfg)
	}
	m.sess.Score += award - m.sess.AwardedPoints[idx]
	m.sess.Answers[idx] = choiceID
	m.sess.AwardedPoints[idx] = award
	if !correct {
		m.sess.MistakeCount++
	}

	m.persistBestEffort(ctx)
	return correct, nil
}

// Next advances to the following question. At the last question it is a
// no-op returning false; it never auto-completes the session.
func (m *Manager) Next(ctx context.Context) (bool, error) {
	if m.sess == nil {
		return false, &InvalidStateError{Op: "advance", State: StateIdle}
	}
	if m.paused {
		return false, &InvalidStateError{Op: "advance", State: StatePaused}
	}

	if m.sess.CurrentIndex >= len(m.sess.Questions)-1 {
		return false, nil
	}
	m.sess.CurrentIndex++
	m.questionShownAt = m.now()
	m.persistBestEffort(ctx)
	return true, nil
}

// UseHint increments the hint counters for the given question and the
// session total. Revealing hint content is the caller's concern.
func (m *Manager) UseHint(ctx context.Context, questionIndex int) error {
	if m.sess == nil {
		return &InvalidStateError{Op: "use hint", State: StateIdle}
	}
	if questionIndex < 0 || questionIndex >= len(m.sess.Questions) {
		return &ValidationError{Reason: fmt.Sprintf("question index %d out of range", questionIndex)}
	}

	m.sess.HintsPerQuestion[questionIndex]++
	m.sess.HintsUsed++
	m.persistBestEffort(ctx)
	return nil
}

// Pause suspends input handling. Elapsed-time accounting keeps running;
// the time limit is wall-clock.
func (m *Manager) Pause() error {
	if m.sess == nil {
		return &InvalidStateError{Op: "pause", State: StateIdle}
	}
	m.paused = true
	return nil
}

// Unpause re-enables input handling.
func (m *Manager) Unpause() error {
	if m.sess == nil {
		return &InvalidStateError{Op: "unpause", State: StateIdle}
	}
	m.paused = false
	return nil
}

// End finalizes the session and clears the in-memory reference. A new
// Start is required to play again.
func (m *Manager) End(ctx context.Context) (*store.GameSession, error) {
	if m.sess == nil {
		return nil, &InvalidStateError{Op: "end", State: StateIdle}
	}

	endedAt := m.now()
	m.sess.EndedAt = &endedAt
	m.sess.Completed = true
	m.persistBestEffort(ctx)

	finished := m.sess
	m.sess = nil
	m.paused = false
	return finished, nil
}

func (m *Manager) persistBestEffort(ctx context.Context) {
	if err := m.repo.Update(ctx, m.sess); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist session %s: %v\n", m.sess.ID, err)
	}
}
