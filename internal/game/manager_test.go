package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/scoring"
	"github.com/methkalz/quizkit/internal/store"
)

// mockSessionRepo implements store.SessionRepo in memory.
type mockSessionRepo struct {
	rows map[string]*store.GameSession

	createErr error
	updateErr error
	updates   int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{rows: make(map[string]*store.GameSession)}
}

func (m *mockSessionRepo) Create(_ context.Context, s *store.GameSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *mockSessionRepo) Read(_ context.Context, id string) (*store.GameSession, error) {
	row, ok := m.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *mockSessionRepo) Update(_ context.Context, s *store.GameSession) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.rows[s.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *s
	m.rows[s.ID] = &cp
	m.updates++
	return nil
}

func (m *mockSessionRepo) FindActive(_ context.Context, userID, lessonID string) (*store.GameSession, error) {
	var latest *store.GameSession
	for _, row := range m.rows {
		if row.UserID != userID || row.LessonID != lessonID || row.Completed {
			continue
		}
		if latest == nil || row.StartedAt.After(latest.StartedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *mockSessionRepo) PurgeStale(_ context.Context, before time.Time) (int, error) {
	n := 0
	for id, row := range m.rows {
		if !row.Completed && row.StartedAt.Before(before) {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

func twoQuestions() []question.Question {
	return []question.Question{
		{
			ID:   "q1",
			Text: "What is 2+2?",
			Type: question.TypeMultipleChoice,
			Choices: []question.Choice{
				{ID: "a", Text: "3"},
				{ID: "b", Text: "4"},
			},
			CorrectAnswerID:  "b",
			Difficulty:       question.DifficultyEasy,
			Points:           10,
			TimeLimitSeconds: 60,
		},
		{
			ID:   "q2",
			Text: "What is 3*3?",
			Type: question.TypeMultipleChoice,
			Choices: []question.Choice{
				{ID: "a", Text: "9"},
				{ID: "b", Text: "6"},
			},
			CorrectAnswerID:  "a",
			Difficulty:       question.DifficultyHard,
			Points:           10,
			TimeLimitSeconds: 60,
		},
	}
}

// newTestManager creates a manager with a frozen clock; advance moves it.
func newTestManager(repo store.SessionRepo) (*Manager, func(d time.Duration)) {
	m := NewManager(repo, scoring.DefaultConfig(), "user-1")
	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }
	return m, func(d time.Duration) { current = current.Add(d) }
}

func TestStart_EmptyQuestionsRejected(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	_, err := m.Start(context.Background(), "lesson-1", nil)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if m.State() != StateIdle {
		t.Errorf("State = %q, want idle", m.State())
	}
}

func TestStart_CreateFailurePropagates(t *testing.T) {
	repo := newMockSessionRepo()
	repo.createErr = errors.New("disk full")
	m, _ := newTestManager(repo)

	_, err := m.Start(context.Background(), "lesson-1", twoQuestions())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if m.State() != StateIdle {
		t.Errorf("State = %q after failed start, want idle", m.State())
	}
}

func TestAnswer_CorrectAndIncorrect(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}

	advance(40 * time.Second) // no speed boost
	correct, err := m.Answer(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if !correct {
		t.Error("Answer(b) = incorrect, want correct")
	}
	sess := m.Session()
	if sess.Score != 10 {
		t.Errorf("Score = %d, want 10 (easy, no boost)", sess.Score)
	}
	if sess.MistakeCount != 0 {
		t.Errorf("MistakeCount = %d, want 0", sess.MistakeCount)
	}

	if _, err := m.Next(ctx); err != nil {
		t.Fatal(err)
	}
	correct, err = m.Answer(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if correct {
		t.Error("Answer(b) on q2 = correct, want incorrect")
	}
	if sess.Score != 10 {
		t.Errorf("Score = %d after wrong answer, want unchanged 10", sess.Score)
	}
	if sess.MistakeCount != 1 {
		t.Errorf("MistakeCount = %d, want 1", sess.MistakeCount)
	}
}

func TestAnswer_OverwriteRecomputesAward(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	advance(40 * time.Second)

	// Wrong first, then corrected: the wrong answer's zero award is
	// replaced, the mistake stays counted.
	if _, err := m.Answer(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	sess := m.Session()
	if sess.Score != 0 || sess.MistakeCount != 1 {
		t.Fatalf("after wrong answer: Score=%d MistakeCount=%d, want 0/1", sess.Score, sess.MistakeCount)
	}

	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if sess.Score != 10 {
		t.Errorf("Score = %d after correction, want 10", sess.Score)
	}
	if sess.MistakeCount != 1 {
		t.Errorf("MistakeCount = %d, want 1 (correction is not a mistake)", sess.MistakeCount)
	}

	// Correct overwritten by wrong: award subtracted, mistake added.
	if _, err := m.Answer(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	if sess.Score != 0 {
		t.Errorf("Score = %d after wrong overwrite, want 0", sess.Score)
	}
	if sess.MistakeCount != 2 {
		t.Errorf("MistakeCount = %d, want 2", sess.MistakeCount)
	}
}

func TestAnswer_IdenticalResubmissionIsNoOp(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	advance(40 * time.Second)

	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	sess := m.Session()
	scoreBefore, updatesBefore := sess.Score, repo.updates

	correct, err := m.Answer(ctx, "b")
	if err != nil {
		t.Fatal(err)
	}
	if !correct {
		t.Error("resubmission reported incorrect")
	}
	if sess.Score != scoreBefore {
		t.Errorf("Score changed on identical resubmission: %d -> %d", scoreBefore, sess.Score)
	}
	if repo.updates != updatesBefore {
		t.Errorf("identical resubmission wrote to the store")
	}
}

func TestAnswer_UnknownChoiceRejected(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	ctx := context.Background()
	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}

	_, err := m.Answer(ctx, "zzz")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if m.Session().MistakeCount != 0 {
		t.Error("rejected input counted as a mistake")
	}
}

func TestAnswer_SpeedBoostAndHintPenalty(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	if err := m.UseHint(ctx, 0); err != nil {
		t.Fatal(err)
	}

	advance(10 * time.Second) // under half the 60s limit
	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	// round(10 * 1.0 * 1.2) - 2*1 = 10.
	if got := m.Session().Score; got != 10 {
		t.Errorf("Score = %d, want 10 (boosted minus hint penalty)", got)
	}
	if m.Session().HintsUsed != 1 || m.Session().HintsPerQuestion[0] != 1 {
		t.Errorf("hint counters = %d/%v, want 1/[1 0]",
			m.Session().HintsUsed, m.Session().HintsPerQuestion)
	}
}

func TestNext_StopsAtLastQuestion(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	ctx := context.Background()
	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}

	advanced, err := m.Next(ctx)
	if err != nil || !advanced {
		t.Fatalf("Next = %v, %v; want true, nil", advanced, err)
	}
	advanced, err = m.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if advanced {
		t.Error("Next advanced past the last question")
	}
	if m.Session().Completed {
		t.Error("Next auto-completed the session")
	}
	if m.Session().CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", m.Session().CurrentIndex)
	}
}

func TestPause_BlocksAnswerAndAdvance(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	ctx := context.Background()
	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	if err := m.Pause(); err != nil {
		t.Fatal(err)
	}
	if m.State() != StatePaused {
		t.Fatalf("State = %q, want paused", m.State())
	}

	var se *InvalidStateError
	if _, err := m.Answer(ctx, "b"); !errors.As(err, &se) {
		t.Errorf("Answer while paused: error = %v, want InvalidStateError", err)
	}
	if _, err := m.Next(ctx); !errors.As(err, &se) {
		t.Errorf("Next while paused: error = %v, want InvalidStateError", err)
	}

	if err := m.Unpause(); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Errorf("Answer after unpause: %v", err)
	}
}

func TestPause_WallClockKeepsRunning(t *testing.T) {
	m, advance := newTestManager(newMockSessionRepo())
	ctx := context.Background()
	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}

	// 10s visible plus 50s paused: 60s elapsed, so no speed boost.
	advance(10 * time.Second)
	if err := m.Pause(); err != nil {
		t.Fatal(err)
	}
	advance(50 * time.Second)
	if err := m.Unpause(); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if got := m.Session().Score; got != 10 {
		t.Errorf("Score = %d, want 10 (pause must not stop the clock)", got)
	}
}

func TestIdleOperationsRejected(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	ctx := context.Background()

	var se *InvalidStateError
	if _, err := m.Answer(ctx, "b"); !errors.As(err, &se) {
		t.Errorf("Answer: error = %v, want InvalidStateError", err)
	}
	if _, err := m.Next(ctx); !errors.As(err, &se) {
		t.Errorf("Next: error = %v, want InvalidStateError", err)
	}
	if err := m.Pause(); !errors.As(err, &se) {
		t.Errorf("Pause: error = %v, want InvalidStateError", err)
	}
	if _, err := m.End(ctx); !errors.As(err, &se) {
		t.Errorf("End: error = %v, want InvalidStateError", err)
	}
	if q := m.CurrentQuestion(); q != nil {
		t.Errorf("CurrentQuestion = %+v, want nil", q)
	}
}

func TestResume_RestoresSessionVerbatim(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	started, err := m.Start(ctx, "lesson-1", twoQuestions())
	if err != nil {
		t.Fatal(err)
	}
	advance(40 * time.Second)
	if _, err := m.Answer(ctx, "b"); err != nil {
		t.Fatal(err)
	}

	// Fresh manager, same repo: simulates a process restart.
	m2, _ := newTestManager(repo)
	sess, found, err := m2.Resume(ctx, "lesson-1")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("Resume found no session")
	}
	if sess.ID != started.ID {
		t.Errorf("resumed session ID = %s, want %s", sess.ID, started.ID)
	}
	if sess.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", sess.CurrentIndex)
	}
	if sess.Answers[0] != "b" {
		t.Errorf("Answers[0] = %q, want b", sess.Answers[0])
	}
	if sess.Completed {
		t.Error("resumed session marked completed")
	}
	if m2.State() != StateActive {
		t.Errorf("State = %q after resume, want active", m2.State())
	}
}

func TestResume_NoActiveSession(t *testing.T) {
	m, _ := newTestManager(newMockSessionRepo())
	sess, found, err := m.Resume(context.Background(), "lesson-1")
	if err != nil {
		t.Fatalf("absent session should not error: %v", err)
	}
	if found || sess != nil {
		t.Errorf("Resume = %+v, %v; want nil, false", sess, found)
	}
}

func TestEnd_FinalizesAndClears(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	advance(90 * time.Second)

	finished, err := m.End(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !finished.Completed {
		t.Error("finished session not marked completed")
	}
	if finished.EndedAt == nil {
		t.Fatal("EndedAt not set")
	}
	if got := finished.EndedAt.Sub(finished.StartedAt); got != 90*time.Second {
		t.Errorf("elapsed = %v, want 90s", got)
	}
	if m.State() != StateIdle {
		t.Errorf("State = %q after End, want idle", m.State())
	}

	// The completed row must no longer be resumable.
	if _, found, err := m.Resume(ctx, "lesson-1"); err != nil || found {
		t.Errorf("completed session still resumable (found=%v, err=%v)", found, err)
	}
}

func TestAnswer_PersistFailureIsNonFatal(t *testing.T) {
	repo := newMockSessionRepo()
	m, advance := newTestManager(repo)
	ctx := context.Background()

	if _, err := m.Start(ctx, "lesson-1", twoQuestions()); err != nil {
		t.Fatal(err)
	}
	repo.updateErr = errors.New("db locked")

	advance(40 * time.Second)
	correct, err := m.Answer(ctx, "b")
	if err != nil {
		t.Fatalf("persist failure surfaced mid-game: %v", err)
	}
	if !correct || m.Session().Score != 10 {
		t.Errorf("in-memory state not committed: correct=%v score=%d", correct, m.Session().Score)
	}
}

func TestSessionResultOf_UnansweredCountIncorrect(t *testing.T) {
	qs := twoQuestions()
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Second)
	sess := &store.GameSession{
		Questions:        qs,
		Answers:          []string{"b", ""},
		AwardedPoints:    []int{10, 0},
		HintsPerQuestion: []int{0, 0},
		StartedAt:        start,
		EndedAt:          &end,
	}

	result := SessionResultOf(sess)
	if len(result.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(result.Answers))
	}
	if !result.Answers[0].Correct || result.Answers[1].Correct {
		t.Errorf("correctness = [%v %v], want [true false]",
			result.Answers[0].Correct, result.Answers[1].Correct)
	}
	if result.TotalTimeSeconds != 100 {
		t.Errorf("TotalTimeSeconds = %v, want 100", result.TotalTimeSeconds)
	}
}

func TestMaxScore(t *testing.T) {
	sess := &store.GameSession{Questions: twoQuestions()}
	// easy 10*1.0 + hard 10*2.0 = 30.
	if got := MaxScore(sess, scoring.DefaultConfig()); got != 30 {
		t.Errorf("MaxScore = %d, want 30", got)
	}
}
