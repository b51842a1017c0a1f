package question

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeContentFile(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

const goodLesson = `{
  "questions": [
    {
      "id": "q1",
      "text": "What is 2+2?",
      "type": "multiple-choice",
      "choices": [{"id": "a", "text": "3"}, {"id": "b", "text": "4"}],
      "correct_answer_id": "b",
      "difficulty": "easy",
      "points": 10
    },
    {
      "id": "q2",
      "text": "Is the sky blue?",
      "type": "true-false",
      "choices": [{"id": "t", "text": "True"}, {"id": "f", "text": "False"}],
      "correct_answer_id": "t",
      "difficulty": "easy",
      "points": 10
    }
  ]
}`

func TestFileSource_QuestionsForLesson(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "algebra-1.json", goodLesson)

	src := NewFileSource(dir)
	qs, err := src.QuestionsForLesson(context.Background(), "algebra-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].TimeLimitSeconds != DefaultTimeLimitSeconds {
		t.Errorf("time limit not defaulted: %d", qs[0].TimeLimitSeconds)
	}
}

func TestFileSource_MissingLessonIsNoContent(t *testing.T) {
	src := NewFileSource(t.TempDir())
	_, err := src.QuestionsForLesson(context.Background(), "ghost")
	var noContent *NoContentError
	if !errors.As(err, &noContent) {
		t.Fatalf("error = %v, want NoContentError", err)
	}
	if noContent.LessonID != "ghost" {
		t.Errorf("LessonID = %q, want ghost", noContent.LessonID)
	}
}

func TestFileSource_AllMalformedIsNoContent(t *testing.T) {
	// Shape-valid JSON whose only question fails semantic validation
	// (correct answer id not among choices).
	body := `{
	  "questions": [
	    {
	      "id": "q1",
	      "text": "Broken",
	      "type": "multiple-choice",
	      "choices": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}],
	      "correct_answer_id": "z",
	      "difficulty": "easy",
	      "points": 10
	    }
	  ]
	}`
	dir := t.TempDir()
	writeContentFile(t, dir, "broken.json", body)

	src := NewFileSource(dir)
	_, err := src.QuestionsForLesson(context.Background(), "broken")
	var noContent *NoContentError
	if !errors.As(err, &noContent) {
		t.Fatalf("error = %v, want NoContentError", err)
	}
}

func TestFileSource_SchemaRejectsBadShape(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "bad.json", `{"questions": [{"id": 7}]}`)

	src := NewFileSource(dir)
	_, err := src.QuestionsForLesson(context.Background(), "bad")
	if err == nil {
		t.Fatal("expected schema error, got nil")
	}
	var noContent *NoContentError
	if errors.As(err, &noContent) {
		t.Fatal("shape error misreported as no content")
	}
}

func TestFileSource_LessonsSortedByOrder(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "lessons.json", `{
	  "lessons": [
	    {"id": "l3", "title": "Third", "order_index": 2},
	    {"id": "l1", "title": "First", "order_index": 0},
	    {"id": "l2", "title": "Second", "order_index": 1}
	  ]
	}`)

	src := NewFileSource(dir)
	lessons, err := src.Lessons(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []string{"l1", "l2", "l3"}
	for i, want := range wantOrder {
		if lessons[i].ID != want {
			t.Errorf("lessons[%d].ID = %q, want %q", i, lessons[i].ID, want)
		}
	}
}
