package question

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Lesson describes a lesson in the content catalog. OrderIndex positions it
// in the linear unlock chain.
type Lesson struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Topic      string `json:"topic,omitempty"`
	OrderIndex int    `json:"order_index"`
}

// Source supplies validated question sets. Implementations must return only
// playable questions; malformed records are dropped, not surfaced.
type Source interface {
	// QuestionsForLesson returns the playable questions for a lesson.
	// Returns a *NoContentError when no valid questions exist.
	QuestionsForLesson(ctx context.Context, lessonID string) ([]Question, error)

	// Lessons returns the lesson catalog ordered by OrderIndex.
	Lessons(ctx context.Context) ([]Lesson, error)
}

// NoContentError indicates a lesson has no playable questions, either
// because it has none at all or every record failed validation.
type NoContentError struct {
	LessonID string
}

func (e *NoContentError) Error() string {
	return fmt.Sprintf("no content available for lesson %s", e.LessonID)
}

// FileSource loads question sets from a content directory:
// <dir>/lessons.json holds the catalog, <dir>/<lessonID>.json each set.
// Files are schema-validated once at the boundary; downstream code never
// re-checks shapes.
type FileSource struct {
	Dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) QuestionsForLesson(_ context.Context, lessonID string) ([]Question, error) {
	path := filepath.Join(s.Dir, lessonID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NoContentError{LessonID: lessonID}
		}
		return nil, fmt.Errorf("read question file: %w", err)
	}

	if err := validateDocument("question-set", questionSetSchema, raw); err != nil {
		return nil, fmt.Errorf("question file %s: %w", path, err)
	}

	var doc struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode question file %s: %w", path, err)
	}

	playable := Sanitize(doc.Questions)
	if len(playable) == 0 {
		return nil, &NoContentError{LessonID: lessonID}
	}
	return playable, nil
}

func (s *FileSource) Lessons(_ context.Context) ([]Lesson, error) {
	path := filepath.Join(s.Dir, "lessons.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson manifest: %w", err)
	}

	if err := validateDocument("lesson-manifest", lessonManifestSchema, raw); err != nil {
		return nil, fmt.Errorf("lesson manifest %s: %w", path, err)
	}

	var doc struct {
		Lessons []Lesson `json:"lessons"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode lesson manifest %s: %w", path, err)
	}

	sort.Slice(doc.Lessons, func(i, j int) bool {
		return doc.Lessons[i].OrderIndex < doc.Lessons[j].OrderIndex
	})
	return doc.Lessons, nil
}

// Sanitize normalizes and validates a batch of questions, dropping invalid
// records rather than failing the whole set. Each drop is logged as a
// warning but is otherwise non-fatal.
func Sanitize(qs []Question) []Question {
	valid := qs[:0:0]
	for i := range qs {
		q := qs[i]
		q.Normalize()
		if err := q.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: dropping malformed question: %v\n", err)
			continue
		}
		valid = append(valid, q)
	}
	return valid
}
