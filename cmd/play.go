package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/methkalz/quizkit/internal/app"
	"github.com/methkalz/quizkit/internal/difficulty"
	"github.com/methkalz/quizkit/internal/game"
	"github.com/methkalz/quizkit/internal/question"
	"github.com/methkalz/quizkit/internal/scoring"
	"github.com/methkalz/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <lesson-id>",
	Short: "Play a quiz session for a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lessonID := args[0]

		a, st, err := buildApp(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		lessons, err := a.Lessons(ctx)
		if err != nil {
			return err
		}
		if idx := lessonIndex(lessons, lessonID); idx >= 0 {
			unlocked, err := a.Progress.IsLessonUnlocked(ctx, lessons, idx)
			if err != nil {
				return err
			}
			if !unlocked {
				fmt.Printf("Lesson %s is locked. Complete the previous lesson first.\n", lessonID)
				return nil
			}
		}

		sess, found, err := a.Manager.Resume(ctx, lessonID)
		if err != nil {
			return err
		}
		if found {
			fmt.Printf("Resuming session %s (question %d of %d).\n",
				sess.ID, sess.CurrentIndex+1, len(sess.Questions))
		} else {
			questions, cfg, err := a.PrepareSession(ctx, lessonID)
			if err != nil {
				var noContent *question.NoContentError
				if errors.As(err, &noContent) {
					fmt.Println("No content available for this lesson.")
					return nil
				}
				return err
			}
			fmt.Printf("Starting a %s session: %d questions.\n", cfg.Level, len(questions))
			if _, err := a.Manager.Start(ctx, lessonID, questions); err != nil {
				return err
			}
		}

		if err := runLoop(ctx, a); err != nil {
			return err
		}
		return finish(ctx, a)
	},
}

// buildApp opens the store and content source and composes the engine.
func buildApp(cmd *cobra.Command) (*app.App, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	contentDir, _ := cmd.Flags().GetString("content")
	userID, _ := cmd.Flags().GetString("user")

	overrides, err := difficulty.LoadOverrides(filepath.Join(contentDir, "difficulty.json"))
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	a := app.New(app.Options{
		Store:     st,
		Source:    question.NewFileSource(contentDir),
		Scoring:   scoring.DefaultConfig(),
		Overrides: overrides,
		UserID:    userID,
	})
	return a, st, nil
}

// runLoop drives the line-oriented question loop until the last question is
// answered or the player quits.
func runLoop(ctx context.Context, a *app.App) error {
	scanner := bufio.NewScanner(os.Stdin)
	showQuestion(a)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "q":
			return nil
		case "p":
			if a.Manager.State() == game.StatePaused {
				if err := a.Manager.Unpause(); err != nil {
					return err
				}
				fmt.Println("Resumed. The clock never stopped.")
				showQuestion(a)
			} else {
				if err := a.Manager.Pause(); err != nil {
					return err
				}
				fmt.Println("Paused. Enter p to resume.")
			}
		case "h":
			sess := a.Manager.Session()
			if err := a.Manager.UseHint(ctx, sess.CurrentIndex); err != nil {
				fmt.Println(err)
				continue
			}
			q := a.Manager.CurrentQuestion()
			if q.Topic != "" {
				fmt.Printf("Hint: this question is about %s. (Hints reduce your score.)\n", q.Topic)
			} else {
				fmt.Println("No hint available for this question.")
			}
		default:
			n, convErr := strconv.Atoi(input)
			q := a.Manager.CurrentQuestion()
			if convErr != nil || q == nil || n < 1 || n > len(q.Choices) {
				fmt.Println("Enter a choice number, h for hint, p to pause, q to quit.")
				continue
			}
			correct, err := a.Manager.Answer(ctx, q.Choices[n-1].ID)
			if err != nil {
				var stateErr *game.InvalidStateError
				if errors.As(err, &stateErr) {
					fmt.Println(stateErr)
					continue
				}
				return err
			}
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Println("Incorrect.")
				if q.Explanation != "" {
					fmt.Println(q.Explanation)
				}
			}

			advanced, err := a.Manager.Next(ctx)
			if err != nil {
				return err
			}
			if !advanced {
				return nil
			}
			showQuestion(a)
		}
	}
}

func showQuestion(a *app.App) {
	sess := a.Manager.Session()
	q := a.Manager.CurrentQuestion()
	if sess == nil || q == nil {
		return
	}
	fmt.Printf("\nQuestion %d of %d [%s, %d pts]\n%s\n",
		sess.CurrentIndex+1, len(sess.Questions), q.Difficulty, q.Points, q.Text)
	for i, c := range q.Choices {
		fmt.Printf("  %d) %s\n", i+1, c.Text)
	}
}

// finish ends the session and reports the outcome. A failed progress save
// is reported as unsaved and invites a retry; it never claims success.
func finish(ctx context.Context, a *app.App) error {
	outcome, err := a.FinishSession(ctx)
	if outcome == nil {
		return err
	}

	bd := outcome.Breakdown
	fmt.Printf("\nSession complete: %d/%d correct (%.0f%%)\n",
		bd.Correct, bd.TotalQuestions, bd.Accuracy*100)
	fmt.Printf("Base score: %d\n", bd.Base)
	for _, b := range bd.Bonuses {
		fmt.Printf("  %s bonus: +%d\n", b.Kind, b.Points)
	}
	fmt.Printf("Total: %d (%s — %s)\n", bd.Total, outcome.Level.DisplayName(), outcome.Level.Description())

	if err != nil {
		fmt.Println("\nYour result could not be saved. Please try again.")
		return err
	}

	if outcome.Completion != nil {
		if outcome.Completion.Passed {
			fmt.Println("Lesson passed!")
		}
		for _, achievement := range outcome.Completion.NewAchievements {
			fmt.Printf("Achievement unlocked: %s\n", achievement)
		}
	}
	if outcome.Analytics != nil {
		for _, rec := range outcome.Analytics.Recommendations {
			fmt.Println("Tip:", rec)
		}
	}
	return nil
}

func lessonIndex(lessons []question.Lesson, lessonID string) int {
	for i, l := range lessons {
		if l.ID == lessonID {
			return i
		}
	}
	return -1
}
