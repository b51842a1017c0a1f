package cmd

import (
	"fmt"

	"github.com/methkalz/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lesson progress and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		userID, _ := cmd.Flags().GetString("user")

		rows, err := st.Progress().List(ctx, userID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No progress yet. Try: quizkit play <lesson-id>")
			return nil
		}

		fmt.Printf("Progress for %s:\n", userID)
		for _, p := range rows {
			status := "in progress"
			if p.CompletedAt != nil {
				status = "completed " + p.CompletedAt.Format("2006-01-02")
			}
			fmt.Printf("  %-20s best %d/%d over %d attempts (%s)\n",
				p.LessonID, p.BestScore, p.MaxScore, p.AttemptCount, status)
		}

		achievements, err := st.Achievements().List(ctx, userID)
		if err != nil {
			return err
		}
		if len(achievements) > 0 {
			fmt.Println("\nAchievements:")
			for _, a := range achievements {
				fmt.Printf("  %-20s %s\n", a.Type, a.UnlockedAt.Format("2006-01-02"))
			}
		}
		return nil
	},
}
