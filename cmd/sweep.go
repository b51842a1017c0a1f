package cmd

import (
	"fmt"
	"time"

	"github.com/methkalz/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var sweepOlderThan time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete abandoned sessions",
	Long:  "Sweep deletes unfinished sessions older than the cutoff so they can no longer be resumed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Sessions().PurgeStale(cmd.Context(), time.Now().Add(-sweepOlderThan))
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d stale session(s).\n", n)
		return nil
	},
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepOlderThan, "older-than", 24*time.Hour, "Delete unfinished sessions older than this")
}
