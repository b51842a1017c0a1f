package cmd

import (
	"os"

	"github.com/methkalz/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizkit",
	Short: "Adaptive quiz game engine",
	Long:  "Quizkit — adaptive quiz sessions with multi-factor scoring, lesson progress, and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZKIT_DB env var)")
	rootCmd.PersistentFlags().String("content", "content", "Path to the lesson content directory")
	rootCmd.PersistentFlags().String("user", defaultUser(), "Player id")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func defaultUser() string {
	if u := os.Getenv("QUIZKIT_USER"); u != "" {
		return u
	}
	return "local"
}
