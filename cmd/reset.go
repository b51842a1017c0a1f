package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all player data",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if !resetForce {
			fmt.Printf("This deletes %s (all sessions, progress, and achievements).\n", dbPath)
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return err
		}
		// WAL sidecar files; ignore errors, they may not exist.
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
		fmt.Println("Player data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Skip the confirmation prompt")
}
