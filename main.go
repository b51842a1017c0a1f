package main

import (
	"os"

	"github.com/methkalz/quizkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
