package main

import (
	"os"

	"github.com/spf13/cobra"

	"wordnest/internal/interfaces/cli/migrate"
	"wordnest/internal/interfaces/cli/seed"
	"wordnest/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wordnest",
		Short: "WordNest - a vocabulary learning service",
		Long:  `WordNest serves vocabulary lessons, quizzes, and games behind an identity layer with password and Google sign-in.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
