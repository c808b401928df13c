package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vowsmith/planner/cmd/timelinectl/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "timelinectl",
		Short: "Wedding-day timeline tool",
		Long:  "CLI tool for generating and sharing wedding-day timelines from a preferences file",
	}

	rootCmd.AddCommand(commands.NewGenerateCmd())
	rootCmd.AddCommand(commands.NewShareCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
