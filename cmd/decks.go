package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/quiz"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List available quiz decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		decksDir, err := quiz.DefaultDecksDir()
		if err != nil {
			return fmt.Errorf("resolve decks dir: %w", err)
		}

		decks, err := quiz.NewDirSource(decksDir).Decks()
		if err != nil {
			return fmt.Errorf("load decks: %w", err)
		}

		fmt.Printf("%-24s  %-28s  %-14s  %9s  %6s\n",
			"ID", "Title", "Subject", "Questions", "Limit")
		fmt.Println(strings.Repeat("─", 90))
		for _, d := range decks {
			fmt.Printf("%-24s  %-28s  %-14s  %9d  %5dm\n",
				d.ID, truncate(d.Title, 28), truncate(d.Subject, 14),
				len(d.Questions), d.TimeLimitSeconds/60)
		}
		fmt.Printf("\n%d deck(s). Library: %s\n", len(decks), decksDir)
		return nil
	},
}

var decksCheckCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate deck files against the deck schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := 0
		for _, path := range args {
			d, err := quiz.LoadFile(path)
			if err != nil {
				failures++
				fmt.Printf("✗ %s: %v\n", filepath.Base(path), err)
				continue
			}
			fmt.Printf("✓ %s: %q, %d questions\n", filepath.Base(path), d.Title, len(d.Questions))
		}
		if failures > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	decksCmd.AddCommand(decksCheckCmd)
}
