package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Timed quizzes with XP, streaks, and achievements",
	Long:  "QuizForge — a terminal quiz app that turns studying into timed runs with XP, levels, day streaks, and achievements.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile name (overrides QUIZFORGE_LEARNER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(quizgenCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearner returns the learner profile: --learner flag, then
// QUIZFORGE_LEARNER env var, then "default".
func resolveLearner(cmd *cobra.Command) string {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l
	}
	if l := os.Getenv("QUIZFORGE_LEARNER"); l != "" {
		return l
	}
	return "default"
}
