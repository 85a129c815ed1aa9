package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner progress and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		learnerID := resolveLearner(cmd)
		ctx := context.Background()

		snap, err := st.SnapshotRepo().Latest(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var data *store.RewardsSnapshotData
		if snap != nil {
			data = snap.Data.Rewards
		}
		state := rewards.FromSnapshot(data)

		fmt.Printf("Learner: %s\n\n", learnerID)

		progress := state.XPToNextLevel()
		fmt.Printf("Level %d  (%d XP total)\n", state.Level(), state.XP)
		fmt.Printf("%s  %d/%d XP to level %d\n\n",
			progressBar(progress.Current, progress.Required, 20),
			progress.Current, progress.Required, state.Level()+1)

		fmt.Printf("Streak:            %d day(s)\n", state.Streak)
		fmt.Printf("Quizzes completed: %d\n", state.QuizzesCompleted)
		fmt.Printf("Lessons completed: %d\n", state.LessonsCompleted)
		fmt.Printf("Perfect scores:    %d\n\n", state.PerfectScores)

		catalog := rewards.Catalog()
		unlocked := 0
		for _, a := range catalog {
			if state.Unlocked[a.ID] {
				unlocked++
			}
		}
		fmt.Printf("Achievements (%d/%d)\n", unlocked, len(catalog))
		fmt.Println(strings.Repeat("─", 52))
		for _, a := range catalog {
			mark := "  "
			if state.Unlocked[a.ID] {
				mark = a.Icon
			}
			fmt.Printf("%s  %-16s %s\n", mark, a.Name, a.Description)
		}
		return nil
	},
}

// progressBar renders a fixed-width text bar, e.g. [████░░░░].
func progressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
