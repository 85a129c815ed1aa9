package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a learner's history, XP, and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := resolveLearner(cmd)
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Printf("This deletes ALL data for learner %q. Type the learner name to confirm: ", learnerID)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != learnerID {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = st.Close() }()

		if err := st.DeleteLearner(context.Background(), learnerID); err != nil {
			return fmt.Errorf("reset learner: %w", err)
		}
		fmt.Printf("Learner %q reset.\n", learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
