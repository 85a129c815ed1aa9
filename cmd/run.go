package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/app"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/selfupdate"
	"github.com/abhisek/quizforge/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	decksDir, err := quiz.DefaultDecksDir()
	if err != nil {
		// Builtin decks still work without a library directory.
		decksDir = ""
	}

	return app.Run(app.Options{
		Store:      st,
		LearnerID:  resolveLearner(cmd),
		Source:     quiz.NewDirSource(decksDir),
		UpdateNote: checkForUpdate(),
	})
}

// checkForUpdate asks GitHub for a newer release. Best effort with a short
// timeout; the app starts either way.
func checkForUpdate() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Second))
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}
