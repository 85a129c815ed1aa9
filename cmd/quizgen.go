package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/quizgen"
)

var quizgenCmd = &cobra.Command{
	Use:   "quizgen <topic>",
	Short: "Generate a new quiz deck with an LLM",
	Long: `Generate a multiple-choice quiz deck about a topic using an
OpenAI-compatible LLM and write it to the deck library as JSON.

Requires OPENAI_API_KEY. QUIZFORGE_LLM_MODEL and QUIZFORGE_LLM_BASE_URL
select an alternative model or endpoint (e.g. OpenRouter).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")
		limit, _ := cmd.Flags().GetInt("time-limit")
		out, _ := cmd.Flags().GetString("out")

		gen, err := quizgen.New(quizgen.ConfigFromEnv())
		if err != nil {
			return err
		}

		fmt.Printf("Generating %d questions about %q...\n", count, args[0])
		deck, err := gen.Generate(context.Background(), quizgen.GenerateInput{
			Topic:            args[0],
			Subject:          subject,
			QuestionCount:    count,
			TimeLimitSeconds: limit,
		})
		if err != nil {
			return err
		}

		if out == "" {
			dir, err := quiz.DefaultDecksDir()
			if err != nil {
				return fmt.Errorf("resolve decks dir: %w", err)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create decks dir: %w", err)
			}
			out = filepath.Join(dir, deck.ID+".json")
		}

		raw, err := json.MarshalIndent(deck, "", "  ")
		if err != nil {
			return fmt.Errorf("encode deck: %w", err)
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}

		fmt.Printf("Wrote %q (%d questions) to %s\n", deck.Title, len(deck.Questions), out)
		return nil
	},
}

func init() {
	quizgenCmd.Flags().String("subject", "", "Subject area shown in the deck picker")
	quizgenCmd.Flags().IntP("count", "n", 10, "Number of questions")
	quizgenCmd.Flags().Int("time-limit", 0, "Time limit in seconds (default 60 per question)")
	quizgenCmd.Flags().StringP("out", "o", "", "Output file (default: deck library)")
}
