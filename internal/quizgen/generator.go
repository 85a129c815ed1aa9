// Package quizgen authors new quiz decks with an OpenAI-compatible LLM.
// Generated decks go through the same schema and semantic validation as
// decks loaded from disk.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/abhisek/quizforge/internal/quiz"
)

// chatClient is the slice of the OpenAI client the generator uses.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces quiz decks from a topic description.
type Generator struct {
	client chatClient
	cfg    Config
}

// New creates a Generator from cfg.
func New(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required (set OPENAI_API_KEY)")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientCfg),
		cfg:    cfg,
	}, nil
}

// newWithClient injects a client. Test hook.
func newWithClient(client chatClient, cfg Config) *Generator {
	return &Generator{client: client, cfg: cfg}
}

// GenerateInput describes the deck to author.
type GenerateInput struct {
	Topic   string
	Subject string

	// QuestionCount defaults to 10 when zero.
	QuestionCount int

	// TimeLimitSeconds defaults to 60 per question when zero.
	TimeLimitSeconds int
}

// Generate asks the model for a complete deck and validates the result.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*quiz.Quiz, error) {
	if input.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if input.QuestionCount <= 0 {
		input.QuestionCount = 10
	}
	if input.TimeLimitSeconds <= 0 {
		input.TimeLimitSeconds = input.QuestionCount * 60
	}

	schemaBytes, err := json.Marshal(quiz.DeckSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal deck schema: %w", err)
	}

	req := openai.ChatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(input)},
		},
		MaxCompletionTokens: g.cfg.MaxTokens,
		Temperature:         float32(g.cfg.Temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "quiz_deck",
				Schema: json.RawMessage(schemaBytes),
				Strict: true,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("deck generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in model response")
	}

	deck, err := quiz.Parse([]byte(resp.Choices[0].Message.Content))
	if err != nil {
		return nil, fmt.Errorf("model returned an invalid deck: %w", err)
	}

	if deck.Subject == "" {
		deck.Subject = input.Subject
	}
	if len(deck.Questions) != input.QuestionCount {
		return nil, fmt.Errorf("model returned %d questions, wanted %d", len(deck.Questions), input.QuestionCount)
	}

	return deck, nil
}
