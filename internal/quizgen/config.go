package quizgen

import "os"

// Config holds deck generation settings.
type Config struct {
	// APIKey authenticates against the OpenAI-compatible endpoint.
	APIKey string

	// Model is the chat model ID. Default: "gpt-4o-mini".
	Model string

	// BaseURL overrides the API endpoint for OpenRouter or other
	// OpenAI-compatible services.
	BaseURL string

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4o-mini",
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if m := os.Getenv("QUIZFORGE_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if u := os.Getenv("QUIZFORGE_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	return cfg
}
