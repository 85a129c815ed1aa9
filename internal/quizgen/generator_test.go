package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned response and records the last request.
type fakeClient struct {
	content string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (f *fakeClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func validDeckJSON(questions int) string {
	deck := map[string]any{
		"id":                 "solar-system",
		"title":              "The Solar System",
		"subject":            "Science",
		"time_limit_seconds": 300,
	}
	qs := make([]map[string]any, questions)
	for i := range qs {
		qs[i] = map[string]any{
			"id":                   fmt.Sprintf("solar-system-%d", i+1),
			"text":                 fmt.Sprintf("Question %d?", i+1),
			"options":              []string{"a", "b", "c", "d"},
			"correct_answer_index": i % 4,
			"explanation":          "Because.",
		}
	}
	deck["questions"] = qs
	raw, _ := json.Marshal(deck)
	return string(raw)
}

func TestGenerate(t *testing.T) {
	client := &fakeClient{content: validDeckJSON(3)}
	gen := newWithClient(client, DefaultConfig())

	deck, err := gen.Generate(context.Background(), GenerateInput{
		Topic:         "the solar system",
		QuestionCount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, "solar-system", deck.ID)
	assert.Equal(t, "Science", deck.Subject)
	assert.Len(t, deck.Questions, 3)
}

func TestGenerateRequestShape(t *testing.T) {
	client := &fakeClient{content: validDeckJSON(2)}
	gen := newWithClient(client, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Topic:         "rivers of europe",
		Subject:       "Geography",
		QuestionCount: 2,
	})
	require.NoError(t, err)

	req := client.lastReq
	assert.Equal(t, "gpt-4o-mini", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[1].Content, "rivers of europe")
	assert.Contains(t, req.Messages[1].Content, "Geography")
	assert.Contains(t, req.Messages[1].Content, "Number of questions: 2")

	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONSchema, req.ResponseFormat.Type)
	assert.Equal(t, "quiz_deck", req.ResponseFormat.JSONSchema.Name)
	assert.True(t, req.ResponseFormat.JSONSchema.Strict)
}

func TestGenerateDefaults(t *testing.T) {
	client := &fakeClient{content: validDeckJSON(10)}
	gen := newWithClient(client, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{Topic: "go basics"})
	require.NoError(t, err)

	assert.Contains(t, client.lastReq.Messages[1].Content, "Number of questions: 10")
	assert.Contains(t, client.lastReq.Messages[1].Content, "time_limit_seconds to 600")
}

func TestGenerateErrors(t *testing.T) {
	t.Run("missing topic", func(t *testing.T) {
		gen := newWithClient(&fakeClient{}, DefaultConfig())
		_, err := gen.Generate(context.Background(), GenerateInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "topic")
	})

	t.Run("api error", func(t *testing.T) {
		gen := newWithClient(&fakeClient{err: fmt.Errorf("rate limited")}, DefaultConfig())
		_, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", QuestionCount: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deck generation failed")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		gen := newWithClient(&fakeClient{content: "{not json"}, DefaultConfig())
		_, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", QuestionCount: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck")
	})

	t.Run("schema violation", func(t *testing.T) {
		// correct_answer_index out of range is caught by semantic validation.
		bad := `{"id":"d","title":"D","time_limit_seconds":60,"questions":[
			{"id":"d-1","text":"?","options":["a","b"],"correct_answer_index":5}]}`
		gen := newWithClient(&fakeClient{content: bad}, DefaultConfig())
		_, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", QuestionCount: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck")
	})

	t.Run("wrong question count", func(t *testing.T) {
		gen := newWithClient(&fakeClient{content: validDeckJSON(4)}, DefaultConfig())
		_, err := gen.Generate(context.Background(), GenerateInput{Topic: "x", QuestionCount: 6})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4 questions")
	})
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	gen, err := New(Config{APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.NotNil(t, gen)
}
