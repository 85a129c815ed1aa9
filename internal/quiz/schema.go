package quiz

// DeckSchema is the JSON schema every quiz deck file must satisfy.
// Semantic constraints the schema can't express (index ranges, duplicate
// question ids) are enforced by Quiz.Validate.
var DeckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Stable deck identifier, kebab-case",
		},
		"title": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Deck title shown in the picker and header",
		},
		"subject": map[string]any{
			"type":        "string",
			"description": "Topic area, e.g. Programming or Geography",
		},
		"time_limit_seconds": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Countdown budget for one attempt",
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"text": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"maxItems": 6,
						"items":    map[string]any{"type": "string"},
					},
					"correct_answer_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Shown after the answer is revealed; may be empty",
					},
				},
				"required":             []any{"id", "text", "options", "correct_answer_index"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "time_limit_seconds", "questions"},
	"additionalProperties": false,
}
