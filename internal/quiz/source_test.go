package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseValidDeck(t *testing.T) {
	raw := []byte(`{
		"id": "t1",
		"title": "Test Deck",
		"subject": "Testing",
		"time_limit_seconds": 120,
		"questions": [
			{"id": "q1", "text": "Pick A", "options": ["A", "B"], "correct_answer_index": 0}
		]
	}`)

	q, err := Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.ID != "t1" || q.TimeLimitSeconds != 120 {
		t.Errorf("quiz = %+v", q)
	}
	if len(q.Questions) != 1 || q.Questions[0].CorrectAnswerIndex != 0 {
		t.Errorf("questions = %+v", q.Questions)
	}
}

func TestParseRejectsBadDecks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"no questions", `{"id":"x","title":"X","time_limit_seconds":60,"questions":[]}`},
		{"zero time limit", `{"id":"x","title":"X","time_limit_seconds":0,"questions":[{"id":"q1","text":"?","options":["A","B"],"correct_answer_index":0}]}`},
		{"one option", `{"id":"x","title":"X","time_limit_seconds":60,"questions":[{"id":"q1","text":"?","options":["A"],"correct_answer_index":0}]}`},
		{"index out of range", `{"id":"x","title":"X","time_limit_seconds":60,"questions":[{"id":"q1","text":"?","options":["A","B"],"correct_answer_index":2}]}`},
		{"duplicate question id", `{"id":"x","title":"X","time_limit_seconds":60,"questions":[{"id":"q1","text":"?","options":["A","B"],"correct_answer_index":0},{"id":"q1","text":"?","options":["A","B"],"correct_answer_index":1}]}`},
		{"unknown field", `{"id":"x","title":"X","time_limit_seconds":60,"bonus":true,"questions":[{"id":"q1","text":"?","options":["A","B"],"correct_answer_index":0}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestBuiltinDecksParse(t *testing.T) {
	decks, err := BuiltinDecks()
	if err != nil {
		t.Fatalf("builtin decks: %v", err)
	}
	if len(decks) == 0 {
		t.Fatal("expected at least one builtin deck")
	}
	for _, d := range decks {
		if err := d.Validate(); err != nil {
			t.Errorf("builtin deck %s: %v", d.ID, err)
		}
	}
}

func TestDirSourceShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	deck := `{
		"id": "go-basics",
		"title": "Go Basics (custom)",
		"subject": "Programming",
		"time_limit_seconds": 60,
		"questions": [
			{"id": "q1", "text": "Pick B", "options": ["A", "B"], "correct_answer_index": 1}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "go-basics.json"), []byte(deck), 0o644); err != nil {
		t.Fatal(err)
	}

	decks, err := NewDirSource(dir).Decks()
	if err != nil {
		t.Fatalf("decks: %v", err)
	}

	var found *Quiz
	for _, d := range decks {
		if d.ID == "go-basics" {
			if found != nil {
				t.Fatal("duplicate go-basics deck; directory deck should shadow builtin")
			}
			found = d
		}
	}
	if found == nil {
		t.Fatal("go-basics deck missing")
	}
	if found.Title != "Go Basics (custom)" {
		t.Errorf("title = %q, want the directory deck to win", found.Title)
	}
}

func TestDirSourceSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	decks, err := NewDirSource(dir).Decks()
	if err != nil {
		t.Fatalf("decks: %v", err)
	}
	// Builtins still present despite the broken file.
	if len(decks) == 0 {
		t.Fatal("expected builtin decks")
	}
}
