package quiz

import "fmt"

// Question is a single multiple-choice question.
type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation,omitempty"`
}

// Quiz is an ordered deck of questions with a per-attempt time limit.
type Quiz struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Subject          string     `json:"subject"`
	TimeLimitSeconds int        `json:"time_limit_seconds"`
	Questions        []Question `json:"questions"`
}

// Validate checks the semantic constraints the JSON schema can't express.
func (q *Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("quiz id is empty")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz %q has no questions", q.ID)
	}
	if q.TimeLimitSeconds <= 0 {
		return fmt.Errorf("quiz %q has non-positive time limit", q.ID)
	}
	seen := make(map[string]bool, len(q.Questions))
	for i, question := range q.Questions {
		if question.ID == "" {
			return fmt.Errorf("quiz %q: question %d has no id", q.ID, i)
		}
		if seen[question.ID] {
			return fmt.Errorf("quiz %q: duplicate question id %q", q.ID, question.ID)
		}
		seen[question.ID] = true
		if len(question.Options) < 2 {
			return fmt.Errorf("quiz %q: question %q needs at least 2 options", q.ID, question.ID)
		}
		if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= len(question.Options) {
			return fmt.Errorf("quiz %q: question %q correct_answer_index out of range", q.ID, question.ID)
		}
	}
	return nil
}
