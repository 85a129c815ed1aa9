package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author for QuizForge, a terminal learning app.
You write multiple-choice quiz decks as JSON matching the provided schema exactly.

Rules:
- Every question has one unambiguously correct option.
- Distractors must be plausible but clearly wrong to someone who knows the material.
- Write a short explanation for every question; it is shown after the answer is revealed.
- The deck "id" is a kebab-case slug derived from the topic.
- Question ids are the deck id followed by a 1-based number, e.g. "solar-system-3".
- Vary which option index holds the correct answer.
- Do not repeat facts between questions.`

// buildUserMessage renders the generation request for one deck.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a quiz deck about: %s\n", input.Topic)
	if input.Subject != "" {
		fmt.Fprintf(&b, "Subject area: %s\n", input.Subject)
	}
	fmt.Fprintf(&b, "Number of questions: %d\n", input.QuestionCount)
	fmt.Fprintf(&b, "Options per question: 4\n")
	fmt.Fprintf(&b, "Set time_limit_seconds to %d.\n", input.TimeLimitSeconds)

	return b.String()
}
