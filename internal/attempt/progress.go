// Package attempt holds the mutable state of quiz attempts, keyed by
// (learner, quiz). The Store contract is deliberately forgiving: operations
// on a missing record are no-ops returning neutral results, so a caller
// racing a stale reference degrades gracefully instead of crashing.
package attempt

import "time"

// Answer records one answered question within an attempt.
type Answer struct {
	SelectedIndex int
	Correct       bool
}

// Progress is the mutable state of one attempt for a (learner, quiz) pair.
type Progress struct {
	QuizID    string
	LearnerID string
	AttemptID string

	// CurrentQuestionIndex advances as questions are answered;
	// 0 <= CurrentQuestionIndex <= TotalQuestions.
	CurrentQuestionIndex int

	// Answered maps question id to the recorded answer; AnswerOrder
	// preserves insertion order.
	Answered    map[string]Answer
	AnswerOrder []string

	// Score never decreases within an attempt and freezes at completion.
	Score int

	TotalQuestions   int
	TimeSpentSeconds int
	Completed        bool

	StartedAt time.Time
}

// Result is the final tally of a completed attempt.
type Result struct {
	Score          int
	TotalQuestions int
}

// clone returns a deep copy so callers can't alias store-internal state.
func (p *Progress) clone() *Progress {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Answered = make(map[string]Answer, len(p.Answered))
	for id, a := range p.Answered {
		cp.Answered[id] = a
	}
	cp.AnswerOrder = append([]string(nil), p.AnswerOrder...)
	return &cp
}
