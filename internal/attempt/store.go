package attempt

import "context"

// Store tracks attempt progress per (learner, quiz) pair. At most one
// attempt is live per pair; starting a new one replaces any prior record.
type Store interface {
	// Start creates a fresh attempt, discarding any existing record for
	// the pair, and returns a copy of the new progress.
	Start(ctx context.Context, learnerID, quizID, attemptID string, totalQuestions int) (*Progress, error)

	// Answer records an answer for the current attempt. Answering a
	// question already answered overwrites the previous answer; the score
	// rises when an incorrect answer is corrected and never decreases. The
	// current question index advances by one per call, capped at the
	// total question count. No-op when no attempt exists or the attempt
	// is completed.
	Answer(ctx context.Context, learnerID, quizID, questionID string, selectedIndex int, correct bool) error

	// RecordTime adds elapsed seconds to the running attempt. No-op when
	// no attempt exists or the attempt is completed.
	RecordTime(ctx context.Context, learnerID, quizID string, seconds int) error

	// Complete freezes the attempt and returns its final tally, or nil
	// when no attempt exists. Completing twice returns the frozen tally
	// without changing state.
	Complete(ctx context.Context, learnerID, quizID string) (*Result, error)

	// Reset discards any record for the pair, completed or not. No-op
	// when none exists.
	Reset(ctx context.Context, learnerID, quizID string) error

	// Progress returns a copy of the current record, or nil when none
	// exists.
	Progress(ctx context.Context, learnerID, quizID string) (*Progress, error)
}
