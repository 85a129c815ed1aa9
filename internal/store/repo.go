package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Attempt event actions.
const (
	AttemptActionStart    = "start"
	AttemptActionAnswer   = "answer"
	AttemptActionTime     = "time"
	AttemptActionComplete = "complete"
	AttemptActionReset    = "reset"
)

// AttemptEventData captures one mutation of a quiz attempt.
type AttemptEventData struct {
	LearnerID      string
	QuizID         string
	AttemptID      string
	Action         string
	QuestionID     string // answer events only
	SelectedIndex  int    // answer events only, -1 otherwise
	Correct        bool
	Score          int
	TimeSpentSecs  int
	TotalQuestions int
}

// AttemptEventRecord is an AttemptEventData read back from the log.
type AttemptEventRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// XPEventData captures a single XP grant.
type XPEventData struct {
	LearnerID    string
	Kind         string // quiz, lesson, or grant
	Amount       int
	Reason       string
	StreakAfter  int
	LevelAfter   int
	TotalXPAfter int
}

// XPEventRecord is an XPEventData read back from the log.
type XPEventRecord struct {
	XPEventData
	Sequence  int64
	Timestamp time.Time
}

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	LearnerID     string
	AchievementID string
	Name          string
	Type          string
}

// AchievementEventRecord is an AchievementEventData read back from the log.
type AchievementEventRecord struct {
	AchievementEventData
	Sequence  int64
	Timestamp time.Time
}

// LessonEventData captures a completed lesson.
type LessonEventData struct {
	LearnerID string
	LessonID  string
}

// AttemptSummaryRecord describes one completed attempt, for the history view.
type AttemptSummaryRecord struct {
	QuizID         string
	AttemptID      string
	Score          int
	TotalQuestions int
	TimeSpentSecs  int
	Timestamp      time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records an attempt mutation.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// QueryAttemptEvents returns all events for one (learner, quiz) pair in
	// ascending sequence order, for attempt replay.
	QueryAttemptEvents(ctx context.Context, learnerID, quizID string) ([]AttemptEventRecord, error)

	// QueryAttemptSummaries returns completed attempts for a learner,
	// newest first.
	QueryAttemptSummaries(ctx context.Context, learnerID string, opts QueryOpts) ([]AttemptSummaryRecord, error)

	// AppendXPEvent records an XP grant.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// QueryXPEvents returns XP grants for a learner, newest first.
	QueryXPEvents(ctx context.Context, learnerID string, opts QueryOpts) ([]XPEventRecord, error)

	// AppendAchievementEvent records an achievement unlock.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// QueryAchievementEvents returns unlocks for a learner, oldest first.
	QueryAchievementEvents(ctx context.Context, learnerID string) ([]AchievementEventRecord, error)

	// AppendLessonEvent records a completed lesson.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error
}

// RewardsSnapshotData is the persisted gamification state for one learner.
// Level is derived from XP and deliberately not stored.
type RewardsSnapshotData struct {
	XP               int      `json:"xp"`
	Streak           int      `json:"streak"`
	LastActivityDate string   `json:"last_activity_date,omitempty"` // YYYY-MM-DD
	QuizzesCompleted int      `json:"quizzes_completed"`
	LessonsCompleted int      `json:"lessons_completed"`
	PerfectScores    int      `json:"perfect_scores"`
	Unlocked         []string `json:"unlocked,omitempty"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Rewards *RewardsSnapshotData `json:"rewards,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	LearnerID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the learner's most recent snapshot, or nil if none exist.
	Latest(ctx context.Context, learnerID string) (*Snapshot, error)

	// Prune deletes all but the learner's N most recent snapshots.
	Prune(ctx context.Context, learnerID string, keep int) error
}
