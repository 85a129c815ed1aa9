package attempt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizforge/internal/store"
)

// logRepo is an in-memory EventRepo recording attempt events only.
type logRepo struct {
	events []store.AttemptEventRecord
	seq    int64
}

func (r *logRepo) AppendAttemptEvent(ctx context.Context, data store.AttemptEventData) error {
	r.seq++
	r.events = append(r.events, store.AttemptEventRecord{
		AttemptEventData: data,
		Sequence:         r.seq,
		Timestamp:        time.Now(),
	})
	return nil
}

func (r *logRepo) QueryAttemptEvents(ctx context.Context, learnerID, quizID string) ([]store.AttemptEventRecord, error) {
	var out []store.AttemptEventRecord
	for _, ev := range r.events {
		if ev.LearnerID == learnerID && ev.QuizID == quizID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *logRepo) QueryAttemptSummaries(ctx context.Context, learnerID string, opts store.QueryOpts) ([]store.AttemptSummaryRecord, error) {
	return nil, nil
}

func (r *logRepo) AppendXPEvent(ctx context.Context, data store.XPEventData) error { return nil }

func (r *logRepo) QueryXPEvents(ctx context.Context, learnerID string, opts store.QueryOpts) ([]store.XPEventRecord, error) {
	return nil, nil
}

func (r *logRepo) AppendAchievementEvent(ctx context.Context, data store.AchievementEventData) error {
	return nil
}

func (r *logRepo) QueryAchievementEvents(ctx context.Context, learnerID string) ([]store.AchievementEventRecord, error) {
	return nil, nil
}

func (r *logRepo) AppendLessonEvent(ctx context.Context, data store.LessonEventData) error {
	return nil
}

func (r *logRepo) actions(learnerID, quizID string) []string {
	var out []string
	for _, ev := range r.events {
		if ev.LearnerID == learnerID && ev.QuizID == quizID {
			out = append(out, ev.Action)
		}
	}
	return out
}

func TestEventStoreWritesThrough(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}
	s := NewEventStore(repo)

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 1, true))
	res, err := s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, []string{"start", "answer", "complete"}, repo.actions("l1", "q1"))

	last := repo.events[len(repo.events)-1]
	assert.Equal(t, 1, last.Score)
	assert.Equal(t, 2, last.TotalQuestions)
}

func TestEventStoreReplayResumesAttempt(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}

	first := NewEventStore(repo)
	_, err := first.Start(ctx, "l1", "q1", "a1", 3)
	require.NoError(t, err)
	require.NoError(t, first.Answer(ctx, "l1", "q1", "question-1", 2, true))
	require.NoError(t, first.RecordTime(ctx, "l1", "q1", 30))

	// A new store over the same log sees the interrupted attempt.
	second := NewEventStore(repo)
	p, err := second.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "a1", p.AttemptID)
	assert.Equal(t, 1, p.CurrentQuestionIndex)
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 30, p.TimeSpentSeconds)
	assert.False(t, p.Completed)
}

func TestEventStoreTimeCoalescing(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}
	s := NewEventStore(repo)

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)

	// One-second ticks accumulate without logging until the threshold.
	for i := 0; i < 14; i++ {
		require.NoError(t, s.RecordTime(ctx, "l1", "q1", 1))
	}
	assert.Equal(t, []string{"start"}, repo.actions("l1", "q1"))

	require.NoError(t, s.RecordTime(ctx, "l1", "q1", 1))
	assert.Equal(t, []string{"start", "time"}, repo.actions("l1", "q1"))
	assert.Equal(t, 15, repo.events[len(repo.events)-1].TimeSpentSecs)

	// Pending seconds fold into the complete event's total.
	require.NoError(t, s.RecordTime(ctx, "l1", "q1", 5))
	_, err = s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	last := repo.events[len(repo.events)-1]
	assert.Equal(t, "complete", last.Action)
	assert.Equal(t, 20, last.TimeSpentSecs)
}

func TestEventStoreReplayCompletedTotalTime(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}

	first := NewEventStore(repo)
	_, err := first.Start(ctx, "l1", "q1", "a1", 1)
	require.NoError(t, err)
	require.NoError(t, first.RecordTime(ctx, "l1", "q1", 8))
	_, err = first.Complete(ctx, "l1", "q1")
	require.NoError(t, err)

	second := NewEventStore(repo)
	p, err := second.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.Completed)
	assert.Equal(t, 8, p.TimeSpentSeconds, "unflushed time recovers from the complete event")
}

func TestEventStoreResetAndRestartReplay(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}

	first := NewEventStore(repo)
	_, err := first.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	require.NoError(t, first.Answer(ctx, "l1", "q1", "question-1", 0, true))
	require.NoError(t, first.Reset(ctx, "l1", "q1"))
	_, err = first.Start(ctx, "l1", "q1", "a2", 2)
	require.NoError(t, err)

	second := NewEventStore(repo)
	p, err := second.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "a2", p.AttemptID)
	assert.Equal(t, 0, p.Score)
}

func TestEventStoreResetWithoutAttemptLogsNothing(t *testing.T) {
	ctx := context.Background()
	repo := &logRepo{}
	s := NewEventStore(repo)

	require.NoError(t, s.Reset(ctx, "l1", "q1"))
	assert.Empty(t, repo.actions("l1", "q1"))
}
