package attempt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	p, err := s.Start(ctx, "l1", "q1", "a1", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, p.CurrentQuestionIndex)
	assert.Equal(t, 3, p.TotalQuestions)
	assert.False(t, p.Completed)

	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 2, true))
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-2", 0, false))
	require.NoError(t, s.RecordTime(ctx, "l1", "q1", 42))

	p, err = s.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.CurrentQuestionIndex)
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 42, p.TimeSpentSeconds)
	assert.Equal(t, []string{"question-1", "question-2"}, p.AnswerOrder)

	res, err := s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 3, res.TotalQuestions)
}

func TestMemoryStoreAnswerOverwrite(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)

	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 1, false))
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 3, true))

	p, err := s.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Score)
	assert.Equal(t, 3, p.Answered["question-1"].SelectedIndex)
	// Order keeps the first occurrence only.
	assert.Equal(t, []string{"question-1"}, p.AnswerOrder)
	// The index still advances once per call, capped at the total.
	assert.Equal(t, 2, p.CurrentQuestionIndex)

	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, false))
	p, _ = s.Progress(ctx, "l1", "q1")
	assert.Equal(t, 1, p.Score, "score never decreases within an attempt")
	assert.Equal(t, 0, p.Answered["question-1"].SelectedIndex)
	assert.Equal(t, 2, p.CurrentQuestionIndex, "index stays capped")
}

func TestMemoryStoreMissingRecordNoOps(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, true))
	assert.NoError(t, s.RecordTime(ctx, "l1", "q1", 10))
	assert.NoError(t, s.Reset(ctx, "l1", "q1"))

	res, err := s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	assert.Nil(t, res)

	p, err := s.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStoreCompletedIsFrozen(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, true))

	res, err := s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 1, res.Score)

	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-2", 0, true))
	require.NoError(t, s.RecordTime(ctx, "l1", "q1", 99))

	p, _ := s.Progress(ctx, "l1", "q1")
	assert.Equal(t, 1, p.Score, "answers after completion are discarded")
	assert.Equal(t, 0, p.TimeSpentSeconds)

	again, err := s.Complete(ctx, "l1", "q1")
	require.NoError(t, err)
	assert.Equal(t, res, again)
}

func TestMemoryStoreStartReplacesAndResetDiscards(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, true))

	p, err := s.Start(ctx, "l1", "q1", "a2", 2)
	require.NoError(t, err)
	assert.Equal(t, "a2", p.AttemptID)
	assert.Equal(t, 0, p.Score)

	require.NoError(t, s.Reset(ctx, "l1", "q1"))
	p, err = s.Progress(ctx, "l1", "q1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStorePairIsolation(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	_, err = s.Start(ctx, "l2", "q1", "a2", 2)
	require.NoError(t, err)

	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, true))

	p, _ := s.Progress(ctx, "l2", "q1")
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 0, p.CurrentQuestionIndex)
}

func TestMemoryStoreProgressReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Start(ctx, "l1", "q1", "a1", 2)
	require.NoError(t, err)
	require.NoError(t, s.Answer(ctx, "l1", "q1", "question-1", 0, true))

	p, _ := s.Progress(ctx, "l1", "q1")
	p.Score = 99
	p.Answered["question-1"] = Answer{SelectedIndex: 9}

	fresh, _ := s.Progress(ctx, "l1", "q1")
	assert.Equal(t, 1, fresh.Score)
	assert.Equal(t, 0, fresh.Answered["question-1"].SelectedIndex)
}
