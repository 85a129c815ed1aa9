package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizforge/internal/attempt"
	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
)

// testQuiz builds a quiz where option 0 is always correct.
func testQuiz(questions, limitSecs int) *quiz.Quiz {
	q := &quiz.Quiz{
		ID:               "quiz-1",
		Title:            "Test Quiz",
		Subject:          "testing",
		TimeLimitSeconds: limitSecs,
	}
	for i := 0; i < questions; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			ID:                 fmt.Sprintf("question-%d", i+1),
			Text:               fmt.Sprintf("Question %d?", i+1),
			Options:            []string{"right", "wrong", "wrong"},
			CorrectAnswerIndex: 0,
		})
	}
	return q
}

func newTestSession(t *testing.T, q *quiz.Quiz, s attempt.Store) *Session {
	t.Helper()
	sess, err := New(Config{
		Quiz:      q,
		LearnerID: "learner-1",
		Store:     s,
	})
	require.NoError(t, err)
	return sess
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	s := attempt.NewMemoryStore()

	_, err := New(Config{Quiz: nil, Store: s})
	assert.ErrorIs(t, err, ErrNoQuestions)

	_, err = New(Config{Quiz: &quiz.Quiz{TimeLimitSeconds: 60}, Store: s})
	assert.ErrorIs(t, err, ErrNoQuestions)

	noLimit := testQuiz(2, 0)
	_, err = New(Config{Quiz: noLimit, Store: s})
	assert.ErrorIs(t, err, ErrNoTimeLimit)

	_, err = New(Config{Quiz: testQuiz(2, 60)})
	assert.ErrorIs(t, err, ErrMissingStore)
}

func TestFullPlaythrough(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, testQuiz(2, 60), attempt.NewMemoryStore())

	assert.Equal(t, PhaseNotStarted, sess.Phase)
	require.NoError(t, sess.Begin(ctx))
	assert.Equal(t, PhaseInProgress, sess.Phase)
	assert.Equal(t, 60, sess.Remaining)
	assert.NotEmpty(t, sess.AttemptID)

	// First question answered correctly.
	sess.Select(0)
	require.NoError(t, sess.Submit(ctx))
	assert.Equal(t, PhaseAnswerRevealed, sess.Phase)
	assert.True(t, sess.Correct)

	require.NoError(t, sess.Advance(ctx))
	assert.Equal(t, PhaseInProgress, sess.Phase)
	assert.Equal(t, 1, sess.Index)
	assert.Equal(t, NoSelection, sess.Selected)

	// Second answered incorrectly; advancing past the last completes.
	sess.Select(1)
	require.NoError(t, sess.Submit(ctx))
	assert.False(t, sess.Correct)
	require.NoError(t, sess.Advance(ctx))

	assert.Equal(t, PhaseCompleted, sess.Phase)
	require.NotNil(t, sess.Outcome)
	assert.Equal(t, 1, sess.Outcome.Score)
	assert.Equal(t, 2, sess.Outcome.Total)
	assert.Equal(t, 50, sess.Outcome.Percent)
	assert.Equal(t, "D", sess.Outcome.Grade)
}

func TestSubmitRequiresSelection(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, testQuiz(1, 60), attempt.NewMemoryStore())
	require.NoError(t, sess.Begin(ctx))

	require.NoError(t, sess.Submit(ctx))
	assert.Equal(t, PhaseInProgress, sess.Phase, "submit without a selection is ignored")

	sess.Select(5)
	assert.Equal(t, NoSelection, sess.Selected, "out of range selection is ignored")
}

func TestRevealPausesClock(t *testing.T) {
	ctx := context.Background()
	store := attempt.NewMemoryStore()
	sess := newTestSession(t, testQuiz(2, 60), store)
	require.NoError(t, sess.Begin(ctx))

	require.NoError(t, sess.Tick(ctx))
	assert.Equal(t, 59, sess.Remaining)

	sess.Select(0)
	require.NoError(t, sess.Submit(ctx))
	require.Equal(t, PhaseAnswerRevealed, sess.Phase)

	require.NoError(t, sess.Tick(ctx))
	require.NoError(t, sess.Tick(ctx))
	assert.Equal(t, 59, sess.Remaining, "clock must not run while the answer is revealed")

	p, err := store.Progress(ctx, "learner-1", "quiz-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.TimeSpentSeconds, "revealed seconds must not be persisted")

	// The clock resumes once the next question opens.
	require.NoError(t, sess.Advance(ctx))
	require.NoError(t, sess.Tick(ctx))
	assert.Equal(t, 58, sess.Remaining)
}

func TestTimeoutDiscardsUnsubmittedSelection(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, testQuiz(2, 3), attempt.NewMemoryStore())
	require.NoError(t, sess.Begin(ctx))

	sess.Select(0)
	require.NoError(t, sess.Submit(ctx))
	require.NoError(t, sess.Advance(ctx))

	// Second question selected but never submitted when the clock runs out.
	sess.Select(0)
	for i := 0; i < 3; i++ {
		require.NoError(t, sess.Tick(ctx))
	}

	assert.Equal(t, PhaseCompleted, sess.Phase)
	require.NotNil(t, sess.Outcome)
	assert.Equal(t, 1, sess.Outcome.Score, "only the submitted answer counts")
	assert.Equal(t, 2, sess.Outcome.Total)

	// Further ticks after completion do nothing.
	require.NoError(t, sess.Tick(ctx))
	assert.Equal(t, PhaseCompleted, sess.Phase)
}

func TestResumeInterruptedAttempt(t *testing.T) {
	ctx := context.Background()
	store := attempt.NewMemoryStore()
	q := testQuiz(3, 600)

	first := newTestSession(t, q, store)
	require.NoError(t, first.Begin(ctx))
	first.Select(0)
	require.NoError(t, first.Submit(ctx))
	require.NoError(t, first.Advance(ctx))
	for i := 0; i < 30; i++ {
		require.NoError(t, first.Tick(ctx))
	}

	// A fresh session over the same store picks up where the first left off.
	second := newTestSession(t, q, store)
	require.NoError(t, second.Begin(ctx))
	assert.Equal(t, first.AttemptID, second.AttemptID)
	assert.Equal(t, 1, second.Index)
	assert.Equal(t, 570, second.Remaining)
	assert.Equal(t, PhaseInProgress, second.Phase)
}

func TestResumeWithExhaustedClockCompletes(t *testing.T) {
	ctx := context.Background()
	store := attempt.NewMemoryStore()
	q := testQuiz(2, 10)

	first := newTestSession(t, q, store)
	require.NoError(t, first.Begin(ctx))
	first.Select(0)
	require.NoError(t, first.Submit(ctx))
	require.NoError(t, store.RecordTime(ctx, "learner-1", q.ID, 10))

	second := newTestSession(t, q, store)
	require.NoError(t, second.Begin(ctx))
	assert.Equal(t, PhaseCompleted, second.Phase)
	require.NotNil(t, second.Outcome)
	assert.Equal(t, 1, second.Outcome.Score)
}

func TestRetakeStartsFreshAttempt(t *testing.T) {
	ctx := context.Background()
	sess := newTestSession(t, testQuiz(1, 60), attempt.NewMemoryStore())
	require.NoError(t, sess.Begin(ctx))
	firstAttempt := sess.AttemptID

	sess.Select(0)
	require.NoError(t, sess.Submit(ctx))
	require.NoError(t, sess.Advance(ctx))
	require.Equal(t, PhaseCompleted, sess.Phase)

	require.NoError(t, sess.Retake(ctx))
	assert.Equal(t, PhaseInProgress, sess.Phase)
	assert.Equal(t, 0, sess.Index)
	assert.Equal(t, 60, sess.Remaining)
	assert.Nil(t, sess.Outcome)
	assert.NotEqual(t, firstAttempt, sess.AttemptID)
}

func TestCompletionAppliesRewardsAndNotifies(t *testing.T) {
	ctx := context.Background()
	engine := rewards.NewEngine("learner-1", rewards.NewState(), nil, nil)
	sink := notify.NewBuffer()

	var completed []Outcome
	sess, err := New(Config{
		Quiz:       testQuiz(2, 60),
		LearnerID:  "learner-1",
		Store:      attempt.NewMemoryStore(),
		Rewards:    engine,
		Sink:       sink,
		OnComplete: func(o Outcome) { completed = append(completed, o) },
	})
	require.NoError(t, err)
	require.NoError(t, sess.Begin(ctx))

	for i := 0; i < 2; i++ {
		sess.Select(0)
		require.NoError(t, sess.Submit(ctx))
		require.NoError(t, sess.Advance(ctx))
	}

	require.NotNil(t, sess.Outcome)
	assert.Equal(t, "A+", sess.Outcome.Grade)
	// 50 base + 2 correct * 10 + 100 perfect bonus.
	assert.Equal(t, 170, sess.Outcome.XPEarned)
	assert.NotEmpty(t, sess.Outcome.Unlocks, "first quiz and first perfect unlock")

	require.Len(t, completed, 1)
	assert.Equal(t, 2, completed[0].Score)

	reqs := sink.Drain()
	require.NotEmpty(t, reqs)
	assert.Equal(t, notify.TypeQuizCompleted, reqs[len(reqs)-1].Type)
}

// vanishedStore reports no tally at completion, as after a concurrent reset.
type vanishedStore struct {
	attempt.Store
}

func (v *vanishedStore) Complete(ctx context.Context, learnerID, quizID string) (*attempt.Result, error) {
	return nil, nil
}

func TestMissingTallySettlesWithoutRewards(t *testing.T) {
	ctx := context.Background()
	engine := rewards.NewEngine("learner-1", rewards.NewState(), nil, nil)
	sink := notify.NewBuffer()

	completions := 0
	sess, err := New(Config{
		Quiz:       testQuiz(1, 60),
		LearnerID:  "learner-1",
		Store:      &vanishedStore{Store: attempt.NewMemoryStore()},
		Rewards:    engine,
		Sink:       sink,
		OnComplete: func(Outcome) { completions++ },
	})
	require.NoError(t, err)
	require.NoError(t, sess.Begin(ctx))

	sess.Select(0)
	require.NoError(t, sess.Submit(ctx))
	require.NoError(t, sess.Advance(ctx))

	assert.Equal(t, PhaseCompleted, sess.Phase)
	require.NotNil(t, sess.Outcome)
	assert.Equal(t, 0, sess.Outcome.Score)
	assert.Equal(t, 0, sess.Outcome.XPEarned)
	assert.Equal(t, "F", sess.Outcome.Grade)

	assert.Equal(t, 0, engine.State().XP, "a phantom attempt must not grant XP")
	assert.Equal(t, 0, engine.State().QuizzesCompleted)
	assert.Zero(t, sink.Len())
	assert.Zero(t, completions, "completion callback must not fire for a phantom attempt")
}

func TestGrade(t *testing.T) {
	cases := []struct {
		percent int
		want    string
	}{
		{100, "A+"}, {90, "A+"}, {89, "A"}, {80, "A"},
		{79, "B"}, {70, "B"}, {69, "C"}, {60, "C"},
		{59, "D"}, {50, "D"}, {49, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Grade(tc.percent), "percent %d", tc.percent)
	}
}
