package play

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/attempt"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuiz(questions int) *quiz.Quiz {
	q := &quiz.Quiz{
		ID:               "quiz-1",
		Title:            "Test Quiz",
		Subject:          "testing",
		TimeLimitSeconds: 120,
	}
	for i := 0; i < questions; i++ {
		q.Questions = append(q.Questions, quiz.Question{
			ID:                 fmt.Sprintf("question-%d", i+1),
			Text:               fmt.Sprintf("Question %d?", i+1),
			Options:            []string{"right", "wrong", "wrong", "wrong"},
			CorrectAnswerIndex: 0,
		})
	}
	return q
}

// readyScreen creates a PlayScreen and runs its Init command so the
// session is started.
func readyScreen(t *testing.T, questions int) *PlayScreen {
	t.Helper()
	s := New(testQuiz(questions), Deps{
		LearnerID: "learner-1",
		Attempts:  attempt.NewMemoryStore(),
		Rewards:   rewards.NewEngine("learner-1", rewards.NewState(), nil, nil),
	})
	msg := s.Init()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("expected sessionReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("session init failed: %v", ready.Err)
	}
	s.Update(ready)
	return s
}

func TestPlayScreen_InitStartsSession(t *testing.T) {
	s := readyScreen(t, 2)
	if s.sess == nil {
		t.Fatal("expected session after init")
	}
	if s.sess.Phase != session.PhaseInProgress {
		t.Errorf("phase = %v, want in progress", s.sess.Phase)
	}
	if len(s.choice.Options) != 4 {
		t.Errorf("choice options = %d, want 4", len(s.choice.Options))
	}
}

func TestPlayScreen_NumberKeySubmits(t *testing.T) {
	s := readyScreen(t, 2)

	s.Update(keyPress('1'))

	if s.sess.Phase != session.PhaseAnswerRevealed {
		t.Fatalf("phase = %v, want answer revealed", s.sess.Phase)
	}
	if !s.sess.Correct {
		t.Error("option 1 should be correct")
	}
	if !s.choice.Submitted {
		t.Error("choice component should show the reveal")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Correct!") {
		t.Error("view should show the correctness banner")
	}
}

func TestPlayScreen_AdvanceToNextAndComplete(t *testing.T) {
	s := readyScreen(t, 2)

	s.Update(keyPress('1'))
	s.Update(keyPress(' ')) // any key advances

	if s.sess.Index != 1 {
		t.Errorf("index = %d, want 1", s.sess.Index)
	}
	if s.choice.Submitted {
		t.Error("choice component should be reset for the next question")
	}

	s.Update(keyPress('2')) // wrong answer
	s.Update(keyPress(' '))

	if s.sess.Phase != session.PhaseCompleted {
		t.Fatalf("phase = %v, want completed", s.sess.Phase)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "1/2 correct") {
		t.Errorf("results view should show the score, got:\n%s", view)
	}
}

func TestPlayScreen_TimerPausesDuringReveal(t *testing.T) {
	s := readyScreen(t, 2)

	s.Update(timerTickMsg{})
	if s.sess.Remaining != 119 {
		t.Fatalf("remaining = %d, want 119", s.sess.Remaining)
	}

	s.Update(keyPress('1'))
	_, cmd := s.Update(timerTickMsg{})
	if s.sess.Remaining != 119 {
		t.Errorf("remaining = %d, want 119 while the answer is revealed", s.sess.Remaining)
	}
	if cmd == nil {
		t.Error("timer chain should stay armed through the reveal")
	}

	s.Update(keyPress(' ')) // advance to the next question
	s.Update(timerTickMsg{})
	if s.sess.Remaining != 118 {
		t.Errorf("remaining = %d, want 118 after the clock resumes", s.sess.Remaining)
	}
}

func TestPlayScreen_TimeoutCompletes(t *testing.T) {
	s := readyScreen(t, 1)

	for i := 0; i < 120; i++ {
		s.Update(timerTickMsg{})
	}

	if s.sess.Phase != session.PhaseCompleted {
		t.Fatalf("phase = %v, want completed after timeout", s.sess.Phase)
	}
	if s.sess.Outcome.Score != 0 {
		t.Errorf("score = %d, want 0", s.sess.Outcome.Score)
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s := readyScreen(t, 2)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Error("expected quit confirmation dismissed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
}

func TestPlayScreen_Retake(t *testing.T) {
	s := readyScreen(t, 1)

	s.Update(keyPress('1'))
	s.Update(keyPress(' '))
	if s.sess.Phase != session.PhaseCompleted {
		t.Fatal("expected completed attempt")
	}
	firstAttempt := s.sess.AttemptID

	s.Update(keyPress('r'))
	if s.sess.Phase != session.PhaseInProgress {
		t.Fatalf("phase = %v, want in progress after retake", s.sess.Phase)
	}
	if s.sess.AttemptID == firstAttempt {
		t.Error("retake should start a new attempt")
	}
}

func TestPlayScreen_OnFinishedRuns(t *testing.T) {
	finished := 0
	s := New(testQuiz(1), Deps{
		LearnerID:  "learner-1",
		Attempts:   attempt.NewMemoryStore(),
		Rewards:    rewards.NewEngine("learner-1", rewards.NewState(), nil, nil),
		OnFinished: func() { finished++ },
	})
	msg := s.Init()()
	s.Update(msg)

	s.Update(keyPress('1'))
	s.Update(keyPress(' '))

	if finished != 1 {
		t.Errorf("OnFinished ran %d times, want 1", finished)
	}
}

func TestPlayScreen_ViewStates(t *testing.T) {
	s := New(testQuiz(1), Deps{LearnerID: "l", Attempts: attempt.NewMemoryStore()})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	s.errMsg = "boom"
	if !strings.Contains(s.View(80, 24), "boom") {
		t.Error("expected error view to include the message")
	}
}
