// Package play runs a timed quiz attempt: question flow, countdown,
// answer reveal, and the results view with retake.
package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/attempt"
	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/layout"
)

// Deps are the collaborators a play screen needs.
type Deps struct {
	LearnerID string
	Attempts  attempt.Store
	Rewards   *rewards.Engine
	Sink      notify.Sink

	// OnFinished runs after each completed attempt, once rewards are
	// applied. The app uses it to persist a state snapshot.
	OnFinished func()
}

// PlayScreen implements screen.Screen for one quiz attempt.
type PlayScreen struct {
	quiz *quiz.Quiz
	deps Deps

	sess        *session.Session
	choice      components.MultiChoice
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for the given quiz.
func New(q *quiz.Quiz, deps Deps) *PlayScreen {
	return &PlayScreen{quiz: q, deps: deps}
}

func (s *PlayScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sess, err := session.New(session.Config{
			Quiz:      s.quiz,
			LearnerID: s.deps.LearnerID,
			Store:     s.deps.Attempts,
			Rewards:   s.deps.Rewards,
			Sink:      s.deps.Sink,
		})
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if err := sess.Begin(context.Background()); err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{Session: sess}
	}
}

func (s *PlayScreen) Title() string {
	return s.quiz.Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.sess == nil {
		return nil
	}
	switch s.sess.Phase {
	case session.PhaseAnswerRevealed:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case session.PhaseCompleted:
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4/↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *PlayScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sess = msg.Session

	// Resuming an exhausted attempt lands straight on the results view.
	if s.sess.Phase == session.PhaseCompleted {
		s.finishAttempt()
		return s, nil
	}

	s.loadQuestion()
	return s, tickCmd()
}

func (s *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.sess == nil || s.sess.Phase == session.PhaseCompleted {
		return s, nil
	}

	// The clock pauses during the answer reveal, but the chain stays
	// armed so the countdown resumes on advance without stacking a
	// second timer.
	if s.sess.Phase != session.PhaseInProgress {
		return s, tickCmd()
	}

	if err := s.sess.Tick(context.Background()); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.sess.Phase == session.PhaseCompleted {
		s.finishAttempt()
		return s, nil
	}
	return s, tickCmd()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.sess == nil {
		return s, nil
	}

	// Quit confirmation dialog. Leaving keeps the attempt resumable.
	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, nil
		}
		return s, nil
	}

	switch s.sess.Phase {
	case session.PhaseInProgress:
		return s.handleQuestionKey(key, msg)

	case session.PhaseAnswerRevealed:
		// Any key advances.
		if err := s.sess.Advance(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if s.sess.Phase == session.PhaseCompleted {
			s.finishAttempt()
			return s, nil
		}
		s.loadQuestion()
		return s, nil

	case session.PhaseCompleted:
		switch key {
		case "r", "R":
			if err := s.sess.Retake(context.Background()); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.loadQuestion()
			return s, tickCmd()
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *PlayScreen) handleQuestionKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.choice.Options) {
			s.choice.Selected = idx
			return s.submit()
		}
		return s, nil
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	s.sess.Select(s.choice.Selected)
	if err := s.sess.Submit(ctx); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.sess.Phase == session.PhaseAnswerRevealed {
		s.choice.Submitted = true
		s.choice.ChosenIndex = s.choice.Selected
	}
	return s, nil
}

// loadQuestion rebuilds the choice component for the current question.
func (s *PlayScreen) loadQuestion() {
	q := s.sess.Current()
	if q == nil {
		return
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectAnswerIndex)
}

func (s *PlayScreen) finishAttempt() {
	if s.deps.OnFinished != nil {
		s.deps.OnFinished()
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
