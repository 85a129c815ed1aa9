// Package session drives a single timed quiz attempt through its phases,
// from first question to final grade. It owns the countdown, delegates
// progress to the attempt store, and hands the finished attempt to the
// rewards engine.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/attempt"
	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
)

// Phase is the lifecycle stage of a quiz session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseAnswerRevealed
	PhaseCompleted
)

// NoSelection marks that no answer option is currently selected.
const NoSelection = -1

var (
	ErrNoQuestions  = errors.New("session: quiz has no questions")
	ErrNoTimeLimit  = errors.New("session: quiz time limit must be positive")
	ErrMissingStore = errors.New("session: attempt store is required")
)

// Config wires a Session to its collaborators. Rewards, Sink, and
// OnComplete are optional.
type Config struct {
	Quiz      *quiz.Quiz
	LearnerID string
	Store     attempt.Store
	Rewards   *rewards.Engine
	Sink      notify.Sink

	// OnComplete fires once per attempt, after rewards are applied.
	OnComplete func(Outcome)
}

// Outcome is the final result of a completed attempt.
type Outcome struct {
	Score    int
	Total    int
	Percent  int
	Grade    string
	XPEarned int
	Unlocks  []rewards.Achievement
}

// Session is a running quiz attempt. It is driven from a single goroutine
// (the UI event loop) and is not safe for concurrent use.
type Session struct {
	cfg       Config
	AttemptID string

	Phase     Phase
	Index     int // current question, 0-based
	Selected  int // selected option for the current question, or NoSelection
	Correct   bool
	Remaining int // seconds left on the clock
	Outcome   *Outcome
}

// New validates the quiz and prepares a session in PhaseNotStarted.
func New(cfg Config) (*Session, error) {
	if cfg.Quiz == nil || len(cfg.Quiz.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	if cfg.Quiz.TimeLimitSeconds <= 0 {
		return nil, ErrNoTimeLimit
	}
	if cfg.Store == nil {
		return nil, ErrMissingStore
	}
	return &Session{
		cfg:      cfg,
		Phase:    PhaseNotStarted,
		Selected: NoSelection,
	}, nil
}

// Quiz returns the quiz this session plays.
func (s *Session) Quiz() *quiz.Quiz {
	return s.cfg.Quiz
}

// Current returns the question at the session's index, or nil once every
// question has been answered.
func (s *Session) Current() *quiz.Question {
	if s.Index < 0 || s.Index >= len(s.cfg.Quiz.Questions) {
		return nil
	}
	return &s.cfg.Quiz.Questions[s.Index]
}

// Begin starts the attempt, resuming an interrupted one when the store
// still holds it. On resume the clock restarts with whatever time the
// prior run left, and an already exhausted clock completes immediately.
func (s *Session) Begin(ctx context.Context) error {
	if s.Phase != PhaseNotStarted {
		return nil
	}

	q := s.cfg.Quiz
	prior, err := s.cfg.Store.Progress(ctx, s.cfg.LearnerID, q.ID)
	if err != nil {
		return err
	}

	if prior != nil && !prior.Completed && prior.TotalQuestions == len(q.Questions) {
		s.AttemptID = prior.AttemptID
		s.Index = prior.CurrentQuestionIndex
		s.Remaining = q.TimeLimitSeconds - prior.TimeSpentSeconds
		if s.Remaining < 0 {
			s.Remaining = 0
		}
	} else {
		s.AttemptID = uuid.NewString()
		if _, err := s.cfg.Store.Start(ctx, s.cfg.LearnerID, q.ID, s.AttemptID, len(q.Questions)); err != nil {
			return err
		}
		s.Index = 0
		s.Remaining = q.TimeLimitSeconds
	}

	if s.cfg.Rewards != nil {
		s.cfg.Rewards.ResetSession()
	}

	s.Phase = PhaseInProgress
	s.Selected = NoSelection

	if s.Index >= len(q.Questions) || s.Remaining == 0 {
		return s.finish(ctx)
	}
	return nil
}

// Select highlights an answer option. Only meaningful while a question
// is open.
func (s *Session) Select(optionIndex int) {
	if s.Phase != PhaseInProgress {
		return
	}
	if optionIndex < 0 || optionIndex >= len(s.Current().Options) {
		return
	}
	s.Selected = optionIndex
}

// Submit grades the selected option, records the answer, and reveals the
// result. A submit without a selection is ignored.
func (s *Session) Submit(ctx context.Context) error {
	if s.Phase != PhaseInProgress || s.Selected == NoSelection {
		return nil
	}
	q := s.Current()
	if q == nil {
		return nil
	}

	s.Correct = s.Selected == q.CorrectAnswerIndex
	if err := s.cfg.Store.Answer(ctx, s.cfg.LearnerID, s.cfg.Quiz.ID, q.ID, s.Selected, s.Correct); err != nil {
		return err
	}
	s.Phase = PhaseAnswerRevealed
	return nil
}

// Advance moves past a revealed answer to the next question, or completes
// the attempt when the revealed question was the last.
func (s *Session) Advance(ctx context.Context) error {
	if s.Phase != PhaseAnswerRevealed {
		return nil
	}
	s.Index++
	s.Selected = NoSelection
	if s.Index >= len(s.cfg.Quiz.Questions) {
		return s.finish(ctx)
	}
	s.Phase = PhaseInProgress
	return nil
}

// Tick advances the clock by one second. The clock only runs while a
// question is open; the answer reveal pauses it. At zero the attempt
// times out: any unsubmitted selection is discarded and the attempt
// completes with the answers recorded so far.
func (s *Session) Tick(ctx context.Context) error {
	if s.Phase != PhaseInProgress {
		return nil
	}
	if s.Remaining > 0 {
		s.Remaining--
		if err := s.cfg.Store.RecordTime(ctx, s.cfg.LearnerID, s.cfg.Quiz.ID, 1); err != nil {
			return err
		}
	}
	if s.Remaining == 0 {
		s.Selected = NoSelection
		return s.finish(ctx)
	}
	return nil
}

// Retake discards the finished attempt and starts a fresh one on the
// same quiz.
func (s *Session) Retake(ctx context.Context) error {
	if err := s.cfg.Store.Reset(ctx, s.cfg.LearnerID, s.cfg.Quiz.ID); err != nil {
		return err
	}
	s.Phase = PhaseNotStarted
	s.Index = 0
	s.Selected = NoSelection
	s.Outcome = nil
	return s.Begin(ctx)
}

func (s *Session) finish(ctx context.Context) error {
	res, err := s.cfg.Store.Complete(ctx, s.cfg.LearnerID, s.cfg.Quiz.ID)
	if err != nil {
		return err
	}
	if res == nil {
		// The store no longer holds the attempt, e.g. a concurrent
		// reset raced this session. Settle with a zero outcome; no XP,
		// no notification, no completion callback.
		s.Outcome = &Outcome{Total: len(s.cfg.Quiz.Questions), Grade: Grade(0)}
		s.Phase = PhaseCompleted
		return nil
	}

	out := Outcome{
		Score:   res.Score,
		Total:   res.TotalQuestions,
		Percent: percent(res.Score, res.TotalQuestions),
	}
	out.Grade = Grade(out.Percent)

	if s.cfg.Rewards != nil {
		out.XPEarned = s.cfg.Rewards.CompleteQuiz(ctx, res.Score, res.TotalQuestions)
		out.Unlocks = s.cfg.Rewards.SessionUnlocks
	}

	if s.cfg.Sink != nil {
		_ = s.cfg.Sink.Notify(ctx, notify.Request{
			Type:        notify.TypeQuizCompleted,
			Title:       fmt.Sprintf("Quiz complete: %s", s.cfg.Quiz.Title),
			Description: fmt.Sprintf("Scored %d/%d (%s)", out.Score, out.Total, out.Grade),
		})
	}

	s.Outcome = &out
	s.Phase = PhaseCompleted

	if s.cfg.OnComplete != nil {
		s.cfg.OnComplete(out)
	}
	return nil
}

func percent(score, total int) int {
	if total == 0 {
		return 0
	}
	return score * 100 / total
}
