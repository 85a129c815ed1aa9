package attempt

import (
	"context"
	"sync"

	"github.com/abhisek/quizforge/internal/store"
)

// timeFlushInterval batches time events: elapsed seconds accumulate in
// memory and hit the log only once this many seconds have gathered, or
// when the attempt reaches a terminal action.
const timeFlushInterval = 15

// EventStore is a Store backed by the append-only event log. Mutations are
// applied to an in-memory replica and written through as attempt events;
// on first access per (learner, quiz) pair the replica is rebuilt by
// replaying the log, which is how interrupted attempts survive restarts.
type EventStore struct {
	mem  *MemoryStore
	repo store.EventRepo

	mu          sync.Mutex
	replayed    map[pairKey]bool
	pendingTime map[pairKey]int
}

var _ Store = (*EventStore)(nil)

func NewEventStore(repo store.EventRepo) *EventStore {
	return &EventStore{
		mem:         NewMemoryStore(),
		repo:        repo,
		replayed:    make(map[pairKey]bool),
		pendingTime: make(map[pairKey]int),
	}
}

// ensureReplayed rebuilds the in-memory record from the log, once per pair.
func (s *EventStore) ensureReplayed(ctx context.Context, learnerID, quizID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{learnerID, quizID}
	if s.replayed[key] {
		return nil
	}
	s.replayed[key] = true

	events, err := s.repo.QueryAttemptEvents(ctx, learnerID, quizID)
	if err != nil {
		return err
	}
	for _, ev := range events {
		switch ev.Action {
		case store.AttemptActionStart:
			if _, err := s.mem.Start(ctx, learnerID, quizID, ev.AttemptID, ev.TotalQuestions); err != nil {
				return err
			}
		case store.AttemptActionAnswer:
			if err := s.mem.Answer(ctx, learnerID, quizID, ev.QuestionID, ev.SelectedIndex, ev.Correct); err != nil {
				return err
			}
		case store.AttemptActionTime:
			if err := s.mem.RecordTime(ctx, learnerID, quizID, ev.TimeSpentSecs); err != nil {
				return err
			}
		case store.AttemptActionComplete:
			// The complete event carries the authoritative total time,
			// including seconds that never made it into a time event.
			if p, _ := s.mem.Progress(ctx, learnerID, quizID); p != nil && ev.TimeSpentSecs > p.TimeSpentSeconds {
				if err := s.mem.RecordTime(ctx, learnerID, quizID, ev.TimeSpentSecs-p.TimeSpentSeconds); err != nil {
					return err
				}
			}
			if _, err := s.mem.Complete(ctx, learnerID, quizID); err != nil {
				return err
			}
		case store.AttemptActionReset:
			if err := s.mem.Reset(ctx, learnerID, quizID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *EventStore) attemptID(ctx context.Context, learnerID, quizID string) string {
	p, err := s.mem.Progress(ctx, learnerID, quizID)
	if err != nil || p == nil {
		return ""
	}
	return p.AttemptID
}

func (s *EventStore) Start(ctx context.Context, learnerID, quizID, attemptID string, totalQuestions int) (*Progress, error) {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return nil, err
	}
	p, err := s.mem.Start(ctx, learnerID, quizID, attemptID, totalQuestions)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	delete(s.pendingTime, pairKey{learnerID, quizID})
	s.mu.Unlock()
	err = s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:      learnerID,
		QuizID:         quizID,
		AttemptID:      attemptID,
		Action:         store.AttemptActionStart,
		SelectedIndex:  -1,
		TotalQuestions: totalQuestions,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *EventStore) Answer(ctx context.Context, learnerID, quizID, questionID string, selectedIndex int, correct bool) error {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return err
	}
	before, err := s.mem.Progress(ctx, learnerID, quizID)
	if err != nil {
		return err
	}
	if before == nil || before.Completed {
		return nil
	}
	if err := s.mem.Answer(ctx, learnerID, quizID, questionID, selectedIndex, correct); err != nil {
		return err
	}
	after, err := s.mem.Progress(ctx, learnerID, quizID)
	if err != nil {
		return err
	}
	return s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:     learnerID,
		QuizID:        quizID,
		AttemptID:     after.AttemptID,
		Action:        store.AttemptActionAnswer,
		QuestionID:    questionID,
		SelectedIndex: selectedIndex,
		Correct:       correct,
		Score:         after.Score,
	})
}

func (s *EventStore) RecordTime(ctx context.Context, learnerID, quizID string, seconds int) error {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return err
	}
	p, err := s.mem.Progress(ctx, learnerID, quizID)
	if err != nil {
		return err
	}
	if p == nil || p.Completed || seconds <= 0 {
		return nil
	}
	if err := s.mem.RecordTime(ctx, learnerID, quizID, seconds); err != nil {
		return err
	}

	key := pairKey{learnerID, quizID}
	s.mu.Lock()
	s.pendingTime[key] += seconds
	pending := s.pendingTime[key]
	if pending < timeFlushInterval {
		s.mu.Unlock()
		return nil
	}
	delete(s.pendingTime, key)
	s.mu.Unlock()

	return s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:     learnerID,
		QuizID:        quizID,
		AttemptID:     p.AttemptID,
		Action:        store.AttemptActionTime,
		SelectedIndex: -1,
		TimeSpentSecs: pending,
	})
}

func (s *EventStore) Complete(ctx context.Context, learnerID, quizID string) (*Result, error) {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return nil, err
	}
	p, err := s.mem.Progress(ctx, learnerID, quizID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	res, err := s.mem.Complete(ctx, learnerID, quizID)
	if err != nil {
		return nil, err
	}
	if p.Completed {
		// Already frozen; the tally was logged the first time.
		return res, nil
	}

	// The in-memory record already holds any seconds still pending a
	// time event, so its count is the authoritative total.
	key := pairKey{learnerID, quizID}
	s.mu.Lock()
	delete(s.pendingTime, key)
	s.mu.Unlock()

	return res, s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:      learnerID,
		QuizID:         quizID,
		AttemptID:      p.AttemptID,
		Action:         store.AttemptActionComplete,
		SelectedIndex:  -1,
		Score:          res.Score,
		TimeSpentSecs:  p.TimeSpentSeconds,
		TotalQuestions: res.TotalQuestions,
	})
}

func (s *EventStore) Reset(ctx context.Context, learnerID, quizID string) error {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return err
	}
	attemptID := s.attemptID(ctx, learnerID, quizID)
	if err := s.mem.Reset(ctx, learnerID, quizID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.pendingTime, pairKey{learnerID, quizID})
	s.mu.Unlock()
	if attemptID == "" {
		return nil
	}
	return s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:     learnerID,
		QuizID:        quizID,
		AttemptID:     attemptID,
		Action:        store.AttemptActionReset,
		SelectedIndex: -1,
	})
}

func (s *EventStore) Progress(ctx context.Context, learnerID, quizID string) (*Progress, error) {
	if err := s.ensureReplayed(ctx, learnerID, quizID); err != nil {
		return nil, err
	}
	return s.mem.Progress(ctx, learnerID, quizID)
}
