package attempt

import (
	"context"
	"sync"
	"time"
)

type pairKey struct {
	learnerID string
	quizID    string
}

// MemoryStore is an in-process Store. It is safe for concurrent use and
// hands out copies, never internal pointers.
type MemoryStore struct {
	mu       sync.Mutex
	attempts map[pairKey]*Progress
	now      func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: make(map[pairKey]*Progress),
		now:      time.Now,
	}
}

func (m *MemoryStore) Start(ctx context.Context, learnerID, quizID, attemptID string, totalQuestions int) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := &Progress{
		QuizID:         quizID,
		LearnerID:      learnerID,
		AttemptID:      attemptID,
		Answered:       make(map[string]Answer),
		TotalQuestions: totalQuestions,
		StartedAt:      m.now(),
	}
	m.attempts[pairKey{learnerID, quizID}] = p
	return p.clone(), nil
}

func (m *MemoryStore) Answer(ctx context.Context, learnerID, quizID, questionID string, selectedIndex int, correct bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.attempts[pairKey{learnerID, quizID}]
	if !ok || p.Completed {
		return nil
	}
	if prev, answered := p.Answered[questionID]; answered {
		// Overwrite replaces the stored answer, but the score never
		// decreases within an attempt.
		if !prev.Correct && correct {
			p.Score++
		}
	} else {
		p.AnswerOrder = append(p.AnswerOrder, questionID)
		if correct {
			p.Score++
		}
	}
	p.Answered[questionID] = Answer{SelectedIndex: selectedIndex, Correct: correct}
	if p.CurrentQuestionIndex < p.TotalQuestions {
		p.CurrentQuestionIndex++
	}
	return nil
}

func (m *MemoryStore) RecordTime(ctx context.Context, learnerID, quizID string, seconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.attempts[pairKey{learnerID, quizID}]
	if !ok || p.Completed || seconds <= 0 {
		return nil
	}
	p.TimeSpentSeconds += seconds
	return nil
}

func (m *MemoryStore) Complete(ctx context.Context, learnerID, quizID string) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.attempts[pairKey{learnerID, quizID}]
	if !ok {
		return nil, nil
	}
	p.Completed = true
	return &Result{Score: p.Score, TotalQuestions: p.TotalQuestions}, nil
}

func (m *MemoryStore) Reset(ctx context.Context, learnerID, quizID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.attempts, pairKey{learnerID, quizID})
	return nil
}

func (m *MemoryStore) Progress(ctx context.Context, learnerID, quizID string) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.attempts[pairKey{learnerID, quizID}]
	if !ok {
		return nil, nil
	}
	return p.clone(), nil
}
