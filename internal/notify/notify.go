// Package notify defines the outbound notification boundary. The engine
// only emits requests; delivery and display belong to the sink.
package notify

import (
	"context"
	"sync"
)

// Request types.
const (
	TypeQuizCompleted   = "quiz_completed"
	TypeLessonCompleted = "lesson_completed"
	TypeAchievement     = "achievement_unlocked"
)

// Request is a single notification request emitted by the engine.
type Request struct {
	Type        string
	Title       string
	Description string
	ActionURL   string
}

// Sink receives notification requests.
type Sink interface {
	Notify(ctx context.Context, req Request) error
}

// Buffer is an in-memory Sink. The UI drains it to show toasts; tests
// inspect it directly.
type Buffer struct {
	mu   sync.Mutex
	reqs []Request
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Notify(_ context.Context, req Request) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reqs = append(b.reqs, req)
	return nil
}

// Drain returns all buffered requests and clears the buffer.
func (b *Buffer) Drain() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	reqs := b.reqs
	b.reqs = nil
	return reqs
}

// Len returns the number of buffered requests.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.reqs)
}
