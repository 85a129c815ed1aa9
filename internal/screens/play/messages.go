package play

import (
	"time"

	"github.com/abhisek/quizforge/internal/session"
)

// sessionReadyMsg carries the started (or resumed) session, or the error
// that prevented it.
type sessionReadyMsg struct {
	Session *session.Session
	Err     error
}

// timerTickMsg fires once per second while the clock runs.
type timerTickMsg time.Time
