package rewards

import (
	"time"

	"github.com/abhisek/quizforge/internal/store"
)

// XPPerLevel is the XP span of one level. Level is always derived from XP
// and never stored independently.
const XPPerLevel = 500

// State is one learner's cumulative gamification state.
type State struct {
	XP int

	// Streak counts consecutive calendar days with at least one
	// qualifying activity.
	Streak int

	// LastActivity is the date of the most recent qualifying activity,
	// at day granularity. Zero means no prior activity.
	LastActivity time.Time

	QuizzesCompleted int
	LessonsCompleted int
	PerfectScores    int

	// Unlocked is the set of achievement ids; ids are never removed.
	Unlocked map[string]bool
}

// NewState returns an empty state for a fresh learner.
func NewState() *State {
	return &State{Unlocked: make(map[string]bool)}
}

// Level derives the learner's level from XP.
func (s *State) Level() int {
	return s.XP/XPPerLevel + 1
}

// ActiveToday reports whether the learner already has a qualifying
// activity on the current calendar day.
func (s *State) ActiveToday() bool {
	return !s.LastActivity.IsZero() && sameDay(s.LastActivity, time.Now())
}

// LevelProgress describes progress toward the next level.
type LevelProgress struct {
	Current   int // XP earned within the current level
	Required  int // XP span of a level
	Remaining int // XP still needed to level up
}

// XPToNextLevel returns progress toward the next level. Purely derived.
func (s *State) XPToNextLevel() LevelProgress {
	level := s.Level()
	return LevelProgress{
		Current:   s.XP - (level-1)*XPPerLevel,
		Required:  XPPerLevel,
		Remaining: level*XPPerLevel - s.XP,
	}
}

const dateLayout = "2006-01-02"

// FromSnapshot restores a State from persisted snapshot data.
// A nil input yields a fresh state.
func FromSnapshot(data *store.RewardsSnapshotData) *State {
	s := NewState()
	if data == nil {
		return s
	}
	s.XP = data.XP
	s.Streak = data.Streak
	s.QuizzesCompleted = data.QuizzesCompleted
	s.LessonsCompleted = data.LessonsCompleted
	s.PerfectScores = data.PerfectScores
	if data.LastActivityDate != "" {
		if t, err := time.Parse(dateLayout, data.LastActivityDate); err == nil {
			s.LastActivity = t
		}
	}
	for _, id := range data.Unlocked {
		s.Unlocked[id] = true
	}
	return s
}

// SnapshotData converts the state for snapshot persistence.
func (s *State) SnapshotData() *store.RewardsSnapshotData {
	data := &store.RewardsSnapshotData{
		XP:               s.XP,
		Streak:           s.Streak,
		QuizzesCompleted: s.QuizzesCompleted,
		LessonsCompleted: s.LessonsCompleted,
		PerfectScores:    s.PerfectScores,
	}
	if !s.LastActivity.IsZero() {
		data.LastActivityDate = s.LastActivity.Format(dateLayout)
	}
	for id := range s.Unlocked {
		data.Unlocked = append(data.Unlocked, id)
	}
	return data
}
