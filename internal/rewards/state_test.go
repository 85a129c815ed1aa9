package rewards

import (
	"testing"
)

func TestLevelDerivation(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{999, 2},
		{1000, 3},
		{4999, 10},
		{5000, 11},
	}

	for _, tt := range tests {
		s := NewState()
		s.XP = tt.xp
		if got := s.Level(); got != tt.want {
			t.Errorf("Level() with xp=%d = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		xp                            int
		current, required, remaining int
	}{
		{0, 0, 500, 500},
		{170, 170, 500, 330},
		{500, 0, 500, 500},
		{740, 240, 500, 260},
	}

	for _, tt := range tests {
		s := NewState()
		s.XP = tt.xp
		p := s.XPToNextLevel()
		if p.Current != tt.current || p.Required != tt.required || p.Remaining != tt.remaining {
			t.Errorf("XPToNextLevel() with xp=%d = %+v, want {%d %d %d}",
				tt.xp, p, tt.current, tt.required, tt.remaining)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewState()
	s.XP = 1234
	s.Streak = 5
	s.LastActivity = day("2026-08-20")
	s.QuizzesCompleted = 7
	s.LessonsCompleted = 3
	s.PerfectScores = 2
	s.Unlocked["first-quiz"] = true
	s.Unlocked["streak-3"] = true

	restored := FromSnapshot(s.SnapshotData())

	if restored.XP != 1234 || restored.Streak != 5 {
		t.Errorf("restored xp/streak = %d/%d", restored.XP, restored.Streak)
	}
	if !sameDay(restored.LastActivity, day("2026-08-20")) {
		t.Errorf("restored last activity = %v", restored.LastActivity)
	}
	if restored.QuizzesCompleted != 7 || restored.LessonsCompleted != 3 || restored.PerfectScores != 2 {
		t.Errorf("restored counters = %+v", restored)
	}
	if !restored.Unlocked["first-quiz"] || !restored.Unlocked["streak-3"] {
		t.Errorf("restored unlocks = %v", restored.Unlocked)
	}
	if restored.Level() != s.Level() {
		t.Errorf("restored level = %d, want %d", restored.Level(), s.Level())
	}
}

func TestFromSnapshotNil(t *testing.T) {
	s := FromSnapshot(nil)
	if s.XP != 0 || s.Streak != 0 || s.Level() != 1 {
		t.Errorf("fresh state = %+v", s)
	}
	if s.Unlocked == nil {
		t.Fatal("Unlocked map not initialized")
	}
}
