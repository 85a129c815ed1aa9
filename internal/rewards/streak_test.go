package rewards

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestApplyActivityFirstEver(t *testing.T) {
	s := NewState()
	s.ApplyActivity(day("2026-08-20"))

	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1", s.Streak)
	}
	if !sameDay(s.LastActivity, day("2026-08-20")) {
		t.Errorf("last activity = %v", s.LastActivity)
	}
}

func TestApplyActivitySameDayIdempotent(t *testing.T) {
	s := NewState()
	s.ApplyActivity(day("2026-08-20"))
	s.ApplyActivity(day("2026-08-20"))
	s.ApplyActivity(day("2026-08-20").Add(23 * time.Hour)) // later the same day

	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 (same-day activity must not double-count)", s.Streak)
	}
}

func TestApplyActivityConsecutiveDays(t *testing.T) {
	s := NewState()
	s.ApplyActivity(day("2026-08-20"))
	s.ApplyActivity(day("2026-08-21"))
	s.ApplyActivity(day("2026-08-22"))

	if s.Streak != 3 {
		t.Errorf("streak = %d, want 3", s.Streak)
	}
}

func TestApplyActivityGapResets(t *testing.T) {
	tests := []struct {
		name string
		next string
	}{
		{"two day gap", "2026-08-23"},
		{"long gap", "2026-09-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.ApplyActivity(day("2026-08-20"))
			s.ApplyActivity(day("2026-08-21"))
			s.ApplyActivity(day(tt.next))

			if s.Streak != 1 {
				t.Errorf("streak = %d, want 1 after gap", s.Streak)
			}
			if !sameDay(s.LastActivity, day(tt.next)) {
				t.Errorf("last activity = %v, want %s", s.LastActivity, tt.next)
			}
		})
	}
}

func TestApplyActivityAcrossMonthBoundary(t *testing.T) {
	s := NewState()
	s.ApplyActivity(day("2026-08-31"))
	s.ApplyActivity(day("2026-09-01"))

	if s.Streak != 2 {
		t.Errorf("streak = %d, want 2", s.Streak)
	}
}
