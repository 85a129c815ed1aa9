package rewards

import "time"

// ApplyActivity updates the day streak for a qualifying activity on the
// given date. Same-day activity leaves the streak unchanged, the day after
// the last activity extends it, and any longer gap (or no prior activity)
// restarts it at 1.
func (s *State) ApplyActivity(now time.Time) {
	today := dateOf(now)

	switch {
	case s.LastActivity.IsZero():
		s.Streak = 1
	case sameDay(s.LastActivity, today):
		return
	case sameDay(s.LastActivity.AddDate(0, 0, 1), today):
		s.Streak++
	default:
		s.Streak = 1
	}

	s.LastActivity = today
}

// dateOf truncates t to day granularity in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
