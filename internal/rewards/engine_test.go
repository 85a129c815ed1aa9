package rewards

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/store"
)

// mockEventRepo implements store.EventRepo for engine tests.
type mockEventRepo struct {
	xpEvents          []store.XPEventData
	achievementEvents []store.AchievementEventData
	lessonEvents      []store.LessonEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, _ store.AttemptEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAttemptEvents(_ context.Context, _, _ string) ([]store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAttemptSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.AttemptSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendXPEvent(_ context.Context, data store.XPEventData) error {
	m.xpEvents = append(m.xpEvents, data)
	return nil
}
func (m *mockEventRepo) QueryXPEvents(_ context.Context, _ string, _ store.QueryOpts) ([]store.XPEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	m.achievementEvents = append(m.achievementEvents, data)
	return nil
}
func (m *mockEventRepo) QueryAchievementEvents(_ context.Context, _ string) ([]store.AchievementEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessonEvents = append(m.lessonEvents, data)
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *mockEventRepo, *notify.Buffer) {
	t.Helper()
	repo := &mockEventRepo{}
	sink := &notify.Buffer{}
	e := NewEngine("kim", NewState(), repo, sink)
	e.now = func() time.Time { return day("2026-08-20") }
	return e, repo, sink
}

func TestCompleteQuizGrantsXP(t *testing.T) {
	e, repo, _ := newTestEngine(t)
	ctx := context.Background()

	// 2/2 correct: base 50 + 2*10, perfect bonus 100.
	earned := e.CompleteQuiz(ctx, 2, 2)
	if earned != 170 {
		t.Errorf("earned = %d, want 170", earned)
	}
	if e.State().XP != 170 {
		t.Errorf("xp = %d, want 170", e.State().XP)
	}
	if e.State().QuizzesCompleted != 1 {
		t.Errorf("quizzes completed = %d, want 1", e.State().QuizzesCompleted)
	}
	if e.State().PerfectScores != 1 {
		t.Errorf("perfect scores = %d, want 1", e.State().PerfectScores)
	}
	if len(repo.xpEvents) != 1 {
		t.Fatalf("persisted %d xp events, want 1", len(repo.xpEvents))
	}
	if repo.xpEvents[0].Kind != "quiz" || repo.xpEvents[0].Amount != 170 {
		t.Errorf("xp event = %+v", repo.xpEvents[0])
	}
}

func TestCompleteQuizImperfect(t *testing.T) {
	e, _, _ := newTestEngine(t)

	earned := e.CompleteQuiz(context.Background(), 3, 5)
	if earned != 80 { // 50 + 3*10, no perfect bonus
		t.Errorf("earned = %d, want 80", earned)
	}
	if e.State().PerfectScores != 0 {
		t.Errorf("perfect scores = %d, want 0", e.State().PerfectScores)
	}
}

func TestCompleteQuizNoStreakBonus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	e.State().Streak = 4
	e.State().LastActivity = day("2026-08-19")

	// Streak advances to 5, but quiz completion never carries the
	// streak bonus; only AddXP does.
	earned := e.CompleteQuiz(ctx, 0, 2)
	if earned != 50 {
		t.Errorf("earned = %d, want 50 (no streak bonus on quiz completion)", earned)
	}
	if e.State().Streak != 5 {
		t.Errorf("streak = %d, want 5", e.State().Streak)
	}
}

func TestAddXPStreakBonus(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	// Streak below threshold: no bonus.
	if got := e.AddXP(ctx, 40, "daily challenge"); got != 40 {
		t.Errorf("granted = %d, want 40", got)
	}

	// Streak at threshold: +25.
	e.State().Streak = 3
	e.State().LastActivity = day("2026-08-20")
	if got := e.AddXP(ctx, 40, "daily challenge"); got != 65 {
		t.Errorf("granted = %d, want 65", got)
	}
}

func TestCompleteLesson(t *testing.T) {
	e, repo, _ := newTestEngine(t)

	earned := e.CompleteLesson(context.Background(), "pointers-101")
	if earned != LessonXP {
		t.Errorf("earned = %d, want %d", earned, LessonXP)
	}
	if e.State().LessonsCompleted != 1 {
		t.Errorf("lessons completed = %d, want 1", e.State().LessonsCompleted)
	}
	if len(repo.lessonEvents) != 1 || repo.lessonEvents[0].LessonID != "pointers-101" {
		t.Errorf("lesson events = %+v", repo.lessonEvents)
	}
}

func TestSameDayEventsAdvanceStreakOnce(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	e.CompleteQuiz(ctx, 1, 2)
	e.CompleteLesson(ctx, "l1")
	e.AddXP(ctx, 10, "bonus")

	if e.State().Streak != 1 {
		t.Errorf("streak = %d, want 1 after three same-day events", e.State().Streak)
	}
	// XP still accumulated for every event: 60 + 30 + 10.
	if e.State().XP != 100 {
		t.Errorf("xp = %d, want 100", e.State().XP)
	}
}

func TestLevelConsistencyAcrossEvents(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		e.CompleteQuiz(ctx, 2, 2)
		s := e.State()
		if want := s.XP/XPPerLevel + 1; s.Level() != want {
			t.Fatalf("level = %d, want %d at xp %d", s.Level(), want, s.XP)
		}
	}
}

func TestAchievementUnlockFlow(t *testing.T) {
	e, repo, sink := newTestEngine(t)
	ctx := context.Background()

	e.CompleteQuiz(ctx, 2, 2)

	// First quiz + first perfect should both unlock.
	unlockedIDs := make(map[string]bool)
	for _, a := range e.SessionUnlocks {
		unlockedIDs[a.ID] = true
	}
	if !unlockedIDs["first-quiz"] || !unlockedIDs["first-perfect"] {
		t.Errorf("session unlocks = %+v", e.SessionUnlocks)
	}
	if !e.State().Unlocked["first-quiz"] {
		t.Error("first-quiz not recorded in state")
	}
	if len(repo.achievementEvents) != len(e.SessionUnlocks) {
		t.Errorf("persisted %d unlock events, want %d", len(repo.achievementEvents), len(e.SessionUnlocks))
	}

	reqs := sink.Drain()
	if len(reqs) != len(unlockedIDs) {
		t.Fatalf("emitted %d notifications, want %d", len(reqs), len(unlockedIDs))
	}
	for _, r := range reqs {
		if r.Type != notify.TypeAchievement {
			t.Errorf("notification type = %q", r.Type)
		}
	}

	// A second identical quiz must not re-unlock anything already held.
	e.ResetSession()
	e.CompleteQuiz(ctx, 2, 2)
	for _, a := range e.SessionUnlocks {
		if a.ID == "first-quiz" || a.ID == "first-perfect" {
			t.Errorf("achievement %q unlocked twice", a.ID)
		}
	}
}

func TestResetSessionClearsBuffer(t *testing.T) {
	e, _, _ := newTestEngine(t)

	e.CompleteQuiz(context.Background(), 2, 2)
	if len(e.SessionUnlocks) == 0 {
		t.Fatal("expected unlocks before reset")
	}

	e.ResetSession()
	if e.SessionUnlocks != nil {
		t.Errorf("SessionUnlocks = %+v, want nil", e.SessionUnlocks)
	}
}
