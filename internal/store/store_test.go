package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AttemptEventData{
		{LearnerID: "kim", QuizID: "go-basics", AttemptID: "a1", Action: AttemptActionStart, SelectedIndex: -1, TotalQuestions: 3},
		{LearnerID: "kim", QuizID: "go-basics", AttemptID: "a1", Action: AttemptActionAnswer, QuestionID: "q1", SelectedIndex: 2, Correct: true, Score: 1, TotalQuestions: 3},
		{LearnerID: "kim", QuizID: "go-basics", AttemptID: "a1", Action: AttemptActionComplete, SelectedIndex: -1, Score: 1, TimeSpentSecs: 40, TotalQuestions: 3},
	}
	for i, e := range events {
		if err := repo.AppendAttemptEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Another learner's events must not leak into the replay.
	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		LearnerID: "lee", QuizID: "go-basics", AttemptID: "b1",
		Action: AttemptActionStart, SelectedIndex: -1, TotalQuestions: 3,
	})
	if err != nil {
		t.Fatalf("append other learner: %v", err)
	}

	got, err := repo.QueryAttemptEvents(ctx, "kim", "go-basics")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Sequence <= got[i-1].Sequence {
			t.Errorf("events not in ascending sequence order at %d", i)
		}
	}
	if got[1].Action != AttemptActionAnswer || got[1].QuestionID != "q1" || !got[1].Correct {
		t.Errorf("answer event mangled: %+v", got[1])
	}

	summaries, err := repo.QueryAttemptSummaries(ctx, "kim", QueryOpts{})
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	if summaries[0].Score != 1 || summaries[0].TotalQuestions != 3 {
		t.Errorf("summary = %+v", summaries[0])
	}
}

func TestXPAndAchievementEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendXPEvent(ctx, XPEventData{
		LearnerID: "kim", Kind: "quiz", Amount: 170, Reason: "Quiz completed",
		StreakAfter: 1, LevelAfter: 1, TotalXPAfter: 170,
	})
	if err != nil {
		t.Fatalf("append xp: %v", err)
	}

	err = repo.AppendAchievementEvent(ctx, AchievementEventData{
		LearnerID: "kim", AchievementID: "first-quiz", Name: "First Steps", Type: "quiz_count",
	})
	if err != nil {
		t.Fatalf("append achievement: %v", err)
	}

	xp, err := repo.QueryXPEvents(ctx, "kim", QueryOpts{})
	if err != nil {
		t.Fatalf("query xp: %v", err)
	}
	if len(xp) != 1 || xp[0].Amount != 170 || xp[0].TotalXPAfter != 170 {
		t.Errorf("xp events = %+v", xp)
	}

	unlocks, err := repo.QueryAchievementEvents(ctx, "kim")
	if err != nil {
		t.Fatalf("query achievements: %v", err)
	}
	if len(unlocks) != 1 || unlocks[0].AchievementID != "first-quiz" {
		t.Errorf("achievement events = %+v", unlocks)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "kim")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		LearnerID: "kim",
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Rewards: &RewardsSnapshotData{XP: 170, Streak: 2, QuizzesCompleted: 1},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "kim")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Data.Rewards == nil || snap.Data.Rewards.XP != 170 {
		t.Errorf("rewards data = %+v", snap.Data.Rewards)
	}

	// Another learner still has no snapshot.
	other, err := repo.Latest(ctx, "lee")
	if err != nil {
		t.Fatalf("latest other: %v", err)
	}
	if other != nil {
		t.Fatal("expected nil snapshot for other learner")
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			LearnerID: "kim",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "kim")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}
