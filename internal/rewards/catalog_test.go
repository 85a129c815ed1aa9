package rewards

import "testing"

func TestCatalogShape(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 13 {
		t.Fatalf("catalog has %d entries, want 13", len(catalog))
	}

	wantThresholds := map[Type][]int{
		TypeQuizCount:    {1, 10, 50},
		TypeLessonCount:  {1, 10},
		TypePerfectScore: {1, 5},
		TypeStreak:       {3, 7, 30},
		TypeTotalXP:      {1000, 5000, 10000},
	}

	got := make(map[Type][]int)
	seen := make(map[string]bool)
	for _, a := range catalog {
		if a.ID == "" || a.Name == "" || a.Requirement <= 0 {
			t.Errorf("malformed entry: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate id %q", a.ID)
		}
		seen[a.ID] = true
		got[a.Type] = append(got[a.Type], a.Requirement)
	}

	for typ, want := range wantThresholds {
		thresholds := got[typ]
		if len(thresholds) != len(want) {
			t.Errorf("%s has thresholds %v, want %v", typ, thresholds, want)
			continue
		}
		for i, w := range want {
			if thresholds[i] != w {
				t.Errorf("%s thresholds = %v, want %v", typ, thresholds, want)
				break
			}
		}
	}
}

func TestEvaluateAchievementsThresholds(t *testing.T) {
	catalog := Catalog()

	s := NewState()
	s.QuizzesCompleted = 10
	s.Streak = 3
	s.XP = 1000

	unlocked := EvaluateAchievements(catalog, s)

	wantIDs := map[string]bool{
		"first-quiz": true, "quiz-10": true,
		"streak-3": true,
		"xp-1000":  true,
	}
	if len(unlocked) != len(wantIDs) {
		t.Fatalf("unlocked %d achievements, want %d: %+v", len(unlocked), len(wantIDs), unlocked)
	}
	for _, a := range unlocked {
		if !wantIDs[a.ID] {
			t.Errorf("unexpected unlock %q", a.ID)
		}
	}
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	catalog := Catalog()

	s := NewState()
	s.QuizzesCompleted = 1

	first := EvaluateAchievements(catalog, s)
	if len(first) != 1 || first[0].ID != "first-quiz" {
		t.Fatalf("first evaluation = %+v", first)
	}
	for _, a := range first {
		s.Unlocked[a.ID] = true
	}

	// Unchanged counters unlock nothing new.
	second := EvaluateAchievements(catalog, s)
	if len(second) != 0 {
		t.Errorf("re-evaluation unlocked %+v, want nothing", second)
	}
}

func TestTypeCounter(t *testing.T) {
	s := NewState()
	s.QuizzesCompleted = 1
	s.LessonsCompleted = 2
	s.PerfectScores = 3
	s.Streak = 4
	s.XP = 5

	tests := []struct {
		typ  Type
		want int
	}{
		{TypeQuizCount, 1},
		{TypeLessonCount, 2},
		{TypePerfectScore, 3},
		{TypeStreak, 4},
		{TypeTotalXP, 5},
	}
	for _, tt := range tests {
		if got := tt.typ.Counter(s); got != tt.want {
			t.Errorf("Counter(%s) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}
