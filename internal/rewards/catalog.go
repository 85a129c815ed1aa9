package rewards

// Type identifies which learner counter an achievement thresholds on.
type Type string

const (
	TypeQuizCount    Type = "quiz_count"
	TypeLessonCount  Type = "lesson_count"
	TypePerfectScore Type = "perfect_score"
	TypeStreak       Type = "streak"
	TypeTotalXP      Type = "total_xp"
)

// Achievement is an immutable milestone definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement int
	Type        Type
}

// Catalog returns the full achievement table. Loaded once at process
// start; entries are never mutated.
func Catalog() []Achievement {
	return []Achievement{
		{ID: "first-quiz", Name: "First Steps", Description: "Complete your first quiz", Icon: "🎯", Requirement: 1, Type: TypeQuizCount},
		{ID: "quiz-10", Name: "Quiz Regular", Description: "Complete 10 quizzes", Icon: "📚", Requirement: 10, Type: TypeQuizCount},
		{ID: "quiz-50", Name: "Quiz Master", Description: "Complete 50 quizzes", Icon: "🏆", Requirement: 50, Type: TypeQuizCount},
		{ID: "first-lesson", Name: "Curious Mind", Description: "Finish your first lesson", Icon: "💡", Requirement: 1, Type: TypeLessonCount},
		{ID: "lesson-10", Name: "Bookworm", Description: "Finish 10 lessons", Icon: "📖", Requirement: 10, Type: TypeLessonCount},
		{ID: "first-perfect", Name: "Flawless", Description: "Score 100% on a quiz", Icon: "✨", Requirement: 1, Type: TypePerfectScore},
		{ID: "perfect-5", Name: "Perfectionist", Description: "Score 100% on 5 quizzes", Icon: "💎", Requirement: 5, Type: TypePerfectScore},
		{ID: "streak-3", Name: "On a Roll", Description: "Learn 3 days in a row", Icon: "🔥", Requirement: 3, Type: TypeStreak},
		{ID: "streak-7", Name: "Week Warrior", Description: "Learn 7 days in a row", Icon: "⚡", Requirement: 7, Type: TypeStreak},
		{ID: "streak-30", Name: "Unstoppable", Description: "Learn 30 days in a row", Icon: "🌟", Requirement: 30, Type: TypeStreak},
		{ID: "xp-1000", Name: "Rising Star", Description: "Earn 1,000 total XP", Icon: "⭐", Requirement: 1000, Type: TypeTotalXP},
		{ID: "xp-5000", Name: "Powerhouse", Description: "Earn 5,000 total XP", Icon: "🚀", Requirement: 5000, Type: TypeTotalXP},
		{ID: "xp-10000", Name: "Legend", Description: "Earn 10,000 total XP", Icon: "👑", Requirement: 10000, Type: TypeTotalXP},
	}
}

// Counter returns the learner counter an achievement of this type
// thresholds on.
func (t Type) Counter(s *State) int {
	switch t {
	case TypeQuizCount:
		return s.QuizzesCompleted
	case TypeLessonCount:
		return s.LessonsCompleted
	case TypePerfectScore:
		return s.PerfectScores
	case TypeStreak:
		return s.Streak
	case TypeTotalXP:
		return s.XP
	default:
		return 0
	}
}

// EvaluateAchievements returns catalog entries newly met by the state:
// not yet in Unlocked, with the relevant counter at or above the
// requirement. Idempotent and monotonic: the caller records the returned
// ids in Unlocked, so re-running with unchanged counters yields nothing.
func EvaluateAchievements(catalog []Achievement, s *State) []Achievement {
	var unlocked []Achievement
	for _, a := range catalog {
		if s.Unlocked[a.ID] {
			continue
		}
		if a.Type.Counter(s) >= a.Requirement {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
