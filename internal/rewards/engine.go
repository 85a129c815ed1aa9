package rewards

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/store"
)

// XP amounts.
const (
	// QuizBaseXP is granted for finishing a quiz, before per-answer XP.
	QuizBaseXP = 50
	// QuizCorrectXP is granted per correct answer.
	QuizCorrectXP = 10
	// PerfectBonusXP is granted when every answer was correct.
	PerfectBonusXP = 100
	// LessonXP is the flat grant for finishing a lesson.
	LessonXP = 30
	// StreakBonusXP is added to direct grants once the streak reaches
	// StreakBonusMinDays.
	StreakBonusXP = 25
	// StreakBonusMinDays is the streak length that activates the bonus.
	StreakBonusMinDays = 3
)

// Engine is the single source of truth for one learner's XP, level,
// streak, and achievement unlocking. It is not safe for concurrent use;
// state is scoped per learner and driven by that learner's session.
type Engine struct {
	learnerID string
	state     *State
	catalog   []Achievement
	eventRepo store.EventRepo // nil disables persistence
	sink      notify.Sink     // nil disables unlock notifications
	now       func() time.Time

	// SessionUnlocks accumulates achievements unlocked since the last
	// ResetSession call, for celebratory UI.
	SessionUnlocks []Achievement
}

// NewEngine creates an Engine for one learner. eventRepo and sink may be nil.
func NewEngine(learnerID string, state *State, eventRepo store.EventRepo, sink notify.Sink) *Engine {
	if state == nil {
		state = NewState()
	}
	return &Engine{
		learnerID: learnerID,
		state:     state,
		catalog:   Catalog(),
		eventRepo: eventRepo,
		sink:      sink,
		now:       time.Now,
	}
}

// State exposes the engine's learner state for reads and snapshotting.
func (e *Engine) State() *State {
	return e.state
}

// LearnerID returns the learner this engine belongs to.
func (e *Engine) LearnerID() string {
	return e.learnerID
}

// AddXP grants XP directly, applying the day-streak bonus when active.
// Returns the total granted amount, bonus included.
func (e *Engine) AddXP(ctx context.Context, amount int, reason string) int {
	e.state.ApplyActivity(e.now())

	granted := amount
	if e.state.Streak >= StreakBonusMinDays {
		granted += StreakBonusXP
	}
	e.state.XP += granted

	e.persistXP(ctx, "grant", granted, reason)
	e.evaluate(ctx)
	return granted
}

// CompleteQuiz converts a finished attempt into XP and counters.
// Returns the granted XP for display.
//
// The day-streak bonus is deliberately not applied here: the streak is
// still advanced, but only a direct AddXP grant carries the bonus.
func (e *Engine) CompleteQuiz(ctx context.Context, score, total int) int {
	perfect := total > 0 && score == total

	earned := QuizBaseXP + score*QuizCorrectXP
	if perfect {
		earned += PerfectBonusXP
	}

	e.state.ApplyActivity(e.now())
	e.state.XP += earned
	e.state.QuizzesCompleted++
	if perfect {
		e.state.PerfectScores++
	}

	e.persistXP(ctx, "quiz", earned, fmt.Sprintf("Quiz completed (%d/%d)", score, total))
	e.evaluate(ctx)
	return earned
}

// CompleteLesson grants the flat lesson XP. Returns the granted amount.
// Like CompleteQuiz, it advances the streak without applying the bonus.
func (e *Engine) CompleteLesson(ctx context.Context, lessonID string) int {
	e.state.ApplyActivity(e.now())
	e.state.XP += LessonXP
	e.state.LessonsCompleted++

	if e.eventRepo != nil {
		_ = e.eventRepo.AppendLessonEvent(ctx, store.LessonEventData{
			LearnerID: e.learnerID,
			LessonID:  lessonID,
		})
	}
	e.persistXP(ctx, "lesson", LessonXP, "Lesson completed")
	e.evaluate(ctx)
	return LessonXP
}

// ResetSession clears the unlock accumulator. Called at session start.
func (e *Engine) ResetSession() {
	e.SessionUnlocks = nil
}

// evaluate unlocks every achievement whose counter now meets its
// requirement and emits a notification request per unlock.
func (e *Engine) evaluate(ctx context.Context) {
	for _, a := range EvaluateAchievements(e.catalog, e.state) {
		e.state.Unlocked[a.ID] = true
		e.SessionUnlocks = append(e.SessionUnlocks, a)

		if e.eventRepo != nil {
			_ = e.eventRepo.AppendAchievementEvent(ctx, store.AchievementEventData{
				LearnerID:     e.learnerID,
				AchievementID: a.ID,
				Name:          a.Name,
				Type:          string(a.Type),
			})
		}
		if e.sink != nil {
			_ = e.sink.Notify(ctx, notify.Request{
				Type:        notify.TypeAchievement,
				Title:       fmt.Sprintf("%s %s", a.Icon, a.Name),
				Description: a.Description,
			})
		}
	}
}

func (e *Engine) persistXP(ctx context.Context, kind string, amount int, reason string) {
	if e.eventRepo == nil {
		return
	}
	_ = e.eventRepo.AppendXPEvent(ctx, store.XPEventData{
		LearnerID:    e.learnerID,
		Kind:         kind,
		Amount:       amount,
		Reason:       reason,
		StreakAfter:  e.state.Streak,
		LevelAfter:   e.state.Level(),
		TotalXPAfter: e.state.XP,
	})
}
