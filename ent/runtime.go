// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizforge/ent/achievementevent"
	"github.com/abhisek/quizforge/ent/attemptevent"
	"github.com/abhisek/quizforge/ent/lessonevent"
	"github.com/abhisek/quizforge/ent/schema"
	"github.com/abhisek/quizforge/ent/snapshot"
	"github.com/abhisek/quizforge/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescLearnerID is the schema descriptor for learner_id field.
	achievementeventDescLearnerID := achievementeventFields[0].Descriptor()
	// achievementevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	achievementevent.LearnerIDValidator = achievementeventDescLearnerID.Validators[0].(func(string) error)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[1].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[2].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescAchievementType is the schema descriptor for achievement_type field.
	achievementeventDescAchievementType := achievementeventFields[3].Descriptor()
	// achievementevent.AchievementTypeValidator is a validator for the "achievement_type" field. It is called by the builders before save.
	achievementevent.AchievementTypeValidator = achievementeventDescAchievementType.Validators[0].(func(string) error)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearnerID is the schema descriptor for learner_id field.
	attempteventDescLearnerID := attempteventFields[0].Descriptor()
	// attemptevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	attemptevent.LearnerIDValidator = attempteventDescLearnerID.Validators[0].(func(string) error)
	// attempteventDescQuizID is the schema descriptor for quiz_id field.
	attempteventDescQuizID := attempteventFields[1].Descriptor()
	// attemptevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	attemptevent.QuizIDValidator = attempteventDescQuizID.Validators[0].(func(string) error)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[2].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescAction is the schema descriptor for action field.
	attempteventDescAction := attempteventFields[3].Descriptor()
	// attemptevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	attemptevent.ActionValidator = attempteventDescAction.Validators[0].(func(string) error)
	// attempteventDescSelectedIndex is the schema descriptor for selected_index field.
	attempteventDescSelectedIndex := attempteventFields[5].Descriptor()
	// attemptevent.DefaultSelectedIndex holds the default value on creation for the selected_index field.
	attemptevent.DefaultSelectedIndex = attempteventDescSelectedIndex.Default.(int)
	// attempteventDescCorrect is the schema descriptor for correct field.
	attempteventDescCorrect := attempteventFields[6].Descriptor()
	// attemptevent.DefaultCorrect holds the default value on creation for the correct field.
	attemptevent.DefaultCorrect = attempteventDescCorrect.Default.(bool)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[7].Descriptor()
	// attemptevent.DefaultScore holds the default value on creation for the score field.
	attemptevent.DefaultScore = attempteventDescScore.Default.(int)
	// attempteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	attempteventDescTimeSpentSecs := attempteventFields[8].Descriptor()
	// attemptevent.DefaultTimeSpentSecs holds the default value on creation for the time_spent_secs field.
	attemptevent.DefaultTimeSpentSecs = attempteventDescTimeSpentSecs.Default.(int)
	// attempteventDescTotalQuestions is the schema descriptor for total_questions field.
	attempteventDescTotalQuestions := attempteventFields[9].Descriptor()
	// attemptevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	attemptevent.DefaultTotalQuestions = attempteventDescTotalQuestions.Default.(int)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLearnerID is the schema descriptor for learner_id field.
	lessoneventDescLearnerID := lessoneventFields[0].Descriptor()
	// lessonevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	lessonevent.LearnerIDValidator = lessoneventDescLearnerID.Validators[0].(func(string) error)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[1].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescLearnerID is the schema descriptor for learner_id field.
	snapshotDescLearnerID := snapshotFields[0].Descriptor()
	// snapshot.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	snapshot.LearnerIDValidator = snapshotDescLearnerID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescLearnerID is the schema descriptor for learner_id field.
	xpeventDescLearnerID := xpeventFields[0].Descriptor()
	// xpevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	xpevent.LearnerIDValidator = xpeventDescLearnerID.Validators[0].(func(string) error)
	// xpeventDescKind is the schema descriptor for kind field.
	xpeventDescKind := xpeventFields[1].Descriptor()
	// xpevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	xpevent.KindValidator = xpeventDescKind.Validators[0].(func(string) error)
}
