// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "achievement_type", Type: field.TypeString},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_learner_id_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3], AchievementEventsColumns[4]},
			},
		},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Nullable: true},
		{Name: "selected_index", Type: field.TypeInt, Default: -1},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "time_spent_secs", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner_id_quiz_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3], AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_action",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_learner_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "amount", Type: field.TypeInt},
		{Name: "reason", Type: field.TypeString},
		{Name: "streak_after", Type: field.TypeInt},
		{Name: "level_after", Type: field.TypeInt},
		{Name: "total_xp_after", Type: field.TypeInt},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[3]},
			},
			{
				Name:    "xpevent_kind",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		AttemptEventsTable,
		LessonEventsTable,
		SnapshotsTable,
		XpEventsTable,
	}
)

func init() {
}
