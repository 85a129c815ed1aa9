// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
