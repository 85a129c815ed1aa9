package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records the moment an achievement was unlocked.
// Unlocks are monotonic: at most one event per (learner, achievement).
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner profile that unlocked the achievement"),
		field.String("achievement_id").
			NotEmpty().
			Comment("Catalog id of the unlocked achievement"),
		field.String("name").
			NotEmpty().
			Comment("Display name at unlock time"),
		field.String("achievement_type").
			NotEmpty().
			Comment("quiz_count, lesson_count, perfect_score, streak, or total_xp"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "achievement_id"),
	}
}
