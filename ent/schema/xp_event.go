package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// XPEvent records a single XP grant: quiz completion, lesson completion,
// or a direct grant. The running totals let the stats view show progression
// without replaying the whole log.
type XPEvent struct {
	ent.Schema
}

func (XPEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (XPEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner profile the XP was granted to"),
		field.String("kind").
			NotEmpty().
			Comment("quiz, lesson, or grant"),
		field.Int("amount").
			Comment("XP granted by this event, streak bonus included"),
		field.String("reason").
			Comment("Human-readable grant reason"),
		field.Int("streak_after").
			Comment("Day streak after the event"),
		field.Int("level_after").
			Comment("Level after the event"),
		field.Int("total_xp_after").
			Comment("Cumulative XP after the event"),
	}
}

func (XPEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("kind"),
	}
}
