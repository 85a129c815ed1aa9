package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one mutation of a quiz attempt: start, answer,
// time, complete, or reset. Replaying the events for a (learner, quiz)
// pair in sequence order reconstructs the current attempt progress.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Comment("Learner profile this attempt belongs to"),
		field.String("quiz_id").
			NotEmpty().
			Comment("Quiz deck being attempted"),
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the attempt"),
		field.String("action").
			NotEmpty().
			Comment("start, answer, time, complete, or reset"),
		field.String("question_id").
			Optional().
			Comment("Question answered (answer events only)"),
		field.Int("selected_index").
			Default(-1).
			Comment("Option picked by the learner (answer events only)"),
		field.Bool("correct").
			Default(false).
			Comment("Whether the selected option was correct"),
		field.Int("score").
			Default(0).
			Comment("Running score at the time of the event"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Seconds spent in the attempt so far"),
		field.Int("total_questions").
			Default(0).
			Comment("Question count fixed at attempt start"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "quiz_id"),
		index.Fields("attempt_id"),
		index.Fields("action"),
	}
}
