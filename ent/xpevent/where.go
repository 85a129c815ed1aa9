// Code generated by ent, DO NOT EDIT.

package xpevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/quizforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldKind, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldReason, v))
}

// StreakAfter applies equality check predicate on the "streak_after" field. It's identical to StreakAfterEQ.
func StreakAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// TotalXpAfter applies equality check predicate on the "total_xp_after" field. It's identical to TotalXpAfterEQ.
func TotalXpAfter(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalXpAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldKind, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldAmount, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldContainsFold(FieldReason, v))
}

// StreakAfterEQ applies the EQ predicate on the "streak_after" field.
func StreakAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldStreakAfter, v))
}

// StreakAfterNEQ applies the NEQ predicate on the "streak_after" field.
func StreakAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldStreakAfter, v))
}

// StreakAfterIn applies the In predicate on the "streak_after" field.
func StreakAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldStreakAfter, vs...))
}

// StreakAfterNotIn applies the NotIn predicate on the "streak_after" field.
func StreakAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldStreakAfter, vs...))
}

// StreakAfterGT applies the GT predicate on the "streak_after" field.
func StreakAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldStreakAfter, v))
}

// StreakAfterGTE applies the GTE predicate on the "streak_after" field.
func StreakAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldStreakAfter, v))
}

// StreakAfterLT applies the LT predicate on the "streak_after" field.
func StreakAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldStreakAfter, v))
}

// StreakAfterLTE applies the LTE predicate on the "streak_after" field.
func StreakAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldStreakAfter, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// TotalXpAfterEQ applies the EQ predicate on the "total_xp_after" field.
func TotalXpAfterEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldEQ(FieldTotalXpAfter, v))
}

// TotalXpAfterNEQ applies the NEQ predicate on the "total_xp_after" field.
func TotalXpAfterNEQ(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNEQ(FieldTotalXpAfter, v))
}

// TotalXpAfterIn applies the In predicate on the "total_xp_after" field.
func TotalXpAfterIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldIn(FieldTotalXpAfter, vs...))
}

// TotalXpAfterNotIn applies the NotIn predicate on the "total_xp_after" field.
func TotalXpAfterNotIn(vs ...int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldNotIn(FieldTotalXpAfter, vs...))
}

// TotalXpAfterGT applies the GT predicate on the "total_xp_after" field.
func TotalXpAfterGT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGT(FieldTotalXpAfter, v))
}

// TotalXpAfterGTE applies the GTE predicate on the "total_xp_after" field.
func TotalXpAfterGTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldGTE(FieldTotalXpAfter, v))
}

// TotalXpAfterLT applies the LT predicate on the "total_xp_after" field.
func TotalXpAfterLT(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLT(FieldTotalXpAfter, v))
}

// TotalXpAfterLTE applies the LTE predicate on the "total_xp_after" field.
func TotalXpAfterLTE(v int) predicate.XPEvent {
	return predicate.XPEvent(sql.FieldLTE(FieldTotalXpAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.XPEvent) predicate.XPEvent {
	return predicate.XPEvent(sql.NotPredicates(p))
}
