// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizforge/ent/predicate"
	"github.com/abhisek/quizforge/ent/xpevent"
)

// XPEventUpdate is the builder for updating XPEvent entities.
type XPEventUpdate struct {
	config
	hooks    []Hook
	mutation *XPEventMutation
}

// Where appends a list predicates to the XPEventUpdate builder.
func (_u *XPEventUpdate) Where(ps ...predicate.XPEvent) *XPEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *XPEventUpdate) SetLearnerID(v string) *XPEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableLearnerID(v *string) *XPEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *XPEventUpdate) SetKind(v string) *XPEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableKind(v *string) *XPEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *XPEventUpdate) SetAmount(v int) *XPEventUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableAmount(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *XPEventUpdate) AddAmount(v int) *XPEventUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *XPEventUpdate) SetReason(v string) *XPEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableReason(v *string) *XPEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *XPEventUpdate) SetStreakAfter(v int) *XPEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableStreakAfter(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *XPEventUpdate) AddStreakAfter(v int) *XPEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *XPEventUpdate) SetLevelAfter(v int) *XPEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableLevelAfter(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *XPEventUpdate) AddLevelAfter(v int) *XPEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetTotalXpAfter sets the "total_xp_after" field.
func (_u *XPEventUpdate) SetTotalXpAfter(v int) *XPEventUpdate {
	_u.mutation.ResetTotalXpAfter()
	_u.mutation.SetTotalXpAfter(v)
	return _u
}

// SetNillableTotalXpAfter sets the "total_xp_after" field if the given value is not nil.
func (_u *XPEventUpdate) SetNillableTotalXpAfter(v *int) *XPEventUpdate {
	if v != nil {
		_u.SetTotalXpAfter(*v)
	}
	return _u
}

// AddTotalXpAfter adds value to the "total_xp_after" field.
func (_u *XPEventUpdate) AddTotalXpAfter(v int) *XPEventUpdate {
	_u.mutation.AddTotalXpAfter(v)
	return _u
}

// Mutation returns the XPEventMutation object of the builder.
func (_u *XPEventUpdate) Mutation() *XPEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *XPEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XPEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *XPEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XPEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XPEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := xpevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "XPEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := xpevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "XPEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *XPEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(xpevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(xpevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(xpevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(xpevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(xpevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpAfter(); ok {
		_spec.SetField(xpevent.FieldTotalXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpAfter(); ok {
		_spec.AddField(xpevent.FieldTotalXpAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// XPEventUpdateOne is the builder for updating a single XPEvent entity.
type XPEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *XPEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *XPEventUpdateOne) SetLearnerID(v string) *XPEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableLearnerID(v *string) *XPEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *XPEventUpdateOne) SetKind(v string) *XPEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableKind(v *string) *XPEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *XPEventUpdateOne) SetAmount(v int) *XPEventUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableAmount(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *XPEventUpdateOne) AddAmount(v int) *XPEventUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetReason sets the "reason" field.
func (_u *XPEventUpdateOne) SetReason(v string) *XPEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableReason(v *string) *XPEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *XPEventUpdateOne) SetStreakAfter(v int) *XPEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableStreakAfter(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *XPEventUpdateOne) AddStreakAfter(v int) *XPEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *XPEventUpdateOne) SetLevelAfter(v int) *XPEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableLevelAfter(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *XPEventUpdateOne) AddLevelAfter(v int) *XPEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// SetTotalXpAfter sets the "total_xp_after" field.
func (_u *XPEventUpdateOne) SetTotalXpAfter(v int) *XPEventUpdateOne {
	_u.mutation.ResetTotalXpAfter()
	_u.mutation.SetTotalXpAfter(v)
	return _u
}

// SetNillableTotalXpAfter sets the "total_xp_after" field if the given value is not nil.
func (_u *XPEventUpdateOne) SetNillableTotalXpAfter(v *int) *XPEventUpdateOne {
	if v != nil {
		_u.SetTotalXpAfter(*v)
	}
	return _u
}

// AddTotalXpAfter adds value to the "total_xp_after" field.
func (_u *XPEventUpdateOne) AddTotalXpAfter(v int) *XPEventUpdateOne {
	_u.mutation.AddTotalXpAfter(v)
	return _u
}

// Mutation returns the XPEventMutation object of the builder.
func (_u *XPEventUpdateOne) Mutation() *XPEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the XPEventUpdate builder.
func (_u *XPEventUpdateOne) Where(ps ...predicate.XPEvent) *XPEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *XPEventUpdateOne) Select(field string, fields ...string) *XPEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated XPEvent entity.
func (_u *XPEventUpdateOne) Save(ctx context.Context) (*XPEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *XPEventUpdateOne) SaveX(ctx context.Context) *XPEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *XPEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *XPEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *XPEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := xpevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "XPEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := xpevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "XPEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *XPEventUpdateOne) sqlSave(ctx context.Context) (_node *XPEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(xpevent.Table, xpevent.Columns, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "XPEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, xpevent.FieldID)
		for _, f := range fields {
			if !xpevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != xpevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(xpevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(xpevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(xpevent.FieldAmount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(xpevent.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(xpevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(xpevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(xpevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalXpAfter(); ok {
		_spec.SetField(xpevent.FieldTotalXpAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXpAfter(); ok {
		_spec.AddField(xpevent.FieldTotalXpAfter, field.TypeInt, value)
	}
	_node = &XPEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{xpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
