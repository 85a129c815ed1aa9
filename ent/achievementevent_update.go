// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizforge/ent/achievementevent"
	"github.com/abhisek/quizforge/ent/predicate"
)

// AchievementEventUpdate is the builder for updating AchievementEvent entities.
type AchievementEventUpdate struct {
	config
	hooks    []Hook
	mutation *AchievementEventMutation
}

// Where appends a list predicates to the AchievementEventUpdate builder.
func (_u *AchievementEventUpdate) Where(ps ...predicate.AchievementEvent) *AchievementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *AchievementEventUpdate) SetLearnerID(v string) *AchievementEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AchievementEventUpdate) SetNillableLearnerID(v *string) *AchievementEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AchievementEventUpdate) SetAchievementID(v string) *AchievementEventUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AchievementEventUpdate) SetNillableAchievementID(v *string) *AchievementEventUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementEventUpdate) SetName(v string) *AchievementEventUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementEventUpdate) SetNillableName(v *string) *AchievementEventUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAchievementType sets the "achievement_type" field.
func (_u *AchievementEventUpdate) SetAchievementType(v string) *AchievementEventUpdate {
	_u.mutation.SetAchievementType(v)
	return _u
}

// SetNillableAchievementType sets the "achievement_type" field if the given value is not nil.
func (_u *AchievementEventUpdate) SetNillableAchievementType(v *string) *AchievementEventUpdate {
	if v != nil {
		_u.SetAchievementType(*v)
	}
	return _u
}

// Mutation returns the AchievementEventMutation object of the builder.
func (_u *AchievementEventUpdate) Mutation() *AchievementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AchievementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AchievementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementEventUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := achievementevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementType(); ok {
		if err := achievementevent.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementevent.Table, achievementevent.Columns, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(achievementevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementType(); ok {
		_spec.SetField(achievementevent.FieldAchievementType, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AchievementEventUpdateOne is the builder for updating a single AchievementEvent entity.
type AchievementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AchievementEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *AchievementEventUpdateOne) SetLearnerID(v string) *AchievementEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *AchievementEventUpdateOne) SetNillableLearnerID(v *string) *AchievementEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AchievementEventUpdateOne) SetAchievementID(v string) *AchievementEventUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AchievementEventUpdateOne) SetNillableAchievementID(v *string) *AchievementEventUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AchievementEventUpdateOne) SetName(v string) *AchievementEventUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AchievementEventUpdateOne) SetNillableName(v *string) *AchievementEventUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAchievementType sets the "achievement_type" field.
func (_u *AchievementEventUpdateOne) SetAchievementType(v string) *AchievementEventUpdateOne {
	_u.mutation.SetAchievementType(v)
	return _u
}

// SetNillableAchievementType sets the "achievement_type" field if the given value is not nil.
func (_u *AchievementEventUpdateOne) SetNillableAchievementType(v *string) *AchievementEventUpdateOne {
	if v != nil {
		_u.SetAchievementType(*v)
	}
	return _u
}

// Mutation returns the AchievementEventMutation object of the builder.
func (_u *AchievementEventUpdateOne) Mutation() *AchievementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AchievementEventUpdate builder.
func (_u *AchievementEventUpdateOne) Where(ps ...predicate.AchievementEvent) *AchievementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AchievementEventUpdateOne) Select(field string, fields ...string) *AchievementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AchievementEvent entity.
func (_u *AchievementEventUpdateOne) Save(ctx context.Context) (*AchievementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AchievementEventUpdateOne) SaveX(ctx context.Context) *AchievementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AchievementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AchievementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AchievementEventUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := achievementevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AchievementType(); ok {
		if err := achievementevent.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AchievementEventUpdateOne) sqlSave(ctx context.Context) (_node *AchievementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(achievementevent.Table, achievementevent.Columns, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AchievementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, achievementevent.FieldID)
		for _, f := range fields {
			if !achievementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != achievementevent.FieldID {
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
		_spec.SetField(achievementevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementType(); ok {
		_spec.SetField(achievementevent.FieldAchievementType, field.TypeString, value)
	}
	_node = &AchievementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{achievementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
