// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizforge/ent/xpevent"
)

// XPEventCreate is the builder for creating a XPEvent entity.
type XPEventCreate struct {
	config
	mutation *XPEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *XPEventCreate) SetSequence(v int64) *XPEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *XPEventCreate) SetTimestamp(v time.Time) *XPEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *XPEventCreate) SetNillableTimestamp(v *time.Time) *XPEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *XPEventCreate) SetLearnerID(v string) *XPEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *XPEventCreate) SetKind(v string) *XPEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *XPEventCreate) SetAmount(v int) *XPEventCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *XPEventCreate) SetReason(v string) *XPEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetStreakAfter sets the "streak_after" field.
func (_c *XPEventCreate) SetStreakAfter(v int) *XPEventCreate {
	_c.mutation.SetStreakAfter(v)
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *XPEventCreate) SetLevelAfter(v int) *XPEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// SetTotalXpAfter sets the "total_xp_after" field.
func (_c *XPEventCreate) SetTotalXpAfter(v int) *XPEventCreate {
	_c.mutation.SetTotalXpAfter(v)
	return _c
}

// Mutation returns the XPEventMutation object of the builder.
func (_c *XPEventCreate) Mutation() *XPEventMutation {
	return _c.mutation
}

// Save creates the XPEvent in the database.
func (_c *XPEventCreate) Save(ctx context.Context) (*XPEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *XPEventCreate) SaveX(ctx context.Context) *XPEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XPEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XPEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *XPEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := xpevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *XPEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "XPEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "XPEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "XPEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := xpevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "XPEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "XPEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := xpevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "XPEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "XPEvent.amount"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "XPEvent.reason"`)}
	}
	if _, ok := _c.mutation.StreakAfter(); !ok {
		return &ValidationError{Name: "streak_after", err: errors.New(`ent: missing required field "XPEvent.streak_after"`)}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "XPEvent.level_after"`)}
	}
	if _, ok := _c.mutation.TotalXpAfter(); !ok {
		return &ValidationError{Name: "total_xp_after", err: errors.New(`ent: missing required field "XPEvent.total_xp_after"`)}
	}
	return nil
}

func (_c *XPEventCreate) sqlSave(ctx context.Context) (*XPEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *XPEventCreate) createSpec() (*XPEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &XPEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(xpevent.Table, sqlgraph.NewFieldSpec(xpevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(xpevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(xpevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(xpevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(xpevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(xpevent.FieldAmount, field.TypeInt, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(xpevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.StreakAfter(); ok {
		_spec.SetField(xpevent.FieldStreakAfter, field.TypeInt, value)
		_node.StreakAfter = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(xpevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	if value, ok := _c.mutation.TotalXpAfter(); ok {
		_spec.SetField(xpevent.FieldTotalXpAfter, field.TypeInt, value)
		_node.TotalXpAfter = value
	}
	return _node, _spec
}

// XPEventCreateBulk is the builder for creating many XPEvent entities in bulk.
type XPEventCreateBulk struct {
	config
	err      error
	builders []*XPEventCreate
}

// Save creates the XPEvent entities in the database.
func (_c *XPEventCreateBulk) Save(ctx context.Context) ([]*XPEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*XPEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*XPEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *XPEventCreateBulk) SaveX(ctx context.Context) []*XPEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *XPEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *XPEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
