// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizforge/ent/achievementevent"
)

// AchievementEventCreate is the builder for creating a AchievementEvent entity.
type AchievementEventCreate struct {
	config
	mutation *AchievementEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AchievementEventCreate) SetSequence(v int64) *AchievementEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AchievementEventCreate) SetTimestamp(v time.Time) *AchievementEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AchievementEventCreate) SetNillableTimestamp(v *time.Time) *AchievementEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *AchievementEventCreate) SetLearnerID(v string) *AchievementEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AchievementEventCreate) SetAchievementID(v string) *AchievementEventCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AchievementEventCreate) SetName(v string) *AchievementEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAchievementType sets the "achievement_type" field.
func (_c *AchievementEventCreate) SetAchievementType(v string) *AchievementEventCreate {
	_c.mutation.SetAchievementType(v)
	return _c
}

// Mutation returns the AchievementEventMutation object of the builder.
func (_c *AchievementEventCreate) Mutation() *AchievementEventMutation {
	return _c.mutation
}

// Save creates the AchievementEvent in the database.
func (_c *AchievementEventCreate) Save(ctx context.Context) (*AchievementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementEventCreate) SaveX(ctx context.Context) *AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := achievementevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AchievementEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AchievementEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "AchievementEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := achievementevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AchievementEvent.achievement_id"`)}
	}
	if v, ok := _c.mutation.AchievementID(); ok {
		if err := achievementevent.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AchievementEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := achievementevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementType(); !ok {
		return &ValidationError{Name: "achievement_type", err: errors.New(`ent: missing required field "AchievementEvent.achievement_type"`)}
	}
	if v, ok := _c.mutation.AchievementType(); ok {
		if err := achievementevent.AchievementTypeValidator(v); err != nil {
			return &ValidationError{Name: "achievement_type", err: fmt.Errorf(`ent: validator failed for field "AchievementEvent.achievement_type": %w`, err)}
		}
	}
	return nil
}

func (_c *AchievementEventCreate) sqlSave(ctx context.Context) (*AchievementEvent, error) {
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

func (_c *AchievementEventCreate) createSpec() (*AchievementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementevent.Table, sqlgraph.NewFieldSpec(achievementevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(achievementevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(achievementevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(achievementevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(achievementevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(achievementevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AchievementType(); ok {
		_spec.SetField(achievementevent.FieldAchievementType, field.TypeString, value)
		_node.AchievementType = value
	}
	return _node, _spec
}

// AchievementEventCreateBulk is the builder for creating many AchievementEvent entities in bulk.
type AchievementEventCreateBulk struct {
	config
	err      error
	builders []*AchievementEventCreate
}

// Save creates the AchievementEvent entities in the database.
func (_c *AchievementEventCreateBulk) Save(ctx context.Context) ([]*AchievementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementEventMutation)
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
func (_c *AchievementEventCreateBulk) SaveX(ctx context.Context) []*AchievementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
