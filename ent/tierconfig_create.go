// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/internal/model"
)

// TierConfigCreate is the builder for creating a TierConfig entity.
type TierConfigCreate struct {
	config
	mutation *TierConfigMutation
	hooks    []Hook
}

// SetLimits sets the "limits" field.
func (_c *TierConfigCreate) SetLimits(v model.TierLimits) *TierConfigCreate {
	_c.mutation.SetLimits(v)
	return _c
}

// SetFeatures sets the "features" field.
func (_c *TierConfigCreate) SetFeatures(v []string) *TierConfigCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetChapterPracticeWeekly sets the "chapter_practice_weekly" field.
func (_c *TierConfigCreate) SetChapterPracticeWeekly(v bool) *TierConfigCreate {
	_c.mutation.SetChapterPracticeWeekly(v)
	return _c
}

// SetNillableChapterPracticeWeekly sets the "chapter_practice_weekly" field if the given value is not nil.
func (_c *TierConfigCreate) SetNillableChapterPracticeWeekly(v *bool) *TierConfigCreate {
	if v != nil {
		_c.SetChapterPracticeWeekly(*v)
	}
	return _c
}

// SetExplorationEndQuiz sets the "exploration_end_quiz" field.
func (_c *TierConfigCreate) SetExplorationEndQuiz(v int) *TierConfigCreate {
	_c.mutation.SetExplorationEndQuiz(v)
	return _c
}

// SetNillableExplorationEndQuiz sets the "exploration_end_quiz" field if the given value is not nil.
func (_c *TierConfigCreate) SetNillableExplorationEndQuiz(v *int) *TierConfigCreate {
	if v != nil {
		_c.SetExplorationEndQuiz(*v)
	}
	return _c
}

// SetRecoveryTrigger sets the "recovery_trigger" field.
func (_c *TierConfigCreate) SetRecoveryTrigger(v int) *TierConfigCreate {
	_c.mutation.SetRecoveryTrigger(v)
	return _c
}

// SetNillableRecoveryTrigger sets the "recovery_trigger" field if the given value is not nil.
func (_c *TierConfigCreate) SetNillableRecoveryTrigger(v *int) *TierConfigCreate {
	if v != nil {
		_c.SetRecoveryTrigger(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TierConfigCreate) SetUpdatedAt(v time.Time) *TierConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TierConfigCreate) SetNillableUpdatedAt(v *time.Time) *TierConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TierConfigCreate) SetID(v string) *TierConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TierConfigMutation object of the builder.
func (_c *TierConfigCreate) Mutation() *TierConfigMutation {
	return _c.mutation
}

// Save creates the TierConfig in the database.
func (_c *TierConfigCreate) Save(ctx context.Context) (*TierConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TierConfigCreate) SaveX(ctx context.Context) *TierConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TierConfigCreate) defaults() {
	if _, ok := _c.mutation.ChapterPracticeWeekly(); !ok {
		v := tierconfig.DefaultChapterPracticeWeekly
		_c.mutation.SetChapterPracticeWeekly(v)
	}
	if _, ok := _c.mutation.ExplorationEndQuiz(); !ok {
		v := tierconfig.DefaultExplorationEndQuiz
		_c.mutation.SetExplorationEndQuiz(v)
	}
	if _, ok := _c.mutation.RecoveryTrigger(); !ok {
		v := tierconfig.DefaultRecoveryTrigger
		_c.mutation.SetRecoveryTrigger(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tierconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TierConfigCreate) check() error {
	if _, ok := _c.mutation.Limits(); !ok {
		return &ValidationError{Name: "limits", err: errors.New(`ent: missing required field "TierConfig.limits"`)}
	}
	if _, ok := _c.mutation.ChapterPracticeWeekly(); !ok {
		return &ValidationError{Name: "chapter_practice_weekly", err: errors.New(`ent: missing required field "TierConfig.chapter_practice_weekly"`)}
	}
	if _, ok := _c.mutation.ExplorationEndQuiz(); !ok {
		return &ValidationError{Name: "exploration_end_quiz", err: errors.New(`ent: missing required field "TierConfig.exploration_end_quiz"`)}
	}
	if _, ok := _c.mutation.RecoveryTrigger(); !ok {
		return &ValidationError{Name: "recovery_trigger", err: errors.New(`ent: missing required field "TierConfig.recovery_trigger"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TierConfig.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := tierconfig.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "TierConfig.id": %w`, err)}
		}
	}
	return nil
}

func (_c *TierConfigCreate) sqlSave(ctx context.Context) (*TierConfig, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TierConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TierConfigCreate) createSpec() (*TierConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &TierConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tierconfig.Table, sqlgraph.NewFieldSpec(tierconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Limits(); ok {
		_spec.SetField(tierconfig.FieldLimits, field.TypeJSON, value)
		_node.Limits = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(tierconfig.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := _c.mutation.ChapterPracticeWeekly(); ok {
		_spec.SetField(tierconfig.FieldChapterPracticeWeekly, field.TypeBool, value)
		_node.ChapterPracticeWeekly = value
	}
	if value, ok := _c.mutation.ExplorationEndQuiz(); ok {
		_spec.SetField(tierconfig.FieldExplorationEndQuiz, field.TypeInt, value)
		_node.ExplorationEndQuiz = value
	}
	if value, ok := _c.mutation.RecoveryTrigger(); ok {
		_spec.SetField(tierconfig.FieldRecoveryTrigger, field.TypeInt, value)
		_node.RecoveryTrigger = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tierconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TierConfigCreateBulk is the builder for creating many TierConfig entities in bulk.
type TierConfigCreateBulk struct {
	config
	err      error
	builders []*TierConfigCreate
}

// Save creates the TierConfig entities in the database.
func (_c *TierConfigCreateBulk) Save(ctx context.Context) ([]*TierConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TierConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TierConfigMutation)
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
func (_c *TierConfigCreateBulk) SaveX(ctx context.Context) []*TierConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
