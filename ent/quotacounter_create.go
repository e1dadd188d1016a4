// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/quotacounter"
)

// QuotaCounterCreate is the builder for creating a QuotaCounter entity.
type QuotaCounterCreate struct {
	config
	mutation *QuotaCounterMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuotaCounterCreate) SetUserID(v string) *QuotaCounterCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFeature sets the "feature" field.
func (_c *QuotaCounterCreate) SetFeature(v string) *QuotaCounterCreate {
	_c.mutation.SetFeature(v)
	return _c
}

// SetPeriodKey sets the "period_key" field.
func (_c *QuotaCounterCreate) SetPeriodKey(v string) *QuotaCounterCreate {
	_c.mutation.SetPeriodKey(v)
	return _c
}

// SetUsed sets the "used" field.
func (_c *QuotaCounterCreate) SetUsed(v int) *QuotaCounterCreate {
	_c.mutation.SetUsed(v)
	return _c
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_c *QuotaCounterCreate) SetNillableUsed(v *int) *QuotaCounterCreate {
	if v != nil {
		_c.SetUsed(*v)
	}
	return _c
}

// SetLimit sets the "limit" field.
func (_c *QuotaCounterCreate) SetLimit(v int) *QuotaCounterCreate {
	_c.mutation.SetLimit(v)
	return _c
}

// SetResetsAt sets the "resets_at" field.
func (_c *QuotaCounterCreate) SetResetsAt(v time.Time) *QuotaCounterCreate {
	_c.mutation.SetResetsAt(v)
	return _c
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_c *QuotaCounterCreate) Mutation() *QuotaCounterMutation {
	return _c.mutation
}

// Save creates the QuotaCounter in the database.
func (_c *QuotaCounterCreate) Save(ctx context.Context) (*QuotaCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuotaCounterCreate) SaveX(ctx context.Context) *QuotaCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuotaCounterCreate) defaults() {
	if _, ok := _c.mutation.Used(); !ok {
		v := quotacounter.DefaultUsed
		_c.mutation.SetUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuotaCounterCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuotaCounter.user_id"`)}
	}
	if _, ok := _c.mutation.Feature(); !ok {
		return &ValidationError{Name: "feature", err: errors.New(`ent: missing required field "QuotaCounter.feature"`)}
	}
	if _, ok := _c.mutation.PeriodKey(); !ok {
		return &ValidationError{Name: "period_key", err: errors.New(`ent: missing required field "QuotaCounter.period_key"`)}
	}
	if _, ok := _c.mutation.Used(); !ok {
		return &ValidationError{Name: "used", err: errors.New(`ent: missing required field "QuotaCounter.used"`)}
	}
	if _, ok := _c.mutation.Limit(); !ok {
		return &ValidationError{Name: "limit", err: errors.New(`ent: missing required field "QuotaCounter.limit"`)}
	}
	if _, ok := _c.mutation.ResetsAt(); !ok {
		return &ValidationError{Name: "resets_at", err: errors.New(`ent: missing required field "QuotaCounter.resets_at"`)}
	}
	return nil
}

func (_c *QuotaCounterCreate) sqlSave(ctx context.Context) (*QuotaCounter, error) {
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

func (_c *QuotaCounterCreate) createSpec() (*QuotaCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &QuotaCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotacounter.Table, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quotacounter.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Feature(); ok {
		_spec.SetField(quotacounter.FieldFeature, field.TypeString, value)
		_node.Feature = value
	}
	if value, ok := _c.mutation.PeriodKey(); ok {
		_spec.SetField(quotacounter.FieldPeriodKey, field.TypeString, value)
		_node.PeriodKey = value
	}
	if value, ok := _c.mutation.Used(); ok {
		_spec.SetField(quotacounter.FieldUsed, field.TypeInt, value)
		_node.Used = value
	}
	if value, ok := _c.mutation.Limit(); ok {
		_spec.SetField(quotacounter.FieldLimit, field.TypeInt, value)
		_node.Limit = value
	}
	if value, ok := _c.mutation.ResetsAt(); ok {
		_spec.SetField(quotacounter.FieldResetsAt, field.TypeTime, value)
		_node.ResetsAt = value
	}
	return _node, _spec
}

// QuotaCounterCreateBulk is the builder for creating many QuotaCounter entities in bulk.
type QuotaCounterCreateBulk struct {
	config
	err      error
	builders []*QuotaCounterCreate
}

// Save creates the QuotaCounter entities in the database.
func (_c *QuotaCounterCreateBulk) Save(ctx context.Context) ([]*QuotaCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuotaCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuotaCounterMutation)
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
func (_c *QuotaCounterCreateBulk) SaveX(ctx context.Context) []*QuotaCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuotaCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuotaCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
