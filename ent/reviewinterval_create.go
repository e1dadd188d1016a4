// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/reviewinterval"
)

// ReviewIntervalCreate is the builder for creating a ReviewInterval entity.
type ReviewIntervalCreate struct {
	config
	mutation *ReviewIntervalMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewIntervalCreate) SetUserID(v string) *ReviewIntervalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewIntervalCreate) SetQuestionID(v string) *ReviewIntervalCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewIntervalCreate) SetIntervalDays(v int) *ReviewIntervalCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *ReviewIntervalCreate) SetNextReview(v time.Time) *ReviewIntervalCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetTimesReviewed sets the "times_reviewed" field.
func (_c *ReviewIntervalCreate) SetTimesReviewed(v int) *ReviewIntervalCreate {
	_c.mutation.SetTimesReviewed(v)
	return _c
}

// SetNillableTimesReviewed sets the "times_reviewed" field if the given value is not nil.
func (_c *ReviewIntervalCreate) SetNillableTimesReviewed(v *int) *ReviewIntervalCreate {
	if v != nil {
		_c.SetTimesReviewed(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReviewIntervalCreate) SetUpdatedAt(v time.Time) *ReviewIntervalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReviewIntervalCreate) SetNillableUpdatedAt(v *time.Time) *ReviewIntervalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewIntervalMutation object of the builder.
func (_c *ReviewIntervalCreate) Mutation() *ReviewIntervalMutation {
	return _c.mutation
}

// Save creates the ReviewInterval in the database.
func (_c *ReviewIntervalCreate) Save(ctx context.Context) (*ReviewInterval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewIntervalCreate) SaveX(ctx context.Context) *ReviewInterval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewIntervalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewIntervalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewIntervalCreate) defaults() {
	if _, ok := _c.mutation.TimesReviewed(); !ok {
		v := reviewinterval.DefaultTimesReviewed
		_c.mutation.SetTimesReviewed(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reviewinterval.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewIntervalCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewInterval.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReviewInterval.question_id"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewInterval.interval_days"`)}
	}
	if _, ok := _c.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "ReviewInterval.next_review"`)}
	}
	if _, ok := _c.mutation.TimesReviewed(); !ok {
		return &ValidationError{Name: "times_reviewed", err: errors.New(`ent: missing required field "ReviewInterval.times_reviewed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewInterval.updated_at"`)}
	}
	return nil
}

func (_c *ReviewIntervalCreate) sqlSave(ctx context.Context) (*ReviewInterval, error) {
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

func (_c *ReviewIntervalCreate) createSpec() (*ReviewInterval, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewInterval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewinterval.Table, sqlgraph.NewFieldSpec(reviewinterval.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewinterval.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewinterval.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewinterval.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(reviewinterval.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := _c.mutation.TimesReviewed(); ok {
		_spec.SetField(reviewinterval.FieldTimesReviewed, field.TypeInt, value)
		_node.TimesReviewed = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewinterval.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewIntervalCreateBulk is the builder for creating many ReviewInterval entities in bulk.
type ReviewIntervalCreateBulk struct {
	config
	err      error
	builders []*ReviewIntervalCreate
}

// Save creates the ReviewInterval entities in the database.
func (_c *ReviewIntervalCreateBulk) Save(ctx context.Context) ([]*ReviewInterval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewInterval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewIntervalMutation)
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
func (_c *ReviewIntervalCreateBulk) SaveX(ctx context.Context) []*ReviewInterval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewIntervalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewIntervalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
