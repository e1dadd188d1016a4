// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/internal/model"
)

// ThetaSnapshotCreate is the builder for creating a ThetaSnapshot entity.
type ThetaSnapshotCreate struct {
	config
	mutation *ThetaSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ThetaSnapshotCreate) SetUserID(v string) *ThetaSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuizID sets the "quiz_id" field.
func (_c *ThetaSnapshotCreate) SetQuizID(v string) *ThetaSnapshotCreate {
	_c.mutation.SetQuizID(v)
	return _c
}

// SetQuizNumber sets the "quiz_number" field.
func (_c *ThetaSnapshotCreate) SetQuizNumber(v int) *ThetaSnapshotCreate {
	_c.mutation.SetQuizNumber(v)
	return _c
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_c *ThetaSnapshotCreate) SetNillableQuizNumber(v *int) *ThetaSnapshotCreate {
	if v != nil {
		_c.SetQuizNumber(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ThetaSnapshotCreate) SetPayload(v *model.SnapshotPayload) *ThetaSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCapturedAt sets the "captured_at" field.
func (_c *ThetaSnapshotCreate) SetCapturedAt(v time.Time) *ThetaSnapshotCreate {
	_c.mutation.SetCapturedAt(v)
	return _c
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_c *ThetaSnapshotCreate) SetNillableCapturedAt(v *time.Time) *ThetaSnapshotCreate {
	if v != nil {
		_c.SetCapturedAt(*v)
	}
	return _c
}

// Mutation returns the ThetaSnapshotMutation object of the builder.
func (_c *ThetaSnapshotCreate) Mutation() *ThetaSnapshotMutation {
	return _c.mutation
}

// Save creates the ThetaSnapshot in the database.
func (_c *ThetaSnapshotCreate) Save(ctx context.Context) (*ThetaSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThetaSnapshotCreate) SaveX(ctx context.Context) *ThetaSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThetaSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThetaSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThetaSnapshotCreate) defaults() {
	if _, ok := _c.mutation.QuizNumber(); !ok {
		v := thetasnapshot.DefaultQuizNumber
		_c.mutation.SetQuizNumber(v)
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		v := thetasnapshot.DefaultCapturedAt()
		_c.mutation.SetCapturedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThetaSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ThetaSnapshot.user_id"`)}
	}
	if _, ok := _c.mutation.QuizID(); !ok {
		return &ValidationError{Name: "quiz_id", err: errors.New(`ent: missing required field "ThetaSnapshot.quiz_id"`)}
	}
	if _, ok := _c.mutation.QuizNumber(); !ok {
		return &ValidationError{Name: "quiz_number", err: errors.New(`ent: missing required field "ThetaSnapshot.quiz_number"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ThetaSnapshot.payload"`)}
	}
	if _, ok := _c.mutation.CapturedAt(); !ok {
		return &ValidationError{Name: "captured_at", err: errors.New(`ent: missing required field "ThetaSnapshot.captured_at"`)}
	}
	return nil
}

func (_c *ThetaSnapshotCreate) sqlSave(ctx context.Context) (*ThetaSnapshot, error) {
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

func (_c *ThetaSnapshotCreate) createSpec() (*ThetaSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ThetaSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(thetasnapshot.Table, sqlgraph.NewFieldSpec(thetasnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(thetasnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuizID(); ok {
		_spec.SetField(thetasnapshot.FieldQuizID, field.TypeString, value)
		_node.QuizID = value
	}
	if value, ok := _c.mutation.QuizNumber(); ok {
		_spec.SetField(thetasnapshot.FieldQuizNumber, field.TypeInt, value)
		_node.QuizNumber = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(thetasnapshot.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CapturedAt(); ok {
		_spec.SetField(thetasnapshot.FieldCapturedAt, field.TypeTime, value)
		_node.CapturedAt = value
	}
	return _node, _spec
}

// ThetaSnapshotCreateBulk is the builder for creating many ThetaSnapshot entities in bulk.
type ThetaSnapshotCreateBulk struct {
	config
	err      error
	builders []*ThetaSnapshotCreate
}

// Save creates the ThetaSnapshot entities in the database.
func (_c *ThetaSnapshotCreateBulk) Save(ctx context.Context) ([]*ThetaSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThetaSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThetaSnapshotMutation)
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
func (_c *ThetaSnapshotCreateBulk) SaveX(ctx context.Context) []*ThetaSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThetaSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThetaSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
