// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/predicate"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/internal/model"
)

// ThetaSnapshotUpdate is the builder for updating ThetaSnapshot entities.
type ThetaSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ThetaSnapshotMutation
}

// Where appends a list predicates to the ThetaSnapshotUpdate builder.
func (_u *ThetaSnapshotUpdate) Where(ps ...predicate.ThetaSnapshot) *ThetaSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ThetaSnapshotUpdate) SetUserID(v string) *ThetaSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThetaSnapshotUpdate) SetNillableUserID(v *string) *ThetaSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ThetaSnapshotUpdate) SetQuizID(v string) *ThetaSnapshotUpdate {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ThetaSnapshotUpdate) SetNillableQuizID(v *string) *ThetaSnapshotUpdate {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuizNumber sets the "quiz_number" field.
func (_u *ThetaSnapshotUpdate) SetQuizNumber(v int) *ThetaSnapshotUpdate {
	_u.mutation.ResetQuizNumber()
	_u.mutation.SetQuizNumber(v)
	return _u
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_u *ThetaSnapshotUpdate) SetNillableQuizNumber(v *int) *ThetaSnapshotUpdate {
	if v != nil {
		_u.SetQuizNumber(*v)
	}
	return _u
}

// AddQuizNumber adds value to the "quiz_number" field.
func (_u *ThetaSnapshotUpdate) AddQuizNumber(v int) *ThetaSnapshotUpdate {
	_u.mutation.AddQuizNumber(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ThetaSnapshotUpdate) SetPayload(v *model.SnapshotPayload) *ThetaSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *ThetaSnapshotUpdate) SetCapturedAt(v time.Time) *ThetaSnapshotUpdate {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *ThetaSnapshotUpdate) SetNillableCapturedAt(v *time.Time) *ThetaSnapshotUpdate {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// Mutation returns the ThetaSnapshotMutation object of the builder.
func (_u *ThetaSnapshotUpdate) Mutation() *ThetaSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThetaSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThetaSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThetaSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThetaSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ThetaSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(thetasnapshot.Table, thetasnapshot.Columns, sqlgraph.NewFieldSpec(thetasnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(thetasnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(thetasnapshot.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizNumber(); ok {
		_spec.SetField(thetasnapshot.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizNumber(); ok {
		_spec.AddField(thetasnapshot.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(thetasnapshot.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(thetasnapshot.FieldCapturedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thetasnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThetaSnapshotUpdateOne is the builder for updating a single ThetaSnapshot entity.
type ThetaSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThetaSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *ThetaSnapshotUpdateOne) SetUserID(v string) *ThetaSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ThetaSnapshotUpdateOne) SetNillableUserID(v *string) *ThetaSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuizID sets the "quiz_id" field.
func (_u *ThetaSnapshotUpdateOne) SetQuizID(v string) *ThetaSnapshotUpdateOne {
	_u.mutation.SetQuizID(v)
	return _u
}

// SetNillableQuizID sets the "quiz_id" field if the given value is not nil.
func (_u *ThetaSnapshotUpdateOne) SetNillableQuizID(v *string) *ThetaSnapshotUpdateOne {
	if v != nil {
		_u.SetQuizID(*v)
	}
	return _u
}

// SetQuizNumber sets the "quiz_number" field.
func (_u *ThetaSnapshotUpdateOne) SetQuizNumber(v int) *ThetaSnapshotUpdateOne {
	_u.mutation.ResetQuizNumber()
	_u.mutation.SetQuizNumber(v)
	return _u
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_u *ThetaSnapshotUpdateOne) SetNillableQuizNumber(v *int) *ThetaSnapshotUpdateOne {
	if v != nil {
		_u.SetQuizNumber(*v)
	}
	return _u
}

// AddQuizNumber adds value to the "quiz_number" field.
func (_u *ThetaSnapshotUpdateOne) AddQuizNumber(v int) *ThetaSnapshotUpdateOne {
	_u.mutation.AddQuizNumber(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ThetaSnapshotUpdateOne) SetPayload(v *model.SnapshotPayload) *ThetaSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetCapturedAt sets the "captured_at" field.
func (_u *ThetaSnapshotUpdateOne) SetCapturedAt(v time.Time) *ThetaSnapshotUpdateOne {
	_u.mutation.SetCapturedAt(v)
	return _u
}

// SetNillableCapturedAt sets the "captured_at" field if the given value is not nil.
func (_u *ThetaSnapshotUpdateOne) SetNillableCapturedAt(v *time.Time) *ThetaSnapshotUpdateOne {
	if v != nil {
		_u.SetCapturedAt(*v)
	}
	return _u
}

// Mutation returns the ThetaSnapshotMutation object of the builder.
func (_u *ThetaSnapshotUpdateOne) Mutation() *ThetaSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThetaSnapshotUpdate builder.
func (_u *ThetaSnapshotUpdateOne) Where(ps ...predicate.ThetaSnapshot) *ThetaSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThetaSnapshotUpdateOne) Select(field string, fields ...string) *ThetaSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThetaSnapshot entity.
func (_u *ThetaSnapshotUpdateOne) Save(ctx context.Context) (*ThetaSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThetaSnapshotUpdateOne) SaveX(ctx context.Context) *ThetaSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThetaSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThetaSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ThetaSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ThetaSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(thetasnapshot.Table, thetasnapshot.Columns, sqlgraph.NewFieldSpec(thetasnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThetaSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, thetasnapshot.FieldID)
		for _, f := range fields {
			if !thetasnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != thetasnapshot.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(thetasnapshot.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizID(); ok {
		_spec.SetField(thetasnapshot.FieldQuizID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizNumber(); ok {
		_spec.SetField(thetasnapshot.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizNumber(); ok {
		_spec.AddField(thetasnapshot.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(thetasnapshot.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CapturedAt(); ok {
		_spec.SetField(thetasnapshot.FieldCapturedAt, field.TypeTime, value)
	}
	_node = &ThetaSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{thetasnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
