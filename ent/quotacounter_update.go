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
	"github.com/jeevibe/engine/ent/quotacounter"
)

// QuotaCounterUpdate is the builder for updating QuotaCounter entities.
type QuotaCounterUpdate struct {
	config
	hooks    []Hook
	mutation *QuotaCounterMutation
}

// Where appends a list predicates to the QuotaCounterUpdate builder.
func (_u *QuotaCounterUpdate) Where(ps ...predicate.QuotaCounter) *QuotaCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *QuotaCounterUpdate) SetUserID(v string) *QuotaCounterUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableUserID(v *string) *QuotaCounterUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *QuotaCounterUpdate) SetFeature(v string) *QuotaCounterUpdate {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableFeature(v *string) *QuotaCounterUpdate {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetPeriodKey sets the "period_key" field.
func (_u *QuotaCounterUpdate) SetPeriodKey(v string) *QuotaCounterUpdate {
	_u.mutation.SetPeriodKey(v)
	return _u
}

// SetNillablePeriodKey sets the "period_key" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillablePeriodKey(v *string) *QuotaCounterUpdate {
	if v != nil {
		_u.SetPeriodKey(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *QuotaCounterUpdate) SetUsed(v int) *QuotaCounterUpdate {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableUsed(v *int) *QuotaCounterUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *QuotaCounterUpdate) AddUsed(v int) *QuotaCounterUpdate {
	_u.mutation.AddUsed(v)
	return _u
}

// SetLimit sets the "limit" field.
func (_u *QuotaCounterUpdate) SetLimit(v int) *QuotaCounterUpdate {
	_u.mutation.ResetLimit()
	_u.mutation.SetLimit(v)
	return _u
}

// SetNillableLimit sets the "limit" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableLimit(v *int) *QuotaCounterUpdate {
	if v != nil {
		_u.SetLimit(*v)
	}
	return _u
}

// AddLimit adds value to the "limit" field.
func (_u *QuotaCounterUpdate) AddLimit(v int) *QuotaCounterUpdate {
	_u.mutation.AddLimit(v)
	return _u
}

// SetResetsAt sets the "resets_at" field.
func (_u *QuotaCounterUpdate) SetResetsAt(v time.Time) *QuotaCounterUpdate {
	_u.mutation.SetResetsAt(v)
	return _u
}

// SetNillableResetsAt sets the "resets_at" field if the given value is not nil.
func (_u *QuotaCounterUpdate) SetNillableResetsAt(v *time.Time) *QuotaCounterUpdate {
	if v != nil {
		_u.SetResetsAt(*v)
	}
	return _u
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_u *QuotaCounterUpdate) Mutation() *QuotaCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuotaCounterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuotaCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuotaCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotacounter.Table, quotacounter.Columns, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(quotacounter.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(quotacounter.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodKey(); ok {
		_spec.SetField(quotacounter.FieldPeriodKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(quotacounter.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(quotacounter.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Limit(); ok {
		_spec.SetField(quotacounter.FieldLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLimit(); ok {
		_spec.AddField(quotacounter.FieldLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetsAt(); ok {
		_spec.SetField(quotacounter.FieldResetsAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotacounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuotaCounterUpdateOne is the builder for updating a single QuotaCounter entity.
type QuotaCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuotaCounterMutation
}

// SetUserID sets the "user_id" field.
func (_u *QuotaCounterUpdateOne) SetUserID(v string) *QuotaCounterUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableUserID(v *string) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFeature sets the "feature" field.
func (_u *QuotaCounterUpdateOne) SetFeature(v string) *QuotaCounterUpdateOne {
	_u.mutation.SetFeature(v)
	return _u
}

// SetNillableFeature sets the "feature" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableFeature(v *string) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetFeature(*v)
	}
	return _u
}

// SetPeriodKey sets the "period_key" field.
func (_u *QuotaCounterUpdateOne) SetPeriodKey(v string) *QuotaCounterUpdateOne {
	_u.mutation.SetPeriodKey(v)
	return _u
}

// SetNillablePeriodKey sets the "period_key" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillablePeriodKey(v *string) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetPeriodKey(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *QuotaCounterUpdateOne) SetUsed(v int) *QuotaCounterUpdateOne {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableUsed(v *int) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *QuotaCounterUpdateOne) AddUsed(v int) *QuotaCounterUpdateOne {
	_u.mutation.AddUsed(v)
	return _u
}

// SetLimit sets the "limit" field.
func (_u *QuotaCounterUpdateOne) SetLimit(v int) *QuotaCounterUpdateOne {
	_u.mutation.ResetLimit()
	_u.mutation.SetLimit(v)
	return _u
}

// SetNillableLimit sets the "limit" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableLimit(v *int) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetLimit(*v)
	}
	return _u
}

// AddLimit adds value to the "limit" field.
func (_u *QuotaCounterUpdateOne) AddLimit(v int) *QuotaCounterUpdateOne {
	_u.mutation.AddLimit(v)
	return _u
}

// SetResetsAt sets the "resets_at" field.
func (_u *QuotaCounterUpdateOne) SetResetsAt(v time.Time) *QuotaCounterUpdateOne {
	_u.mutation.SetResetsAt(v)
	return _u
}

// SetNillableResetsAt sets the "resets_at" field if the given value is not nil.
func (_u *QuotaCounterUpdateOne) SetNillableResetsAt(v *time.Time) *QuotaCounterUpdateOne {
	if v != nil {
		_u.SetResetsAt(*v)
	}
	return _u
}

// Mutation returns the QuotaCounterMutation object of the builder.
func (_u *QuotaCounterUpdateOne) Mutation() *QuotaCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuotaCounterUpdate builder.
func (_u *QuotaCounterUpdateOne) Where(ps ...predicate.QuotaCounter) *QuotaCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuotaCounterUpdateOne) Select(field string, fields ...string) *QuotaCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuotaCounter entity.
func (_u *QuotaCounterUpdateOne) Save(ctx context.Context) (*QuotaCounter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuotaCounterUpdateOne) SaveX(ctx context.Context) *QuotaCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuotaCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuotaCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuotaCounterUpdateOne) sqlSave(ctx context.Context) (_node *QuotaCounter, err error) {
	_spec := sqlgraph.NewUpdateSpec(quotacounter.Table, quotacounter.Columns, sqlgraph.NewFieldSpec(quotacounter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuotaCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotacounter.FieldID)
		for _, f := range fields {
			if !quotacounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotacounter.FieldID {
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
		_spec.SetField(quotacounter.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feature(); ok {
		_spec.SetField(quotacounter.FieldFeature, field.TypeString, value)
	}
	if value, ok := _u.mutation.PeriodKey(); ok {
		_spec.SetField(quotacounter.FieldPeriodKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(quotacounter.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(quotacounter.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Limit(); ok {
		_spec.SetField(quotacounter.FieldLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLimit(); ok {
		_spec.AddField(quotacounter.FieldLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResetsAt(); ok {
		_spec.SetField(quotacounter.FieldResetsAt, field.TypeTime, value)
	}
	_node = &QuotaCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotacounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
