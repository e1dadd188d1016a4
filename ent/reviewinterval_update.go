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
	"github.com/jeevibe/engine/ent/reviewinterval"
)

// ReviewIntervalUpdate is the builder for updating ReviewInterval entities.
type ReviewIntervalUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewIntervalMutation
}

// Where appends a list predicates to the ReviewIntervalUpdate builder.
func (_u *ReviewIntervalUpdate) Where(ps ...predicate.ReviewInterval) *ReviewIntervalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReviewIntervalUpdate) SetUserID(v string) *ReviewIntervalUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewIntervalUpdate) SetNillableUserID(v *string) *ReviewIntervalUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewIntervalUpdate) SetQuestionID(v string) *ReviewIntervalUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewIntervalUpdate) SetNillableQuestionID(v *string) *ReviewIntervalUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewIntervalUpdate) SetIntervalDays(v int) *ReviewIntervalUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewIntervalUpdate) SetNillableIntervalDays(v *int) *ReviewIntervalUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewIntervalUpdate) AddIntervalDays(v int) *ReviewIntervalUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewIntervalUpdate) SetNextReview(v time.Time) *ReviewIntervalUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewIntervalUpdate) SetNillableNextReview(v *time.Time) *ReviewIntervalUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTimesReviewed sets the "times_reviewed" field.
func (_u *ReviewIntervalUpdate) SetTimesReviewed(v int) *ReviewIntervalUpdate {
	_u.mutation.ResetTimesReviewed()
	_u.mutation.SetTimesReviewed(v)
	return _u
}

// SetNillableTimesReviewed sets the "times_reviewed" field if the given value is not nil.
func (_u *ReviewIntervalUpdate) SetNillableTimesReviewed(v *int) *ReviewIntervalUpdate {
	if v != nil {
		_u.SetTimesReviewed(*v)
	}
	return _u
}

// AddTimesReviewed adds value to the "times_reviewed" field.
func (_u *ReviewIntervalUpdate) AddTimesReviewed(v int) *ReviewIntervalUpdate {
	_u.mutation.AddTimesReviewed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewIntervalUpdate) SetUpdatedAt(v time.Time) *ReviewIntervalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewIntervalMutation object of the builder.
func (_u *ReviewIntervalUpdate) Mutation() *ReviewIntervalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewIntervalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewIntervalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewIntervalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewIntervalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewIntervalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewinterval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ReviewIntervalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewinterval.Table, reviewinterval.Columns, sqlgraph.NewFieldSpec(reviewinterval.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reviewinterval.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewinterval.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewinterval.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewinterval.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewinterval.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimesReviewed(); ok {
		_spec.SetField(reviewinterval.FieldTimesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesReviewed(); ok {
		_spec.AddField(reviewinterval.FieldTimesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewinterval.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewinterval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewIntervalUpdateOne is the builder for updating a single ReviewInterval entity.
type ReviewIntervalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewIntervalMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReviewIntervalUpdateOne) SetUserID(v string) *ReviewIntervalUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReviewIntervalUpdateOne) SetNillableUserID(v *string) *ReviewIntervalUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ReviewIntervalUpdateOne) SetQuestionID(v string) *ReviewIntervalUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ReviewIntervalUpdateOne) SetNillableQuestionID(v *string) *ReviewIntervalUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewIntervalUpdateOne) SetIntervalDays(v int) *ReviewIntervalUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewIntervalUpdateOne) SetNillableIntervalDays(v *int) *ReviewIntervalUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewIntervalUpdateOne) AddIntervalDays(v int) *ReviewIntervalUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewIntervalUpdateOne) SetNextReview(v time.Time) *ReviewIntervalUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewIntervalUpdateOne) SetNillableNextReview(v *time.Time) *ReviewIntervalUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetTimesReviewed sets the "times_reviewed" field.
func (_u *ReviewIntervalUpdateOne) SetTimesReviewed(v int) *ReviewIntervalUpdateOne {
	_u.mutation.ResetTimesReviewed()
	_u.mutation.SetTimesReviewed(v)
	return _u
}

// SetNillableTimesReviewed sets the "times_reviewed" field if the given value is not nil.
func (_u *ReviewIntervalUpdateOne) SetNillableTimesReviewed(v *int) *ReviewIntervalUpdateOne {
	if v != nil {
		_u.SetTimesReviewed(*v)
	}
	return _u
}

// AddTimesReviewed adds value to the "times_reviewed" field.
func (_u *ReviewIntervalUpdateOne) AddTimesReviewed(v int) *ReviewIntervalUpdateOne {
	_u.mutation.AddTimesReviewed(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReviewIntervalUpdateOne) SetUpdatedAt(v time.Time) *ReviewIntervalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ReviewIntervalMutation object of the builder.
func (_u *ReviewIntervalUpdateOne) Mutation() *ReviewIntervalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewIntervalUpdate builder.
func (_u *ReviewIntervalUpdateOne) Where(ps ...predicate.ReviewInterval) *ReviewIntervalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewIntervalUpdateOne) Select(field string, fields ...string) *ReviewIntervalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewInterval entity.
func (_u *ReviewIntervalUpdateOne) Save(ctx context.Context) (*ReviewInterval, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewIntervalUpdateOne) SaveX(ctx context.Context) *ReviewInterval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewIntervalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewIntervalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReviewIntervalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reviewinterval.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ReviewIntervalUpdateOne) sqlSave(ctx context.Context) (_node *ReviewInterval, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewinterval.Table, reviewinterval.Columns, sqlgraph.NewFieldSpec(reviewinterval.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewInterval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewinterval.FieldID)
		for _, f := range fields {
			if !reviewinterval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewinterval.FieldID {
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
		_spec.SetField(reviewinterval.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(reviewinterval.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewinterval.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewinterval.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewinterval.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimesReviewed(); ok {
		_spec.SetField(reviewinterval.FieldTimesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesReviewed(); ok {
		_spec.AddField(reviewinterval.FieldTimesReviewed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewinterval.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewInterval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewinterval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
