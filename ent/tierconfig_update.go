// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/predicate"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/internal/model"
)

// TierConfigUpdate is the builder for updating TierConfig entities.
type TierConfigUpdate struct {
	config
	hooks    []Hook
	mutation *TierConfigMutation
}

// Where appends a list predicates to the TierConfigUpdate builder.
func (_u *TierConfigUpdate) Where(ps ...predicate.TierConfig) *TierConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLimits sets the "limits" field.
func (_u *TierConfigUpdate) SetLimits(v model.TierLimits) *TierConfigUpdate {
	_u.mutation.SetLimits(v)
	return _u
}

// SetNillableLimits sets the "limits" field if the given value is not nil.
func (_u *TierConfigUpdate) SetNillableLimits(v *model.TierLimits) *TierConfigUpdate {
	if v != nil {
		_u.SetLimits(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *TierConfigUpdate) SetFeatures(v []string) *TierConfigUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *TierConfigUpdate) AppendFeatures(v []string) *TierConfigUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *TierConfigUpdate) ClearFeatures() *TierConfigUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetChapterPracticeWeekly sets the "chapter_practice_weekly" field.
func (_u *TierConfigUpdate) SetChapterPracticeWeekly(v bool) *TierConfigUpdate {
	_u.mutation.SetChapterPracticeWeekly(v)
	return _u
}

// SetNillableChapterPracticeWeekly sets the "chapter_practice_weekly" field if the given value is not nil.
func (_u *TierConfigUpdate) SetNillableChapterPracticeWeekly(v *bool) *TierConfigUpdate {
	if v != nil {
		_u.SetChapterPracticeWeekly(*v)
	}
	return _u
}

// SetExplorationEndQuiz sets the "exploration_end_quiz" field.
func (_u *TierConfigUpdate) SetExplorationEndQuiz(v int) *TierConfigUpdate {
	_u.mutation.ResetExplorationEndQuiz()
	_u.mutation.SetExplorationEndQuiz(v)
	return _u
}

// SetNillableExplorationEndQuiz sets the "exploration_end_quiz" field if the given value is not nil.
func (_u *TierConfigUpdate) SetNillableExplorationEndQuiz(v *int) *TierConfigUpdate {
	if v != nil {
		_u.SetExplorationEndQuiz(*v)
	}
	return _u
}

// AddExplorationEndQuiz adds value to the "exploration_end_quiz" field.
func (_u *TierConfigUpdate) AddExplorationEndQuiz(v int) *TierConfigUpdate {
	_u.mutation.AddExplorationEndQuiz(v)
	return _u
}

// SetRecoveryTrigger sets the "recovery_trigger" field.
func (_u *TierConfigUpdate) SetRecoveryTrigger(v int) *TierConfigUpdate {
	_u.mutation.ResetRecoveryTrigger()
	_u.mutation.SetRecoveryTrigger(v)
	return _u
}

// SetNillableRecoveryTrigger sets the "recovery_trigger" field if the given value is not nil.
func (_u *TierConfigUpdate) SetNillableRecoveryTrigger(v *int) *TierConfigUpdate {
	if v != nil {
		_u.SetRecoveryTrigger(*v)
	}
	return _u
}

// AddRecoveryTrigger adds value to the "recovery_trigger" field.
func (_u *TierConfigUpdate) AddRecoveryTrigger(v int) *TierConfigUpdate {
	_u.mutation.AddRecoveryTrigger(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierConfigUpdate) SetUpdatedAt(v time.Time) *TierConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierConfigMutation object of the builder.
func (_u *TierConfigUpdate) Mutation() *TierConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TierConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TierConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TierConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tierconfig.Table, tierconfig.Columns, sqlgraph.NewFieldSpec(tierconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Limits(); ok {
		_spec.SetField(tierconfig.FieldLimits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(tierconfig.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tierconfig.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(tierconfig.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterPracticeWeekly(); ok {
		_spec.SetField(tierconfig.FieldChapterPracticeWeekly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExplorationEndQuiz(); ok {
		_spec.SetField(tierconfig.FieldExplorationEndQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExplorationEndQuiz(); ok {
		_spec.AddField(tierconfig.FieldExplorationEndQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryTrigger(); ok {
		_spec.SetField(tierconfig.FieldRecoveryTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryTrigger(); ok {
		_spec.AddField(tierconfig.FieldRecoveryTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TierConfigUpdateOne is the builder for updating a single TierConfig entity.
type TierConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TierConfigMutation
}

// SetLimits sets the "limits" field.
func (_u *TierConfigUpdateOne) SetLimits(v model.TierLimits) *TierConfigUpdateOne {
	_u.mutation.SetLimits(v)
	return _u
}

// SetNillableLimits sets the "limits" field if the given value is not nil.
func (_u *TierConfigUpdateOne) SetNillableLimits(v *model.TierLimits) *TierConfigUpdateOne {
	if v != nil {
		_u.SetLimits(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *TierConfigUpdateOne) SetFeatures(v []string) *TierConfigUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *TierConfigUpdateOne) AppendFeatures(v []string) *TierConfigUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *TierConfigUpdateOne) ClearFeatures() *TierConfigUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetChapterPracticeWeekly sets the "chapter_practice_weekly" field.
func (_u *TierConfigUpdateOne) SetChapterPracticeWeekly(v bool) *TierConfigUpdateOne {
	_u.mutation.SetChapterPracticeWeekly(v)
	return _u
}

// SetNillableChapterPracticeWeekly sets the "chapter_practice_weekly" field if the given value is not nil.
func (_u *TierConfigUpdateOne) SetNillableChapterPracticeWeekly(v *bool) *TierConfigUpdateOne {
	if v != nil {
		_u.SetChapterPracticeWeekly(*v)
	}
	return _u
}

// SetExplorationEndQuiz sets the "exploration_end_quiz" field.
func (_u *TierConfigUpdateOne) SetExplorationEndQuiz(v int) *TierConfigUpdateOne {
	_u.mutation.ResetExplorationEndQuiz()
	_u.mutation.SetExplorationEndQuiz(v)
	return _u
}

// SetNillableExplorationEndQuiz sets the "exploration_end_quiz" field if the given value is not nil.
func (_u *TierConfigUpdateOne) SetNillableExplorationEndQuiz(v *int) *TierConfigUpdateOne {
	if v != nil {
		_u.SetExplorationEndQuiz(*v)
	}
	return _u
}

// AddExplorationEndQuiz adds value to the "exploration_end_quiz" field.
func (_u *TierConfigUpdateOne) AddExplorationEndQuiz(v int) *TierConfigUpdateOne {
	_u.mutation.AddExplorationEndQuiz(v)
	return _u
}

// SetRecoveryTrigger sets the "recovery_trigger" field.
func (_u *TierConfigUpdateOne) SetRecoveryTrigger(v int) *TierConfigUpdateOne {
	_u.mutation.ResetRecoveryTrigger()
	_u.mutation.SetRecoveryTrigger(v)
	return _u
}

// SetNillableRecoveryTrigger sets the "recovery_trigger" field if the given value is not nil.
func (_u *TierConfigUpdateOne) SetNillableRecoveryTrigger(v *int) *TierConfigUpdateOne {
	if v != nil {
		_u.SetRecoveryTrigger(*v)
	}
	return _u
}

// AddRecoveryTrigger adds value to the "recovery_trigger" field.
func (_u *TierConfigUpdateOne) AddRecoveryTrigger(v int) *TierConfigUpdateOne {
	_u.mutation.AddRecoveryTrigger(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierConfigUpdateOne) SetUpdatedAt(v time.Time) *TierConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierConfigMutation object of the builder.
func (_u *TierConfigUpdateOne) Mutation() *TierConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the TierConfigUpdate builder.
func (_u *TierConfigUpdateOne) Where(ps ...predicate.TierConfig) *TierConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TierConfigUpdateOne) Select(field string, fields ...string) *TierConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TierConfig entity.
func (_u *TierConfigUpdateOne) Save(ctx context.Context) (*TierConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierConfigUpdateOne) SaveX(ctx context.Context) *TierConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TierConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TierConfigUpdateOne) sqlSave(ctx context.Context) (_node *TierConfig, err error) {
	_spec := sqlgraph.NewUpdateSpec(tierconfig.Table, tierconfig.Columns, sqlgraph.NewFieldSpec(tierconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TierConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tierconfig.FieldID)
		for _, f := range fields {
			if !tierconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tierconfig.FieldID {
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
	if value, ok := _u.mutation.Limits(); ok {
		_spec.SetField(tierconfig.FieldLimits, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(tierconfig.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tierconfig.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(tierconfig.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChapterPracticeWeekly(); ok {
		_spec.SetField(tierconfig.FieldChapterPracticeWeekly, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExplorationEndQuiz(); ok {
		_spec.SetField(tierconfig.FieldExplorationEndQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExplorationEndQuiz(); ok {
		_spec.AddField(tierconfig.FieldExplorationEndQuiz, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryTrigger(); ok {
		_spec.SetField(tierconfig.FieldRecoveryTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryTrigger(); ok {
		_spec.AddField(tierconfig.FieldRecoveryTrigger, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TierConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
