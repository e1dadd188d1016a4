// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/user"
	"github.com/jeevibe/engine/internal/model"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetOverallTheta sets the "overall_theta" field.
func (_c *UserCreate) SetOverallTheta(v float64) *UserCreate {
	_c.mutation.SetOverallTheta(v)
	return _c
}

// SetNillableOverallTheta sets the "overall_theta" field if the given value is not nil.
func (_c *UserCreate) SetNillableOverallTheta(v *float64) *UserCreate {
	if v != nil {
		_c.SetOverallTheta(*v)
	}
	return _c
}

// SetOverallPercentile sets the "overall_percentile" field.
func (_c *UserCreate) SetOverallPercentile(v int) *UserCreate {
	_c.mutation.SetOverallPercentile(v)
	return _c
}

// SetNillableOverallPercentile sets the "overall_percentile" field if the given value is not nil.
func (_c *UserCreate) SetNillableOverallPercentile(v *int) *UserCreate {
	if v != nil {
		_c.SetOverallPercentile(*v)
	}
	return _c
}

// SetThetaBySubject sets the "theta_by_subject" field.
func (_c *UserCreate) SetThetaBySubject(v map[string]model.SubjectState) *UserCreate {
	_c.mutation.SetThetaBySubject(v)
	return _c
}

// SetThetaByChapter sets the "theta_by_chapter" field.
func (_c *UserCreate) SetThetaByChapter(v map[string]model.ChapterState) *UserCreate {
	_c.mutation.SetThetaByChapter(v)
	return _c
}

// SetSubtopicAccuracy sets the "subtopic_accuracy" field.
func (_c *UserCreate) SetSubtopicAccuracy(v map[string]map[string]model.Tally) *UserCreate {
	_c.mutation.SetSubtopicAccuracy(v)
	return _c
}

// SetSubjectAccuracy sets the "subject_accuracy" field.
func (_c *UserCreate) SetSubjectAccuracy(v map[string]model.Tally) *UserCreate {
	_c.mutation.SetSubjectAccuracy(v)
	return _c
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_c *UserCreate) SetTotalQuestionsAttempted(v int) *UserCreate {
	_c.mutation.SetTotalQuestionsAttempted(v)
	return _c
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalQuestionsAttempted(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalQuestionsAttempted(*v)
	}
	return _c
}

// SetTotalQuestionsCorrect sets the "total_questions_correct" field.
func (_c *UserCreate) SetTotalQuestionsCorrect(v int) *UserCreate {
	_c.mutation.SetTotalQuestionsCorrect(v)
	return _c
}

// SetNillableTotalQuestionsCorrect sets the "total_questions_correct" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalQuestionsCorrect(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalQuestionsCorrect(*v)
	}
	return _c
}

// SetTotalTimeSpentMinutes sets the "total_time_spent_minutes" field.
func (_c *UserCreate) SetTotalTimeSpentMinutes(v float64) *UserCreate {
	_c.mutation.SetTotalTimeSpentMinutes(v)
	return _c
}

// SetNillableTotalTimeSpentMinutes sets the "total_time_spent_minutes" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalTimeSpentMinutes(v *float64) *UserCreate {
	if v != nil {
		_c.SetTotalTimeSpentMinutes(*v)
	}
	return _c
}

// SetCompletedQuizCount sets the "completed_quiz_count" field.
func (_c *UserCreate) SetCompletedQuizCount(v int) *UserCreate {
	_c.mutation.SetCompletedQuizCount(v)
	return _c
}

// SetNillableCompletedQuizCount sets the "completed_quiz_count" field if the given value is not nil.
func (_c *UserCreate) SetNillableCompletedQuizCount(v *int) *UserCreate {
	if v != nil {
		_c.SetCompletedQuizCount(*v)
	}
	return _c
}

// SetLearningPhase sets the "learning_phase" field.
func (_c *UserCreate) SetLearningPhase(v string) *UserCreate {
	_c.mutation.SetLearningPhase(v)
	return _c
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_c *UserCreate) SetNillableLearningPhase(v *string) *UserCreate {
	if v != nil {
		_c.SetLearningPhase(*v)
	}
	return _c
}

// SetCurrentDay sets the "current_day" field.
func (_c *UserCreate) SetCurrentDay(v int) *UserCreate {
	_c.mutation.SetCurrentDay(v)
	return _c
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_c *UserCreate) SetNillableCurrentDay(v *int) *UserCreate {
	if v != nil {
		_c.SetCurrentDay(*v)
	}
	return _c
}

// SetAssessmentStatus sets the "assessment_status" field.
func (_c *UserCreate) SetAssessmentStatus(v string) *UserCreate {
	_c.mutation.SetAssessmentStatus(v)
	return _c
}

// SetNillableAssessmentStatus sets the "assessment_status" field if the given value is not nil.
func (_c *UserCreate) SetNillableAssessmentStatus(v *string) *UserCreate {
	if v != nil {
		_c.SetAssessmentStatus(*v)
	}
	return _c
}

// SetAssessmentBaseline sets the "assessment_baseline" field.
func (_c *UserCreate) SetAssessmentBaseline(v map[string]model.ChapterState) *UserCreate {
	_c.mutation.SetAssessmentBaseline(v)
	return _c
}

// SetAssessmentCompletedAt sets the "assessment_completed_at" field.
func (_c *UserCreate) SetAssessmentCompletedAt(v time.Time) *UserCreate {
	_c.mutation.SetAssessmentCompletedAt(v)
	return _c
}

// SetNillableAssessmentCompletedAt sets the "assessment_completed_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableAssessmentCompletedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetAssessmentCompletedAt(*v)
	}
	return _c
}

// SetLowAccuracyStreak sets the "low_accuracy_streak" field.
func (_c *UserCreate) SetLowAccuracyStreak(v int) *UserCreate {
	_c.mutation.SetLowAccuracyStreak(v)
	return _c
}

// SetNillableLowAccuracyStreak sets the "low_accuracy_streak" field if the given value is not nil.
func (_c *UserCreate) SetNillableLowAccuracyStreak(v *int) *UserCreate {
	if v != nil {
		_c.SetLowAccuracyStreak(*v)
	}
	return _c
}

// SetRecoveryCooldown sets the "recovery_cooldown" field.
func (_c *UserCreate) SetRecoveryCooldown(v int) *UserCreate {
	_c.mutation.SetRecoveryCooldown(v)
	return _c
}

// SetNillableRecoveryCooldown sets the "recovery_cooldown" field if the given value is not nil.
func (_c *UserCreate) SetNillableRecoveryCooldown(v *int) *UserCreate {
	if v != nil {
		_c.SetRecoveryCooldown(*v)
	}
	return _c
}

// SetChapterPracticeStats sets the "chapter_practice_stats" field.
func (_c *UserCreate) SetChapterPracticeStats(v map[string]model.Tally) *UserCreate {
	_c.mutation.SetChapterPracticeStats(v)
	return _c
}

// SetSubscription sets the "subscription" field.
func (_c *UserCreate) SetSubscription(v *model.Subscription) *UserCreate {
	_c.mutation.SetSubscription(v)
	return _c
}

// SetTrial sets the "trial" field.
func (_c *UserCreate) SetTrial(v *model.Trial) *UserCreate {
	_c.mutation.SetTrial(v)
	return _c
}

// SetTierOverride sets the "tier_override" field.
func (_c *UserCreate) SetTierOverride(v string) *UserCreate {
	_c.mutation.SetTierOverride(v)
	return _c
}

// SetNillableTierOverride sets the "tier_override" field if the given value is not nil.
func (_c *UserCreate) SetNillableTierOverride(v *string) *UserCreate {
	if v != nil {
		_c.SetTierOverride(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.OverallTheta(); !ok {
		v := user.DefaultOverallTheta
		_c.mutation.SetOverallTheta(v)
	}
	if _, ok := _c.mutation.OverallPercentile(); !ok {
		v := user.DefaultOverallPercentile
		_c.mutation.SetOverallPercentile(v)
	}
	if _, ok := _c.mutation.TotalQuestionsAttempted(); !ok {
		v := user.DefaultTotalQuestionsAttempted
		_c.mutation.SetTotalQuestionsAttempted(v)
	}
	if _, ok := _c.mutation.TotalQuestionsCorrect(); !ok {
		v := user.DefaultTotalQuestionsCorrect
		_c.mutation.SetTotalQuestionsCorrect(v)
	}
	if _, ok := _c.mutation.TotalTimeSpentMinutes(); !ok {
		v := user.DefaultTotalTimeSpentMinutes
		_c.mutation.SetTotalTimeSpentMinutes(v)
	}
	if _, ok := _c.mutation.CompletedQuizCount(); !ok {
		v := user.DefaultCompletedQuizCount
		_c.mutation.SetCompletedQuizCount(v)
	}
	if _, ok := _c.mutation.LearningPhase(); !ok {
		v := user.DefaultLearningPhase
		_c.mutation.SetLearningPhase(v)
	}
	if _, ok := _c.mutation.CurrentDay(); !ok {
		v := user.DefaultCurrentDay
		_c.mutation.SetCurrentDay(v)
	}
	if _, ok := _c.mutation.AssessmentStatus(); !ok {
		v := user.DefaultAssessmentStatus
		_c.mutation.SetAssessmentStatus(v)
	}
	if _, ok := _c.mutation.LowAccuracyStreak(); !ok {
		v := user.DefaultLowAccuracyStreak
		_c.mutation.SetLowAccuracyStreak(v)
	}
	if _, ok := _c.mutation.RecoveryCooldown(); !ok {
		v := user.DefaultRecoveryCooldown
		_c.mutation.SetRecoveryCooldown(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.OverallTheta(); !ok {
		return &ValidationError{Name: "overall_theta", err: errors.New(`ent: missing required field "User.overall_theta"`)}
	}
	if _, ok := _c.mutation.OverallPercentile(); !ok {
		return &ValidationError{Name: "overall_percentile", err: errors.New(`ent: missing required field "User.overall_percentile"`)}
	}
	if _, ok := _c.mutation.TotalQuestionsAttempted(); !ok {
		return &ValidationError{Name: "total_questions_attempted", err: errors.New(`ent: missing required field "User.total_questions_attempted"`)}
	}
	if _, ok := _c.mutation.TotalQuestionsCorrect(); !ok {
		return &ValidationError{Name: "total_questions_correct", err: errors.New(`ent: missing required field "User.total_questions_correct"`)}
	}
	if _, ok := _c.mutation.TotalTimeSpentMinutes(); !ok {
		return &ValidationError{Name: "total_time_spent_minutes", err: errors.New(`ent: missing required field "User.total_time_spent_minutes"`)}
	}
	if _, ok := _c.mutation.CompletedQuizCount(); !ok {
		return &ValidationError{Name: "completed_quiz_count", err: errors.New(`ent: missing required field "User.completed_quiz_count"`)}
	}
	if _, ok := _c.mutation.LearningPhase(); !ok {
		return &ValidationError{Name: "learning_phase", err: errors.New(`ent: missing required field "User.learning_phase"`)}
	}
	if _, ok := _c.mutation.CurrentDay(); !ok {
		return &ValidationError{Name: "current_day", err: errors.New(`ent: missing required field "User.current_day"`)}
	}
	if _, ok := _c.mutation.AssessmentStatus(); !ok {
		return &ValidationError{Name: "assessment_status", err: errors.New(`ent: missing required field "User.assessment_status"`)}
	}
	if _, ok := _c.mutation.LowAccuracyStreak(); !ok {
		return &ValidationError{Name: "low_accuracy_streak", err: errors.New(`ent: missing required field "User.low_accuracy_streak"`)}
	}
	if _, ok := _c.mutation.RecoveryCooldown(); !ok {
		return &ValidationError{Name: "recovery_cooldown", err: errors.New(`ent: missing required field "User.recovery_cooldown"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := user.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "User.id": %w`, err)}
		}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OverallTheta(); ok {
		_spec.SetField(user.FieldOverallTheta, field.TypeFloat64, value)
		_node.OverallTheta = value
	}
	if value, ok := _c.mutation.OverallPercentile(); ok {
		_spec.SetField(user.FieldOverallPercentile, field.TypeInt, value)
		_node.OverallPercentile = value
	}
	if value, ok := _c.mutation.ThetaBySubject(); ok {
		_spec.SetField(user.FieldThetaBySubject, field.TypeJSON, value)
		_node.ThetaBySubject = value
	}
	if value, ok := _c.mutation.ThetaByChapter(); ok {
		_spec.SetField(user.FieldThetaByChapter, field.TypeJSON, value)
		_node.ThetaByChapter = value
	}
	if value, ok := _c.mutation.SubtopicAccuracy(); ok {
		_spec.SetField(user.FieldSubtopicAccuracy, field.TypeJSON, value)
		_node.SubtopicAccuracy = value
	}
	if value, ok := _c.mutation.SubjectAccuracy(); ok {
		_spec.SetField(user.FieldSubjectAccuracy, field.TypeJSON, value)
		_node.SubjectAccuracy = value
	}
	if value, ok := _c.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(user.FieldTotalQuestionsAttempted, field.TypeInt, value)
		_node.TotalQuestionsAttempted = value
	}
	if value, ok := _c.mutation.TotalQuestionsCorrect(); ok {
		_spec.SetField(user.FieldTotalQuestionsCorrect, field.TypeInt, value)
		_node.TotalQuestionsCorrect = value
	}
	if value, ok := _c.mutation.TotalTimeSpentMinutes(); ok {
		_spec.SetField(user.FieldTotalTimeSpentMinutes, field.TypeFloat64, value)
		_node.TotalTimeSpentMinutes = value
	}
	if value, ok := _c.mutation.CompletedQuizCount(); ok {
		_spec.SetField(user.FieldCompletedQuizCount, field.TypeInt, value)
		_node.CompletedQuizCount = value
	}
	if value, ok := _c.mutation.LearningPhase(); ok {
		_spec.SetField(user.FieldLearningPhase, field.TypeString, value)
		_node.LearningPhase = value
	}
	if value, ok := _c.mutation.CurrentDay(); ok {
		_spec.SetField(user.FieldCurrentDay, field.TypeInt, value)
		_node.CurrentDay = value
	}
	if value, ok := _c.mutation.AssessmentStatus(); ok {
		_spec.SetField(user.FieldAssessmentStatus, field.TypeString, value)
		_node.AssessmentStatus = value
	}
	if value, ok := _c.mutation.AssessmentBaseline(); ok {
		_spec.SetField(user.FieldAssessmentBaseline, field.TypeJSON, value)
		_node.AssessmentBaseline = value
	}
	if value, ok := _c.mutation.AssessmentCompletedAt(); ok {
		_spec.SetField(user.FieldAssessmentCompletedAt, field.TypeTime, value)
		_node.AssessmentCompletedAt = &value
	}
	if value, ok := _c.mutation.LowAccuracyStreak(); ok {
		_spec.SetField(user.FieldLowAccuracyStreak, field.TypeInt, value)
		_node.LowAccuracyStreak = value
	}
	if value, ok := _c.mutation.RecoveryCooldown(); ok {
		_spec.SetField(user.FieldRecoveryCooldown, field.TypeInt, value)
		_node.RecoveryCooldown = value
	}
	if value, ok := _c.mutation.ChapterPracticeStats(); ok {
		_spec.SetField(user.FieldChapterPracticeStats, field.TypeJSON, value)
		_node.ChapterPracticeStats = value
	}
	if value, ok := _c.mutation.Subscription(); ok {
		_spec.SetField(user.FieldSubscription, field.TypeJSON, value)
		_node.Subscription = value
	}
	if value, ok := _c.mutation.Trial(); ok {
		_spec.SetField(user.FieldTrial, field.TypeJSON, value)
		_node.Trial = value
	}
	if value, ok := _c.mutation.TierOverride(); ok {
		_spec.SetField(user.FieldTierOverride, field.TypeString, value)
		_node.TierOverride = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
