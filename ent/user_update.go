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
	"github.com/jeevibe/engine/ent/user"
	"github.com/jeevibe/engine/internal/model"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverallTheta sets the "overall_theta" field.
func (_u *UserUpdate) SetOverallTheta(v float64) *UserUpdate {
	_u.mutation.ResetOverallTheta()
	_u.mutation.SetOverallTheta(v)
	return _u
}

// SetNillableOverallTheta sets the "overall_theta" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOverallTheta(v *float64) *UserUpdate {
	if v != nil {
		_u.SetOverallTheta(*v)
	}
	return _u
}

// AddOverallTheta adds value to the "overall_theta" field.
func (_u *UserUpdate) AddOverallTheta(v float64) *UserUpdate {
	_u.mutation.AddOverallTheta(v)
	return _u
}

// SetOverallPercentile sets the "overall_percentile" field.
func (_u *UserUpdate) SetOverallPercentile(v int) *UserUpdate {
	_u.mutation.ResetOverallPercentile()
	_u.mutation.SetOverallPercentile(v)
	return _u
}

// SetNillableOverallPercentile sets the "overall_percentile" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOverallPercentile(v *int) *UserUpdate {
	if v != nil {
		_u.SetOverallPercentile(*v)
	}
	return _u
}

// AddOverallPercentile adds value to the "overall_percentile" field.
func (_u *UserUpdate) AddOverallPercentile(v int) *UserUpdate {
	_u.mutation.AddOverallPercentile(v)
	return _u
}

// SetThetaBySubject sets the "theta_by_subject" field.
func (_u *UserUpdate) SetThetaBySubject(v map[string]model.SubjectState) *UserUpdate {
	_u.mutation.SetThetaBySubject(v)
	return _u
}

// ClearThetaBySubject clears the value of the "theta_by_subject" field.
func (_u *UserUpdate) ClearThetaBySubject() *UserUpdate {
	_u.mutation.ClearThetaBySubject()
	return _u
}

// SetThetaByChapter sets the "theta_by_chapter" field.
func (_u *UserUpdate) SetThetaByChapter(v map[string]model.ChapterState) *UserUpdate {
	_u.mutation.SetThetaByChapter(v)
	return _u
}

// ClearThetaByChapter clears the value of the "theta_by_chapter" field.
func (_u *UserUpdate) ClearThetaByChapter() *UserUpdate {
	_u.mutation.ClearThetaByChapter()
	return _u
}

// SetSubtopicAccuracy sets the "subtopic_accuracy" field.
func (_u *UserUpdate) SetSubtopicAccuracy(v map[string]map[string]model.Tally) *UserUpdate {
	_u.mutation.SetSubtopicAccuracy(v)
	return _u
}

// ClearSubtopicAccuracy clears the value of the "subtopic_accuracy" field.
func (_u *UserUpdate) ClearSubtopicAccuracy() *UserUpdate {
	_u.mutation.ClearSubtopicAccuracy()
	return _u
}

// SetSubjectAccuracy sets the "subject_accuracy" field.
func (_u *UserUpdate) SetSubjectAccuracy(v map[string]model.Tally) *UserUpdate {
	_u.mutation.SetSubjectAccuracy(v)
	return _u
}

// ClearSubjectAccuracy clears the value of the "subject_accuracy" field.
func (_u *UserUpdate) ClearSubjectAccuracy() *UserUpdate {
	_u.mutation.ClearSubjectAccuracy()
	return _u
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_u *UserUpdate) SetTotalQuestionsAttempted(v int) *UserUpdate {
	_u.mutation.ResetTotalQuestionsAttempted()
	_u.mutation.SetTotalQuestionsAttempted(v)
	return _u
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalQuestionsAttempted(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalQuestionsAttempted(*v)
	}
	return _u
}

// AddTotalQuestionsAttempted adds value to the "total_questions_attempted" field.
func (_u *UserUpdate) AddTotalQuestionsAttempted(v int) *UserUpdate {
	_u.mutation.AddTotalQuestionsAttempted(v)
	return _u
}

// SetTotalQuestionsCorrect sets the "total_questions_correct" field.
func (_u *UserUpdate) SetTotalQuestionsCorrect(v int) *UserUpdate {
	_u.mutation.ResetTotalQuestionsCorrect()
	_u.mutation.SetTotalQuestionsCorrect(v)
	return _u
}

// SetNillableTotalQuestionsCorrect sets the "total_questions_correct" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalQuestionsCorrect(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalQuestionsCorrect(*v)
	}
	return _u
}

// AddTotalQuestionsCorrect adds value to the "total_questions_correct" field.
func (_u *UserUpdate) AddTotalQuestionsCorrect(v int) *UserUpdate {
	_u.mutation.AddTotalQuestionsCorrect(v)
	return _u
}

// SetTotalTimeSpentMinutes sets the "total_time_spent_minutes" field.
func (_u *UserUpdate) SetTotalTimeSpentMinutes(v float64) *UserUpdate {
	_u.mutation.ResetTotalTimeSpentMinutes()
	_u.mutation.SetTotalTimeSpentMinutes(v)
	return _u
}

// SetNillableTotalTimeSpentMinutes sets the "total_time_spent_minutes" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalTimeSpentMinutes(v *float64) *UserUpdate {
	if v != nil {
		_u.SetTotalTimeSpentMinutes(*v)
	}
	return _u
}

// AddTotalTimeSpentMinutes adds value to the "total_time_spent_minutes" field.
func (_u *UserUpdate) AddTotalTimeSpentMinutes(v float64) *UserUpdate {
	_u.mutation.AddTotalTimeSpentMinutes(v)
	return _u
}

// SetCompletedQuizCount sets the "completed_quiz_count" field.
func (_u *UserUpdate) SetCompletedQuizCount(v int) *UserUpdate {
	_u.mutation.ResetCompletedQuizCount()
	_u.mutation.SetCompletedQuizCount(v)
	return _u
}

// SetNillableCompletedQuizCount sets the "completed_quiz_count" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCompletedQuizCount(v *int) *UserUpdate {
	if v != nil {
		_u.SetCompletedQuizCount(*v)
	}
	return _u
}

// AddCompletedQuizCount adds value to the "completed_quiz_count" field.
func (_u *UserUpdate) AddCompletedQuizCount(v int) *UserUpdate {
	_u.mutation.AddCompletedQuizCount(v)
	return _u
}

// SetLearningPhase sets the "learning_phase" field.
func (_u *UserUpdate) SetLearningPhase(v string) *UserUpdate {
	_u.mutation.SetLearningPhase(v)
	return _u
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLearningPhase(v *string) *UserUpdate {
	if v != nil {
		_u.SetLearningPhase(*v)
	}
	return _u
}

// SetCurrentDay sets the "current_day" field.
func (_u *UserUpdate) SetCurrentDay(v int) *UserUpdate {
	_u.mutation.ResetCurrentDay()
	_u.mutation.SetCurrentDay(v)
	return _u
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCurrentDay(v *int) *UserUpdate {
	if v != nil {
		_u.SetCurrentDay(*v)
	}
	return _u
}

// AddCurrentDay adds value to the "current_day" field.
func (_u *UserUpdate) AddCurrentDay(v int) *UserUpdate {
	_u.mutation.AddCurrentDay(v)
	return _u
}

// SetAssessmentStatus sets the "assessment_status" field.
func (_u *UserUpdate) SetAssessmentStatus(v string) *UserUpdate {
	_u.mutation.SetAssessmentStatus(v)
	return _u
}

// SetNillableAssessmentStatus sets the "assessment_status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAssessmentStatus(v *string) *UserUpdate {
	if v != nil {
		_u.SetAssessmentStatus(*v)
	}
	return _u
}

// SetAssessmentBaseline sets the "assessment_baseline" field.
func (_u *UserUpdate) SetAssessmentBaseline(v map[string]model.ChapterState) *UserUpdate {
	_u.mutation.SetAssessmentBaseline(v)
	return _u
}

// ClearAssessmentBaseline clears the value of the "assessment_baseline" field.
func (_u *UserUpdate) ClearAssessmentBaseline() *UserUpdate {
	_u.mutation.ClearAssessmentBaseline()
	return _u
}

// SetAssessmentCompletedAt sets the "assessment_completed_at" field.
func (_u *UserUpdate) SetAssessmentCompletedAt(v time.Time) *UserUpdate {
	_u.mutation.SetAssessmentCompletedAt(v)
	return _u
}

// SetNillableAssessmentCompletedAt sets the "assessment_completed_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAssessmentCompletedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetAssessmentCompletedAt(*v)
	}
	return _u
}

// ClearAssessmentCompletedAt clears the value of the "assessment_completed_at" field.
func (_u *UserUpdate) ClearAssessmentCompletedAt() *UserUpdate {
	_u.mutation.ClearAssessmentCompletedAt()
	return _u
}

// SetLowAccuracyStreak sets the "low_accuracy_streak" field.
func (_u *UserUpdate) SetLowAccuracyStreak(v int) *UserUpdate {
	_u.mutation.ResetLowAccuracyStreak()
	_u.mutation.SetLowAccuracyStreak(v)
	return _u
}

// SetNillableLowAccuracyStreak sets the "low_accuracy_streak" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLowAccuracyStreak(v *int) *UserUpdate {
	if v != nil {
		_u.SetLowAccuracyStreak(*v)
	}
	return _u
}

// AddLowAccuracyStreak adds value to the "low_accuracy_streak" field.
func (_u *UserUpdate) AddLowAccuracyStreak(v int) *UserUpdate {
	_u.mutation.AddLowAccuracyStreak(v)
	return _u
}

// SetRecoveryCooldown sets the "recovery_cooldown" field.
func (_u *UserUpdate) SetRecoveryCooldown(v int) *UserUpdate {
	_u.mutation.ResetRecoveryCooldown()
	_u.mutation.SetRecoveryCooldown(v)
	return _u
}

// SetNillableRecoveryCooldown sets the "recovery_cooldown" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRecoveryCooldown(v *int) *UserUpdate {
	if v != nil {
		_u.SetRecoveryCooldown(*v)
	}
	return _u
}

// AddRecoveryCooldown adds value to the "recovery_cooldown" field.
func (_u *UserUpdate) AddRecoveryCooldown(v int) *UserUpdate {
	_u.mutation.AddRecoveryCooldown(v)
	return _u
}

// SetChapterPracticeStats sets the "chapter_practice_stats" field.
func (_u *UserUpdate) SetChapterPracticeStats(v map[string]model.Tally) *UserUpdate {
	_u.mutation.SetChapterPracticeStats(v)
	return _u
}

// ClearChapterPracticeStats clears the value of the "chapter_practice_stats" field.
func (_u *UserUpdate) ClearChapterPracticeStats() *UserUpdate {
	_u.mutation.ClearChapterPracticeStats()
	return _u
}

// SetSubscription sets the "subscription" field.
func (_u *UserUpdate) SetSubscription(v *model.Subscription) *UserUpdate {
	_u.mutation.SetSubscription(v)
	return _u
}

// ClearSubscription clears the value of the "subscription" field.
func (_u *UserUpdate) ClearSubscription() *UserUpdate {
	_u.mutation.ClearSubscription()
	return _u
}

// SetTrial sets the "trial" field.
func (_u *UserUpdate) SetTrial(v *model.Trial) *UserUpdate {
	_u.mutation.SetTrial(v)
	return _u
}

// ClearTrial clears the value of the "trial" field.
func (_u *UserUpdate) ClearTrial() *UserUpdate {
	_u.mutation.ClearTrial()
	return _u
}

// SetTierOverride sets the "tier_override" field.
func (_u *UserUpdate) SetTierOverride(v string) *UserUpdate {
	_u.mutation.SetTierOverride(v)
	return _u
}

// SetNillableTierOverride sets the "tier_override" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTierOverride(v *string) *UserUpdate {
	if v != nil {
		_u.SetTierOverride(*v)
	}
	return _u
}

// ClearTierOverride clears the value of the "tier_override" field.
func (_u *UserUpdate) ClearTierOverride() *UserUpdate {
	_u.mutation.ClearTierOverride()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallTheta(); ok {
		_spec.SetField(user.FieldOverallTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallTheta(); ok {
		_spec.AddField(user.FieldOverallTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallPercentile(); ok {
		_spec.SetField(user.FieldOverallPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallPercentile(); ok {
		_spec.AddField(user.FieldOverallPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThetaBySubject(); ok {
		_spec.SetField(user.FieldThetaBySubject, field.TypeJSON, value)
	}
	if _u.mutation.ThetaBySubjectCleared() {
		_spec.ClearField(user.FieldThetaBySubject, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThetaByChapter(); ok {
		_spec.SetField(user.FieldThetaByChapter, field.TypeJSON, value)
	}
	if _u.mutation.ThetaByChapterCleared() {
		_spec.ClearField(user.FieldThetaByChapter, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubtopicAccuracy(); ok {
		_spec.SetField(user.FieldSubtopicAccuracy, field.TypeJSON, value)
	}
	if _u.mutation.SubtopicAccuracyCleared() {
		_spec.ClearField(user.FieldSubtopicAccuracy, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectAccuracy(); ok {
		_spec.SetField(user.FieldSubjectAccuracy, field.TypeJSON, value)
	}
	if _u.mutation.SubjectAccuracyCleared() {
		_spec.ClearField(user.FieldSubjectAccuracy, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(user.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAttempted(); ok {
		_spec.AddField(user.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestionsCorrect(); ok {
		_spec.SetField(user.FieldTotalQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsCorrect(); ok {
		_spec.AddField(user.FieldTotalQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSpentMinutes(); ok {
		_spec.SetField(user.FieldTotalTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSpentMinutes(); ok {
		_spec.AddField(user.FieldTotalTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedQuizCount(); ok {
		_spec.SetField(user.FieldCompletedQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedQuizCount(); ok {
		_spec.AddField(user.FieldCompletedQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningPhase(); ok {
		_spec.SetField(user.FieldLearningPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentDay(); ok {
		_spec.SetField(user.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDay(); ok {
		_spec.AddField(user.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssessmentStatus(); ok {
		_spec.SetField(user.FieldAssessmentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentBaseline(); ok {
		_spec.SetField(user.FieldAssessmentBaseline, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentBaselineCleared() {
		_spec.ClearField(user.FieldAssessmentBaseline, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentCompletedAt(); ok {
		_spec.SetField(user.FieldAssessmentCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessmentCompletedAtCleared() {
		_spec.ClearField(user.FieldAssessmentCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LowAccuracyStreak(); ok {
		_spec.SetField(user.FieldLowAccuracyStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowAccuracyStreak(); ok {
		_spec.AddField(user.FieldLowAccuracyStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryCooldown(); ok {
		_spec.SetField(user.FieldRecoveryCooldown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryCooldown(); ok {
		_spec.AddField(user.FieldRecoveryCooldown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterPracticeStats(); ok {
		_spec.SetField(user.FieldChapterPracticeStats, field.TypeJSON, value)
	}
	if _u.mutation.ChapterPracticeStatsCleared() {
		_spec.ClearField(user.FieldChapterPracticeStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subscription(); ok {
		_spec.SetField(user.FieldSubscription, field.TypeJSON, value)
	}
	if _u.mutation.SubscriptionCleared() {
		_spec.ClearField(user.FieldSubscription, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trial(); ok {
		_spec.SetField(user.FieldTrial, field.TypeJSON, value)
	}
	if _u.mutation.TrialCleared() {
		_spec.ClearField(user.FieldTrial, field.TypeJSON)
	}
	if value, ok := _u.mutation.TierOverride(); ok {
		_spec.SetField(user.FieldTierOverride, field.TypeString, value)
	}
	if _u.mutation.TierOverrideCleared() {
		_spec.ClearField(user.FieldTierOverride, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetOverallTheta sets the "overall_theta" field.
func (_u *UserUpdateOne) SetOverallTheta(v float64) *UserUpdateOne {
	_u.mutation.ResetOverallTheta()
	_u.mutation.SetOverallTheta(v)
	return _u
}

// SetNillableOverallTheta sets the "overall_theta" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOverallTheta(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetOverallTheta(*v)
	}
	return _u
}

// AddOverallTheta adds value to the "overall_theta" field.
func (_u *UserUpdateOne) AddOverallTheta(v float64) *UserUpdateOne {
	_u.mutation.AddOverallTheta(v)
	return _u
}

// SetOverallPercentile sets the "overall_percentile" field.
func (_u *UserUpdateOne) SetOverallPercentile(v int) *UserUpdateOne {
	_u.mutation.ResetOverallPercentile()
	_u.mutation.SetOverallPercentile(v)
	return _u
}

// SetNillableOverallPercentile sets the "overall_percentile" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOverallPercentile(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetOverallPercentile(*v)
	}
	return _u
}

// AddOverallPercentile adds value to the "overall_percentile" field.
func (_u *UserUpdateOne) AddOverallPercentile(v int) *UserUpdateOne {
	_u.mutation.AddOverallPercentile(v)
	return _u
}

// SetThetaBySubject sets the "theta_by_subject" field.
func (_u *UserUpdateOne) SetThetaBySubject(v map[string]model.SubjectState) *UserUpdateOne {
	_u.mutation.SetThetaBySubject(v)
	return _u
}

// ClearThetaBySubject clears the value of the "theta_by_subject" field.
func (_u *UserUpdateOne) ClearThetaBySubject() *UserUpdateOne {
	_u.mutation.ClearThetaBySubject()
	return _u
}

// SetThetaByChapter sets the "theta_by_chapter" field.
func (_u *UserUpdateOne) SetThetaByChapter(v map[string]model.ChapterState) *UserUpdateOne {
	_u.mutation.SetThetaByChapter(v)
	return _u
}

// ClearThetaByChapter clears the value of the "theta_by_chapter" field.
func (_u *UserUpdateOne) ClearThetaByChapter() *UserUpdateOne {
	_u.mutation.ClearThetaByChapter()
	return _u
}

// SetSubtopicAccuracy sets the "subtopic_accuracy" field.
func (_u *UserUpdateOne) SetSubtopicAccuracy(v map[string]map[string]model.Tally) *UserUpdateOne {
	_u.mutation.SetSubtopicAccuracy(v)
	return _u
}

// ClearSubtopicAccuracy clears the value of the "subtopic_accuracy" field.
func (_u *UserUpdateOne) ClearSubtopicAccuracy() *UserUpdateOne {
	_u.mutation.ClearSubtopicAccuracy()
	return _u
}

// SetSubjectAccuracy sets the "subject_accuracy" field.
func (_u *UserUpdateOne) SetSubjectAccuracy(v map[string]model.Tally) *UserUpdateOne {
	_u.mutation.SetSubjectAccuracy(v)
	return _u
}

// ClearSubjectAccuracy clears the value of the "subject_accuracy" field.
func (_u *UserUpdateOne) ClearSubjectAccuracy() *UserUpdateOne {
	_u.mutation.ClearSubjectAccuracy()
	return _u
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (_u *UserUpdateOne) SetTotalQuestionsAttempted(v int) *UserUpdateOne {
	_u.mutation.ResetTotalQuestionsAttempted()
	_u.mutation.SetTotalQuestionsAttempted(v)
	return _u
}

// SetNillableTotalQuestionsAttempted sets the "total_questions_attempted" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalQuestionsAttempted(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalQuestionsAttempted(*v)
	}
	return _u
}

// AddTotalQuestionsAttempted adds value to the "total_questions_attempted" field.
func (_u *UserUpdateOne) AddTotalQuestionsAttempted(v int) *UserUpdateOne {
	_u.mutation.AddTotalQuestionsAttempted(v)
	return _u
}

// SetTotalQuestionsCorrect sets the "total_questions_correct" field.
func (_u *UserUpdateOne) SetTotalQuestionsCorrect(v int) *UserUpdateOne {
	_u.mutation.ResetTotalQuestionsCorrect()
	_u.mutation.SetTotalQuestionsCorrect(v)
	return _u
}

// SetNillableTotalQuestionsCorrect sets the "total_questions_correct" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalQuestionsCorrect(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalQuestionsCorrect(*v)
	}
	return _u
}

// AddTotalQuestionsCorrect adds value to the "total_questions_correct" field.
func (_u *UserUpdateOne) AddTotalQuestionsCorrect(v int) *UserUpdateOne {
	_u.mutation.AddTotalQuestionsCorrect(v)
	return _u
}

// SetTotalTimeSpentMinutes sets the "total_time_spent_minutes" field.
func (_u *UserUpdateOne) SetTotalTimeSpentMinutes(v float64) *UserUpdateOne {
	_u.mutation.ResetTotalTimeSpentMinutes()
	_u.mutation.SetTotalTimeSpentMinutes(v)
	return _u
}

// SetNillableTotalTimeSpentMinutes sets the "total_time_spent_minutes" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalTimeSpentMinutes(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetTotalTimeSpentMinutes(*v)
	}
	return _u
}

// AddTotalTimeSpentMinutes adds value to the "total_time_spent_minutes" field.
func (_u *UserUpdateOne) AddTotalTimeSpentMinutes(v float64) *UserUpdateOne {
	_u.mutation.AddTotalTimeSpentMinutes(v)
	return _u
}

// SetCompletedQuizCount sets the "completed_quiz_count" field.
func (_u *UserUpdateOne) SetCompletedQuizCount(v int) *UserUpdateOne {
	_u.mutation.ResetCompletedQuizCount()
	_u.mutation.SetCompletedQuizCount(v)
	return _u
}

// SetNillableCompletedQuizCount sets the "completed_quiz_count" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCompletedQuizCount(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCompletedQuizCount(*v)
	}
	return _u
}

// AddCompletedQuizCount adds value to the "completed_quiz_count" field.
func (_u *UserUpdateOne) AddCompletedQuizCount(v int) *UserUpdateOne {
	_u.mutation.AddCompletedQuizCount(v)
	return _u
}

// SetLearningPhase sets the "learning_phase" field.
func (_u *UserUpdateOne) SetLearningPhase(v string) *UserUpdateOne {
	_u.mutation.SetLearningPhase(v)
	return _u
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLearningPhase(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLearningPhase(*v)
	}
	return _u
}

// SetCurrentDay sets the "current_day" field.
func (_u *UserUpdateOne) SetCurrentDay(v int) *UserUpdateOne {
	_u.mutation.ResetCurrentDay()
	_u.mutation.SetCurrentDay(v)
	return _u
}

// SetNillableCurrentDay sets the "current_day" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCurrentDay(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetCurrentDay(*v)
	}
	return _u
}

// AddCurrentDay adds value to the "current_day" field.
func (_u *UserUpdateOne) AddCurrentDay(v int) *UserUpdateOne {
	_u.mutation.AddCurrentDay(v)
	return _u
}

// SetAssessmentStatus sets the "assessment_status" field.
func (_u *UserUpdateOne) SetAssessmentStatus(v string) *UserUpdateOne {
	_u.mutation.SetAssessmentStatus(v)
	return _u
}

// SetNillableAssessmentStatus sets the "assessment_status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAssessmentStatus(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetAssessmentStatus(*v)
	}
	return _u
}

// SetAssessmentBaseline sets the "assessment_baseline" field.
func (_u *UserUpdateOne) SetAssessmentBaseline(v map[string]model.ChapterState) *UserUpdateOne {
	_u.mutation.SetAssessmentBaseline(v)
	return _u
}

// ClearAssessmentBaseline clears the value of the "assessment_baseline" field.
func (_u *UserUpdateOne) ClearAssessmentBaseline() *UserUpdateOne {
	_u.mutation.ClearAssessmentBaseline()
	return _u
}

// SetAssessmentCompletedAt sets the "assessment_completed_at" field.
func (_u *UserUpdateOne) SetAssessmentCompletedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetAssessmentCompletedAt(v)
	return _u
}

// SetNillableAssessmentCompletedAt sets the "assessment_completed_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAssessmentCompletedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetAssessmentCompletedAt(*v)
	}
	return _u
}

// ClearAssessmentCompletedAt clears the value of the "assessment_completed_at" field.
func (_u *UserUpdateOne) ClearAssessmentCompletedAt() *UserUpdateOne {
	_u.mutation.ClearAssessmentCompletedAt()
	return _u
}

// SetLowAccuracyStreak sets the "low_accuracy_streak" field.
func (_u *UserUpdateOne) SetLowAccuracyStreak(v int) *UserUpdateOne {
	_u.mutation.ResetLowAccuracyStreak()
	_u.mutation.SetLowAccuracyStreak(v)
	return _u
}

// SetNillableLowAccuracyStreak sets the "low_accuracy_streak" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLowAccuracyStreak(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetLowAccuracyStreak(*v)
	}
	return _u
}

// AddLowAccuracyStreak adds value to the "low_accuracy_streak" field.
func (_u *UserUpdateOne) AddLowAccuracyStreak(v int) *UserUpdateOne {
	_u.mutation.AddLowAccuracyStreak(v)
	return _u
}

// SetRecoveryCooldown sets the "recovery_cooldown" field.
func (_u *UserUpdateOne) SetRecoveryCooldown(v int) *UserUpdateOne {
	_u.mutation.ResetRecoveryCooldown()
	_u.mutation.SetRecoveryCooldown(v)
	return _u
}

// SetNillableRecoveryCooldown sets the "recovery_cooldown" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRecoveryCooldown(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetRecoveryCooldown(*v)
	}
	return _u
}

// AddRecoveryCooldown adds value to the "recovery_cooldown" field.
func (_u *UserUpdateOne) AddRecoveryCooldown(v int) *UserUpdateOne {
	_u.mutation.AddRecoveryCooldown(v)
	return _u
}

// SetChapterPracticeStats sets the "chapter_practice_stats" field.
func (_u *UserUpdateOne) SetChapterPracticeStats(v map[string]model.Tally) *UserUpdateOne {
	_u.mutation.SetChapterPracticeStats(v)
	return _u
}

// ClearChapterPracticeStats clears the value of the "chapter_practice_stats" field.
func (_u *UserUpdateOne) ClearChapterPracticeStats() *UserUpdateOne {
	_u.mutation.ClearChapterPracticeStats()
	return _u
}

// SetSubscription sets the "subscription" field.
func (_u *UserUpdateOne) SetSubscription(v *model.Subscription) *UserUpdateOne {
	_u.mutation.SetSubscription(v)
	return _u
}

// ClearSubscription clears the value of the "subscription" field.
func (_u *UserUpdateOne) ClearSubscription() *UserUpdateOne {
	_u.mutation.ClearSubscription()
	return _u
}

// SetTrial sets the "trial" field.
func (_u *UserUpdateOne) SetTrial(v *model.Trial) *UserUpdateOne {
	_u.mutation.SetTrial(v)
	return _u
}

// ClearTrial clears the value of the "trial" field.
func (_u *UserUpdateOne) ClearTrial() *UserUpdateOne {
	_u.mutation.ClearTrial()
	return _u
}

// SetTierOverride sets the "tier_override" field.
func (_u *UserUpdateOne) SetTierOverride(v string) *UserUpdateOne {
	_u.mutation.SetTierOverride(v)
	return _u
}

// SetNillableTierOverride sets the "tier_override" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTierOverride(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetTierOverride(*v)
	}
	return _u
}

// ClearTierOverride clears the value of the "tier_override" field.
func (_u *UserUpdateOne) ClearTierOverride() *UserUpdateOne {
	_u.mutation.ClearTierOverride()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.OverallTheta(); ok {
		_spec.SetField(user.FieldOverallTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallTheta(); ok {
		_spec.AddField(user.FieldOverallTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OverallPercentile(); ok {
		_spec.SetField(user.FieldOverallPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallPercentile(); ok {
		_spec.AddField(user.FieldOverallPercentile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThetaBySubject(); ok {
		_spec.SetField(user.FieldThetaBySubject, field.TypeJSON, value)
	}
	if _u.mutation.ThetaBySubjectCleared() {
		_spec.ClearField(user.FieldThetaBySubject, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThetaByChapter(); ok {
		_spec.SetField(user.FieldThetaByChapter, field.TypeJSON, value)
	}
	if _u.mutation.ThetaByChapterCleared() {
		_spec.ClearField(user.FieldThetaByChapter, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubtopicAccuracy(); ok {
		_spec.SetField(user.FieldSubtopicAccuracy, field.TypeJSON, value)
	}
	if _u.mutation.SubtopicAccuracyCleared() {
		_spec.ClearField(user.FieldSubtopicAccuracy, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectAccuracy(); ok {
		_spec.SetField(user.FieldSubjectAccuracy, field.TypeJSON, value)
	}
	if _u.mutation.SubjectAccuracyCleared() {
		_spec.ClearField(user.FieldSubjectAccuracy, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalQuestionsAttempted(); ok {
		_spec.SetField(user.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAttempted(); ok {
		_spec.AddField(user.FieldTotalQuestionsAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestionsCorrect(); ok {
		_spec.SetField(user.FieldTotalQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsCorrect(); ok {
		_spec.AddField(user.FieldTotalQuestionsCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSpentMinutes(); ok {
		_spec.SetField(user.FieldTotalTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSpentMinutes(); ok {
		_spec.AddField(user.FieldTotalTimeSpentMinutes, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletedQuizCount(); ok {
		_spec.SetField(user.FieldCompletedQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedQuizCount(); ok {
		_spec.AddField(user.FieldCompletedQuizCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningPhase(); ok {
		_spec.SetField(user.FieldLearningPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentDay(); ok {
		_spec.SetField(user.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentDay(); ok {
		_spec.AddField(user.FieldCurrentDay, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssessmentStatus(); ok {
		_spec.SetField(user.FieldAssessmentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessmentBaseline(); ok {
		_spec.SetField(user.FieldAssessmentBaseline, field.TypeJSON, value)
	}
	if _u.mutation.AssessmentBaselineCleared() {
		_spec.ClearField(user.FieldAssessmentBaseline, field.TypeJSON)
	}
	if value, ok := _u.mutation.AssessmentCompletedAt(); ok {
		_spec.SetField(user.FieldAssessmentCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.AssessmentCompletedAtCleared() {
		_spec.ClearField(user.FieldAssessmentCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LowAccuracyStreak(); ok {
		_spec.SetField(user.FieldLowAccuracyStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLowAccuracyStreak(); ok {
		_spec.AddField(user.FieldLowAccuracyStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryCooldown(); ok {
		_spec.SetField(user.FieldRecoveryCooldown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryCooldown(); ok {
		_spec.AddField(user.FieldRecoveryCooldown, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterPracticeStats(); ok {
		_spec.SetField(user.FieldChapterPracticeStats, field.TypeJSON, value)
	}
	if _u.mutation.ChapterPracticeStatsCleared() {
		_spec.ClearField(user.FieldChapterPracticeStats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Subscription(); ok {
		_spec.SetField(user.FieldSubscription, field.TypeJSON, value)
	}
	if _u.mutation.SubscriptionCleared() {
		_spec.ClearField(user.FieldSubscription, field.TypeJSON)
	}
	if value, ok := _u.mutation.Trial(); ok {
		_spec.SetField(user.FieldTrial, field.TypeJSON, value)
	}
	if _u.mutation.TrialCleared() {
		_spec.ClearField(user.FieldTrial, field.TypeJSON)
	}
	if value, ok := _u.mutation.TierOverride(); ok {
		_spec.SetField(user.FieldTierOverride, field.TypeString, value)
	}
	if _u.mutation.TierOverrideCleared() {
		_spec.ClearField(user.FieldTierOverride, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
