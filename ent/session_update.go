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
	"github.com/jeevibe/engine/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdate) SetUserID(v string) *SessionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUserID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionUpdate) SetKind(v string) *SessionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableKind(v *string) *SessionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v string) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *string) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *SessionUpdate) SetChapterKey(v string) *SessionUpdate {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableChapterKey(v *string) *SessionUpdate {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// ClearChapterKey clears the value of the "chapter_key" field.
func (_u *SessionUpdate) ClearChapterKey() *SessionUpdate {
	_u.mutation.ClearChapterKey()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *SessionUpdate) SetTemplateID(v string) *SessionUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTemplateID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *SessionUpdate) ClearTemplateID() *SessionUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetLearningPhase sets the "learning_phase" field.
func (_u *SessionUpdate) SetLearningPhase(v string) *SessionUpdate {
	_u.mutation.SetLearningPhase(v)
	return _u
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLearningPhase(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLearningPhase(*v)
	}
	return _u
}

// ClearLearningPhase clears the value of the "learning_phase" field.
func (_u *SessionUpdate) ClearLearningPhase() *SessionUpdate {
	_u.mutation.ClearLearningPhase()
	return _u
}

// SetIsRecoveryQuiz sets the "is_recovery_quiz" field.
func (_u *SessionUpdate) SetIsRecoveryQuiz(v bool) *SessionUpdate {
	_u.mutation.SetIsRecoveryQuiz(v)
	return _u
}

// SetNillableIsRecoveryQuiz sets the "is_recovery_quiz" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableIsRecoveryQuiz(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetIsRecoveryQuiz(*v)
	}
	return _u
}

// SetQuizNumber sets the "quiz_number" field.
func (_u *SessionUpdate) SetQuizNumber(v int) *SessionUpdate {
	_u.mutation.ResetQuizNumber()
	_u.mutation.SetQuizNumber(v)
	return _u
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableQuizNumber(v *int) *SessionUpdate {
	if v != nil {
		_u.SetQuizNumber(*v)
	}
	return _u
}

// AddQuizNumber adds value to the "quiz_number" field.
func (_u *SessionUpdate) AddQuizNumber(v int) *SessionUpdate {
	_u.mutation.AddQuizNumber(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *SessionUpdate) SetQuestionsTotal(v int) *SessionUpdate {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableQuestionsTotal(v *int) *SessionUpdate {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *SessionUpdate) AddQuestionsTotal(v int) *SessionUpdate {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *SessionUpdate) SetQuestionsAnswered(v int) *SessionUpdate {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableQuestionsAnswered(v *int) *SessionUpdate {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *SessionUpdate) AddQuestionsAnswered(v int) *SessionUpdate {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SessionUpdate) SetCorrectCount(v int) *SessionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCorrectCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SessionUpdate) AddCorrectCount(v int) *SessionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_u *SessionUpdate) SetTotalTimeSeconds(v int) *SessionUpdate {
	_u.mutation.ResetTotalTimeSeconds()
	_u.mutation.SetTotalTimeSeconds(v)
	return _u
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalTimeSeconds(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTotalTimeSeconds(*v)
	}
	return _u
}

// AddTotalTimeSeconds adds value to the "total_time_seconds" field.
func (_u *SessionUpdate) AddTotalTimeSeconds(v int) *SessionUpdate {
	_u.mutation.AddTotalTimeSeconds(v)
	return _u
}

// SetInvalidReason sets the "invalid_reason" field.
func (_u *SessionUpdate) SetInvalidReason(v string) *SessionUpdate {
	_u.mutation.SetInvalidReason(v)
	return _u
}

// SetNillableInvalidReason sets the "invalid_reason" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableInvalidReason(v *string) *SessionUpdate {
	if v != nil {
		_u.SetInvalidReason(*v)
	}
	return _u
}

// ClearInvalidReason clears the value of the "invalid_reason" field.
func (_u *SessionUpdate) ClearInvalidReason() *SessionUpdate {
	_u.mutation.ClearInvalidReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdate) SetExpiresAt(v time.Time) *SessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableExpiresAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SessionUpdate) ClearExpiresAt() *SessionUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(session.FieldChapterKey, field.TypeString, value)
	}
	if _u.mutation.ChapterKeyCleared() {
		_spec.ClearField(session.FieldChapterKey, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(session.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(session.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.LearningPhase(); ok {
		_spec.SetField(session.FieldLearningPhase, field.TypeString, value)
	}
	if _u.mutation.LearningPhaseCleared() {
		_spec.ClearField(session.FieldLearningPhase, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecoveryQuiz(); ok {
		_spec.SetField(session.FieldIsRecoveryQuiz, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizNumber(); ok {
		_spec.SetField(session.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizNumber(); ok {
		_spec.AddField(session.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(session.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(session.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(session.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(session.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(session.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(session.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(session.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(session.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvalidReason(); ok {
		_spec.SetField(session.FieldInvalidReason, field.TypeString, value)
	}
	if _u.mutation.InvalidReasonCleared() {
		_spec.ClearField(session.FieldInvalidReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(session.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionUpdateOne) SetUserID(v string) *SessionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUserID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *SessionUpdateOne) SetKind(v string) *SessionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableKind(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v string) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *SessionUpdateOne) SetChapterKey(v string) *SessionUpdateOne {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableChapterKey(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// ClearChapterKey clears the value of the "chapter_key" field.
func (_u *SessionUpdateOne) ClearChapterKey() *SessionUpdateOne {
	_u.mutation.ClearChapterKey()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *SessionUpdateOne) SetTemplateID(v string) *SessionUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTemplateID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *SessionUpdateOne) ClearTemplateID() *SessionUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetLearningPhase sets the "learning_phase" field.
func (_u *SessionUpdateOne) SetLearningPhase(v string) *SessionUpdateOne {
	_u.mutation.SetLearningPhase(v)
	return _u
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLearningPhase(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLearningPhase(*v)
	}
	return _u
}

// ClearLearningPhase clears the value of the "learning_phase" field.
func (_u *SessionUpdateOne) ClearLearningPhase() *SessionUpdateOne {
	_u.mutation.ClearLearningPhase()
	return _u
}

// SetIsRecoveryQuiz sets the "is_recovery_quiz" field.
func (_u *SessionUpdateOne) SetIsRecoveryQuiz(v bool) *SessionUpdateOne {
	_u.mutation.SetIsRecoveryQuiz(v)
	return _u
}

// SetNillableIsRecoveryQuiz sets the "is_recovery_quiz" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableIsRecoveryQuiz(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetIsRecoveryQuiz(*v)
	}
	return _u
}

// SetQuizNumber sets the "quiz_number" field.
func (_u *SessionUpdateOne) SetQuizNumber(v int) *SessionUpdateOne {
	_u.mutation.ResetQuizNumber()
	_u.mutation.SetQuizNumber(v)
	return _u
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableQuizNumber(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetQuizNumber(*v)
	}
	return _u
}

// AddQuizNumber adds value to the "quiz_number" field.
func (_u *SessionUpdateOne) AddQuizNumber(v int) *SessionUpdateOne {
	_u.mutation.AddQuizNumber(v)
	return _u
}

// SetQuestionsTotal sets the "questions_total" field.
func (_u *SessionUpdateOne) SetQuestionsTotal(v int) *SessionUpdateOne {
	_u.mutation.ResetQuestionsTotal()
	_u.mutation.SetQuestionsTotal(v)
	return _u
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableQuestionsTotal(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetQuestionsTotal(*v)
	}
	return _u
}

// AddQuestionsTotal adds value to the "questions_total" field.
func (_u *SessionUpdateOne) AddQuestionsTotal(v int) *SessionUpdateOne {
	_u.mutation.AddQuestionsTotal(v)
	return _u
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_u *SessionUpdateOne) SetQuestionsAnswered(v int) *SessionUpdateOne {
	_u.mutation.ResetQuestionsAnswered()
	_u.mutation.SetQuestionsAnswered(v)
	return _u
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableQuestionsAnswered(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetQuestionsAnswered(*v)
	}
	return _u
}

// AddQuestionsAnswered adds value to the "questions_answered" field.
func (_u *SessionUpdateOne) AddQuestionsAnswered(v int) *SessionUpdateOne {
	_u.mutation.AddQuestionsAnswered(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SessionUpdateOne) SetCorrectCount(v int) *SessionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCorrectCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SessionUpdateOne) AddCorrectCount(v int) *SessionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_u *SessionUpdateOne) SetTotalTimeSeconds(v int) *SessionUpdateOne {
	_u.mutation.ResetTotalTimeSeconds()
	_u.mutation.SetTotalTimeSeconds(v)
	return _u
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalTimeSeconds(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalTimeSeconds(*v)
	}
	return _u
}

// AddTotalTimeSeconds adds value to the "total_time_seconds" field.
func (_u *SessionUpdateOne) AddTotalTimeSeconds(v int) *SessionUpdateOne {
	_u.mutation.AddTotalTimeSeconds(v)
	return _u
}

// SetInvalidReason sets the "invalid_reason" field.
func (_u *SessionUpdateOne) SetInvalidReason(v string) *SessionUpdateOne {
	_u.mutation.SetInvalidReason(v)
	return _u
}

// SetNillableInvalidReason sets the "invalid_reason" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableInvalidReason(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetInvalidReason(*v)
	}
	return _u
}

// ClearInvalidReason clears the value of the "invalid_reason" field.
func (_u *SessionUpdateOne) ClearInvalidReason() *SessionUpdateOne {
	_u.mutation.ClearInvalidReason()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SessionUpdateOne) SetExpiresAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableExpiresAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *SessionUpdateOne) ClearExpiresAt() *SessionUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(session.FieldChapterKey, field.TypeString, value)
	}
	if _u.mutation.ChapterKeyCleared() {
		_spec.ClearField(session.FieldChapterKey, field.TypeString)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(session.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(session.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.LearningPhase(); ok {
		_spec.SetField(session.FieldLearningPhase, field.TypeString, value)
	}
	if _u.mutation.LearningPhaseCleared() {
		_spec.ClearField(session.FieldLearningPhase, field.TypeString)
	}
	if value, ok := _u.mutation.IsRecoveryQuiz(); ok {
		_spec.SetField(session.FieldIsRecoveryQuiz, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizNumber(); ok {
		_spec.SetField(session.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizNumber(); ok {
		_spec.AddField(session.FieldQuizNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsTotal(); ok {
		_spec.SetField(session.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsTotal(); ok {
		_spec.AddField(session.FieldQuestionsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionsAnswered(); ok {
		_spec.SetField(session.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsAnswered(); ok {
		_spec.AddField(session.FieldQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(session.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(session.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(session.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(session.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InvalidReason(); ok {
		_spec.SetField(session.FieldInvalidReason, field.TypeString, value)
	}
	if _u.mutation.InvalidReasonCleared() {
		_spec.ClearField(session.FieldInvalidReason, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(session.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
