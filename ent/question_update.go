// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/predicate"
	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/internal/model"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdate) SetSubject(v string) *QuestionUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSubject(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuestionUpdate) SetChapter(v string) *QuestionUpdate {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableChapter(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *QuestionUpdate) SetChapterKey(v string) *QuestionUpdate {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableChapterKey(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetSubTopics sets the "sub_topics" field.
func (_u *QuestionUpdate) SetSubTopics(v []string) *QuestionUpdate {
	_u.mutation.SetSubTopics(v)
	return _u
}

// AppendSubTopics appends value to the "sub_topics" field.
func (_u *QuestionUpdate) AppendSubTopics(v []string) *QuestionUpdate {
	_u.mutation.AppendSubTopics(v)
	return _u
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (_u *QuestionUpdate) ClearSubTopics() *QuestionUpdate {
	_u.mutation.ClearSubTopics()
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdate) SetQuestionType(v string) *QuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQuestionType(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []string) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdate) SetCorrectAnswer(v string) *QuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetAnswerValue sets the "answer_value" field.
func (_u *QuestionUpdate) SetAnswerValue(v float64) *QuestionUpdate {
	_u.mutation.ResetAnswerValue()
	_u.mutation.SetAnswerValue(v)
	return _u
}

// SetNillableAnswerValue sets the "answer_value" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAnswerValue(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetAnswerValue(*v)
	}
	return _u
}

// AddAnswerValue adds value to the "answer_value" field.
func (_u *QuestionUpdate) AddAnswerValue(v float64) *QuestionUpdate {
	_u.mutation.AddAnswerValue(v)
	return _u
}

// ClearAnswerValue clears the value of the "answer_value" field.
func (_u *QuestionUpdate) ClearAnswerValue() *QuestionUpdate {
	_u.mutation.ClearAnswerValue()
	return _u
}

// SetAnswerRange sets the "answer_range" field.
func (_u *QuestionUpdate) SetAnswerRange(v *model.AnswerRange) *QuestionUpdate {
	_u.mutation.SetAnswerRange(v)
	return _u
}

// ClearAnswerRange clears the value of the "answer_range" field.
func (_u *QuestionUpdate) ClearAnswerRange() *QuestionUpdate {
	_u.mutation.ClearAnswerRange()
	return _u
}

// SetIrtA sets the "irt_a" field.
func (_u *QuestionUpdate) SetIrtA(v float64) *QuestionUpdate {
	_u.mutation.ResetIrtA()
	_u.mutation.SetIrtA(v)
	return _u
}

// SetNillableIrtA sets the "irt_a" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIrtA(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetIrtA(*v)
	}
	return _u
}

// AddIrtA adds value to the "irt_a" field.
func (_u *QuestionUpdate) AddIrtA(v float64) *QuestionUpdate {
	_u.mutation.AddIrtA(v)
	return _u
}

// SetIrtB sets the "irt_b" field.
func (_u *QuestionUpdate) SetIrtB(v float64) *QuestionUpdate {
	_u.mutation.ResetIrtB()
	_u.mutation.SetIrtB(v)
	return _u
}

// SetNillableIrtB sets the "irt_b" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIrtB(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetIrtB(*v)
	}
	return _u
}

// AddIrtB adds value to the "irt_b" field.
func (_u *QuestionUpdate) AddIrtB(v float64) *QuestionUpdate {
	_u.mutation.AddIrtB(v)
	return _u
}

// SetIrtC sets the "irt_c" field.
func (_u *QuestionUpdate) SetIrtC(v float64) *QuestionUpdate {
	_u.mutation.ResetIrtC()
	_u.mutation.SetIrtC(v)
	return _u
}

// SetNillableIrtC sets the "irt_c" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIrtC(v *float64) *QuestionUpdate {
	if v != nil {
		_u.SetIrtC(*v)
	}
	return _u
}

// AddIrtC adds value to the "irt_c" field.
func (_u *QuestionUpdate) AddIrtC(v float64) *QuestionUpdate {
	_u.mutation.AddIrtC(v)
	return _u
}

// SetIsAssessment sets the "is_assessment" field.
func (_u *QuestionUpdate) SetIsAssessment(v bool) *QuestionUpdate {
	_u.mutation.SetIsAssessment(v)
	return _u
}

// SetNillableIsAssessment sets the "is_assessment" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableIsAssessment(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetIsAssessment(*v)
	}
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *QuestionUpdate) SetAttemptsCount(v int) *QuestionUpdate {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableAttemptsCount(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *QuestionUpdate) AddAttemptsCount(v int) *QuestionUpdate {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuestionUpdate) SetCorrectCount(v int) *QuestionUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectCount(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuestionUpdate) AddCorrectCount(v int) *QuestionUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuestionUpdate) SetPayload(v map[string]interface{}) *QuestionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuestionUpdate) ClearPayload() *QuestionUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(question.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopics(); ok {
		_spec.SetField(question.FieldSubTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldSubTopics, value)
		})
	}
	if _u.mutation.SubTopicsCleared() {
		_spec.ClearField(question.FieldSubTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerValue(); ok {
		_spec.SetField(question.FieldAnswerValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswerValue(); ok {
		_spec.AddField(question.FieldAnswerValue, field.TypeFloat64, value)
	}
	if _u.mutation.AnswerValueCleared() {
		_spec.ClearField(question.FieldAnswerValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnswerRange(); ok {
		_spec.SetField(question.FieldAnswerRange, field.TypeJSON, value)
	}
	if _u.mutation.AnswerRangeCleared() {
		_spec.ClearField(question.FieldAnswerRange, field.TypeJSON)
	}
	if value, ok := _u.mutation.IrtA(); ok {
		_spec.SetField(question.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtA(); ok {
		_spec.AddField(question.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtB(); ok {
		_spec.SetField(question.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtB(); ok {
		_spec.AddField(question.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtC(); ok {
		_spec.SetField(question.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtC(); ok {
		_spec.AddField(question.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsAssessment(); ok {
		_spec.SetField(question.FieldIsAssessment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(question.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(question.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(question.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(question.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(question.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetSubject sets the "subject" field.
func (_u *QuestionUpdateOne) SetSubject(v string) *QuestionUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSubject(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetChapter sets the "chapter" field.
func (_u *QuestionUpdateOne) SetChapter(v string) *QuestionUpdateOne {
	_u.mutation.SetChapter(v)
	return _u
}

// SetNillableChapter sets the "chapter" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableChapter(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetChapter(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *QuestionUpdateOne) SetChapterKey(v string) *QuestionUpdateOne {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableChapterKey(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetSubTopics sets the "sub_topics" field.
func (_u *QuestionUpdateOne) SetSubTopics(v []string) *QuestionUpdateOne {
	_u.mutation.SetSubTopics(v)
	return _u
}

// AppendSubTopics appends value to the "sub_topics" field.
func (_u *QuestionUpdateOne) AppendSubTopics(v []string) *QuestionUpdateOne {
	_u.mutation.AppendSubTopics(v)
	return _u
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (_u *QuestionUpdateOne) ClearSubTopics() *QuestionUpdateOne {
	_u.mutation.ClearSubTopics()
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *QuestionUpdateOne) SetQuestionType(v string) *QuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQuestionType(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuestionUpdateOne) SetCorrectAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetAnswerValue sets the "answer_value" field.
func (_u *QuestionUpdateOne) SetAnswerValue(v float64) *QuestionUpdateOne {
	_u.mutation.ResetAnswerValue()
	_u.mutation.SetAnswerValue(v)
	return _u
}

// SetNillableAnswerValue sets the "answer_value" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAnswerValue(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetAnswerValue(*v)
	}
	return _u
}

// AddAnswerValue adds value to the "answer_value" field.
func (_u *QuestionUpdateOne) AddAnswerValue(v float64) *QuestionUpdateOne {
	_u.mutation.AddAnswerValue(v)
	return _u
}

// ClearAnswerValue clears the value of the "answer_value" field.
func (_u *QuestionUpdateOne) ClearAnswerValue() *QuestionUpdateOne {
	_u.mutation.ClearAnswerValue()
	return _u
}

// SetAnswerRange sets the "answer_range" field.
func (_u *QuestionUpdateOne) SetAnswerRange(v *model.AnswerRange) *QuestionUpdateOne {
	_u.mutation.SetAnswerRange(v)
	return _u
}

// ClearAnswerRange clears the value of the "answer_range" field.
func (_u *QuestionUpdateOne) ClearAnswerRange() *QuestionUpdateOne {
	_u.mutation.ClearAnswerRange()
	return _u
}

// SetIrtA sets the "irt_a" field.
func (_u *QuestionUpdateOne) SetIrtA(v float64) *QuestionUpdateOne {
	_u.mutation.ResetIrtA()
	_u.mutation.SetIrtA(v)
	return _u
}

// SetNillableIrtA sets the "irt_a" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIrtA(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetIrtA(*v)
	}
	return _u
}

// AddIrtA adds value to the "irt_a" field.
func (_u *QuestionUpdateOne) AddIrtA(v float64) *QuestionUpdateOne {
	_u.mutation.AddIrtA(v)
	return _u
}

// SetIrtB sets the "irt_b" field.
func (_u *QuestionUpdateOne) SetIrtB(v float64) *QuestionUpdateOne {
	_u.mutation.ResetIrtB()
	_u.mutation.SetIrtB(v)
	return _u
}

// SetNillableIrtB sets the "irt_b" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIrtB(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetIrtB(*v)
	}
	return _u
}

// AddIrtB adds value to the "irt_b" field.
func (_u *QuestionUpdateOne) AddIrtB(v float64) *QuestionUpdateOne {
	_u.mutation.AddIrtB(v)
	return _u
}

// SetIrtC sets the "irt_c" field.
func (_u *QuestionUpdateOne) SetIrtC(v float64) *QuestionUpdateOne {
	_u.mutation.ResetIrtC()
	_u.mutation.SetIrtC(v)
	return _u
}

// SetNillableIrtC sets the "irt_c" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIrtC(v *float64) *QuestionUpdateOne {
	if v != nil {
		_u.SetIrtC(*v)
	}
	return _u
}

// AddIrtC adds value to the "irt_c" field.
func (_u *QuestionUpdateOne) AddIrtC(v float64) *QuestionUpdateOne {
	_u.mutation.AddIrtC(v)
	return _u
}

// SetIsAssessment sets the "is_assessment" field.
func (_u *QuestionUpdateOne) SetIsAssessment(v bool) *QuestionUpdateOne {
	_u.mutation.SetIsAssessment(v)
	return _u
}

// SetNillableIsAssessment sets the "is_assessment" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableIsAssessment(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetIsAssessment(*v)
	}
	return _u
}

// SetAttemptsCount sets the "attempts_count" field.
func (_u *QuestionUpdateOne) SetAttemptsCount(v int) *QuestionUpdateOne {
	_u.mutation.ResetAttemptsCount()
	_u.mutation.SetAttemptsCount(v)
	return _u
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableAttemptsCount(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetAttemptsCount(*v)
	}
	return _u
}

// AddAttemptsCount adds value to the "attempts_count" field.
func (_u *QuestionUpdateOne) AddAttemptsCount(v int) *QuestionUpdateOne {
	_u.mutation.AddAttemptsCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuestionUpdateOne) SetCorrectCount(v int) *QuestionUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectCount(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuestionUpdateOne) AddCorrectCount(v int) *QuestionUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QuestionUpdateOne) SetPayload(v map[string]interface{}) *QuestionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *QuestionUpdateOne) ClearPayload() *QuestionUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(question.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopics(); ok {
		_spec.SetField(question.FieldSubTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldSubTopics, value)
		})
	}
	if _u.mutation.SubTopicsCleared() {
		_spec.ClearField(question.FieldSubTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnswerValue(); ok {
		_spec.SetField(question.FieldAnswerValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnswerValue(); ok {
		_spec.AddField(question.FieldAnswerValue, field.TypeFloat64, value)
	}
	if _u.mutation.AnswerValueCleared() {
		_spec.ClearField(question.FieldAnswerValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnswerRange(); ok {
		_spec.SetField(question.FieldAnswerRange, field.TypeJSON, value)
	}
	if _u.mutation.AnswerRangeCleared() {
		_spec.ClearField(question.FieldAnswerRange, field.TypeJSON)
	}
	if value, ok := _u.mutation.IrtA(); ok {
		_spec.SetField(question.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtA(); ok {
		_spec.AddField(question.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtB(); ok {
		_spec.SetField(question.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtB(); ok {
		_spec.AddField(question.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtC(); ok {
		_spec.SetField(question.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtC(); ok {
		_spec.AddField(question.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IsAssessment(); ok {
		_spec.SetField(question.FieldIsAssessment, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttemptsCount(); ok {
		_spec.SetField(question.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptsCount(); ok {
		_spec.AddField(question.FieldAttemptsCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(question.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(question.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(question.FieldPayload, field.TypeJSON)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
