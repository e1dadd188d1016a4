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
	"github.com/jeevibe/engine/ent/sessionquestion"
)

// SessionQuestionUpdate is the builder for updating SessionQuestion entities.
type SessionQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionQuestionMutation
}

// Where appends a list predicates to the SessionQuestionUpdate builder.
func (_u *SessionQuestionUpdate) Where(ps ...predicate.SessionQuestion) *SessionQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionQuestionUpdate) SetSessionID(v string) *SessionQuestionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableSessionID(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionQuestionUpdate) SetUserID(v string) *SessionQuestionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableUserID(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SessionQuestionUpdate) SetQuestionID(v string) *SessionQuestionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableQuestionID(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SessionQuestionUpdate) SetPosition(v int) *SessionQuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillablePosition(v *int) *SessionQuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SessionQuestionUpdate) AddPosition(v int) *SessionQuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *SessionQuestionUpdate) SetChapterKey(v string) *SessionQuestionUpdate {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableChapterKey(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *SessionQuestionUpdate) SetRationale(v string) *SessionQuestionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableRationale(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *SessionQuestionUpdate) ClearRationale() *SessionQuestionUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionQuestionUpdate) SetAnswered(v bool) *SessionQuestionUpdate {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableAnswered(v *bool) *SessionQuestionUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetAnsweringAt sets the "answering_at" field.
func (_u *SessionQuestionUpdate) SetAnsweringAt(v time.Time) *SessionQuestionUpdate {
	_u.mutation.SetAnsweringAt(v)
	return _u
}

// SetNillableAnsweringAt sets the "answering_at" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableAnsweringAt(v *time.Time) *SessionQuestionUpdate {
	if v != nil {
		_u.SetAnsweringAt(*v)
	}
	return _u
}

// ClearAnsweringAt clears the value of the "answering_at" field.
func (_u *SessionQuestionUpdate) ClearAnsweringAt() *SessionQuestionUpdate {
	_u.mutation.ClearAnsweringAt()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *SessionQuestionUpdate) SetStudentAnswer(v string) *SessionQuestionUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableStudentAnswer(v *string) *SessionQuestionUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (_u *SessionQuestionUpdate) ClearStudentAnswer() *SessionQuestionUpdate {
	_u.mutation.ClearStudentAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *SessionQuestionUpdate) SetIsCorrect(v bool) *SessionQuestionUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableIsCorrect(v *bool) *SessionQuestionUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *SessionQuestionUpdate) SetTimeTakenSeconds(v int) *SessionQuestionUpdate {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableTimeTakenSeconds(v *int) *SessionQuestionUpdate {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *SessionQuestionUpdate) AddTimeTakenSeconds(v int) *SessionQuestionUpdate {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// SetThetaDelta sets the "theta_delta" field.
func (_u *SessionQuestionUpdate) SetThetaDelta(v float64) *SessionQuestionUpdate {
	_u.mutation.ResetThetaDelta()
	_u.mutation.SetThetaDelta(v)
	return _u
}

// SetNillableThetaDelta sets the "theta_delta" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableThetaDelta(v *float64) *SessionQuestionUpdate {
	if v != nil {
		_u.SetThetaDelta(*v)
	}
	return _u
}

// AddThetaDelta adds value to the "theta_delta" field.
func (_u *SessionQuestionUpdate) AddThetaDelta(v float64) *SessionQuestionUpdate {
	_u.mutation.AddThetaDelta(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *SessionQuestionUpdate) SetAnsweredAt(v time.Time) *SessionQuestionUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *SessionQuestionUpdate) SetNillableAnsweredAt(v *time.Time) *SessionQuestionUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *SessionQuestionUpdate) ClearAnsweredAt() *SessionQuestionUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// Mutation returns the SessionQuestionMutation object of the builder.
func (_u *SessionQuestionUpdate) Mutation() *SessionQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionquestion.Table, sessionquestion.Columns, sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionquestion.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionquestion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(sessionquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(sessionquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(sessionquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(sessionquestion.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(sessionquestion.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(sessionquestion.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionquestion.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnsweringAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweringAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweringAtCleared() {
		_spec.ClearField(sessionquestion.FieldAnsweringAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(sessionquestion.FieldStudentAnswer, field.TypeString, value)
	}
	if _u.mutation.StudentAnswerCleared() {
		_spec.ClearField(sessionquestion.FieldStudentAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(sessionquestion.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(sessionquestion.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(sessionquestion.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThetaDelta(); ok {
		_spec.SetField(sessionquestion.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaDelta(); ok {
		_spec.AddField(sessionquestion.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(sessionquestion.FieldAnsweredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionQuestionUpdateOne is the builder for updating a single SessionQuestion entity.
type SessionQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionQuestionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionQuestionUpdateOne) SetSessionID(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableSessionID(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionQuestionUpdateOne) SetUserID(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableUserID(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SessionQuestionUpdateOne) SetQuestionID(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableQuestionID(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *SessionQuestionUpdateOne) SetPosition(v int) *SessionQuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillablePosition(v *int) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SessionQuestionUpdateOne) AddPosition(v int) *SessionQuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *SessionQuestionUpdateOne) SetChapterKey(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableChapterKey(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *SessionQuestionUpdateOne) SetRationale(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableRationale(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *SessionQuestionUpdateOne) ClearRationale() *SessionQuestionUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SessionQuestionUpdateOne) SetAnswered(v bool) *SessionQuestionUpdateOne {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableAnswered(v *bool) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetAnsweringAt sets the "answering_at" field.
func (_u *SessionQuestionUpdateOne) SetAnsweringAt(v time.Time) *SessionQuestionUpdateOne {
	_u.mutation.SetAnsweringAt(v)
	return _u
}

// SetNillableAnsweringAt sets the "answering_at" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableAnsweringAt(v *time.Time) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetAnsweringAt(*v)
	}
	return _u
}

// ClearAnsweringAt clears the value of the "answering_at" field.
func (_u *SessionQuestionUpdateOne) ClearAnsweringAt() *SessionQuestionUpdateOne {
	_u.mutation.ClearAnsweringAt()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *SessionQuestionUpdateOne) SetStudentAnswer(v string) *SessionQuestionUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableStudentAnswer(v *string) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (_u *SessionQuestionUpdateOne) ClearStudentAnswer() *SessionQuestionUpdateOne {
	_u.mutation.ClearStudentAnswer()
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *SessionQuestionUpdateOne) SetIsCorrect(v bool) *SessionQuestionUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableIsCorrect(v *bool) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *SessionQuestionUpdateOne) SetTimeTakenSeconds(v int) *SessionQuestionUpdateOne {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableTimeTakenSeconds(v *int) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *SessionQuestionUpdateOne) AddTimeTakenSeconds(v int) *SessionQuestionUpdateOne {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// SetThetaDelta sets the "theta_delta" field.
func (_u *SessionQuestionUpdateOne) SetThetaDelta(v float64) *SessionQuestionUpdateOne {
	_u.mutation.ResetThetaDelta()
	_u.mutation.SetThetaDelta(v)
	return _u
}

// SetNillableThetaDelta sets the "theta_delta" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableThetaDelta(v *float64) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetThetaDelta(*v)
	}
	return _u
}

// AddThetaDelta adds value to the "theta_delta" field.
func (_u *SessionQuestionUpdateOne) AddThetaDelta(v float64) *SessionQuestionUpdateOne {
	_u.mutation.AddThetaDelta(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *SessionQuestionUpdateOne) SetAnsweredAt(v time.Time) *SessionQuestionUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *SessionQuestionUpdateOne) SetNillableAnsweredAt(v *time.Time) *SessionQuestionUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *SessionQuestionUpdateOne) ClearAnsweredAt() *SessionQuestionUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// Mutation returns the SessionQuestionMutation object of the builder.
func (_u *SessionQuestionUpdateOne) Mutation() *SessionQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionQuestionUpdate builder.
func (_u *SessionQuestionUpdateOne) Where(ps ...predicate.SessionQuestion) *SessionQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionQuestionUpdateOne) Select(field string, fields ...string) *SessionQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionQuestion entity.
func (_u *SessionQuestionUpdateOne) Save(ctx context.Context) (*SessionQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionQuestionUpdateOne) SaveX(ctx context.Context) *SessionQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionQuestionUpdateOne) sqlSave(ctx context.Context) (_node *SessionQuestion, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionquestion.Table, sessionquestion.Columns, sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionquestion.FieldID)
		for _, f := range fields {
			if !sessionquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionquestion.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionquestion.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionquestion.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(sessionquestion.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(sessionquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(sessionquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(sessionquestion.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(sessionquestion.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(sessionquestion.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(sessionquestion.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnsweringAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweringAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweringAtCleared() {
		_spec.ClearField(sessionquestion.FieldAnsweringAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(sessionquestion.FieldStudentAnswer, field.TypeString, value)
	}
	if _u.mutation.StudentAnswerCleared() {
		_spec.ClearField(sessionquestion.FieldStudentAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(sessionquestion.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(sessionquestion.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(sessionquestion.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ThetaDelta(); ok {
		_spec.SetField(sessionquestion.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaDelta(); ok {
		_spec.AddField(sessionquestion.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(sessionquestion.FieldAnsweredAt, field.TypeTime)
	}
	_node = &SessionQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
