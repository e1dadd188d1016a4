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
	"github.com/jeevibe/engine/ent/response"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResponseUpdate) SetUserID(v string) *ResponseUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableUserID(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseUpdate) SetSessionID(v string) *ResponseUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableSessionID(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseUpdate) SetQuestionID(v string) *ResponseUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableQuestionID(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResponseUpdate) SetKind(v string) *ResponseUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableKind(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *ResponseUpdate) SetChapterKey(v string) *ResponseUpdate {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableChapterKey(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetSubTopics sets the "sub_topics" field.
func (_u *ResponseUpdate) SetSubTopics(v []string) *ResponseUpdate {
	_u.mutation.SetSubTopics(v)
	return _u
}

// AppendSubTopics appends value to the "sub_topics" field.
func (_u *ResponseUpdate) AppendSubTopics(v []string) *ResponseUpdate {
	_u.mutation.AppendSubTopics(v)
	return _u
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (_u *ResponseUpdate) ClearSubTopics() *ResponseUpdate {
	_u.mutation.ClearSubTopics()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *ResponseUpdate) SetStudentAnswer(v string) *ResponseUpdate {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableStudentAnswer(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ResponseUpdate) SetCorrectAnswer(v string) *ResponseUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableCorrectAnswer(v *string) *ResponseUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ResponseUpdate) SetIsCorrect(v bool) *ResponseUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableIsCorrect(v *bool) *ResponseUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *ResponseUpdate) SetTimeTakenSeconds(v int) *ResponseUpdate {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableTimeTakenSeconds(v *int) *ResponseUpdate {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *ResponseUpdate) AddTimeTakenSeconds(v int) *ResponseUpdate {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// SetIrtA sets the "irt_a" field.
func (_u *ResponseUpdate) SetIrtA(v float64) *ResponseUpdate {
	_u.mutation.ResetIrtA()
	_u.mutation.SetIrtA(v)
	return _u
}

// SetNillableIrtA sets the "irt_a" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableIrtA(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetIrtA(*v)
	}
	return _u
}

// AddIrtA adds value to the "irt_a" field.
func (_u *ResponseUpdate) AddIrtA(v float64) *ResponseUpdate {
	_u.mutation.AddIrtA(v)
	return _u
}

// SetIrtB sets the "irt_b" field.
func (_u *ResponseUpdate) SetIrtB(v float64) *ResponseUpdate {
	_u.mutation.ResetIrtB()
	_u.mutation.SetIrtB(v)
	return _u
}

// SetNillableIrtB sets the "irt_b" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableIrtB(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetIrtB(*v)
	}
	return _u
}

// AddIrtB adds value to the "irt_b" field.
func (_u *ResponseUpdate) AddIrtB(v float64) *ResponseUpdate {
	_u.mutation.AddIrtB(v)
	return _u
}

// SetIrtC sets the "irt_c" field.
func (_u *ResponseUpdate) SetIrtC(v float64) *ResponseUpdate {
	_u.mutation.ResetIrtC()
	_u.mutation.SetIrtC(v)
	return _u
}

// SetNillableIrtC sets the "irt_c" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableIrtC(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetIrtC(*v)
	}
	return _u
}

// AddIrtC adds value to the "irt_c" field.
func (_u *ResponseUpdate) AddIrtC(v float64) *ResponseUpdate {
	_u.mutation.AddIrtC(v)
	return _u
}

// SetThetaDelta sets the "theta_delta" field.
func (_u *ResponseUpdate) SetThetaDelta(v float64) *ResponseUpdate {
	_u.mutation.ResetThetaDelta()
	_u.mutation.SetThetaDelta(v)
	return _u
}

// SetNillableThetaDelta sets the "theta_delta" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableThetaDelta(v *float64) *ResponseUpdate {
	if v != nil {
		_u.SetThetaDelta(*v)
	}
	return _u
}

// AddThetaDelta adds value to the "theta_delta" field.
func (_u *ResponseUpdate) AddThetaDelta(v float64) *ResponseUpdate {
	_u.mutation.AddThetaDelta(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ResponseUpdate) SetAnsweredAt(v time.Time) *ResponseUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ResponseUpdate) SetNillableAnsweredAt(v *time.Time) *ResponseUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdate) Mutation() *ResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(response.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(response.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(response.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopics(); ok {
		_spec.SetField(response.FieldSubTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, response.FieldSubTopics, value)
		})
	}
	if _u.mutation.SubTopicsCleared() {
		_spec.ClearField(response.FieldSubTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(response.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(response.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(response.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(response.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(response.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IrtA(); ok {
		_spec.SetField(response.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtA(); ok {
		_spec.AddField(response.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtB(); ok {
		_spec.SetField(response.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtB(); ok {
		_spec.AddField(response.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtC(); ok {
		_spec.SetField(response.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtC(); ok {
		_spec.AddField(response.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaDelta(); ok {
		_spec.SetField(response.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaDelta(); ok {
		_spec.AddField(response.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetUserID sets the "user_id" field.
func (_u *ResponseUpdateOne) SetUserID(v string) *ResponseUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableUserID(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResponseUpdateOne) SetSessionID(v string) *ResponseUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableSessionID(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ResponseUpdateOne) SetQuestionID(v string) *ResponseUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableQuestionID(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResponseUpdateOne) SetKind(v string) *ResponseUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableKind(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *ResponseUpdateOne) SetChapterKey(v string) *ResponseUpdateOne {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableChapterKey(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetSubTopics sets the "sub_topics" field.
func (_u *ResponseUpdateOne) SetSubTopics(v []string) *ResponseUpdateOne {
	_u.mutation.SetSubTopics(v)
	return _u
}

// AppendSubTopics appends value to the "sub_topics" field.
func (_u *ResponseUpdateOne) AppendSubTopics(v []string) *ResponseUpdateOne {
	_u.mutation.AppendSubTopics(v)
	return _u
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (_u *ResponseUpdateOne) ClearSubTopics() *ResponseUpdateOne {
	_u.mutation.ClearSubTopics()
	return _u
}

// SetStudentAnswer sets the "student_answer" field.
func (_u *ResponseUpdateOne) SetStudentAnswer(v string) *ResponseUpdateOne {
	_u.mutation.SetStudentAnswer(v)
	return _u
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableStudentAnswer(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetStudentAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *ResponseUpdateOne) SetCorrectAnswer(v string) *ResponseUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableCorrectAnswer(v *string) *ResponseUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *ResponseUpdateOne) SetIsCorrect(v bool) *ResponseUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableIsCorrect(v *bool) *ResponseUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_u *ResponseUpdateOne) SetTimeTakenSeconds(v int) *ResponseUpdateOne {
	_u.mutation.ResetTimeTakenSeconds()
	_u.mutation.SetTimeTakenSeconds(v)
	return _u
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableTimeTakenSeconds(v *int) *ResponseUpdateOne {
	if v != nil {
		_u.SetTimeTakenSeconds(*v)
	}
	return _u
}

// AddTimeTakenSeconds adds value to the "time_taken_seconds" field.
func (_u *ResponseUpdateOne) AddTimeTakenSeconds(v int) *ResponseUpdateOne {
	_u.mutation.AddTimeTakenSeconds(v)
	return _u
}

// SetIrtA sets the "irt_a" field.
func (_u *ResponseUpdateOne) SetIrtA(v float64) *ResponseUpdateOne {
	_u.mutation.ResetIrtA()
	_u.mutation.SetIrtA(v)
	return _u
}

// SetNillableIrtA sets the "irt_a" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableIrtA(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetIrtA(*v)
	}
	return _u
}

// AddIrtA adds value to the "irt_a" field.
func (_u *ResponseUpdateOne) AddIrtA(v float64) *ResponseUpdateOne {
	_u.mutation.AddIrtA(v)
	return _u
}

// SetIrtB sets the "irt_b" field.
func (_u *ResponseUpdateOne) SetIrtB(v float64) *ResponseUpdateOne {
	_u.mutation.ResetIrtB()
	_u.mutation.SetIrtB(v)
	return _u
}

// SetNillableIrtB sets the "irt_b" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableIrtB(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetIrtB(*v)
	}
	return _u
}

// AddIrtB adds value to the "irt_b" field.
func (_u *ResponseUpdateOne) AddIrtB(v float64) *ResponseUpdateOne {
	_u.mutation.AddIrtB(v)
	return _u
}

// SetIrtC sets the "irt_c" field.
func (_u *ResponseUpdateOne) SetIrtC(v float64) *ResponseUpdateOne {
	_u.mutation.ResetIrtC()
	_u.mutation.SetIrtC(v)
	return _u
}

// SetNillableIrtC sets the "irt_c" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableIrtC(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetIrtC(*v)
	}
	return _u
}

// AddIrtC adds value to the "irt_c" field.
func (_u *ResponseUpdateOne) AddIrtC(v float64) *ResponseUpdateOne {
	_u.mutation.AddIrtC(v)
	return _u
}

// SetThetaDelta sets the "theta_delta" field.
func (_u *ResponseUpdateOne) SetThetaDelta(v float64) *ResponseUpdateOne {
	_u.mutation.ResetThetaDelta()
	_u.mutation.SetThetaDelta(v)
	return _u
}

// SetNillableThetaDelta sets the "theta_delta" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableThetaDelta(v *float64) *ResponseUpdateOne {
	if v != nil {
		_u.SetThetaDelta(*v)
	}
	return _u
}

// AddThetaDelta adds value to the "theta_delta" field.
func (_u *ResponseUpdateOne) AddThetaDelta(v float64) *ResponseUpdateOne {
	_u.mutation.AddThetaDelta(v)
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *ResponseUpdateOne) SetAnsweredAt(v time.Time) *ResponseUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableAnsweredAt(v *time.Time) *ResponseUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdateOne) Mutation() *ResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Response entity.
func (_u *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
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
		_spec.SetField(response.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(response.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(response.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubTopics(); ok {
		_spec.SetField(response.FieldSubTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, response.FieldSubTopics, value)
		})
	}
	if _u.mutation.SubTopicsCleared() {
		_spec.ClearField(response.FieldSubTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.StudentAnswer(); ok {
		_spec.SetField(response.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(response.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(response.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(response.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSeconds(); ok {
		_spec.AddField(response.FieldTimeTakenSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IrtA(); ok {
		_spec.SetField(response.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtA(); ok {
		_spec.AddField(response.FieldIrtA, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtB(); ok {
		_spec.SetField(response.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtB(); ok {
		_spec.AddField(response.FieldIrtB, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtC(); ok {
		_spec.SetField(response.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtC(); ok {
		_spec.AddField(response.FieldIrtC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaDelta(); ok {
		_spec.SetField(response.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaDelta(); ok {
		_spec.AddField(response.FieldThetaDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
	}
	_node = &Response{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
