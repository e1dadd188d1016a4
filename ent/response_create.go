// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/response"
)

// ResponseCreate is the builder for creating a Response entity.
type ResponseCreate struct {
	config
	mutation *ResponseMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ResponseCreate) SetUserID(v string) *ResponseCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResponseCreate) SetSessionID(v string) *ResponseCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ResponseCreate) SetQuestionID(v string) *ResponseCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResponseCreate) SetKind(v string) *ResponseCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetChapterKey sets the "chapter_key" field.
func (_c *ResponseCreate) SetChapterKey(v string) *ResponseCreate {
	_c.mutation.SetChapterKey(v)
	return _c
}

// SetSubTopics sets the "sub_topics" field.
func (_c *ResponseCreate) SetSubTopics(v []string) *ResponseCreate {
	_c.mutation.SetSubTopics(v)
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *ResponseCreate) SetStudentAnswer(v string) *ResponseCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *ResponseCreate) SetCorrectAnswer(v string) *ResponseCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ResponseCreate) SetIsCorrect(v bool) *ResponseCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_c *ResponseCreate) SetTimeTakenSeconds(v int) *ResponseCreate {
	_c.mutation.SetTimeTakenSeconds(v)
	return _c
}

// SetIrtA sets the "irt_a" field.
func (_c *ResponseCreate) SetIrtA(v float64) *ResponseCreate {
	_c.mutation.SetIrtA(v)
	return _c
}

// SetIrtB sets the "irt_b" field.
func (_c *ResponseCreate) SetIrtB(v float64) *ResponseCreate {
	_c.mutation.SetIrtB(v)
	return _c
}

// SetIrtC sets the "irt_c" field.
func (_c *ResponseCreate) SetIrtC(v float64) *ResponseCreate {
	_c.mutation.SetIrtC(v)
	return _c
}

// SetThetaDelta sets the "theta_delta" field.
func (_c *ResponseCreate) SetThetaDelta(v float64) *ResponseCreate {
	_c.mutation.SetThetaDelta(v)
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *ResponseCreate) SetAnsweredAt(v time.Time) *ResponseCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *ResponseCreate) SetNillableAnsweredAt(v *time.Time) *ResponseCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// Mutation returns the ResponseMutation object of the builder.
func (_c *ResponseCreate) Mutation() *ResponseMutation {
	return _c.mutation
}

// Save creates the Response in the database.
func (_c *ResponseCreate) Save(ctx context.Context) (*Response, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResponseCreate) SaveX(ctx context.Context) *Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResponseCreate) defaults() {
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := response.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResponseCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Response.user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Response.session_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "Response.question_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Response.kind"`)}
	}
	if _, ok := _c.mutation.ChapterKey(); !ok {
		return &ValidationError{Name: "chapter_key", err: errors.New(`ent: missing required field "Response.chapter_key"`)}
	}
	if _, ok := _c.mutation.StudentAnswer(); !ok {
		return &ValidationError{Name: "student_answer", err: errors.New(`ent: missing required field "Response.student_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Response.correct_answer"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "Response.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeTakenSeconds(); !ok {
		return &ValidationError{Name: "time_taken_seconds", err: errors.New(`ent: missing required field "Response.time_taken_seconds"`)}
	}
	if _, ok := _c.mutation.IrtA(); !ok {
		return &ValidationError{Name: "irt_a", err: errors.New(`ent: missing required field "Response.irt_a"`)}
	}
	if _, ok := _c.mutation.IrtB(); !ok {
		return &ValidationError{Name: "irt_b", err: errors.New(`ent: missing required field "Response.irt_b"`)}
	}
	if _, ok := _c.mutation.IrtC(); !ok {
		return &ValidationError{Name: "irt_c", err: errors.New(`ent: missing required field "Response.irt_c"`)}
	}
	if _, ok := _c.mutation.ThetaDelta(); !ok {
		return &ValidationError{Name: "theta_delta", err: errors.New(`ent: missing required field "Response.theta_delta"`)}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "Response.answered_at"`)}
	}
	return nil
}

func (_c *ResponseCreate) sqlSave(ctx context.Context) (*Response, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResponseCreate) createSpec() (*Response, *sqlgraph.CreateSpec) {
	var (
		_node = &Response{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(response.Table, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(response.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(response.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(response.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(response.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.ChapterKey(); ok {
		_spec.SetField(response.FieldChapterKey, field.TypeString, value)
		_node.ChapterKey = value
	}
	if value, ok := _c.mutation.SubTopics(); ok {
		_spec.SetField(response.FieldSubTopics, field.TypeJSON, value)
		_node.SubTopics = value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(response.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(response.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(response.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(response.FieldTimeTakenSeconds, field.TypeInt, value)
		_node.TimeTakenSeconds = value
	}
	if value, ok := _c.mutation.IrtA(); ok {
		_spec.SetField(response.FieldIrtA, field.TypeFloat64, value)
		_node.IrtA = value
	}
	if value, ok := _c.mutation.IrtB(); ok {
		_spec.SetField(response.FieldIrtB, field.TypeFloat64, value)
		_node.IrtB = value
	}
	if value, ok := _c.mutation.IrtC(); ok {
		_spec.SetField(response.FieldIrtC, field.TypeFloat64, value)
		_node.IrtC = value
	}
	if value, ok := _c.mutation.ThetaDelta(); ok {
		_spec.SetField(response.FieldThetaDelta, field.TypeFloat64, value)
		_node.ThetaDelta = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(response.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	return _node, _spec
}

// ResponseCreateBulk is the builder for creating many Response entities in bulk.
type ResponseCreateBulk struct {
	config
	err      error
	builders []*ResponseCreate
}

// Save creates the Response entities in the database.
func (_c *ResponseCreateBulk) Save(ctx context.Context) ([]*Response, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Response, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResponseMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ResponseCreateBulk) SaveX(ctx context.Context) []*Response {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
