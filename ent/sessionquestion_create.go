// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/sessionquestion"
)

// SessionQuestionCreate is the builder for creating a SessionQuestion entity.
type SessionQuestionCreate struct {
	config
	mutation *SessionQuestionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionQuestionCreate) SetSessionID(v string) *SessionQuestionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionQuestionCreate) SetUserID(v string) *SessionQuestionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SessionQuestionCreate) SetQuestionID(v string) *SessionQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SessionQuestionCreate) SetPosition(v int) *SessionQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetChapterKey sets the "chapter_key" field.
func (_c *SessionQuestionCreate) SetChapterKey(v string) *SessionQuestionCreate {
	_c.mutation.SetChapterKey(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *SessionQuestionCreate) SetRationale(v string) *SessionQuestionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableRationale(v *string) *SessionQuestionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *SessionQuestionCreate) SetAnswered(v bool) *SessionQuestionCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableAnswered(v *bool) *SessionQuestionCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetAnsweringAt sets the "answering_at" field.
func (_c *SessionQuestionCreate) SetAnsweringAt(v time.Time) *SessionQuestionCreate {
	_c.mutation.SetAnsweringAt(v)
	return _c
}

// SetNillableAnsweringAt sets the "answering_at" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableAnsweringAt(v *time.Time) *SessionQuestionCreate {
	if v != nil {
		_c.SetAnsweringAt(*v)
	}
	return _c
}

// SetStudentAnswer sets the "student_answer" field.
func (_c *SessionQuestionCreate) SetStudentAnswer(v string) *SessionQuestionCreate {
	_c.mutation.SetStudentAnswer(v)
	return _c
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableStudentAnswer(v *string) *SessionQuestionCreate {
	if v != nil {
		_c.SetStudentAnswer(*v)
	}
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *SessionQuestionCreate) SetIsCorrect(v bool) *SessionQuestionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableIsCorrect(v *bool) *SessionQuestionCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (_c *SessionQuestionCreate) SetTimeTakenSeconds(v int) *SessionQuestionCreate {
	_c.mutation.SetTimeTakenSeconds(v)
	return _c
}

// SetNillableTimeTakenSeconds sets the "time_taken_seconds" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableTimeTakenSeconds(v *int) *SessionQuestionCreate {
	if v != nil {
		_c.SetTimeTakenSeconds(*v)
	}
	return _c
}

// SetThetaDelta sets the "theta_delta" field.
func (_c *SessionQuestionCreate) SetThetaDelta(v float64) *SessionQuestionCreate {
	_c.mutation.SetThetaDelta(v)
	return _c
}

// SetNillableThetaDelta sets the "theta_delta" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableThetaDelta(v *float64) *SessionQuestionCreate {
	if v != nil {
		_c.SetThetaDelta(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *SessionQuestionCreate) SetAnsweredAt(v time.Time) *SessionQuestionCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *SessionQuestionCreate) SetNillableAnsweredAt(v *time.Time) *SessionQuestionCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// Mutation returns the SessionQuestionMutation object of the builder.
func (_c *SessionQuestionCreate) Mutation() *SessionQuestionMutation {
	return _c.mutation
}

// Save creates the SessionQuestion in the database.
func (_c *SessionQuestionCreate) Save(ctx context.Context) (*SessionQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionQuestionCreate) SaveX(ctx context.Context) *SessionQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionQuestionCreate) defaults() {
	if _, ok := _c.mutation.Answered(); !ok {
		v := sessionquestion.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := sessionquestion.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
	if _, ok := _c.mutation.TimeTakenSeconds(); !ok {
		v := sessionquestion.DefaultTimeTakenSeconds
		_c.mutation.SetTimeTakenSeconds(v)
	}
	if _, ok := _c.mutation.ThetaDelta(); !ok {
		v := sessionquestion.DefaultThetaDelta
		_c.mutation.SetThetaDelta(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionQuestionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionQuestion.session_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionQuestion.user_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SessionQuestion.question_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SessionQuestion.position"`)}
	}
	if _, ok := _c.mutation.ChapterKey(); !ok {
		return &ValidationError{Name: "chapter_key", err: errors.New(`ent: missing required field "SessionQuestion.chapter_key"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SessionQuestion.answered"`)}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "SessionQuestion.is_correct"`)}
	}
	if _, ok := _c.mutation.TimeTakenSeconds(); !ok {
		return &ValidationError{Name: "time_taken_seconds", err: errors.New(`ent: missing required field "SessionQuestion.time_taken_seconds"`)}
	}
	if _, ok := _c.mutation.ThetaDelta(); !ok {
		return &ValidationError{Name: "theta_delta", err: errors.New(`ent: missing required field "SessionQuestion.theta_delta"`)}
	}
	return nil
}

func (_c *SessionQuestionCreate) sqlSave(ctx context.Context) (*SessionQuestion, error) {
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

func (_c *SessionQuestionCreate) createSpec() (*SessionQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionquestion.Table, sqlgraph.NewFieldSpec(sessionquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionquestion.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionquestion.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(sessionquestion.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(sessionquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.ChapterKey(); ok {
		_spec.SetField(sessionquestion.FieldChapterKey, field.TypeString, value)
		_node.ChapterKey = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(sessionquestion.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(sessionquestion.FieldAnswered, field.TypeBool, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.AnsweringAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweringAt, field.TypeTime, value)
		_node.AnsweringAt = &value
	}
	if value, ok := _c.mutation.StudentAnswer(); ok {
		_spec.SetField(sessionquestion.FieldStudentAnswer, field.TypeString, value)
		_node.StudentAnswer = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(sessionquestion.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := _c.mutation.TimeTakenSeconds(); ok {
		_spec.SetField(sessionquestion.FieldTimeTakenSeconds, field.TypeInt, value)
		_node.TimeTakenSeconds = value
	}
	if value, ok := _c.mutation.ThetaDelta(); ok {
		_spec.SetField(sessionquestion.FieldThetaDelta, field.TypeFloat64, value)
		_node.ThetaDelta = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(sessionquestion.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	return _node, _spec
}

// SessionQuestionCreateBulk is the builder for creating many SessionQuestion entities in bulk.
type SessionQuestionCreateBulk struct {
	config
	err      error
	builders []*SessionQuestionCreate
}

// Save creates the SessionQuestion entities in the database.
func (_c *SessionQuestionCreateBulk) Save(ctx context.Context) ([]*SessionQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionQuestionMutation)
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
func (_c *SessionQuestionCreateBulk) SaveX(ctx context.Context) []*SessionQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
