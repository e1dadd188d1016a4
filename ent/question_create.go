// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/internal/model"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetSubject sets the "subject" field.
func (_c *QuestionCreate) SetSubject(v string) *QuestionCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetChapter sets the "chapter" field.
func (_c *QuestionCreate) SetChapter(v string) *QuestionCreate {
	_c.mutation.SetChapter(v)
	return _c
}

// SetChapterKey sets the "chapter_key" field.
func (_c *QuestionCreate) SetChapterKey(v string) *QuestionCreate {
	_c.mutation.SetChapterKey(v)
	return _c
}

// SetSubTopics sets the "sub_topics" field.
func (_c *QuestionCreate) SetSubTopics(v []string) *QuestionCreate {
	_c.mutation.SetSubTopics(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuestionCreate) SetCorrectAnswer(v string) *QuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetAnswerValue sets the "answer_value" field.
func (_c *QuestionCreate) SetAnswerValue(v float64) *QuestionCreate {
	_c.mutation.SetAnswerValue(v)
	return _c
}

// SetNillableAnswerValue sets the "answer_value" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAnswerValue(v *float64) *QuestionCreate {
	if v != nil {
		_c.SetAnswerValue(*v)
	}
	return _c
}

// SetAnswerRange sets the "answer_range" field.
func (_c *QuestionCreate) SetAnswerRange(v *model.AnswerRange) *QuestionCreate {
	_c.mutation.SetAnswerRange(v)
	return _c
}

// SetIrtA sets the "irt_a" field.
func (_c *QuestionCreate) SetIrtA(v float64) *QuestionCreate {
	_c.mutation.SetIrtA(v)
	return _c
}

// SetIrtB sets the "irt_b" field.
func (_c *QuestionCreate) SetIrtB(v float64) *QuestionCreate {
	_c.mutation.SetIrtB(v)
	return _c
}

// SetIrtC sets the "irt_c" field.
func (_c *QuestionCreate) SetIrtC(v float64) *QuestionCreate {
	_c.mutation.SetIrtC(v)
	return _c
}

// SetIsAssessment sets the "is_assessment" field.
func (_c *QuestionCreate) SetIsAssessment(v bool) *QuestionCreate {
	_c.mutation.SetIsAssessment(v)
	return _c
}

// SetNillableIsAssessment sets the "is_assessment" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableIsAssessment(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetIsAssessment(*v)
	}
	return _c
}

// SetAttemptsCount sets the "attempts_count" field.
func (_c *QuestionCreate) SetAttemptsCount(v int) *QuestionCreate {
	_c.mutation.SetAttemptsCount(v)
	return _c
}

// SetNillableAttemptsCount sets the "attempts_count" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableAttemptsCount(v *int) *QuestionCreate {
	if v != nil {
		_c.SetAttemptsCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuestionCreate) SetCorrectCount(v int) *QuestionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCorrectCount(v *int) *QuestionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QuestionCreate) SetPayload(v map[string]interface{}) *QuestionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuestionCreate) SetCreatedAt(v time.Time) *QuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableCreatedAt(v *time.Time) *QuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v string) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.IsAssessment(); !ok {
		v := question.DefaultIsAssessment
		_c.mutation.SetIsAssessment(v)
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		v := question.DefaultAttemptsCount
		_c.mutation.SetAttemptsCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := question.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := question.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Question.subject"`)}
	}
	if _, ok := _c.mutation.Chapter(); !ok {
		return &ValidationError{Name: "chapter", err: errors.New(`ent: missing required field "Question.chapter"`)}
	}
	if _, ok := _c.mutation.ChapterKey(); !ok {
		return &ValidationError{Name: "chapter_key", err: errors.New(`ent: missing required field "Question.chapter_key"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "Question.correct_answer"`)}
	}
	if _, ok := _c.mutation.IrtA(); !ok {
		return &ValidationError{Name: "irt_a", err: errors.New(`ent: missing required field "Question.irt_a"`)}
	}
	if _, ok := _c.mutation.IrtB(); !ok {
		return &ValidationError{Name: "irt_b", err: errors.New(`ent: missing required field "Question.irt_b"`)}
	}
	if _, ok := _c.mutation.IrtC(); !ok {
		return &ValidationError{Name: "irt_c", err: errors.New(`ent: missing required field "Question.irt_c"`)}
	}
	if _, ok := _c.mutation.IsAssessment(); !ok {
		return &ValidationError{Name: "is_assessment", err: errors.New(`ent: missing required field "Question.is_assessment"`)}
	}
	if _, ok := _c.mutation.AttemptsCount(); !ok {
		return &ValidationError{Name: "attempts_count", err: errors.New(`ent: missing required field "Question.attempts_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Question.correct_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Question.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := question.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Question.id": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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
			return nil, fmt.Errorf("unexpected Question.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(question.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Chapter(); ok {
		_spec.SetField(question.FieldChapter, field.TypeString, value)
		_node.Chapter = value
	}
	if value, ok := _c.mutation.ChapterKey(); ok {
		_spec.SetField(question.FieldChapterKey, field.TypeString, value)
		_node.ChapterKey = value
	}
	if value, ok := _c.mutation.SubTopics(); ok {
		_spec.SetField(question.FieldSubTopics, field.TypeJSON, value)
		_node.SubTopics = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(question.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.AnswerValue(); ok {
		_spec.SetField(question.FieldAnswerValue, field.TypeFloat64, value)
		_node.AnswerValue = &value
	}
	if value, ok := _c.mutation.AnswerRange(); ok {
		_spec.SetField(question.FieldAnswerRange, field.TypeJSON, value)
		_node.AnswerRange = value
	}
	if value, ok := _c.mutation.IrtA(); ok {
		_spec.SetField(question.FieldIrtA, field.TypeFloat64, value)
		_node.IrtA = value
	}
	if value, ok := _c.mutation.IrtB(); ok {
		_spec.SetField(question.FieldIrtB, field.TypeFloat64, value)
		_node.IrtB = value
	}
	if value, ok := _c.mutation.IrtC(); ok {
		_spec.SetField(question.FieldIrtC, field.TypeFloat64, value)
		_node.IrtC = value
	}
	if value, ok := _c.mutation.IsAssessment(); ok {
		_spec.SetField(question.FieldIsAssessment, field.TypeBool, value)
		_node.IsAssessment = value
	}
	if value, ok := _c.mutation.AttemptsCount(); ok {
		_spec.SetField(question.FieldAttemptsCount, field.TypeInt, value)
		_node.AttemptsCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(question.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(question.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(question.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
