// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jeevibe/engine/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SessionCreate) SetUserID(v string) *SessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SessionCreate) SetKind(v string) *SessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v string) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetChapterKey sets the "chapter_key" field.
func (_c *SessionCreate) SetChapterKey(v string) *SessionCreate {
	_c.mutation.SetChapterKey(v)
	return _c
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_c *SessionCreate) SetNillableChapterKey(v *string) *SessionCreate {
	if v != nil {
		_c.SetChapterKey(*v)
	}
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *SessionCreate) SetTemplateID(v string) *SessionCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTemplateID(v *string) *SessionCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetLearningPhase sets the "learning_phase" field.
func (_c *SessionCreate) SetLearningPhase(v string) *SessionCreate {
	_c.mutation.SetLearningPhase(v)
	return _c
}

// SetNillableLearningPhase sets the "learning_phase" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLearningPhase(v *string) *SessionCreate {
	if v != nil {
		_c.SetLearningPhase(*v)
	}
	return _c
}

// SetIsRecoveryQuiz sets the "is_recovery_quiz" field.
func (_c *SessionCreate) SetIsRecoveryQuiz(v bool) *SessionCreate {
	_c.mutation.SetIsRecoveryQuiz(v)
	return _c
}

// SetNillableIsRecoveryQuiz sets the "is_recovery_quiz" field if the given value is not nil.
func (_c *SessionCreate) SetNillableIsRecoveryQuiz(v *bool) *SessionCreate {
	if v != nil {
		_c.SetIsRecoveryQuiz(*v)
	}
	return _c
}

// SetQuizNumber sets the "quiz_number" field.
func (_c *SessionCreate) SetQuizNumber(v int) *SessionCreate {
	_c.mutation.SetQuizNumber(v)
	return _c
}

// SetNillableQuizNumber sets the "quiz_number" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuizNumber(v *int) *SessionCreate {
	if v != nil {
		_c.SetQuizNumber(*v)
	}
	return _c
}

// SetQuestionsTotal sets the "questions_total" field.
func (_c *SessionCreate) SetQuestionsTotal(v int) *SessionCreate {
	_c.mutation.SetQuestionsTotal(v)
	return _c
}

// SetNillableQuestionsTotal sets the "questions_total" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuestionsTotal(v *int) *SessionCreate {
	if v != nil {
		_c.SetQuestionsTotal(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *SessionCreate) SetQuestionsAnswered(v int) *SessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *SessionCreate) SetNillableQuestionsAnswered(v *int) *SessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *SessionCreate) SetCorrectCount(v int) *SessionCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCorrectCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_c *SessionCreate) SetTotalTimeSeconds(v int) *SessionCreate {
	_c.mutation.SetTotalTimeSeconds(v)
	return _c
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalTimeSeconds(v *int) *SessionCreate {
	if v != nil {
		_c.SetTotalTimeSeconds(*v)
	}
	return _c
}

// SetInvalidReason sets the "invalid_reason" field.
func (_c *SessionCreate) SetInvalidReason(v string) *SessionCreate {
	_c.mutation.SetInvalidReason(v)
	return _c
}

// SetNillableInvalidReason sets the "invalid_reason" field if the given value is not nil.
func (_c *SessionCreate) SetNillableInvalidReason(v *string) *SessionCreate {
	if v != nil {
		_c.SetInvalidReason(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SessionCreate) SetExpiresAt(v time.Time) *SessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableExpiresAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionCreate) SetUpdatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUpdatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.IsRecoveryQuiz(); !ok {
		v := session.DefaultIsRecoveryQuiz
		_c.mutation.SetIsRecoveryQuiz(v)
	}
	if _, ok := _c.mutation.QuizNumber(); !ok {
		v := session.DefaultQuizNumber
		_c.mutation.SetQuizNumber(v)
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		v := session.DefaultQuestionsTotal
		_c.mutation.SetQuestionsTotal(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := session.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := session.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.TotalTimeSeconds(); !ok {
		v := session.DefaultTotalTimeSeconds
		_c.mutation.SetTotalTimeSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := session.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Session.user_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Session.kind"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if _, ok := _c.mutation.IsRecoveryQuiz(); !ok {
		return &ValidationError{Name: "is_recovery_quiz", err: errors.New(`ent: missing required field "Session.is_recovery_quiz"`)}
	}
	if _, ok := _c.mutation.QuizNumber(); !ok {
		return &ValidationError{Name: "quiz_number", err: errors.New(`ent: missing required field "Session.quiz_number"`)}
	}
	if _, ok := _c.mutation.QuestionsTotal(); !ok {
		return &ValidationError{Name: "questions_total", err: errors.New(`ent: missing required field "Session.questions_total"`)}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "Session.questions_answered"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "Session.correct_count"`)}
	}
	if _, ok := _c.mutation.TotalTimeSeconds(); !ok {
		return &ValidationError{Name: "total_time_seconds", err: errors.New(`ent: missing required field "Session.total_time_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Session.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := session.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Session.id": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(session.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ChapterKey(); ok {
		_spec.SetField(session.FieldChapterKey, field.TypeString, value)
		_node.ChapterKey = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(session.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.LearningPhase(); ok {
		_spec.SetField(session.FieldLearningPhase, field.TypeString, value)
		_node.LearningPhase = value
	}
	if value, ok := _c.mutation.IsRecoveryQuiz(); ok {
		_spec.SetField(session.FieldIsRecoveryQuiz, field.TypeBool, value)
		_node.IsRecoveryQuiz = value
	}
	if value, ok := _c.mutation.QuizNumber(); ok {
		_spec.SetField(session.FieldQuizNumber, field.TypeInt, value)
		_node.QuizNumber = value
	}
	if value, ok := _c.mutation.QuestionsTotal(); ok {
		_spec.SetField(session.FieldQuestionsTotal, field.TypeInt, value)
		_node.QuestionsTotal = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(session.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(session.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(session.FieldTotalTimeSeconds, field.TypeInt, value)
		_node.TotalTimeSeconds = value
	}
	if value, ok := _c.mutation.InvalidReason(); ok {
		_spec.SetField(session.FieldInvalidReason, field.TypeString, value)
		_node.InvalidReason = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(session.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
