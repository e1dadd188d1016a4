// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/ent/quotacounter"
	"github.com/jeevibe/engine/ent/response"
	"github.com/jeevibe/engine/ent/reviewinterval"
	"github.com/jeevibe/engine/ent/session"
	"github.com/jeevibe/engine/ent/sessionquestion"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/ent/user"
	"github.com/jeevibe/engine/internal/model"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeQuestion        = "Question"
	TypeQuotaCounter    = "QuotaCounter"
	TypeResponse        = "Response"
	TypeReviewInterval  = "ReviewInterval"
	TypeSession         = "Session"
	TypeSessionQuestion = "SessionQuestion"
	TypeThetaSnapshot   = "ThetaSnapshot"
	TypeTierConfig      = "TierConfig"
	TypeUser            = "User"
)

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	subject           *string
	chapter           *string
	chapter_key       *string
	sub_topics        *[]string
	appendsub_topics  []string
	question_type     *string
	options           *[]string
	appendoptions     []string
	correct_answer    *string
	answer_value      *float64
	addanswer_value   *float64
	answer_range      **model.AnswerRange
	irt_a             *float64
	addirt_a          *float64
	irt_b             *float64
	addirt_b          *float64
	irt_c             *float64
	addirt_c          *float64
	is_assessment     *bool
	attempts_count    *int
	addattempts_count *int
	correct_count     *int
	addcorrect_count  *int
	payload           *map[string]interface{}
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Question, error)
	predicates        []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id string) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Question entities.
func (m *QuestionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubject sets the "subject" field.
func (m *QuestionMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *QuestionMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ResetSubject resets all changes to the "subject" field.
func (m *QuestionMutation) ResetSubject() {
	m.subject = nil
}

// SetChapter sets the "chapter" field.
func (m *QuestionMutation) SetChapter(s string) {
	m.chapter = &s
}

// Chapter returns the value of the "chapter" field in the mutation.
func (m *QuestionMutation) Chapter() (r string, exists bool) {
	v := m.chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldChapter returns the old "chapter" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChapter(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapter: %w", err)
	}
	return oldValue.Chapter, nil
}

// ResetChapter resets all changes to the "chapter" field.
func (m *QuestionMutation) ResetChapter() {
	m.chapter = nil
}

// SetChapterKey sets the "chapter_key" field.
func (m *QuestionMutation) SetChapterKey(s string) {
	m.chapter_key = &s
}

// ChapterKey returns the value of the "chapter_key" field in the mutation.
func (m *QuestionMutation) ChapterKey() (r string, exists bool) {
	v := m.chapter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterKey returns the old "chapter_key" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldChapterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterKey: %w", err)
	}
	return oldValue.ChapterKey, nil
}

// ResetChapterKey resets all changes to the "chapter_key" field.
func (m *QuestionMutation) ResetChapterKey() {
	m.chapter_key = nil
}

// SetSubTopics sets the "sub_topics" field.
func (m *QuestionMutation) SetSubTopics(s []string) {
	m.sub_topics = &s
	m.appendsub_topics = nil
}

// SubTopics returns the value of the "sub_topics" field in the mutation.
func (m *QuestionMutation) SubTopics() (r []string, exists bool) {
	v := m.sub_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldSubTopics returns the old "sub_topics" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubTopics: %w", err)
	}
	return oldValue.SubTopics, nil
}

// AppendSubTopics adds s to the "sub_topics" field.
func (m *QuestionMutation) AppendSubTopics(s []string) {
	m.appendsub_topics = append(m.appendsub_topics, s...)
}

// AppendedSubTopics returns the list of values that were appended to the "sub_topics" field in this mutation.
func (m *QuestionMutation) AppendedSubTopics() ([]string, bool) {
	if len(m.appendsub_topics) == 0 {
		return nil, false
	}
	return m.appendsub_topics, true
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (m *QuestionMutation) ClearSubTopics() {
	m.sub_topics = nil
	m.appendsub_topics = nil
	m.clearedFields[question.FieldSubTopics] = struct{}{}
}

// SubTopicsCleared returns if the "sub_topics" field was cleared in this mutation.
func (m *QuestionMutation) SubTopicsCleared() bool {
	_, ok := m.clearedFields[question.FieldSubTopics]
	return ok
}

// ResetSubTopics resets all changes to the "sub_topics" field.
func (m *QuestionMutation) ResetSubTopics() {
	m.sub_topics = nil
	m.appendsub_topics = nil
	delete(m.clearedFields, question.FieldSubTopics)
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetOptions sets the "options" field.
func (m *QuestionMutation) SetOptions(s []string) {
	m.options = &s
	m.appendoptions = nil
}

// Options returns the value of the "options" field in the mutation.
func (m *QuestionMutation) Options() (r []string, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldOptions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// AppendOptions adds s to the "options" field.
func (m *QuestionMutation) AppendOptions(s []string) {
	m.appendoptions = append(m.appendoptions, s...)
}

// AppendedOptions returns the list of values that were appended to the "options" field in this mutation.
func (m *QuestionMutation) AppendedOptions() ([]string, bool) {
	if len(m.appendoptions) == 0 {
		return nil, false
	}
	return m.appendoptions, true
}

// ClearOptions clears the value of the "options" field.
func (m *QuestionMutation) ClearOptions() {
	m.options = nil
	m.appendoptions = nil
	m.clearedFields[question.FieldOptions] = struct{}{}
}

// OptionsCleared returns if the "options" field was cleared in this mutation.
func (m *QuestionMutation) OptionsCleared() bool {
	_, ok := m.clearedFields[question.FieldOptions]
	return ok
}

// ResetOptions resets all changes to the "options" field.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.appendoptions = nil
	delete(m.clearedFields, question.FieldOptions)
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *QuestionMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *QuestionMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *QuestionMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetAnswerValue sets the "answer_value" field.
func (m *QuestionMutation) SetAnswerValue(f float64) {
	m.answer_value = &f
	m.addanswer_value = nil
}

// AnswerValue returns the value of the "answer_value" field in the mutation.
func (m *QuestionMutation) AnswerValue() (r float64, exists bool) {
	v := m.answer_value
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerValue returns the old "answer_value" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswerValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerValue: %w", err)
	}
	return oldValue.AnswerValue, nil
}

// AddAnswerValue adds f to the "answer_value" field.
func (m *QuestionMutation) AddAnswerValue(f float64) {
	if m.addanswer_value != nil {
		*m.addanswer_value += f
	} else {
		m.addanswer_value = &f
	}
}

// AddedAnswerValue returns the value that was added to the "answer_value" field in this mutation.
func (m *QuestionMutation) AddedAnswerValue() (r float64, exists bool) {
	v := m.addanswer_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnswerValue clears the value of the "answer_value" field.
func (m *QuestionMutation) ClearAnswerValue() {
	m.answer_value = nil
	m.addanswer_value = nil
	m.clearedFields[question.FieldAnswerValue] = struct{}{}
}

// AnswerValueCleared returns if the "answer_value" field was cleared in this mutation.
func (m *QuestionMutation) AnswerValueCleared() bool {
	_, ok := m.clearedFields[question.FieldAnswerValue]
	return ok
}

// ResetAnswerValue resets all changes to the "answer_value" field.
func (m *QuestionMutation) ResetAnswerValue() {
	m.answer_value = nil
	m.addanswer_value = nil
	delete(m.clearedFields, question.FieldAnswerValue)
}

// SetAnswerRange sets the "answer_range" field.
func (m *QuestionMutation) SetAnswerRange(mr *model.AnswerRange) {
	m.answer_range = &mr
}

// AnswerRange returns the value of the "answer_range" field in the mutation.
func (m *QuestionMutation) AnswerRange() (r *model.AnswerRange, exists bool) {
	v := m.answer_range
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswerRange returns the old "answer_range" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAnswerRange(ctx context.Context) (v *model.AnswerRange, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswerRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswerRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswerRange: %w", err)
	}
	return oldValue.AnswerRange, nil
}

// ClearAnswerRange clears the value of the "answer_range" field.
func (m *QuestionMutation) ClearAnswerRange() {
	m.answer_range = nil
	m.clearedFields[question.FieldAnswerRange] = struct{}{}
}

// AnswerRangeCleared returns if the "answer_range" field was cleared in this mutation.
func (m *QuestionMutation) AnswerRangeCleared() bool {
	_, ok := m.clearedFields[question.FieldAnswerRange]
	return ok
}

// ResetAnswerRange resets all changes to the "answer_range" field.
func (m *QuestionMutation) ResetAnswerRange() {
	m.answer_range = nil
	delete(m.clearedFields, question.FieldAnswerRange)
}

// SetIrtA sets the "irt_a" field.
func (m *QuestionMutation) SetIrtA(f float64) {
	m.irt_a = &f
	m.addirt_a = nil
}

// IrtA returns the value of the "irt_a" field in the mutation.
func (m *QuestionMutation) IrtA() (r float64, exists bool) {
	v := m.irt_a
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtA returns the old "irt_a" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIrtA(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtA: %w", err)
	}
	return oldValue.IrtA, nil
}

// AddIrtA adds f to the "irt_a" field.
func (m *QuestionMutation) AddIrtA(f float64) {
	if m.addirt_a != nil {
		*m.addirt_a += f
	} else {
		m.addirt_a = &f
	}
}

// AddedIrtA returns the value that was added to the "irt_a" field in this mutation.
func (m *QuestionMutation) AddedIrtA() (r float64, exists bool) {
	v := m.addirt_a
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtA resets all changes to the "irt_a" field.
func (m *QuestionMutation) ResetIrtA() {
	m.irt_a = nil
	m.addirt_a = nil
}

// SetIrtB sets the "irt_b" field.
func (m *QuestionMutation) SetIrtB(f float64) {
	m.irt_b = &f
	m.addirt_b = nil
}

// IrtB returns the value of the "irt_b" field in the mutation.
func (m *QuestionMutation) IrtB() (r float64, exists bool) {
	v := m.irt_b
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtB returns the old "irt_b" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIrtB(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtB: %w", err)
	}
	return oldValue.IrtB, nil
}

// AddIrtB adds f to the "irt_b" field.
func (m *QuestionMutation) AddIrtB(f float64) {
	if m.addirt_b != nil {
		*m.addirt_b += f
	} else {
		m.addirt_b = &f
	}
}

// AddedIrtB returns the value that was added to the "irt_b" field in this mutation.
func (m *QuestionMutation) AddedIrtB() (r float64, exists bool) {
	v := m.addirt_b
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtB resets all changes to the "irt_b" field.
func (m *QuestionMutation) ResetIrtB() {
	m.irt_b = nil
	m.addirt_b = nil
}

// SetIrtC sets the "irt_c" field.
func (m *QuestionMutation) SetIrtC(f float64) {
	m.irt_c = &f
	m.addirt_c = nil
}

// IrtC returns the value of the "irt_c" field in the mutation.
func (m *QuestionMutation) IrtC() (r float64, exists bool) {
	v := m.irt_c
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtC returns the old "irt_c" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIrtC(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtC: %w", err)
	}
	return oldValue.IrtC, nil
}

// AddIrtC adds f to the "irt_c" field.
func (m *QuestionMutation) AddIrtC(f float64) {
	if m.addirt_c != nil {
		*m.addirt_c += f
	} else {
		m.addirt_c = &f
	}
}

// AddedIrtC returns the value that was added to the "irt_c" field in this mutation.
func (m *QuestionMutation) AddedIrtC() (r float64, exists bool) {
	v := m.addirt_c
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtC resets all changes to the "irt_c" field.
func (m *QuestionMutation) ResetIrtC() {
	m.irt_c = nil
	m.addirt_c = nil
}

// SetIsAssessment sets the "is_assessment" field.
func (m *QuestionMutation) SetIsAssessment(b bool) {
	m.is_assessment = &b
}

// IsAssessment returns the value of the "is_assessment" field in the mutation.
func (m *QuestionMutation) IsAssessment() (r bool, exists bool) {
	v := m.is_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldIsAssessment returns the old "is_assessment" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldIsAssessment(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsAssessment: %w", err)
	}
	return oldValue.IsAssessment, nil
}

// ResetIsAssessment resets all changes to the "is_assessment" field.
func (m *QuestionMutation) ResetIsAssessment() {
	m.is_assessment = nil
}

// SetAttemptsCount sets the "attempts_count" field.
func (m *QuestionMutation) SetAttemptsCount(i int) {
	m.attempts_count = &i
	m.addattempts_count = nil
}

// AttemptsCount returns the value of the "attempts_count" field in the mutation.
func (m *QuestionMutation) AttemptsCount() (r int, exists bool) {
	v := m.attempts_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptsCount returns the old "attempts_count" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldAttemptsCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptsCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptsCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptsCount: %w", err)
	}
	return oldValue.AttemptsCount, nil
}

// AddAttemptsCount adds i to the "attempts_count" field.
func (m *QuestionMutation) AddAttemptsCount(i int) {
	if m.addattempts_count != nil {
		*m.addattempts_count += i
	} else {
		m.addattempts_count = &i
	}
}

// AddedAttemptsCount returns the value that was added to the "attempts_count" field in this mutation.
func (m *QuestionMutation) AddedAttemptsCount() (r int, exists bool) {
	v := m.addattempts_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptsCount resets all changes to the "attempts_count" field.
func (m *QuestionMutation) ResetAttemptsCount() {
	m.attempts_count = nil
	m.addattempts_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuestionMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuestionMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuestionMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuestionMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuestionMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetPayload sets the "payload" field.
func (m *QuestionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QuestionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *QuestionMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[question.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *QuestionMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[question.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *QuestionMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, question.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.subject != nil {
		fields = append(fields, question.FieldSubject)
	}
	if m.chapter != nil {
		fields = append(fields, question.FieldChapter)
	}
	if m.chapter_key != nil {
		fields = append(fields, question.FieldChapterKey)
	}
	if m.sub_topics != nil {
		fields = append(fields, question.FieldSubTopics)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.options != nil {
		fields = append(fields, question.FieldOptions)
	}
	if m.correct_answer != nil {
		fields = append(fields, question.FieldCorrectAnswer)
	}
	if m.answer_value != nil {
		fields = append(fields, question.FieldAnswerValue)
	}
	if m.answer_range != nil {
		fields = append(fields, question.FieldAnswerRange)
	}
	if m.irt_a != nil {
		fields = append(fields, question.FieldIrtA)
	}
	if m.irt_b != nil {
		fields = append(fields, question.FieldIrtB)
	}
	if m.irt_c != nil {
		fields = append(fields, question.FieldIrtC)
	}
	if m.is_assessment != nil {
		fields = append(fields, question.FieldIsAssessment)
	}
	if m.attempts_count != nil {
		fields = append(fields, question.FieldAttemptsCount)
	}
	if m.correct_count != nil {
		fields = append(fields, question.FieldCorrectCount)
	}
	if m.payload != nil {
		fields = append(fields, question.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldSubject:
		return m.Subject()
	case question.FieldChapter:
		return m.Chapter()
	case question.FieldChapterKey:
		return m.ChapterKey()
	case question.FieldSubTopics:
		return m.SubTopics()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldOptions:
		return m.Options()
	case question.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case question.FieldAnswerValue:
		return m.AnswerValue()
	case question.FieldAnswerRange:
		return m.AnswerRange()
	case question.FieldIrtA:
		return m.IrtA()
	case question.FieldIrtB:
		return m.IrtB()
	case question.FieldIrtC:
		return m.IrtC()
	case question.FieldIsAssessment:
		return m.IsAssessment()
	case question.FieldAttemptsCount:
		return m.AttemptsCount()
	case question.FieldCorrectCount:
		return m.CorrectCount()
	case question.FieldPayload:
		return m.Payload()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldSubject:
		return m.OldSubject(ctx)
	case question.FieldChapter:
		return m.OldChapter(ctx)
	case question.FieldChapterKey:
		return m.OldChapterKey(ctx)
	case question.FieldSubTopics:
		return m.OldSubTopics(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldOptions:
		return m.OldOptions(ctx)
	case question.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case question.FieldAnswerValue:
		return m.OldAnswerValue(ctx)
	case question.FieldAnswerRange:
		return m.OldAnswerRange(ctx)
	case question.FieldIrtA:
		return m.OldIrtA(ctx)
	case question.FieldIrtB:
		return m.OldIrtB(ctx)
	case question.FieldIrtC:
		return m.OldIrtC(ctx)
	case question.FieldIsAssessment:
		return m.OldIsAssessment(ctx)
	case question.FieldAttemptsCount:
		return m.OldAttemptsCount(ctx)
	case question.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case question.FieldPayload:
		return m.OldPayload(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case question.FieldChapter:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapter(v)
		return nil
	case question.FieldChapterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterKey(v)
		return nil
	case question.FieldSubTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubTopics(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldOptions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case question.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case question.FieldAnswerValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerValue(v)
		return nil
	case question.FieldAnswerRange:
		v, ok := value.(*model.AnswerRange)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswerRange(v)
		return nil
	case question.FieldIrtA:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtA(v)
		return nil
	case question.FieldIrtB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtB(v)
		return nil
	case question.FieldIrtC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtC(v)
		return nil
	case question.FieldIsAssessment:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsAssessment(v)
		return nil
	case question.FieldAttemptsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptsCount(v)
		return nil
	case question.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case question.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	if m.addanswer_value != nil {
		fields = append(fields, question.FieldAnswerValue)
	}
	if m.addirt_a != nil {
		fields = append(fields, question.FieldIrtA)
	}
	if m.addirt_b != nil {
		fields = append(fields, question.FieldIrtB)
	}
	if m.addirt_c != nil {
		fields = append(fields, question.FieldIrtC)
	}
	if m.addattempts_count != nil {
		fields = append(fields, question.FieldAttemptsCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, question.FieldCorrectCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case question.FieldAnswerValue:
		return m.AddedAnswerValue()
	case question.FieldIrtA:
		return m.AddedIrtA()
	case question.FieldIrtB:
		return m.AddedIrtB()
	case question.FieldIrtC:
		return m.AddedIrtC()
	case question.FieldAttemptsCount:
		return m.AddedAttemptsCount()
	case question.FieldCorrectCount:
		return m.AddedCorrectCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case question.FieldAnswerValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswerValue(v)
		return nil
	case question.FieldIrtA:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtA(v)
		return nil
	case question.FieldIrtB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtB(v)
		return nil
	case question.FieldIrtC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtC(v)
		return nil
	case question.FieldAttemptsCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptsCount(v)
		return nil
	case question.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldSubTopics) {
		fields = append(fields, question.FieldSubTopics)
	}
	if m.FieldCleared(question.FieldOptions) {
		fields = append(fields, question.FieldOptions)
	}
	if m.FieldCleared(question.FieldAnswerValue) {
		fields = append(fields, question.FieldAnswerValue)
	}
	if m.FieldCleared(question.FieldAnswerRange) {
		fields = append(fields, question.FieldAnswerRange)
	}
	if m.FieldCleared(question.FieldPayload) {
		fields = append(fields, question.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldSubTopics:
		m.ClearSubTopics()
		return nil
	case question.FieldOptions:
		m.ClearOptions()
		return nil
	case question.FieldAnswerValue:
		m.ClearAnswerValue()
		return nil
	case question.FieldAnswerRange:
		m.ClearAnswerRange()
		return nil
	case question.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldSubject:
		m.ResetSubject()
		return nil
	case question.FieldChapter:
		m.ResetChapter()
		return nil
	case question.FieldChapterKey:
		m.ResetChapterKey()
		return nil
	case question.FieldSubTopics:
		m.ResetSubTopics()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldOptions:
		m.ResetOptions()
		return nil
	case question.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case question.FieldAnswerValue:
		m.ResetAnswerValue()
		return nil
	case question.FieldAnswerRange:
		m.ResetAnswerRange()
		return nil
	case question.FieldIrtA:
		m.ResetIrtA()
		return nil
	case question.FieldIrtB:
		m.ResetIrtB()
		return nil
	case question.FieldIrtC:
		m.ResetIrtC()
		return nil
	case question.FieldIsAssessment:
		m.ResetIsAssessment()
		return nil
	case question.FieldAttemptsCount:
		m.ResetAttemptsCount()
		return nil
	case question.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case question.FieldPayload:
		m.ResetPayload()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuotaCounterMutation represents an operation that mutates the QuotaCounter nodes in the graph.
type QuotaCounterMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	feature       *string
	period_key    *string
	used          *int
	addused       *int
	_limit        *int
	add_limit     *int
	resets_at     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuotaCounter, error)
	predicates    []predicate.QuotaCounter
}

var _ ent.Mutation = (*QuotaCounterMutation)(nil)

// quotacounterOption allows management of the mutation configuration using functional options.
type quotacounterOption func(*QuotaCounterMutation)

// newQuotaCounterMutation creates new mutation for the QuotaCounter entity.
func newQuotaCounterMutation(c config, op Op, opts ...quotacounterOption) *QuotaCounterMutation {
	m := &QuotaCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaCounterID sets the ID field of the mutation.
func withQuotaCounterID(id int) quotacounterOption {
	return func(m *QuotaCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaCounter
		)
		m.oldValue = func(ctx context.Context) (*QuotaCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaCounter sets the old QuotaCounter of the mutation.
func withQuotaCounter(node *QuotaCounter) quotacounterOption {
	return func(m *QuotaCounterMutation) {
		m.oldValue = func(context.Context) (*QuotaCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaCounterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaCounterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuotaCounterMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuotaCounterMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuotaCounterMutation) ResetUserID() {
	m.user_id = nil
}

// SetFeature sets the "feature" field.
func (m *QuotaCounterMutation) SetFeature(s string) {
	m.feature = &s
}

// Feature returns the value of the "feature" field in the mutation.
func (m *QuotaCounterMutation) Feature() (r string, exists bool) {
	v := m.feature
	if v == nil {
		return
	}
	return *v, true
}

// OldFeature returns the old "feature" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldFeature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeature: %w", err)
	}
	return oldValue.Feature, nil
}

// ResetFeature resets all changes to the "feature" field.
func (m *QuotaCounterMutation) ResetFeature() {
	m.feature = nil
}

// SetPeriodKey sets the "period_key" field.
func (m *QuotaCounterMutation) SetPeriodKey(s string) {
	m.period_key = &s
}

// PeriodKey returns the value of the "period_key" field in the mutation.
func (m *QuotaCounterMutation) PeriodKey() (r string, exists bool) {
	v := m.period_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodKey returns the old "period_key" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldPeriodKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodKey: %w", err)
	}
	return oldValue.PeriodKey, nil
}

// ResetPeriodKey resets all changes to the "period_key" field.
func (m *QuotaCounterMutation) ResetPeriodKey() {
	m.period_key = nil
}

// SetUsed sets the "used" field.
func (m *QuotaCounterMutation) SetUsed(i int) {
	m.used = &i
	m.addused = nil
}

// Used returns the value of the "used" field in the mutation.
func (m *QuotaCounterMutation) Used() (r int, exists bool) {
	v := m.used
	if v == nil {
		return
	}
	return *v, true
}

// OldUsed returns the old "used" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsed: %w", err)
	}
	return oldValue.Used, nil
}

// AddUsed adds i to the "used" field.
func (m *QuotaCounterMutation) AddUsed(i int) {
	if m.addused != nil {
		*m.addused += i
	} else {
		m.addused = &i
	}
}

// AddedUsed returns the value that was added to the "used" field in this mutation.
func (m *QuotaCounterMutation) AddedUsed() (r int, exists bool) {
	v := m.addused
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsed resets all changes to the "used" field.
func (m *QuotaCounterMutation) ResetUsed() {
	m.used = nil
	m.addused = nil
}

// SetLimit sets the "limit" field.
func (m *QuotaCounterMutation) SetLimit(i int) {
	m._limit = &i
	m.add_limit = nil
}

// Limit returns the value of the "limit" field in the mutation.
func (m *QuotaCounterMutation) Limit() (r int, exists bool) {
	v := m._limit
	if v == nil {
		return
	}
	return *v, true
}

// OldLimit returns the old "limit" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldLimit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimit: %w", err)
	}
	return oldValue.Limit, nil
}

// AddLimit adds i to the "limit" field.
func (m *QuotaCounterMutation) AddLimit(i int) {
	if m.add_limit != nil {
		*m.add_limit += i
	} else {
		m.add_limit = &i
	}
}

// AddedLimit returns the value that was added to the "limit" field in this mutation.
func (m *QuotaCounterMutation) AddedLimit() (r int, exists bool) {
	v := m.add_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetLimit resets all changes to the "limit" field.
func (m *QuotaCounterMutation) ResetLimit() {
	m._limit = nil
	m.add_limit = nil
}

// SetResetsAt sets the "resets_at" field.
func (m *QuotaCounterMutation) SetResetsAt(t time.Time) {
	m.resets_at = &t
}

// ResetsAt returns the value of the "resets_at" field in the mutation.
func (m *QuotaCounterMutation) ResetsAt() (r time.Time, exists bool) {
	v := m.resets_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResetsAt returns the old "resets_at" field's value of the QuotaCounter entity.
// If the QuotaCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaCounterMutation) OldResetsAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResetsAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResetsAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResetsAt: %w", err)
	}
	return oldValue.ResetsAt, nil
}

// ResetResetsAt resets all changes to the "resets_at" field.
func (m *QuotaCounterMutation) ResetResetsAt() {
	m.resets_at = nil
}

// Where appends a list predicates to the QuotaCounterMutation builder.
func (m *QuotaCounterMutation) Where(ps ...predicate.QuotaCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaCounter).
func (m *QuotaCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaCounterMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, quotacounter.FieldUserID)
	}
	if m.feature != nil {
		fields = append(fields, quotacounter.FieldFeature)
	}
	if m.period_key != nil {
		fields = append(fields, quotacounter.FieldPeriodKey)
	}
	if m.used != nil {
		fields = append(fields, quotacounter.FieldUsed)
	}
	if m._limit != nil {
		fields = append(fields, quotacounter.FieldLimit)
	}
	if m.resets_at != nil {
		fields = append(fields, quotacounter.FieldResetsAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotacounter.FieldUserID:
		return m.UserID()
	case quotacounter.FieldFeature:
		return m.Feature()
	case quotacounter.FieldPeriodKey:
		return m.PeriodKey()
	case quotacounter.FieldUsed:
		return m.Used()
	case quotacounter.FieldLimit:
		return m.Limit()
	case quotacounter.FieldResetsAt:
		return m.ResetsAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotacounter.FieldUserID:
		return m.OldUserID(ctx)
	case quotacounter.FieldFeature:
		return m.OldFeature(ctx)
	case quotacounter.FieldPeriodKey:
		return m.OldPeriodKey(ctx)
	case quotacounter.FieldUsed:
		return m.OldUsed(ctx)
	case quotacounter.FieldLimit:
		return m.OldLimit(ctx)
	case quotacounter.FieldResetsAt:
		return m.OldResetsAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotacounter.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case quotacounter.FieldFeature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeature(v)
		return nil
	case quotacounter.FieldPeriodKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodKey(v)
		return nil
	case quotacounter.FieldUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsed(v)
		return nil
	case quotacounter.FieldLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimit(v)
		return nil
	case quotacounter.FieldResetsAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResetsAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaCounterMutation) AddedFields() []string {
	var fields []string
	if m.addused != nil {
		fields = append(fields, quotacounter.FieldUsed)
	}
	if m.add_limit != nil {
		fields = append(fields, quotacounter.FieldLimit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotacounter.FieldUsed:
		return m.AddedUsed()
	case quotacounter.FieldLimit:
		return m.AddedLimit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotacounter.FieldUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsed(v)
		return nil
	case quotacounter.FieldLimit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLimit(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuotaCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaCounterMutation) ResetField(name string) error {
	switch name {
	case quotacounter.FieldUserID:
		m.ResetUserID()
		return nil
	case quotacounter.FieldFeature:
		m.ResetFeature()
		return nil
	case quotacounter.FieldPeriodKey:
		m.ResetPeriodKey()
		return nil
	case quotacounter.FieldUsed:
		m.ResetUsed()
		return nil
	case quotacounter.FieldLimit:
		m.ResetLimit()
		return nil
	case quotacounter.FieldResetsAt:
		m.ResetResetsAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaCounter edge %s", name)
}

// ResponseMutation represents an operation that mutates the Response nodes in the graph.
type ResponseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	session_id            *string
	question_id           *string
	kind                  *string
	chapter_key           *string
	sub_topics            *[]string
	appendsub_topics      []string
	student_answer        *string
	correct_answer        *string
	is_correct            *bool
	time_taken_seconds    *int
	addtime_taken_seconds *int
	irt_a                 *float64
	addirt_a              *float64
	irt_b                 *float64
	addirt_b              *float64
	irt_c                 *float64
	addirt_c              *float64
	theta_delta           *float64
	addtheta_delta        *float64
	answered_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Response, error)
	predicates            []predicate.Response
}

var _ ent.Mutation = (*ResponseMutation)(nil)

// responseOption allows management of the mutation configuration using functional options.
type responseOption func(*ResponseMutation)

// newResponseMutation creates new mutation for the Response entity.
func newResponseMutation(c config, op Op, opts ...responseOption) *ResponseMutation {
	m := &ResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseID sets the ID field of the mutation.
func withResponseID(id int) responseOption {
	return func(m *ResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *Response
		)
		m.oldValue = func(ctx context.Context) (*Response, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Response.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponse sets the old Response of the mutation.
func withResponse(node *Response) responseOption {
	return func(m *ResponseMutation) {
		m.oldValue = func(context.Context) (*Response, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Response.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ResponseMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResponseMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResponseMutation) ResetUserID() {
	m.user_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *ResponseMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ResponseMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ResponseMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *ResponseMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ResponseMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ResponseMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetKind sets the "kind" field.
func (m *ResponseMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ResponseMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ResponseMutation) ResetKind() {
	m.kind = nil
}

// SetChapterKey sets the "chapter_key" field.
func (m *ResponseMutation) SetChapterKey(s string) {
	m.chapter_key = &s
}

// ChapterKey returns the value of the "chapter_key" field in the mutation.
func (m *ResponseMutation) ChapterKey() (r string, exists bool) {
	v := m.chapter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterKey returns the old "chapter_key" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldChapterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterKey: %w", err)
	}
	return oldValue.ChapterKey, nil
}

// ResetChapterKey resets all changes to the "chapter_key" field.
func (m *ResponseMutation) ResetChapterKey() {
	m.chapter_key = nil
}

// SetSubTopics sets the "sub_topics" field.
func (m *ResponseMutation) SetSubTopics(s []string) {
	m.sub_topics = &s
	m.appendsub_topics = nil
}

// SubTopics returns the value of the "sub_topics" field in the mutation.
func (m *ResponseMutation) SubTopics() (r []string, exists bool) {
	v := m.sub_topics
	if v == nil {
		return
	}
	return *v, true
}

// OldSubTopics returns the old "sub_topics" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldSubTopics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubTopics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubTopics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubTopics: %w", err)
	}
	return oldValue.SubTopics, nil
}

// AppendSubTopics adds s to the "sub_topics" field.
func (m *ResponseMutation) AppendSubTopics(s []string) {
	m.appendsub_topics = append(m.appendsub_topics, s...)
}

// AppendedSubTopics returns the list of values that were appended to the "sub_topics" field in this mutation.
func (m *ResponseMutation) AppendedSubTopics() ([]string, bool) {
	if len(m.appendsub_topics) == 0 {
		return nil, false
	}
	return m.appendsub_topics, true
}

// ClearSubTopics clears the value of the "sub_topics" field.
func (m *ResponseMutation) ClearSubTopics() {
	m.sub_topics = nil
	m.appendsub_topics = nil
	m.clearedFields[response.FieldSubTopics] = struct{}{}
}

// SubTopicsCleared returns if the "sub_topics" field was cleared in this mutation.
func (m *ResponseMutation) SubTopicsCleared() bool {
	_, ok := m.clearedFields[response.FieldSubTopics]
	return ok
}

// ResetSubTopics resets all changes to the "sub_topics" field.
func (m *ResponseMutation) ResetSubTopics() {
	m.sub_topics = nil
	m.appendsub_topics = nil
	delete(m.clearedFields, response.FieldSubTopics)
}

// SetStudentAnswer sets the "student_answer" field.
func (m *ResponseMutation) SetStudentAnswer(s string) {
	m.student_answer = &s
}

// StudentAnswer returns the value of the "student_answer" field in the mutation.
func (m *ResponseMutation) StudentAnswer() (r string, exists bool) {
	v := m.student_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentAnswer returns the old "student_answer" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldStudentAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentAnswer: %w", err)
	}
	return oldValue.StudentAnswer, nil
}

// ResetStudentAnswer resets all changes to the "student_answer" field.
func (m *ResponseMutation) ResetStudentAnswer() {
	m.student_answer = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *ResponseMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *ResponseMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *ResponseMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *ResponseMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *ResponseMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *ResponseMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (m *ResponseMutation) SetTimeTakenSeconds(i int) {
	m.time_taken_seconds = &i
	m.addtime_taken_seconds = nil
}

// TimeTakenSeconds returns the value of the "time_taken_seconds" field in the mutation.
func (m *ResponseMutation) TimeTakenSeconds() (r int, exists bool) {
	v := m.time_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSeconds returns the old "time_taken_seconds" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldTimeTakenSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSeconds: %w", err)
	}
	return oldValue.TimeTakenSeconds, nil
}

// AddTimeTakenSeconds adds i to the "time_taken_seconds" field.
func (m *ResponseMutation) AddTimeTakenSeconds(i int) {
	if m.addtime_taken_seconds != nil {
		*m.addtime_taken_seconds += i
	} else {
		m.addtime_taken_seconds = &i
	}
}

// AddedTimeTakenSeconds returns the value that was added to the "time_taken_seconds" field in this mutation.
func (m *ResponseMutation) AddedTimeTakenSeconds() (r int, exists bool) {
	v := m.addtime_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenSeconds resets all changes to the "time_taken_seconds" field.
func (m *ResponseMutation) ResetTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
}

// SetIrtA sets the "irt_a" field.
func (m *ResponseMutation) SetIrtA(f float64) {
	m.irt_a = &f
	m.addirt_a = nil
}

// IrtA returns the value of the "irt_a" field in the mutation.
func (m *ResponseMutation) IrtA() (r float64, exists bool) {
	v := m.irt_a
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtA returns the old "irt_a" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldIrtA(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtA is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtA requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtA: %w", err)
	}
	return oldValue.IrtA, nil
}

// AddIrtA adds f to the "irt_a" field.
func (m *ResponseMutation) AddIrtA(f float64) {
	if m.addirt_a != nil {
		*m.addirt_a += f
	} else {
		m.addirt_a = &f
	}
}

// AddedIrtA returns the value that was added to the "irt_a" field in this mutation.
func (m *ResponseMutation) AddedIrtA() (r float64, exists bool) {
	v := m.addirt_a
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtA resets all changes to the "irt_a" field.
func (m *ResponseMutation) ResetIrtA() {
	m.irt_a = nil
	m.addirt_a = nil
}

// SetIrtB sets the "irt_b" field.
func (m *ResponseMutation) SetIrtB(f float64) {
	m.irt_b = &f
	m.addirt_b = nil
}

// IrtB returns the value of the "irt_b" field in the mutation.
func (m *ResponseMutation) IrtB() (r float64, exists bool) {
	v := m.irt_b
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtB returns the old "irt_b" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldIrtB(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtB is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtB requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtB: %w", err)
	}
	return oldValue.IrtB, nil
}

// AddIrtB adds f to the "irt_b" field.
func (m *ResponseMutation) AddIrtB(f float64) {
	if m.addirt_b != nil {
		*m.addirt_b += f
	} else {
		m.addirt_b = &f
	}
}

// AddedIrtB returns the value that was added to the "irt_b" field in this mutation.
func (m *ResponseMutation) AddedIrtB() (r float64, exists bool) {
	v := m.addirt_b
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtB resets all changes to the "irt_b" field.
func (m *ResponseMutation) ResetIrtB() {
	m.irt_b = nil
	m.addirt_b = nil
}

// SetIrtC sets the "irt_c" field.
func (m *ResponseMutation) SetIrtC(f float64) {
	m.irt_c = &f
	m.addirt_c = nil
}

// IrtC returns the value of the "irt_c" field in the mutation.
func (m *ResponseMutation) IrtC() (r float64, exists bool) {
	v := m.irt_c
	if v == nil {
		return
	}
	return *v, true
}

// OldIrtC returns the old "irt_c" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldIrtC(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrtC is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrtC requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrtC: %w", err)
	}
	return oldValue.IrtC, nil
}

// AddIrtC adds f to the "irt_c" field.
func (m *ResponseMutation) AddIrtC(f float64) {
	if m.addirt_c != nil {
		*m.addirt_c += f
	} else {
		m.addirt_c = &f
	}
}

// AddedIrtC returns the value that was added to the "irt_c" field in this mutation.
func (m *ResponseMutation) AddedIrtC() (r float64, exists bool) {
	v := m.addirt_c
	if v == nil {
		return
	}
	return *v, true
}

// ResetIrtC resets all changes to the "irt_c" field.
func (m *ResponseMutation) ResetIrtC() {
	m.irt_c = nil
	m.addirt_c = nil
}

// SetThetaDelta sets the "theta_delta" field.
func (m *ResponseMutation) SetThetaDelta(f float64) {
	m.theta_delta = &f
	m.addtheta_delta = nil
}

// ThetaDelta returns the value of the "theta_delta" field in the mutation.
func (m *ResponseMutation) ThetaDelta() (r float64, exists bool) {
	v := m.theta_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaDelta returns the old "theta_delta" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldThetaDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaDelta: %w", err)
	}
	return oldValue.ThetaDelta, nil
}

// AddThetaDelta adds f to the "theta_delta" field.
func (m *ResponseMutation) AddThetaDelta(f float64) {
	if m.addtheta_delta != nil {
		*m.addtheta_delta += f
	} else {
		m.addtheta_delta = &f
	}
}

// AddedThetaDelta returns the value that was added to the "theta_delta" field in this mutation.
func (m *ResponseMutation) AddedThetaDelta() (r float64, exists bool) {
	v := m.addtheta_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaDelta resets all changes to the "theta_delta" field.
func (m *ResponseMutation) ResetThetaDelta() {
	m.theta_delta = nil
	m.addtheta_delta = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *ResponseMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *ResponseMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *ResponseMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// Where appends a list predicates to the ResponseMutation builder.
func (m *ResponseMutation) Where(ps ...predicate.Response) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Response, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Response).
func (m *ResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.user_id != nil {
		fields = append(fields, response.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, response.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, response.FieldQuestionID)
	}
	if m.kind != nil {
		fields = append(fields, response.FieldKind)
	}
	if m.chapter_key != nil {
		fields = append(fields, response.FieldChapterKey)
	}
	if m.sub_topics != nil {
		fields = append(fields, response.FieldSubTopics)
	}
	if m.student_answer != nil {
		fields = append(fields, response.FieldStudentAnswer)
	}
	if m.correct_answer != nil {
		fields = append(fields, response.FieldCorrectAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, response.FieldIsCorrect)
	}
	if m.time_taken_seconds != nil {
		fields = append(fields, response.FieldTimeTakenSeconds)
	}
	if m.irt_a != nil {
		fields = append(fields, response.FieldIrtA)
	}
	if m.irt_b != nil {
		fields = append(fields, response.FieldIrtB)
	}
	if m.irt_c != nil {
		fields = append(fields, response.FieldIrtC)
	}
	if m.theta_delta != nil {
		fields = append(fields, response.FieldThetaDelta)
	}
	if m.answered_at != nil {
		fields = append(fields, response.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case response.FieldUserID:
		return m.UserID()
	case response.FieldSessionID:
		return m.SessionID()
	case response.FieldQuestionID:
		return m.QuestionID()
	case response.FieldKind:
		return m.Kind()
	case response.FieldChapterKey:
		return m.ChapterKey()
	case response.FieldSubTopics:
		return m.SubTopics()
	case response.FieldStudentAnswer:
		return m.StudentAnswer()
	case response.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case response.FieldIsCorrect:
		return m.IsCorrect()
	case response.FieldTimeTakenSeconds:
		return m.TimeTakenSeconds()
	case response.FieldIrtA:
		return m.IrtA()
	case response.FieldIrtB:
		return m.IrtB()
	case response.FieldIrtC:
		return m.IrtC()
	case response.FieldThetaDelta:
		return m.ThetaDelta()
	case response.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case response.FieldUserID:
		return m.OldUserID(ctx)
	case response.FieldSessionID:
		return m.OldSessionID(ctx)
	case response.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case response.FieldKind:
		return m.OldKind(ctx)
	case response.FieldChapterKey:
		return m.OldChapterKey(ctx)
	case response.FieldSubTopics:
		return m.OldSubTopics(ctx)
	case response.FieldStudentAnswer:
		return m.OldStudentAnswer(ctx)
	case response.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case response.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case response.FieldTimeTakenSeconds:
		return m.OldTimeTakenSeconds(ctx)
	case response.FieldIrtA:
		return m.OldIrtA(ctx)
	case response.FieldIrtB:
		return m.OldIrtB(ctx)
	case response.FieldIrtC:
		return m.OldIrtC(ctx)
	case response.FieldThetaDelta:
		return m.OldThetaDelta(ctx)
	case response.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Response field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case response.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case response.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case response.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case response.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case response.FieldChapterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterKey(v)
		return nil
	case response.FieldSubTopics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubTopics(v)
		return nil
	case response.FieldStudentAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentAnswer(v)
		return nil
	case response.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case response.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case response.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSeconds(v)
		return nil
	case response.FieldIrtA:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtA(v)
		return nil
	case response.FieldIrtB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtB(v)
		return nil
	case response.FieldIrtC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrtC(v)
		return nil
	case response.FieldThetaDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaDelta(v)
		return nil
	case response.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseMutation) AddedFields() []string {
	var fields []string
	if m.addtime_taken_seconds != nil {
		fields = append(fields, response.FieldTimeTakenSeconds)
	}
	if m.addirt_a != nil {
		fields = append(fields, response.FieldIrtA)
	}
	if m.addirt_b != nil {
		fields = append(fields, response.FieldIrtB)
	}
	if m.addirt_c != nil {
		fields = append(fields, response.FieldIrtC)
	}
	if m.addtheta_delta != nil {
		fields = append(fields, response.FieldThetaDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case response.FieldTimeTakenSeconds:
		return m.AddedTimeTakenSeconds()
	case response.FieldIrtA:
		return m.AddedIrtA()
	case response.FieldIrtB:
		return m.AddedIrtB()
	case response.FieldIrtC:
		return m.AddedIrtC()
	case response.FieldThetaDelta:
		return m.AddedThetaDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case response.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSeconds(v)
		return nil
	case response.FieldIrtA:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtA(v)
		return nil
	case response.FieldIrtB:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtB(v)
		return nil
	case response.FieldIrtC:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrtC(v)
		return nil
	case response.FieldThetaDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaDelta(v)
		return nil
	}
	return fmt.Errorf("unknown Response numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(response.FieldSubTopics) {
		fields = append(fields, response.FieldSubTopics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseMutation) ClearField(name string) error {
	switch name {
	case response.FieldSubTopics:
		m.ClearSubTopics()
		return nil
	}
	return fmt.Errorf("unknown Response nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseMutation) ResetField(name string) error {
	switch name {
	case response.FieldUserID:
		m.ResetUserID()
		return nil
	case response.FieldSessionID:
		m.ResetSessionID()
		return nil
	case response.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case response.FieldKind:
		m.ResetKind()
		return nil
	case response.FieldChapterKey:
		m.ResetChapterKey()
		return nil
	case response.FieldSubTopics:
		m.ResetSubTopics()
		return nil
	case response.FieldStudentAnswer:
		m.ResetStudentAnswer()
		return nil
	case response.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case response.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case response.FieldTimeTakenSeconds:
		m.ResetTimeTakenSeconds()
		return nil
	case response.FieldIrtA:
		m.ResetIrtA()
		return nil
	case response.FieldIrtB:
		m.ResetIrtB()
		return nil
	case response.FieldIrtC:
		m.ResetIrtC()
		return nil
	case response.FieldThetaDelta:
		m.ResetThetaDelta()
		return nil
	case response.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Response unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Response edge %s", name)
}

// ReviewIntervalMutation represents an operation that mutates the ReviewInterval nodes in the graph.
type ReviewIntervalMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	question_id       *string
	interval_days     *int
	addinterval_days  *int
	next_review       *time.Time
	times_reviewed    *int
	addtimes_reviewed *int
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ReviewInterval, error)
	predicates        []predicate.ReviewInterval
}

var _ ent.Mutation = (*ReviewIntervalMutation)(nil)

// reviewintervalOption allows management of the mutation configuration using functional options.
type reviewintervalOption func(*ReviewIntervalMutation)

// newReviewIntervalMutation creates new mutation for the ReviewInterval entity.
func newReviewIntervalMutation(c config, op Op, opts ...reviewintervalOption) *ReviewIntervalMutation {
	m := &ReviewIntervalMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewInterval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewIntervalID sets the ID field of the mutation.
func withReviewIntervalID(id int) reviewintervalOption {
	return func(m *ReviewIntervalMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewInterval
		)
		m.oldValue = func(ctx context.Context) (*ReviewInterval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewInterval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewInterval sets the old ReviewInterval of the mutation.
func withReviewInterval(node *ReviewInterval) reviewintervalOption {
	return func(m *ReviewIntervalMutation) {
		m.oldValue = func(context.Context) (*ReviewInterval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewIntervalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewIntervalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewIntervalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewIntervalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewInterval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewIntervalMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewIntervalMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewIntervalMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *ReviewIntervalMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ReviewIntervalMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ReviewIntervalMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewIntervalMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewIntervalMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewIntervalMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewIntervalMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewIntervalMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetNextReview sets the "next_review" field.
func (m *ReviewIntervalMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *ReviewIntervalMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *ReviewIntervalMutation) ResetNextReview() {
	m.next_review = nil
}

// SetTimesReviewed sets the "times_reviewed" field.
func (m *ReviewIntervalMutation) SetTimesReviewed(i int) {
	m.times_reviewed = &i
	m.addtimes_reviewed = nil
}

// TimesReviewed returns the value of the "times_reviewed" field in the mutation.
func (m *ReviewIntervalMutation) TimesReviewed() (r int, exists bool) {
	v := m.times_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesReviewed returns the old "times_reviewed" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldTimesReviewed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesReviewed: %w", err)
	}
	return oldValue.TimesReviewed, nil
}

// AddTimesReviewed adds i to the "times_reviewed" field.
func (m *ReviewIntervalMutation) AddTimesReviewed(i int) {
	if m.addtimes_reviewed != nil {
		*m.addtimes_reviewed += i
	} else {
		m.addtimes_reviewed = &i
	}
}

// AddedTimesReviewed returns the value that was added to the "times_reviewed" field in this mutation.
func (m *ReviewIntervalMutation) AddedTimesReviewed() (r int, exists bool) {
	v := m.addtimes_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesReviewed resets all changes to the "times_reviewed" field.
func (m *ReviewIntervalMutation) ResetTimesReviewed() {
	m.times_reviewed = nil
	m.addtimes_reviewed = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewIntervalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewIntervalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewInterval entity.
// If the ReviewInterval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewIntervalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewIntervalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReviewIntervalMutation builder.
func (m *ReviewIntervalMutation) Where(ps ...predicate.ReviewInterval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewIntervalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewIntervalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewInterval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewIntervalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewIntervalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewInterval).
func (m *ReviewIntervalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewIntervalMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, reviewinterval.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, reviewinterval.FieldQuestionID)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewinterval.FieldIntervalDays)
	}
	if m.next_review != nil {
		fields = append(fields, reviewinterval.FieldNextReview)
	}
	if m.times_reviewed != nil {
		fields = append(fields, reviewinterval.FieldTimesReviewed)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewinterval.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewIntervalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewinterval.FieldUserID:
		return m.UserID()
	case reviewinterval.FieldQuestionID:
		return m.QuestionID()
	case reviewinterval.FieldIntervalDays:
		return m.IntervalDays()
	case reviewinterval.FieldNextReview:
		return m.NextReview()
	case reviewinterval.FieldTimesReviewed:
		return m.TimesReviewed()
	case reviewinterval.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewIntervalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewinterval.FieldUserID:
		return m.OldUserID(ctx)
	case reviewinterval.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case reviewinterval.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewinterval.FieldNextReview:
		return m.OldNextReview(ctx)
	case reviewinterval.FieldTimesReviewed:
		return m.OldTimesReviewed(ctx)
	case reviewinterval.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewInterval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewIntervalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewinterval.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewinterval.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case reviewinterval.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewinterval.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	case reviewinterval.FieldTimesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesReviewed(v)
		return nil
	case reviewinterval.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewInterval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewIntervalMutation) AddedFields() []string {
	var fields []string
	if m.addinterval_days != nil {
		fields = append(fields, reviewinterval.FieldIntervalDays)
	}
	if m.addtimes_reviewed != nil {
		fields = append(fields, reviewinterval.FieldTimesReviewed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewIntervalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewinterval.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewinterval.FieldTimesReviewed:
		return m.AddedTimesReviewed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewIntervalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewinterval.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewinterval.FieldTimesReviewed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesReviewed(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewInterval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewIntervalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewIntervalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewIntervalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewInterval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewIntervalMutation) ResetField(name string) error {
	switch name {
	case reviewinterval.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewinterval.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case reviewinterval.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewinterval.FieldNextReview:
		m.ResetNextReview()
		return nil
	case reviewinterval.FieldTimesReviewed:
		m.ResetTimesReviewed()
		return nil
	case reviewinterval.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewInterval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewIntervalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewIntervalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewIntervalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewIntervalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewIntervalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewIntervalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewIntervalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewInterval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewIntervalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewInterval edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	kind                  *string
	status                *string
	chapter_key           *string
	template_id           *string
	learning_phase        *string
	is_recovery_quiz      *bool
	quiz_number           *int
	addquiz_number        *int
	questions_total       *int
	addquestions_total    *int
	questions_answered    *int
	addquestions_answered *int
	correct_count         *int
	addcorrect_count      *int
	total_time_seconds    *int
	addtotal_time_seconds *int
	invalid_reason        *string
	expires_at            *time.Time
	completed_at          *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Session, error)
	predicates            []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetKind sets the "kind" field.
func (m *SessionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SessionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SessionMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetChapterKey sets the "chapter_key" field.
func (m *SessionMutation) SetChapterKey(s string) {
	m.chapter_key = &s
}

// ChapterKey returns the value of the "chapter_key" field in the mutation.
func (m *SessionMutation) ChapterKey() (r string, exists bool) {
	v := m.chapter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterKey returns the old "chapter_key" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldChapterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterKey: %w", err)
	}
	return oldValue.ChapterKey, nil
}

// ClearChapterKey clears the value of the "chapter_key" field.
func (m *SessionMutation) ClearChapterKey() {
	m.chapter_key = nil
	m.clearedFields[session.FieldChapterKey] = struct{}{}
}

// ChapterKeyCleared returns if the "chapter_key" field was cleared in this mutation.
func (m *SessionMutation) ChapterKeyCleared() bool {
	_, ok := m.clearedFields[session.FieldChapterKey]
	return ok
}

// ResetChapterKey resets all changes to the "chapter_key" field.
func (m *SessionMutation) ResetChapterKey() {
	m.chapter_key = nil
	delete(m.clearedFields, session.FieldChapterKey)
}

// SetTemplateID sets the "template_id" field.
func (m *SessionMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *SessionMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTemplateID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *SessionMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[session.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *SessionMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[session.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *SessionMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, session.FieldTemplateID)
}

// SetLearningPhase sets the "learning_phase" field.
func (m *SessionMutation) SetLearningPhase(s string) {
	m.learning_phase = &s
}

// LearningPhase returns the value of the "learning_phase" field in the mutation.
func (m *SessionMutation) LearningPhase() (r string, exists bool) {
	v := m.learning_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningPhase returns the old "learning_phase" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLearningPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningPhase: %w", err)
	}
	return oldValue.LearningPhase, nil
}

// ClearLearningPhase clears the value of the "learning_phase" field.
func (m *SessionMutation) ClearLearningPhase() {
	m.learning_phase = nil
	m.clearedFields[session.FieldLearningPhase] = struct{}{}
}

// LearningPhaseCleared returns if the "learning_phase" field was cleared in this mutation.
func (m *SessionMutation) LearningPhaseCleared() bool {
	_, ok := m.clearedFields[session.FieldLearningPhase]
	return ok
}

// ResetLearningPhase resets all changes to the "learning_phase" field.
func (m *SessionMutation) ResetLearningPhase() {
	m.learning_phase = nil
	delete(m.clearedFields, session.FieldLearningPhase)
}

// SetIsRecoveryQuiz sets the "is_recovery_quiz" field.
func (m *SessionMutation) SetIsRecoveryQuiz(b bool) {
	m.is_recovery_quiz = &b
}

// IsRecoveryQuiz returns the value of the "is_recovery_quiz" field in the mutation.
func (m *SessionMutation) IsRecoveryQuiz() (r bool, exists bool) {
	v := m.is_recovery_quiz
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRecoveryQuiz returns the old "is_recovery_quiz" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldIsRecoveryQuiz(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRecoveryQuiz is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRecoveryQuiz requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRecoveryQuiz: %w", err)
	}
	return oldValue.IsRecoveryQuiz, nil
}

// ResetIsRecoveryQuiz resets all changes to the "is_recovery_quiz" field.
func (m *SessionMutation) ResetIsRecoveryQuiz() {
	m.is_recovery_quiz = nil
}

// SetQuizNumber sets the "quiz_number" field.
func (m *SessionMutation) SetQuizNumber(i int) {
	m.quiz_number = &i
	m.addquiz_number = nil
}

// QuizNumber returns the value of the "quiz_number" field in the mutation.
func (m *SessionMutation) QuizNumber() (r int, exists bool) {
	v := m.quiz_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizNumber returns the old "quiz_number" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldQuizNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizNumber: %w", err)
	}
	return oldValue.QuizNumber, nil
}

// AddQuizNumber adds i to the "quiz_number" field.
func (m *SessionMutation) AddQuizNumber(i int) {
	if m.addquiz_number != nil {
		*m.addquiz_number += i
	} else {
		m.addquiz_number = &i
	}
}

// AddedQuizNumber returns the value that was added to the "quiz_number" field in this mutation.
func (m *SessionMutation) AddedQuizNumber() (r int, exists bool) {
	v := m.addquiz_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizNumber resets all changes to the "quiz_number" field.
func (m *SessionMutation) ResetQuizNumber() {
	m.quiz_number = nil
	m.addquiz_number = nil
}

// SetQuestionsTotal sets the "questions_total" field.
func (m *SessionMutation) SetQuestionsTotal(i int) {
	m.questions_total = &i
	m.addquestions_total = nil
}

// QuestionsTotal returns the value of the "questions_total" field in the mutation.
func (m *SessionMutation) QuestionsTotal() (r int, exists bool) {
	v := m.questions_total
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsTotal returns the old "questions_total" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldQuestionsTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsTotal: %w", err)
	}
	return oldValue.QuestionsTotal, nil
}

// AddQuestionsTotal adds i to the "questions_total" field.
func (m *SessionMutation) AddQuestionsTotal(i int) {
	if m.addquestions_total != nil {
		*m.addquestions_total += i
	} else {
		m.addquestions_total = &i
	}
}

// AddedQuestionsTotal returns the value that was added to the "questions_total" field in this mutation.
func (m *SessionMutation) AddedQuestionsTotal() (r int, exists bool) {
	v := m.addquestions_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsTotal resets all changes to the "questions_total" field.
func (m *SessionMutation) ResetQuestionsTotal() {
	m.questions_total = nil
	m.addquestions_total = nil
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (m *SessionMutation) SetQuestionsAnswered(i int) {
	m.questions_answered = &i
	m.addquestions_answered = nil
}

// QuestionsAnswered returns the value of the "questions_answered" field in the mutation.
func (m *SessionMutation) QuestionsAnswered() (r int, exists bool) {
	v := m.questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionsAnswered returns the old "questions_answered" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionsAnswered: %w", err)
	}
	return oldValue.QuestionsAnswered, nil
}

// AddQuestionsAnswered adds i to the "questions_answered" field.
func (m *SessionMutation) AddQuestionsAnswered(i int) {
	if m.addquestions_answered != nil {
		*m.addquestions_answered += i
	} else {
		m.addquestions_answered = &i
	}
}

// AddedQuestionsAnswered returns the value that was added to the "questions_answered" field in this mutation.
func (m *SessionMutation) AddedQuestionsAnswered() (r int, exists bool) {
	v := m.addquestions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionsAnswered resets all changes to the "questions_answered" field.
func (m *SessionMutation) ResetQuestionsAnswered() {
	m.questions_answered = nil
	m.addquestions_answered = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *SessionMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *SessionMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *SessionMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *SessionMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *SessionMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (m *SessionMutation) SetTotalTimeSeconds(i int) {
	m.total_time_seconds = &i
	m.addtotal_time_seconds = nil
}

// TotalTimeSeconds returns the value of the "total_time_seconds" field in the mutation.
func (m *SessionMutation) TotalTimeSeconds() (r int, exists bool) {
	v := m.total_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSeconds returns the old "total_time_seconds" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalTimeSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSeconds: %w", err)
	}
	return oldValue.TotalTimeSeconds, nil
}

// AddTotalTimeSeconds adds i to the "total_time_seconds" field.
func (m *SessionMutation) AddTotalTimeSeconds(i int) {
	if m.addtotal_time_seconds != nil {
		*m.addtotal_time_seconds += i
	} else {
		m.addtotal_time_seconds = &i
	}
}

// AddedTotalTimeSeconds returns the value that was added to the "total_time_seconds" field in this mutation.
func (m *SessionMutation) AddedTotalTimeSeconds() (r int, exists bool) {
	v := m.addtotal_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSeconds resets all changes to the "total_time_seconds" field.
func (m *SessionMutation) ResetTotalTimeSeconds() {
	m.total_time_seconds = nil
	m.addtotal_time_seconds = nil
}

// SetInvalidReason sets the "invalid_reason" field.
func (m *SessionMutation) SetInvalidReason(s string) {
	m.invalid_reason = &s
}

// InvalidReason returns the value of the "invalid_reason" field in the mutation.
func (m *SessionMutation) InvalidReason() (r string, exists bool) {
	v := m.invalid_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldInvalidReason returns the old "invalid_reason" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldInvalidReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvalidReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvalidReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvalidReason: %w", err)
	}
	return oldValue.InvalidReason, nil
}

// ClearInvalidReason clears the value of the "invalid_reason" field.
func (m *SessionMutation) ClearInvalidReason() {
	m.invalid_reason = nil
	m.clearedFields[session.FieldInvalidReason] = struct{}{}
}

// InvalidReasonCleared returns if the "invalid_reason" field was cleared in this mutation.
func (m *SessionMutation) InvalidReasonCleared() bool {
	_, ok := m.clearedFields[session.FieldInvalidReason]
	return ok
}

// ResetInvalidReason resets all changes to the "invalid_reason" field.
func (m *SessionMutation) ResetInvalidReason() {
	m.invalid_reason = nil
	delete(m.clearedFields, session.FieldInvalidReason)
}

// SetExpiresAt sets the "expires_at" field.
func (m *SessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (m *SessionMutation) ClearExpiresAt() {
	m.expires_at = nil
	m.clearedFields[session.FieldExpiresAt] = struct{}{}
}

// ExpiresAtCleared returns if the "expires_at" field was cleared in this mutation.
func (m *SessionMutation) ExpiresAtCleared() bool {
	_, ok := m.clearedFields[session.FieldExpiresAt]
	return ok
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SessionMutation) ResetExpiresAt() {
	m.expires_at = nil
	delete(m.clearedFields, session.FieldExpiresAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.user_id != nil {
		fields = append(fields, session.FieldUserID)
	}
	if m.kind != nil {
		fields = append(fields, session.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.chapter_key != nil {
		fields = append(fields, session.FieldChapterKey)
	}
	if m.template_id != nil {
		fields = append(fields, session.FieldTemplateID)
	}
	if m.learning_phase != nil {
		fields = append(fields, session.FieldLearningPhase)
	}
	if m.is_recovery_quiz != nil {
		fields = append(fields, session.FieldIsRecoveryQuiz)
	}
	if m.quiz_number != nil {
		fields = append(fields, session.FieldQuizNumber)
	}
	if m.questions_total != nil {
		fields = append(fields, session.FieldQuestionsTotal)
	}
	if m.questions_answered != nil {
		fields = append(fields, session.FieldQuestionsAnswered)
	}
	if m.correct_count != nil {
		fields = append(fields, session.FieldCorrectCount)
	}
	if m.total_time_seconds != nil {
		fields = append(fields, session.FieldTotalTimeSeconds)
	}
	if m.invalid_reason != nil {
		fields = append(fields, session.FieldInvalidReason)
	}
	if m.expires_at != nil {
		fields = append(fields, session.FieldExpiresAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldUserID:
		return m.UserID()
	case session.FieldKind:
		return m.Kind()
	case session.FieldStatus:
		return m.Status()
	case session.FieldChapterKey:
		return m.ChapterKey()
	case session.FieldTemplateID:
		return m.TemplateID()
	case session.FieldLearningPhase:
		return m.LearningPhase()
	case session.FieldIsRecoveryQuiz:
		return m.IsRecoveryQuiz()
	case session.FieldQuizNumber:
		return m.QuizNumber()
	case session.FieldQuestionsTotal:
		return m.QuestionsTotal()
	case session.FieldQuestionsAnswered:
		return m.QuestionsAnswered()
	case session.FieldCorrectCount:
		return m.CorrectCount()
	case session.FieldTotalTimeSeconds:
		return m.TotalTimeSeconds()
	case session.FieldInvalidReason:
		return m.InvalidReason()
	case session.FieldExpiresAt:
		return m.ExpiresAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldUserID:
		return m.OldUserID(ctx)
	case session.FieldKind:
		return m.OldKind(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldChapterKey:
		return m.OldChapterKey(ctx)
	case session.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case session.FieldLearningPhase:
		return m.OldLearningPhase(ctx)
	case session.FieldIsRecoveryQuiz:
		return m.OldIsRecoveryQuiz(ctx)
	case session.FieldQuizNumber:
		return m.OldQuizNumber(ctx)
	case session.FieldQuestionsTotal:
		return m.OldQuestionsTotal(ctx)
	case session.FieldQuestionsAnswered:
		return m.OldQuestionsAnswered(ctx)
	case session.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case session.FieldTotalTimeSeconds:
		return m.OldTotalTimeSeconds(ctx)
	case session.FieldInvalidReason:
		return m.OldInvalidReason(ctx)
	case session.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case session.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldChapterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterKey(v)
		return nil
	case session.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case session.FieldLearningPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningPhase(v)
		return nil
	case session.FieldIsRecoveryQuiz:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRecoveryQuiz(v)
		return nil
	case session.FieldQuizNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizNumber(v)
		return nil
	case session.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsTotal(v)
		return nil
	case session.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionsAnswered(v)
		return nil
	case session.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case session.FieldTotalTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSeconds(v)
		return nil
	case session.FieldInvalidReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvalidReason(v)
		return nil
	case session.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addquiz_number != nil {
		fields = append(fields, session.FieldQuizNumber)
	}
	if m.addquestions_total != nil {
		fields = append(fields, session.FieldQuestionsTotal)
	}
	if m.addquestions_answered != nil {
		fields = append(fields, session.FieldQuestionsAnswered)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, session.FieldCorrectCount)
	}
	if m.addtotal_time_seconds != nil {
		fields = append(fields, session.FieldTotalTimeSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldQuizNumber:
		return m.AddedQuizNumber()
	case session.FieldQuestionsTotal:
		return m.AddedQuestionsTotal()
	case session.FieldQuestionsAnswered:
		return m.AddedQuestionsAnswered()
	case session.FieldCorrectCount:
		return m.AddedCorrectCount()
	case session.FieldTotalTimeSeconds:
		return m.AddedTotalTimeSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldQuizNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizNumber(v)
		return nil
	case session.FieldQuestionsTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsTotal(v)
		return nil
	case session.FieldQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionsAnswered(v)
		return nil
	case session.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case session.FieldTotalTimeSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldChapterKey) {
		fields = append(fields, session.FieldChapterKey)
	}
	if m.FieldCleared(session.FieldTemplateID) {
		fields = append(fields, session.FieldTemplateID)
	}
	if m.FieldCleared(session.FieldLearningPhase) {
		fields = append(fields, session.FieldLearningPhase)
	}
	if m.FieldCleared(session.FieldInvalidReason) {
		fields = append(fields, session.FieldInvalidReason)
	}
	if m.FieldCleared(session.FieldExpiresAt) {
		fields = append(fields, session.FieldExpiresAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldChapterKey:
		m.ClearChapterKey()
		return nil
	case session.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case session.FieldLearningPhase:
		m.ClearLearningPhase()
		return nil
	case session.FieldInvalidReason:
		m.ClearInvalidReason()
		return nil
	case session.FieldExpiresAt:
		m.ClearExpiresAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldUserID:
		m.ResetUserID()
		return nil
	case session.FieldKind:
		m.ResetKind()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldChapterKey:
		m.ResetChapterKey()
		return nil
	case session.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case session.FieldLearningPhase:
		m.ResetLearningPhase()
		return nil
	case session.FieldIsRecoveryQuiz:
		m.ResetIsRecoveryQuiz()
		return nil
	case session.FieldQuizNumber:
		m.ResetQuizNumber()
		return nil
	case session.FieldQuestionsTotal:
		m.ResetQuestionsTotal()
		return nil
	case session.FieldQuestionsAnswered:
		m.ResetQuestionsAnswered()
		return nil
	case session.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case session.FieldTotalTimeSeconds:
		m.ResetTotalTimeSeconds()
		return nil
	case session.FieldInvalidReason:
		m.ResetInvalidReason()
		return nil
	case session.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// SessionQuestionMutation represents an operation that mutates the SessionQuestion nodes in the graph.
type SessionQuestionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	session_id            *string
	user_id               *string
	question_id           *string
	position              *int
	addposition           *int
	chapter_key           *string
	rationale             *string
	answered              *bool
	answering_at          *time.Time
	student_answer        *string
	is_correct            *bool
	time_taken_seconds    *int
	addtime_taken_seconds *int
	theta_delta           *float64
	addtheta_delta        *float64
	answered_at           *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SessionQuestion, error)
	predicates            []predicate.SessionQuestion
}

var _ ent.Mutation = (*SessionQuestionMutation)(nil)

// sessionquestionOption allows management of the mutation configuration using functional options.
type sessionquestionOption func(*SessionQuestionMutation)

// newSessionQuestionMutation creates new mutation for the SessionQuestion entity.
func newSessionQuestionMutation(c config, op Op, opts ...sessionquestionOption) *SessionQuestionMutation {
	m := &SessionQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionQuestionID sets the ID field of the mutation.
func withSessionQuestionID(id int) sessionquestionOption {
	return func(m *SessionQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionQuestion
		)
		m.oldValue = func(ctx context.Context) (*SessionQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionQuestion sets the old SessionQuestion of the mutation.
func withSessionQuestion(node *SessionQuestion) sessionquestionOption {
	return func(m *SessionQuestionMutation) {
		m.oldValue = func(context.Context) (*SessionQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionQuestionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionQuestionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionQuestionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SessionQuestionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionQuestionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionQuestionMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SessionQuestionMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SessionQuestionMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SessionQuestionMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetPosition sets the "position" field.
func (m *SessionQuestionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SessionQuestionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SessionQuestionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SessionQuestionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SessionQuestionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetChapterKey sets the "chapter_key" field.
func (m *SessionQuestionMutation) SetChapterKey(s string) {
	m.chapter_key = &s
}

// ChapterKey returns the value of the "chapter_key" field in the mutation.
func (m *SessionQuestionMutation) ChapterKey() (r string, exists bool) {
	v := m.chapter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterKey returns the old "chapter_key" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldChapterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterKey: %w", err)
	}
	return oldValue.ChapterKey, nil
}

// ResetChapterKey resets all changes to the "chapter_key" field.
func (m *SessionQuestionMutation) ResetChapterKey() {
	m.chapter_key = nil
}

// SetRationale sets the "rationale" field.
func (m *SessionQuestionMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *SessionQuestionMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *SessionQuestionMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[sessionquestion.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *SessionQuestionMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[sessionquestion.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *SessionQuestionMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, sessionquestion.FieldRationale)
}

// SetAnswered sets the "answered" field.
func (m *SessionQuestionMutation) SetAnswered(b bool) {
	m.answered = &b
}

// Answered returns the value of the "answered" field in the mutation.
func (m *SessionQuestionMutation) Answered() (r bool, exists bool) {
	v := m.answered
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswered returns the old "answered" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldAnswered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswered: %w", err)
	}
	return oldValue.Answered, nil
}

// ResetAnswered resets all changes to the "answered" field.
func (m *SessionQuestionMutation) ResetAnswered() {
	m.answered = nil
}

// SetAnsweringAt sets the "answering_at" field.
func (m *SessionQuestionMutation) SetAnsweringAt(t time.Time) {
	m.answering_at = &t
}

// AnsweringAt returns the value of the "answering_at" field in the mutation.
func (m *SessionQuestionMutation) AnsweringAt() (r time.Time, exists bool) {
	v := m.answering_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweringAt returns the old "answering_at" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldAnsweringAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweringAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweringAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweringAt: %w", err)
	}
	return oldValue.AnsweringAt, nil
}

// ClearAnsweringAt clears the value of the "answering_at" field.
func (m *SessionQuestionMutation) ClearAnsweringAt() {
	m.answering_at = nil
	m.clearedFields[sessionquestion.FieldAnsweringAt] = struct{}{}
}

// AnsweringAtCleared returns if the "answering_at" field was cleared in this mutation.
func (m *SessionQuestionMutation) AnsweringAtCleared() bool {
	_, ok := m.clearedFields[sessionquestion.FieldAnsweringAt]
	return ok
}

// ResetAnsweringAt resets all changes to the "answering_at" field.
func (m *SessionQuestionMutation) ResetAnsweringAt() {
	m.answering_at = nil
	delete(m.clearedFields, sessionquestion.FieldAnsweringAt)
}

// SetStudentAnswer sets the "student_answer" field.
func (m *SessionQuestionMutation) SetStudentAnswer(s string) {
	m.student_answer = &s
}

// StudentAnswer returns the value of the "student_answer" field in the mutation.
func (m *SessionQuestionMutation) StudentAnswer() (r string, exists bool) {
	v := m.student_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentAnswer returns the old "student_answer" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldStudentAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentAnswer: %w", err)
	}
	return oldValue.StudentAnswer, nil
}

// ClearStudentAnswer clears the value of the "student_answer" field.
func (m *SessionQuestionMutation) ClearStudentAnswer() {
	m.student_answer = nil
	m.clearedFields[sessionquestion.FieldStudentAnswer] = struct{}{}
}

// StudentAnswerCleared returns if the "student_answer" field was cleared in this mutation.
func (m *SessionQuestionMutation) StudentAnswerCleared() bool {
	_, ok := m.clearedFields[sessionquestion.FieldStudentAnswer]
	return ok
}

// ResetStudentAnswer resets all changes to the "student_answer" field.
func (m *SessionQuestionMutation) ResetStudentAnswer() {
	m.student_answer = nil
	delete(m.clearedFields, sessionquestion.FieldStudentAnswer)
}

// SetIsCorrect sets the "is_correct" field.
func (m *SessionQuestionMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *SessionQuestionMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *SessionQuestionMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetTimeTakenSeconds sets the "time_taken_seconds" field.
func (m *SessionQuestionMutation) SetTimeTakenSeconds(i int) {
	m.time_taken_seconds = &i
	m.addtime_taken_seconds = nil
}

// TimeTakenSeconds returns the value of the "time_taken_seconds" field in the mutation.
func (m *SessionQuestionMutation) TimeTakenSeconds() (r int, exists bool) {
	v := m.time_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeTakenSeconds returns the old "time_taken_seconds" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldTimeTakenSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeTakenSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeTakenSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeTakenSeconds: %w", err)
	}
	return oldValue.TimeTakenSeconds, nil
}

// AddTimeTakenSeconds adds i to the "time_taken_seconds" field.
func (m *SessionQuestionMutation) AddTimeTakenSeconds(i int) {
	if m.addtime_taken_seconds != nil {
		*m.addtime_taken_seconds += i
	} else {
		m.addtime_taken_seconds = &i
	}
}

// AddedTimeTakenSeconds returns the value that was added to the "time_taken_seconds" field in this mutation.
func (m *SessionQuestionMutation) AddedTimeTakenSeconds() (r int, exists bool) {
	v := m.addtime_taken_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeTakenSeconds resets all changes to the "time_taken_seconds" field.
func (m *SessionQuestionMutation) ResetTimeTakenSeconds() {
	m.time_taken_seconds = nil
	m.addtime_taken_seconds = nil
}

// SetThetaDelta sets the "theta_delta" field.
func (m *SessionQuestionMutation) SetThetaDelta(f float64) {
	m.theta_delta = &f
	m.addtheta_delta = nil
}

// ThetaDelta returns the value of the "theta_delta" field in the mutation.
func (m *SessionQuestionMutation) ThetaDelta() (r float64, exists bool) {
	v := m.theta_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaDelta returns the old "theta_delta" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldThetaDelta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaDelta: %w", err)
	}
	return oldValue.ThetaDelta, nil
}

// AddThetaDelta adds f to the "theta_delta" field.
func (m *SessionQuestionMutation) AddThetaDelta(f float64) {
	if m.addtheta_delta != nil {
		*m.addtheta_delta += f
	} else {
		m.addtheta_delta = &f
	}
}

// AddedThetaDelta returns the value that was added to the "theta_delta" field in this mutation.
func (m *SessionQuestionMutation) AddedThetaDelta() (r float64, exists bool) {
	v := m.addtheta_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetThetaDelta resets all changes to the "theta_delta" field.
func (m *SessionQuestionMutation) ResetThetaDelta() {
	m.theta_delta = nil
	m.addtheta_delta = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *SessionQuestionMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *SessionQuestionMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the SessionQuestion entity.
// If the SessionQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionQuestionMutation) OldAnsweredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (m *SessionQuestionMutation) ClearAnsweredAt() {
	m.answered_at = nil
	m.clearedFields[sessionquestion.FieldAnsweredAt] = struct{}{}
}

// AnsweredAtCleared returns if the "answered_at" field was cleared in this mutation.
func (m *SessionQuestionMutation) AnsweredAtCleared() bool {
	_, ok := m.clearedFields[sessionquestion.FieldAnsweredAt]
	return ok
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *SessionQuestionMutation) ResetAnsweredAt() {
	m.answered_at = nil
	delete(m.clearedFields, sessionquestion.FieldAnsweredAt)
}

// Where appends a list predicates to the SessionQuestionMutation builder.
func (m *SessionQuestionMutation) Where(ps ...predicate.SessionQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionQuestion).
func (m *SessionQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionQuestionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session_id != nil {
		fields = append(fields, sessionquestion.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, sessionquestion.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, sessionquestion.FieldQuestionID)
	}
	if m.position != nil {
		fields = append(fields, sessionquestion.FieldPosition)
	}
	if m.chapter_key != nil {
		fields = append(fields, sessionquestion.FieldChapterKey)
	}
	if m.rationale != nil {
		fields = append(fields, sessionquestion.FieldRationale)
	}
	if m.answered != nil {
		fields = append(fields, sessionquestion.FieldAnswered)
	}
	if m.answering_at != nil {
		fields = append(fields, sessionquestion.FieldAnsweringAt)
	}
	if m.student_answer != nil {
		fields = append(fields, sessionquestion.FieldStudentAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, sessionquestion.FieldIsCorrect)
	}
	if m.time_taken_seconds != nil {
		fields = append(fields, sessionquestion.FieldTimeTakenSeconds)
	}
	if m.theta_delta != nil {
		fields = append(fields, sessionquestion.FieldThetaDelta)
	}
	if m.answered_at != nil {
		fields = append(fields, sessionquestion.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionquestion.FieldSessionID:
		return m.SessionID()
	case sessionquestion.FieldUserID:
		return m.UserID()
	case sessionquestion.FieldQuestionID:
		return m.QuestionID()
	case sessionquestion.FieldPosition:
		return m.Position()
	case sessionquestion.FieldChapterKey:
		return m.ChapterKey()
	case sessionquestion.FieldRationale:
		return m.Rationale()
	case sessionquestion.FieldAnswered:
		return m.Answered()
	case sessionquestion.FieldAnsweringAt:
		return m.AnsweringAt()
	case sessionquestion.FieldStudentAnswer:
		return m.StudentAnswer()
	case sessionquestion.FieldIsCorrect:
		return m.IsCorrect()
	case sessionquestion.FieldTimeTakenSeconds:
		return m.TimeTakenSeconds()
	case sessionquestion.FieldThetaDelta:
		return m.ThetaDelta()
	case sessionquestion.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionquestion.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionquestion.FieldUserID:
		return m.OldUserID(ctx)
	case sessionquestion.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case sessionquestion.FieldPosition:
		return m.OldPosition(ctx)
	case sessionquestion.FieldChapterKey:
		return m.OldChapterKey(ctx)
	case sessionquestion.FieldRationale:
		return m.OldRationale(ctx)
	case sessionquestion.FieldAnswered:
		return m.OldAnswered(ctx)
	case sessionquestion.FieldAnsweringAt:
		return m.OldAnsweringAt(ctx)
	case sessionquestion.FieldStudentAnswer:
		return m.OldStudentAnswer(ctx)
	case sessionquestion.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case sessionquestion.FieldTimeTakenSeconds:
		return m.OldTimeTakenSeconds(ctx)
	case sessionquestion.FieldThetaDelta:
		return m.OldThetaDelta(ctx)
	case sessionquestion.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionquestion.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionquestion.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionquestion.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case sessionquestion.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case sessionquestion.FieldChapterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterKey(v)
		return nil
	case sessionquestion.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case sessionquestion.FieldAnswered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswered(v)
		return nil
	case sessionquestion.FieldAnsweringAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweringAt(v)
		return nil
	case sessionquestion.FieldStudentAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentAnswer(v)
		return nil
	case sessionquestion.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case sessionquestion.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeTakenSeconds(v)
		return nil
	case sessionquestion.FieldThetaDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaDelta(v)
		return nil
	case sessionquestion.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, sessionquestion.FieldPosition)
	}
	if m.addtime_taken_seconds != nil {
		fields = append(fields, sessionquestion.FieldTimeTakenSeconds)
	}
	if m.addtheta_delta != nil {
		fields = append(fields, sessionquestion.FieldThetaDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionquestion.FieldPosition:
		return m.AddedPosition()
	case sessionquestion.FieldTimeTakenSeconds:
		return m.AddedTimeTakenSeconds()
	case sessionquestion.FieldThetaDelta:
		return m.AddedThetaDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionquestion.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case sessionquestion.FieldTimeTakenSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeTakenSeconds(v)
		return nil
	case sessionquestion.FieldThetaDelta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThetaDelta(v)
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionquestion.FieldRationale) {
		fields = append(fields, sessionquestion.FieldRationale)
	}
	if m.FieldCleared(sessionquestion.FieldAnsweringAt) {
		fields = append(fields, sessionquestion.FieldAnsweringAt)
	}
	if m.FieldCleared(sessionquestion.FieldStudentAnswer) {
		fields = append(fields, sessionquestion.FieldStudentAnswer)
	}
	if m.FieldCleared(sessionquestion.FieldAnsweredAt) {
		fields = append(fields, sessionquestion.FieldAnsweredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionQuestionMutation) ClearField(name string) error {
	switch name {
	case sessionquestion.FieldRationale:
		m.ClearRationale()
		return nil
	case sessionquestion.FieldAnsweringAt:
		m.ClearAnsweringAt()
		return nil
	case sessionquestion.FieldStudentAnswer:
		m.ClearStudentAnswer()
		return nil
	case sessionquestion.FieldAnsweredAt:
		m.ClearAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionQuestionMutation) ResetField(name string) error {
	switch name {
	case sessionquestion.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionquestion.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionquestion.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case sessionquestion.FieldPosition:
		m.ResetPosition()
		return nil
	case sessionquestion.FieldChapterKey:
		m.ResetChapterKey()
		return nil
	case sessionquestion.FieldRationale:
		m.ResetRationale()
		return nil
	case sessionquestion.FieldAnswered:
		m.ResetAnswered()
		return nil
	case sessionquestion.FieldAnsweringAt:
		m.ResetAnsweringAt()
		return nil
	case sessionquestion.FieldStudentAnswer:
		m.ResetStudentAnswer()
		return nil
	case sessionquestion.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case sessionquestion.FieldTimeTakenSeconds:
		m.ResetTimeTakenSeconds()
		return nil
	case sessionquestion.FieldThetaDelta:
		m.ResetThetaDelta()
		return nil
	case sessionquestion.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown SessionQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionQuestion edge %s", name)
}

// ThetaSnapshotMutation represents an operation that mutates the ThetaSnapshot nodes in the graph.
type ThetaSnapshotMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	quiz_id        *string
	quiz_number    *int
	addquiz_number *int
	payload        **model.SnapshotPayload
	captured_at    *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ThetaSnapshot, error)
	predicates     []predicate.ThetaSnapshot
}

var _ ent.Mutation = (*ThetaSnapshotMutation)(nil)

// thetasnapshotOption allows management of the mutation configuration using functional options.
type thetasnapshotOption func(*ThetaSnapshotMutation)

// newThetaSnapshotMutation creates new mutation for the ThetaSnapshot entity.
func newThetaSnapshotMutation(c config, op Op, opts ...thetasnapshotOption) *ThetaSnapshotMutation {
	m := &ThetaSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeThetaSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThetaSnapshotID sets the ID field of the mutation.
func withThetaSnapshotID(id int) thetasnapshotOption {
	return func(m *ThetaSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ThetaSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ThetaSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThetaSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThetaSnapshot sets the old ThetaSnapshot of the mutation.
func withThetaSnapshot(node *ThetaSnapshot) thetasnapshotOption {
	return func(m *ThetaSnapshotMutation) {
		m.oldValue = func(context.Context) (*ThetaSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThetaSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThetaSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThetaSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThetaSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThetaSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ThetaSnapshotMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ThetaSnapshotMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ThetaSnapshot entity.
// If the ThetaSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThetaSnapshotMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ThetaSnapshotMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuizID sets the "quiz_id" field.
func (m *ThetaSnapshotMutation) SetQuizID(s string) {
	m.quiz_id = &s
}

// QuizID returns the value of the "quiz_id" field in the mutation.
func (m *ThetaSnapshotMutation) QuizID() (r string, exists bool) {
	v := m.quiz_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizID returns the old "quiz_id" field's value of the ThetaSnapshot entity.
// If the ThetaSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThetaSnapshotMutation) OldQuizID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizID: %w", err)
	}
	return oldValue.QuizID, nil
}

// ResetQuizID resets all changes to the "quiz_id" field.
func (m *ThetaSnapshotMutation) ResetQuizID() {
	m.quiz_id = nil
}

// SetQuizNumber sets the "quiz_number" field.
func (m *ThetaSnapshotMutation) SetQuizNumber(i int) {
	m.quiz_number = &i
	m.addquiz_number = nil
}

// QuizNumber returns the value of the "quiz_number" field in the mutation.
func (m *ThetaSnapshotMutation) QuizNumber() (r int, exists bool) {
	v := m.quiz_number
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizNumber returns the old "quiz_number" field's value of the ThetaSnapshot entity.
// If the ThetaSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThetaSnapshotMutation) OldQuizNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizNumber: %w", err)
	}
	return oldValue.QuizNumber, nil
}

// AddQuizNumber adds i to the "quiz_number" field.
func (m *ThetaSnapshotMutation) AddQuizNumber(i int) {
	if m.addquiz_number != nil {
		*m.addquiz_number += i
	} else {
		m.addquiz_number = &i
	}
}

// AddedQuizNumber returns the value that was added to the "quiz_number" field in this mutation.
func (m *ThetaSnapshotMutation) AddedQuizNumber() (r int, exists bool) {
	v := m.addquiz_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizNumber resets all changes to the "quiz_number" field.
func (m *ThetaSnapshotMutation) ResetQuizNumber() {
	m.quiz_number = nil
	m.addquiz_number = nil
}

// SetPayload sets the "payload" field.
func (m *ThetaSnapshotMutation) SetPayload(mp *model.SnapshotPayload) {
	m.payload = &mp
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ThetaSnapshotMutation) Payload() (r *model.SnapshotPayload, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ThetaSnapshot entity.
// If the ThetaSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThetaSnapshotMutation) OldPayload(ctx context.Context) (v *model.SnapshotPayload, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ThetaSnapshotMutation) ResetPayload() {
	m.payload = nil
}

// SetCapturedAt sets the "captured_at" field.
func (m *ThetaSnapshotMutation) SetCapturedAt(t time.Time) {
	m.captured_at = &t
}

// CapturedAt returns the value of the "captured_at" field in the mutation.
func (m *ThetaSnapshotMutation) CapturedAt() (r time.Time, exists bool) {
	v := m.captured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCapturedAt returns the old "captured_at" field's value of the ThetaSnapshot entity.
// If the ThetaSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThetaSnapshotMutation) OldCapturedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapturedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapturedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapturedAt: %w", err)
	}
	return oldValue.CapturedAt, nil
}

// ResetCapturedAt resets all changes to the "captured_at" field.
func (m *ThetaSnapshotMutation) ResetCapturedAt() {
	m.captured_at = nil
}

// Where appends a list predicates to the ThetaSnapshotMutation builder.
func (m *ThetaSnapshotMutation) Where(ps ...predicate.ThetaSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThetaSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThetaSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThetaSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThetaSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThetaSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThetaSnapshot).
func (m *ThetaSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThetaSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, thetasnapshot.FieldUserID)
	}
	if m.quiz_id != nil {
		fields = append(fields, thetasnapshot.FieldQuizID)
	}
	if m.quiz_number != nil {
		fields = append(fields, thetasnapshot.FieldQuizNumber)
	}
	if m.payload != nil {
		fields = append(fields, thetasnapshot.FieldPayload)
	}
	if m.captured_at != nil {
		fields = append(fields, thetasnapshot.FieldCapturedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThetaSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case thetasnapshot.FieldUserID:
		return m.UserID()
	case thetasnapshot.FieldQuizID:
		return m.QuizID()
	case thetasnapshot.FieldQuizNumber:
		return m.QuizNumber()
	case thetasnapshot.FieldPayload:
		return m.Payload()
	case thetasnapshot.FieldCapturedAt:
		return m.CapturedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThetaSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case thetasnapshot.FieldUserID:
		return m.OldUserID(ctx)
	case thetasnapshot.FieldQuizID:
		return m.OldQuizID(ctx)
	case thetasnapshot.FieldQuizNumber:
		return m.OldQuizNumber(ctx)
	case thetasnapshot.FieldPayload:
		return m.OldPayload(ctx)
	case thetasnapshot.FieldCapturedAt:
		return m.OldCapturedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThetaSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThetaSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case thetasnapshot.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case thetasnapshot.FieldQuizID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizID(v)
		return nil
	case thetasnapshot.FieldQuizNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizNumber(v)
		return nil
	case thetasnapshot.FieldPayload:
		v, ok := value.(*model.SnapshotPayload)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case thetasnapshot.FieldCapturedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapturedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThetaSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThetaSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addquiz_number != nil {
		fields = append(fields, thetasnapshot.FieldQuizNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThetaSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case thetasnapshot.FieldQuizNumber:
		return m.AddedQuizNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThetaSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case thetasnapshot.FieldQuizNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ThetaSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThetaSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThetaSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThetaSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ThetaSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThetaSnapshotMutation) ResetField(name string) error {
	switch name {
	case thetasnapshot.FieldUserID:
		m.ResetUserID()
		return nil
	case thetasnapshot.FieldQuizID:
		m.ResetQuizID()
		return nil
	case thetasnapshot.FieldQuizNumber:
		m.ResetQuizNumber()
		return nil
	case thetasnapshot.FieldPayload:
		m.ResetPayload()
		return nil
	case thetasnapshot.FieldCapturedAt:
		m.ResetCapturedAt()
		return nil
	}
	return fmt.Errorf("unknown ThetaSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThetaSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThetaSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThetaSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThetaSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThetaSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThetaSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThetaSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ThetaSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThetaSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ThetaSnapshot edge %s", name)
}

// TierConfigMutation represents an operation that mutates the TierConfig nodes in the graph.
type TierConfigMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	limits                  *model.TierLimits
	features                *[]string
	appendfeatures          []string
	chapter_practice_weekly *bool
	exploration_end_quiz    *int
	addexploration_end_quiz *int
	recovery_trigger        *int
	addrecovery_trigger     *int
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*TierConfig, error)
	predicates              []predicate.TierConfig
}

var _ ent.Mutation = (*TierConfigMutation)(nil)

// tierconfigOption allows management of the mutation configuration using functional options.
type tierconfigOption func(*TierConfigMutation)

// newTierConfigMutation creates new mutation for the TierConfig entity.
func newTierConfigMutation(c config, op Op, opts ...tierconfigOption) *TierConfigMutation {
	m := &TierConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeTierConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTierConfigID sets the ID field of the mutation.
func withTierConfigID(id string) tierconfigOption {
	return func(m *TierConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *TierConfig
		)
		m.oldValue = func(ctx context.Context) (*TierConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TierConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTierConfig sets the old TierConfig of the mutation.
func withTierConfig(node *TierConfig) tierconfigOption {
	return func(m *TierConfigMutation) {
		m.oldValue = func(context.Context) (*TierConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TierConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TierConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TierConfig entities.
func (m *TierConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TierConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TierConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TierConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLimits sets the "limits" field.
func (m *TierConfigMutation) SetLimits(ml model.TierLimits) {
	m.limits = &ml
}

// Limits returns the value of the "limits" field in the mutation.
func (m *TierConfigMutation) Limits() (r model.TierLimits, exists bool) {
	v := m.limits
	if v == nil {
		return
	}
	return *v, true
}

// OldLimits returns the old "limits" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldLimits(ctx context.Context) (v model.TierLimits, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLimits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLimits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLimits: %w", err)
	}
	return oldValue.Limits, nil
}

// ResetLimits resets all changes to the "limits" field.
func (m *TierConfigMutation) ResetLimits() {
	m.limits = nil
}

// SetFeatures sets the "features" field.
func (m *TierConfigMutation) SetFeatures(s []string) {
	m.features = &s
	m.appendfeatures = nil
}

// Features returns the value of the "features" field in the mutation.
func (m *TierConfigMutation) Features() (r []string, exists bool) {
	v := m.features
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatures returns the old "features" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldFeatures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatures: %w", err)
	}
	return oldValue.Features, nil
}

// AppendFeatures adds s to the "features" field.
func (m *TierConfigMutation) AppendFeatures(s []string) {
	m.appendfeatures = append(m.appendfeatures, s...)
}

// AppendedFeatures returns the list of values that were appended to the "features" field in this mutation.
func (m *TierConfigMutation) AppendedFeatures() ([]string, bool) {
	if len(m.appendfeatures) == 0 {
		return nil, false
	}
	return m.appendfeatures, true
}

// ClearFeatures clears the value of the "features" field.
func (m *TierConfigMutation) ClearFeatures() {
	m.features = nil
	m.appendfeatures = nil
	m.clearedFields[tierconfig.FieldFeatures] = struct{}{}
}

// FeaturesCleared returns if the "features" field was cleared in this mutation.
func (m *TierConfigMutation) FeaturesCleared() bool {
	_, ok := m.clearedFields[tierconfig.FieldFeatures]
	return ok
}

// ResetFeatures resets all changes to the "features" field.
func (m *TierConfigMutation) ResetFeatures() {
	m.features = nil
	m.appendfeatures = nil
	delete(m.clearedFields, tierconfig.FieldFeatures)
}

// SetChapterPracticeWeekly sets the "chapter_practice_weekly" field.
func (m *TierConfigMutation) SetChapterPracticeWeekly(b bool) {
	m.chapter_practice_weekly = &b
}

// ChapterPracticeWeekly returns the value of the "chapter_practice_weekly" field in the mutation.
func (m *TierConfigMutation) ChapterPracticeWeekly() (r bool, exists bool) {
	v := m.chapter_practice_weekly
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterPracticeWeekly returns the old "chapter_practice_weekly" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldChapterPracticeWeekly(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterPracticeWeekly is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterPracticeWeekly requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterPracticeWeekly: %w", err)
	}
	return oldValue.ChapterPracticeWeekly, nil
}

// ResetChapterPracticeWeekly resets all changes to the "chapter_practice_weekly" field.
func (m *TierConfigMutation) ResetChapterPracticeWeekly() {
	m.chapter_practice_weekly = nil
}

// SetExplorationEndQuiz sets the "exploration_end_quiz" field.
func (m *TierConfigMutation) SetExplorationEndQuiz(i int) {
	m.exploration_end_quiz = &i
	m.addexploration_end_quiz = nil
}

// ExplorationEndQuiz returns the value of the "exploration_end_quiz" field in the mutation.
func (m *TierConfigMutation) ExplorationEndQuiz() (r int, exists bool) {
	v := m.exploration_end_quiz
	if v == nil {
		return
	}
	return *v, true
}

// OldExplorationEndQuiz returns the old "exploration_end_quiz" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldExplorationEndQuiz(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplorationEndQuiz is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplorationEndQuiz requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplorationEndQuiz: %w", err)
	}
	return oldValue.ExplorationEndQuiz, nil
}

// AddExplorationEndQuiz adds i to the "exploration_end_quiz" field.
func (m *TierConfigMutation) AddExplorationEndQuiz(i int) {
	if m.addexploration_end_quiz != nil {
		*m.addexploration_end_quiz += i
	} else {
		m.addexploration_end_quiz = &i
	}
}

// AddedExplorationEndQuiz returns the value that was added to the "exploration_end_quiz" field in this mutation.
func (m *TierConfigMutation) AddedExplorationEndQuiz() (r int, exists bool) {
	v := m.addexploration_end_quiz
	if v == nil {
		return
	}
	return *v, true
}

// ResetExplorationEndQuiz resets all changes to the "exploration_end_quiz" field.
func (m *TierConfigMutation) ResetExplorationEndQuiz() {
	m.exploration_end_quiz = nil
	m.addexploration_end_quiz = nil
}

// SetRecoveryTrigger sets the "recovery_trigger" field.
func (m *TierConfigMutation) SetRecoveryTrigger(i int) {
	m.recovery_trigger = &i
	m.addrecovery_trigger = nil
}

// RecoveryTrigger returns the value of the "recovery_trigger" field in the mutation.
func (m *TierConfigMutation) RecoveryTrigger() (r int, exists bool) {
	v := m.recovery_trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryTrigger returns the old "recovery_trigger" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldRecoveryTrigger(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryTrigger: %w", err)
	}
	return oldValue.RecoveryTrigger, nil
}

// AddRecoveryTrigger adds i to the "recovery_trigger" field.
func (m *TierConfigMutation) AddRecoveryTrigger(i int) {
	if m.addrecovery_trigger != nil {
		*m.addrecovery_trigger += i
	} else {
		m.addrecovery_trigger = &i
	}
}

// AddedRecoveryTrigger returns the value that was added to the "recovery_trigger" field in this mutation.
func (m *TierConfigMutation) AddedRecoveryTrigger() (r int, exists bool) {
	v := m.addrecovery_trigger
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryTrigger resets all changes to the "recovery_trigger" field.
func (m *TierConfigMutation) ResetRecoveryTrigger() {
	m.recovery_trigger = nil
	m.addrecovery_trigger = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TierConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TierConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TierConfig entity.
// If the TierConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TierConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TierConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TierConfigMutation builder.
func (m *TierConfigMutation) Where(ps ...predicate.TierConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TierConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TierConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TierConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TierConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TierConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TierConfig).
func (m *TierConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TierConfigMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.limits != nil {
		fields = append(fields, tierconfig.FieldLimits)
	}
	if m.features != nil {
		fields = append(fields, tierconfig.FieldFeatures)
	}
	if m.chapter_practice_weekly != nil {
		fields = append(fields, tierconfig.FieldChapterPracticeWeekly)
	}
	if m.exploration_end_quiz != nil {
		fields = append(fields, tierconfig.FieldExplorationEndQuiz)
	}
	if m.recovery_trigger != nil {
		fields = append(fields, tierconfig.FieldRecoveryTrigger)
	}
	if m.updated_at != nil {
		fields = append(fields, tierconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TierConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tierconfig.FieldLimits:
		return m.Limits()
	case tierconfig.FieldFeatures:
		return m.Features()
	case tierconfig.FieldChapterPracticeWeekly:
		return m.ChapterPracticeWeekly()
	case tierconfig.FieldExplorationEndQuiz:
		return m.ExplorationEndQuiz()
	case tierconfig.FieldRecoveryTrigger:
		return m.RecoveryTrigger()
	case tierconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TierConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tierconfig.FieldLimits:
		return m.OldLimits(ctx)
	case tierconfig.FieldFeatures:
		return m.OldFeatures(ctx)
	case tierconfig.FieldChapterPracticeWeekly:
		return m.OldChapterPracticeWeekly(ctx)
	case tierconfig.FieldExplorationEndQuiz:
		return m.OldExplorationEndQuiz(ctx)
	case tierconfig.FieldRecoveryTrigger:
		return m.OldRecoveryTrigger(ctx)
	case tierconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TierConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tierconfig.FieldLimits:
		v, ok := value.(model.TierLimits)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLimits(v)
		return nil
	case tierconfig.FieldFeatures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatures(v)
		return nil
	case tierconfig.FieldChapterPracticeWeekly:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterPracticeWeekly(v)
		return nil
	case tierconfig.FieldExplorationEndQuiz:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplorationEndQuiz(v)
		return nil
	case tierconfig.FieldRecoveryTrigger:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryTrigger(v)
		return nil
	case tierconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TierConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TierConfigMutation) AddedFields() []string {
	var fields []string
	if m.addexploration_end_quiz != nil {
		fields = append(fields, tierconfig.FieldExplorationEndQuiz)
	}
	if m.addrecovery_trigger != nil {
		fields = append(fields, tierconfig.FieldRecoveryTrigger)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TierConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tierconfig.FieldExplorationEndQuiz:
		return m.AddedExplorationEndQuiz()
	case tierconfig.FieldRecoveryTrigger:
		return m.AddedRecoveryTrigger()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TierConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tierconfig.FieldExplorationEndQuiz:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExplorationEndQuiz(v)
		return nil
	case tierconfig.FieldRecoveryTrigger:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryTrigger(v)
		return nil
	}
	return fmt.Errorf("unknown TierConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TierConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tierconfig.FieldFeatures) {
		fields = append(fields, tierconfig.FieldFeatures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TierConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TierConfigMutation) ClearField(name string) error {
	switch name {
	case tierconfig.FieldFeatures:
		m.ClearFeatures()
		return nil
	}
	return fmt.Errorf("unknown TierConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TierConfigMutation) ResetField(name string) error {
	switch name {
	case tierconfig.FieldLimits:
		m.ResetLimits()
		return nil
	case tierconfig.FieldFeatures:
		m.ResetFeatures()
		return nil
	case tierconfig.FieldChapterPracticeWeekly:
		m.ResetChapterPracticeWeekly()
		return nil
	case tierconfig.FieldExplorationEndQuiz:
		m.ResetExplorationEndQuiz()
		return nil
	case tierconfig.FieldRecoveryTrigger:
		m.ResetRecoveryTrigger()
		return nil
	case tierconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TierConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TierConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TierConfigMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TierConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TierConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TierConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TierConfigMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TierConfigMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TierConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TierConfigMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TierConfig edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	overall_theta                *float64
	addoverall_theta             *float64
	overall_percentile           *int
	addoverall_percentile        *int
	theta_by_subject             *map[string]model.SubjectState
	theta_by_chapter             *map[string]model.ChapterState
	subtopic_accuracy            *map[string]map[string]model.Tally
	subject_accuracy             *map[string]model.Tally
	total_questions_attempted    *int
	addtotal_questions_attempted *int
	total_questions_correct      *int
	addtotal_questions_correct   *int
	total_time_spent_minutes     *float64
	addtotal_time_spent_minutes  *float64
	completed_quiz_count         *int
	addcompleted_quiz_count      *int
	learning_phase               *string
	current_day                  *int
	addcurrent_day               *int
	assessment_status            *string
	assessment_baseline          *map[string]model.ChapterState
	assessment_completed_at      *time.Time
	low_accuracy_streak          *int
	addlow_accuracy_streak       *int
	recovery_cooldown            *int
	addrecovery_cooldown         *int
	chapter_practice_stats       *map[string]model.Tally
	subscription                 **model.Subscription
	trial                        **model.Trial
	tier_override                *string
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	done                         bool
	oldValue                     func(context.Context) (*User, error)
	predicates                   []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOverallTheta sets the "overall_theta" field.
func (m *UserMutation) SetOverallTheta(f float64) {
	m.overall_theta = &f
	m.addoverall_theta = nil
}

// OverallTheta returns the value of the "overall_theta" field in the mutation.
func (m *UserMutation) OverallTheta() (r float64, exists bool) {
	v := m.overall_theta
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallTheta returns the old "overall_theta" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOverallTheta(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallTheta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallTheta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallTheta: %w", err)
	}
	return oldValue.OverallTheta, nil
}

// AddOverallTheta adds f to the "overall_theta" field.
func (m *UserMutation) AddOverallTheta(f float64) {
	if m.addoverall_theta != nil {
		*m.addoverall_theta += f
	} else {
		m.addoverall_theta = &f
	}
}

// AddedOverallTheta returns the value that was added to the "overall_theta" field in this mutation.
func (m *UserMutation) AddedOverallTheta() (r float64, exists bool) {
	v := m.addoverall_theta
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallTheta resets all changes to the "overall_theta" field.
func (m *UserMutation) ResetOverallTheta() {
	m.overall_theta = nil
	m.addoverall_theta = nil
}

// SetOverallPercentile sets the "overall_percentile" field.
func (m *UserMutation) SetOverallPercentile(i int) {
	m.overall_percentile = &i
	m.addoverall_percentile = nil
}

// OverallPercentile returns the value of the "overall_percentile" field in the mutation.
func (m *UserMutation) OverallPercentile() (r int, exists bool) {
	v := m.overall_percentile
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallPercentile returns the old "overall_percentile" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOverallPercentile(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallPercentile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallPercentile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallPercentile: %w", err)
	}
	return oldValue.OverallPercentile, nil
}

// AddOverallPercentile adds i to the "overall_percentile" field.
func (m *UserMutation) AddOverallPercentile(i int) {
	if m.addoverall_percentile != nil {
		*m.addoverall_percentile += i
	} else {
		m.addoverall_percentile = &i
	}
}

// AddedOverallPercentile returns the value that was added to the "overall_percentile" field in this mutation.
func (m *UserMutation) AddedOverallPercentile() (r int, exists bool) {
	v := m.addoverall_percentile
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallPercentile resets all changes to the "overall_percentile" field.
func (m *UserMutation) ResetOverallPercentile() {
	m.overall_percentile = nil
	m.addoverall_percentile = nil
}

// SetThetaBySubject sets the "theta_by_subject" field.
func (m *UserMutation) SetThetaBySubject(ms map[string]model.SubjectState) {
	m.theta_by_subject = &ms
}

// ThetaBySubject returns the value of the "theta_by_subject" field in the mutation.
func (m *UserMutation) ThetaBySubject() (r map[string]model.SubjectState, exists bool) {
	v := m.theta_by_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaBySubject returns the old "theta_by_subject" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldThetaBySubject(ctx context.Context) (v map[string]model.SubjectState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaBySubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaBySubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaBySubject: %w", err)
	}
	return oldValue.ThetaBySubject, nil
}

// ClearThetaBySubject clears the value of the "theta_by_subject" field.
func (m *UserMutation) ClearThetaBySubject() {
	m.theta_by_subject = nil
	m.clearedFields[user.FieldThetaBySubject] = struct{}{}
}

// ThetaBySubjectCleared returns if the "theta_by_subject" field was cleared in this mutation.
func (m *UserMutation) ThetaBySubjectCleared() bool {
	_, ok := m.clearedFields[user.FieldThetaBySubject]
	return ok
}

// ResetThetaBySubject resets all changes to the "theta_by_subject" field.
func (m *UserMutation) ResetThetaBySubject() {
	m.theta_by_subject = nil
	delete(m.clearedFields, user.FieldThetaBySubject)
}

// SetThetaByChapter sets the "theta_by_chapter" field.
func (m *UserMutation) SetThetaByChapter(ms map[string]model.ChapterState) {
	m.theta_by_chapter = &ms
}

// ThetaByChapter returns the value of the "theta_by_chapter" field in the mutation.
func (m *UserMutation) ThetaByChapter() (r map[string]model.ChapterState, exists bool) {
	v := m.theta_by_chapter
	if v == nil {
		return
	}
	return *v, true
}

// OldThetaByChapter returns the old "theta_by_chapter" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldThetaByChapter(ctx context.Context) (v map[string]model.ChapterState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThetaByChapter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThetaByChapter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThetaByChapter: %w", err)
	}
	return oldValue.ThetaByChapter, nil
}

// ClearThetaByChapter clears the value of the "theta_by_chapter" field.
func (m *UserMutation) ClearThetaByChapter() {
	m.theta_by_chapter = nil
	m.clearedFields[user.FieldThetaByChapter] = struct{}{}
}

// ThetaByChapterCleared returns if the "theta_by_chapter" field was cleared in this mutation.
func (m *UserMutation) ThetaByChapterCleared() bool {
	_, ok := m.clearedFields[user.FieldThetaByChapter]
	return ok
}

// ResetThetaByChapter resets all changes to the "theta_by_chapter" field.
func (m *UserMutation) ResetThetaByChapter() {
	m.theta_by_chapter = nil
	delete(m.clearedFields, user.FieldThetaByChapter)
}

// SetSubtopicAccuracy sets the "subtopic_accuracy" field.
func (m *UserMutation) SetSubtopicAccuracy(value map[string]map[string]model.Tally) {
	m.subtopic_accuracy = &value
}

// SubtopicAccuracy returns the value of the "subtopic_accuracy" field in the mutation.
func (m *UserMutation) SubtopicAccuracy() (r map[string]map[string]model.Tally, exists bool) {
	v := m.subtopic_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicAccuracy returns the old "subtopic_accuracy" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSubtopicAccuracy(ctx context.Context) (v map[string]map[string]model.Tally, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicAccuracy: %w", err)
	}
	return oldValue.SubtopicAccuracy, nil
}

// ClearSubtopicAccuracy clears the value of the "subtopic_accuracy" field.
func (m *UserMutation) ClearSubtopicAccuracy() {
	m.subtopic_accuracy = nil
	m.clearedFields[user.FieldSubtopicAccuracy] = struct{}{}
}

// SubtopicAccuracyCleared returns if the "subtopic_accuracy" field was cleared in this mutation.
func (m *UserMutation) SubtopicAccuracyCleared() bool {
	_, ok := m.clearedFields[user.FieldSubtopicAccuracy]
	return ok
}

// ResetSubtopicAccuracy resets all changes to the "subtopic_accuracy" field.
func (m *UserMutation) ResetSubtopicAccuracy() {
	m.subtopic_accuracy = nil
	delete(m.clearedFields, user.FieldSubtopicAccuracy)
}

// SetSubjectAccuracy sets the "subject_accuracy" field.
func (m *UserMutation) SetSubjectAccuracy(value map[string]model.Tally) {
	m.subject_accuracy = &value
}

// SubjectAccuracy returns the value of the "subject_accuracy" field in the mutation.
func (m *UserMutation) SubjectAccuracy() (r map[string]model.Tally, exists bool) {
	v := m.subject_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectAccuracy returns the old "subject_accuracy" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSubjectAccuracy(ctx context.Context) (v map[string]model.Tally, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectAccuracy: %w", err)
	}
	return oldValue.SubjectAccuracy, nil
}

// ClearSubjectAccuracy clears the value of the "subject_accuracy" field.
func (m *UserMutation) ClearSubjectAccuracy() {
	m.subject_accuracy = nil
	m.clearedFields[user.FieldSubjectAccuracy] = struct{}{}
}

// SubjectAccuracyCleared returns if the "subject_accuracy" field was cleared in this mutation.
func (m *UserMutation) SubjectAccuracyCleared() bool {
	_, ok := m.clearedFields[user.FieldSubjectAccuracy]
	return ok
}

// ResetSubjectAccuracy resets all changes to the "subject_accuracy" field.
func (m *UserMutation) ResetSubjectAccuracy() {
	m.subject_accuracy = nil
	delete(m.clearedFields, user.FieldSubjectAccuracy)
}

// SetTotalQuestionsAttempted sets the "total_questions_attempted" field.
func (m *UserMutation) SetTotalQuestionsAttempted(i int) {
	m.total_questions_attempted = &i
	m.addtotal_questions_attempted = nil
}

// TotalQuestionsAttempted returns the value of the "total_questions_attempted" field in the mutation.
func (m *UserMutation) TotalQuestionsAttempted() (r int, exists bool) {
	v := m.total_questions_attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestionsAttempted returns the old "total_questions_attempted" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTotalQuestionsAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestionsAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestionsAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestionsAttempted: %w", err)
	}
	return oldValue.TotalQuestionsAttempted, nil
}

// AddTotalQuestionsAttempted adds i to the "total_questions_attempted" field.
func (m *UserMutation) AddTotalQuestionsAttempted(i int) {
	if m.addtotal_questions_attempted != nil {
		*m.addtotal_questions_attempted += i
	} else {
		m.addtotal_questions_attempted = &i
	}
}

// AddedTotalQuestionsAttempted returns the value that was added to the "total_questions_attempted" field in this mutation.
func (m *UserMutation) AddedTotalQuestionsAttempted() (r int, exists bool) {
	v := m.addtotal_questions_attempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestionsAttempted resets all changes to the "total_questions_attempted" field.
func (m *UserMutation) ResetTotalQuestionsAttempted() {
	m.total_questions_attempted = nil
	m.addtotal_questions_attempted = nil
}

// SetTotalQuestionsCorrect sets the "total_questions_correct" field.
func (m *UserMutation) SetTotalQuestionsCorrect(i int) {
	m.total_questions_correct = &i
	m.addtotal_questions_correct = nil
}

// TotalQuestionsCorrect returns the value of the "total_questions_correct" field in the mutation.
func (m *UserMutation) TotalQuestionsCorrect() (r int, exists bool) {
	v := m.total_questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestionsCorrect returns the old "total_questions_correct" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTotalQuestionsCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestionsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestionsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestionsCorrect: %w", err)
	}
	return oldValue.TotalQuestionsCorrect, nil
}

// AddTotalQuestionsCorrect adds i to the "total_questions_correct" field.
func (m *UserMutation) AddTotalQuestionsCorrect(i int) {
	if m.addtotal_questions_correct != nil {
		*m.addtotal_questions_correct += i
	} else {
		m.addtotal_questions_correct = &i
	}
}

// AddedTotalQuestionsCorrect returns the value that was added to the "total_questions_correct" field in this mutation.
func (m *UserMutation) AddedTotalQuestionsCorrect() (r int, exists bool) {
	v := m.addtotal_questions_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestionsCorrect resets all changes to the "total_questions_correct" field.
func (m *UserMutation) ResetTotalQuestionsCorrect() {
	m.total_questions_correct = nil
	m.addtotal_questions_correct = nil
}

// SetTotalTimeSpentMinutes sets the "total_time_spent_minutes" field.
func (m *UserMutation) SetTotalTimeSpentMinutes(f float64) {
	m.total_time_spent_minutes = &f
	m.addtotal_time_spent_minutes = nil
}

// TotalTimeSpentMinutes returns the value of the "total_time_spent_minutes" field in the mutation.
func (m *UserMutation) TotalTimeSpentMinutes() (r float64, exists bool) {
	v := m.total_time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSpentMinutes returns the old "total_time_spent_minutes" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTotalTimeSpentMinutes(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSpentMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSpentMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSpentMinutes: %w", err)
	}
	return oldValue.TotalTimeSpentMinutes, nil
}

// AddTotalTimeSpentMinutes adds f to the "total_time_spent_minutes" field.
func (m *UserMutation) AddTotalTimeSpentMinutes(f float64) {
	if m.addtotal_time_spent_minutes != nil {
		*m.addtotal_time_spent_minutes += f
	} else {
		m.addtotal_time_spent_minutes = &f
	}
}

// AddedTotalTimeSpentMinutes returns the value that was added to the "total_time_spent_minutes" field in this mutation.
func (m *UserMutation) AddedTotalTimeSpentMinutes() (r float64, exists bool) {
	v := m.addtotal_time_spent_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSpentMinutes resets all changes to the "total_time_spent_minutes" field.
func (m *UserMutation) ResetTotalTimeSpentMinutes() {
	m.total_time_spent_minutes = nil
	m.addtotal_time_spent_minutes = nil
}

// SetCompletedQuizCount sets the "completed_quiz_count" field.
func (m *UserMutation) SetCompletedQuizCount(i int) {
	m.completed_quiz_count = &i
	m.addcompleted_quiz_count = nil
}

// CompletedQuizCount returns the value of the "completed_quiz_count" field in the mutation.
func (m *UserMutation) CompletedQuizCount() (r int, exists bool) {
	v := m.completed_quiz_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedQuizCount returns the old "completed_quiz_count" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCompletedQuizCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedQuizCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedQuizCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedQuizCount: %w", err)
	}
	return oldValue.CompletedQuizCount, nil
}

// AddCompletedQuizCount adds i to the "completed_quiz_count" field.
func (m *UserMutation) AddCompletedQuizCount(i int) {
	if m.addcompleted_quiz_count != nil {
		*m.addcompleted_quiz_count += i
	} else {
		m.addcompleted_quiz_count = &i
	}
}

// AddedCompletedQuizCount returns the value that was added to the "completed_quiz_count" field in this mutation.
func (m *UserMutation) AddedCompletedQuizCount() (r int, exists bool) {
	v := m.addcompleted_quiz_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedQuizCount resets all changes to the "completed_quiz_count" field.
func (m *UserMutation) ResetCompletedQuizCount() {
	m.completed_quiz_count = nil
	m.addcompleted_quiz_count = nil
}

// SetLearningPhase sets the "learning_phase" field.
func (m *UserMutation) SetLearningPhase(s string) {
	m.learning_phase = &s
}

// LearningPhase returns the value of the "learning_phase" field in the mutation.
func (m *UserMutation) LearningPhase() (r string, exists bool) {
	v := m.learning_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningPhase returns the old "learning_phase" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLearningPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningPhase: %w", err)
	}
	return oldValue.LearningPhase, nil
}

// ResetLearningPhase resets all changes to the "learning_phase" field.
func (m *UserMutation) ResetLearningPhase() {
	m.learning_phase = nil
}

// SetCurrentDay sets the "current_day" field.
func (m *UserMutation) SetCurrentDay(i int) {
	m.current_day = &i
	m.addcurrent_day = nil
}

// CurrentDay returns the value of the "current_day" field in the mutation.
func (m *UserMutation) CurrentDay() (r int, exists bool) {
	v := m.current_day
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentDay returns the old "current_day" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCurrentDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentDay: %w", err)
	}
	return oldValue.CurrentDay, nil
}

// AddCurrentDay adds i to the "current_day" field.
func (m *UserMutation) AddCurrentDay(i int) {
	if m.addcurrent_day != nil {
		*m.addcurrent_day += i
	} else {
		m.addcurrent_day = &i
	}
}

// AddedCurrentDay returns the value that was added to the "current_day" field in this mutation.
func (m *UserMutation) AddedCurrentDay() (r int, exists bool) {
	v := m.addcurrent_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentDay resets all changes to the "current_day" field.
func (m *UserMutation) ResetCurrentDay() {
	m.current_day = nil
	m.addcurrent_day = nil
}

// SetAssessmentStatus sets the "assessment_status" field.
func (m *UserMutation) SetAssessmentStatus(s string) {
	m.assessment_status = &s
}

// AssessmentStatus returns the value of the "assessment_status" field in the mutation.
func (m *UserMutation) AssessmentStatus() (r string, exists bool) {
	v := m.assessment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentStatus returns the old "assessment_status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAssessmentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentStatus: %w", err)
	}
	return oldValue.AssessmentStatus, nil
}

// ResetAssessmentStatus resets all changes to the "assessment_status" field.
func (m *UserMutation) ResetAssessmentStatus() {
	m.assessment_status = nil
}

// SetAssessmentBaseline sets the "assessment_baseline" field.
func (m *UserMutation) SetAssessmentBaseline(ms map[string]model.ChapterState) {
	m.assessment_baseline = &ms
}

// AssessmentBaseline returns the value of the "assessment_baseline" field in the mutation.
func (m *UserMutation) AssessmentBaseline() (r map[string]model.ChapterState, exists bool) {
	v := m.assessment_baseline
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentBaseline returns the old "assessment_baseline" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAssessmentBaseline(ctx context.Context) (v map[string]model.ChapterState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentBaseline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentBaseline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentBaseline: %w", err)
	}
	return oldValue.AssessmentBaseline, nil
}

// ClearAssessmentBaseline clears the value of the "assessment_baseline" field.
func (m *UserMutation) ClearAssessmentBaseline() {
	m.assessment_baseline = nil
	m.clearedFields[user.FieldAssessmentBaseline] = struct{}{}
}

// AssessmentBaselineCleared returns if the "assessment_baseline" field was cleared in this mutation.
func (m *UserMutation) AssessmentBaselineCleared() bool {
	_, ok := m.clearedFields[user.FieldAssessmentBaseline]
	return ok
}

// ResetAssessmentBaseline resets all changes to the "assessment_baseline" field.
func (m *UserMutation) ResetAssessmentBaseline() {
	m.assessment_baseline = nil
	delete(m.clearedFields, user.FieldAssessmentBaseline)
}

// SetAssessmentCompletedAt sets the "assessment_completed_at" field.
func (m *UserMutation) SetAssessmentCompletedAt(t time.Time) {
	m.assessment_completed_at = &t
}

// AssessmentCompletedAt returns the value of the "assessment_completed_at" field in the mutation.
func (m *UserMutation) AssessmentCompletedAt() (r time.Time, exists bool) {
	v := m.assessment_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessmentCompletedAt returns the old "assessment_completed_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAssessmentCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessmentCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessmentCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessmentCompletedAt: %w", err)
	}
	return oldValue.AssessmentCompletedAt, nil
}

// ClearAssessmentCompletedAt clears the value of the "assessment_completed_at" field.
func (m *UserMutation) ClearAssessmentCompletedAt() {
	m.assessment_completed_at = nil
	m.clearedFields[user.FieldAssessmentCompletedAt] = struct{}{}
}

// AssessmentCompletedAtCleared returns if the "assessment_completed_at" field was cleared in this mutation.
func (m *UserMutation) AssessmentCompletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldAssessmentCompletedAt]
	return ok
}

// ResetAssessmentCompletedAt resets all changes to the "assessment_completed_at" field.
func (m *UserMutation) ResetAssessmentCompletedAt() {
	m.assessment_completed_at = nil
	delete(m.clearedFields, user.FieldAssessmentCompletedAt)
}

// SetLowAccuracyStreak sets the "low_accuracy_streak" field.
func (m *UserMutation) SetLowAccuracyStreak(i int) {
	m.low_accuracy_streak = &i
	m.addlow_accuracy_streak = nil
}

// LowAccuracyStreak returns the value of the "low_accuracy_streak" field in the mutation.
func (m *UserMutation) LowAccuracyStreak() (r int, exists bool) {
	v := m.low_accuracy_streak
	if v == nil {
		return
	}
	return *v, true
}

// OldLowAccuracyStreak returns the old "low_accuracy_streak" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLowAccuracyStreak(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLowAccuracyStreak is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLowAccuracyStreak requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLowAccuracyStreak: %w", err)
	}
	return oldValue.LowAccuracyStreak, nil
}

// AddLowAccuracyStreak adds i to the "low_accuracy_streak" field.
func (m *UserMutation) AddLowAccuracyStreak(i int) {
	if m.addlow_accuracy_streak != nil {
		*m.addlow_accuracy_streak += i
	} else {
		m.addlow_accuracy_streak = &i
	}
}

// AddedLowAccuracyStreak returns the value that was added to the "low_accuracy_streak" field in this mutation.
func (m *UserMutation) AddedLowAccuracyStreak() (r int, exists bool) {
	v := m.addlow_accuracy_streak
	if v == nil {
		return
	}
	return *v, true
}

// ResetLowAccuracyStreak resets all changes to the "low_accuracy_streak" field.
func (m *UserMutation) ResetLowAccuracyStreak() {
	m.low_accuracy_streak = nil
	m.addlow_accuracy_streak = nil
}

// SetRecoveryCooldown sets the "recovery_cooldown" field.
func (m *UserMutation) SetRecoveryCooldown(i int) {
	m.recovery_cooldown = &i
	m.addrecovery_cooldown = nil
}

// RecoveryCooldown returns the value of the "recovery_cooldown" field in the mutation.
func (m *UserMutation) RecoveryCooldown() (r int, exists bool) {
	v := m.recovery_cooldown
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryCooldown returns the old "recovery_cooldown" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRecoveryCooldown(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryCooldown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryCooldown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryCooldown: %w", err)
	}
	return oldValue.RecoveryCooldown, nil
}

// AddRecoveryCooldown adds i to the "recovery_cooldown" field.
func (m *UserMutation) AddRecoveryCooldown(i int) {
	if m.addrecovery_cooldown != nil {
		*m.addrecovery_cooldown += i
	} else {
		m.addrecovery_cooldown = &i
	}
}

// AddedRecoveryCooldown returns the value that was added to the "recovery_cooldown" field in this mutation.
func (m *UserMutation) AddedRecoveryCooldown() (r int, exists bool) {
	v := m.addrecovery_cooldown
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryCooldown resets all changes to the "recovery_cooldown" field.
func (m *UserMutation) ResetRecoveryCooldown() {
	m.recovery_cooldown = nil
	m.addrecovery_cooldown = nil
}

// SetChapterPracticeStats sets the "chapter_practice_stats" field.
func (m *UserMutation) SetChapterPracticeStats(value map[string]model.Tally) {
	m.chapter_practice_stats = &value
}

// ChapterPracticeStats returns the value of the "chapter_practice_stats" field in the mutation.
func (m *UserMutation) ChapterPracticeStats() (r map[string]model.Tally, exists bool) {
	v := m.chapter_practice_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldChapterPracticeStats returns the old "chapter_practice_stats" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldChapterPracticeStats(ctx context.Context) (v map[string]model.Tally, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapterPracticeStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapterPracticeStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapterPracticeStats: %w", err)
	}
	return oldValue.ChapterPracticeStats, nil
}

// ClearChapterPracticeStats clears the value of the "chapter_practice_stats" field.
func (m *UserMutation) ClearChapterPracticeStats() {
	m.chapter_practice_stats = nil
	m.clearedFields[user.FieldChapterPracticeStats] = struct{}{}
}

// ChapterPracticeStatsCleared returns if the "chapter_practice_stats" field was cleared in this mutation.
func (m *UserMutation) ChapterPracticeStatsCleared() bool {
	_, ok := m.clearedFields[user.FieldChapterPracticeStats]
	return ok
}

// ResetChapterPracticeStats resets all changes to the "chapter_practice_stats" field.
func (m *UserMutation) ResetChapterPracticeStats() {
	m.chapter_practice_stats = nil
	delete(m.clearedFields, user.FieldChapterPracticeStats)
}

// SetSubscription sets the "subscription" field.
func (m *UserMutation) SetSubscription(value *model.Subscription) {
	m.subscription = &value
}

// Subscription returns the value of the "subscription" field in the mutation.
func (m *UserMutation) Subscription() (r *model.Subscription, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscription returns the old "subscription" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSubscription(ctx context.Context) (v *model.Subscription, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscription: %w", err)
	}
	return oldValue.Subscription, nil
}

// ClearSubscription clears the value of the "subscription" field.
func (m *UserMutation) ClearSubscription() {
	m.subscription = nil
	m.clearedFields[user.FieldSubscription] = struct{}{}
}

// SubscriptionCleared returns if the "subscription" field was cleared in this mutation.
func (m *UserMutation) SubscriptionCleared() bool {
	_, ok := m.clearedFields[user.FieldSubscription]
	return ok
}

// ResetSubscription resets all changes to the "subscription" field.
func (m *UserMutation) ResetSubscription() {
	m.subscription = nil
	delete(m.clearedFields, user.FieldSubscription)
}

// SetTrial sets the "trial" field.
func (m *UserMutation) SetTrial(value *model.Trial) {
	m.trial = &value
}

// Trial returns the value of the "trial" field in the mutation.
func (m *UserMutation) Trial() (r *model.Trial, exists bool) {
	v := m.trial
	if v == nil {
		return
	}
	return *v, true
}

// OldTrial returns the old "trial" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTrial(ctx context.Context) (v *model.Trial, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrial: %w", err)
	}
	return oldValue.Trial, nil
}

// ClearTrial clears the value of the "trial" field.
func (m *UserMutation) ClearTrial() {
	m.trial = nil
	m.clearedFields[user.FieldTrial] = struct{}{}
}

// TrialCleared returns if the "trial" field was cleared in this mutation.
func (m *UserMutation) TrialCleared() bool {
	_, ok := m.clearedFields[user.FieldTrial]
	return ok
}

// ResetTrial resets all changes to the "trial" field.
func (m *UserMutation) ResetTrial() {
	m.trial = nil
	delete(m.clearedFields, user.FieldTrial)
}

// SetTierOverride sets the "tier_override" field.
func (m *UserMutation) SetTierOverride(s string) {
	m.tier_override = &s
}

// TierOverride returns the value of the "tier_override" field in the mutation.
func (m *UserMutation) TierOverride() (r string, exists bool) {
	v := m.tier_override
	if v == nil {
		return
	}
	return *v, true
}

// OldTierOverride returns the old "tier_override" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTierOverride(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTierOverride is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTierOverride requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTierOverride: %w", err)
	}
	return oldValue.TierOverride, nil
}

// ClearTierOverride clears the value of the "tier_override" field.
func (m *UserMutation) ClearTierOverride() {
	m.tier_override = nil
	m.clearedFields[user.FieldTierOverride] = struct{}{}
}

// TierOverrideCleared returns if the "tier_override" field was cleared in this mutation.
func (m *UserMutation) TierOverrideCleared() bool {
	_, ok := m.clearedFields[user.FieldTierOverride]
	return ok
}

// ResetTierOverride resets all changes to the "tier_override" field.
func (m *UserMutation) ResetTierOverride() {
	m.tier_override = nil
	delete(m.clearedFields, user.FieldTierOverride)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.overall_theta != nil {
		fields = append(fields, user.FieldOverallTheta)
	}
	if m.overall_percentile != nil {
		fields = append(fields, user.FieldOverallPercentile)
	}
	if m.theta_by_subject != nil {
		fields = append(fields, user.FieldThetaBySubject)
	}
	if m.theta_by_chapter != nil {
		fields = append(fields, user.FieldThetaByChapter)
	}
	if m.subtopic_accuracy != nil {
		fields = append(fields, user.FieldSubtopicAccuracy)
	}
	if m.subject_accuracy != nil {
		fields = append(fields, user.FieldSubjectAccuracy)
	}
	if m.total_questions_attempted != nil {
		fields = append(fields, user.FieldTotalQuestionsAttempted)
	}
	if m.total_questions_correct != nil {
		fields = append(fields, user.FieldTotalQuestionsCorrect)
	}
	if m.total_time_spent_minutes != nil {
		fields = append(fields, user.FieldTotalTimeSpentMinutes)
	}
	if m.completed_quiz_count != nil {
		fields = append(fields, user.FieldCompletedQuizCount)
	}
	if m.learning_phase != nil {
		fields = append(fields, user.FieldLearningPhase)
	}
	if m.current_day != nil {
		fields = append(fields, user.FieldCurrentDay)
	}
	if m.assessment_status != nil {
		fields = append(fields, user.FieldAssessmentStatus)
	}
	if m.assessment_baseline != nil {
		fields = append(fields, user.FieldAssessmentBaseline)
	}
	if m.assessment_completed_at != nil {
		fields = append(fields, user.FieldAssessmentCompletedAt)
	}
	if m.low_accuracy_streak != nil {
		fields = append(fields, user.FieldLowAccuracyStreak)
	}
	if m.recovery_cooldown != nil {
		fields = append(fields, user.FieldRecoveryCooldown)
	}
	if m.chapter_practice_stats != nil {
		fields = append(fields, user.FieldChapterPracticeStats)
	}
	if m.subscription != nil {
		fields = append(fields, user.FieldSubscription)
	}
	if m.trial != nil {
		fields = append(fields, user.FieldTrial)
	}
	if m.tier_override != nil {
		fields = append(fields, user.FieldTierOverride)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldOverallTheta:
		return m.OverallTheta()
	case user.FieldOverallPercentile:
		return m.OverallPercentile()
	case user.FieldThetaBySubject:
		return m.ThetaBySubject()
	case user.FieldThetaByChapter:
		return m.ThetaByChapter()
	case user.FieldSubtopicAccuracy:
		return m.SubtopicAccuracy()
	case user.FieldSubjectAccuracy:
		return m.SubjectAccuracy()
	case user.FieldTotalQuestionsAttempted:
		return m.TotalQuestionsAttempted()
	case user.FieldTotalQuestionsCorrect:
		return m.TotalQuestionsCorrect()
	case user.FieldTotalTimeSpentMinutes:
		return m.TotalTimeSpentMinutes()
	case user.FieldCompletedQuizCount:
		return m.CompletedQuizCount()
	case user.FieldLearningPhase:
		return m.LearningPhase()
	case user.FieldCurrentDay:
		return m.CurrentDay()
	case user.FieldAssessmentStatus:
		return m.AssessmentStatus()
	case user.FieldAssessmentBaseline:
		return m.AssessmentBaseline()
	case user.FieldAssessmentCompletedAt:
		return m.AssessmentCompletedAt()
	case user.FieldLowAccuracyStreak:
		return m.LowAccuracyStreak()
	case user.FieldRecoveryCooldown:
		return m.RecoveryCooldown()
	case user.FieldChapterPracticeStats:
		return m.ChapterPracticeStats()
	case user.FieldSubscription:
		return m.Subscription()
	case user.FieldTrial:
		return m.Trial()
	case user.FieldTierOverride:
		return m.TierOverride()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldOverallTheta:
		return m.OldOverallTheta(ctx)
	case user.FieldOverallPercentile:
		return m.OldOverallPercentile(ctx)
	case user.FieldThetaBySubject:
		return m.OldThetaBySubject(ctx)
	case user.FieldThetaByChapter:
		return m.OldThetaByChapter(ctx)
	case user.FieldSubtopicAccuracy:
		return m.OldSubtopicAccuracy(ctx)
	case user.FieldSubjectAccuracy:
		return m.OldSubjectAccuracy(ctx)
	case user.FieldTotalQuestionsAttempted:
		return m.OldTotalQuestionsAttempted(ctx)
	case user.FieldTotalQuestionsCorrect:
		return m.OldTotalQuestionsCorrect(ctx)
	case user.FieldTotalTimeSpentMinutes:
		return m.OldTotalTimeSpentMinutes(ctx)
	case user.FieldCompletedQuizCount:
		return m.OldCompletedQuizCount(ctx)
	case user.FieldLearningPhase:
		return m.OldLearningPhase(ctx)
	case user.FieldCurrentDay:
		return m.OldCurrentDay(ctx)
	case user.FieldAssessmentStatus:
		return m.OldAssessmentStatus(ctx)
	case user.FieldAssessmentBaseline:
		return m.OldAssessmentBaseline(ctx)
	case user.FieldAssessmentCompletedAt:
		return m.OldAssessmentCompletedAt(ctx)
	case user.FieldLowAccuracyStreak:
		return m.OldLowAccuracyStreak(ctx)
	case user.FieldRecoveryCooldown:
		return m.OldRecoveryCooldown(ctx)
	case user.FieldChapterPracticeStats:
		return m.OldChapterPracticeStats(ctx)
	case user.FieldSubscription:
		return m.OldSubscription(ctx)
	case user.FieldTrial:
		return m.OldTrial(ctx)
	case user.FieldTierOverride:
		return m.OldTierOverride(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldOverallTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallTheta(v)
		return nil
	case user.FieldOverallPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallPercentile(v)
		return nil
	case user.FieldThetaBySubject:
		v, ok := value.(map[string]model.SubjectState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaBySubject(v)
		return nil
	case user.FieldThetaByChapter:
		v, ok := value.(map[string]model.ChapterState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThetaByChapter(v)
		return nil
	case user.FieldSubtopicAccuracy:
		v, ok := value.(map[string]map[string]model.Tally)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicAccuracy(v)
		return nil
	case user.FieldSubjectAccuracy:
		v, ok := value.(map[string]model.Tally)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectAccuracy(v)
		return nil
	case user.FieldTotalQuestionsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestionsAttempted(v)
		return nil
	case user.FieldTotalQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestionsCorrect(v)
		return nil
	case user.FieldTotalTimeSpentMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSpentMinutes(v)
		return nil
	case user.FieldCompletedQuizCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedQuizCount(v)
		return nil
	case user.FieldLearningPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningPhase(v)
		return nil
	case user.FieldCurrentDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentDay(v)
		return nil
	case user.FieldAssessmentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentStatus(v)
		return nil
	case user.FieldAssessmentBaseline:
		v, ok := value.(map[string]model.ChapterState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentBaseline(v)
		return nil
	case user.FieldAssessmentCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessmentCompletedAt(v)
		return nil
	case user.FieldLowAccuracyStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLowAccuracyStreak(v)
		return nil
	case user.FieldRecoveryCooldown:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryCooldown(v)
		return nil
	case user.FieldChapterPracticeStats:
		v, ok := value.(map[string]model.Tally)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapterPracticeStats(v)
		return nil
	case user.FieldSubscription:
		v, ok := value.(*model.Subscription)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscription(v)
		return nil
	case user.FieldTrial:
		v, ok := value.(*model.Trial)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrial(v)
		return nil
	case user.FieldTierOverride:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTierOverride(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_theta != nil {
		fields = append(fields, user.FieldOverallTheta)
	}
	if m.addoverall_percentile != nil {
		fields = append(fields, user.FieldOverallPercentile)
	}
	if m.addtotal_questions_attempted != nil {
		fields = append(fields, user.FieldTotalQuestionsAttempted)
	}
	if m.addtotal_questions_correct != nil {
		fields = append(fields, user.FieldTotalQuestionsCorrect)
	}
	if m.addtotal_time_spent_minutes != nil {
		fields = append(fields, user.FieldTotalTimeSpentMinutes)
	}
	if m.addcompleted_quiz_count != nil {
		fields = append(fields, user.FieldCompletedQuizCount)
	}
	if m.addcurrent_day != nil {
		fields = append(fields, user.FieldCurrentDay)
	}
	if m.addlow_accuracy_streak != nil {
		fields = append(fields, user.FieldLowAccuracyStreak)
	}
	if m.addrecovery_cooldown != nil {
		fields = append(fields, user.FieldRecoveryCooldown)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldOverallTheta:
		return m.AddedOverallTheta()
	case user.FieldOverallPercentile:
		return m.AddedOverallPercentile()
	case user.FieldTotalQuestionsAttempted:
		return m.AddedTotalQuestionsAttempted()
	case user.FieldTotalQuestionsCorrect:
		return m.AddedTotalQuestionsCorrect()
	case user.FieldTotalTimeSpentMinutes:
		return m.AddedTotalTimeSpentMinutes()
	case user.FieldCompletedQuizCount:
		return m.AddedCompletedQuizCount()
	case user.FieldCurrentDay:
		return m.AddedCurrentDay()
	case user.FieldLowAccuracyStreak:
		return m.AddedLowAccuracyStreak()
	case user.FieldRecoveryCooldown:
		return m.AddedRecoveryCooldown()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldOverallTheta:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallTheta(v)
		return nil
	case user.FieldOverallPercentile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallPercentile(v)
		return nil
	case user.FieldTotalQuestionsAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestionsAttempted(v)
		return nil
	case user.FieldTotalQuestionsCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestionsCorrect(v)
		return nil
	case user.FieldTotalTimeSpentMinutes:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSpentMinutes(v)
		return nil
	case user.FieldCompletedQuizCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedQuizCount(v)
		return nil
	case user.FieldCurrentDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentDay(v)
		return nil
	case user.FieldLowAccuracyStreak:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLowAccuracyStreak(v)
		return nil
	case user.FieldRecoveryCooldown:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryCooldown(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldThetaBySubject) {
		fields = append(fields, user.FieldThetaBySubject)
	}
	if m.FieldCleared(user.FieldThetaByChapter) {
		fields = append(fields, user.FieldThetaByChapter)
	}
	if m.FieldCleared(user.FieldSubtopicAccuracy) {
		fields = append(fields, user.FieldSubtopicAccuracy)
	}
	if m.FieldCleared(user.FieldSubjectAccuracy) {
		fields = append(fields, user.FieldSubjectAccuracy)
	}
	if m.FieldCleared(user.FieldAssessmentBaseline) {
		fields = append(fields, user.FieldAssessmentBaseline)
	}
	if m.FieldCleared(user.FieldAssessmentCompletedAt) {
		fields = append(fields, user.FieldAssessmentCompletedAt)
	}
	if m.FieldCleared(user.FieldChapterPracticeStats) {
		fields = append(fields, user.FieldChapterPracticeStats)
	}
	if m.FieldCleared(user.FieldSubscription) {
		fields = append(fields, user.FieldSubscription)
	}
	if m.FieldCleared(user.FieldTrial) {
		fields = append(fields, user.FieldTrial)
	}
	if m.FieldCleared(user.FieldTierOverride) {
		fields = append(fields, user.FieldTierOverride)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldThetaBySubject:
		m.ClearThetaBySubject()
		return nil
	case user.FieldThetaByChapter:
		m.ClearThetaByChapter()
		return nil
	case user.FieldSubtopicAccuracy:
		m.ClearSubtopicAccuracy()
		return nil
	case user.FieldSubjectAccuracy:
		m.ClearSubjectAccuracy()
		return nil
	case user.FieldAssessmentBaseline:
		m.ClearAssessmentBaseline()
		return nil
	case user.FieldAssessmentCompletedAt:
		m.ClearAssessmentCompletedAt()
		return nil
	case user.FieldChapterPracticeStats:
		m.ClearChapterPracticeStats()
		return nil
	case user.FieldSubscription:
		m.ClearSubscription()
		return nil
	case user.FieldTrial:
		m.ClearTrial()
		return nil
	case user.FieldTierOverride:
		m.ClearTierOverride()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldOverallTheta:
		m.ResetOverallTheta()
		return nil
	case user.FieldOverallPercentile:
		m.ResetOverallPercentile()
		return nil
	case user.FieldThetaBySubject:
		m.ResetThetaBySubject()
		return nil
	case user.FieldThetaByChapter:
		m.ResetThetaByChapter()
		return nil
	case user.FieldSubtopicAccuracy:
		m.ResetSubtopicAccuracy()
		return nil
	case user.FieldSubjectAccuracy:
		m.ResetSubjectAccuracy()
		return nil
	case user.FieldTotalQuestionsAttempted:
		m.ResetTotalQuestionsAttempted()
		return nil
	case user.FieldTotalQuestionsCorrect:
		m.ResetTotalQuestionsCorrect()
		return nil
	case user.FieldTotalTimeSpentMinutes:
		m.ResetTotalTimeSpentMinutes()
		return nil
	case user.FieldCompletedQuizCount:
		m.ResetCompletedQuizCount()
		return nil
	case user.FieldLearningPhase:
		m.ResetLearningPhase()
		return nil
	case user.FieldCurrentDay:
		m.ResetCurrentDay()
		return nil
	case user.FieldAssessmentStatus:
		m.ResetAssessmentStatus()
		return nil
	case user.FieldAssessmentBaseline:
		m.ResetAssessmentBaseline()
		return nil
	case user.FieldAssessmentCompletedAt:
		m.ResetAssessmentCompletedAt()
		return nil
	case user.FieldLowAccuracyStreak:
		m.ResetLowAccuracyStreak()
		return nil
	case user.FieldRecoveryCooldown:
		m.ResetRecoveryCooldown()
		return nil
	case user.FieldChapterPracticeStats:
		m.ResetChapterPracticeStats()
		return nil
	case user.FieldSubscription:
		m.ResetSubscription()
		return nil
	case user.FieldTrial:
		m.ResetTrial()
		return nil
	case user.FieldTierOverride:
		m.ResetTierOverride()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
