// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/internal/model"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Chapter holds the value of the "chapter" field.
	Chapter string `json:"chapter,omitempty"`
	// Canonical subject_chapter identifier
	ChapterKey string `json:"chapter_key,omitempty"`
	// SubTopics holds the value of the "sub_topics" field.
	SubTopics []string `json:"sub_topics,omitempty"`
	// mcq_single or numerical
	QuestionType string `json:"question_type,omitempty"`
	// MCQ option letters; sessions holding questions with fewer than 2 are invalidated
	Options []string `json:"options,omitempty"`
	// MCQ letter, or the numerical value as text
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Parsed numerical answer
	AnswerValue *float64 `json:"answer_value,omitempty"`
	// AnswerRange holds the value of the "answer_range" field.
	AnswerRange *model.AnswerRange `json:"answer_range,omitempty"`
	// IrtA holds the value of the "irt_a" field.
	IrtA float64 `json:"irt_a,omitempty"`
	// IrtB holds the value of the "irt_b" field.
	IrtB float64 `json:"irt_b,omitempty"`
	// IrtC holds the value of the "irt_c" field.
	IrtC float64 `json:"irt_c,omitempty"`
	// Member of the curated initial-assessment subset
	IsAssessment bool `json:"is_assessment,omitempty"`
	// Refreshed by the question-stat job
	AttemptsCount int `json:"attempts_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// Unknown catalog fields passed through for forward compatibility
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldSubTopics, question.FieldOptions, question.FieldAnswerRange, question.FieldPayload:
			values[i] = new([]byte)
		case question.FieldIsAssessment:
			values[i] = new(sql.NullBool)
		case question.FieldAnswerValue, question.FieldIrtA, question.FieldIrtB, question.FieldIrtC:
			values[i] = new(sql.NullFloat64)
		case question.FieldAttemptsCount, question.FieldCorrectCount:
			values[i] = new(sql.NullInt64)
		case question.FieldID, question.FieldSubject, question.FieldChapter, question.FieldChapterKey, question.FieldQuestionType, question.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case question.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case question.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case question.FieldChapter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter", values[i])
			} else if value.Valid {
				_m.Chapter = value.String
			}
		case question.FieldChapterKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_key", values[i])
			} else if value.Valid {
				_m.ChapterKey = value.String
			}
		case question.FieldSubTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sub_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubTopics); err != nil {
					return fmt.Errorf("unmarshal field sub_topics: %w", err)
				}
			}
		case question.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case question.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case question.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case question.FieldAnswerValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field answer_value", values[i])
			} else if value.Valid {
				_m.AnswerValue = new(float64)
				*_m.AnswerValue = value.Float64
			}
		case question.FieldAnswerRange:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answer_range", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnswerRange); err != nil {
					return fmt.Errorf("unmarshal field answer_range: %w", err)
				}
			}
		case question.FieldIrtA:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_a", values[i])
			} else if value.Valid {
				_m.IrtA = value.Float64
			}
		case question.FieldIrtB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_b", values[i])
			} else if value.Valid {
				_m.IrtB = value.Float64
			}
		case question.FieldIrtC:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_c", values[i])
			} else if value.Valid {
				_m.IrtC = value.Float64
			}
		case question.FieldIsAssessment:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_assessment", values[i])
			} else if value.Valid {
				_m.IsAssessment = value.Bool
			}
		case question.FieldAttemptsCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts_count", values[i])
			} else if value.Valid {
				_m.AttemptsCount = int(value.Int64)
			}
		case question.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case question.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case question.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("chapter=")
	builder.WriteString(_m.Chapter)
	builder.WriteString(", ")
	builder.WriteString("chapter_key=")
	builder.WriteString(_m.ChapterKey)
	builder.WriteString(", ")
	builder.WriteString("sub_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubTopics))
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	if v := _m.AnswerValue; v != nil {
		builder.WriteString("answer_value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("answer_range=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnswerRange))
	builder.WriteString(", ")
	builder.WriteString("irt_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.IrtA))
	builder.WriteString(", ")
	builder.WriteString("irt_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.IrtB))
	builder.WriteString(", ")
	builder.WriteString("irt_c=")
	builder.WriteString(fmt.Sprintf("%v", _m.IrtC))
	builder.WriteString(", ")
	builder.WriteString("is_assessment=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsAssessment))
	builder.WriteString(", ")
	builder.WriteString("attempts_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptsCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
