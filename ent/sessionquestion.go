// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/sessionquestion"
)

// SessionQuestion is the model entity for the SessionQuestion schema.
type SessionQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// 1-based position in the session
	Position int `json:"position,omitempty"`
	// ChapterKey holds the value of the "chapter_key" field.
	ChapterKey string `json:"chapter_key,omitempty"`
	// Selection tag: exploration, deliberate_practice or review
	Rationale string `json:"rationale,omitempty"`
	// Answered holds the value of the "answered" field.
	Answered bool `json:"answered,omitempty"`
	// Set while a submission is in flight; expires after 30s
	AnsweringAt *time.Time `json:"answering_at,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// TimeTakenSeconds holds the value of the "time_taken_seconds" field.
	TimeTakenSeconds int `json:"time_taken_seconds,omitempty"`
	// ThetaDelta holds the value of the "theta_delta" field.
	ThetaDelta float64 `json:"theta_delta,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt   *time.Time `json:"answered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionquestion.FieldAnswered, sessionquestion.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case sessionquestion.FieldThetaDelta:
			values[i] = new(sql.NullFloat64)
		case sessionquestion.FieldID, sessionquestion.FieldPosition, sessionquestion.FieldTimeTakenSeconds:
			values[i] = new(sql.NullInt64)
		case sessionquestion.FieldSessionID, sessionquestion.FieldUserID, sessionquestion.FieldQuestionID, sessionquestion.FieldChapterKey, sessionquestion.FieldRationale, sessionquestion.FieldStudentAnswer:
			values[i] = new(sql.NullString)
		case sessionquestion.FieldAnsweringAt, sessionquestion.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionQuestion fields.
func (_m *SessionQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionquestion.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionquestion.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionquestion.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case sessionquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case sessionquestion.FieldChapterKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_key", values[i])
			} else if value.Valid {
				_m.ChapterKey = value.String
			}
		case sessionquestion.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case sessionquestion.FieldAnswered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field answered", values[i])
			} else if value.Valid {
				_m.Answered = value.Bool
			}
		case sessionquestion.FieldAnsweringAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answering_at", values[i])
			} else if value.Valid {
				_m.AnsweringAt = new(time.Time)
				*_m.AnsweringAt = value.Time
			}
		case sessionquestion.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case sessionquestion.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case sessionquestion.FieldTimeTakenSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_seconds", values[i])
			} else if value.Valid {
				_m.TimeTakenSeconds = int(value.Int64)
			}
		case sessionquestion.FieldThetaDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_delta", values[i])
			} else if value.Valid {
				_m.ThetaDelta = value.Float64
			}
		case sessionquestion.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = new(time.Time)
				*_m.AnsweredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *SessionQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionQuestion.
// Note that you need to call SessionQuestion.Unwrap() before calling this method if this SessionQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionQuestion) Update() *SessionQuestionUpdateOne {
	return NewSessionQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionQuestion) Unwrap() *SessionQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("SessionQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("chapter_key=")
	builder.WriteString(_m.ChapterKey)
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answered))
	builder.WriteString(", ")
	if v := _m.AnsweringAt; v != nil {
		builder.WriteString("answering_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("time_taken_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTakenSeconds))
	builder.WriteString(", ")
	builder.WriteString("theta_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaDelta))
	builder.WriteString(", ")
	if v := _m.AnsweredAt; v != nil {
		builder.WriteString("answered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SessionQuestions is a parsable slice of SessionQuestion.
type SessionQuestions []*SessionQuestion
