// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/response"
)

// Response is the model entity for the Response schema.
type Response struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// ChapterKey holds the value of the "chapter_key" field.
	ChapterKey string `json:"chapter_key,omitempty"`
	// SubTopics holds the value of the "sub_topics" field.
	SubTopics []string `json:"sub_topics,omitempty"`
	// StudentAnswer holds the value of the "student_answer" field.
	StudentAnswer string `json:"student_answer,omitempty"`
	// CorrectAnswer holds the value of the "correct_answer" field.
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// TimeTakenSeconds holds the value of the "time_taken_seconds" field.
	TimeTakenSeconds int `json:"time_taken_seconds,omitempty"`
	// IrtA holds the value of the "irt_a" field.
	IrtA float64 `json:"irt_a,omitempty"`
	// IrtB holds the value of the "irt_b" field.
	IrtB float64 `json:"irt_b,omitempty"`
	// IrtC holds the value of the "irt_c" field.
	IrtC float64 `json:"irt_c,omitempty"`
	// ThetaDelta holds the value of the "theta_delta" field.
	ThetaDelta float64 `json:"theta_delta,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt   time.Time `json:"answered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Response) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case response.FieldSubTopics:
			values[i] = new([]byte)
		case response.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case response.FieldIrtA, response.FieldIrtB, response.FieldIrtC, response.FieldThetaDelta:
			values[i] = new(sql.NullFloat64)
		case response.FieldID, response.FieldTimeTakenSeconds:
			values[i] = new(sql.NullInt64)
		case response.FieldUserID, response.FieldSessionID, response.FieldQuestionID, response.FieldKind, response.FieldChapterKey, response.FieldStudentAnswer, response.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case response.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Response fields.
func (_m *Response) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case response.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case response.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case response.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case response.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case response.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case response.FieldChapterKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_key", values[i])
			} else if value.Valid {
				_m.ChapterKey = value.String
			}
		case response.FieldSubTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sub_topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubTopics); err != nil {
					return fmt.Errorf("unmarshal field sub_topics: %w", err)
				}
			}
		case response.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				_m.StudentAnswer = value.String
			}
		case response.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				_m.CorrectAnswer = value.String
			}
		case response.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case response.FieldTimeTakenSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_seconds", values[i])
			} else if value.Valid {
				_m.TimeTakenSeconds = int(value.Int64)
			}
		case response.FieldIrtA:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_a", values[i])
			} else if value.Valid {
				_m.IrtA = value.Float64
			}
		case response.FieldIrtB:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_b", values[i])
			} else if value.Valid {
				_m.IrtB = value.Float64
			}
		case response.FieldIrtC:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_c", values[i])
			} else if value.Valid {
				_m.IrtC = value.Float64
			}
		case response.FieldThetaDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta_delta", values[i])
			} else if value.Valid {
				_m.ThetaDelta = value.Float64
			}
		case response.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Response.
// This includes values selected through modifiers, order, etc.
func (_m *Response) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Response.
// Note that you need to call Response.Unwrap() before calling this method if this Response
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Response) Update() *ResponseUpdateOne {
	return NewResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Response entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Response) Unwrap() *Response {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Response is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Response) String() string {
	var builder strings.Builder
	builder.WriteString("Response(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("chapter_key=")
	builder.WriteString(_m.ChapterKey)
	builder.WriteString(", ")
	builder.WriteString("sub_topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubTopics))
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(_m.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(_m.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("time_taken_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTakenSeconds))
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
	builder.WriteString("theta_delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaDelta))
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(_m.AnsweredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Responses is a parsable slice of Response.
type Responses []*Response
