// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Set for chapter_practice, unlock_quiz and snap_practice
	ChapterKey string `json:"chapter_key,omitempty"`
	// Mock-test template
	TemplateID string `json:"template_id,omitempty"`
	// LearningPhase holds the value of the "learning_phase" field.
	LearningPhase string `json:"learning_phase,omitempty"`
	// IsRecoveryQuiz holds the value of the "is_recovery_quiz" field.
	IsRecoveryQuiz bool `json:"is_recovery_quiz,omitempty"`
	// QuizNumber holds the value of the "quiz_number" field.
	QuizNumber int `json:"quiz_number,omitempty"`
	// QuestionsTotal holds the value of the "questions_total" field.
	QuestionsTotal int `json:"questions_total,omitempty"`
	// QuestionsAnswered holds the value of the "questions_answered" field.
	QuestionsAnswered int `json:"questions_answered,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// TotalTimeSeconds holds the value of the "total_time_seconds" field.
	TotalTimeSeconds int `json:"total_time_seconds,omitempty"`
	// InvalidReason holds the value of the "invalid_reason" field.
	InvalidReason string `json:"invalid_reason,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldIsRecoveryQuiz:
			values[i] = new(sql.NullBool)
		case session.FieldQuizNumber, session.FieldQuestionsTotal, session.FieldQuestionsAnswered, session.FieldCorrectCount, session.FieldTotalTimeSeconds:
			values[i] = new(sql.NullInt64)
		case session.FieldID, session.FieldUserID, session.FieldKind, session.FieldStatus, session.FieldChapterKey, session.FieldTemplateID, session.FieldLearningPhase, session.FieldInvalidReason:
			values[i] = new(sql.NullString)
		case session.FieldExpiresAt, session.FieldCompletedAt, session.FieldCreatedAt, session.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case session.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case session.FieldChapterKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_key", values[i])
			} else if value.Valid {
				_m.ChapterKey = value.String
			}
		case session.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case session.FieldLearningPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_phase", values[i])
			} else if value.Valid {
				_m.LearningPhase = value.String
			}
		case session.FieldIsRecoveryQuiz:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_recovery_quiz", values[i])
			} else if value.Valid {
				_m.IsRecoveryQuiz = value.Bool
			}
		case session.FieldQuizNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_number", values[i])
			} else if value.Valid {
				_m.QuizNumber = int(value.Int64)
			}
		case session.FieldQuestionsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_total", values[i])
			} else if value.Valid {
				_m.QuestionsTotal = int(value.Int64)
			}
		case session.FieldQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_answered", values[i])
			} else if value.Valid {
				_m.QuestionsAnswered = int(value.Int64)
			}
		case session.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case session.FieldTotalTimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_seconds", values[i])
			} else if value.Valid {
				_m.TotalTimeSeconds = int(value.Int64)
			}
		case session.FieldInvalidReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invalid_reason", values[i])
			} else if value.Valid {
				_m.InvalidReason = value.String
			}
		case session.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case session.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("chapter_key=")
	builder.WriteString(_m.ChapterKey)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("learning_phase=")
	builder.WriteString(_m.LearningPhase)
	builder.WriteString(", ")
	builder.WriteString("is_recovery_quiz=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsRecoveryQuiz))
	builder.WriteString(", ")
	builder.WriteString("quiz_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizNumber))
	builder.WriteString(", ")
	builder.WriteString("questions_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsTotal))
	builder.WriteString(", ")
	builder.WriteString("questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("invalid_reason=")
	builder.WriteString(_m.InvalidReason)
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
