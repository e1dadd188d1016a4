// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/reviewinterval"
)

// ReviewInterval is the model entity for the ReviewInterval schema.
type ReviewInterval struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID string `json:"question_id,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview time.Time `json:"next_review,omitempty"`
	// TimesReviewed holds the value of the "times_reviewed" field.
	TimesReviewed int `json:"times_reviewed,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewInterval) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewinterval.FieldID, reviewinterval.FieldIntervalDays, reviewinterval.FieldTimesReviewed:
			values[i] = new(sql.NullInt64)
		case reviewinterval.FieldUserID, reviewinterval.FieldQuestionID:
			values[i] = new(sql.NullString)
		case reviewinterval.FieldNextReview, reviewinterval.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewInterval fields.
func (_m *ReviewInterval) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewinterval.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewinterval.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case reviewinterval.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case reviewinterval.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case reviewinterval.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case reviewinterval.FieldTimesReviewed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field times_reviewed", values[i])
			} else if value.Valid {
				_m.TimesReviewed = int(value.Int64)
			}
		case reviewinterval.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewInterval.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewInterval) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewInterval.
// Note that you need to call ReviewInterval.Unwrap() before calling this method if this ReviewInterval
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewInterval) Update() *ReviewIntervalUpdateOne {
	return NewReviewIntervalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewInterval entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewInterval) Unwrap() *ReviewInterval {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewInterval is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewInterval) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewInterval(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("times_reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimesReviewed))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewIntervals is a parsable slice of ReviewInterval.
type ReviewIntervals []*ReviewInterval
