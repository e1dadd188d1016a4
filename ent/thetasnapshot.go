// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/internal/model"
)

// ThetaSnapshot is the model entity for the ThetaSnapshot schema.
type ThetaSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Session id, or the ISO week key for weekly snapshots
	QuizID string `json:"quiz_id,omitempty"`
	// QuizNumber holds the value of the "quiz_number" field.
	QuizNumber int `json:"quiz_number,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload *model.SnapshotPayload `json:"payload,omitempty"`
	// CapturedAt holds the value of the "captured_at" field.
	CapturedAt   time.Time `json:"captured_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThetaSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case thetasnapshot.FieldPayload:
			values[i] = new([]byte)
		case thetasnapshot.FieldID, thetasnapshot.FieldQuizNumber:
			values[i] = new(sql.NullInt64)
		case thetasnapshot.FieldUserID, thetasnapshot.FieldQuizID:
			values[i] = new(sql.NullString)
		case thetasnapshot.FieldCapturedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThetaSnapshot fields.
func (_m *ThetaSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case thetasnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case thetasnapshot.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case thetasnapshot.FieldQuizID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_id", values[i])
			} else if value.Valid {
				_m.QuizID = value.String
			}
		case thetasnapshot.FieldQuizNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_number", values[i])
			} else if value.Valid {
				_m.QuizNumber = int(value.Int64)
			}
		case thetasnapshot.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case thetasnapshot.FieldCapturedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field captured_at", values[i])
			} else if value.Valid {
				_m.CapturedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ThetaSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ThetaSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ThetaSnapshot.
// Note that you need to call ThetaSnapshot.Unwrap() before calling this method if this ThetaSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThetaSnapshot) Update() *ThetaSnapshotUpdateOne {
	return NewThetaSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThetaSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThetaSnapshot) Unwrap() *ThetaSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThetaSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThetaSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ThetaSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("quiz_id=")
	builder.WriteString(_m.QuizID)
	builder.WriteString(", ")
	builder.WriteString("quiz_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizNumber))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("captured_at=")
	builder.WriteString(_m.CapturedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ThetaSnapshots is a parsable slice of ThetaSnapshot.
type ThetaSnapshots []*ThetaSnapshot
