// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/quotacounter"
)

// QuotaCounter is the model entity for the QuotaCounter schema.
type QuotaCounter struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Feature holds the value of the "feature" field.
	Feature string `json:"feature,omitempty"`
	// PeriodKey holds the value of the "period_key" field.
	PeriodKey string `json:"period_key,omitempty"`
	// Used holds the value of the "used" field.
	Used int `json:"used,omitempty"`
	// -1 means unlimited
	Limit int `json:"limit,omitempty"`
	// ResetsAt holds the value of the "resets_at" field.
	ResetsAt     time.Time `json:"resets_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuotaCounter) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotacounter.FieldID, quotacounter.FieldUsed, quotacounter.FieldLimit:
			values[i] = new(sql.NullInt64)
		case quotacounter.FieldUserID, quotacounter.FieldFeature, quotacounter.FieldPeriodKey:
			values[i] = new(sql.NullString)
		case quotacounter.FieldResetsAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuotaCounter fields.
func (_m *QuotaCounter) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotacounter.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quotacounter.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case quotacounter.FieldFeature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature", values[i])
			} else if value.Valid {
				_m.Feature = value.String
			}
		case quotacounter.FieldPeriodKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period_key", values[i])
			} else if value.Valid {
				_m.PeriodKey = value.String
			}
		case quotacounter.FieldUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field used", values[i])
			} else if value.Valid {
				_m.Used = int(value.Int64)
			}
		case quotacounter.FieldLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field limit", values[i])
			} else if value.Valid {
				_m.Limit = int(value.Int64)
			}
		case quotacounter.FieldResetsAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resets_at", values[i])
			} else if value.Valid {
				_m.ResetsAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuotaCounter.
// This includes values selected through modifiers, order, etc.
func (_m *QuotaCounter) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuotaCounter.
// Note that you need to call QuotaCounter.Unwrap() before calling this method if this QuotaCounter
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuotaCounter) Update() *QuotaCounterUpdateOne {
	return NewQuotaCounterClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuotaCounter entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuotaCounter) Unwrap() *QuotaCounter {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuotaCounter is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuotaCounter) String() string {
	var builder strings.Builder
	builder.WriteString("QuotaCounter(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("feature=")
	builder.WriteString(_m.Feature)
	builder.WriteString(", ")
	builder.WriteString("period_key=")
	builder.WriteString(_m.PeriodKey)
	builder.WriteString(", ")
	builder.WriteString("used=")
	builder.WriteString(fmt.Sprintf("%v", _m.Used))
	builder.WriteString(", ")
	builder.WriteString("limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.Limit))
	builder.WriteString(", ")
	builder.WriteString("resets_at=")
	builder.WriteString(_m.ResetsAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuotaCounters is a parsable slice of QuotaCounter.
type QuotaCounters []*QuotaCounter
