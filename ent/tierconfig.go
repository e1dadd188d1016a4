// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/internal/model"
)

// TierConfig is the model entity for the TierConfig schema.
type TierConfig struct {
	config `json:"-"`
	// ID of the ent.
	// Tier name: free, trial, pro, ...
	ID string `json:"id,omitempty"`
	// Limits holds the value of the "limits" field.
	Limits model.TierLimits `json:"limits,omitempty"`
	// Features holds the value of the "features" field.
	Features []string `json:"features,omitempty"`
	// When set, chapter practice quota is weekly per subject instead of daily
	ChapterPracticeWeekly bool `json:"chapter_practice_weekly,omitempty"`
	// Quiz count at which the learning phase flips to exploitation
	ExplorationEndQuiz int `json:"exploration_end_quiz,omitempty"`
	// Consecutive sub-50% quizzes that trigger a recovery quiz
	RecoveryTrigger int `json:"recovery_trigger,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TierConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tierconfig.FieldLimits, tierconfig.FieldFeatures:
			values[i] = new([]byte)
		case tierconfig.FieldChapterPracticeWeekly:
			values[i] = new(sql.NullBool)
		case tierconfig.FieldExplorationEndQuiz, tierconfig.FieldRecoveryTrigger:
			values[i] = new(sql.NullInt64)
		case tierconfig.FieldID:
			values[i] = new(sql.NullString)
		case tierconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TierConfig fields.
func (_m *TierConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tierconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tierconfig.FieldLimits:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field limits", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Limits); err != nil {
					return fmt.Errorf("unmarshal field limits: %w", err)
				}
			}
		case tierconfig.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case tierconfig.FieldChapterPracticeWeekly:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_practice_weekly", values[i])
			} else if value.Valid {
				_m.ChapterPracticeWeekly = value.Bool
			}
		case tierconfig.FieldExplorationEndQuiz:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exploration_end_quiz", values[i])
			} else if value.Valid {
				_m.ExplorationEndQuiz = int(value.Int64)
			}
		case tierconfig.FieldRecoveryTrigger:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_trigger", values[i])
			} else if value.Valid {
				_m.RecoveryTrigger = int(value.Int64)
			}
		case tierconfig.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TierConfig.
// This includes values selected through modifiers, order, etc.
func (_m *TierConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TierConfig.
// Note that you need to call TierConfig.Unwrap() before calling this method if this TierConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TierConfig) Update() *TierConfigUpdateOne {
	return NewTierConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TierConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TierConfig) Unwrap() *TierConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TierConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TierConfig) String() string {
	var builder strings.Builder
	builder.WriteString("TierConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("limits=")
	builder.WriteString(fmt.Sprintf("%v", _m.Limits))
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteString(", ")
	builder.WriteString("chapter_practice_weekly=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterPracticeWeekly))
	builder.WriteString(", ")
	builder.WriteString("exploration_end_quiz=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExplorationEndQuiz))
	builder.WriteString(", ")
	builder.WriteString("recovery_trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryTrigger))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TierConfigs is a parsable slice of TierConfig.
type TierConfigs []*TierConfig
