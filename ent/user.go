// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/user"
	"github.com/jeevibe/engine/internal/model"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	// Stable external identity
	ID string `json:"id,omitempty"`
	// Attempt-weighted mean across subjects, clamped to [-3, 3]
	OverallTheta float64 `json:"overall_theta,omitempty"`
	// OverallPercentile holds the value of the "overall_percentile" field.
	OverallPercentile int `json:"overall_percentile,omitempty"`
	// ThetaBySubject holds the value of the "theta_by_subject" field.
	ThetaBySubject map[string]model.SubjectState `json:"theta_by_subject,omitempty"`
	// ThetaByChapter holds the value of the "theta_by_chapter" field.
	ThetaByChapter map[string]model.ChapterState `json:"theta_by_chapter,omitempty"`
	// chapter_key -> subtopic -> tally
	SubtopicAccuracy map[string]map[string]model.Tally `json:"subtopic_accuracy,omitempty"`
	// SubjectAccuracy holds the value of the "subject_accuracy" field.
	SubjectAccuracy map[string]model.Tally `json:"subject_accuracy,omitempty"`
	// TotalQuestionsAttempted holds the value of the "total_questions_attempted" field.
	TotalQuestionsAttempted int `json:"total_questions_attempted,omitempty"`
	// TotalQuestionsCorrect holds the value of the "total_questions_correct" field.
	TotalQuestionsCorrect int `json:"total_questions_correct,omitempty"`
	// TotalTimeSpentMinutes holds the value of the "total_time_spent_minutes" field.
	TotalTimeSpentMinutes float64 `json:"total_time_spent_minutes,omitempty"`
	// CompletedQuizCount holds the value of the "completed_quiz_count" field.
	CompletedQuizCount int `json:"completed_quiz_count,omitempty"`
	// LearningPhase holds the value of the "learning_phase" field.
	LearningPhase string `json:"learning_phase,omitempty"`
	// IST calendar days since assessment completion, analytics only
	CurrentDay int `json:"current_day,omitempty"`
	// AssessmentStatus holds the value of the "assessment_status" field.
	AssessmentStatus string `json:"assessment_status,omitempty"`
	// theta_by_chapter snapshot at first assessment completion
	AssessmentBaseline map[string]model.ChapterState `json:"assessment_baseline,omitempty"`
	// AssessmentCompletedAt holds the value of the "assessment_completed_at" field.
	AssessmentCompletedAt *time.Time `json:"assessment_completed_at,omitempty"`
	// Consecutive completed quizzes with accuracy < 50%
	LowAccuracyStreak int `json:"low_accuracy_streak,omitempty"`
	// Quizzes remaining before the recovery trigger re-arms
	RecoveryCooldown int `json:"recovery_cooldown,omitempty"`
	// chapter_key -> sessions completed / questions answered
	ChapterPracticeStats map[string]model.Tally `json:"chapter_practice_stats,omitempty"`
	// Subscription holds the value of the "subscription" field.
	Subscription *model.Subscription `json:"subscription,omitempty"`
	// Trial holds the value of the "trial" field.
	Trial *model.Trial `json:"trial,omitempty"`
	// Admin-set tier name; beats free, loses to paid and trial
	TierOverride string `json:"tier_override,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldThetaBySubject, user.FieldThetaByChapter, user.FieldSubtopicAccuracy, user.FieldSubjectAccuracy, user.FieldAssessmentBaseline, user.FieldChapterPracticeStats, user.FieldSubscription, user.FieldTrial:
			values[i] = new([]byte)
		case user.FieldOverallTheta, user.FieldTotalTimeSpentMinutes:
			values[i] = new(sql.NullFloat64)
		case user.FieldOverallPercentile, user.FieldTotalQuestionsAttempted, user.FieldTotalQuestionsCorrect, user.FieldCompletedQuizCount, user.FieldCurrentDay, user.FieldLowAccuracyStreak, user.FieldRecoveryCooldown:
			values[i] = new(sql.NullInt64)
		case user.FieldID, user.FieldLearningPhase, user.FieldAssessmentStatus, user.FieldTierOverride:
			values[i] = new(sql.NullString)
		case user.FieldAssessmentCompletedAt, user.FieldCreatedAt, user.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldOverallTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_theta", values[i])
			} else if value.Valid {
				_m.OverallTheta = value.Float64
			}
		case user.FieldOverallPercentile:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_percentile", values[i])
			} else if value.Valid {
				_m.OverallPercentile = int(value.Int64)
			}
		case user.FieldThetaBySubject:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field theta_by_subject", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ThetaBySubject); err != nil {
					return fmt.Errorf("unmarshal field theta_by_subject: %w", err)
				}
			}
		case user.FieldThetaByChapter:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field theta_by_chapter", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ThetaByChapter); err != nil {
					return fmt.Errorf("unmarshal field theta_by_chapter: %w", err)
				}
			}
		case user.FieldSubtopicAccuracy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_accuracy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubtopicAccuracy); err != nil {
					return fmt.Errorf("unmarshal field subtopic_accuracy: %w", err)
				}
			}
		case user.FieldSubjectAccuracy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subject_accuracy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubjectAccuracy); err != nil {
					return fmt.Errorf("unmarshal field subject_accuracy: %w", err)
				}
			}
		case user.FieldTotalQuestionsAttempted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions_attempted", values[i])
			} else if value.Valid {
				_m.TotalQuestionsAttempted = int(value.Int64)
			}
		case user.FieldTotalQuestionsCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions_correct", values[i])
			} else if value.Valid {
				_m.TotalQuestionsCorrect = int(value.Int64)
			}
		case user.FieldTotalTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_spent_minutes", values[i])
			} else if value.Valid {
				_m.TotalTimeSpentMinutes = value.Float64
			}
		case user.FieldCompletedQuizCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_quiz_count", values[i])
			} else if value.Valid {
				_m.CompletedQuizCount = int(value.Int64)
			}
		case user.FieldLearningPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_phase", values[i])
			} else if value.Valid {
				_m.LearningPhase = value.String
			}
		case user.FieldCurrentDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_day", values[i])
			} else if value.Valid {
				_m.CurrentDay = int(value.Int64)
			}
		case user.FieldAssessmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_status", values[i])
			} else if value.Valid {
				_m.AssessmentStatus = value.String
			}
		case user.FieldAssessmentBaseline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_baseline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssessmentBaseline); err != nil {
					return fmt.Errorf("unmarshal field assessment_baseline: %w", err)
				}
			}
		case user.FieldAssessmentCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assessment_completed_at", values[i])
			} else if value.Valid {
				_m.AssessmentCompletedAt = new(time.Time)
				*_m.AssessmentCompletedAt = value.Time
			}
		case user.FieldLowAccuracyStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field low_accuracy_streak", values[i])
			} else if value.Valid {
				_m.LowAccuracyStreak = int(value.Int64)
			}
		case user.FieldRecoveryCooldown:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recovery_cooldown", values[i])
			} else if value.Valid {
				_m.RecoveryCooldown = int(value.Int64)
			}
		case user.FieldChapterPracticeStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_practice_stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChapterPracticeStats); err != nil {
					return fmt.Errorf("unmarshal field chapter_practice_stats: %w", err)
				}
			}
		case user.FieldSubscription:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subscription", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subscription); err != nil {
					return fmt.Errorf("unmarshal field subscription: %w", err)
				}
			}
		case user.FieldTrial:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field trial", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Trial); err != nil {
					return fmt.Errorf("unmarshal field trial: %w", err)
				}
			}
		case user.FieldTierOverride:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier_override", values[i])
			} else if value.Valid {
				_m.TierOverride = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("overall_theta=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallTheta))
	builder.WriteString(", ")
	builder.WriteString("overall_percentile=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallPercentile))
	builder.WriteString(", ")
	builder.WriteString("theta_by_subject=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaBySubject))
	builder.WriteString(", ")
	builder.WriteString("theta_by_chapter=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThetaByChapter))
	builder.WriteString(", ")
	builder.WriteString("subtopic_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicAccuracy))
	builder.WriteString(", ")
	builder.WriteString("subject_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectAccuracy))
	builder.WriteString(", ")
	builder.WriteString("total_questions_attempted=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestionsAttempted))
	builder.WriteString(", ")
	builder.WriteString("total_questions_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestionsCorrect))
	builder.WriteString(", ")
	builder.WriteString("total_time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("completed_quiz_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedQuizCount))
	builder.WriteString(", ")
	builder.WriteString("learning_phase=")
	builder.WriteString(_m.LearningPhase)
	builder.WriteString(", ")
	builder.WriteString("current_day=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentDay))
	builder.WriteString(", ")
	builder.WriteString("assessment_status=")
	builder.WriteString(_m.AssessmentStatus)
	builder.WriteString(", ")
	builder.WriteString("assessment_baseline=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssessmentBaseline))
	builder.WriteString(", ")
	if v := _m.AssessmentCompletedAt; v != nil {
		builder.WriteString("assessment_completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("low_accuracy_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LowAccuracyStreak))
	builder.WriteString(", ")
	builder.WriteString("recovery_cooldown=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveryCooldown))
	builder.WriteString(", ")
	builder.WriteString("chapter_practice_stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterPracticeStats))
	builder.WriteString(", ")
	builder.WriteString("subscription=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subscription))
	builder.WriteString(", ")
	builder.WriteString("trial=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trial))
	builder.WriteString(", ")
	builder.WriteString("tier_override=")
	builder.WriteString(_m.TierOverride)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
