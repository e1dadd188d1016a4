// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOverallTheta holds the string denoting the overall_theta field in the database.
	FieldOverallTheta = "overall_theta"
	// FieldOverallPercentile holds the string denoting the overall_percentile field in the database.
	FieldOverallPercentile = "overall_percentile"
	// FieldThetaBySubject holds the string denoting the theta_by_subject field in the database.
	FieldThetaBySubject = "theta_by_subject"
	// FieldThetaByChapter holds the string denoting the theta_by_chapter field in the database.
	FieldThetaByChapter = "theta_by_chapter"
	// FieldSubtopicAccuracy holds the string denoting the subtopic_accuracy field in the database.
	FieldSubtopicAccuracy = "subtopic_accuracy"
	// FieldSubjectAccuracy holds the string denoting the subject_accuracy field in the database.
	FieldSubjectAccuracy = "subject_accuracy"
	// FieldTotalQuestionsAttempted holds the string denoting the total_questions_attempted field in the database.
	FieldTotalQuestionsAttempted = "total_questions_attempted"
	// FieldTotalQuestionsCorrect holds the string denoting the total_questions_correct field in the database.
	FieldTotalQuestionsCorrect = "total_questions_correct"
	// FieldTotalTimeSpentMinutes holds the string denoting the total_time_spent_minutes field in the database.
	FieldTotalTimeSpentMinutes = "total_time_spent_minutes"
	// FieldCompletedQuizCount holds the string denoting the completed_quiz_count field in the database.
	FieldCompletedQuizCount = "completed_quiz_count"
	// FieldLearningPhase holds the string denoting the learning_phase field in the database.
	FieldLearningPhase = "learning_phase"
	// FieldCurrentDay holds the string denoting the current_day field in the database.
	FieldCurrentDay = "current_day"
	// FieldAssessmentStatus holds the string denoting the assessment_status field in the database.
	FieldAssessmentStatus = "assessment_status"
	// FieldAssessmentBaseline holds the string denoting the assessment_baseline field in the database.
	FieldAssessmentBaseline = "assessment_baseline"
	// FieldAssessmentCompletedAt holds the string denoting the assessment_completed_at field in the database.
	FieldAssessmentCompletedAt = "assessment_completed_at"
	// FieldLowAccuracyStreak holds the string denoting the low_accuracy_streak field in the database.
	FieldLowAccuracyStreak = "low_accuracy_streak"
	// FieldRecoveryCooldown holds the string denoting the recovery_cooldown field in the database.
	FieldRecoveryCooldown = "recovery_cooldown"
	// FieldChapterPracticeStats holds the string denoting the chapter_practice_stats field in the database.
	FieldChapterPracticeStats = "chapter_practice_stats"
	// FieldSubscription holds the string denoting the subscription field in the database.
	FieldSubscription = "subscription"
	// FieldTrial holds the string denoting the trial field in the database.
	FieldTrial = "trial"
	// FieldTierOverride holds the string denoting the tier_override field in the database.
	FieldTierOverride = "tier_override"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldOverallTheta,
	FieldOverallPercentile,
	FieldThetaBySubject,
	FieldThetaByChapter,
	FieldSubtopicAccuracy,
	FieldSubjectAccuracy,
	FieldTotalQuestionsAttempted,
	FieldTotalQuestionsCorrect,
	FieldTotalTimeSpentMinutes,
	FieldCompletedQuizCount,
	FieldLearningPhase,
	FieldCurrentDay,
	FieldAssessmentStatus,
	FieldAssessmentBaseline,
	FieldAssessmentCompletedAt,
	FieldLowAccuracyStreak,
	FieldRecoveryCooldown,
	FieldChapterPracticeStats,
	FieldSubscription,
	FieldTrial,
	FieldTierOverride,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultOverallTheta holds the default value on creation for the "overall_theta" field.
	DefaultOverallTheta float64
	// DefaultOverallPercentile holds the default value on creation for the "overall_percentile" field.
	DefaultOverallPercentile int
	// DefaultTotalQuestionsAttempted holds the default value on creation for the "total_questions_attempted" field.
	DefaultTotalQuestionsAttempted int
	// DefaultTotalQuestionsCorrect holds the default value on creation for the "total_questions_correct" field.
	DefaultTotalQuestionsCorrect int
	// DefaultTotalTimeSpentMinutes holds the default value on creation for the "total_time_spent_minutes" field.
	DefaultTotalTimeSpentMinutes float64
	// DefaultCompletedQuizCount holds the default value on creation for the "completed_quiz_count" field.
	DefaultCompletedQuizCount int
	// DefaultLearningPhase holds the default value on creation for the "learning_phase" field.
	DefaultLearningPhase string
	// DefaultCurrentDay holds the default value on creation for the "current_day" field.
	DefaultCurrentDay int
	// DefaultAssessmentStatus holds the default value on creation for the "assessment_status" field.
	DefaultAssessmentStatus string
	// DefaultLowAccuracyStreak holds the default value on creation for the "low_accuracy_streak" field.
	DefaultLowAccuracyStreak int
	// DefaultRecoveryCooldown holds the default value on creation for the "recovery_cooldown" field.
	DefaultRecoveryCooldown int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOverallTheta orders the results by the overall_theta field.
func ByOverallTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallTheta, opts...).ToFunc()
}

// ByOverallPercentile orders the results by the overall_percentile field.
func ByOverallPercentile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallPercentile, opts...).ToFunc()
}

// ByTotalQuestionsAttempted orders the results by the total_questions_attempted field.
func ByTotalQuestionsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestionsAttempted, opts...).ToFunc()
}

// ByTotalQuestionsCorrect orders the results by the total_questions_correct field.
func ByTotalQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestionsCorrect, opts...).ToFunc()
}

// ByTotalTimeSpentMinutes orders the results by the total_time_spent_minutes field.
func ByTotalTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSpentMinutes, opts...).ToFunc()
}

// ByCompletedQuizCount orders the results by the completed_quiz_count field.
func ByCompletedQuizCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedQuizCount, opts...).ToFunc()
}

// ByLearningPhase orders the results by the learning_phase field.
func ByLearningPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningPhase, opts...).ToFunc()
}

// ByCurrentDay orders the results by the current_day field.
func ByCurrentDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentDay, opts...).ToFunc()
}

// ByAssessmentStatus orders the results by the assessment_status field.
func ByAssessmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentStatus, opts...).ToFunc()
}

// ByAssessmentCompletedAt orders the results by the assessment_completed_at field.
func ByAssessmentCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessmentCompletedAt, opts...).ToFunc()
}

// ByLowAccuracyStreak orders the results by the low_accuracy_streak field.
func ByLowAccuracyStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLowAccuracyStreak, opts...).ToFunc()
}

// ByRecoveryCooldown orders the results by the recovery_cooldown field.
func ByRecoveryCooldown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryCooldown, opts...).ToFunc()
}

// ByTierOverride orders the results by the tier_override field.
func ByTierOverride(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierOverride, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
