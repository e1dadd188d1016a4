// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldChapterKey holds the string denoting the chapter_key field in the database.
	FieldChapterKey = "chapter_key"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldLearningPhase holds the string denoting the learning_phase field in the database.
	FieldLearningPhase = "learning_phase"
	// FieldIsRecoveryQuiz holds the string denoting the is_recovery_quiz field in the database.
	FieldIsRecoveryQuiz = "is_recovery_quiz"
	// FieldQuizNumber holds the string denoting the quiz_number field in the database.
	FieldQuizNumber = "quiz_number"
	// FieldQuestionsTotal holds the string denoting the questions_total field in the database.
	FieldQuestionsTotal = "questions_total"
	// FieldQuestionsAnswered holds the string denoting the questions_answered field in the database.
	FieldQuestionsAnswered = "questions_answered"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldTotalTimeSeconds holds the string denoting the total_time_seconds field in the database.
	FieldTotalTimeSeconds = "total_time_seconds"
	// FieldInvalidReason holds the string denoting the invalid_reason field in the database.
	FieldInvalidReason = "invalid_reason"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the session in the database.
	Table = "sessions"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldKind,
	FieldStatus,
	FieldChapterKey,
	FieldTemplateID,
	FieldLearningPhase,
	FieldIsRecoveryQuiz,
	FieldQuizNumber,
	FieldQuestionsTotal,
	FieldQuestionsAnswered,
	FieldCorrectCount,
	FieldTotalTimeSeconds,
	FieldInvalidReason,
	FieldExpiresAt,
	FieldCompletedAt,
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
	// DefaultIsRecoveryQuiz holds the default value on creation for the "is_recovery_quiz" field.
	DefaultIsRecoveryQuiz bool
	// DefaultQuizNumber holds the default value on creation for the "quiz_number" field.
	DefaultQuizNumber int
	// DefaultQuestionsTotal holds the default value on creation for the "questions_total" field.
	DefaultQuestionsTotal int
	// DefaultQuestionsAnswered holds the default value on creation for the "questions_answered" field.
	DefaultQuestionsAnswered int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultTotalTimeSeconds holds the default value on creation for the "total_time_seconds" field.
	DefaultTotalTimeSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByChapterKey orders the results by the chapter_key field.
func ByChapterKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterKey, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByLearningPhase orders the results by the learning_phase field.
func ByLearningPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningPhase, opts...).ToFunc()
}

// ByIsRecoveryQuiz orders the results by the is_recovery_quiz field.
func ByIsRecoveryQuiz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRecoveryQuiz, opts...).ToFunc()
}

// ByQuizNumber orders the results by the quiz_number field.
func ByQuizNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizNumber, opts...).ToFunc()
}

// ByQuestionsTotal orders the results by the questions_total field.
func ByQuestionsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsTotal, opts...).ToFunc()
}

// ByQuestionsAnswered orders the results by the questions_answered field.
func ByQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAnswered, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByTotalTimeSeconds orders the results by the total_time_seconds field.
func ByTotalTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSeconds, opts...).ToFunc()
}

// ByInvalidReason orders the results by the invalid_reason field.
func ByInvalidReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvalidReason, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
