// Code generated by ent, DO NOT EDIT.

package sessionquestion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionquestion type in the database.
	Label = "session_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldChapterKey holds the string denoting the chapter_key field in the database.
	FieldChapterKey = "chapter_key"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldAnswered holds the string denoting the answered field in the database.
	FieldAnswered = "answered"
	// FieldAnsweringAt holds the string denoting the answering_at field in the database.
	FieldAnsweringAt = "answering_at"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldTimeTakenSeconds holds the string denoting the time_taken_seconds field in the database.
	FieldTimeTakenSeconds = "time_taken_seconds"
	// FieldThetaDelta holds the string denoting the theta_delta field in the database.
	FieldThetaDelta = "theta_delta"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// Table holds the table name of the sessionquestion in the database.
	Table = "session_questions"
)

// Columns holds all SQL columns for sessionquestion fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldQuestionID,
	FieldPosition,
	FieldChapterKey,
	FieldRationale,
	FieldAnswered,
	FieldAnsweringAt,
	FieldStudentAnswer,
	FieldIsCorrect,
	FieldTimeTakenSeconds,
	FieldThetaDelta,
	FieldAnsweredAt,
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
	// DefaultAnswered holds the default value on creation for the "answered" field.
	DefaultAnswered bool
	// DefaultIsCorrect holds the default value on creation for the "is_correct" field.
	DefaultIsCorrect bool
	// DefaultTimeTakenSeconds holds the default value on creation for the "time_taken_seconds" field.
	DefaultTimeTakenSeconds int
	// DefaultThetaDelta holds the default value on creation for the "theta_delta" field.
	DefaultThetaDelta float64
)

// OrderOption defines the ordering options for the SessionQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByChapterKey orders the results by the chapter_key field.
func ByChapterKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterKey, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByAnswered orders the results by the answered field.
func ByAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswered, opts...).ToFunc()
}

// ByAnsweringAt orders the results by the answering_at field.
func ByAnsweringAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweringAt, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByTimeTakenSeconds orders the results by the time_taken_seconds field.
func ByTimeTakenSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTakenSeconds, opts...).ToFunc()
}

// ByThetaDelta orders the results by the theta_delta field.
func ByThetaDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaDelta, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}
