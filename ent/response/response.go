// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the response type in the database.
	Label = "response"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldChapterKey holds the string denoting the chapter_key field in the database.
	FieldChapterKey = "chapter_key"
	// FieldSubTopics holds the string denoting the sub_topics field in the database.
	FieldSubTopics = "sub_topics"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldIsCorrect holds the string denoting the is_correct field in the database.
	FieldIsCorrect = "is_correct"
	// FieldTimeTakenSeconds holds the string denoting the time_taken_seconds field in the database.
	FieldTimeTakenSeconds = "time_taken_seconds"
	// FieldIrtA holds the string denoting the irt_a field in the database.
	FieldIrtA = "irt_a"
	// FieldIrtB holds the string denoting the irt_b field in the database.
	FieldIrtB = "irt_b"
	// FieldIrtC holds the string denoting the irt_c field in the database.
	FieldIrtC = "irt_c"
	// FieldThetaDelta holds the string denoting the theta_delta field in the database.
	FieldThetaDelta = "theta_delta"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// Table holds the table name of the response in the database.
	Table = "responses"
)

// Columns holds all SQL columns for response fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionID,
	FieldQuestionID,
	FieldKind,
	FieldChapterKey,
	FieldSubTopics,
	FieldStudentAnswer,
	FieldCorrectAnswer,
	FieldIsCorrect,
	FieldTimeTakenSeconds,
	FieldIrtA,
	FieldIrtB,
	FieldIrtC,
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
	// DefaultAnsweredAt holds the default value on creation for the "answered_at" field.
	DefaultAnsweredAt func() time.Time
)

// OrderOption defines the ordering options for the Response queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByChapterKey orders the results by the chapter_key field.
func ByChapterKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterKey, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByIsCorrect orders the results by the is_correct field.
func ByIsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCorrect, opts...).ToFunc()
}

// ByTimeTakenSeconds orders the results by the time_taken_seconds field.
func ByTimeTakenSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTakenSeconds, opts...).ToFunc()
}

// ByIrtA orders the results by the irt_a field.
func ByIrtA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrtA, opts...).ToFunc()
}

// ByIrtB orders the results by the irt_b field.
func ByIrtB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrtB, opts...).ToFunc()
}

// ByIrtC orders the results by the irt_c field.
func ByIrtC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrtC, opts...).ToFunc()
}

// ByThetaDelta orders the results by the theta_delta field.
func ByThetaDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThetaDelta, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}
