// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldChapter holds the string denoting the chapter field in the database.
	FieldChapter = "chapter"
	// FieldChapterKey holds the string denoting the chapter_key field in the database.
	FieldChapterKey = "chapter_key"
	// FieldSubTopics holds the string denoting the sub_topics field in the database.
	FieldSubTopics = "sub_topics"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldAnswerValue holds the string denoting the answer_value field in the database.
	FieldAnswerValue = "answer_value"
	// FieldAnswerRange holds the string denoting the answer_range field in the database.
	FieldAnswerRange = "answer_range"
	// FieldIrtA holds the string denoting the irt_a field in the database.
	FieldIrtA = "irt_a"
	// FieldIrtB holds the string denoting the irt_b field in the database.
	FieldIrtB = "irt_b"
	// FieldIrtC holds the string denoting the irt_c field in the database.
	FieldIrtC = "irt_c"
	// FieldIsAssessment holds the string denoting the is_assessment field in the database.
	FieldIsAssessment = "is_assessment"
	// FieldAttemptsCount holds the string denoting the attempts_count field in the database.
	FieldAttemptsCount = "attempts_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldSubject,
	FieldChapter,
	FieldChapterKey,
	FieldSubTopics,
	FieldQuestionType,
	FieldOptions,
	FieldCorrectAnswer,
	FieldAnswerValue,
	FieldAnswerRange,
	FieldIrtA,
	FieldIrtB,
	FieldIrtC,
	FieldIsAssessment,
	FieldAttemptsCount,
	FieldCorrectCount,
	FieldPayload,
	FieldCreatedAt,
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
	// DefaultIsAssessment holds the default value on creation for the "is_assessment" field.
	DefaultIsAssessment bool
	// DefaultAttemptsCount holds the default value on creation for the "attempts_count" field.
	DefaultAttemptsCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByChapter orders the results by the chapter field.
func ByChapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapter, opts...).ToFunc()
}

// ByChapterKey orders the results by the chapter_key field.
func ByChapterKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterKey, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByAnswerValue orders the results by the answer_value field.
func ByAnswerValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerValue, opts...).ToFunc()
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

// ByIsAssessment orders the results by the is_assessment field.
func ByIsAssessment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsAssessment, opts...).ToFunc()
}

// ByAttemptsCount orders the results by the attempts_count field.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptsCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
