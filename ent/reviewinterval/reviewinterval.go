// Code generated by ent, DO NOT EDIT.

package reviewinterval

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewinterval type in the database.
	Label = "review_interval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldTimesReviewed holds the string denoting the times_reviewed field in the database.
	FieldTimesReviewed = "times_reviewed"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the reviewinterval in the database.
	Table = "review_intervals"
)

// Columns holds all SQL columns for reviewinterval fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuestionID,
	FieldIntervalDays,
	FieldNextReview,
	FieldTimesReviewed,
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
	// DefaultTimesReviewed holds the default value on creation for the "times_reviewed" field.
	DefaultTimesReviewed int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewInterval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByTimesReviewed orders the results by the times_reviewed field.
func ByTimesReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimesReviewed, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
