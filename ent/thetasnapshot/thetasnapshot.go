// Code generated by ent, DO NOT EDIT.

package thetasnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the thetasnapshot type in the database.
	Label = "theta_snapshot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldQuizID holds the string denoting the quiz_id field in the database.
	FieldQuizID = "quiz_id"
	// FieldQuizNumber holds the string denoting the quiz_number field in the database.
	FieldQuizNumber = "quiz_number"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCapturedAt holds the string denoting the captured_at field in the database.
	FieldCapturedAt = "captured_at"
	// Table holds the table name of the thetasnapshot in the database.
	Table = "theta_snapshots"
)

// Columns holds all SQL columns for thetasnapshot fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldQuizID,
	FieldQuizNumber,
	FieldPayload,
	FieldCapturedAt,
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
	// DefaultQuizNumber holds the default value on creation for the "quiz_number" field.
	DefaultQuizNumber int
	// DefaultCapturedAt holds the default value on creation for the "captured_at" field.
	DefaultCapturedAt func() time.Time
)

// OrderOption defines the ordering options for the ThetaSnapshot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByQuizID orders the results by the quiz_id field.
func ByQuizID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizID, opts...).ToFunc()
}

// ByQuizNumber orders the results by the quiz_number field.
func ByQuizNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizNumber, opts...).ToFunc()
}

// ByCapturedAt orders the results by the captured_at field.
func ByCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCapturedAt, opts...).ToFunc()
}
