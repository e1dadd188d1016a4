// Code generated by ent, DO NOT EDIT.

package quotacounter

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quotacounter type in the database.
	Label = "quota_counter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFeature holds the string denoting the feature field in the database.
	FieldFeature = "feature"
	// FieldPeriodKey holds the string denoting the period_key field in the database.
	FieldPeriodKey = "period_key"
	// FieldUsed holds the string denoting the used field in the database.
	FieldUsed = "used"
	// FieldLimit holds the string denoting the limit field in the database.
	FieldLimit = "limit"
	// FieldResetsAt holds the string denoting the resets_at field in the database.
	FieldResetsAt = "resets_at"
	// Table holds the table name of the quotacounter in the database.
	Table = "quota_counters"
)

// Columns holds all SQL columns for quotacounter fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldFeature,
	FieldPeriodKey,
	FieldUsed,
	FieldLimit,
	FieldResetsAt,
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
	// DefaultUsed holds the default value on creation for the "used" field.
	DefaultUsed int
)

// OrderOption defines the ordering options for the QuotaCounter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFeature orders the results by the feature field.
func ByFeature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeature, opts...).ToFunc()
}

// ByPeriodKey orders the results by the period_key field.
func ByPeriodKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodKey, opts...).ToFunc()
}

// ByUsed orders the results by the used field.
func ByUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsed, opts...).ToFunc()
}

// ByLimit orders the results by the limit field.
func ByLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLimit, opts...).ToFunc()
}

// ByResetsAt orders the results by the resets_at field.
func ByResetsAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResetsAt, opts...).ToFunc()
}
