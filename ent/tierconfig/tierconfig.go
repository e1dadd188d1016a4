// Code generated by ent, DO NOT EDIT.

package tierconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tierconfig type in the database.
	Label = "tier_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLimits holds the string denoting the limits field in the database.
	FieldLimits = "limits"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldChapterPracticeWeekly holds the string denoting the chapter_practice_weekly field in the database.
	FieldChapterPracticeWeekly = "chapter_practice_weekly"
	// FieldExplorationEndQuiz holds the string denoting the exploration_end_quiz field in the database.
	FieldExplorationEndQuiz = "exploration_end_quiz"
	// FieldRecoveryTrigger holds the string denoting the recovery_trigger field in the database.
	FieldRecoveryTrigger = "recovery_trigger"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tierconfig in the database.
	Table = "tier_configs"
)

// Columns holds all SQL columns for tierconfig fields.
var Columns = []string{
	FieldID,
	FieldLimits,
	FieldFeatures,
	FieldChapterPracticeWeekly,
	FieldExplorationEndQuiz,
	FieldRecoveryTrigger,
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
	// DefaultChapterPracticeWeekly holds the default value on creation for the "chapter_practice_weekly" field.
	DefaultChapterPracticeWeekly bool
	// DefaultExplorationEndQuiz holds the default value on creation for the "exploration_end_quiz" field.
	DefaultExplorationEndQuiz int
	// DefaultRecoveryTrigger holds the default value on creation for the "recovery_trigger" field.
	DefaultRecoveryTrigger int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the TierConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChapterPracticeWeekly orders the results by the chapter_practice_weekly field.
func ByChapterPracticeWeekly(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterPracticeWeekly, opts...).ToFunc()
}

// ByExplorationEndQuiz orders the results by the exploration_end_quiz field.
func ByExplorationEndQuiz(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplorationEndQuiz, opts...).ToFunc()
}

// ByRecoveryTrigger orders the results by the recovery_trigger field.
func ByRecoveryTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryTrigger, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
