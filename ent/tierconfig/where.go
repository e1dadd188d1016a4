// Code generated by ent, DO NOT EDIT.

package tierconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldContainsFold(FieldID, id))
}

// ChapterPracticeWeekly applies equality check predicate on the "chapter_practice_weekly" field. It's identical to ChapterPracticeWeeklyEQ.
func ChapterPracticeWeekly(v bool) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldChapterPracticeWeekly, v))
}

// ExplorationEndQuiz applies equality check predicate on the "exploration_end_quiz" field. It's identical to ExplorationEndQuizEQ.
func ExplorationEndQuiz(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldExplorationEndQuiz, v))
}

// RecoveryTrigger applies equality check predicate on the "recovery_trigger" field. It's identical to RecoveryTriggerEQ.
func RecoveryTrigger(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldRecoveryTrigger, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.TierConfig {
	return predicate.TierConfig(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNotNull(FieldFeatures))
}

// ChapterPracticeWeeklyEQ applies the EQ predicate on the "chapter_practice_weekly" field.
func ChapterPracticeWeeklyEQ(v bool) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldChapterPracticeWeekly, v))
}

// ChapterPracticeWeeklyNEQ applies the NEQ predicate on the "chapter_practice_weekly" field.
func ChapterPracticeWeeklyNEQ(v bool) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNEQ(FieldChapterPracticeWeekly, v))
}

// ExplorationEndQuizEQ applies the EQ predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizEQ(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldExplorationEndQuiz, v))
}

// ExplorationEndQuizNEQ applies the NEQ predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizNEQ(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNEQ(FieldExplorationEndQuiz, v))
}

// ExplorationEndQuizIn applies the In predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizIn(vs ...int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldIn(FieldExplorationEndQuiz, vs...))
}

// ExplorationEndQuizNotIn applies the NotIn predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizNotIn(vs ...int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNotIn(FieldExplorationEndQuiz, vs...))
}

// ExplorationEndQuizGT applies the GT predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizGT(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGT(FieldExplorationEndQuiz, v))
}

// ExplorationEndQuizGTE applies the GTE predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizGTE(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGTE(FieldExplorationEndQuiz, v))
}

// ExplorationEndQuizLT applies the LT predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizLT(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLT(FieldExplorationEndQuiz, v))
}

// ExplorationEndQuizLTE applies the LTE predicate on the "exploration_end_quiz" field.
func ExplorationEndQuizLTE(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLTE(FieldExplorationEndQuiz, v))
}

// RecoveryTriggerEQ applies the EQ predicate on the "recovery_trigger" field.
func RecoveryTriggerEQ(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldRecoveryTrigger, v))
}

// RecoveryTriggerNEQ applies the NEQ predicate on the "recovery_trigger" field.
func RecoveryTriggerNEQ(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNEQ(FieldRecoveryTrigger, v))
}

// RecoveryTriggerIn applies the In predicate on the "recovery_trigger" field.
func RecoveryTriggerIn(vs ...int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldIn(FieldRecoveryTrigger, vs...))
}

// RecoveryTriggerNotIn applies the NotIn predicate on the "recovery_trigger" field.
func RecoveryTriggerNotIn(vs ...int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNotIn(FieldRecoveryTrigger, vs...))
}

// RecoveryTriggerGT applies the GT predicate on the "recovery_trigger" field.
func RecoveryTriggerGT(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGT(FieldRecoveryTrigger, v))
}

// RecoveryTriggerGTE applies the GTE predicate on the "recovery_trigger" field.
func RecoveryTriggerGTE(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGTE(FieldRecoveryTrigger, v))
}

// RecoveryTriggerLT applies the LT predicate on the "recovery_trigger" field.
func RecoveryTriggerLT(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLT(FieldRecoveryTrigger, v))
}

// RecoveryTriggerLTE applies the LTE predicate on the "recovery_trigger" field.
func RecoveryTriggerLTE(v int) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLTE(FieldRecoveryTrigger, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TierConfig {
	return predicate.TierConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TierConfig) predicate.TierConfig {
	return predicate.TierConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TierConfig) predicate.TierConfig {
	return predicate.TierConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TierConfig) predicate.TierConfig {
	return predicate.TierConfig(sql.NotPredicates(p))
}
