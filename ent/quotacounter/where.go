// Code generated by ent, DO NOT EDIT.

package quotacounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUserID, v))
}

// Feature applies equality check predicate on the "feature" field. It's identical to FeatureEQ.
func Feature(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldFeature, v))
}

// PeriodKey applies equality check predicate on the "period_key" field. It's identical to PeriodKeyEQ.
func PeriodKey(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldPeriodKey, v))
}

// Used applies equality check predicate on the "used" field. It's identical to UsedEQ.
func Used(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUsed, v))
}

// Limit applies equality check predicate on the "limit" field. It's identical to LimitEQ.
func Limit(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldLimit, v))
}

// ResetsAt applies equality check predicate on the "resets_at" field. It's identical to ResetsAtEQ.
func ResetsAt(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResetsAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldUserID, v))
}

// FeatureEQ applies the EQ predicate on the "feature" field.
func FeatureEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldFeature, v))
}

// FeatureNEQ applies the NEQ predicate on the "feature" field.
func FeatureNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldFeature, v))
}

// FeatureIn applies the In predicate on the "feature" field.
func FeatureIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldFeature, vs...))
}

// FeatureNotIn applies the NotIn predicate on the "feature" field.
func FeatureNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldFeature, vs...))
}

// FeatureGT applies the GT predicate on the "feature" field.
func FeatureGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldFeature, v))
}

// FeatureGTE applies the GTE predicate on the "feature" field.
func FeatureGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldFeature, v))
}

// FeatureLT applies the LT predicate on the "feature" field.
func FeatureLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldFeature, v))
}

// FeatureLTE applies the LTE predicate on the "feature" field.
func FeatureLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldFeature, v))
}

// FeatureContains applies the Contains predicate on the "feature" field.
func FeatureContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldFeature, v))
}

// FeatureHasPrefix applies the HasPrefix predicate on the "feature" field.
func FeatureHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldFeature, v))
}

// FeatureHasSuffix applies the HasSuffix predicate on the "feature" field.
func FeatureHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldFeature, v))
}

// FeatureEqualFold applies the EqualFold predicate on the "feature" field.
func FeatureEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldFeature, v))
}

// FeatureContainsFold applies the ContainsFold predicate on the "feature" field.
func FeatureContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldFeature, v))
}

// PeriodKeyEQ applies the EQ predicate on the "period_key" field.
func PeriodKeyEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldPeriodKey, v))
}

// PeriodKeyNEQ applies the NEQ predicate on the "period_key" field.
func PeriodKeyNEQ(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldPeriodKey, v))
}

// PeriodKeyIn applies the In predicate on the "period_key" field.
func PeriodKeyIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldPeriodKey, vs...))
}

// PeriodKeyNotIn applies the NotIn predicate on the "period_key" field.
func PeriodKeyNotIn(vs ...string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldPeriodKey, vs...))
}

// PeriodKeyGT applies the GT predicate on the "period_key" field.
func PeriodKeyGT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldPeriodKey, v))
}

// PeriodKeyGTE applies the GTE predicate on the "period_key" field.
func PeriodKeyGTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldPeriodKey, v))
}

// PeriodKeyLT applies the LT predicate on the "period_key" field.
func PeriodKeyLT(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldPeriodKey, v))
}

// PeriodKeyLTE applies the LTE predicate on the "period_key" field.
func PeriodKeyLTE(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldPeriodKey, v))
}

// PeriodKeyContains applies the Contains predicate on the "period_key" field.
func PeriodKeyContains(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContains(FieldPeriodKey, v))
}

// PeriodKeyHasPrefix applies the HasPrefix predicate on the "period_key" field.
func PeriodKeyHasPrefix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasPrefix(FieldPeriodKey, v))
}

// PeriodKeyHasSuffix applies the HasSuffix predicate on the "period_key" field.
func PeriodKeyHasSuffix(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldHasSuffix(FieldPeriodKey, v))
}

// PeriodKeyEqualFold applies the EqualFold predicate on the "period_key" field.
func PeriodKeyEqualFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEqualFold(FieldPeriodKey, v))
}

// PeriodKeyContainsFold applies the ContainsFold predicate on the "period_key" field.
func PeriodKeyContainsFold(v string) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldContainsFold(FieldPeriodKey, v))
}

// UsedEQ applies the EQ predicate on the "used" field.
func UsedEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldUsed, v))
}

// UsedNEQ applies the NEQ predicate on the "used" field.
func UsedNEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldUsed, v))
}

// UsedIn applies the In predicate on the "used" field.
func UsedIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldUsed, vs...))
}

// UsedNotIn applies the NotIn predicate on the "used" field.
func UsedNotIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldUsed, vs...))
}

// UsedGT applies the GT predicate on the "used" field.
func UsedGT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldUsed, v))
}

// UsedGTE applies the GTE predicate on the "used" field.
func UsedGTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldUsed, v))
}

// UsedLT applies the LT predicate on the "used" field.
func UsedLT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldUsed, v))
}

// UsedLTE applies the LTE predicate on the "used" field.
func UsedLTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldUsed, v))
}

// LimitEQ applies the EQ predicate on the "limit" field.
func LimitEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldLimit, v))
}

// LimitNEQ applies the NEQ predicate on the "limit" field.
func LimitNEQ(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldLimit, v))
}

// LimitIn applies the In predicate on the "limit" field.
func LimitIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldLimit, vs...))
}

// LimitNotIn applies the NotIn predicate on the "limit" field.
func LimitNotIn(vs ...int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldLimit, vs...))
}

// LimitGT applies the GT predicate on the "limit" field.
func LimitGT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldLimit, v))
}

// LimitGTE applies the GTE predicate on the "limit" field.
func LimitGTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldLimit, v))
}

// LimitLT applies the LT predicate on the "limit" field.
func LimitLT(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldLimit, v))
}

// LimitLTE applies the LTE predicate on the "limit" field.
func LimitLTE(v int) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldLimit, v))
}

// ResetsAtEQ applies the EQ predicate on the "resets_at" field.
func ResetsAtEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldEQ(FieldResetsAt, v))
}

// ResetsAtNEQ applies the NEQ predicate on the "resets_at" field.
func ResetsAtNEQ(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNEQ(FieldResetsAt, v))
}

// ResetsAtIn applies the In predicate on the "resets_at" field.
func ResetsAtIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldIn(FieldResetsAt, vs...))
}

// ResetsAtNotIn applies the NotIn predicate on the "resets_at" field.
func ResetsAtNotIn(vs ...time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldNotIn(FieldResetsAt, vs...))
}

// ResetsAtGT applies the GT predicate on the "resets_at" field.
func ResetsAtGT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGT(FieldResetsAt, v))
}

// ResetsAtGTE applies the GTE predicate on the "resets_at" field.
func ResetsAtGTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldGTE(FieldResetsAt, v))
}

// ResetsAtLT applies the LT predicate on the "resets_at" field.
func ResetsAtLT(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLT(FieldResetsAt, v))
}

// ResetsAtLTE applies the LTE predicate on the "resets_at" field.
func ResetsAtLTE(v time.Time) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.FieldLTE(FieldResetsAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuotaCounter) predicate.QuotaCounter {
	return predicate.QuotaCounter(sql.NotPredicates(p))
}
