// Code generated by ent, DO NOT EDIT.

package reviewinterval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldQuestionID, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldIntervalDays, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldNextReview, v))
}

// TimesReviewed applies equality check predicate on the "times_reviewed" field. It's identical to TimesReviewedEQ.
func TimesReviewed(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldTimesReviewed, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldContainsFold(FieldQuestionID, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldIntervalDays, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldNextReview, v))
}

// TimesReviewedEQ applies the EQ predicate on the "times_reviewed" field.
func TimesReviewedEQ(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldTimesReviewed, v))
}

// TimesReviewedNEQ applies the NEQ predicate on the "times_reviewed" field.
func TimesReviewedNEQ(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldTimesReviewed, v))
}

// TimesReviewedIn applies the In predicate on the "times_reviewed" field.
func TimesReviewedIn(vs ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldTimesReviewed, vs...))
}

// TimesReviewedNotIn applies the NotIn predicate on the "times_reviewed" field.
func TimesReviewedNotIn(vs ...int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldTimesReviewed, vs...))
}

// TimesReviewedGT applies the GT predicate on the "times_reviewed" field.
func TimesReviewedGT(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldTimesReviewed, v))
}

// TimesReviewedGTE applies the GTE predicate on the "times_reviewed" field.
func TimesReviewedGTE(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldTimesReviewed, v))
}

// TimesReviewedLT applies the LT predicate on the "times_reviewed" field.
func TimesReviewedLT(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldTimesReviewed, v))
}

// TimesReviewedLTE applies the LTE predicate on the "times_reviewed" field.
func TimesReviewedLTE(v int) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldTimesReviewed, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewInterval) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewInterval) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewInterval) predicate.ReviewInterval {
	return predicate.ReviewInterval(sql.NotPredicates(p))
}
