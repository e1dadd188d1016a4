// Code generated by ent, DO NOT EDIT.

package thetasnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldUserID, v))
}

// QuizID applies equality check predicate on the "quiz_id" field. It's identical to QuizIDEQ.
func QuizID(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldQuizID, v))
}

// QuizNumber applies equality check predicate on the "quiz_number" field. It's identical to QuizNumberEQ.
func QuizNumber(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldQuizNumber, v))
}

// CapturedAt applies equality check predicate on the "captured_at" field. It's identical to CapturedAtEQ.
func CapturedAt(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldContainsFold(FieldUserID, v))
}

// QuizIDEQ applies the EQ predicate on the "quiz_id" field.
func QuizIDEQ(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldQuizID, v))
}

// QuizIDNEQ applies the NEQ predicate on the "quiz_id" field.
func QuizIDNEQ(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNEQ(FieldQuizID, v))
}

// QuizIDIn applies the In predicate on the "quiz_id" field.
func QuizIDIn(vs ...string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldIn(FieldQuizID, vs...))
}

// QuizIDNotIn applies the NotIn predicate on the "quiz_id" field.
func QuizIDNotIn(vs ...string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNotIn(FieldQuizID, vs...))
}

// QuizIDGT applies the GT predicate on the "quiz_id" field.
func QuizIDGT(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGT(FieldQuizID, v))
}

// QuizIDGTE applies the GTE predicate on the "quiz_id" field.
func QuizIDGTE(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGTE(FieldQuizID, v))
}

// QuizIDLT applies the LT predicate on the "quiz_id" field.
func QuizIDLT(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLT(FieldQuizID, v))
}

// QuizIDLTE applies the LTE predicate on the "quiz_id" field.
func QuizIDLTE(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLTE(FieldQuizID, v))
}

// QuizIDContains applies the Contains predicate on the "quiz_id" field.
func QuizIDContains(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldContains(FieldQuizID, v))
}

// QuizIDHasPrefix applies the HasPrefix predicate on the "quiz_id" field.
func QuizIDHasPrefix(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldHasPrefix(FieldQuizID, v))
}

// QuizIDHasSuffix applies the HasSuffix predicate on the "quiz_id" field.
func QuizIDHasSuffix(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldHasSuffix(FieldQuizID, v))
}

// QuizIDEqualFold applies the EqualFold predicate on the "quiz_id" field.
func QuizIDEqualFold(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEqualFold(FieldQuizID, v))
}

// QuizIDContainsFold applies the ContainsFold predicate on the "quiz_id" field.
func QuizIDContainsFold(v string) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldContainsFold(FieldQuizID, v))
}

// QuizNumberEQ applies the EQ predicate on the "quiz_number" field.
func QuizNumberEQ(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldQuizNumber, v))
}

// QuizNumberNEQ applies the NEQ predicate on the "quiz_number" field.
func QuizNumberNEQ(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNEQ(FieldQuizNumber, v))
}

// QuizNumberIn applies the In predicate on the "quiz_number" field.
func QuizNumberIn(vs ...int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldIn(FieldQuizNumber, vs...))
}

// QuizNumberNotIn applies the NotIn predicate on the "quiz_number" field.
func QuizNumberNotIn(vs ...int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNotIn(FieldQuizNumber, vs...))
}

// QuizNumberGT applies the GT predicate on the "quiz_number" field.
func QuizNumberGT(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGT(FieldQuizNumber, v))
}

// QuizNumberGTE applies the GTE predicate on the "quiz_number" field.
func QuizNumberGTE(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGTE(FieldQuizNumber, v))
}

// QuizNumberLT applies the LT predicate on the "quiz_number" field.
func QuizNumberLT(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLT(FieldQuizNumber, v))
}

// QuizNumberLTE applies the LTE predicate on the "quiz_number" field.
func QuizNumberLTE(v int) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLTE(FieldQuizNumber, v))
}

// CapturedAtEQ applies the EQ predicate on the "captured_at" field.
func CapturedAtEQ(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldEQ(FieldCapturedAt, v))
}

// CapturedAtNEQ applies the NEQ predicate on the "captured_at" field.
func CapturedAtNEQ(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNEQ(FieldCapturedAt, v))
}

// CapturedAtIn applies the In predicate on the "captured_at" field.
func CapturedAtIn(vs ...time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldIn(FieldCapturedAt, vs...))
}

// CapturedAtNotIn applies the NotIn predicate on the "captured_at" field.
func CapturedAtNotIn(vs ...time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldNotIn(FieldCapturedAt, vs...))
}

// CapturedAtGT applies the GT predicate on the "captured_at" field.
func CapturedAtGT(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGT(FieldCapturedAt, v))
}

// CapturedAtGTE applies the GTE predicate on the "captured_at" field.
func CapturedAtGTE(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldGTE(FieldCapturedAt, v))
}

// CapturedAtLT applies the LT predicate on the "captured_at" field.
func CapturedAtLT(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLT(FieldCapturedAt, v))
}

// CapturedAtLTE applies the LTE predicate on the "captured_at" field.
func CapturedAtLTE(v time.Time) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.FieldLTE(FieldCapturedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThetaSnapshot) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThetaSnapshot) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThetaSnapshot) predicate.ThetaSnapshot {
	return predicate.ThetaSnapshot(sql.NotPredicates(p))
}
