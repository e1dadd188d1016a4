// Code generated by ent, DO NOT EDIT.

package sessionquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldUserID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldPosition, v))
}

// ChapterKey applies equality check predicate on the "chapter_key" field. It's identical to ChapterKeyEQ.
func ChapterKey(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldChapterKey, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldRationale, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnswered, v))
}

// AnsweringAt applies equality check predicate on the "answering_at" field. It's identical to AnsweringAtEQ.
func AnsweringAt(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnsweringAt, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldStudentAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldIsCorrect, v))
}

// TimeTakenSeconds applies equality check predicate on the "time_taken_seconds" field. It's identical to TimeTakenSecondsEQ.
func TimeTakenSeconds(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// ThetaDelta applies equality check predicate on the "theta_delta" field. It's identical to ThetaDeltaEQ.
func ThetaDelta(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldThetaDelta, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnsweredAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldUserID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldQuestionID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldPosition, v))
}

// ChapterKeyEQ applies the EQ predicate on the "chapter_key" field.
func ChapterKeyEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldChapterKey, v))
}

// ChapterKeyNEQ applies the NEQ predicate on the "chapter_key" field.
func ChapterKeyNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldChapterKey, v))
}

// ChapterKeyIn applies the In predicate on the "chapter_key" field.
func ChapterKeyIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldChapterKey, vs...))
}

// ChapterKeyNotIn applies the NotIn predicate on the "chapter_key" field.
func ChapterKeyNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldChapterKey, vs...))
}

// ChapterKeyGT applies the GT predicate on the "chapter_key" field.
func ChapterKeyGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldChapterKey, v))
}

// ChapterKeyGTE applies the GTE predicate on the "chapter_key" field.
func ChapterKeyGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldChapterKey, v))
}

// ChapterKeyLT applies the LT predicate on the "chapter_key" field.
func ChapterKeyLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldChapterKey, v))
}

// ChapterKeyLTE applies the LTE predicate on the "chapter_key" field.
func ChapterKeyLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldChapterKey, v))
}

// ChapterKeyContains applies the Contains predicate on the "chapter_key" field.
func ChapterKeyContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldChapterKey, v))
}

// ChapterKeyHasPrefix applies the HasPrefix predicate on the "chapter_key" field.
func ChapterKeyHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldChapterKey, v))
}

// ChapterKeyHasSuffix applies the HasSuffix predicate on the "chapter_key" field.
func ChapterKeyHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldChapterKey, v))
}

// ChapterKeyEqualFold applies the EqualFold predicate on the "chapter_key" field.
func ChapterKeyEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldChapterKey, v))
}

// ChapterKeyContainsFold applies the ContainsFold predicate on the "chapter_key" field.
func ChapterKeyContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldChapterKey, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldRationale, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweringAtEQ applies the EQ predicate on the "answering_at" field.
func AnsweringAtEQ(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnsweringAt, v))
}

// AnsweringAtNEQ applies the NEQ predicate on the "answering_at" field.
func AnsweringAtNEQ(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldAnsweringAt, v))
}

// AnsweringAtIn applies the In predicate on the "answering_at" field.
func AnsweringAtIn(vs ...time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldAnsweringAt, vs...))
}

// AnsweringAtNotIn applies the NotIn predicate on the "answering_at" field.
func AnsweringAtNotIn(vs ...time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldAnsweringAt, vs...))
}

// AnsweringAtGT applies the GT predicate on the "answering_at" field.
func AnsweringAtGT(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldAnsweringAt, v))
}

// AnsweringAtGTE applies the GTE predicate on the "answering_at" field.
func AnsweringAtGTE(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldAnsweringAt, v))
}

// AnsweringAtLT applies the LT predicate on the "answering_at" field.
func AnsweringAtLT(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldAnsweringAt, v))
}

// AnsweringAtLTE applies the LTE predicate on the "answering_at" field.
func AnsweringAtLTE(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldAnsweringAt, v))
}

// AnsweringAtIsNil applies the IsNil predicate on the "answering_at" field.
func AnsweringAtIsNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIsNull(FieldAnsweringAt))
}

// AnsweringAtNotNil applies the NotNil predicate on the "answering_at" field.
func AnsweringAtNotNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotNull(FieldAnsweringAt))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerIsNil applies the IsNil predicate on the "student_answer" field.
func StudentAnswerIsNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIsNull(FieldStudentAnswer))
}

// StudentAnswerNotNil applies the NotNil predicate on the "student_answer" field.
func StudentAnswerNotNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotNull(FieldStudentAnswer))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldIsCorrect, v))
}

// TimeTakenSecondsEQ applies the EQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsEQ(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsNEQ applies the NEQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNEQ(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsIn applies the In predicate on the "time_taken_seconds" field.
func TimeTakenSecondsIn(vs ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsNotIn applies the NotIn predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNotIn(vs ...int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsGT applies the GT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGT(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsGTE applies the GTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGTE(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLT applies the LT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLT(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLTE applies the LTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLTE(v int) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldTimeTakenSeconds, v))
}

// ThetaDeltaEQ applies the EQ predicate on the "theta_delta" field.
func ThetaDeltaEQ(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldThetaDelta, v))
}

// ThetaDeltaNEQ applies the NEQ predicate on the "theta_delta" field.
func ThetaDeltaNEQ(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldThetaDelta, v))
}

// ThetaDeltaIn applies the In predicate on the "theta_delta" field.
func ThetaDeltaIn(vs ...float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldThetaDelta, vs...))
}

// ThetaDeltaNotIn applies the NotIn predicate on the "theta_delta" field.
func ThetaDeltaNotIn(vs ...float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldThetaDelta, vs...))
}

// ThetaDeltaGT applies the GT predicate on the "theta_delta" field.
func ThetaDeltaGT(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldThetaDelta, v))
}

// ThetaDeltaGTE applies the GTE predicate on the "theta_delta" field.
func ThetaDeltaGTE(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldThetaDelta, v))
}

// ThetaDeltaLT applies the LT predicate on the "theta_delta" field.
func ThetaDeltaLT(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldThetaDelta, v))
}

// ThetaDeltaLTE applies the LTE predicate on the "theta_delta" field.
func ThetaDeltaLTE(v float64) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldThetaDelta, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldLTE(FieldAnsweredAt, v))
}

// AnsweredAtIsNil applies the IsNil predicate on the "answered_at" field.
func AnsweredAtIsNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldIsNull(FieldAnsweredAt))
}

// AnsweredAtNotNil applies the NotNil predicate on the "answered_at" field.
func AnsweredAtNotNil() predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.FieldNotNull(FieldAnsweredAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionQuestion) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionQuestion) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionQuestion) predicate.SessionQuestion {
	return predicate.SessionQuestion(sql.NotPredicates(p))
}
