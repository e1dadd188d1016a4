// Code generated by ent, DO NOT EDIT.

package response

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQuestionID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldKind, v))
}

// ChapterKey applies equality check predicate on the "chapter_key" field. It's identical to ChapterKeyEQ.
func ChapterKey(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldChapterKey, v))
}

// StudentAnswer applies equality check predicate on the "student_answer" field. It's identical to StudentAnswerEQ.
func StudentAnswer(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStudentAnswer, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCorrectAnswer, v))
}

// IsCorrect applies equality check predicate on the "is_correct" field. It's identical to IsCorrectEQ.
func IsCorrect(v bool) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIsCorrect, v))
}

// TimeTakenSeconds applies equality check predicate on the "time_taken_seconds" field. It's identical to TimeTakenSecondsEQ.
func TimeTakenSeconds(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// IrtA applies equality check predicate on the "irt_a" field. It's identical to IrtAEQ.
func IrtA(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtA, v))
}

// IrtB applies equality check predicate on the "irt_b" field. It's identical to IrtBEQ.
func IrtB(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtB, v))
}

// IrtC applies equality check predicate on the "irt_c" field. It's identical to IrtCEQ.
func IrtC(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtC, v))
}

// ThetaDelta applies equality check predicate on the "theta_delta" field. It's identical to ThetaDeltaEQ.
func ThetaDelta(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldThetaDelta, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnsweredAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldQuestionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldKind, v))
}

// ChapterKeyEQ applies the EQ predicate on the "chapter_key" field.
func ChapterKeyEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldChapterKey, v))
}

// ChapterKeyNEQ applies the NEQ predicate on the "chapter_key" field.
func ChapterKeyNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldChapterKey, v))
}

// ChapterKeyIn applies the In predicate on the "chapter_key" field.
func ChapterKeyIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldChapterKey, vs...))
}

// ChapterKeyNotIn applies the NotIn predicate on the "chapter_key" field.
func ChapterKeyNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldChapterKey, vs...))
}

// ChapterKeyGT applies the GT predicate on the "chapter_key" field.
func ChapterKeyGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldChapterKey, v))
}

// ChapterKeyGTE applies the GTE predicate on the "chapter_key" field.
func ChapterKeyGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldChapterKey, v))
}

// ChapterKeyLT applies the LT predicate on the "chapter_key" field.
func ChapterKeyLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldChapterKey, v))
}

// ChapterKeyLTE applies the LTE predicate on the "chapter_key" field.
func ChapterKeyLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldChapterKey, v))
}

// ChapterKeyContains applies the Contains predicate on the "chapter_key" field.
func ChapterKeyContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldChapterKey, v))
}

// ChapterKeyHasPrefix applies the HasPrefix predicate on the "chapter_key" field.
func ChapterKeyHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldChapterKey, v))
}

// ChapterKeyHasSuffix applies the HasSuffix predicate on the "chapter_key" field.
func ChapterKeyHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldChapterKey, v))
}

// ChapterKeyEqualFold applies the EqualFold predicate on the "chapter_key" field.
func ChapterKeyEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldChapterKey, v))
}

// ChapterKeyContainsFold applies the ContainsFold predicate on the "chapter_key" field.
func ChapterKeyContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldChapterKey, v))
}

// SubTopicsIsNil applies the IsNil predicate on the "sub_topics" field.
func SubTopicsIsNil() predicate.Response {
	return predicate.Response(sql.FieldIsNull(FieldSubTopics))
}

// SubTopicsNotNil applies the NotNil predicate on the "sub_topics" field.
func SubTopicsNotNil() predicate.Response {
	return predicate.Response(sql.FieldNotNull(FieldSubTopics))
}

// StudentAnswerEQ applies the EQ predicate on the "student_answer" field.
func StudentAnswerEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldStudentAnswer, v))
}

// StudentAnswerNEQ applies the NEQ predicate on the "student_answer" field.
func StudentAnswerNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldStudentAnswer, v))
}

// StudentAnswerIn applies the In predicate on the "student_answer" field.
func StudentAnswerIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldStudentAnswer, vs...))
}

// StudentAnswerNotIn applies the NotIn predicate on the "student_answer" field.
func StudentAnswerNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldStudentAnswer, vs...))
}

// StudentAnswerGT applies the GT predicate on the "student_answer" field.
func StudentAnswerGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldStudentAnswer, v))
}

// StudentAnswerGTE applies the GTE predicate on the "student_answer" field.
func StudentAnswerGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldStudentAnswer, v))
}

// StudentAnswerLT applies the LT predicate on the "student_answer" field.
func StudentAnswerLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldStudentAnswer, v))
}

// StudentAnswerLTE applies the LTE predicate on the "student_answer" field.
func StudentAnswerLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldStudentAnswer, v))
}

// StudentAnswerContains applies the Contains predicate on the "student_answer" field.
func StudentAnswerContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldStudentAnswer, v))
}

// StudentAnswerHasPrefix applies the HasPrefix predicate on the "student_answer" field.
func StudentAnswerHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldStudentAnswer, v))
}

// StudentAnswerHasSuffix applies the HasSuffix predicate on the "student_answer" field.
func StudentAnswerHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldStudentAnswer, v))
}

// StudentAnswerEqualFold applies the EqualFold predicate on the "student_answer" field.
func StudentAnswerEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldStudentAnswer, v))
}

// StudentAnswerContainsFold applies the ContainsFold predicate on the "student_answer" field.
func StudentAnswerContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldStudentAnswer, v))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Response {
	return predicate.Response(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Response {
	return predicate.Response(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Response {
	return predicate.Response(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Response {
	return predicate.Response(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// IsCorrectEQ applies the EQ predicate on the "is_correct" field.
func IsCorrectEQ(v bool) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIsCorrect, v))
}

// IsCorrectNEQ applies the NEQ predicate on the "is_correct" field.
func IsCorrectNEQ(v bool) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldIsCorrect, v))
}

// TimeTakenSecondsEQ applies the EQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsNEQ applies the NEQ predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNEQ(v int) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsIn applies the In predicate on the "time_taken_seconds" field.
func TimeTakenSecondsIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsNotIn applies the NotIn predicate on the "time_taken_seconds" field.
func TimeTakenSecondsNotIn(vs ...int) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldTimeTakenSeconds, vs...))
}

// TimeTakenSecondsGT applies the GT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGT(v int) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsGTE applies the GTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsGTE(v int) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLT applies the LT predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLT(v int) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldTimeTakenSeconds, v))
}

// TimeTakenSecondsLTE applies the LTE predicate on the "time_taken_seconds" field.
func TimeTakenSecondsLTE(v int) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldTimeTakenSeconds, v))
}

// IrtAEQ applies the EQ predicate on the "irt_a" field.
func IrtAEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtA, v))
}

// IrtANEQ applies the NEQ predicate on the "irt_a" field.
func IrtANEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldIrtA, v))
}

// IrtAIn applies the In predicate on the "irt_a" field.
func IrtAIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldIrtA, vs...))
}

// IrtANotIn applies the NotIn predicate on the "irt_a" field.
func IrtANotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldIrtA, vs...))
}

// IrtAGT applies the GT predicate on the "irt_a" field.
func IrtAGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldIrtA, v))
}

// IrtAGTE applies the GTE predicate on the "irt_a" field.
func IrtAGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldIrtA, v))
}

// IrtALT applies the LT predicate on the "irt_a" field.
func IrtALT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldIrtA, v))
}

// IrtALTE applies the LTE predicate on the "irt_a" field.
func IrtALTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldIrtA, v))
}

// IrtBEQ applies the EQ predicate on the "irt_b" field.
func IrtBEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtB, v))
}

// IrtBNEQ applies the NEQ predicate on the "irt_b" field.
func IrtBNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldIrtB, v))
}

// IrtBIn applies the In predicate on the "irt_b" field.
func IrtBIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldIrtB, vs...))
}

// IrtBNotIn applies the NotIn predicate on the "irt_b" field.
func IrtBNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldIrtB, vs...))
}

// IrtBGT applies the GT predicate on the "irt_b" field.
func IrtBGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldIrtB, v))
}

// IrtBGTE applies the GTE predicate on the "irt_b" field.
func IrtBGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldIrtB, v))
}

// IrtBLT applies the LT predicate on the "irt_b" field.
func IrtBLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldIrtB, v))
}

// IrtBLTE applies the LTE predicate on the "irt_b" field.
func IrtBLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldIrtB, v))
}

// IrtCEQ applies the EQ predicate on the "irt_c" field.
func IrtCEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldIrtC, v))
}

// IrtCNEQ applies the NEQ predicate on the "irt_c" field.
func IrtCNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldIrtC, v))
}

// IrtCIn applies the In predicate on the "irt_c" field.
func IrtCIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldIrtC, vs...))
}

// IrtCNotIn applies the NotIn predicate on the "irt_c" field.
func IrtCNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldIrtC, vs...))
}

// IrtCGT applies the GT predicate on the "irt_c" field.
func IrtCGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldIrtC, v))
}

// IrtCGTE applies the GTE predicate on the "irt_c" field.
func IrtCGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldIrtC, v))
}

// IrtCLT applies the LT predicate on the "irt_c" field.
func IrtCLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldIrtC, v))
}

// IrtCLTE applies the LTE predicate on the "irt_c" field.
func IrtCLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldIrtC, v))
}

// ThetaDeltaEQ applies the EQ predicate on the "theta_delta" field.
func ThetaDeltaEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldThetaDelta, v))
}

// ThetaDeltaNEQ applies the NEQ predicate on the "theta_delta" field.
func ThetaDeltaNEQ(v float64) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldThetaDelta, v))
}

// ThetaDeltaIn applies the In predicate on the "theta_delta" field.
func ThetaDeltaIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldThetaDelta, vs...))
}

// ThetaDeltaNotIn applies the NotIn predicate on the "theta_delta" field.
func ThetaDeltaNotIn(vs ...float64) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldThetaDelta, vs...))
}

// ThetaDeltaGT applies the GT predicate on the "theta_delta" field.
func ThetaDeltaGT(v float64) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldThetaDelta, v))
}

// ThetaDeltaGTE applies the GTE predicate on the "theta_delta" field.
func ThetaDeltaGTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldThetaDelta, v))
}

// ThetaDeltaLT applies the LT predicate on the "theta_delta" field.
func ThetaDeltaLT(v float64) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldThetaDelta, v))
}

// ThetaDeltaLTE applies the LTE predicate on the "theta_delta" field.
func ThetaDeltaLTE(v float64) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldThetaDelta, v))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.Response {
	return predicate.Response(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.Response {
	return predicate.Response(sql.FieldLTE(FieldAnsweredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Response) predicate.Response {
	return predicate.Response(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Response) predicate.Response {
	return predicate.Response(sql.NotPredicates(p))
}
