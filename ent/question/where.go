// Code generated by ent, DO NOT EDIT.

package question

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// Chapter applies equality check predicate on the "chapter" field. It's identical to ChapterEQ.
func Chapter(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapter, v))
}

// ChapterKey applies equality check predicate on the "chapter_key" field. It's identical to ChapterKeyEQ.
func ChapterKey(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapterKey, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// CorrectAnswer applies equality check predicate on the "correct_answer" field. It's identical to CorrectAnswerEQ.
func CorrectAnswer(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// AnswerValue applies equality check predicate on the "answer_value" field. It's identical to AnswerValueEQ.
func AnswerValue(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerValue, v))
}

// IrtA applies equality check predicate on the "irt_a" field. It's identical to IrtAEQ.
func IrtA(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtA, v))
}

// IrtB applies equality check predicate on the "irt_b" field. It's identical to IrtBEQ.
func IrtB(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtB, v))
}

// IrtC applies equality check predicate on the "irt_c" field. It's identical to IrtCEQ.
func IrtC(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtC, v))
}

// IsAssessment applies equality check predicate on the "is_assessment" field. It's identical to IsAssessmentEQ.
func IsAssessment(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsAssessment, v))
}

// AttemptsCount applies equality check predicate on the "attempts_count" field. It's identical to AttemptsCountEQ.
func AttemptsCount(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAttemptsCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSubject, v))
}

// ChapterEQ applies the EQ predicate on the "chapter" field.
func ChapterEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapter, v))
}

// ChapterNEQ applies the NEQ predicate on the "chapter" field.
func ChapterNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldChapter, v))
}

// ChapterIn applies the In predicate on the "chapter" field.
func ChapterIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldChapter, vs...))
}

// ChapterNotIn applies the NotIn predicate on the "chapter" field.
func ChapterNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldChapter, vs...))
}

// ChapterGT applies the GT predicate on the "chapter" field.
func ChapterGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldChapter, v))
}

// ChapterGTE applies the GTE predicate on the "chapter" field.
func ChapterGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldChapter, v))
}

// ChapterLT applies the LT predicate on the "chapter" field.
func ChapterLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldChapter, v))
}

// ChapterLTE applies the LTE predicate on the "chapter" field.
func ChapterLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldChapter, v))
}

// ChapterContains applies the Contains predicate on the "chapter" field.
func ChapterContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldChapter, v))
}

// ChapterHasPrefix applies the HasPrefix predicate on the "chapter" field.
func ChapterHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldChapter, v))
}

// ChapterHasSuffix applies the HasSuffix predicate on the "chapter" field.
func ChapterHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldChapter, v))
}

// ChapterEqualFold applies the EqualFold predicate on the "chapter" field.
func ChapterEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldChapter, v))
}

// ChapterContainsFold applies the ContainsFold predicate on the "chapter" field.
func ChapterContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldChapter, v))
}

// ChapterKeyEQ applies the EQ predicate on the "chapter_key" field.
func ChapterKeyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldChapterKey, v))
}

// ChapterKeyNEQ applies the NEQ predicate on the "chapter_key" field.
func ChapterKeyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldChapterKey, v))
}

// ChapterKeyIn applies the In predicate on the "chapter_key" field.
func ChapterKeyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldChapterKey, vs...))
}

// ChapterKeyNotIn applies the NotIn predicate on the "chapter_key" field.
func ChapterKeyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldChapterKey, vs...))
}

// ChapterKeyGT applies the GT predicate on the "chapter_key" field.
func ChapterKeyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldChapterKey, v))
}

// ChapterKeyGTE applies the GTE predicate on the "chapter_key" field.
func ChapterKeyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldChapterKey, v))
}

// ChapterKeyLT applies the LT predicate on the "chapter_key" field.
func ChapterKeyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldChapterKey, v))
}

// ChapterKeyLTE applies the LTE predicate on the "chapter_key" field.
func ChapterKeyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldChapterKey, v))
}

// ChapterKeyContains applies the Contains predicate on the "chapter_key" field.
func ChapterKeyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldChapterKey, v))
}

// ChapterKeyHasPrefix applies the HasPrefix predicate on the "chapter_key" field.
func ChapterKeyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldChapterKey, v))
}

// ChapterKeyHasSuffix applies the HasSuffix predicate on the "chapter_key" field.
func ChapterKeyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldChapterKey, v))
}

// ChapterKeyEqualFold applies the EqualFold predicate on the "chapter_key" field.
func ChapterKeyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldChapterKey, v))
}

// ChapterKeyContainsFold applies the ContainsFold predicate on the "chapter_key" field.
func ChapterKeyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldChapterKey, v))
}

// SubTopicsIsNil applies the IsNil predicate on the "sub_topics" field.
func SubTopicsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldSubTopics))
}

// SubTopicsNotNil applies the NotNil predicate on the "sub_topics" field.
func SubTopicsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldSubTopics))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionType, v))
}

// OptionsIsNil applies the IsNil predicate on the "options" field.
func OptionsIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldOptions))
}

// OptionsNotNil applies the NotNil predicate on the "options" field.
func OptionsNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldOptions))
}

// CorrectAnswerEQ applies the EQ predicate on the "correct_answer" field.
func CorrectAnswerEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerNEQ applies the NEQ predicate on the "correct_answer" field.
func CorrectAnswerNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectAnswer, v))
}

// CorrectAnswerIn applies the In predicate on the "correct_answer" field.
func CorrectAnswerIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerNotIn applies the NotIn predicate on the "correct_answer" field.
func CorrectAnswerNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectAnswer, vs...))
}

// CorrectAnswerGT applies the GT predicate on the "correct_answer" field.
func CorrectAnswerGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectAnswer, v))
}

// CorrectAnswerGTE applies the GTE predicate on the "correct_answer" field.
func CorrectAnswerGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectAnswer, v))
}

// CorrectAnswerLT applies the LT predicate on the "correct_answer" field.
func CorrectAnswerLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectAnswer, v))
}

// CorrectAnswerLTE applies the LTE predicate on the "correct_answer" field.
func CorrectAnswerLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectAnswer, v))
}

// CorrectAnswerContains applies the Contains predicate on the "correct_answer" field.
func CorrectAnswerContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectAnswer, v))
}

// CorrectAnswerHasPrefix applies the HasPrefix predicate on the "correct_answer" field.
func CorrectAnswerHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectAnswer, v))
}

// CorrectAnswerHasSuffix applies the HasSuffix predicate on the "correct_answer" field.
func CorrectAnswerHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectAnswer, v))
}

// CorrectAnswerEqualFold applies the EqualFold predicate on the "correct_answer" field.
func CorrectAnswerEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectAnswer, v))
}

// CorrectAnswerContainsFold applies the ContainsFold predicate on the "correct_answer" field.
func CorrectAnswerContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectAnswer, v))
}

// AnswerValueEQ applies the EQ predicate on the "answer_value" field.
func AnswerValueEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAnswerValue, v))
}

// AnswerValueNEQ applies the NEQ predicate on the "answer_value" field.
func AnswerValueNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAnswerValue, v))
}

// AnswerValueIn applies the In predicate on the "answer_value" field.
func AnswerValueIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAnswerValue, vs...))
}

// AnswerValueNotIn applies the NotIn predicate on the "answer_value" field.
func AnswerValueNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAnswerValue, vs...))
}

// AnswerValueGT applies the GT predicate on the "answer_value" field.
func AnswerValueGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAnswerValue, v))
}

// AnswerValueGTE applies the GTE predicate on the "answer_value" field.
func AnswerValueGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAnswerValue, v))
}

// AnswerValueLT applies the LT predicate on the "answer_value" field.
func AnswerValueLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAnswerValue, v))
}

// AnswerValueLTE applies the LTE predicate on the "answer_value" field.
func AnswerValueLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAnswerValue, v))
}

// AnswerValueIsNil applies the IsNil predicate on the "answer_value" field.
func AnswerValueIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAnswerValue))
}

// AnswerValueNotNil applies the NotNil predicate on the "answer_value" field.
func AnswerValueNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAnswerValue))
}

// AnswerRangeIsNil applies the IsNil predicate on the "answer_range" field.
func AnswerRangeIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldAnswerRange))
}

// AnswerRangeNotNil applies the NotNil predicate on the "answer_range" field.
func AnswerRangeNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldAnswerRange))
}

// IrtAEQ applies the EQ predicate on the "irt_a" field.
func IrtAEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtA, v))
}

// IrtANEQ applies the NEQ predicate on the "irt_a" field.
func IrtANEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIrtA, v))
}

// IrtAIn applies the In predicate on the "irt_a" field.
func IrtAIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldIrtA, vs...))
}

// IrtANotIn applies the NotIn predicate on the "irt_a" field.
func IrtANotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldIrtA, vs...))
}

// IrtAGT applies the GT predicate on the "irt_a" field.
func IrtAGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldIrtA, v))
}

// IrtAGTE applies the GTE predicate on the "irt_a" field.
func IrtAGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldIrtA, v))
}

// IrtALT applies the LT predicate on the "irt_a" field.
func IrtALT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldIrtA, v))
}

// IrtALTE applies the LTE predicate on the "irt_a" field.
func IrtALTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldIrtA, v))
}

// IrtBEQ applies the EQ predicate on the "irt_b" field.
func IrtBEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtB, v))
}

// IrtBNEQ applies the NEQ predicate on the "irt_b" field.
func IrtBNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIrtB, v))
}

// IrtBIn applies the In predicate on the "irt_b" field.
func IrtBIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldIrtB, vs...))
}

// IrtBNotIn applies the NotIn predicate on the "irt_b" field.
func IrtBNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldIrtB, vs...))
}

// IrtBGT applies the GT predicate on the "irt_b" field.
func IrtBGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldIrtB, v))
}

// IrtBGTE applies the GTE predicate on the "irt_b" field.
func IrtBGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldIrtB, v))
}

// IrtBLT applies the LT predicate on the "irt_b" field.
func IrtBLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldIrtB, v))
}

// IrtBLTE applies the LTE predicate on the "irt_b" field.
func IrtBLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldIrtB, v))
}

// IrtCEQ applies the EQ predicate on the "irt_c" field.
func IrtCEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIrtC, v))
}

// IrtCNEQ applies the NEQ predicate on the "irt_c" field.
func IrtCNEQ(v float64) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIrtC, v))
}

// IrtCIn applies the In predicate on the "irt_c" field.
func IrtCIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldIrtC, vs...))
}

// IrtCNotIn applies the NotIn predicate on the "irt_c" field.
func IrtCNotIn(vs ...float64) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldIrtC, vs...))
}

// IrtCGT applies the GT predicate on the "irt_c" field.
func IrtCGT(v float64) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldIrtC, v))
}

// IrtCGTE applies the GTE predicate on the "irt_c" field.
func IrtCGTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldIrtC, v))
}

// IrtCLT applies the LT predicate on the "irt_c" field.
func IrtCLT(v float64) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldIrtC, v))
}

// IrtCLTE applies the LTE predicate on the "irt_c" field.
func IrtCLTE(v float64) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldIrtC, v))
}

// IsAssessmentEQ applies the EQ predicate on the "is_assessment" field.
func IsAssessmentEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldIsAssessment, v))
}

// IsAssessmentNEQ applies the NEQ predicate on the "is_assessment" field.
func IsAssessmentNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldIsAssessment, v))
}

// AttemptsCountEQ applies the EQ predicate on the "attempts_count" field.
func AttemptsCountEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldAttemptsCount, v))
}

// AttemptsCountNEQ applies the NEQ predicate on the "attempts_count" field.
func AttemptsCountNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldAttemptsCount, v))
}

// AttemptsCountIn applies the In predicate on the "attempts_count" field.
func AttemptsCountIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldAttemptsCount, vs...))
}

// AttemptsCountNotIn applies the NotIn predicate on the "attempts_count" field.
func AttemptsCountNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldAttemptsCount, vs...))
}

// AttemptsCountGT applies the GT predicate on the "attempts_count" field.
func AttemptsCountGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldAttemptsCount, v))
}

// AttemptsCountGTE applies the GTE predicate on the "attempts_count" field.
func AttemptsCountGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldAttemptsCount, v))
}

// AttemptsCountLT applies the LT predicate on the "attempts_count" field.
func AttemptsCountLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldAttemptsCount, v))
}

// AttemptsCountLTE applies the LTE predicate on the "attempts_count" field.
func AttemptsCountLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldAttemptsCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectCount, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Question {
	return predicate.Question(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Question {
	return predicate.Question(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
