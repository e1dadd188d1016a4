// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// ChapterKey applies equality check predicate on the "chapter_key" field. It's identical to ChapterKeyEQ.
func ChapterKey(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldChapterKey, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTemplateID, v))
}

// LearningPhase applies equality check predicate on the "learning_phase" field. It's identical to LearningPhaseEQ.
func LearningPhase(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLearningPhase, v))
}

// IsRecoveryQuiz applies equality check predicate on the "is_recovery_quiz" field. It's identical to IsRecoveryQuizEQ.
func IsRecoveryQuiz(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsRecoveryQuiz, v))
}

// QuizNumber applies equality check predicate on the "quiz_number" field. It's identical to QuizNumberEQ.
func QuizNumber(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuizNumber, v))
}

// QuestionsTotal applies equality check predicate on the "questions_total" field. It's identical to QuestionsTotalEQ.
func QuestionsTotal(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalTimeSeconds applies equality check predicate on the "total_time_seconds" field. It's identical to TotalTimeSecondsEQ.
func TotalTimeSeconds(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// InvalidReason applies equality check predicate on the "invalid_reason" field. It's identical to InvalidReasonEQ.
func InvalidReason(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInvalidReason, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExpiresAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldUserID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldStatus, v))
}

// ChapterKeyEQ applies the EQ predicate on the "chapter_key" field.
func ChapterKeyEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldChapterKey, v))
}

// ChapterKeyNEQ applies the NEQ predicate on the "chapter_key" field.
func ChapterKeyNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldChapterKey, v))
}

// ChapterKeyIn applies the In predicate on the "chapter_key" field.
func ChapterKeyIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldChapterKey, vs...))
}

// ChapterKeyNotIn applies the NotIn predicate on the "chapter_key" field.
func ChapterKeyNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldChapterKey, vs...))
}

// ChapterKeyGT applies the GT predicate on the "chapter_key" field.
func ChapterKeyGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldChapterKey, v))
}

// ChapterKeyGTE applies the GTE predicate on the "chapter_key" field.
func ChapterKeyGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldChapterKey, v))
}

// ChapterKeyLT applies the LT predicate on the "chapter_key" field.
func ChapterKeyLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldChapterKey, v))
}

// ChapterKeyLTE applies the LTE predicate on the "chapter_key" field.
func ChapterKeyLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldChapterKey, v))
}

// ChapterKeyContains applies the Contains predicate on the "chapter_key" field.
func ChapterKeyContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldChapterKey, v))
}

// ChapterKeyHasPrefix applies the HasPrefix predicate on the "chapter_key" field.
func ChapterKeyHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldChapterKey, v))
}

// ChapterKeyHasSuffix applies the HasSuffix predicate on the "chapter_key" field.
func ChapterKeyHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldChapterKey, v))
}

// ChapterKeyIsNil applies the IsNil predicate on the "chapter_key" field.
func ChapterKeyIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldChapterKey))
}

// ChapterKeyNotNil applies the NotNil predicate on the "chapter_key" field.
func ChapterKeyNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldChapterKey))
}

// ChapterKeyEqualFold applies the EqualFold predicate on the "chapter_key" field.
func ChapterKeyEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldChapterKey, v))
}

// ChapterKeyContainsFold applies the ContainsFold predicate on the "chapter_key" field.
func ChapterKeyContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldChapterKey, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldTemplateID))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTemplateID, v))
}

// LearningPhaseEQ applies the EQ predicate on the "learning_phase" field.
func LearningPhaseEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLearningPhase, v))
}

// LearningPhaseNEQ applies the NEQ predicate on the "learning_phase" field.
func LearningPhaseNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLearningPhase, v))
}

// LearningPhaseIn applies the In predicate on the "learning_phase" field.
func LearningPhaseIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLearningPhase, vs...))
}

// LearningPhaseNotIn applies the NotIn predicate on the "learning_phase" field.
func LearningPhaseNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLearningPhase, vs...))
}

// LearningPhaseGT applies the GT predicate on the "learning_phase" field.
func LearningPhaseGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLearningPhase, v))
}

// LearningPhaseGTE applies the GTE predicate on the "learning_phase" field.
func LearningPhaseGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLearningPhase, v))
}

// LearningPhaseLT applies the LT predicate on the "learning_phase" field.
func LearningPhaseLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLearningPhase, v))
}

// LearningPhaseLTE applies the LTE predicate on the "learning_phase" field.
func LearningPhaseLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLearningPhase, v))
}

// LearningPhaseContains applies the Contains predicate on the "learning_phase" field.
func LearningPhaseContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldLearningPhase, v))
}

// LearningPhaseHasPrefix applies the HasPrefix predicate on the "learning_phase" field.
func LearningPhaseHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldLearningPhase, v))
}

// LearningPhaseHasSuffix applies the HasSuffix predicate on the "learning_phase" field.
func LearningPhaseHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldLearningPhase, v))
}

// LearningPhaseIsNil applies the IsNil predicate on the "learning_phase" field.
func LearningPhaseIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLearningPhase))
}

// LearningPhaseNotNil applies the NotNil predicate on the "learning_phase" field.
func LearningPhaseNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLearningPhase))
}

// LearningPhaseEqualFold applies the EqualFold predicate on the "learning_phase" field.
func LearningPhaseEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldLearningPhase, v))
}

// LearningPhaseContainsFold applies the ContainsFold predicate on the "learning_phase" field.
func LearningPhaseContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldLearningPhase, v))
}

// IsRecoveryQuizEQ applies the EQ predicate on the "is_recovery_quiz" field.
func IsRecoveryQuizEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldIsRecoveryQuiz, v))
}

// IsRecoveryQuizNEQ applies the NEQ predicate on the "is_recovery_quiz" field.
func IsRecoveryQuizNEQ(v bool) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldIsRecoveryQuiz, v))
}

// QuizNumberEQ applies the EQ predicate on the "quiz_number" field.
func QuizNumberEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuizNumber, v))
}

// QuizNumberNEQ applies the NEQ predicate on the "quiz_number" field.
func QuizNumberNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldQuizNumber, v))
}

// QuizNumberIn applies the In predicate on the "quiz_number" field.
func QuizNumberIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldQuizNumber, vs...))
}

// QuizNumberNotIn applies the NotIn predicate on the "quiz_number" field.
func QuizNumberNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldQuizNumber, vs...))
}

// QuizNumberGT applies the GT predicate on the "quiz_number" field.
func QuizNumberGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldQuizNumber, v))
}

// QuizNumberGTE applies the GTE predicate on the "quiz_number" field.
func QuizNumberGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldQuizNumber, v))
}

// QuizNumberLT applies the LT predicate on the "quiz_number" field.
func QuizNumberLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldQuizNumber, v))
}

// QuizNumberLTE applies the LTE predicate on the "quiz_number" field.
func QuizNumberLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldQuizNumber, v))
}

// QuestionsTotalEQ applies the EQ predicate on the "questions_total" field.
func QuestionsTotalEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalNEQ applies the NEQ predicate on the "questions_total" field.
func QuestionsTotalNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalIn applies the In predicate on the "questions_total" field.
func QuestionsTotalIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalNotIn applies the NotIn predicate on the "questions_total" field.
func QuestionsTotalNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalGT applies the GT predicate on the "questions_total" field.
func QuestionsTotalGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldQuestionsTotal, v))
}

// QuestionsTotalGTE applies the GTE predicate on the "questions_total" field.
func QuestionsTotalGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldQuestionsTotal, v))
}

// QuestionsTotalLT applies the LT predicate on the "questions_total" field.
func QuestionsTotalLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldQuestionsTotal, v))
}

// QuestionsTotalLTE applies the LTE predicate on the "questions_total" field.
func QuestionsTotalLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldQuestionsTotal, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalTimeSecondsEQ applies the EQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsNEQ applies the NEQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsIn applies the In predicate on the "total_time_seconds" field.
func TotalTimeSecondsIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsNotIn applies the NotIn predicate on the "total_time_seconds" field.
func TotalTimeSecondsNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsGT applies the GT predicate on the "total_time_seconds" field.
func TotalTimeSecondsGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsGTE applies the GTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLT applies the LT predicate on the "total_time_seconds" field.
func TotalTimeSecondsLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLTE applies the LTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTotalTimeSeconds, v))
}

// InvalidReasonEQ applies the EQ predicate on the "invalid_reason" field.
func InvalidReasonEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldInvalidReason, v))
}

// InvalidReasonNEQ applies the NEQ predicate on the "invalid_reason" field.
func InvalidReasonNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldInvalidReason, v))
}

// InvalidReasonIn applies the In predicate on the "invalid_reason" field.
func InvalidReasonIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldInvalidReason, vs...))
}

// InvalidReasonNotIn applies the NotIn predicate on the "invalid_reason" field.
func InvalidReasonNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldInvalidReason, vs...))
}

// InvalidReasonGT applies the GT predicate on the "invalid_reason" field.
func InvalidReasonGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldInvalidReason, v))
}

// InvalidReasonGTE applies the GTE predicate on the "invalid_reason" field.
func InvalidReasonGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldInvalidReason, v))
}

// InvalidReasonLT applies the LT predicate on the "invalid_reason" field.
func InvalidReasonLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldInvalidReason, v))
}

// InvalidReasonLTE applies the LTE predicate on the "invalid_reason" field.
func InvalidReasonLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldInvalidReason, v))
}

// InvalidReasonContains applies the Contains predicate on the "invalid_reason" field.
func InvalidReasonContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldInvalidReason, v))
}

// InvalidReasonHasPrefix applies the HasPrefix predicate on the "invalid_reason" field.
func InvalidReasonHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldInvalidReason, v))
}

// InvalidReasonHasSuffix applies the HasSuffix predicate on the "invalid_reason" field.
func InvalidReasonHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldInvalidReason, v))
}

// InvalidReasonIsNil applies the IsNil predicate on the "invalid_reason" field.
func InvalidReasonIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldInvalidReason))
}

// InvalidReasonNotNil applies the NotNil predicate on the "invalid_reason" field.
func InvalidReasonNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldInvalidReason))
}

// InvalidReasonEqualFold applies the EqualFold predicate on the "invalid_reason" field.
func InvalidReasonEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldInvalidReason, v))
}

// InvalidReasonContainsFold applies the ContainsFold predicate on the "invalid_reason" field.
func InvalidReasonContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldInvalidReason, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExpiresAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
