// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jeevibe/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// OverallTheta applies equality check predicate on the "overall_theta" field. It's identical to OverallThetaEQ.
func OverallTheta(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOverallTheta, v))
}

// OverallPercentile applies equality check predicate on the "overall_percentile" field. It's identical to OverallPercentileEQ.
func OverallPercentile(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOverallPercentile, v))
}

// TotalQuestionsAttempted applies equality check predicate on the "total_questions_attempted" field. It's identical to TotalQuestionsAttemptedEQ.
func TotalQuestionsAttempted(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsCorrect applies equality check predicate on the "total_questions_correct" field. It's identical to TotalQuestionsCorrectEQ.
func TotalQuestionsCorrect(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalQuestionsCorrect, v))
}

// TotalTimeSpentMinutes applies equality check predicate on the "total_time_spent_minutes" field. It's identical to TotalTimeSpentMinutesEQ.
func TotalTimeSpentMinutes(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalTimeSpentMinutes, v))
}

// CompletedQuizCount applies equality check predicate on the "completed_quiz_count" field. It's identical to CompletedQuizCountEQ.
func CompletedQuizCount(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompletedQuizCount, v))
}

// LearningPhase applies equality check predicate on the "learning_phase" field. It's identical to LearningPhaseEQ.
func LearningPhase(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningPhase, v))
}

// CurrentDay applies equality check predicate on the "current_day" field. It's identical to CurrentDayEQ.
func CurrentDay(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCurrentDay, v))
}

// AssessmentStatus applies equality check predicate on the "assessment_status" field. It's identical to AssessmentStatusEQ.
func AssessmentStatus(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssessmentStatus, v))
}

// AssessmentCompletedAt applies equality check predicate on the "assessment_completed_at" field. It's identical to AssessmentCompletedAtEQ.
func AssessmentCompletedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssessmentCompletedAt, v))
}

// LowAccuracyStreak applies equality check predicate on the "low_accuracy_streak" field. It's identical to LowAccuracyStreakEQ.
func LowAccuracyStreak(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLowAccuracyStreak, v))
}

// RecoveryCooldown applies equality check predicate on the "recovery_cooldown" field. It's identical to RecoveryCooldownEQ.
func RecoveryCooldown(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRecoveryCooldown, v))
}

// TierOverride applies equality check predicate on the "tier_override" field. It's identical to TierOverrideEQ.
func TierOverride(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTierOverride, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// OverallThetaEQ applies the EQ predicate on the "overall_theta" field.
func OverallThetaEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOverallTheta, v))
}

// OverallThetaNEQ applies the NEQ predicate on the "overall_theta" field.
func OverallThetaNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOverallTheta, v))
}

// OverallThetaIn applies the In predicate on the "overall_theta" field.
func OverallThetaIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldOverallTheta, vs...))
}

// OverallThetaNotIn applies the NotIn predicate on the "overall_theta" field.
func OverallThetaNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOverallTheta, vs...))
}

// OverallThetaGT applies the GT predicate on the "overall_theta" field.
func OverallThetaGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldOverallTheta, v))
}

// OverallThetaGTE applies the GTE predicate on the "overall_theta" field.
func OverallThetaGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOverallTheta, v))
}

// OverallThetaLT applies the LT predicate on the "overall_theta" field.
func OverallThetaLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldOverallTheta, v))
}

// OverallThetaLTE applies the LTE predicate on the "overall_theta" field.
func OverallThetaLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOverallTheta, v))
}

// OverallPercentileEQ applies the EQ predicate on the "overall_percentile" field.
func OverallPercentileEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOverallPercentile, v))
}

// OverallPercentileNEQ applies the NEQ predicate on the "overall_percentile" field.
func OverallPercentileNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOverallPercentile, v))
}

// OverallPercentileIn applies the In predicate on the "overall_percentile" field.
func OverallPercentileIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldOverallPercentile, vs...))
}

// OverallPercentileNotIn applies the NotIn predicate on the "overall_percentile" field.
func OverallPercentileNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOverallPercentile, vs...))
}

// OverallPercentileGT applies the GT predicate on the "overall_percentile" field.
func OverallPercentileGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldOverallPercentile, v))
}

// OverallPercentileGTE applies the GTE predicate on the "overall_percentile" field.
func OverallPercentileGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOverallPercentile, v))
}

// OverallPercentileLT applies the LT predicate on the "overall_percentile" field.
func OverallPercentileLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldOverallPercentile, v))
}

// OverallPercentileLTE applies the LTE predicate on the "overall_percentile" field.
func OverallPercentileLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOverallPercentile, v))
}

// ThetaBySubjectIsNil applies the IsNil predicate on the "theta_by_subject" field.
func ThetaBySubjectIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldThetaBySubject))
}

// ThetaBySubjectNotNil applies the NotNil predicate on the "theta_by_subject" field.
func ThetaBySubjectNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldThetaBySubject))
}

// ThetaByChapterIsNil applies the IsNil predicate on the "theta_by_chapter" field.
func ThetaByChapterIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldThetaByChapter))
}

// ThetaByChapterNotNil applies the NotNil predicate on the "theta_by_chapter" field.
func ThetaByChapterNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldThetaByChapter))
}

// SubtopicAccuracyIsNil applies the IsNil predicate on the "subtopic_accuracy" field.
func SubtopicAccuracyIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSubtopicAccuracy))
}

// SubtopicAccuracyNotNil applies the NotNil predicate on the "subtopic_accuracy" field.
func SubtopicAccuracyNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSubtopicAccuracy))
}

// SubjectAccuracyIsNil applies the IsNil predicate on the "subject_accuracy" field.
func SubjectAccuracyIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSubjectAccuracy))
}

// SubjectAccuracyNotNil applies the NotNil predicate on the "subject_accuracy" field.
func SubjectAccuracyNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSubjectAccuracy))
}

// TotalQuestionsAttemptedEQ applies the EQ predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsAttemptedNEQ applies the NEQ predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsAttemptedIn applies the In predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalQuestionsAttempted, vs...))
}

// TotalQuestionsAttemptedNotIn applies the NotIn predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalQuestionsAttempted, vs...))
}

// TotalQuestionsAttemptedGT applies the GT predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsAttemptedGTE applies the GTE predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsAttemptedLT applies the LT predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsAttemptedLTE applies the LTE predicate on the "total_questions_attempted" field.
func TotalQuestionsAttemptedLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalQuestionsAttempted, v))
}

// TotalQuestionsCorrectEQ applies the EQ predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalQuestionsCorrect, v))
}

// TotalQuestionsCorrectNEQ applies the NEQ predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalQuestionsCorrect, v))
}

// TotalQuestionsCorrectIn applies the In predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalQuestionsCorrect, vs...))
}

// TotalQuestionsCorrectNotIn applies the NotIn predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalQuestionsCorrect, vs...))
}

// TotalQuestionsCorrectGT applies the GT predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalQuestionsCorrect, v))
}

// TotalQuestionsCorrectGTE applies the GTE predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalQuestionsCorrect, v))
}

// TotalQuestionsCorrectLT applies the LT predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalQuestionsCorrect, v))
}

// TotalQuestionsCorrectLTE applies the LTE predicate on the "total_questions_correct" field.
func TotalQuestionsCorrectLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalQuestionsCorrect, v))
}

// TotalTimeSpentMinutesEQ applies the EQ predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalTimeSpentMinutes, v))
}

// TotalTimeSpentMinutesNEQ applies the NEQ predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalTimeSpentMinutes, v))
}

// TotalTimeSpentMinutesIn applies the In predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalTimeSpentMinutes, vs...))
}

// TotalTimeSpentMinutesNotIn applies the NotIn predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalTimeSpentMinutes, vs...))
}

// TotalTimeSpentMinutesGT applies the GT predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalTimeSpentMinutes, v))
}

// TotalTimeSpentMinutesGTE applies the GTE predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalTimeSpentMinutes, v))
}

// TotalTimeSpentMinutesLT applies the LT predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalTimeSpentMinutes, v))
}

// TotalTimeSpentMinutesLTE applies the LTE predicate on the "total_time_spent_minutes" field.
func TotalTimeSpentMinutesLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalTimeSpentMinutes, v))
}

// CompletedQuizCountEQ applies the EQ predicate on the "completed_quiz_count" field.
func CompletedQuizCountEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompletedQuizCount, v))
}

// CompletedQuizCountNEQ applies the NEQ predicate on the "completed_quiz_count" field.
func CompletedQuizCountNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCompletedQuizCount, v))
}

// CompletedQuizCountIn applies the In predicate on the "completed_quiz_count" field.
func CompletedQuizCountIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCompletedQuizCount, vs...))
}

// CompletedQuizCountNotIn applies the NotIn predicate on the "completed_quiz_count" field.
func CompletedQuizCountNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCompletedQuizCount, vs...))
}

// CompletedQuizCountGT applies the GT predicate on the "completed_quiz_count" field.
func CompletedQuizCountGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCompletedQuizCount, v))
}

// CompletedQuizCountGTE applies the GTE predicate on the "completed_quiz_count" field.
func CompletedQuizCountGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCompletedQuizCount, v))
}

// CompletedQuizCountLT applies the LT predicate on the "completed_quiz_count" field.
func CompletedQuizCountLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCompletedQuizCount, v))
}

// CompletedQuizCountLTE applies the LTE predicate on the "completed_quiz_count" field.
func CompletedQuizCountLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCompletedQuizCount, v))
}

// LearningPhaseEQ applies the EQ predicate on the "learning_phase" field.
func LearningPhaseEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLearningPhase, v))
}

// LearningPhaseNEQ applies the NEQ predicate on the "learning_phase" field.
func LearningPhaseNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLearningPhase, v))
}

// LearningPhaseIn applies the In predicate on the "learning_phase" field.
func LearningPhaseIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldLearningPhase, vs...))
}

// LearningPhaseNotIn applies the NotIn predicate on the "learning_phase" field.
func LearningPhaseNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLearningPhase, vs...))
}

// LearningPhaseGT applies the GT predicate on the "learning_phase" field.
func LearningPhaseGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldLearningPhase, v))
}

// LearningPhaseGTE applies the GTE predicate on the "learning_phase" field.
func LearningPhaseGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLearningPhase, v))
}

// LearningPhaseLT applies the LT predicate on the "learning_phase" field.
func LearningPhaseLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldLearningPhase, v))
}

// LearningPhaseLTE applies the LTE predicate on the "learning_phase" field.
func LearningPhaseLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLearningPhase, v))
}

// LearningPhaseContains applies the Contains predicate on the "learning_phase" field.
func LearningPhaseContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldLearningPhase, v))
}

// LearningPhaseHasPrefix applies the HasPrefix predicate on the "learning_phase" field.
func LearningPhaseHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldLearningPhase, v))
}

// LearningPhaseHasSuffix applies the HasSuffix predicate on the "learning_phase" field.
func LearningPhaseHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldLearningPhase, v))
}

// LearningPhaseEqualFold applies the EqualFold predicate on the "learning_phase" field.
func LearningPhaseEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldLearningPhase, v))
}

// LearningPhaseContainsFold applies the ContainsFold predicate on the "learning_phase" field.
func LearningPhaseContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldLearningPhase, v))
}

// CurrentDayEQ applies the EQ predicate on the "current_day" field.
func CurrentDayEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCurrentDay, v))
}

// CurrentDayNEQ applies the NEQ predicate on the "current_day" field.
func CurrentDayNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCurrentDay, v))
}

// CurrentDayIn applies the In predicate on the "current_day" field.
func CurrentDayIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldCurrentDay, vs...))
}

// CurrentDayNotIn applies the NotIn predicate on the "current_day" field.
func CurrentDayNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCurrentDay, vs...))
}

// CurrentDayGT applies the GT predicate on the "current_day" field.
func CurrentDayGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldCurrentDay, v))
}

// CurrentDayGTE applies the GTE predicate on the "current_day" field.
func CurrentDayGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCurrentDay, v))
}

// CurrentDayLT applies the LT predicate on the "current_day" field.
func CurrentDayLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldCurrentDay, v))
}

// CurrentDayLTE applies the LTE predicate on the "current_day" field.
func CurrentDayLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCurrentDay, v))
}

// AssessmentStatusEQ applies the EQ predicate on the "assessment_status" field.
func AssessmentStatusEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssessmentStatus, v))
}

// AssessmentStatusNEQ applies the NEQ predicate on the "assessment_status" field.
func AssessmentStatusNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAssessmentStatus, v))
}

// AssessmentStatusIn applies the In predicate on the "assessment_status" field.
func AssessmentStatusIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldAssessmentStatus, vs...))
}

// AssessmentStatusNotIn applies the NotIn predicate on the "assessment_status" field.
func AssessmentStatusNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAssessmentStatus, vs...))
}

// AssessmentStatusGT applies the GT predicate on the "assessment_status" field.
func AssessmentStatusGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldAssessmentStatus, v))
}

// AssessmentStatusGTE applies the GTE predicate on the "assessment_status" field.
func AssessmentStatusGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAssessmentStatus, v))
}

// AssessmentStatusLT applies the LT predicate on the "assessment_status" field.
func AssessmentStatusLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldAssessmentStatus, v))
}

// AssessmentStatusLTE applies the LTE predicate on the "assessment_status" field.
func AssessmentStatusLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAssessmentStatus, v))
}

// AssessmentStatusContains applies the Contains predicate on the "assessment_status" field.
func AssessmentStatusContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldAssessmentStatus, v))
}

// AssessmentStatusHasPrefix applies the HasPrefix predicate on the "assessment_status" field.
func AssessmentStatusHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldAssessmentStatus, v))
}

// AssessmentStatusHasSuffix applies the HasSuffix predicate on the "assessment_status" field.
func AssessmentStatusHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldAssessmentStatus, v))
}

// AssessmentStatusEqualFold applies the EqualFold predicate on the "assessment_status" field.
func AssessmentStatusEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldAssessmentStatus, v))
}

// AssessmentStatusContainsFold applies the ContainsFold predicate on the "assessment_status" field.
func AssessmentStatusContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldAssessmentStatus, v))
}

// AssessmentBaselineIsNil applies the IsNil predicate on the "assessment_baseline" field.
func AssessmentBaselineIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAssessmentBaseline))
}

// AssessmentBaselineNotNil applies the NotNil predicate on the "assessment_baseline" field.
func AssessmentBaselineNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAssessmentBaseline))
}

// AssessmentCompletedAtEQ applies the EQ predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtNEQ applies the NEQ predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtIn applies the In predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldAssessmentCompletedAt, vs...))
}

// AssessmentCompletedAtNotIn applies the NotIn predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAssessmentCompletedAt, vs...))
}

// AssessmentCompletedAtGT applies the GT predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtGTE applies the GTE predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtLT applies the LT predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtLTE applies the LTE predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAssessmentCompletedAt, v))
}

// AssessmentCompletedAtIsNil applies the IsNil predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAssessmentCompletedAt))
}

// AssessmentCompletedAtNotNil applies the NotNil predicate on the "assessment_completed_at" field.
func AssessmentCompletedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAssessmentCompletedAt))
}

// LowAccuracyStreakEQ applies the EQ predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLowAccuracyStreak, v))
}

// LowAccuracyStreakNEQ applies the NEQ predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLowAccuracyStreak, v))
}

// LowAccuracyStreakIn applies the In predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldLowAccuracyStreak, vs...))
}

// LowAccuracyStreakNotIn applies the NotIn predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLowAccuracyStreak, vs...))
}

// LowAccuracyStreakGT applies the GT predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldLowAccuracyStreak, v))
}

// LowAccuracyStreakGTE applies the GTE predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLowAccuracyStreak, v))
}

// LowAccuracyStreakLT applies the LT predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldLowAccuracyStreak, v))
}

// LowAccuracyStreakLTE applies the LTE predicate on the "low_accuracy_streak" field.
func LowAccuracyStreakLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLowAccuracyStreak, v))
}

// RecoveryCooldownEQ applies the EQ predicate on the "recovery_cooldown" field.
func RecoveryCooldownEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRecoveryCooldown, v))
}

// RecoveryCooldownNEQ applies the NEQ predicate on the "recovery_cooldown" field.
func RecoveryCooldownNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRecoveryCooldown, v))
}

// RecoveryCooldownIn applies the In predicate on the "recovery_cooldown" field.
func RecoveryCooldownIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldRecoveryCooldown, vs...))
}

// RecoveryCooldownNotIn applies the NotIn predicate on the "recovery_cooldown" field.
func RecoveryCooldownNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRecoveryCooldown, vs...))
}

// RecoveryCooldownGT applies the GT predicate on the "recovery_cooldown" field.
func RecoveryCooldownGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldRecoveryCooldown, v))
}

// RecoveryCooldownGTE applies the GTE predicate on the "recovery_cooldown" field.
func RecoveryCooldownGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldRecoveryCooldown, v))
}

// RecoveryCooldownLT applies the LT predicate on the "recovery_cooldown" field.
func RecoveryCooldownLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldRecoveryCooldown, v))
}

// RecoveryCooldownLTE applies the LTE predicate on the "recovery_cooldown" field.
func RecoveryCooldownLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldRecoveryCooldown, v))
}

// ChapterPracticeStatsIsNil applies the IsNil predicate on the "chapter_practice_stats" field.
func ChapterPracticeStatsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldChapterPracticeStats))
}

// ChapterPracticeStatsNotNil applies the NotNil predicate on the "chapter_practice_stats" field.
func ChapterPracticeStatsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldChapterPracticeStats))
}

// SubscriptionIsNil applies the IsNil predicate on the "subscription" field.
func SubscriptionIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSubscription))
}

// SubscriptionNotNil applies the NotNil predicate on the "subscription" field.
func SubscriptionNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSubscription))
}

// TrialIsNil applies the IsNil predicate on the "trial" field.
func TrialIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldTrial))
}

// TrialNotNil applies the NotNil predicate on the "trial" field.
func TrialNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldTrial))
}

// TierOverrideEQ applies the EQ predicate on the "tier_override" field.
func TierOverrideEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTierOverride, v))
}

// TierOverrideNEQ applies the NEQ predicate on the "tier_override" field.
func TierOverrideNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTierOverride, v))
}

// TierOverrideIn applies the In predicate on the "tier_override" field.
func TierOverrideIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldTierOverride, vs...))
}

// TierOverrideNotIn applies the NotIn predicate on the "tier_override" field.
func TierOverrideNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTierOverride, vs...))
}

// TierOverrideGT applies the GT predicate on the "tier_override" field.
func TierOverrideGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldTierOverride, v))
}

// TierOverrideGTE applies the GTE predicate on the "tier_override" field.
func TierOverrideGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTierOverride, v))
}

// TierOverrideLT applies the LT predicate on the "tier_override" field.
func TierOverrideLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldTierOverride, v))
}

// TierOverrideLTE applies the LTE predicate on the "tier_override" field.
func TierOverrideLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTierOverride, v))
}

// TierOverrideContains applies the Contains predicate on the "tier_override" field.
func TierOverrideContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldTierOverride, v))
}

// TierOverrideHasPrefix applies the HasPrefix predicate on the "tier_override" field.
func TierOverrideHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldTierOverride, v))
}

// TierOverrideHasSuffix applies the HasSuffix predicate on the "tier_override" field.
func TierOverrideHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldTierOverride, v))
}

// TierOverrideIsNil applies the IsNil predicate on the "tier_override" field.
func TierOverrideIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldTierOverride))
}

// TierOverrideNotNil applies the NotNil predicate on the "tier_override" field.
func TierOverrideNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldTierOverride))
}

// TierOverrideEqualFold applies the EqualFold predicate on the "tier_override" field.
func TierOverrideEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldTierOverride, v))
}

// TierOverrideContainsFold applies the ContainsFold predicate on the "tier_override" field.
func TierOverrideContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldTierOverride, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
