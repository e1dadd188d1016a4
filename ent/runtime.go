// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jeevibe/engine/ent/question"
	"github.com/jeevibe/engine/ent/quotacounter"
	"github.com/jeevibe/engine/ent/response"
	"github.com/jeevibe/engine/ent/reviewinterval"
	"github.com/jeevibe/engine/ent/schema"
	"github.com/jeevibe/engine/ent/session"
	"github.com/jeevibe/engine/ent/sessionquestion"
	"github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/ent/tierconfig"
	"github.com/jeevibe/engine/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescIsAssessment is the schema descriptor for is_assessment field.
	questionDescIsAssessment := questionFields[13].Descriptor()
	// question.DefaultIsAssessment holds the default value on creation for the is_assessment field.
	question.DefaultIsAssessment = questionDescIsAssessment.Default.(bool)
	// questionDescAttemptsCount is the schema descriptor for attempts_count field.
	questionDescAttemptsCount := questionFields[14].Descriptor()
	// question.DefaultAttemptsCount holds the default value on creation for the attempts_count field.
	question.DefaultAttemptsCount = questionDescAttemptsCount.Default.(int)
	// questionDescCorrectCount is the schema descriptor for correct_count field.
	questionDescCorrectCount := questionFields[15].Descriptor()
	// question.DefaultCorrectCount holds the default value on creation for the correct_count field.
	question.DefaultCorrectCount = questionDescCorrectCount.Default.(int)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[17].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	quotacounterFields := schema.QuotaCounter{}.Fields()
	_ = quotacounterFields
	// quotacounterDescUsed is the schema descriptor for used field.
	quotacounterDescUsed := quotacounterFields[3].Descriptor()
	// quotacounter.DefaultUsed holds the default value on creation for the used field.
	quotacounter.DefaultUsed = quotacounterDescUsed.Default.(int)
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescAnsweredAt is the schema descriptor for answered_at field.
	responseDescAnsweredAt := responseFields[14].Descriptor()
	// response.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	response.DefaultAnsweredAt = responseDescAnsweredAt.Default.(func() time.Time)
	reviewintervalFields := schema.ReviewInterval{}.Fields()
	_ = reviewintervalFields
	// reviewintervalDescTimesReviewed is the schema descriptor for times_reviewed field.
	reviewintervalDescTimesReviewed := reviewintervalFields[4].Descriptor()
	// reviewinterval.DefaultTimesReviewed holds the default value on creation for the times_reviewed field.
	reviewinterval.DefaultTimesReviewed = reviewintervalDescTimesReviewed.Default.(int)
	// reviewintervalDescUpdatedAt is the schema descriptor for updated_at field.
	reviewintervalDescUpdatedAt := reviewintervalFields[5].Descriptor()
	// reviewinterval.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewinterval.DefaultUpdatedAt = reviewintervalDescUpdatedAt.Default.(func() time.Time)
	// reviewinterval.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewinterval.UpdateDefaultUpdatedAt = reviewintervalDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescIsRecoveryQuiz is the schema descriptor for is_recovery_quiz field.
	sessionDescIsRecoveryQuiz := sessionFields[7].Descriptor()
	// session.DefaultIsRecoveryQuiz holds the default value on creation for the is_recovery_quiz field.
	session.DefaultIsRecoveryQuiz = sessionDescIsRecoveryQuiz.Default.(bool)
	// sessionDescQuizNumber is the schema descriptor for quiz_number field.
	sessionDescQuizNumber := sessionFields[8].Descriptor()
	// session.DefaultQuizNumber holds the default value on creation for the quiz_number field.
	session.DefaultQuizNumber = sessionDescQuizNumber.Default.(int)
	// sessionDescQuestionsTotal is the schema descriptor for questions_total field.
	sessionDescQuestionsTotal := sessionFields[9].Descriptor()
	// session.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	session.DefaultQuestionsTotal = sessionDescQuestionsTotal.Default.(int)
	// sessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessionDescQuestionsAnswered := sessionFields[10].Descriptor()
	// session.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	session.DefaultQuestionsAnswered = sessionDescQuestionsAnswered.Default.(int)
	// sessionDescCorrectCount is the schema descriptor for correct_count field.
	sessionDescCorrectCount := sessionFields[11].Descriptor()
	// session.DefaultCorrectCount holds the default value on creation for the correct_count field.
	session.DefaultCorrectCount = sessionDescCorrectCount.Default.(int)
	// sessionDescTotalTimeSeconds is the schema descriptor for total_time_seconds field.
	sessionDescTotalTimeSeconds := sessionFields[12].Descriptor()
	// session.DefaultTotalTimeSeconds holds the default value on creation for the total_time_seconds field.
	session.DefaultTotalTimeSeconds = sessionDescTotalTimeSeconds.Default.(int)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[16].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[17].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
	sessionquestionFields := schema.SessionQuestion{}.Fields()
	_ = sessionquestionFields
	// sessionquestionDescAnswered is the schema descriptor for answered field.
	sessionquestionDescAnswered := sessionquestionFields[6].Descriptor()
	// sessionquestion.DefaultAnswered holds the default value on creation for the answered field.
	sessionquestion.DefaultAnswered = sessionquestionDescAnswered.Default.(bool)
	// sessionquestionDescIsCorrect is the schema descriptor for is_correct field.
	sessionquestionDescIsCorrect := sessionquestionFields[9].Descriptor()
	// sessionquestion.DefaultIsCorrect holds the default value on creation for the is_correct field.
	sessionquestion.DefaultIsCorrect = sessionquestionDescIsCorrect.Default.(bool)
	// sessionquestionDescTimeTakenSeconds is the schema descriptor for time_taken_seconds field.
	sessionquestionDescTimeTakenSeconds := sessionquestionFields[10].Descriptor()
	// sessionquestion.DefaultTimeTakenSeconds holds the default value on creation for the time_taken_seconds field.
	sessionquestion.DefaultTimeTakenSeconds = sessionquestionDescTimeTakenSeconds.Default.(int)
	// sessionquestionDescThetaDelta is the schema descriptor for theta_delta field.
	sessionquestionDescThetaDelta := sessionquestionFields[11].Descriptor()
	// sessionquestion.DefaultThetaDelta holds the default value on creation for the theta_delta field.
	sessionquestion.DefaultThetaDelta = sessionquestionDescThetaDelta.Default.(float64)
	thetasnapshotFields := schema.ThetaSnapshot{}.Fields()
	_ = thetasnapshotFields
	// thetasnapshotDescQuizNumber is the schema descriptor for quiz_number field.
	thetasnapshotDescQuizNumber := thetasnapshotFields[2].Descriptor()
	// thetasnapshot.DefaultQuizNumber holds the default value on creation for the quiz_number field.
	thetasnapshot.DefaultQuizNumber = thetasnapshotDescQuizNumber.Default.(int)
	// thetasnapshotDescCapturedAt is the schema descriptor for captured_at field.
	thetasnapshotDescCapturedAt := thetasnapshotFields[4].Descriptor()
	// thetasnapshot.DefaultCapturedAt holds the default value on creation for the captured_at field.
	thetasnapshot.DefaultCapturedAt = thetasnapshotDescCapturedAt.Default.(func() time.Time)
	tierconfigFields := schema.TierConfig{}.Fields()
	_ = tierconfigFields
	// tierconfigDescChapterPracticeWeekly is the schema descriptor for chapter_practice_weekly field.
	tierconfigDescChapterPracticeWeekly := tierconfigFields[3].Descriptor()
	// tierconfig.DefaultChapterPracticeWeekly holds the default value on creation for the chapter_practice_weekly field.
	tierconfig.DefaultChapterPracticeWeekly = tierconfigDescChapterPracticeWeekly.Default.(bool)
	// tierconfigDescExplorationEndQuiz is the schema descriptor for exploration_end_quiz field.
	tierconfigDescExplorationEndQuiz := tierconfigFields[4].Descriptor()
	// tierconfig.DefaultExplorationEndQuiz holds the default value on creation for the exploration_end_quiz field.
	tierconfig.DefaultExplorationEndQuiz = tierconfigDescExplorationEndQuiz.Default.(int)
	// tierconfigDescRecoveryTrigger is the schema descriptor for recovery_trigger field.
	tierconfigDescRecoveryTrigger := tierconfigFields[5].Descriptor()
	// tierconfig.DefaultRecoveryTrigger holds the default value on creation for the recovery_trigger field.
	tierconfig.DefaultRecoveryTrigger = tierconfigDescRecoveryTrigger.Default.(int)
	// tierconfigDescUpdatedAt is the schema descriptor for updated_at field.
	tierconfigDescUpdatedAt := tierconfigFields[6].Descriptor()
	// tierconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tierconfig.DefaultUpdatedAt = tierconfigDescUpdatedAt.Default.(func() time.Time)
	// tierconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tierconfig.UpdateDefaultUpdatedAt = tierconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tierconfigDescID is the schema descriptor for id field.
	tierconfigDescID := tierconfigFields[0].Descriptor()
	// tierconfig.IDValidator is a validator for the "id" field. It is called by the builders before save.
	tierconfig.IDValidator = tierconfigDescID.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescOverallTheta is the schema descriptor for overall_theta field.
	userDescOverallTheta := userFields[1].Descriptor()
	// user.DefaultOverallTheta holds the default value on creation for the overall_theta field.
	user.DefaultOverallTheta = userDescOverallTheta.Default.(float64)
	// userDescOverallPercentile is the schema descriptor for overall_percentile field.
	userDescOverallPercentile := userFields[2].Descriptor()
	// user.DefaultOverallPercentile holds the default value on creation for the overall_percentile field.
	user.DefaultOverallPercentile = userDescOverallPercentile.Default.(int)
	// userDescTotalQuestionsAttempted is the schema descriptor for total_questions_attempted field.
	userDescTotalQuestionsAttempted := userFields[7].Descriptor()
	// user.DefaultTotalQuestionsAttempted holds the default value on creation for the total_questions_attempted field.
	user.DefaultTotalQuestionsAttempted = userDescTotalQuestionsAttempted.Default.(int)
	// userDescTotalQuestionsCorrect is the schema descriptor for total_questions_correct field.
	userDescTotalQuestionsCorrect := userFields[8].Descriptor()
	// user.DefaultTotalQuestionsCorrect holds the default value on creation for the total_questions_correct field.
	user.DefaultTotalQuestionsCorrect = userDescTotalQuestionsCorrect.Default.(int)
	// userDescTotalTimeSpentMinutes is the schema descriptor for total_time_spent_minutes field.
	userDescTotalTimeSpentMinutes := userFields[9].Descriptor()
	// user.DefaultTotalTimeSpentMinutes holds the default value on creation for the total_time_spent_minutes field.
	user.DefaultTotalTimeSpentMinutes = userDescTotalTimeSpentMinutes.Default.(float64)
	// userDescCompletedQuizCount is the schema descriptor for completed_quiz_count field.
	userDescCompletedQuizCount := userFields[10].Descriptor()
	// user.DefaultCompletedQuizCount holds the default value on creation for the completed_quiz_count field.
	user.DefaultCompletedQuizCount = userDescCompletedQuizCount.Default.(int)
	// userDescLearningPhase is the schema descriptor for learning_phase field.
	userDescLearningPhase := userFields[11].Descriptor()
	// user.DefaultLearningPhase holds the default value on creation for the learning_phase field.
	user.DefaultLearningPhase = userDescLearningPhase.Default.(string)
	// userDescCurrentDay is the schema descriptor for current_day field.
	userDescCurrentDay := userFields[12].Descriptor()
	// user.DefaultCurrentDay holds the default value on creation for the current_day field.
	user.DefaultCurrentDay = userDescCurrentDay.Default.(int)
	// userDescAssessmentStatus is the schema descriptor for assessment_status field.
	userDescAssessmentStatus := userFields[13].Descriptor()
	// user.DefaultAssessmentStatus holds the default value on creation for the assessment_status field.
	user.DefaultAssessmentStatus = userDescAssessmentStatus.Default.(string)
	// userDescLowAccuracyStreak is the schema descriptor for low_accuracy_streak field.
	userDescLowAccuracyStreak := userFields[16].Descriptor()
	// user.DefaultLowAccuracyStreak holds the default value on creation for the low_accuracy_streak field.
	user.DefaultLowAccuracyStreak = userDescLowAccuracyStreak.Default.(int)
	// userDescRecoveryCooldown is the schema descriptor for recovery_cooldown field.
	userDescRecoveryCooldown := userFields[17].Descriptor()
	// user.DefaultRecoveryCooldown holds the default value on creation for the recovery_cooldown field.
	user.DefaultRecoveryCooldown = userDescRecoveryCooldown.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[22].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[23].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.IDValidator is a validator for the "id" field. It is called by the builders before save.
	user.IDValidator = userDescID.Validators[0].(func(string) error)
}
