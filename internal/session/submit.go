package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/irt"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/proficiency"
	"github.com/jeevibe/engine/internal/store"
)

// AnswerInput is one submitted answer.
type AnswerInput struct {
	Answer      string
	TimeSeconds int
}

// AnswerResult is the graded outcome returned to the client. A replayed
// submission returns the originally stored outcome with Replayed set.
type AnswerResult struct {
	Correct       bool    `json:"correct"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   string  `json:"explanation,omitempty"`
	ChapterKey    string  `json:"chapter_key"`
	ThetaDelta    float64 `json:"theta_delta"`
	Replayed      bool    `json:"replayed"`
}

// SubmitAnswer grades one answer and commits the four-write batch:
// position, session counters, chapter state and the response row.
// Resubmitting an answered position replays the stored outcome.
func (c *Coordinator) SubmitAnswer(ctx context.Context, userID, sessionID, questionID string, in AnswerInput) (*AnswerResult, error) {
	sess, err := c.deps.Sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Kind == model.KindMockTest {
		return nil, errs.E(errs.Validation, "MOCK_SAVE_ONLY",
			"mock tests save answers and grade at submission")
	}
	sess, err = c.expireOnTouch(ctx, sess)
	if err != nil {
		return nil, err
	}
	if sess.Status != model.StatusInProgress {
		return nil, errs.E(errs.StateConflict, "SESSION_"+sess.Status,
			"session is "+sess.Status)
	}

	now := c.deps.Clock.Now()
	begin, err := c.deps.Sessions.BeginAnswer(ctx, sessionID, questionID, now, answerSentinelTTL)
	if err != nil {
		return nil, err
	}
	if begin.AlreadyAnswered {
		r := begin.Existing
		res := &AnswerResult{
			Correct:       r.IsCorrect,
			CorrectAnswer: r.CorrectAnswer,
			ChapterKey:    r.ChapterKey,
			ThetaDelta:    r.ThetaDelta,
			Replayed:      true,
		}
		if q, err := c.deps.Questions.Get(ctx, questionID); err == nil {
			res.Explanation = explanationOf(q)
		}
		return res, nil
	}

	result, batch, err := c.gradeAnswer(ctx, sess, begin.Position, in, now)
	if err != nil {
		// The sentinel must not pin the position after a failed grade.
		if clearErr := c.deps.Sessions.ClearSentinel(ctx, sessionID, questionID); clearErr != nil {
			c.deps.Log.Warn("sentinel clear failed",
				zap.String("session", sessionID),
				zap.String("question", questionID),
				zap.Error(clearErr))
		}
		return nil, err
	}

	if err := store.Retry(ctx, func(ctx context.Context) error {
		return c.deps.Sessions.CommitAnswer(ctx, batch)
	}); err != nil {
		if errs.Is(err, "ALREADY_ANSWERED") {
			result.Replayed = true
			return result, nil
		}
		return nil, err
	}
	return result, nil
}

// gradeAnswer scores the answer, runs the proficiency update and builds
// the commit batch. It performs no writes besides the review-ladder entry,
// which is best effort.
func (c *Coordinator) gradeAnswer(ctx context.Context, sess *store.Session, pos *store.SessionQuestion, in AnswerInput, now time.Time) (*AnswerResult, *store.AnswerBatch, error) {
	q, err := c.deps.Questions.Get(ctx, pos.QuestionID)
	if err != nil {
		return nil, nil, err
	}
	u, err := c.deps.Users.Ensure(ctx, sess.UserID)
	if err != nil {
		return nil, nil, err
	}

	correct := c.score(q, in.Answer)

	// Assessment chapter states are derived in one batch at completion,
	// snap practice folds its deltas at completion once the session has a
	// correct answer, and unlock quizzes never move proficiency. All three
	// skip the per-answer write.
	var newState *model.ChapterState
	var delta float64
	if sess.Kind != model.KindInitialAssessment && sess.Kind != model.KindUnlockQuiz && sess.Kind != model.KindSnapPractice {
		prior := proficiency.PriorFor(u, q.ChapterKey)
		state, d := proficiency.ApplyAnswer(prior, irt.Params(q.IRT), correct, sess.Kind, now)
		newState, delta = &state, d
	}

	if sess.Kind == model.KindDailyQuiz || sess.Kind == model.KindChapterPractice {
		if err := c.deps.Reviews.Record(ctx, sess.UserID, q.ID, correct); err != nil {
			c.deps.Log.Warn("review ladder update failed",
				zap.String("user", sess.UserID),
				zap.String("question", q.ID),
				zap.Error(err))
		}
	}

	batch := &store.AnswerBatch{
		SessionID:        sess.ID,
		UserID:           sess.UserID,
		QuestionID:       q.ID,
		StudentAnswer:    in.Answer,
		IsCorrect:        correct,
		TimeTakenSeconds: in.TimeSeconds,
		ThetaDelta:       delta,
		AnsweredAt:       now,
		ChapterKey:       q.ChapterKey,
		NewChapterState:  newState,
		Response: store.Response{
			UserID:           sess.UserID,
			SessionID:        sess.ID,
			QuestionID:       q.ID,
			Kind:             sess.Kind,
			ChapterKey:       q.ChapterKey,
			SubTopics:        q.SubTopics,
			StudentAnswer:    in.Answer,
			CorrectAnswer:    q.CorrectAnswer,
			IsCorrect:        correct,
			TimeTakenSeconds: in.TimeSeconds,
			IRT:              q.IRT,
			ThetaDelta:       delta,
			AnsweredAt:       now,
		},
	}
	result := &AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   explanationOf(q),
		ChapterKey:    q.ChapterKey,
		ThetaDelta:    delta,
	}
	return result, batch, nil
}

func (c *Coordinator) score(q *store.Question, answer string) bool {
	if q.QuestionType == model.QuestionNumerical {
		var correct float64
		if q.AnswerValue != nil {
			correct = *q.AnswerValue
		}
		var min, max *float64
		if q.AnswerRange != nil {
			min, max = &q.AnswerRange.Min, &q.AnswerRange.Max
		}
		return irt.ScoreNumerical(answer, correct, min, max)
	}
	return irt.ScoreMCQ(answer, q.CorrectAnswer)
}

// SaveMockAnswer stores (or clears) a mock answer without grading it.
func (c *Coordinator) SaveMockAnswer(ctx context.Context, userID, sessionID, questionID, answer string) error {
	sess, err := c.deps.Sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if sess.Kind != model.KindMockTest {
		return errs.E(errs.Validation, "NOT_A_MOCK", "only mock tests save ungraded answers")
	}
	sess, err = c.expireOnTouch(ctx, sess)
	if err != nil {
		return err
	}
	if sess.Status != model.StatusInProgress {
		return errs.E(errs.StateConflict, "SESSION_"+sess.Status, "session is "+sess.Status)
	}
	return c.deps.Sessions.SaveMockAnswer(ctx, sessionID, questionID, answer, answer == "")
}

func explanationOf(q *store.Question) string {
	if s, ok := q.Payload["explanation"].(string); ok {
		return s
	}
	return ""
}
