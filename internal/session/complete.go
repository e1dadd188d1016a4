package session

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/irt"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/proficiency"
	"github.com/jeevibe/engine/internal/selection"
	"github.com/jeevibe/engine/internal/store"
)

// recoveryCooldownQuizzes is how many regular quizzes must pass after a
// recovery quiz before recovery can trigger again.
const recoveryCooldownQuizzes = 2

// CompletionSummary is the outcome of finishing a session.
type CompletionSummary struct {
	SessionID        string  `json:"session_id"`
	Kind             string  `json:"kind"`
	Questions        int     `json:"questions"`
	Answered         int     `json:"answered"`
	Correct          int     `json:"correct"`
	Accuracy         float64 `json:"accuracy"`
	TotalTimeSeconds int     `json:"total_time_seconds"`
	OverallTheta     float64 `json:"overall_theta"`
	Percentile       int     `json:"percentile"`
	// UnlockPassed and CanRetry are set only for unlock quizzes.
	UnlockPassed *bool `json:"unlock_passed,omitempty"`
	CanRetry     *bool `json:"can_retry,omitempty"`
}

// Complete moves a session through completing to completed: grades what
// needs grading, rolls the results into the user profile and captures the
// progress snapshot. A session that already completed surfaces the
// ALREADY_COMPLETED conflict; nothing is mutated twice.
func (c *Coordinator) Complete(ctx context.Context, userID, sessionID string) (*CompletionSummary, error) {
	sess, err := c.deps.Sessions.MarkCompleting(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	switch sess.Kind {
	case model.KindInitialAssessment:
		return c.completeAssessment(ctx, sess)
	case model.KindMockTest:
		return c.completeMock(ctx, sess)
	default:
		return c.completeGraded(ctx, sess)
	}
}

// completeAssessment derives the initial chapter ledger from the full
// response set, writes it through ApplyAssessment, then finalizes the
// session without re-deriving the user profile.
func (c *Coordinator) completeAssessment(ctx context.Context, sess *store.Session) (*CompletionSummary, error) {
	now := c.deps.Clock.Now()
	responses, err := c.deps.Responses.BySession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return nil, errs.E(errs.StateConflict, "NO_RESPONSES",
			"assessment has no answered questions to process")
	}

	w := proficiency.ProcessAssessment(responses, now)
	if err := c.deps.Users.ApplyAssessment(ctx, sess.UserID, w); err != nil {
		return nil, err
	}

	correct, answered, totalTime := tallyResponses(responses)
	err = store.Retry(ctx, func(ctx context.Context) error {
		return c.deps.Sessions.FinalizeCompletion(ctx, sess.UserID, sess.ID, now,
			func(u *store.User) (*store.CompletionWrite, error) {
				// ApplyAssessment already wrote the profile; carry it through
				// unchanged and only close out the session counters.
				return carryThrough(u, correct, answered, totalTime), nil
			})
	})
	if err != nil {
		return nil, err
	}

	u, err := c.deps.Users.Ensure(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	c.captureSnapshot(ctx, u, sess, responses, correct, answered, totalTime)
	c.deps.Log.Info("assessment completed",
		zap.String("user", sess.UserID),
		zap.Float64("overall_theta", u.OverallTheta),
		zap.Int("percentile", u.OverallPercentile))

	done := &CompletionSummary{
		SessionID:        sess.ID,
		Kind:             sess.Kind,
		Questions:        sess.QuestionsTotal,
		Answered:         answered,
		Correct:          correct,
		Accuracy:         accuracy(correct, answered),
		TotalTimeSeconds: totalTime,
		OverallTheta:     u.OverallTheta,
		Percentile:       u.OverallPercentile,
	}
	return done, nil
}

// completeMock grades the saved answers in one pass. Mocks never move
// proficiency; only the lifetime attempt counters advance.
func (c *Coordinator) completeMock(ctx context.Context, sess *store.Session) (*CompletionSummary, error) {
	now := c.deps.Clock.Now()
	positions, err := c.deps.Sessions.Questions(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(positions))
	for i, p := range positions {
		ids[i] = p.QuestionID
	}
	qmap, err := c.deps.Questions.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	correct, answered := 0, 0
	for _, p := range positions {
		if p.StudentAnswer == "" {
			continue
		}
		q, ok := qmap[p.QuestionID]
		if !ok {
			continue
		}
		answered++
		if c.score(q, p.StudentAnswer) {
			correct++
		}
	}

	totalTime := sess.TotalTimeSeconds
	err = store.Retry(ctx, func(ctx context.Context) error {
		return c.deps.Sessions.FinalizeCompletion(ctx, sess.UserID, sess.ID, now,
			func(u *store.User) (*store.CompletionWrite, error) {
				w := carryThrough(u, correct, answered, totalTime)
				w.AddQuestionsAttempted = answered
				w.AddQuestionsCorrect = correct
				return w, nil
			})
	})
	if err != nil {
		return nil, err
	}

	u, err := c.deps.Users.Ensure(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	return &CompletionSummary{
		SessionID:        sess.ID,
		Kind:             sess.Kind,
		Questions:        sess.QuestionsTotal,
		Answered:         answered,
		Correct:          correct,
		Accuracy:         accuracy(correct, answered),
		TotalTimeSeconds: totalTime,
		OverallTheta:     u.OverallTheta,
		Percentile:       u.OverallPercentile,
	}, nil
}

// completeGraded finalizes the per-answer-graded kinds: daily quiz,
// chapter practice, unlock quiz and snap practice.
func (c *Coordinator) completeGraded(ctx context.Context, sess *store.Session) (*CompletionSummary, error) {
	now := c.deps.Clock.Now()
	responses, err := c.deps.Responses.BySession(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	correct, answered, totalTime := tallyResponses(responses)
	acc := accuracy(correct, answered)

	explorationEnd := 0
	if sess.Kind == model.KindDailyQuiz {
		caller, err := c.deps.Users.Ensure(ctx, sess.UserID)
		if err != nil {
			return nil, err
		}
		_, cfg, err := c.deps.Gate.ConfigFor(ctx, caller)
		if err != nil {
			return nil, err
		}
		explorationEnd = cfg.ExplorationEndQuiz
	}

	var snap *store.User
	err = store.Retry(ctx, func(ctx context.Context) error {
		return c.deps.Sessions.FinalizeCompletion(ctx, sess.UserID, sess.ID, now,
			func(u *store.User) (*store.CompletionWrite, error) {
				w := c.buildCompletion(u, sess, responses, correct, answered, totalTime, acc, explorationEnd, now)
				uu := *u
				snap = &uu
				return w, nil
			})
	})
	if err != nil {
		return nil, err
	}

	u, err := c.deps.Users.Ensure(ctx, sess.UserID)
	if err != nil {
		// The finalize succeeded; fall back to the in-tx user for the summary.
		u = snap
	}

	if sess.Kind == model.KindDailyQuiz {
		c.captureSnapshot(ctx, u, sess, responses, correct, answered, totalTime)
	}

	done := &CompletionSummary{
		SessionID:        sess.ID,
		Kind:             sess.Kind,
		Questions:        sess.QuestionsTotal,
		Answered:         answered,
		Correct:          correct,
		Accuracy:         acc,
		TotalTimeSeconds: totalTime,
		OverallTheta:     u.OverallTheta,
		Percentile:       u.OverallPercentile,
	}
	if sess.Kind == model.KindUnlockQuiz {
		passed := correct >= selection.UnlockPassThreshold
		retry := !passed
		done.UnlockPassed = &passed
		done.CanRetry = &retry
		c.deps.Log.Info("unlock quiz finished",
			zap.String("user", sess.UserID),
			zap.String("chapter", sess.ChapterKey),
			zap.Bool("passed", passed))
	}
	return done, nil
}

// buildCompletion computes the authoritative profile rollup from the
// in-transaction user. The chapter ledger already holds the per-answer
// theta writes; completion re-derives the subject and overall rollups,
// the phase machinery and the accuracy tallies from it.
func (c *Coordinator) buildCompletion(u *store.User, sess *store.Session, responses []*store.Response, correct, answered, totalTime int, acc float64, explorationEnd int, now time.Time) *store.CompletionWrite {
	// Snap practice defers its chapter writes to here: with at least one
	// correct answer the whole session folds in at the snap weight, misses
	// included; with none, theta stays where it was.
	var snapLedger map[string]model.ChapterState
	ledger := u.ThetaByChapter
	if sess.Kind == model.KindSnapPractice && correct >= 1 {
		snapLedger = foldSnapResponses(u, responses, now)
		merged := make(map[string]model.ChapterState, len(ledger)+len(snapLedger))
		for k, v := range ledger {
			merged[k] = v
		}
		for k, v := range snapLedger {
			merged[k] = v
		}
		ledger = merged
	}

	subjects, overall, percentile := proficiency.Rollup(ledger)
	subtopic, subject := proficiency.AccumulateTallies(u.SubtopicAccuracy, u.SubjectAccuracy, responses)

	w := &store.CompletionWrite{
		ThetaBySubject:        subjects,
		OverallTheta:          overall,
		OverallPercentile:     percentile,
		SubtopicAccuracy:      subtopic,
		SubjectAccuracy:       subject,
		AddQuestionsAttempted: answered,
		AddQuestionsCorrect:   correct,
		AddTimeSpentMinutes:   math.Round(float64(totalTime)/60*100) / 100,
		CompletedQuizCount:    u.CompletedQuizCount,
		LearningPhase:         u.LearningPhase,
		CurrentDay:            u.CurrentDay,
		LowAccuracyStreak:     u.LowAccuracyStreak,
		RecoveryCooldown:      u.RecoveryCooldown,
		SessionCorrect:        correct,
		SessionAnswered:       answered,
		SessionTotalTime:      totalTime,
	}
	if snapLedger != nil {
		w.ThetaByChapter = snapLedger
	}

	if sess.Kind == model.KindUnlockQuiz {
		// Gate checks leave the learning state untouched.
		return w
	}

	if sess.Kind == model.KindChapterPractice {
		stats := make(map[string]model.Tally, len(u.ChapterPracticeStats)+1)
		for k, v := range u.ChapterPracticeStats {
			stats[k] = v
		}
		t := stats[sess.ChapterKey]
		t.Total += answered
		t.Correct += correct
		stats[sess.ChapterKey] = t
		w.ChapterPracticeStats = stats
	}

	if sess.Kind == model.KindDailyQuiz {
		w.CompletedQuizCount = u.CompletedQuizCount + 1
		if explorationEnd > 0 && w.CompletedQuizCount >= explorationEnd {
			w.LearningPhase = model.PhaseExploitation
		}
		if u.AssessmentCompletedAt != nil {
			w.CurrentDay = clock.DaysSince(*u.AssessmentCompletedAt, now) + 1
		}
		if acc < 0.5 {
			w.LowAccuracyStreak = u.LowAccuracyStreak + 1
		} else {
			w.LowAccuracyStreak = 0
		}
		if sess.IsRecoveryQuiz {
			w.RecoveryCooldown = recoveryCooldownQuizzes
		} else if u.RecoveryCooldown > 0 {
			w.RecoveryCooldown = u.RecoveryCooldown - 1
		}
	}
	return w
}

// foldSnapResponses replays a snap session's responses against the user's
// current ledger at the snap weight, in answer order, and returns only the
// chapters it touched.
func foldSnapResponses(u *store.User, responses []*store.Response, now time.Time) map[string]model.ChapterState {
	touched := make(map[string]model.ChapterState, 2)
	for _, r := range responses {
		prior, ok := touched[r.ChapterKey]
		if !ok {
			prior = proficiency.PriorFor(u, r.ChapterKey)
		}
		next, _ := proficiency.ApplyAnswer(prior, irt.Params(r.IRT), r.IsCorrect, model.KindSnapPractice, now)
		touched[r.ChapterKey] = next
	}
	return touched
}

// captureSnapshot records the quiz snapshot; failures degrade to a log
// line since the completion itself has already committed.
func (c *Coordinator) captureSnapshot(ctx context.Context, u *store.User, sess *store.Session, responses []*store.Response, correct, answered, totalTime int) {
	perf := model.QuizPerformance{
		QuizID:           sess.ID,
		Kind:             sess.Kind,
		Questions:        answered,
		Correct:          correct,
		Accuracy:         accuracy(correct, answered),
		TotalTimeSeconds: totalTime,
	}
	if err := c.deps.Snapshots.CaptureQuiz(ctx, u, sess, perf, chapterUpdates(u, responses)); err != nil {
		c.deps.Log.Warn("snapshot capture failed",
			zap.String("user", u.ID),
			zap.String("session", sess.ID),
			zap.Error(err))
	}
}

// chapterUpdates reconstructs each touched chapter's theta movement by
// backing the summed per-response deltas out of the final ledger value.
func chapterUpdates(u *store.User, responses []*store.Response) []model.ChapterUpdate {
	deltas := make(map[string]float64)
	order := make([]string, 0, 4)
	for _, r := range responses {
		if _, seen := deltas[r.ChapterKey]; !seen {
			order = append(order, r.ChapterKey)
		}
		deltas[r.ChapterKey] += r.ThetaDelta
	}
	updates := make([]model.ChapterUpdate, 0, len(order))
	for _, key := range order {
		to := u.ThetaByChapter[key].Theta
		updates = append(updates, model.ChapterUpdate{
			ChapterKey: key,
			ThetaFrom:  to - deltas[key],
			ThetaTo:    to,
		})
	}
	return updates
}

// carryThrough builds a CompletionWrite that re-states the user profile
// unchanged while still closing out the session row.
func carryThrough(u *store.User, correct, answered, totalTime int) *store.CompletionWrite {
	return &store.CompletionWrite{
		ThetaBySubject:     u.ThetaBySubject,
		OverallTheta:       u.OverallTheta,
		OverallPercentile:  u.OverallPercentile,
		SubtopicAccuracy:   u.SubtopicAccuracy,
		SubjectAccuracy:    u.SubjectAccuracy,
		CompletedQuizCount: u.CompletedQuizCount,
		LearningPhase:      u.LearningPhase,
		CurrentDay:         u.CurrentDay,
		LowAccuracyStreak:  u.LowAccuracyStreak,
		RecoveryCooldown:   u.RecoveryCooldown,
		SessionCorrect:     correct,
		SessionAnswered:    answered,
		SessionTotalTime:   totalTime,
	}
}

func tallyResponses(responses []*store.Response) (correct, answered, totalTime int) {
	for _, r := range responses {
		answered++
		if r.IsCorrect {
			correct++
		}
		totalTime += r.TimeTakenSeconds
	}
	return correct, answered, totalTime
}

func accuracy(correct, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return float64(correct) / float64(answered)
}
