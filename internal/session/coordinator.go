// Package session drives the session life-cycle: slate creation, answer
// submission, completion and the terminal transitions. All writes go
// through the store's transactional repos; this package owns the ordering
// and the business rules between them.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/ai"
	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/selection"
	"github.com/jeevibe/engine/internal/spacedrep"
	"github.com/jeevibe/engine/internal/store"
)

// answerSentinelTTL bounds how long a submission may hold a question's
// answering sentinel before a peer may retry it.
const answerSentinelTTL = 30 * time.Second

// Per-kind session lifetimes. Touching an expired session flips it to
// expired before the touch proceeds.
var sessionTTLs = map[string]time.Duration{
	model.KindInitialAssessment: 72 * time.Hour,
	model.KindDailyQuiz:         24 * time.Hour,
	model.KindChapterPractice:   24 * time.Hour,
	model.KindUnlockQuiz:        time.Hour,
	model.KindSnapPractice:      time.Hour,
	model.KindMockTest:          3 * time.Hour,
}

// Deps wires the coordinator. Assistant may be nil; snap practice then
// serves only what the catalog holds.
type Deps struct {
	Users     store.UserRepo
	Sessions  store.SessionRepo
	Responses store.ResponseRepo
	Questions store.QuestionRepo
	Selector  *selection.Selector
	Reviews   *spacedrep.Scheduler
	Gate      *quota.Gate
	Snapshots SnapshotSink
	Assistant *ai.Assistant
	Clock     clock.Clock
	Log       *zap.Logger
}

// SnapshotSink is the slice of the snapshot service the coordinator needs.
type SnapshotSink interface {
	CaptureQuiz(ctx context.Context, u *store.User, sess *store.Session, perf model.QuizPerformance, updates []model.ChapterUpdate) error
}

// Coordinator is the session life-cycle service.
type Coordinator struct {
	deps Deps
}

func NewCoordinator(deps Deps) *Coordinator {
	return &Coordinator{deps: deps}
}

// StartResult is the outcome of any start operation.
type StartResult struct {
	Session   *store.Session
	Questions []*store.SessionQuestion
	// Resumed is set when an existing in_progress session was returned
	// instead of a new one.
	Resumed bool
}

// StartAssessment creates (or resumes) the initial assessment.
func (c *Coordinator) StartAssessment(ctx context.Context, userID string) (*StartResult, error) {
	u, err := c.deps.Users.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.AssessmentStatus == model.AssessmentCompleted {
		return nil, errs.E(errs.StateConflict, "ASSESSMENT_DONE", "initial assessment already completed")
	}

	if res, err := c.resumeActive(ctx, userID, model.KindInitialAssessment, "", 0); res != nil || err != nil {
		return res, err
	}

	slate, err := c.deps.Selector.Assessment(ctx, userID)
	if err != nil {
		return nil, err
	}
	res, err := c.create(ctx, u, model.KindInitialAssessment, "", "", false, 0, slate)
	if err != nil {
		return nil, err
	}
	if !res.Resumed {
		if err := c.deps.Users.SetAssessmentStatus(ctx, userID, model.AssessmentProcessing); err != nil {
			c.deps.Log.Warn("assessment status update failed", zap.String("user", userID), zap.Error(err))
		}
	}
	return res, nil
}

// StartDailyQuiz creates (or resumes) today's adaptive quiz. A new quiz
// consumes one daily-quiz quota slot; resuming does not.
func (c *Coordinator) StartDailyQuiz(ctx context.Context, userID string) (*StartResult, error) {
	u, err := c.requireAssessed(ctx, userID)
	if err != nil {
		return nil, err
	}

	if res, err := c.resumeActive(ctx, userID, model.KindDailyQuiz, "", 0); res != nil || err != nil {
		return res, err
	}

	reservation, err := c.deps.Gate.Reserve(ctx, u, quota.FeatureDailyQuiz, "")
	if err != nil {
		return nil, err
	}

	_, cfg, err := c.deps.Gate.ConfigFor(ctx, u)
	if err != nil {
		reservation.Rollback(ctx)
		return nil, err
	}

	recovery := false
	if u.LearningPhase == model.PhaseExploitation {
		accs, err := c.deps.Sessions.RecentCompletedAccuracies(ctx, userID, model.KindDailyQuiz, cfg.RecoveryTrigger)
		if err != nil {
			reservation.Rollback(ctx)
			return nil, err
		}
		recovery = selection.NeedsRecovery(accs, cfg.RecoveryTrigger, u.RecoveryCooldown)
	}

	slate, err := c.deps.Selector.DailyQuiz(ctx, u, recovery, cfg.RecoveryTrigger)
	if err != nil {
		reservation.Rollback(ctx)
		return nil, err
	}

	res, err := c.create(ctx, u, model.KindDailyQuiz, "", "", recovery, u.CompletedQuizCount+1, slate)
	if err != nil || res.Resumed {
		// A peer won the create race; this attempt's slot goes back.
		reservation.Rollback(ctx)
	}
	return res, err
}

// StartChapterPractice creates (or resumes) a practice session in one
// chapter. Slate size comes from the tier config.
func (c *Coordinator) StartChapterPractice(ctx context.Context, userID, chapterKey string) (*StartResult, error) {
	if model.SubjectOfChapterKey(chapterKey) == "" {
		return nil, errs.E(errs.Validation, "BAD_CHAPTER", "malformed chapter key "+chapterKey)
	}
	u, err := c.requireAssessed(ctx, userID)
	if err != nil {
		return nil, err
	}

	_, cfg, err := c.deps.Gate.ConfigFor(ctx, u)
	if err != nil {
		return nil, err
	}
	size := cfg.Limits.PerChapterQuestions
	if size <= 0 {
		size = 10
	}

	// Resume enforces the current tier ceiling; a downgrade invalidates
	// the oversized session and a fresh one is cut below.
	if res, err := c.resumeActive(ctx, userID, model.KindChapterPractice, chapterKey, size); res != nil || err != nil {
		return res, err
	}

	reservation, err := c.deps.Gate.Reserve(ctx, u, quota.FeatureChapterPractice, model.SubjectOfChapterKey(chapterKey))
	if err != nil {
		return nil, err
	}

	slate, err := c.deps.Selector.ChapterPractice(ctx, u, chapterKey, size)
	if err != nil {
		reservation.Rollback(ctx)
		return nil, err
	}
	res, err := c.create(ctx, u, model.KindChapterPractice, chapterKey, "", false, 0, slate)
	if err != nil || res.Resumed {
		reservation.Rollback(ctx)
	}
	return res, err
}

// StartUnlockQuiz creates (or resumes) the five-question gate check for a
// chapter. Unlock quizzes are free; passing one is what grants practice
// access to the chapter.
func (c *Coordinator) StartUnlockQuiz(ctx context.Context, userID, chapterKey string) (*StartResult, error) {
	if model.SubjectOfChapterKey(chapterKey) == "" {
		return nil, errs.E(errs.Validation, "BAD_CHAPTER", "malformed chapter key "+chapterKey)
	}
	u, err := c.requireAssessed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if res, err := c.resumeActive(ctx, userID, model.KindUnlockQuiz, "", 0); res != nil || err != nil {
		return res, err
	}
	slate, err := c.deps.Selector.UnlockQuiz(ctx, u, chapterKey)
	if err != nil {
		return nil, err
	}
	return c.create(ctx, u, model.KindUnlockQuiz, chapterKey, "", false, 0, slate)
}

// StartSnapPractice creates a follow-up practice session after a snap
// solve. When the catalog cannot fill the slate and an assistant is
// configured, generated questions top it up.
func (c *Coordinator) StartSnapPractice(ctx context.Context, userID, chapterKey, bucket, problem string) (*StartResult, error) {
	if model.SubjectOfChapterKey(chapterKey) == "" {
		return nil, errs.E(errs.Validation, "BAD_CHAPTER", "malformed chapter key "+chapterKey)
	}
	u, err := c.deps.Users.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if res, err := c.resumeActive(ctx, userID, model.KindSnapPractice, "", 0); res != nil || err != nil {
		return res, err
	}

	slate, err := c.deps.Selector.SnapFollowup(ctx, u, chapterKey, bucket)
	if err != nil {
		return nil, err
	}
	if len(slate) < selection.SnapMaxQuestions && c.deps.Assistant != nil && problem != "" {
		slate, err = c.topUpGenerated(ctx, u, chapterKey, bucket, problem, slate)
		if err != nil {
			return nil, err
		}
	}
	if len(slate) == 0 {
		return nil, errs.E(errs.NotFound, "NO_QUESTIONS", "no follow-up questions available for "+chapterKey)
	}
	return c.create(ctx, u, model.KindSnapPractice, chapterKey, "", false, 0, slate)
}

func (c *Coordinator) topUpGenerated(ctx context.Context, u *store.User, chapterKey, bucket, problem string, slate []selection.Picked) ([]selection.Picked, error) {
	target := 0.0
	if st, ok := u.ThetaByChapter[chapterKey]; ok {
		target = st.Theta
	}
	switch bucket {
	case selection.SnapEasier:
		target -= 0.8
	case selection.SnapHarder:
		target += 0.8
	}

	need := selection.SnapMaxQuestions - len(slate)
	generated, err := c.deps.Assistant.Followups(ctx, chapterKey, problem, target, need)
	if err != nil {
		// Generation is best effort; a short catalog slate still serves.
		c.deps.Log.Warn("followup generation failed", zap.String("chapter", chapterKey), zap.Error(err))
		return slate, nil
	}
	if _, err := c.deps.Questions.UpsertBatch(ctx, generated); err != nil {
		return nil, err
	}
	for _, q := range generated {
		slate = append(slate, selection.Picked{Question: q, Rationale: selection.RationaleSnap})
	}
	return slate, nil
}

// StartMockTest creates (or resumes) a template-driven mock. Starts are
// rate limited per tier and draw from the monthly mock quota.
func (c *Coordinator) StartMockTest(ctx context.Context, userID, templateID string) (*StartResult, error) {
	tmpl, err := catalog.Template(templateID)
	if err != nil {
		return nil, err
	}
	u, err := c.requireAssessed(ctx, userID)
	if err != nil {
		return nil, err
	}

	if res, err := c.resumeActive(ctx, userID, model.KindMockTest, "", 0); res != nil || err != nil {
		return res, err
	}

	_, cfg, err := c.deps.Gate.ConfigFor(ctx, u)
	if err != nil {
		return nil, err
	}
	if interval := cfg.Limits.MockStartIntervalSec; interval > 0 {
		last, err := c.deps.Sessions.LastStartedAt(ctx, userID, model.KindMockTest)
		if err != nil {
			return nil, err
		}
		if last != nil && c.deps.Clock.Now().Sub(*last) < time.Duration(interval)*time.Second {
			return nil, errs.E(errs.StateConflict, "MOCK_START_TOO_SOON",
				"another mock test was started too recently")
		}
	}

	reservation, err := c.deps.Gate.Reserve(ctx, u, quota.FeatureMockTest, "")
	if err != nil {
		return nil, err
	}

	slate, err := c.deps.Selector.MockTest(ctx, u, tmpl)
	if err != nil {
		reservation.Rollback(ctx)
		return nil, err
	}
	res, err := c.create(ctx, u, model.KindMockTest, "", tmpl.ID, false, 0, slate)
	if err != nil || res.Resumed {
		reservation.Rollback(ctx)
	}
	return res, err
}

// Get returns a session with its positions, expiring it on touch first.
func (c *Coordinator) Get(ctx context.Context, userID, sessionID string) (*store.Session, []*store.SessionQuestion, error) {
	sess, err := c.deps.Sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	sess, err = c.expireOnTouch(ctx, sess)
	if err != nil {
		return nil, nil, err
	}
	questions, err := c.deps.Sessions.Questions(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return sess, questions, nil
}

// Abandon moves an in_progress session to abandoned. Terminal sessions
// are left untouched.
func (c *Coordinator) Abandon(ctx context.Context, userID, sessionID string) error {
	if _, err := c.deps.Sessions.Get(ctx, userID, sessionID); err != nil {
		return err
	}
	return c.deps.Sessions.MarkAbandoned(ctx, userID, sessionID)
}

// requireAssessed loads the user and rejects adaptive operations before
// the initial assessment is done.
func (c *Coordinator) requireAssessed(ctx context.Context, userID string) (*store.User, error) {
	u, err := c.deps.Users.Ensure(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.AssessmentStatus != model.AssessmentCompleted {
		return nil, errs.E(errs.StateConflict, "ASSESSMENT_REQUIRED",
			"complete the initial assessment first")
	}
	return u, nil
}

// resumeActive returns the user's live session of the kind, if any. An
// expired one is flipped and ignored; one whose slate no longer validates
// (maxQuestions > 0 caps the slate at the tier ceiling) is invalidated and
// ignored so the caller generates a replacement.
func (c *Coordinator) resumeActive(ctx context.Context, userID, kind, chapterKey string, maxQuestions int) (*StartResult, error) {
	active, err := c.deps.Sessions.Active(ctx, userID, kind, chapterKey)
	if err != nil || active == nil {
		return nil, err
	}
	active, err = c.expireOnTouch(ctx, active)
	if err != nil {
		if errs.Is(err, "SESSION_EXPIRED") {
			return nil, nil
		}
		return nil, err
	}
	questions, err := c.deps.Sessions.Questions(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	if reason := c.slateDefect(ctx, questions, maxQuestions); reason != "" {
		if err := c.deps.Sessions.MarkInvalidated(ctx, userID, active.ID, reason); err != nil {
			return nil, err
		}
		c.deps.Log.Warn("session invalidated on resume",
			zap.String("user", userID),
			zap.String("session", active.ID),
			zap.String("reason", reason))
		return nil, nil
	}
	return &StartResult{Session: active, Questions: questions, Resumed: true}, nil
}

// slateDefect re-validates a resumed session's slate against the current
// catalog and tier ceiling. An empty string means the slate is sound.
func (c *Coordinator) slateDefect(ctx context.Context, positions []*store.SessionQuestion, maxQuestions int) string {
	if maxQuestions > 0 && len(positions) > maxQuestions {
		return "over_tier_limit"
	}
	ids := make([]string, len(positions))
	for i, p := range positions {
		ids[i] = p.QuestionID
	}
	qmap, err := c.deps.Questions.GetMany(ctx, ids)
	if err != nil {
		// Catalog trouble is not the session's fault; resume as-is.
		return ""
	}
	for _, p := range positions {
		q, ok := qmap[p.QuestionID]
		if !ok {
			return "question_missing"
		}
		switch q.QuestionType {
		case model.QuestionNumerical:
			if q.AnswerValue == nil && q.AnswerRange == nil {
				return "missing_answer"
			}
		default:
			if len(q.Options) < 2 {
				return "bad_options"
			}
			if q.CorrectAnswer == "" {
				return "missing_answer"
			}
		}
	}
	return ""
}

// create writes the session and its slate, idempotently.
func (c *Coordinator) create(ctx context.Context, u *store.User, kind, chapterKey, templateID string, recovery bool, quizNumber int, slate []selection.Picked) (*StartResult, error) {
	now := c.deps.Clock.Now()
	expires := now.Add(sessionTTLs[kind])
	phase := u.LearningPhase
	if phase == "" {
		phase = model.PhaseExploration
	}

	sess := &store.Session{
		ID:             uuid.NewString(),
		UserID:         u.ID,
		Kind:           kind,
		ChapterKey:     chapterKey,
		TemplateID:     templateID,
		LearningPhase:  phase,
		IsRecoveryQuiz: recovery,
		QuizNumber:     quizNumber,
		QuestionsTotal: len(slate),
		ExpiresAt:      &expires,
	}
	positions := make([]*store.SessionQuestion, len(slate))
	for i, p := range slate {
		positions[i] = &store.SessionQuestion{
			SessionID:  sess.ID,
			UserID:     u.ID,
			QuestionID: p.Question.ID,
			Position:   i,
			ChapterKey: p.Question.ChapterKey,
			Rationale:  p.Rationale,
		}
	}

	var out *store.Session
	var existed bool
	err := store.Retry(ctx, func(ctx context.Context) error {
		var err error
		out, existed, err = c.deps.Sessions.CreateIfAbsent(ctx, sess, positions)
		return err
	})
	if err != nil {
		return nil, err
	}
	if existed {
		questions, err := c.deps.Sessions.Questions(ctx, out.ID)
		if err != nil {
			return nil, err
		}
		return &StartResult{Session: out, Questions: questions, Resumed: true}, nil
	}

	c.deps.Log.Info("session started",
		zap.String("user", u.ID),
		zap.String("session", out.ID),
		zap.String("kind", kind),
		zap.Bool("recovery", recovery),
		zap.Int("questions", len(positions)))
	questions, err := c.deps.Sessions.Questions(ctx, out.ID)
	if err != nil {
		return nil, err
	}
	return &StartResult{Session: out, Questions: questions}, nil
}

// expireOnTouch flips a stale in_progress session to expired and reports
// SESSION_EXPIRED; live sessions pass through.
func (c *Coordinator) expireOnTouch(ctx context.Context, sess *store.Session) (*store.Session, error) {
	if sess.Status != model.StatusInProgress || sess.ExpiresAt == nil {
		return sess, nil
	}
	if !c.deps.Clock.Now().After(*sess.ExpiresAt) {
		return sess, nil
	}
	if err := c.deps.Sessions.MarkExpired(ctx, sess.UserID, sess.ID); err != nil {
		return nil, err
	}
	return nil, errs.E(errs.StateConflict, "SESSION_EXPIRED", "session "+sess.ID+" has expired")
}
