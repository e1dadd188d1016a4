package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/selection"
	"github.com/jeevibe/engine/internal/spacedrep"
	"github.com/jeevibe/engine/internal/store"
)

// ---- in-memory fakes ----

type memUsers struct {
	store.UserRepo
	mu    sync.Mutex
	users map[string]*store.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*store.User{}}
}

func (m *memUsers) Ensure(_ context.Context, id string) (*store.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		u = &store.User{
			ID:               id,
			AssessmentStatus: model.AssessmentNotStarted,
			LearningPhase:    model.PhaseExploration,
			ThetaByChapter:   map[string]model.ChapterState{},
		}
		m.users[id] = u
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) SetAssessmentStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id].AssessmentStatus = status
	return nil
}

func (m *memUsers) ApplyAssessment(_ context.Context, id string, w store.AssessmentWrite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := m.users[id]
	u.ThetaByChapter = w.ThetaByChapter
	u.ThetaBySubject = w.ThetaBySubject
	u.OverallTheta = w.OverallTheta
	u.OverallPercentile = w.OverallPercentile
	u.AssessmentBaseline = w.Baseline
	u.AssessmentStatus = model.AssessmentCompleted
	u.AssessmentCompletedAt = &w.CompletedAt
	u.TotalQuestionsAttempted += w.QuestionsAnswered
	u.TotalQuestionsCorrect += w.QuestionsCorrect
	u.TotalTimeSpentMinutes += w.TimeSpentMinutes
	return nil
}

type memSessions struct {
	store.SessionRepo
	mu         sync.Mutex
	users      *memUsers
	sessions   map[string]*store.Session
	positions  map[string][]*store.SessionQuestion
	responses  map[string][]*store.Response
	accuracies []float64
	lastMock   *time.Time
}

func newMemSessions(users *memUsers) *memSessions {
	return &memSessions{
		users:     users,
		sessions:  map[string]*store.Session{},
		positions: map[string][]*store.SessionQuestion{},
		responses: map[string][]*store.Response{},
	}
}

func (m *memSessions) Get(_ context.Context, userID, sessionID string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, errs.E(errs.NotFound, "SESSION_NOT_FOUND", "missing")
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) Active(_ context.Context, userID, kind, chapterKey string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		if s.UserID == userID && s.Kind == kind && s.Status == model.StatusInProgress {
			if chapterKey != "" && s.ChapterKey != chapterKey {
				continue
			}
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSessions) CreateIfAbsent(ctx context.Context, s *store.Session, questions []*store.SessionQuestion) (*store.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.sessions {
		if existing.UserID == s.UserID && existing.Kind == s.Kind && existing.Status == model.StatusInProgress {
			cp := *existing
			return &cp, true, nil
		}
	}
	s.Status = model.StatusInProgress
	s.CreatedAt = time.Now()
	m.sessions[s.ID] = s
	m.positions[s.ID] = questions
	return s, false, nil
}

func (m *memSessions) Questions(_ context.Context, sessionID string) ([]*store.SessionQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.positions[sessionID], nil
}

func (m *memSessions) BeginAnswer(_ context.Context, sessionID, questionID string, now time.Time, ttl time.Duration) (*store.BeginAnswerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.positions[sessionID] {
		if p.QuestionID != questionID {
			continue
		}
		if p.Answered {
			for _, r := range m.responses[sessionID] {
				if r.QuestionID == questionID {
					return &store.BeginAnswerResult{AlreadyAnswered: true, Existing: r}, nil
				}
			}
			return &store.BeginAnswerResult{AlreadyAnswered: true, Existing: &store.Response{QuestionID: questionID}}, nil
		}
		if p.AnsweringAt != nil && now.Sub(*p.AnsweringAt) < ttl {
			return nil, errs.E(errs.StateConflict, "ANSWER_IN_FLIGHT", "submission in flight")
		}
		p.AnsweringAt = &now
		return &store.BeginAnswerResult{Position: p}, nil
	}
	return nil, errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "not in session")
}

func (m *memSessions) ClearSentinel(_ context.Context, sessionID, questionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.positions[sessionID] {
		if p.QuestionID == questionID && !p.Answered {
			p.AnsweringAt = nil
		}
	}
	return nil
}

func (m *memSessions) CommitAnswer(_ context.Context, b *store.AnswerBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.positions[b.SessionID] {
		if p.QuestionID != b.QuestionID {
			continue
		}
		if p.Answered {
			return errs.E(errs.StateConflict, "ALREADY_ANSWERED", "answered by peer")
		}
		p.Answered = true
		p.StudentAnswer = b.StudentAnswer
		p.IsCorrect = b.IsCorrect
		p.ThetaDelta = b.ThetaDelta
	}
	s := m.sessions[b.SessionID]
	s.QuestionsAnswered++
	if b.IsCorrect {
		s.CorrectCount++
	}
	s.TotalTimeSeconds += b.TimeTakenSeconds
	if b.NewChapterState != nil {
		u := m.users.users[b.UserID]
		u.ThetaByChapter[b.ChapterKey] = *b.NewChapterState
	}
	r := b.Response
	m.responses[b.SessionID] = append(m.responses[b.SessionID], &r)
	return nil
}

func (m *memSessions) MarkCompleting(_ context.Context, userID, sessionID string) (*store.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok || s.UserID != userID {
		return nil, errs.E(errs.NotFound, "SESSION_NOT_FOUND", "missing")
	}
	switch s.Status {
	case model.StatusCompleted:
		return nil, errs.E(errs.StateConflict, "ALREADY_COMPLETED", "done")
	case model.StatusInProgress, model.StatusCompleting:
		s.Status = model.StatusCompleting
		cp := *s
		return &cp, nil
	default:
		return nil, errs.E(errs.StateConflict, "SESSION_"+s.Status, s.Status)
	}
}

func (m *memSessions) FinalizeCompletion(_ context.Context, userID, sessionID string, completedAt time.Time, build func(u *store.User) (*store.CompletionWrite, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users.users[userID]
	if !ok {
		return errs.E(errs.NotFound, "USER_NOT_FOUND", "missing")
	}
	w, err := build(u)
	if err != nil {
		return err
	}
	u.ThetaBySubject = w.ThetaBySubject
	u.OverallTheta = w.OverallTheta
	u.OverallPercentile = w.OverallPercentile
	u.SubtopicAccuracy = w.SubtopicAccuracy
	u.SubjectAccuracy = w.SubjectAccuracy
	u.TotalQuestionsAttempted += w.AddQuestionsAttempted
	u.TotalQuestionsCorrect += w.AddQuestionsCorrect
	u.TotalTimeSpentMinutes += w.AddTimeSpentMinutes
	u.CompletedQuizCount = w.CompletedQuizCount
	u.LearningPhase = w.LearningPhase
	u.CurrentDay = w.CurrentDay
	u.LowAccuracyStreak = w.LowAccuracyStreak
	u.RecoveryCooldown = w.RecoveryCooldown
	if w.ChapterPracticeStats != nil {
		u.ChapterPracticeStats = w.ChapterPracticeStats
	}
	for k, v := range w.ThetaByChapter {
		u.ThetaByChapter[k] = v
	}
	s := m.sessions[sessionID]
	s.Status = model.StatusCompleted
	s.CorrectCount = w.SessionCorrect
	s.QuestionsAnswered = w.SessionAnswered
	s.TotalTimeSeconds = w.SessionTotalTime
	s.CompletedAt = &completedAt
	return nil
}

func (m *memSessions) markStatus(sessionID, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok && !model.TerminalStatus(s.Status) {
		s.Status = status
	}
}

func (m *memSessions) MarkExpired(_ context.Context, _, sessionID string) error {
	m.markStatus(sessionID, model.StatusExpired)
	return nil
}

func (m *memSessions) MarkInvalidated(_ context.Context, _, sessionID, reason string) error {
	m.mu.Lock()
	if s, ok := m.sessions[sessionID]; ok {
		s.InvalidReason = reason
	}
	m.mu.Unlock()
	m.markStatus(sessionID, model.StatusInvalidated)
	return nil
}

func (m *memSessions) MarkAbandoned(_ context.Context, _, sessionID string) error {
	m.markStatus(sessionID, model.StatusAbandoned)
	return nil
}

func (m *memSessions) SaveMockAnswer(_ context.Context, sessionID, questionID, answer string, clear bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.positions[sessionID] {
		if p.QuestionID == questionID {
			if clear {
				p.StudentAnswer = ""
				return nil
			}
			p.StudentAnswer = answer
			return nil
		}
	}
	return errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "not in session")
}

func (m *memSessions) RecentQuestionIDs(_ context.Context, _ string, _ []string, _ int) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (m *memSessions) RecentCompletedAccuracies(_ context.Context, _, _ string, _ int) ([]float64, error) {
	return m.accuracies, nil
}

func (m *memSessions) LastStartedAt(_ context.Context, _, _ string) (*time.Time, error) {
	return m.lastMock, nil
}

type memResponses struct {
	store.ResponseRepo
	sessions *memSessions
}

func (m *memResponses) BySession(_ context.Context, sessionID string) ([]*store.Response, error) {
	m.sessions.mu.Lock()
	defer m.sessions.mu.Unlock()
	return m.sessions.responses[sessionID], nil
}

type memQuestions struct {
	store.QuestionRepo
	qs map[string]*store.Question
}

func (m *memQuestions) Get(_ context.Context, id string) (*store.Question, error) {
	q, ok := m.qs[id]
	if !ok {
		return nil, errs.E(errs.NotFound, "QUESTION_NOT_FOUND", id)
	}
	return q, nil
}

func (m *memQuestions) GetMany(_ context.Context, ids []string) (map[string]*store.Question, error) {
	out := map[string]*store.Question{}
	for _, id := range ids {
		if q, ok := m.qs[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (m *memQuestions) ByChapter(_ context.Context, key string) ([]*store.Question, error) {
	var out []*store.Question
	for _, q := range m.qs {
		if q.ChapterKey == key {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) ChapterKeys(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, q := range m.qs {
		if !seen[q.ChapterKey] {
			seen[q.ChapterKey] = true
			out = append(out, q.ChapterKey)
		}
	}
	return out, nil
}

func (m *memQuestions) Assessment(_ context.Context) ([]*store.Question, error) {
	var out []*store.Question
	for _, q := range m.qs {
		if q.IsAssessment {
			out = append(out, q)
		}
	}
	return out, nil
}

type memQuota struct {
	store.QuotaRepo
	mu       sync.Mutex
	counters map[string]*store.QuotaCounter
	reserves int
}

func newMemQuota() *memQuota { return &memQuota{counters: map[string]*store.QuotaCounter{}} }

func quotaKey(c store.QuotaCounter) string {
	return c.UserID + "|" + c.Feature + "|" + c.PeriodKey
}

func (m *memQuota) TryReserve(_ context.Context, c store.QuotaCounter) (*store.QuotaCounter, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := quotaKey(c)
	row, ok := m.counters[key]
	if !ok {
		c.Used = 1
		m.counters[key] = &c
		m.reserves++
		cp := c
		return &cp, true, nil
	}
	if row.Used >= c.Limit {
		cp := *row
		cp.Limit = c.Limit
		return &cp, false, nil
	}
	row.Used++
	m.reserves++
	cp := *row
	return &cp, true, nil
}

func (m *memQuota) Release(_ context.Context, userID, feature, periodKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := userID + "|" + feature + "|" + periodKey
	if row, ok := m.counters[key]; ok && row.Used > 0 {
		row.Used--
		m.reserves--
	}
	return nil
}

type memTiers struct {
	store.TierRepo
}

func (memTiers) Get(_ context.Context, name string) (*store.TierConfig, error) {
	for _, t := range quota.DefaultTiers() {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, errs.E(errs.NotFound, "TIER_NOT_FOUND", name)
}

type memReviews struct {
	mu      sync.Mutex
	entries map[string]*store.ReviewInterval
}

func newMemReviews() *memReviews { return &memReviews{entries: map[string]*store.ReviewInterval{}} }

func (m *memReviews) Get(_ context.Context, userID, questionID string) (*store.ReviewInterval, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[userID+"|"+questionID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, errs.E(errs.NotFound, "REVIEW_NOT_FOUND", "missing")
}

func (m *memReviews) Upsert(_ context.Context, r store.ReviewInterval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[r.UserID+"|"+r.QuestionID] = &r
	return nil
}

func (m *memReviews) Due(_ context.Context, _ string, _ time.Time, _ int) ([]*store.ReviewInterval, error) {
	return nil, nil
}

type memSnapshots struct {
	mu       sync.Mutex
	captured []model.QuizPerformance
}

func (m *memSnapshots) CaptureQuiz(_ context.Context, _ *store.User, _ *store.Session, perf model.QuizPerformance, _ []model.ChapterUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.captured = append(m.captured, perf)
	return nil
}

// ---- harness ----

type harness struct {
	coord     *Coordinator
	users     *memUsers
	sessions  *memSessions
	questions *memQuestions
	quotas    *memQuota
	reviews   *memReviews
	snaps     *memSnapshots
	clock     *clock.Fixed
}

func bank() map[string]*store.Question {
	chapters := []string{
		"physics_kinematics", "physics_optics", "physics_waves", "physics_thermodynamics",
		"chemistry_bonding", "chemistry_equilibrium", "chemistry_kinetics", "chemistry_polymers",
		"mathematics_calculus", "mathematics_algebra", "mathematics_vectors", "mathematics_probability",
	}
	out := map[string]*store.Question{}
	for _, ch := range chapters {
		for i := range 12 {
			id := fmt.Sprintf("%s_%03d", ch, i)
			q := &store.Question{
				ID:            id,
				Subject:       model.SubjectOfChapterKey(ch),
				ChapterKey:    ch,
				QuestionType:  model.QuestionMCQSingle,
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: "B",
				IsAssessment:  true,
				Payload:       map[string]any{"explanation": "worked solution"},
			}
			q.IRT.A = 1.2
			q.IRT.B = -2 + float64(i)/11*4
			q.IRT.C = 0.25
			out[id] = q
		}
	}
	return out
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	users := newMemUsers()
	sessions := newMemSessions(users)
	questions := &memQuestions{qs: bank()}
	quotas := newMemQuota()
	reviews := newMemReviews()
	snaps := &memSnapshots{}
	clk := &clock.Fixed{T: time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)}

	log := zap.NewNop()
	ix := catalog.NewIndex(questions, time.Hour, log)
	sched := spacedrep.NewScheduler(reviews, clk)
	sel := selection.New(ix, sched, sessions, log)
	gate := quota.NewGate(quotas, memTiers{}, clk, log)

	coord := NewCoordinator(Deps{
		Users:     users,
		Sessions:  sessions,
		Responses: &memResponses{sessions: sessions},
		Questions: questions,
		Selector:  sel,
		Reviews:   sched,
		Gate:      gate,
		Snapshots: snaps,
		Clock:     clk,
		Log:       log,
	})
	return &harness{
		coord: coord, users: users, sessions: sessions, questions: questions,
		quotas: quotas, reviews: reviews, snaps: snaps, clock: clk,
	}
}

func (h *harness) assessedUser(t *testing.T, id string) *store.User {
	t.Helper()
	ctx := context.Background()
	u, err := h.users.Ensure(ctx, id)
	require.NoError(t, err)
	h.users.mu.Lock()
	stored := h.users.users[id]
	stored.AssessmentStatus = model.AssessmentCompleted
	now := h.clock.T.Add(-48 * time.Hour)
	stored.AssessmentCompletedAt = &now
	for key := range map[string]bool{"physics_kinematics": true, "chemistry_bonding": true, "mathematics_calculus": true} {
		stored.ThetaByChapter[key] = model.ChapterState{Theta: 0, ConfidenceSE: 0.5, Attempts: 10, Correct: 5}
	}
	h.users.mu.Unlock()
	return u
}

// ---- tests ----

func TestStartDailyQuiz_RequiresAssessment(t *testing.T) {
	h := newHarness(t)
	_, err := h.coord.StartDailyQuiz(context.Background(), "u1")
	require.Error(t, err)
	require.Equal(t, "ASSESSMENT_REQUIRED", errs.CodeOf(err))
}

func TestStartDailyQuiz_CreatesAndResumes(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	require.False(t, res.Resumed)
	require.Len(t, res.Questions, selection.DailyQuizSize)
	require.Equal(t, 1, h.quotas.reserves)

	// Starting again resumes the live session and holds the counter flat.
	again, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	require.True(t, again.Resumed)
	require.Equal(t, res.Session.ID, again.Session.ID)
	require.Equal(t, 1, h.quotas.reserves)
}

func TestStartDailyQuiz_QuotaExhausted(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	// Free tier allows one daily quiz. Burn it, complete it, try again.
	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	_, err = h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)

	_, err = h.coord.StartDailyQuiz(ctx, "u1")
	require.Error(t, err)
	require.Equal(t, errs.QuotaExhausted, errs.KindOf(err))
}

func TestStartAssessment_FullSlate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.coord.StartAssessment(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, res.Questions, selection.AssessmentSize)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, model.AssessmentProcessing, u.AssessmentStatus)
}

func TestSubmitAnswer_GradesAndMovesTheta(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	qid := res.Questions[0].QuestionID

	out, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, qid, AnswerInput{Answer: "B", TimeSeconds: 30})
	require.NoError(t, err)
	require.True(t, out.Correct)
	require.False(t, out.Replayed)
	require.Equal(t, "worked solution", out.Explanation)
	require.NotZero(t, out.ThetaDelta)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	st := u.ThetaByChapter[out.ChapterKey]
	require.NotZero(t, st.Attempts)
}

func TestSubmitAnswer_ReplayReturnsStoredOutcome(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	qid := res.Questions[0].QuestionID

	first, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, qid, AnswerInput{Answer: "B", TimeSeconds: 30})
	require.NoError(t, err)

	second, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, qid, AnswerInput{Answer: "A", TimeSeconds: 5})
	require.NoError(t, err)
	require.True(t, second.Replayed)
	require.Equal(t, first.Correct, second.Correct)

	// The conflicting second answer must not double-count.
	sess, err := h.sessions.Get(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, sess.QuestionsAnswered)
}

func TestSubmitAnswer_MissEntersReviewLadder(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	qid := res.Questions[0].QuestionID

	out, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, qid, AnswerInput{Answer: "A", TimeSeconds: 20})
	require.NoError(t, err)
	require.False(t, out.Correct)

	entry, err := h.reviews.Get(ctx, "u1", qid)
	require.NoError(t, err)
	require.Equal(t, 1, entry.IntervalDays)
}

func TestSubmitAnswer_MockRejected(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartMockTest(ctx, "u1", "jee_main_mini")
	require.NoError(t, err)

	_, err = h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, res.Questions[0].QuestionID, AnswerInput{Answer: "B"})
	require.Error(t, err)
	require.Equal(t, "MOCK_SAVE_ONLY", errs.CodeOf(err))
}

func TestSubmitAnswer_ExpiredSession(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)

	h.clock.T = h.clock.T.Add(25 * time.Hour)
	_, err = h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, res.Questions[0].QuestionID, AnswerInput{Answer: "B"})
	require.Error(t, err)
	require.Equal(t, "SESSION_EXPIRED", errs.CodeOf(err))

	sess, err := h.sessions.Get(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusExpired, sess.Status)
}

func TestComplete_DailyQuizRollsUpAndSnapshots(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	for i, p := range res.Questions {
		answer := "B"
		if i >= 8 {
			answer = "A" // two misses, 80% accuracy
		}
		_, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, p.QuestionID, AnswerInput{Answer: answer, TimeSeconds: 30})
		require.NoError(t, err)
	}

	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 10, sum.Answered)
	require.Equal(t, 8, sum.Correct)
	require.InDelta(t, 0.8, sum.Accuracy, 1e-9)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, u.CompletedQuizCount)
	require.Equal(t, 0, u.LowAccuracyStreak)
	require.Equal(t, 10, u.TotalQuestionsAttempted)
	require.Equal(t, 3, u.CurrentDay)
	require.NotEmpty(t, u.ThetaBySubject)

	require.Len(t, h.snaps.captured, 1)
	require.Equal(t, res.Session.ID, h.snaps.captured[0].QuizID)
}

func TestComplete_LowAccuracyBuildsStreak(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	for _, p := range res.Questions {
		_, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, p.QuestionID, AnswerInput{Answer: "A", TimeSeconds: 10})
		require.NoError(t, err)
	}
	_, err = h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, u.LowAccuracyStreak)
}

func TestComplete_SecondCallConflicts(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	_, err = h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, res.Questions[0].QuestionID, AnswerInput{Answer: "B", TimeSeconds: 10})
	require.NoError(t, err)

	_, err = h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	quizzes := u.CompletedQuizCount

	_, err = h.coord.Complete(ctx, "u1", res.Session.ID)
	require.Error(t, err)
	require.Equal(t, "ALREADY_COMPLETED", errs.CodeOf(err))
	require.Equal(t, errs.StateConflict, errs.KindOf(err))

	// The replay mutated nothing: quiz count and snapshot count are flat.
	u, err = h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, quizzes, u.CompletedQuizCount)
	require.Len(t, h.snaps.captured, 1)
}

func TestComplete_UnlockPassAndFail(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartUnlockQuiz(ctx, "u1", "physics_waves")
	require.NoError(t, err)
	require.Len(t, res.Questions, selection.UnlockQuizSize)

	for i, p := range res.Questions {
		answer := "B"
		if i >= 3 {
			answer = "A" // exactly at the pass threshold
		}
		_, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, p.QuestionID, AnswerInput{Answer: answer, TimeSeconds: 15})
		require.NoError(t, err)
	}
	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, sum.UnlockPassed)
	require.True(t, *sum.UnlockPassed)

	// Unlock answers never touch the chapter ledger.
	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.NotContains(t, u.ThetaByChapter, "physics_waves")
}

func TestComplete_AssessmentBuildsLedger(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.coord.StartAssessment(ctx, "u1")
	require.NoError(t, err)
	for i, p := range res.Questions {
		answer := "B"
		if i%3 == 0 {
			answer = "A"
		}
		_, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, p.QuestionID, AnswerInput{Answer: answer, TimeSeconds: 40})
		require.NoError(t, err)
	}

	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, selection.AssessmentSize, sum.Answered)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, model.AssessmentCompleted, u.AssessmentStatus)
	require.NotEmpty(t, u.ThetaByChapter)
	require.NotEmpty(t, u.AssessmentBaseline)
	require.Equal(t, selection.AssessmentSize, u.TotalQuestionsAttempted)
}

func TestMock_SaveSubmitGradesAtCompletion(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartMockTest(ctx, "u1", "jee_main_mini")
	require.NoError(t, err)
	require.Len(t, res.Questions, 30)

	for i, p := range res.Questions {
		if i >= 20 {
			break // ten left unanswered
		}
		answer := "B"
		if i >= 15 {
			answer = "C"
		}
		require.NoError(t, h.coord.SaveMockAnswer(ctx, "u1", res.Session.ID, p.QuestionID, answer))
	}

	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 20, sum.Answered)
	require.Equal(t, 15, sum.Correct)

	// Mocks advance lifetime counters but never the ledger rollup.
	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 20, u.TotalQuestionsAttempted)
	require.Equal(t, 0, u.CompletedQuizCount)
}

func TestMock_StartRateLimited(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	recent := h.clock.T.Add(-time.Minute)
	h.sessions.lastMock = &recent

	_, err := h.coord.StartMockTest(ctx, "u1", "jee_main_mini")
	require.Error(t, err)
	require.Equal(t, "MOCK_START_TOO_SOON", errs.CodeOf(err))
}

func TestAbandon(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartDailyQuiz(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, h.coord.Abandon(ctx, "u1", res.Session.ID))

	sess, err := h.sessions.Get(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusAbandoned, sess.Status)
}

func TestResume_InvalidatesBrokenSlate(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	first, err := h.coord.StartUnlockQuiz(ctx, "u1", "physics_waves")
	require.NoError(t, err)

	// The catalog later drops this question's options below the MCQ minimum.
	broken := h.questions.qs[first.Questions[0].QuestionID]
	saved := broken.Options
	broken.Options = []string{"A"}

	second, err := h.coord.StartUnlockQuiz(ctx, "u1", "physics_waves")
	require.NoError(t, err)
	require.False(t, second.Resumed)
	require.NotEqual(t, first.Session.ID, second.Session.ID)

	old, err := h.sessions.Get(ctx, "u1", first.Session.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusInvalidated, old.Status)
	require.Equal(t, "bad_options", old.InvalidReason)
	broken.Options = saved
}

func TestComplete_SnapFoldsThetaAtCompletion(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartSnapPractice(ctx, "u1", "physics_waves", "", "")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Questions), 2)

	// One hit, one miss. Neither touches the chapter ledger at submit time.
	first, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, res.Questions[0].QuestionID, AnswerInput{Answer: "B", TimeSeconds: 20})
	require.NoError(t, err)
	require.True(t, first.Correct)
	require.Zero(t, first.ThetaDelta)

	second, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, res.Questions[1].QuestionID, AnswerInput{Answer: "A", TimeSeconds: 20})
	require.NoError(t, err)
	require.False(t, second.Correct)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Zero(t, u.ThetaByChapter["physics_waves"].Attempts)

	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Answered)
	require.Equal(t, 1, sum.Correct)

	// With a correct answer in the session the whole slate folds in,
	// the miss included.
	u, err = h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	st := u.ThetaByChapter["physics_waves"]
	require.Equal(t, 2, st.Attempts)
	require.Equal(t, 1, st.Correct)
	require.InDelta(t, 0.5, st.Accuracy, 1e-9)
}

func TestComplete_SnapAllWrongLeavesThetaAlone(t *testing.T) {
	h := newHarness(t)
	h.assessedUser(t, "u1")
	ctx := context.Background()

	res, err := h.coord.StartSnapPractice(ctx, "u1", "physics_waves", "", "")
	require.NoError(t, err)

	for _, p := range res.Questions {
		out, err := h.coord.SubmitAnswer(ctx, "u1", res.Session.ID, p.QuestionID, AnswerInput{Answer: "A", TimeSeconds: 10})
		require.NoError(t, err)
		require.False(t, out.Correct)
	}

	before, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	theta := before.OverallTheta

	sum, err := h.coord.Complete(ctx, "u1", res.Session.ID)
	require.NoError(t, err)
	require.Zero(t, sum.Correct)

	u, err := h.users.Ensure(ctx, "u1")
	require.NoError(t, err)
	require.Zero(t, u.ThetaByChapter["physics_waves"].Attempts)
	require.Equal(t, theta, u.OverallTheta)
}
