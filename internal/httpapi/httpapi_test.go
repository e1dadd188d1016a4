package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/jobs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/session"
	"github.com/jeevibe/engine/internal/snapshot"
	"github.com/jeevibe/engine/internal/store"
)

// fakeSessions returns canned coordinator results.
type fakeSessions struct {
	start  *session.StartResult
	answer *session.AnswerResult
	done   *session.CompletionSummary
	err    error
}

func (f *fakeSessions) StartAssessment(context.Context, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) StartDailyQuiz(context.Context, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) StartChapterPractice(context.Context, string, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) StartUnlockQuiz(context.Context, string, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) StartSnapPractice(context.Context, string, string, string, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) StartMockTest(context.Context, string, string) (*session.StartResult, error) {
	return f.start, f.err
}
func (f *fakeSessions) SubmitAnswer(context.Context, string, string, string, session.AnswerInput) (*session.AnswerResult, error) {
	return f.answer, f.err
}
func (f *fakeSessions) SaveMockAnswer(context.Context, string, string, string, string) error {
	return f.err
}
func (f *fakeSessions) Complete(context.Context, string, string) (*session.CompletionSummary, error) {
	return f.done, f.err
}
func (f *fakeSessions) Abandon(context.Context, string, string) error { return f.err }

type fakeUsers struct {
	store.UserRepo
	user *store.User
}

func (f *fakeUsers) Ensure(_ context.Context, id string) (*store.User, error) {
	if f.user != nil {
		return f.user, nil
	}
	return &store.User{ID: id, AssessmentStatus: model.AssessmentCompleted}, nil
}

func (f *fakeUsers) Page(context.Context, string, int) ([]*store.User, error) { return nil, nil }

type fakeQuestions struct {
	store.QuestionRepo
	qs map[string]*store.Question
}

func (f *fakeQuestions) GetMany(_ context.Context, ids []string) (map[string]*store.Question, error) {
	out := map[string]*store.Question{}
	for _, id := range ids {
		if q, ok := f.qs[id]; ok {
			out[id] = q
		}
	}
	return out, nil
}

func (f *fakeQuestions) ChapterKeys(_ context.Context) ([]string, error) {
	var out []string
	seen := map[string]bool{}
	for _, q := range f.qs {
		if !seen[q.ChapterKey] {
			seen[q.ChapterKey] = true
			out = append(out, q.ChapterKey)
		}
	}
	return out, nil
}

func (f *fakeQuestions) RefreshStats(context.Context) (int, error) { return 7, nil }

type fakeTiers struct {
	store.TierRepo
	upserted *store.TierConfig
}

func (f *fakeTiers) Get(_ context.Context, name string) (*store.TierConfig, error) {
	for _, t := range quota.DefaultTiers() {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, errs.E(errs.NotFound, "TIER_NOT_FOUND", name)
}

func (f *fakeTiers) All(context.Context) ([]*store.TierConfig, error) {
	return quota.DefaultTiers(), nil
}

func (f *fakeTiers) Upsert(_ context.Context, cfg *store.TierConfig) error {
	f.upserted = cfg
	return nil
}

type fakeQuota struct {
	store.QuotaRepo
}

func (fakeQuota) TryReserve(_ context.Context, c store.QuotaCounter) (*store.QuotaCounter, bool, error) {
	c.Used = 1
	return &c, true, nil
}

func (fakeQuota) ForUser(context.Context, string, map[string]string) ([]*store.QuotaCounter, error) {
	return nil, nil
}

type fakeSnapshotRepo struct {
	store.SnapshotRepo
}

func (fakeSnapshotRepo) Timeline(context.Context, string, int, time.Time) ([]*store.Snapshot, error) {
	return nil, nil
}

func sampleQuestion() *store.Question {
	return &store.Question{
		ID:            "physics_optics_001",
		Subject:       "physics",
		ChapterKey:    "physics_optics",
		QuestionType:  model.QuestionMCQSingle,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "B",
		Payload:       map[string]any{"question_text": "What is the focal length?", "explanation": "not for clients"},
	}
}

func sampleStart() *session.StartResult {
	q := sampleQuestion()
	expires := time.Now().Add(24 * time.Hour)
	return &session.StartResult{
		Session: &store.Session{
			ID:             "sess-1",
			Kind:           model.KindDailyQuiz,
			Status:         model.StatusInProgress,
			QuestionsTotal: 1,
			ExpiresAt:      &expires,
		},
		Questions: []*store.SessionQuestion{
			{SessionID: "sess-1", QuestionID: q.ID, Position: 0, ChapterKey: q.ChapterKey, Rationale: "exploration"},
		},
	}
}

func newTestServer(t *testing.T, sessions Sessions) *Server {
	t.Helper()
	log := zap.NewNop()
	q := sampleQuestion()
	questions := &fakeQuestions{qs: map[string]*store.Question{q.ID: q}}
	users := &fakeUsers{}
	tiers := &fakeTiers{}
	clk := clock.Fixed{T: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)}
	gate := quota.NewGate(fakeQuota{}, tiers, clk, log)
	snaps := snapshot.NewService(fakeSnapshotRepo{}, clk, log)
	runner := jobs.NewRunner(users, questions, tiers, snaps, nil, clk, log)
	ix := catalog.NewIndex(questions, time.Hour, log)
	importer, err := catalog.NewImporter(questions)
	require.NoError(t, err)

	return NewServer(
		Config{CronSecret: "topsecret", AdminUIDs: []string{"admin-1"}},
		sessions, users, questions, tiers, snaps, gate, nil, runner, importer, ix, clk, log,
	)
}

func do(t *testing.T, srv *Server, method, path, user, body string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestIdentityRequired(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})
	w, env := do(t, srv, http.MethodGet, "/daily-quiz/generate", "", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, env.Success)
	require.Equal(t, "MISSING_IDENTITY", env.Error.Code)
	require.NotEmpty(t, env.RequestID)
}

func TestErrorKindMapsToStatus(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{
		err: errs.E(errs.QuotaExhausted, "QUOTA_EXHAUSTED", "daily quiz limit reached"),
	})
	w, env := do(t, srv, http.MethodGet, "/daily-quiz/generate", "u1", "", nil)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	require.Equal(t, "QUOTA_EXHAUSTED", env.Error.Code)
}

func TestDailyQuizGenerate_SanitizesQuestions(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{start: sampleStart()})
	w, env := do(t, srv, http.MethodGet, "/daily-quiz/generate", "u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	raw := w.Body.String()
	require.Contains(t, raw, "What is the focal length?")
	require.Contains(t, raw, `"source":"database"`)
	require.NotContains(t, raw, "correct_answer")
	require.NotContains(t, raw, "not for clients")
}

func TestJobsEndpointAuth(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})

	w, env := do(t, srv, http.MethodPost, "/jobs/question_stat_refresh", "", "", map[string]string{
		"Authorization": "Bearer wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "BAD_CRON_SECRET", env.Error.Code)

	w, env = do(t, srv, http.MethodPost, "/jobs/question_stat_refresh", "", "", map[string]string{
		"Authorization": "Bearer topsecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
}

func TestAdminOnly(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})

	w, env := do(t, srv, http.MethodGet, "/admin/tiers", "u1", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "ADMIN_ONLY", env.Error.Code)

	w, _ = do(t, srv, http.MethodGet, "/admin/tiers", "admin-1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubscriptionStatus(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})
	w, env := do(t, srv, http.MethodGet, "/subscriptions/status", "u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	data, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.Contains(t, string(data), `"tier":"free"`)
	require.Contains(t, string(data), "usage")
}

func TestWeeklyActivity_WindowEndsAtClock(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})
	w, env := do(t, srv, http.MethodGet, "/analytics/weekly-activity", "u1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var data struct {
		Days []struct {
			Date    string `json:"date"`
			Quizzes int    `json:"quizzes"`
		} `json:"days"`
	}
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))

	// Seven IST days ending on the server clock's date, not wall time.
	require.Len(t, data.Days, 7)
	require.Equal(t, "2026-08-18", data.Days[0].Date)
	require.Equal(t, "2026-08-24", data.Days[6].Date)
}

func TestSnapSolve_AIDisabled(t *testing.T) {
	srv := newTestServer(t, &fakeSessions{})
	w, env := do(t, srv, http.MethodPost, "/snap-practice/questions", "u1", `{"chapter_key":"physics_optics"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "BAD_REQUEST", env.Error.Code)

	w, env = do(t, srv, http.MethodPost, "/snap-practice/solve", "u1", `{"problem":"find v"}`, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "AI_DISABLED", env.Error.Code)
}
