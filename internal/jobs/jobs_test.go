package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/snapshot"
	"github.com/jeevibe/engine/internal/store"
)

type fakeUsers struct {
	store.UserRepo
	mu      sync.Mutex
	users   []*store.User
	billing map[string]*model.Trial
}

func (f *fakeUsers) Page(_ context.Context, afterID string, limit int) ([]*store.User, error) {
	var out []*store.User
	for _, u := range f.users {
		if u.ID > afterID {
			out = append(out, u)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeUsers) SaveBilling(_ context.Context, id string, _ *model.Subscription, trial *model.Trial) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.billing == nil {
		f.billing = map[string]*model.Trial{}
	}
	f.billing[id] = trial
	return nil
}

type fakeSnapshots struct {
	store.SnapshotRepo
	mu     sync.Mutex
	weekly map[string]*store.Snapshot
}

func (f *fakeSnapshots) UpsertWeekly(_ context.Context, s *store.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.weekly == nil {
		f.weekly = map[string]*store.Snapshot{}
	}
	f.weekly[s.UserID+"|"+s.QuizID] = s
	return nil
}

type fakeQuestions struct {
	store.QuestionRepo
	keys      []string
	refreshed int
}

func (f *fakeQuestions) ChapterKeys(_ context.Context) ([]string, error) {
	return f.keys, nil
}

func (f *fakeQuestions) RefreshStats(_ context.Context) (int, error) {
	f.refreshed++
	return 42, nil
}

type fakeTiers struct {
	store.TierRepo
	missing map[string]bool
}

func (f *fakeTiers) Get(_ context.Context, name string) (*store.TierConfig, error) {
	if f.missing[name] {
		return nil, errs.E(errs.NotFound, "TIER_NOT_FOUND", name)
	}
	return &store.TierConfig{Name: name}, nil
}

type recordingMailer struct {
	mu    sync.Mutex
	sends []string
}

func (m *recordingMailer) Send(_ context.Context, userID, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, userID)
	return nil
}

func assessed(id string) *store.User {
	return &store.User{ID: id, AssessmentStatus: model.AssessmentCompleted}
}

func newRunner(users *fakeUsers, questions *fakeQuestions, tiers *fakeTiers, snaps *fakeSnapshots, mailer Mailer) (*Runner, clock.Fixed) {
	clk := clock.Fixed{T: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)}
	log := zap.NewNop()
	svc := snapshot.NewService(snaps, clk, log)
	return NewRunner(users, questions, tiers, svc, mailer, clk, log), clk
}

func TestRun_UnknownJob(t *testing.T) {
	r, _ := newRunner(&fakeUsers{}, &fakeQuestions{}, &fakeTiers{}, &fakeSnapshots{}, nil)
	_, err := r.Run(context.Background(), "defrag")
	require.Error(t, err)
	require.Equal(t, "JOB_NOT_FOUND", errs.CodeOf(err))
}

func TestWeeklySnapshots_SkipsUnassessedAndOverwrites(t *testing.T) {
	users := &fakeUsers{users: []*store.User{
		assessed("u1"),
		{ID: "u2", AssessmentStatus: model.AssessmentNotStarted},
		assessed("u3"),
	}}
	snaps := &fakeSnapshots{}
	r, _ := newRunner(users, &fakeQuestions{}, &fakeTiers{}, snaps, nil)

	res, err := r.Run(context.Background(), "weekly_snapshots")
	require.NoError(t, err)
	require.Equal(t, 3, res.Processed)
	require.Equal(t, 0, res.Errors)
	require.Len(t, snaps.weekly, 2)

	// A rerun lands on the same week keys.
	_, err = r.Run(context.Background(), "weekly_snapshots")
	require.NoError(t, err)
	require.Len(t, snaps.weekly, 2)
}

func TestDailyEmail_OnlyAssessedUsers(t *testing.T) {
	users := &fakeUsers{users: []*store.User{
		assessed("u1"),
		{ID: "u2"},
		assessed("u3"),
	}}
	mailer := &recordingMailer{}
	r, _ := newRunner(users, &fakeQuestions{}, &fakeTiers{}, &fakeSnapshots{}, mailer)

	_, err := r.Run(context.Background(), "daily_email")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"u1", "u3"}, mailer.sends)
}

func TestTrialExpiry(t *testing.T) {
	now := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	users := &fakeUsers{users: []*store.User{
		{ID: "u1", Trial: &model.Trial{ExpiresAt: &past}},
		{ID: "u2", Trial: &model.Trial{ExpiresAt: &future}},
		{ID: "u3", Trial: &model.Trial{ExpiresAt: &past, Consumed: true}},
		{ID: "u4"},
	}}
	r, _ := newRunner(users, &fakeQuestions{}, &fakeTiers{}, &fakeSnapshots{}, nil)

	res, err := r.Run(context.Background(), "trial_expiry")
	require.NoError(t, err)
	require.Equal(t, 1, res.Processed)
	require.Len(t, users.billing, 1)
	require.True(t, users.billing["u1"].Consumed)
}

func TestAlertChecks(t *testing.T) {
	questions := &fakeQuestions{keys: []string{"physics_optics", "chemistry_bonding"}}
	tiers := &fakeTiers{missing: map[string]bool{quota.TierTrial: true}}
	r, _ := newRunner(&fakeUsers{}, questions, tiers, &fakeSnapshots{}, nil)

	res, err := r.Run(context.Background(), "alert_checks")
	require.NoError(t, err)
	// Mathematics has no chapters and the trial tier is missing.
	require.Equal(t, 2, res.Processed)
}

func TestQuestionStatRefresh(t *testing.T) {
	questions := &fakeQuestions{}
	r, _ := newRunner(&fakeUsers{}, questions, &fakeTiers{}, &fakeSnapshots{}, nil)

	res, err := r.Run(context.Background(), "question_stat_refresh")
	require.NoError(t, err)
	require.Equal(t, 42, res.Processed)
	require.Equal(t, 1, questions.refreshed)
}

func TestNames(t *testing.T) {
	r, _ := newRunner(&fakeUsers{}, &fakeQuestions{}, &fakeTiers{}, &fakeSnapshots{}, nil)
	require.Equal(t, []string{
		"alert_checks", "daily_email", "question_stat_refresh",
		"trial_expiry", "weekly_email", "weekly_snapshots",
	}, r.Names())
}
