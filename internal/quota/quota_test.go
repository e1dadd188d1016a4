package quota

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, clock.IST)

func ptrTime(t time.Time) *time.Time { return &t }

func TestResolveTier(t *testing.T) {
	future := ptrTime(now.AddDate(0, 1, 0))
	past := ptrTime(now.AddDate(0, -1, 0))

	cases := []struct {
		name string
		user store.User
		want string
	}{
		{"bare user", store.User{}, TierFree},
		{"active subscription", store.User{Subscription: &model.Subscription{Status: "active", ExpiresAt: future}}, TierPaid},
		{"expired subscription", store.User{Subscription: &model.Subscription{Status: "active", ExpiresAt: past}}, TierFree},
		{"cancelled subscription", store.User{Subscription: &model.Subscription{Status: "cancelled", ExpiresAt: future}}, TierFree},
		{"live trial", store.User{Trial: &model.Trial{ExpiresAt: future}}, TierTrial},
		{"consumed trial", store.User{Trial: &model.Trial{ExpiresAt: future, Consumed: true}}, TierFree},
		{"expired trial", store.User{Trial: &model.Trial{ExpiresAt: past}}, TierFree},
		{"admin override", store.User{TierOverride: TierPaid}, TierPaid},
		{
			"subscription beats trial and override",
			store.User{
				Subscription: &model.Subscription{Status: "active", ExpiresAt: future},
				Trial:        &model.Trial{ExpiresAt: future},
				TierOverride: TierFree,
			},
			TierPaid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveTier(&tc.user, now); got != tc.want {
				t.Errorf("ResolveTier = %q, want %q", got, tc.want)
			}
		})
	}
}

type fakeQuotaRepo struct {
	counters map[string]*store.QuotaCounter
	released int
}

func (f *fakeQuotaRepo) key(userID, feature, period string) string {
	return userID + "/" + feature + "/" + period
}

func (f *fakeQuotaRepo) Get(_ context.Context, userID, feature, period string) (*store.QuotaCounter, error) {
	c, ok := f.counters[f.key(userID, feature, period)]
	if !ok {
		return nil, errs.E(errs.NotFound, "QUOTA_NOT_FOUND", "missing")
	}
	return c, nil
}

func (f *fakeQuotaRepo) TryReserve(_ context.Context, c store.QuotaCounter) (*store.QuotaCounter, bool, error) {
	if f.counters == nil {
		f.counters = make(map[string]*store.QuotaCounter)
	}
	k := f.key(c.UserID, c.Feature, c.PeriodKey)
	cur, ok := f.counters[k]
	if !ok {
		cc := c
		cc.Used = 1
		f.counters[k] = &cc
		return &cc, true, nil
	}
	if cur.Used >= c.Limit {
		return cur, false, nil
	}
	cur.Used++
	return cur, true, nil
}

func (f *fakeQuotaRepo) Release(_ context.Context, userID, feature, period string) error {
	f.released++
	if c, ok := f.counters[f.key(userID, feature, period)]; ok && c.Used > 0 {
		c.Used--
	}
	return nil
}

func (f *fakeQuotaRepo) ForUser(_ context.Context, userID string, periodKeys map[string]string) ([]*store.QuotaCounter, error) {
	var out []*store.QuotaCounter
	for _, c := range f.counters {
		if c.UserID == userID && periodKeys[c.Feature] == c.PeriodKey {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeTierRepo struct {
	gets int
}

func (f *fakeTierRepo) Get(_ context.Context, name string) (*store.TierConfig, error) {
	f.gets++
	for _, cfg := range DefaultTiers() {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return nil, errs.E(errs.NotFound, "TIER_NOT_FOUND", name)
}

func (f *fakeTierRepo) All(_ context.Context) ([]*store.TierConfig, error) {
	return DefaultTiers(), nil
}

func (f *fakeTierRepo) Upsert(_ context.Context, _ *store.TierConfig) error { return nil }

func newGate(repo *fakeQuotaRepo, tiers *fakeTierRepo) *Gate {
	return NewGate(repo, tiers, clock.Fixed{T: now}, zap.NewNop())
}

func TestReserve_ExhaustsAtLimit(t *testing.T) {
	repo := &fakeQuotaRepo{}
	g := newGate(repo, &fakeTierRepo{})
	u := &store.User{ID: "u1"}
	ctx := context.Background()

	// Free tier allows one daily quiz per day.
	if _, err := g.Reserve(ctx, u, FeatureDailyQuiz, ""); err != nil {
		t.Fatalf("first Reserve: %v", err)
	}
	_, err := g.Reserve(ctx, u, FeatureDailyQuiz, "")
	if errs.KindOf(err) != errs.QuotaExhausted {
		t.Fatalf("second Reserve = %v, want QUOTA_EXHAUSTED", err)
	}
}

func TestReserve_UnlimitedSkipsCounter(t *testing.T) {
	repo := &fakeQuotaRepo{}
	g := newGate(repo, &fakeTierRepo{})
	u := &store.User{ID: "u1", TierOverride: TierPaid}
	ctx := context.Background()

	for range 5 {
		res, err := g.Reserve(ctx, u, FeatureDailyQuiz, "")
		if err != nil {
			t.Fatalf("Reserve: %v", err)
		}
		if res.Limit != Unlimited {
			t.Fatalf("limit = %d, want unlimited", res.Limit)
		}
	}
	if len(repo.counters) != 0 {
		t.Errorf("unlimited reservations wrote %d counters, want 0", len(repo.counters))
	}
}

func TestReserve_RollbackReturnsSlot(t *testing.T) {
	repo := &fakeQuotaRepo{}
	g := newGate(repo, &fakeTierRepo{})
	u := &store.User{ID: "u1"}
	ctx := context.Background()

	res, err := g.Reserve(ctx, u, FeatureDailyQuiz, "")
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	res.Rollback(ctx)
	if repo.released != 1 {
		t.Fatalf("rollback released %d slots, want 1", repo.released)
	}

	// The slot is usable again.
	if _, err := g.Reserve(ctx, u, FeatureDailyQuiz, ""); err != nil {
		t.Errorf("Reserve after rollback: %v", err)
	}
}

func TestReserve_ChapterPracticeWeeklyPerSubject(t *testing.T) {
	repo := &fakeQuotaRepo{}
	g := newGate(repo, &fakeTierRepo{})
	u := &store.User{ID: "u1"}
	ctx := context.Background()

	res, err := g.Reserve(ctx, u, FeatureChapterPractice, model.SubjectPhysics)
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if res.Feature != "chapter_practice:physics" {
		t.Errorf("counter key = %q, want subject-qualified", res.Feature)
	}
	if res.PeriodKey != clock.WeekKey(now) {
		t.Errorf("period = %q, want ISO week %q", res.PeriodKey, clock.WeekKey(now))
	}

	// A different subject draws from its own counter.
	if _, err := g.Reserve(ctx, u, FeatureChapterPractice, model.SubjectChemistry); err != nil {
		t.Errorf("Reserve other subject: %v", err)
	}
}

func TestTierConfig_Cached(t *testing.T) {
	tiers := &fakeTierRepo{}
	g := newGate(&fakeQuotaRepo{}, tiers)
	ctx := context.Background()

	for range 3 {
		if _, err := g.TierConfig(ctx, TierFree); err != nil {
			t.Fatalf("TierConfig: %v", err)
		}
	}
	if tiers.gets != 1 {
		t.Errorf("store hit %d times under TTL, want 1", tiers.gets)
	}
}

func TestUsage_ReportsAllFeatures(t *testing.T) {
	repo := &fakeQuotaRepo{}
	g := newGate(repo, &fakeTierRepo{})
	u := &store.User{ID: "u1"}
	ctx := context.Background()

	if _, err := g.Reserve(ctx, u, FeatureDailyQuiz, ""); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	tier, statuses, err := g.Usage(ctx, u)
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if tier != TierFree {
		t.Errorf("tier = %q, want free", tier)
	}
	if len(statuses) != 5 {
		t.Fatalf("got %d feature rows, want 5", len(statuses))
	}
	byFeature := map[string]FeatureStatus{}
	for _, s := range statuses {
		byFeature[s.Feature] = s
	}
	if byFeature[FeatureDailyQuiz].Used != 1 {
		t.Errorf("daily quiz used = %d, want 1", byFeature[FeatureDailyQuiz].Used)
	}
	if byFeature[FeatureSnapSolve].Used != 0 {
		t.Errorf("snap solve used = %d, want 0", byFeature[FeatureSnapSolve].Used)
	}
}
