// Package quota enforces per-tier feature limits. Tier resolution cascades
// through billing state, counters reset on IST calendar boundaries, and
// reservations are atomic so concurrent requests never overshoot a limit.
package quota

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

// Feature names as stored on quota counters and tier configs.
const (
	FeatureSnapSolve       = "snap_solve"
	FeatureDailyQuiz       = "daily_quiz"
	FeatureAITutor         = "ai_tutor"
	FeatureChapterPractice = "chapter_practice"
	FeatureMockTest        = "mock_test"
)

// Tier names.
const (
	TierFree  = "free"
	TierTrial = "trial"
	TierPaid  = "paid"
)

// Unlimited is the sentinel limit that disables counting entirely.
const Unlimited = -1

// tierCacheTTL bounds how stale a tier config read may be. Limits change
// rarely; sixty seconds keeps the hot path off the store.
const tierCacheTTL = time.Minute

// ResolveTier decides which tier a user is on right now. An active paid
// subscription wins, then a live trial, then an admin override, then free.
func ResolveTier(u *store.User, now time.Time) string {
	if s := u.Subscription; s != nil && s.Status == "active" {
		if s.ExpiresAt == nil || s.ExpiresAt.After(now) {
			return TierPaid
		}
	}
	if tr := u.Trial; tr != nil && !tr.Consumed && tr.ExpiresAt != nil && tr.ExpiresAt.After(now) {
		return TierTrial
	}
	if u.TierOverride != "" {
		return u.TierOverride
	}
	return TierFree
}

// Gate is the reservation front door for quota-limited features.
type Gate struct {
	quotas store.QuotaRepo
	tiers  store.TierRepo
	clock  clock.Clock
	log    *zap.Logger

	mu     sync.Mutex
	cache  map[string]cachedTier
}

type cachedTier struct {
	cfg      *store.TierConfig
	cachedAt time.Time
}

func NewGate(quotas store.QuotaRepo, tiers store.TierRepo, clk clock.Clock, log *zap.Logger) *Gate {
	return &Gate{
		quotas: quotas,
		tiers:  tiers,
		clock:  clk,
		log:    log,
		cache:  make(map[string]cachedTier),
	}
}

// TierConfig returns the tier's config through the TTL cache.
func (g *Gate) TierConfig(ctx context.Context, tier string) (*store.TierConfig, error) {
	now := g.clock.Now()
	g.mu.Lock()
	if c, ok := g.cache[tier]; ok && now.Sub(c.cachedAt) < tierCacheTTL {
		g.mu.Unlock()
		return c.cfg, nil
	}
	g.mu.Unlock()

	cfg, err := g.tiers.Get(ctx, tier)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.cache[tier] = cachedTier{cfg: cfg, cachedAt: now}
	g.mu.Unlock()
	return cfg, nil
}

// ConfigFor resolves the user's tier and returns its config.
func (g *Gate) ConfigFor(ctx context.Context, u *store.User) (string, *store.TierConfig, error) {
	tier := ResolveTier(u, g.clock.Now())
	cfg, err := g.TierConfig(ctx, tier)
	if err != nil {
		return tier, nil, err
	}
	return tier, cfg, nil
}

// Reservation is a granted quota slot, released on caller failure.
type Reservation struct {
	Feature   string
	PeriodKey string
	Used      int
	Limit     int
	ResetsAt  time.Time

	counted bool
	gate    *Gate
	userID  string
}

// Rollback returns the slot when the gated work failed after reservation.
// Unlimited reservations never counted, so rollback is a no-op for them.
func (r *Reservation) Rollback(ctx context.Context) {
	if !r.counted {
		return
	}
	if err := r.gate.quotas.Release(ctx, r.userID, r.Feature, r.PeriodKey); err != nil {
		r.gate.log.Warn("quota rollback failed",
			zap.String("user", r.userID),
			zap.String("feature", r.Feature),
			zap.Error(err))
	}
}

// Reserve claims one use of feature for the user, or fails with
// QUOTA_EXHAUSTED. Subject qualifies chapter-practice counters on tiers
// that meter practice per subject per week.
func (g *Gate) Reserve(ctx context.Context, u *store.User, feature, subject string) (*Reservation, error) {
	tier, cfg, err := g.ConfigFor(ctx, u)
	if err != nil {
		return nil, err
	}

	key, limit, periodKey, resetsAt := g.plan(cfg, feature, subject)
	if limit == 0 {
		return nil, errs.E(errs.TierDenied, "TIER_DENIED",
			feature+" is not available on the "+tier+" tier")
	}
	if limit == Unlimited {
		// Unlimited tiers skip the counter write entirely.
		return &Reservation{Feature: key, PeriodKey: periodKey, Used: 0, Limit: Unlimited, ResetsAt: resetsAt, gate: g, userID: u.ID}, nil
	}

	counter, granted, err := g.quotas.TryReserve(ctx, store.QuotaCounter{
		UserID:    u.ID,
		Feature:   key,
		PeriodKey: periodKey,
		Limit:     limit,
		ResetsAt:  resetsAt,
	})
	if err != nil {
		return nil, err
	}
	if !granted {
		return nil, errs.E(errs.QuotaExhausted, "QUOTA_EXHAUSTED",
			feature+" limit reached for this period")
	}
	return &Reservation{
		Feature:   key,
		PeriodKey: periodKey,
		Used:      counter.Used,
		Limit:     counter.Limit,
		ResetsAt:  resetsAt,
		counted:   true,
		gate:      g,
		userID:    u.ID,
	}, nil
}

// plan maps a feature onto its counter key, limit and reset schedule under
// the given tier config.
func (g *Gate) plan(cfg *store.TierConfig, feature, subject string) (key string, limit int, periodKey string, resetsAt time.Time) {
	now := g.clock.Now().In(clock.IST)
	key = feature
	switch feature {
	case FeatureSnapSolve:
		return key, cfg.Limits.SnapSolveDaily, clock.DayKey(now), clock.NextDailyReset(now)
	case FeatureDailyQuiz:
		return key, cfg.Limits.DailyQuizDaily, clock.DayKey(now), clock.NextDailyReset(now)
	case FeatureAITutor:
		return key, cfg.Limits.AITutorDaily, clock.DayKey(now), clock.NextDailyReset(now)
	case FeatureMockTest:
		return key, cfg.Limits.MockTestsMonthly, clock.MonthKey(now), clock.NextMonthlyReset(now)
	case FeatureChapterPractice:
		if cfg.ChapterPracticeWeekly {
			// Metered per subject per ISO week on these tiers.
			if subject != "" {
				key = FeatureChapterPractice + ":" + subject
			}
			return key, cfg.Limits.ChapterPractice, clock.WeekKey(now), clock.NextWeeklyReset(now)
		}
		return key, cfg.Limits.ChapterPractice, clock.DayKey(now), clock.NextDailyReset(now)
	default:
		return key, 0, clock.DayKey(now), clock.NextDailyReset(now)
	}
}

// FeatureStatus is one row of the usage report.
type FeatureStatus struct {
	Feature  string    `json:"feature"`
	Used     int       `json:"used"`
	Limit    int       `json:"limit"`
	ResetsAt time.Time `json:"resets_at"`
}

// Usage reports the user's live counters for every metered feature,
// including untouched features at zero usage.
func (g *Gate) Usage(ctx context.Context, u *store.User) (string, []FeatureStatus, error) {
	tier, cfg, err := g.ConfigFor(ctx, u)
	if err != nil {
		return tier, nil, err
	}

	features := []string{FeatureSnapSolve, FeatureDailyQuiz, FeatureAITutor, FeatureChapterPractice, FeatureMockTest}
	periodKeys := make(map[string]string, len(features))
	statuses := make([]FeatureStatus, 0, len(features))
	for _, f := range features {
		key, limit, periodKey, resetsAt := g.plan(cfg, f, "")
		periodKeys[key] = periodKey
		if f == FeatureChapterPractice && cfg.ChapterPracticeWeekly {
			for _, subject := range model.Subjects {
				periodKeys[FeatureChapterPractice+":"+subject] = periodKey
			}
		}
		statuses = append(statuses, FeatureStatus{Feature: f, Limit: limit, ResetsAt: resetsAt})
	}

	counters, err := g.quotas.ForUser(ctx, u.ID, periodKeys)
	if err != nil {
		return tier, nil, err
	}
	for _, c := range counters {
		base, _, _ := strings.Cut(c.Feature, ":")
		for i := range statuses {
			if statuses[i].Feature == base {
				statuses[i].Used += c.Used
			}
		}
	}
	return tier, statuses, nil
}

// DefaultTiers seeds the tier-config collection on first run.
func DefaultTiers() []*store.TierConfig {
	return []*store.TierConfig{
		{
			Name: TierFree,
			Limits: model.TierLimits{
				SnapSolveDaily:       3,
				DailyQuizDaily:       1,
				AITutorDaily:         5,
				ChapterPractice:      2,
				MockTestsMonthly:     1,
				PerChapterQuestions:  10,
				MockStartIntervalSec: 300,
			},
			Features:              []string{FeatureSnapSolve, FeatureDailyQuiz, FeatureAITutor, FeatureChapterPractice, FeatureMockTest},
			ChapterPracticeWeekly: true,
			ExplorationEndQuiz:    14,
			RecoveryTrigger:       3,
		},
		{
			Name: TierTrial,
			Limits: model.TierLimits{
				SnapSolveDaily:       10,
				DailyQuizDaily:       Unlimited,
				AITutorDaily:         20,
				ChapterPractice:      Unlimited,
				MockTestsMonthly:     3,
				PerChapterQuestions:  10,
				MockStartIntervalSec: 300,
			},
			Features:           []string{FeatureSnapSolve, FeatureDailyQuiz, FeatureAITutor, FeatureChapterPractice, FeatureMockTest},
			ExplorationEndQuiz: 14,
			RecoveryTrigger:    3,
		},
		{
			Name: TierPaid,
			Limits: model.TierLimits{
				SnapSolveDaily:       Unlimited,
				DailyQuizDaily:       Unlimited,
				AITutorDaily:         Unlimited,
				ChapterPractice:      Unlimited,
				MockTestsMonthly:     Unlimited,
				PerChapterQuestions:  10,
				MockStartIntervalSec: 300,
			},
			Features:           []string{FeatureSnapSolve, FeatureDailyQuiz, FeatureAITutor, FeatureChapterPractice, FeatureMockTest},
			ExplorationEndQuiz: 14,
			RecoveryTrigger:    3,
		},
	}
}
