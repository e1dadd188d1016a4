// Package jobs holds the scheduled maintenance work: weekly snapshot
// sweeps, digest emails, trial expiry, alert checks and question stat
// refresh. Each job is named, carries its own timeout and reports
// processed/error counters so the cron caller can track drift.
package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/snapshot"
	"github.com/jeevibe/engine/internal/store"
)

const (
	// userPageSize bounds one page of the user sweep.
	userPageSize = 200
	// sweepConcurrency bounds per-user work inside a page.
	sweepConcurrency = 8
)

// Mailer delivers digest emails. Delivery infrastructure is external; the
// default implementation records the send in the log.
type Mailer interface {
	Send(ctx context.Context, userID, subject, body string) error
}

// LogMailer writes each digest to the log instead of sending it.
type LogMailer struct {
	Log *zap.Logger
}

func (m LogMailer) Send(_ context.Context, userID, subject, _ string) error {
	m.Log.Info("digest email", zap.String("user", userID), zap.String("subject", subject))
	return nil
}

// Result is one job run's outcome.
type Result struct {
	Name      string        `json:"name"`
	Processed int           `json:"processed"`
	Errors    int           `json:"errors"`
	Took      time.Duration `json:"took"`
}

// Runner executes named jobs against the store.
type Runner struct {
	users     store.UserRepo
	questions store.QuestionRepo
	tiers     store.TierRepo
	snapshots *snapshot.Service
	mailer    Mailer
	clock     clock.Clock
	log       *zap.Logger
}

func NewRunner(users store.UserRepo, questions store.QuestionRepo, tiers store.TierRepo, snapshots *snapshot.Service, mailer Mailer, clk clock.Clock, log *zap.Logger) *Runner {
	if mailer == nil {
		mailer = LogMailer{Log: log}
	}
	return &Runner{
		users:     users,
		questions: questions,
		tiers:     tiers,
		snapshots: snapshots,
		mailer:    mailer,
		clock:     clk,
		log:       log,
	}
}

type job struct {
	timeout time.Duration
	run     func(ctx context.Context) (processed, failed int, err error)
}

func (r *Runner) registry() map[string]job {
	return map[string]job{
		"weekly_snapshots":      {timeout: 5 * time.Minute, run: r.weeklySnapshots},
		"daily_email":           {timeout: 3 * time.Minute, run: r.dailyEmail},
		"weekly_email":          {timeout: 3 * time.Minute, run: r.weeklyEmail},
		"trial_expiry":          {timeout: 2 * time.Minute, run: r.trialExpiry},
		"alert_checks":          {timeout: time.Minute, run: r.alertChecks},
		"question_stat_refresh": {timeout: 5 * time.Minute, run: r.questionStatRefresh},
	}
}

// Names lists the runnable jobs, sorted.
func (r *Runner) Names() []string {
	reg := r.registry()
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes one job by name under its timeout.
func (r *Runner) Run(ctx context.Context, name string) (*Result, error) {
	j, ok := r.registry()[name]
	if !ok {
		return nil, errs.E(errs.NotFound, "JOB_NOT_FOUND", "unknown job "+name)
	}
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	started := time.Now()
	processed, failed, err := j.run(ctx)
	res := &Result{Name: name, Processed: processed, Errors: failed, Took: time.Since(started)}
	if err != nil {
		r.log.Error("job failed", zap.String("job", name), zap.Error(err))
		return res, err
	}
	r.log.Info("job finished",
		zap.String("job", name),
		zap.Int("processed", processed),
		zap.Int("errors", failed),
		zap.Duration("took", res.Took))
	return res, nil
}

// sweepUsers pages through every user and applies fn with bounded
// concurrency. Per-user failures are counted, not fatal.
func (r *Runner) sweepUsers(ctx context.Context, fn func(ctx context.Context, u *store.User) error) (int, int, error) {
	var processed, failed atomic.Int64
	afterID := ""
	for {
		page, err := r.users.Page(ctx, afterID, userPageSize)
		if err != nil {
			return int(processed.Load()), int(failed.Load()), err
		}
		if len(page) == 0 {
			break
		}
		afterID = page[len(page)-1].ID

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(sweepConcurrency)
		for _, u := range page {
			g.Go(func() error {
				if err := fn(gctx, u); err != nil {
					failed.Add(1)
					r.log.Warn("user sweep step failed", zap.String("user", u.ID), zap.Error(err))
					return nil
				}
				processed.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return int(processed.Load()), int(failed.Load()), err
		}
		if len(page) < userPageSize {
			break
		}
	}
	return int(processed.Load()), int(failed.Load()), nil
}

// weeklySnapshots captures the week's sweep snapshot for every assessed
// user. Reruns inside the same ISO week overwrite, so the job is safe to
// retry.
func (r *Runner) weeklySnapshots(ctx context.Context) (int, int, error) {
	return r.sweepUsers(ctx, func(ctx context.Context, u *store.User) error {
		if u.AssessmentStatus != model.AssessmentCompleted {
			return nil
		}
		return r.snapshots.CaptureWeekly(ctx, u)
	})
}

func (r *Runner) dailyEmail(ctx context.Context) (int, int, error) {
	day := clock.DayKey(r.clock.Now())
	return r.sweepUsers(ctx, func(ctx context.Context, u *store.User) error {
		if u.AssessmentStatus != model.AssessmentCompleted {
			return nil
		}
		subject := "Your JEE prep recap for " + day
		body := fmt.Sprintf(
			"Day %d: %d quizzes done, %d/%d lifetime correct, overall percentile %d.",
			u.CurrentDay, u.CompletedQuizCount,
			u.TotalQuestionsCorrect, u.TotalQuestionsAttempted,
			u.OverallPercentile)
		return r.mailer.Send(ctx, u.ID, subject, body)
	})
}

func (r *Runner) weeklyEmail(ctx context.Context) (int, int, error) {
	week := clock.WeekKey(r.clock.Now())
	return r.sweepUsers(ctx, func(ctx context.Context, u *store.User) error {
		if u.AssessmentStatus != model.AssessmentCompleted {
			return nil
		}
		body := fmt.Sprintf("Week %s summary. Overall percentile %d.", week, u.OverallPercentile)
		for _, s := range model.Subjects {
			if st, ok := u.ThetaBySubject[s]; ok {
				body += fmt.Sprintf(" %s: %d%%ile.", s, st.Percentile)
			}
		}
		return r.mailer.Send(ctx, u.ID, "Your week in review ("+week+")", body)
	})
}

// trialExpiry marks run-out trials consumed so the tier cascade stops
// honoring them.
func (r *Runner) trialExpiry(ctx context.Context) (int, int, error) {
	now := r.clock.Now()
	var flipped atomic.Int64
	processed, failed, err := r.sweepUsers(ctx, func(ctx context.Context, u *store.User) error {
		t := u.Trial
		if t == nil || t.Consumed || t.ExpiresAt == nil || t.ExpiresAt.After(now) {
			return nil
		}
		done := *t
		done.Consumed = true
		if err := r.users.SaveBilling(ctx, u.ID, nil, &done); err != nil {
			return err
		}
		flipped.Add(1)
		return nil
	})
	if err != nil {
		return processed, failed, err
	}
	return int(flipped.Load()), failed, nil
}

// alertChecks verifies the invariants operators page on: the catalog has
// questions in every subject and the tier table holds the three base tiers.
func (r *Runner) alertChecks(ctx context.Context) (int, int, error) {
	alerts := 0

	keys, err := r.questions.ChapterKeys(ctx)
	if err != nil {
		return 0, 0, err
	}
	covered := map[string]bool{}
	for _, k := range keys {
		covered[model.SubjectOfChapterKey(k)] = true
	}
	for _, s := range model.Subjects {
		if !covered[s] {
			alerts++
			r.log.Warn("catalog has no chapters for subject", zap.String("subject", s))
		}
	}

	for _, tier := range []string{quota.TierFree, quota.TierTrial, quota.TierPaid} {
		if _, err := r.tiers.Get(ctx, tier); err != nil {
			alerts++
			r.log.Warn("tier config missing", zap.String("tier", tier), zap.Error(err))
		}
	}
	return alerts, 0, nil
}

func (r *Runner) questionStatRefresh(ctx context.Context) (int, int, error) {
	n, err := r.questions.RefreshStats(ctx)
	return n, 0, err
}
