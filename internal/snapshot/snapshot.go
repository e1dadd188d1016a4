// Package snapshot captures immutable point-in-time copies of a user's
// proficiency state: one per completed quiz and one per ISO week from the
// scheduled sweep. Snapshots are the data source for progress timelines.
package snapshot

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

// Timeline paging bounds.
const (
	DefaultTimelineLimit = 30
	MaxTimelineLimit     = 100
)

// Service writes and reads theta snapshots.
type Service struct {
	snapshots store.SnapshotRepo
	clock     clock.Clock
	log       *zap.Logger
}

func NewService(snapshots store.SnapshotRepo, clk clock.Clock, log *zap.Logger) *Service {
	return &Service{snapshots: snapshots, clock: clk, log: log}
}

// CaptureQuiz stores the post-completion state keyed by the session id.
// Replayed completions hit the existing row and change nothing.
func (s *Service) CaptureQuiz(ctx context.Context, u *store.User, sess *store.Session, perf model.QuizPerformance, updates []model.ChapterUpdate) error {
	payload := buildPayload(u, perf, updates)
	return s.snapshots.Create(ctx, &store.Snapshot{
		UserID:     u.ID,
		QuizID:     sess.ID,
		QuizNumber: u.CompletedQuizCount,
		Payload:    payload,
		CapturedAt: s.clock.Now(),
	})
}

// CaptureWeekly stores the sweep snapshot under the ISO week key. A rerun
// within the same week overwrites the earlier sweep.
func (s *Service) CaptureWeekly(ctx context.Context, u *store.User) error {
	now := s.clock.Now().In(clock.IST)
	return s.snapshots.UpsertWeekly(ctx, &store.Snapshot{
		UserID:     u.ID,
		QuizID:     "weekly:" + clock.WeekKey(now),
		QuizNumber: u.CompletedQuizCount,
		Payload:    buildPayload(u, model.QuizPerformance{}, nil),
		CapturedAt: s.clock.Now(),
	})
}

func buildPayload(u *store.User, perf model.QuizPerformance, updates []model.ChapterUpdate) model.SnapshotPayload {
	chapters := make(map[string]model.ChapterState, len(u.ThetaByChapter))
	for k, v := range u.ThetaByChapter {
		chapters[k] = v
	}
	subjects := make(map[string]model.SubjectState, len(u.ThetaBySubject))
	for k, v := range u.ThetaBySubject {
		subjects[k] = v
	}
	return model.SnapshotPayload{
		ThetaByChapter:    chapters,
		ThetaBySubject:    subjects,
		OverallTheta:      u.OverallTheta,
		OverallPercentile: u.OverallPercentile,
		QuizPerformance:   perf,
		ChapterUpdates:    updates,
	}
}

// Timeline returns snapshots newest first. limit is clamped to the paging
// bounds; beforeCursor pages past the last seen capture time.
func (s *Service) Timeline(ctx context.Context, userID string, limit int, beforeCursor time.Time) ([]*store.Snapshot, error) {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}
	if limit > MaxTimelineLimit {
		limit = MaxTimelineLimit
	}
	return s.snapshots.Timeline(ctx, userID, limit, beforeCursor)
}

// Count returns the user's snapshot total.
func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	return s.snapshots.Count(ctx, userID)
}
