// Package spacedrep schedules review of missed questions on a fixed
// interval ladder. A miss enters the ladder at its bottom rung; answering
// a tracked question correctly climbs one rung, missing it again resets.
package spacedrep

import (
	"context"
	"time"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/store"
)

// Ladder is the review interval progression in days.
var Ladder = []int{1, 3, 7, 14, 30}

// Next returns the interval that follows current. Incorrect answers always
// land back on the bottom rung; correct answers climb one rung and stay at
// the top once reached.
func Next(current int, correct bool) int {
	if !correct {
		return Ladder[0]
	}
	for _, rung := range Ladder {
		if rung > current {
			return rung
		}
	}
	return Ladder[len(Ladder)-1]
}

// Scheduler maintains per-user review intervals.
type Scheduler struct {
	reviews store.ReviewRepo
	clock   clock.Clock
}

func NewScheduler(reviews store.ReviewRepo, clk clock.Clock) *Scheduler {
	return &Scheduler{reviews: reviews, clock: clk}
}

// Record folds one scored answer into the review schedule. Questions
// answered correctly on first contact never enter the ladder; only a miss
// starts tracking.
func (s *Scheduler) Record(ctx context.Context, userID, questionID string, correct bool) error {
	now := s.clock.Now()
	existing, err := s.reviews.Get(ctx, userID, questionID)
	if err != nil {
		if errs.KindOf(err) != errs.NotFound {
			return err
		}
		if correct {
			return nil
		}
		// The miss that starts tracking counts as the first review.
		return s.reviews.Upsert(ctx, store.ReviewInterval{
			UserID:        userID,
			QuestionID:    questionID,
			IntervalDays:  Ladder[0],
			NextReview:    now.AddDate(0, 0, Ladder[0]),
			TimesReviewed: 1,
		})
	}

	interval := Next(existing.IntervalDays, correct)
	return s.reviews.Upsert(ctx, store.ReviewInterval{
		UserID:        userID,
		QuestionID:    questionID,
		IntervalDays:  interval,
		NextReview:    now.AddDate(0, 0, interval),
		TimesReviewed: existing.TimesReviewed + 1,
	})
}

// Due returns up to limit question ids whose review is due, most overdue
// first with question id as the tie-break.
func (s *Scheduler) Due(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := s.reviews.Due(ctx, userID, s.clock.Now(), limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.QuestionID
	}
	return out, nil
}

// DueAt is Due against an explicit instant, used by selection when the
// session's reference time is already fixed.
func (s *Scheduler) DueAt(ctx context.Context, userID string, at time.Time, limit int) ([]string, error) {
	rows, err := s.reviews.Due(ctx, userID, at, limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.QuestionID
	}
	return out, nil
}
