package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/store"
)

func TestNext(t *testing.T) {
	cases := []struct {
		current int
		correct bool
		want    int
	}{
		{0, false, 1},
		{1, true, 3},
		{3, true, 7},
		{7, true, 14},
		{14, true, 30},
		{30, true, 30},
		{14, false, 1},
		{30, false, 1},
	}
	for _, tc := range cases {
		if got := Next(tc.current, tc.correct); got != tc.want {
			t.Errorf("Next(%d, %v) = %d, want %d", tc.current, tc.correct, got, tc.want)
		}
	}
}

type fakeReviewRepo struct {
	rows map[string]store.ReviewInterval
}

func (f *fakeReviewRepo) key(userID, questionID string) string { return userID + "/" + questionID }

func (f *fakeReviewRepo) Get(_ context.Context, userID, questionID string) (*store.ReviewInterval, error) {
	row, ok := f.rows[f.key(userID, questionID)]
	if !ok {
		return nil, errs.E(errs.NotFound, "REVIEW_NOT_FOUND", "missing")
	}
	return &row, nil
}

func (f *fakeReviewRepo) Upsert(_ context.Context, r store.ReviewInterval) error {
	if f.rows == nil {
		f.rows = make(map[string]store.ReviewInterval)
	}
	f.rows[f.key(r.UserID, r.QuestionID)] = r
	return nil
}

func (f *fakeReviewRepo) Due(_ context.Context, userID string, before time.Time, limit int) ([]*store.ReviewInterval, error) {
	var out []*store.ReviewInterval
	for _, row := range f.rows {
		if row.UserID == userID && !row.NextReview.After(before) {
			r := row
			out = append(out, &r)
		}
	}
	return out, nil
}

func TestRecord_CorrectFirstContactIsNotTracked(t *testing.T) {
	repo := &fakeReviewRepo{}
	s := NewScheduler(repo, clock.Fixed{T: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)})

	if err := s.Record(context.Background(), "u1", "q1", true); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.rows) != 0 {
		t.Errorf("correct first answer created %d intervals, want 0", len(repo.rows))
	}
}

func TestRecord_MissEntersLadderThenClimbs(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &fakeReviewRepo{}
	s := NewScheduler(repo, clock.Fixed{T: now})
	ctx := context.Background()

	if err := s.Record(ctx, "u1", "q1", false); err != nil {
		t.Fatalf("Record miss: %v", err)
	}
	row := repo.rows["u1/q1"]
	if row.IntervalDays != 1 || row.TimesReviewed != 1 {
		t.Errorf("first miss: interval=%d reviews=%d, want 1/1", row.IntervalDays, row.TimesReviewed)
	}
	if !row.NextReview.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want tomorrow", row.NextReview)
	}

	// Correct review climbs one rung and counts the review.
	if err := s.Record(ctx, "u1", "q1", true); err != nil {
		t.Fatalf("Record review: %v", err)
	}
	row = repo.rows["u1/q1"]
	if row.IntervalDays != 3 || row.TimesReviewed != 2 {
		t.Errorf("after review: interval=%d reviews=%d, want 3/2", row.IntervalDays, row.TimesReviewed)
	}

	// Missing it again resets to the bottom rung.
	if err := s.Record(ctx, "u1", "q1", false); err != nil {
		t.Fatalf("Record second miss: %v", err)
	}
	row = repo.rows["u1/q1"]
	if row.IntervalDays != 1 || row.TimesReviewed != 3 {
		t.Errorf("after reset: interval=%d reviews=%d, want 1/3", row.IntervalDays, row.TimesReviewed)
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &fakeReviewRepo{rows: map[string]store.ReviewInterval{
		"u1/q1": {UserID: "u1", QuestionID: "q1", NextReview: now.AddDate(0, 0, -2)},
		"u1/q2": {UserID: "u1", QuestionID: "q2", NextReview: now.AddDate(0, 0, 5)},
	}}
	s := NewScheduler(repo, clock.Fixed{T: now})

	due, err := s.Due(context.Background(), "u1", 10)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 1 || due[0] != "q1" {
		t.Errorf("Due = %v, want [q1]", due)
	}
}
