package store

import (
	"context"
	"time"

	"github.com/jeevibe/engine/ent"
	entri "github.com/jeevibe/engine/ent/reviewinterval"
	"github.com/jeevibe/engine/internal/errs"
)

type reviewRepo struct {
	s *Store
}

func fromEntReview(row *ent.ReviewInterval) *ReviewInterval {
	return &ReviewInterval{
		UserID:        row.UserID,
		QuestionID:    row.QuestionID,
		IntervalDays:  row.IntervalDays,
		NextReview:    row.NextReview,
		TimesReviewed: row.TimesReviewed,
	}
}

func (r *reviewRepo) Get(ctx context.Context, userID, questionID string) (*ReviewInterval, error) {
	row, err := r.s.client.ReviewInterval.Query().
		Where(entri.UserID(userID), entri.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "REVIEW_NOT_FOUND", "no review interval for question "+questionID)
		}
		return nil, classify(err)
	}
	return fromEntReview(row), nil
}

func (r *reviewRepo) Upsert(ctx context.Context, iv ReviewInterval) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.ReviewInterval.Query().
			Where(entri.UserID(iv.UserID), entri.QuestionID(iv.QuestionID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			_, cerr := tx.ReviewInterval.Create().
				SetUserID(iv.UserID).
				SetQuestionID(iv.QuestionID).
				SetIntervalDays(iv.IntervalDays).
				SetNextReview(iv.NextReview).
				SetTimesReviewed(iv.TimesReviewed).
				Save(ctx)
			return classify(cerr)
		}
		if err != nil {
			return classify(err)
		}
		_, err = tx.ReviewInterval.UpdateOne(row).
			SetIntervalDays(iv.IntervalDays).
			SetNextReview(iv.NextReview).
			SetTimesReviewed(iv.TimesReviewed).
			Save(ctx)
		return classify(err)
	})
}

func (r *reviewRepo) Due(ctx context.Context, userID string, before time.Time, limit int) ([]*ReviewInterval, error) {
	rows, err := r.s.client.ReviewInterval.Query().
		Where(entri.UserID(userID), entri.NextReviewLTE(before)).
		Order(ent.Asc(entri.FieldNextReview), ent.Asc(entri.FieldQuestionID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*ReviewInterval, len(rows))
	for i, row := range rows {
		out[i] = fromEntReview(row)
	}
	return out, nil
}
