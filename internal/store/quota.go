package store

import (
	"context"

	"github.com/jeevibe/engine/ent"
	entqc "github.com/jeevibe/engine/ent/quotacounter"
	"github.com/jeevibe/engine/internal/errs"
)

type quotaRepo struct {
	s *Store
}

func fromEntCounter(c *ent.QuotaCounter) *QuotaCounter {
	return &QuotaCounter{
		UserID:    c.UserID,
		Feature:   c.Feature,
		PeriodKey: c.PeriodKey,
		Used:      c.Used,
		Limit:     c.Limit,
		ResetsAt:  c.ResetsAt,
	}
}

func (r *quotaRepo) Get(ctx context.Context, userID, feature, periodKey string) (*QuotaCounter, error) {
	row, err := r.s.client.QuotaCounter.Query().
		Where(
			entqc.UserID(userID),
			entqc.Feature(feature),
			entqc.PeriodKey(periodKey),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "QUOTA_NOT_FOUND", "no counter for "+feature+" in "+periodKey)
		}
		return nil, classify(err)
	}
	return fromEntCounter(row), nil
}

func (r *quotaRepo) TryReserve(ctx context.Context, c QuotaCounter) (*QuotaCounter, bool, error) {
	var out *QuotaCounter
	granted := false
	err := r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.QuotaCounter.Query().
			Where(
				entqc.UserID(c.UserID),
				entqc.Feature(c.Feature),
				entqc.PeriodKey(c.PeriodKey),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			created, cerr := tx.QuotaCounter.Create().
				SetUserID(c.UserID).
				SetFeature(c.Feature).
				SetPeriodKey(c.PeriodKey).
				SetUsed(1).
				SetLimit(c.Limit).
				SetResetsAt(c.ResetsAt).
				Save(ctx)
			if cerr != nil {
				return classify(cerr)
			}
			out, granted = fromEntCounter(created), true
			return nil
		}
		if err != nil {
			return classify(err)
		}

		// The stored limit follows the caller's resolved tier so a mid-period
		// upgrade takes effect on the next reservation.
		if row.Used >= c.Limit {
			stale := fromEntCounter(row)
			stale.Limit = c.Limit
			out, granted = stale, false
			return nil
		}
		upd, err := tx.QuotaCounter.UpdateOne(row).
			AddUsed(1).
			SetLimit(c.Limit).
			SetResetsAt(c.ResetsAt).
			Save(ctx)
		if err != nil {
			return classify(err)
		}
		out, granted = fromEntCounter(upd), true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, granted, nil
}

func (r *quotaRepo) Release(ctx context.Context, userID, feature, periodKey string) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.QuotaCounter.Query().
			Where(
				entqc.UserID(userID),
				entqc.Feature(feature),
				entqc.PeriodKey(periodKey),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		if row.Used == 0 {
			return nil
		}
		_, err = tx.QuotaCounter.UpdateOne(row).AddUsed(-1).Save(ctx)
		return classify(err)
	})
}

func (r *quotaRepo) ForUser(ctx context.Context, userID string, periodKeys map[string]string) ([]*QuotaCounter, error) {
	rows, err := r.s.client.QuotaCounter.Query().
		Where(entqc.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*QuotaCounter, 0, len(rows))
	for _, row := range rows {
		// Only the current period of each feature is live usage.
		if key, ok := periodKeys[row.Feature]; ok && key == row.PeriodKey {
			out = append(out, fromEntCounter(row))
		}
	}
	return out, nil
}
