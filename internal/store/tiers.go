package store

import (
	"context"

	"github.com/jeevibe/engine/ent"
	"github.com/jeevibe/engine/internal/errs"
)

type tierRepo struct {
	s *Store
}

func fromEntTier(row *ent.TierConfig) *TierConfig {
	return &TierConfig{
		Name:                  row.ID,
		Limits:                row.Limits,
		Features:              row.Features,
		ChapterPracticeWeekly: row.ChapterPracticeWeekly,
		ExplorationEndQuiz:    row.ExplorationEndQuiz,
		RecoveryTrigger:       row.RecoveryTrigger,
	}
}

func (r *tierRepo) Get(ctx context.Context, name string) (*TierConfig, error) {
	row, err := r.s.client.TierConfig.Get(ctx, name)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "TIER_NOT_FOUND", "tier "+name+" not configured")
		}
		return nil, classify(err)
	}
	return fromEntTier(row), nil
}

func (r *tierRepo) All(ctx context.Context) ([]*TierConfig, error) {
	rows, err := r.s.client.TierConfig.Query().All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*TierConfig, len(rows))
	for i, row := range rows {
		out[i] = fromEntTier(row)
	}
	return out, nil
}

func (r *tierRepo) Upsert(ctx context.Context, cfg *TierConfig) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.TierConfig.Get(ctx, cfg.Name)
		if ent.IsNotFound(err) {
			_, cerr := tx.TierConfig.Create().
				SetID(cfg.Name).
				SetLimits(cfg.Limits).
				SetFeatures(cfg.Features).
				SetChapterPracticeWeekly(cfg.ChapterPracticeWeekly).
				SetExplorationEndQuiz(cfg.ExplorationEndQuiz).
				SetRecoveryTrigger(cfg.RecoveryTrigger).
				Save(ctx)
			return classify(cerr)
		}
		if err != nil {
			return classify(err)
		}
		_, err = tx.TierConfig.UpdateOne(row).
			SetLimits(cfg.Limits).
			SetFeatures(cfg.Features).
			SetChapterPracticeWeekly(cfg.ChapterPracticeWeekly).
			SetExplorationEndQuiz(cfg.ExplorationEndQuiz).
			SetRecoveryTrigger(cfg.RecoveryTrigger).
			Save(ctx)
		return classify(err)
	})
}
