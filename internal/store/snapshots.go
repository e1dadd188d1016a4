package store

import (
	"context"
	"time"

	"github.com/jeevibe/engine/ent"
	entsnap "github.com/jeevibe/engine/ent/thetasnapshot"
	"github.com/jeevibe/engine/internal/errs"
)

type snapshotRepo struct {
	s *Store
}

func fromEntSnapshot(row *ent.ThetaSnapshot) *Snapshot {
	out := &Snapshot{
		UserID:     row.UserID,
		QuizID:     row.QuizID,
		QuizNumber: row.QuizNumber,
		CapturedAt: row.CapturedAt,
	}
	if row.Payload != nil {
		out.Payload = *row.Payload
	}
	return out
}

func (r *snapshotRepo) Create(ctx context.Context, s *Snapshot) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.ThetaSnapshot.Query().
			Where(entsnap.UserID(s.UserID), entsnap.QuizID(s.QuizID)).
			Exist(ctx)
		if err != nil {
			return classify(err)
		}
		if exists {
			// Completion replays re-issue the snapshot; the first one wins.
			return nil
		}
		payload := s.Payload
		_, err = tx.ThetaSnapshot.Create().
			SetUserID(s.UserID).
			SetQuizID(s.QuizID).
			SetQuizNumber(s.QuizNumber).
			SetPayload(&payload).
			SetCapturedAt(s.CapturedAt).
			Save(ctx)
		return classify(err)
	})
}

func (r *snapshotRepo) UpsertWeekly(ctx context.Context, s *Snapshot) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		payload := s.Payload
		row, err := tx.ThetaSnapshot.Query().
			Where(entsnap.UserID(s.UserID), entsnap.QuizID(s.QuizID)).
			Only(ctx)
		if ent.IsNotFound(err) {
			_, cerr := tx.ThetaSnapshot.Create().
				SetUserID(s.UserID).
				SetQuizID(s.QuizID).
				SetQuizNumber(s.QuizNumber).
				SetPayload(&payload).
				SetCapturedAt(s.CapturedAt).
				Save(ctx)
			return classify(cerr)
		}
		if err != nil {
			return classify(err)
		}
		_, err = tx.ThetaSnapshot.UpdateOne(row).
			SetPayload(&payload).
			SetCapturedAt(s.CapturedAt).
			Save(ctx)
		return classify(err)
	})
}

func (r *snapshotRepo) Get(ctx context.Context, userID, quizID string) (*Snapshot, error) {
	row, err := r.s.client.ThetaSnapshot.Query().
		Where(entsnap.UserID(userID), entsnap.QuizID(quizID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "SNAPSHOT_NOT_FOUND", "no snapshot "+quizID)
		}
		return nil, classify(err)
	}
	return fromEntSnapshot(row), nil
}

func (r *snapshotRepo) Timeline(ctx context.Context, userID string, limit int, beforeCursor time.Time) ([]*Snapshot, error) {
	q := r.s.client.ThetaSnapshot.Query().
		Where(entsnap.UserID(userID)).
		Order(ent.Desc(entsnap.FieldCapturedAt)).
		Limit(limit)
	if !beforeCursor.IsZero() {
		q.Where(entsnap.CapturedAtLT(beforeCursor))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*Snapshot, len(rows))
	for i, row := range rows {
		out[i] = fromEntSnapshot(row)
	}
	return out, nil
}

func (r *snapshotRepo) Count(ctx context.Context, userID string) (int, error) {
	n, err := r.s.client.ThetaSnapshot.Query().
		Where(entsnap.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, classify(err)
	}
	return n, nil
}
