package store

import (
	"context"
	"time"

	"github.com/jeevibe/engine/ent"
	entresp "github.com/jeevibe/engine/ent/response"
)

type responseRepo struct {
	s *Store
}

func (r *responseRepo) BySession(ctx context.Context, sessionID string) ([]*Response, error) {
	rows, err := r.s.client.Response.Query().
		Where(entresp.SessionID(sessionID)).
		Order(ent.Asc(entresp.FieldAnsweredAt)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*Response, len(rows))
	for i, row := range rows {
		out[i] = fromEntResponse(row)
	}
	return out, nil
}

func (r *responseRepo) CorrectQuestionIDs(ctx context.Context, userID string, since time.Time) ([]string, error) {
	var ids []string
	err := r.s.client.Response.Query().
		Where(
			entresp.UserID(userID),
			entresp.IsCorrect(true),
			entresp.AnsweredAtGTE(since),
		).
		Unique(true).
		Select(entresp.FieldQuestionID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, classify(err)
	}
	return ids, nil
}
