package store

import (
	"context"

	"github.com/jeevibe/engine/ent"
	entq "github.com/jeevibe/engine/ent/question"
	entresp "github.com/jeevibe/engine/ent/response"
	"github.com/jeevibe/engine/internal/errs"
)

type questionRepo struct {
	s *Store
}

func fromEntQuestion(q *ent.Question) *Question {
	out := &Question{
		ID:            q.ID,
		Subject:       q.Subject,
		Chapter:       q.Chapter,
		ChapterKey:    q.ChapterKey,
		SubTopics:     q.SubTopics,
		QuestionType:  q.QuestionType,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		AnswerRange:   q.AnswerRange,
		IsAssessment:  q.IsAssessment,
		AttemptsCount: q.AttemptsCount,
		CorrectCount:  q.CorrectCount,
		Payload:       q.Payload,
	}
	out.IRT.A, out.IRT.B, out.IRT.C = q.IrtA, q.IrtB, q.IrtC
	out.AnswerValue = q.AnswerValue
	return out
}

func (r *questionRepo) Get(ctx context.Context, id string) (*Question, error) {
	q, err := r.s.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "question "+id+" not found")
		}
		return nil, classify(err)
	}
	return fromEntQuestion(q), nil
}

func (r *questionRepo) GetMany(ctx context.Context, ids []string) (map[string]*Question, error) {
	rows, err := r.s.client.Question.Query().
		Where(entq.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make(map[string]*Question, len(rows))
	for _, q := range rows {
		out[q.ID] = fromEntQuestion(q)
	}
	return out, nil
}

func (r *questionRepo) ByChapter(ctx context.Context, chapterKey string) ([]*Question, error) {
	rows, err := r.s.client.Question.Query().
		Where(entq.ChapterKey(chapterKey)).
		Order(ent.Asc(entq.FieldIrtB), ent.Asc(entq.FieldID)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*Question, len(rows))
	for i, q := range rows {
		out[i] = fromEntQuestion(q)
	}
	return out, nil
}

func (r *questionRepo) ChapterKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := r.s.client.Question.Query().
		Unique(true).
		Select(entq.FieldChapterKey).
		Scan(ctx, &keys)
	if err != nil {
		return nil, classify(err)
	}
	return keys, nil
}

func (r *questionRepo) Assessment(ctx context.Context) ([]*Question, error) {
	rows, err := r.s.client.Question.Query().
		Where(entq.IsAssessment(true)).
		Order(ent.Asc(entq.FieldID)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*Question, len(rows))
	for i, q := range rows {
		out[i] = fromEntQuestion(q)
	}
	return out, nil
}

func (r *questionRepo) UpsertBatch(ctx context.Context, qs []*Question) (int, error) {
	n := 0
	err := r.s.withTx(ctx, func(tx *ent.Tx) error {
		for _, q := range qs {
			// Catalog entries are immutable; an existing id is skipped.
			exists, err := tx.Question.Query().Where(entq.ID(q.ID)).Exist(ctx)
			if err != nil {
				return classify(err)
			}
			if exists {
				continue
			}
			create := tx.Question.Create().
				SetID(q.ID).
				SetSubject(q.Subject).
				SetChapter(q.Chapter).
				SetChapterKey(q.ChapterKey).
				SetSubTopics(q.SubTopics).
				SetQuestionType(q.QuestionType).
				SetOptions(q.Options).
				SetCorrectAnswer(q.CorrectAnswer).
				SetIrtA(q.IRT.A).
				SetIrtB(q.IRT.B).
				SetIrtC(q.IRT.C).
				SetIsAssessment(q.IsAssessment).
				SetPayload(q.Payload)
			if q.AnswerValue != nil {
				create.SetAnswerValue(*q.AnswerValue)
			}
			if q.AnswerRange != nil {
				create.SetAnswerRange(q.AnswerRange)
			}
			if _, err := create.Save(ctx); err != nil {
				return classify(err)
			}
			n++
		}
		return nil
	})
	return n, err
}

func (r *questionRepo) RefreshStats(ctx context.Context) (int, error) {
	// Recompute per-question attempt counters from the response log. Only
	// questions that have been answered are touched.
	var answered []string
	err := r.s.client.Response.Query().
		Unique(true).
		Select(entresp.FieldQuestionID).
		Scan(ctx, &answered)
	if err != nil {
		return 0, classify(err)
	}

	updated := 0
	for _, qid := range answered {
		total, err := r.s.client.Response.Query().
			Where(entresp.QuestionID(qid)).
			Count(ctx)
		if err != nil {
			return updated, classify(err)
		}
		correct, err := r.s.client.Response.Query().
			Where(entresp.QuestionID(qid), entresp.IsCorrect(true)).
			Count(ctx)
		if err != nil {
			return updated, classify(err)
		}
		n, err := r.s.client.Question.Update().
			Where(entq.ID(qid)).
			SetAttemptsCount(total).
			SetCorrectCount(correct).
			Save(ctx)
		if err != nil {
			return updated, classify(err)
		}
		updated += n
	}
	return updated, nil
}
