package store

import (
	"context"

	"github.com/jeevibe/engine/ent"
	entuser "github.com/jeevibe/engine/ent/user"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
)

type userRepo struct {
	s *Store
}

func fromEntUser(u *ent.User) *User {
	return &User{
		ID:                      u.ID,
		OverallTheta:            u.OverallTheta,
		OverallPercentile:       u.OverallPercentile,
		ThetaBySubject:          u.ThetaBySubject,
		ThetaByChapter:          u.ThetaByChapter,
		SubtopicAccuracy:        u.SubtopicAccuracy,
		SubjectAccuracy:         u.SubjectAccuracy,
		TotalQuestionsAttempted: u.TotalQuestionsAttempted,
		TotalQuestionsCorrect:   u.TotalQuestionsCorrect,
		TotalTimeSpentMinutes:   u.TotalTimeSpentMinutes,
		CompletedQuizCount:      u.CompletedQuizCount,
		LearningPhase:           u.LearningPhase,
		CurrentDay:              u.CurrentDay,
		AssessmentStatus:        u.AssessmentStatus,
		AssessmentBaseline:      u.AssessmentBaseline,
		AssessmentCompletedAt:   u.AssessmentCompletedAt,
		LowAccuracyStreak:       u.LowAccuracyStreak,
		RecoveryCooldown:        u.RecoveryCooldown,
		ChapterPracticeStats:    u.ChapterPracticeStats,
		Subscription:            u.Subscription,
		Trial:                   u.Trial,
		TierOverride:            u.TierOverride,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "USER_NOT_FOUND", "user "+id+" not found")
		}
		return nil, classify(err)
	}
	return fromEntUser(u), nil
}

func (r *userRepo) Ensure(ctx context.Context, id string) (*User, error) {
	u, err := r.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	if errs.KindOf(err) != errs.NotFound {
		return nil, err
	}
	created, cerr := r.s.client.User.Create().SetID(id).Save(ctx)
	if cerr != nil {
		if ent.IsConstraintError(cerr) {
			// Peer created it first; re-read.
			return r.Get(ctx, id)
		}
		return nil, classify(cerr)
	}
	return fromEntUser(created), nil
}

func (r *userRepo) SetAssessmentStatus(ctx context.Context, id, status string) error {
	n, err := r.s.client.User.Update().
		Where(entuser.ID(id)).
		SetAssessmentStatus(status).
		Save(ctx)
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return errs.E(errs.NotFound, "USER_NOT_FOUND", "user "+id+" not found")
	}
	return nil
}

func (r *userRepo) ApplyAssessment(ctx context.Context, id string, w AssessmentWrite) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		u, err := tx.User.Get(ctx, id)
		if err != nil {
			return classify(err)
		}
		upd := tx.User.UpdateOne(u).
			SetThetaByChapter(w.ThetaByChapter).
			SetThetaBySubject(w.ThetaBySubject).
			SetOverallTheta(w.OverallTheta).
			SetOverallPercentile(w.OverallPercentile).
			SetAssessmentStatus(model.AssessmentCompleted).
			SetAssessmentCompletedAt(w.CompletedAt).
			SetTotalQuestionsAttempted(u.TotalQuestionsAttempted + w.QuestionsAnswered).
			SetTotalQuestionsCorrect(u.TotalQuestionsCorrect + w.QuestionsCorrect).
			SetTotalTimeSpentMinutes(u.TotalTimeSpentMinutes + w.TimeSpentMinutes)
		// The baseline is captured once, at the first completed assessment.
		if len(u.AssessmentBaseline) == 0 {
			upd.SetAssessmentBaseline(w.Baseline)
		}
		_, err = upd.Save(ctx)
		return classify(err)
	})
}

func (r *userRepo) SaveBilling(ctx context.Context, id string, sub *model.Subscription, trial *model.Trial) error {
	upd := r.s.client.User.UpdateOneID(id)
	if sub != nil {
		upd.SetSubscription(sub)
	}
	if trial != nil {
		upd.SetTrial(trial)
	}
	_, err := upd.Save(ctx)
	if ent.IsNotFound(err) {
		return errs.E(errs.NotFound, "USER_NOT_FOUND", "user "+id+" not found")
	}
	return classify(err)
}

func (r *userRepo) Page(ctx context.Context, afterID string, limit int) ([]*User, error) {
	q := r.s.client.User.Query().
		Order(ent.Asc(entuser.FieldID)).
		Limit(limit)
	if afterID != "" {
		q.Where(entuser.IDGT(afterID))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*User, len(rows))
	for i, u := range rows {
		out[i] = fromEntUser(u)
	}
	return out, nil
}
