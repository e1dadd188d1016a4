package store

import (
	"context"
	"time"

	"github.com/jeevibe/engine/ent"
	entresp "github.com/jeevibe/engine/ent/response"
	entsess "github.com/jeevibe/engine/ent/session"
	entsq "github.com/jeevibe/engine/ent/sessionquestion"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
)

type sessionRepo struct {
	s *Store
}

func fromEntSession(s *ent.Session) *Session {
	return &Session{
		ID:                s.ID,
		UserID:            s.UserID,
		Kind:              s.Kind,
		Status:            s.Status,
		ChapterKey:        s.ChapterKey,
		TemplateID:        s.TemplateID,
		LearningPhase:     s.LearningPhase,
		IsRecoveryQuiz:    s.IsRecoveryQuiz,
		QuizNumber:        s.QuizNumber,
		QuestionsTotal:    s.QuestionsTotal,
		QuestionsAnswered: s.QuestionsAnswered,
		CorrectCount:      s.CorrectCount,
		TotalTimeSeconds:  s.TotalTimeSeconds,
		InvalidReason:     s.InvalidReason,
		ExpiresAt:         s.ExpiresAt,
		CompletedAt:       s.CompletedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func fromEntSQ(q *ent.SessionQuestion) *SessionQuestion {
	return &SessionQuestion{
		SessionID:        q.SessionID,
		UserID:           q.UserID,
		QuestionID:       q.QuestionID,
		Position:         q.Position,
		ChapterKey:       q.ChapterKey,
		Rationale:        q.Rationale,
		Answered:         q.Answered,
		AnsweringAt:      q.AnsweringAt,
		StudentAnswer:    q.StudentAnswer,
		IsCorrect:        q.IsCorrect,
		TimeTakenSeconds: q.TimeTakenSeconds,
		ThetaDelta:       q.ThetaDelta,
		AnsweredAt:       q.AnsweredAt,
	}
}

func fromEntResponse(r *ent.Response) *Response {
	out := &Response{
		UserID:           r.UserID,
		SessionID:        r.SessionID,
		QuestionID:       r.QuestionID,
		Kind:             r.Kind,
		ChapterKey:       r.ChapterKey,
		SubTopics:        r.SubTopics,
		StudentAnswer:    r.StudentAnswer,
		CorrectAnswer:    r.CorrectAnswer,
		IsCorrect:        r.IsCorrect,
		TimeTakenSeconds: r.TimeTakenSeconds,
		ThetaDelta:       r.ThetaDelta,
		AnsweredAt:       r.AnsweredAt,
	}
	out.IRT.A, out.IRT.B, out.IRT.C = r.IrtA, r.IrtB, r.IrtC
	return out
}

func (r *sessionRepo) CreateIfAbsent(ctx context.Context, s *Session, questions []*SessionQuestion) (*Session, bool, error) {
	var out *Session
	existed := false
	err := r.s.withTx(ctx, func(tx *ent.Tx) error {
		// A peer may have created the same session id already.
		if prior, err := tx.Session.Get(ctx, s.ID); err == nil {
			out, existed = fromEntSession(prior), true
			return nil
		} else if !ent.IsNotFound(err) {
			return classify(err)
		}

		// At most one in_progress session per (user, kind); chapter practice
		// is further keyed by chapter.
		slot := tx.Session.Query().Where(
			entsess.UserID(s.UserID),
			entsess.Kind(s.Kind),
			entsess.Status(model.StatusInProgress),
		)
		if s.Kind == model.KindChapterPractice {
			slot.Where(entsess.ChapterKey(s.ChapterKey))
		}
		if prior, err := slot.First(ctx); err == nil {
			out, existed = fromEntSession(prior), true
			return nil
		} else if !ent.IsNotFound(err) {
			return classify(err)
		}

		create := tx.Session.Create().
			SetID(s.ID).
			SetUserID(s.UserID).
			SetKind(s.Kind).
			SetStatus(model.StatusInProgress).
			SetChapterKey(s.ChapterKey).
			SetTemplateID(s.TemplateID).
			SetLearningPhase(s.LearningPhase).
			SetIsRecoveryQuiz(s.IsRecoveryQuiz).
			SetQuizNumber(s.QuizNumber).
			SetQuestionsTotal(len(questions))
		if s.ExpiresAt != nil {
			create.SetExpiresAt(*s.ExpiresAt)
		}
		row, err := create.Save(ctx)
		if err != nil {
			return classify(err)
		}

		bulk := make([]*ent.SessionQuestionCreate, len(questions))
		for i, q := range questions {
			bulk[i] = tx.SessionQuestion.Create().
				SetSessionID(s.ID).
				SetUserID(s.UserID).
				SetQuestionID(q.QuestionID).
				SetPosition(q.Position).
				SetChapterKey(q.ChapterKey).
				SetRationale(q.Rationale)
		}
		if _, err := tx.SessionQuestion.CreateBulk(bulk...).Save(ctx); err != nil {
			return classify(err)
		}
		out = fromEntSession(row)
		return nil
	})
	return out, existed, err
}

func (r *sessionRepo) Get(ctx context.Context, userID, sessionID string) (*Session, error) {
	row, err := r.s.client.Session.Query().
		Where(entsess.ID(sessionID), entsess.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, errs.E(errs.NotFound, "SESSION_NOT_FOUND", "session "+sessionID+" not found")
		}
		return nil, classify(err)
	}
	return fromEntSession(row), nil
}

func (r *sessionRepo) Questions(ctx context.Context, sessionID string) ([]*SessionQuestion, error) {
	rows, err := r.s.client.SessionQuestion.Query().
		Where(entsq.SessionID(sessionID)).
		Order(ent.Asc(entsq.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]*SessionQuestion, len(rows))
	for i, q := range rows {
		out[i] = fromEntSQ(q)
	}
	return out, nil
}

func (r *sessionRepo) Active(ctx context.Context, userID, kind, chapterKey string) (*Session, error) {
	q := r.s.client.Session.Query().Where(
		entsess.UserID(userID),
		entsess.Kind(kind),
		entsess.Status(model.StatusInProgress),
	)
	if chapterKey != "" {
		q.Where(entsess.ChapterKey(chapterKey))
	}
	row, err := q.First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, classify(err)
	}
	return fromEntSession(row), nil
}

func (r *sessionRepo) BeginAnswer(ctx context.Context, sessionID, questionID string, now time.Time, ttl time.Duration) (*BeginAnswerResult, error) {
	var res BeginAnswerResult
	err := r.s.withTx(ctx, func(tx *ent.Tx) error {
		pos, err := tx.SessionQuestion.Query().
			Where(entsq.SessionID(sessionID), entsq.QuestionID(questionID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "question "+questionID+" is not part of session "+sessionID)
			}
			return classify(err)
		}

		if pos.Answered {
			existing, err := tx.Response.Query().
				Where(entresp.SessionID(sessionID), entresp.QuestionID(questionID)).
				Only(ctx)
			if err != nil {
				return classify(err)
			}
			res.AlreadyAnswered = true
			res.Existing = fromEntResponse(existing)
			res.Position = fromEntSQ(pos)
			return nil
		}

		// A live sentinel means a peer is mid-submission. A stale one is
		// treated as unanswered and re-armed.
		if pos.AnsweringAt != nil && now.Sub(*pos.AnsweringAt) < ttl {
			return errs.E(errs.StateConflict, "ANSWER_IN_FLIGHT", "a submission for this question is already in progress")
		}

		if _, err := tx.SessionQuestion.UpdateOne(pos).SetAnsweringAt(now).Save(ctx); err != nil {
			return classify(err)
		}
		res.Position = fromEntSQ(pos)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *sessionRepo) ClearSentinel(ctx context.Context, sessionID, questionID string) error {
	_, err := r.s.client.SessionQuestion.Update().
		Where(entsq.SessionID(sessionID), entsq.QuestionID(questionID), entsq.Answered(false)).
		ClearAnsweringAt().
		Save(ctx)
	return classify(err)
}

func (r *sessionRepo) CommitAnswer(ctx context.Context, b *AnswerBatch) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		// (a) Position record: answered, sentinel removed.
		n, err := tx.SessionQuestion.Update().
			Where(
				entsq.SessionID(b.SessionID),
				entsq.QuestionID(b.QuestionID),
				entsq.Answered(false),
			).
			SetAnswered(true).
			ClearAnsweringAt().
			SetStudentAnswer(b.StudentAnswer).
			SetIsCorrect(b.IsCorrect).
			SetTimeTakenSeconds(b.TimeTakenSeconds).
			SetThetaDelta(b.ThetaDelta).
			SetAnsweredAt(b.AnsweredAt).
			Save(ctx)
		if err != nil {
			return classify(err)
		}
		if n == 0 {
			// A peer committed between our sentinel and this batch.
			return errs.E(errs.StateConflict, "ALREADY_ANSWERED", "answer already committed")
		}

		// (b) Session counters.
		sessUpd := tx.Session.Update().
			Where(entsess.ID(b.SessionID)).
			AddQuestionsAnswered(1).
			AddTotalTimeSeconds(b.TimeTakenSeconds)
		if b.IsCorrect {
			sessUpd.AddCorrectCount(1)
		}
		if _, err := sessUpd.Save(ctx); err != nil {
			return classify(err)
		}

		// (c) The user's chapter state, when the kind carries a theta update.
		if b.NewChapterState != nil {
			u, err := tx.User.Get(ctx, b.UserID)
			if err != nil {
				return classify(err)
			}
			byChapter := u.ThetaByChapter
			if byChapter == nil {
				byChapter = make(map[string]model.ChapterState)
			}
			byChapter[b.ChapterKey] = *b.NewChapterState
			if _, err := tx.User.UpdateOne(u).SetThetaByChapter(byChapter).Save(ctx); err != nil {
				return classify(err)
			}
		}

		// (d) The response document, written exactly once.
		resp := b.Response
		_, err = tx.Response.Create().
			SetUserID(resp.UserID).
			SetSessionID(resp.SessionID).
			SetQuestionID(resp.QuestionID).
			SetKind(resp.Kind).
			SetChapterKey(resp.ChapterKey).
			SetSubTopics(resp.SubTopics).
			SetStudentAnswer(resp.StudentAnswer).
			SetCorrectAnswer(resp.CorrectAnswer).
			SetIsCorrect(resp.IsCorrect).
			SetTimeTakenSeconds(resp.TimeTakenSeconds).
			SetIrtA(resp.IRT.A).
			SetIrtB(resp.IRT.B).
			SetIrtC(resp.IRT.C).
			SetThetaDelta(resp.ThetaDelta).
			SetAnsweredAt(resp.AnsweredAt).
			Save(ctx)
		return classify(err)
	})
}

func (r *sessionRepo) MarkCompleting(ctx context.Context, userID, sessionID string) (*Session, error) {
	var out *Session
	err := r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Session.Query().
			Where(entsess.ID(sessionID), entsess.UserID(userID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return errs.E(errs.NotFound, "SESSION_NOT_FOUND", "session "+sessionID+" not found")
			}
			return classify(err)
		}
		switch row.Status {
		case model.StatusCompleted:
			return errs.E(errs.StateConflict, "ALREADY_COMPLETED", "session already completed")
		case model.StatusCompleting:
			// Recoverable: a crashed completion leaves the session here and
			// a follow-up complete call resumes it.
			out = fromEntSession(row)
			return nil
		case model.StatusInProgress:
			upd, err := tx.Session.UpdateOne(row).SetStatus(model.StatusCompleting).Save(ctx)
			if err != nil {
				return classify(err)
			}
			out = fromEntSession(upd)
			return nil
		default:
			return errs.E(errs.StateConflict, "SESSION_"+row.Status, "session is "+row.Status)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sessionRepo) FinalizeCompletion(ctx context.Context, userID, sessionID string, completedAt time.Time, build func(u *User) (*CompletionWrite, error)) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Session.Query().
			Where(entsess.ID(sessionID), entsess.UserID(userID)).
			Only(ctx)
		if err != nil {
			return classify(err)
		}
		if row.Status == model.StatusCompleted {
			return errs.E(errs.StateConflict, "ALREADY_COMPLETED", "session already completed")
		}

		// Re-read the user to fold in chapter states written by concurrent
		// submissions since the caller's snapshot.
		u, err := tx.User.Get(ctx, userID)
		if err != nil {
			if ent.IsNotFound(err) {
				return errs.E(errs.NotFound, "USER_NOT_FOUND", "user "+userID+" missing during completion")
			}
			return classify(err)
		}
		w, err := build(fromEntUser(u))
		if err != nil {
			return err
		}

		upd := tx.User.UpdateOne(u).
			SetThetaBySubject(w.ThetaBySubject).
			SetOverallTheta(w.OverallTheta).
			SetOverallPercentile(w.OverallPercentile).
			SetSubtopicAccuracy(w.SubtopicAccuracy).
			SetSubjectAccuracy(w.SubjectAccuracy).
			AddTotalQuestionsAttempted(w.AddQuestionsAttempted).
			AddTotalQuestionsCorrect(w.AddQuestionsCorrect).
			SetTotalTimeSpentMinutes(u.TotalTimeSpentMinutes + w.AddTimeSpentMinutes).
			SetCompletedQuizCount(w.CompletedQuizCount).
			SetLearningPhase(w.LearningPhase).
			SetCurrentDay(w.CurrentDay).
			SetLowAccuracyStreak(w.LowAccuracyStreak).
			SetRecoveryCooldown(w.RecoveryCooldown)
		if w.ChapterPracticeStats != nil {
			upd.SetChapterPracticeStats(w.ChapterPracticeStats)
		}
		if w.ThetaByChapter != nil {
			ledger := make(map[string]model.ChapterState, len(u.ThetaByChapter)+len(w.ThetaByChapter))
			for k, v := range u.ThetaByChapter {
				ledger[k] = v
			}
			for k, v := range w.ThetaByChapter {
				ledger[k] = v
			}
			upd.SetThetaByChapter(ledger)
		}
		if _, err := upd.Save(ctx); err != nil {
			return classify(err)
		}

		_, err = tx.Session.UpdateOne(row).
			SetStatus(model.StatusCompleted).
			SetCompletedAt(completedAt).
			SetCorrectCount(w.SessionCorrect).
			SetQuestionsAnswered(w.SessionAnswered).
			SetTotalTimeSeconds(w.SessionTotalTime).
			Save(ctx)
		return classify(err)
	})
}

func (r *sessionRepo) markTerminal(ctx context.Context, userID, sessionID, status, reason string) error {
	return r.s.withTx(ctx, func(tx *ent.Tx) error {
		row, err := tx.Session.Query().
			Where(entsess.ID(sessionID), entsess.UserID(userID)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return errs.E(errs.NotFound, "SESSION_NOT_FOUND", "session "+sessionID+" not found")
			}
			return classify(err)
		}
		if model.TerminalStatus(row.Status) {
			// Terminal states stick; repeated marks are no-ops.
			return nil
		}
		upd := tx.Session.UpdateOne(row).SetStatus(status)
		if reason != "" {
			upd.SetInvalidReason(reason)
		}
		_, err = upd.Save(ctx)
		return classify(err)
	})
}

func (r *sessionRepo) MarkExpired(ctx context.Context, userID, sessionID string) error {
	return r.markTerminal(ctx, userID, sessionID, model.StatusExpired, "")
}

func (r *sessionRepo) MarkInvalidated(ctx context.Context, userID, sessionID, reason string) error {
	return r.markTerminal(ctx, userID, sessionID, model.StatusInvalidated, reason)
}

func (r *sessionRepo) MarkAbandoned(ctx context.Context, userID, sessionID string) error {
	return r.markTerminal(ctx, userID, sessionID, model.StatusAbandoned, "")
}

func (r *sessionRepo) SaveMockAnswer(ctx context.Context, sessionID, questionID, answer string, clear bool) error {
	upd := r.s.client.SessionQuestion.Update().
		Where(entsq.SessionID(sessionID), entsq.QuestionID(questionID))
	if clear {
		upd.SetStudentAnswer("").SetAnswered(false)
	} else {
		upd.SetStudentAnswer(answer).SetAnswered(true)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "question "+questionID+" is not part of session "+sessionID)
	}
	return nil
}

func (r *sessionRepo) RecentQuestionIDs(ctx context.Context, userID string, kinds []string, lastK int) (map[string]bool, error) {
	sessions, err := r.s.client.Session.Query().
		Where(entsess.UserID(userID), entsess.KindIn(kinds...)).
		Order(ent.Desc(entsess.FieldCreatedAt)).
		Limit(lastK).
		IDs(ctx)
	if err != nil {
		return nil, classify(err)
	}
	if len(sessions) == 0 {
		return map[string]bool{}, nil
	}
	var ids []string
	err = r.s.client.SessionQuestion.Query().
		Where(entsq.SessionIDIn(sessions...)).
		Select(entsq.FieldQuestionID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, classify(err)
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *sessionRepo) RecentCompletedAccuracies(ctx context.Context, userID, kind string, n int) ([]float64, error) {
	rows, err := r.s.client.Session.Query().
		Where(
			entsess.UserID(userID),
			entsess.Kind(kind),
			entsess.Status(model.StatusCompleted),
		).
		Order(ent.Desc(entsess.FieldCompletedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, classify(err)
	}
	out := make([]float64, 0, len(rows))
	for _, row := range rows {
		if row.QuestionsAnswered == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, float64(row.CorrectCount)/float64(row.QuestionsAnswered))
	}
	return out, nil
}

func (r *sessionRepo) LastStartedAt(ctx context.Context, userID, kind string) (*time.Time, error) {
	row, err := r.s.client.Session.Query().
		Where(entsess.UserID(userID), entsess.Kind(kind)).
		Order(ent.Desc(entsess.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, classify(err)
	}
	t := row.CreatedAt
	return &t, nil
}
