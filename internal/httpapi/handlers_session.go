package httpapi

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeevibe/engine/internal/ai"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/session"
)

// questionView is the sanitized question payload: no correct answer, no
// answer value, no explanation.
type questionView struct {
	ID           string   `json:"id"`
	Position     int      `json:"position"`
	Subject      string   `json:"subject"`
	ChapterKey   string   `json:"chapter_key"`
	QuestionType string   `json:"question_type"`
	Options      []string `json:"options,omitempty"`
	QuestionText string   `json:"question_text,omitempty"`
	Rationale    string   `json:"rationale,omitempty"`
	Answered     bool     `json:"answered"`
	SavedAnswer  string   `json:"saved_answer,omitempty"`
}

type sessionView struct {
	ID                string `json:"id"`
	Kind              string `json:"kind"`
	Status            string `json:"status"`
	ChapterKey        string `json:"chapter_key,omitempty"`
	TemplateID        string `json:"template_id,omitempty"`
	QuizNumber        int    `json:"quiz_number,omitempty"`
	IsRecoveryQuiz    bool   `json:"is_recovery_quiz,omitempty"`
	QuestionsTotal    int    `json:"questions_total"`
	QuestionsAnswered int    `json:"questions_answered"`
	ExpiresAt         string `json:"expires_at,omitempty"`
}

func (s *Server) renderStart(c *gin.Context, res *session.StartResult) {
	ids := make([]string, len(res.Questions))
	for i, p := range res.Questions {
		ids[i] = p.QuestionID
	}
	qmap, err := s.questions.GetMany(c.Request.Context(), ids)
	if err != nil {
		fail(c, err)
		return
	}

	views := make([]questionView, 0, len(res.Questions))
	for _, p := range res.Questions {
		q, ok := qmap[p.QuestionID]
		if !ok {
			continue
		}
		v := questionView{
			ID:           q.ID,
			Position:     p.Position,
			Subject:      q.Subject,
			ChapterKey:   q.ChapterKey,
			QuestionType: q.QuestionType,
			Options:      q.Options,
			Rationale:    p.Rationale,
			Answered:     p.Answered,
		}
		if text, ok := q.Payload["question_text"].(string); ok {
			v.QuestionText = text
		}
		if res.Session.Kind == model.KindMockTest {
			v.SavedAnswer = p.StudentAnswer
		}
		views = append(views, v)
	}

	sv := sessionView{
		ID:                res.Session.ID,
		Kind:              res.Session.Kind,
		Status:            res.Session.Status,
		ChapterKey:        res.Session.ChapterKey,
		TemplateID:        res.Session.TemplateID,
		QuizNumber:        res.Session.QuizNumber,
		IsRecoveryQuiz:    res.Session.IsRecoveryQuiz,
		QuestionsTotal:    res.Session.QuestionsTotal,
		QuestionsAnswered: res.Session.QuestionsAnswered,
	}
	if res.Session.ExpiresAt != nil {
		sv.ExpiresAt = res.Session.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	respond(c, gin.H{
		"session":   sv,
		"questions": views,
		"resumed":   res.Resumed,
		"source":    questionSource(views),
	})
}

// questionSource classifies where a slate came from. Generated ids carry
// the gen_ prefix.
func questionSource(views []questionView) string {
	if len(views) == 0 {
		return "none"
	}
	generated := 0
	for _, v := range views {
		if strings.HasPrefix(v.ID, "gen_") {
			generated++
		}
	}
	switch generated {
	case 0:
		return "database"
	case len(views):
		return "ai"
	default:
		return "mixed"
	}
}

// ---- assessment ----

func (s *Server) assessmentQuestions(c *gin.Context) {
	res, err := s.sessions.StartAssessment(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

type assessmentSubmitRequest struct {
	Responses []struct {
		QuestionID  string `json:"question_id"`
		Answer      string `json:"answer"`
		TimeSeconds int    `json:"time_seconds"`
	} `json:"responses"`
}

// assessmentSubmit accepts the full answer sheet, replays it through the
// idempotent submit path and completes the assessment.
func (s *Server) assessmentSubmit(c *gin.Context) {
	var req assessmentSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failValidation(c, "malformed submit payload: "+err.Error())
		return
	}
	if len(req.Responses) == 0 {
		failValidation(c, "responses must not be empty")
		return
	}

	ctx := c.Request.Context()
	uid := callerID(c)
	res, err := s.sessions.StartAssessment(ctx, uid)
	if err != nil {
		fail(c, err)
		return
	}
	for _, r := range req.Responses {
		if _, err := s.sessions.SubmitAnswer(ctx, uid, res.Session.ID, r.QuestionID, session.AnswerInput{
			Answer:      r.Answer,
			TimeSeconds: r.TimeSeconds,
		}); err != nil {
			fail(c, err)
			return
		}
	}
	if _, err := s.sessions.Complete(ctx, uid, res.Session.ID); err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"status": model.AssessmentProcessing, "session_id": res.Session.ID})
}

func (s *Server) assessmentResults(c *gin.Context) {
	uid := c.Param("userId")
	if uid != callerID(c) && !s.admins[callerID(c)] {
		fail(c, errs.E(errs.Auth, "FORBIDDEN", "cannot read another user's results"))
		return
	}
	u, err := s.users.Ensure(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	if u.AssessmentStatus != model.AssessmentCompleted {
		respond(c, gin.H{"status": u.AssessmentStatus})
		return
	}
	respond(c, gin.H{
		"status":             u.AssessmentStatus,
		"completed_at":       u.AssessmentCompletedAt,
		"overall_theta":      u.OverallTheta,
		"overall_percentile": u.OverallPercentile,
		"theta_by_subject":   u.ThetaBySubject,
		"theta_by_chapter":   u.ThetaByChapter,
	})
}

// ---- quiz and practice starts ----

func (s *Server) dailyQuizGenerate(c *gin.Context) {
	res, err := s.sessions.StartDailyQuiz(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

type chapterRequest struct {
	ChapterKey string `json:"chapter_key"`
}

func (s *Server) chapterPracticeGenerate(c *gin.Context) {
	var req chapterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChapterKey == "" {
		failValidation(c, "chapter_key is required")
		return
	}
	res, err := s.sessions.StartChapterPractice(c.Request.Context(), callerID(c), req.ChapterKey)
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

func (s *Server) unlockQuizGenerate(c *gin.Context) {
	var req chapterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChapterKey == "" {
		failValidation(c, "chapter_key is required")
		return
	}
	res, err := s.sessions.StartUnlockQuiz(c.Request.Context(), callerID(c), req.ChapterKey)
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

// ---- answers and completion ----

type submitAnswerRequest struct {
	SessionID   string `json:"session_id"`
	QuestionID  string `json:"question_id"`
	Answer      string `json:"answer"`
	TimeSeconds int    `json:"time_seconds"`
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.QuestionID == "" {
		failValidation(c, "session_id and question_id are required")
		return
	}
	out, err := s.sessions.SubmitAnswer(c.Request.Context(), callerID(c), req.SessionID, req.QuestionID, session.AnswerInput{
		Answer:      req.Answer,
		TimeSeconds: req.TimeSeconds,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, out)
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) complete(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		failValidation(c, "session_id is required")
		return
	}
	sum, err := s.sessions.Complete(c.Request.Context(), callerID(c), req.SessionID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, sum)
}

func (s *Server) abandon(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		failValidation(c, "session_id is required")
		return
	}
	if err := s.sessions.Abandon(c.Request.Context(), callerID(c), req.SessionID); err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"abandoned": true})
}

// ---- snap practice ----

type snapSolveRequest struct {
	Problem string `json:"problem"`
}

// snapSolve draws one snap_solve quota slot and returns the worked
// solution.
func (s *Server) snapSolve(c *gin.Context) {
	var req snapSolveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Problem) == "" {
		failValidation(c, "problem is required")
		return
	}
	if s.assistant == nil {
		fail(c, errs.E(errs.NotFound, "AI_DISABLED", "no AI provider configured"))
		return
	}

	ctx := c.Request.Context()
	u, err := s.users.Ensure(ctx, callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	reservation, err := s.gate.Reserve(ctx, u, quota.FeatureSnapSolve, "")
	if err != nil {
		fail(c, err)
		return
	}
	sol, err := s.assistant.Solve(ctx, req.Problem)
	if err != nil {
		reservation.Rollback(ctx)
		fail(c, errs.Wrap(errs.Transient, "AI_UNAVAILABLE", "solve failed", err))
		return
	}
	respond(c, sol)
}

type snapQuestionsRequest struct {
	ChapterKey string `json:"chapter_key"`
	Bucket     string `json:"bucket"`
	Problem    string `json:"problem"`
}

func (s *Server) snapQuestions(c *gin.Context) {
	var req snapQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ChapterKey == "" || req.Bucket == "" {
		failValidation(c, "chapter_key and bucket are required")
		return
	}
	res, err := s.sessions.StartSnapPractice(c.Request.Context(), callerID(c), req.ChapterKey, req.Bucket, req.Problem)
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

// ---- mock tests ----

type mockStartRequest struct {
	TemplateID string `json:"template_id"`
}

func (s *Server) mockStart(c *gin.Context) {
	var req mockStartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TemplateID == "" {
		failValidation(c, "template_id is required")
		return
	}
	res, err := s.sessions.StartMockTest(c.Request.Context(), callerID(c), req.TemplateID)
	if err != nil {
		fail(c, err)
		return
	}
	s.renderStart(c, res)
}

type mockAnswerRequest struct {
	SessionID  string `json:"session_id"`
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

func (s *Server) mockSaveAnswer(c *gin.Context) {
	var req mockAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.QuestionID == "" || req.Answer == "" {
		failValidation(c, "session_id, question_id and answer are required")
		return
	}
	if err := s.sessions.SaveMockAnswer(c.Request.Context(), callerID(c), req.SessionID, req.QuestionID, req.Answer); err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"saved": true})
}

func (s *Server) mockClearAnswer(c *gin.Context) {
	var req mockAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.QuestionID == "" {
		failValidation(c, "session_id and question_id are required")
		return
	}
	if err := s.sessions.SaveMockAnswer(c.Request.Context(), callerID(c), req.SessionID, req.QuestionID, ""); err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{"cleared": true})
}

// ---- tutor ----

type tutorRequest struct {
	Question string `json:"question"`
	History  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"history"`
}

func (s *Server) tutorAsk(c *gin.Context) {
	var req tutorRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		failValidation(c, "question is required")
		return
	}
	if s.assistant == nil {
		fail(c, errs.E(errs.NotFound, "AI_DISABLED", "no AI provider configured"))
		return
	}

	ctx := c.Request.Context()
	u, err := s.users.Ensure(ctx, callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	reservation, err := s.gate.Reserve(ctx, u, quota.FeatureAITutor, "")
	if err != nil {
		fail(c, err)
		return
	}

	history := make([]ai.Message, 0, len(req.History))
	for _, m := range req.History {
		role := ai.RoleUser
		if m.Role == "assistant" {
			role = ai.RoleAssistant
		}
		history = append(history, ai.Message{Role: role, Content: m.Content})
	}
	answer, err := s.assistant.Tutor(ctx, history, req.Question)
	if err != nil {
		reservation.Rollback(ctx)
		fail(c, errs.Wrap(errs.Transient, "AI_UNAVAILABLE", "tutor failed", err))
		return
	}
	respond(c, gin.H{"answer": answer})
}
