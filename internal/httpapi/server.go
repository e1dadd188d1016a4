// Package httpapi exposes the engine over JSON HTTP. Every response uses
// the {success, data|error, requestId} envelope; error kinds map to
// statuses through the errs taxonomy.
package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/ai"
	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/jobs"
	"github.com/jeevibe/engine/internal/quota"
	"github.com/jeevibe/engine/internal/session"
	"github.com/jeevibe/engine/internal/snapshot"
	"github.com/jeevibe/engine/internal/store"
)

// Sessions is the slice of the session coordinator the handlers call.
type Sessions interface {
	StartAssessment(ctx context.Context, userID string) (*session.StartResult, error)
	StartDailyQuiz(ctx context.Context, userID string) (*session.StartResult, error)
	StartChapterPractice(ctx context.Context, userID, chapterKey string) (*session.StartResult, error)
	StartUnlockQuiz(ctx context.Context, userID, chapterKey string) (*session.StartResult, error)
	StartSnapPractice(ctx context.Context, userID, chapterKey, bucket, problem string) (*session.StartResult, error)
	StartMockTest(ctx context.Context, userID, templateID string) (*session.StartResult, error)
	SubmitAnswer(ctx context.Context, userID, sessionID, questionID string, in session.AnswerInput) (*session.AnswerResult, error)
	SaveMockAnswer(ctx context.Context, userID, sessionID, questionID, answer string) error
	Complete(ctx context.Context, userID, sessionID string) (*session.CompletionSummary, error)
	Abandon(ctx context.Context, userID, sessionID string) error
}

// Config carries the server's auth material.
type Config struct {
	CronSecret string
	AdminUIDs  []string
}

// Server wires the handlers to the domain services.
type Server struct {
	cfg       Config
	sessions  Sessions
	users     store.UserRepo
	questions store.QuestionRepo
	tiers     store.TierRepo
	snapshots *snapshot.Service
	gate      *quota.Gate
	assistant *ai.Assistant
	jobs      *jobs.Runner
	importer  *catalog.Importer
	index     *catalog.Index
	clock     clock.Clock
	log       *zap.Logger

	admins map[string]bool
}

func NewServer(cfg Config, sessions Sessions, users store.UserRepo, questions store.QuestionRepo, tiers store.TierRepo, snapshots *snapshot.Service, gate *quota.Gate, assistant *ai.Assistant, runner *jobs.Runner, importer *catalog.Importer, index *catalog.Index, clk clock.Clock, log *zap.Logger) *Server {
	admins := make(map[string]bool, len(cfg.AdminUIDs))
	for _, uid := range cfg.AdminUIDs {
		admins[uid] = true
	}
	return &Server{
		cfg:       cfg,
		sessions:  sessions,
		users:     users,
		questions: questions,
		tiers:     tiers,
		snapshots: snapshots,
		gate:      gate,
		assistant: assistant,
		jobs:      runner,
		importer:  importer,
		index:     index,
		clock:     clk,
		log:       log,
		admins:    admins,
	}
}

// Router builds the gin engine with the full route table.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		respond(c, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	cron := r.Group("/jobs", s.cronAuth())
	cron.POST("/:name", s.runJob)

	api := r.Group("/", s.identity())
	{
		api.GET("/assessment/questions", s.assessmentQuestions)
		api.POST("/assessment/submit", s.assessmentSubmit)
		api.GET("/assessment/results/:userId", s.assessmentResults)

		api.GET("/daily-quiz/generate", s.dailyQuizGenerate)
		api.POST("/daily-quiz/submit-answer", s.submitAnswer)
		api.POST("/daily-quiz/complete", s.complete)
		api.POST("/daily-quiz/abandon", s.abandon)

		api.POST("/chapter-practice/generate", s.chapterPracticeGenerate)
		api.POST("/chapter-practice/submit-answer", s.submitAnswer)
		api.POST("/chapter-practice/complete", s.complete)

		api.POST("/unlock-quiz/generate", s.unlockQuizGenerate)
		api.POST("/unlock-quiz/submit-answer", s.submitAnswer)
		api.POST("/unlock-quiz/complete", s.complete)

		api.POST("/snap-practice/solve", s.snapSolve)
		api.POST("/snap-practice/questions", s.snapQuestions)
		api.POST("/snap-practice/submit-answer", s.submitAnswer)
		api.POST("/snap-practice/complete", s.complete)

		api.POST("/mock-tests/start", s.mockStart)
		api.POST("/mock-tests/save-answer", s.mockSaveAnswer)
		api.POST("/mock-tests/clear-answer", s.mockClearAnswer)
		api.POST("/mock-tests/submit", s.complete)
		api.POST("/mock-tests/abandon", s.abandon)

		api.POST("/tutor/ask", s.tutorAsk)

		api.GET("/analytics/overview", s.analyticsOverview)
		api.GET("/analytics/mastery/:subject", s.analyticsMastery)
		api.GET("/analytics/mastery-timeline", s.analyticsTimeline)
		api.GET("/analytics/accuracy-timeline", s.analyticsAccuracyTimeline)
		api.GET("/analytics/all-chapters", s.analyticsAllChapters)
		api.GET("/analytics/weekly-activity", s.analyticsWeeklyActivity)

		api.GET("/subscriptions/status", s.subscriptionStatus)

		admin := api.Group("/admin", s.adminOnly())
		admin.POST("/catalog/import", s.catalogImport)
		admin.GET("/tiers", s.listTiers)
		admin.PUT("/tiers/:name", s.upsertTier)
	}
	return r
}
