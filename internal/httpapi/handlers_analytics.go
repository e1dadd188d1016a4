package httpapi

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

func (s *Server) analyticsOverview(c *gin.Context) {
	u, err := s.users.Ensure(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{
		"assessment_status":         u.AssessmentStatus,
		"overall_theta":             u.OverallTheta,
		"overall_percentile":        u.OverallPercentile,
		"theta_by_subject":          u.ThetaBySubject,
		"learning_phase":            u.LearningPhase,
		"current_day":               u.CurrentDay,
		"completed_quiz_count":      u.CompletedQuizCount,
		"total_questions_attempted": u.TotalQuestionsAttempted,
		"total_questions_correct":   u.TotalQuestionsCorrect,
		"total_time_spent_minutes":  u.TotalTimeSpentMinutes,
		"low_accuracy_streak":       u.LowAccuracyStreak,
	})
}

func (s *Server) analyticsMastery(c *gin.Context) {
	subject := c.Param("subject")
	if !validSubject(subject) {
		failValidation(c, "unknown subject "+subject)
		return
	}
	u, err := s.users.Ensure(c.Request.Context(), callerID(c))
	if err != nil {
		fail(c, err)
		return
	}

	chapters := map[string]model.ChapterState{}
	for key, st := range u.ThetaByChapter {
		if model.SubjectOfChapterKey(key) == subject {
			chapters[key] = st
		}
	}
	respond(c, gin.H{
		"subject":           subject,
		"state":             u.ThetaBySubject[subject],
		"chapters":          chapters,
		"subtopic_accuracy": u.SubtopicAccuracy[subject],
		"baseline":          baselineFor(u, subject),
	})
}

func validSubject(s string) bool {
	for _, known := range model.Subjects {
		if s == known {
			return true
		}
	}
	return false
}

func baselineFor(u *store.User, subject string) map[string]model.ChapterState {
	out := map[string]model.ChapterState{}
	for key, st := range u.AssessmentBaseline {
		if model.SubjectOfChapterKey(key) == subject {
			out[key] = st
		}
	}
	return out
}

type timelinePoint struct {
	Date       string  `json:"date"`
	Theta      float64 `json:"theta"`
	Percentile int     `json:"percentile"`
	QuizNumber int     `json:"quiz_number,omitempty"`
	QuizID     string  `json:"quiz_id"`
}

func (s *Server) analyticsTimeline(c *gin.Context) {
	subject := c.Query("subject")
	snaps, err := s.timelinePage(c)
	if err != nil {
		fail(c, err)
		return
	}

	points := make([]timelinePoint, 0, len(snaps))
	for _, snap := range snaps {
		p := timelinePoint{
			Date:       clock.DayKey(snap.CapturedAt),
			Theta:      snap.Payload.OverallTheta,
			Percentile: snap.Payload.OverallPercentile,
			QuizNumber: snap.QuizNumber,
			QuizID:     snap.QuizID,
		}
		if subject != "" {
			st, ok := snap.Payload.ThetaBySubject[subject]
			if !ok {
				continue
			}
			p.Theta, p.Percentile = st.Theta, st.Percentile
		}
		points = append(points, p)
	}
	respond(c, gin.H{"points": points, "next_cursor": nextCursor(snaps)})
}

type accuracyPoint struct {
	Date     string  `json:"date"`
	Accuracy float64 `json:"accuracy"`
	Kind     string  `json:"kind"`
	QuizID   string  `json:"quiz_id"`
}

func (s *Server) analyticsAccuracyTimeline(c *gin.Context) {
	snaps, err := s.timelinePage(c)
	if err != nil {
		fail(c, err)
		return
	}
	points := make([]accuracyPoint, 0, len(snaps))
	for _, snap := range snaps {
		points = append(points, accuracyPoint{
			Date:     clock.DayKey(snap.CapturedAt),
			Accuracy: snap.Payload.QuizPerformance.Accuracy,
			Kind:     snap.Payload.QuizPerformance.Kind,
			QuizID:   snap.QuizID,
		})
	}
	respond(c, gin.H{"points": points, "next_cursor": nextCursor(snaps)})
}

// timelinePage reads the shared limit/before paging parameters.
func (s *Server) timelinePage(c *gin.Context) ([]*store.Snapshot, error) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	var before time.Time
	if v := c.Query("before"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			before = t
		}
	}
	return s.snapshots.Timeline(c.Request.Context(), callerID(c), limit, before)
}

func nextCursor(snaps []*store.Snapshot) string {
	if len(snaps) == 0 {
		return ""
	}
	return snaps[len(snaps)-1].CapturedAt.UTC().Format(time.RFC3339)
}

type chapterOverview struct {
	ChapterKey string              `json:"chapter_key"`
	Subject    string              `json:"subject"`
	Attempted  bool                `json:"attempted"`
	State      *model.ChapterState `json:"state,omitempty"`
	Practice   *model.Tally        `json:"practice,omitempty"`
}

func (s *Server) analyticsAllChapters(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := s.users.Ensure(ctx, callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	keys, err := s.index.ChapterKeys(ctx)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]chapterOverview, 0, len(keys))
	for _, key := range keys {
		co := chapterOverview{ChapterKey: key, Subject: model.SubjectOfChapterKey(key)}
		if st, ok := u.ThetaByChapter[key]; ok && st.Attempts > 0 {
			co.Attempted = true
			stCopy := st
			co.State = &stCopy
		}
		if t, ok := u.ChapterPracticeStats[key]; ok {
			tCopy := t
			co.Practice = &tCopy
		}
		out = append(out, co)
	}
	respond(c, gin.H{"chapters": out})
}

// analyticsWeeklyActivity buckets the last seven IST days of quiz
// snapshots into a per-day count.
func (s *Server) analyticsWeeklyActivity(c *gin.Context) {
	ctx := c.Request.Context()
	snaps, err := s.snapshots.Timeline(ctx, callerID(c), 100, time.Time{})
	if err != nil {
		fail(c, err)
		return
	}

	now := s.clock.Now()
	days := make([]gin.H, 0, 7)
	counts := map[string]int{}
	for _, snap := range snaps {
		counts[clock.DayKey(snap.CapturedAt)]++
	}
	for i := 6; i >= 0; i-- {
		day := clock.DayKey(now.AddDate(0, 0, -i))
		days = append(days, gin.H{"date": day, "quizzes": counts[day]})
	}
	respond(c, gin.H{"days": days})
}

// ---- subscriptions ----

func (s *Server) subscriptionStatus(c *gin.Context) {
	ctx := c.Request.Context()
	u, err := s.users.Ensure(ctx, callerID(c))
	if err != nil {
		fail(c, err)
		return
	}
	tier, usage, err := s.gate.Usage(ctx, u)
	if err != nil {
		fail(c, err)
		return
	}
	cfg, err := s.gate.TierConfig(ctx, tier)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, gin.H{
		"tier":     tier,
		"limits":   cfg.Limits,
		"features": cfg.Features,
		"usage":    usage,
		"trial":    u.Trial,
	})
}
