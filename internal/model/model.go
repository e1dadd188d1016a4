// Package model holds the persisted value types shared between the ent
// schemas and the domain services. Everything here is plain data; behavior
// lives in the owning packages.
package model

import (
	"strings"
	"time"
)

// Subjects covered by the catalog.
const (
	SubjectPhysics     = "physics"
	SubjectChemistry   = "chemistry"
	SubjectMathematics = "mathematics"
)

// Subjects lists all subjects in canonical order.
var Subjects = []string{SubjectPhysics, SubjectChemistry, SubjectMathematics}

// SubjectOfChapterKey extracts the subject prefix from a canonical
// "subject_chapter" key. Returns "" for malformed keys.
func SubjectOfChapterKey(key string) string {
	i := strings.IndexByte(key, '_')
	if i < 0 {
		return ""
	}
	switch key[:i] {
	case SubjectPhysics, SubjectChemistry, SubjectMathematics:
		return key[:i]
	}
	return ""
}

// ChapterState is the per-(user, chapter) proficiency record.
type ChapterState struct {
	Theta        float64   `json:"theta"`
	ConfidenceSE float64   `json:"confidence_se"`
	Attempts     int       `json:"attempts"`
	Correct      int       `json:"correct"`
	Accuracy     float64   `json:"accuracy"`
	Percentile   int       `json:"percentile"`
	LastUpdated  time.Time `json:"last_updated"`
}

// SubjectState is the rolled-up proficiency for one subject.
type SubjectState struct {
	Theta      float64 `json:"theta"`
	Percentile int     `json:"percentile"`
	Accuracy   float64 `json:"accuracy"`
	Attempts   int     `json:"attempts"`
}

// Tally is a correct/total pair used for subtopic and subject accuracy.
type Tally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns correct/total, or 0 when total is 0.
func (t Tally) Accuracy() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total)
}

// Assessment status values.
const (
	AssessmentNotStarted = "not_started"
	AssessmentProcessing = "processing"
	AssessmentCompleted  = "completed"
	AssessmentError      = "error"
)

// Learning phases.
const (
	PhaseExploration  = "exploration"
	PhaseExploitation = "exploitation"
)

// Question types.
const (
	QuestionMCQSingle = "mcq_single"
	QuestionNumerical = "numerical"
)

// AnswerRange bounds an acceptable numerical answer.
type AnswerRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Session kinds.
const (
	KindDailyQuiz         = "daily_quiz"
	KindChapterPractice   = "chapter_practice"
	KindUnlockQuiz        = "unlock_quiz"
	KindSnapPractice      = "snap_practice"
	KindMockTest          = "mock_test"
	KindInitialAssessment = "initial_assessment"
)

// Session statuses.
const (
	StatusInProgress  = "in_progress"
	StatusCompleting  = "completing"
	StatusCompleted   = "completed"
	StatusExpired     = "expired"
	StatusInvalidated = "invalidated"
	StatusAbandoned   = "abandoned"
)

// TerminalStatus reports whether a session status is terminal.
func TerminalStatus(s string) bool {
	switch s {
	case StatusCompleted, StatusExpired, StatusInvalidated, StatusAbandoned:
		return true
	}
	return false
}

// Subscription is the payment state attached to a user. Purchase flows are
// external; only the resolved record is stored here.
type Subscription struct {
	Plan      string     `json:"plan,omitempty"`
	Status    string     `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Trial tracks a free-trial window.
type Trial struct {
	StartedAt *time.Time `json:"started_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Consumed  bool       `json:"consumed,omitempty"`
}

// QuizPerformance summarizes a completed session for snapshots.
type QuizPerformance struct {
	QuizID           string  `json:"quiz_id"`
	Kind             string  `json:"kind"`
	Questions        int     `json:"questions"`
	Correct          int     `json:"correct"`
	Accuracy         float64 `json:"accuracy"`
	TotalTimeSeconds int     `json:"total_time_seconds"`
}

// ChapterUpdate records one chapter's theta movement inside a snapshot.
type ChapterUpdate struct {
	ChapterKey string  `json:"chapter_key"`
	ThetaFrom  float64 `json:"theta_from"`
	ThetaTo    float64 `json:"theta_to"`
}

// SnapshotPayload is the immutable body of a theta snapshot.
type SnapshotPayload struct {
	ThetaByChapter    map[string]ChapterState `json:"theta_by_chapter"`
	ThetaBySubject    map[string]SubjectState `json:"theta_by_subject"`
	OverallTheta      float64                 `json:"overall_theta"`
	OverallPercentile int                     `json:"overall_percentile"`
	QuizPerformance   QuizPerformance         `json:"quiz_performance"`
	ChapterUpdates    []ChapterUpdate         `json:"chapter_updates"`
}

// TierLimits holds per-feature counters for one tier. -1 means unlimited.
type TierLimits struct {
	SnapSolveDaily       int `json:"snap_solve_daily"`
	DailyQuizDaily       int `json:"daily_quiz_daily"`
	AITutorDaily         int `json:"ai_tutor_daily"`
	ChapterPractice      int `json:"chapter_practice"`
	MockTestsMonthly     int `json:"mock_tests_monthly"`
	PerChapterQuestions  int `json:"per_chapter_questions"`
	MockStartIntervalSec int `json:"mock_start_interval_sec"`
}

// MockSection is one subject block of a mock-test template.
type MockSection struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

// MockTemplate drives mock-test composition.
type MockTemplate struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Total    int           `json:"total"`
	Sections []MockSection `json:"sections"`
}
