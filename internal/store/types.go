package store

import (
	"time"

	"github.com/jeevibe/engine/internal/model"
)

// User is the student profile record as seen by the domain services.
type User struct {
	ID                      string
	OverallTheta            float64
	OverallPercentile       int
	ThetaBySubject          map[string]model.SubjectState
	ThetaByChapter          map[string]model.ChapterState
	SubtopicAccuracy        map[string]map[string]model.Tally
	SubjectAccuracy         map[string]model.Tally
	TotalQuestionsAttempted int
	TotalQuestionsCorrect   int
	TotalTimeSpentMinutes   float64
	CompletedQuizCount      int
	LearningPhase           string
	CurrentDay              int
	AssessmentStatus        string
	AssessmentBaseline      map[string]model.ChapterState
	AssessmentCompletedAt   *time.Time
	LowAccuracyStreak       int
	RecoveryCooldown        int
	ChapterPracticeStats    map[string]model.Tally
	Subscription            *model.Subscription
	Trial                   *model.Trial
	TierOverride            string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Question is one catalog entry.
type Question struct {
	ID            string
	Subject       string
	Chapter       string
	ChapterKey    string
	SubTopics     []string
	QuestionType  string
	Options       []string
	CorrectAnswer string
	AnswerValue   *float64
	AnswerRange   *model.AnswerRange
	IRT           struct{ A, B, C float64 }
	IsAssessment  bool
	AttemptsCount int
	CorrectCount  int
	Payload       map[string]any
}

// Session is the session document.
type Session struct {
	ID                string
	UserID            string
	Kind              string
	Status            string
	ChapterKey        string
	TemplateID        string
	LearningPhase     string
	IsRecoveryQuiz    bool
	QuizNumber        int
	QuestionsTotal    int
	QuestionsAnswered int
	CorrectCount      int
	TotalTimeSeconds  int
	InvalidReason     string
	ExpiresAt         *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SessionQuestion is one ordered position within a session.
type SessionQuestion struct {
	SessionID        string
	UserID           string
	QuestionID       string
	Position         int
	ChapterKey       string
	Rationale        string
	Answered         bool
	AnsweringAt      *time.Time
	StudentAnswer    string
	IsCorrect        bool
	TimeTakenSeconds int
	ThetaDelta       float64
	AnsweredAt       *time.Time
}

// Response is the immutable per-answer record.
type Response struct {
	UserID           string
	SessionID        string
	QuestionID       string
	Kind             string
	ChapterKey       string
	SubTopics        []string
	StudentAnswer    string
	CorrectAnswer    string
	IsCorrect        bool
	TimeTakenSeconds int
	IRT              struct{ A, B, C float64 }
	ThetaDelta       float64
	AnsweredAt       time.Time
}

// QuotaCounter is one (user, feature, period) usage row.
type QuotaCounter struct {
	UserID    string
	Feature   string
	PeriodKey string
	Used      int
	Limit     int
	ResetsAt  time.Time
}

// ReviewInterval is the spaced-repetition schedule for one question.
type ReviewInterval struct {
	UserID        string
	QuestionID    string
	IntervalDays  int
	NextReview    time.Time
	TimesReviewed int
}

// Snapshot is an immutable theta snapshot row.
type Snapshot struct {
	UserID     string
	QuizID     string
	QuizNumber int
	Payload    model.SnapshotPayload
	CapturedAt time.Time
}

// TierConfig is one tier's limits row.
type TierConfig struct {
	Name                  string
	Limits                model.TierLimits
	Features              []string
	ChapterPracticeWeekly bool
	ExplorationEndQuiz    int
	RecoveryTrigger       int
}

// AnswerBatch is the four-write atomic commit of an answer submission:
// position record, session counters, the user's chapter state, and the
// response document. Partial commits are a bug.
type AnswerBatch struct {
	SessionID  string
	UserID     string
	QuestionID string

	StudentAnswer    string
	IsCorrect        bool
	TimeTakenSeconds int
	ThetaDelta       float64
	AnsweredAt       time.Time

	ChapterKey      string
	NewChapterState *model.ChapterState // nil when the kind carries no theta update

	Response Response
}

// BeginAnswerResult reports the outcome of arming the answer sentinel.
type BeginAnswerResult struct {
	// AlreadyAnswered is set when the position was answered before; Existing
	// holds the stored response, returned unchanged to the caller.
	AlreadyAnswered bool
	Existing        *Response
	Position        *SessionQuestion
}

// CompletionWrite carries every field the completion transaction sets on the
// user document alongside the session flip to completed.
type CompletionWrite struct {
	ThetaBySubject        map[string]model.SubjectState
	OverallTheta          float64
	OverallPercentile     int
	SubtopicAccuracy      map[string]map[string]model.Tally
	SubjectAccuracy       map[string]model.Tally
	AddQuestionsAttempted int
	AddQuestionsCorrect   int
	AddTimeSpentMinutes   float64
	CompletedQuizCount    int
	LearningPhase         string
	CurrentDay            int
	LowAccuracyStreak     int
	RecoveryCooldown      int
	ChapterPracticeStats  map[string]model.Tally        // nil to leave unchanged
	ThetaByChapter        map[string]model.ChapterState // merged into the ledger; nil to leave unchanged

	SessionCorrect   int
	SessionAnswered  int
	SessionTotalTime int
}

// AssessmentWrite is the one-shot user update at assessment completion.
type AssessmentWrite struct {
	ThetaByChapter    map[string]model.ChapterState
	ThetaBySubject    map[string]model.SubjectState
	OverallTheta      float64
	OverallPercentile int
	Baseline          map[string]model.ChapterState
	CompletedAt       time.Time
	QuestionsAnswered int
	QuestionsCorrect  int
	TimeSpentMinutes  float64
}
