package store

import (
	"context"
	"time"

	"github.com/jeevibe/engine/internal/model"
)

// UserRepo manages the user document. The user doc exclusively owns its
// chapter states, subtopic map, baseline and cumulative stats.
type UserRepo interface {
	// Get returns the user or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*User, error)

	// Ensure returns the user, creating an empty profile on first touch.
	Ensure(ctx context.Context, id string) (*User, error)

	// SetAssessmentStatus moves the assessment status marker.
	SetAssessmentStatus(ctx context.Context, id, status string) error

	// ApplyAssessment writes the assessment result in one transaction.
	ApplyAssessment(ctx context.Context, id string, w AssessmentWrite) error

	// SaveBilling updates the subscription/trial records.
	SaveBilling(ctx context.Context, id string, sub *model.Subscription, trial *model.Trial) error

	// Page iterates users in stable id order for scheduled jobs.
	Page(ctx context.Context, afterID string, limit int) ([]*User, error)
}

// QuestionRepo is the read side of the immutable catalog plus the seed and
// stat-refresh write paths.
type QuestionRepo interface {
	Get(ctx context.Context, id string) (*Question, error)
	GetMany(ctx context.Context, ids []string) (map[string]*Question, error)
	ByChapter(ctx context.Context, chapterKey string) ([]*Question, error)
	ChapterKeys(ctx context.Context) ([]string, error)
	Assessment(ctx context.Context) ([]*Question, error)
	UpsertBatch(ctx context.Context, qs []*Question) (int, error)
	RefreshStats(ctx context.Context) (int, error)
}

// SessionRepo owns the session documents, their question positions, and the
// transactional sections of the session life-cycle.
type SessionRepo interface {
	// CreateIfAbsent writes the session and its positions in one
	// transaction. If the id already exists, or another in_progress session
	// for the same (user, kind[, chapter]) slot exists, that session is
	// returned with existed=true and nothing is written.
	CreateIfAbsent(ctx context.Context, s *Session, questions []*SessionQuestion) (out *Session, existed bool, err error)

	Get(ctx context.Context, userID, sessionID string) (*Session, error)
	Questions(ctx context.Context, sessionID string) ([]*SessionQuestion, error)
	Active(ctx context.Context, userID, kind, chapterKey string) (*Session, error)

	// BeginAnswer arms the answering sentinel on one position inside a
	// transaction. Sentinels older than ttl are treated as unanswered.
	BeginAnswer(ctx context.Context, sessionID, questionID string, now time.Time, ttl time.Duration) (*BeginAnswerResult, error)

	// ClearSentinel is the compensating write when scoring is cancelled
	// between BeginAnswer and CommitAnswer.
	ClearSentinel(ctx context.Context, sessionID, questionID string) error

	// CommitAnswer applies the four-write answer batch atomically.
	CommitAnswer(ctx context.Context, b *AnswerBatch) error

	// MarkCompleting flips in_progress -> completing, enforcing the
	// completion state machine (ALREADY_COMPLETED, IN_PROGRESS_BY_PEER).
	MarkCompleting(ctx context.Context, userID, sessionID string) (*Session, error)

	// FinalizeCompletion re-reads the user inside the transaction, asks
	// build for the authoritative rollup, then writes session -> completed
	// together with the user update.
	FinalizeCompletion(ctx context.Context, userID, sessionID string, completedAt time.Time, build func(u *User) (*CompletionWrite, error)) error

	MarkExpired(ctx context.Context, userID, sessionID string) error
	MarkInvalidated(ctx context.Context, userID, sessionID, reason string) error
	MarkAbandoned(ctx context.Context, userID, sessionID string) error

	// SaveMockAnswer records (or clears) a mock-test answer without scoring.
	SaveMockAnswer(ctx context.Context, sessionID, questionID, answer string, clear bool) error

	// RecentQuestionIDs returns the ids selected in the user's last k
	// sessions of the given kinds (the selection exclusion set).
	RecentQuestionIDs(ctx context.Context, userID string, kinds []string, lastK int) (map[string]bool, error)

	// RecentCompletedAccuracies returns the accuracies of the user's last n
	// completed sessions of a kind, most recent first.
	RecentCompletedAccuracies(ctx context.Context, userID, kind string, n int) ([]float64, error)

	// LastStartedAt returns the creation time of the user's most recent
	// session of a kind, or nil.
	LastStartedAt(ctx context.Context, userID, kind string) (*time.Time, error)
}

// ResponseRepo reads the immutable response documents.
type ResponseRepo interface {
	BySession(ctx context.Context, sessionID string) ([]*Response, error)
	CorrectQuestionIDs(ctx context.Context, userID string, since time.Time) ([]string, error)
}

// QuotaRepo owns the (user, feature, period) counters. Counters use
// row-level transactions only and never transact with theta state.
type QuotaRepo interface {
	Get(ctx context.Context, userID, feature, periodKey string) (*QuotaCounter, error)

	// TryReserve atomically increments used when used < limit, creating the
	// row on first use. Returns the counter after the attempt and whether
	// the reservation was granted.
	TryReserve(ctx context.Context, c QuotaCounter) (*QuotaCounter, bool, error)

	// Release decrements used on caller failure, flooring at zero.
	Release(ctx context.Context, userID, feature, periodKey string) error

	ForUser(ctx context.Context, userID string, periodKeys map[string]string) ([]*QuotaCounter, error)
}

// ReviewRepo owns spaced-repetition intervals.
type ReviewRepo interface {
	Get(ctx context.Context, userID, questionID string) (*ReviewInterval, error)
	Upsert(ctx context.Context, r ReviewInterval) error

	// Due returns intervals with next_review <= before, most overdue first,
	// question id as tie-break.
	Due(ctx context.Context, userID string, before time.Time, limit int) ([]*ReviewInterval, error)
}

// SnapshotRepo owns the immutable theta snapshots.
type SnapshotRepo interface {
	// Create writes a quiz snapshot; an existing (user, quiz) snapshot is
	// left untouched so completion replays stay idempotent.
	Create(ctx context.Context, s *Snapshot) error

	// UpsertWeekly overwrites the snapshot for an ISO week key; a second
	// job run in the same week replaces the earlier sweep.
	UpsertWeekly(ctx context.Context, s *Snapshot) error

	Get(ctx context.Context, userID, quizID string) (*Snapshot, error)
	Timeline(ctx context.Context, userID string, limit int, beforeCursor time.Time) ([]*Snapshot, error)
	Count(ctx context.Context, userID string) (int, error)
}

// TierRepo owns the tier-config collection.
type TierRepo interface {
	Get(ctx context.Context, name string) (*TierConfig, error)
	All(ctx context.Context) ([]*TierConfig, error)
	Upsert(ctx context.Context, cfg *TierConfig) error
}
