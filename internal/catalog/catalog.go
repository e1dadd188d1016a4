// Package catalog serves the immutable question bank: a cached in-memory
// index over the store, candidate filtering for the selection engine, and
// the validated JSON import path used by seeding.
package catalog

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/jeevibe/engine/internal/store"
)

// Widening bounds for the difficulty window around a target theta. The
// window starts at ±0.5 and grows in 0.25 steps until enough candidates
// exist or ±2.0 is reached.
const (
	windowStart = 0.5
	windowStep  = 0.25
	windowMax   = 2.0
)

// Discrimination floors, tried strictest first. Questions with a below the
// floor are held back while sharper items can fill the slate.
var discriminationFloors = []float64{1.4, 1.0, 0}

// Index is a read-through cache over the question catalog. Chapter lists
// are immutable once loaded, so a TTL plus singleflight keeps concurrent
// requests from stampeding the store after a cold start or a seed run.
type Index struct {
	questions store.QuestionRepo
	log       *zap.Logger
	ttl       time.Duration

	mu         sync.RWMutex
	byChapter  map[string]chapterEntry
	assessment []*store.Question
	assessedAt time.Time

	group singleflight.Group
}

type chapterEntry struct {
	questions []*store.Question
	loadedAt  time.Time
}

// NewIndex builds an index over the given repository. ttl bounds staleness
// after a catalog import; an hour is fine in production, tests pass a short
// ttl or re-create the index.
func NewIndex(questions store.QuestionRepo, ttl time.Duration, log *zap.Logger) *Index {
	return &Index{
		questions: questions,
		log:       log,
		ttl:       ttl,
		byChapter: make(map[string]chapterEntry),
	}
}

// Chapter returns the chapter's questions ordered by difficulty then id.
func (ix *Index) Chapter(ctx context.Context, chapterKey string) ([]*store.Question, error) {
	ix.mu.RLock()
	entry, ok := ix.byChapter[chapterKey]
	ix.mu.RUnlock()
	if ok && time.Since(entry.loadedAt) < ix.ttl {
		return entry.questions, nil
	}

	v, err, _ := ix.group.Do("chapter:"+chapterKey, func() (any, error) {
		qs, err := ix.questions.ByChapter(ctx, chapterKey)
		if err != nil {
			return nil, err
		}
		ix.mu.Lock()
		ix.byChapter[chapterKey] = chapterEntry{questions: qs, loadedAt: time.Now()}
		ix.mu.Unlock()
		ix.log.Debug("catalog chapter loaded",
			zap.String("chapter", chapterKey),
			zap.Int("questions", len(qs)))
		return qs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*store.Question), nil
}

// Assessment returns the curated initial-assessment subset.
func (ix *Index) Assessment(ctx context.Context) ([]*store.Question, error) {
	ix.mu.RLock()
	cached, at := ix.assessment, ix.assessedAt
	ix.mu.RUnlock()
	if cached != nil && time.Since(at) < ix.ttl {
		return cached, nil
	}

	v, err, _ := ix.group.Do("assessment", func() (any, error) {
		qs, err := ix.questions.Assessment(ctx)
		if err != nil {
			return nil, err
		}
		ix.mu.Lock()
		ix.assessment, ix.assessedAt = qs, time.Now()
		ix.mu.Unlock()
		return qs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*store.Question), nil
}

// ChapterKeys lists every chapter key present in the catalog.
func (ix *Index) ChapterKeys(ctx context.Context) ([]string, error) {
	return ix.questions.ChapterKeys(ctx)
}

// Invalidate drops all cached lists. Called after an import.
func (ix *Index) Invalidate() {
	ix.mu.Lock()
	ix.byChapter = make(map[string]chapterEntry)
	ix.assessment = nil
	ix.mu.Unlock()
}

// Candidates returns at least need questions near target from one chapter,
// subject to the exclusion set. See Filter for the widening rules.
func (ix *Index) Candidates(ctx context.Context, chapterKey string, target float64, need int, exclude map[string]bool) ([]*store.Question, error) {
	pool, err := ix.Chapter(ctx, chapterKey)
	if err != nil {
		return nil, err
	}
	return Filter(pool, target, need, exclude), nil
}

// Filter narrows pool to questions whose difficulty sits inside a window
// around target. The window widens from ±0.5 to ±2.0 in 0.25 steps, and at
// each width the discrimination floor relaxes 1.4 -> 1.0 -> none, stopping
// as soon as need candidates exist. When even the widest pass comes up
// empty the exclusion set is dropped: repeating a question beats serving
// nothing.
func Filter(pool []*store.Question, target float64, need int, exclude map[string]bool) []*store.Question {
	if need <= 0 {
		return nil
	}
	for halfWidth := windowStart; ; halfWidth += windowStep {
		for _, floor := range discriminationFloors {
			got := inWindow(pool, target, halfWidth, floor, exclude)
			if len(got) >= need {
				return got
			}
		}
		if halfWidth >= windowMax {
			break
		}
	}
	// Best effort at full width, loosest floor.
	got := inWindow(pool, target, windowMax, 0, exclude)
	if len(got) > 0 {
		return got
	}
	return inWindow(pool, target, windowMax, 0, nil)
}

func inWindow(pool []*store.Question, target, halfWidth, aFloor float64, exclude map[string]bool) []*store.Question {
	var out []*store.Question
	for _, q := range pool {
		if exclude[q.ID] {
			continue
		}
		if q.IRT.A < aFloor {
			continue
		}
		if q.IRT.B < target-halfWidth || q.IRT.B > target+halfWidth {
			continue
		}
		out = append(out, q)
	}
	return out
}
