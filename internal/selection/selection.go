// Package selection builds the question slate for every session kind. It
// balances exploration of untouched chapters against deliberate practice on
// weak ones, folds due reviews in, and keeps slates deterministic for a
// given user so a retried create sees the same questions.
package selection

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"sort"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/irt"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/proficiency"
	"github.com/jeevibe/engine/internal/spacedrep"
	"github.com/jeevibe/engine/internal/store"
)

// Slate sizes and thresholds.
const (
	AssessmentSize      = 30
	DailyQuizSize       = 10
	UnlockQuizSize      = 5
	UnlockPassThreshold = 3
	SnapMaxQuestions    = 5

	// Exclusion lookback: questions served in this many recent sessions
	// are held out of new slates.
	exclusionSessions = 5
)

// Daily-quiz composition in the exploitation phase.
const (
	deliberateShare = 0.60
	reviewShare     = 0.25
)

// Exploration ratio decay: the share of exploration picks inside a quiz
// starts at 0.6 and tapers to 0.3 as the quiz count grows.
const (
	exploreRatioStart = 0.60
	exploreRatioFloor = 0.30
	exploreRatioDecay = 0.04
)

// Recovery slates sit below the student's level.
const (
	recoveryThetaDrop  = 0.3
	recoveryHalfWindow = 0.4
)

// Rationale tags recorded on each slate position.
const (
	RationaleAssessment = "assessment"
	RationaleExplore    = "exploration"
	RationaleDeliberate = "deliberate_practice"
	RationaleReview     = "spaced_review"
	RationaleRecovery   = "recovery"
	RationalePractice   = "chapter_practice"
	RationaleUnlock     = "unlock_check"
	RationaleSnap       = "snap_followup"
	RationaleMock       = "mock_section"
)

// Picked is one slate position.
type Picked struct {
	Question  *store.Question
	Rationale string
}

// Selector assembles slates from the catalog, the review schedule and the
// user's session history.
type Selector struct {
	catalog  *catalog.Index
	reviews  *spacedrep.Scheduler
	sessions store.SessionRepo
	log      *zap.Logger
}

func New(cat *catalog.Index, reviews *spacedrep.Scheduler, sessions store.SessionRepo, log *zap.Logger) *Selector {
	return &Selector{catalog: cat, reviews: reviews, sessions: sessions, log: log}
}

// seededRand derives a deterministic generator from the user id, so slate
// construction is stable across create retries.
func seededRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	s := h.Sum64()
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// ExplorationRatio returns the exploration share of a quiz at the given
// completed-quiz count.
func ExplorationRatio(completedQuizzes int) float64 {
	r := exploreRatioStart - exploreRatioDecay*float64(completedQuizzes)
	if r < exploreRatioFloor {
		return exploreRatioFloor
	}
	return r
}

// NeedsRecovery reports whether the accuracy history triggers a recovery
// quiz: trigger consecutive completed quizzes below 50%, with cooldown
// quizzes of grace after a recovery has run.
func NeedsRecovery(recentAccuracies []float64, trigger, cooldownRemaining int) bool {
	if cooldownRemaining > 0 || trigger <= 0 {
		return false
	}
	if len(recentAccuracies) < trigger {
		return false
	}
	for _, acc := range recentAccuracies[:trigger] {
		if acc >= 0.5 {
			return false
		}
	}
	return true
}

// Assessment builds the 30-question initial slate: ten per subject,
// stratified easy/medium/hard, shuffled deterministically per user.
func (s *Selector) Assessment(ctx context.Context, userID string) ([]Picked, error) {
	pool, err := s.catalog.Assessment(ctx)
	if err != nil {
		return nil, err
	}
	perSubject := AssessmentSize / len(model.Subjects)
	rng := seededRand(userID)

	var out []Picked
	for _, subject := range model.Subjects {
		var qs []*store.Question
		for _, q := range pool {
			if q.Subject == subject {
				qs = append(qs, q)
			}
		}
		if len(qs) < perSubject {
			return nil, errs.E(errs.Fatal, "ASSESSMENT_POOL_SHORT",
				"assessment pool has too few "+subject+" questions")
		}
		for _, q := range stratifiedPick(qs, perSubject, rng) {
			out = append(out, Picked{Question: q, Rationale: RationaleAssessment})
		}
	}
	return Interleave(out, rng), nil
}

// stratifiedPick splits the pool into difficulty terciles and draws evenly
// from each, easiest tercile first when counts do not divide evenly.
func stratifiedPick(pool []*store.Question, n int, rng *rand.Rand) []*store.Question {
	sorted := make([]*store.Question, len(pool))
	copy(sorted, pool)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].IRT.B != sorted[j].IRT.B {
			return sorted[i].IRT.B < sorted[j].IRT.B
		}
		return sorted[i].ID < sorted[j].ID
	})

	third := len(sorted) / 3
	terciles := [][]*store.Question{
		sorted[:third],
		sorted[third : 2*third],
		sorted[2*third:],
	}
	var out []*store.Question
	for i, t := range terciles {
		want := n / 3
		if i < n%3 {
			want++
		}
		shuffled := make([]*store.Question, len(t))
		copy(shuffled, t)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if want > len(shuffled) {
			want = len(shuffled)
		}
		out = append(out, shuffled[:want]...)
	}
	return out
}

// DailyQuiz builds the adaptive daily slate for the user's current phase.
func (s *Selector) DailyQuiz(ctx context.Context, u *store.User, recovery bool, recoveryTrigger int) ([]Picked, error) {
	exclude, err := s.exclusionSet(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	rng := seededRand(u.ID + ":" + string(rune('0'+u.CompletedQuizCount%10)) + "q")

	var out []Picked
	switch {
	case recovery:
		out, err = s.recoverySlate(ctx, u, exclude)
	case u.LearningPhase == model.PhaseExploitation:
		out, err = s.exploitationSlate(ctx, u, exclude, rng)
	default:
		out, err = s.explorationSlate(ctx, u, DailyQuizSize, exclude)
	}
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errs.E(errs.NotFound, "NO_QUESTIONS", "catalog has no candidates for this user")
	}
	return Interleave(out, rng), nil
}

// explorationSlate spreads picks over the least-attempted chapters at each
// chapter's own working level.
func (s *Selector) explorationSlate(ctx context.Context, u *store.User, size int, exclude map[string]bool) ([]Picked, error) {
	keys, err := s.catalog.ChapterKeys(ctx)
	if err != nil {
		return nil, err
	}
	// Least-attempted chapters first, key order as the tie-break.
	sort.Slice(keys, func(i, j int) bool {
		ai := u.ThetaByChapter[keys[i]].Attempts
		aj := u.ThetaByChapter[keys[j]].Attempts
		if ai != aj {
			return ai < aj
		}
		return keys[i] < keys[j]
	})

	var out []Picked
	for _, key := range keys {
		if len(out) >= size {
			break
		}
		target := proficiency.PriorFor(u, key).Theta
		picks, err := s.fromChapter(ctx, key, target, 1, exclude, RationaleExplore)
		if err != nil {
			return nil, err
		}
		out = append(out, picks...)
	}
	return out, nil
}

// exploitationSlate mixes deliberate practice on weak chapters with due
// reviews and a tapering exploration share.
func (s *Selector) exploitationSlate(ctx context.Context, u *store.User, exclude map[string]bool, rng *rand.Rand) ([]Picked, error) {
	size := DailyQuizSize
	nDeliberate := int(deliberateShare * float64(size))
	nReview := int(reviewShare * float64(size))

	var out []Picked

	// Spaced reviews first; a short due set frees slots for practice.
	dueIDs, err := s.reviews.Due(ctx, u.ID, nReview)
	if err != nil {
		return nil, err
	}
	reviewPicks, err := s.reviewPicks(ctx, dueIDs)
	if err != nil {
		return nil, err
	}
	out = append(out, reviewPicks...)

	// Deliberate practice targets the weakest practiced chapters, pitched
	// slightly above the current level.
	weak := weakestChapters(u, 3)
	for i := 0; len(out) < nReview+nDeliberate && len(weak) > 0; i++ {
		key := weak[i%len(weak)]
		target := irt.ClampTheta(u.ThetaByChapter[key].Theta + 0.25)
		picks, err := s.fromChapter(ctx, key, target, 1, excludeWith(exclude, out), RationaleDeliberate)
		if err != nil {
			return nil, err
		}
		if len(picks) == 0 {
			weak = append(weak[:i%len(weak)], weak[i%len(weak)+1:]...)
			i--
			continue
		}
		out = append(out, picks...)
	}

	// The remainder explores, honoring the tapering ratio as a cap.
	remaining := size - len(out)
	if maxExplore := int(ExplorationRatio(u.CompletedQuizCount) * float64(size)); remaining > maxExplore && len(out) > 0 {
		// Backfill overflow with more deliberate practice when exploration
		// is capped below the open slots.
		extra := remaining - maxExplore
		for _, key := range weak {
			if extra == 0 {
				break
			}
			target := irt.ClampTheta(u.ThetaByChapter[key].Theta + 0.25)
			picks, err := s.fromChapter(ctx, key, target, extra, excludeWith(exclude, out), RationaleDeliberate)
			if err != nil {
				return nil, err
			}
			out = append(out, picks...)
			extra -= len(picks)
		}
		remaining = size - len(out)
	}
	if remaining > 0 {
		explore, err := s.explorationSlate(ctx, u, remaining, excludeWith(exclude, out))
		if err != nil {
			return nil, err
		}
		out = append(out, explore...)
	}
	if len(out) > size {
		out = out[:size]
	}
	return out, nil
}

// recoverySlate sits below the student's level to rebuild confidence after
// a losing streak.
func (s *Selector) recoverySlate(ctx context.Context, u *store.User, exclude map[string]bool) ([]Picked, error) {
	var out []Picked

	// One due review leads the slate when available.
	dueIDs, err := s.reviews.Due(ctx, u.ID, 1)
	if err != nil {
		return nil, err
	}
	reviewPicks, err := s.reviewPicks(ctx, dueIDs)
	if err != nil {
		return nil, err
	}
	out = append(out, reviewPicks...)

	weak := weakestChapters(u, 3)
	if len(weak) == 0 {
		return s.explorationSlate(ctx, u, DailyQuizSize, exclude)
	}
	for i := 0; len(out) < DailyQuizSize; i++ {
		key := weak[i%len(weak)]
		target := irt.ClampTheta(u.ThetaByChapter[key].Theta - recoveryThetaDrop)
		pool, err := s.catalog.Chapter(ctx, key)
		if err != nil {
			return nil, err
		}
		picks := bestByInformation(window(pool, target, recoveryHalfWindow, excludeWith(exclude, out)), target, 1)
		if len(picks) == 0 {
			// Window miss: fall back to the widening filter.
			picks, err = s.candidatePicks(ctx, key, target, 1, excludeWith(exclude, out))
			if err != nil {
				return nil, err
			}
		}
		if len(picks) == 0 {
			weak = append(weak[:i%len(weak)], weak[i%len(weak)+1:]...)
			if len(weak) == 0 {
				break
			}
			i--
			continue
		}
		for _, q := range picks {
			out = append(out, Picked{Question: q, Rationale: RationaleRecovery})
		}
	}
	return out, nil
}

// ChapterPractice builds a slate inside one chapter at the student's level.
func (s *Selector) ChapterPractice(ctx context.Context, u *store.User, chapterKey string, size int) ([]Picked, error) {
	exclude, err := s.exclusionSet(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	target := proficiency.PriorFor(u, chapterKey).Theta
	picks, err := s.fromChapter(ctx, chapterKey, target, size, exclude, RationalePractice)
	if err != nil {
		return nil, err
	}
	if len(picks) == 0 {
		return nil, errs.E(errs.NotFound, "NO_QUESTIONS", "chapter "+chapterKey+" has no candidates")
	}
	return picks, nil
}

// UnlockQuiz builds the five-question gate check at standard difficulty.
func (s *Selector) UnlockQuiz(ctx context.Context, u *store.User, chapterKey string) ([]Picked, error) {
	exclude, err := s.exclusionSet(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	picks, err := s.fromChapter(ctx, chapterKey, 0, UnlockQuizSize, exclude, RationaleUnlock)
	if err != nil {
		return nil, err
	}
	if len(picks) < UnlockQuizSize {
		return nil, errs.E(errs.NotFound, "NO_QUESTIONS", "chapter "+chapterKey+" cannot fill an unlock quiz")
	}
	return picks[:UnlockQuizSize], nil
}

// Snap bucket names.
const (
	SnapEasier  = "easier"
	SnapSimilar = "similar"
	SnapHarder  = "harder"
)

// SnapFollowup builds up to five questions around a solved snap at the
// requested difficulty bucket. An empty result signals the caller to fall
// back to generated questions.
func (s *Selector) SnapFollowup(ctx context.Context, u *store.User, chapterKey, bucket string) ([]Picked, error) {
	base := proficiency.PriorFor(u, chapterKey).Theta
	var target float64
	switch bucket {
	case SnapEasier:
		target = irt.ClampTheta(base - 0.8)
	case SnapHarder:
		target = irt.ClampTheta(base + 0.8)
	case SnapSimilar, "":
		target = base
	default:
		return nil, errs.E(errs.Validation, "BAD_BUCKET", "unknown difficulty bucket "+bucket)
	}
	exclude, err := s.exclusionSet(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	picks, err := s.fromChapter(ctx, chapterKey, target, SnapMaxQuestions, exclude, RationaleSnap)
	if err != nil {
		return nil, err
	}
	if len(picks) > SnapMaxQuestions {
		picks = picks[:SnapMaxQuestions]
	}
	return picks, nil
}

// MockTest fills a template's sections near the user's subject levels.
func (s *Selector) MockTest(ctx context.Context, u *store.User, tmpl model.MockTemplate) ([]Picked, error) {
	keys, err := s.catalog.ChapterKeys(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	rng := seededRand(u.ID + ":" + tmpl.ID)

	var out []Picked
	for _, section := range tmpl.Sections {
		var subjectKeys []string
		for _, key := range keys {
			if model.SubjectOfChapterKey(key) == section.Subject {
				subjectKeys = append(subjectKeys, key)
			}
		}
		if len(subjectKeys) == 0 {
			return nil, errs.E(errs.NotFound, "NO_QUESTIONS", "no "+section.Subject+" chapters in catalog")
		}
		target := u.ThetaBySubject[section.Subject].Theta

		taken := 0
		for i := 0; taken < section.Count; i++ {
			key := subjectKeys[i%len(subjectKeys)]
			picks, err := s.fromChapter(ctx, key, target, 1, excludeWith(nil, out), RationaleMock)
			if err != nil {
				return nil, err
			}
			if len(picks) == 0 {
				if i > len(subjectKeys)*section.Count {
					return nil, errs.E(errs.NotFound, "NO_QUESTIONS",
						"catalog cannot fill the "+section.Subject+" section")
				}
				continue
			}
			out = append(out, picks...)
			taken += len(picks)
		}
	}
	return Interleave(out, rng), nil
}

// fromChapter picks the n most informative candidates near target.
func (s *Selector) fromChapter(ctx context.Context, chapterKey string, target float64, n int, exclude map[string]bool, rationale string) ([]Picked, error) {
	qs, err := s.candidatePicks(ctx, chapterKey, target, n, exclude)
	if err != nil {
		return nil, err
	}
	out := make([]Picked, len(qs))
	for i, q := range qs {
		out[i] = Picked{Question: q, Rationale: rationale}
	}
	return out, nil
}

func (s *Selector) candidatePicks(ctx context.Context, chapterKey string, target float64, n int, exclude map[string]bool) ([]*store.Question, error) {
	candidates, err := s.catalog.Candidates(ctx, chapterKey, target, n, exclude)
	if err != nil {
		return nil, err
	}
	return bestByInformation(candidates, target, n), nil
}

// reviewPicks resolves due question ids into slate positions, dropping ids
// that have left the catalog.
func (s *Selector) reviewPicks(ctx context.Context, dueIDs []string) ([]Picked, error) {
	var out []Picked
	for _, id := range dueIDs {
		q, err := s.lookup(ctx, id)
		if err != nil {
			if errs.KindOf(err) == errs.NotFound {
				continue
			}
			return nil, err
		}
		out = append(out, Picked{Question: q, Rationale: RationaleReview})
	}
	return out, nil
}

// lookup finds one question via the chapter caches.
func (s *Selector) lookup(ctx context.Context, id string) (*store.Question, error) {
	keys, err := s.catalog.ChapterKeys(ctx)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		qs, err := s.catalog.Chapter(ctx, key)
		if err != nil {
			return nil, err
		}
		for _, q := range qs {
			if q.ID == id {
				return q, nil
			}
		}
	}
	return nil, errs.E(errs.NotFound, "QUESTION_NOT_FOUND", "question "+id+" no longer in catalog")
}

// exclusionSet collects question ids from the user's recent adaptive
// sessions.
func (s *Selector) exclusionSet(ctx context.Context, userID string) (map[string]bool, error) {
	return s.sessions.RecentQuestionIDs(ctx, userID,
		[]string{model.KindDailyQuiz, model.KindChapterPractice, model.KindInitialAssessment},
		exclusionSessions)
}

// bestByInformation ranks candidates by Fisher information at target,
// breaking ties toward the lower question id, and returns the top n.
func bestByInformation(candidates []*store.Question, target float64, n int) []*store.Question {
	ranked := make([]*store.Question, len(candidates))
	copy(ranked, candidates)
	sort.Slice(ranked, func(i, j int) bool {
		ii := irt.Information(target, irt.Params{A: ranked[i].IRT.A, B: ranked[i].IRT.B, C: ranked[i].IRT.C})
		ij := irt.Information(target, irt.Params{A: ranked[j].IRT.A, B: ranked[j].IRT.B, C: ranked[j].IRT.C})
		if ii != ij {
			return ii > ij
		}
		return ranked[i].ID < ranked[j].ID
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// window filters pool to a fixed difficulty band.
func window(pool []*store.Question, target, halfWidth float64, exclude map[string]bool) []*store.Question {
	var out []*store.Question
	for _, q := range pool {
		if exclude[q.ID] {
			continue
		}
		if q.IRT.B >= target-halfWidth && q.IRT.B <= target+halfWidth {
			out = append(out, q)
		}
	}
	return out
}

// weakestChapters returns up to n practiced chapter keys ordered by theta
// ascending.
func weakestChapters(u *store.User, n int) []string {
	var keys []string
	for key, st := range u.ThetaByChapter {
		if st.Attempts > 0 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ti := u.ThetaByChapter[keys[i]].Theta
		tj := u.ThetaByChapter[keys[j]].Theta
		if ti != tj {
			return ti < tj
		}
		return keys[i] < keys[j]
	})
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

// excludeWith layers already-picked ids over a base exclusion set.
func excludeWith(base map[string]bool, picked []Picked) map[string]bool {
	out := make(map[string]bool, len(base)+len(picked))
	for id := range base {
		out[id] = true
	}
	for _, p := range picked {
		out[p.Question.ID] = true
	}
	return out
}

// Interleave reorders a slate so no two consecutive positions share a
// chapter, where the slate's composition allows it. The relative order
// within a chapter is preserved.
func Interleave(slate []Picked, rng *rand.Rand) []Picked {
	if len(slate) < 3 {
		return slate
	}
	byChapter := make(map[string][]Picked)
	var order []string
	for _, p := range slate {
		key := p.Question.ChapterKey
		if _, ok := byChapter[key]; !ok {
			order = append(order, key)
		}
		byChapter[key] = append(byChapter[key], p)
	}
	if len(order) == 1 {
		return slate
	}
	rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })

	out := make([]Picked, 0, len(slate))
	last := ""
	for len(out) < len(slate) {
		// Largest remaining chapter that differs from the previous pick;
		// fall back to any chapter when only one remains.
		best := ""
		for _, key := range order {
			if len(byChapter[key]) == 0 || key == last {
				continue
			}
			if best == "" || len(byChapter[key]) > len(byChapter[best]) {
				best = key
			}
		}
		if best == "" {
			best = last
		}
		out = append(out, byChapter[best][0])
		byChapter[best] = byChapter[best][1:]
		last = best
	}
	return out
}
