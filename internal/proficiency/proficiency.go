// Package proficiency turns scored answers into proficiency state: the
// per-chapter theta ledger, the subject and overall rollups, and the
// one-shot assessment baseline.
package proficiency

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/jeevibe/engine/internal/irt"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

// Per-submission SE decay applied when a kind moves theta at reduced
// weight. Full SE reduction is reserved for full-weight kinds.
const partialSEDecay = 0.98

// ColdSE is the confidence SE assigned before any evidence exists.
const ColdSE = irt.SECeiling

// Multiplier returns the theta-update weight for a session kind. Snap
// practice carries its weight only at completion, and only for sessions
// with at least one correct answer; the session layer owns that gate.
func Multiplier(kind string) float64 {
	switch kind {
	case model.KindDailyQuiz, model.KindInitialAssessment:
		return 1.0
	case model.KindChapterPractice:
		return 0.5
	case model.KindSnapPractice:
		return 0.4
	default:
		// unlock_quiz, mock_test
		return 0
	}
}

// PriorFor resolves the estimation prior for a chapter: the stored chapter
// state when present, otherwise the mean theta of the user's known chapters
// in the same subject at cold confidence, otherwise a cold start at zero.
func PriorFor(u *store.User, chapterKey string) model.ChapterState {
	if st, ok := u.ThetaByChapter[chapterKey]; ok && st.Attempts > 0 {
		return st
	}
	subject := model.SubjectOfChapterKey(chapterKey)
	var sum float64
	var n int
	for key, st := range u.ThetaByChapter {
		if st.Attempts > 0 && model.SubjectOfChapterKey(key) == subject {
			sum += st.Theta
			n++
		}
	}
	prior := model.ChapterState{ConfidenceSE: ColdSE}
	if n > 0 {
		prior.Theta = irt.ClampTheta(sum / float64(n))
	}
	return prior
}

// ApplyAnswer folds one scored answer into a chapter state and returns the
// new state with the realized theta delta. Counts and accuracy always move;
// theta and SE move according to the kind's multiplier.
func ApplyAnswer(prior model.ChapterState, p irt.Params, correct bool, kind string, now time.Time) (model.ChapterState, float64) {
	if prior.ConfidenceSE == 0 {
		prior.ConfidenceSE = ColdSE
	}

	next := prior
	next.Attempts++
	if correct {
		next.Correct++
	}
	next.Accuracy = float64(next.Correct) / float64(next.Attempts)
	next.LastUpdated = now

	m := Multiplier(kind)
	if m > 0 {
		est := irt.MAPUpdate(
			irt.Estimate{Theta: prior.Theta, SE: prior.ConfidenceSE},
			[]irt.Response{{Params: p, Correct: correct}},
		)
		if m == 1 {
			next.Theta = est.Theta
			next.ConfidenceSE = est.SE
		} else {
			next.Theta = irt.ClampTheta(prior.Theta + m*(est.Theta-prior.Theta))
			next.ConfidenceSE = irt.ClampSE(prior.ConfidenceSE * partialSEDecay)
		}
	}
	next.Percentile = irt.Percentile(next.Theta)
	return next, next.Theta - prior.Theta
}

// Rollup recomputes the subject states and the overall estimate from the
// chapter ledger. Chapter thetas are weighted by attempt counts so a
// heavily practiced chapter moves the rollup more than a barely touched
// one.
func Rollup(thetaByChapter map[string]model.ChapterState) (map[string]model.SubjectState, float64, int) {
	type acc struct {
		thetas   []float64
		weights  []float64
		attempts int
		correct  int
	}
	bySubject := make(map[string]*acc)
	for key, st := range thetaByChapter {
		subject := model.SubjectOfChapterKey(key)
		if subject == "" || st.Attempts == 0 {
			continue
		}
		a := bySubject[subject]
		if a == nil {
			a = &acc{}
			bySubject[subject] = a
		}
		a.thetas = append(a.thetas, st.Theta)
		a.weights = append(a.weights, float64(st.Attempts))
		a.attempts += st.Attempts
		a.correct += st.Correct
	}

	subjects := make(map[string]model.SubjectState, len(bySubject))
	var allThetas, allWeights []float64
	for subject, a := range bySubject {
		theta := irt.ClampTheta(stat.Mean(a.thetas, a.weights))
		subjects[subject] = model.SubjectState{
			Theta:      theta,
			Percentile: irt.Percentile(theta),
			Accuracy:   float64(a.correct) / float64(a.attempts),
			Attempts:   a.attempts,
		}
		allThetas = append(allThetas, a.thetas...)
		allWeights = append(allWeights, a.weights...)
	}

	if len(allThetas) == 0 {
		return subjects, 0, irt.Percentile(0)
	}
	overall := irt.ClampTheta(stat.Mean(allThetas, allWeights))
	return subjects, overall, irt.Percentile(overall)
}

// AccumulateTallies folds a batch of responses into the subtopic and
// subject accuracy maps. Both maps are copied; the inputs stay untouched.
func AccumulateTallies(
	subtopic map[string]map[string]model.Tally,
	subject map[string]model.Tally,
	responses []*store.Response,
) (map[string]map[string]model.Tally, map[string]model.Tally) {
	outTopic := make(map[string]map[string]model.Tally, len(subtopic))
	for s, m := range subtopic {
		inner := make(map[string]model.Tally, len(m))
		for k, v := range m {
			inner[k] = v
		}
		outTopic[s] = inner
	}
	outSubject := make(map[string]model.Tally, len(subject))
	for k, v := range subject {
		outSubject[k] = v
	}

	for _, r := range responses {
		s := model.SubjectOfChapterKey(r.ChapterKey)
		if s == "" {
			continue
		}
		t := outSubject[s]
		t.Total++
		if r.IsCorrect {
			t.Correct++
		}
		outSubject[s] = t

		for _, topic := range r.SubTopics {
			inner := outTopic[s]
			if inner == nil {
				inner = make(map[string]model.Tally)
				outTopic[s] = inner
			}
			tt := inner[topic]
			tt.Total++
			if r.IsCorrect {
				tt.Correct++
			}
			inner[topic] = tt
		}
	}
	return outTopic, outSubject
}

// ProcessAssessment converts the full set of assessment responses into the
// initial chapter ledger and its rollup. Each touched chapter gets a theta
// from the calibrated accuracy mapping and an SE that tightens with sample
// size and with distance from chance performance.
func ProcessAssessment(responses []*store.Response, completedAt time.Time) store.AssessmentWrite {
	type tally struct{ correct, total int }
	byChapter := make(map[string]*tally)
	totalCorrect := 0
	totalTime := 0
	for _, r := range responses {
		t := byChapter[r.ChapterKey]
		if t == nil {
			t = &tally{}
			byChapter[r.ChapterKey] = t
		}
		t.total++
		if r.IsCorrect {
			t.correct++
			totalCorrect++
		}
		totalTime += r.TimeTakenSeconds
	}

	ledger := make(map[string]model.ChapterState, len(byChapter))
	for key, t := range byChapter {
		acc := float64(t.correct) / float64(t.total)
		theta := irt.AccuracyToTheta(acc, t.total)
		ledger[key] = model.ChapterState{
			Theta:        theta,
			ConfidenceSE: irt.InitialSE(t.total, acc),
			Attempts:     t.total,
			Correct:      t.correct,
			Accuracy:     acc,
			Percentile:   irt.Percentile(theta),
			LastUpdated:  completedAt,
		}
	}

	baseline := make(map[string]model.ChapterState, len(ledger))
	for k, v := range ledger {
		baseline[k] = v
	}

	subjects, overall, percentile := Rollup(ledger)
	return store.AssessmentWrite{
		ThetaByChapter:    ledger,
		ThetaBySubject:    subjects,
		OverallTheta:      overall,
		OverallPercentile: percentile,
		Baseline:          baseline,
		CompletedAt:       completedAt,
		QuestionsAnswered: len(responses),
		QuestionsCorrect:  totalCorrect,
		TimeSpentMinutes:  math.Round(float64(totalTime)/60*100) / 100,
	}
}
