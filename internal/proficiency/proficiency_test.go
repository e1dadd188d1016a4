package proficiency

import (
	"testing"
	"time"

	"github.com/jeevibe/engine/internal/irt"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestMultiplier(t *testing.T) {
	cases := []struct {
		kind string
		want float64
	}{
		{model.KindDailyQuiz, 1.0},
		{model.KindInitialAssessment, 1.0},
		{model.KindChapterPractice, 0.5},
		{model.KindSnapPractice, 0.4},
		{model.KindUnlockQuiz, 0},
		{model.KindMockTest, 0},
	}
	for _, tc := range cases {
		if got := Multiplier(tc.kind); got != tc.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestApplyAnswer_FullWeightMovesThetaAndSE(t *testing.T) {
	prior := model.ChapterState{Theta: 0, ConfidenceSE: 0.5, Attempts: 4, Correct: 2}
	p := irt.Params{A: 1.5, B: 0, C: 0.25}

	next, delta := ApplyAnswer(prior, p, true, model.KindDailyQuiz, now)
	if delta <= 0 {
		t.Fatalf("correct answer moved theta by %v, want positive", delta)
	}
	if next.Theta != prior.Theta+delta {
		t.Errorf("delta %v inconsistent with theta %v", delta, next.Theta)
	}
	if next.ConfidenceSE >= prior.ConfidenceSE {
		t.Errorf("SE = %v, want below prior %v", next.ConfidenceSE, prior.ConfidenceSE)
	}
	if next.Attempts != 5 || next.Correct != 3 {
		t.Errorf("counts = %d/%d, want 3/5", next.Correct, next.Attempts)
	}
	if next.Accuracy != 0.6 {
		t.Errorf("accuracy = %v, want 0.6", next.Accuracy)
	}
}

func TestApplyAnswer_HalfWeightScalesDelta(t *testing.T) {
	prior := model.ChapterState{Theta: 0, ConfidenceSE: 0.5, Attempts: 4, Correct: 2}
	p := irt.Params{A: 1.5, B: 0, C: 0.25}

	_, fullDelta := ApplyAnswer(prior, p, true, model.KindDailyQuiz, now)
	next, halfDelta := ApplyAnswer(prior, p, true, model.KindChapterPractice, now)

	if diff := halfDelta - fullDelta/2; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("half-weight delta = %v, want %v", halfDelta, fullDelta/2)
	}
	// Reduced-weight kinds decay SE geometrically instead of taking the
	// full posterior reduction.
	want := prior.ConfidenceSE * partialSEDecay
	if diff := next.ConfidenceSE - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("SE = %v, want %v", next.ConfidenceSE, want)
	}
}

func TestApplyAnswer_ZeroWeightLeavesThetaAlone(t *testing.T) {
	prior := model.ChapterState{Theta: 0.8, ConfidenceSE: 0.3, Attempts: 10, Correct: 7}
	p := irt.Params{A: 1.2, B: 0.5, C: 0.2}

	next, delta := ApplyAnswer(prior, p, false, model.KindUnlockQuiz, now)
	if delta != 0 || next.Theta != prior.Theta || next.ConfidenceSE != prior.ConfidenceSE {
		t.Errorf("zero-weight answer moved state: delta=%v theta=%v se=%v", delta, next.Theta, next.ConfidenceSE)
	}
	if next.Attempts != 11 || next.Correct != 7 {
		t.Errorf("counts = %d/%d, want 7/11", next.Correct, next.Attempts)
	}
}

func TestApplyAnswer_SnapMissCarriesNegativeDelta(t *testing.T) {
	prior := model.ChapterState{Theta: 0.8, ConfidenceSE: 0.3, Attempts: 10, Correct: 7}
	p := irt.Params{A: 1.2, B: 0.5, C: 0.2}

	next, delta := ApplyAnswer(prior, p, false, model.KindSnapPractice, now)
	if delta >= 0 {
		t.Fatalf("snap miss moved theta by %v, want negative", delta)
	}
	if next.Theta >= prior.Theta {
		t.Errorf("theta = %v, want below prior %v", next.Theta, prior.Theta)
	}
}

func TestApplyAnswer_ColdPriorGetsCeilingSE(t *testing.T) {
	next, _ := ApplyAnswer(model.ChapterState{}, irt.Params{A: 1, B: 0, C: 0.25}, true, model.KindDailyQuiz, now)
	if next.ConfidenceSE > ColdSE || next.ConfidenceSE < irt.SEFloor {
		t.Errorf("SE = %v, want within [%v, %v]", next.ConfidenceSE, irt.SEFloor, ColdSE)
	}
}

func TestPriorFor_FallsBackToSubjectMean(t *testing.T) {
	u := &store.User{ThetaByChapter: map[string]model.ChapterState{
		"physics_kinematics": {Theta: 1.0, ConfidenceSE: 0.3, Attempts: 20},
		"physics_optics":     {Theta: 0.5, ConfidenceSE: 0.3, Attempts: 10},
		"chemistry_bonding":  {Theta: -2.0, ConfidenceSE: 0.3, Attempts: 30},
	}}

	prior := PriorFor(u, "physics_waves")
	if prior.Theta != 0.75 {
		t.Errorf("subject-mean prior theta = %v, want 0.75", prior.Theta)
	}
	if prior.ConfidenceSE != ColdSE {
		t.Errorf("subject-mean prior SE = %v, want cold %v", prior.ConfidenceSE, ColdSE)
	}

	// Known chapter wins over the fallback.
	prior = PriorFor(u, "physics_optics")
	if prior.Theta != 0.5 || prior.ConfidenceSE != 0.3 {
		t.Errorf("known-chapter prior = %+v", prior)
	}

	// No evidence in the subject at all: cold start at zero.
	prior = PriorFor(u, "mathematics_calculus")
	if prior.Theta != 0 || prior.ConfidenceSE != ColdSE {
		t.Errorf("cold prior = %+v", prior)
	}
}

func TestRollup_AttemptWeighted(t *testing.T) {
	ledger := map[string]model.ChapterState{
		"physics_kinematics": {Theta: 1.0, Attempts: 30, Correct: 20},
		"physics_optics":     {Theta: -1.0, Attempts: 10, Correct: 3},
	}
	subjects, overall, percentile := Rollup(ledger)

	phy, ok := subjects[model.SubjectPhysics]
	if !ok {
		t.Fatal("physics missing from rollup")
	}
	// (1.0*30 + -1.0*10) / 40 = 0.5
	if diff := phy.Theta - 0.5; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("physics theta = %v, want 0.5", phy.Theta)
	}
	if phy.Attempts != 40 {
		t.Errorf("physics attempts = %d, want 40", phy.Attempts)
	}
	if diff := phy.Accuracy - 0.575; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("physics accuracy = %v, want 0.575", phy.Accuracy)
	}
	if overall != phy.Theta {
		t.Errorf("overall = %v, want %v with one subject", overall, phy.Theta)
	}
	if percentile != irt.Percentile(overall) {
		t.Errorf("percentile = %d, want %d", percentile, irt.Percentile(overall))
	}
}

func TestRollup_SkipsUntouchedChapters(t *testing.T) {
	ledger := map[string]model.ChapterState{
		"physics_kinematics": {Theta: 1.0, Attempts: 10, Correct: 8},
		"physics_optics":     {Theta: -3.0, Attempts: 0},
	}
	subjects, _, _ := Rollup(ledger)
	if subjects[model.SubjectPhysics].Theta != 1.0 {
		t.Errorf("rollup included zero-attempt chapter: %+v", subjects[model.SubjectPhysics])
	}
}

func TestProcessAssessment(t *testing.T) {
	mk := func(chapter string, correct bool, secs int) *store.Response {
		return &store.Response{ChapterKey: chapter, IsCorrect: correct, TimeTakenSeconds: secs}
	}
	responses := []*store.Response{
		mk("physics_kinematics", true, 60),
		mk("physics_kinematics", true, 45),
		mk("physics_kinematics", false, 90),
		mk("chemistry_bonding", false, 30),
		mk("chemistry_bonding", false, 30),
	}

	w := ProcessAssessment(responses, now)
	if w.QuestionsAnswered != 5 || w.QuestionsCorrect != 2 {
		t.Errorf("totals = %d/%d, want 2/5", w.QuestionsCorrect, w.QuestionsAnswered)
	}

	kin := w.ThetaByChapter["physics_kinematics"]
	if kin.Attempts != 3 || kin.Correct != 2 {
		t.Errorf("kinematics tally = %d/%d, want 2/3", kin.Correct, kin.Attempts)
	}
	bond := w.ThetaByChapter["chemistry_bonding"]
	if bond.Theta >= kin.Theta {
		t.Errorf("all-wrong chapter theta %v not below 2/3 chapter %v", bond.Theta, kin.Theta)
	}

	// The baseline snapshot matches the initial ledger exactly.
	if len(w.Baseline) != len(w.ThetaByChapter) {
		t.Fatalf("baseline has %d chapters, ledger %d", len(w.Baseline), len(w.ThetaByChapter))
	}
	for k, v := range w.ThetaByChapter {
		if w.Baseline[k] != v {
			t.Errorf("baseline[%s] = %+v, ledger %+v", k, w.Baseline[k], v)
		}
	}

	if w.TimeSpentMinutes != 4.25 {
		t.Errorf("time spent = %v minutes, want 4.25", w.TimeSpentMinutes)
	}
}
