package irt

import (
	"math"
	"testing"
)

func TestProbability_Midpoint(t *testing.T) {
	// At theta == b the logistic term is 1/2: P = c + (1-c)/2.
	p := Params{A: 1.5, B: 0, C: 0.25}
	got := Probability(0, p)
	if math.Abs(got-0.625) > 1e-9 {
		t.Errorf("Probability = %v, want 0.625", got)
	}
}

func TestProbability_Tails(t *testing.T) {
	p := Params{A: 2, B: 0, C: 0.2}
	if got := Probability(-50, p); got != p.C {
		t.Errorf("low tail = %v, want guessing floor %v", got, p.C)
	}
	if got := Probability(50, p); got != 1.0 {
		t.Errorf("high tail = %v, want 1.0", got)
	}
}

func TestInformation_ZeroAtGuessingFloor(t *testing.T) {
	p := Params{A: 1.8, B: 3, C: 0.25}
	// Far below difficulty, P collapses to c; information must be 0.
	if got := Information(-3, p); got != 0 {
		t.Errorf("Information = %v, want 0", got)
	}
}

func TestInformation_PeaksNearDifficulty(t *testing.T) {
	p := Params{A: 1.5, B: 0.5, C: 0.2}
	near := Information(0.5, p)
	far := Information(2.5, p)
	if near <= far {
		t.Errorf("information near b (%v) should exceed far (%v)", near, far)
	}
}

func TestMAPUpdate_EmptyReturnsPrior(t *testing.T) {
	prior := Estimate{Theta: 0.7, SE: 0.4}
	got := MAPUpdate(prior, nil)
	if got != prior {
		t.Errorf("MAPUpdate(empty) = %+v, want prior %+v", got, prior)
	}
}

func TestMAPUpdate_SingleCorrect(t *testing.T) {
	// Boundary scenario: prior theta 0, SE 0.5, one correct answer on
	// (a=1.5, b=0, c=0.25).
	prior := Estimate{Theta: 0, SE: 0.5}
	got := MAPUpdate(prior, []Response{{Params: Params{A: 1.5, B: 0, C: 0.25}, Correct: true}})

	if got.Theta <= 0.05 || got.Theta >= 0.45 {
		t.Errorf("Theta = %v, want a moderate positive update", got.Theta)
	}
	if got.SE >= prior.SE {
		t.Errorf("SE = %v, want shrink below prior %v", got.SE, prior.SE)
	}
	if got.SE < SEFloor {
		t.Errorf("SE = %v, below floor", got.SE)
	}
}

func TestMAPUpdate_AllIncorrectClampsAtMin(t *testing.T) {
	prior := Estimate{Theta: -2.8, SE: 0.6}
	var resp []Response
	for range 10 {
		resp = append(resp, Response{Params: Params{A: 2.5, B: -2.5, C: 0}, Correct: false})
	}
	got := MAPUpdate(prior, resp)
	if got.Theta < ThetaMin {
		t.Fatalf("Theta = %v, below hard bound", got.Theta)
	}
	if got.Theta != ThetaMin {
		t.Errorf("Theta = %v, want clamp at %v", got.Theta, ThetaMin)
	}
}

func TestMAPUpdate_Deterministic(t *testing.T) {
	prior := Estimate{Theta: 0.3, SE: 0.5}
	resp := []Response{
		{Params: Params{A: 1.2, B: 0.4, C: 0.25}, Correct: true},
		{Params: Params{A: 0.9, B: -0.2, C: 0}, Correct: false},
	}
	a := MAPUpdate(prior, resp)
	b := MAPUpdate(prior, resp)
	if a != b {
		t.Errorf("MAPUpdate not deterministic: %+v vs %+v", a, b)
	}
}

func TestPercentile_Anchors(t *testing.T) {
	cases := []struct {
		theta float64
		want  int
	}{
		{-3.0, 0},
		{0, 50},
		{3.0, 100},
	}
	for _, tc := range cases {
		if got := Percentile(tc.theta); got != tc.want {
			t.Errorf("Percentile(%v) = %d, want %d", tc.theta, got, tc.want)
		}
	}
}

func TestPercentile_Monotone(t *testing.T) {
	prev := -1
	for theta := -3.0; theta <= 3.0; theta += 0.05 {
		p := Percentile(theta)
		if p < prev {
			t.Fatalf("Percentile not monotone at theta=%v: %d < %d", theta, p, prev)
		}
		if p < 0 || p > 100 {
			t.Fatalf("Percentile(%v) = %d out of range", theta, p)
		}
		prev = p
	}
}

func TestAccuracyToTheta_Mapping(t *testing.T) {
	cases := []struct {
		acc   float64
		n     int
		want  float64
	}{
		{1.0, 5, 2.0},
		{1.0, 1, 1.5},
		{0.0, 5, -2.0},
		{0.0, 1, -1.5},
		{0.1, 3, -2.5},
		{0.3, 3, -1.5},
		{0.5, 3, -0.5},
		{0.7, 3, 0.5},
		{0.8, 3, 1.5},
		{0.95, 3, 2.5},
	}
	for _, tc := range cases {
		if got := AccuracyToTheta(tc.acc, tc.n); got != tc.want {
			t.Errorf("AccuracyToTheta(%v, %d) = %v, want %v", tc.acc, tc.n, got, tc.want)
		}
	}
}

func TestInitialSE_Bounds(t *testing.T) {
	if got := InitialSE(0, 0.5); got != SECeiling {
		t.Errorf("InitialSE(0) = %v, want ceiling", got)
	}
	// One question per chapter: SE should be near 0.2 above the floor but
	// inside bounds.
	se := InitialSE(1, 0)
	if se < SEFloor || se > SECeiling {
		t.Errorf("InitialSE(1, 0) = %v out of bounds", se)
	}
	// Many informative answers shrink toward the floor.
	if got := InitialSE(100, 0.5); got != SEFloor {
		t.Errorf("InitialSE(100, 0.5) = %v, want floor", got)
	}
}

func TestScoreNumerical(t *testing.T) {
	if !ScoreNumerical("3.005", 3.0, nil, nil) {
		t.Error("3.005 should match 3.0 within tolerance")
	}
	if ScoreNumerical("3.02", 3.0, nil, nil) {
		t.Error("3.02 should not match 3.0")
	}
	min, max := 2.9, 3.1
	if !ScoreNumerical("3.08", 3.0, &min, &max) {
		t.Error("3.08 should fall inside the answer range")
	}
	if ScoreNumerical("oops", 3.0, &min, &max) {
		t.Error("unparseable answer must score incorrect")
	}
}

func TestScoreMCQ(t *testing.T) {
	if !ScoreMCQ(" a ", "A") {
		t.Error("MCQ match should be case and space insensitive")
	}
	if ScoreMCQ("B", "A") {
		t.Error("wrong letter must score incorrect")
	}
}
