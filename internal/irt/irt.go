// Package irt implements the 3-parameter logistic response model: response
// probability, Fisher information, the MAP theta update, and the
// theta-to-percentile mapping. Everything is pure and side-effect free.
package irt

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Theta and standard-error bounds enforced on every persisted estimate.
const (
	ThetaMin  = -3.0
	ThetaMax  = 3.0
	SEFloor   = 0.15
	SECeiling = 0.6
)

// MAP update iteration controls.
const (
	maxIterations = 6
	convergence   = 1e-4
)

// Params are the 3PL item parameters.
type Params struct {
	A float64 `json:"a"` // discrimination, [0.3, 3]
	B float64 `json:"b"` // difficulty, [-3, 3]
	C float64 `json:"c"` // guessing, [0, 1]
}

// Response is one graded answer against an item.
type Response struct {
	Params  Params
	Correct bool
}

// Estimate is a theta with its posterior standard error.
type Estimate struct {
	Theta float64
	SE    float64
}

// ClampTheta bounds theta to [ThetaMin, ThetaMax].
func ClampTheta(theta float64) float64 {
	return math.Max(ThetaMin, math.Min(ThetaMax, theta))
}

// ClampSE bounds a standard error to [SEFloor, SECeiling].
func ClampSE(se float64) float64 {
	return math.Max(SEFloor, math.Min(SECeiling, se))
}

// Probability returns P(correct | theta, item) under the 3PL model:
// c + (1-c) / (1 + exp(-a(theta-b))).
func Probability(theta float64, p Params) float64 {
	exponent := -p.A * (theta - p.B)
	// Guard exp overflow at the tails.
	if exponent > 20 {
		return p.C
	}
	if exponent < -20 {
		return 1.0
	}
	prob := p.C + (1-p.C)/(1+math.Exp(exponent))
	return math.Max(0, math.Min(1, prob))
}

// Information returns the Fisher information of an item at theta:
// a^2 (1-c) (P-c) (1-P) / (P (1-c)^2).
// Items whose probability underflows to the guessing floor carry no
// information.
func Information(theta float64, p Params) float64 {
	P := Probability(theta, p)
	if P <= p.C || P >= 1 || p.C >= 1 {
		return 0
	}
	num := p.A * p.A * (1 - p.C) * (P - p.C) * (1 - P)
	den := P * (1 - p.C) * (1 - p.C)
	if den == 0 {
		return 0
	}
	return num / den
}

// MAPUpdate computes the posterior theta estimate given a normal prior
// N(prior.Theta, prior.SE^2) and a batch of responses. Newton-Raphson on the
// log-posterior, at most 6 iterations, converged when the step drops below
// 1e-4. The returned theta is clamped and the SE floored.
func MAPUpdate(prior Estimate, responses []Response) Estimate {
	if len(responses) == 0 {
		return prior
	}

	priorVar := prior.SE * prior.SE
	if priorVar <= 0 {
		priorVar = SECeiling * SECeiling
	}
	priorPrecision := 1 / priorVar

	theta := prior.Theta
	for range maxIterations {
		grad := -(theta - prior.Theta) * priorPrecision
		info := priorPrecision
		for _, r := range responses {
			P := Probability(theta, r.Params)
			if P <= r.Params.C || P >= 1 {
				continue
			}
			// dP/dtheta for the 3PL.
			dP := r.Params.A * (P - r.Params.C) * (1 - P) / (1 - r.Params.C)
			if r.Correct {
				grad += dP / P
			} else {
				grad -= dP / (1 - P)
			}
			info += Information(theta, r.Params)
		}

		step := grad / info
		theta += step
		if math.Abs(step) < convergence {
			break
		}
	}

	theta = ClampTheta(theta)

	totalInfo := priorPrecision
	for _, r := range responses {
		totalInfo += Information(theta, r.Params)
	}
	se := 1 / math.Sqrt(totalInfo)
	return Estimate{Theta: theta, SE: ClampSE(se)}
}

// percentileAnchors maps theta -3.0..3.0 in 0.2 steps (31 points) to the
// standard normal CDF. Built once; Percentile interpolates between anchors.
var percentileAnchors = buildAnchors()

func buildAnchors() [31]float64 {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	var anchors [31]float64
	for i := range anchors {
		theta := ThetaMin + 0.2*float64(i)
		anchors[i] = norm.CDF(theta) * 100
	}
	return anchors
}

// Percentile maps theta to an integer percentile 0..100 by linear
// interpolation over the anchor table.
func Percentile(theta float64) int {
	theta = ClampTheta(theta)
	pos := (theta - ThetaMin) / 0.2
	i := int(math.Floor(pos))
	if i >= len(percentileAnchors)-1 {
		return int(math.Round(percentileAnchors[len(percentileAnchors)-1]))
	}
	frac := pos - float64(i)
	v := percentileAnchors[i] + frac*(percentileAnchors[i+1]-percentileAnchors[i])
	return int(math.Round(v))
}

// AccuracyToTheta maps raw assessment accuracy to an initial theta estimate.
// Extreme scores are pulled in when the sample is small.
func AccuracyToTheta(accuracy float64, n int) float64 {
	switch {
	case accuracy >= 1.0:
		if n >= 5 {
			return 2.0
		}
		return 1.5
	case accuracy <= 0.0:
		if n >= 5 {
			return -2.0
		}
		return -1.5
	case accuracy < 0.20:
		return -2.5
	case accuracy < 0.40:
		return -1.5
	case accuracy < 0.60:
		return -0.5
	case accuracy < 0.75:
		return 0.5
	case accuracy < 0.90:
		return 1.5
	default:
		return 2.5
	}
}

// InitialSE estimates the standard error of an assessment-derived theta.
// Shrinks with sqrt(n); accuracy near 0.5 is the most informative.
func InitialSE(n int, accuracy float64) float64 {
	if n <= 0 {
		return SECeiling
	}
	base := 1 / math.Sqrt(float64(n))
	penalty := 1 + math.Abs(accuracy-0.5)
	return ClampSE(base * penalty)
}
