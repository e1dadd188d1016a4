package irt

import (
	"math"
	"strconv"
	"strings"
)

// numericalTolerance is the default window for numerical answers when the
// question carries no explicit answer range.
const numericalTolerance = 0.01

// ScoreMCQ grades a single-choice answer by case-insensitive letter match.
func ScoreMCQ(student, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(student), strings.TrimSpace(correct))
}

// ScoreNumerical grades a numerical answer. When min/max bounds are supplied
// the answer must fall inside them; otherwise it must be within 0.01 of the
// correct value. Unparseable input is simply wrong.
func ScoreNumerical(student string, correct float64, min, max *float64) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(student), 64)
	if err != nil {
		return false
	}
	if min != nil && max != nil {
		return v >= *min && v <= *max
	}
	return math.Abs(v-correct) < numericalTolerance
}
