package estimation

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RSquared is the coefficient of determination of predicted against actual.
// It is NaN when there are fewer than two values or actual has no variance.
func RSquared(actual, predicted []float64) float64 {
	if len(actual) < 2 || len(actual) != len(predicted) {
		return math.NaN()
	}
	if stat.Variance(actual, nil) == 0 {
		return math.NaN()
	}
	return stat.RSquaredFrom(predicted, actual, nil)
}
