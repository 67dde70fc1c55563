// Package seasonality spreads annual totals across calendar months according
// to a configurable weight profile.
package seasonality

import (
	"github.com/venturecast/venturecast/pkg/constants"
)

// DefaultWeights returns the uniform 1/12 monthly profile.
func DefaultWeights() []float64 {
	weights := make([]float64, constants.MonthsPerYear)
	for i := range weights {
		weights[i] = 1.0 / constants.MonthsPerYear
	}
	return weights
}

// Distribute spreads an annual total over 12 months proportionally to the
// given weights. Weights are normalized by their sum so the outputs always
// add back to the total regardless of how the profile was scaled. A nil,
// short, or all-zero weight vector falls back to the uniform profile.
func Distribute(annualTotal float64, weights []float64) []float64 {
	if len(weights) < constants.MonthsPerYear {
		weights = DefaultWeights()
	}

	sum := 0.0
	for i := 0; i < constants.MonthsPerYear; i++ {
		sum += weights[i]
	}
	if sum == 0 {
		weights = DefaultWeights()
		sum = 1.0
	}

	monthly := make([]float64, constants.MonthsPerYear)
	for i := 0; i < constants.MonthsPerYear; i++ {
		monthly[i] = annualTotal * weights[i] / sum
	}
	return monthly
}
