// Package paymentterms models receivables and payables lag by shifting
// monthly cash amounts across future months.
package paymentterms

import (
	"github.com/venturecast/venturecast/pkg/constants"
)

// Term routes a percentage of each month's cash to a later month.
// "50% paid same month, 50% paid 30 days later" is expressed as
// {0, 50} and {1, 50}.
type Term struct {
	DelayMonths int
	Percent     float64
}

// Immediate is the degenerate term set: everything settles in-month.
func Immediate() []Term {
	return []Term{{DelayMonths: 0, Percent: constants.PercentageMultiplier}}
}

// Apply convolves monthly amounts with the given payment terms. The output
// extends past the input by the maximum delay so shifted mass is never
// truncated; the sum of the output always equals the sum of the input.
// Empty terms behave as Immediate. Negative delays are treated as zero.
func Apply(amounts []float64, terms []Term) []float64 {
	if len(terms) == 0 {
		terms = Immediate()
	}

	shifted := make([]float64, len(amounts)+MaxDelay(terms))
	for m, amount := range amounts {
		if amount == 0 {
			continue
		}
		for _, term := range terms {
			delay := term.DelayMonths
			if delay < 0 {
				delay = 0
			}
			shifted[m+delay] += amount * term.Percent / constants.PercentageMultiplier
		}
	}
	return shifted
}

// MaxDelay returns the longest delay in a term set, 0 when empty. A term set
// with MaxDelay 0 settles every amount in its own month.
func MaxDelay(terms []Term) int {
	maxDelay := 0
	for _, term := range terms {
		if term.DelayMonths > maxDelay {
			maxDelay = term.DelayMonths
		}
	}
	return maxDelay
}

// TotalPercent sums the percentages of a term set; a well-formed set sums
// to 100. Exposed for configuration validation.
func TotalPercent(terms []Term) float64 {
	total := 0.0
	for _, term := range terms {
		total += term.Percent
	}
	return total
}
