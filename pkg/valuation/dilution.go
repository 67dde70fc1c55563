package valuation

import (
	"math"

	"github.com/venturecast/venturecast/pkg/mathutil"
)

// DilutionParams describe a planned raise: the pre-money is anchored on an
// EBITDA multiple (with a floor), and the raise splits between straight
// equity and convertible instruments that do not dilute immediately.
type DilutionParams struct {
	ReferenceEbitda  float64
	EbitdaMultiple   float64
	PreMoneyFloor    float64
	TotalRaise       float64
	ConvertibleRatio float64 // fraction of the raise in convertibles, 0..1
}

// DilutionSummary is the derived round arithmetic.
type DilutionSummary struct {
	PreMoney     float64
	EquityAmount float64
	PostMoney    float64
	Dilution     float64
}

// ComputeDilution derives pre-money, post-money, and the ceded ownership
// fraction. Guarded against a zero post-money; dilution is always in [0, 1].
func ComputeDilution(p DilutionParams) DilutionSummary {
	ratio := p.ConvertibleRatio
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	summary := DilutionSummary{
		PreMoney:     mathutil.Max(p.PreMoneyFloor, p.ReferenceEbitda*p.EbitdaMultiple),
		EquityAmount: p.TotalRaise * (1 - ratio),
	}
	summary.PostMoney = summary.PreMoney + summary.EquityAmount
	if summary.PostMoney > 0 {
		summary.Dilution = summary.EquityAmount / summary.PostMoney
	}
	return summary
}

// ExitIRR computes the annualized return of an exit scenario:
// (exit/investment)^(1/years) - 1. Non-positive investment, exit value, or
// holding period yields 0 rather than NaN.
func ExitIRR(exitValue, investment, holdingYears float64) float64 {
	if investment <= 0 || exitValue <= 0 || holdingYears <= 0 {
		return 0
	}
	return math.Pow(exitValue/investment, 1/holdingYears) - 1
}
