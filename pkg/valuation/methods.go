// Package valuation implements the company valuation methods. No single
// method is authoritative; callers select a subset and triangulate via the
// average. Invalid parameters degrade to zero-valued results, never errors.
package valuation

import (
	"math"

	"github.com/venturecast/venturecast/pkg/constants"
)

// Method identifies one valuation method.
type Method string

const (
	MethodRevenueMultiple Method = "revenue_multiple"
	MethodEbitdaMultiple  Method = "ebitda_multiple"
	MethodDCF             Method = "dcf"
	MethodScorecard       Method = "scorecard"
	MethodBerkus          Method = "berkus"
	MethodRiskFactor      Method = "risk_factor_summation"
)

// AllMethods lists every implemented method in display order.
func AllMethods() []Method {
	return []Method{
		MethodRevenueMultiple,
		MethodEbitdaMultiple,
		MethodDCF,
		MethodScorecard,
		MethodBerkus,
		MethodRiskFactor,
	}
}

// Metrics is the reference triple every method operates on.
type Metrics struct {
	Revenue float64
	Ebitda  float64
	Ebit    float64
}

// Result is one method's output. Constructed per invocation, never mutated.
type Result struct {
	Method     Method
	Value      float64
	Confidence float64
}

// DCFParams drive the discounted-cash-flow method.
type DCFParams struct {
	FreeCashFlows      []float64
	DiscountRate       float64
	TerminalGrowthRate float64
}

// ScorecardFactor is one qualitative axis of the scorecard method:
// a weight and a signed fractional adjustment.
type ScorecardFactor struct {
	Name       string
	Weight     float64
	Adjustment float64
}

// ScorecardParams drive the scorecard method.
type ScorecardParams struct {
	BaseValuation float64
	Factors       []ScorecardFactor
}

// BerkusComponent is one of the up-to-five qualitative value blocks of the
// Berkus method, each capped independently.
type BerkusComponent struct {
	Name  string
	Value float64
}

// BerkusParams drive the Berkus method.
type BerkusParams struct {
	Components   []BerkusComponent
	ComponentCap float64
}

// RiskFactorParams drive the risk-factor summation method: twelve categories
// scored on a small integer scale, each step moving the base by StepSize.
type RiskFactorParams struct {
	BaseValuation float64
	StepSize      float64
	Scores        []int
}

// Params bundles the per-method inputs plus an optional confidence weight per
// method (defaulting to 1).
type Params struct {
	RevenueMultiple float64
	EbitdaMultiple  float64
	DCF             DCFParams
	Scorecard       ScorecardParams
	Berkus          BerkusParams
	RiskFactors     RiskFactorParams
	Confidence      map[Method]float64
}

func (p Params) confidence(method Method) float64 {
	if weight, ok := p.Confidence[method]; ok && weight > 0 {
		return weight
	}
	return 1
}

// Calculate runs a single method against the reference metrics.
func Calculate(method Method, params Params, metrics Metrics) Result {
	result := Result{Method: method, Confidence: params.confidence(method)}

	switch method {
	case MethodRevenueMultiple:
		result.Value = metrics.Revenue * params.RevenueMultiple
	case MethodEbitdaMultiple:
		result.Value = metrics.Ebitda * params.EbitdaMultiple
	case MethodDCF:
		result.Value = discountedCashFlow(params.DCF)
	case MethodScorecard:
		result.Value = scorecard(params.Scorecard)
	case MethodBerkus:
		result.Value = berkus(params.Berkus)
	case MethodRiskFactor:
		result.Value = riskFactorSummation(params.RiskFactors)
	}
	return result
}

// Evaluate runs the selected methods against the reference metrics. The
// selection set belongs to the caller; passing a different subset simply
// yields a different result list.
func Evaluate(methods []Method, params Params, metrics Metrics) []Result {
	results := make([]Result, 0, len(methods))
	for _, method := range methods {
		results = append(results, Calculate(method, params, metrics))
	}
	return results
}

// Average is the simple mean across the selected results, 0 on empty input.
func Average(results []Result) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0.0
	for _, result := range results {
		sum += result.Value
	}
	return sum / float64(len(results))
}

// WeightedAverage is the confidence-weighted mean across the selected
// results, 0 when no weight is present.
func WeightedAverage(results []Result) float64 {
	sum, weights := 0.0, 0.0
	for _, result := range results {
		sum += result.Value * result.Confidence
		weights += result.Confidence
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

// discountedCashFlow discounts the FCF series and adds a Gordon-growth
// terminal value. The discount rate must strictly exceed the terminal growth
// rate; otherwise the formula is undefined and the method yields zero.
func discountedCashFlow(p DCFParams) float64 {
	if len(p.FreeCashFlows) == 0 || p.DiscountRate <= p.TerminalGrowthRate {
		return 0
	}

	value := 0.0
	for t, fcf := range p.FreeCashFlows {
		value += fcf / math.Pow(1+p.DiscountRate, float64(t+1))
	}

	lastFCF := p.FreeCashFlows[len(p.FreeCashFlows)-1]
	terminal := lastFCF * (1 + p.TerminalGrowthRate) / (p.DiscountRate - p.TerminalGrowthRate)
	value += terminal / math.Pow(1+p.DiscountRate, float64(len(p.FreeCashFlows)))
	return value
}

func scorecard(p ScorecardParams) float64 {
	adjustment := 0.0
	for _, factor := range p.Factors {
		adjustment += factor.Weight * factor.Adjustment
	}
	return p.BaseValuation * (1 + adjustment)
}

func berkus(p BerkusParams) float64 {
	limit := p.ComponentCap
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	value := 0.0
	for _, component := range p.Components {
		contribution := component.Value
		if contribution > limit {
			contribution = limit
		}
		if contribution < 0 {
			contribution = 0
		}
		value += contribution
	}
	return value
}

func riskFactorSummation(p RiskFactorParams) float64 {
	value := p.BaseValuation
	for i, score := range p.Scores {
		if i >= constants.RiskFactorCategories {
			break
		}
		if score < constants.RiskFactorMinScore {
			score = constants.RiskFactorMinScore
		}
		if score > constants.RiskFactorMaxScore {
			score = constants.RiskFactorMaxScore
		}
		value += float64(score) * p.StepSize
	}
	return value
}
