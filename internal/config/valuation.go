package config

import (
	"github.com/venturecast/venturecast/pkg/valuation"
)

// ValuationConfig selects the valuation methods, the reference-metrics basis,
// and the per-method parameters.
type ValuationConfig struct {
	Methods []string // empty selects all methods

	Basis           string // historical, projected, mixed, average
	HistoricalYear  int
	ProjectedYear   int
	HistoricalShare float64
	AverageYears    []int

	// Historical actuals; projected metrics come from the treasury ledger.
	HistoricalMetrics []YearMetricsConfig

	RevenueMultiple    float64
	EbitdaMultiple     float64
	DiscountRate       float64
	TerminalGrowthRate float64

	Scorecard   ScorecardConfig
	Berkus      BerkusConfig
	RiskFactors RiskFactorConfig
	Confidence  map[string]float64

	Dilution DilutionConfig
}

// YearMetricsConfig is an actual (historical) metrics triple for one year.
type YearMetricsConfig struct {
	Year    int
	Revenue float64
	Ebitda  float64
	Ebit    float64
}

// ScorecardConfig holds the scorecard method inputs.
type ScorecardConfig struct {
	BaseValuation float64
	Factors       []ScorecardFactorConfig
}

// ScorecardFactorConfig is one qualitative scorecard axis.
type ScorecardFactorConfig struct {
	Name       string
	Weight     float64
	Adjustment float64
}

// BerkusConfig holds the Berkus method inputs.
type BerkusConfig struct {
	ComponentCap float64
	Components   []BerkusComponentConfig
}

// BerkusComponentConfig is one Berkus value block.
type BerkusComponentConfig struct {
	Name  string
	Value float64
}

// RiskFactorConfig holds the risk-factor summation inputs.
type RiskFactorConfig struct {
	BaseValuation float64
	StepSize      float64
	Scores        []int
}

// DilutionConfig parameterizes the planned raise and exit scenario.
type DilutionConfig struct {
	EbitdaMultiple   float64
	PreMoneyFloor    float64
	TotalRaise       float64
	ConvertibleRatio float64
	ExitValue        float64
	Investment       float64
	HoldingYears     float64
}

func (vc *ValuationConfig) applyDefaults(plan Plan) {
	if vc.Basis == "" {
		vc.Basis = string(valuation.BasisProjected)
	}
	if vc.ProjectedYear == 0 {
		vc.ProjectedYear = plan.EndYear()
	}
	if len(vc.Methods) == 0 {
		for _, method := range valuation.AllMethods() {
			vc.Methods = append(vc.Methods, string(method))
		}
	}
}

// SelectedMethods converts the configured method names.
func (vc ValuationConfig) SelectedMethods() []valuation.Method {
	methods := make([]valuation.Method, 0, len(vc.Methods))
	for _, name := range vc.Methods {
		methods = append(methods, valuation.Method(name))
	}
	return methods
}

// BasisSelection converts the configured basis parameters.
func (vc ValuationConfig) BasisSelection() valuation.BasisSelection {
	return valuation.BasisSelection{
		Basis:           valuation.Basis(vc.Basis),
		HistoricalYear:  vc.HistoricalYear,
		ProjectedYear:   vc.ProjectedYear,
		HistoricalShare: vc.HistoricalShare,
		AverageYears:    vc.AverageYears,
	}
}

// HistoricalYearMetrics converts the configured actuals.
func (vc ValuationConfig) HistoricalYearMetrics() []valuation.YearMetrics {
	metrics := make([]valuation.YearMetrics, 0, len(vc.HistoricalMetrics))
	for _, m := range vc.HistoricalMetrics {
		metrics = append(metrics, valuation.YearMetrics{
			Year:    m.Year,
			Revenue: m.Revenue,
			Ebitda:  m.Ebitda,
			Ebit:    m.Ebit,
		})
	}
	return metrics
}

// MethodParams converts the per-method configuration, wiring the projected
// free-cash-flow series into the DCF method.
func (vc ValuationConfig) MethodParams(freeCashFlows []float64) valuation.Params {
	params := valuation.Params{
		RevenueMultiple: vc.RevenueMultiple,
		EbitdaMultiple:  vc.EbitdaMultiple,
		DCF: valuation.DCFParams{
			FreeCashFlows:      freeCashFlows,
			DiscountRate:       vc.DiscountRate,
			TerminalGrowthRate: vc.TerminalGrowthRate,
		},
		Scorecard: valuation.ScorecardParams{
			BaseValuation: vc.Scorecard.BaseValuation,
		},
		Berkus: valuation.BerkusParams{
			ComponentCap: vc.Berkus.ComponentCap,
		},
		RiskFactors: valuation.RiskFactorParams{
			BaseValuation: vc.RiskFactors.BaseValuation,
			StepSize:      vc.RiskFactors.StepSize,
			Scores:        vc.RiskFactors.Scores,
		},
	}

	for _, factor := range vc.Scorecard.Factors {
		params.Scorecard.Factors = append(params.Scorecard.Factors, valuation.ScorecardFactor{
			Name:       factor.Name,
			Weight:     factor.Weight,
			Adjustment: factor.Adjustment,
		})
	}
	for _, component := range vc.Berkus.Components {
		params.Berkus.Components = append(params.Berkus.Components, valuation.BerkusComponent{
			Name:  component.Name,
			Value: component.Value,
		})
	}
	if len(vc.Confidence) > 0 {
		params.Confidence = make(map[valuation.Method]float64, len(vc.Confidence))
		for name, weight := range vc.Confidence {
			params.Confidence[valuation.Method(name)] = weight
		}
	}
	return params
}

// DilutionParams converts the configured raise parameters, anchoring the
// pre-money on the supplied reference EBITDA.
func (dc DilutionConfig) DilutionParams(referenceEbitda float64) valuation.DilutionParams {
	return valuation.DilutionParams{
		ReferenceEbitda:  referenceEbitda,
		EbitdaMultiple:   dc.EbitdaMultiple,
		PreMoneyFloor:    dc.PreMoneyFloor,
		TotalRaise:       dc.TotalRaise,
		ConvertibleRatio: dc.ConvertibleRatio,
	}
}
