// Package projection orchestrates a full plan run: scenario adjustment, cost
// roll-up, treasury simulation, yearly aggregation, and valuation.
package projection

import (
	"fmt"
	"math"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/pkg/bom"
	"github.com/venturecast/venturecast/pkg/constants"
	"github.com/venturecast/venturecast/pkg/mathutil"
	"github.com/venturecast/venturecast/pkg/scenario"
	"github.com/venturecast/venturecast/pkg/treasury"
	"github.com/venturecast/venturecast/pkg/valuation"
	"go.uber.org/zap"
)

// RoundSummary is the derived arithmetic of one configured funding round.
type RoundSummary struct {
	Name      string
	Year      int
	Amount    float64
	PreMoney  float64
	PostMoney float64
	Dilution  float64
}

// ScenarioProjection holds everything computed for one scenario variant.
type ScenarioProjection struct {
	Name              string
	Monthly           treasury.Projection
	Years             []treasury.YearRow
	Valuations        []valuation.Result
	AverageValuation  float64
	WeightedValuation float64
	Dilution          valuation.DilutionSummary
	ExitIRR           float64
	Rounds            []RoundSummary
}

// Run processes the projections for all active scenarios.
func Run(logger *zap.Logger, conf config.Configuration) ([]ScenarioProjection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []ScenarioProjection
	engine := treasury.NewEngine(logger)
	bomEngine := conf.BomEngine(logger)
	schedules := conf.LoanSchedules(logger)

	for _, sc := range conf.Scenarios {
		if !sc.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", sc.Name),
				zap.String("op", "projection.Run"),
			)
			continue
		}

		cfg := sc.ToScenarioConfig()
		inputs := buildInputs(conf, cfg, bomEngine)
		inputs.LoanSchedules = schedules

		monthly := engine.Project(inputs)
		years := treasury.AggregateYears(monthly)

		for _, warning := range treasury.ReconcileAnnual(years, inputs.Revenue, inputs.Cogs, inputs.CustomerTerms) {
			logger.Debug("annual/monthly reconciliation: "+warning,
				zap.String("op", "projection.Run"),
				zap.String("scenario", sc.Name),
			)
		}

		result := ScenarioProjection{
			Name:    sc.Name,
			Monthly: monthly,
			Years:   years,
		}
		addValuations(&result, conf, years)

		for _, round := range conf.FundingRounds {
			result.Rounds = append(result.Rounds, RoundSummary{
				Name:      round.Name,
				Year:      round.Year,
				Amount:    round.Amount,
				PreMoney:  round.PreMoneyValuation,
				PostMoney: round.PostMoney(),
				Dilution:  round.Dilution(),
			})
		}

		results = append(results, result)
	}

	return results, nil
}

// buildInputs turns the plan plus one scenario variant into treasury inputs.
// Volume is adjusted and rounded to whole units before price applies.
func buildInputs(conf config.Configuration, cfg scenario.Config, bomEngine *bom.Engine) treasury.Inputs {
	inputs := treasury.Inputs{
		StartYear:             conf.Plan.StartYear,
		Years:                 conf.Plan.Years,
		InitialCash:           conf.Plan.InitialCash,
		Revenue:               make(map[int]float64),
		Cogs:                  make(map[int]float64),
		Payroll:               make(map[int]float64),
		Opex:                  make(map[int]float64),
		RevenueSeasonality:    conf.Seasonality.Revenue,
		PurchasingSeasonality: conf.Seasonality.Purchasing,
		CustomerTerms:         config.Terms(conf.PaymentTerms.Customer),
		SupplierTerms:         config.Terms(conf.PaymentTerms.Supplier),
	}

	totalVolume := make(map[int]int)
	for year := conf.Plan.StartYear; year <= conf.Plan.EndYear(); year++ {
		for _, product := range conf.Products {
			volume := cfg.AdjustVolume(product.VolumeIn(year))
			if volume == 0 {
				continue
			}
			totalVolume[year] += volume
			inputs.Revenue[year] += float64(volume) * cfg.AdjustPrice(product.UnitPrice)
			inputs.Cogs[year] += float64(volume) * bomEngine.UnitCost(product.Name, volume)
		}

		for _, role := range conf.Roles {
			if role.StartYear <= year {
				inputs.Payroll[year] += role.AnnualCost
			}
		}
	}

	// OPEX depends on adjusted revenue and volume, so it evaluates last.
	for year := conf.Plan.StartYear; year <= conf.Plan.EndYear(); year++ {
		for _, expense := range conf.Expenses {
			amount := expenseAmount(expense, year, inputs.Revenue[year], totalVolume[year])
			inputs.Opex[year] += cfg.AdjustOpex(amount)
		}
	}

	for _, product := range conf.Products {
		inputs.CapexPayments = append(inputs.CapexPayments, product.CapexPayments()...)
	}
	for _, round := range conf.FundingRounds {
		inputs.FundingInjections = append(inputs.FundingInjections, round.Injection())
	}
	return inputs
}

// expenseAmount evaluates one OPEX line's evolution rule for a year.
// Inactive lines and missing manual steps contribute zero.
func expenseAmount(expense config.Expense, year int, revenue float64, volume int) float64 {
	if expense.StartYear > year {
		return 0
	}

	switch expense.Evolution {
	case config.EvolutionGrowth:
		elapsed := year - expense.StartYear
		return expense.AnnualCost * math.Pow(1+expense.GrowthRate/constants.PercentageMultiplier, float64(elapsed))
	case config.EvolutionPercentOfRevenue:
		return mathutil.ApplyPercentage(revenue, expense.RevenuePercent)
	case config.EvolutionPerUnit:
		return expense.PerUnitCost * float64(volume)
	case config.EvolutionManual:
		for _, step := range expense.Steps {
			if step.Year == year {
				return step.Amount
			}
		}
		return 0
	default: // EvolutionFixed and unspecified
		return expense.AnnualCost
	}
}

// addValuations computes the valuation block of a scenario from its year
// rows plus configured historical actuals.
func addValuations(result *ScenarioProjection, conf config.Configuration, years []treasury.YearRow) {
	projected := make([]valuation.YearMetrics, 0, len(years))
	freeCashFlows := make([]float64, 0, len(years))
	for _, row := range years {
		projected = append(projected, valuation.YearMetrics{
			Year:    row.Year,
			Revenue: row.Revenue,
			Ebitda:  row.Ebitda,
			Ebit:    row.Ebitda - depreciationIn(conf, row.Year),
		})
		freeCashFlows = append(freeCashFlows, row.Ebitda-row.Capex)
	}

	metrics := valuation.SelectMetrics(conf.Valuation.BasisSelection(),
		conf.Valuation.HistoricalYearMetrics(), projected)
	params := conf.Valuation.MethodParams(freeCashFlows)

	result.Valuations = valuation.Evaluate(conf.Valuation.SelectedMethods(), params, metrics)
	result.AverageValuation = valuation.Average(result.Valuations)
	result.WeightedValuation = valuation.WeightedAverage(result.Valuations)
	result.Dilution = valuation.ComputeDilution(conf.Valuation.Dilution.DilutionParams(metrics.Ebitda))
	result.ExitIRR = valuation.ExitIRR(conf.Valuation.Dilution.ExitValue,
		conf.Valuation.Dilution.Investment, conf.Valuation.Dilution.HoldingYears)
}

// depreciationIn straight-lines every product's development cost over the
// standard horizon starting at its launch year.
func depreciationIn(conf config.Configuration, year int) float64 {
	total := 0.0
	for _, product := range conf.Products {
		if product.DevelopmentCost == 0 {
			continue
		}
		if year >= product.LaunchYear && year < product.LaunchYear+constants.DepreciationYears {
			total += product.DevelopmentCost / constants.DepreciationYears
		}
	}
	return total
}
