package projection

import (
	"math"
	"testing"

	"github.com/venturecast/venturecast/internal/config"
	"github.com/venturecast/venturecast/pkg/valuation"
)

// testConfiguration builds a small two-year plan with a manual-cost product,
// one role, and one fixed expense. Defaults fill the rest.
func testConfiguration() config.Configuration {
	conf := config.Configuration{
		Plan: config.Plan{StartYear: 2025, Years: 2, InitialCash: 100000},
		Products: []config.Product{
			{
				Name:           "widget",
				LaunchYear:     2025,
				UnitPrice:      100.00,
				ManualUnitCost: 40.00,
				Volumes: []config.YearVolume{
					{Year: 2025, Units: 1200},
					{Year: 2026, Units: 2400},
				},
			},
		},
		Roles: []config.Role{
			{Title: "engineer", Department: "engineering", StartYear: 2025, AnnualCost: 60000},
		},
		Expenses: []config.Expense{
			{Name: "office", AnnualCost: 12000, StartYear: 2025},
		},
		Scenarios: []config.Scenario{
			{Name: "base", Active: true},
		},
		Valuation: config.ValuationConfig{
			RevenueMultiple: 4.0,
			EbitdaMultiple:  8.0,
		},
	}
	conf.ApplyDefaults()
	return conf
}

func findValuation(t *testing.T, results []valuation.Result, method valuation.Method) valuation.Result {
	t.Helper()
	for _, result := range results {
		if result.Method == method {
			return result
		}
	}
	t.Fatalf("method %s not found in %+v", method, results)
	return valuation.Result{}
}

func TestRunBaseScenario(t *testing.T) {
	conf := testConfiguration()

	results, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 scenario result, got %d", len(results))
	}
	result := results[0]
	if result.Name != "base" {
		t.Errorf("scenario name = %s, expected base", result.Name)
	}

	if len(result.Years) != 2 {
		t.Fatalf("expected 2 year rows, got %d", len(result.Years))
	}

	// 2025: revenue 1200x100, COGS 1200x40, payroll 60000, OPEX 12000.
	row := result.Years[0]
	if math.Abs(row.Revenue-120000) > 0.01 {
		t.Errorf("2025 revenue = %v, expected 120000", row.Revenue)
	}
	if math.Abs(row.Cogs-48000) > 0.01 {
		t.Errorf("2025 COGS = %v, expected 48000", row.Cogs)
	}
	if math.Abs(row.Payroll-60000) > 0.01 {
		t.Errorf("2025 payroll = %v, expected 60000", row.Payroll)
	}
	if math.Abs(row.Ebitda-0) > 0.01 {
		t.Errorf("2025 EBITDA = %v, expected 0", row.Ebitda)
	}

	// 2026 volume doubles while fixed costs hold.
	row = result.Years[1]
	if math.Abs(row.Revenue-240000) > 0.01 {
		t.Errorf("2026 revenue = %v, expected 240000", row.Revenue)
	}
	if math.Abs(row.Ebitda-72000) > 0.01 {
		t.Errorf("2026 EBITDA = %v, expected 72000", row.Ebitda)
	}

	// Yearly closing treasury must match the underlying ledger.
	lastMonth := result.Monthly.Months[len(result.Monthly.Months)-1]
	if math.Abs(row.ClosingTreasury-lastMonth.TreasuryEnd) > 0.01 {
		t.Errorf("2026 closing treasury %v disagrees with ledger %v", row.ClosingTreasury, lastMonth.TreasuryEnd)
	}
}

func TestRunSkipsInactiveScenarios(t *testing.T) {
	conf := testConfiguration()
	conf.Scenarios = []config.Scenario{
		{Name: "base", Active: true},
		{Name: "frozen", Active: false},
		{Name: "ambitious", Active: true, VolumeAdjustment: 0.25},
	}

	results, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 active scenario results, got %d", len(results))
	}
	if results[0].Name != "base" || results[1].Name != "ambitious" {
		t.Errorf("unexpected scenario order: %s, %s", results[0].Name, results[1].Name)
	}

	// +25% volume in 2025: 1500 units at unadjusted price.
	if math.Abs(results[1].Years[0].Revenue-150000) > 0.01 {
		t.Errorf("ambitious 2025 revenue = %v, expected 150000", results[1].Years[0].Revenue)
	}
	if results[1].Years[0].Revenue <= results[0].Years[0].Revenue {
		t.Error("ambitious revenue should exceed base revenue")
	}
}

func TestRunValuations(t *testing.T) {
	conf := testConfiguration()

	results, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	result := results[0]

	if len(result.Valuations) != 6 {
		t.Fatalf("expected all 6 methods, got %d", len(result.Valuations))
	}

	// Basis defaults to the projected final year: revenue 240000, EBITDA 72000.
	revenueMultiple := findValuation(t, result.Valuations, valuation.MethodRevenueMultiple)
	if math.Abs(revenueMultiple.Value-960000) > 0.01 {
		t.Errorf("revenue multiple = %v, expected 960000", revenueMultiple.Value)
	}
	ebitdaMultiple := findValuation(t, result.Valuations, valuation.MethodEbitdaMultiple)
	if math.Abs(ebitdaMultiple.Value-576000) > 0.01 {
		t.Errorf("EBITDA multiple = %v, expected 576000", ebitdaMultiple.Value)
	}

	if result.AverageValuation <= 0 {
		t.Errorf("average valuation = %v, expected positive", result.AverageValuation)
	}
}

func TestRunCapexAndFunding(t *testing.T) {
	conf := testConfiguration()
	conf.Products[0].DevelopmentCost = 40000
	conf.FundingRounds = []config.FundingRound{
		{Name: "seed", Year: 2025, Month: 2, Amount: 400000, PreMoneyValuation: 1600000},
	}
	conf.ApplyDefaults()

	results, err := Run(nil, conf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	result := results[0]

	if math.Abs(result.Monthly.TotalCapexPaid-40000) > 0.01 {
		t.Errorf("total CAPEX = %v, expected 40000", result.Monthly.TotalCapexPaid)
	}
	// Without a schedule the development cost lands in the launch month.
	if math.Abs(result.Monthly.Months[0].Capex-40000) > 0.01 {
		t.Errorf("launch month CAPEX = %v, expected 40000", result.Monthly.Months[0].Capex)
	}
	if math.Abs(result.Monthly.TotalFundingRaised-400000) > 0.01 {
		t.Errorf("total funding = %v, expected 400000", result.Monthly.TotalFundingRaised)
	}

	if len(result.Rounds) != 1 {
		t.Fatalf("expected 1 round summary, got %d", len(result.Rounds))
	}
	round := result.Rounds[0]
	if math.Abs(round.PostMoney-2000000) > 0.01 {
		t.Errorf("round post-money = %v, expected 2000000", round.PostMoney)
	}
	if math.Abs(round.Dilution-0.20) > 1e-9 {
		t.Errorf("round dilution = %v, expected 0.20", round.Dilution)
	}
}

func TestExpenseAmount(t *testing.T) {
	tests := []struct {
		name     string
		expense  config.Expense
		year     int
		revenue  float64
		volume   int
		expected float64
	}{
		{
			"Fixed default",
			config.Expense{AnnualCost: 12000, StartYear: 2025},
			2026, 0, 0, 12000,
		},
		{
			"Before start year",
			config.Expense{AnnualCost: 12000, StartYear: 2026},
			2025, 0, 0, 0,
		},
		{
			"Growth compounds from start",
			config.Expense{AnnualCost: 1000, StartYear: 2025, Evolution: config.EvolutionGrowth, GrowthRate: 10.0},
			2027, 0, 0, 1210,
		},
		{
			"Growth in start year",
			config.Expense{AnnualCost: 1000, StartYear: 2025, Evolution: config.EvolutionGrowth, GrowthRate: 10.0},
			2025, 0, 0, 1000,
		},
		{
			"Percent of revenue",
			config.Expense{StartYear: 2025, Evolution: config.EvolutionPercentOfRevenue, RevenuePercent: 8.0},
			2025, 250000, 0, 20000,
		},
		{
			"Per unit",
			config.Expense{StartYear: 2025, Evolution: config.EvolutionPerUnit, PerUnitCost: 6.50},
			2025, 0, 500, 3250,
		},
		{
			"Manual step hit",
			config.Expense{StartYear: 2025, Evolution: config.EvolutionManual,
				Steps: []config.YearAmount{{Year: 2025, Amount: 15000}, {Year: 2027, Amount: 8000}}},
			2027, 0, 0, 8000,
		},
		{
			"Manual step miss",
			config.Expense{StartYear: 2025, Evolution: config.EvolutionManual,
				Steps: []config.YearAmount{{Year: 2025, Amount: 15000}}},
			2026, 0, 0, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expenseAmount(tt.expense, tt.year, tt.revenue, tt.volume)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("expenseAmount() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestDepreciationIn(t *testing.T) {
	conf := config.Configuration{
		Products: []config.Product{
			{Name: "widget", LaunchYear: 2025, DevelopmentCost: 50000},
			{Name: "addon", LaunchYear: 2026},
		},
	}

	tests := []struct {
		name     string
		year     int
		expected float64
	}{
		{"Launch year", 2025, 10000},
		{"Mid horizon", 2027, 10000},
		{"Final depreciation year", 2029, 10000},
		{"Past the horizon", 2030, 0},
		{"Before launch", 2024, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := depreciationIn(conf, tt.year)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("depreciationIn(%d) = %v, expected %v", tt.year, result, tt.expected)
			}
		})
	}
}
