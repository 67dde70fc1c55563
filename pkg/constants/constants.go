// Package constants provides shared constants for the venturecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// CogsReconciliationTolerance is the relative tolerance allowed between
	// annual COGS inputs and the monthly ledger when supplier payment terms
	// shift mass across a year boundary.
	CogsReconciliationTolerance = 0.01
)

// VolumeTiers is the fixed ladder of production quantities at which component
// prices are quoted. Cost lookups snap to the nearest tier, never interpolate.
var VolumeTiers = []int{50, 100, 200, 500, 1000, 2000, 5000, 10000}

// Bill-of-materials defaults
const (
	// DefaultOverheadCoefficient is applied to the summed component cost when
	// a product does not configure its own labor/assembly overhead.
	DefaultOverheadCoefficient = 1.0
)

// DepreciationYears is the straight-line depreciation horizon applied to
// product development costs when deriving EBIT from EBITDA.
const DepreciationYears = 5

// Scenario preset adjustments (signed fractions)
const (
	ConservativeVolumeAdjustment = -0.20
	AmbitiousVolumeAdjustment    = 0.25
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "plan.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "plan.yaml.example"
)

// Valuation constants
const (
	// RiskFactorCategories is the number of categories scored by the
	// risk-factor summation method.
	RiskFactorCategories = 12

	// RiskFactorMinScore and RiskFactorMaxScore bound a category score.
	RiskFactorMinScore = -2
	RiskFactorMaxScore = 2
)
