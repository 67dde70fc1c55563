// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the business plan.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/venturecast/venturecast/pkg/constants"
	"github.com/venturecast/venturecast/pkg/scenario"
	"github.com/venturecast/venturecast/pkg/seasonality"
)

// Configuration holds the full business-plan snapshot for venturecast.
// The projection engine is a pure function of one loaded Configuration.
type Configuration struct {
	Plan          Plan
	Products      []Product
	Components    []Component
	Bom           []BomEntry
	Roles         []Role
	Expenses      []Expense
	Loans         []Loan
	FundingRounds []FundingRound
	Seasonality   SeasonalityConfig
	PaymentTerms  PaymentTermsConfig
	Scenarios     []Scenario
	Valuation     ValuationConfig
	Logging       LoggingConfig `yaml:"logging,omitempty"`
	Output        OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Plan sets the projection window and the opening cash position.
type Plan struct {
	StartYear   int
	Years       int
	InitialCash float64
}

// EndYear is the last calendar year inside the projection window.
func (p Plan) EndYear() int {
	return p.StartYear + p.Years - 1
}

// Contains reports whether a calendar year falls inside the window.
func (p Plan) Contains(year int) bool {
	return year >= p.StartYear && year <= p.EndYear()
}

// YearVolume is a per-year unit count, optionally split by sales channel
// (retail, wholesale, oem).
type YearVolume struct {
	Year    int
	Channel string
	Units   int
}

// ScheduledAmount is a lump payment landing in a specific month.
type ScheduledAmount struct {
	Year   int
	Month  int // 1..12, defaulted to 1
	Amount float64
}

// Product is one sellable product line.
type Product struct {
	Name                string
	LaunchYear          int
	UnitPrice           float64 // ex-tax
	ManualUnitCost      float64 // > 0 switches cost to manual mode, bypassing the BOM
	OverheadCoefficient float64 // labor/assembly multiplier on the BOM roll-up
	Volumes             []YearVolume
	DevelopmentCost     float64           // one-time CAPEX
	CapexSchedule       []ScheduledAmount // optional payment schedule for DevelopmentCost
}

// VolumeIn sums the product's unit volume across channels for a year.
func (p Product) VolumeIn(year int) int {
	units := 0
	for _, volume := range p.Volumes {
		if volume.Year == year {
			units += volume.Units
		}
	}
	return units
}

// TierPrice quotes a component price at one discrete volume tier.
type TierPrice struct {
	Volume int
	Price  float64
}

// Component is a purchasable part referenced from BOM entries.
type Component struct {
	Name   string
	Prices []TierPrice
}

// BomEntry ties a quantity of a component to a product.
type BomEntry struct {
	Product   string
	Component string
	Quantity  float64
}

// Role is a headcount line; active in a year iff StartYear <= year.
type Role struct {
	Title      string
	Department string
	StartYear  int
	AnnualCost float64 // fully loaded
}

// Expense evolution rules.
const (
	EvolutionFixed            = "fixed"
	EvolutionGrowth           = "growth"
	EvolutionPercentOfRevenue = "percentOfRevenue"
	EvolutionPerUnit          = "perUnit"
	EvolutionManual           = "manual"
)

// YearAmount is one step of a manual expense schedule.
type YearAmount struct {
	Year   int
	Amount float64
}

// Expense is one OPEX line with an evolution rule.
type Expense struct {
	Name           string
	Category       string
	AnnualCost     float64
	StartYear      int
	Evolution      string  // one of the Evolution* constants; empty means fixed
	GrowthRate     float64 // percent per year, growth evolution
	RevenuePercent float64 // percent of revenue evolution
	PerUnitCost    float64 // per unit of volume evolution
	Steps          []YearAmount
}

// Loan indicates a loan and its parameters.
type Loan struct {
	Name         string
	Principal    float64
	InterestRate float64 // annual percent
	Term         int     // months
	StartYear    int
	StartMonth   int // 1..12, defaulted to 1
}

// FundingRound is an equity injection at a configured month.
type FundingRound struct {
	Name              string
	Year              int
	Month             int // defaulted to 1
	Amount            float64
	PreMoneyValuation float64
}

// PostMoney is the company value immediately after the round.
func (r FundingRound) PostMoney() float64 {
	return r.PreMoneyValuation + r.Amount
}

// Dilution is the ownership fraction ceded to the round's investors.
func (r FundingRound) Dilution() float64 {
	post := r.PostMoney()
	if post <= 0 {
		return 0
	}
	return r.Amount / post
}

// SeasonalityConfig holds the monthly weight profiles. Revenue and
// purchasing are independently configurable; nil means uniform.
type SeasonalityConfig struct {
	Revenue    []float64
	Purchasing []float64
}

// PaymentTermDef routes a percentage of cash to a delayed month.
type PaymentTermDef struct {
	DelayMonths int
	Percent     float64
}

// PaymentTermsConfig holds receivable and payable terms.
type PaymentTermsConfig struct {
	Customer []PaymentTermDef
	Supplier []PaymentTermDef
}

// Scenario is one projection variant.
type Scenario struct {
	Name             string
	Active           bool
	VolumeAdjustment float64
	PriceAdjustment  float64
	OpexAdjustment   float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills the optional parts of a plan: uniform seasonality,
// immediate payment terms, the three scenario presets, month defaults, and
// overhead coefficients.
func (conf *Configuration) ApplyDefaults() {
	if len(conf.Seasonality.Revenue) == 0 {
		conf.Seasonality.Revenue = seasonality.DefaultWeights()
	}
	if len(conf.Seasonality.Purchasing) == 0 {
		conf.Seasonality.Purchasing = seasonality.DefaultWeights()
	}
	if len(conf.PaymentTerms.Customer) == 0 {
		conf.PaymentTerms.Customer = []PaymentTermDef{{DelayMonths: 0, Percent: constants.PercentageMultiplier}}
	}
	if len(conf.PaymentTerms.Supplier) == 0 {
		conf.PaymentTerms.Supplier = []PaymentTermDef{{DelayMonths: 0, Percent: constants.PercentageMultiplier}}
	}

	if len(conf.Scenarios) == 0 {
		for _, preset := range scenario.Presets() {
			conf.Scenarios = append(conf.Scenarios, Scenario{
				Name:             preset.Name,
				Active:           preset.Name == "base",
				VolumeAdjustment: preset.VolumeAdjustment,
				PriceAdjustment:  preset.PriceAdjustment,
				OpexAdjustment:   preset.OpexAdjustment,
			})
		}
	}

	for i := range conf.Products {
		if conf.Products[i].OverheadCoefficient == 0 {
			conf.Products[i].OverheadCoefficient = constants.DefaultOverheadCoefficient
		}
	}
	for i := range conf.Loans {
		if conf.Loans[i].StartMonth == 0 {
			conf.Loans[i].StartMonth = 1
		}
	}
	for i := range conf.FundingRounds {
		if conf.FundingRounds[i].Month == 0 {
			conf.FundingRounds[i].Month = 1
		}
	}

	conf.Valuation.applyDefaults(conf.Plan)
}
