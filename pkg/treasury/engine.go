// Package treasury simulates the month-by-month cash position of the company.
// The monthly ledger produced here is the single source of truth that all
// yearly aggregates derive from.
package treasury

import (
	"fmt"

	"github.com/venturecast/venturecast/pkg/constants"
	"github.com/venturecast/venturecast/pkg/loans"
	"github.com/venturecast/venturecast/pkg/mathutil"
	"github.com/venturecast/venturecast/pkg/paymentterms"
	"github.com/venturecast/venturecast/pkg/seasonality"
	"go.uber.org/zap"
)

// ScheduledPayment is a lump amount landing in a specific calendar month.
// Used for CAPEX installments and funding round injections.
type ScheduledPayment struct {
	Year   int
	Month  int // 1..12
	Amount float64
}

// Inputs is the full snapshot consumed by one projection run. The engine
// never mutates it.
type Inputs struct {
	StartYear   int
	Years       int
	InitialCash float64

	// Annual totals keyed by calendar year. Missing years contribute zero.
	Revenue map[int]float64
	Cogs    map[int]float64
	Payroll map[int]float64
	Opex    map[int]float64

	CapexPayments     []ScheduledPayment
	FundingInjections []ScheduledPayment
	LoanSchedules     [][]loans.Installment

	// Seasonality weight vectors; nil means uniform. Revenue and purchasing
	// are independently configurable.
	RevenueSeasonality    []float64
	PurchasingSeasonality []float64

	// Payment terms applied to revenue (receivables) and COGS (payables).
	CustomerTerms []paymentterms.Term
	SupplierTerms []paymentterms.Term
}

// MonthRecord is one row of the treasury ledger.
type MonthRecord struct {
	Year          int
	Month         int // 1..12
	Revenue       float64
	Cogs          float64
	Payroll       float64
	Opex          float64
	Capex         float64
	LoanPayment   float64
	Funding       float64
	NetCashFlow   float64
	TreasuryStart float64
	TreasuryEnd   float64
}

// MonthRef identifies a calendar month within the projection horizon.
type MonthRef struct {
	Year  int
	Month int
}

// Projection is the ordered ledger plus the scalars derived from it.
type Projection struct {
	Months             []MonthRecord
	MinTreasury        float64
	BreakEvenMonth     *MonthRef // nil when never reached within the horizon
	MaxMonthlyBurn     float64
	TotalFundingRaised float64
	TotalCapexPaid     float64
	RunwayMonths       int
}

// Engine runs treasury projections.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a treasury engine.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Project simulates the treasury month by month. It is a pure function of the
// input snapshot: degenerate inputs (no revenue, no loans, empty maps)
// produce a flat but valid ledger, never an error.
func (e *Engine) Project(in Inputs) Projection {
	months := in.Years * constants.MonthsPerYear
	if months <= 0 {
		return Projection{MinTreasury: in.InitialCash}
	}

	revenue := e.monthlySeries(in, in.Revenue, in.RevenueSeasonality, in.CustomerTerms)
	cogs := e.monthlySeries(in, in.Cogs, in.PurchasingSeasonality, in.SupplierTerms)
	payroll := e.monthlySeries(in, in.Payroll, nil, nil)
	opex := e.monthlySeries(in, in.Opex, nil, nil)

	capex := scheduledSeries(in, in.CapexPayments)
	funding := scheduledSeries(in, in.FundingInjections)

	projection := Projection{Months: make([]MonthRecord, 0, months)}
	balance := in.InitialCash
	cumulativeOperating := 0.0
	first := true

	for m := 0; m < months; m++ {
		year := in.StartYear + m/constants.MonthsPerYear
		month := m%constants.MonthsPerYear + 1

		record := MonthRecord{
			Year:          year,
			Month:         month,
			Revenue:       revenue[m],
			Cogs:          cogs[m],
			Payroll:       payroll[m],
			Opex:          opex[m],
			Capex:         capex[m],
			LoanPayment:   loans.PaymentAt(in.LoanSchedules, year, month),
			Funding:       funding[m],
			TreasuryStart: balance,
		}
		record.NetCashFlow = record.Revenue - record.Cogs - record.Payroll - record.Opex -
			record.Capex - record.LoanPayment + record.Funding
		record.TreasuryEnd = record.TreasuryStart + record.NetCashFlow
		balance = record.TreasuryEnd

		// Derived scalars, single pass.
		if first {
			projection.MinTreasury = record.TreasuryEnd
			first = false
		} else {
			projection.MinTreasury = mathutil.Min(projection.MinTreasury, record.TreasuryEnd)
		}
		cumulativeOperating += record.NetCashFlow - record.Funding
		if projection.BreakEvenMonth == nil && cumulativeOperating >= 0 {
			projection.BreakEvenMonth = &MonthRef{Year: year, Month: month}
		}
		if mathutil.IsNegative(record.NetCashFlow) && -record.NetCashFlow > projection.MaxMonthlyBurn {
			projection.MaxMonthlyBurn = -record.NetCashFlow
		}
		projection.TotalFundingRaised += record.Funding
		projection.TotalCapexPaid += record.Capex

		projection.Months = append(projection.Months, record)
	}

	projection.RunwayMonths = runway(projection.Months)

	if projection.BreakEvenMonth != nil {
		e.logger.Debug(fmt.Sprintf("break-even reached at %d-%02d", projection.BreakEvenMonth.Year, projection.BreakEvenMonth.Month),
			zap.String("op", "treasury.Project"),
		)
	}
	return projection
}

// monthlySeries expands annual totals into a month-indexed series: each year
// is distributed by the seasonality profile, then shifted through the payment
// terms. Mass shifted past the projection horizon is dropped; that loss is
// bounded by the reconciliation tolerance.
func (e *Engine) monthlySeries(in Inputs, annual map[int]float64, weights []float64, terms []paymentterms.Term) []float64 {
	months := in.Years * constants.MonthsPerYear
	series := make([]float64, months)
	for y := 0; y < in.Years; y++ {
		year := in.StartYear + y
		total := annual[year]
		if mathutil.IsZero(total) {
			continue
		}
		monthly := seasonality.Distribute(total, weights)
		copy(series[y*constants.MonthsPerYear:], monthly)
	}

	if len(terms) == 0 {
		return series
	}
	shifted := paymentterms.Apply(series, terms)
	return shifted[:months]
}

// scheduledSeries maps lump payments onto the month index, ignoring payments
// outside the projection window.
func scheduledSeries(in Inputs, payments []ScheduledPayment) []float64 {
	months := in.Years * constants.MonthsPerYear
	series := make([]float64, months)
	for _, payment := range payments {
		month := payment.Month
		if month < 1 || month > constants.MonthsPerYear {
			month = 1
		}
		index := (payment.Year-in.StartYear)*constants.MonthsPerYear + month - 1
		if index < 0 || index >= months {
			continue
		}
		series[index] += payment.Amount
	}
	return series
}

// runway estimates how many months of cash remain at the current burn rate,
// using the trailing six months of net cash flow. Zero when the company is
// not burning.
func runway(months []MonthRecord) int {
	if len(months) == 0 {
		return 0
	}

	window := 6
	if len(months) < window {
		window = len(months)
	}
	burn := 0.0
	for _, record := range months[len(months)-window:] {
		burn += record.NetCashFlow - record.Funding
	}
	burn /= float64(window)
	if !mathutil.IsNegative(burn) {
		return 0
	}

	remaining := months[len(months)-1].TreasuryEnd
	if remaining <= 0 {
		return 0
	}
	return int(remaining / -burn)
}
