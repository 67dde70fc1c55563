package treasury

import (
	"fmt"

	"github.com/venturecast/venturecast/pkg/constants"
	"github.com/venturecast/venturecast/pkg/mathutil"
	"github.com/venturecast/venturecast/pkg/paymentterms"
)

// YearRow is the annual aggregate of the monthly ledger. It carries no logic
// of its own: every figure is a fold over the months of that calendar year.
type YearRow struct {
	Year            int
	Revenue         float64
	Cogs            float64
	GrossMargin     float64
	Payroll         float64
	Opex            float64
	Ebitda          float64
	Capex           float64
	LoanPayments    float64
	FundingRaised   float64
	NetCashFlow     float64
	ClosingTreasury float64
}

// AggregateYears folds the monthly ledger into one row per calendar year.
// This is the only annual computation path in the system.
func AggregateYears(projection Projection) []YearRow {
	var rows []YearRow
	var current *YearRow

	for _, record := range projection.Months {
		if current == nil || current.Year != record.Year {
			rows = append(rows, YearRow{Year: record.Year})
			current = &rows[len(rows)-1]
		}
		current.Revenue += record.Revenue
		current.Cogs += record.Cogs
		current.Payroll += record.Payroll
		current.Opex += record.Opex
		current.Capex += record.Capex
		current.LoanPayments += record.LoanPayment
		current.FundingRaised += record.Funding
		current.NetCashFlow += record.NetCashFlow
		current.ClosingTreasury = record.TreasuryEnd
	}

	for i := range rows {
		rows[i].GrossMargin = rows[i].Revenue - rows[i].Cogs
		rows[i].Ebitda = rows[i].GrossMargin - rows[i].Payroll - rows[i].Opex
	}
	return rows
}

// ReconcileAnnual compares the aggregated ledger against the annual input
// figures and returns warnings for any divergence beyond tolerance. Revenue
// must reconcile exactly (up to currency rounding); only when customer terms
// delay cash is it allowed the same small relative drift as COGS, because
// delayed receivables legitimately shift mass across year boundaries.
func ReconcileAnnual(rows []YearRow, revenue, cogs map[int]float64, customerTerms []paymentterms.Term) []string {
	var warnings []string
	customerDelayed := paymentterms.MaxDelay(customerTerms) > 0

	for _, row := range rows {
		if expected, ok := revenue[row.Year]; ok {
			reconciles := mathutil.WithinTolerance(row.Revenue, expected, constants.CurrencyTolerance)
			if !reconciles && customerDelayed {
				reconciles = mathutil.WithinRelativeTolerance(row.Revenue, expected, constants.CogsReconciliationTolerance)
			}
			if !reconciles {
				warnings = append(warnings, fmt.Sprintf("year %d: ledger revenue %.2f diverges from annual input %.2f",
					row.Year, row.Revenue, expected))
			}
		}
		if expected, ok := cogs[row.Year]; ok {
			if !mathutil.WithinRelativeTolerance(row.Cogs, expected, constants.CogsReconciliationTolerance) {
				warnings = append(warnings, fmt.Sprintf("year %d: ledger COGS %.2f diverges from annual input %.2f beyond %.0f%%",
					row.Year, row.Cogs, expected, constants.CogsReconciliationTolerance*constants.PercentageMultiplier))
			}
		}
	}
	return warnings
}
