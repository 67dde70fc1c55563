// Package output provides utilities for formatting and displaying projection
// results.
package output

import (
	"fmt"

	"github.com/venturecast/venturecast/internal/projection"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []projection.ScenarioProjection) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)

		fmt.Printf("Year | Revenue       | Gross margin  | EBITDA        | Net cash flow | Treasury\n")
		fmt.Printf("____ | _____________ | _____________ | _____________ | _____________ | _____________\n")
		for _, row := range result.Years {
			_, _ = p.Printf("%d | %13.2f | %13.2f | %13.2f | %13.2f | %13.2f\n",
				row.Year, row.Revenue, row.GrossMargin, row.Ebitda, row.NetCashFlow, row.ClosingTreasury)
		}

		_, _ = p.Printf("\nMinimum treasury: %.2f\n", result.Monthly.MinTreasury)
		if result.Monthly.BreakEvenMonth != nil {
			fmt.Printf("Break-even month: %d-%02d\n", result.Monthly.BreakEvenMonth.Year, result.Monthly.BreakEvenMonth.Month)
		} else {
			fmt.Printf("Break-even month: not reached\n")
		}
		_, _ = p.Printf("Max monthly burn: %.2f\n", result.Monthly.MaxMonthlyBurn)
		_, _ = p.Printf("Total funding raised: %.2f\n", result.Monthly.TotalFundingRaised)
		_, _ = p.Printf("Total CAPEX paid: %.2f\n", result.Monthly.TotalCapexPaid)
		if result.Monthly.RunwayMonths > 0 {
			fmt.Printf("Runway: %d months\n", result.Monthly.RunwayMonths)
		}

		if len(result.Valuations) > 0 {
			fmt.Printf("\nValuation\n")
			for _, v := range result.Valuations {
				_, _ = p.Printf("  %-22s %15.2f\n", v.Method, v.Value)
			}
			_, _ = p.Printf("  %-22s %15.2f\n", "average", result.AverageValuation)
			_, _ = p.Printf("  %-22s %15.2f\n", "weighted average", result.WeightedValuation)
		}

		if result.Dilution.PostMoney > 0 {
			_, _ = p.Printf("\nPlanned raise: pre-money %.2f, post-money %.2f, dilution %.1f%%\n",
				result.Dilution.PreMoney, result.Dilution.PostMoney, result.Dilution.Dilution*100)
		}
		if result.ExitIRR != 0 {
			_, _ = p.Printf("Exit IRR: %.1f%%\n", result.ExitIRR*100)
		}
		for _, round := range result.Rounds {
			_, _ = p.Printf("Round %s (%d): raised %.2f at %.2f pre-money, dilution %.1f%%\n",
				round.Name, round.Year, round.Amount, round.PreMoney, round.Dilution*100)
		}

		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs the monthly treasury ledger in comma-separated value
// format, one block of columns per scenario.
func CsvFormat(results []projection.ScenarioProjection) {
	if len(results) == 0 {
		return
	}

	// All scenarios share the same timeline; take it from the first.
	months := results[0].Monthly.Months

	fmt.Printf(`"month"`)
	for _, result := range results {
		fmt.Printf(`,"revenue (%s)","cogs (%s)","payroll (%s)","opex (%s)","capex (%s)","loans (%s)","funding (%s)","net (%s)","treasury (%s)"`,
			result.Name, result.Name, result.Name, result.Name, result.Name, result.Name, result.Name, result.Name, result.Name)
	}
	fmt.Printf("\n")

	for m := range months {
		fmt.Printf(`"%d-%02d"`, months[m].Year, months[m].Month)
		for _, result := range results {
			record := result.Monthly.Months[m]
			fmt.Printf(`,"%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				record.Revenue, record.Cogs, record.Payroll, record.Opex,
				record.Capex, record.LoanPayment, record.Funding,
				record.NetCashFlow, record.TreasuryEnd)
		}
		fmt.Printf("\n")
	}
}
