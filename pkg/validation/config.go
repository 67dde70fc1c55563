// Package validation provides business-plan validation utilities. All checks
// produce non-fatal warning strings; a plan with warnings still projects.
package validation

import (
	"fmt"
	"math"

	"github.com/venturecast/venturecast/pkg/constants"
)

// ValidateVolumeYears checks that a product's volume series stays inside the
// projection window.
func ValidateVolumeYears(productName string, volumeYears []int, startYear, endYear int) []string {
	var warnings []string
	for _, year := range volumeYears {
		if year < startYear || year > endYear {
			warnings = append(warnings, fmt.Sprintf("Product '%s' has volume for year %d outside the projection window (%d-%d)",
				productName, year, startYear, endYear))
		}
	}
	return warnings
}

// ValidateCostMode checks that a product declares exactly one cost mode:
// either a manual unit cost or BOM entries, not both.
func ValidateCostMode(productName string, hasManualCost bool, bomEntryCount int) string {
	if hasManualCost && bomEntryCount > 0 {
		return fmt.Sprintf("Product '%s' declares both a manual unit cost and %d BOM entries - manual cost wins, BOM is ignored",
			productName, bomEntryCount)
	}
	if !hasManualCost && bomEntryCount == 0 {
		return fmt.Sprintf("Product '%s' has neither a manual unit cost nor BOM entries - unit cost resolves to zero", productName)
	}
	return ""
}

// ValidatePaymentTerms checks that a term set's percentages sum to 100.
func ValidatePaymentTerms(label string, totalPercent float64) string {
	if math.Abs(totalPercent-constants.PercentageMultiplier) > constants.CurrencyTolerance {
		return fmt.Sprintf("%s payment terms sum to %.2f%%, expected 100%%", label, totalPercent)
	}
	return ""
}

// ValidateLoanWindow checks that a loan matures inside the projection window.
func ValidateLoanWindow(loanName string, loanStartYear, termMonths, startYear, endYear int) string {
	if loanStartYear < startYear {
		return fmt.Sprintf("Loan '%s' starts in %d, before the projection window - earlier installments are ignored",
			loanName, loanStartYear)
	}
	maturityYear := loanStartYear + termMonths/constants.MonthsPerYear
	if maturityYear > endYear {
		return fmt.Sprintf("Loan '%s' matures in %d, after the projection window (%d) - loan will have outstanding balance",
			loanName, maturityYear, endYear)
	}
	return ""
}

// ValidateScenarioNames checks for duplicate scenario names.
func ValidateScenarioNames(names []string) []string {
	var warnings []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", name))
		}
		seen[name] = true
	}
	return warnings
}

// ValidateBomReference checks a BOM entry against the known catalogs.
func ValidateBomReference(productName, componentName string, knownProduct, knownComponent bool) []string {
	var warnings []string
	if !knownProduct {
		warnings = append(warnings, fmt.Sprintf("BOM entry references unknown product '%s'", productName))
	}
	if !knownComponent {
		warnings = append(warnings, fmt.Sprintf("BOM entry for product '%s' references unknown component '%s'", productName, componentName))
	}
	return warnings
}
