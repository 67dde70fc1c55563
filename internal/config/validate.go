package config

import (
	"github.com/venturecast/venturecast/pkg/mathutil"
	"github.com/venturecast/venturecast/pkg/paymentterms"
	"github.com/venturecast/venturecast/pkg/validation"
)

// ValidateConfiguration performs general validation of the plan and returns
// warnings. Nothing here is fatal; the projection engine absorbs degenerate
// inputs by design.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	knownProducts := make(map[string]bool, len(conf.Products))
	for _, product := range conf.Products {
		knownProducts[product.Name] = true
	}
	knownComponents := make(map[string]bool, len(conf.Components))
	for _, component := range conf.Components {
		knownComponents[component.Name] = true
	}

	bomEntriesPerProduct := make(map[string]int, len(conf.Products))
	for _, entry := range conf.Bom {
		bomEntriesPerProduct[entry.Product]++
		warnings = append(warnings, validation.ValidateBomReference(
			entry.Product, entry.Component,
			knownProducts[entry.Product], knownComponents[entry.Component])...)
	}

	for _, product := range conf.Products {
		var volumeYears []int
		for _, volume := range product.Volumes {
			volumeYears = append(volumeYears, volume.Year)
		}
		warnings = append(warnings, validation.ValidateVolumeYears(
			product.Name, volumeYears, conf.Plan.StartYear, conf.Plan.EndYear())...)

		if warning := validation.ValidateCostMode(
			product.Name, mathutil.IsPositive(product.ManualUnitCost), bomEntriesPerProduct[product.Name]); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if warning := validation.ValidatePaymentTerms("Customer",
		paymentterms.TotalPercent(Terms(conf.PaymentTerms.Customer))); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := validation.ValidatePaymentTerms("Supplier",
		paymentterms.TotalPercent(Terms(conf.PaymentTerms.Supplier))); warning != "" {
		warnings = append(warnings, warning)
	}

	for _, loan := range conf.Loans {
		if warning := validation.ValidateLoanWindow(
			loan.Name, loan.StartYear, loan.Term, conf.Plan.StartYear, conf.Plan.EndYear()); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	var scenarioNames []string
	for _, s := range conf.Scenarios {
		scenarioNames = append(scenarioNames, s.Name)
	}
	warnings = append(warnings, validation.ValidateScenarioNames(scenarioNames)...)

	return warnings
}
