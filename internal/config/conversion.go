package config

import (
	"github.com/venturecast/venturecast/pkg/bom"
	"github.com/venturecast/venturecast/pkg/loans"
	"github.com/venturecast/venturecast/pkg/mathutil"
	"github.com/venturecast/venturecast/pkg/paymentterms"
	"github.com/venturecast/venturecast/pkg/scenario"
	"github.com/venturecast/venturecast/pkg/treasury"
	"go.uber.org/zap"
)

// BomEngine builds the cost roll-up engine from the configured catalog.
func (conf *Configuration) BomEngine(logger *zap.Logger) *bom.Engine {
	components := make([]bom.Component, 0, len(conf.Components))
	for _, component := range conf.Components {
		prices := make(map[int]float64, len(component.Prices))
		for _, tier := range component.Prices {
			prices[tier.Volume] = tier.Price
		}
		components = append(components, bom.Component{
			ID:         component.Name,
			Name:       component.Name,
			TierPrices: prices,
		})
	}

	entries := make([]bom.Entry, 0, len(conf.Bom))
	for _, entry := range conf.Bom {
		entries = append(entries, bom.Entry{
			ProductID:   entry.Product,
			ComponentID: entry.Component,
			Quantity:    entry.Quantity,
		})
	}

	products := make(map[string]bom.CostConfig, len(conf.Products))
	for _, product := range conf.Products {
		if mathutil.IsPositive(product.ManualUnitCost) {
			products[product.Name] = bom.ManualCost(product.ManualUnitCost)
		} else {
			products[product.Name] = bom.RolledUpCost(product.OverheadCoefficient)
		}
	}

	return bom.NewEngine(logger, components, entries, products)
}

// ToLoan converts a configured loan for the amortizer.
func (l Loan) ToLoan() loans.Loan {
	return loans.Loan{
		Name:         l.Name,
		Principal:    l.Principal,
		InterestRate: l.InterestRate,
		Term:         l.Term,
		StartYear:    l.StartYear,
		StartMonth:   l.StartMonth,
	}
}

// LoanSchedules amortizes every configured loan.
func (conf *Configuration) LoanSchedules(logger *zap.Logger) [][]loans.Installment {
	amortizer := loans.NewAmortizer(logger)
	schedules := make([][]loans.Installment, 0, len(conf.Loans))
	for _, loan := range conf.Loans {
		schedules = append(schedules, amortizer.Schedule(loan.ToLoan()))
	}
	return schedules
}

// Terms converts configured payment term definitions.
func Terms(defs []PaymentTermDef) []paymentterms.Term {
	terms := make([]paymentterms.Term, 0, len(defs))
	for _, def := range defs {
		terms = append(terms, paymentterms.Term{DelayMonths: def.DelayMonths, Percent: def.Percent})
	}
	return terms
}

// ToScenarioConfig converts a configured scenario variant.
func (s Scenario) ToScenarioConfig() scenario.Config {
	return scenario.Config{
		Name:             s.Name,
		VolumeAdjustment: s.VolumeAdjustment,
		PriceAdjustment:  s.PriceAdjustment,
		OpexAdjustment:   s.OpexAdjustment,
	}
}

// CapexPayments returns the product's development cost as scheduled
// payments. Without an explicit schedule the whole cost lands in the
// launch year's first month.
func (p Product) CapexPayments() []treasury.ScheduledPayment {
	if p.DevelopmentCost == 0 && len(p.CapexSchedule) == 0 {
		return nil
	}

	if len(p.CapexSchedule) == 0 {
		return []treasury.ScheduledPayment{{Year: p.LaunchYear, Month: 1, Amount: p.DevelopmentCost}}
	}

	payments := make([]treasury.ScheduledPayment, 0, len(p.CapexSchedule))
	for _, scheduled := range p.CapexSchedule {
		month := scheduled.Month
		if month == 0 {
			month = 1
		}
		payments = append(payments, treasury.ScheduledPayment{
			Year:   scheduled.Year,
			Month:  month,
			Amount: scheduled.Amount,
		})
	}
	return payments
}

// Injection returns the round's cash injection as a scheduled payment.
func (r FundingRound) Injection() treasury.ScheduledPayment {
	month := r.Month
	if month == 0 {
		month = 1
	}
	return treasury.ScheduledPayment{Year: r.Year, Month: month, Amount: r.Amount}
}
