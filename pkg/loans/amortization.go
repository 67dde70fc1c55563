// Package loans provides constant-payment loan amortization schedules.
package loans

import (
	"fmt"
	"math"

	"github.com/venturecast/venturecast/pkg/constants"
	"go.uber.org/zap"
)

// Loan describes a loan to be amortized.
type Loan struct {
	Name         string
	Principal    float64
	InterestRate float64 // annual rate in percent, e.g. 6.0
	Term         int     // months
	StartYear    int
	StartMonth   int // 1..12
}

// Installment holds the values for a given monthly payment.
type Installment struct {
	Year             int
	Month            int // 1..12
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard annuity amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Amortizer generates amortization schedules.
type Amortizer struct {
	logger *zap.Logger
}

// NewAmortizer creates a new amortizer instance.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewAmortizer(logger *zap.Logger) *Amortizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Amortizer{logger: logger}
}

// Schedule produces the full amortization schedule for a loan: exactly Term
// entries, one per month starting at (StartYear, StartMonth). Accumulated
// floating error is corrected into the final installment so the closing
// balance is exactly zero.
func (a *Amortizer) Schedule(loan Loan) []Installment {
	if loan.Term <= 0 || loan.Principal <= 0 {
		return nil
	}

	monthlyPayment := CalculateMonthlyPayment(loan.Principal, loan.InterestRate, loan.Term)
	a.logger.Debug(fmt.Sprintf("loan %s: monthly payment %.2f over %d months", loan.Name, monthlyPayment, loan.Term),
		zap.String("op", "loans.Schedule"),
	)

	year, month := loan.StartYear, loan.StartMonth
	if month < 1 || month > constants.MonthsPerYear {
		month = 1
	}

	schedule := make([]Installment, 0, loan.Term)
	balance := loan.Principal
	for n := 1; n <= loan.Term; n++ {
		interest := CalculateInterestPayment(balance, loan.InterestRate)
		principal := monthlyPayment - interest
		payment := monthlyPayment

		if n == loan.Term {
			// Absorb accumulated rounding so the loan closes at exactly zero.
			principal = balance
			payment = principal + interest
		}
		balance -= principal
		if n == loan.Term {
			balance = 0
		}

		schedule = append(schedule, Installment{
			Year:             year,
			Month:            month,
			Payment:          payment,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})

		month++
		if month > constants.MonthsPerYear {
			month = 1
			year++
		}
	}
	return schedule
}

// PaymentAt returns the total payment due in the given calendar month across
// all provided schedules, summing loans whose active windows overlap.
func PaymentAt(schedules [][]Installment, year, month int) float64 {
	total := 0.0
	for _, schedule := range schedules {
		for _, installment := range schedule {
			if installment.Year == year && installment.Month == month {
				total += installment.Payment
			}
		}
	}
	return total
}
