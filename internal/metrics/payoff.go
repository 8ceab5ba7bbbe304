package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// maxPayoffMonths caps the amortization loop at 100 years; past that the
// payment is treated as never covering the debt.
const maxPayoffMonths = 1200

var (
	hundred      = decimal.NewFromInt(100)
	twelveMonths = decimal.NewFromInt(12)
)

// PayoffProjection is the result of simulating fixed monthly payments
// against an amortizing balance.
type PayoffProjection struct {
	Months        int
	TotalInterest decimal.Decimal
	Never         bool // payment does not cover accruing interest
}

// SimulatePayoff runs a month-by-month amortization: each month accrues
// interest at annualRate/12, then the payment reduces the balance by the
// remainder.
func SimulatePayoff(balance, annualRate, payment decimal.Decimal) PayoffProjection {
	monthlyRate := annualRate.Div(hundred).Div(twelveMonths)

	if !payment.GreaterThan(balance.Mul(monthlyRate)) {
		return PayoffProjection{Never: true}
	}

	months := 0
	totalInterest := decimal.Zero
	for balance.IsPositive() {
		interest := balance.Mul(monthlyRate)
		totalInterest = totalInterest.Add(interest)
		balance = balance.Sub(payment.Sub(interest))
		months++
		if months > maxPayoffMonths {
			return PayoffProjection{Never: true}
		}
	}
	return PayoffProjection{Months: months, TotalInterest: totalInterest}
}

// PayoffComparison contrasts minimum-only payments with an extra-payment
// scenario.
type PayoffComparison struct {
	Minimum        PayoffProjection
	Extra          PayoffProjection
	InterestSaved  decimal.Decimal
	ExtraPayment   decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// ComparePayoff simulates a debt's payoff at its minimum payment and with an
// additional monthly amount on top.
func ComparePayoff(d model.Debt, extra decimal.Decimal) PayoffComparison {
	minOnly := SimulatePayoff(d.CurrentBalance, d.InterestRate, d.MinimumPayment)
	withExtra := SimulatePayoff(d.CurrentBalance, d.InterestRate, d.MinimumPayment.Add(extra))

	cmp := PayoffComparison{
		Minimum:        minOnly,
		Extra:          withExtra,
		ExtraPayment:   extra,
		MonthlyPayment: d.MinimumPayment,
	}
	if !minOnly.Never && !withExtra.Never {
		cmp.InterestSaved = minOnly.TotalInterest.Sub(withExtra.TotalInterest)
	}
	return cmp
}
