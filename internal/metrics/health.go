package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// HealthReport is the composed financial health score and its inputs.
type HealthReport struct {
	Score               int     // 0-100
	SavingsRate         float64 // percent of monthly income saved
	DebtToIncome        float64 // percent of monthly income owed as minimums
	EmergencyFundStatus float64 // percent of the fund goal reached
	SavingsScore        float64
	DTIScore            float64
	EmergencyScore      float64
}

// HealthScore composes three weighted sub-scores over a trailing 30-day view
// of the ledger. Missing income or an unset fund goal zeroes the dependent
// rate rather than dividing by zero.
func HealthScore(l model.Ledger, now time.Time) HealthReport {
	income := MonthlyIncome(l)
	since := now.AddDate(0, -1, 0)

	savings := decimal.Zero
	for _, t := range l.Transactions {
		if t.Type == model.TypeExpense && t.CategoryID == ledger.SavingsCategoryID && !t.Date.Before(since) {
			savings = savings.Add(t.Amount)
		}
	}

	debtPayments := decimal.Zero
	for _, d := range l.Debts {
		if d.Status == model.DebtActive {
			debtPayments = debtPayments.Add(d.MinimumPayment)
		}
	}

	var savingsRate, debtToIncome float64
	if income.IsPositive() {
		savingsRate = ratio(savings, income) * 100
		debtToIncome = ratio(debtPayments, income) * 100
	}

	var fundStatus float64
	if l.EmergencyFund.Goal.IsPositive() {
		fundStatus = ratio(l.EmergencyFund.Current, l.EmergencyFund.Goal) * 100
	}

	savingsScore := math.Min(100, savingsRate/20*100)
	dtiScore := math.Max(0, (1-debtToIncome/43)*100)
	emergencyScore := math.Min(100, fundStatus)

	return HealthReport{
		Score:               int(math.Round(savingsScore*0.4 + dtiScore*0.3 + emergencyScore*0.3)),
		SavingsRate:         savingsRate,
		DebtToIncome:        debtToIncome,
		EmergencyFundStatus: fundStatus,
		SavingsScore:        savingsScore,
		DTIScore:            dtiScore,
		EmergencyScore:      emergencyScore,
	}
}

// MonthlyIncome aggregates recurring income sources.
func MonthlyIncome(l model.Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, src := range l.IncomeSources {
		if src.IsRecurring {
			total = total.Add(src.Amount)
		}
	}
	return total
}

func ratio(a, b decimal.Decimal) float64 {
	f, _ := a.Div(b).Float64()
	return f
}
