package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// BudgetStatus is one budget's consumption for its month.
type BudgetStatus struct {
	Budget    model.Budget
	Spent     decimal.Decimal
	Percent   float64
	Overspent bool
}

// BudgetProgress computes per-category consumption for every budget in the
// given month (YYYY-MM). Budgets are independent per month; nothing carries
// over.
func BudgetProgress(l model.Ledger, month string) []BudgetStatus {
	var out []BudgetStatus
	for _, b := range l.Budgets {
		if b.Month != month {
			continue
		}
		spent := decimal.Zero
		for _, t := range l.Transactions {
			if t.Type == model.TypeExpense && t.CategoryID == b.CategoryID && t.Date.Format("2006-01") == month {
				spent = spent.Add(t.Amount)
			}
		}
		st := BudgetStatus{Budget: b, Spent: spent, Overspent: spent.GreaterThan(b.Amount)}
		if b.Amount.IsPositive() {
			st.Percent = ratio(spent, b.Amount) * 100
		}
		out = append(out, st)
	}
	return out
}
