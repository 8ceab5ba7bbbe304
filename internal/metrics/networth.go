// Package metrics derives financial signals from a ledger snapshot. Every
// function here is pure: same snapshot in, same numbers out.
package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// NetWorth sums account balances against active debt balances.
func NetWorth(l model.Ledger) model.NetWorthSnapshot {
	assets := decimal.Zero
	for _, a := range l.Accounts {
		assets = assets.Add(a.Balance)
	}
	liabilities := decimal.Zero
	for _, d := range l.Debts {
		if d.Status == model.DebtActive {
			liabilities = liabilities.Add(d.CurrentBalance)
		}
	}
	return model.NetWorthSnapshot{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
	}
}

// RecordSnapshot folds a freshly computed snapshot into the history as a
// daily time series: a second snapshot on the same calendar day overwrites
// the first in place, a new day appends.
func RecordSnapshot(history []model.NetWorthSnapshot, snap model.NetWorthSnapshot, now time.Time) []model.NetWorthSnapshot {
	snap.Date = now

	if n := len(history); n > 0 && sameDay(history[n-1].Date, now) {
		out := append([]model.NetWorthSnapshot(nil), history...)
		out[n-1] = snap
		return out
	}
	return append(append([]model.NetWorthSnapshot(nil), history...), snap)
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
