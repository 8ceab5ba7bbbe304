// Package backup serializes the full ledger to a portable JSON document and
// restores it, tolerating documents written by older versions.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// ErrInvalidBackup is returned when a restore document fails to parse. The
// current ledger is left untouched.
var ErrInvalidBackup = errors.New("not a valid backup document")

// Export serializes every collection, categories included, as an indented
// document suitable for a user-facing file.
func Export(l model.Ledger) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing backup: %w", err)
	}
	return data, nil
}

// Import parses a backup document into a full ledger. Any key absent from an
// older or foreign document defaults to a safe empty value; the protected
// category set is re-seeded when missing. Values the document defines
// round-trip losslessly.
func Import(data []byte) (model.Ledger, error) {
	var l model.Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return model.Ledger{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return normalize(l), nil
}

func normalize(l model.Ledger) model.Ledger {
	if l.Transactions == nil {
		l.Transactions = []model.Transaction{}
	}
	if l.Accounts == nil {
		l.Accounts = []model.Account{}
	}
	if l.Goals == nil {
		l.Goals = []model.Goal{}
	}
	if len(l.Categories) == 0 {
		l.Categories = ledger.DefaultCategories()
	}
	if l.Budgets == nil {
		l.Budgets = []model.Budget{}
	}
	if l.RecurringTransactions == nil {
		l.RecurringTransactions = []model.RecurringTransaction{}
	}
	if l.ShoppingLists == nil {
		l.ShoppingLists = []model.ShoppingList{}
	}
	if l.Debts == nil {
		l.Debts = []model.Debt{}
	}
	if l.Products == nil {
		l.Products = []model.Product{}
	}
	if l.EmergencyFund.Contributions == nil {
		l.EmergencyFund.Contributions = []model.FundContribution{}
	}
	if l.Subscriptions == nil {
		l.Subscriptions = []model.Subscription{}
	}
	if l.Bills == nil {
		l.Bills = []model.Bill{}
	}
	if l.IncomeSources == nil {
		l.IncomeSources = []model.IncomeSource{}
	}
	if l.NetWorthHistory == nil {
		l.NetWorthHistory = []model.NetWorthSnapshot{}
	}
	return l
}
