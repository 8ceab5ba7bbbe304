package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction's effect on its account.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Transaction is a single ledger movement against one account.
// Amount is always a positive magnitude; Type carries the sign.
type Transaction struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	Type            TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	CategoryID      string          `json:"categoryId"`
	Date            time.Time       `json:"date"`
	ReceiptImage    string          `json:"receiptImage,omitempty"`
	IsTaxDeductible bool            `json:"isTaxDeductible,omitempty"`
	IsReconciled    bool            `json:"isReconciled,omitempty"`
}

// SignedAmount returns the transaction's effect on its account balance:
// positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Frequency is a recurring-transaction repetition interval.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// TransactionTemplate is the embedded detail of a recurring rule. It is a
// template only: materialization into concrete transactions is a manual step.
type TransactionTemplate struct {
	AccountID   string          `json:"accountId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
}

// RecurringTransaction stores a repeating transaction rule.
type RecurringTransaction struct {
	ID                 string              `json:"id"`
	TransactionDetails TransactionTemplate `json:"transactionDetails"`
	Frequency          Frequency           `json:"frequency"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            *time.Time          `json:"endDate,omitempty"`
}
