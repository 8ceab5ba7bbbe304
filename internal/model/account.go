package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts.
type AccountType string

const (
	AccountTypeChecking   AccountType = "Checking"
	AccountTypeSavings    AccountType = "Savings"
	AccountTypeCreditCard AccountType = "Credit Card"
	AccountTypeInvestment AccountType = "Investment"
	AccountTypeCash       AccountType = "Cash"
)

// Account holds a cached running balance. The balance must always equal the
// opening value plus the signed effect of every transaction referencing the
// account; the ledger service is the only writer.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Icon    string          `json:"icon"`
	Type    AccountType     `json:"type"`
}

// Category labels transactions of a matching type.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
	Icon  string          `json:"icon"`
}
