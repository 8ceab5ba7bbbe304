package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtActive  DebtStatus = "Active"
	DebtPaidOff DebtStatus = "Paid Off"
)

// DebtPayment is one entry in a debt's append-only payment history.
type DebtPayment struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// Debt tracks an owed balance. CurrentBalance only moves down, via payments;
// status flips to paid off when it reaches zero and never flips back on its own.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"` // Loan, Credit Card, Medical, Family Loan, Other
	CreditorName   string          `json:"creditorName"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	InterestRate   decimal.Decimal `json:"interestRate"` // APR percent
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	DueDateDay     int             `json:"dueDateDay"`
	StartDate      time.Time       `json:"startDate"`
	Status         DebtStatus      `json:"status"`
	PaymentHistory []DebtPayment   `json:"paymentHistory"`
}
