package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget caps spending for one category in one month. Months are independent;
// unspent amounts do not carry over.
type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Month      string          `json:"month"` // YYYY-MM
}

// Goal is a savings target funded by contributions.
type Goal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	StartDate     time.Time       `json:"startDate"`
	Deadline      time.Time       `json:"deadline"`
}

// IncomeSource feeds the monthly income aggregation used by derived metrics.
type IncomeSource struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"` // Salary, Freelance, Investment, Other
	Amount      decimal.Decimal `json:"amount"`
	Payday      string          `json:"payday"`
	IsRecurring bool            `json:"isRecurring"`
}

// FundContribution is one entry in an append-only contribution log.
type FundContribution struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// EmergencyFund is a per-ledger singleton.
type EmergencyFund struct {
	Goal          decimal.Decimal    `json:"goal"`
	Current       decimal.Decimal    `json:"current"`
	Contributions []FundContribution `json:"contributions"`
}
