package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is a derived daily record kept as history.
type NetWorthSnapshot struct {
	Date        time.Time       `json:"date"`
	NetWorth    decimal.Decimal `json:"netWorth"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
}

// Ledger is the complete set of financial collections treated as one
// consistent unit of state. It is both the canonical in-memory state and the
// shape of the durable blob and backup document.
type Ledger struct {
	Transactions          []Transaction          `json:"transactions"`
	Accounts              []Account              `json:"accounts"`
	Goals                 []Goal                 `json:"goals"`
	Categories            []Category             `json:"categories"`
	Budgets               []Budget               `json:"budgets"`
	RecurringTransactions []RecurringTransaction `json:"recurringTransactions"`
	ShoppingLists         []ShoppingList         `json:"shoppingLists"`
	Debts                 []Debt                 `json:"debts"`
	Products              []Product              `json:"products"`
	EmergencyFund         EmergencyFund          `json:"emergencyFund"`
	Subscriptions         []Subscription         `json:"subscriptions"`
	Bills                 []Bill                 `json:"bills"`
	IncomeSources         []IncomeSource         `json:"incomeSources"`
	NetWorthHistory       []NetWorthSnapshot     `json:"netWorthHistory"`
}

// Clone returns a deep copy, safe to hand to readers while the original keeps
// mutating. Decimal values are immutable and shared.
func (l Ledger) Clone() Ledger {
	out := l

	out.Transactions = append([]Transaction(nil), l.Transactions...)
	out.Accounts = append([]Account(nil), l.Accounts...)
	out.Goals = append([]Goal(nil), l.Goals...)
	out.Categories = append([]Category(nil), l.Categories...)
	out.Budgets = append([]Budget(nil), l.Budgets...)
	out.IncomeSources = append([]IncomeSource(nil), l.IncomeSources...)
	out.NetWorthHistory = append([]NetWorthSnapshot(nil), l.NetWorthHistory...)

	out.RecurringTransactions = append([]RecurringTransaction(nil), l.RecurringTransactions...)
	for i, rt := range out.RecurringTransactions {
		out.RecurringTransactions[i].EndDate = copyTime(rt.EndDate)
	}

	out.Debts = append([]Debt(nil), l.Debts...)
	for i, d := range out.Debts {
		out.Debts[i].PaymentHistory = append([]DebtPayment(nil), d.PaymentHistory...)
	}

	out.ShoppingLists = append([]ShoppingList(nil), l.ShoppingLists...)
	for i, sl := range out.ShoppingLists {
		out.ShoppingLists[i].Items = append([]ShoppingItem(nil), sl.Items...)
		out.ShoppingLists[i].ReminderDate = copyTime(sl.ReminderDate)
		out.ShoppingLists[i].CompletionDate = copyTime(sl.CompletionDate)
	}

	out.Products = append([]Product(nil), l.Products...)
	for i, p := range out.Products {
		out.Products[i].Claims = append([]WarrantyClaim(nil), p.Claims...)
	}

	out.Subscriptions = append([]Subscription(nil), l.Subscriptions...)
	out.Bills = append([]Bill(nil), l.Bills...)

	out.EmergencyFund.Contributions = append([]FundContribution(nil), l.EmergencyFund.Contributions...)

	return out
}

// EmptyFund returns a zeroed emergency fund.
func EmptyFund() EmergencyFund {
	return EmergencyFund{Goal: decimal.Zero, Current: decimal.Zero, Contributions: []FundContribution{}}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
