package ledger

import "github.com/walletplus-dev/walletplus/internal/model"

// SavingsCategoryID identifies the protected singleton category. It always
// exists, can never be deleted, and is the implicit target of goal
// contributions.
const SavingsCategoryID = "cat-11"

// DefaultCategories returns the seeded category set for a fresh ledger.
func DefaultCategories() []model.Category {
	return []model.Category{
		// Income
		{ID: "cat-1", Name: "Salary", Type: model.TypeIncome, Color: "#22c55e", Icon: "💼"},
		{ID: "cat-8", Name: "Freelance", Type: model.TypeIncome, Color: "#14b8a6", Icon: "💻"},
		{ID: "cat-12", Name: "Awards", Type: model.TypeIncome, Color: "#facc15", Icon: "🏆"},
		{ID: "cat-16", Name: "Refunds", Type: model.TypeIncome, Color: "#fbbf24", Icon: "🔙"},
		{ID: "cat-17", Name: "Rental", Type: model.TypeIncome, Color: "#60a5fa", Icon: "🏢"},
		{ID: "cat-18", Name: "Sale", Type: model.TypeIncome, Color: "#f87171", Icon: "🏷️"},

		// Expense
		{ID: "cat-2", Name: "Groceries", Type: model.TypeExpense, Color: "#ef4444", Icon: "🛒"},
		{ID: "cat-3", Name: "Rent", Type: model.TypeExpense, Color: "#f97316", Icon: "🏠"},
		{ID: "cat-4", Name: "Utilities", Type: model.TypeExpense, Color: "#3b82f6", Icon: "💡"},
		{ID: "cat-5", Name: "Transport", Type: model.TypeExpense, Color: "#8b5cf6", Icon: "🚗"},
		{ID: "cat-6", Name: "Dining Out", Type: model.TypeExpense, Color: "#eab308", Icon: "🍔"},
		{ID: "cat-7", Name: "Entertainment", Type: model.TypeExpense, Color: "#ec4899", Icon: "🎬"},
		{ID: "cat-9", Name: "Shopping", Type: model.TypeExpense, Color: "#d946ef", Icon: "🛍️"},
		{ID: "cat-10", Name: "Health", Type: model.TypeExpense, Color: "#64748b", Icon: "💊"},
		{ID: SavingsCategoryID, Name: "Savings & Goals", Type: model.TypeExpense, Color: "#10b981", Icon: "🏦"},
		{ID: "cat-21", Name: "Bills", Type: model.TypeExpense, Color: "#9ca3af", Icon: "🧾"},
		{ID: "cat-22", Name: "Education", Type: model.TypeExpense, Color: "#a3e635", Icon: "🎓"},
	}
}

// NewLedger returns an empty ledger with the default categories seeded.
func NewLedger() model.Ledger {
	return model.Ledger{
		Transactions:          []model.Transaction{},
		Accounts:              []model.Account{},
		Goals:                 []model.Goal{},
		Categories:            DefaultCategories(),
		Budgets:               []model.Budget{},
		RecurringTransactions: []model.RecurringTransaction{},
		ShoppingLists:         []model.ShoppingList{},
		Debts:                 []model.Debt{},
		Products:              []model.Product{},
		EmergencyFund:         model.EmptyFund(),
		Subscriptions:         []model.Subscription{},
		Bills:                 []model.Bill{},
		IncomeSources:         []model.IncomeSource{},
		NetWorthHistory:       []model.NetWorthSnapshot{},
	}
}
