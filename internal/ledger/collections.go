package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/id"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// The peripheral collections share one contract shape: Save upserts (a blank
// ID means create), Delete removes by ID, and every successful call fires
// onChange once.

// SaveBudget creates a budget for a category and month.
func (s *Service) SaveBudget(categoryID string, amount decimal.Decimal, month string) (model.Budget, error) {
	if !s.categoryExists(categoryID) {
		return model.Budget{}, fmt.Errorf("saving budget: %w", ErrCategoryNotFound)
	}
	b := model.Budget{ID: id.New(id.Budget), CategoryID: categoryID, Amount: amount, Month: month}
	s.ledger.Budgets = append(s.ledger.Budgets, b)
	s.notify()
	return b, nil
}

// DeleteBudget removes a budget.
func (s *Service) DeleteBudget(budgetID string) error {
	for i, b := range s.ledger.Budgets {
		if b.ID == budgetID {
			s.ledger.Budgets = append(s.ledger.Budgets[:i], s.ledger.Budgets[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting budget %s: %w", budgetID, ErrNotFound)
}

// Budgets returns all budgets.
func (s *Service) Budgets() []model.Budget {
	return append([]model.Budget(nil), s.ledger.Budgets...)
}

// SaveGoal upserts a goal. New goals start at zero.
func (s *Service) SaveGoal(g model.Goal) model.Goal {
	if g.ID == "" {
		g.ID = id.New(id.Goal)
		g.CurrentAmount = decimal.Zero
		if g.StartDate.IsZero() {
			g.StartDate = s.now()
		}
		s.ledger.Goals = append([]model.Goal{g}, s.ledger.Goals...)
		s.notify()
		return g
	}
	for i, old := range s.ledger.Goals {
		if old.ID == g.ID {
			s.ledger.Goals[i] = g
			s.notify()
			return g
		}
	}
	s.ledger.Goals = append(s.ledger.Goals, g)
	s.notify()
	return g
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(goalID string) error {
	for i, g := range s.ledger.Goals {
		if g.ID == goalID {
			s.ledger.Goals = append(s.ledger.Goals[:i], s.ledger.Goals[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting goal %s: %w", goalID, ErrNotFound)
}

// Goals returns all goals.
func (s *Service) Goals() []model.Goal {
	return append([]model.Goal(nil), s.ledger.Goals...)
}

// SaveRecurringTransaction upserts a recurring rule. The template's
// references must resolve even though the rule never mutates balances.
func (s *Service) SaveRecurringTransaction(rt model.RecurringTransaction) (model.RecurringTransaction, error) {
	if err := s.checkRefs(rt.TransactionDetails.AccountID, rt.TransactionDetails.CategoryID, rt.TransactionDetails.Amount); err != nil {
		return model.RecurringTransaction{}, fmt.Errorf("saving recurring rule: %w", err)
	}
	if rt.ID == "" {
		rt.ID = id.New(id.Recurring)
		s.ledger.RecurringTransactions = append([]model.RecurringTransaction{rt}, s.ledger.RecurringTransactions...)
		s.notify()
		return rt, nil
	}
	for i, old := range s.ledger.RecurringTransactions {
		if old.ID == rt.ID {
			s.ledger.RecurringTransactions[i] = rt
			s.notify()
			return rt, nil
		}
	}
	s.ledger.RecurringTransactions = append(s.ledger.RecurringTransactions, rt)
	s.notify()
	return rt, nil
}

// DeleteRecurringTransaction removes a recurring rule.
func (s *Service) DeleteRecurringTransaction(rtID string) error {
	for i, rt := range s.ledger.RecurringTransactions {
		if rt.ID == rtID {
			s.ledger.RecurringTransactions = append(s.ledger.RecurringTransactions[:i], s.ledger.RecurringTransactions[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting recurring rule %s: %w", rtID, ErrNotFound)
}

// RecurringTransactions returns all recurring rules.
func (s *Service) RecurringTransactions() []model.RecurringTransaction {
	return append([]model.RecurringTransaction(nil), s.ledger.RecurringTransactions...)
}

// SaveDebt upserts a debt. New debts start active with an empty history.
func (s *Service) SaveDebt(d model.Debt) model.Debt {
	if d.ID == "" {
		d.ID = id.New(id.Debt)
		d.Status = model.DebtActive
		if d.PaymentHistory == nil {
			d.PaymentHistory = []model.DebtPayment{}
		}
	}
	for i, old := range s.ledger.Debts {
		if old.ID == d.ID {
			s.ledger.Debts[i] = d
			s.notify()
			return d
		}
	}
	s.ledger.Debts = append(s.ledger.Debts, d)
	s.notify()
	return d
}

// Debts returns all debts.
func (s *Service) Debts() []model.Debt {
	return append([]model.Debt(nil), s.ledger.Debts...)
}

// GetDebt returns a debt by ID.
func (s *Service) GetDebt(debtID string) (model.Debt, bool) {
	for _, d := range s.ledger.Debts {
		if d.ID == debtID {
			return d, true
		}
	}
	return model.Debt{}, false
}

// SaveBill upserts a bill. The bill's category must resolve so that marking
// it paid can always produce a valid transaction.
func (s *Service) SaveBill(b model.Bill) (model.Bill, error) {
	if !s.categoryExists(b.Category) {
		return model.Bill{}, fmt.Errorf("saving bill: %w", ErrCategoryNotFound)
	}
	if b.ID == "" {
		b.ID = id.New(id.Bill)
		if b.Status == "" {
			b.Status = model.BillUnpaid
		}
	}
	for i, old := range s.ledger.Bills {
		if old.ID == b.ID {
			s.ledger.Bills[i] = b
			s.notify()
			return b, nil
		}
	}
	s.ledger.Bills = append(s.ledger.Bills, b)
	s.notify()
	return b, nil
}

// Bills returns all bills.
func (s *Service) Bills() []model.Bill {
	return append([]model.Bill(nil), s.ledger.Bills...)
}

// SaveSubscription upserts a subscription.
func (s *Service) SaveSubscription(sub model.Subscription) (model.Subscription, error) {
	if !s.categoryExists(sub.Category) {
		return model.Subscription{}, fmt.Errorf("saving subscription: %w", ErrCategoryNotFound)
	}
	if sub.ID == "" {
		sub.ID = id.New(id.Subscription)
		if sub.Status == "" {
			sub.Status = model.SubscriptionActive
		}
	}
	for i, old := range s.ledger.Subscriptions {
		if old.ID == sub.ID {
			s.ledger.Subscriptions[i] = sub
			s.notify()
			return sub, nil
		}
	}
	s.ledger.Subscriptions = append(s.ledger.Subscriptions, sub)
	s.notify()
	return sub, nil
}

// DeleteSubscription removes a subscription.
func (s *Service) DeleteSubscription(subID string) error {
	for i, sub := range s.ledger.Subscriptions {
		if sub.ID == subID {
			s.ledger.Subscriptions = append(s.ledger.Subscriptions[:i], s.ledger.Subscriptions[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting subscription %s: %w", subID, ErrNotFound)
}

// Subscriptions returns all subscriptions.
func (s *Service) Subscriptions() []model.Subscription {
	return append([]model.Subscription(nil), s.ledger.Subscriptions...)
}

// SaveIncomeSource upserts an income source.
func (s *Service) SaveIncomeSource(src model.IncomeSource) model.IncomeSource {
	if src.ID == "" {
		src.ID = id.New(id.Income)
	}
	for i, old := range s.ledger.IncomeSources {
		if old.ID == src.ID {
			s.ledger.IncomeSources[i] = src
			s.notify()
			return src
		}
	}
	s.ledger.IncomeSources = append(s.ledger.IncomeSources, src)
	s.notify()
	return src
}

// DeleteIncomeSource removes an income source.
func (s *Service) DeleteIncomeSource(srcID string) error {
	for i, src := range s.ledger.IncomeSources {
		if src.ID == srcID {
			s.ledger.IncomeSources = append(s.ledger.IncomeSources[:i], s.ledger.IncomeSources[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting income source %s: %w", srcID, ErrNotFound)
}

// IncomeSources returns all income sources.
func (s *Service) IncomeSources() []model.IncomeSource {
	return append([]model.IncomeSource(nil), s.ledger.IncomeSources...)
}

// SaveShoppingList upserts a shopping list.
func (s *Service) SaveShoppingList(l model.ShoppingList) model.ShoppingList {
	if l.ID == "" {
		l.ID = id.New(id.ShoppingList)
		l.CreatedDate = s.now()
	}
	l.UpdatedDate = s.now()
	for i, old := range s.ledger.ShoppingLists {
		if old.ID == l.ID {
			s.ledger.ShoppingLists[i] = l
			s.notify()
			return l
		}
	}
	s.ledger.ShoppingLists = append(s.ledger.ShoppingLists, l)
	s.notify()
	return l
}

// DeleteShoppingList removes a shopping list.
func (s *Service) DeleteShoppingList(listID string) error {
	for i, l := range s.ledger.ShoppingLists {
		if l.ID == listID {
			s.ledger.ShoppingLists = append(s.ledger.ShoppingLists[:i], s.ledger.ShoppingLists[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting shopping list %s: %w", listID, ErrNotFound)
}

// ShoppingLists returns all shopping lists.
func (s *Service) ShoppingLists() []model.ShoppingList {
	return append([]model.ShoppingList(nil), s.ledger.ShoppingLists...)
}

// SaveProduct upserts a warranty-tracked product.
func (s *Service) SaveProduct(p model.Product) model.Product {
	if p.ID == "" {
		p.ID = id.New(id.Product)
	}
	if p.Claims == nil {
		p.Claims = []model.WarrantyClaim{}
	}
	for i, old := range s.ledger.Products {
		if old.ID == p.ID {
			s.ledger.Products[i] = p
			s.notify()
			return p
		}
	}
	s.ledger.Products = append(s.ledger.Products, p)
	s.notify()
	return p
}

// DeleteProduct removes a product.
func (s *Service) DeleteProduct(productID string) error {
	for i, p := range s.ledger.Products {
		if p.ID == productID {
			s.ledger.Products = append(s.ledger.Products[:i], s.ledger.Products[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting product %s: %w", productID, ErrNotFound)
}

// Products returns all products.
func (s *Service) Products() []model.Product {
	return append([]model.Product(nil), s.ledger.Products...)
}
