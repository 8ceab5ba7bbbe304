package ledger

import (
	"fmt"

	"github.com/walletplus-dev/walletplus/internal/id"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// CategoryParams holds the caller-supplied fields of a category.
type CategoryParams struct {
	Name  string
	Type  model.TransactionType
	Color string
	Icon  string
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(p CategoryParams) model.Category {
	cat := model.Category{
		ID:    id.New(id.Category),
		Name:  p.Name,
		Type:  p.Type,
		Color: p.Color,
		Icon:  p.Icon,
	}
	s.ledger.Categories = append(s.ledger.Categories, cat)
	s.notify()
	return cat
}

// UpdateCategory edits a category's fields.
func (s *Service) UpdateCategory(catID string, p CategoryParams) (model.Category, error) {
	for i, c := range s.ledger.Categories {
		if c.ID == catID {
			s.ledger.Categories[i].Name = p.Name
			s.ledger.Categories[i].Type = p.Type
			s.ledger.Categories[i].Color = p.Color
			s.ledger.Categories[i].Icon = p.Icon
			s.notify()
			return s.ledger.Categories[i], nil
		}
	}
	return model.Category{}, fmt.Errorf("updating category %s: %w", catID, ErrCategoryNotFound)
}

// DeleteCategory removes a category. The savings singleton is never
// deletable, and a category still referenced by any transaction, budget,
// subscription, bill, or recurring rule is rejected as in use.
func (s *Service) DeleteCategory(catID string) error {
	if catID == SavingsCategoryID {
		return fmt.Errorf("deleting category %s: %w", catID, ErrProtectedCategory)
	}
	if !s.categoryExists(catID) {
		return fmt.Errorf("deleting category %s: %w", catID, ErrCategoryNotFound)
	}
	if s.categoryInUse(catID) {
		return fmt.Errorf("deleting category %s: %w", catID, ErrCategoryInUse)
	}
	for i, c := range s.ledger.Categories {
		if c.ID == catID {
			s.ledger.Categories = append(s.ledger.Categories[:i], s.ledger.Categories[i+1:]...)
			break
		}
	}
	s.notify()
	return nil
}

func (s *Service) categoryInUse(catID string) bool {
	for _, t := range s.ledger.Transactions {
		if t.CategoryID == catID {
			return true
		}
	}
	for _, b := range s.ledger.Budgets {
		if b.CategoryID == catID {
			return true
		}
	}
	for _, sub := range s.ledger.Subscriptions {
		if sub.Category == catID {
			return true
		}
	}
	for _, b := range s.ledger.Bills {
		if b.Category == catID {
			return true
		}
	}
	for _, rt := range s.ledger.RecurringTransactions {
		if rt.TransactionDetails.CategoryID == catID {
			return true
		}
	}
	return false
}

// Categories returns all categories in insertion order.
func (s *Service) Categories() []model.Category {
	return append([]model.Category(nil), s.ledger.Categories...)
}

// GetCategory returns a category by ID.
func (s *Service) GetCategory(catID string) (model.Category, bool) {
	for _, c := range s.ledger.Categories {
		if c.ID == catID {
			return c, true
		}
	}
	return model.Category{}, false
}
