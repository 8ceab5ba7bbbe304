package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListStatus is the lifecycle state of a shopping list.
type ListStatus string

const (
	ListActive    ListStatus = "active"
	ListCompleted ListStatus = "completed"
	ListArchived  ListStatus = "archived"
)

// ShoppingItem is one line on a shopping list.
type ShoppingItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	PricePerUnit   decimal.Decimal `json:"pricePerUnit"`
	PurchasedPrice decimal.Decimal `json:"purchasedPrice,omitempty"`
	Category       string          `json:"category"`
	Notes          string          `json:"notes"`
	IsPurchased    bool            `json:"isPurchased"`
}

// ShoppingList groups items for one shopping trip.
type ShoppingList struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Store          string          `json:"store"`
	Category       string          `json:"category"`
	BudgetLimit    decimal.Decimal `json:"budgetLimit,omitempty"`
	ReminderDate   *time.Time      `json:"reminderDate,omitempty"`
	Items          []ShoppingItem  `json:"items"`
	Status         ListStatus      `json:"status"`
	CreatedDate    time.Time       `json:"createdDate"`
	UpdatedDate    time.Time       `json:"updatedDate"`
	CompletionDate *time.Time      `json:"completionDate,omitempty"`
	IsPaid         bool            `json:"isPaid"`
}
