package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the lifecycle state of a bill.
type BillStatus string

const (
	BillUnpaid  BillStatus = "unpaid"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

// Bill is a payable with an optional reminder window.
type Bill struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	IsRecurring  bool            `json:"isRecurring"`
	Category     string          `json:"category"` // category ID
	Status       BillStatus      `json:"status"`
	ReminderDays int             `json:"reminderDays,omitempty"`
}

// BillingCycle is a subscription's renewal interval.
type BillingCycle string

const (
	CycleMonthly   BillingCycle = "monthly"
	CycleQuarterly BillingCycle = "quarterly"
	CycleYearly    BillingCycle = "yearly"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is tracked for reminders only; it never writes to the ledger.
type Subscription struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Amount          decimal.Decimal    `json:"amount"`
	BillingCycle    BillingCycle       `json:"billingCycle"`
	NextPaymentDate time.Time          `json:"nextPaymentDate"`
	Category        string             `json:"category"` // category ID
	Status          SubscriptionStatus `json:"status"`
}
