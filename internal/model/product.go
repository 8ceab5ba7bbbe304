package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warranty is the coverage attached to a product.
type Warranty struct {
	Type      string    `json:"type"` // Manufacturer, Extended, Protection Plan, Accidental Damage
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Provider  string    `json:"provider"`
	Document  string    `json:"document,omitempty"`
}

// ClaimStatus is the state of a warranty claim.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "Pending"
	ClaimApproved ClaimStatus = "Approved"
	ClaimRejected ClaimStatus = "Rejected"
)

// WarrantyClaim records one claim against a product's warranty.
type WarrantyClaim struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Description string      `json:"description"`
	Status      ClaimStatus `json:"status"`
}

// Product is a purchased item tracked for warranty purposes.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand,omitempty"`
	Model         string          `json:"model,omitempty"`
	SerialNumber  string          `json:"serialNumber,omitempty"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Warranty      Warranty        `json:"warranty"`
	Claims        []WarrantyClaim `json:"claims"`
}
