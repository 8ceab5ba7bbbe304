package id

import (
	"strings"

	"github.com/google/uuid"
)

// Collection prefixes. An entity ID is "<prefix>-<uuid>", opaque beyond the
// prefix, unique within its collection.
const (
	Transaction  = "trn"
	Account      = "acc"
	Category     = "cat"
	Budget       = "bud"
	Recurring    = "rec"
	Goal         = "goal"
	Debt         = "debt"
	Bill         = "bill"
	Subscription = "sub"
	Income       = "inc"
	ShoppingList = "list"
	ShoppingItem = "item"
	Product      = "prod"
	Claim        = "clm"
)

// New returns a fresh ID for a collection, e.g. "trn-7f9c…".
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Prefix returns the collection prefix of an ID, or "" if it has none.
func Prefix(id string) string {
	i := strings.IndexByte(id, '-')
	if i <= 0 {
		return ""
	}
	return id[:i]
}
