package ledger

import "errors"

// Reference errors: a mutation named an entity that does not exist. The
// mutation is rejected with no partial state change.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Integrity violations: the mutation would break a bookkeeping rule. Each
// reason is distinct so callers can surface it verbatim.
var (
	ErrProtectedCategory = errors.New("the savings category is essential and cannot be deleted")
	ErrCategoryInUse     = errors.New("category is in use by transactions, budgets, or bills")
)

// ErrInvalidAmount rejects non-positive currency magnitudes.
var ErrInvalidAmount = errors.New("amount must be greater than zero")
