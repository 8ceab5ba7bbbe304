// Package store defines the durable key-value boundary. It is the only place
// the rest of the application touches on-device storage.
package store

import "errors"

// Well-known keys. The ledger blob is one document; the rest are small
// side documents.
const (
	KeyLedger        = "ledger"
	KeyPreferences   = "preferences"
	KeyNotifiedBills = "notified-bills"
	KeyNotifiedSubs  = "notified-subs"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a durable key-value store.
type Store interface {
	// Get returns the value for a key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put durably writes a value, replacing any previous one.
	Put(key string, value []byte) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error
	// Reset removes every key, returning the store to first-launch state.
	Reset() error
	// Close releases underlying resources.
	Close() error
}
