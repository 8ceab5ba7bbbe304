// Package settings stores the small theme/currency preference document,
// kept under its own store key outside the main ledger blob.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/walletplus-dev/walletplus/internal/store"
)

// Preferences is user presentation state. It carries no financial data.
type Preferences struct {
	Theme    string `json:"theme"`
	Currency string `json:"currency"` // ISO code, empty until onboarding picks one
}

// Default returns the first-launch preferences.
func Default() Preferences {
	return Preferences{Theme: "darkElegance"}
}

// Load reads preferences, defaulting when never saved.
func Load(st store.Store) (Preferences, error) {
	data, err := st.Get(store.KeyPreferences)
	if errors.Is(err, store.ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("loading preferences: %w", err)
	}
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences.
func Save(st store.Store, p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializing preferences: %w", err)
	}
	if err := st.Put(store.KeyPreferences, data); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}
