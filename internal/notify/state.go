package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/walletplus-dev/walletplus/internal/store"
)

// State maps entity IDs to the ISO date they last fired. It is small
// persisted state, kept separate from the ledger document.
type State struct {
	Bills map[string]string
	Subs  map[string]string
}

// NewState returns an empty de-duplication state.
func NewState() State {
	return State{Bills: map[string]string{}, Subs: map[string]string{}}
}

// Mark records that an event fired today.
func (s State) Mark(ev Event, now time.Time) {
	day := now.Format(dayFormat)
	switch ev.Kind {
	case KindBill:
		s.Bills[ev.EntityID] = day
	case KindSubscription:
		s.Subs[ev.EntityID] = day
	}
}

// LoadState reads both de-duplication maps. Missing or unreadable maps start
// empty rather than failing a scan.
func LoadState(st store.Store) (State, error) {
	state := NewState()
	if err := loadMap(st, store.KeyNotifiedBills, &state.Bills); err != nil {
		return State{}, err
	}
	if err := loadMap(st, store.KeyNotifiedSubs, &state.Subs); err != nil {
		return State{}, err
	}
	return state, nil
}

func loadMap(st store.Store, key string, into *map[string]string) error {
	data, err := st.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		// Dedup state is disposable; a corrupt map just resets.
		*into = map[string]string{}
	}
	return nil
}

// SaveState writes both maps back.
func SaveState(st store.Store, state State) error {
	if err := saveMap(st, store.KeyNotifiedBills, state.Bills); err != nil {
		return err
	}
	return saveMap(st, store.KeyNotifiedSubs, state.Subs)
}

func saveMap(st store.Store, key string, m map[string]string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}
	if err := st.Put(key, data); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
