// Package persist keeps the in-memory ledger durably synchronized to the
// store: load on start, save on change, one write in flight at a time.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
	"github.com/walletplus-dev/walletplus/internal/store"
)

// ErrCorrupt is returned when the durable blob exists but cannot be decoded.
// There is no partial recovery; the caller must route to the reset flow.
var ErrCorrupt = errors.New("stored ledger is corrupt")

// Synchronizer serializes the entire ledger as one document and writes it on
// every observed mutation. Writes never interleave: a mutation arriving while
// a write is in flight marks it pending, and exactly one fresh write follows
// completion. Each MarkDirty captures a snapshot on the mutating goroutine,
// and the writer only ever sees the latest capture, so last write wins and
// the ledger service is never read from the write goroutine.
type Synchronizer struct {
	store  store.Store
	cipher Cipher
	log    zerolog.Logger
	source func() model.Ledger

	mu        sync.Mutex
	latest    model.Ledger
	saving    bool
	pending   bool
	resetting bool
	wg        sync.WaitGroup
}

// NewSynchronizer wraps a store with an at-rest cipher.
func NewSynchronizer(st store.Store, c Cipher, log zerolog.Logger) *Synchronizer {
	if c == nil {
		c = NopCipher{}
	}
	return &Synchronizer{store: st, cipher: c, log: log}
}

// Attach registers the snapshot source, normally the ledger service's
// Snapshot method. The source is only ever invoked inside MarkDirty, on the
// goroutine that performed the mutation; the ledger service needs no locking
// of its own.
func (s *Synchronizer) Attach(source func() model.Ledger) {
	s.source = source
}

// Load reads the durable blob. A missing blob means first launch: an empty
// ledger with default categories is returned. An undecodable blob is
// corruption and yields ErrCorrupt.
func (s *Synchronizer) Load() (model.Ledger, error) {
	data, err := s.store.Get(store.KeyLedger)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Info().Msg("no stored ledger; starting fresh")
		return ledger.NewLedger(), nil
	}
	if err != nil {
		return model.Ledger{}, fmt.Errorf("loading ledger: %w", err)
	}

	plain, err := s.cipher.Decrypt(data)
	if err != nil {
		s.log.Error().Err(err).Msg("stored ledger failed to decrypt")
		return model.Ledger{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var l model.Ledger
	if err := json.Unmarshal(plain, &l); err != nil {
		s.log.Error().Err(err).Msg("stored ledger failed to parse")
		return model.Ledger{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// The protected savings category must always exist.
	if len(l.Categories) == 0 {
		l.Categories = ledger.DefaultCategories()
	}
	return l, nil
}

// MarkDirty captures the current ledger state and schedules a durable write
// of it. Called from the ledger's onChange hook on every mutation, so the
// snapshot is taken on the mutating goroutine before the next mutation can
// run; overlapping calls coalesce into at most one outstanding write plus
// one follow-up carrying the newest capture.
func (s *Synchronizer) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resetting || s.source == nil {
		return
	}
	s.latest = s.source()
	if s.saving {
		s.pending = true
		return
	}
	s.saving = true
	s.wg.Add(1)
	go s.writeLoop()
}

func (s *Synchronizer) writeLoop() {
	defer s.wg.Done()
	for {
		s.mu.Lock()
		l := s.latest
		s.mu.Unlock()

		if err := s.save(l); err != nil {
			// In-memory state stays the source of truth; the next change
			// retries.
			s.log.Error().Err(err).Msg("ledger write failed")
		}

		s.mu.Lock()
		if s.pending && !s.resetting {
			s.pending = false
			s.mu.Unlock()
			continue
		}
		s.saving = false
		s.mu.Unlock()
		return
	}
}

func (s *Synchronizer) save(l model.Ledger) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("serializing ledger: %w", err)
	}
	sealed, err := s.cipher.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encrypting ledger: %w", err)
	}
	if err := s.store.Put(store.KeyLedger, sealed); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

// Flush blocks until no write is outstanding.
func (s *Synchronizer) Flush() {
	s.wg.Wait()
}

// Reset is irreversible: it aborts pending work, clears all durable state,
// and leaves the synchronizer terminal so later mutations cannot resurrect
// anything. Confirmation is the caller's responsibility.
func (s *Synchronizer) Reset() error {
	s.mu.Lock()
	s.resetting = true
	s.pending = false
	s.mu.Unlock()

	s.wg.Wait()

	if err := s.store.Reset(); err != nil {
		return fmt.Errorf("resetting store: %w", err)
	}
	s.log.Info().Msg("durable state cleared")
	return nil
}
