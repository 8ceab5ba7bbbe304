// Package ledger owns the canonical in-memory financial state and every
// mutation against it. All balance bookkeeping happens here and nowhere else.
package ledger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// Service is the single source of truth for all collections. It is not safe
// for concurrent use; the application has exactly one logical writer.
type Service struct {
	ledger   model.Ledger
	log      zerolog.Logger
	onChange func()
	now      func() time.Time
}

// NewService creates a Service over an existing ledger.
func NewService(ledger model.Ledger, log zerolog.Logger) *Service {
	return &Service{
		ledger: ledger,
		log:    log,
		now:    time.Now,
	}
}

// OnChange registers a callback invoked once after every successful mutation.
// The persistence synchronizer subscribes here.
func (s *Service) OnChange(fn func()) {
	s.onChange = fn
}

// SetClock overrides the service clock. Tests only.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Snapshot returns a deep copy of the ledger for read-only consumers
// (metrics, notifications, backup).
func (s *Service) Snapshot() model.Ledger {
	return s.ledger.Clone()
}

// Replace swaps the entire ledger state, e.g. after a backup restore. The
// caller is responsible for confirmation; this fires onChange like any other
// mutation.
func (s *Service) Replace(l model.Ledger) {
	s.ledger = l
	s.log.Info().Msg("ledger state replaced")
	s.notify()
}

// History returns the persisted net-worth history.
func (s *Service) History() []model.NetWorthSnapshot {
	return append([]model.NetWorthSnapshot(nil), s.ledger.NetWorthHistory...)
}

// SetHistory stores the recomputed net-worth history. It deliberately does
// not fire onChange: it is invoked from inside the change hook itself, and
// the triggering mutation's own write captures the updated history.
func (s *Service) SetHistory(history []model.NetWorthSnapshot) {
	s.ledger.NetWorthHistory = history
}

func (s *Service) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// accountIndex returns the position of an account, or -1.
func (s *Service) accountIndex(id string) int {
	for i, a := range s.ledger.Accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) categoryExists(id string) bool {
	for _, c := range s.ledger.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// checkRefs validates a transaction's cross-entity references and amount
// before any state is touched. Composite operations call this first so a
// rejection leaves no partial mutation behind.
func (s *Service) checkRefs(accountID, categoryID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if s.accountIndex(accountID) < 0 {
		return ErrAccountNotFound
	}
	if !s.categoryExists(categoryID) {
		return ErrCategoryNotFound
	}
	return nil
}

// adjustBalance applies a signed delta to an account if it still exists.
// Reversal paths tolerate accounts deleted after the fact: historical
// transactions may dangle (see account deletion).
func (s *Service) adjustBalance(accountID string, delta decimal.Decimal) {
	if i := s.accountIndex(accountID); i >= 0 {
		s.ledger.Accounts[i].Balance = s.ledger.Accounts[i].Balance.Add(delta)
	}
}
