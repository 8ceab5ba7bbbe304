package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/id"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// TransactionParams holds the caller-supplied fields of a transaction.
type TransactionParams struct {
	AccountID       string
	Type            model.TransactionType
	Amount          decimal.Decimal
	Description     string
	CategoryID      string
	Date            time.Time
	ReceiptImage    string
	IsTaxDeductible bool
}

// CreateTransaction assigns a new identity, prepends the transaction, and
// adjusts the referenced account's balance.
func (s *Service) CreateTransaction(p TransactionParams) (model.Transaction, error) {
	txn, err := s.insertTransaction(p)
	if err != nil {
		return model.Transaction{}, err
	}
	s.notify()
	return txn, nil
}

// insertTransaction is the shared core used by CreateTransaction and every
// composite operation. It validates, mutates, and does not notify.
func (s *Service) insertTransaction(p TransactionParams) (model.Transaction, error) {
	if err := s.checkRefs(p.AccountID, p.CategoryID, p.Amount); err != nil {
		return model.Transaction{}, fmt.Errorf("creating transaction: %w", err)
	}

	txn := model.Transaction{
		ID:              id.New(id.Transaction),
		AccountID:       p.AccountID,
		Type:            p.Type,
		Amount:          p.Amount,
		Description:     p.Description,
		CategoryID:      p.CategoryID,
		Date:            p.Date,
		ReceiptImage:    p.ReceiptImage,
		IsTaxDeductible: p.IsTaxDeductible,
	}
	if txn.Date.IsZero() {
		txn.Date = s.now()
	}

	// Most-recent-first; creation order stays recoverable from dates.
	s.ledger.Transactions = append([]model.Transaction{txn}, s.ledger.Transactions...)
	s.adjustBalance(txn.AccountID, txn.SignedAmount())

	s.log.Debug().
		Str("transaction", txn.ID).
		Str("account", txn.AccountID).
		Str("amount", txn.Amount.String()).
		Msg("transaction created")
	return txn, nil
}

// UpdateTransaction edits a transaction and re-balances the affected
// account(s): the original effect is reversed on the original account before
// the new effect is applied to the (possibly different) new account.
// Applying the new effect without the reversal would double-count.
func (s *Service) UpdateTransaction(txnID string, p TransactionParams) (model.Transaction, error) {
	idx := -1
	for i, t := range s.ledger.Transactions {
		if t.ID == txnID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("updating transaction %s: %w", txnID, ErrNotFound)
	}
	if err := s.checkRefs(p.AccountID, p.CategoryID, p.Amount); err != nil {
		return model.Transaction{}, fmt.Errorf("updating transaction %s: %w", txnID, err)
	}

	orig := s.ledger.Transactions[idx]
	s.adjustBalance(orig.AccountID, orig.SignedAmount().Neg())

	updated := orig
	updated.AccountID = p.AccountID
	updated.Type = p.Type
	updated.Amount = p.Amount
	updated.Description = p.Description
	updated.CategoryID = p.CategoryID
	updated.Date = p.Date
	updated.ReceiptImage = p.ReceiptImage
	updated.IsTaxDeductible = p.IsTaxDeductible
	s.ledger.Transactions[idx] = updated
	s.adjustBalance(updated.AccountID, updated.SignedAmount())

	s.notify()
	return updated, nil
}

// DeleteTransaction removes a transaction, reversing its balance effect.
// Nothing else is cascaded.
func (s *Service) DeleteTransaction(txnID string) error {
	for i, t := range s.ledger.Transactions {
		if t.ID == txnID {
			s.adjustBalance(t.AccountID, t.SignedAmount().Neg())
			s.ledger.Transactions = append(s.ledger.Transactions[:i], s.ledger.Transactions[i+1:]...)
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("deleting transaction %s: %w", txnID, ErrNotFound)
}

// ToggleReconciled flips a transaction's reconciled flag.
func (s *Service) ToggleReconciled(txnID string) error {
	for i, t := range s.ledger.Transactions {
		if t.ID == txnID {
			s.ledger.Transactions[i].IsReconciled = !t.IsReconciled
			s.notify()
			return nil
		}
	}
	return fmt.Errorf("reconciling transaction %s: %w", txnID, ErrNotFound)
}

// Transactions returns all transactions, most recent first.
func (s *Service) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.ledger.Transactions...)
}

// GetTransaction returns a transaction by ID.
func (s *Service) GetTransaction(txnID string) (model.Transaction, bool) {
	for _, t := range s.ledger.Transactions {
		if t.ID == txnID {
			return t, true
		}
	}
	return model.Transaction{}, false
}
