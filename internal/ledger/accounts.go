package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/id"
	"github.com/walletplus-dev/walletplus/internal/model"
)

// AccountParams holds the caller-supplied fields of an account.
type AccountParams struct {
	Name    string
	Balance decimal.Decimal
	Icon    string
	Type    model.AccountType
}

// CreateAccount adds an account with its opening balance.
func (s *Service) CreateAccount(p AccountParams) model.Account {
	acct := model.Account{
		ID:      id.New(id.Account),
		Name:    p.Name,
		Balance: p.Balance,
		Icon:    p.Icon,
		Type:    p.Type,
	}
	s.ledger.Accounts = append(s.ledger.Accounts, acct)
	s.log.Debug().Str("account", acct.ID).Str("name", acct.Name).Msg("account created")
	s.notify()
	return acct
}

// UpdateAccount edits an account's fields, including a direct balance set.
func (s *Service) UpdateAccount(acctID string, p AccountParams) (model.Account, error) {
	i := s.accountIndex(acctID)
	if i < 0 {
		return model.Account{}, fmt.Errorf("updating account %s: %w", acctID, ErrAccountNotFound)
	}
	s.ledger.Accounts[i].Name = p.Name
	s.ledger.Accounts[i].Balance = p.Balance
	s.ledger.Accounts[i].Icon = p.Icon
	s.ledger.Accounts[i].Type = p.Type
	s.notify()
	return s.ledger.Accounts[i], nil
}

// DeleteAccount removes an account. Transactions referencing it are left in
// place and dangle for display purposes; this is a deliberate, documented gap
// so deleting an account keeps its history visible.
func (s *Service) DeleteAccount(acctID string) error {
	i := s.accountIndex(acctID)
	if i < 0 {
		return fmt.Errorf("deleting account %s: %w", acctID, ErrAccountNotFound)
	}
	s.ledger.Accounts = append(s.ledger.Accounts[:i], s.ledger.Accounts[i+1:]...)
	s.log.Info().Str("account", acctID).Msg("account deleted; historical transactions retained")
	s.notify()
	return nil
}

// GetAccount returns an account by ID.
func (s *Service) GetAccount(acctID string) (model.Account, bool) {
	if i := s.accountIndex(acctID); i >= 0 {
		return s.ledger.Accounts[i], true
	}
	return model.Account{}, false
}

// Accounts returns all accounts in insertion order.
func (s *Service) Accounts() []model.Account {
	return append([]model.Account(nil), s.ledger.Accounts...)
}
