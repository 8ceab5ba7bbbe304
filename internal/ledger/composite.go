package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletplus-dev/walletplus/internal/model"
)

// Composite operations mutate a primary entity and create exactly one linked
// transaction. References are validated up front so a rejected operation
// leaves nothing half-applied, and the linked transaction goes through
// insertTransaction so balance bookkeeping stays in one place.

// ContributeToGoal increases a goal's current amount and records a linked
// expense against the savings category, drawn from the chosen account.
func (s *Service) ContributeToGoal(goalID string, amount decimal.Decimal, accountID string) error {
	gi := -1
	for i, g := range s.ledger.Goals {
		if g.ID == goalID {
			gi = i
			break
		}
	}
	if gi < 0 {
		return fmt.Errorf("contributing to goal %s: %w", goalID, ErrNotFound)
	}
	if err := s.checkRefs(accountID, SavingsCategoryID, amount); err != nil {
		return fmt.Errorf("contributing to goal %s: %w", goalID, err)
	}

	goal := &s.ledger.Goals[gi]
	goal.CurrentAmount = goal.CurrentAmount.Add(amount)

	if _, err := s.insertTransaction(TransactionParams{
		AccountID:   accountID,
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: "Contribution to: " + goal.Name,
		CategoryID:  SavingsCategoryID,
		Date:        s.now(),
	}); err != nil {
		// Unreachable after checkRefs; keep the invariant loud if it breaks.
		return fmt.Errorf("contributing to goal %s: %w", goalID, err)
	}

	s.log.Info().Str("goal", goalID).Str("amount", amount.String()).Msg("goal contribution recorded")
	s.notify()
	return nil
}

// RecordDebtPayment decrements a debt's balance, appends to its payment
// history, flips it to paid off at zero or below, and records a linked
// expense transaction.
func (s *Service) RecordDebtPayment(debtID string, amount decimal.Decimal, accountID string, date time.Time) error {
	di := -1
	for i, d := range s.ledger.Debts {
		if d.ID == debtID {
			di = i
			break
		}
	}
	if di < 0 {
		return fmt.Errorf("recording payment on debt %s: %w", debtID, ErrNotFound)
	}
	catID, ok := s.debtCategoryID()
	if !ok {
		return fmt.Errorf("recording payment on debt %s: %w", debtID, ErrCategoryNotFound)
	}
	if err := s.checkRefs(accountID, catID, amount); err != nil {
		return fmt.Errorf("recording payment on debt %s: %w", debtID, err)
	}
	if date.IsZero() {
		date = s.now()
	}

	debt := &s.ledger.Debts[di]
	debt.CurrentBalance = debt.CurrentBalance.Sub(amount)
	debt.PaymentHistory = append(debt.PaymentHistory, model.DebtPayment{Date: date, Amount: amount})
	if !debt.CurrentBalance.IsPositive() {
		debt.Status = model.DebtPaidOff
	}

	if _, err := s.insertTransaction(TransactionParams{
		AccountID:   accountID,
		Type:        model.TypeExpense,
		Amount:      amount,
		Description: "Debt Payment: " + debt.Name,
		CategoryID:  catID,
		Date:        date,
	}); err != nil {
		return fmt.Errorf("recording payment on debt %s: %w", debtID, err)
	}

	s.log.Info().
		Str("debt", debtID).
		Str("amount", amount.String()).
		Str("status", string(debt.Status)).
		Msg("debt payment recorded")
	s.notify()
	return nil
}

// debtCategoryID picks the expense category for debt payments: the first
// category whose name mentions debt, falling back to Shopping.
func (s *Service) debtCategoryID() (string, bool) {
	for _, c := range s.ledger.Categories {
		if strings.Contains(strings.ToLower(c.Name), "debt") {
			return c.ID, true
		}
	}
	for _, c := range s.ledger.Categories {
		if c.Name == "Shopping" {
			return c.ID, true
		}
	}
	return "", false
}

// MarkBillPaid sets a bill's status to paid and records a linked expense
// transaction against the bill's own category.
func (s *Service) MarkBillPaid(billID, accountID string) error {
	bi := -1
	for i, b := range s.ledger.Bills {
		if b.ID == billID {
			bi = i
			break
		}
	}
	if bi < 0 {
		return fmt.Errorf("paying bill %s: %w", billID, ErrNotFound)
	}
	bill := &s.ledger.Bills[bi]
	if err := s.checkRefs(accountID, bill.Category, bill.Amount); err != nil {
		return fmt.Errorf("paying bill %s: %w", billID, err)
	}

	bill.Status = model.BillPaid

	if _, err := s.insertTransaction(TransactionParams{
		AccountID:   accountID,
		Type:        model.TypeExpense,
		Amount:      bill.Amount,
		Description: "Bill Paid: " + bill.Name,
		CategoryID:  bill.Category,
		Date:        s.now(),
	}); err != nil {
		return fmt.Errorf("paying bill %s: %w", billID, err)
	}

	s.notify()
	return nil
}

// ContributeToEmergencyFund increases the fund, appends to the contribution
// log, and debits the chosen account directly. No transaction is created;
// the fund keeps its own history instead.
func (s *Service) ContributeToEmergencyFund(amount decimal.Decimal, accountID string) error {
	if !amount.IsPositive() {
		return fmt.Errorf("contributing to emergency fund: %w", ErrInvalidAmount)
	}
	if s.accountIndex(accountID) < 0 {
		return fmt.Errorf("contributing to emergency fund: %w", ErrAccountNotFound)
	}

	fund := &s.ledger.EmergencyFund
	fund.Current = fund.Current.Add(amount)
	fund.Contributions = append(fund.Contributions, model.FundContribution{Date: s.now(), Amount: amount})
	s.adjustBalance(accountID, amount.Neg())

	s.notify()
	return nil
}

// SetEmergencyFundGoal updates the fund's target.
func (s *Service) SetEmergencyFundGoal(goal decimal.Decimal) {
	s.ledger.EmergencyFund.Goal = goal
	s.notify()
}
