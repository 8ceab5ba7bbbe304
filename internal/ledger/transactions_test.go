package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletplus-dev/walletplus/internal/logger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLedger(), logger.Nop())
}

func addAccount(t *testing.T, svc *Service, name, balance string) model.Account {
	t.Helper()
	return svc.CreateAccount(AccountParams{
		Name:    name,
		Balance: dec(balance),
		Type:    model.AccountTypeChecking,
	})
}

func TestCreateTransaction_AdjustsBalance(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "500.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID:   acct.ID,
		Type:        model.TypeExpense,
		Amount:      dec("120.00"),
		Description: "Groceries",
		CategoryID:  "cat-2",
		Date:        date(2025, 3, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, acct.ID, txn.AccountID)

	got, ok := svc.GetAccount(acct.ID)
	require.True(t, ok)
	assert.True(t, got.Balance.Equal(dec("380.00")), "expense must subtract: %s", got.Balance)

	_, err = svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeIncome,
		Amount:     dec("1000.00"),
		CategoryID: "cat-1",
		Date:       date(2025, 3, 11),
	})
	require.NoError(t, err)

	got, _ = svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("1380.00")), "income must add: %s", got.Balance)
}

func TestCreateTransaction_UnknownReferences(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "100.00")

	_, err := svc.CreateTransaction(TransactionParams{
		AccountID:  "acc-missing",
		Type:       model.TypeExpense,
		Amount:     dec("10.00"),
		CategoryID: "cat-2",
	})
	require.ErrorIs(t, err, ErrAccountNotFound)

	_, err = svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("10.00"),
		CategoryID: "cat-missing",
	})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	// No partial state: balance untouched, nothing recorded.
	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("100.00")))
	assert.Empty(t, svc.Transactions())
}

func TestCreateTransaction_RejectsNonPositiveAmount(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "100.00")

	_, err := svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("-5.00"),
		CategoryID: "cat-2",
	})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdateTransaction_ReversesBeforeApplying(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "500.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("100.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	// Changing only the amount must not double-count the original effect.
	_, err = svc.UpdateTransaction(txn.ID, TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("150.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("350.00")), "balance is %s, want 350.00", got.Balance)
}

func TestUpdateTransaction_MovesBetweenAccounts(t *testing.T) {
	svc := newTestService(t)
	first := addAccount(t, svc, "Checking", "500.00")
	second := addAccount(t, svc, "Savings", "200.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID:  first.ID,
		Type:       model.TypeExpense,
		Amount:     dec("100.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(txn.ID, TransactionParams{
		AccountID:  second.ID,
		Type:       model.TypeExpense,
		Amount:     dec("100.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	a, _ := svc.GetAccount(first.ID)
	b, _ := svc.GetAccount(second.ID)
	assert.True(t, a.Balance.Equal(dec("500.00")), "old account restored: %s", a.Balance)
	assert.True(t, b.Balance.Equal(dec("100.00")), "new account debited: %s", b.Balance)
}

func TestUpdateTransaction_FlipsType(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "0.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeIncome,
		Amount:     dec("50.00"),
		CategoryID: "cat-1",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	_, err = svc.UpdateTransaction(txn.ID, TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("50.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("-50.00")), "balance is %s, want -50.00", got.Balance)
}

func TestDeleteTransaction_ReversesEffect(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "500.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID:  acct.ID,
		Type:       model.TypeExpense,
		Amount:     dec("75.00"),
		CategoryID: "cat-2",
		Date:       date(2025, 3, 10),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTransaction(txn.ID))

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("500.00")))
	assert.Empty(t, svc.Transactions())
}

func TestBalanceConservation_MixedSequence(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "1000.00")

	t1, err := svc.CreateTransaction(TransactionParams{
		AccountID: acct.ID, Type: model.TypeExpense, Amount: dec("200.00"),
		CategoryID: "cat-2", Date: date(2025, 1, 5),
	})
	require.NoError(t, err)
	_, err = svc.CreateTransaction(TransactionParams{
		AccountID: acct.ID, Type: model.TypeIncome, Amount: dec("3000.00"),
		CategoryID: "cat-1", Date: date(2025, 1, 6),
	})
	require.NoError(t, err)
	_, err = svc.UpdateTransaction(t1.ID, TransactionParams{
		AccountID: acct.ID, Type: model.TypeExpense, Amount: dec("250.00"),
		CategoryID: "cat-2", Date: date(2025, 1, 5),
	})
	require.NoError(t, err)

	// 1000 - 250 + 3000 must equal the running balance after every step.
	got, _ := svc.GetAccount(acct.ID)
	want := dec("1000.00")
	for _, txn := range svc.Transactions() {
		want = want.Add(txn.SignedAmount())
	}
	assert.True(t, got.Balance.Equal(want), "balance %s != sum of effects %s", got.Balance, want)
}

func TestDeleteAccount_LeavesTransactionHistory(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "500.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID: acct.ID, Type: model.TypeExpense, Amount: dec("10.00"),
		CategoryID: "cat-2", Date: date(2025, 3, 10),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(acct.ID))

	// The transaction dangles by design; deleting it later is a no-op on
	// any remaining account.
	txns := svc.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, acct.ID, txns[0].AccountID)
	require.NoError(t, svc.DeleteTransaction(txn.ID))
}

func TestToggleReconciled(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "100.00")

	txn, err := svc.CreateTransaction(TransactionParams{
		AccountID: acct.ID, Type: model.TypeExpense, Amount: dec("10.00"),
		CategoryID: "cat-2", Date: date(2025, 3, 10),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ToggleReconciled(txn.ID))
	got, ok := svc.GetTransaction(txn.ID)
	require.True(t, ok)
	assert.True(t, got.IsReconciled)

	require.NoError(t, svc.ToggleReconciled(txn.ID))
	got, _ = svc.GetTransaction(txn.ID)
	assert.False(t, got.IsReconciled)
}

func TestOnChange_FiresOncePerMutation(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "100.00")

	var calls int
	svc.OnChange(func() { calls++ })

	_, err := svc.CreateTransaction(TransactionParams{
		AccountID: acct.ID, Type: model.TypeExpense, Amount: dec("10.00"),
		CategoryID: "cat-2", Date: date(2025, 3, 10),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// A rejected mutation must not fire.
	_, err = svc.CreateTransaction(TransactionParams{
		AccountID: "acc-missing", Type: model.TypeExpense, Amount: dec("10.00"),
		CategoryID: "cat-2",
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
