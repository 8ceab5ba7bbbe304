package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletplus-dev/walletplus/internal/model"
)

func TestContributeToGoal(t *testing.T) {
	svc := newTestService(t)
	svc.SetClock(func() time.Time { return date(2025, 4, 1) })
	acct := addAccount(t, svc, "Checking", "500.00")

	goal := svc.SaveGoal(model.Goal{
		Name:         "Vacation",
		TargetAmount: dec("1000.00"),
	})
	// Seed an existing balance through the upsert path.
	goal.CurrentAmount = dec("200.00")
	svc.SaveGoal(goal)

	require.NoError(t, svc.ContributeToGoal(goal.ID, dec("300.00"), acct.ID))

	goals := svc.Goals()
	require.Len(t, goals, 1)
	assert.True(t, goals[0].CurrentAmount.Equal(dec("500.00")))

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("200.00")))

	txns := svc.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
	assert.Equal(t, SavingsCategoryID, txns[0].CategoryID)
	assert.Equal(t, "Contribution to: Vacation", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(dec("300.00")))
}

func TestContributeToGoal_RejectedLeavesNoPartialState(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "500.00")
	goal := svc.SaveGoal(model.Goal{Name: "Vacation", TargetAmount: dec("1000.00")})

	err := svc.ContributeToGoal("goal-missing", dec("50.00"), acct.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.ContributeToGoal(goal.ID, dec("50.00"), "acc-missing")
	require.ErrorIs(t, err, ErrAccountNotFound)

	err = svc.ContributeToGoal(goal.ID, dec("0"), acct.ID)
	require.ErrorIs(t, err, ErrInvalidAmount)

	goals := svc.Goals()
	assert.True(t, goals[0].CurrentAmount.IsZero())
	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("500.00")))
	assert.Empty(t, svc.Transactions())
}

func TestRecordDebtPayment(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "1000.00")

	debt := svc.SaveDebt(model.Debt{
		Name:           "Car Loan",
		OriginalAmount: dec("5000.00"),
		CurrentBalance: dec("300.00"),
		InterestRate:   dec("6.5"),
		MinimumPayment: dec("150.00"),
		Status:         model.DebtActive,
	})

	when := date(2025, 5, 2)
	require.NoError(t, svc.RecordDebtPayment(debt.ID, dec("150.00"), acct.ID, when))

	got, ok := svc.GetDebt(debt.ID)
	require.True(t, ok)
	assert.True(t, got.CurrentBalance.Equal(dec("150.00")))
	assert.Equal(t, model.DebtActive, got.Status)
	require.Len(t, got.PaymentHistory, 1)
	assert.True(t, got.PaymentHistory[0].Amount.Equal(dec("150.00")))
	assert.True(t, got.PaymentHistory[0].Date.Equal(when))

	// Second payment clears the balance and flips status.
	require.NoError(t, svc.RecordDebtPayment(debt.ID, dec("150.00"), acct.ID, when.AddDate(0, 1, 0)))
	got, _ = svc.GetDebt(debt.ID)
	assert.True(t, got.CurrentBalance.IsZero())
	assert.Equal(t, model.DebtPaidOff, got.Status)

	acctNow, _ := svc.GetAccount(acct.ID)
	assert.True(t, acctNow.Balance.Equal(dec("700.00")))
	assert.Len(t, svc.Transactions(), 2)
}

func TestRecordDebtPayment_CategoryFallback(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "1000.00")
	debt := svc.SaveDebt(model.Debt{
		Name: "Loan", CurrentBalance: dec("100.00"), Status: model.DebtActive,
	})

	// Default categories have no "debt" name, so the Shopping category is
	// used for the linked transaction.
	require.NoError(t, svc.RecordDebtPayment(debt.ID, dec("10.00"), acct.ID, date(2025, 6, 1)))
	txns := svc.Transactions()
	require.Len(t, txns, 1)
	cat, ok := svc.GetCategory(txns[0].CategoryID)
	require.True(t, ok)
	assert.Equal(t, "Shopping", cat.Name)

	// A category named for debt takes precedence once present.
	debtCat := svc.CreateCategory(CategoryParams{Name: "Debt Payments", Type: model.TypeExpense})
	require.NoError(t, svc.RecordDebtPayment(debt.ID, dec("10.00"), acct.ID, date(2025, 6, 2)))
	txns = svc.Transactions()
	assert.Equal(t, debtCat.ID, txns[0].CategoryID)
}

func TestMarkBillPaid(t *testing.T) {
	svc := newTestService(t)
	svc.SetClock(func() time.Time { return date(2025, 7, 1) })
	acct := addAccount(t, svc, "Checking", "400.00")

	bill, err := svc.SaveBill(model.Bill{
		Name:     "Electricity",
		Amount:   dec("90.00"),
		DueDate:  date(2025, 7, 5),
		Category: "cat-4",
		Status:   model.BillUnpaid,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkBillPaid(bill.ID, acct.ID))

	bills := svc.Bills()
	require.Len(t, bills, 1)
	assert.Equal(t, model.BillPaid, bills[0].Status)

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("310.00")))

	txns := svc.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, "cat-4", txns[0].CategoryID)
	assert.Equal(t, "Bill Paid: Electricity", txns[0].Description)
}

func TestContributeToEmergencyFund(t *testing.T) {
	svc := newTestService(t)
	svc.SetClock(func() time.Time { return date(2025, 8, 1) })
	acct := addAccount(t, svc, "Savings", "2000.00")

	svc.SetEmergencyFundGoal(dec("10000.00"))
	require.NoError(t, svc.ContributeToEmergencyFund(dec("500.00"), acct.ID))

	snap := svc.Snapshot()
	assert.True(t, snap.EmergencyFund.Current.Equal(dec("500.00")))
	assert.True(t, snap.EmergencyFund.Goal.Equal(dec("10000.00")))
	require.Len(t, snap.EmergencyFund.Contributions, 1)
	assert.True(t, snap.EmergencyFund.Contributions[0].Amount.Equal(dec("500.00")))

	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("1500.00")))

	// Fund contributions keep their own history instead of a transaction.
	assert.Empty(t, svc.Transactions())

	err := svc.ContributeToEmergencyFund(dec("100.00"), "acc-missing")
	require.ErrorIs(t, err, ErrAccountNotFound)
}
