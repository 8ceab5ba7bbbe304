package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletplus-dev/walletplus/internal/model"
)

func TestSaveGoal_Upsert(t *testing.T) {
	svc := newTestService(t)

	created := svc.SaveGoal(model.Goal{Name: "Laptop", TargetAmount: dec("1500.00")})
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.CurrentAmount.IsZero(), "new goals start at zero")

	created.Name = "New Laptop"
	svc.SaveGoal(created)
	goals := svc.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, "New Laptop", goals[0].Name)

	// A goal carrying an unknown ID is inserted, not dropped.
	imported := svc.SaveGoal(model.Goal{ID: "goal-imported", Name: "Imported", TargetAmount: dec("100.00")})
	assert.Equal(t, "goal-imported", imported.ID)
	assert.Len(t, svc.Goals(), 2)
}

func TestSaveBudget(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.SaveBudget("cat-2", dec("400.00"), "2025-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03", first.Month)
	_, err = svc.SaveBudget("cat-2", dec("400.00"), "2025-04")
	require.NoError(t, err)
	require.Len(t, svc.Budgets(), 2)

	_, err = svc.SaveBudget("cat-missing", dec("100.00"), "2025-03")
	require.ErrorIs(t, err, ErrCategoryNotFound)

	require.NoError(t, svc.DeleteBudget(first.ID))
	require.Len(t, svc.Budgets(), 1)
}

func TestSaveRecurringTransaction_ValidatesTemplate(t *testing.T) {
	svc := newTestService(t)
	acct := addAccount(t, svc, "Checking", "100.00")

	rt, err := svc.SaveRecurringTransaction(model.RecurringTransaction{
		TransactionDetails: model.TransactionTemplate{
			AccountID:   acct.ID,
			Type:        model.TypeExpense,
			Amount:      dec("9.99"),
			Description: "Music",
			CategoryID:  "cat-7",
		},
		Frequency: model.FrequencyMonthly,
		StartDate: date(2025, 1, 1),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rt.ID)

	// The template is a rule only; saving it moves no money.
	got, _ := svc.GetAccount(acct.ID)
	assert.True(t, got.Balance.Equal(dec("100.00")))
	assert.Empty(t, svc.Transactions())

	_, err = svc.SaveRecurringTransaction(model.RecurringTransaction{
		TransactionDetails: model.TransactionTemplate{
			AccountID:  "acc-missing",
			Type:       model.TypeExpense,
			Amount:     dec("1.00"),
			CategoryID: "cat-7",
		},
		Frequency: model.FrequencyMonthly,
	})
	require.ErrorIs(t, err, ErrAccountNotFound)

	require.NoError(t, svc.DeleteRecurringTransaction(rt.ID))
	assert.Empty(t, svc.RecurringTransactions())
}

func TestSaveSubscription_ValidatesCategory(t *testing.T) {
	svc := newTestService(t)

	sub, err := svc.SaveSubscription(model.Subscription{
		Name:            "Streaming",
		Amount:          dec("12.99"),
		BillingCycle:    model.CycleMonthly,
		NextPaymentDate: date(2025, 9, 10),
		Category:        "cat-7",
		Status:          model.SubscriptionActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)

	_, err = svc.SaveSubscription(model.Subscription{Name: "Bad", Category: "cat-missing"})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	require.NoError(t, svc.DeleteSubscription(sub.ID))
	require.ErrorIs(t, svc.DeleteSubscription(sub.ID), ErrNotFound)
}

func TestIncomeSources(t *testing.T) {
	svc := newTestService(t)

	src := svc.SaveIncomeSource(model.IncomeSource{
		Name: "Salary", Type: "Salary", Amount: dec("4000.00"), IsRecurring: true,
	})
	assert.NotEmpty(t, src.ID)

	src.Amount = dec("4200.00")
	svc.SaveIncomeSource(src)
	sources := svc.IncomeSources()
	require.Len(t, sources, 1)
	assert.True(t, sources[0].Amount.Equal(dec("4200.00")))

	require.NoError(t, svc.DeleteIncomeSource(src.ID))
	assert.Empty(t, svc.IncomeSources())
}

func TestShoppingListsAndProducts(t *testing.T) {
	svc := newTestService(t)

	list := svc.SaveShoppingList(model.ShoppingList{Name: "Weekly"})
	assert.NotEmpty(t, list.ID)
	assert.False(t, list.CreatedDate.IsZero())

	prod := svc.SaveProduct(model.Product{Name: "Olive oil"})
	assert.NotEmpty(t, prod.ID)

	require.NoError(t, svc.DeleteShoppingList(list.ID))
	require.NoError(t, svc.DeleteProduct(prod.ID))
	assert.Empty(t, svc.ShoppingLists())
	assert.Empty(t, svc.Products())
}
