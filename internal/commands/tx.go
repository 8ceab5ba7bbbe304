package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

const dateFlagFormat = "2006-01-02"

func newTxCommand() *cobra.Command {
	txCmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	txCmd.AddCommand(newTxAddCommand())
	txCmd.AddCommand(newTxListCommand())
	txCmd.AddCommand(newTxDeleteCommand())
	return txCmd
}

func newTxAddCommand() *cobra.Command {
	var account, category, amount, txType, description, date string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			params := ledger.TransactionParams{
				AccountID:   account,
				CategoryID:  category,
				Amount:      amt,
				Type:        model.TransactionType(txType),
				Description: description,
			}
			if date != "" {
				d, err := time.Parse(dateFlagFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
				params.Date = d
			}

			txn, err := a.Ledger.CreateTransaction(params)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s %s (%s)\n", txn.Type, txn.Amount.StringFixed(2), txn.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account ID (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&category, "category", "", "category ID (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&txType, "type", string(model.TypeExpense), "INCOME or EXPENSE")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, default today)")

	return cmd
}

func newTxListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, t := range a.Ledger.Transactions() {
				cat := "N/A"
				if c, ok := a.Ledger.GetCategory(t.CategoryID); ok {
					cat = c.Name
				}
				fmt.Printf("%s  %-8s %10s  %-20s %s\n",
					t.Date.Format(dateFlagFormat), t.Type, t.Amount.StringFixed(2), cat, t.Description)
			}
			return nil
		},
	}
}

func newTxDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction, reversing its balance effect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Ledger.DeleteTransaction(args[0])
		},
	}
}
