package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// The pay family exposes the composite operations: each one mutates its
// primary entity and records the linked transaction in one step.
func newPayCommand() *cobra.Command {
	payCmd := &cobra.Command{
		Use:   "pay",
		Short: "Composite payments and contributions",
	}
	payCmd.AddCommand(newPayGoalCommand())
	payCmd.AddCommand(newPayDebtCommand())
	payCmd.AddCommand(newPayBillCommand())
	payCmd.AddCommand(newPayFundCommand())
	return payCmd
}

func payFlags(cmd *cobra.Command, account, amount *string) {
	cmd.Flags().StringVar(account, "account", "", "account to draw from (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(amount, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
}

func newPayGoalCommand() *cobra.Command {
	var account, amount string

	cmd := &cobra.Command{
		Use:   "goal <goal-id>",
		Short: "Contribute to a savings goal",
		Args:  cobra.ExactArgs(1),
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
			return a.Ledger.ContributeToGoal(args[0], amt, account)
		},
	}
	payFlags(cmd, &account, &amount)
	return cmd
}

func newPayDebtCommand() *cobra.Command {
	var account, amount, date string

	cmd := &cobra.Command{
		Use:   "debt <debt-id>",
		Short: "Record a debt payment",
		Args:  cobra.ExactArgs(1),
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
			var when time.Time
			if date != "" {
				if when, err = time.Parse(dateFlagFormat, date); err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}
			if err := a.Ledger.RecordDebtPayment(args[0], amt, account, when); err != nil {
				return err
			}
			if d, ok := a.Ledger.GetDebt(args[0]); ok {
				fmt.Printf("Remaining balance: %s (%s)\n", d.CurrentBalance.StringFixed(2), d.Status)
			}
			return nil
		},
	}
	payFlags(cmd, &account, &amount)
	cmd.Flags().StringVar(&date, "date", "", "payment date (YYYY-MM-DD, default today)")
	return cmd
}

func newPayBillCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "bill <bill-id>",
		Short: "Mark a bill as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Ledger.MarkBillPaid(args[0], account)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "account to draw from (required)")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}

func newPayFundCommand() *cobra.Command {
	var account, amount string

	cmd := &cobra.Command{
		Use:   "fund",
		Short: "Contribute to the emergency fund",
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
			return a.Ledger.ContributeToEmergencyFund(amt, account)
		},
	}
	payFlags(cmd, &account, &amount)
	return cmd
}
