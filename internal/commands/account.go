package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

func newAccountCommand() *cobra.Command {
	acctCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	acctCmd.AddCommand(newAccountAddCommand())
	acctCmd.AddCommand(newAccountListCommand())
	acctCmd.AddCommand(newAccountDeleteCommand())
	return acctCmd
}

func newAccountAddCommand() *cobra.Command {
	var name, balance, icon, acctType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			bal, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("parsing balance %q: %w", balance, err)
			}
			acct := a.Ledger.CreateAccount(ledger.AccountParams{
				Name:    name,
				Balance: bal,
				Icon:    icon,
				Type:    model.AccountType(acctType),
			})
			fmt.Printf("Created account %s (%s)\n", acct.Name, acct.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&balance, "balance", "0", "opening balance")
	cmd.Flags().StringVar(&icon, "icon", "🏦", "display icon")
	cmd.Flags().StringVar(&acctType, "type", string(model.AccountTypeChecking), "account type")

	return cmd
}

func newAccountListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, acct := range a.Ledger.Accounts() {
				fmt.Printf("%-40s %-12s %12s  %s\n", acct.ID, acct.Type, acct.Balance.StringFixed(2), acct.Name)
			}
			return nil
		},
	}
}

func newAccountDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account (its transaction history is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Ledger.DeleteAccount(args[0])
		},
	}
}
