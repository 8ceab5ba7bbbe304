package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/metrics"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Derived financial reports",
	}
	reportCmd.AddCommand(newReportHealthCommand())
	reportCmd.AddCommand(newReportNetWorthCommand())
	reportCmd.AddCommand(newReportBudgetCommand())
	reportCmd.AddCommand(newReportPayoffCommand())
	return reportCmd
}

func newReportHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Financial health score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			r := metrics.HealthScore(a.Ledger.Snapshot(), time.Now())
			fmt.Printf("Financial health score: %d/100\n", r.Score)
			fmt.Printf("  Savings rate:    %.1f%%\n", r.SavingsRate)
			fmt.Printf("  Debt-to-income:  %.1f%%\n", r.DebtToIncome)
			fmt.Printf("  Emergency fund:  %.1f%% of goal\n", r.EmergencyFundStatus)
			return nil
		},
	}
}

func newReportNetWorthCommand() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "networth",
		Short: "Current net worth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			snap := a.Ledger.Snapshot()
			nw := metrics.NetWorth(snap)
			fmt.Printf("Assets:      %12s\n", nw.Assets.StringFixed(2))
			fmt.Printf("Liabilities: %12s\n", nw.Liabilities.StringFixed(2))
			fmt.Printf("Net worth:   %12s\n", nw.NetWorth.StringFixed(2))

			if history {
				for _, h := range snap.NetWorthHistory {
					fmt.Printf("%s  %12s\n", h.Date.Format(dateFlagFormat), h.NetWorth.StringFixed(2))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "include the daily history")
	return cmd
}

func newReportBudgetCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget consumption for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if month == "" {
				month = time.Now().Format("2006-01")
			}
			snap := a.Ledger.Snapshot()
			for _, st := range metrics.BudgetProgress(snap, month) {
				name := st.Budget.CategoryID
				for _, c := range snap.Categories {
					if c.ID == st.Budget.CategoryID {
						name = c.Name
						break
					}
				}
				marker := ""
				if st.Overspent {
					marker = "  OVERSPENT"
				}
				fmt.Printf("%-20s %10s / %10s  (%.0f%%)%s\n",
					name, st.Spent.StringFixed(2), st.Budget.Amount.StringFixed(2), st.Percent, marker)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month (YYYY-MM, default current)")
	return cmd
}

func newReportPayoffCommand() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "payoff <debt-id>",
		Short: "Debt payoff projection, minimum vs extra payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			debt, ok := a.Ledger.GetDebt(args[0])
			if !ok {
				return fmt.Errorf("debt %s not found", args[0])
			}
			extraAmt, err := decimal.NewFromString(extra)
			if err != nil {
				return fmt.Errorf("parsing extra %q: %w", extra, err)
			}

			cmp := metrics.ComparePayoff(debt, extraAmt)
			printProjection("Minimum payment", debt.MinimumPayment, cmp.Minimum)
			printProjection("With extra", debt.MinimumPayment.Add(extraAmt), cmp.Extra)
			if !cmp.Minimum.Never && !cmp.Extra.Never {
				fmt.Printf("Interest saved: %s\n", cmp.InterestSaved.StringFixed(2))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&extra, "extra", "100", "extra monthly payment to compare")
	return cmd
}

func printProjection(label string, payment decimal.Decimal, p metrics.PayoffProjection) {
	if p.Never {
		fmt.Printf("%s (%s/mo): never pays off; the payment does not cover accruing interest\n",
			label, payment.StringFixed(2))
		return
	}
	fmt.Printf("%s (%s/mo): %d months, total interest %s\n",
		label, payment.StringFixed(2), p.Months, p.TotalInterest.StringFixed(2))
}
