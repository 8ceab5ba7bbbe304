package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/model"
)

func newCategoryCommand() *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "category",
		Short: "Category operations",
	}
	catCmd.AddCommand(newCategoryAddCommand())
	catCmd.AddCommand(newCategoryListCommand())
	catCmd.AddCommand(newCategoryDeleteCommand())
	return catCmd
}

func newCategoryAddCommand() *cobra.Command {
	var name, catType, color, icon string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cat := a.Ledger.CreateCategory(ledger.CategoryParams{
				Name:  name,
				Type:  model.TransactionType(catType),
				Color: color,
				Icon:  icon,
			})
			fmt.Printf("Created category %s (%s)\n", cat.Name, cat.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&catType, "type", string(model.TypeExpense), "INCOME or EXPENSE")
	cmd.Flags().StringVar(&color, "color", "#64748b", "display color")
	cmd.Flags().StringVar(&icon, "icon", "🏷️", "display icon")

	return cmd
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, c := range a.Ledger.Categories() {
				fmt.Printf("%-12s %-8s %s %s\n", c.ID, c.Type, c.Icon, c.Name)
			}
			return nil
		},
	}
}

func newCategoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an unused category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Ledger.DeleteCategory(args[0])
		},
	}
}
