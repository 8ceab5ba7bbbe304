package commands

import (
	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "walletplus",
		Short:   "Local-first personal finance tracking",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("data-dir", ".walletplus", "data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTxCommand())
	rootCmd.AddCommand(newAccountCommand())
	rootCmd.AddCommand(newCategoryCommand())
	rootCmd.AddCommand(newPayCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newBackupCommand())
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newNotifyCommand())
	rootCmd.AddCommand(newPrefsCommand())
	rootCmd.AddCommand(newResetCommand())

	return rootCmd
}
