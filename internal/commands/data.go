package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/backup"
	"github.com/walletplus-dev/walletplus/internal/export"
	"github.com/walletplus-dev/walletplus/internal/logger"
	"github.com/walletplus-dev/walletplus/internal/notify"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Write a full backup document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := backup.Export(a.Ledger.Snapshot())
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Printf("Backup written to %s\n", args[0])
			return nil
		},
	}
}

func newRestoreCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all data with a backup document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("restore overwrites your current data; re-run with --force to confirm")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading backup: %w", err)
			}
			// Parse before touching anything: a bad document leaves the
			// current ledger untouched.
			l, err := backup.Import(data)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Ledger.Replace(l)
			fmt.Println("Data restored successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "confirm overwriting current data")
	return cmd
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export transactions as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := export.WriteTransactions(f, a.Ledger.Snapshot()); err != nil {
				return err
			}
			fmt.Printf("Transactions exported to %s\n", args[0])
			return nil
		},
	}
}

// consoleNotifier is the CLI stand-in for an OS notification channel.
type consoleNotifier struct{}

func (consoleNotifier) Notify(title, body string) error {
	_, err := fmt.Printf("%s: %s\n", title, body)
	return err
}

func newNotifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Scan for due bills and subscription renewals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			events, err := notify.Run(a.Store, a.Ledger.Snapshot(), time.Now(), consoleNotifier{}, logger.New())
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Println("Nothing due")
			}
			return nil
		},
	}
}
