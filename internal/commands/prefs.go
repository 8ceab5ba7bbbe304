package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/app"
	"github.com/walletplus-dev/walletplus/internal/settings"
	"github.com/walletplus-dev/walletplus/internal/store"
)

func newPrefsCommand() *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Display preferences",
	}
	prefsCmd.AddCommand(newPrefsShowCommand())
	prefsCmd.AddCommand(newPrefsSetCommand())
	return prefsCmd
}

// Preferences live under their own store key, so they are readable even when
// the ledger blob is encrypted or corrupt.
func openPrefsStore(cmd *cobra.Command) (store.Store, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, err
	}
	return app.OpenStore(cfg)
}

func newPrefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openPrefsStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := settings.Load(st)
			if err != nil {
				return err
			}
			fmt.Printf("Theme:    %s\n", p.Theme)
			if p.Currency == "" {
				fmt.Println("Currency: (not set)")
			} else {
				fmt.Printf("Currency: %s\n", p.Currency)
			}
			return nil
		},
	}
}

func newPrefsSetCommand() *cobra.Command {
	var theme, currency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openPrefsStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			p, err := settings.Load(st)
			if err != nil {
				return err
			}
			if theme != "" {
				p.Theme = theme
			}
			if currency != "" {
				p.Currency = currency
			}
			if err := settings.Save(st, p); err != nil {
				return err
			}
			fmt.Println("Preferences saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "display theme")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO currency code")

	return cmd
}
