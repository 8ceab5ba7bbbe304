package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/app"
)

func newResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Irreversibly delete all stored data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset deletes everything; re-run with --force to confirm")
			}

			dir, err := dataDir(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(dir)
			if err != nil {
				return err
			}

			// Open only the store: the reset flow must work even when the
			// ledger blob no longer parses.
			st, err := app.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Reset(); err != nil {
				return err
			}
			fmt.Println("All data deleted; the application is back to first-launch state")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "confirm irreversible deletion")
	return cmd
}
