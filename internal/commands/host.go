package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/walletplus-dev/walletplus/internal/app"
	"github.com/walletplus-dev/walletplus/internal/config"
	"github.com/walletplus-dev/walletplus/internal/logger"
	"github.com/walletplus-dev/walletplus/internal/persist"
)

// configFile is the config name inside the data directory.
const configFile = "walletplus.yaml"

// passphraseEnv supplies the encryption passphrase without putting it on the
// command line.
const passphraseEnv = "WALLETPLUS_PASSPHRASE"

func dataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return "", err
	}
	return filepath.Abs(dir)
}

func loadConfig(dir string) (*config.Config, error) {
	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Default(dir), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = dir
	}
	return cfg, nil
}

// openApp assembles the core for a command. A corrupt ledger is not locally
// recoverable, so it is translated into instructions to run the reset flow.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(dir)
	if err != nil {
		return nil, err
	}

	a, err := app.Open(cfg, os.Getenv(passphraseEnv), logger.New())
	if errors.Is(err, persist.ErrCorrupt) {
		return nil, fmt.Errorf("your data could not be loaded and may be corrupted; run 'walletplus reset --force' to start over: %w", err)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
