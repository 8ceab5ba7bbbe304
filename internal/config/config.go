package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// Config represents the top-level walletplus.yaml configuration. It holds
// host-level wiring only; financial state lives in the store.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Encryption EncryptionConfig `yaml:"encryption"`
}

// StorageConfig selects and locates the durable store.
type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite or file
	Dir     string `yaml:"dir"`
}

// EncryptionConfig controls optional at-rest encryption of the ledger blob.
// The passphrase itself is never stored; only the salt is.
type EncryptionConfig struct {
	Enabled bool   `yaml:"enabled"`
	Salt    string `yaml:"salt,omitempty"` // base64
}

// Load reads a walletplus.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(dir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			Dir:     dir,
		},
	}
}
