// Package app assembles the core: store, cipher, synchronizer, ledger
// service, and the derived-metrics refresh. Every dependency is constructed
// once here and injected; nothing is reached as an ambient global.
package app

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/walletplus-dev/walletplus/internal/config"
	"github.com/walletplus-dev/walletplus/internal/ledger"
	"github.com/walletplus-dev/walletplus/internal/metrics"
	"github.com/walletplus-dev/walletplus/internal/persist"
	"github.com/walletplus-dev/walletplus/internal/store"
	"github.com/walletplus-dev/walletplus/internal/store/filestore"
	"github.com/walletplus-dev/walletplus/internal/store/sqlitestore"
)

// DatabaseFile is the SQLite file name inside the data directory.
const DatabaseFile = "walletplus.db"

// App is the assembled core.
type App struct {
	Config *config.Config
	Store  store.Store
	Ledger *ledger.Service
	Sync   *persist.Synchronizer
	Log    zerolog.Logger
}

// Open builds the store per config, loads the ledger, and wires the change
// pipeline: mutation -> net-worth refresh -> durable write. A corrupt blob
// surfaces as persist.ErrCorrupt; the only valid response is the reset flow.
func Open(cfg *config.Config, passphrase string, log zerolog.Logger) (*App, error) {
	st, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	cipher, err := buildCipher(cfg, passphrase)
	if err != nil {
		st.Close()
		return nil, err
	}

	sync := persist.NewSynchronizer(st, cipher, log)
	l, err := sync.Load()
	if err != nil {
		st.Close()
		return nil, err
	}

	svc := ledger.NewService(l, log)
	a := &App{Config: cfg, Store: st, Ledger: svc, Sync: sync, Log: log}

	sync.Attach(svc.Snapshot)
	svc.OnChange(a.onLedgerChange)
	return a, nil
}

// OpenStore builds just the durable store, without loading the ledger. The
// reset flow uses it to clear state that may not even parse.
func OpenStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return filestore.Open(cfg.Storage.Dir)
	case config.BackendSQLite, "":
		return sqlitestore.Open(filepath.Join(cfg.Storage.Dir, DatabaseFile))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildCipher(cfg *config.Config, passphrase string) (persist.Cipher, error) {
	if !cfg.Encryption.Enabled {
		return persist.NopCipher{}, nil
	}
	if passphrase == "" {
		return nil, fmt.Errorf("encryption is enabled but no passphrase was provided")
	}
	salt, err := base64.StdEncoding.DecodeString(cfg.Encryption.Salt)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption salt: %w", err)
	}
	return persist.NewAESCipher(passphrase, salt)
}

// onLedgerChange runs after every successful mutation: refresh the daily
// net-worth snapshot from current state, then schedule one durable write
// that captures both the mutation and the refreshed history.
func (a *App) onLedgerChange() {
	snap := a.Ledger.Snapshot()
	nw := metrics.NetWorth(snap)
	a.Ledger.SetHistory(metrics.RecordSnapshot(snap.NetWorthHistory, nw, time.Now()))
	a.Sync.MarkDirty()
}

// Close settles outstanding writes and releases the store.
func (a *App) Close() error {
	a.Sync.Flush()
	return a.Store.Close()
}
