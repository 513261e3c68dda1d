package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/audit"
	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/logging"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

// env bundles everything a subcommand needs: config, logger, and the open
// account book.
type env struct {
	home   string
	cfg    *config.Config
	logger *zap.Logger
	book   *store.Store
}

// openEnv loads pocketbook.yaml and opens the vault. Commands other than
// init call this first.
func openEnv() (*env, error) {
	home, err := config.Home()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading config (run 'pocketbook init' first): %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	vault, err := kv.NewFile(cfg.Vault.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}

	book := store.Open(vault, logger, store.WithAudit(audit.New(home)))
	return &env{home: home, cfg: cfg, logger: logger, book: book}, nil
}

func (e *env) close() {
	_ = e.book.Close()
	_ = e.logger.Sync()
}

// cmdContext is the context used for store calls issued from the CLI. The
// store runs to completion once a write begins; there is nothing useful to
// cancel.
func cmdContext() context.Context {
	return context.Background()
}
