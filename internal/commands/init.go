package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/audit"
	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/logging"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

func newInitCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the pocketbook home and seed the sample book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(currency)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "INR", "default currency for new records")

	return cmd
}

func runInit(currency string) error {
	home, err := config.Home()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return fmt.Errorf("creating home dir: %w", err)
	}

	cfgPath := filepath.Join(home, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", cfgPath)
	}

	cfg := config.Default(home)
	cfg.Defaults.Currency = currency
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	vault, err := kv.NewFile(cfg.Vault.Dir)
	if err != nil {
		return fmt.Errorf("opening vault: %w", err)
	}

	book := store.Open(vault, logger, store.WithAudit(audit.New(home)))
	defer book.Close()

	ctx := cmdContext()
	if err := book.Initialize(ctx); err != nil {
		return fmt.Errorf("seeding vault: %w", err)
	}

	accounts, err := book.AllAccounts(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized pocketbook at %s (%d sample accounts)\n", home, len(accounts))
	return nil
}
