package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/apperrors"
	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// seedNextID is the initial value of the reserved next-id counter key. It is
// written once at seed time and never read back; identifiers come from the
// id package. Kept for storage-format compatibility.
const seedNextID = "1000"

// ensureInitialized guarantees the collections exist. Caller holds s.mu.
func (s *Store) ensureInitialized(ctx context.Context) error {
	if s.initialized {
		return nil
	}

	stored, err := s.vault.Get(ctx, keySchemaVersion)
	switch {
	case kv.IsNotFound(err):
		if err := s.seed(ctx); err != nil {
			return err
		}
	case err != nil:
		return fmt.Errorf("loading schema version: %w: %w", apperrors.ErrStorage, err)
	case stored != SchemaVersion:
		if err := s.migrate(ctx, stored); err != nil {
			return err
		}
	}

	s.initialized = true
	return nil
}

// seed writes the first-run sample book: three accounts and a handful of
// transactions. The version marker is written last so a failure mid-seed
// retries the whole seed next time.
func (s *Store) seed(ctx context.Context) error {
	s.logger.Info("seeding first-run sample data")

	accounts, transactions := s.sampleBook()

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return err
	}
	if err := s.saveTransactions(ctx, transactions); err != nil {
		return err
	}
	if err := s.vault.Set(ctx, keyNextID, seedNextID); err != nil {
		return fmt.Errorf("saving next-id counter: %w: %w", apperrors.ErrStorage, err)
	}
	if err := s.vault.Set(ctx, keySchemaVersion, SchemaVersion); err != nil {
		return fmt.Errorf("saving schema version: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// migrate is the schema migration stub: no stored shape has changed yet, so
// it only rewrites the version marker.
func (s *Store) migrate(ctx context.Context, from string) error {
	s.logger.Info("migrating vault schema",
		zap.String("from", from),
		zap.String("to", SchemaVersion))

	if err := s.vault.Set(ctx, keySchemaVersion, SchemaVersion); err != nil {
		return fmt.Errorf("saving schema version: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *Store) sampleBook() ([]model.Account, []model.Transaction) {
	now := s.now()

	savings := model.Account{
		ID:            s.newID(),
		Nickname:      "Everyday Savings",
		BankName:      "HDFC Bank",
		AccountNumber: "XXXXXX4821",
		Type:          model.AccountTypeSavings,
		Balance:       decimal.NewFromInt(45_500),
		Currency:      model.CurrencyINR,
		CreatedAt:     now.AddDate(0, -3, 0),
		UpdatedAt:     now.AddDate(0, 0, -2),
		Active:        true,
	}
	salary := model.Account{
		ID:            s.newID(),
		Nickname:      "Salary",
		BankName:      "ICICI Bank",
		AccountNumber: "XXXXXX9377",
		Type:          model.AccountTypeSalary,
		Balance:       decimal.NewFromInt(118_200),
		Currency:      model.CurrencyINR,
		CreatedAt:     now.AddDate(0, -3, 0),
		UpdatedAt:     now.AddDate(0, 0, -1),
		Active:        true,
	}
	travel := model.Account{
		ID:            s.newID(),
		Nickname:      "Travel Dollars",
		BankName:      "Chase",
		AccountNumber: "XXXXXX1145",
		Type:          model.AccountTypeCurrent,
		Balance:       decimal.NewFromInt(2_300),
		Currency:      model.CurrencyUSD,
		CreatedAt:     now.AddDate(0, -1, 0),
		UpdatedAt:     now.AddDate(0, 0, -6),
		Active:        true,
	}

	transactions := []model.Transaction{
		{
			ID:          s.newID(),
			AccountID:   salary.ID,
			Description: "Monthly salary",
			Amount:      decimal.NewFromInt(95_000),
			Type:        model.TransactionCredit,
			Date:        now.AddDate(0, 0, -28),
			Category:    "Income",
			CreatedAt:   now.AddDate(0, 0, -28),
		},
		{
			ID:          s.newID(),
			AccountID:   salary.ID,
			Description: "Rent",
			Amount:      decimal.NewFromInt(22_000),
			Type:        model.TransactionDebit,
			Date:        now.AddDate(0, 0, -25),
			Category:    "Housing",
			CreatedAt:   now.AddDate(0, 0, -25),
		},
		{
			ID:          s.newID(),
			AccountID:   savings.ID,
			Description: "Transfer from salary",
			Amount:      decimal.NewFromInt(15_000),
			Type:        model.TransactionCredit,
			Date:        now.AddDate(0, 0, -20),
			Category:    "Savings",
			CreatedAt:   now.AddDate(0, 0, -20),
		},
		{
			ID:          s.newID(),
			AccountID:   savings.ID,
			Description: "Groceries",
			Amount:      decimal.NewFromInt(3_450),
			Type:        model.TransactionDebit,
			Date:        now.AddDate(0, 0, -2),
			Category:    "Food",
			CreatedAt:   now.AddDate(0, 0, -2),
		},
		{
			ID:          s.newID(),
			AccountID:   travel.ID,
			Description: "Hotel booking",
			Amount:      decimal.NewFromInt(200),
			Type:        model.TransactionDebit,
			Date:        now.AddDate(0, 0, -6),
			Category:    "Travel",
			CreatedAt:   now.AddDate(0, 0, -6),
		},
	}

	return []model.Account{savings, salary, travel}, transactions
}
