package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pocketbook-dev/pocketbook/internal/apperrors"
	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// The collections live in the vault as JSON arrays. Reads tolerate a missing
// key (empty collection); anything unreadable is an integrity failure, never
// auto-repaired.

func (s *Store) loadAccounts(ctx context.Context) ([]model.Account, error) {
	raw, err := s.vault.Get(ctx, keyAccounts)
	if kv.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w: %w", apperrors.ErrStorage, err)
	}

	var accounts []model.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("decoding accounts: %w: %w", apperrors.ErrIntegrity, err)
	}
	return accounts, nil
}

func (s *Store) saveAccounts(ctx context.Context, accounts []model.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encoding accounts: %w: %w", apperrors.ErrIntegrity, err)
	}
	if err := s.vault.Set(ctx, keyAccounts, string(data)); err != nil {
		return fmt.Errorf("saving accounts: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

func (s *Store) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	raw, err := s.vault.Get(ctx, keyTransactions)
	if kv.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w: %w", apperrors.ErrStorage, err)
	}

	var transactions []model.Transaction
	if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w: %w", apperrors.ErrIntegrity, err)
	}
	return transactions, nil
}

func (s *Store) saveTransactions(ctx context.Context, transactions []model.Transaction) error {
	data, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w: %w", apperrors.ErrIntegrity, err)
	}
	if err := s.vault.Set(ctx, keyTransactions, string(data)); err != nil {
		return fmt.Errorf("saving transactions: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}
