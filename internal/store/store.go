// Package store owns the durable account book: the JSON-encoded account and
// transaction collections kept inside a key-value vault.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/apperrors"
	"github.com/pocketbook-dev/pocketbook/internal/audit"
	"github.com/pocketbook-dev/pocketbook/internal/id"
	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Persisted vault keys.
const (
	keyAccounts      = "pocketbook.accounts"
	keyTransactions  = "pocketbook.transactions"
	keyNextID        = "pocketbook.next_id"
	keySchemaVersion = "pocketbook.schema_version"
)

// SchemaVersion is the current on-vault schema version.
const SchemaVersion = "1.0.0"

// Store is the handle to the account book. Open it at startup, Close it at
// shutdown. Every operation serializes through one mutex: each write is a
// full read-modify-write of a collection, so overlapping mutations would
// silently lose updates otherwise.
type Store struct {
	vault  kv.Store
	logger *zap.Logger
	audit  *audit.Log
	now    func() time.Time
	newID  func() string

	mu          sync.Mutex
	initialized bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides identifier generation.
func WithIDFunc(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// WithAudit records every mutation to the given audit log.
func WithAudit(l *audit.Log) Option {
	return func(s *Store) { s.audit = l }
}

// Open returns a Store over the given vault.
func Open(vault kv.Store, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		vault:  vault,
		logger: logger,
		now:    time.Now,
		newID:  id.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying vault.
func (s *Store) Close() error {
	return s.vault.Close()
}

// Initialize makes sure the collections exist. Idempotent: on a fresh vault
// it seeds the sample book and writes the schema version; on a version
// mismatch it runs the migration stub. Every other operation calls this
// internally, so explicit calls are only needed to force seeding up front.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureInitialized(ctx)
}

// CreateAccountParams holds the caller-supplied fields of a new account.
type CreateAccountParams struct {
	Nickname      string
	BankName      string
	AccountNumber string
	Type          model.AccountType
	Balance       decimal.Decimal
	Currency      model.Currency
}

// UpdateAccountParams is a partial update: nil fields are left unchanged.
type UpdateAccountParams struct {
	Nickname      *string
	BankName      *string
	AccountNumber *string
	Type          *model.AccountType
	Balance       *decimal.Decimal
	Currency      *model.Currency
}

// TransactionDraft holds the caller-supplied fields of a new transaction.
type TransactionDraft struct {
	Description string
	Amount      decimal.Decimal // positive
	Type        model.TransactionType
	Date        time.Time
	Category    string
}

// AllAccounts returns the active accounts, most recently updated first.
func (s *Store) AllAccounts(ctx context.Context) ([]model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var active []model.Account
	for _, a := range accounts {
		if a.Active {
			active = append(active, a)
		}
	}
	sortAccounts(active)
	return active, nil
}

// AccountByID returns the active account with the given id together with its
// transactions, newest transaction date first.
func (s *Store) AccountByID(ctx context.Context, accountID string) (model.Account, []model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return model.Account{}, nil, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return model.Account{}, nil, err
	}

	for _, a := range accounts {
		if a.ID == accountID && a.Active {
			txns, err := s.transactionsFor(ctx, accountID)
			if err != nil {
				return model.Account{}, nil, err
			}
			return a, txns, nil
		}
	}
	return model.Account{}, nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
}

// TransactionsByAccount returns an account's transactions newest first,
// regardless of the account's active flag. This is how a soft-deleted
// account's history stays reachable.
func (s *Store) TransactionsByAccount(ctx context.Context, accountID string) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}
	return s.transactionsFor(ctx, accountID)
}

// CreateAccount assigns a fresh identifier and timestamps, forces the active
// flag, and appends the account.
func (s *Store) CreateAccount(ctx context.Context, params CreateAccountParams) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return model.Account{}, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return model.Account{}, err
	}

	now := s.now()
	account := model.Account{
		ID:            s.newID(),
		Nickname:      params.Nickname,
		BankName:      params.BankName,
		AccountNumber: params.AccountNumber,
		Type:          params.Type,
		Balance:       params.Balance,
		Currency:      params.Currency,
		CreatedAt:     now,
		UpdatedAt:     now,
		Active:        true,
	}

	accounts = append(accounts, account)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return model.Account{}, err
	}

	s.recordAudit("create_account", account.ID, account.Nickname)
	s.logger.Info("account created", zap.String("id", account.ID), zap.String("nickname", account.Nickname))
	return account, nil
}

// UpdateAccount merges the set fields over the stored record and refreshes
// its update timestamp. Matches by id regardless of the active flag; rows
// are never physically removed, so a soft-deleted record can be repaired.
func (s *Store) UpdateAccount(ctx context.Context, accountID string, params UpdateAccountParams) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return model.Account{}, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return model.Account{}, err
	}

	idx := accountIndex(accounts, accountID)
	if idx < 0 {
		return model.Account{}, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	a := accounts[idx]
	if params.Nickname != nil {
		a.Nickname = *params.Nickname
	}
	if params.BankName != nil {
		a.BankName = *params.BankName
	}
	if params.AccountNumber != nil {
		a.AccountNumber = *params.AccountNumber
	}
	if params.Type != nil {
		a.Type = *params.Type
	}
	if params.Balance != nil {
		a.Balance = *params.Balance
	}
	if params.Currency != nil {
		a.Currency = *params.Currency
	}
	a.UpdatedAt = s.now()
	accounts[idx] = a

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return model.Account{}, err
	}

	s.recordAudit("update_account", a.ID, a.Nickname)
	return a, nil
}

// AddTransaction posts a transaction against an account: assigns id and
// creation time, applies the signed balance delta, and appends the record.
// The account and transaction collections are written as two separate vault
// keys, so the pair is not atomic across a crash between the writes.
func (s *Store) AddTransaction(ctx context.Context, accountID string, draft TransactionDraft) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return model.Transaction{}, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	idx := accountIndex(accounts, accountID)
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	now := s.now()
	txn := model.Transaction{
		ID:          s.newID(),
		AccountID:   accountID,
		Description: draft.Description,
		Amount:      draft.Amount,
		Type:        draft.Type,
		Date:        draft.Date,
		Category:    draft.Category,
		CreatedAt:   now,
	}

	accounts[idx].Balance = accounts[idx].Balance.Add(txn.SignedAmount())
	accounts[idx].UpdatedAt = now

	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return model.Transaction{}, err
	}
	transactions = append(transactions, txn)

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return model.Transaction{}, err
	}
	if err := s.saveTransactions(ctx, transactions); err != nil {
		return model.Transaction{}, err
	}

	s.recordAudit("add_transaction", txn.ID, "account "+accountID)
	s.logger.Info("transaction posted",
		zap.String("account", accountID),
		zap.String("type", string(txn.Type)),
		zap.String("amount", txn.Amount.String()))
	return txn, nil
}

// DeleteAccount soft-deletes: flips the active flag and refreshes the update
// timestamp. Transactions are retained and stay queryable by account id.
func (s *Store) DeleteAccount(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}

	idx := accountIndex(accounts, accountID)
	if idx < 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}

	accounts[idx].Active = false
	accounts[idx].UpdatedAt = s.now()

	if err := s.saveAccounts(ctx, accounts); err != nil {
		return err
	}

	s.recordAudit("delete_account", accountID, "")
	return nil
}

// ClearAll removes every persisted key unconditionally. The next operation
// re-seeds the sample book.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyAccounts, keyTransactions, keyNextID, keySchemaVersion} {
		if err := s.vault.Delete(ctx, key); err != nil {
			return fmt.Errorf("clearing %s: %w: %w", key, apperrors.ErrStorage, err)
		}
	}
	s.initialized = false

	s.recordAudit("clear_all", "", "")
	s.logger.Info("vault cleared")
	return nil
}

// ExportData returns the active accounts and the full transaction collection
// for downstream flattening.
func (s *Store) ExportData(ctx context.Context) ([]model.Account, []model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureInitialized(ctx); err != nil {
		return nil, nil, err
	}

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	var active []model.Account
	for _, a := range accounts {
		if a.Active {
			active = append(active, a)
		}
	}

	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, nil, err
	}
	return active, transactions, nil
}

func (s *Store) transactionsFor(ctx context.Context, accountID string) ([]model.Transaction, error) {
	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	var owned []model.Transaction
	for _, t := range transactions {
		if t.AccountID == accountID {
			owned = append(owned, t)
		}
	}
	sortTransactions(owned)
	return owned, nil
}

func (s *Store) recordAudit(op, entityID, details string) {
	if s.audit == nil {
		return
	}
	entry := audit.Entry{Timestamp: s.now(), Op: op, EntityID: entityID, Details: details}
	if err := s.audit.Append(entry); err != nil {
		s.logger.Warn("audit append failed", zap.String("op", op), zap.Error(err))
	}
}

func accountIndex(accounts []model.Account, accountID string) int {
	for i, a := range accounts {
		if a.ID == accountID {
			return i
		}
	}
	return -1
}

func sortAccounts(accounts []model.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].UpdatedAt.After(accounts[j].UpdatedAt)
	})
}

func sortTransactions(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
}
