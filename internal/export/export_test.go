package export

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/kv"
	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/statement"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

type failingSource struct{}

func (failingSource) ExportData(context.Context) ([]model.Account, []model.Transaction, error) {
	return nil, nil, errors.New("vault unavailable")
}

type recordingSharer struct {
	path string
	err  error
}

func (s *recordingSharer) Share(path string) error {
	s.path = path
	return s.err
}

func newBook(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(kv.NewMemory(), zap.NewNop())
}

func TestAccounts_WritesFileAndShares(t *testing.T) {
	ctx := context.Background()
	book := newBook(t)
	require.NoError(t, book.Initialize(ctx))

	sharer := &recordingSharer{}
	p := New(book, sharer, t.TempDir(), zap.NewNop())

	res := p.Accounts(ctx)
	require.True(t, res.Success)
	assert.True(t, res.Shared)
	assert.Equal(t, res.FilePath, sharer.path)
	assert.Empty(t, res.Preview)

	data, err := os.ReadFile(res.FilePath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, strings.Join(AccountHeader, ","), lines[0])
	assert.Len(t, lines, 4, "header + three seeded accounts")
}

func TestTransactions_RoundTripsThroughStatementParser(t *testing.T) {
	ctx := context.Background()
	book := newBook(t)

	acct, err := book.CreateAccount(ctx, store.CreateAccountParams{
		Nickname: "roundtrip",
		Currency: model.CurrencyINR,
	})
	require.NoError(t, err)

	amount, _ := decimal.NewFromString("350.50")
	_, err = book.AddTransaction(ctx, acct.ID, store.TransactionDraft{
		Description: "Coffee beans",
		Amount:      amount,
		Type:        model.TransactionDebit,
		Date:        time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		Category:    "Food",
	})
	require.NoError(t, err)

	p := New(book, nil, t.TempDir(), zap.NewNop())
	res := p.Transactions(ctx)
	require.True(t, res.Success)

	parsed, err := statement.NewParser(zap.NewNop()).ParseFile(res.FilePath)
	require.NoError(t, err)

	var got *model.ProcessedTransaction
	for i := range parsed {
		if parsed[i].Description == "Coffee beans" {
			got = &parsed[i]
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, acct.ID, got.AccountID)
	assert.Equal(t, "350.5", got.Amount.String())
	assert.Equal(t, model.TransactionDebit, got.Type)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, 3, got.Date.Day())
}

func TestExport_NoSharerFallsBackToPreview(t *testing.T) {
	ctx := context.Background()
	book := newBook(t)
	require.NoError(t, book.Initialize(ctx))

	p := New(book, nil, t.TempDir(), zap.NewNop())
	res := p.Accounts(ctx)

	require.True(t, res.Success)
	assert.False(t, res.Shared)
	assert.NotEmpty(t, res.FilePath)
	require.NotEmpty(t, res.Preview)
	assert.Equal(t, strings.Join(AccountHeader, ","), res.Preview[0])
	assert.LessOrEqual(t, len(res.Preview), 5)
}

func TestExport_ShareFailureKeepsFile(t *testing.T) {
	ctx := context.Background()
	book := newBook(t)
	require.NoError(t, book.Initialize(ctx))

	sharer := &recordingSharer{err: errors.New("no share sheet")}
	p := New(book, sharer, t.TempDir(), zap.NewNop())

	res := p.Accounts(ctx)
	require.True(t, res.Success, "a failed share is a degraded export, not a failed one")
	assert.False(t, res.Shared)
	assert.NotEmpty(t, res.Preview)

	_, err := os.Stat(res.FilePath)
	assert.NoError(t, err)
}

func TestExport_SourceFailure(t *testing.T) {
	p := New(failingSource{}, nil, t.TempDir(), zap.NewNop())

	res := p.Accounts(context.Background())
	assert.False(t, res.Success)
	assert.Empty(t, res.FilePath, "failed exports carry an empty file reference")
	assert.Error(t, res.Err)

	res = p.Transactions(context.Background())
	assert.False(t, res.Success)
	assert.Empty(t, res.FilePath)
}

func TestFlattenAccount_FieldOrder(t *testing.T) {
	a := model.Account{
		ID:            "a1",
		Nickname:      "nick",
		BankName:      "bank",
		AccountNumber: "XXXX1234",
		Type:          model.AccountTypeSavings,
		Balance:       decimal.NewFromInt(500),
		Currency:      model.CurrencyUSD,
		CreatedAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Active:        true,
	}

	row := FlattenAccount(a)
	require.Len(t, row, len(AccountHeader))
	assert.Equal(t, "a1", row[0])
	assert.Equal(t, "savings", row[4])
	assert.Equal(t, "500", row[5])
	assert.Equal(t, "USD", row[6])
	assert.Equal(t, "true", row[9])
}
