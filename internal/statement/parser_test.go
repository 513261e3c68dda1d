package statement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pocketbook-dev/pocketbook/internal/apperrors"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func TestParse_Testdata(t *testing.T) {
	data, err := os.ReadFile("../../testdata/statement.csv")
	require.NoError(t, err)

	p := NewParser(zap.NewNop())
	txns, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)
	require.Len(t, txns, 5)

	assert.Equal(t, "acc-1", txns[0].AccountID)
	assert.Equal(t, "Monthly salary", txns[0].Description)
	assert.Equal(t, "95000", txns[0].Amount.String())
	assert.Equal(t, model.TransactionCredit, txns[0].Type)
	assert.Equal(t, 2026, txns[0].Date.Year())
	assert.Equal(t, "Income", txns[0].Category)

	assert.Equal(t, model.TransactionDebit, txns[1].Type)
	assert.Equal(t, "350.5", txns[2].Amount.String())

	// "debit" is not an exact DEBIT match; empty category defaults.
	assert.Equal(t, model.TransactionCredit, txns[3].Type)
	assert.Empty(t, txns[3].Category)

	// Empty type cell defaults to CREDIT.
	assert.Equal(t, model.TransactionCredit, txns[4].Type)
}

func TestParse_ColumnDefaults(t *testing.T) {
	// Only two recognized columns present; everything else defaults.
	csv := "description,amount\nsnacks,12.50\n"

	p := NewParser(zap.NewNop())
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Empty(t, txns[0].AccountID)
	assert.Equal(t, "snacks", txns[0].Description)
	assert.Equal(t, "12.5", txns[0].Amount.String())
	assert.Equal(t, model.TransactionCredit, txns[0].Type)
	assert.True(t, txns[0].Date.IsZero())
	assert.Empty(t, txns[0].Category)
}

func TestParse_BadCellsCoerceToDefaults(t *testing.T) {
	csv := "accountId,amount,date\nacc-1,NOTANUMBER,NOTADATE\n"

	p := NewParser(zap.NewNop())
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err, "bad cells are warnings, not failures")
	require.Len(t, txns, 1)

	assert.True(t, txns[0].Amount.IsZero())
	assert.True(t, txns[0].Date.IsZero())
}

func TestParse_UnknownColumnsIgnored(t *testing.T) {
	csv := "id,accountId,balanceAfter,amount\nx9,acc-7,999,50\n"

	p := NewParser(zap.NewNop())
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "acc-7", txns[0].AccountID)
	assert.Equal(t, "50", txns[0].Amount.String())
}

func TestParse_EmptyInput(t *testing.T) {
	p := NewParser(zap.NewNop())

	txns, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txns)

	txns, err = p.Parse(strings.NewReader("accountId,amount\n"))
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestParse_MalformedRowSkipped(t *testing.T) {
	// The second row has an unterminated quote; the rows around it survive.
	csv := "accountId,amount\nacc-1,10\nacc-2,\"broken\nacc-3,30\n"

	p := NewParser(zap.NewNop())
	txns, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	var ids []string
	for _, txn := range txns {
		ids = append(ids, txn.AccountID)
	}
	assert.Contains(t, ids, "acc-1")
	assert.NotContains(t, ids, "acc-2")
}

func TestParseFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.csv")
	two := filepath.Join(dir, "two.csv")
	require.NoError(t, os.WriteFile(one, []byte("description,amount\nfirst,1\nsecond,2\n"), 0o644))
	require.NoError(t, os.WriteFile(two, []byte("description,amount\nthird,3\n"), 0o644))

	p := NewParser(zap.NewNop())
	txns, err := p.ParseFiles([]string{one, two})
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "first", txns[0].Description)
	assert.Equal(t, "second", txns[1].Description)
	assert.Equal(t, "third", txns[2].Description)
}

func TestParseFile_MissingFile(t *testing.T) {
	p := NewParser(zap.NewNop())

	_, err := p.ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}

func TestParseStatementFile_AbsorbsErrors(t *testing.T) {
	p := NewParser(zap.NewNop())

	res := p.ParseStatementFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.False(t, res.Success)
	assert.Error(t, res.Err)
	assert.Empty(t, res.Transactions)
}

func TestParseStatementFiles_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stmt.csv")
	require.NoError(t, os.WriteFile(path, []byte("description,amount,type\nsalary,100,CREDIT\n"), 0o644))

	p := NewParser(zap.NewNop())
	res := p.ParseStatementFiles([]string{path})
	assert.True(t, res.Success)
	assert.NoError(t, res.Err)
	require.Len(t, res.Transactions, 1)
	assert.Equal(t, "salary", res.Transactions[0].Description)
}
