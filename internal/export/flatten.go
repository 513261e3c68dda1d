package export

import (
	"time"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Flattened field order is id first, then domain fields in declaration
// order. Transaction headers reuse the statement import column names so an
// exported file round-trips through the statement parser.

// AccountHeader is the header row for account exports.
var AccountHeader = []string{
	"id", "nickname", "bankName", "accountNumber", "type",
	"balance", "currency", "createdAt", "updatedAt", "isActive",
}

// TransactionHeader is the header row for transaction exports.
var TransactionHeader = []string{
	"id", "accountId", "description", "amount", "type",
	"date", "category", "createdAt",
}

const dateFormat = "2006-01-02"

// FlattenAccount converts an Account to a CSV row.
func FlattenAccount(a model.Account) []string {
	active := "false"
	if a.Active {
		active = "true"
	}
	return []string{
		a.ID,
		a.Nickname,
		a.BankName,
		a.AccountNumber,
		string(a.Type),
		a.Balance.String(),
		string(a.Currency),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
		active,
	}
}

// FlattenTransaction converts a Transaction to a CSV row.
func FlattenTransaction(t model.Transaction) []string {
	return []string{
		t.ID,
		t.AccountID,
		t.Description,
		t.Amount.String(),
		string(t.Type),
		t.Date.Format(dateFormat),
		t.Category,
		t.CreatedAt.Format(time.RFC3339),
	}
}
