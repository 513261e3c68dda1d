package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tells whether a transaction increases or decreases the
// owning account's balance.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// Transaction is one posted movement on an account. Transactions are
// immutable once created; the only mutation path in the store is append.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always positive
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"` // transaction date, not record creation
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SignedAmount returns the balance delta this transaction applies:
// +Amount for CREDIT, -Amount for DEBIT.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// ProcessedTransaction is transaction data staged from a statement import
// before being committed as a durable Transaction.
type ProcessedTransaction struct {
	AccountID   string
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Date        time.Time
	Category    string
}
