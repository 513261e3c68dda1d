package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies a tracked bank account.
type AccountType string

const (
	AccountTypeSavings AccountType = "savings"
	AccountTypeSalary  AccountType = "salary"
	AccountTypeCurrent AccountType = "current"
	AccountTypeOther   AccountType = "other"
)

// Currency is an ISO 4217 code supported for display formatting.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Account represents one tracked bank account. Balance is maintained
// incrementally: it always equals the balance at creation plus the sum of
// signed transaction amounts posted since.
type Account struct {
	ID            string          `json:"id"`
	Nickname      string          `json:"nickname"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"` // masked display value
	Type          AccountType     `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      Currency        `json:"currency"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	Active        bool            `json:"isActive"` // false = soft-deleted
}
