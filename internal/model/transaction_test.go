package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(250)

	credit := Transaction{Amount: amount, Type: TransactionCredit}
	assert.True(t, credit.SignedAmount().Equal(amount))

	debit := Transaction{Amount: amount, Type: TransactionDebit}
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}
