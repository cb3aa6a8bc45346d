package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceDelta(t *testing.T) {
	amount := decimal.RequireFromString("150.00")

	tests := []struct {
		name   string
		trx    Transaction
		target TransactionStatus
		want   string
	}{
		{"top-up success credits", Transaction{Type: TypeTopUp, Amount: amount}, StatusSuccess, "150.00"},
		{"payment success debits", Transaction{Type: TypePayment, Amount: amount}, StatusSuccess, "-150.00"},
		{"withdrawal success debits", Transaction{Type: TypeWithdrawal, Amount: amount}, StatusSuccess, "-150.00"},
		{"failed is neutral", Transaction{Type: TypeTopUp, Amount: amount}, StatusFailed, "0.00"},
		{"cancelled is neutral", Transaction{Type: TypeWithdrawal, Amount: amount}, StatusCancelled, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.trx.BalanceDelta(tt.target)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestStatusTerminality(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, TransactionStatus("REFUNDED").Terminal())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, TypePayment.Valid())
	assert.False(t, TransactionType("TRANSFER").Valid())

	assert.True(t, MethodBankTransfer.Valid())
	assert.False(t, PaymentMethod("CASH").Valid())

	assert.True(t, AccountBlocked.Valid())
	assert.False(t, AccountStatus("CLOSED").Valid())
}

func TestTypeDebits(t *testing.T) {
	assert.False(t, TypeTopUp.Debits())
	assert.True(t, TypePayment.Debits())
	assert.True(t, TypeWithdrawal.Debits())
}

func TestUserUpdateEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.Empty())

	name := "Budi"
	assert.False(t, UserUpdate{FullName: &name}.Empty())
}
