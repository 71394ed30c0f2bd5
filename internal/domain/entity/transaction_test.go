package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/credora-ledger/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransferTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	source := &Account{ID: uuid.New(), Currency: "EUR", Balance: 1000}
	destination := &Account{ID: uuid.New(), Currency: "EUR"}

	tx := NewTransferTransaction(source, destination, 250, "rent", "TXN123", 750, mockTime)

	require.NotNil(t, tx)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, TypeTransfer, tx.Type)
	assert.Equal(t, StatusCompleted, tx.Status)
	assert.Equal(t, "EUR", tx.Currency)
	assert.Equal(t, int64(250), tx.Amount)
	assert.Equal(t, int64(750), tx.BalanceAfter)
	assert.Equal(t, "TXN123", tx.ReferenceNumber)
	assert.Equal(t, fixedTime, tx.CreatedAt)
	assert.True(t, tx.IsCompleted())
	assert.True(t, tx.Involves(source.ID))
	assert.True(t, tx.Involves(destination.ID))
	assert.False(t, tx.Involves(uuid.New()))
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input    string
		expected TransactionType
		wantErr  bool
	}{
		{input: "", expected: ""},
		{input: "all", expected: ""},
		{input: "transfer", expected: TypeTransfer},
		{input: " Deposit ", expected: TypeDeposit},
		{input: "withdrawal", expected: TypeWithdrawal},
		{input: "refund", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseTransactionType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
