package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTransferAuditEntry(t *testing.T) {
	requester := Requester{UserID: uuid.New(), IPAddress: "10.0.0.1", UserAgent: "curl/8", RequestID: "req-1"}
	cmd := TransferCommand{FromAccountID: uuid.New(), ToAccountNumber: "ACC1002", Amount: 1250}
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success entry carries reference number", func(t *testing.T) {
		result := &TransferResult{ReferenceNumber: "TXN1", Currency: "USD"}

		entry := NewTransferAuditEntry(requester, cmd, result, nil, ts)

		assert.Equal(t, AuditSuccess, entry.Status)
		assert.Equal(t, ActionTransfer, entry.Action)
		assert.Equal(t, requester.UserID, entry.UserID)
		assert.Equal(t, "12.50", entry.Metadata["amount"])
		assert.Equal(t, "TXN1", entry.Metadata["referenceNumber"])
		assert.NotContains(t, entry.Metadata, "error")
		assert.Equal(t, ts, entry.Timestamp)
	})

	t.Run("Failure entry carries error message", func(t *testing.T) {
		entry := NewTransferAuditEntry(requester, cmd, nil, errors.New("insufficient balance"), ts)

		assert.Equal(t, AuditFailed, entry.Status)
		assert.Equal(t, "insufficient balance", entry.Metadata["error"])
		assert.Equal(t, "ACC1002", entry.Metadata["toAccount"])
		assert.NotContains(t, entry.Metadata, "referenceNumber")
		assert.Equal(t, "req-1", entry.LogFields()["request_id"])
	})
}

func TestNewTransferEvent(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	result := &TransferResult{ReferenceNumber: "TXN9", Amount: 50000, Currency: "USD", Timestamp: ts}

	event := NewTransferEvent(result, DirectionReceived)

	assert.Equal(t, EventTypeTransaction, event.Type)
	assert.Equal(t, DirectionReceived, event.Direction)
	assert.Equal(t, "500.00", event.Amount)
	assert.Equal(t, StatusCompleted, event.Status)
	assert.Equal(t, ts, event.Timestamp)
}
