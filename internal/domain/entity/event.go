package entity

import "time"

// EventTypeTransaction is the notification type emitted for ledger movements
const EventTypeTransaction = "transaction"

// TransferDirection tells the notified user which side of the transfer they are on
type TransferDirection string

// TransferDirection constants
const (
	DirectionSent     TransferDirection = "sent"
	DirectionReceived TransferDirection = "received"
)

// TransferEvent is the payload published to a user after a committed transfer
type TransferEvent struct {
	Type            string            `json:"type"`
	Direction       TransferDirection `json:"direction"`
	Amount          string            `json:"amount"`
	Currency        string            `json:"currency"`
	Status          TransactionStatus `json:"status"`
	ReferenceNumber string            `json:"referenceNumber"`
	Timestamp       time.Time         `json:"timestamp"`
}

// NewTransferEvent builds the notification for one side of a committed transfer
func NewTransferEvent(result *TransferResult, direction TransferDirection) TransferEvent {
	return TransferEvent{
		Type:            EventTypeTransaction,
		Direction:       direction,
		Amount:          FormatAmount(result.Amount),
		Currency:        result.Currency,
		Status:          StatusCompleted,
		ReferenceNumber: result.ReferenceNumber,
		Timestamp:       result.Timestamp,
	}
}
