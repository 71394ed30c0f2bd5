package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditStatus is the outcome recorded for an audited action
type AuditStatus string

// AuditStatus constants
const (
	AuditSuccess AuditStatus = "success"
	AuditFailed  AuditStatus = "failed"
)

// ActionTransfer is the audit action for funds transfers
const ActionTransfer = "transfer"

// AuditEntry is a write-once record of an attempted action
type AuditEntry struct {
	UserID    uuid.UUID
	Action    string
	IPAddress string
	UserAgent string
	RequestID string
	Status    AuditStatus
	Metadata  map[string]any
	Timestamp time.Time
}

// NewTransferAuditEntry creates the audit entry for a transfer attempt.
// On success the reference number is recorded, otherwise the error message.
func NewTransferAuditEntry(
	requester Requester,
	cmd TransferCommand,
	result *TransferResult,
	failure error,
	timestamp time.Time,
) AuditEntry {
	metadata := map[string]any{
		"amount":      FormatAmount(cmd.Amount),
		"fromAccount": cmd.FromAccountID.String(),
		"toAccount":   cmd.ToAccountNumber,
	}

	status := AuditSuccess
	if failure != nil {
		status = AuditFailed
		metadata["error"] = failure.Error()
	} else if result != nil {
		metadata["referenceNumber"] = result.ReferenceNumber
		metadata["currency"] = result.Currency
	}

	return AuditEntry{
		UserID:    requester.UserID,
		Action:    ActionTransfer,
		IPAddress: requester.IPAddress,
		UserAgent: requester.UserAgent,
		RequestID: requester.RequestID,
		Status:    status,
		Metadata:  metadata,
		Timestamp: timestamp.UTC(),
	}
}

// LogFields flattens the entry for structured logging
func (e AuditEntry) LogFields() map[string]any {
	return map[string]any{
		"user_id":    e.UserID.String(),
		"action":     e.Action,
		"ip_address": e.IPAddress,
		"user_agent": e.UserAgent,
		"request_id": e.RequestID,
		"status":     string(e.Status),
		"metadata":   e.Metadata,
		"timestamp":  e.Timestamp,
	}
}
