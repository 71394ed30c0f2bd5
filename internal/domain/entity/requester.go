package entity

import "github.com/google/uuid"

// Requester is the verified identity behind a request, together with the
// client metadata recorded in the audit trail.
type Requester struct {
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
	RequestID string
}
