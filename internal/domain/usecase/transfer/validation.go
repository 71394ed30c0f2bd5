package transfer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/credora-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/google/uuid"
)

// TransferValidator rejects malformed transfer requests before any storage access
type TransferValidator struct{}

// NewTransferValidator creates a new TransferValidator
func NewTransferValidator() *TransferValidator {
	return &TransferValidator{}
}

// Validate checks the requester identity and every command field
func (v *TransferValidator) Validate(requester entity.Requester, cmd entity.TransferCommand) error {
	if requester.UserID == uuid.Nil {
		return errs.ErrUnauthorized
	}

	if cmd.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}

	if cmd.FromAccountID == uuid.Nil {
		return fmt.Errorf("%w: source account is required", errs.ErrInvalidRequest)
	}

	if strings.TrimSpace(cmd.ToAccountNumber) == "" {
		return fmt.Errorf("%w: destination account number is required", errs.ErrInvalidRequest)
	}

	if utf8.RuneCountInString(cmd.Description) > entity.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", errs.ErrInvalidRequest, entity.MaxDescriptionLength)
	}

	return nil
}
