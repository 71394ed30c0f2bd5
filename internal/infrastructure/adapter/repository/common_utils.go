package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/credora-ledger/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType represents the category of a database error
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	ConflictError     ErrorType = "conflict"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	NotFoundError     ErrorType = "not_found"
	UnknownError      ErrorType = "unknown"
)

// PostgreSQL SQLSTATE codes the ledger reacts to
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateCheckViolation       = "23514"
	sqlStateForeignKeyViolation  = "23503"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateQueryCanceled        = "57014"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateSerializationFailure = "40001"
	sqlStateConnectionClass      = "08"
)

// ErrorClassifier translates driver errors into domain errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the category of err
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == sqlStateUniqueViolation:
			return DuplicateKeyError
		case pgErr.Code == sqlStateLockNotAvailable, pgErr.Code == sqlStateQueryCanceled:
			return LockError
		case pgErr.Code == sqlStateDeadlockDetected, pgErr.Code == sqlStateSerializationFailure:
			return ConflictError
		case pgErr.Code == sqlStateCheckViolation, pgErr.Code == sqlStateForeignKeyViolation:
			return ConstraintError
		case strings.HasPrefix(pgErr.Code, sqlStateConnectionClass):
			return ConnectionError
		}
		return UnknownError
	}

	// Errors that never reached the server carry no SQLSTATE
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "duplicate key"):
		return DuplicateKeyError
	case strings.Contains(msg, "lock timeout"):
		return LockError
	case strings.Contains(msg, "deadlock"), strings.Contains(msg, "could not serialize access"):
		return ConflictError
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "bad connection"),
		strings.Contains(msg, "server closed"),
		errors.Is(err, context.DeadlineExceeded):
		return ConnectionError
	case strings.Contains(msg, "violates"):
		return ConstraintError
	}
	return UnknownError
}

// Map translates err into a domain error. notFound is returned for a missing row.
func (c *ErrorClassifier) Map(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch c.Classify(err) {
	case NotFoundError:
		if notFound != nil {
			return notFound
		}
		return errs.ErrInternalServer
	case LockError:
		return fmt.Errorf("%w: %s", errs.ErrLockTimeout, err.Error())
	case ConflictError:
		return fmt.Errorf("%w: %s", errs.ErrConcurrentUpdate, err.Error())
	case DuplicateKeyError:
		if strings.Contains(constraintOf(err), "reference_number") {
			return fmt.Errorf("%w: %s", errs.ErrDuplicateReference, err.Error())
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ConstraintError:
		if isCheck(err) && strings.Contains(constraintOf(err), "balance") {
			return errs.ErrInsufficientBalance
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ConnectionError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}

// constraintOf returns the violated constraint name, or the message when the driver gave none
func constraintOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return err.Error()
}

func isCheck(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateCheckViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
