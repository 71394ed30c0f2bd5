package core

// ReferenceGenerator produces externally visible transaction reference numbers.
// References must be unique across all instances; the ledger's unique index is
// the final guard and a collision surfaces as ErrDuplicateReference.
type ReferenceGenerator interface {
	Next() (string, error)
}
