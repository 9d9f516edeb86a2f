// Package common defines sentinel errors shared by the repositories and
// services of the client registry. Callers should use errors.Is to match
// these values; translated driver errors keep the original error wrapped.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Integrity errors reported by the database.
	ErrConstraintViolation = errors.New("constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)
