// Package pgerr maps PostgreSQL integrity errors onto the registry's
// sentinel errors while keeping the driver error reachable.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/clientdb/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes of the integrity_constraint_violation class.
const (
	CodeNotNullViolation    = "23502"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// Translate wraps err with common.ErrConstraintViolation or
// common.ErrForeignKeyViolation when it carries the matching SQLSTATE.
// Other errors, and nil, are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case CodeCheckViolation, CodeNotNullViolation:
		return fmt.Errorf("%w: %w", common.ErrConstraintViolation, err)
	case CodeForeignKeyViolation:
		return fmt.Errorf("%w: %w", common.ErrForeignKeyViolation, err)
	default:
		return err
	}
}
