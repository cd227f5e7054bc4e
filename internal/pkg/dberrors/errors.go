package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes this service reacts to
const (
	CodeUniqueViolation        = "23505"
	CodeForeignKeyViolation    = "23503"
	CodeCheckViolation         = "23514"
	CodeInvalidTextRepresent   = "22P02"
	CodeNumericValueOutOfRange = "22003"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	code, constraint := pgCode(err)
	return code == CodeUniqueViolation && constraint == constraintName
}

// IsForeignKeyViolation reports a reference to a row that does not exist.
func IsForeignKeyViolation(err error) bool {
	code, _ := pgCode(err)
	return code == CodeForeignKeyViolation
}

// IsInvalidInput reports values the store could not accept for their column type or checks.
func IsInvalidInput(err error) bool {
	code, _ := pgCode(err)
	switch code {
	case CodeInvalidTextRepresent, CodeCheckViolation, CodeNumericValueOutOfRange:
		return true
	}
	return false
}

// IsNoRows reports an empty single-row result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
