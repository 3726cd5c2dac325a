package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// SQLSTATE codes the repository maps to domain results.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// friendlyIDIndex is gorm's name for the uniqueIndex on orders.friendly_id.
const friendlyIDIndex = "idx_orders_friendly_id"

// constraintViolation returns the SQLSTATE and constraint name of a
// PostgreSQL integrity error. gorm's TranslateError is left off so both
// survive.
func constraintViolation(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", "", false
	}

	return pgErr.Code, pgErr.ConstraintName, true
}

// isFriendlyIDCollision is the one unique violation SubmitOrder retries.
// A primary key clash is a bug and surfaces as a database error.
func isFriendlyIDCollision(err error) bool {
	code, constraint, ok := constraintViolation(err)

	return ok && code == pgUniqueViolation && constraint == friendlyIDIndex
}

func isUniqueViolation(err error) bool {
	code, _, ok := constraintViolation(err)

	return ok && code == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	code, _, ok := constraintViolation(err)

	return ok && code == pgForeignKeyViolation
}
