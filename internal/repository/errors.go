package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func IsPgErrorWithCode(err error, code string) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == code
}

// ConstraintName names the constraint a postgres error violated; empty for
// any other error.
func ConstraintName(err error) string {
	pgErr, ok := pgError(err)
	if !ok {
		return ""
	}
	return pgErr.ConstraintName
}
