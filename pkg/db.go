package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUndefinedTableError checks if the error is an undefined table error,
// i.e. the schema was never migrated
func IsUndefinedTableError(err error) bool {
	return hasPgCode(err, "42P01")
}

// IsNumericOverflowError checks if the error is a numeric value out of range error
func IsNumericOverflowError(err error) bool {
	return hasPgCode(err, "22003")
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
