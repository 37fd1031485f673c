package sqlstore

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const pgUniqueViolationCode = "23505"

// isUniqueViolation checks if the given error is a unique constraint
// violation, such as a duplicate login ID.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return true
	}
	// SQLite wording, which the in-process test databases report.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
