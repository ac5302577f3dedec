package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUndefinedTable  = "42P01"
	pgUniqueViolation = "23505"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUndefinedTable: leituras best-effort devolvem vazio nesse caso.
func IsUndefinedTable(err error) bool {
	return pgCode(err) == pgUndefinedTable
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}
