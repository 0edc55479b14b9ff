package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation       = "23505"
	pgInsufficientPrivilege = "42501"
	pgCheckViolation        = "23514"
	pgForeignKeyViolation   = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgUniqueViolation
}

// IsInsufficientPrivilege matches row-security rejections such as
// "new row violates row-level security policy".
func IsInsufficientPrivilege(err error) bool {
	return pgCode(err) == pgInsufficientPrivilege
}

func IsCheckViolation(err error) bool {
	return pgCode(err) == pgCheckViolation
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}
