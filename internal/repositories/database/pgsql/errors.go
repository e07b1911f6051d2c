package pgsql

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translatePgError maps well-known postgres error codes onto the apperrors
// sentinels so the service layer never sees driver details.
// Returns nil when err is not a recognised constraint violation.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return apperrors.ErrDuplicate
	case pgForeignKeyViolation:
		return apperrors.ErrConflict
	}
	return nil
}
