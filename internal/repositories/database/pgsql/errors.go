package pgsql

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/SscSPs/biztime/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
	pgDataExceptionClass  = "22"
	pgAdminShutdown       = "57P01"
	pgCannotConnectNow    = "57P03"
)

// translatePgError classifies a store error into an AppError. Constraint violations keep
// their native class and data exceptions (class 22) are validation failures; connection failures become StoreUnavailable; the rest is
// unclassified and carries msg.
func translatePgError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return apperrors.NewConflictError("resource already exists")
		case pgErr.Code == pgForeignKeyViolation:
			return apperrors.NewReferentialIntegrityError("referenced resource does not exist")
		case pgErr.Code == pgCheckViolation, pgErr.Code == pgNotNullViolation:
			return apperrors.NewValidationFailedError("value violates constraint " + pgErr.ConstraintName)
		case strings.HasPrefix(pgErr.Code, pgDataExceptionClass):
			return apperrors.NewValidationFailedError("invalid value: " + pgErr.Message)
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == pgAdminShutdown, pgErr.Code == pgCannotConnectNow:
			return apperrors.NewStoreUnavailableError("database unavailable", err)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError("database unavailable", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewStoreUnavailableError("database unavailable", err)
	}

	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}
