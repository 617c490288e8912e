package errors

// Storage helpers: map Postgres (pgx) errors to codes
// the sqlite adapter in platform/store/sqlite classifies its own driver errors into *Error

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes we classify
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgInvalidText         = "22P02"
	pgSerialization       = "40001"
	pgDeadlock            = "40P01"
	pgLockNotAvailable    = "55P03"
	pgReadOnly            = "25006"
	pgCannotConnectNow    = "57P03"
)

// ExtractPgError returns the *pgconn.PgError in err's chain
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// DBErrorCode classifies a storage error; already classified *Error values keep their code
// ok is false when err carries no usable classification
func DBErrorCode(err error) (ErrorCode, bool) {
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ErrorCodeDuplicateKey, true
		case pgForeignKeyViolation, pgInvalidText:
			return ErrorCodeInvalidArgument, true
		case pgNotNullViolation, pgCheckViolation:
			return ErrorCodeValidation, true
		case pgReadOnly, pgCannotConnectNow:
			return ErrorCodeUnavailable, true
		}
		return ErrorCodeDB, true
	}
	if e, ok := As(err); ok && e.code != ErrorCodeUnknown {
		return e.code, true
	}
	return ErrorCodeUnknown, false
}

// FromDB wraps a storage error with its mapped code; unknown errors become ErrorCodeDB
func FromDB(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromDBf is FromDB with formatting
func FromDBf(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	return FromDB(err, fmt.Sprintf(format, a...))
}

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool {
	code, ok := DBErrorCode(err)
	return ok && code == ErrorCodeDuplicateKey
}

// IsRetryable reports transient contention worth retrying
// local cancellations and timeouts are never retryable here
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgSerialization, pgDeadlock, pgLockNotAvailable:
			return true
		}
		return false
	}
	s := strings.ToLower(Root(err).Error())
	return strings.Contains(s, "commit unexpectedly resulted in rollback") ||
		strings.Contains(s, "deadlock detected") ||
		strings.Contains(s, "could not serialize access")
}
