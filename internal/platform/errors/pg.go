package errors

// Postgres mapping: SQLSTATE to Code, field extraction, retry classification.

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the archive layer runs into
const (
	sqlstateUniqueViolation     = "23505"
	sqlstateForeignKeyViolation = "23503"
	sqlstateNotNullViolation    = "23502"
	sqlstateCheckViolation      = "23514"
	sqlstateStringTruncation    = "22001"
	sqlstateInvalidText         = "22P02"
	sqlstateSerializationFail   = "40001"
	sqlstateDeadlock            = "40P01"
	sqlstateLockNotAvailable    = "55P03"
	sqlstateReadOnlyTxn         = "25006"
	sqlstateCannotConnectNow    = "57P03" // server still starting
)

// sqlstateCodes maps known SQLSTATEs onto the taxonomy. Contention codes
// stay DB rather than Unavailable: the statement failed, the server did not.
var sqlstateCodes = map[string]Code{
	sqlstateUniqueViolation: CodeDuplicateKey,

	// referencing a row that is not there is an input problem
	sqlstateForeignKeyViolation: CodeInvalidArgument,

	sqlstateNotNullViolation: CodeValidation,
	sqlstateCheckViolation:   CodeValidation,

	sqlstateStringTruncation: CodeInvalidArgument,
	sqlstateInvalidText:      CodeInvalidArgument,

	sqlstateSerializationFail: CodeDB,
	sqlstateDeadlock:          CodeDB,
	sqlstateLockNotAvailable:  CodeDB,

	sqlstateReadOnlyTxn:      CodeUnavailable,
	sqlstateCannotConnectNow: CodeUnavailable,
}

// ExtractPgError digs to the root cause and returns it as a *pgconn.PgError
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// Named predicates for the constraint classes callers branch on

// IsDuplicateKey reports a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, sqlstateUniqueViolation) }

// IsForeignKeyViolation reports a foreign key violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, sqlstateForeignKeyViolation) }

// IsNotNullViolation reports a not-null violation
func IsNotNullViolation(err error) bool { return IsSQLState(err, sqlstateNotNullViolation) }

// IsCheckViolation reports a check constraint violation
func IsCheckViolation(err error) bool { return IsSQLState(err, sqlstateCheckViolation) }

// IsSerializationFailure reports a serialization failure
func IsSerializationFailure(err error) bool { return IsSQLState(err, sqlstateSerializationFail) }

// IsDeadlock reports a detected deadlock
func IsDeadlock(err error) bool { return IsSQLState(err, sqlstateDeadlock) }

// IsLockNotAvailable reports a failed lock acquisition
func IsLockNotAvailable(err error) bool { return IsSQLState(err, sqlstateLockNotAvailable) }

// IsConnectionUnavailable reports the server refusing connections
func IsConnectionUnavailable(err error) bool { return IsSQLState(err, sqlstateCannotConnectNow) }

// DBCode classifies a Postgres error. ok is false when err carries no
// PgError at all, so callers can fall back to generic handling.
func DBCode(err error) (Code, bool) {
	var pgErr *pgconn.PgError
	if !stderrs.As(err, &pgErr) {
		return CodeUnknown, false
	}
	if code, known := sqlstateCodes[pgErr.Code]; known {
		return code, true
	}
	// a PgError with an unmapped SQLSTATE is still a database failure
	return CodeDB, true
}

// FromPostgres wraps a storage error under its mapped code. nil stays nil.
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	code, ok := DBCode(err)
	if !ok {
		code = CodeDB
	}
	return Wrap(err, code, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// AttachFieldFromPg fills in the field from PgError metadata when it can.
// ColumnName wins; otherwise the constraint name's last underscore token,
// which turns runs_source_file_key into key-adjacent noise, so "key" itself
// is skipped. No metadata means err comes back unchanged.
func AttachFieldFromPg(err error) error {
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return err
	}
	if col := strings.TrimSpace(pgErr.ColumnName); col != "" {
		return WithField(err, col)
	}
	constraint := strings.TrimSpace(pgErr.ConstraintName)
	if constraint == "" {
		return err
	}
	tok := constraint
	if i := strings.LastIndex(constraint, "_"); i >= 0 && i+1 < len(constraint) {
		tok = constraint[i+1:]
	}
	if tok == "" || tok == "key" {
		return err
	}
	return WithField(err, tok)
}

// FromPostgresWithField wraps and then best-efforts a field name on top
func FromPostgresWithField(err error, msg string) error {
	return AttachFieldFromPg(FromPostgres(err, msg))
}

// retryableStates are server-side contention outcomes a fresh attempt can win
var retryableStates = map[string]bool{
	sqlstateSerializationFail: true,
	sqlstateDeadlock:          true,
	sqlstateLockNotAvailable:  true,
}

// retryableFragments cover driver-level text that never arrives as a PgError,
// mostly commit-time surprises and admin-side terminations
var retryableFragments = []string{
	"commit unexpectedly resulted in rollback",
	"deadlock detected",
	"could not serialize access",
	"serialization failure",
	"canceling statement due to statement timeout",
	"canceling statement due to lock timeout",
	"could not obtain lock on row",
	"terminating connection due to administrator command",
}

// IsRetryable reports whether a storage error is transient contention.
// Caller-side cancellation is never retryable here; whoever cancelled owns
// that decision.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}

	root := Root(err)
	if pgErr, ok := ExtractPgError(root); ok {
		return retryableStates[pgErr.Code]
	}

	text := strings.ToLower(root.Error())
	for _, frag := range retryableFragments {
		if strings.Contains(text, frag) {
			return true
		}
	}
	return false
}
