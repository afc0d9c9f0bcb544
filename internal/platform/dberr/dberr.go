// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/miigaik/vestnik/internal/platform/apperr"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique-constraint failures.
const uniqueViolation = "23505"

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed store operation for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations become client-safe conflicts
	// (duplicate archive range slug, duplicate admin username, ...).
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict("A record with the same unique value already exists")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(&storeError{action: action, cause: err})
}

// storeError tags a low-level database failure with the store action that
// produced it, for log readability.
type storeError struct {
	action string
	cause  error
}

func (e *storeError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *storeError) Unwrap() error { return e.cause }
