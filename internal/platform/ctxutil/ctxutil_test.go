// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/platform/ctxutil"
	"github.com/miigaik/vestnik/internal/platform/sec"
)

/*
TestRequestIDRoundTrip verifies the request ID survives a context round trip.
*/
func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestRequestIDMissing verifies an empty string for a bare context.
*/
func TestRequestIDMissing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

/*
TestLoggerRoundTrip verifies the logger survives a context round trip.
*/
func TestLoggerRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := ctxutil.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestLoggerFallback verifies the default logger is returned when none is attached.
*/
func TestLoggerFallback(t *testing.T) {
	logger := ctxutil.GetLogger(context.Background())

	require.NotNil(t, logger)
	assert.Same(t, slog.Default(), logger)
}

/*
TestAuthUserRoundTrip verifies auth claims survive a context round trip.
*/
func TestAuthUserRoundTrip(t *testing.T) {
	claims := &sec.AuthClaims{UserID: "u-1", Username: "editor", Role: string(sec.RoleEditor)}

	ctx := ctxutil.WithAuthUser(context.Background(), claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "editor", got.Username)
}

/*
TestAuthUserMissing verifies nil claims for an unauthenticated context.
*/
func TestAuthUserMissing(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))
}
