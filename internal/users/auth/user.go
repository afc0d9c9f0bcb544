// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

/*
Package auth implements identity and session management for the editorial
staff backend.

The public site is anonymous; accounts exist only for editors and
administrators who maintain the catalog. There is no self-registration:
administrators create accounts for their colleagues.

# Architecture

  - Accounts live in PostgreSQL (users.account).
  - Refresh sessions live in Redis with a TTL matching the token lifetime,
    keyed by the token hash, so a revoked or expired session simply vanishes.
  - Access tokens are short-lived RS256 JWTs verified statelessly.
*/
package auth

import (
	"time"

	"github.com/miigaik/vestnik/internal/platform/sec"
)

// # Domain Entities

// Account represents an editorial staff member with backend access.
type Account struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session held in Redis.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldDisplayName     = "display_name"
	FieldRole            = "role"
	FieldLogin           = "login"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAccessToken     = "access_token"
	FieldTokenType       = "token_type"
	FieldExpiresIn       = "expires_in"
	FieldUser            = "user"
	FieldMessage         = "message"
)
