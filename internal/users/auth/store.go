// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package auth

import "context"

// # Account Data Access

// AccountRepository defines the data access contract for staff accounts.
type AccountRepository interface {

	// FindByID returns the account with the given ID.
	FindByID(context context.Context, id string) (*Account, error)

	// FindByEmail returns the account with the given email.
	FindByEmail(context context.Context, email string) (*Account, error)

	// FindByUsername returns the account with the given username.
	FindByUsername(context context.Context, username string) (*Account, error)

	// List returns every staff account ordered by username.
	List(context context.Context) ([]*Account, error)

	// Create persists a brand-new staff account.
	Create(context context.Context, account *Account) error

	// Update persists changes to mutable profile fields.
	Update(context context.Context, account *Account) error

	// UpdatePassword replaces only the account's password hash.
	UpdatePassword(context context.Context, accountID, newHash string) error

	// Delete removes the account permanently.
	Delete(context context.Context, id string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh sessions.
//
// Sessions are volatile: expiry is enforced by the store itself, so a lookup
// after the TTL simply fails as not found.
type SessionRepository interface {

	// Create stores a session keyed by its refresh token hash.
	Create(context context.Context, tokenHash string, session *Session) error

	// FindByTokenHash returns the active session for a token hash.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Delete revokes the session for a token hash. Deleting an absent
	// session is not an error.
	Delete(context context.Context, tokenHash string) error

	// DeleteAllForUser revokes every session belonging to the account.
	DeleteAllForUser(context context.Context, userID string) error
}
