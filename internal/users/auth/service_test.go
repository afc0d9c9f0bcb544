// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package auth_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/sec"
	"github.com/miigaik/vestnik/internal/users/auth"
)

// # Test Doubles

type fakeAccountRepo struct {
	accounts map[string]*auth.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*auth.Account{}}
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*auth.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperr.NotFound("Account")
	}
	return account, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*auth.Account, error) {
	for _, account := range f.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (f *fakeAccountRepo) List(_ context.Context) ([]*auth.Account, error) {
	listed := []*auth.Account{}
	for _, account := range f.accounts {
		listed = append(listed, account)
	}
	return listed, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, account *auth.Account) error {
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *auth.Account) error {
	if _, ok := f.accounts[account.ID]; !ok {
		return apperr.NotFound("Account")
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) UpdatePassword(_ context.Context, accountID, newHash string) error {
	account, ok := f.accounts[accountID]
	if !ok {
		return apperr.NotFound("Account")
	}
	account.PasswordHash = newHash
	return nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.accounts[id]; !ok {
		return apperr.NotFound("Account")
	}
	delete(f.accounts, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*auth.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*auth.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, tokenHash string, session *auth.Session) error {
	f.sessions[tokenHash] = session
	return nil
}

func (f *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := f.sessions[tokenHash]
	if !ok {
		return nil, apperr.NotFound("Session not found or expired")
	}
	return session, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, tokenHash string) error {
	delete(f.sessions, tokenHash)
	return nil
}

func (f *fakeSessionRepo) DeleteAllForUser(_ context.Context, userID string) error {
	for hash, session := range f.sessions {
		if session.UserID == userID {
			delete(f.sessions, hash)
		}
	}
	return nil
}

type fakeTokenProvider struct {
	issued int
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	f.issued++
	return fmt.Sprintf("access-token-%s-%d", userID, f.issued), nil
}

// # Fixtures

type serviceFixture struct {
	service  *auth.Service
	accounts *fakeAccountRepo
	sessions *fakeSessionRepo
	tokens   *fakeTokenProvider
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	fixture := &serviceFixture{
		accounts: newFakeAccountRepo(),
		sessions: newFakeSessionRepo(),
		tokens:   &fakeTokenProvider{},
	}
	fixture.service = auth.NewService(fixture.accounts, fixture.sessions, fixture.tokens, slog.Default())
	return fixture
}

func (fixture *serviceFixture) seedAccount(t *testing.T, username, email, password string, role sec.UserRole) *auth.Account {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	account := &auth.Account{
		ID:           "account-" + username,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	fixture.accounts.accounts[account.ID] = account
	return account
}

// # Authentication

/*
TestLogin verifies credential checks and session establishment for both
email and username logins.
*/
func TestLogin(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  bool
	}{
		{"by_email", "editor@miigaik.ru", "correct horse", false},
		{"by_username", "editor", "correct horse", false},
		{"wrong_password", "editor", "battery staple", true},
		{"unknown_account", "nobody@miigaik.ru", "correct horse", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := fixture.service.Login(context.Background(), auth.LoginInput{
				Login:    tt.login,
				Password: tt.password,
			})

			if tt.wantErr {
				appErr := apperr.As(err)
				require.NotNil(t, appErr)
				assert.Equal(t, "UNAUTHORIZED", appErr.Code)
				assert.Equal(t, "Invalid login credentials", appErr.Message)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.AccessToken)
			assert.NotEmpty(t, session.RefreshToken)
			assert.Equal(t, "editor", session.Account.Username)
			assert.WithinDuration(t, time.Now().Add(auth.RefreshTokenTTL), session.RefreshTokenExpiresAt, time.Minute)
		})
	}
}

/*
TestLoginStoresHashedSession verifies the raw refresh token never becomes a
storage key.
*/
func TestLoginStoresHashedSession(t *testing.T) {
	fixture := newServiceFixture(t)
	account := fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:     "editor",
		Password:  "correct horse",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
	})
	require.NoError(t, err)

	_, rawKeyPresent := fixture.sessions.sessions[session.RefreshToken]
	assert.False(t, rawKeyPresent)

	stored, ok := fixture.sessions.sessions[sec.HashToken(session.RefreshToken)]
	require.True(t, ok)
	assert.Equal(t, account.ID, stored.UserID)
	assert.Equal(t, "test-agent", stored.UserAgent)
	assert.Equal(t, "127.0.0.1", stored.IPAddress)
}

/*
TestLogout verifies revocation and its idempotency.
*/
func TestLogout(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "editor",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
	assert.Empty(t, fixture.sessions.sessions)

	// Logging out an already-dead session still succeeds.
	assert.NoError(t, fixture.service.Logout(context.Background(), session.RefreshToken))
}

// # Session Rotation

/*
TestRefreshSessionRotation verifies the old refresh token dies the moment a
replacement is issued.
*/
func TestRefreshSessionRotation(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	first, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "editor",
		Password: "correct horse",
	})
	require.NoError(t, err)

	second, err := fixture.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Replaying the rotated-out token must fail.
	_, err = fixture.service.RefreshSession(context.Background(), first.RefreshToken, "", "")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)

	// The rotated token still works.
	_, err = fixture.service.RefreshSession(context.Background(), second.RefreshToken, "", "")
	assert.NoError(t, err)
}

/*
TestRefreshSessionUnknownToken verifies garbage tokens read as unauthorized.
*/
func TestRefreshSessionUnknownToken(t *testing.T) {
	fixture := newServiceFixture(t)

	_, err := fixture.service.RefreshSession(context.Background(), "never-issued", "", "")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

// # Password Management

/*
TestChangePassword verifies the hash is replaced and every session revoked.
*/
func TestChangePassword(t *testing.T) {
	fixture := newServiceFixture(t)
	account := fixture.seedAccount(t, "editor", "editor@miigaik.ru", "old password", sec.RoleEditor)

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "editor",
		Password: "old password",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.ChangePassword(context.Background(), account.ID, "old password", "new password"))

	// All sessions gone, old password dead, new one live.
	assert.Empty(t, fixture.sessions.sessions)
	assert.False(t, sec.CheckPasswordHash("old password", account.PasswordHash))
	assert.True(t, sec.CheckPasswordHash("new password", account.PasswordHash))
}

/*
TestChangePasswordWrongCurrent verifies the current password gate.
*/
func TestChangePasswordWrongCurrent(t *testing.T) {
	fixture := newServiceFixture(t)
	account := fixture.seedAccount(t, "editor", "editor@miigaik.ru", "old password", sec.RoleEditor)

	err := fixture.service.ChangePassword(context.Background(), account.ID, "not the password", "new password")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
	assert.True(t, sec.CheckPasswordHash("old password", account.PasswordHash))
}

// # Account Administration

/*
TestCreateAccount verifies enrollment and identity conflict detection.
*/
func TestCreateAccount(t *testing.T) {
	fixture := newServiceFixture(t)
	fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	t.Run("success", func(t *testing.T) {
		account, err := fixture.service.CreateAccount(context.Background(), auth.CreateAccountInput{
			Username:    "chief",
			Email:       "chief@miigaik.ru",
			Password:    "editor in chief",
			DisplayName: "Editor-in-Chief",
			Role:        sec.RoleAdmin,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, account.ID)
		assert.Equal(t, sec.RoleAdmin, account.Role)
		assert.True(t, sec.CheckPasswordHash("editor in chief", account.PasswordHash))
	})

	t.Run("duplicate_email", func(t *testing.T) {
		_, err := fixture.service.CreateAccount(context.Background(), auth.CreateAccountInput{
			Username: "another",
			Email:    "editor@miigaik.ru",
			Password: "irrelevant",
			Role:     sec.RoleEditor,
		})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		_, err := fixture.service.CreateAccount(context.Background(), auth.CreateAccountInput{
			Username: "editor",
			Email:    "fresh@miigaik.ru",
			Password: "irrelevant",
			Role:     sec.RoleEditor,
		})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "CONFLICT", appErr.Code)
	})
}

/*
TestDeleteAccount verifies the account and all its sessions disappear together.
*/
func TestDeleteAccount(t *testing.T) {
	fixture := newServiceFixture(t)
	account := fixture.seedAccount(t, "editor", "editor@miigaik.ru", "correct horse", sec.RoleEditor)

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "editor",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.DeleteAccount(context.Background(), account.ID))

	assert.Empty(t, fixture.accounts.accounts)
	assert.Empty(t, fixture.sessions.sessions)
}
