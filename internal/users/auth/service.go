// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/sec"
	"github.com/miigaik/vestnik/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements staff authentication use cases.
//
// Any changes to hashing, login, or session rotation logic here are
// security-sensitive and need careful review.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	accountRepo AccountRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login     string // Can be Username or Email
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established staff session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

/*
Login validates staff credentials and issues security tokens.

Description: Verifies identity, performs constant-time password comparison,
and initializes a new refresh session in Redis.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	// Flexible login: look up by Email or Username
	account, err := service.accountRepository.FindByEmail(context, input.Login)
	if err != nil {
		account, err = service.accountRepository.FindByUsername(context, input.Login)
	}

	// Generic message on unknown accounts to prevent enumeration.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.openSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("staff_login",
		slog.String("user_id", account.ID),
		slog.String("username", account.Username),
	)
	return session, nil
}

// openSession mints an access/refresh token pair and records the session.
func (service *Service) openSession(context context.Context, account *Account, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Username, string(account.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    account.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	if err := service.sessionRepository.Create(context, sec.HashToken(refreshToken), session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Account:               account,
	}, nil
}

/*
Logout permanently revokes the caller's refresh session.

Description: Deleting the Redis entry ensures the refresh token can never
be used again. Logging out an already-dead session succeeds (idempotent).

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if err := service.sessionRepository.Delete(context, sec.HashToken(refreshToken)); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	return nil
}

// # Session Management

/*
RefreshSession implements the Refresh Token Rotation mechanism.

Description: Verifies the existing refresh token, revokes it to prevent reuse
(replay attack mitigation), and issues a fresh pair of rotated tokens.

Parameters:
  - context: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: New session credentials
  - error: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: revoke the old session before minting a replacement.
	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	account, err := service.accountRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found or removed")
	}

	return service.openSession(context, account, userAgent, ipAddress)
}

/*
Me returns the account profile for an authenticated request.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - *Account: Hydrated profile
  - error: Resolution failures
*/
func (service *Service) Me(context context.Context, accountID string) (*Account, error) {
	return service.accountRepository.FindByID(context, accountID)
}

/*
ChangePassword allows an authenticated staff member to rotate their password.

Description: Verifies the current password, replaces the hash, and revokes
every refresh session so other devices must log in again.

Parameters:
  - context: context.Context
  - accountID: string
  - currentPassword: string
  - newPassword: string

Returns:
  - error: Unauthorized or storage failures
*/
func (service *Service) ChangePassword(context context.Context, accountID, currentPassword, newPassword string) error {
	account, err := service.accountRepository.FindByID(context, accountID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(currentPassword, account.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	if err := service.accountRepository.UpdatePassword(context, accountID, hashedPassword); err != nil {
		return fmt.Errorf("auth_service_change_password_update_failed: %w", err)
	}

	// Force re-login everywhere, including the session making this call.
	_ = service.sessionRepository.DeleteAllForUser(context, accountID)

	service.logger.Info("staff_password_changed", slog.String("user_id", accountID))
	return nil
}

// # Account Administration

// CreateAccountInput holds the data an administrator supplies for a new account.
type CreateAccountInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	Role        sec.UserRole
}

/*
CreateAccount enrolls a new staff member. Administrators only; there is no
self-registration path.

Parameters:
  - context: context.Context
  - input: CreateAccountInput

Returns:
  - *Account: Created entity
  - error: Conflict (if identity exists) or storage errors
*/
func (service *Service) CreateAccount(context context.Context, input CreateAccountInput) (*Account, error) {
	if _, err := service.accountRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.accountRepository.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Time-sortable ID to prevent PG index fragmentation.
	account := &Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         input.Role,
	}

	if err := service.accountRepository.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("staff_account_created",
		slog.String("user_id", account.ID),
		slog.String("username", account.Username),
		slog.String("role", string(account.Role)),
	)
	return account, nil
}

// ListAccounts returns every staff account for the admin screens.
func (service *Service) ListAccounts(context context.Context) ([]*Account, error) {
	return service.accountRepository.List(context)
}

/*
DeleteAccount removes a staff account and revokes its sessions.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - error: Deletion failures
*/
func (service *Service) DeleteAccount(context context.Context, accountID string) error {
	if err := service.accountRepository.Delete(context, accountID); err != nil {
		return err
	}

	_ = service.sessionRepository.DeleteAllForUser(context, accountID)

	service.logger.Warn("staff_account_deleted", slog.String("user_id", accountID))
	return nil
}
