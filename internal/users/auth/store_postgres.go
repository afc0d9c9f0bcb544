// Copyright (c) 2026 Vestnik MIIGAiK. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	"github.com/miigaik/vestnik/internal/platform/database/schema"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

func accountColumns() string {
	t := schema.UsersAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.Role,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanAccount(row interface{ Scan(dest ...any) error }) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.DisplayName, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)
	return account, err
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), t.Table, t.ID)

	account, err := scanAccount(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_find_by_id_failed: %w", err)
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), t.Table, t.Email)

	account, err := scanAccount(repository.pool.QueryRow(context, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_find_by_email_failed: %w", err)
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, accountColumns(), t.Table, t.Username)

	account, err := scanAccount(repository.pool.QueryRow(context, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Account")
		}
		return nil, fmt.Errorf("postgres_account_find_by_username_failed: %w", err)
	}
	return account, nil
}

func (repository *PostgresAccountRepository) List(context context.Context) ([]*Account, error) {
	t := schema.UsersAccount
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, accountColumns(), t.Table, t.Username)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_account_list_failed: %w", err)
	}
	defer rows.Close()

	var accounts []*Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_account_scan_failed: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, nil
}

func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		t.Table, t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.Role,
		t.CreatedAt, t.UpdatedAt,
	)

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		account.ID, account.Username, account.Email, account.PasswordHash,
		account.DisplayName, account.Role, account.CreatedAt, account.UpdatedAt,
	)

	// Unique violations on username/email surface as a conflict.
	if err != nil {
		return dberr.Wrap(err, "create_account")
	}

	return nil
}

func (repository *PostgresAccountRepository) Update(context context.Context, account *Account) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		t.Table, t.Username, t.Email, t.DisplayName, t.Role, t.UpdatedAt, t.ID,
	)

	account.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		account.ID, account.Username, account.Email, account.DisplayName,
		account.Role, account.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_account")
	}

	return nil
}

func (repository *PostgresAccountRepository) UpdatePassword(context context.Context, accountID, newHash string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		t.Table, t.PasswordHash, t.UpdatedAt, t.ID,
	)

	_, err := repository.pool.Exec(context, query, accountID, newHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_update_password_failed: %w", err)
	}

	return nil
}

func (repository *PostgresAccountRepository) Delete(context context.Context, id string) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_account_delete_failed: %w", err)
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Account")
	}
	return nil
}
