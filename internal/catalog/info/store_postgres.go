package info

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miigaik/vestnik/internal/platform/database/schema"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

// singletonID is the only primary key the table accepts (CHECK constraint).
const singletonID = 1

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context) (*JournalInfo, error) {
	t := schema.JournalInfo
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		t.Title, t.Description, t.ISSNPrint, t.ISSNOnline, t.Publisher,
		t.LogoPath, t.MainImagePath, t.UpdatedAt,
		t.Table, t.ID,
	)

	ji := &JournalInfo{}
	err := repository.db.QueryRow(context, query, singletonID).Scan(
		&ji.Title, &ji.Description, &ji.ISSNPrint, &ji.ISSNOnline, &ji.Publisher,
		&ji.LogoPath, &ji.MainImagePath, &ji.UpdatedAt,
	)
	return ji, dberr.Wrap(err, "get_journal_info")
}

func (repository *PostgresRepository) Upsert(context context.Context, ji *JournalInfo) error {
	t := schema.JournalInfo
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s
	`,
		t.Table, t.ID, t.Title, t.Description, t.ISSNPrint, t.ISSNOnline,
		t.Publisher, t.LogoPath, t.MainImagePath, t.UpdatedAt,
		t.ID,
		t.Title, t.Title,
		t.Description, t.Description,
		t.ISSNPrint, t.ISSNPrint,
		t.ISSNOnline, t.ISSNOnline,
		t.Publisher, t.Publisher,
		t.LogoPath, t.LogoPath,
		t.MainImagePath, t.MainImagePath,
		t.UpdatedAt,
		t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		singletonID, ji.Title, ji.Description, ji.ISSNPrint, ji.ISSNOnline,
		ji.Publisher, ji.LogoPath, ji.MainImagePath,
	).Scan(&ji.UpdatedAt)
	return dberr.Wrap(err, "upsert_journal_info")
}
