package issue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miigaik/vestnik/internal/platform/database/schema"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// issueColumns is the SELECT list shared by every read query.
func issueColumns() string {
	t := schema.JournalIssue
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Year, t.Volume, t.Number, t.PublicationDate, t.IsCurrent,
		t.CoverPath, t.FullPDFPath, t.ArchiveRangeID, t.CreatedAt, t.UpdatedAt,
	)
}

func scanIssue(row interface{ Scan(dest ...any) error }) (*Issue, error) {
	i := &Issue{}
	err := row.Scan(
		&i.ID, &i.Year, &i.Volume, &i.Number, &i.PublicationDate, &i.IsCurrent,
		&i.CoverPath, &i.FullPDFPath, &i.ArchiveRangeID, &i.CreatedAt, &i.UpdatedAt,
	)
	return i, err
}

func (repository *PostgresRepository) ListIssues(context context.Context, limit, offset int) ([]*Issue, int, error) {
	t := schema.JournalIssue

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_issues")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2
	`, issueColumns(), t.Table, t.Year, t.Number)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_issues")
	}
	defer rows.Close()

	var issues []*Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_issue")
		}
		issues = append(issues, i)
	}

	return issues, total, nil
}

func (repository *PostgresRepository) GetIssue(context context.Context, id int) (*Issue, error) {
	t := schema.JournalIssue
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, issueColumns(), t.Table, t.ID)

	i, err := scanIssue(repository.db.QueryRow(context, query, id))
	return i, dberr.Wrap(err, "get_issue")
}

func (repository *PostgresRepository) CurrentIssue(context context.Context) (*Issue, error) {
	t := schema.JournalIssue

	// Deterministic even if legacy data left several rows flagged: the most
	// recent (year, number) wins.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC, %s DESC
		LIMIT 1
	`, issueColumns(), t.Table, t.IsCurrent, t.Year, t.Number)

	i, err := scanIssue(repository.db.QueryRow(context, query))
	return i, dberr.Wrap(err, "current_issue")
}

func (repository *PostgresRepository) CreateIssue(context context.Context, i *Issue) error {
	t := schema.JournalIssue
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Year, t.Volume, t.Number, t.PublicationDate, t.IsCurrent,
		t.CoverPath, t.FullPDFPath, t.ArchiveRangeID, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.Year, i.Volume, i.Number, i.PublicationDate, i.IsCurrent,
		i.CoverPath, i.FullPDFPath, i.ArchiveRangeID,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	return dberr.Wrap(err, "create_issue")
}

func (repository *PostgresRepository) UpdateIssue(context context.Context, i *Issue) error {
	t := schema.JournalIssue
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Year, t.Volume, t.Number, t.PublicationDate,
		t.CoverPath, t.FullPDFPath, t.ArchiveRangeID, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		i.ID, i.Year, i.Volume, i.Number, i.PublicationDate,
		i.CoverPath, i.FullPDFPath, i.ArchiveRangeID,
	).Scan(&i.UpdatedAt)
	return dberr.Wrap(err, "update_issue")
}

func (repository *PostgresRepository) DeleteIssue(context context.Context, id int) error {
	t := schema.JournalIssue

	// Articles cascade at the schema level (an article cannot outlive its issue).
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_issue")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) SetCurrent(context context.Context, id int) error {
	t := schema.JournalIssue

	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "set_current_begin")
	}
	defer func() { _ = tx.Rollback(context) }()

	clearQuery := fmt.Sprintf(`UPDATE %s SET %s = false, %s = NOW() WHERE %s AND %s <> $1`,
		t.Table, t.IsCurrent, t.UpdatedAt, t.IsCurrent, t.ID,
	)
	if _, err := tx.Exec(context, clearQuery, id); err != nil {
		return dberr.Wrap(err, "set_current_clear")
	}

	setQuery := fmt.Sprintf(`UPDATE %s SET %s = true, %s = NOW() WHERE %s = $1`,
		t.Table, t.IsCurrent, t.UpdatedAt, t.ID,
	)
	cmd, err := tx.Exec(context, setQuery, id)
	if err != nil {
		return dberr.Wrap(err, "set_current_set")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := tx.Commit(context); err != nil {
		return dberr.Wrap(err, "set_current_commit")
	}
	return nil
}
