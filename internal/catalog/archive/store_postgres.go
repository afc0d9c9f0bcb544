package archive

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miigaik/vestnik/internal/catalog/issue"
	"github.com/miigaik/vestnik/internal/platform/database/schema"
	"github.com/miigaik/vestnik/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func rangeColumns() string {
	t := schema.JournalArchiveRange
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.StartYear, t.EndYear, t.Slug, t.Description, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanRange(row interface{ Scan(dest ...any) error }) (*Range, error) {
	r := &Range{}
	err := row.Scan(
		&r.ID, &r.StartYear, &r.EndYear, &r.Slug, &r.Description, &r.IsActive,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func (repository *PostgresRepository) ListRanges(context context.Context, activeOnly bool) ([]*Range, error) {
	t := schema.JournalArchiveRange

	where := ""
	if activeOnly {
		where = fmt.Sprintf("WHERE %s", t.IsActive)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s DESC, %s DESC
	`, rangeColumns(), t.Table, where, t.EndYear, t.StartYear)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_archive_ranges")
	}
	defer rows.Close()

	var ranges []*Range
	for rows.Next() {
		r, err := scanRange(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_archive_range")
		}
		ranges = append(ranges, r)
	}

	return ranges, nil
}

func (repository *PostgresRepository) GetRange(context context.Context, id int) (*Range, error) {
	t := schema.JournalArchiveRange
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, rangeColumns(), t.Table, t.ID)

	r, err := scanRange(repository.db.QueryRow(context, query, id))
	return r, dberr.Wrap(err, "get_archive_range")
}

func (repository *PostgresRepository) CreateRange(context context.Context, r *Range) error {
	t := schema.JournalArchiveRange
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.StartYear, t.EndYear, t.Slug, t.Description, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.StartYear, r.EndYear, r.Slug, r.Description, r.IsActive,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return dberr.Wrap(err, "create_archive_range")
}

func (repository *PostgresRepository) UpdateRange(context context.Context, r *Range) error {
	t := schema.JournalArchiveRange
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.StartYear, t.EndYear, t.Slug, t.Description, t.IsActive, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		r.ID, r.StartYear, r.EndYear, r.Slug, r.Description, r.IsActive,
	).Scan(&r.UpdatedAt)
	return dberr.Wrap(err, "update_archive_range")
}

func (repository *PostgresRepository) DeleteRange(context context.Context, id int) error {
	t := schema.JournalArchiveRange

	// Issues keep existing when their range goes away (FK is SET NULL).
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_archive_range")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) IssuesByYearSpan(context context.Context, start, end int) ([]*issue.Issue, error) {
	t := schema.JournalIssue
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s BETWEEN $1 AND $2
		ORDER BY %s DESC, %s DESC
	`,
		t.ID, t.Year, t.Volume, t.Number, t.PublicationDate, t.IsCurrent,
		t.CoverPath, t.FullPDFPath, t.ArchiveRangeID, t.CreatedAt, t.UpdatedAt,
		t.Table, t.Year, t.Year, t.Number,
	)

	rows, err := repository.db.Query(context, query, start, end)
	if err != nil {
		return nil, dberr.Wrap(err, "issues_by_year_span")
	}
	defer rows.Close()

	var issues []*issue.Issue
	for rows.Next() {
		i := &issue.Issue{}
		err := rows.Scan(
			&i.ID, &i.Year, &i.Volume, &i.Number, &i.PublicationDate, &i.IsCurrent,
			&i.CoverPath, &i.FullPDFPath, &i.ArchiveRangeID, &i.CreatedAt, &i.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_issue")
		}
		issues = append(issues, i)
	}

	return issues, nil
}
