package article

import (
	"context"
	"fmt"
	"strconv"

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

func articleColumns() string {
	t := schema.JournalArticle
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.IssueID, t.Title, t.Authors, t.Abstract, t.Keywords, t.Rubric,
		t.DOI, t.PDFPath, t.PageStart, t.PageEnd, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	)
}

func scanArticle(row interface{ Scan(dest ...any) error }) (*Article, error) {
	a := &Article{}
	err := row.Scan(
		&a.ID, &a.IssueID, &a.Title, &a.Authors, &a.Abstract, &a.Keywords, &a.Rubric,
		&a.DOI, &a.PDFPath, &a.PageStart, &a.PageEnd, &a.IsPublished, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// buildWhere renders the filter into a WHERE clause with positional args.
func buildWhere(f Filter) (string, []any) {
	t := schema.JournalArticle

	clause := "WHERE true"
	args := []any{}

	if f.PublishedOnly {
		clause += fmt.Sprintf(" AND %s", t.IsPublished)
	}
	if f.IssueID != 0 {
		args = append(args, f.IssueID)
		clause += fmt.Sprintf(" AND %s = $%d", t.IssueID, len(args))
	}
	if len(f.Rubrics) > 0 {
		args = append(args, f.Rubrics)
		clause += fmt.Sprintf(" AND %s = ANY($%d)", t.Rubric, len(args))
	}

	return clause, args
}

func (repository *PostgresRepository) ListArticles(context context.Context, f Filter, limit, offset int) ([]*Article, int, error) {
	t := schema.JournalArticle
	where, args := buildWhere(f)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s`, t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	// Within a single issue, page order is the journal's own ordering;
	// global listings surface the newest work first.
	orderBy := fmt.Sprintf("%s DESC", t.CreatedAt)
	if f.IssueID != 0 {
		orderBy = fmt.Sprintf("%s ASC", t.PageStart)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s LIMIT $%s OFFSET $%s`,
		articleColumns(), t.Table, where, orderBy,
		strconv.Itoa(len(args)+1), strconv.Itoa(len(args)+2),
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, total, nil
}

func (repository *PostgresRepository) RecentPublished(context context.Context, limit int) ([]*Article, error) {
	t := schema.JournalArticle
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT $1
	`, articleColumns(), t.Table, t.IsPublished, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "recent_published")
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}

	return articles, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int) (*Article, error) {
	t := schema.JournalArticle
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, articleColumns(), t.Table, t.ID)

	a, err := scanArticle(repository.db.QueryRow(context, query, id))
	return a, dberr.Wrap(err, "get_article")
}

func (repository *PostgresRepository) CreateArticle(context context.Context, a *Article) error {
	t := schema.JournalArticle
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.IssueID, t.Title, t.Authors, t.Abstract, t.Keywords, t.Rubric,
		t.DOI, t.PDFPath, t.PageStart, t.PageEnd, t.IsPublished, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.IssueID, a.Title, a.Authors, a.Abstract, a.Keywords, a.Rubric,
		a.DOI, a.PDFPath, a.PageStart, a.PageEnd, a.IsPublished,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_article")
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, a *Article) error {
	t := schema.JournalArticle
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.IssueID, t.Title, t.Authors, t.Abstract, t.Keywords, t.Rubric,
		t.DOI, t.PDFPath, t.PageStart, t.PageEnd, t.IsPublished, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.IssueID, a.Title, a.Authors, a.Abstract, a.Keywords, a.Rubric,
		a.DOI, a.PDFPath, a.PageStart, a.PageEnd, a.IsPublished,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_article")
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id int) error {
	t := schema.JournalArticle
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
