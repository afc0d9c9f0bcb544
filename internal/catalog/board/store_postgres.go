package board

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

func memberColumns() string {
	t := schema.JournalBoardMember
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Position, t.Institution, t.Bio, t.PhotoPath,
		t.DisplayOrder, t.CreatedAt, t.UpdatedAt,
	)
}

func scanMember(row interface{ Scan(dest ...any) error }) (*Member, error) {
	m := &Member{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Position, &m.Institution, &m.Bio, &m.PhotoPath,
		&m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (repository *PostgresRepository) ListMembers(context context.Context) ([]*Member, error) {
	t := schema.JournalBoardMember
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
	`, memberColumns(), t.Table, t.DisplayOrder, t.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_board_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_board_member")
		}
		members = append(members, m)
	}

	return members, nil
}

func (repository *PostgresRepository) GetMember(context context.Context, id int) (*Member, error) {
	t := schema.JournalBoardMember
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, memberColumns(), t.Table, t.ID)

	m, err := scanMember(repository.db.QueryRow(context, query, id))
	return m, dberr.Wrap(err, "get_board_member")
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	t := schema.JournalBoardMember
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Position, t.Institution, t.Bio, t.PhotoPath,
		t.DisplayOrder, t.CreatedAt, t.UpdatedAt,
		t.ID, t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.Name, m.Position, m.Institution, m.Bio, m.PhotoPath, m.DisplayOrder,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_board_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	t := schema.JournalBoardMember
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Name, t.Position, t.Institution, t.Bio, t.PhotoPath,
		t.DisplayOrder, t.UpdatedAt,
		t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Name, m.Position, m.Institution, m.Bio, m.PhotoPath, m.DisplayOrder,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_board_member")
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id int) error {
	t := schema.JournalBoardMember
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_board_member")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
