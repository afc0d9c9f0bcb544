package contact

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

func messageColumns() string {
	t := schema.JournalContactMessage
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Name, t.Phone, t.Email, t.Message, t.IsProcessed, t.CreatedAt,
	)
}

func scanMessage(row interface{ Scan(dest ...any) error }) (*Message, error) {
	m := &Message{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Phone, &m.Email, &m.Message, &m.IsProcessed, &m.CreatedAt,
	)
	return m, err
}

func (repository *PostgresRepository) ListMessages(context context.Context, unprocessedOnly bool, limit, offset int) ([]*Message, int, error) {
	t := schema.JournalContactMessage

	where := ""
	if unprocessedOnly {
		where = fmt.Sprintf("WHERE NOT %s", t.IsProcessed)
	}

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s`, t.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contact_messages")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		%s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`, messageColumns(), t.Table, where, t.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contact_messages")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact_message")
		}
		messages = append(messages, m)
	}

	return messages, total, nil
}

func (repository *PostgresRepository) GetMessage(context context.Context, id int) (*Message, error) {
	t := schema.JournalContactMessage
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, messageColumns(), t.Table, t.ID)

	m, err := scanMessage(repository.db.QueryRow(context, query, id))
	return m, dberr.Wrap(err, "get_contact_message")
}

func (repository *PostgresRepository) CreateMessage(context context.Context, m *Message) error {
	t := schema.JournalContactMessage
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, false, NOW())
		RETURNING %s, %s, %s
	`,
		t.Table, t.Name, t.Phone, t.Email, t.Message, t.IsProcessed, t.CreatedAt,
		t.ID, t.IsProcessed, t.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.Name, m.Phone, m.Email, m.Message,
	).Scan(&m.ID, &m.IsProcessed, &m.CreatedAt)
	return dberr.Wrap(err, "create_contact_message")
}

func (repository *PostgresRepository) SetProcessed(context context.Context, id int, processed bool) error {
	t := schema.JournalContactMessage
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		t.Table, t.IsProcessed, t.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, processed)
	if err != nil {
		return dberr.Wrap(err, "set_contact_message_processed")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteMessage(context context.Context, id int) error {
	t := schema.JournalContactMessage
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
