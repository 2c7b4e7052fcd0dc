package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/garnizeh/folio/pkg/models"
)

func (r *SQLiteRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	query, args, err := sqlb.
		Select("id", "name", "email", "message", "created_at").
		From("messages").
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build list messages: %w", err)
	}

	messages := make([]models.Message, 0)
	err = r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		return c.SelectContext(ctx, &messages, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: list messages: %w", err)
	}

	return messages, nil
}

func (r *SQLiteRepo) CreateMessage(ctx context.Context, m *models.Message) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("message is nil")
	}

	id, err := r.insertStamped(ctx, func(now models.Timestamp) sq.InsertBuilder {
		return sqlb.
			Insert("messages").
			Columns("name", "email", "message", "created_at").
			Values(m.Name, m.Email, m.Message, now)
	})
	if err != nil {
		return 0, fmt.Errorf("sqlite: create message: %w", err)
	}

	return id, nil
}

func (r *SQLiteRepo) DeleteMessage(ctx context.Context, id int64) error {
	if err := r.deleteByID(ctx, "messages", id); err != nil {
		return fmt.Errorf("sqlite: delete message: %w", err)
	}
	return nil
}
