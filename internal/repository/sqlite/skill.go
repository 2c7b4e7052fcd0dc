package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/garnizeh/folio/pkg/models"
)

func (r *SQLiteRepo) ListSkills(ctx context.Context) ([]models.Skill, error) {
	query, args, err := sqlb.
		Select("id", "name", "category", "proficiency").
		From("skills").
		OrderBy("proficiency DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build list skills: %w", err)
	}

	skills := make([]models.Skill, 0)
	err = r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		return c.SelectContext(ctx, &skills, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: list skills: %w", err)
	}

	return skills, nil
}

func (r *SQLiteRepo) CreateSkill(ctx context.Context, s *models.Skill) (int64, error) {
	if s == nil {
		return 0, fmt.Errorf("skill is nil")
	}

	query, args, err := sqlb.
		Insert("skills").
		Columns("name", "category", "proficiency").
		Values(s.Name, s.Category, s.Proficiency).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("sqlite: build create skill: %w", err)
	}

	id, err := r.insert(ctx, query, args)
	if err != nil {
		return 0, fmt.Errorf("sqlite: create skill: %w", err)
	}

	return id, nil
}

func (r *SQLiteRepo) DeleteSkill(ctx context.Context, id int64) error {
	if err := r.deleteByID(ctx, "skills", id); err != nil {
		return fmt.Errorf("sqlite: delete skill: %w", err)
	}
	return nil
}

func (r *SQLiteRepo) insert(ctx context.Context, query string, args []any) (int64, error) {
	var id int64
	err := r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		res, err := c.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// insertStamped takes the write lock before reading the clock, so created_at
// never decreases as ids increase.
func (r *SQLiteRepo) insertStamped(ctx context.Context, build func(now models.Timestamp) sq.InsertBuilder) (int64, error) {
	var id int64
	err := r.conn.WithWriteLock(ctx, func(c *sqlx.Conn) error {
		query, args, err := build(models.Now()).ToSql()
		if err != nil {
			return err
		}
		res, err := c.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	return id, err
}

// deleteByID removes the row if present. A missing row is not an error.
func (r *SQLiteRepo) deleteByID(ctx context.Context, table string, id int64) error {
	query, args, err := sqlb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	return r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		res, err := c.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			r.logger.Debug("delete matched no row", "table", table, "id", id)
		}
		return nil
	})
}
