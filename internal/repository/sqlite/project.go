package sqlite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/garnizeh/folio/pkg/models"
)

func (r *SQLiteRepo) ListProjects(ctx context.Context) ([]models.Project, error) {
	query, args, err := sqlb.
		Select("id", "title", "description", "technologies", "github_link", "live_link", "created_at").
		From("projects").
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build list projects: %w", err)
	}

	projects := make([]models.Project, 0)
	err = r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		return c.SelectContext(ctx, &projects, query, args...)
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: list projects: %w", err)
	}

	return projects, nil
}

// CreateProject stamps created_at with the time the write lock was taken; any
// value already set on p is ignored.
func (r *SQLiteRepo) CreateProject(ctx context.Context, p *models.Project) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("project is nil")
	}

	id, err := r.insertStamped(ctx, func(now models.Timestamp) sq.InsertBuilder {
		return sqlb.
			Insert("projects").
			Columns("title", "description", "technologies", "github_link", "live_link", "created_at").
			Values(p.Title, p.Description, p.Technologies, p.GitHubLink, p.LiveLink, now)
	})
	if err != nil {
		return 0, fmt.Errorf("sqlite: create project: %w", err)
	}

	return id, nil
}

func (r *SQLiteRepo) DeleteProject(ctx context.Context, id int64) error {
	if err := r.deleteByID(ctx, "projects", id); err != nil {
		return fmt.Errorf("sqlite: delete project: %w", err)
	}
	return nil
}
