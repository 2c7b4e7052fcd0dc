package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/garnizeh/folio/pkg/models"
)

// profileID is the only row the profile table ever holds.
const profileID = 1

func (r *SQLiteRepo) GetProfile(ctx context.Context) (*models.Profile, error) {
	query, args, err := sqlb.
		Select("id", "name", "title", "bio", "email", "github", "linkedin").
		From("profile").
		Where(sq.Eq{"id": profileID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sqlite: build get profile: %w", err)
	}

	var p models.Profile
	err = r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		return c.GetContext(ctx, &p, query, args...)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: get profile: %w", err)
	}

	return &p, nil
}

func (r *SQLiteRepo) UpdateProfile(ctx context.Context, p *models.Profile) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("profile is nil")
	}

	query, args, err := sqlb.
		Update("profile").
		Set("name", nullString(p.Name)).
		Set("title", nullString(p.Title)).
		Set("bio", nullString(p.Bio)).
		Set("email", nullString(p.Email)).
		Set("github", nullString(p.GitHub)).
		Set("linkedin", nullString(p.LinkedIn)).
		Where(sq.Eq{"id": profileID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("sqlite: build update profile: %w", err)
	}

	var n int64
	err = r.conn.WithConn(ctx, func(c *sqlx.Conn) error {
		res, err := c.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		n, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("sqlite: update profile: %w", err)
	}

	return n > 0, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
