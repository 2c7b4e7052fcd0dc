package sqlite

import (
	"io"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/garnizeh/folio/internal/db"
	"github.com/garnizeh/folio/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
// Every method checks out its own connection and releases it before returning.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.SkillRepo = (*SQLiteRepo)(nil)
var _ repository.ProjectRepo = (*SQLiteRepo)(nil)
var _ repository.MessageRepo = (*SQLiteRepo)(nil)
var _ repository.Store = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// SQLite takes "?" placeholders, which is squirrel's default.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)
