package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	// modernc registers as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// DB wraps the sqlx handle for connection management
type DB struct {
	conn   *sqlx.DB
	logger *slog.Logger
}

type options struct {
	logger       *slog.Logger
	busyTimeout  time.Duration
	maxOpenConns int
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBusyTimeout sets how long a connection waits on a locked database
// before failing with SQLITE_BUSY.
func WithBusyTimeout(d time.Duration) Option {
	return func(o *options) { o.busyTimeout = d }
}

// WithMaxOpenConns caps the pool. Zero means unlimited.
func WithMaxOpenConns(n int) Option {
	return func(o *options) { o.maxOpenConns = n }
}

// New opens the database at path. A plain file path gets busy_timeout and
// WAL pragmas; a "file:" URI is passed through with busy_timeout appended.
func New(ctx context.Context, path string, opts ...Option) (*DB, error) {
	o := options{
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		busyTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := sqlx.Open(driverName, buildDSN(path, o.busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if o.maxOpenConns > 0 {
		conn.SetMaxOpenConns(o.maxOpenConns)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return &DB{conn: conn, logger: o.logger}, nil
}

func buildDSN(path string, busy time.Duration) string {
	pragmas := []string{fmt.Sprintf("_pragma=busy_timeout(%d)", busy.Milliseconds())}

	dsn := path
	if !strings.HasPrefix(path, "file:") {
		dsn = "file:" + path
		if path != ":memory:" {
			pragmas = append(pragmas, "_pragma=journal_mode(WAL)")
		}
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&")
}

// Close closes the DB connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Exec executes a query
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// QueryRow executes a query that is expected to return at most one row
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// GetConn returns the underlying sqlx.DB
func (db *DB) GetConn() *sqlx.DB {
	return db.conn
}

// WithConn checks out a single connection for the duration of fn and returns
// it to the pool on every exit path, including a panic inside fn.
func (db *DB) WithConn(ctx context.Context, fn func(c *sqlx.Conn) error) error {
	c, err := db.conn.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if cerr := c.Close(); cerr != nil {
			db.logger.Warn("release connection", slog.Any("err", cerr))
		}
	}()

	return fn(c)
}

// WithTx runs fn inside a transaction, committing when fn returns nil.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rb := tx.Rollback(); rb != nil {
				db.logger.Warn("rollback failed", slog.Any("err", rb))
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// WithWriteLock runs fn on a single connection inside BEGIN IMMEDIATE, so the
// database write lock is already held when fn starts. Values fn computes
// (timestamps) are therefore ordered the same way as the rows it inserts.
func (db *DB) WithWriteLock(ctx context.Context, fn func(c *sqlx.Conn) error) error {
	return db.WithConn(ctx, func(c *sqlx.Conn) (err error) {
		if _, err = c.ExecContext(ctx, `BEGIN IMMEDIATE`); err != nil {
			return fmt.Errorf("begin immediate: %w", err)
		}
		defer func() {
			if err != nil {
				if _, rb := c.ExecContext(context.WithoutCancel(ctx), `ROLLBACK`); rb != nil {
					db.logger.Warn("rollback failed", slog.Any("err", rb))
				}
			}
		}()

		if err = fn(c); err != nil {
			return err
		}
		if _, err = c.ExecContext(ctx, `COMMIT`); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
		return nil
	})
}

// Backup writes a consistent copy of the database to dst using VACUUM INTO.
// dst must not exist.
func (db *DB) Backup(ctx context.Context, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("backup target %s already exists", dst)
	}
	if _, err := db.conn.ExecContext(ctx, `VACUUM INTO ?`, dst); err != nil {
		return fmt.Errorf("vacuum into %s: %w", dst, err)
	}
	return nil
}
