package db

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// RequiredTables are the tables a usable portfolio database must contain.
var RequiredTables = []string{"profile", "skills", "projects", "messages"}

// VerifyBackup opens the database at path and checks that every required
// table exists.
func VerifyBackup(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}

	// the file: prefix keeps New from switching the copy to WAL
	d, err := New(ctx, "file:"+path)
	if err != nil {
		return err
	}
	defer d.Close()

	for _, table := range RequiredTables {
		var n int
		err := d.QueryRow(ctx, `SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		if err != nil {
			return fmt.Errorf("inspect backup: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("backup %s is missing table %s", path, table)
		}
	}
	return nil
}

// Restore verifies src and copies it over dst. The copy goes to a temporary
// file in dst's directory first, so dst is either the old or the new database.
// The server must not be running against dst.
func Restore(ctx context.Context, src, dst string) error {
	if err := VerifyBackup(ctx, src); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".restore-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return fmt.Errorf("copy backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// WAL sidecars belong to the database being replaced.
	for _, suffix := range []string{"-wal", "-shm"} {
		if err := os.Remove(dst + suffix); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", dst+suffix, err)
		}
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("replace database: %w", err)
	}
	return nil
}
