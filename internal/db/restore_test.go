package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbfs "github.com/garnizeh/folio/db"
	dbpkg "github.com/garnizeh/folio/internal/db"
)

func TestBackupRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	livePath := filepath.Join(dir, "portfolio.db")
	bakPath := livePath + ".bak"

	live, err := dbpkg.New(ctx, livePath)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Initialize(ctx, live, dbfs.Migrations, dbfs.SeedFiles))
	require.NoError(t, live.Backup(ctx, bakPath))

	// diverge after the backup
	_, err = live.Exec(ctx, `DELETE FROM skills`)
	require.NoError(t, err)
	require.Equal(t, 0, countRows(t, live, "skills"))
	require.NoError(t, live.Close())

	require.NoError(t, dbpkg.VerifyBackup(ctx, bakPath))
	require.NoError(t, dbpkg.Restore(ctx, bakPath, livePath))

	restored, err := dbpkg.New(ctx, livePath)
	require.NoError(t, err)
	defer restored.Close()
	assert.Equal(t, 8, countRows(t, restored, "skills"))
	assert.Equal(t, 1, countRows(t, restored, "profile"))
}

func TestVerifyBackup_Rejects(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	assert.Error(t, dbpkg.VerifyBackup(ctx, filepath.Join(dir, "missing.db")))

	partial := filepath.Join(dir, "partial.db")
	d, err := dbpkg.New(ctx, partial)
	require.NoError(t, err)
	_, err = d.Exec(ctx, `CREATE TABLE profile (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	require.NoError(t, d.Close())

	assert.Error(t, dbpkg.VerifyBackup(ctx, partial))

	target := filepath.Join(dir, "target.db")
	assert.Error(t, dbpkg.Restore(ctx, partial, target))
}
