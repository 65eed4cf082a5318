package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func TestInitDatabase_CreatesSchema(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "tracker.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"metadata", "singletons", "entries", "goals"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoErrorf(t, err, "table %s must exist", table)
	}
}

func TestInitDatabase_Idempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "tracker.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening an already-migrated database must succeed.
	db, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
