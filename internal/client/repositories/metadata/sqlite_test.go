package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_AbsentKeyReturnsNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), SaltKey)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetGet_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, SaltKey, []byte("00ff")))
	v, err := r.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("00ff"), v)

	// upsert replaces
	require.NoError(t, r.Set(ctx, SaltKey, []byte("aabb")))
	v, err = r.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("aabb"), v)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte("1")))
	require.NoError(t, r.Set(ctx, "b", []byte("2")))

	require.NoError(t, r.Delete(ctx, "a"))
	v, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Clear(ctx))
	v, err = r.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, v)
}
