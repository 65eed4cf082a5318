package singletons

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifetrack/internal/common"
	"github.com/dmitrijs2005/lifetrack/internal/cryptox"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE singletons (
  name TEXT PRIMARY KEY,
  ciphertext BLOB NOT NULL,
  nonce BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_AbsentReturnsNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	blob, err := r.Get(context.Background(), StoreUser)
	require.NoError(t, err)
	assert.Nil(t, blob)
}

func TestPutGet_RoundTripAndReplace(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	b1 := &cryptox.Blob{Ciphertext: []byte("ct1"), Nonce: []byte("n1")}
	require.NoError(t, r.Put(ctx, StoreSettings, b1))

	got, err := r.Get(ctx, StoreSettings)
	require.NoError(t, err)
	assert.Equal(t, b1, got)

	// whole-value replace
	b2 := &cryptox.Blob{Ciphertext: []byte("ct2"), Nonce: []byte("n2")}
	require.NoError(t, r.Put(ctx, StoreSettings, b2))

	got, err = r.Get(ctx, StoreSettings)
	require.NoError(t, err)
	assert.Equal(t, b2, got)
}

func TestPut_NilBlob(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	err := r.Put(context.Background(), StoreUser, nil)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestDeleteAndClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, StoreUser, &cryptox.Blob{Ciphertext: []byte("a"), Nonce: []byte("b")}))
	require.NoError(t, r.Put(ctx, StoreSettings, &cryptox.Blob{Ciphertext: []byte("c"), Nonce: []byte("d")}))

	require.NoError(t, r.Delete(ctx, StoreUser))
	blob, err := r.Get(ctx, StoreUser)
	require.NoError(t, err)
	assert.Nil(t, blob)

	require.NoError(t, r.Clear(ctx))
	blob, err = r.Get(ctx, StoreSettings)
	require.NoError(t, err)
	assert.Nil(t, blob)
}
