package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupDB opens an in-memory database with the full store schema. The pool
// is capped at one connection, mirroring production, so transactions
// serialize instead of hitting busy errors.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE singletons (
  name TEXT PRIMARY KEY,
  ciphertext BLOB NOT NULL,
  nonce BLOB NOT NULL
);
CREATE TABLE entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category TEXT NOT NULL,
  entry_date TEXT NOT NULL,
  value REAL NOT NULL,
  unit TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  timestamp TEXT NOT NULL,
  created_offline INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX idx_entries_date ON entries (entry_date);
CREATE INDEX idx_entries_category ON entries (category);
CREATE TABLE goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  target REAL NOT NULL,
  current REAL NOT NULL DEFAULT 0,
  unit TEXT NOT NULL DEFAULT '',
  deadline TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'active',
  created_at TEXT NOT NULL,
  created_offline INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX idx_goals_category ON goals (category);
CREATE INDEX idx_goals_status ON goals (status);
`)
	require.NoError(t, err)

	return db
}

// testIterations keeps key derivation at the contract minimum so tests
// stay reasonably fast.
const testIterations = 100000
