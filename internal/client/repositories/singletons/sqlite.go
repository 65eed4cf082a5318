package singletons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifetrack/internal/common"
	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (*cryptox.Blob, error) {
	blob := &cryptox.Blob{}
	err := r.db.QueryRowContext(ctx,
		`SELECT ciphertext, nonce FROM singletons WHERE name = ?`, name,
	).Scan(&blob.Ciphertext, &blob.Nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get singleton[%s]: %v", common.ErrStorageUnavailable, name, err)
	}
	return blob, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, name string, blob *cryptox.Blob) error {
	if blob == nil {
		return fmt.Errorf("%w: nil blob for singleton[%s]", common.ErrInvalidInput, name)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO singletons (name, ciphertext, nonce) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET ciphertext = excluded.ciphertext, nonce = excluded.nonce
	`, name, blob.Ciphertext, blob.Nonce)
	if err != nil {
		return fmt.Errorf("%w: failed to put singleton[%s]: %v", common.ErrStorageUnavailable, name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM singletons WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("%w: failed to delete singleton[%s]: %v", common.ErrStorageUnavailable, name, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM singletons`)
	if err != nil {
		return fmt.Errorf("%w: failed to clear singletons: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}
