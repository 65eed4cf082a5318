package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/common"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const entryColumns = `id, category, entry_date, value, unit, description, timestamp, created_offline`

func (r *SQLiteRepository) Add(ctx context.Context, e *models.Entry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (category, entry_date, value, unit, description, timestamp, created_offline)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.Category, e.Date, e.Value, e.Unit, e.Description,
		e.Timestamp.UTC().Format(time.RFC3339Nano), e.CreatedOffline)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert entry: %v", common.ErrStorageUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get inserted entry id: %v", common.ErrStorageUnavailable, err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)

	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: entry %d", common.ErrNotFound, id)
	}
	if errors.Is(err, common.ErrDeserialization) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get entry %d: %v", common.ErrStorageUnavailable, id, err)
	}
	return e, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Entry, error) {
	return r.query(ctx, `SELECT `+entryColumns+` FROM entries`)
}

func (r *SQLiteRepository) ByDate(ctx context.Context, date string) ([]models.Entry, error) {
	return r.query(ctx, `SELECT `+entryColumns+` FROM entries WHERE entry_date = ?`, date)
}

func (r *SQLiteRepository) ByCategory(ctx context.Context, category string) ([]models.Entry, error) {
	return r.query(ctx, `SELECT `+entryColumns+` FROM entries WHERE category = ?`, category)
}

func (r *SQLiteRepository) ByDateAndCategory(ctx context.Context, date, category string) ([]models.Entry, error) {
	return r.query(ctx,
		`SELECT `+entryColumns+` FROM entries WHERE entry_date = ? AND category = ?`, date, category)
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.Entry) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE entries
		SET category = ?, entry_date = ?, value = ?, unit = ?, description = ?, timestamp = ?, created_offline = ?
		WHERE id = ?
	`, e.Category, e.Date, e.Value, e.Unit, e.Description,
		e.Timestamp.UTC().Format(time.RFC3339Nano), e.CreatedOffline, e.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to update entry %d: %v", common.ErrStorageUnavailable, e.ID, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %v", common.ErrStorageUnavailable, err)
	}
	if ra == 0 {
		return fmt.Errorf("%w: entry %d", common.ErrNotFound, e.ID)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("%w: failed to clear entries: %v", common.ErrStorageUnavailable, err)
	}
	// Reset the id sequence so imported records renumber from 1.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'entries'`); err != nil {
		return fmt.Errorf("%w: failed to reset entries sequence: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select entries: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if errors.Is(err, common.ErrDeserialization) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan entry: %v", common.ErrStorageUnavailable, err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate entries: %v", common.ErrStorageUnavailable, err)
	}
	return result, nil
}

func scanEntry(scan func(dest ...any) error) (*models.Entry, error) {
	e := &models.Entry{}
	var ts string
	if err := scan(&e.ID, &e.Category, &e.Date, &e.Value, &e.Unit, &e.Description, &ts, &e.CreatedOffline); err != nil {
		return nil, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp %q: %v", common.ErrDeserialization, ts, err)
	}
	e.Timestamp = parsed
	return e, nil
}
