package goals

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

const goalColumns = `id, title, category, target, current, unit, deadline, status, created_at, created_offline`

func (r *SQLiteRepository) Add(ctx context.Context, g *models.Goal) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (title, category, target, current, unit, deadline, status, created_at, created_offline)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.Title, g.Category, g.Target, g.Current, g.Unit, g.Deadline, string(g.Status),
		g.CreatedAt.UTC().Format(time.RFC3339Nano), g.CreatedOffline)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert goal: %v", common.ErrStorageUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get inserted goal id: %v", common.ErrStorageUnavailable, err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)

	g, err := scanGoal(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: goal %d", common.ErrNotFound, id)
	}
	if errors.Is(err, common.ErrDeserialization) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get goal %d: %v", common.ErrStorageUnavailable, id, err)
	}
	return g, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Goal, error) {
	return r.query(ctx, `SELECT `+goalColumns+` FROM goals`)
}

func (r *SQLiteRepository) ByCategory(ctx context.Context, category string) ([]models.Goal, error) {
	return r.query(ctx, `SELECT `+goalColumns+` FROM goals WHERE category = ?`, category)
}

func (r *SQLiteRepository) ByStatus(ctx context.Context, status models.GoalStatus) ([]models.Goal, error) {
	return r.query(ctx, `SELECT `+goalColumns+` FROM goals WHERE status = ?`, string(status))
}

func (r *SQLiteRepository) Update(ctx context.Context, g *models.Goal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goals
		SET title = ?, category = ?, target = ?, current = ?, unit = ?, deadline = ?, status = ?, created_at = ?, created_offline = ?
		WHERE id = ?
	`, g.Title, g.Category, g.Target, g.Current, g.Unit, g.Deadline, string(g.Status),
		g.CreatedAt.UTC().Format(time.RFC3339Nano), g.CreatedOffline, g.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to update goal %d: %v", common.ErrStorageUnavailable, g.ID, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to get rows affected: %v", common.ErrStorageUnavailable, err)
	}
	if ra == 0 {
		return fmt.Errorf("%w: goal %d", common.ErrNotFound, g.ID)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("%w: failed to clear goals: %v", common.ErrStorageUnavailable, err)
	}
	// Reset the id sequence so imported records renumber from 1.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sqlite_sequence WHERE name = 'goals'`); err != nil {
		return fmt.Errorf("%w: failed to reset goals sequence: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select goals: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows.Scan)
		if errors.Is(err, common.ErrDeserialization) {
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan goal: %v", common.ErrStorageUnavailable, err)
		}
		result = append(result, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate goals: %v", common.ErrStorageUnavailable, err)
	}
	return result, nil
}

func scanGoal(scan func(dest ...any) error) (*models.Goal, error) {
	g := &models.Goal{}
	var status, createdAt string
	if err := scan(&g.ID, &g.Title, &g.Category, &g.Target, &g.Current, &g.Unit,
		&g.Deadline, &status, &createdAt, &g.CreatedOffline); err != nil {
		return nil, err
	}
	g.Status = models.GoalStatus(status)
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad created_at %q: %v", common.ErrDeserialization, createdAt, err)
	}
	g.CreatedAt = parsed
	return g, nil
}
