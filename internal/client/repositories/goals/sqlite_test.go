package goals

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
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

func newGoal(title, category string, target float64, status models.GoalStatus) *models.Goal {
	return &models.Goal{
		Title:     title,
		Category:  category,
		Target:    target,
		Unit:      "u",
		Deadline:  "2030-12-31",
		Status:    status,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAddGet_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := newGoal("run 100km", "exercise", 100, models.GoalStatusActive)
	in.Current = 12.5
	id, err := r.Add(ctx, in)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "run 100km", got.Title)
	assert.Equal(t, 12.5, got.Current)
	assert.Equal(t, models.GoalStatusActive, got.Status)
	assert.Equal(t, in.CreatedAt, got.CreatedAt)

	_, err = r.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestQueriesByIndex(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Add(ctx, newGoal("a", "water", 10, models.GoalStatusActive))
	require.NoError(t, err)
	_, err = r.Add(ctx, newGoal("b", "exercise", 20, models.GoalStatusActive))
	require.NoError(t, err)
	_, err = r.Add(ctx, newGoal("c", "exercise", 30, models.GoalStatusCompleted))
	require.NoError(t, err)

	byCat, err := r.ByCategory(ctx, "exercise")
	require.NoError(t, err)
	assert.Len(t, byCat, 2)

	active, err := r.ByStatus(ctx, models.GoalStatusActive)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	completed, err := r.ByStatus(ctx, models.GoalStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "c", completed[0].Title)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdate(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	id, err := r.Add(ctx, newGoal("a", "water", 10, models.GoalStatusActive))
	require.NoError(t, err)

	g, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	g.Current = 10
	g.Status = models.GoalStatusCompleted
	require.NoError(t, r.Update(ctx, g))

	got, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.Current)
	assert.Equal(t, models.GoalStatusCompleted, got.Status)

	missing := newGoal("x", "water", 1, models.GoalStatusActive)
	missing.ID = id + 100
	assert.ErrorIs(t, r.Update(ctx, missing), common.ErrNotFound)
}

func TestClear_ResetsIDSequence(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	_, err := r.Add(ctx, newGoal("a", "water", 10, models.GoalStatusActive))
	require.NoError(t, err)

	require.NoError(t, r.Clear(ctx))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	id, err := r.Add(ctx, newGoal("b", "water", 10, models.GoalStatusActive))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id, "sequence restarts after clear")
}

func TestCorruptCreatedAt_IsDeserializationError(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO goals (title, category, target, current, unit, deadline, status, created_at, created_offline)
		VALUES ('a', 'water', 10, 0, 'l', '2030-12-31', 'active', 'not-a-timestamp', 0)
	`)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDeserialization)

	_, err = r.GetAll(ctx)
	assert.ErrorIs(t, err, common.ErrDeserialization)
}
