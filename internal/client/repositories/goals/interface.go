// Package goals stores the plaintext-indexed goal records, queryable by
// category and status.
package goals

import (
	"context"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
)

type Repository interface {
	// Add inserts a record and returns the store-assigned id.
	Add(ctx context.Context, g *models.Goal) (int64, error)

	// GetByID returns a single record or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Goal, error)

	GetAll(ctx context.Context) ([]models.Goal, error)

	// ByCategory and ByStatus are equality lookups on the declared indices.
	// Result order is unspecified.
	ByCategory(ctx context.Context, category string) ([]models.Goal, error)
	ByStatus(ctx context.Context, status models.GoalStatus) ([]models.Goal, error)

	// Update replaces the record with g.ID. common.ErrNotFound if absent.
	Update(ctx context.Context, g *models.Goal) error

	Clear(ctx context.Context) error
}
