// Package entries stores the plaintext-indexed activity records. Category
// and date are real columns with secondary indices, so equality queries run
// in the store rather than over decrypted data.
package entries

import (
	"context"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
)

type Repository interface {
	// Add inserts a record and returns the store-assigned id.
	Add(ctx context.Context, e *models.Entry) (int64, error)

	// GetByID returns a single record or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Entry, error)

	GetAll(ctx context.Context) ([]models.Entry, error)

	// ByDate and ByCategory are equality lookups on the declared indices.
	// Result order is unspecified.
	ByDate(ctx context.Context, date string) ([]models.Entry, error)
	ByCategory(ctx context.Context, category string) ([]models.Entry, error)
	ByDateAndCategory(ctx context.Context, date, category string) ([]models.Entry, error)

	// Update replaces the record with e.ID. common.ErrNotFound if absent.
	Update(ctx context.Context, e *models.Entry) error

	Clear(ctx context.Context) error
}
