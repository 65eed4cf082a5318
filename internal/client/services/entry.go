package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// timeNow is a test seam.
var timeNow = time.Now

// EntryService is the collection surface for activity records. Queries run
// on plaintext index columns and need no key; mutations require a live
// session, since only an authenticated user may change the store.
type EntryService interface {
	// Add validates and inserts an entry, returning the store-assigned id.
	// A zero Timestamp is set to the current time.
	Add(ctx context.Context, e *models.Entry, s *Session) (int64, error)

	ByDate(ctx context.Context, date string) ([]models.Entry, error)
	ByCategory(ctx context.Context, category string) ([]models.Entry, error)
	ByDateAndCategory(ctx context.Context, date, category string) ([]models.Entry, error)
	All(ctx context.Context) ([]models.Entry, error)

	// Update applies mutator to exactly one record inside a transaction:
	// the record is re-read within the transaction, mutated, validated,
	// and written back, so concurrent updates cannot be lost.
	Update(ctx context.Context, id int64, s *Session, mutator func(e *models.Entry) error) error
}

type entryService struct {
	db *sql.DB
}

// NewEntryService constructs an EntryService over the given database.
func NewEntryService(db *sql.DB) EntryService {
	return &entryService{db: db}
}

func (es *entryService) repo(db dbx.DBTX) entries.Repository {
	return entries.NewSQLiteRepository(db)
}

func (es *entryService) Add(ctx context.Context, e *models.Entry, s *Session) (int64, error) {
	if _, err := s.Key(); err != nil {
		return 0, err
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = timeNow().UTC()
	}
	if err := e.Validate(); err != nil {
		return 0, err
	}
	return es.repo(es.db).Add(ctx, e)
}

func (es *entryService) ByDate(ctx context.Context, date string) ([]models.Entry, error) {
	return es.repo(es.db).ByDate(ctx, date)
}

func (es *entryService) ByCategory(ctx context.Context, category string) ([]models.Entry, error) {
	return es.repo(es.db).ByCategory(ctx, category)
}

func (es *entryService) ByDateAndCategory(ctx context.Context, date, category string) ([]models.Entry, error) {
	return es.repo(es.db).ByDateAndCategory(ctx, date, category)
}

func (es *entryService) All(ctx context.Context) ([]models.Entry, error) {
	return es.repo(es.db).GetAll(ctx)
}

func (es *entryService) Update(ctx context.Context, id int64, s *Session, mutator func(e *models.Entry) error) error {
	if _, err := s.Key(); err != nil {
		return err
	}
	return dbx.WithTx(ctx, es.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := es.repo(tx)
		e, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := mutator(e); err != nil {
			return err
		}
		e.ID = id
		if err := e.Validate(); err != nil {
			return err
		}
		return repo.Update(ctx, e)
	})
}
