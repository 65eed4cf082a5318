package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/entries"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/goals"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/singletons"
	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// TransferService implements whole-database export, import, and wipe.
//
// Import and wipe are destructive. Each store is restored inside its own
// transaction: a crash mid-import leaves every store either fully-old or
// fully-new, but cross-store atomicity is not guaranteed - entries may
// import successfully while goals fail. Per-store failures are collected
// and joined, so callers can judge each store's outcome independently.
type TransferService interface {
	// Export decrypts both singleton stores and copies both collections
	// verbatim into one plaintext snapshot.
	Export(ctx context.Context, s *Session) (*models.Snapshot, error)

	// Import replaces the stores with the snapshot's content: singletons
	// are re-encrypted under the session key; collections are cleared and
	// re-inserted with freshly assigned ids.
	Import(ctx context.Context, snapshot *models.Snapshot, s *Session) error

	// Wipe irreversibly clears every store, including the account salt.
	// Confirmation is the caller's responsibility.
	Wipe(ctx context.Context) error
}

type transferService struct {
	db *sql.DB
}

// NewTransferService constructs a TransferService over the given database.
func NewTransferService(db *sql.DB) TransferService {
	return &transferService{db: db}
}

func (t *transferService) Export(ctx context.Context, s *Session) (*models.Snapshot, error) {
	key, err := s.Key()
	if err != nil {
		return nil, err
	}

	snapshot := &models.Snapshot{
		User:     []models.UserInfo{},
		Settings: []models.Settings{},
		Entries:  []models.Entry{},
		Goals:    []models.Goal{},
	}

	repo := singletons.NewSQLiteRepository(t.db)

	userBlob, err := repo.Get(ctx, singletons.StoreUser)
	if err != nil {
		return nil, err
	}
	if userBlob != nil {
		var user models.UserInfo
		if err := cryptox.Decrypt(userBlob, key, &user); err != nil {
			return nil, fmt.Errorf("export user: %w", err)
		}
		snapshot.User = append(snapshot.User, user)
	}

	settingsBlob, err := repo.Get(ctx, singletons.StoreSettings)
	if err != nil {
		return nil, err
	}
	if settingsBlob != nil {
		var settings models.Settings
		if err := cryptox.Decrypt(settingsBlob, key, &settings); err != nil {
			return nil, fmt.Errorf("export settings: %w", err)
		}
		snapshot.Settings = append(snapshot.Settings, settings)
	}

	if snapshot.Entries, err = entries.NewSQLiteRepository(t.db).GetAll(ctx); err != nil {
		return nil, err
	}
	if snapshot.Entries == nil {
		snapshot.Entries = []models.Entry{}
	}
	if snapshot.Goals, err = goals.NewSQLiteRepository(t.db).GetAll(ctx); err != nil {
		return nil, err
	}
	if snapshot.Goals == nil {
		snapshot.Goals = []models.Goal{}
	}

	return snapshot, nil
}

func (t *transferService) Import(ctx context.Context, snapshot *models.Snapshot, s *Session) error {
	if snapshot == nil {
		return errors.New("nil snapshot")
	}
	key, err := s.Key()
	if err != nil {
		return err
	}

	var errs []error

	// Singleton stores: re-encrypt the supplied plaintext under the
	// session key and replace, one store per transaction.
	if len(snapshot.User) > 0 {
		errs = append(errs, t.importSingleton(ctx, singletons.StoreUser, snapshot.User[0], key))
	}
	if len(snapshot.Settings) > 0 {
		errs = append(errs, t.importSingleton(ctx, singletons.StoreSettings, snapshot.Settings[0], key))
	}

	// Collection stores: clear and re-insert; ids are reassigned.
	errs = append(errs, t.importEntries(ctx, snapshot.Entries))
	errs = append(errs, t.importGoals(ctx, snapshot.Goals))

	return errors.Join(errs...)
}

func (t *transferService) importSingleton(ctx context.Context, name string, value any, key []byte) error {
	blob, err := cryptox.Encrypt(value, key)
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	err = dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return singletons.NewSQLiteRepository(tx).Put(ctx, name, blob)
	})
	if err != nil {
		return fmt.Errorf("import %s: %w", name, err)
	}
	return nil
}

func (t *transferService) importEntries(ctx context.Context, records []models.Entry) error {
	err := dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := entries.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for i := range records {
			if _, err := repo.Add(ctx, &records[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import entries: %w", err)
	}
	return nil
}

func (t *transferService) importGoals(ctx context.Context, records []models.Goal) error {
	err := dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := goals.NewSQLiteRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for i := range records {
			if _, err := repo.Add(ctx, &records[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import goals: %w", err)
	}
	return nil
}

func (t *transferService) Wipe(ctx context.Context) error {
	var errs []error

	errs = append(errs, dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return singletons.NewSQLiteRepository(tx).Clear(ctx)
	}))
	errs = append(errs, dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return entries.NewSQLiteRepository(tx).Clear(ctx)
	}))
	errs = append(errs, dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return goals.NewSQLiteRepository(tx).Clear(ctx)
	}))
	errs = append(errs, dbx.WithTx(ctx, t.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Clear(ctx)
	}))

	return errors.Join(errs...)
}
