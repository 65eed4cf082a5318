package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/singletons"
	"github.com/dmitrijs2005/lifetrack/internal/common"
	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
)

// VaultService is the read/write surface over the encrypted singleton
// stores. Values are replaced whole, not merged: callers read, modify,
// and write back.
type VaultService interface {
	// ReadSingleton decrypts the named store into v. Returns false if the
	// store has never been written.
	ReadSingleton(ctx context.Context, name string, s *Session, v any) (bool, error)

	// WriteSingleton encrypts v under the session key and replaces the
	// named store.
	WriteSingleton(ctx context.Context, name string, v any, s *Session) error

	// Settings and SaveSettings are the typed accessors for the settings
	// store; UserInfo for the user store.
	Settings(ctx context.Context, s *Session) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings *models.Settings, s *Session) error
	UserInfo(ctx context.Context, s *Session) (*models.UserInfo, error)
}

type vaultService struct {
	db *sql.DB
}

// NewVaultService constructs a VaultService over the given database.
func NewVaultService(db *sql.DB) VaultService {
	return &vaultService{db: db}
}

func (v *vaultService) ReadSingleton(ctx context.Context, name string, s *Session, out any) (bool, error) {
	key, err := s.Key()
	if err != nil {
		return false, err
	}

	blob, err := singletons.NewSQLiteRepository(v.db).Get(ctx, name)
	if err != nil {
		return false, err
	}
	if blob == nil {
		return false, nil
	}

	if err := cryptox.Decrypt(blob, key, out); err != nil {
		return false, err
	}
	return true, nil
}

func (v *vaultService) WriteSingleton(ctx context.Context, name string, value any, s *Session) error {
	key, err := s.Key()
	if err != nil {
		return err
	}

	blob, err := cryptox.Encrypt(value, key)
	if err != nil {
		return err
	}
	return singletons.NewSQLiteRepository(v.db).Put(ctx, name, blob)
}

func (v *vaultService) Settings(ctx context.Context, s *Session) (*models.Settings, error) {
	settings := &models.Settings{}
	found, err := v.ReadSingleton(ctx, singletons.StoreSettings, s, settings)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: settings store", common.ErrNotFound)
	}
	return settings, nil
}

func (v *vaultService) SaveSettings(ctx context.Context, settings *models.Settings, s *Session) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", common.ErrInvalidInput)
	}
	return v.WriteSingleton(ctx, singletons.StoreSettings, settings, s)
}

func (v *vaultService) UserInfo(ctx context.Context, s *Session) (*models.UserInfo, error) {
	user := &models.UserInfo{}
	found, err := v.ReadSingleton(ctx, singletons.StoreUser, s, user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: user store", common.ErrNotFound)
	}
	return user, nil
}
