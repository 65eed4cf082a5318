// Package services contains the application services of the lifetrack core:
// authentication and session lifecycle, the encrypted singleton surface,
// collection CRUD/query, goal tracking, and whole-database import/export.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/singletons"
	"github.com/dmitrijs2005/lifetrack/internal/common"
	"github.com/dmitrijs2005/lifetrack/internal/cryptox"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// MinPasswordLength is the shortest password CreateAccount accepts.
const MinPasswordLength = 8

// AuthService manages the single local account and its sessions.
//
// There is no stored password hash: the password is proven correct solely by
// a successful authenticated decryption of the settings store with the
// freshly derived key. A wrong password therefore surfaces as
// common.ErrAuthenticationFailed.
type AuthService interface {
	// CreateAccount initializes the account: generates a salt, derives the
	// key, and writes the user and default settings singletons. Fails with
	// common.ErrAccountExists if an account is already present.
	CreateAccount(ctx context.Context, password string) (*Session, error)

	// Login derives a key from the stored cleartext salt and verifies it by
	// decrypting the settings store. No store is modified.
	Login(ctx context.Context, password string) (*Session, error)

	// Logout wipes the session key. Idempotent, never fails.
	Logout(s *Session)

	// ChangePassword rotates the salt and key and re-encrypts every
	// singleton store, all-or-nothing. Collection stores hold no
	// key-dependent data and are untouched. The returned session replaces
	// any session derived from the old password.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) (*Session, error)
}

type authService struct {
	db         *sql.DB
	iterations int
	sessionTTL time.Duration
}

// NewAuthService constructs an AuthService over the given database.
// iterations is the PBKDF2 cost; sessionTTL of zero means sessions never
// expire.
func NewAuthService(db *sql.DB, iterations int, sessionTTL time.Duration) AuthService {
	return &authService{db: db, iterations: iterations, sessionTTL: sessionTTL}
}

func (a *authService) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (a *authService) singletonRepo(db dbx.DBTX) singletons.Repository {
	return singletons.NewSQLiteRepository(db)
}

func (a *authService) CreateAccount(ctx context.Context, password string) (*Session, error) {
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			common.ErrInvalidInput, MinPasswordLength)
	}

	existing, err := a.metadataRepo(a.db).Get(ctx, metadata.SaltKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrAccountExists
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("salt generation error: %w", err)
	}

	key, err := cryptox.DeriveKey(password, salt, a.iterations)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	userBlob, err := cryptox.Encrypt(models.UserInfo{Salt: salt, CreatedAt: now}, key)
	if err != nil {
		return nil, err
	}
	settingsBlob, err := cryptox.Encrypt(models.DefaultSettings(), key)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := a.metadataRepo(tx).Set(ctx, metadata.SaltKey, []byte(salt)); err != nil {
			return err
		}
		if err := a.singletonRepo(tx).Put(ctx, singletons.StoreUser, userBlob); err != nil {
			return err
		}
		return a.singletonRepo(tx).Put(ctx, singletons.StoreSettings, settingsBlob)
	})
	if err != nil {
		return nil, fmt.Errorf("account setup error: %w", err)
	}

	return newSession(key, a.sessionTTL), nil
}

func (a *authService) Login(ctx context.Context, password string) (*Session, error) {
	salt, err := a.metadataRepo(a.db).Get(ctx, metadata.SaltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		return nil, common.ErrAccountNotFound
	}

	key, err := cryptox.DeriveKey(password, string(salt), a.iterations)
	if err != nil {
		return nil, err
	}

	// Verification probe: decrypting settings with the candidate key proves
	// the password. A wrong password fails the authentication tag.
	blob, err := a.singletonRepo(a.db).Get(ctx, singletons.StoreSettings)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, common.ErrAccountNotFound
	}

	var probe models.Settings
	if err := cryptox.Decrypt(blob, key, &probe); err != nil {
		common.WipeByteArray(key)
		return nil, err
	}

	return newSession(key, a.sessionTTL), nil
}

func (a *authService) Logout(s *Session) {
	if s != nil {
		s.wipe()
	}
}

func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*Session, error) {
	if len(newPassword) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			common.ErrInvalidInput, MinPasswordLength)
	}

	oldSession, err := a.Login(ctx, oldPassword)
	if err != nil {
		return nil, err
	}
	defer oldSession.wipe()

	oldKey, err := oldSession.Key()
	if err != nil {
		return nil, err
	}

	newSalt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("salt generation error: %w", err)
	}
	newKey, err := cryptox.DeriveKey(newPassword, newSalt, a.iterations)
	if err != nil {
		return nil, err
	}

	// Decrypt, re-encrypt, and replace every singleton plus the cleartext
	// salt inside one transaction, so a failure at any step leaves the old
	// salt and old-key blobs fully intact - never a mixed key state.
	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.singletonRepo(tx)

		userBlob, err := repo.Get(ctx, singletons.StoreUser)
		if err != nil {
			return err
		}
		if userBlob == nil {
			return fmt.Errorf("%w: user store", common.ErrNotFound)
		}
		var user models.UserInfo
		if err := cryptox.Decrypt(userBlob, oldKey, &user); err != nil {
			return err
		}
		user.Salt = newSalt

		settingsBlob, err := repo.Get(ctx, singletons.StoreSettings)
		if err != nil {
			return err
		}
		if settingsBlob == nil {
			return fmt.Errorf("%w: settings store", common.ErrNotFound)
		}
		var settings models.Settings
		if err := cryptox.Decrypt(settingsBlob, oldKey, &settings); err != nil {
			return err
		}

		newUserBlob, err := cryptox.Encrypt(user, newKey)
		if err != nil {
			return err
		}
		newSettingsBlob, err := cryptox.Encrypt(settings, newKey)
		if err != nil {
			return err
		}

		if err := repo.Put(ctx, singletons.StoreUser, newUserBlob); err != nil {
			return err
		}
		if err := repo.Put(ctx, singletons.StoreSettings, newSettingsBlob); err != nil {
			return err
		}
		return a.metadataRepo(tx).Set(ctx, metadata.SaltKey, []byte(newSalt))
	})
	if err != nil {
		common.WipeByteArray(newKey)
		return nil, fmt.Errorf("password rotation error: %w", err)
	}

	return newSession(newKey, a.sessionTTL), nil
}
