package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/lifetrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirmation = GetConfirmation

// Setup prompts for a master password twice and creates the local account.
// On success the store is unlocked and a.session is set. The password byte
// slices are wiped before returning.
func (a *App) Setup(ctx context.Context) error {
	password, err := getPassword(os.Stdout, "Choose a master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Repeat the master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		return errors.New("passwords do not match")
	}

	s, err := a.authService.CreateAccount(ctx, string(password))
	if err != nil {
		return err
	}

	a.session = s
	printlnFn("Account created, store unlocked.")
	return nil
}

// Login prompts for the master password and unlocks the store.
// A wrong password surfaces as common.ErrAuthenticationFailed; the caller
// sees a generic message either way.
func (a *App) Login(ctx context.Context) error {
	password, err := getPassword(os.Stdout, "Enter master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, string(password))
	if err != nil {
		if errors.Is(err, common.ErrAccountNotFound) {
			printlnFn("No account found. Run 'setup' first.")
			return nil
		}
		return err
	}

	a.session = s
	printlnFn("Store unlocked.")
	return nil
}

// Logout wipes the session key and locks the store.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(a.session)
	a.session = nil
	printlnFn("Store locked.")
	return nil
}

// ChangePassword prompts for the old and new master passwords and rotates
// the encryption key. On success the current session is replaced.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := getPassword(os.Stdout, "Enter current master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword(os.Stdout, "Choose a new master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword(os.Stdout, "Repeat the new master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(newPassword) != string(confirm) {
		return errors.New("passwords do not match")
	}

	s, err := a.authService.ChangePassword(ctx, string(oldPassword), string(newPassword))
	if err != nil {
		return err
	}

	if a.session != nil {
		a.authService.Logout(a.session)
	}
	a.session = s
	printlnFn("Password changed.")
	return nil
}
