package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
)

// Export decrypts the whole store and writes it to a JSON snapshot file in
// the current directory. The file name carries a random suffix so repeated
// exports never clobber each other.
func (a *App) Export(ctx context.Context) error {
	snapshot, err := a.transferService.Export(ctx, a.session)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("export-%s.json", uuid.New())
	if err := os.WriteFile(fileName, data, 0o600); err != nil {
		return err
	}

	printlnFn("Exported to", fileName)
	printlnFn("Warning: the snapshot contains your data in cleartext. Store it safely.")
	return nil
}

// Import reads a JSON snapshot file and replaces the store contents with it.
// Record ids are reassigned on import.
func (a *App) Import(ctx context.Context) error {
	fileName, err := getSimpleText(a.reader, "Enter snapshot file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("bad snapshot file: %w", err)
	}

	ok, err := getConfirmation(a.reader, "Importing replaces all current data. Continue?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Import cancelled.")
		return nil
	}

	if err := a.transferService.Import(ctx, &snapshot, a.session); err != nil {
		return err
	}

	printlnFn("Import complete.")
	return nil
}

// Wipe erases every store, including the account itself. The user has to
// confirm twice; afterwards the session is locked.
func (a *App) Wipe(ctx context.Context) error {
	ok, err := getConfirmation(a.reader, "This erases ALL data, including your account. Continue?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Wipe cancelled.")
		return nil
	}

	ok, err = getConfirmation(a.reader, "Are you absolutely sure?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Wipe cancelled.")
		return nil
	}

	if err := a.transferService.Wipe(ctx); err != nil {
		return err
	}

	a.authService.Logout(a.session)
	a.session = nil
	printlnFn("All data erased.")
	return nil
}
