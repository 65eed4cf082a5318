package cli

import (
	"context"
	"os"
	"strings"
)

// Settings shows the current preferences and optionally updates the theme
// or the tracked category list.
func (a *App) Settings(ctx context.Context) error {
	settings, err := a.vaultService.Settings(ctx, a.session)
	if err != nil {
		return err
	}

	printlnFn("Theme:", settings.Theme)
	printlnFn("Categories:", strings.Join(settings.Categories, ", "))
	printlnFn("Notifications enabled:", settings.Notifications)

	theme, err := getSimpleText(a.reader, "New theme (light/dark, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Add category (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}
	if theme == "" && category == "" {
		return nil
	}

	if theme != "" {
		settings.Theme = theme
	}
	if category != "" {
		settings.Categories = append(settings.Categories, category)
	}

	if err := a.vaultService.SaveSettings(ctx, settings, a.session); err != nil {
		return err
	}

	printlnFn("Settings saved.")
	return nil
}
