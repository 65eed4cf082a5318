package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
)

// AddEntry interactively collects a daily entry and stores it.
// An empty date defaults to today.
func (a *App) AddEntry(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Enter category (e.g. water, exercise)", os.Stdout)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Enter date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	valueStr, err := getSimpleText(a.reader, "Enter value", os.Stdout)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return fmt.Errorf("bad value %q: %w", valueStr, err)
	}

	unit, err := getSimpleText(a.reader, "Enter unit (e.g. l, min)", os.Stdout)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Enter description (optional)", os.Stdout)
	if err != nil {
		return err
	}

	entry := &models.Entry{
		Category:    category,
		Date:        date,
		Value:       value,
		Unit:        unit,
		Description: description,
	}

	id, err := a.entryService.Add(ctx, entry, a.session)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Entry #%d added.", id))
	return nil
}

// ListEntries prints entries, optionally filtered by date and/or category.
// Both filters empty lists everything.
func (a *App) ListEntries(ctx context.Context) error {
	date, err := getSimpleText(a.reader, "Filter by date (YYYY-MM-DD, empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Filter by category (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var entries []models.Entry
	switch {
	case date != "" && category != "":
		entries, err = a.entryService.ByDateAndCategory(ctx, date, category)
	case date != "":
		entries, err = a.entryService.ByDate(ctx, date)
	case category != "":
		entries, err = a.entryService.ByCategory(ctx, category)
	default:
		entries, err = a.entryService.All(ctx)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		printlnFn("No entries.")
		return nil
	}
	for _, e := range entries {
		line := fmt.Sprintf("#%d %s %s: %g %s", e.ID, e.Date, e.Category, e.Value, e.Unit)
		if e.Description != "" {
			line += " (" + e.Description + ")"
		}
		printlnFn(line)
	}
	return nil
}
