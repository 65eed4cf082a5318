package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
)

// AddGoal interactively collects a goal and stores it.
func (a *App) AddGoal(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter goal title", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		return err
	}

	targetStr, err := getSimpleText(a.reader, "Enter target amount", os.Stdout)
	if err != nil {
		return err
	}
	target, err := strconv.ParseFloat(targetStr, 64)
	if err != nil {
		return fmt.Errorf("bad target %q: %w", targetStr, err)
	}

	unit, err := getSimpleText(a.reader, "Enter unit", os.Stdout)
	if err != nil {
		return err
	}

	deadline, err := getSimpleText(a.reader, "Enter deadline (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	goal := &models.Goal{
		Title:    title,
		Category: category,
		Target:   target,
		Unit:     unit,
		Deadline: deadline,
	}

	id, err := a.goalService.Add(ctx, goal, a.session)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Goal #%d added.", id))
	return nil
}

// ListGoals prints goals, optionally filtered by status.
func (a *App) ListGoals(ctx context.Context) error {
	status, err := getSimpleText(a.reader, "Filter by status (active/completed/failed, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	var goals []models.Goal
	if status == "" {
		goals, err = a.goalService.All(ctx)
	} else {
		goals, err = a.goalService.ByStatus(ctx, models.GoalStatus(status))
	}
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		printlnFn("No goals.")
		return nil
	}
	for _, g := range goals {
		printlnFn(fmt.Sprintf("#%d %q %s: %g/%g %s, deadline %s [%s]",
			g.ID, g.Title, g.Category, g.Current, g.Target, g.Unit, g.Deadline, g.Status))
	}
	return nil
}

// Track records progress against a goal and prints the resulting state.
func (a *App) Track(ctx context.Context) error {
	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	deltaStr, err := getSimpleText(a.reader, "Enter amount to add", os.Stdout)
	if err != nil {
		return err
	}
	delta, err := strconv.ParseFloat(deltaStr, 64)
	if err != nil {
		return fmt.Errorf("bad amount %q: %w", deltaStr, err)
	}

	g, err := a.goalService.TrackProgress(ctx, id, delta, a.session)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Goal #%d: %g/%g %s [%s]", g.ID, g.Current, g.Target, g.Unit, g.Status))
	return nil
}

// Progress prints the completion summary and insights for a goal.
func (a *App) Progress(ctx context.Context) error {
	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	p, err := a.goalService.Progress(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%.1f%% done, %g remaining, %d day(s) left", p.Percent, p.Remaining, p.DaysLeft))

	insights, err := a.goalService.Insights(ctx, id)
	if err != nil {
		return err
	}
	for _, msg := range insights {
		printlnFn("- " + msg)
	}
	return nil
}

func (a *App) promptGoalID() (int64, error) {
	idStr, err := getSimpleText(a.reader, "Enter goal id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad goal id %q: %w", idStr, err)
	}
	return id, nil
}
