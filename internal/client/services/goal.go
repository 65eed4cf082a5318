package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/client/models"
	"github.com/dmitrijs2005/lifetrack/internal/client/repositories/goals"
	"github.com/dmitrijs2005/lifetrack/internal/dbx"
)

// GoalProgress summarizes how far along a goal is.
type GoalProgress struct {
	// Percent is Current/Target in percent, capped at 100.
	Percent float64

	// Remaining is the amount still missing, never negative.
	Remaining float64

	// DaysLeft is the number of days until the deadline, rounded up;
	// negative once the deadline has passed.
	DaysLeft int
}

// GoalService is the collection surface for goals, plus the progress
// tracker. As with entries, queries are keyless and mutations require a
// live session.
type GoalService interface {
	// Add validates and inserts a goal, returning the store-assigned id.
	// An empty status defaults to active; a zero CreatedAt to now.
	Add(ctx context.Context, g *models.Goal, s *Session) (int64, error)

	ByStatus(ctx context.Context, status models.GoalStatus) ([]models.Goal, error)
	ByCategory(ctx context.Context, category string) ([]models.Goal, error)
	All(ctx context.Context) ([]models.Goal, error)

	// Update applies mutator to exactly one goal inside a transaction,
	// re-reading the record within the transaction so concurrent updates
	// are never lost.
	Update(ctx context.Context, id int64, s *Session, mutator func(g *models.Goal) error) error

	// TrackProgress adds delta to the goal's current amount and applies the
	// status transitions: reaching the target completes the goal, and a
	// goal past its deadline that hasn't reached the target fails. Returns
	// the updated goal.
	TrackProgress(ctx context.Context, id int64, delta float64, s *Session) (*models.Goal, error)

	// Progress reports percent done, the remaining amount, and days left.
	Progress(ctx context.Context, id int64) (*GoalProgress, error)

	// Insights returns short advisory messages about the goal's trajectory.
	Insights(ctx context.Context, id int64) ([]string, error)
}

type goalService struct {
	db *sql.DB
}

// NewGoalService constructs a GoalService over the given database.
func NewGoalService(db *sql.DB) GoalService {
	return &goalService{db: db}
}

func (gs *goalService) repo(db dbx.DBTX) goals.Repository {
	return goals.NewSQLiteRepository(db)
}

func (gs *goalService) Add(ctx context.Context, g *models.Goal, s *Session) (int64, error) {
	if _, err := s.Key(); err != nil {
		return 0, err
	}
	if g.Status == "" {
		g.Status = models.GoalStatusActive
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = timeNow().UTC()
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}
	return gs.repo(gs.db).Add(ctx, g)
}

func (gs *goalService) ByStatus(ctx context.Context, status models.GoalStatus) ([]models.Goal, error) {
	return gs.repo(gs.db).ByStatus(ctx, status)
}

func (gs *goalService) ByCategory(ctx context.Context, category string) ([]models.Goal, error) {
	return gs.repo(gs.db).ByCategory(ctx, category)
}

func (gs *goalService) All(ctx context.Context) ([]models.Goal, error) {
	return gs.repo(gs.db).GetAll(ctx)
}

func (gs *goalService) Update(ctx context.Context, id int64, s *Session, mutator func(g *models.Goal) error) error {
	if _, err := s.Key(); err != nil {
		return err
	}
	return dbx.WithTx(ctx, gs.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := gs.repo(tx)
		g, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := mutator(g); err != nil {
			return err
		}
		g.ID = id
		if err := g.Validate(); err != nil {
			return err
		}
		return repo.Update(ctx, g)
	})
}

func (gs *goalService) TrackProgress(ctx context.Context, id int64, delta float64, s *Session) (*models.Goal, error) {
	var updated *models.Goal
	err := gs.Update(ctx, id, s, func(g *models.Goal) error {
		g.Current += delta
		switch {
		case g.Current >= g.Target:
			g.Status = models.GoalStatusCompleted
		case g.DeadlinePassed(timeNow()):
			g.Status = models.GoalStatusFailed
		}
		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (gs *goalService) Progress(ctx context.Context, id int64) (*GoalProgress, error) {
	g, err := gs.repo(gs.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	percent := g.Current / g.Target * 100
	if percent > 100 {
		percent = 100
	}

	remaining := g.Target - g.Current
	if remaining < 0 {
		remaining = 0
	}

	deadline, err := time.Parse(models.DateLayout, g.Deadline)
	if err != nil {
		return nil, fmt.Errorf("bad deadline %q: %w", g.Deadline, err)
	}
	daysLeft := int(math.Ceil(deadline.Sub(timeNow()).Hours() / 24))

	return &GoalProgress{Percent: percent, Remaining: remaining, DaysLeft: daysLeft}, nil
}

func (gs *goalService) Insights(ctx context.Context, id int64) ([]string, error) {
	p, err := gs.Progress(ctx, id)
	if err != nil {
		return nil, err
	}

	var insights []string
	if p.DaysLeft < 7 && p.Percent < 80 {
		insights = append(insights, "Warning: goal deadline approaching with significant progress remaining")
	}
	if p.Percent >= 80 && p.Percent < 100 {
		insights = append(insights, "Almost there! Keep pushing to reach your goal")
	}
	if p.Percent >= 100 {
		insights = append(insights, "Congratulations! You've achieved your goal")
	}
	return insights, nil
}
