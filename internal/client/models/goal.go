package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/common"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusFailed    GoalStatus = "failed"
)

// Goal is a tracked target ("drink 2l of water a day until March").
// Category and Status are plaintext index columns.
type Goal struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	Title    string `json:"title"`
	Category string `json:"category"`

	// Target is the amount to reach; Current is accumulated progress.
	Target  float64 `json:"target"`
	Current float64 `json:"current"`

	Unit string `json:"unit"`

	// Deadline is the last day of the goal, in DateLayout form.
	Deadline string `json:"deadline"`

	Status GoalStatus `json:"status"`

	CreatedAt      time.Time `json:"createdAt"`
	CreatedOffline bool      `json:"createdOffline"`
}

// Validate checks the fields a well-formed goal must carry.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if g.Category == "" {
		return fmt.Errorf("%w: category is required", common.ErrInvalidInput)
	}
	if g.Target <= 0 {
		return fmt.Errorf("%w: target must be greater than 0", common.ErrInvalidInput)
	}
	if g.Unit == "" {
		return fmt.Errorf("%w: unit is required", common.ErrInvalidInput)
	}
	if g.Deadline == "" {
		return fmt.Errorf("%w: deadline is required", common.ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, g.Deadline); err != nil {
		return fmt.Errorf("%w: deadline must be in %s form", common.ErrInvalidInput, DateLayout)
	}
	switch g.Status {
	case "", GoalStatusActive, GoalStatusCompleted, GoalStatusFailed:
	default:
		return fmt.Errorf("%w: unknown status %q", common.ErrInvalidInput, g.Status)
	}
	return nil
}

// DeadlinePassed reports whether the goal's deadline is before now.
// The deadline day itself still counts.
func (g *Goal) DeadlinePassed(now time.Time) bool {
	d, err := time.Parse(DateLayout, g.Deadline)
	if err != nil {
		return false
	}
	return now.After(d.AddDate(0, 0, 1))
}
