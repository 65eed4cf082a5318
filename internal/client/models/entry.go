// Package models defines the record schemas persisted by the lifetrack
// stores. Shapes are explicit and validated on the way in, so corrupt or
// loosely-typed persisted data surfaces as an error instead of leaking
// undefined fields into the rest of the app.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/lifetrack/internal/common"
)

// DateLayout is the canonical form of the plaintext date index ("2024-01-15").
const DateLayout = "2006-01-02"

// Entry is a single tracked activity record. Category and Date are stored
// as plaintext index columns so equality queries work without decryption;
// the record carries no encrypted fields.
type Entry struct {
	// ID is assigned by the store on insert, monotonically increasing.
	ID int64 `json:"id"`

	// Category names the tracked activity kind ("water", "exercise", ...).
	Category string `json:"category"`

	// Date is the day the activity belongs to, in DateLayout form.
	Date string `json:"date"`

	// Value is the tracked amount in Unit.
	Value float64 `json:"value"`

	Unit        string `json:"unit"`
	Description string `json:"description"`

	// Timestamp is the exact creation time in UTC.
	Timestamp time.Time `json:"timestamp"`

	// CreatedOffline marks records captured while the app had no
	// connectivity (informational only; nothing syncs them).
	CreatedOffline bool `json:"createdOffline"`
}

// Validate checks the fields a well-formed entry must carry.
func (e *Entry) Validate() error {
	if e.Category == "" {
		return fmt.Errorf("%w: category is required", common.ErrInvalidInput)
	}
	if e.Date == "" {
		return fmt.Errorf("%w: date is required", common.ErrInvalidInput)
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date must be in %s form", common.ErrInvalidInput, DateLayout)
	}
	if e.Value <= 0 {
		return fmt.Errorf("%w: value must be greater than 0", common.ErrInvalidInput)
	}
	return nil
}
