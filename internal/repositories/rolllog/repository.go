// Package rolllog provides a bounded, expiring history of each user's
// recent rolls within a game.
package rolllog

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/rollkeeper/roll-api/internal/repositories/rolllog Repository

// Record is a single evaluated roll
type Record struct {
	// RollID uniquely identifies this roll
	RollID string `json:"roll_id"`

	// Command is what the user typed after !roll
	Command string `json:"command"`

	// Expression is the literal dice expression after macro resolution
	Expression string `json:"expression"`

	// Character the roll was made for, empty for anonymous rolls
	Character string `json:"character,omitempty"`

	// Rolls is the primary roll set
	Rolls []int `json:"rolls"`

	// Rerolls is the advantage/disadvantage set
	Rerolls []int `json:"rerolls,omitempty"`

	// Flag is "A", "D", or empty
	Flag string `json:"flag,omitempty"`

	// Total is the final result
	Total int `json:"total"`

	// RolledAt is when the roll happened
	RolledAt time.Time `json:"rolled_at"`
}

// AppendInput adds a record to a user's roll history
type AppendInput struct {
	Game   string
	UserID string
	Record Record

	// TTL resets the history expiry; zero uses the repository default
	TTL time.Duration
}

// ListInput fetches a user's most recent rolls
type ListInput struct {
	Game   string
	UserID string

	// Limit caps the number of records returned, newest first; zero
	// returns the full retained history
	Limit int
}

// ListOutput carries roll records, newest first
type ListOutput struct {
	Records []Record
}

// ClearInput drops a user's roll history
type ClearInput struct {
	Game   string
	UserID string
}

// ClearOutput reports how many records were dropped
type ClearOutput struct {
	Deleted int64
}

// Repository defines roll history storage operations
type Repository interface {
	// Append adds a record, trimming the history to its retention cap
	Append(ctx context.Context, input AppendInput) error

	// List returns the most recent records, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear drops the whole history for a user
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}
