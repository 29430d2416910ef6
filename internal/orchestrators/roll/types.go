package roll

import (
	"github.com/rollkeeper/roll-api/internal/dice"
	"github.com/rollkeeper/roll-api/internal/repositories/rolllog"
)

// RollInput defines the request for resolving and rolling a command
type RollInput struct {
	// Game is the loaded game session
	Game string

	// UserID is the chat user issuing the command
	UserID string

	// Command is everything after "!roll"
	Command string
}

// RollOutput defines the result of a resolved and evaluated roll
type RollOutput struct {
	// Character the roll was made for; empty when the user owns no
	// characters and rolled a literal expression
	Character string

	// Expression is the parsed dice expression; its Raw field holds
	// the literal text after macro resolution
	Expression *dice.Expression

	// Outcome carries the roll sets and the total
	Outcome *dice.Outcome
}

// ListRecentInput defines the request for a user's recent rolls
type ListRecentInput struct {
	Game   string
	UserID string

	// Limit caps the number of records, newest first
	Limit int
}

// ListRecentOutput carries recent roll records, newest first
type ListRecentOutput struct {
	Records []rolllog.Record
}
