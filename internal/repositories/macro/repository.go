// Package macro provides storage for the global macro table of each
// game. Per-character macros live on the character record itself.
package macro

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=macromock github.com/rollkeeper/roll-api/internal/repositories/macro Repository

// SetInput stores a global macro definition
type SetInput struct {
	Game     string
	Name     string
	Template string
}

// DeleteInput removes a global macro definition
type DeleteInput struct {
	Game string
	Name string
}

// DeleteOutput reports whether the macro existed
type DeleteOutput struct {
	Existed bool
}

// GetInput looks up a single global macro
type GetInput struct {
	Game string
	Name string
}

// GetOutput carries a macro template
type GetOutput struct {
	Template string
}

// ListInput lists all global macros for a game
type ListInput struct {
	Game string
}

// ListOutput carries the full global macro table
type ListOutput struct {
	Macros map[string]string
}

// Repository defines global macro storage operations
type Repository interface {
	// Set creates or replaces a global macro
	Set(ctx context.Context, input SetInput) error

	// Delete removes a global macro
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Get retrieves a single global macro template
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the whole global macro table for a game
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
