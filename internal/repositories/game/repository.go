// Package game provides the registry of known game names so !load
// can refuse games that were never created.
package game

import (
	"context"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamemock github.com/rollkeeper/roll-api/internal/repositories/game Repository

// RegisterInput names a game to register
type RegisterInput struct {
	Game string
}

// RegisterOutput reports whether the game was newly registered
type RegisterOutput struct {
	Created bool
}

// ExistsInput names a game to look up
type ExistsInput struct {
	Game string
}

// ExistsOutput reports whether the game is registered
type ExistsOutput struct {
	Exists bool
}

// ListOutput carries all registered game names
type ListOutput struct {
	Games []string
}

// Repository defines game registry operations
type Repository interface {
	// Register adds a game name to the registry
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Exists reports whether a game name is registered
	Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error)

	// List returns every registered game name
	List(ctx context.Context) (*ListOutput, error)
}
