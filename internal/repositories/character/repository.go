// Package character provides storage for characters, their owners,
// and each owner's default character.
package character

import (
	"context"

	"github.com/rollkeeper/roll-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/rollkeeper/roll-api/internal/repositories/character Repository

// GetInput identifies a character within a game
type GetInput struct {
	Game string
	Name string
}

// GetOutput carries the stored character
type GetOutput struct {
	Character *entities.Character
}

// SaveInput stores a character record (create or replace)
type SaveInput struct {
	Game      string
	Character *entities.Character
}

// SaveOutput carries the result of saving a character
type SaveOutput struct{}

// DeleteInput identifies a character to remove
type DeleteInput struct {
	Game string
	Name string
}

// DeleteOutput carries the result of deleting a character
type DeleteOutput struct{}

// ListOwnedInput identifies an owner within a game
type ListOwnedInput struct {
	Game    string
	OwnerID string
}

// ListOwnedOutput lists the owner's character names
type ListOwnedOutput struct {
	Names []string
}

// AssignOwnerInput records that a user owns a character
type AssignOwnerInput struct {
	Game    string
	OwnerID string
	Name    string
}

// ReleaseOwnerInput removes a character from a user's owned set
type ReleaseOwnerInput struct {
	Game    string
	OwnerID string
	Name    string
}

// GetDefaultInput identifies whose default character to fetch
type GetDefaultInput struct {
	Game    string
	OwnerID string
}

// GetDefaultOutput carries the default character name
type GetDefaultOutput struct {
	Name string
}

// SetDefaultInput records a user's default character
type SetDefaultInput struct {
	Game    string
	OwnerID string
	Name    string
}

// ClearDefaultInput removes a user's default character pointer
type ClearDefaultInput struct {
	Game    string
	OwnerID string
}

// Repository defines character storage operations
type Repository interface {
	// Get retrieves a character by game and name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a character record
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a character record
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListOwned lists the character names a user owns in a game
	ListOwned(ctx context.Context, input ListOwnedInput) (*ListOwnedOutput, error)

	// AssignOwner adds a character to a user's owned set
	AssignOwner(ctx context.Context, input AssignOwnerInput) error

	// ReleaseOwner removes a character from a user's owned set
	ReleaseOwner(ctx context.Context, input ReleaseOwnerInput) error

	// GetDefault returns the user's default character name
	GetDefault(ctx context.Context, input GetDefaultInput) (*GetDefaultOutput, error)

	// SetDefault records the user's default character name
	SetDefault(ctx context.Context, input SetDefaultInput) error

	// ClearDefault removes the user's default character pointer
	ClearDefault(ctx context.Context, input ClearDefaultInput) error
}
