package roster

import (
	"github.com/rollkeeper/roll-api/internal/entities"
)

// CreateGameInput registers a new game
type CreateGameInput struct {
	Game string
}

// CreateGameOutput reports whether the game was newly created
type CreateGameOutput struct {
	Created bool
}

// GameExistsInput checks a game registration
type GameExistsInput struct {
	Game string
}

// GameExistsOutput reports whether the game is registered
type GameExistsOutput struct {
	Exists bool
}

// AddCharacterInput creates or recreates a character.
// Scores follow entities.AbilityNames order.
type AddCharacterInput struct {
	Game            string
	OwnerID         string
	Name            string
	Scores          []int
	ProficientRolls []string
	HitDice         int
	Level           int
}

// AddCharacterOutput carries the stored character
type AddCharacterOutput struct {
	Character *entities.Character
}

// DeleteCharacterInput removes a character the user owns
type DeleteCharacterInput struct {
	Game    string
	OwnerID string
	Name    string
}

// DeleteCharacterOutput reports the user's new default character,
// empty when the user has no characters left.
type DeleteCharacterOutput struct {
	NewDefault string
}

// ShowCharacterInput fetches a character for display
type ShowCharacterInput struct {
	Game string
	Name string
}

// ShowCharacterOutput carries the character record
type ShowCharacterOutput struct {
	Character *entities.Character
}

// SetDefaultCharacterInput records the user's default character
type SetDefaultCharacterInput struct {
	Game    string
	OwnerID string
	Name    string
}

// AddMacroInput attaches a macro to a character the user owns
type AddMacroInput struct {
	Game      string
	OwnerID   string
	Character string
	Name      string
	Template  string
}

// DeleteMacroInput removes a macro from a character the user owns
type DeleteMacroInput struct {
	Game      string
	OwnerID   string
	Character string
	Name      string
}

// DeleteMacroOutput reports whether the macro existed
type DeleteMacroOutput struct {
	Existed bool
}

// SetGlobalMacroInput stores a game-wide macro
type SetGlobalMacroInput struct {
	Game     string
	Name     string
	Template string
}

// DeleteGlobalMacroInput removes a game-wide macro
type DeleteGlobalMacroInput struct {
	Game string
	Name string
}

// DeleteGlobalMacroOutput reports whether the macro existed
type DeleteGlobalMacroOutput struct {
	Existed bool
}
