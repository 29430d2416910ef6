// Package roster manages games, characters, and macro tables. The roll
// engine only reads what this service writes.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/rollkeeper/roll-api/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"

	"github.com/rollkeeper/roll-api/internal/entities"
	"github.com/rollkeeper/roll-api/internal/errors"
	"github.com/rollkeeper/roll-api/internal/repositories/character"
	"github.com/rollkeeper/roll-api/internal/repositories/game"
	macrorepo "github.com/rollkeeper/roll-api/internal/repositories/macro"
)

// Service defines game, character, and macro management operations
type Service interface {
	// CreateGame registers a game name; registering twice is a no-op
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GameExists reports whether a game name is registered
	GameExists(ctx context.Context, input *GameExistsInput) (*GameExistsOutput, error)

	// AddCharacter creates a character, or recreates one the user
	// already owns while keeping its macros
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error)

	// DeleteCharacter removes a character the user owns
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// ShowCharacter fetches a character record for display
	ShowCharacter(ctx context.Context, input *ShowCharacterInput) (*ShowCharacterOutput, error)

	// SetDefaultCharacter records which character the user rolls for
	// when a command names none
	SetDefaultCharacter(ctx context.Context, input *SetDefaultCharacterInput) error

	// AddMacro attaches a macro to a character the user owns
	AddMacro(ctx context.Context, input *AddMacroInput) error

	// DeleteMacro removes a macro from a character the user owns
	DeleteMacro(ctx context.Context, input *DeleteMacroInput) (*DeleteMacroOutput, error)

	// SetGlobalMacro stores a game-wide macro
	SetGlobalMacro(ctx context.Context, input *SetGlobalMacroInput) error

	// DeleteGlobalMacro removes a game-wide macro
	DeleteGlobalMacro(ctx context.Context, input *DeleteGlobalMacroInput) (*DeleteGlobalMacroOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	CharacterRepo character.Repository
	MacroRepo     macrorepo.Repository
	GameRepo      game.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.MacroRepo == nil {
		vb.RequiredField("MacroRepo")
	}
	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	macroRepo     macrorepo.Repository
	gameRepo      game.Repository
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		macroRepo:     cfg.MacroRepo,
		gameRepo:      cfg.GameRepo,
	}, nil
}

// CreateGame registers a game name
func (o *orchestrator) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}

	out, err := o.gameRepo.Register(ctx, game.RegisterInput{Game: input.Game})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to register game %s", input.Game)
	}

	if out.Created {
		slog.Info("game created", "game", input.Game)
	}

	return &CreateGameOutput{Created: out.Created}, nil
}

// GameExists reports whether a game name is registered
func (o *orchestrator) GameExists(ctx context.Context, input *GameExistsInput) (*GameExistsOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}

	out, err := o.gameRepo.Exists(ctx, game.ExistsInput{Game: input.Game})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check game %s", input.Game)
	}

	return &GameExistsOutput{Exists: out.Exists}, nil
}

// AddCharacter creates a character. Recreating a name another player
// owns is refused; recreating your own keeps its macro table.
func (o *orchestrator) AddCharacter(ctx context.Context, input *AddCharacterInput) (*AddCharacterOutput, error) {
	if err := o.validateAddCharacter(input); err != nil {
		return nil, err
	}

	macros := map[string]string{}
	existing, err := o.characterRepo.Get(ctx, character.GetInput{Game: input.Game, Name: input.Name})
	switch {
	case err == nil:
		if existing.Character.OwnerID != input.OwnerID {
			return nil, errors.PermissionDeniedf(
				"cannot recreate %s as it is already assigned to some other player", input.Name)
		}
		if existing.Character.Macros != nil {
			macros = existing.Character.Macros
		}
	case errors.IsNotFound(err):
		// New name
	default:
		return nil, errors.Wrapf(err, "failed to check character %s", input.Name)
	}

	stats := entities.NewStatBlock()
	for i, ability := range entities.AbilityNames {
		stats.Set(ability, input.Scores[i])
	}

	ch := &entities.Character{
		Name:            input.Name,
		OwnerID:         input.OwnerID,
		Level:           input.Level,
		HitDice:         input.HitDice,
		ProficientRolls: input.ProficientRolls,
		Macros:          macros,
		Stats:           stats,
	}

	if _, err := o.characterRepo.Save(ctx, character.SaveInput{Game: input.Game, Character: ch}); err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", input.Name)
	}
	if err := o.characterRepo.AssignOwner(ctx, character.AssignOwnerInput{
		Game: input.Game, OwnerID: input.OwnerID, Name: input.Name,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to assign character %s", input.Name)
	}

	// The first character becomes the default automatically
	_, err = o.characterRepo.GetDefault(ctx, character.GetDefaultInput{
		Game: input.Game, OwnerID: input.OwnerID,
	})
	if errors.IsNotFound(err) {
		err = o.characterRepo.SetDefault(ctx, character.SetDefaultInput{
			Game: input.Game, OwnerID: input.OwnerID, Name: input.Name,
		})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set default character for %s", input.OwnerID)
	}

	slog.Info("character created",
		"game", input.Game,
		"owner_id", input.OwnerID,
		"character", input.Name,
		"level", input.Level,
	)

	return &AddCharacterOutput{Character: ch}, nil
}

func (o *orchestrator) validateAddCharacter(input *AddCharacterInput) error {
	vb := errors.NewValidationBuilder()

	if input.Game == "" {
		vb.RequiredField("Game")
	}
	if input.OwnerID == "" {
		vb.RequiredField("OwnerID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if len(input.Scores) != len(entities.AbilityNames) {
		vb.Field("Scores", "must contain exactly six ability scores")
	}
	if input.Level < 1 {
		vb.Field("Level", "must be positive")
	}

	return vb.Build()
}

// DeleteCharacter removes a character the user owns. When the deleted
// character was the default, the first remaining owned character takes
// its place.
func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	owned, err := o.characterRepo.ListOwned(ctx, character.ListOwnedInput{
		Game: input.Game, OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up characters")
	}
	if !contains(owned.Names, input.Name) {
		return nil, errors.NotFoundf("you do not have a character by name: %s", input.Name)
	}

	if _, err := o.characterRepo.Delete(ctx, character.DeleteInput{
		Game: input.Game, Name: input.Name,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.Name)
	}
	if err := o.characterRepo.ReleaseOwner(ctx, character.ReleaseOwnerInput{
		Game: input.Game, OwnerID: input.OwnerID, Name: input.Name,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to release character %s", input.Name)
	}

	newDefault, err := o.repointDefault(ctx, input, remaining(owned.Names, input.Name))
	if err != nil {
		return nil, err
	}

	slog.Info("character deleted",
		"game", input.Game,
		"owner_id", input.OwnerID,
		"character", input.Name,
	)

	return &DeleteCharacterOutput{NewDefault: newDefault}, nil
}

// repointDefault keeps the default pointer valid after a delete
func (o *orchestrator) repointDefault(ctx context.Context, input *DeleteCharacterInput, left []string) (string, error) {
	defaultOut, err := o.characterRepo.GetDefault(ctx, character.GetDefaultInput{
		Game: input.Game, OwnerID: input.OwnerID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to look up default character")
	}

	if defaultOut.Name != input.Name {
		return defaultOut.Name, nil
	}

	if len(left) == 0 {
		if err := o.characterRepo.ClearDefault(ctx, character.ClearDefaultInput{
			Game: input.Game, OwnerID: input.OwnerID,
		}); err != nil {
			return "", errors.Wrap(err, "failed to clear default character")
		}
		return "", nil
	}

	if err := o.characterRepo.SetDefault(ctx, character.SetDefaultInput{
		Game: input.Game, OwnerID: input.OwnerID, Name: left[0],
	}); err != nil {
		return "", errors.Wrap(err, "failed to switch default character")
	}
	return left[0], nil
}

// ShowCharacter fetches a character record for display
func (o *orchestrator) ShowCharacter(ctx context.Context, input *ShowCharacterInput) (*ShowCharacterOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	out, err := o.characterRepo.Get(ctx, character.GetInput{Game: input.Game, Name: input.Name})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("did not find a character with the name: %s", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to load character %s", input.Name)
	}

	return &ShowCharacterOutput{Character: out.Character}, nil
}

// SetDefaultCharacter records which character the user rolls for by default
func (o *orchestrator) SetDefaultCharacter(ctx context.Context, input *SetDefaultCharacterInput) error {
	if input.Game == "" {
		return errors.InvalidArgument("game is required")
	}
	if input.OwnerID == "" {
		return errors.InvalidArgument("owner ID is required")
	}
	if input.Name == "" {
		return errors.InvalidArgument("character name is required")
	}

	if err := o.requireOwnership(ctx, input.Game, input.OwnerID, input.Name); err != nil {
		return err
	}

	return o.characterRepo.SetDefault(ctx, character.SetDefaultInput{
		Game: input.Game, OwnerID: input.OwnerID, Name: input.Name,
	})
}

// AddMacro attaches a macro to a character the user owns
func (o *orchestrator) AddMacro(ctx context.Context, input *AddMacroInput) error {
	if err := validateMacroInput(input.Game, input.OwnerID, input.Character, input.Name); err != nil {
		return err
	}
	if input.Template == "" {
		return errors.InvalidArgument("macro template is required")
	}

	if err := o.requireOwnership(ctx, input.Game, input.OwnerID, input.Character); err != nil {
		return err
	}

	out, err := o.characterRepo.Get(ctx, character.GetInput{Game: input.Game, Name: input.Character})
	if err != nil {
		return errors.Wrapf(err, "failed to load character %s", input.Character)
	}

	ch := out.Character
	if ch.Macros == nil {
		ch.Macros = map[string]string{}
	}
	ch.Macros[input.Name] = input.Template

	if _, err := o.characterRepo.Save(ctx, character.SaveInput{Game: input.Game, Character: ch}); err != nil {
		return errors.Wrapf(err, "failed to save character %s", input.Character)
	}

	slog.Info("macro added",
		"game", input.Game,
		"character", input.Character,
		"macro", input.Name,
	)
	return nil
}

// DeleteMacro removes a macro from a character the user owns
func (o *orchestrator) DeleteMacro(ctx context.Context, input *DeleteMacroInput) (*DeleteMacroOutput, error) {
	if err := validateMacroInput(input.Game, input.OwnerID, input.Character, input.Name); err != nil {
		return nil, err
	}

	if err := o.requireOwnership(ctx, input.Game, input.OwnerID, input.Character); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, character.GetInput{Game: input.Game, Name: input.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", input.Character)
	}

	ch := out.Character
	if _, ok := ch.Macros[input.Name]; !ok {
		return &DeleteMacroOutput{Existed: false}, nil
	}
	delete(ch.Macros, input.Name)

	if _, err := o.characterRepo.Save(ctx, character.SaveInput{Game: input.Game, Character: ch}); err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", input.Character)
	}

	return &DeleteMacroOutput{Existed: true}, nil
}

// SetGlobalMacro stores a game-wide macro
func (o *orchestrator) SetGlobalMacro(ctx context.Context, input *SetGlobalMacroInput) error {
	if input.Game == "" {
		return errors.InvalidArgument("game is required")
	}
	if input.Name == "" {
		return errors.InvalidArgument("macro name is required")
	}
	if input.Template == "" {
		return errors.InvalidArgument("macro template is required")
	}

	if err := o.macroRepo.Set(ctx, macrorepo.SetInput{
		Game: input.Game, Name: input.Name, Template: input.Template,
	}); err != nil {
		return errors.Wrapf(err, "failed to store macro %s", input.Name)
	}

	slog.Info("global macro set", "game", input.Game, "macro", input.Name)
	return nil
}

// DeleteGlobalMacro removes a game-wide macro
func (o *orchestrator) DeleteGlobalMacro(ctx context.Context, input *DeleteGlobalMacroInput) (*DeleteGlobalMacroOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("macro name is required")
	}

	out, err := o.macroRepo.Delete(ctx, macrorepo.DeleteInput{Game: input.Game, Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete macro %s", input.Name)
	}

	return &DeleteGlobalMacroOutput{Existed: out.Existed}, nil
}

// requireOwnership fails with NotFound when the user does not own the
// named character. The message matches what the chat shell shows, so
// ownership probes do not reveal other players' character names.
func (o *orchestrator) requireOwnership(ctx context.Context, gameName, ownerID, name string) error {
	owned, err := o.characterRepo.ListOwned(ctx, character.ListOwnedInput{
		Game: gameName, OwnerID: ownerID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to look up characters")
	}
	if !contains(owned.Names, name) {
		return errors.NotFoundf("you do not have a character by name: %s", name)
	}
	return nil
}

func validateMacroInput(gameName, ownerID, characterName, macroName string) error {
	vb := errors.NewValidationBuilder()

	if gameName == "" {
		vb.RequiredField("Game")
	}
	if ownerID == "" {
		vb.RequiredField("OwnerID")
	}
	if characterName == "" {
		vb.RequiredField("Character")
	}
	if macroName == "" {
		vb.RequiredField("Name")
	}

	return vb.Build()
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func remaining(names []string, removed string) []string {
	var left []string
	for _, n := range names {
		if n != removed {
			left = append(left, n)
		}
	}
	return left
}
