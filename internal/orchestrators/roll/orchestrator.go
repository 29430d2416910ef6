// Package roll implements the command resolution and dice evaluation
// engine: macro lookup, template substitution, parsing, and rolling.
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/rollkeeper/roll-api/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rollkeeper/roll-api/internal/dice"
	"github.com/rollkeeper/roll-api/internal/errors"
	"github.com/rollkeeper/roll-api/internal/macro"
	"github.com/rollkeeper/roll-api/internal/pkg/clock"
	"github.com/rollkeeper/roll-api/internal/pkg/idgen"
	"github.com/rollkeeper/roll-api/internal/repositories/character"
	macrorepo "github.com/rollkeeper/roll-api/internal/repositories/macro"
	"github.com/rollkeeper/roll-api/internal/repositories/rolllog"
)

// ErrNoDefaultCharacter signals that the user owns characters but has
// no default to roll for. It crosses the service boundary as a value
// (not formatted text) so the shell can choose its own message.
var ErrNoDefaultCharacter = errors.FailedPrecondition("no default character")

// Service defines the roll engine operations
type Service interface {
	// Roll resolves a raw command through the macro tables and
	// evaluates the resulting dice expression
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// ListRecent returns the user's recent rolls, newest first
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	CharacterRepo character.Repository
	MacroRepo     macrorepo.Repository
	RollLogRepo   rolllog.Repository
	Roller        dice.Roller
	IDGenerator   idgen.Generator
	Clock         clock.Clock
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
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo character.Repository
	macroRepo     macrorepo.Repository
	rollLogRepo   rolllog.Repository
	roller        dice.Roller
	idGen         idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		macroRepo:     cfg.MacroRepo,
		rollLogRepo:   cfg.RollLogRepo,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
	}, nil
}

// Roll resolves a raw command and evaluates the resulting expression.
// The engine mutates nothing but the roll log; every failure aborts
// only the current command.
func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return nil, errors.InvalidArgument("roll command is required")
	}

	owned, err := o.characterRepo.ListOwned(ctx, character.ListOwnedInput{
		Game:    input.Game,
		OwnerID: input.UserID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up characters")
	}

	// Users with no characters can still roll literal expressions;
	// macro resolution needs a stat context and is skipped.
	if len(owned.Names) == 0 {
		return o.rollLiteral(ctx, input, command)
	}

	charName, command, err := o.resolveCharacter(ctx, input, owned.Names, command)
	if err != nil {
		return nil, err
	}

	getOutput, err := o.characterRepo.Get(ctx, character.GetInput{
		Game: input.Game,
		Name: charName,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", charName)
	}

	globals, err := o.macroRepo.List(ctx, macrorepo.ListInput{Game: input.Game})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load global macros")
	}

	resolution, err := macro.Resolve(command, getOutput.Character, globals.Macros)
	if err != nil {
		return nil, err
	}

	expr, err := dice.Parse(resolution.Expression)
	if err != nil {
		return nil, err
	}

	outcome := dice.Evaluate(expr, o.roller)
	o.record(ctx, input, command, charName, expr, outcome)

	slog.Info("roll evaluated",
		"game", input.Game,
		"user_id", input.UserID,
		"character", charName,
		"command", command,
		"expression", expr.Raw,
		"total", outcome.Total,
	)

	return &RollOutput{
		Character:  charName,
		Expression: expr,
		Outcome:    outcome,
	}, nil
}

// resolveCharacter handles an optional leading character name. It
// returns the character to roll for and the command with any such
// prefix stripped.
func (o *orchestrator) resolveCharacter(ctx context.Context, input *RollInput, owned []string, command string) (string, string, error) {
	parts := strings.Fields(command)
	first := parts[0]

	_, err := o.characterRepo.Get(ctx, character.GetInput{Game: input.Game, Name: first})
	switch {
	case err == nil:
		// The command names an existing character: ownership check
		if !contains(owned, first) {
			return "", "", errors.PermissionDeniedf("cannot roll for %s", first)
		}
		if len(parts) == 1 {
			return "", "", errors.InvalidArgumentf("unknown command: %s", command)
		}
		return first, strings.Join(parts[1:], " "), nil
	case errors.IsNotFound(err):
		// Not a character reference: roll for the default
	default:
		return "", "", errors.Wrap(err, "failed to check character reference")
	}

	defaultOut, err := o.characterRepo.GetDefault(ctx, character.GetDefaultInput{
		Game:    input.Game,
		OwnerID: input.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return "", "", ErrNoDefaultCharacter
		}
		return "", "", errors.Wrap(err, "failed to look up default character")
	}

	return defaultOut.Name, command, nil
}

// rollLiteral evaluates a command for a user with no stat context
func (o *orchestrator) rollLiteral(ctx context.Context, input *RollInput, command string) (*RollOutput, error) {
	expr, err := dice.Parse(command)
	if err != nil {
		return nil, err
	}

	outcome := dice.Evaluate(expr, o.roller)
	o.record(ctx, input, command, "", expr, outcome)

	slog.Info("anonymous roll evaluated",
		"game", input.Game,
		"user_id", input.UserID,
		"expression", expr.Raw,
		"total", outcome.Total,
	)

	return &RollOutput{
		Expression: expr,
		Outcome:    outcome,
	}, nil
}

// record appends to the roll history. History is best effort: a
// storage failure must not void a roll the user already saw.
func (o *orchestrator) record(ctx context.Context, input *RollInput, command, charName string, expr *dice.Expression, outcome *dice.Outcome) {
	err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{
		Game:   input.Game,
		UserID: input.UserID,
		Record: rolllog.Record{
			RollID:     o.idGen.Generate(),
			Command:    command,
			Expression: expr.Raw,
			Character:  charName,
			Rolls:      outcome.Rolls,
			Rerolls:    outcome.Rerolls,
			Flag:       expr.Flag.String(),
			Total:      outcome.Total,
			RolledAt:   o.clock.Now(),
		},
	})
	if err != nil {
		slog.Warn("failed to record roll",
			"game", input.Game,
			"user_id", input.UserID,
			"error", err,
		)
	}
}

// ListRecent returns the user's recent rolls, newest first
func (o *orchestrator) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	if input.Game == "" {
		return nil, errors.InvalidArgument("game is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	listOutput, err := o.rollLogRepo.List(ctx, rolllog.ListInput{
		Game:   input.Game,
		UserID: input.UserID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent rolls")
	}

	return &ListRecentOutput{Records: listOutput.Records}, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
