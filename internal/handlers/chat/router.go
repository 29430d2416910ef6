// Package chat routes chat commands to the roll and roster services
// and renders their results as chat text. This is the only layer that
// turns errors into user-facing strings.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/rollkeeper/roll-api/internal/errors"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roll"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roster"
)

// Messages that do not start with "!command args" are not for us
var commandRegex = regexp.MustCompile(`^!([a-zA-Z0-9_\-]+)\s+(.*)$`)

const noGameMessage = "No game has been loaded. Load using command `!load <game>`"

// Config holds the dependencies for the chat handler
type Config struct {
	RollService   roll.Service
	RosterService roster.Service

	// DefaultGame, when set, is loaded at startup
	DefaultGame string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollService == nil {
		vb.RequiredField("RollService")
	}
	if c.RosterService == nil {
		vb.RequiredField("RosterService")
	}

	return vb.Build()
}

// Handler routes chat commands. One handler serves every user, so the
// loaded game is shared state guarded by a mutex, as in the original
// single-table-per-server model.
type Handler struct {
	rollService   roll.Service
	rosterService roster.Service

	mu   sync.Mutex
	game string
}

// NewHandler creates a new chat handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		rollService:   cfg.RollService,
		rosterService: cfg.RosterService,
		game:          cfg.DefaultGame,
	}, nil
}

func (h *Handler) currentGame() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.game
}

func (h *Handler) setGame(game string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	previous := h.game
	h.game = game
	return previous
}

// HandleMessage interprets one chat message. An empty return means the
// message was not a command and deserves no response.
func (h *Handler) HandleMessage(ctx context.Context, userID, content string) string {
	groups := commandRegex.FindStringSubmatch(content)
	if groups == nil {
		return ""
	}
	command, args := groups[1], strings.TrimSpace(groups[2])

	switch command {
	case "load":
		return h.handleLoad(ctx, args)
	case "game":
		return h.handleGame(ctx, args)
	}

	game := h.currentGame()
	if game == "" {
		return noGameMessage
	}

	switch command {
	case "roll":
		return h.handleRoll(ctx, game, userID, args)
	case "rolls":
		return h.handleRecent(ctx, game, userID, args)
	case "character":
		return h.handleCharacter(ctx, game, userID, args)
	case "macro":
		return h.handleMacro(ctx, game, userID, args)
	}

	// Unknown commands are somebody else's bot
	return ""
}

func (h *Handler) handleLoad(ctx context.Context, game string) string {
	out, err := h.rosterService.GameExists(ctx, &roster.GameExistsInput{Game: game})
	if err != nil {
		return errors.GetMessage(err)
	}
	if !out.Exists {
		return fmt.Sprintf("Game %s does not exist. Create using command `!game create <name>`", game)
	}

	previous := h.setGame(game)
	slog.Info("game loaded", "game", game, "previous", previous)
	if previous != "" && previous != game {
		return fmt.Sprintf("Game %s was replaced with game %s", previous, game)
	}
	return fmt.Sprintf("New game %s loaded", game)
}

func (h *Handler) handleGame(ctx context.Context, args string) string {
	sub, rest, ok := splitSubcommand(args)
	if !ok || sub != "create" || rest == "" {
		return fmt.Sprintf("Did not understand %s.", args)
	}

	out, err := h.rosterService.CreateGame(ctx, &roster.CreateGameInput{Game: rest})
	if err != nil {
		return errors.GetMessage(err)
	}
	if !out.Created {
		return fmt.Sprintf("Game %s already exists", rest)
	}
	return fmt.Sprintf("New game %s created", rest)
}

func (h *Handler) handleRoll(ctx context.Context, game, userID, args string) string {
	out, err := h.rollService.Roll(ctx, &roll.RollInput{
		Game:    game,
		UserID:  userID,
		Command: args,
	})
	if err != nil {
		if errors.Is(err, roll.ErrNoDefaultCharacter) {
			return fmt.Sprintf("<@%s> has no default character. Create one with `!character add`", userID)
		}
		return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
	}

	return formatRoll(userID, out.Character, out.Expression, out.Outcome)
}

func (h *Handler) handleRecent(ctx context.Context, game, userID, args string) string {
	limit := 0
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n < 1 {
			return fmt.Sprintf("Did not understand %s.", args)
		}
		limit = n
	}

	out, err := h.rollService.ListRecent(ctx, &roll.ListRecentInput{
		Game:   game,
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
	}

	return formatRecent(userID, out.Records)
}

func (h *Handler) handleCharacter(ctx context.Context, game, userID, args string) string {
	sub, rest, ok := splitSubcommand(args)
	if !ok {
		return fmt.Sprintf("Did not understand %s.", args)
	}

	switch sub {
	case "add":
		return h.handleCharacterAdd(ctx, game, userID, rest)
	case "del":
		out, err := h.rosterService.DeleteCharacter(ctx, &roster.DeleteCharacterInput{
			Game: game, OwnerID: userID, Name: rest,
		})
		if err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		resp := fmt.Sprintf("Successfully deleted %s for <@%s>", rest, userID)
		if out.NewDefault != "" {
			resp += fmt.Sprintf(". Default character is now %s", out.NewDefault)
		}
		return resp
	case "show":
		out, err := h.rosterService.ShowCharacter(ctx, &roster.ShowCharacterInput{
			Game: game, Name: rest,
		})
		if err != nil {
			return errors.GetMessage(err)
		}
		data, err := json.MarshalIndent(out.Character, "", "    ")
		if err != nil {
			return errors.GetMessage(err)
		}
		return fmt.Sprintf("```%s```", data)
	case "default":
		if err := h.rosterService.SetDefaultCharacter(ctx, &roster.SetDefaultCharacterInput{
			Game: game, OwnerID: userID, Name: rest,
		}); err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		return fmt.Sprintf("Default character for <@%s> is now %s", userID, rest)
	}
	return fmt.Sprintf("Did not understand %s.", args)
}

// handleCharacterAdd parses
// `name str,dex,con,int,wis,cha profs hitdice level`
func (h *Handler) handleCharacterAdd(ctx context.Context, game, userID, args string) string {
	parts := strings.Fields(args)
	if len(parts) != 5 {
		return fmt.Sprintf("Unable to parse character (%s)", args)
	}
	name, statText, profText := parts[0], parts[1], parts[2]

	hitDice, err := strconv.Atoi(parts[3])
	if err != nil {
		return fmt.Sprintf("Unable to parse character (%s)", args)
	}
	level, err := strconv.Atoi(parts[4])
	if err != nil {
		return fmt.Sprintf("Unable to parse character (%s)", args)
	}

	var scores []int
	for _, s := range strings.Split(statText, ",") {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Sprintf("Unable to parse character stats (%s)", statText)
		}
		scores = append(scores, v)
	}

	_, err = h.rosterService.AddCharacter(ctx, &roster.AddCharacterInput{
		Game:            game,
		OwnerID:         userID,
		Name:            name,
		Scores:          scores,
		ProficientRolls: strings.Split(profText, ","),
		HitDice:         hitDice,
		Level:           level,
	})
	if err != nil {
		return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
	}
	return fmt.Sprintf("Successfully created character %s for <@%s>", name, userID)
}

func (h *Handler) handleMacro(ctx context.Context, game, userID, args string) string {
	sub, rest, ok := splitSubcommand(args)
	if !ok {
		return fmt.Sprintf("Cannot parse command %s.", args)
	}

	switch sub {
	case "add":
		// !macro add <character> <name> <template...>
		parts := strings.SplitN(rest, " ", 3)
		if len(parts) < 3 {
			return fmt.Sprintf("Cannot parse command %s.", args)
		}
		if err := h.rosterService.AddMacro(ctx, &roster.AddMacroInput{
			Game: game, OwnerID: userID,
			Character: parts[0], Name: parts[1], Template: strings.TrimSpace(parts[2]),
		}); err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		return fmt.Sprintf("Successfully added new macro %s to %s.", parts[1], parts[0])
	case "del":
		parts := strings.Fields(rest)
		if len(parts) != 2 {
			return fmt.Sprintf("Cannot parse command %s.", args)
		}
		out, err := h.rosterService.DeleteMacro(ctx, &roster.DeleteMacroInput{
			Game: game, OwnerID: userID, Character: parts[0], Name: parts[1],
		})
		if err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		if !out.Existed {
			return fmt.Sprintf("Did not find macro %s in %s.", parts[1], parts[0])
		}
		return fmt.Sprintf("Successfully deleted macro %s from %s.", parts[1], parts[0])
	case "global":
		return h.handleGlobalMacro(ctx, game, userID, rest)
	}
	return fmt.Sprintf("Unknown macro subcommand received: %s.", sub)
}

func (h *Handler) handleGlobalMacro(ctx context.Context, game, userID, args string) string {
	sub, rest, ok := splitSubcommand(args)
	if !ok {
		return fmt.Sprintf("Cannot parse command %s.", args)
	}

	switch sub {
	case "add":
		// !macro global add <name> <template...>
		parts := strings.SplitN(rest, " ", 2)
		if len(parts) < 2 {
			return fmt.Sprintf("Cannot parse command %s.", args)
		}
		if err := h.rosterService.SetGlobalMacro(ctx, &roster.SetGlobalMacroInput{
			Game: game, Name: parts[0], Template: strings.TrimSpace(parts[1]),
		}); err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		return fmt.Sprintf("Successfully added global macro %s.", parts[0])
	case "del":
		out, err := h.rosterService.DeleteGlobalMacro(ctx, &roster.DeleteGlobalMacroInput{
			Game: game, Name: rest,
		})
		if err != nil {
			return fmt.Sprintf("<@%s> %s", userID, errors.GetMessage(err))
		}
		if !out.Existed {
			return fmt.Sprintf("Did not find global macro %s.", rest)
		}
		return fmt.Sprintf("Successfully deleted global macro %s.", rest)
	}
	return fmt.Sprintf("Unknown macro subcommand received: %s.", sub)
}

// splitSubcommand peels the first word off args
func splitSubcommand(args string) (sub, rest string, ok bool) {
	parts := strings.SplitN(args, " ", 2)
	if parts[0] == "" {
		return "", "", false
	}
	if len(parts) == 1 {
		return parts[0], "", true
	}
	return parts[0], strings.TrimSpace(parts[1]), true
}
