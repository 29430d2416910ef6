package main

import (
	"github.com/rollkeeper/roll-api/internal/config"
	"github.com/rollkeeper/roll-api/internal/dice"
	"github.com/rollkeeper/roll-api/internal/handlers/chat"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roll"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roster"
	"github.com/rollkeeper/roll-api/internal/pkg/clock"
	"github.com/rollkeeper/roll-api/internal/pkg/idgen"
	"github.com/rollkeeper/roll-api/internal/redis"
	"github.com/rollkeeper/roll-api/internal/repositories/character"
	"github.com/rollkeeper/roll-api/internal/repositories/game"
	macrorepo "github.com/rollkeeper/roll-api/internal/repositories/macro"
	"github.com/rollkeeper/roll-api/internal/repositories/rolllog"
)

// buildHandler wires storage, services, and the chat handler from config
func buildHandler(cfg *config.Config) (*chat.Handler, error) {
	client, err := redis.NewClient(cfg.RedisAddress, nil)
	if err != nil {
		return nil, err
	}

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	macroRepo, err := macrorepo.NewRedis(&macrorepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	gameRepo, err := game.NewRedis(&game.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	rollLogRepo, err := rolllog.NewRedis(&rolllog.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	rollService, err := roll.NewOrchestrator(&roll.Config{
		CharacterRepo: characterRepo,
		MacroRepo:     macroRepo,
		RollLogRepo:   rollLogRepo,
		Roller:        dice.NewRoller(),
		IDGenerator:   idgen.NewUUID("roll"),
		Clock:         clock.New(),
	})
	if err != nil {
		return nil, err
	}

	rosterService, err := roster.NewOrchestrator(&roster.Config{
		CharacterRepo: characterRepo,
		MacroRepo:     macroRepo,
		GameRepo:      gameRepo,
	})
	if err != nil {
		return nil, err
	}

	return chat.NewHandler(&chat.Config{
		RollService:   rollService,
		RosterService: rosterService,
		DefaultGame:   cfg.DefaultGame,
	})
}
