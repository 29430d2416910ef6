package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rollkeeper/roll-api/internal/errors"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roster"
	"github.com/rollkeeper/roll-api/internal/repositories/character"
	"github.com/rollkeeper/roll-api/internal/repositories/game"
	macrorepo "github.com/rollkeeper/roll-api/internal/repositories/macro"
	"github.com/rollkeeper/roll-api/internal/testutils"
)

const (
	testGame  = "inkscription"
	testUser  = "user1"
	otherUser = "user2"
)

type RosterOrchestratorTestSuite struct {
	suite.Suite
	characterRepo character.Repository
	svc           roster.Service
	cleanup       func()
	ctx           context.Context
}

func (s *RosterOrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.characterRepo = characterRepo
	macroRepo, err := macrorepo.NewRedis(&macrorepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	gameRepo, err := game.NewRedis(&game.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.svc, err = roster.NewOrchestrator(&roster.Config{
		CharacterRepo: characterRepo,
		MacroRepo:     macroRepo,
		GameRepo:      gameRepo,
	})
	s.Require().NoError(err)
}

func (s *RosterOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RosterOrchestratorTestSuite) addCharacter(name, owner string) {
	_, err := s.svc.AddCharacter(s.ctx, &roster.AddCharacterInput{
		Game:            testGame,
		OwnerID:         owner,
		Name:            name,
		Scores:          []int{10, 16, 12, 8, 14, 11},
		ProficientRolls: []string{"stealth"},
		HitDice:         5,
		Level:           5,
	})
	s.Require().NoError(err)
}

func (s *RosterOrchestratorTestSuite) TestCreateGame() {
	out, err := s.svc.CreateGame(s.ctx, &roster.CreateGameInput{Game: testGame})
	s.Require().NoError(err)
	s.True(out.Created)

	out, err = s.svc.CreateGame(s.ctx, &roster.CreateGameInput{Game: testGame})
	s.Require().NoError(err)
	s.False(out.Created)

	exists, err := s.svc.GameExists(s.ctx, &roster.GameExistsInput{Game: testGame})
	s.Require().NoError(err)
	s.True(exists.Exists)

	exists, err = s.svc.GameExists(s.ctx, &roster.GameExistsInput{Game: "missing"})
	s.Require().NoError(err)
	s.False(exists.Exists)
}

func (s *RosterOrchestratorTestSuite) TestAddCharacter() {
	s.addCharacter("foggy", testUser)

	out, err := s.svc.ShowCharacter(s.ctx, &roster.ShowCharacterInput{Game: testGame, Name: "foggy"})
	s.Require().NoError(err)

	ch := out.Character
	s.Equal("foggy", ch.Name)
	s.Equal(testUser, ch.OwnerID)
	s.Equal(5, ch.Level)

	dex, ok := ch.Stats.Value("dex")
	s.Require().True(ok)
	s.Equal(16, dex)
	mod, ok := ch.Stats.Modifier("dex")
	s.Require().True(ok)
	s.Equal("+3", mod)

	// The first character becomes the default
	def, err := s.characterRepo.GetDefault(s.ctx, character.GetDefaultInput{
		Game: testGame, OwnerID: testUser,
	})
	s.Require().NoError(err)
	s.Equal("foggy", def.Name)
}

func (s *RosterOrchestratorTestSuite) TestSecondCharacterKeepsDefault() {
	s.addCharacter("foggy", testUser)
	s.addCharacter("brick", testUser)

	def, err := s.characterRepo.GetDefault(s.ctx, character.GetDefaultInput{
		Game: testGame, OwnerID: testUser,
	})
	s.Require().NoError(err)
	s.Equal("foggy", def.Name)
}

func (s *RosterOrchestratorTestSuite) TestRecreateOwnCharacterKeepsMacros() {
	s.addCharacter("foggy", testUser)
	s.Require().NoError(s.svc.AddMacro(s.ctx, &roster.AddMacroInput{
		Game: testGame, OwnerID: testUser, Character: "foggy",
		Name: "stealth", Template: "d20{dexmod}",
	}))

	// Recreate with new scores
	_, err := s.svc.AddCharacter(s.ctx, &roster.AddCharacterInput{
		Game:            testGame,
		OwnerID:         testUser,
		Name:            "foggy",
		Scores:          []int{10, 18, 12, 8, 14, 11},
		ProficientRolls: []string{"stealth"},
		HitDice:         6,
		Level:           6,
	})
	s.Require().NoError(err)

	out, err := s.svc.ShowCharacter(s.ctx, &roster.ShowCharacterInput{Game: testGame, Name: "foggy"})
	s.Require().NoError(err)
	s.Equal(6, out.Character.Level)
	s.Equal("d20{dexmod}", out.Character.Macros["stealth"])
}

func (s *RosterOrchestratorTestSuite) TestCannotRecreateAnotherPlayersCharacter() {
	s.addCharacter("foggy", testUser)

	_, err := s.svc.AddCharacter(s.ctx, &roster.AddCharacterInput{
		Game:            testGame,
		OwnerID:         otherUser,
		Name:            "foggy",
		Scores:          []int{10, 10, 10, 10, 10, 10},
		ProficientRolls: nil,
		HitDice:         1,
		Level:           1,
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *RosterOrchestratorTestSuite) TestAddCharacterValidation() {
	_, err := s.svc.AddCharacter(s.ctx, &roster.AddCharacterInput{
		Game:    testGame,
		OwnerID: testUser,
		Name:    "foggy",
		Scores:  []int{10, 16},
		Level:   5,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Scores")
}

func (s *RosterOrchestratorTestSuite) TestDeleteCharacterSwitchesDefault() {
	s.addCharacter("foggy", testUser)
	s.addCharacter("brick", testUser)

	out, err := s.svc.DeleteCharacter(s.ctx, &roster.DeleteCharacterInput{
		Game: testGame, OwnerID: testUser, Name: "foggy",
	})
	s.Require().NoError(err)
	s.Equal("brick", out.NewDefault)

	_, err = s.svc.ShowCharacter(s.ctx, &roster.ShowCharacterInput{Game: testGame, Name: "foggy"})
	s.True(errors.IsNotFound(err))
}

func (s *RosterOrchestratorTestSuite) TestDeleteLastCharacterClearsDefault() {
	s.addCharacter("foggy", testUser)

	out, err := s.svc.DeleteCharacter(s.ctx, &roster.DeleteCharacterInput{
		Game: testGame, OwnerID: testUser, Name: "foggy",
	})
	s.Require().NoError(err)
	s.Empty(out.NewDefault)

	_, err = s.characterRepo.GetDefault(s.ctx, character.GetDefaultInput{
		Game: testGame, OwnerID: testUser,
	})
	s.True(errors.IsNotFound(err))
}

func (s *RosterOrchestratorTestSuite) TestDeleteUnownedCharacter() {
	s.addCharacter("foggy", testUser)
	s.addCharacter("grizzle", otherUser)

	_, err := s.svc.DeleteCharacter(s.ctx, &roster.DeleteCharacterInput{
		Game: testGame, OwnerID: testUser, Name: "grizzle",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "grizzle")
}

func (s *RosterOrchestratorTestSuite) TestSetDefaultCharacter() {
	s.addCharacter("foggy", testUser)
	s.addCharacter("brick", testUser)

	s.Require().NoError(s.svc.SetDefaultCharacter(s.ctx, &roster.SetDefaultCharacterInput{
		Game: testGame, OwnerID: testUser, Name: "brick",
	}))

	def, err := s.characterRepo.GetDefault(s.ctx, character.GetDefaultInput{
		Game: testGame, OwnerID: testUser,
	})
	s.Require().NoError(err)
	s.Equal("brick", def.Name)

	// Cannot default to someone else's character
	s.addCharacter("grizzle", otherUser)
	err = s.svc.SetDefaultCharacter(s.ctx, &roster.SetDefaultCharacterInput{
		Game: testGame, OwnerID: testUser, Name: "grizzle",
	})
	s.True(errors.IsNotFound(err))
}

func (s *RosterOrchestratorTestSuite) TestAddAndDeleteMacro() {
	s.addCharacter("foggy", testUser)

	s.Require().NoError(s.svc.AddMacro(s.ctx, &roster.AddMacroInput{
		Game: testGame, OwnerID: testUser, Character: "foggy",
		Name: "sneak", Template: "d20{dexmod}{adv_or_disadv}",
	}))

	out, err := s.svc.ShowCharacter(s.ctx, &roster.ShowCharacterInput{Game: testGame, Name: "foggy"})
	s.Require().NoError(err)
	s.Equal("d20{dexmod}{adv_or_disadv}", out.Character.Macros["sneak"])

	del, err := s.svc.DeleteMacro(s.ctx, &roster.DeleteMacroInput{
		Game: testGame, OwnerID: testUser, Character: "foggy", Name: "sneak",
	})
	s.Require().NoError(err)
	s.True(del.Existed)

	del, err = s.svc.DeleteMacro(s.ctx, &roster.DeleteMacroInput{
		Game: testGame, OwnerID: testUser, Character: "foggy", Name: "sneak",
	})
	s.Require().NoError(err)
	s.False(del.Existed)
}

func (s *RosterOrchestratorTestSuite) TestMacroOwnershipEnforced() {
	s.addCharacter("grizzle", otherUser)

	err := s.svc.AddMacro(s.ctx, &roster.AddMacroInput{
		Game: testGame, OwnerID: testUser, Character: "grizzle",
		Name: "sneak", Template: "d20",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RosterOrchestratorTestSuite) TestGlobalMacros() {
	s.Require().NoError(s.svc.SetGlobalMacro(s.ctx, &roster.SetGlobalMacroInput{
		Game: testGame, Name: "init", Template: "d20{dexmod}{adv_or_disadv}",
	}))

	del, err := s.svc.DeleteGlobalMacro(s.ctx, &roster.DeleteGlobalMacroInput{
		Game: testGame, Name: "init",
	})
	s.Require().NoError(err)
	s.True(del.Existed)

	del, err = s.svc.DeleteGlobalMacro(s.ctx, &roster.DeleteGlobalMacroInput{
		Game: testGame, Name: "init",
	})
	s.Require().NoError(err)
	s.False(del.Existed)
}

func (s *RosterOrchestratorTestSuite) TestConfigValidation() {
	_, err := roster.NewOrchestrator(&roster.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRosterOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(RosterOrchestratorTestSuite))
}
