package roll_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rollkeeper/roll-api/internal/entities"
	"github.com/rollkeeper/roll-api/internal/errors"
	"github.com/rollkeeper/roll-api/internal/orchestrators/roll"
	"github.com/rollkeeper/roll-api/internal/pkg/clock"
	"github.com/rollkeeper/roll-api/internal/pkg/idgen"
	"github.com/rollkeeper/roll-api/internal/repositories/character"
	macrorepo "github.com/rollkeeper/roll-api/internal/repositories/macro"
	"github.com/rollkeeper/roll-api/internal/repositories/rolllog"
	"github.com/rollkeeper/roll-api/internal/testutils"
)

const (
	testGame  = "inkscription"
	testUser  = "user1"
	otherUser = "user2"
)

// scriptedRoller returns predetermined values, failing the test if the
// script runs dry.
type scriptedRoller struct {
	t      *testing.T
	values []int
	next   int
}

func (r *scriptedRoller) Roll(sides int) int {
	if r.next >= len(r.values) {
		r.t.Fatalf("scripted roller exhausted after %d rolls", r.next)
	}
	v := r.values[r.next]
	r.next++
	return v
}

type RollOrchestratorTestSuite struct {
	suite.Suite
	characterRepo character.Repository
	macroRepo     macrorepo.Repository
	rollLogRepo   rolllog.Repository
	roller        *scriptedRoller
	fixedNow      time.Time
	cleanup       func()
	ctx           context.Context
}

func (s *RollOrchestratorTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()

	var err error
	s.characterRepo, err = character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.macroRepo, err = macrorepo.NewRedis(&macrorepo.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.rollLogRepo, err = rolllog.NewRedis(&rolllog.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.roller = &scriptedRoller{t: s.T()}
	s.fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RollOrchestratorTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RollOrchestratorTestSuite) newService() roll.Service {
	svc, err := roll.NewOrchestrator(&roll.Config{
		CharacterRepo: s.characterRepo,
		MacroRepo:     s.macroRepo,
		RollLogRepo:   s.rollLogRepo,
		Roller:        s.roller,
		IDGenerator:   idgen.NewSequential("roll"),
		Clock:         &clock.Fixed{T: s.fixedNow},
	})
	s.Require().NoError(err)
	return svc
}

// seedCharacter stores a level 5 rogue with dex 16 (modifier +3), a
// stealth macro, and stealth proficiency (+3 at level 5).
func (s *RollOrchestratorTestSuite) seedCharacter(name, owner string, setDefault bool) {
	stats := entities.NewStatBlock()
	stats.Set("str", 10)
	stats.Set("dex", 16)

	ch := &entities.Character{
		Name:            name,
		OwnerID:         owner,
		Level:           5,
		HitDice:         5,
		ProficientRolls: []string{"stealth"},
		Macros: map[string]string{
			"stealth": "d20{dexmod}{is_proficient}{adv_or_disadv}",
			"dash":    "d20{dexmod}",
		},
		Stats: stats,
	}

	_, err := s.characterRepo.Save(s.ctx, character.SaveInput{Game: testGame, Character: ch})
	s.Require().NoError(err)
	s.Require().NoError(s.characterRepo.AssignOwner(s.ctx, character.AssignOwnerInput{
		Game: testGame, OwnerID: owner, Name: name,
	}))
	if setDefault {
		s.Require().NoError(s.characterRepo.SetDefault(s.ctx, character.SetDefaultInput{
			Game: testGame, OwnerID: owner, Name: name,
		}))
	}
}

func (s *RollOrchestratorTestSuite) TestMacroRollForDefaultCharacter() {
	s.seedCharacter("foggy", testUser, true)
	s.roller.values = []int{11, 7}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth"})
	s.Require().NoError(err)

	s.Equal("foggy", out.Character)
	s.Equal("d20+3+3", out.Expression.Raw)
	s.Equal([]int{11}, out.Outcome.Rolls)
	s.Equal([]int{11}, out.Outcome.Chosen)
	s.Equal(17, out.Outcome.Total)
}

func (s *RollOrchestratorTestSuite) TestMacroRollWithAdvantage() {
	s.seedCharacter("foggy", testUser, true)
	s.roller.values = []int{4, 18}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth A"})
	s.Require().NoError(err)

	s.Equal("d20+3+3 A", out.Expression.Raw)
	s.Equal([]int{4}, out.Outcome.Rolls)
	s.Equal([]int{18}, out.Outcome.Rerolls)
	s.Equal([]int{18}, out.Outcome.Chosen)
	s.Equal(24, out.Outcome.Total)
}

func (s *RollOrchestratorTestSuite) TestGlobalMacroWinsOverCharacterMacro() {
	s.seedCharacter("foggy", testUser, true)
	s.Require().NoError(s.macroRepo.Set(s.ctx, macrorepo.SetInput{
		Game: testGame, Name: "stealth", Template: "2d20{dexmod}",
	}))
	s.roller.values = []int{6, 9, 2, 3}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth"})
	s.Require().NoError(err)

	s.Equal("2d20+3", out.Expression.Raw)
	s.Equal([]int{6, 9}, out.Outcome.Rolls)
	s.Equal(18, out.Outcome.Total)
}

func (s *RollOrchestratorTestSuite) TestLiteralExpressionForDefaultCharacter() {
	s.seedCharacter("foggy", testUser, true)
	s.roller.values = []int{5, 2, 12, 1}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "2d6+1"})
	s.Require().NoError(err)

	s.Equal("foggy", out.Character)
	s.Equal([]int{5, 2}, out.Outcome.Rolls)
	s.Equal(8, out.Outcome.Total)
}

func (s *RollOrchestratorTestSuite) TestExplicitCharacterPrefix() {
	s.seedCharacter("foggy", testUser, false)
	s.seedCharacter("brick", testUser, true)
	s.roller.values = []int{10, 3}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "foggy stealth"})
	s.Require().NoError(err)

	s.Equal("foggy", out.Character)
	s.Equal("d20+3+3", out.Expression.Raw)
}

func (s *RollOrchestratorTestSuite) TestCannotRollForUnownedCharacter() {
	s.seedCharacter("foggy", testUser, true)
	s.seedCharacter("grizzle", otherUser, false)
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "grizzle stealth"})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
	s.Contains(err.Error(), "grizzle")
}

func (s *RollOrchestratorTestSuite) TestNoDefaultCharacter() {
	s.seedCharacter("foggy", testUser, false)
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth"})
	s.Require().Error(err)
	s.ErrorIs(err, roll.ErrNoDefaultCharacter)
}

func (s *RollOrchestratorTestSuite) TestAnonymousLiteralRoll() {
	s.roller.values = []int{14, 6}
	svc := s.newService()

	out, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: "stranger", Command: "d20+2"})
	s.Require().NoError(err)

	s.Empty(out.Character)
	s.Equal(16, out.Outcome.Total)
}

func (s *RollOrchestratorTestSuite) TestAnonymousMacroNameFails() {
	// Without a character there is no macro table or stat context
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: "stranger", Command: "stealth"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown command: stealth")
}

func (s *RollOrchestratorTestSuite) TestUnknownCommandForCharacter() {
	s.seedCharacter("foggy", testUser, true)
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "backflip"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "unknown command: backflip")
}

func (s *RollOrchestratorTestSuite) TestRollIsRecorded() {
	s.seedCharacter("foggy", testUser, true)
	s.roller.values = []int{11, 7}
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth"})
	s.Require().NoError(err)

	recent, err := svc.ListRecent(s.ctx, &roll.ListRecentInput{Game: testGame, UserID: testUser})
	s.Require().NoError(err)
	s.Require().Len(recent.Records, 1)

	rec := recent.Records[0]
	s.Equal("roll_1", rec.RollID)
	s.Equal("stealth", rec.Command)
	s.Equal("d20+3+3", rec.Expression)
	s.Equal("foggy", rec.Character)
	s.Equal([]int{11}, rec.Rolls)
	s.Equal(17, rec.Total)
	s.Equal(s.fixedNow, rec.RolledAt.UTC())
}

func (s *RollOrchestratorTestSuite) TestListRecentNewestFirst() {
	s.seedCharacter("foggy", testUser, true)
	s.roller.values = []int{11, 7, 3, 9}
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "stealth"})
	s.Require().NoError(err)
	_, err = s.newServiceWithRoller().Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "dash"})
	s.Require().NoError(err)

	recent, err := svc.ListRecent(s.ctx, &roll.ListRecentInput{Game: testGame, UserID: testUser, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(recent.Records, 1)
	s.Equal("dash", recent.Records[0].Command)
}

// newServiceWithRoller shares the scripted roller but gets a fresh ID
// sequence, so record IDs in multi-roll tests stay unambiguous.
func (s *RollOrchestratorTestSuite) newServiceWithRoller() roll.Service {
	svc, err := roll.NewOrchestrator(&roll.Config{
		CharacterRepo: s.characterRepo,
		MacroRepo:     s.macroRepo,
		RollLogRepo:   s.rollLogRepo,
		Roller:        s.roller,
		IDGenerator:   idgen.NewSequential("roll2"),
		Clock:         &clock.Fixed{T: s.fixedNow},
	})
	s.Require().NoError(err)
	return svc
}

func (s *RollOrchestratorTestSuite) TestInputValidation() {
	svc := s.newService()

	_, err := svc.Roll(s.ctx, &roll.RollInput{UserID: testUser, Command: "d20"})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.Roll(s.ctx, &roll.RollInput{Game: testGame, Command: "d20"})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.Roll(s.ctx, &roll.RollInput{Game: testGame, UserID: testUser, Command: "   "})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.ListRecent(s.ctx, &roll.ListRecentInput{Game: testGame})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RollOrchestratorTestSuite) TestConfigValidation() {
	_, err := roll.NewOrchestrator(&roll.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestRollOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(RollOrchestratorTestSuite))
}
