package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
	"github.com/manorgames/manor-api/internal/pkg/clock"
	redisclient "github.com/manorgames/manor-api/internal/redis"
	game "github.com/manorgames/manor-api/internal/repositories/game"
	"github.com/manorgames/manor-api/internal/testutils"
)

const testGameID = "game_123"

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	clock   *clock.Fixed
	repo    game.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.clock = &clock.Fixed{T: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := game.NewRedisRepository(&game.Config{
		Client: s.client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newGame() *entities.GameState {
	g := &entities.GameState{
		ID:     testGameID,
		Status: entities.GameStatusInProgress,
	}
	for slot := 0; slot < entities.NumCharacters; slot++ {
		g.Tokens[slot] = entities.NewPlayerToken(slot)
	}
	g.Tokens[0] = entities.NewPlayingToken(0, "alice")
	g.Tokens[0].Hand = []entities.Card{entities.WeaponCard(1), entities.RoomCard(3)}
	g.Solution = entities.Solution{
		Character: entities.CharacterCard(2),
		Weapon:    entities.WeaponCard(4),
		Room:      entities.RoomCard(0),
	}
	g.DieValue = 4
	g.MovesRemaining = 4
	return g
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, game.CreateInput{Game: s.newGame()})
	s.Require().NoError(err)
	s.Equal(s.clock.T, created.Game.CreatedAt)
	s.Equal(s.clock.T, created.Game.UpdatedAt)

	got, err := s.repo.Get(s.ctx, game.GetInput{ID: testGameID})
	s.Require().NoError(err)
	s.Equal(testGameID, got.Game.ID)
	s.Equal(entities.GameStatusInProgress, got.Game.Status)
	s.Equal("alice", got.Game.Tokens[0].PlayerName)
	s.Equal([]entities.Card{entities.WeaponCard(1), entities.RoomCard(3)}, got.Game.Tokens[0].Hand)
	s.Equal(entities.CharacterCard(2), got.Game.Solution.Character)
	s.Equal(4, got.Game.MovesRemaining)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, game.CreateInput{Game: s.newGame()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, game.CreateInput{Game: s.newGame()})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, game.CreateInput{Game: nil})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, game.CreateInput{Game: &entities.GameState{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, game.GetInput{ID: "game_nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	created, err := s.repo.Create(s.ctx, game.CreateInput{Game: s.newGame()})
	s.Require().NoError(err)

	s.clock.T = s.clock.T.Add(time.Minute)

	updated := created.Game
	updated.MovesRemaining = 1
	updated.Tokens[0].Position = entities.Position{X: 3, Y: 7}
	s.Require().NoError(s.repo.Update(s.ctx, updated))
	s.Equal(s.clock.T, updated.UpdatedAt)

	got, err := s.repo.Get(s.ctx, game.GetInput{ID: testGameID})
	s.Require().NoError(err)
	s.Equal(1, got.Game.MovesRemaining)
	s.Equal(entities.Position{X: 3, Y: 7}, got.Game.Tokens[0].Position)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	err := s.repo.Update(s.ctx, s.newGame())
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, game.CreateInput{Game: s.newGame()})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, game.DeleteInput{ID: testGameID})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Get(s.ctx, game.GetInput{ID: testGameID})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.Delete(s.ctx, game.DeleteInput{ID: testGameID})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
