// Package game implements the game orchestrator: the turn state machine
// and the suggestion and accusation rules on top of the movement engine.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamesvcmock github.com/manorgames/manor-api/internal/orchestrators/game Service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/manorgames/manor-api/internal/board"
	"github.com/manorgames/manor-api/internal/engine"
	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
	"github.com/manorgames/manor-api/internal/pkg/idgen"
	gamerepo "github.com/manorgames/manor-api/internal/repositories/game"
)

const (
	minPlayers = 3
	maxPlayers = 6
	dieSides   = 6
)

// Service defines the interface for game operations
type Service interface {
	// StartGame validates the player lineup, deals the deck, places the
	// weapons, and rolls for the first turn
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RequestMove resolves a destination against the turn's remaining
	// die budget
	RequestMove(ctx context.Context, input *RequestMoveInput) (*RequestMoveOutput, error)

	// RequestSuggestion relocates the named tokens into the room and
	// polls the other hands for a refuting card
	RequestSuggestion(ctx context.Context, input *RequestSuggestionInput) (*RequestSuggestionOutput, error)

	// RequestAccusation checks a full claim against the solution
	RequestAccusation(ctx context.Context, input *RequestAccusationInput) (*RequestAccusationOutput, error)

	// EndTurn advances the cursor to the next active token
	EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error)

	// Query surface for presentation layers
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
	HandOf(ctx context.Context, input *HandOfInput) (*HandOfOutput, error)
	Hover(ctx context.Context, input *HoverInput) (*HoverOutput, error)
	TileKindAt(ctx context.Context, input *TileKindAtInput) (*TileKindAtOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	GameRepo    gamerepo.Repository
	Engine      engine.Engine
	Board       *board.Board
	IDGenerator idgen.Generator
	DiceRoller  dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameRepo == nil {
		vb.RequiredField("GameRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Board == nil {
		vb.RequiredField("Board")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	gameRepo gamerepo.Repository
	engine   engine.Engine
	board    *board.Board
	idGen    idgen.Generator
	dice     dice.Roller
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		gameRepo: cfg.GameRepo,
		engine:   cfg.Engine,
		board:    cfg.Board,
		idGen:    cfg.IDGenerator,
		dice:     cfg.DiceRoller,
	}, nil
}

// StartGame validates the lineup, builds the six tokens, draws the
// envelope, deals the rest of the deck, places the weapons, and rolls the
// first die.
func (o *orchestrator) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("players", len(input.Players), minPlayers, maxPlayers, vb)
	seen := make(map[int]bool)
	for i, p := range input.Players {
		if p.Name == "" {
			vb.Fieldf("players", "player %d has no name", i)
		}
		if p.CharacterSlot < 0 || p.CharacterSlot >= entities.NumCharacters {
			vb.Fieldf("players", "player %d chose character slot %d", i, p.CharacterSlot)
		} else if seen[p.CharacterSlot] {
			vb.Fieldf("players", "character slot %d chosen twice", p.CharacterSlot)
		} else {
			seen[p.CharacterSlot] = true
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if input.Seed != nil {
		rng = rand.New(rand.NewSource(*input.Seed))
	}

	game := &entities.GameState{
		ID:     o.idGen.Generate(),
		Status: entities.GameStatusInProgress,
	}
	for slot := 0; slot < entities.NumCharacters; slot++ {
		game.Tokens[slot] = entities.NewPlayerToken(slot)
	}
	for _, p := range input.Players {
		game.Tokens[p.CharacterSlot] = entities.NewPlayingToken(p.CharacterSlot, p.Name)
	}

	o.dealCards(game, rng)

	if err := o.placeWeapons(ctx, game, rng); err != nil {
		return nil, err
	}

	// Slot 0 leads the rotation; if it is a placeholder the cursor skips
	// ahead before the first roll.
	game.Turn = 0
	if game.Tokens[0].Active() {
		if err := o.rollDie(game); err != nil {
			return nil, err
		}
	} else if err := o.advanceTurn(game); err != nil {
		return nil, err
	}

	if _, err := o.gameRepo.Create(ctx, gamerepo.CreateInput{Game: game, TTL: input.TTL}); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	slog.Info("Game started",
		"game_id", game.ID,
		"players", len(input.Players),
		"first_turn", game.Turn,
		"die", game.DieValue,
	)

	return &StartGameOutput{Game: game}, nil
}

// dealCards shuffles the deck, draws the solution envelope, and deals the
// remaining 18 cards round-robin to playing tokens in slot order.
func (o *orchestrator) dealCards(game *entities.GameState, rng *rand.Rand) {
	deck := entities.NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var haveChar, haveWeapon, haveRoom bool
	remaining := make([]entities.Card, 0, len(deck)-3)
	for _, c := range deck {
		switch {
		case c.Kind == entities.CardKindCharacter && !haveChar:
			game.Solution.Character = c
			haveChar = true
		case c.Kind == entities.CardKindWeapon && !haveWeapon:
			game.Solution.Weapon = c
			haveWeapon = true
		case c.Kind == entities.CardKindRoom && !haveRoom:
			game.Solution.Room = c
			haveRoom = true
		default:
			remaining = append(remaining, c)
		}
	}

	var playing []int
	for slot := range game.Tokens {
		if game.Tokens[slot].Playing {
			playing = append(playing, slot)
		}
	}
	for i, c := range remaining {
		slot := playing[i%len(playing)]
		game.Tokens[slot].Hand = append(game.Tokens[slot].Hand, c)
	}
}

// placeWeapons assigns the six weapons to six distinct rooms; three rooms
// start empty.
func (o *orchestrator) placeWeapons(ctx context.Context, game *entities.GameState, rng *rand.Rand) error {
	roomOrder := rng.Perm(entities.NumRooms)
	for i := 0; i < entities.NumWeapons; i++ {
		out, err := o.engine.FindFreeRoomTile(ctx, &engine.FindFreeRoomTileInput{
			Room:      entities.RoomTileKind(roomOrder[i]),
			Occupancy: o.occupancy(game),
		})
		if err != nil {
			return errors.Wrapf(err, "failed to place weapon %d", i)
		}
		game.Weapons[i] = entities.WeaponToken{Index: i, Position: out.Position}
	}
	return nil
}

// RequestMove resolves a destination against the turn's remaining die
// budget. A rejected move changes nothing and does not consume budget.
func (o *orchestrator) RequestMove(ctx context.Context, input *RequestMoveInput) (*RequestMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	game, err := o.loadForTurn(ctx, input.GameID, input.TokenSlot)
	if err != nil {
		return nil, err
	}

	resolved, err := o.engine.ResolveMove(ctx, &engine.ResolveMoveInput{
		MoverSlot:   input.TokenSlot,
		Destination: input.Destination,
		DieValue:    game.MovesRemaining,
		Occupancy:   o.occupancy(game),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve move")
	}

	if !resolved.Reachable {
		return &RequestMoveOutput{
			Rejected:       true,
			Reason:         fmt.Sprintf("destination %s is not reachable with %d moves", input.Destination, game.MovesRemaining),
			MovesRemaining: game.MovesRemaining,
			Position:       game.Tokens[input.TokenSlot].Position,
		}, nil
	}

	game.Tokens[input.TokenSlot].Position = input.Destination
	game.MovesRemaining -= resolved.StepsUsed
	if err := o.gameRepo.Update(ctx, game); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	slog.Info("Move resolved",
		"game_id", game.ID,
		"slot", input.TokenSlot,
		"destination", input.Destination,
		"steps_used", resolved.StepsUsed,
		"moves_remaining", game.MovesRemaining,
	)

	return &RequestMoveOutput{
		StepsUsed:      resolved.StepsUsed,
		MovesRemaining: game.MovesRemaining,
		Position:       input.Destination,
	}, nil
}

// RequestSuggestion relocates the named character and weapon tokens into
// the room, then polls each later seat in rotation order for a card
// matching the room, weapon, or character. The first holder stops the
// scan.
func (o *orchestrator) RequestSuggestion(ctx context.Context, input *RequestSuggestionInput) (*RequestSuggestionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateClaim(input.Room, input.Character, input.Weapon); err != nil {
		return nil, err
	}

	game, err := o.loadForTurn(ctx, input.GameID, input.TokenSlot)
	if err != nil {
		return nil, err
	}

	roomKind := entities.RoomTileKind(input.Room.Index)
	if o.board.TileKindAt(game.Tokens[input.TokenSlot].Position) != roomKind {
		return nil, errors.FailedPreconditionf("token is not in the %s", roomKind)
	}

	if err := o.summonToken(ctx, game, input.Character.Index, roomKind); err != nil {
		return nil, err
	}
	if err := o.summonWeapon(ctx, game, input.Weapon.Index, roomKind); err != nil {
		return nil, err
	}

	claim := []entities.Card{input.Room, input.Weapon, input.Character}
	var match *SuggestionMatch
	for i := 1; i < entities.NumCharacters; i++ {
		seat := (input.TokenSlot + i) % entities.NumCharacters
		token := &game.Tokens[seat]
		if !token.Playing {
			continue
		}
		if card, ok := token.HoldsMatch(claim); ok {
			match = &SuggestionMatch{
				Slot:       seat,
				PlayerName: token.PlayerName,
				Card:       card,
			}
			break
		}
	}

	if err := o.gameRepo.Update(ctx, game); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	slog.Info("Suggestion resolved",
		"game_id", game.ID,
		"slot", input.TokenSlot,
		"room", input.Room.Name(),
		"matched", match != nil,
	)

	return &RequestSuggestionOutput{Match: match}, nil
}

// summonToken moves a character token into the room unless it already
// stands there.
func (o *orchestrator) summonToken(ctx context.Context, game *entities.GameState, slot int, room entities.TileKind) error {
	if o.board.TileKindAt(game.Tokens[slot].Position) == room {
		return nil
	}
	out, err := o.engine.FindFreeRoomTile(ctx, &engine.FindFreeRoomTileInput{
		Room:      room,
		Occupancy: o.occupancy(game),
	})
	if err != nil {
		return errors.Wrap(err, "failed to place suggested character")
	}
	game.Tokens[slot].Position = out.Position
	return nil
}

// summonWeapon moves a weapon token into the room unless it already
// stands there.
func (o *orchestrator) summonWeapon(ctx context.Context, game *entities.GameState, index int, room entities.TileKind) error {
	if o.board.TileKindAt(game.Weapons[index].Position) == room {
		return nil
	}
	out, err := o.engine.FindFreeRoomTile(ctx, &engine.FindFreeRoomTileInput{
		Room:      room,
		Occupancy: o.occupancy(game),
	})
	if err != nil {
		return errors.Wrap(err, "failed to place suggested weapon")
	}
	game.Weapons[index].Position = out.Position
	return nil
}

// RequestAccusation compares the claim against the solution, character
// then weapon then room, stopping at the first wrong card. A correct
// claim wins the game; a wrong one eliminates the accuser and ends their
// turn.
func (o *orchestrator) RequestAccusation(ctx context.Context, input *RequestAccusationInput) (*RequestAccusationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateClaim(input.Room, input.Character, input.Weapon); err != nil {
		return nil, err
	}

	game, err := o.loadForTurn(ctx, input.GameID, input.TokenSlot)
	if err != nil {
		return nil, err
	}

	pairs := []struct {
		claimed, actual entities.Card
	}{
		{input.Character, game.Solution.Character},
		{input.Weapon, game.Solution.Weapon},
		{input.Room, game.Solution.Room},
	}

	won := true
	var checks []AccusationCheck
	for _, p := range pairs {
		correct := p.claimed == p.actual
		checks = append(checks, AccusationCheck{Card: p.claimed, Correct: correct})
		if !correct {
			won = false
			break
		}
	}

	out := &RequestAccusationOutput{Won: won, Checks: checks}
	if won {
		slot := input.TokenSlot
		game.Winner = &slot
		game.Status = entities.GameStatusComplete
	} else {
		game.Tokens[input.TokenSlot].Eliminated = true
		out.Eliminated = true
		if err := o.finishTurn(game); err != nil {
			return nil, err
		}
	}

	if err := o.gameRepo.Update(ctx, game); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	slog.Info("Accusation resolved",
		"game_id", game.ID,
		"slot", input.TokenSlot,
		"won", won,
	)

	out.Game = game
	return out, nil
}

// EndTurn advances the cursor to the next active token
func (o *orchestrator) EndTurn(ctx context.Context, input *EndTurnInput) (*EndTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	game, err := o.loadForTurn(ctx, input.GameID, input.TokenSlot)
	if err != nil {
		return nil, err
	}

	if err := o.finishTurn(game); err != nil {
		return nil, err
	}
	if err := o.gameRepo.Update(ctx, game); err != nil {
		return nil, errors.Wrap(err, "failed to store game")
	}

	return &EndTurnOutput{Game: game}, nil
}

// finishTurn runs the end-of-turn checks: a sole surviving active token
// wins outright, otherwise the cursor advances past non-playing and
// eliminated slots without consuming a die roll.
func (o *orchestrator) finishTurn(game *entities.GameState) error {
	if last := game.LastActive(); last != -1 {
		game.Winner = &last
		game.Status = entities.GameStatusComplete
		return nil
	}
	return o.advanceTurn(game)
}

func (o *orchestrator) advanceTurn(game *entities.GameState) error {
	for i := 0; i < entities.NumCharacters; i++ {
		game.Turn = (game.Turn + 1) % entities.NumCharacters
		if game.Tokens[game.Turn].Active() {
			return o.rollDie(game)
		}
	}
	return errors.Internal("no active tokens remain")
}

func (o *orchestrator) rollDie(game *entities.GameState) error {
	value, err := o.dice.Roll(dieSides)
	if err != nil {
		return errors.Wrap(err, "failed to roll die")
	}
	game.DieValue = value
	game.MovesRemaining = value
	return nil
}

// GetGame fetches a game by ID
func (o *orchestrator) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	get, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}
	return &GetGameOutput{Game: get.Game}, nil
}

// HandOf returns one token's hand in deal order
func (o *orchestrator) HandOf(ctx context.Context, input *HandOfInput) (*HandOfOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TokenSlot < 0 || input.TokenSlot >= entities.NumCharacters {
		return nil, errors.InvalidArgumentf("token slot %d out of range", input.TokenSlot)
	}

	get, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}
	return &HandOfOutput{Cards: get.Game.Tokens[input.TokenSlot].Hand}, nil
}

// Hover renders the hover text at a position
func (o *orchestrator) Hover(ctx context.Context, input *HoverInput) (*HoverOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	get, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}

	described, err := o.engine.DescribeTile(ctx, &engine.DescribeTileInput{
		Position:  input.Position,
		Occupancy: o.occupancy(get.Game),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to describe tile")
	}
	return &HoverOutput{Description: described.Description}, nil
}

// TileKindAt reports the static tile kind at a position
func (o *orchestrator) TileKindAt(_ context.Context, input *TileKindAtInput) (*TileKindAtOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &TileKindAtOutput{Kind: o.board.TileKindAt(input.Position)}, nil
}

// loadForTurn fetches a game and verifies the request comes from the
// active token while the game is still running.
func (o *orchestrator) loadForTurn(ctx context.Context, gameID string, slot int) (*entities.GameState, error) {
	if gameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}
	if slot < 0 || slot >= entities.NumCharacters {
		return nil, errors.InvalidArgumentf("token slot %d out of range", slot)
	}

	get, err := o.gameRepo.Get(ctx, gamerepo.GetInput{ID: gameID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get game")
	}
	game := get.Game

	if game.Status != entities.GameStatusInProgress {
		return nil, errors.FailedPrecondition("game is already over")
	}
	if slot != game.Turn {
		return nil, errors.FailedPreconditionf("not slot %d's turn", slot).
			WithMeta("active_slot", game.Turn)
	}
	if !game.Tokens[slot].Active() {
		return nil, errors.FailedPreconditionf("slot %d is not an active player", slot)
	}
	return game, nil
}

func (o *orchestrator) occupancy(game *entities.GameState) engine.Occupancy {
	return engine.Occupancy{
		Tokens:  game.Tokens[:],
		Weapons: game.Weapons[:],
	}
}

// validateClaim checks the card kinds and indices of a suggestion or
// accusation triple.
func validateClaim(room, character, weapon entities.Card) error {
	vb := errors.NewValidationBuilder()
	if room.Kind != entities.CardKindRoom || !room.Valid() {
		vb.InvalidField("Room", "must be a room card")
	}
	if character.Kind != entities.CardKindCharacter || !character.Valid() {
		vb.InvalidField("Character", "must be a character card")
	}
	if weapon.Kind != entities.CardKindWeapon || !weapon.Valid() {
		vb.InvalidField("Weapon", "must be a weapon card")
	}
	return vb.Build()
}
