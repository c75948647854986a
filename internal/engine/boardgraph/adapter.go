// Package boardgraph implements the movement engine against the static
// board topology
package boardgraph

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/manorgames/manor-api/internal/board"
	"github.com/manorgames/manor-api/internal/engine"
	"github.com/manorgames/manor-api/internal/entities"
	"github.com/manorgames/manor-api/internal/errors"
)

// moveCap hard-limits recursion depth independently of the die budget, so
// free movement inside rooms cannot grow the stack without bound.
const moveCap = 10

// Adapter implements engine.Engine over the fixed board graph
type Adapter struct {
	board    *board.Board
	eventBus events.EventBus
}

// Config holds the dependencies for the board graph adapter
type Config struct {
	Board    *board.Board
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Board == nil {
		vb.RequiredField("Board")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

// NewAdapter creates a new board graph adapter with the provided dependencies
func NewAdapter(cfg *Config) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Adapter{
		board:    cfg.Board,
		eventBus: cfg.EventBus,
	}, nil
}

// Ensure Adapter implements the Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ValidateStep checks whether one single-tile step is legal
func (a *Adapter) ValidateStep(_ context.Context, input *engine.ValidateStepInput) (*engine.ValidateStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &engine.ValidateStepOutput{
		Legal: a.stepLegal(input.From, input.To, input.Occupancy),
	}, nil
}

// stepLegal applies the single-step movement rules:
//   - both tiles must be on the grid
//   - a tile holding another player token is blocked (weapons do not block)
//   - corridor, door, and start tiles connect to corridor and door tiles
//   - stepping onto a passage mouth requires the far end to be clear
//   - rooms, doors, and passages connect to each other
//
// Everything else, notably corridor directly into a room, is illegal.
func (a *Adapter) stepLegal(from, to entities.Position, occ engine.Occupancy) bool {
	kindFrom := a.board.TileKindAt(from)
	kindTo := a.board.TileKindAt(to)
	if kindFrom == entities.TileInvalid || kindTo == entities.TileInvalid {
		return false
	}

	if tokenAt(occ, to) != -1 {
		return false
	}

	openFrom := kindFrom == entities.TileCorridor || kindFrom == entities.TileDoor || kindFrom == entities.TileStart
	openTo := kindTo == entities.TileCorridor || kindTo == entities.TileDoor
	if openFrom && openTo {
		return true
	}

	if kindTo == entities.TilePassage && kindFrom != entities.TilePassage {
		if tokenAt(occ, a.board.PassageTarget(to)) != -1 {
			return false
		}
	}

	roomSideFrom := kindFrom.IsRoom() || kindFrom == entities.TileDoor || kindFrom == entities.TilePassage
	roomSideTo := kindTo.IsRoom() || kindTo == entities.TileDoor || kindTo == entities.TilePassage
	return roomSideFrom && roomSideTo
}

// ResolveMove searches for a path from the mover's position to the
// destination within the die budget
func (a *Adapter) ResolveMove(_ context.Context, input *engine.ResolveMoveInput) (*engine.ResolveMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MoverSlot < 0 || input.MoverSlot >= len(input.Occupancy.Tokens) {
		return nil, errors.InvalidArgumentf("mover slot %d out of range", input.MoverSlot)
	}
	if input.DieValue < 0 {
		return nil, errors.InvalidArgumentf("die value %d is negative", input.DieValue)
	}

	destKind := a.board.TileKindAt(input.Destination)
	if destKind == entities.TileInvalid || destKind == entities.TileWall {
		return &engine.ResolveMoveOutput{}, nil
	}

	from := input.Occupancy.Tokens[input.MoverSlot].Position

	// The budget starts at die+1 because the search pre-decrements on
	// every non-room tile, including the starting one.
	remaining := a.search(from, input.Destination, input.DieValue+1, moveCap, input.Occupancy)
	if remaining < 0 {
		return &engine.ResolveMoveOutput{}, nil
	}

	steps := input.DieValue - remaining
	if steps < 0 {
		// A zero-distance request from inside a room keeps the full budget
		steps = 0
	}
	return &engine.ResolveMoveOutput{
		Reachable: true,
		StepsUsed: steps,
	}, nil
}

// search walks the four cardinal steps, plus the passage teleport when
// standing on a passage mouth, and returns the largest die budget left on
// reaching dest, or -1. The budget only shrinks when leaving a non-room
// tile; depth shrinks every level to bound the recursion.
func (a *Adapter) search(cur, dest entities.Position, budget, depth int, occ engine.Occupancy) int {
	if !a.board.IsRoomTile(cur) {
		budget--
	}
	if cur == dest {
		return budget
	}
	if budget < 0 || depth <= 0 {
		return -1
	}
	depth--

	best := -1
	for _, next := range cur.Neighbors() {
		if a.stepLegal(cur, next, occ) {
			if got := a.search(next, dest, budget, depth, occ); got > best {
				best = got
			}
		}
	}
	if a.board.TileKindAt(cur) == entities.TilePassage {
		target := a.board.PassageTarget(cur)
		if a.stepLegal(cur, target, occ) {
			if got := a.search(target, dest, budget, depth, occ); got > best {
				best = got
			}
		}
	}
	return best
}

// FindFreeRoomTile picks the first room tile, scanning rows top to bottom,
// that is unoccupied and not adjacent to a door or passage. Blocking an
// entrance with a parked token would cut the room off, so those tiles are
// never used.
func (a *Adapter) FindFreeRoomTile(_ context.Context, input *engine.FindFreeRoomTileInput) (*engine.FindFreeRoomTileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Room.IsRoom() {
		return nil, errors.InvalidArgumentf("tile kind %v is not a room", input.Room)
	}

	for _, pos := range a.board.RoomTiles(input.Room) {
		if tokenAt(input.Occupancy, pos) != -1 || weaponAt(input.Occupancy, pos) != -1 {
			continue
		}
		if a.adjacentToEntrance(pos) {
			continue
		}
		return &engine.FindFreeRoomTileOutput{Position: pos}, nil
	}

	// Room sizes comfortably exceed the token count, so exhaustion means
	// the board data itself is broken.
	panic(fmt.Sprintf("boardgraph: no free tile in room %v", input.Room))
}

func (a *Adapter) adjacentToEntrance(pos entities.Position) bool {
	for _, n := range pos.Neighbors() {
		kind := a.board.TileKindAt(n)
		if kind == entities.TileDoor || kind == entities.TilePassage {
			return true
		}
	}
	return false
}

// DescribeTile renders the hover text for a board position
func (a *Adapter) DescribeTile(_ context.Context, input *engine.DescribeTileInput) (*engine.DescribeTileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if slot := tokenAt(input.Occupancy, input.Position); slot != -1 {
		token := input.Occupancy.Tokens[slot]
		if token.Playing {
			return &engine.DescribeTileOutput{
				Description: fmt.Sprintf("Player %s (%s)", token.PlayerName, token.CharacterName()),
			}, nil
		}
		return &engine.DescribeTileOutput{
			Description: fmt.Sprintf("Player %s", token.CharacterName()),
		}, nil
	}

	if idx := weaponAt(input.Occupancy, input.Position); idx != -1 {
		return &engine.DescribeTileOutput{
			Description: fmt.Sprintf("Weapon %s", input.Occupancy.Weapons[idx].Name()),
		}, nil
	}

	return &engine.DescribeTileOutput{
		Description: a.board.TileKindAt(input.Position).String(),
	}, nil
}

func tokenAt(occ engine.Occupancy, pos entities.Position) int {
	for i := range occ.Tokens {
		if occ.Tokens[i].Position == pos {
			return i
		}
	}
	return -1
}

func weaponAt(occ engine.Occupancy, pos entities.Position) int {
	for i := range occ.Weapons {
		if occ.Weapons[i].Position == pos {
			return i
		}
	}
	return -1
}
