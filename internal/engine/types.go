package engine

import (
	"github.com/manorgames/manor-api/internal/entities"
)

// Occupancy carries the live token positions a calculation must respect
type Occupancy struct {
	Tokens  []entities.PlayerToken
	Weapons []entities.WeaponToken
}

// ValidateStepInput asks whether moving one tile from From to To is legal
type ValidateStepInput struct {
	From      entities.Position
	To        entities.Position
	Occupancy Occupancy
}

// ValidateStepOutput reports single-step legality
type ValidateStepOutput struct {
	Legal bool
}

// ResolveMoveInput asks whether the token in MoverSlot can reach
// Destination with DieValue steps
type ResolveMoveInput struct {
	MoverSlot   int
	Destination entities.Position
	DieValue    int
	Occupancy   Occupancy
}

// ResolveMoveOutput reports reachability. StepsUsed is meaningful only
// when Reachable is true and never exceeds the die value.
type ResolveMoveOutput struct {
	Reachable bool
	StepsUsed int
}

// FindFreeRoomTileInput asks for a placement tile inside Room
type FindFreeRoomTileInput struct {
	Room      entities.TileKind
	Occupancy Occupancy
}

// FindFreeRoomTileOutput carries the chosen placement tile
type FindFreeRoomTileOutput struct {
	Position entities.Position
}

// DescribeTileInput asks for the hover text at a position
type DescribeTileInput struct {
	Position  entities.Position
	Occupancy Occupancy
}

// DescribeTileOutput carries the hover text
type DescribeTileOutput struct {
	Description string
}
