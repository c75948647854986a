// Package engine defines the movement and placement rules interface for
// the board
package engine

import (
	"context"
)

// Engine provides movement legality, reachability, and placement
// calculations. Implementations are stateless: every call receives the
// live token and weapon snapshots it should treat as occupancy.
type Engine interface {
	// ValidateStep checks whether one single-tile step is legal
	ValidateStep(ctx context.Context, input *ValidateStepInput) (*ValidateStepOutput, error)

	// ResolveMove searches for a path from the mover's position to the
	// destination within the die budget
	ResolveMove(ctx context.Context, input *ResolveMoveInput) (*ResolveMoveOutput, error)

	// FindFreeRoomTile picks the placement tile for a token moved into a
	// room by a suggestion or at setup
	FindFreeRoomTile(ctx context.Context, input *FindFreeRoomTileInput) (*FindFreeRoomTileOutput, error)

	// DescribeTile renders the hover text for a board position
	DescribeTile(ctx context.Context, input *DescribeTileInput) (*DescribeTileOutput, error)
}
