// Package game provides storage for game state snapshots
package game

//go:generate mockgen -destination=mock/mock_repository.go -package=gamemock github.com/manorgames/manor-api/internal/repositories/game Repository

import (
	"context"
	"time"

	"github.com/manorgames/manor-api/internal/entities"
)

// Repository stores and retrieves game states
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Update(ctx context.Context, game *entities.GameState) error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput holds the data to store a new game
type CreateInput struct {
	Game *entities.GameState
	TTL  time.Duration
}

// CreateOutput returns the stored game
type CreateOutput struct {
	Game *entities.GameState
}

// GetInput identifies a game to retrieve
type GetInput struct {
	ID string
}

// GetOutput returns the retrieved game
type GetOutput struct {
	Game *entities.GameState
}

// DeleteInput identifies a game to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput confirms the removal
type DeleteOutput struct {
	Deleted bool
}
