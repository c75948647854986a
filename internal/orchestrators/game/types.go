package game

import (
	"time"

	"github.com/manorgames/manor-api/internal/entities"
)

// PlayerSetup pairs a player's name with their chosen character slot
type PlayerSetup struct {
	Name          string
	CharacterSlot int
}

// StartGameInput holds the data to create a new game
type StartGameInput struct {
	Players []PlayerSetup

	// Seed, when set, makes the shuffle and weapon placement reproducible
	Seed *int64

	// TTL overrides the repository's storage TTL
	TTL time.Duration
}

// StartGameOutput returns the freshly created game
type StartGameOutput struct {
	Game *entities.GameState
}

// RequestMoveInput asks to move the active token to a destination using
// the turn's remaining die budget
type RequestMoveInput struct {
	GameID      string
	TokenSlot   int
	Destination entities.Position
}

// RequestMoveOutput reports the outcome of a move request. A rejected
// move leaves the game state and the budget unchanged; Reason says why.
type RequestMoveOutput struct {
	Rejected       bool
	Reason         string
	StepsUsed      int
	MovesRemaining int
	Position       entities.Position
}

// RequestSuggestionInput proposes a character and weapon in the room the
// active token stands in
type RequestSuggestionInput struct {
	GameID    string
	TokenSlot int
	Room      entities.Card
	Character entities.Card
	Weapon    entities.Card
}

// SuggestionMatch names the first token holding a card that refutes the
// suggestion
type SuggestionMatch struct {
	Slot       int
	PlayerName string
	Card       entities.Card
}

// RequestSuggestionOutput reports the poll result. Match is nil when no
// other playing token held any of the three cards.
type RequestSuggestionOutput struct {
	Match *SuggestionMatch
}

// RequestAccusationInput claims the full solution
type RequestAccusationInput struct {
	GameID    string
	TokenSlot int
	Room      entities.Card
	Character entities.Card
	Weapon    entities.Card
}

// AccusationCheck reports one compared slot. Checks stop at the first
// wrong card, so a wrong character never reveals the weapon or room.
type AccusationCheck struct {
	Card    entities.Card
	Correct bool
}

// RequestAccusationOutput reports the verdict. A losing accusation
// eliminates the accuser and ends their turn.
type RequestAccusationOutput struct {
	Won        bool
	Checks     []AccusationCheck
	Eliminated bool
	Game       *entities.GameState
}

// EndTurnInput ends the active token's turn
type EndTurnInput struct {
	GameID    string
	TokenSlot int
}

// EndTurnOutput returns the game after the cursor advanced
type EndTurnOutput struct {
	Game *entities.GameState
}

// GetGameInput identifies a game to fetch
type GetGameInput struct {
	GameID string
}

// GetGameOutput returns the fetched game
type GetGameOutput struct {
	Game *entities.GameState
}

// HandOfInput asks for one token's hand
type HandOfInput struct {
	GameID    string
	TokenSlot int
}

// HandOfOutput returns the hand in deal order
type HandOfOutput struct {
	Cards []entities.Card
}

// HoverInput asks for the hover text at a board position
type HoverInput struct {
	GameID   string
	Position entities.Position
}

// HoverOutput carries the hover text
type HoverOutput struct {
	Description string
}

// TileKindAtInput asks for the static tile kind at a position
type TileKindAtInput struct {
	Position entities.Position
}

// TileKindAtOutput names the tile kind
type TileKindAtOutput struct {
	Kind entities.TileKind
}
