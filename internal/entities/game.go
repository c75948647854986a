package entities

import "time"

// GameStatus tracks whether a game is still being played
type GameStatus string

// Game statuses
const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusComplete   GameStatus = "complete"
)

// GameState is the full serializable state of one game. The repository
// stores it as a JSON snapshot; the turn state machine mutates it one
// resolved action at a time.
type GameState struct {
	ID      string     `json:"id"`
	Status  GameStatus `json:"status"`
	Tokens  [NumCharacters]PlayerToken `json:"tokens"`
	Weapons [NumWeapons]WeaponToken    `json:"weapons"`

	// Solution is the hidden envelope. Query outputs redact it while the
	// game is in progress.
	Solution Solution `json:"solution"`

	// Turn is the cursor into the six token slots. Non-playing and
	// eliminated slots keep their place in the rotation and are skipped
	// without a die roll.
	Turn           int  `json:"turn"`
	DieValue       int  `json:"die_value"`
	MovesRemaining int  `json:"moves_remaining"`
	Winner         *int `json:"winner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveToken returns the token whose turn it is
func (g *GameState) ActiveToken() *PlayerToken {
	return &g.Tokens[g.Turn]
}

// TokenAt returns the slot of the player token standing on pos, or -1
func (g *GameState) TokenAt(pos Position) int {
	for i := range g.Tokens {
		if g.Tokens[i].Position == pos {
			return i
		}
	}
	return -1
}

// WeaponAt returns the index of the weapon token standing on pos, or -1
func (g *GameState) WeaponAt(pos Position) int {
	for i := range g.Weapons {
		if g.Weapons[i].Position == pos {
			return i
		}
	}
	return -1
}

// ActiveCount returns how many tokens are still playing and not eliminated
func (g *GameState) ActiveCount() int {
	n := 0
	for i := range g.Tokens {
		if g.Tokens[i].Active() {
			n++
		}
	}
	return n
}

// LastActive returns the slot of the sole remaining active token, or -1
// when zero or more than one remain.
func (g *GameState) LastActive() int {
	last := -1
	for i := range g.Tokens {
		if g.Tokens[i].Active() {
			if last != -1 {
				return -1
			}
			last = i
		}
	}
	return last
}
