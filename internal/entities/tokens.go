package entities

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// startPositions holds the fixed start tile for each character slot
var startPositions = [NumCharacters]Position{
	{X: 7, Y: 24},
	{X: 0, Y: 17},
	{X: 9, Y: 0},
	{X: 14, Y: 0},
	{X: 24, Y: 6},
	{X: 24, Y: 19},
}

// StartPosition returns the fixed start tile for a character slot
func StartPosition(slot int) Position {
	mustIndex(slot, NumCharacters, "character")
	return startPositions[slot]
}

// PlayerToken is one of the six character tokens. Slots not claimed by a
// player are non-playing placeholders that still move around the board as
// obstacles and suggestion targets.
type PlayerToken struct {
	Slot       int      `json:"slot"`
	PlayerName string   `json:"player_name,omitempty"`
	Playing    bool     `json:"playing"`
	Eliminated bool     `json:"eliminated"`
	Position   Position `json:"position"`
	Hand       []Card   `json:"hand,omitempty"`
}

// NewPlayerToken creates a non-playing placeholder token at its start tile
func NewPlayerToken(slot int) PlayerToken {
	return PlayerToken{
		Slot:     slot,
		Position: StartPosition(slot),
	}
}

// NewPlayingToken creates a player-controlled token at its start tile
func NewPlayingToken(slot int, playerName string) PlayerToken {
	return PlayerToken{
		Slot:       slot,
		PlayerName: playerName,
		Playing:    true,
		Position:   StartPosition(slot),
	}
}

// CharacterName returns the token's character name
func (t *PlayerToken) CharacterName() string {
	return CharacterName(t.Slot)
}

// Card returns the character card matching this token
func (t *PlayerToken) Card() Card {
	return CharacterCard(t.Slot)
}

// Active reports whether the token takes turns: player-controlled and not
// yet eliminated.
func (t *PlayerToken) Active() bool {
	return t.Playing && !t.Eliminated
}

// HoldsMatch scans the hand in order and returns the first card equal to
// any of the given cards.
func (t *PlayerToken) HoldsMatch(cards []Card) (Card, bool) {
	for _, held := range t.Hand {
		for _, c := range cards {
			if held == c {
				return held, true
			}
		}
	}
	return Card{}, false
}

// GetID implements core.Entity
func (t *PlayerToken) GetID() string {
	return fmt.Sprintf("token_%d", t.Slot)
}

// GetType implements core.Entity
func (t *PlayerToken) GetType() string {
	return "player_token"
}

// WeaponToken is one of the six weapon markers on the board
type WeaponToken struct {
	Index    int      `json:"index"`
	Position Position `json:"position"`
}

// Name returns the weapon's display name
func (w *WeaponToken) Name() string {
	return WeaponName(w.Index)
}

// Card returns the weapon card matching this token
func (w *WeaponToken) Card() Card {
	return WeaponCard(w.Index)
}

// GetID implements core.Entity
func (w *WeaponToken) GetID() string {
	return fmt.Sprintf("weapon_%d", w.Index)
}

// GetType implements core.Entity
func (w *WeaponToken) GetType() string {
	return "weapon_token"
}

// Compile-time checks that tokens implement core.Entity
var (
	_ core.Entity = (*PlayerToken)(nil)
	_ core.Entity = (*WeaponToken)(nil)
)
