// Package entities provides core data structures for manor-api.
package entities

import (
	"fmt"
	"strings"
)

// CardKind discriminates the three card families in the deck
type CardKind string

// Card kinds
const (
	CardKindCharacter CardKind = "character"
	CardKindWeapon    CardKind = "weapon"
	CardKindRoom      CardKind = "room"
)

// Counts of each card family. The deck always holds 21 cards.
const (
	NumCharacters = 6
	NumWeapons    = 6
	NumRooms      = 9
	DeckSize      = NumCharacters + NumWeapons + NumRooms
)

var characterNames = [NumCharacters]string{
	"Scarlett", "Mustard", "White", "Green", "Peacock", "Plum",
}

var weaponNames = [NumWeapons]string{
	"Candlestick", "Dagger", "Pipe", "Revolver", "Rope", "Spanner",
}

var roomNames = [NumRooms]string{
	"Kitchen", "Dining", "Lounge", "Hall", "Study",
	"Library", "Billiard", "Conservatory", "Ballroom",
}

// Card identifies one card by kind and index within its family. The kind
// set is closed; cards compare by value.
type Card struct {
	Kind  CardKind `json:"kind"`
	Index int      `json:"index"`
}

// CharacterCard returns the character card for a slot in [0,5]
func CharacterCard(index int) Card {
	mustIndex(index, NumCharacters, "character")
	return Card{Kind: CardKindCharacter, Index: index}
}

// WeaponCard returns the weapon card for an index in [0,5]
func WeaponCard(index int) Card {
	mustIndex(index, NumWeapons, "weapon")
	return Card{Kind: CardKindWeapon, Index: index}
}

// RoomCard returns the room card for an index in [0,8]
func RoomCard(index int) Card {
	mustIndex(index, NumRooms, "room")
	return Card{Kind: CardKindRoom, Index: index}
}

func mustIndex(index, limit int, kind string) {
	if index < 0 || index >= limit {
		panic(fmt.Sprintf("entities: %s index %d out of range [0,%d)", kind, index, limit))
	}
}

// Valid reports whether the card names a real kind and index
func (c Card) Valid() bool {
	switch c.Kind {
	case CardKindCharacter:
		return c.Index >= 0 && c.Index < NumCharacters
	case CardKindWeapon:
		return c.Index >= 0 && c.Index < NumWeapons
	case CardKindRoom:
		return c.Index >= 0 && c.Index < NumRooms
	default:
		return false
	}
}

// Name returns the card's display name
func (c Card) Name() string {
	switch c.Kind {
	case CardKindCharacter:
		return characterNames[c.Index]
	case CardKindWeapon:
		return weaponNames[c.Index]
	case CardKindRoom:
		return roomNames[c.Index]
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer
func (c Card) String() string {
	return fmt.Sprintf("%s(%s)", c.Kind, c.Name())
}

// CharacterName returns the display name for a character slot
func CharacterName(slot int) string {
	mustIndex(slot, NumCharacters, "character")
	return characterNames[slot]
}

// WeaponName returns the display name for a weapon index
func WeaponName(index int) string {
	mustIndex(index, NumWeapons, "weapon")
	return weaponNames[index]
}

// RoomName returns the display name for a room index
func RoomName(index int) string {
	mustIndex(index, NumRooms, "room")
	return roomNames[index]
}

// ParseCard resolves a display name to a card of the given kind,
// case-insensitively. Unknown names are an InvalidRequest at the caller.
func ParseCard(kind CardKind, name string) (Card, error) {
	var names []string
	switch kind {
	case CardKindCharacter:
		names = characterNames[:]
	case CardKindWeapon:
		names = weaponNames[:]
	case CardKindRoom:
		names = roomNames[:]
	default:
		return Card{}, fmt.Errorf("unknown card kind %q", kind)
	}

	for i, n := range names {
		if strings.EqualFold(n, name) {
			return Card{Kind: kind, Index: i}, nil
		}
	}
	return Card{}, fmt.Errorf("unknown %s card %q", kind, name)
}

// NewDeck returns all 21 cards: characters, then weapons, then rooms
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 0; i < NumCharacters; i++ {
		deck = append(deck, CharacterCard(i))
	}
	for i := 0; i < NumWeapons; i++ {
		deck = append(deck, WeaponCard(i))
	}
	for i := 0; i < NumRooms; i++ {
		deck = append(deck, RoomCard(i))
	}
	return deck
}

// Solution is the hidden envelope: one character, one weapon, one room.
// It is fixed for the lifetime of a game.
type Solution struct {
	Character Card `json:"character"`
	Weapon    Card `json:"weapon"`
	Room      Card `json:"room"`
}
