package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manorgames/manor-api/internal/entities"
)

func TestNewDeck(t *testing.T) {
	deck := entities.NewDeck()
	require.Len(t, deck, entities.DeckSize)

	seen := make(map[entities.Card]bool)
	counts := make(map[entities.CardKind]int)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
		counts[c.Kind]++
		assert.True(t, c.Valid())
	}

	assert.Equal(t, entities.NumCharacters, counts[entities.CardKindCharacter])
	assert.Equal(t, entities.NumWeapons, counts[entities.CardKindWeapon])
	assert.Equal(t, entities.NumRooms, counts[entities.CardKindRoom])
}

func TestCardEquality(t *testing.T) {
	assert.Equal(t, entities.WeaponCard(2), entities.WeaponCard(2))
	assert.NotEqual(t, entities.WeaponCard(2), entities.WeaponCard(3))

	// Same index, different kind
	assert.NotEqual(t, entities.CharacterCard(1), entities.WeaponCard(1))
}

func TestCardValid(t *testing.T) {
	tests := []struct {
		name string
		card entities.Card
		want bool
	}{
		{"character in range", entities.Card{Kind: entities.CardKindCharacter, Index: 5}, true},
		{"character out of range", entities.Card{Kind: entities.CardKindCharacter, Index: 6}, false},
		{"room in range", entities.Card{Kind: entities.CardKindRoom, Index: 8}, true},
		{"room out of range", entities.Card{Kind: entities.CardKindRoom, Index: 9}, false},
		{"negative index", entities.Card{Kind: entities.CardKindWeapon, Index: -1}, false},
		{"unknown kind", entities.Card{Kind: "joker", Index: 0}, false},
		{"zero value", entities.Card{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.Valid())
		})
	}
}

func TestParseCard(t *testing.T) {
	card, err := entities.ParseCard(entities.CardKindRoom, "kitchen")
	require.NoError(t, err)
	assert.Equal(t, entities.RoomCard(0), card)

	card, err = entities.ParseCard(entities.CardKindCharacter, "PLUM")
	require.NoError(t, err)
	assert.Equal(t, entities.CharacterCard(5), card)

	_, err = entities.ParseCard(entities.CardKindWeapon, "Kitchen")
	assert.Error(t, err)

	_, err = entities.ParseCard("joker", "Kitchen")
	assert.Error(t, err)
}

func TestCardNames(t *testing.T) {
	assert.Equal(t, "Scarlett", entities.CharacterCard(0).Name())
	assert.Equal(t, "Spanner", entities.WeaponCard(5).Name())
	assert.Equal(t, "Ballroom", entities.RoomCard(8).Name())

	assert.Panics(t, func() { entities.RoomCard(9) })
	assert.Panics(t, func() { entities.CharacterCard(-1) })
}

func TestRoomTileKindRoundTrip(t *testing.T) {
	for i := 0; i < entities.NumRooms; i++ {
		kind := entities.RoomTileKind(i)
		assert.True(t, kind.IsRoom())
		assert.Equal(t, i, kind.RoomCardIndex())
	}

	assert.False(t, entities.TileCorridor.IsRoom())
	assert.Panics(t, func() { entities.TileDoor.RoomCardIndex() })
}
