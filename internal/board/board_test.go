package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manorgames/manor-api/internal/board"
	"github.com/manorgames/manor-api/internal/entities"
)

func TestTileKindAt(t *testing.T) {
	b := board.New()

	tests := []struct {
		name string
		pos  entities.Position
		want entities.TileKind
	}{
		{"top left wall", entities.Position{X: 0, Y: 0}, entities.TileWall},
		{"kitchen interior", entities.Position{X: 2, Y: 2}, entities.TileKitchen},
		{"kitchen passage", entities.Position{X: 5, Y: 1}, entities.TilePassage},
		{"kitchen door", entities.Position{X: 4, Y: 6}, entities.TileDoor},
		{"corridor", entities.Position{X: 0, Y: 7}, entities.TileCorridor},
		{"start tile", entities.Position{X: 9, Y: 0}, entities.TileStart},
		{"billiard door", entities.Position{X: 18, Y: 9}, entities.TileDoor},
		{"study interior", entities.Position{X: 20, Y: 22}, entities.TileStudy},
		{"off grid left", entities.Position{X: -1, Y: 4}, entities.TileInvalid},
		{"off grid bottom", entities.Position{X: 4, Y: 25}, entities.TileInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.TileKindAt(tt.pos))
		})
	}
}

func TestStartTilesMatchTokenSlots(t *testing.T) {
	b := board.New()

	for slot := 0; slot < entities.NumCharacters; slot++ {
		pos := entities.StartPosition(slot)
		assert.Equal(t, entities.TileStart, b.TileKindAt(pos), "slot %d at %v", slot, pos)
	}
}

func TestPassageTargetsAreInvolutions(t *testing.T) {
	b := board.New()

	passages := []entities.Position{
		{X: 5, Y: 1},
		{X: 24, Y: 21},
		{X: 23, Y: 5},
		{X: 0, Y: 19},
	}

	for _, p := range passages {
		require.Equal(t, entities.TilePassage, b.TileKindAt(p))
		target := b.PassageTarget(p)
		assert.Equal(t, entities.TilePassage, b.TileKindAt(target))
		assert.Equal(t, p, b.PassageTarget(target), "passage at %v must pair back", p)
	}

	assert.Panics(t, func() { b.PassageTarget(entities.Position{X: 0, Y: 7}) })
}

func TestRoomTiles(t *testing.T) {
	b := board.New()

	for _, kind := range b.RoomKinds() {
		tiles := b.RoomTiles(kind)
		require.NotEmpty(t, tiles, "room %v has no tiles", kind)

		// Row-major: rows ascend, and x ascends within a row
		prev := tiles[0]
		assert.Equal(t, kind, b.TileKindAt(prev))
		for _, pos := range tiles[1:] {
			assert.Equal(t, kind, b.TileKindAt(pos))
			ordered := pos.Y > prev.Y || (pos.Y == prev.Y && pos.X > prev.X)
			assert.True(t, ordered, "room %v tiles out of order: %v then %v", kind, prev, pos)
			prev = pos
		}
	}

	// First kitchen tile is the top-left interior tile
	assert.Equal(t, entities.Position{X: 0, Y: 1}, b.RoomTiles(entities.TileKitchen)[0])

	assert.Panics(t, func() { b.RoomTiles(entities.TileCorridor) })
}

func TestIsRoomTile(t *testing.T) {
	b := board.New()

	assert.True(t, b.IsRoomTile(entities.Position{X: 2, Y: 2}))
	assert.False(t, b.IsRoomTile(entities.Position{X: 0, Y: 7}))

	// Doors and passages belong to no room
	assert.False(t, b.IsRoomTile(entities.Position{X: 4, Y: 6}))
	assert.False(t, b.IsRoomTile(entities.Position{X: 5, Y: 1}))
}
