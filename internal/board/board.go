// Package board holds the static topology of the 25x25 game board: tile
// kinds, room membership, and the two secret passage pairings. The layout
// is fixed at construction and immutable afterwards.
package board

import (
	"fmt"

	"github.com/manorgames/manor-api/internal/entities"
)

// layout is the board as one symbol row per grid row:
// '#' wall, '_' corridor, 'd' door, 's' secret passage, '?' start tile,
// and one letter per room interior.
var layout = [entities.GridSize]string{
	"#########?####?##########",
	"KKKKKs____BBBB____CCCCCCC",
	"KKKKKK__BBBBBBBB__CCCCCCC",
	"KKKKKK__BBBBBBBB__CCCCCCC",
	"KKKKKK__BBBBBBBB__dCCCCCC",
	"KKKKKK__dBBBBBBd___CCCCs#",
	"#KKKdK__BBBBBBBB________?",
	"________BdBBBBdB________#",
	"#_________________PPPPPPP",
	"DDDDD_____________dPPPPPP",
	"DDDDDDDD__#####___PPPPPPP",
	"DDDDDDDD__#####___PPPPPPP",
	"DDDDDDDd__#####___PPPPPdP",
	"DDDDDDDD__#####_________#",
	"DDDDDDDD__#####___LLLdLL#",
	"DDDDDDdD__#####__LLLLLLLL",
	"#_________#####__dLLLLLLL",
	"?________________LLLLLLLL",
	"#________HHddHH___LLLLLL#",
	"sRRRRRd__HHHHHH_________?",
	"RRRRRRR__HHHHHd_________#",
	"RRRRRRR__HHHHHH__dSSSSSSs",
	"RRRRRRR__HHHHHH__SSSSSSSS",
	"RRRRRRR__HHHHHH__SSSSSSSS",
	"RRRRRR#?#HHHHHH#_#SSSSSSS",
}

var symbolKinds = map[byte]entities.TileKind{
	'#': entities.TileWall,
	'_': entities.TileCorridor,
	'd': entities.TileDoor,
	's': entities.TilePassage,
	'?': entities.TileStart,
	'K': entities.TileKitchen,
	'D': entities.TileDining,
	'R': entities.TileLounge,
	'H': entities.TileHall,
	'S': entities.TileStudy,
	'L': entities.TileLibrary,
	'P': entities.TileBilliard,
	'C': entities.TileConservatory,
	'B': entities.TileBallroom,
}

// passagePairs maps each secret passage tile to the other end of its
// passage. Kitchen links to the study, conservatory to the lounge.
var passagePairs = map[entities.Position]entities.Position{
	{X: 5, Y: 1}:   {X: 24, Y: 21},
	{X: 24, Y: 21}: {X: 5, Y: 1},
	{X: 23, Y: 5}:  {X: 0, Y: 19},
	{X: 0, Y: 19}:  {X: 23, Y: 5},
}

// Board answers tile-kind, room-membership, and passage queries against
// the fixed layout.
type Board struct {
	tiles     [entities.GridSize][entities.GridSize]entities.TileKind
	roomTiles map[entities.TileKind][]entities.Position
}

// New builds the board from the fixed layout
func New() *Board {
	b := &Board{
		roomTiles: make(map[entities.TileKind][]entities.Position),
	}
	// Row-major so room tile lists scan rows first, which fixes the
	// placement order used by the free-tile search.
	for y := 0; y < entities.GridSize; y++ {
		for x := 0; x < entities.GridSize; x++ {
			kind, ok := symbolKinds[layout[y][x]]
			if !ok {
				panic(fmt.Sprintf("board: unknown symbol %q at (%d,%d)", layout[y][x], x, y))
			}
			b.tiles[y][x] = kind
			if kind.IsRoom() {
				b.roomTiles[kind] = append(b.roomTiles[kind], entities.Position{X: x, Y: y})
			}
		}
	}
	return b
}

// TileKindAt returns the tile kind at pos, or TileInvalid off-grid
func (b *Board) TileKindAt(pos entities.Position) entities.TileKind {
	if !pos.InGrid() {
		return entities.TileInvalid
	}
	return b.tiles[pos.Y][pos.X]
}

// IsRoomTile reports whether pos lies inside one of the nine rooms
func (b *Board) IsRoomTile(pos entities.Position) bool {
	return b.TileKindAt(pos).IsRoom()
}

// PassageTarget returns the other end of the secret passage at pos. It is
// defined only for the four passage tiles; any other position is a
// programming error and panics.
func (b *Board) PassageTarget(pos entities.Position) entities.Position {
	target, ok := passagePairs[pos]
	if !ok {
		panic(fmt.Sprintf("board: no passage at %v", pos))
	}
	return target
}

// RoomTiles returns the positions of a room's interior tiles in row-major
// order. The returned slice must not be modified.
func (b *Board) RoomTiles(room entities.TileKind) []entities.Position {
	tiles, ok := b.roomTiles[room]
	if !ok {
		panic(fmt.Sprintf("board: tile kind %v is not a room", room))
	}
	return tiles
}

// RoomKinds returns the nine room tile kinds in card order
func (b *Board) RoomKinds() []entities.TileKind {
	kinds := make([]entities.TileKind, entities.NumRooms)
	for i := range kinds {
		kinds[i] = entities.RoomTileKind(i)
	}
	return kinds
}
