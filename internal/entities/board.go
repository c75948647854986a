package entities

import "fmt"

// GridSize is the side length of the square board
const GridSize = 25

// Position is a 0-indexed board coordinate. Off-grid positions are valid
// values that map to TileInvalid, never an error.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InGrid reports whether the position lies on the board
func (p Position) InGrid() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Neighbors returns the four cardinal neighbours in fixed exploration order
func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// TileKind classifies one board tile
type TileKind int

// Tile kinds. The nine room kinds are ordered to match the room card
// indices, so TileKitchen+i is the tile kind for RoomCard(i).
const (
	TileInvalid TileKind = iota
	TileWall
	TileCorridor
	TileDoor
	TilePassage
	TileStart
	TileKitchen
	TileDining
	TileLounge
	TileHall
	TileStudy
	TileLibrary
	TileBilliard
	TileConservatory
	TileBallroom
)

var tileNames = map[TileKind]string{
	TileInvalid:      "offscreen",
	TileWall:         "wall",
	TileCorridor:     "corridor",
	TileDoor:         "door",
	TilePassage:      "passage",
	TileStart:        "start",
	TileKitchen:      "kitchen",
	TileDining:       "dining",
	TileLounge:       "lounge",
	TileHall:         "hall",
	TileStudy:        "study",
	TileLibrary:      "library",
	TileBilliard:     "billiard",
	TileConservatory: "conservatory",
	TileBallroom:     "ballroom",
}

// String implements fmt.Stringer
func (k TileKind) String() string {
	if name, ok := tileNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsRoom reports whether the tile kind is one of the nine room interiors
func (k TileKind) IsRoom() bool {
	return k >= TileKitchen && k <= TileBallroom
}

// RoomCardIndex returns the room card index for a room tile kind. It is
// only defined for room kinds; calling it on any other kind is a
// programming error.
func (k TileKind) RoomCardIndex() int {
	if !k.IsRoom() {
		panic(fmt.Sprintf("entities: tile kind %v is not a room", k))
	}
	return int(k - TileKitchen)
}

// RoomTileKind returns the tile kind for a room card index
func RoomTileKind(roomIndex int) TileKind {
	mustIndex(roomIndex, NumRooms, "room")
	return TileKitchen + TileKind(roomIndex)
}
