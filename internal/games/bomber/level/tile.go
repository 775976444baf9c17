// Package level holds the static description of a Bomber map: the tile type
// grid, its structural invariants, the random map generator and the save
// slot serializer.
package level

import "fmt"

// TileType tags a grid cell. Values are persisted in save files, so the order
// must not change.
type TileType int

const (
	Empty TileType = iota
	Wall
	Breakable
	Player1
	Player2
	Enemy
	Bonus
	Bomb
	Blast
	Door
)

// MaxTileType is the largest valid tile type value.
const MaxTileType = Door

var tileNames = [...]string{
	Empty:     "empty",
	Wall:      "wall",
	Breakable: "breakable",
	Player1:   "player1",
	Player2:   "player2",
	Enemy:     "enemy",
	Bonus:     "bonus",
	Bomb:      "bomb",
	Blast:     "blast",
	Door:      "door",
}

// String returns the lower-case name of the tile type.
func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", int(t))
	}
	return tileNames[t]
}

// Valid reports whether t is a known tile type.
func (t TileType) Valid() bool {
	return t >= Empty && t <= MaxTileType
}

// Solid reports whether the tile blocks movement.
func (t TileType) Solid() bool {
	return t == Wall || t == Breakable
}

// Point is a grid cell coordinate.
type Point struct {
	X, Y int
}

// Mode selects between the two kinds of play.
type Mode int

const (
	SinglePlayer Mode = iota
	Duel
)

// String returns the mode name used in score tables.
func (m Mode) String() string {
	if m == Duel {
		return "duel"
	}
	return "single"
}
