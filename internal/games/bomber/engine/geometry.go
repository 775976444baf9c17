// Package engine is the Bomber simulation: the tile grid, the game objects
// and their state machines, collision queries, the per-tick event queue and
// the manager that owns all of them.
//
// One tick is Manager.Tick followed by Manager.ProcessEvents. During Tick
// every object reads the grid and the object list and may only append
// events; all mutation of shared state happens in ProcessEvents.
package engine

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

// Geometry holds the pixel dimensions of the playing field and the values
// derived from them.
type Geometry struct {
	TileWidth int
	ScreenW   int
	ScreenH   int
	FPS       int

	MapW int // map width in cells, always odd
	MapH int // map height in cells, always odd

	PlayerSpeed int // pixels per tick
	EnemySpeed  int // pixels per tick
}

// NewGeometry derives map size and movement speeds from screen size, tile
// width and tick rate.
func NewGeometry(screenW, screenH, tileWidth, fps int) Geometry {
	g := Geometry{
		TileWidth: tileWidth,
		ScreenW:   screenW,
		ScreenH:   screenH,
		FPS:       fps,
		MapW:      oddFloor(screenW / tileWidth),
		MapH:      oddFloor(screenH / tileWidth),
	}

	// Speeds scale with tile size and shrink at higher tick rates
	base := float64(tileWidth/32) / (float64(fps) / 60)
	g.PlayerSpeed = int(base) + 1
	g.EnemySpeed = int(base)
	return g
}

func oddFloor(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}

// Scale converts a grid cell to its top-left pixel position.
func (g Geometry) Scale(p level.Point) (int, int) {
	return p.X * g.TileWidth, p.Y * g.TileWidth
}

// Cell converts a pixel coordinate to a cell index.
func (g Geometry) Cell(px float64) int {
	return int(px / float64(g.TileWidth))
}

// Center is the cell where the door appears once all enemies are dead.
// When the exact center falls on a lattice wall it moves one cell right.
func (g Geometry) Center() level.Point {
	p := level.Point{X: g.MapW / 2, Y: g.MapH / 2}
	if level.IsLatticeWall(p.X, p.Y, g.MapW, g.MapH) {
		p.X++
	}
	return p
}
