package engine

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// Tile is one static grid cell: empty floor, wall or breakable. Tiles are
// values and are replaced wholesale when their type changes.
type Tile struct {
	Type level.TileType
	Pos  level.Point
	Box  core.Rect
}

// NewTile creates the tile of type t at grid cell p.
func NewTile(p level.Point, t level.TileType, tileWidth int) Tile {
	return Tile{
		Type: t,
		Pos:  p,
		Box:  core.NewRect(p.X*tileWidth, p.Y*tileWidth, tileWidth, tileWidth),
	}
}

// TileGrid is the static layer of the map. Objects get it read-only; only the
// manager replaces tiles.
type TileGrid struct {
	width     int
	height    int
	tileWidth int
	tiles     [][]Tile
}

func newTileGrid(width, height, tileWidth int) *TileGrid {
	g := &TileGrid{width: width, height: height, tileWidth: tileWidth}
	g.tiles = make([][]Tile, height)
	for y := range g.tiles {
		g.tiles[y] = make([]Tile, width)
		for x := range g.tiles[y] {
			g.tiles[y][x] = NewTile(level.Point{X: x, Y: y}, level.Empty, tileWidth)
		}
	}
	return g
}

// Width returns the grid width in cells.
func (g *TileGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *TileGrid) Height() int { return g.height }

// TileWidth returns the tile size in pixels.
func (g *TileGrid) TileWidth() int { return g.tileWidth }

// InBounds reports whether (x, y) is a grid cell.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y). The caller must check bounds.
func (g *TileGrid) At(x, y int) Tile {
	return g.tiles[y][x]
}

// TypeAt returns the tile type at p, or Wall outside the grid.
func (g *TileGrid) TypeAt(p level.Point) level.TileType {
	if !g.InBounds(p.X, p.Y) {
		return level.Wall
	}
	return g.tiles[p.Y][p.X].Type
}

func (g *TileGrid) set(p level.Point, t level.TileType) {
	if g.InBounds(p.X, p.Y) {
		g.tiles[p.Y][p.X] = NewTile(p, t, g.tileWidth)
	}
}

func (g *TileGrid) render(r Renderer) {
	src := core.NewRect(0, 0, g.tileWidth, g.tileWidth)
	for _, row := range g.tiles {
		for _, t := range row {
			r.Draw(r.Texture(t.Type), src, t.Box)
		}
	}
}
