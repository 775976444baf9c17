package engine

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

// Bomb ticks for two seconds, blinking, then emits a cross of explosions.
type Bomb struct {
	object
	ticks    int
	size     int
	exploded bool
	shown    bool
}

// NewBomb creates a bomb at cell p with the given blast size.
func NewBomb(h Handle, p level.Point, size int, g Geometry) *Bomb {
	if size < 1 {
		size = 1
	}
	return &Bomb{
		object: newObject(h, p, level.Bomb, g.TileWidth),
		ticks:  g.FPS * 2,
		size:   size,
		shown:  true,
	}
}

// Size returns the blast size in cells.
func (b *Bomb) Size() int { return b.size }

// Ticks returns the remaining fuse in ticks.
func (b *Bomb) Ticks() int { return b.ticks }

// Shown reports whether the bomb was drawn this tick.
func (b *Bomb) Shown() bool { return b.shown }

// Update counts the fuse down and explodes at zero.
func (b *Bomb) Update(f *Frame) {
	b.ticks--
	if b.ticks <= 0 {
		b.exploded = true
	}

	// Skip one frame every half second so the bomb appears to blink
	b.shown = b.ticks%(f.Geo.FPS/2) != 0
	if b.shown {
		b.render(f)
	}

	b.CreateEvents(f)
}

// CreateEvents emits one PlaceExplosion per blast cell once exploded.
func (b *Bomb) CreateEvents(f *Frame) {
	if !b.exploded || b.toRemove {
		return
	}
	for _, p := range BlastCells(b.TilePos(), b.size, f.Tiles) {
		f.Events.Push(Event{Kind: EventPlaceExplosion, Pos: p})
	}
	b.remove()
}

// BlastCells returns the cells hit by a blast of the given size centered on
// c: the center, then each arm (left, right, up, down) scanned outward. An
// arm stops before the first wall or the edge of the grid. Breakables do not
// stop it.
func BlastCells(c level.Point, size int, tiles *TileGrid) []level.Point {
	cells := []level.Point{c}
	arms := [4]level.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}
	for _, d := range arms {
		for i := 1; i <= size; i++ {
			p := level.Point{X: c.X + d.X*i, Y: c.Y + d.Y*i}
			if !tiles.InBounds(p.X, p.Y) || tiles.TypeAt(p) == level.Wall {
				break
			}
			cells = append(cells, p)
		}
	}
	return cells
}
