package engine

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

// Explosion is one blast cell. It lives for half a second and emits nothing;
// others find it through collision queries.
type Explosion struct {
	object
	ticks int
}

// NewExplosion creates a blast at cell p.
func NewExplosion(h Handle, p level.Point, g Geometry) *Explosion {
	return &Explosion{
		object: newObject(h, p, level.Blast, g.TileWidth),
		ticks:  g.FPS / 2,
	}
}

// Update renders and counts down.
func (e *Explosion) Update(f *Frame) {
	e.render(f)
	e.ticks--
	if e.ticks <= 0 {
		e.remove()
	}
}
