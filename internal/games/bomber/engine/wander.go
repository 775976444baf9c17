package engine

import "math/rand"

// Direction is an enemy heading.
type Direction int

const (
	DirStay Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "stay"
}

// Delta returns the unit step of the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

var allDirections = [...]Direction{DirStay, DirUp, DirDown, DirLeft, DirRight}

// Wander is the enemy movement state machine. It keeps the set of directions
// not yet found blocked, the current heading and how many ticks remain on it.
type Wander struct {
	pool   []Direction
	dir    Direction
	frames int
}

// NewWander returns a wander state with a full pool, standing still.
func NewWander() *Wander {
	w := &Wander{}
	w.Reset()
	return w
}

// Direction returns the current heading.
func (w *Wander) Direction() Direction { return w.dir }

// Frames returns the ticks left on the current heading.
func (w *Wander) Frames() int { return w.frames }

// Pool returns the directions still available.
func (w *Wander) Pool() []Direction { return w.pool }

// Reset refills the pool with every direction.
func (w *Wander) Reset() {
	w.pool = append(w.pool[:0], allDirections[:]...)
}

// Drop removes d from the pool.
func (w *Wander) Drop(d Direction) {
	for i, p := range w.pool {
		if p == d {
			w.pool = append(w.pool[:i], w.pool[i+1:]...)
			return
		}
	}
}

// Tick consumes one frame of the current heading.
func (w *Wander) Tick() {
	if w.frames > 0 {
		w.frames--
	}
}

// Expired reports whether the current heading has run out.
func (w *Wander) Expired() bool { return w.frames == 0 }

// Pick chooses a new heading uniformly from the pool. Staying lasts one
// tile's worth of movement; a real heading lasts between one tile and half
// the larger map side. An empty pool means stay.
func (w *Wander) Pick(rng *rand.Rand, g Geometry) {
	speed := g.EnemySpeed
	if speed < 1 {
		speed = 1
	}
	tileFrames := g.TileWidth / speed

	if len(w.pool) == 0 {
		w.dir = DirStay
		w.frames = tileFrames
		return
	}

	w.dir = w.pool[rng.Intn(len(w.pool))]
	if w.dir == DirStay {
		w.frames = tileFrames
		return
	}
	span := max(g.MapH, g.MapW) / 2
	if span < 1 {
		span = 1
	}
	w.frames = (rng.Intn(span) + 1) * g.TileWidth / speed
}
