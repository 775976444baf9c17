package level

import (
	"math/rand"
	"sort"
)

// Counts is how many enemies and breakables a generated map asks for.
type Counts struct {
	Enemies    int
	Breakables int
}

// Generator builds random maps that satisfy the wall lattice invariant.
type Generator struct {
	width  int
	height int
	counts Counts
	rng    *rand.Rand

	// available holds the free cells, sorted by (x, y).
	available []Point
}

// NewGenerator creates a generator for width x height maps.
func NewGenerator(width, height int, counts Counts, rng *rand.Rand) *Generator {
	return &Generator{
		width:  width,
		height: height,
		counts: counts,
		rng:    rng,
	}
}

// Generate builds a new map for the given mode.
//
// The wall skeleton comes first. Player 1 is then placed on a random free
// cell and its 3x3 neighbourhood is reserved. Single-player maps then get up
// to Counts.Enemies enemies and duel maps get Player 2 (reserved the same
// way). Up to Counts.Breakables breakables fill the remaining free cells.
// Placement stops early once no free cell is left.
func (g *Generator) Generate(mode Mode) *Map {
	m := NewMap(g.width, g.height)
	g.available = g.available[:0]

	// x-major order so the free list is sorted without an extra pass
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if IsLatticeWall(x, y, g.width, g.height) {
				m.Cells[y][x] = Wall
				continue
			}
			m.Cells[y][x] = Empty
			g.available = append(g.available, Point{X: x, Y: y})
		}
	}

	g.placePlayer(m, Player1)
	if mode == SinglePlayer {
		g.placeMany(m, Enemy, g.counts.Enemies)
	} else {
		g.placePlayer(m, Player2)
	}
	g.placeMany(m, Breakable, g.counts.Breakables)

	return m
}

// Available returns how many free cells remain after the last Generate.
func (g *Generator) Available() int {
	return len(g.available)
}

func (g *Generator) placePlayer(m *Map, player TileType) {
	p, ok := g.takeRandom(m, player)
	if !ok {
		return
	}
	for x := p.X - 1; x <= p.X+1; x++ {
		for y := p.Y - 1; y <= p.Y+1; y++ {
			g.reserve(Point{X: x, Y: y})
		}
	}
}

func (g *Generator) placeMany(m *Map, t TileType, n int) {
	for i := 0; i < n; i++ {
		if _, ok := g.takeRandom(m, t); !ok {
			return
		}
	}
}

// takeRandom removes a uniformly chosen free cell and stores t there.
func (g *Generator) takeRandom(m *Map, t TileType) (Point, bool) {
	if len(g.available) == 0 {
		return Point{}, false
	}
	i := g.rng.Intn(len(g.available))
	p := g.available[i]
	g.available = append(g.available[:i], g.available[i+1:]...)
	m.Cells[p.Y][p.X] = t
	return p, true
}

// reserve drops p from the free list if present.
func (g *Generator) reserve(p Point) {
	i := sort.Search(len(g.available), func(i int) bool {
		a := g.available[i]
		return a.X > p.X || (a.X == p.X && a.Y >= p.Y)
	})
	if i < len(g.available) && g.available[i] == p {
		g.available = append(g.available[:i], g.available[i+1:]...)
	}
}
