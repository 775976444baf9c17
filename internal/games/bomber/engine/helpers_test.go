package engine

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// testGeometry is a 7x7 map of 64 pixel tiles at 60 ticks per second:
// players move 3 pixels per tick, enemies 2.
func testGeometry() Geometry {
	return NewGeometry(7*64, 7*64, 64, 60)
}

// latticeMap returns a bordered lattice map with the given cells overlaid.
func latticeMap(w, h int, cells map[level.Point]level.TileType) *level.Map {
	m := level.NewMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if level.IsLatticeWall(x, y, w, h) {
				m.Set(x, y, level.Wall)
			}
		}
	}
	for p, t := range cells {
		m.Set(p.X, p.Y, t)
	}
	return m
}

func newTestManager(t *testing.T, opts Options) *Manager {
	t.Helper()
	if opts.Geometry.TileWidth == 0 {
		opts.Geometry = testGeometry()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(7))
	}
	if opts.Bonuses == (BonusCatalog{}) {
		opts.Bonuses = BonusCatalog{MegaBombs: 2, Speed: 2}
	}
	return NewManager(opts)
}

func press(id core.PlayerID, actions ...core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	for _, a := range actions {
		in.Press(id, a)
	}
	return in
}

func countType(objects []Object, t level.TileType) int {
	n := 0
	for _, obj := range objects {
		if obj.Type() == t {
			n++
		}
	}
	return n
}

func onlyEnemy(t *testing.T, m *Manager) *Enemy {
	t.Helper()
	var found *Enemy
	for _, obj := range m.Objects() {
		if e, ok := obj.(*Enemy); ok {
			if found != nil {
				t.Fatal("more than one enemy on the map")
			}
			found = e
		}
	}
	if found == nil {
		t.Fatal("no enemy on the map")
	}
	return found
}

// head points the enemy in d for n ticks.
func head(e *Enemy, d Direction, n int) {
	e.wander.dir = d
	e.wander.frames = n
}

type memoryHighScores struct {
	best     int
	recorded []int
}

func (m *memoryHighScores) HighScore() (int, error) { return m.best, nil }

func (m *memoryHighScores) RecordHighScore(score int) error {
	m.recorded = append(m.recorded, score)
	m.best = score
	return nil
}
