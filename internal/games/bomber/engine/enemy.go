package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

const (
	enemyBoxX = 0.25
	enemyBoxY = 0.15
	enemyBoxW = 0.5
	enemyBoxH = 0.2
)

// Enemy wanders the map at random and dies in blasts.
type Enemy struct {
	object
	speed  int
	wander *Wander
}

// NewEnemy creates an enemy at cell p with a heading already picked.
func NewEnemy(h Handle, p level.Point, g Geometry, rng *rand.Rand) *Enemy {
	e := &Enemy{
		object: newObject(h, p, level.Enemy, g.TileWidth),
		speed:  g.EnemySpeed,
		wander: NewWander(),
	}
	e.wander.Pick(rng, g)
	e.setBox()
	return e
}

// Wander exposes the movement state.
func (e *Enemy) Wander() *Wander { return e.wander }

// TilePos is the cell under the enemy's center.
func (e *Enemy) TilePos() level.Point {
	tw := float64(e.tw)
	return level.Point{
		X: int((float64(e.x) + tw*0.75) / tw),
		Y: int((float64(e.y) + tw*0.35) / tw),
	}
}

func (e *Enemy) setBox() {
	e.insetBox(enemyBoxX, enemyBoxY, enemyBoxW, enemyBoxH)
}

// Update renders, moves and checks for blasts.
func (e *Enemy) Update(f *Frame) {
	e.render(f)
	e.move(f)
	e.CreateEvents(f)
}

func (e *Enemy) move(f *Frame) {
	dx, dy := e.wander.Direction().Delta()
	dx *= e.speed
	dy *= e.speed
	e.x += dx
	e.y += dy
	e.wander.Tick()

	e.setBox()
	if e.collide(f, level.Blast) != nil {
		e.turn(f, dx, dy)
		dx, dy = 0, 0
	}

	// Walls are tested with the full cell so enemies stay on the grid
	e.cellBox()
	if WallCollision(e.box, e.TilePos(), f.Tiles, Insets{}) {
		e.turn(f, dx, dy)
	} else if e.wander.Expired() {
		e.wander.Reset()
		e.wander.Pick(f.Rand, f.Geo)
	}

	e.setBox()
}

// turn undoes the last step and picks another heading.
func (e *Enemy) turn(f *Frame, dx, dy int) {
	e.x -= dx
	e.y -= dy
	e.wander.Drop(e.wander.Direction())
	e.wander.Pick(f.Rand, f.Geo)
}

// CreateEvents reports the enemy's death on contact with a blast.
func (e *Enemy) CreateEvents(f *Frame) {
	if e.toRemove {
		return
	}
	if e.collide(f, level.Blast) != nil {
		e.remove()
		f.Events.Push(Event{Kind: EventPoints, Pos: e.TilePos(), Value: 100})
		f.Events.Push(Event{Kind: EventEnemyDead, Pos: e.TilePos(), Target: e.handle})
	}
}
