package engine

import (
	"strconv"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// Player collision box, in tile widths.
const (
	playerBoxX = 0.25
	playerBoxY = 0.1
	playerBoxW = 0.5
	playerBoxH = 0.2
)

// playerWallInsets let the head overlap the wall row above and keep a small
// margin at the feet and sides.
var playerWallInsets = Insets{Up: 0.8, Down: -0.1, Left: 0.1, Right: 0.1}

// Player is a human-controlled bomber.
type Player struct {
	object
	id          core.PlayerID
	baseSpeed   int
	speed       int
	bombSize    int
	placingBomb bool
	score       int
}

// NewPlayer creates player id at cell p with the given starting score.
func NewPlayer(h Handle, id core.PlayerID, p level.Point, score int, g Geometry) *Player {
	t := level.Player1
	if id == core.Player2 {
		t = level.Player2
	}
	pl := &Player{
		object:    newObject(h, p, t, g.TileWidth),
		id:        id,
		baseSpeed: g.PlayerSpeed,
		speed:     g.PlayerSpeed,
		bombSize:  1,
		score:     score,
	}
	pl.setBox()
	return pl
}

// ID returns which player this is.
func (p *Player) ID() core.PlayerID { return p.id }

// Score returns the player's score.
func (p *Player) Score() int { return p.score }

// Speed returns the movement speed in pixels per tick.
func (p *Player) Speed() int { return p.speed }

// BombSize returns the blast size of bombs this player places.
func (p *Player) BombSize() int { return p.bombSize }

// TilePos is the cell under the player's feet.
func (p *Player) TilePos() level.Point {
	tw := float64(p.tw)
	return level.Point{
		X: int((float64(p.box.X) + tw*0.2) / tw),
		Y: int((float64(p.box.Y) + tw*0.845) / tw),
	}
}

func (p *Player) setBox() {
	p.insetBox(playerBoxX, playerBoxY, playerBoxW, playerBoxH)
}

// Update renders, moves, emits events, draws the score and finally collects
// points and bonuses.
func (p *Player) Update(f *Frame) {
	p.render(f)
	p.move(f)
	p.CreateEvents(f)
	p.renderScore(f)

	if p.toRemove {
		return
	}
	f.Events.Consume(func(e Event) bool {
		switch {
		case e.Kind == EventPoints:
			p.score += e.Value
			return true
		case e.Kind == EventGetBonus && e.Target == p.handle:
			p.applyBonus(e.Bonus, e.Value)
			return true
		}
		return false
	})
}

func (p *Player) applyBonus(kind BonusKind, strength int) {
	switch kind {
	case BonusMegaBombs:
		p.bombSize = 1 + strength
	case BonusSpeed:
		p.speed = p.baseSpeed + strength
	}
}

func (p *Player) move(f *Frame) {
	in := f.Input
	dx, dy := 0, 0
	if in.Pressed(p.id, core.ActionUp) {
		dy -= p.speed
	}
	if in.Pressed(p.id, core.ActionDown) {
		dy += p.speed
	}
	if in.Pressed(p.id, core.ActionLeft) {
		dx -= p.speed
	}
	if in.Pressed(p.id, core.ActionRight) {
		dx += p.speed
	}

	// Each axis is tried and undone independently so the player slides
	// along walls instead of sticking.
	if dx != 0 {
		p.x += dx
		p.setBox()
		if p.blocked(f) {
			p.x -= dx
		}
	}
	if dy != 0 {
		p.y += dy
		p.setBox()
		if p.blocked(f) {
			p.y -= dy
		}
	}
	p.setBox()
}

func (p *Player) blocked(f *Frame) bool {
	w := f.Geo.MapW * p.tw
	h := f.Geo.MapH * p.tw
	if p.box.X < 0 || p.box.Y < 0 || p.box.Right() > w || p.box.Bottom() > h {
		return true
	}
	return WallCollision(p.box, p.TilePos(), f.Tiles, playerWallInsets)
}

// CreateEvents places a bomb on a fresh key press and reports the player's
// death on contact with a blast or an enemy.
func (p *Player) CreateEvents(f *Frame) {
	if p.toRemove {
		return
	}

	if f.Input.Pressed(p.id, core.ActionBomb) {
		if !p.placingBomb {
			p.placingBomb = true
			f.Events.Push(Event{Kind: EventPlaceBomb, Pos: p.TilePos(), Value: p.bombSize})
		}
	} else {
		p.placingBomb = false
	}

	if p.collide(f, level.Blast) != nil || p.collide(f, level.Enemy) != nil {
		p.remove()
		f.Events.Push(Event{Kind: EventPlayerDead, Pos: p.TilePos(), Target: p.handle})
		f.Events.Push(Event{Kind: EventPoints, Pos: p.TilePos(), Value: 1})
	}
}

func (p *Player) renderScore(f *Frame) {
	kind := TextPlayer1Score
	x := 0
	if p.id == core.Player2 {
		kind = TextPlayer2Score
		x = f.Geo.MapW*p.tw - p.tw/2
	}
	dst := core.NewRect(x, 0, p.tw/2, p.tw/2)
	f.Renderer.DrawText(f.Renderer.Text(kind), strconv.Itoa(p.score), dst)
}
