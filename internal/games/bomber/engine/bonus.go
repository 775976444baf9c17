package engine

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

const (
	bonusBoxX = 0.25
	bonusBoxY = 0.25
	bonusBoxW = 0.5
	bonusBoxH = 0.5
)

// Bonus is a pickup dropped by a destroyed breakable.
type Bonus struct {
	object
}

// NewBonus creates a bonus at cell p.
func NewBonus(h Handle, p level.Point, g Geometry) *Bonus {
	b := &Bonus{object: newObject(h, p, level.Bonus, g.TileWidth)}
	b.insetBox(bonusBoxX, bonusBoxY, bonusBoxW, bonusBoxH)
	return b
}

// TilePos reports the cell under the center of the pickup box.
func (b *Bonus) TilePos() level.Point {
	tw := float64(b.tw)
	return level.Point{
		X: int((float64(b.x) + tw*(bonusBoxX+bonusBoxW)) / tw),
		Y: int((float64(b.y) + tw*(bonusBoxY+bonusBoxH)) / tw),
	}
}

// Update renders the pickup and hands it to the first player touching it.
func (b *Bonus) Update(f *Frame) {
	b.render(f)
	if b.collide(f, level.Player1) != nil || b.collide(f, level.Player2) != nil {
		b.remove()
		b.CreateEvents(f)
	}
}

// CreateEvents emits GetBonus with a random kind addressed to the touching
// player. Player 1 wins a tie.
func (b *Bonus) CreateEvents(f *Frame) {
	target := b.collide(f, level.Player1)
	if target == nil {
		target = b.collide(f, level.Player2)
	}
	if target == nil {
		return
	}
	kind, strength := f.Bonuses.Pick(f.Rand)
	f.Events.Push(Event{
		Kind:   EventGetBonus,
		Pos:    b.TilePos(),
		Value:  strength,
		Bonus:  kind,
		Target: target.Handle(),
	})
}
