package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// Object is a live game entity owned by the manager.
type Object interface {
	// Handle is the object's stable identity.
	Handle() Handle
	// Type is the tag used for rendering, collision targeting and saving.
	Type() level.TileType
	// Box is the current collision box in pixels.
	Box() core.Rect
	// TilePos is the cell the object counts as standing on when saved.
	TilePos() level.Point
	// Removed reports whether the object asked to be removed this tick.
	Removed() bool
	// Update renders, advances and emits events. It is the only method the
	// manager calls during a tick.
	Update(f *Frame)
	// CreateEvents inspects collisions and appends events.
	CreateEvents(f *Frame)
}

// Frame is the read-only view of the world handed to objects during a tick.
// Objects communicate only by pushing to Events.
type Frame struct {
	Geo      Geometry
	Tiles    *TileGrid
	Objects  []Object
	Events   *EventQueue
	Input    core.MultiInputFrame
	Renderer Renderer
	Rand     *rand.Rand
	Bonuses  BonusCatalog
}

// src is the full-texture source rectangle.
func (f *Frame) src() core.Rect {
	return core.NewRect(0, 0, f.Geo.TileWidth, f.Geo.TileWidth)
}

// object holds the state every entity kind shares.
type object struct {
	handle   Handle
	tile     level.TileType
	x, y     int // pixel position of the top-left corner
	box      core.Rect
	tw       int
	toRemove bool
}

func newObject(h Handle, p level.Point, t level.TileType, tileWidth int) object {
	o := object{
		handle: h,
		tile:   t,
		x:      p.X * tileWidth,
		y:      p.Y * tileWidth,
		tw:     tileWidth,
	}
	o.cellBox()
	return o
}

func (o *object) Handle() Handle { return o.handle }
func (o *object) Type() level.TileType { return o.tile }
func (o *object) Box() core.Rect { return o.box }
func (o *object) Removed() bool { return o.toRemove }
func (o *object) CreateEvents(_ *Frame) {}
func (o *object) TilePos() level.Point { return level.Point{X: o.x / o.tw, Y: o.y / o.tw} }
func (o *object) remove() { o.toRemove = true }
func (o *object) dst() core.Rect { return core.NewRect(o.x, o.y, o.tw, o.tw) }
func (o *object) render(f *Frame) { f.Renderer.Draw(f.Renderer.Texture(o.tile), f.src(), o.dst()) }
func (o *object) collide(f *Frame, target level.TileType) Object {
	return ObjectCollision(o.box, f.Objects, target, Insets{}, o.tw)
}

// cellBox sets the collision box to the full cell at the current position.
func (o *object) cellBox() {
	o.box = o.dst()
}

// insetBox sets the collision box inset from the current cell: x and y move
// the top-left corner in, w and h shrink the size, all in tile widths.
func (o *object) insetBox(x, y, w, h float64) {
	tw := float64(o.tw)
	o.box = core.NewRect(
		int(float64(o.x)+tw*x),
		int(float64(o.y)+tw*y),
		int(tw-tw*w),
		int(tw-tw*h),
	)
}
