package engine

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

// Door leads to the next map. It appears once all enemies are dead.
type Door struct {
	object
}

// NewDoor creates a door at cell p.
func NewDoor(h Handle, p level.Point, g Geometry) *Door {
	return &Door{object: newObject(h, p, level.Door, g.TileWidth)}
}

// Update renders the door and checks for player 1.
func (d *Door) Update(f *Frame) {
	d.render(f)
	d.CreateEvents(f)
}

// CreateEvents emits DoorReached on every tick player 1 overlaps the door.
func (d *Door) CreateEvents(f *Frame) {
	if d.collide(f, level.Player1) != nil {
		f.Events.Push(Event{Kind: EventDoorReached, Pos: d.TilePos()})
	}
}
