package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// EventKind tags an Event.
type EventKind int

const (
	EventPlaceBomb EventKind = iota
	EventPlaceExplosion
	EventGetBonus
	EventDoorReached
	EventEnemiesDead
	EventEnemyDead
	EventPoints
	EventPlayerDead
)

var eventNames = [...]string{
	EventPlaceBomb:      "place_bomb",
	EventPlaceExplosion: "place_explosion",
	EventGetBonus:       "get_bonus",
	EventDoorReached:    "door_reached",
	EventEnemiesDead:    "enemies_dead",
	EventEnemyDead:      "enemy_dead",
	EventPoints:         "points",
	EventPlayerDead:     "player_dead",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Handle identifies an object for as long as the manager keeps it. Zero is
// never issued.
type Handle uint64

// Event is something that happened during a tick.
//
// Target is a non-owning reference to an object. It is resolved when the
// event is consumed; an event whose target is gone is dropped.
type Event struct {
	Kind   EventKind
	Pos    level.Point
	Value  int // bomb size, points or bonus strength
	Bonus  BonusKind
	Target Handle
}

// EventQueue is the ordered per-tick event list.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Snapshot returns a copy of the queued events in order.
func (q *EventQueue) Snapshot() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Consume calls fn for each event in order and removes those for which fn
// returns true.
func (q *EventQueue) Consume(fn func(e Event) bool) {
	kept := q.events[:0]
	for _, e := range q.events {
		if !fn(e) {
			kept = append(kept, e)
		}
	}
	// clear the tail so dropped events do not linger in the backing array
	for i := len(kept); i < len(q.events); i++ {
		q.events[i] = Event{}
	}
	q.events = kept
}

// Clear drops every event.
func (q *EventQueue) Clear() {
	q.events = q.events[:0]
}

// BonusKind is the effect of a picked-up bonus.
type BonusKind int

const (
	BonusMegaBombs BonusKind = iota // bigger blast
	BonusSpeed                      // faster movement
)

func (b BonusKind) String() string {
	if b == BonusSpeed {
		return "speed"
	}
	return "mega_bombs"
}

// BonusCatalog maps bonus kinds to their strengths. It is loaded once from
// configuration and handed to the manager.
type BonusCatalog struct {
	MegaBombs int
	Speed     int
}

// Strength returns the configured strength of kind.
func (c BonusCatalog) Strength(kind BonusKind) int {
	if kind == BonusSpeed {
		return c.Speed
	}
	return c.MegaBombs
}

// Pick chooses a bonus kind uniformly.
func (c BonusCatalog) Pick(rng *rand.Rand) (BonusKind, int) {
	kind := BonusKind(rng.Intn(2))
	return kind, c.Strength(kind)
}
