package bomber

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/level"

// Snapshot contains the observable game state for determinism checks and
// debugging. Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick         uint64
	State        string
	Mode         string
	MapNumber    int
	MapsCleared  int
	Score        int
	Score2       int
	RoundsLeft   int
	AlivePlayers int
	AliveEnemies int

	// Objects in list order (each object is 3 ints: Type, BoxX, BoxY)
	ObjectCount int
	ObjectData  []int

	// Map as saved, row-major tile types
	MapData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tickCount,
		State:       g.state,
		MapNumber:   g.mapNumber,
		MapsCleared: g.mapsCleared,
	}
	if g.manager == nil {
		return snap
	}

	m := g.manager
	snap.Mode = m.Mode().String()
	snap.Score, snap.Score2 = m.Score()
	snap.RoundsLeft = m.Rounds()
	snap.AlivePlayers = m.AlivePlayers()
	snap.AliveEnemies = m.AliveEnemies()

	objects := m.Objects()
	snap.ObjectCount = len(objects)
	snap.ObjectData = make([]int, 0, len(objects)*3)
	for _, obj := range objects {
		box := obj.Box()
		snap.ObjectData = append(snap.ObjectData, int(obj.Type()), box.X, box.Y)
	}

	mp := m.SaveIntoMap()
	snap.MapData = make([]int, 0, mp.Width*mp.Height)
	for y := 0; y < mp.Height; y++ {
		for x := 0; x < mp.Width; x++ {
			snap.MapData = append(snap.MapData, int(mp.At(x, y)))
		}
	}
	return snap
}

// SavedMap returns what a quicksave would write right now.
func (g *Game) SavedMap() *level.Map {
	if g.manager == nil {
		return nil
	}
	return g.manager.SaveIntoMap()
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(len(snap.State))
	for _, r := range snap.State + snap.Mode {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.MapNumber)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MapsCleared)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.RoundsLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AlivePlayers) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AliveEnemies) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObjectCount)  //#nosec G115 -- hash computation

	for _, v := range snap.ObjectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.MapData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
