package engine

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// HighScores persists the best single-player score.
type HighScores interface {
	HighScore() (int, error)
	RecordHighScore(score int) error
}

// Options configures a Manager.
type Options struct {
	Geometry    Geometry
	Bonuses     BonusCatalog
	BonusChance int // percent, 0..100
	DuelRounds  int
	Renderer    Renderer
	Rand        *rand.Rand
	HighScores  HighScores  // optional
	Logger      *log.Logger // optional
}

// Stats counts what happened since the manager was created.
type Stats struct {
	BombsPlaced    int
	Explosions     int
	EnemiesKilled  int
	PlayersKilled  int
	BonusesSpawned int
	MapsCleared    int
	RoundsPlayed   int
}

// Manager owns the tile grid, the live objects and the event queue, and
// drives the game through Tick and ProcessEvents.
type Manager struct {
	opts   Options
	geo    Geometry
	rng    *rand.Rand
	log    *log.Logger
	tiles  *TileGrid
	events EventQueue

	// newest first
	objects []Object

	nextHandle Handle
	mode       level.Mode
	score      [2]int
	roundWins  [2]int
	rounds     int

	alivePlayers int
	aliveEnemies int

	needsNewMap bool
	endGame     bool
	newRecord   bool

	stats Stats
}

// NewManager creates an idle manager. Call StartGame before ticking.
func NewManager(opts Options) *Manager {
	if opts.Renderer == nil {
		opts.Renderer = NopRenderer{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.DuelRounds < 1 {
		opts.DuelRounds = 1
	}
	g := opts.Geometry
	return &Manager{
		opts:  opts,
		geo:   g,
		rng:   opts.Rand,
		log:   opts.Logger.WithPrefix("bomber"),
		tiles: newTileGrid(g.MapW, g.MapH, g.TileWidth),
	}
}

// Geometry returns the pixel geometry.
func (m *Manager) Geometry() Geometry { return m.geo }

// Tiles returns the static grid.
func (m *Manager) Tiles() *TileGrid { return m.tiles }

// Objects returns the live objects, newest first.
func (m *Manager) Objects() []Object { return m.objects }

// Events returns the pending event queue.
func (m *Manager) Events() *EventQueue { return &m.events }

// Mode returns the current game mode.
func (m *Manager) Mode() level.Mode { return m.mode }

// Score returns the scores of player 1 and player 2.
func (m *Manager) Score() (int, int) { return m.score[0], m.score[1] }

// RoundWins returns how many duel rounds each player has won.
func (m *Manager) RoundWins() (int, int) { return m.roundWins[0], m.roundWins[1] }

// Rounds returns the duel rounds left.
func (m *Manager) Rounds() int { return m.rounds }

// AlivePlayers returns the number of living players. It drops below zero
// once the game-over check has run.
func (m *Manager) AlivePlayers() int { return m.alivePlayers }

// AliveEnemies returns the number of living enemies. It drops below zero
// once the door has been spawned.
func (m *Manager) AliveEnemies() int { return m.aliveEnemies }

// NeedsNewMap reports whether the current map is finished.
func (m *Manager) NeedsNewMap() bool { return m.needsNewMap }

// EndGame reports whether the game is over.
func (m *Manager) EndGame() bool { return m.endGame }

// NewRecord reports whether the finished game beat the stored high score.
func (m *Manager) NewRecord() bool { return m.newRecord }

// Stats returns the running counters.
func (m *Manager) Stats() Stats { return m.stats }

// Player returns the live player with the given id, or nil.
func (m *Manager) Player(id core.PlayerID) *Player {
	for _, obj := range m.objects {
		if p, ok := obj.(*Player); ok && p.id == id {
			return p
		}
	}
	return nil
}

// StartGame begins a fresh game on mp. The mode follows the number of
// players on the map: two means a duel of the configured number of rounds.
func (m *Manager) StartGame(mp *level.Map) {
	m.endGame = false
	m.needsNewMap = false
	m.newRecord = false
	m.score = [2]int{mp.Score, 0}
	m.roundWins = [2]int{}
	m.LoadFromMap(mp)

	if m.alivePlayers == 2 {
		m.mode = level.Duel
		m.rounds = m.opts.DuelRounds
	} else {
		m.mode = level.SinglePlayer
		m.rounds = 0
	}
	m.log.Debug("game started", "mode", m.mode, "enemies", m.aliveEnemies, "score", mp.Score)
}

// LoadFromMap replaces the world with the contents of mp. Scores and duel
// rounds are kept.
func (m *Manager) LoadFromMap(mp *level.Map) {
	m.objects = m.objects[:0]
	m.events.Clear()
	m.alivePlayers = 0
	m.aliveEnemies = 0
	m.needsNewMap = false
	m.tiles = newTileGrid(mp.Width, mp.Height, m.geo.TileWidth)

	hasDoor := false
	for y := 0; y < mp.Height; y++ {
		for x := 0; x < mp.Width; x++ {
			p := level.Point{X: x, Y: y}
			t := mp.At(x, y)
			if t.Solid() {
				m.tiles.set(p, t)
			}

			switch t {
			case level.Player1:
				m.add(NewPlayer(m.handle(), core.Player1, p, m.score[0], m.geo))
				m.alivePlayers++
			case level.Player2:
				m.add(NewPlayer(m.handle(), core.Player2, p, m.score[1], m.geo))
				m.alivePlayers++
			case level.Enemy:
				m.add(NewEnemy(m.handle(), p, m.geo, m.rng))
				m.aliveEnemies++
			case level.Bomb:
				m.add(NewBomb(m.handle(), p, 1, m.geo))
			case level.Blast:
				m.add(NewExplosion(m.handle(), p, m.geo))
			case level.Door:
				m.add(NewDoor(m.handle(), p, m.geo))
				hasDoor = true
			case level.Bonus:
				m.add(NewBonus(m.handle(), p, m.geo))
			}
		}
	}

	if hasDoor {
		// The door is already out; do not spawn another.
		m.aliveEnemies = -1
	}
}

// SaveIntoMap snapshots the world. Objects are written over the tiles at
// their TilePos in list order; walls are never overwritten.
func (m *Manager) SaveIntoMap() *level.Map {
	mp := level.NewMap(m.tiles.Width(), m.tiles.Height())
	for y := 0; y < mp.Height; y++ {
		for x := 0; x < mp.Width; x++ {
			mp.Cells[y][x] = m.tiles.At(x, y).Type
		}
	}
	for _, obj := range m.objects {
		if obj.Removed() {
			continue
		}
		p := obj.TilePos()
		if mp.At(p.X, p.Y) == level.Wall {
			continue
		}
		mp.Set(p.X, p.Y, obj.Type())
	}
	mp.Score = m.score[0]
	return mp
}

// Step runs one full tick: Tick followed by ProcessEvents.
func (m *Manager) Step(input core.MultiInputFrame) {
	m.Tick(input)
	m.ProcessEvents()
}

// Tick renders the tiles, updates every object in list order and drops the
// objects that asked to be removed.
func (m *Manager) Tick(input core.MultiInputFrame) {
	f := m.frame(input)
	m.tiles.render(f.Renderer)

	for _, obj := range f.Objects {
		obj.Update(f)
	}

	kept := m.objects[:0]
	for _, obj := range m.objects {
		if p, ok := obj.(*Player); ok {
			m.score[p.id-1] = p.score
		}
		if !obj.Removed() {
			kept = append(kept, obj)
		}
	}
	for i := len(kept); i < len(m.objects); i++ {
		m.objects[i] = nil
	}
	m.objects = kept
}

// ProcessEvents applies the state transitions of the tick: door spawning,
// game over, duel rounds and the queued events.
func (m *Manager) ProcessEvents() {
	if m.aliveEnemies == 0 && m.mode == level.SinglePlayer {
		m.spawnDoor()
		m.aliveEnemies--
	}

	if !m.needsNewMap && !m.endGame {
		switch {
		case m.mode == level.SinglePlayer && m.alivePlayers == 0:
			m.alivePlayers--
			m.finishSingle()
		case m.mode == level.Duel && m.alivePlayers <= 1:
			m.finishRound()
		}
	}

	m.events.Consume(func(e Event) bool {
		switch e.Kind {
		case EventPlaceBomb:
			m.add(NewBomb(m.handle(), e.Pos, e.Value, m.geo))
			m.stats.BombsPlaced++
			return true
		case EventPlaceExplosion:
			m.explode(e.Pos)
			return true
		case EventEnemyDead:
			m.aliveEnemies--
			m.stats.EnemiesKilled++
			return true
		case EventPlayerDead:
			m.alivePlayers--
			m.stats.PlayersKilled++
			return true
		case EventDoorReached:
			if !m.needsNewMap {
				m.stats.MapsCleared++
				m.log.Debug("door reached", "score", m.score[0])
			}
			m.needsNewMap = true
			return true
		case EventGetBonus:
			// Drop bonuses for players that died before collecting them
			return m.find(e.Target) == nil
		case EventPoints:
			return m.alivePlayers <= 0
		}
		return false
	})
}

func (m *Manager) spawnDoor() {
	c := m.geo.Center()
	if m.tiles.TypeAt(c) != level.Empty {
		m.tiles.set(c, level.Empty)
	}
	m.add(NewDoor(m.handle(), c, m.geo))
	m.log.Debug("door spawned", "x", c.X, "y", c.Y)
}

func (m *Manager) explode(p level.Point) {
	if m.tiles.TypeAt(p) == level.Breakable {
		m.tiles.set(p, level.Empty)
		if m.rollBonus() {
			m.add(NewBonus(m.handle(), p, m.geo))
			m.stats.BonusesSpawned++
		}
	}
	m.add(NewExplosion(m.handle(), p, m.geo))
	m.stats.Explosions++
}

func (m *Manager) rollBonus() bool {
	chance := m.opts.BonusChance
	if chance <= 0 {
		return false
	}
	if chance > 100 {
		chance = 100
	}
	return (m.rng.Intn(100)+1)%(100/chance) == 0
}

func (m *Manager) finishSingle() {
	m.endGame = true
	if m.opts.HighScores == nil {
		return
	}
	best, err := m.opts.HighScores.HighScore()
	if err != nil {
		m.log.Warn("cannot read high score", "err", err)
		return
	}
	if m.score[0] > best {
		m.newRecord = true
		if err := m.opts.HighScores.RecordHighScore(m.score[0]); err != nil {
			m.log.Warn("cannot save high score", "err", err)
		}
	}
}

func (m *Manager) finishRound() {
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		if m.Player(id) != nil {
			m.roundWins[id-1]++
		}
	}
	m.stats.RoundsPlayed++
	m.rounds--
	if m.rounds <= 0 {
		m.endGame = true
	} else {
		m.needsNewMap = true
	}
	m.log.Debug("round over", "rounds_left", m.rounds, "p1", m.score[0], "p2", m.score[1])
}

func (m *Manager) frame(input core.MultiInputFrame) *Frame {
	return &Frame{
		Geo:      m.geo,
		Tiles:    m.tiles,
		Objects:  m.objects,
		Events:   &m.events,
		Input:    input,
		Renderer: m.opts.Renderer,
		Rand:     m.rng,
		Bonuses:  m.opts.Bonuses,
	}
}

func (m *Manager) find(h Handle) Object {
	for _, obj := range m.objects {
		if obj.Handle() == h {
			return obj
		}
	}
	return nil
}

func (m *Manager) add(obj Object) {
	m.objects = append([]Object{obj}, m.objects...)
}

func (m *Manager) handle() Handle {
	m.nextHandle++
	return m.nextHandle
}
