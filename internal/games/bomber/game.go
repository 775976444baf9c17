// Package bomber drives the Bomber engine as a registry game: it loads the
// configuration, generates or loads maps, advances the manager once per
// tick and draws the result on a terminal screen.
package bomber

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/engine"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
	"github.com/vovakirdan/tui-bomber/internal/registry"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateFailed   = "failed" // config or save slot could not be used
)

// GameMode represents how a run starts.
type GameMode int

const (
	ModeSingle GameMode = iota // fresh single-player map
	ModeDuel                   // two local players
	ModeLoad                   // resume from the save slot
)

// Observer receives gameplay counters. telemetry.Metrics implements it.
type Observer interface {
	GameStarted(mode string)
	GameFinished(mode string)
	MapsCleared(n int)
	EnemiesKilled(n int)
	BombsPlaced(n int)
}

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	highScoreStore HighScoreStore
	observer       Observer
	logger         = log.Default()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetHighScoreStore sets where single-player high scores are kept.
func SetHighScoreStore(s HighScoreStore) {
	highScoreStore = s
}

// SetObserver sets the receiver of gameplay counters.
func SetObserver(o Observer) {
	observer = o
}

// SetLogger sets the logger handed to the engine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// Game implements the Bomber registry game.
type Game struct {
	mode GameMode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BomberConfig
	difficulty *config.DifficultyManager
	geo        engine.Geometry
	rng        *rand.Rand

	manager *engine.Manager
	canvas  *canvas

	// Run state
	state        string
	runID        string
	started      time.Time
	tickCount    uint64
	mapNumber    int
	mapsCleared  int
	best         int
	lastStats    engine.Stats
	failTitle    string
	message      string
	messageTicks int
}

// New creates a new single-player game.
func New() *Game {
	return &Game{mode: ModeSingle}
}

// NewDuel creates a new two-player duel.
func NewDuel() *Game {
	return &Game{mode: ModeDuel}
}

// NewFromSave creates a single-player game that resumes from the save slot.
func NewFromSave() *Game {
	return &Game{mode: ModeLoad}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDuel {
		return "bomber_duel"
	}
	return "bomber"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDuel {
		return "Bomber (Duel)"
	}
	return "Bomber"
}

// TickRate returns the configured simulation rate.
func (g *Game) TickRate() int {
	if g.cfg.Screen.FPS <= 0 {
		return core.DefaultConfig().TickRate
	}
	return g.cfg.Screen.FPS
}

// Reset loads the configuration and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.manager = nil
	g.runID = uuid.NewString()
	g.started = time.Now()
	g.tickCount = 0
	g.mapNumber = 1
	g.mapsCleared = 0
	g.best = 0
	g.lastStats = engine.Stats{}
	g.failTitle = ""
	g.message = ""
	g.messageTicks = 0

	// Load game config
	cfg, err := config.LoadBomber(configPath)
	if err != nil {
		g.fail("Configuration could not be loaded", err.Error())
		return
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBomberPreset(&cfg, difficultyPreset)
	}

	if err := config.Validate(cfg); err != nil {
		g.fail("Invalid configuration", err.Error())
		return
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.geo = engine.NewGeometry(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.TileWidth, cfg.Screen.FPS)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.canvas = newCanvas(cfg.Screen.TileWidth)

	opts := engine.Options{
		Geometry: g.geo,
		Bonuses: engine.BonusCatalog{
			MegaBombs: cfg.Bonuses.MegaBombs,
			Speed:     cfg.Bonuses.Speed,
		},
		BonusChance: cfg.Gameplay.BonusChance,
		DuelRounds:  cfg.Gameplay.DuelRounds,
		Renderer:    g.canvas,
		Rand:        g.rng,
		Logger:      logger,
	}
	if highScoreStore != nil {
		hs := &highScores{
			store:  highScoreStore,
			gameID: g.ID(),
			runID:  g.runID,
			floor:  cfg.Files.HighScore,
		}
		opts.HighScores = hs
		if best, err := hs.HighScore(); err == nil {
			g.best = best
		}
	}

	mp, err := g.firstMap()
	if err != nil {
		g.fail(loadFailureTitle(err), err.Error())
		return
	}

	g.manager = engine.NewManager(opts)
	g.manager.StartGame(mp)
	g.state = StatePlaying

	if observer != nil {
		observer.GameStarted(g.manager.Mode().String())
	}
}

func (g *Game) firstMap() (*level.Map, error) {
	switch g.mode {
	case ModeLoad:
		path := config.ExpandPath(g.cfg.Files.SaveFile)
		return level.ReadSlot(path, g.geo.MapW, g.geo.MapH)
	case ModeDuel:
		return g.generate(level.Duel), nil
	default:
		return g.generate(level.SinglePlayer), nil
	}
}

// generate builds the next map. Single-player counts scale with the number
// of maps cleared; duel maps have no enemies.
func (g *Game) generate(mode level.Mode) *level.Map {
	counts := level.Counts{
		Enemies:    g.difficulty.Enemies(g.cfg.Gameplay.Enemies, g.mapsCleared),
		Breakables: g.difficulty.Breakables(g.cfg.Gameplay.Breakables, g.mapsCleared),
	}
	if mode == level.Duel {
		counts.Enemies = 0
	}
	return level.NewGenerator(g.geo.MapW, g.geo.MapH, counts, g.rng).Generate(mode)
}

// loadFailureTitle tells an unreadable save slot apart from a corrupted one.
func loadFailureTitle(err error) string {
	if level.IsCorrupted(err) {
		return "Load file is corrupted"
	}
	return "Game could not be loaded from a file"
}

func (g *Game) fail(title, detail string) {
	g.state = StateFailed
	g.failTitle = title
	g.message = detail
	logger.Debug("bomber run failed", "reason", title, "detail", detail)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.state == StateFailed {
		return core.StepResult{State: g.State()}
	}

	// Restart on a new map. The seed comes from the finished run so replays
	// stay deterministic.
	if in.Pressed(core.Player1, core.ActionRestart) && g.state == StateGameOver {
		next := g.runtime
		next.Seed = g.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Pressed(core.Player1, core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
	}

	// Don't update if paused or game over
	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.Player1, core.ActionSave) {
		g.quicksave()
	}

	g.canvas.begin()
	g.manager.Step(in)
	g.tickCount++
	g.observe()

	switch {
	case g.manager.EndGame():
		g.finish()
	case g.manager.NeedsNewMap():
		g.nextMap()
	}

	return core.StepResult{State: g.State()}
}

// quicksave writes the current world into the save slot.
func (g *Game) quicksave() {
	if g.manager.Mode() != level.SinglePlayer {
		g.say("Saving is only available in single player")
		return
	}
	path := config.ExpandPath(g.cfg.Files.SaveFile)
	if err := level.WriteSlot(path, g.manager.SaveIntoMap()); err != nil {
		logger.Debug("quicksave failed", "path", path, "err", err)
		g.say("Save failed: " + err.Error())
		return
	}
	g.say("Game saved")
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = 2 * g.TickRate()
}

// nextMap replaces the world after the door was reached or a duel round
// ended. Scores carry over.
func (g *Game) nextMap() {
	mode := g.manager.Mode()
	if mode == level.SinglePlayer {
		g.mapsCleared++
	}
	g.mapNumber++
	g.manager.LoadFromMap(g.generate(mode))
}

func (g *Game) finish() {
	g.state = StateGameOver
	if g.manager.NewRecord() {
		g.best, _ = g.manager.Score()
	}
	if observer != nil {
		observer.GameFinished(g.manager.Mode().String())
	}
}

// observe forwards the counters that changed during the last tick.
func (g *Game) observe() {
	s := g.manager.Stats()
	if observer != nil {
		if n := s.BombsPlaced - g.lastStats.BombsPlaced; n > 0 {
			observer.BombsPlaced(n)
		}
		if n := s.EnemiesKilled - g.lastStats.EnemiesKilled; n > 0 {
			observer.EnemiesKilled(n)
		}
		if n := s.MapsCleared - g.lastStats.MapsCleared; n > 0 {
			observer.MapsCleared(n)
		}
	}
	g.lastStats = s
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == StateFailed {
		g.drawCenteredBox(dst, g.failTitle, g.message)
		dst.DrawTextCentered(dst.Height()-1, "Press ESC to return to the menu")
		return
	}

	cols := g.geo.MapW * CellsPerTile
	rows := g.geo.MapH
	minW, minH := cols, rows+2

	// Check for screen too small
	if dst.Width() < minW || dst.Height() < minH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minW, minH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	offX := (dst.Width() - cols) / 2
	offY := 1

	// Draw HUD
	g.renderHUD(dst, offX, cols)

	// Draw the recorded frame
	g.canvas.blit(dst, offX, offY, cols)

	// Draw status line
	g.renderStatus(dst, offY+rows)

	// Draw overlay messages
	g.renderOverlay(dst)
}

// renderHUD draws scores, the map or round counter and the best score.
func (g *Game) renderHUD(dst *core.Screen, offX, cols int) {
	s1, s2 := g.manager.Score()
	dst.DrawTextColored(offX, 0, fmt.Sprintf("P1: %d", s1), core.ColorBrightCyan)

	var right string
	var center string
	if g.manager.Mode() == level.Duel {
		w1, w2 := g.manager.RoundWins()
		played := g.cfg.Gameplay.DuelRounds - g.manager.Rounds()
		round := min(played+1, g.cfg.Gameplay.DuelRounds)
		center = fmt.Sprintf("Round %d/%d  %d:%d", round, g.cfg.Gameplay.DuelRounds, w1, w2)
		right = fmt.Sprintf("P2: %d", s2)
		dst.DrawTextColored(offX+cols-len(right), 0, right, core.ColorBrightMagenta)
	} else {
		center = fmt.Sprintf("Map %d", g.mapNumber)
		right = fmt.Sprintf("Best: %d", max(g.best, s1))
		dst.DrawText(offX+cols-len(right), 0, right)
	}
	dst.DrawTextCentered(0, center)
}

// renderStatus draws the transient message or the key hints.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	if g.messageTicks > 0 && g.message != "" {
		dst.DrawTextCentered(y, g.message)
		return
	}
	if g.manager.Mode() == level.Duel {
		dst.DrawTextCentered(y, "P1 WASD+SPACE  P2 ARROWS+ENTER  P pause  ESC menu")
		return
	}
	dst.DrawTextCentered(y, "WASD move  SPACE bomb  F5 save  P pause  ESC menu")
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		if g.manager.Mode() == level.Duel {
			w1, w2 := g.manager.RoundWins()
			subtitle := fmt.Sprintf("Rounds %d:%d  |  Press R to restart", w1, w2)
			g.drawCenteredBox(dst, duelTitle(g.Report().Winner), subtitle)
			return
		}
		s1, _ := g.manager.Score()
		title := "GAME OVER"
		if g.manager.NewRecord() {
			title = "NEW HIGH SCORE!"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", s1)
		g.drawCenteredBox(dst, title, subtitle)
	}
}

func duelTitle(winner int) string {
	switch winner {
	case 1:
		return "PLAYER 1 WINS"
	case 2:
		return "PLAYER 2 WINS"
	default:
		return "DRAW"
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(min(max(titleLen, subtitleLen)+4, screen.W), 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(max(box.X+(box.W-titleLen)/2, box.X+1), box.Y+1, title)
	dst.DrawText(max(box.X+(box.W-subtitleLen)/2, box.X+1), box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.state == StateGameOver || g.state == StateFailed,
		Paused:   g.state == StatePaused,
	}
	if g.manager != nil {
		st.Score, st.Score2 = g.manager.Score()
	}
	switch {
	case g.state == StateFailed:
		st.Message = g.failTitle + ": " + g.message
	case g.messageTicks > 0:
		st.Message = g.message
	}
	return st
}

// Report describes the run for storage. A run that never started reports
// an empty mode.
func (g *Game) Report() core.RunReport {
	if g.manager == nil {
		return core.RunReport{RunID: g.runID}
	}
	s1, s2 := g.manager.Score()
	r := core.RunReport{
		RunID:       g.runID,
		Mode:        g.manager.Mode().String(),
		Score:       s1,
		Score2:      s2,
		MapsCleared: g.mapsCleared,
		Duration:    time.Since(g.started),
	}
	if g.manager.Mode() == level.Duel {
		w1, w2 := g.manager.RoundWins()
		r.Rounds = g.cfg.Gameplay.DuelRounds - g.manager.Rounds()
		switch {
		case w1 > w2:
			r.Winner = 1
		case w2 > w1:
			r.Winner = 2
		case s1 > s2:
			r.Winner = 1
		case s2 > s1:
			r.Winner = 2
		}
	}
	return r
}

// Register the games with the registry
func init() {
	registry.Register("bomber", func() registry.Game {
		return New()
	})
	registry.Register("bomber_duel", func() registry.Game {
		return NewDuel()
	})
}
