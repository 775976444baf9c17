package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// Model is the Bubble Tea model that runs one game: it turns key events
// into per-tick input, steps the game at its tick rate and stores the run
// when the game ends.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	runs       RunStore
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	now        func() time.Time
	gameState  core.GameState
	standalone bool // quit the program on back instead of handing over
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the run has been stored for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		runs:      runStore(store),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(HoldWindow),
		now:       time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.tickRate())
}

// tickRate prefers the game's own simulation rate.
func (m Model) tickRate() int {
	if tr, ok := m.game.(registry.TickRater); ok && tr.TickRate() > 0 {
		return tr.TickRate()
	}
	return m.config.TickRate
}

// TickMsg drives one simulation step.
type TickMsg time.Time

func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	b, ok, global := m.keyMapper.MapKey(msg)
	switch global {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if ok {
		m.held.Press(b, m.now())
	}
	return m, nil
}

// handleResize processes window resize events. The simulation does not
// depend on the terminal size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	in := m.held.Frame(now)

	// Check for restart
	if in.Pressed(core.Player1, core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.held.Reset()
		return m, tickCmd(m.tickRate())
	}

	// Run game simulation
	result := m.game.Step(in)
	m.gameState = result.State

	// Store the run on game over (once)
	if m.gameState.GameOver && !m.recorded {
		//nolint:errcheck // Best-effort save, game continues regardless
		recordRun(m.runs, m.game, m.gameState)
		m.recorded = true
	}

	// Continue ticking
	return m, tickCmd(m.tickRate())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".bomber", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Outcome describes how a game session ended.
type Outcome struct {
	Quit    bool   // user asked to leave the program
	Message string // status of a game that ended, e.g. a failed load
}

// outcome summarizes the model after the program stopped. Transient
// messages of a running game are not carried back.
func (m Model) outcome() Outcome {
	o := Outcome{Quit: m.quitting}
	if st := m.game.State(); st.GameOver {
		o.Message = st.Message
	}
	return o
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.outcome(), nil
	}
	return Outcome{}, nil
}
