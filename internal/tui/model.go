package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkaryakin/snaketerm/internal/core"
	"github.com/dkaryakin/snaketerm/internal/snake"
	"github.com/dkaryakin/snaketerm/internal/storage"
)

// Model is the Bubble Tea model driving a game session. It owns the
// periodic clock: a single tick chain is armed while the engine runs and
// is dropped the moment the engine leaves the Running phase, so no tick
// advances a paused or finished game.
type Model struct {
	engine     *snake.Engine
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	snap       snake.Snapshot
	status     string
	ticking    bool // a tick command is in flight
	quitting   bool
	scoreSaved bool // final score saved for the current game over
}

// NewModel creates a new Bubble Tea model for the given engine.
func NewModel(engine *snake.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 150 * time.Millisecond
	}

	m := Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}

	// Start immediately; Init arms the clock. Starting here keeps the
	// ticking flag and the first snapshot in the model Bubble Tea
	// actually retains (Init runs on a copy).
	m.apply(engine.Start())
	m.ticking = true
	return m
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if heading, ok := HeadingFor(action); ok {
		m.engine.SetHeading(heading)
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.apply(m.engine.TogglePause())
		return m, m.armTick()

	case core.ActionRestart:
		if m.snap.Over() {
			m.apply(m.engine.Start())
			m.scoreSaved = false
			return m, m.armTick()
		}
	}

	return m, nil
}

// handleTick advances the simulation by one step and re-arms the clock
// while the engine keeps running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	m.apply(m.engine.AdvanceTick())
	return m, m.armTick()
}

// armTick schedules the next tick if the engine is running and no tick is
// already in flight. Keeping at most one tick pending means pause, game
// over and reset stop the clock without a stray tick mutating state later.
func (m *Model) armTick() tea.Cmd {
	if m.ticking || m.snap.Phase != snake.PhaseRunning {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickInterval)
}

// apply folds an engine result into the model: the fresh snapshot, the
// notification line, and the best-effort score save on game over.
func (m *Model) apply(res snake.Result) {
	m.snap = res.Snapshot

	if len(res.Events) > 0 {
		m.status = res.Events[len(res.Events)-1].String()
	}

	if m.snap.Over() && !m.scoreSaved && m.snap.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.snap.Score)
		}
		m.scoreSaved = true
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderSnapshot(m.snap, m.status, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(engine *snake.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(engine, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
