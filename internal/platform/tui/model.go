package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/logging"
	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

// EventPlayer consumes the events produced by each simulation step.
type EventPlayer interface {
	Play(events []core.Event)
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Sound  EventPlayer
	Logger *log.Logger
	// AllowBack lets Back on the game over screen leave the game
	// (used when a menu is waiting behind it).
	AllowBack bool
}

// holdSeconds is how long a steering key press stays active.
const holdSeconds = 0.15

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	steer      *SteerLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// When cfg carries no ScoreStore and store is set, the high score is kept
// in the database.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if cfg.Scores == nil && store != nil {
		cfg.Scores = storage.NewHighScores(store, game.ID(), opts.Logger)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	hold := int(float64(cfg.TickRate) * holdSeconds)

	return Model{
		game:       game,
		screen:     screen,
		renderer:   NewScreenRenderer(screen),
		store:      store,
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		steer:      NewSteerLatch(hold),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.steer.Press(action)
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	case core.ActionBack:
		if m.opts.AllowBack && m.gameState.GameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events. The renderer rescales the
// world, so the running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.steer.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.steer.Release()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	if len(result.Events) > 0 {
		m.logEvents(result.Events)
		if m.opts.Sound != nil {
			m.opts.Sound.Play(result.Events)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run in the history.
func (m Model) recordRun() {
	state := m.gameState
	m.opts.Logger.Info("game over",
		"game", m.game.ID(),
		"score", state.Score,
		"dodged", state.Run.Dodged,
		"bonuses", state.Run.Bonuses,
		"duration", state.Run.Duration.Round(time.Millisecond))

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		GameID:     m.game.ID(),
		Score:      state.Score,
		Dodged:     state.Run.Dodged,
		Bonuses:    state.Run.Bonuses,
		DurationMS: state.Run.Duration.Milliseconds(),
	})
	if err != nil {
		m.opts.Logger.Warn("could not record run", "game", m.game.ID(), "err", err)
	}
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventHighScore:
			m.opts.Logger.Info("new high score", "game", m.game.ID(), "score", e.Detail)
		case core.EventRestart:
			m.opts.Logger.Debug("restart", "game", m.game.ID())
		default:
			m.opts.Logger.Debug("event", "type", e.Type, "detail", e.Detail)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.renderer)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.renderer)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game. It returns true when the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (bool, error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
