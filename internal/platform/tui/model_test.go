package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

// stubGame ends after overAt steps and restarts on ActionRestart.
type stubGame struct {
	overAt int
	steps  int
	inputs []core.InputFrame
	scores core.ScoreStore
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.steps = 0
	g.scores = cfg.Scores
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())

	over := g.steps >= g.overAt
	if over && in.Has(core.ActionRestart) {
		g.steps = 0
		return core.StepResult{State: g.State(), Events: []core.Event{{Type: core.EventRestart}}}
	}

	var events []core.Event
	if !over {
		g.steps++
		if g.steps == g.overAt {
			events = append(events, core.Event{Type: core.EventCrash})
		}
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *stubGame) Render(dst core.Renderer) {
	dst.BeginFrame(800, 600)
	dst.Overlay(core.OverlayScore, "Score: 7")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{
		Score:    7,
		GameOver: g.steps >= g.overAt,
		Run:      core.RunStats{Dodged: 7, Bonuses: 1, Duration: 2 * time.Second},
	}
}

type recordingSound struct {
	events []core.Event
}

func (r *recordingSound) Play(events []core.Event) {
	r.events = append(r.events, events...)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() }) //nolint:errcheck // test cleanup
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 2}
	sound := &recordingSound{}

	m := NewModel(game, store, testRuntime(), Options{Sound: sound})
	m.Init()

	for range 6 {
		m = update(t, m, TickMsg(time.Now()))
	}

	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if runs[0].Score != 7 || runs[0].Dodged != 7 || runs[0].Bonuses != 1 || runs[0].DurationMS != 2000 {
		t.Errorf("run = %+v", runs[0])
	}
	if core.CountEvents(sound.events, core.EventCrash) != 1 {
		t.Errorf("sound events = %v, want one crash", sound.events)
	}
}

func TestModelInjectsHighScoreStore(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 1}

	m := NewModel(game, store, testRuntime(), Options{})
	m.Init()

	if game.scores == nil {
		t.Fatal("game should receive a ScoreStore backed by the database")
	}
	game.scores.Save(42)
	if got := game.scores.Load(); got != 42 {
		t.Errorf("Load() = %d, want 42", got)
	}
}

func TestModelRestartRecordsNextRun(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 1}

	m := NewModel(game, store, testRuntime(), Options{})
	m.Init()

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg(time.Now())) // restart
	m = update(t, m, TickMsg(time.Now())) // crash again

	runs, err := store.AllRuns("stub")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("recorded %d runs, want 2", len(runs))
	}
}

func TestModelSteeringReachesGame(t *testing.T) {
	game := &stubGame{overAt: 100}

	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(game.inputs) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.inputs))
	}
	for i, in := range game.inputs {
		if !in.Has(core.ActionLeft) {
			t.Errorf("step %d: left not held", i)
		}
	}
}

func TestModelBackOnlyAfterGameOver(t *testing.T) {
	game := &stubGame{overAt: 1}

	m := NewModel(game, nil, testRuntime(), Options{AllowBack: true})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while running")
	}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.BackToMenu() {
		t.Error("back should leave the game once it is over")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{overAt: 100}

	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.steps != 1 {
		t.Errorf("resize reset the game: steps = %d", game.steps)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}
