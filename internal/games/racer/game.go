// Package racer implements a top-down car dodging game.
// The player steers a car along the bottom of a lane while enemy cars fall
// from the top. Dodged cars score a point; power-ups grant a shield, a speed
// boost or bonus points. Any unshielded crash ends the run.
package racer

import (
	"github.com/vovakirdan/racer-arcade/internal/config"
	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/registry"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.RacerConfig
	clock     core.TickClock
	session   *Session
	preset    config.DifficultyPreset
	presetSet bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file's own difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetDifficulty overrides the package preset for this instance only.
// An empty name keeps the config file's difficulty.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
	g.presetSet = true
}

// New creates a new Car Racer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "racer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Car Racer"
}

// Reset starts a fresh session. The high score is reloaded from the store.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRacer(configPath)
	if err != nil {
		cfg = config.DefaultRacerConfig()
	}
	preset := difficultyPreset
	if g.presetSet {
		preset = g.preset
	}
	config.ApplyRacerPreset(&cfg, preset)
	g.cfg = cfg

	g.clock = core.NewFrameClock(runtime.TickRate)
	g.session = NewSession(cfg, runtime.Seed, g.clock, runtime.Scores)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.session.Tick(in)
	g.clock.Tick()
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the current game state.
func (g *Game) Render(dst core.Renderer) {
	g.session.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	run := g.session.Run()
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.Phase() == PhaseGameOver,
		Run: core.RunStats{
			Dodged:   run.Dodged,
			Bonuses:  run.TotalBonuses(),
			Duration: run.Duration,
		},
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// init registers the game with the global registry.
func init() {
	registry.Register("racer", func() registry.Game {
		return New()
	})
}
