// Package window runs a game in a desktop window with ebiten.
// It is the graphical counterpart of the terminal platform: the same game
// and draw commands, rendered as pixels at the world's native size.
package window

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/logging"
	"github.com/vovakirdan/racer-arcade/internal/registry"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

// EventPlayer consumes the events produced by each simulation step.
type EventPlayer interface {
	Play(events []core.Event)
}

// Options holds the optional collaborators of a window run.
type Options struct {
	Sound  EventPlayer
	Logger *log.Logger
}

// Runner adapts a registry.Game to ebiten.Game.
type Runner struct {
	game     registry.Game
	store    *storage.Store
	cfg      core.RuntimeConfig
	opts     Options
	keys     KeyState
	frame    core.DrawList
	state    core.GameState
	runSaved bool
}

// NewRunner creates a runner and resets the game.
// When cfg carries no ScoreStore and store is set, the high score is kept
// in the database.
func NewRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Runner {
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

	game.Reset(cfg)
	r := &Runner{
		game:  game,
		store: store,
		cfg:   cfg,
		opts:  opts,
		keys:  ebitenKeys{},
		state: game.State(),
	}
	// Record one frame so Layout knows the world size before the first Draw.
	game.Render(&r.frame)
	return r
}

// Update advances the simulation by one tick.
func (r *Runner) Update() error {
	in, quit := pollInput(r.keys)
	if quit {
		return ebiten.Termination
	}
	r.step(in)
	return nil
}

func (r *Runner) step(in core.InputFrame) {
	result := r.game.Step(in)
	r.state = result.State

	if r.state.GameOver {
		if !r.runSaved {
			r.recordRun()
			r.runSaved = true
		}
	} else {
		r.runSaved = false
	}

	if r.opts.Sound != nil && len(result.Events) > 0 {
		r.opts.Sound.Play(result.Events)
	}
}

func (r *Runner) recordRun() {
	r.opts.Logger.Info("game over", "game", r.game.ID(), "score", r.state.Score, "dodged", r.state.Run.Dodged)
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		GameID:     r.game.ID(),
		Score:      r.state.Score,
		Dodged:     r.state.Run.Dodged,
		Bonuses:    r.state.Run.Bonuses,
		DurationMS: r.state.Run.Duration.Milliseconds(),
	})
	if err != nil {
		r.opts.Logger.Warn("could not record run", "game", r.game.ID(), "err", err)
	}
}

// Draw renders the current game state.
func (r *Runner) Draw(screen *ebiten.Image) {
	r.game.Render(&r.frame)
	r.frame.Replay(&imageRenderer{dst: screen})
}

// Layout keeps the logical screen at the world size; ebiten scales it to
// the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	return int(r.frame.WorldW), int(r.frame.WorldH)
}

// State returns the last game state.
func (r *Runner) State() core.GameState {
	return r.state
}

// Run opens a window and plays game until it is closed or a quit key is
// pressed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	r := NewRunner(game, store, cfg, opts)

	w, h := r.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(r.cfg.TickRate)

	err := ebiten.RunGame(r)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
