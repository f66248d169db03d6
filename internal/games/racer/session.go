package racer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/racer-arcade/internal/config"
	"github.com/vovakirdan/racer-arcade/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// RunStats summarizes a single run.
type RunStats struct {
	Dodged   int
	Bonuses  [bonusKindCount]int // Collected bonuses indexed by BonusKind
	Duration time.Duration
}

// TotalBonuses returns the number of bonuses collected.
func (r RunStats) TotalBonuses() int {
	n := 0
	for _, c := range r.Bonuses {
		n += c
	}
	return n
}

// Session owns all state of one play session: the player, live entities,
// score and high score. A restart reuses the session and keeps the high score.
type Session struct {
	cfg      config.RacerConfig
	schedule *config.DifficultySchedule
	spawner  *Spawner
	clock    core.Clock
	store    core.ScoreStore

	player  *Player
	hazards []*Hazard
	bonuses []*Bonus
	marks   []*LaneMark

	phase     Phase
	score     int
	highScore int
	start     time.Duration // Clock reading when the current run began
	run       RunStats
}

// NewSession creates a running session. The high score is loaded from store
// once here; a nil store starts at 0 and never saves.
func NewSession(cfg config.RacerConfig, seed int64, clock core.Clock, store core.ScoreStore) *Session {
	schedule := config.NewDifficultySchedule(cfg.Difficulty)
	s := &Session{
		cfg:      cfg,
		schedule: schedule,
		spawner:  NewSpawner(seed, cfg, schedule),
		clock:    clock,
		store:    store,
	}
	if store != nil {
		s.highScore = max(store.Load(), 0)
	}
	s.begin()
	return s
}

// begin resets everything that belongs to a single run.
func (s *Session) begin() {
	s.player = NewPlayer(s.cfg)
	s.hazards = nil
	s.bonuses = nil
	s.marks = newLaneMarks(s.cfg)
	s.phase = PhaseRunning
	s.score = 0
	s.start = s.clock.Now()
	s.run = RunStats{}
}

// Restart starts a new run after game over. It is a no-op while running.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.begin()
	return true
}

// Tick advances the session by one frame.
// While running: spawn, move, resolve collisions. While game over, only a
// restart action has any effect.
func (s *Session) Tick(in core.InputFrame) []core.Event {
	if s.phase == PhaseGameOver {
		if in.Has(core.ActionRestart) && s.Restart() {
			return []core.Event{{Type: core.EventRestart}}
		}
		return nil
	}

	now := s.clock.Now()
	elapsed := now - s.start

	h, b := s.spawner.Spawn(elapsed)
	if h != nil {
		s.hazards = append(s.hazards, h)
	}
	if b != nil {
		s.bonuses = append(s.bonuses, b)
	}

	events := s.advance(in, now)
	events = append(events, s.resolve(now)...)
	if s.phase == PhaseRunning {
		s.run.Duration = elapsed
	}
	return events
}

// crash ends the run and commits a new high score if it was beaten.
func (s *Session) crash(now time.Duration) []core.Event {
	s.phase = PhaseGameOver
	s.run.Duration = now - s.start
	events := []core.Event{{Type: core.EventCrash}}

	if s.score > s.highScore {
		s.highScore = s.score
		if s.store != nil {
			s.store.Save(s.highScore)
		}
		events = append(events, core.Event{Type: core.EventHighScore, Detail: fmt.Sprint(s.highScore)})
	}
	return events
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best committed score.
func (s *Session) HighScore() int { return s.highScore }

// Elapsed returns time since the current run began, frozen at game over.
func (s *Session) Elapsed() time.Duration {
	if s.phase == PhaseGameOver {
		return s.run.Duration
	}
	return s.clock.Now() - s.start
}

// Run returns statistics for the current run.
func (s *Session) Run() RunStats { return s.run }

// Player returns the player car.
func (s *Session) Player() *Player { return s.player }

// Hazards returns live hazards in spawn order.
func (s *Session) Hazards() []*Hazard { return s.hazards }

// Bonuses returns live bonuses in spawn order.
func (s *Session) Bonuses() []*Bonus { return s.bonuses }

// LaneMarks returns the lane marks.
func (s *Session) LaneMarks() []*LaneMark { return s.marks }

// Render issues draw commands for the current frame.
func (s *Session) Render(dst core.Renderer) {
	dst.BeginFrame(s.cfg.Lane.Width, s.cfg.Lane.Height)

	if s.phase == PhaseGameOver {
		dst.Overlay(core.OverlayBanner, "Game Over! Press SPACE to restart")
		dst.Overlay(core.OverlayFinalScore, fmt.Sprintf("Final Score: %d", s.score))
		dst.Overlay(core.OverlayHighScore, fmt.Sprintf("High Score: %d", s.highScore))
		return
	}

	for _, m := range s.marks {
		dst.FillRect(m.Bounds(), core.ColorWhite)
	}

	dst.FillRect(s.player.Bounds(), core.ColorRed)
	if s.player.Shield {
		dst.OutlineRect(s.player.Bounds(), core.ColorBlue)
	}

	for _, h := range s.hazards {
		dst.FillRect(h.Bounds(), core.ColorGreen)
	}
	for _, b := range s.bonuses {
		dst.FillRect(b.Bounds(), b.Kind.Color())
	}

	dst.Overlay(core.OverlayScore, fmt.Sprintf("Score: %d", s.score))
	dst.Overlay(core.OverlayHighScore, fmt.Sprintf("High Score: %d", s.highScore))
}
