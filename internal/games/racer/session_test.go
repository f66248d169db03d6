package racer

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/racer-arcade/internal/config"
	"github.com/vovakirdan/racer-arcade/internal/core"
)

const frame = time.Second / 60

// manualClock is a core.Clock advanced explicitly by tests.
type manualClock struct {
	now time.Duration
}

func (c *manualClock) Now() time.Duration   { return c.now }
func (c *manualClock) Delta() time.Duration { return frame }

// memStore is an in-memory ScoreStore that records every save.
type memStore struct {
	high  int
	saves []int
}

func (m *memStore) Load() int { return m.high }
func (m *memStore) Save(score int) {
	m.high = score
	m.saves = append(m.saves, score)
}

// quietConfig disables random spawning so tests place entities by hand.
func quietConfig() config.RacerConfig {
	cfg := config.DefaultRacerConfig()
	cfg.Difficulty.HazardChance = config.StepConfig{}
	cfg.Bonuses.SpawnChance = 0
	return cfg
}

func newTestSession(store core.ScoreStore) (*Session, *manualClock) {
	clk := &manualClock{}
	return NewSession(quietConfig(), 1, clk, store), clk
}

// tick runs one session tick and then advances the clock by one frame.
func tick(s *Session, clk *manualClock, actions ...core.Action) []core.Event {
	events := s.Tick(core.InputOf(actions...))
	clk.now += frame
	return events
}

func placeHazard(s *Session, x, y, speed float64) *Hazard {
	h := newHazard(x, speed, s.cfg)
	h.Y = y
	s.hazards = append(s.hazards, h)
	return h
}

func placeBonus(s *Session, x, y float64, kind BonusKind) *Bonus {
	b := newBonus(x, kind, s.cfg)
	b.Y = y
	s.bonuses = append(s.bonuses, b)
	return b
}

func TestNewSessionInitialState(t *testing.T) {
	store := &memStore{high: 42}
	s, _ := newTestSession(store)

	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.HighScore() != 42 {
		t.Errorf("HighScore() = %d, expected 42", s.HighScore())
	}
	if got := len(s.LaneMarks()); got != 6 {
		t.Errorf("expected 6 lane marks, got %d", got)
	}
	p := s.Player()
	if p.X != 375 || p.Y != 500 {
		t.Errorf("player at (%v,%v), expected (375,500)", p.X, p.Y)
	}
}

func TestNilStoreStartsAtZero(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 375, 450, 4)
	tick(s, clk)

	if s.Phase() != PhaseGameOver {
		t.Fatal("expected crash")
	}
	if s.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0 with a zero score and no store", s.HighScore())
	}
}

func TestLaneClamp(t *testing.T) {
	tests := []struct {
		name    string
		startX  float64
		actions []core.Action
		want    float64
	}{
		{"left edge holds", 0, []core.Action{core.ActionLeft}, 0},
		{"right edge holds", 750, []core.Action{core.ActionRight}, 750},
		{"near left clamps", 3, []core.Action{core.ActionLeft}, 0},
		{"near right clamps", 748, []core.Action{core.ActionRight}, 750},
		{"both cancel", 200, []core.Action{core.ActionLeft, core.ActionRight}, 200},
		{"left moves", 200, []core.Action{core.ActionLeft}, 195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clk := newTestSession(nil)
			s.player.X = tt.startX
			tick(s, clk, tt.actions...)

			if s.player.X != tt.want {
				t.Errorf("player X = %v, expected %v", s.player.X, tt.want)
			}
		})
	}
}

func TestLaneClampRandomSequences(t *testing.T) {
	s, clk := newTestSession(nil)
	maxX := s.cfg.Lane.Width - s.cfg.Player.Width
	rng := rand.New(rand.NewSource(42))

	check := func(step int) {
		t.Helper()
		if x := s.player.X; x < 0 || x > maxX {
			t.Fatalf("step %d: player X = %v, outside [0, %v]", step, x, maxX)
		}
	}

	// Hold each edge long enough to reach it, then steer at random.
	for i := range 200 {
		tick(s, clk, core.ActionLeft)
		check(i)
	}
	if s.player.X != 0 {
		t.Errorf("after holding left X = %v, expected 0", s.player.X)
	}
	s.player.GrantSpeedBoost(clk.now, 3*time.Second)
	for i := range 200 {
		tick(s, clk, core.ActionRight)
		check(200 + i)
	}
	if s.player.X != maxX {
		t.Errorf("after holding right X = %v, expected %v", s.player.X, maxX)
	}

	choices := [][]core.Action{
		nil,
		{core.ActionLeft},
		{core.ActionRight},
		{core.ActionLeft, core.ActionRight},
	}
	for i := range 5000 {
		if rng.Intn(100) == 0 {
			s.player.GrantSpeedBoost(clk.now, time.Duration(rng.Intn(4))*time.Second)
		}
		actions := choices[rng.Intn(len(choices))]
		for range rng.Intn(60) + 1 {
			tick(s, clk, actions...)
			check(400 + i)
		}
	}
	if s.Phase() != PhaseRunning {
		t.Fatal("session should keep running without hazards")
	}
}

func TestSpeedBoostMovesFaster(t *testing.T) {
	s, clk := newTestSession(nil)
	s.player.X = 200
	s.player.GrantSpeedBoost(0, 3*time.Second)
	tick(s, clk, core.ActionRight)

	if s.player.X != 207.5 {
		t.Errorf("boosted player X = %v, expected 207.5", s.player.X)
	}
}

func TestShieldImmunity(t *testing.T) {
	s, clk := newTestSession(nil)
	s.player.GrantShield(0, 5*time.Second)
	h := placeHazard(s, 375, 450, 4)

	var blocked int
	for i := 0; i < 5; i++ {
		blocked += core.CountEvents(tick(s, clk), core.EventShieldBlocked)
	}

	if s.Phase() != PhaseRunning {
		t.Fatal("shielded player should not crash")
	}
	if len(s.Hazards()) != 1 || s.Hazards()[0] != h {
		t.Error("blocked hazard should keep falling")
	}
	if h.Y != 470 {
		t.Errorf("hazard Y = %v, expected 470", h.Y)
	}
	if blocked != 1 {
		t.Errorf("expected one shield block event per hazard, got %d", blocked)
	}
}

func TestShieldExpiry(t *testing.T) {
	s, clk := newTestSession(nil)
	s.player.GrantShield(0, 5*time.Second)

	clk.now = 5 * time.Second
	tick(s, clk)
	if !s.player.Shield {
		t.Error("shield should still be active exactly at its expiry instant")
	}

	tick(s, clk)
	if s.player.Shield {
		t.Error("shield should expire once now passes the expiry")
	}
}

func TestScoreDodgedHazard(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 0, 595, 6)

	events := tick(s, clk)

	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if len(s.Hazards()) != 0 {
		t.Error("exited hazard should be removed")
	}
	if core.CountEvents(events, core.EventHazardDodged) != 1 {
		t.Error("expected a dodged event")
	}
	if s.Run().Dodged != 1 {
		t.Errorf("Run().Dodged = %d, expected 1", s.Run().Dodged)
	}
}

func TestHazardAtFloorIsNotExited(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 0, 595, 5)
	tick(s, clk)

	if s.Score() != 0 || len(s.Hazards()) != 1 {
		t.Error("hazard exactly at the lane bottom should not count as exited")
	}
}

func TestBonusScores(t *testing.T) {
	tests := []struct {
		kind  BonusKind
		score int
	}{
		{BonusShield, 0},
		{BonusSpeed, 0},
		{BonusPoints, 10},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, clk := newTestSession(nil)
			placeBonus(s, 380, 510, tt.kind)
			events := tick(s, clk)

			if s.Score() != tt.score {
				t.Errorf("Score() = %d, expected %d", s.Score(), tt.score)
			}
			if len(s.Bonuses()) != 0 {
				t.Error("collected bonus should be removed")
			}
			if !core.HasEvent(events, core.EventBonusCollected) {
				t.Error("expected a bonus event")
			}
			if s.Run().Bonuses[tt.kind] != 1 {
				t.Errorf("Run().Bonuses[%v] = %d, expected 1", tt.kind, s.Run().Bonuses[tt.kind])
			}
		})
	}
}

func TestBonusEffects(t *testing.T) {
	s, clk := newTestSession(nil)
	clk.now = 2 * time.Second
	placeBonus(s, 380, 510, BonusShield)
	placeBonus(s, 390, 520, BonusSpeed)
	tick(s, clk)

	p := s.Player()
	if !p.Shield || p.ShieldExpiry != 7*time.Second {
		t.Errorf("shield = %v until %v, expected true until 7s", p.Shield, p.ShieldExpiry)
	}
	if !p.SpeedBoost || p.SpeedBoostExpiry != 5*time.Second {
		t.Errorf("boost = %v until %v, expected true until 5s", p.SpeedBoost, p.SpeedBoostExpiry)
	}
}

func TestEffectOverwrite(t *testing.T) {
	s, clk := newTestSession(nil)
	s.player.GrantShield(0, 5*time.Second)
	s.player.GrantSpeedBoost(0, 3*time.Second)

	clk.now = 2 * time.Second
	placeBonus(s, 380, 510, BonusShield)
	placeBonus(s, 390, 520, BonusSpeed)
	tick(s, clk)

	if s.player.ShieldExpiry != 7*time.Second {
		t.Errorf("ShieldExpiry = %v, expected 7s (overwrite, not extend)", s.player.ShieldExpiry)
	}
	if s.player.SpeedBoostExpiry != 5*time.Second {
		t.Errorf("SpeedBoostExpiry = %v, expected 5s", s.player.SpeedBoostExpiry)
	}
}

func TestBonusCollectedWhileShielded(t *testing.T) {
	s, clk := newTestSession(nil)
	s.player.GrantShield(0, 5*time.Second)
	placeBonus(s, 380, 510, BonusPoints)
	tick(s, clk)

	if s.Score() != 10 {
		t.Errorf("Score() = %d, expected 10", s.Score())
	}
}

func TestCrashCommitsHighScoreOnce(t *testing.T) {
	store := &memStore{high: 3}
	s, clk := newTestSession(store)
	s.score = 5
	placeHazard(s, 375, 450, 4)

	events := tick(s, clk)
	if s.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}
	if !core.HasEvent(events, core.EventCrash) || !core.HasEvent(events, core.EventHighScore) {
		t.Errorf("expected crash and high score events, got %v", events)
	}

	for i := 0; i < 10; i++ {
		if ev := tick(s, clk); len(ev) != 0 {
			t.Errorf("game over tick produced events %v", ev)
		}
	}

	if len(store.saves) != 1 || store.saves[0] != 5 {
		t.Errorf("saves = %v, expected [5]", store.saves)
	}
	if s.HighScore() != 5 {
		t.Errorf("HighScore() = %d, expected 5", s.HighScore())
	}
}

func TestCrashBelowHighScoreDoesNotSave(t *testing.T) {
	store := &memStore{high: 10}
	s, clk := newTestSession(store)
	s.score = 10
	placeHazard(s, 375, 450, 4)
	events := tick(s, clk)

	if len(store.saves) != 0 {
		t.Errorf("tying the high score should not save, got %v", store.saves)
	}
	if core.HasEvent(events, core.EventHighScore) {
		t.Error("unexpected high score event")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 375, 450, 4)
	placeHazard(s, 0, 100, 4)
	tick(s, clk)

	h := s.Hazards()[1]
	y := h.Y
	markY := s.LaneMarks()[0].Y
	elapsed := s.Elapsed()

	for i := 0; i < 30; i++ {
		tick(s, clk, core.ActionLeft)
	}

	if h.Y != y || s.LaneMarks()[0].Y != markY {
		t.Error("entities moved during game over")
	}
	if s.player.X != 375 {
		t.Error("player moved during game over")
	}
	if s.Elapsed() != elapsed {
		t.Errorf("Elapsed() changed during game over: %v -> %v", elapsed, s.Elapsed())
	}
}

func TestCrashSkipsBonusCollection(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 375, 450, 4)
	placeBonus(s, 380, 510, BonusPoints)
	tick(s, clk)

	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected no change after crash", s.Score())
	}
	if len(s.Bonuses()) != 1 {
		t.Error("bonus should remain uncollected on the crash tick")
	}
}

func TestExitBeforeCollision(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 0, 598, 4)   // exits this tick
	placeHazard(s, 375, 450, 4) // crashes this tick
	tick(s, clk)

	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected the exit to count before the crash", s.Score())
	}
	if s.Phase() != PhaseGameOver {
		t.Error("expected game over")
	}
}

func TestRestart(t *testing.T) {
	store := &memStore{}
	s, clk := newTestSession(store)
	s.score = 4
	placeHazard(s, 375, 450, 4)
	placeBonus(s, 0, 0, BonusSpeed)
	tick(s, clk)

	oldPlayer := s.Player()
	clk.now = 10 * time.Second
	events := tick(s, clk, core.ActionRestart)

	if !core.HasEvent(events, core.EventRestart) {
		t.Error("expected restart event")
	}
	if s.Phase() != PhaseRunning {
		t.Error("expected running after restart")
	}
	if s.Score() != 0 || len(s.Hazards()) != 0 || len(s.Bonuses()) != 0 {
		t.Error("restart should clear score and entities")
	}
	if s.HighScore() != 4 {
		t.Errorf("HighScore() = %d, expected 4", s.HighScore())
	}
	if s.Elapsed() != frame {
		t.Errorf("Elapsed() = %v, expected one frame after restart", s.Elapsed())
	}
	if s.Player() == oldPlayer || s.Player().X != 375 {
		t.Error("restart should rebuild the player")
	}
	if s.Run() != (RunStats{}) {
		t.Errorf("Run() = %+v, expected empty stats", s.Run())
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	s, clk := newTestSession(nil)
	placeHazard(s, 0, 100, 4)
	events := tick(s, clk, core.ActionRestart)

	if core.HasEvent(events, core.EventRestart) {
		t.Error("restart should be ignored while running")
	}
	if len(s.Hazards()) != 1 {
		t.Error("running session should not be reset")
	}
	if s.Restart() {
		t.Error("Restart() should report false while running")
	}
}

func TestEndToEndScenario(t *testing.T) {
	store := &memStore{high: 10}
	s, clk := newTestSession(store)

	// A hazard passes beside the player and leaves the lane
	placeHazard(s, 0, 560, 5)
	for i := 0; i < 10 && s.Score() == 0; i++ {
		tick(s, clk)
	}
	if s.Score() != 1 {
		t.Fatalf("after dodge Score() = %d, expected 1", s.Score())
	}

	// A points bonus lands on the player
	placeBonus(s, 380, 470, BonusPoints)
	for i := 0; i < 20 && s.Score() == 1; i++ {
		tick(s, clk)
	}
	if s.Score() != 11 {
		t.Fatalf("after bonus Score() = %d, expected 11", s.Score())
	}

	// An unshielded hazard hits the player
	placeHazard(s, 380, 400, 5)
	for i := 0; i < 20 && s.Phase() == PhaseRunning; i++ {
		tick(s, clk)
	}
	if s.Phase() != PhaseGameOver {
		t.Fatal("expected game over after the crash")
	}
	if s.HighScore() != 11 {
		t.Errorf("HighScore() = %d, expected 11", s.HighScore())
	}
	if len(store.saves) != 1 || store.saves[0] != 11 {
		t.Errorf("saves = %v, expected [11]", store.saves)
	}

	tick(s, clk, core.ActionRestart)
	if s.Phase() != PhaseRunning || s.Score() != 0 || s.HighScore() != 11 {
		t.Errorf("after restart phase=%v score=%d high=%d, expected running/0/11",
			s.Phase(), s.Score(), s.HighScore())
	}
}

func TestLaneMarksWrap(t *testing.T) {
	s, clk := newTestSession(nil)
	m := s.LaneMarks()[5]
	if m.Y != 500 {
		t.Fatalf("last mark Y = %v, expected 500", m.Y)
	}

	for i := 0; i < 21; i++ {
		tick(s, clk)
	}
	if m.Y != -40 {
		t.Errorf("mark past the bottom should wrap to -40, got %v", m.Y)
	}
	if len(s.LaneMarks()) != 6 {
		t.Error("lane marks are never removed")
	}
}

func TestRenderRunning(t *testing.T) {
	s, clk := newTestSession(&memStore{high: 7})
	placeHazard(s, 0, 100, 4)
	placeBonus(s, 600, 100, BonusSpeed)
	tick(s, clk)

	var dl core.DrawList
	s.Render(&dl)

	if dl.WorldW != 800 || dl.WorldH != 600 {
		t.Errorf("world = %vx%v, expected 800x600", dl.WorldW, dl.WorldH)
	}
	overlays := dl.Overlays()
	if len(overlays) != 2 {
		t.Errorf("expected 2 overlays while running, got %d", len(overlays))
	}
	if overlays[core.OverlayScore] != "Score: 0" {
		t.Errorf("score overlay = %q", overlays[core.OverlayScore])
	}
	if overlays[core.OverlayHighScore] != "High Score: 7" {
		t.Errorf("high score overlay = %q", overlays[core.OverlayHighScore])
	}

	fills := map[core.Color]int{}
	outlines := 0
	for _, c := range dl.Commands {
		switch c.Kind {
		case core.CommandFill:
			fills[c.Color]++
		case core.CommandOutline:
			outlines++
		}
	}
	if fills[core.ColorWhite] != 6 || fills[core.ColorRed] != 1 ||
		fills[core.ColorGreen] != 1 || fills[core.ColorYellow] != 1 {
		t.Errorf("unexpected fills %v", fills)
	}
	if outlines != 0 {
		t.Error("no shield outline expected without a shield")
	}

	s.player.GrantShield(clk.now, time.Second)
	s.Render(&dl)
	for _, c := range dl.Commands {
		if c.Kind == core.CommandOutline {
			if c.Color != core.ColorBlue || c.Box != s.player.Bounds() {
				t.Errorf("shield outline = %+v", c)
			}
			return
		}
	}
	t.Error("expected a shield outline")
}

func TestRenderGameOver(t *testing.T) {
	s, clk := newTestSession(&memStore{high: 7})
	s.score = 3
	placeHazard(s, 375, 450, 4)
	tick(s, clk)

	var dl core.DrawList
	s.Render(&dl)
	overlays := dl.Overlays()

	want := map[core.OverlaySlot]string{
		core.OverlayBanner:     "Game Over! Press SPACE to restart",
		core.OverlayFinalScore: "Final Score: 3",
		core.OverlayHighScore:  "High Score: 7",
	}
	if len(overlays) != len(want) {
		t.Errorf("expected %d overlays, got %v", len(want), overlays)
	}
	for slot, text := range want {
		if overlays[slot] != text {
			t.Errorf("overlay %v = %q, expected %q", slot, overlays[slot], text)
		}
	}
}
