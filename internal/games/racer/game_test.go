package racer

import (
	"testing"

	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("racer")
	if err != nil {
		t.Fatalf("Create(racer) error: %v", err)
	}
	if g.Title() != "Car Racer" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Car Racer")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}

	// Weave left and right so the car sweeps the lane
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		if (i/90)%2 == 0 {
			inputs[i] = core.InputOf(core.ActionLeft)
		} else {
			inputs[i] = core.InputOf(core.ActionRight)
		}
	}

	run := func() (core.GameState, int) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		ticks := 0
		for _, in := range inputs {
			state = g.Step(in).State
			ticks++
			if state.GameOver {
				break
			}
		}
		return state, ticks
	}

	s1, t1 := run()
	s2, t2 := run()

	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if t1 != t2 {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", t1, t2)
	}
}

func TestGameUsesScoreStore(t *testing.T) {
	store := &memStore{high: 25}
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1, Scores: store})

	if g.State().HighScore != 25 {
		t.Errorf("HighScore = %d, expected 25 from the store", g.State().HighScore)
	}
}

func TestGameStepAdvancesClock(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 50, Seed: 1})

	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame())
		if g.State().GameOver {
			t.Fatalf("run ended after %d ticks", i+1)
		}
	}
	if got := g.Session().Elapsed().Seconds(); got != 1 {
		t.Errorf("Elapsed() = %vs after 50 ticks at 50Hz, expected 1s", got)
	}
}

func TestGameSetDifficultyOverridesPackagePreset(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.SetDifficulty("fixed")
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})

	if g.Session().schedule.IsEnabled() {
		t.Error("fixed preset should disable progression for this instance")
	}

	other := New()
	other.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	if !other.Session().schedule.IsEnabled() {
		t.Error("instances without an override should use the package preset")
	}
}
