package window

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/racer-arcade/internal/core"
	"github.com/vovakirdan/racer-arcade/internal/storage"
)

type fakeKeys struct {
	held map[ebiten.Key]bool
	down map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.down[k] }

func TestPollInput(t *testing.T) {
	tests := []struct {
		name string
		keys fakeKeys
		want []core.Action
		quit bool
	}{
		{"nothing", fakeKeys{}, nil, false},
		{"left arrow held", fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true}}, []core.Action{core.ActionLeft}, false},
		{"both directions", fakeKeys{held: map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyD: true}}, []core.Action{core.ActionLeft, core.ActionRight}, false},
		{"space pressed", fakeKeys{down: map[ebiten.Key]bool{ebiten.KeySpace: true}}, []core.Action{core.ActionRestart}, false},
		{"space held only", fakeKeys{held: map[ebiten.Key]bool{ebiten.KeySpace: true}}, nil, false},
		{"escape", fakeKeys{down: map[ebiten.Key]bool{ebiten.KeyEscape: true}}, []core.Action{core.ActionQuit}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, quit := pollInput(tt.keys)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if len(frame.Actions) != len(tt.want) {
				t.Errorf("actions = %v, want %v", frame.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("missing action %v", a)
				}
			}
		})
	}
}

func TestCenteredText(t *testing.T) {
	x, y := centeredText("abcd", 800, 600)
	if x != (800-4*glyphW)/2 || y != 300 {
		t.Errorf("centeredText = (%d, %d)", x, y)
	}
}

// overGame ends on its first step.
type overGame struct {
	steps int
}

func (g *overGame) ID() string               { return "over" }
func (g *overGame) Title() string            { return "Over" }
func (g *overGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *overGame) Render(dst core.Renderer) { dst.BeginFrame(800, 600) }
func (g *overGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State(), Events: []core.Event{{Type: core.EventCrash}}}
}
func (g *overGame) State() core.GameState {
	return core.GameState{Score: 3, GameOver: g.steps > 0, Run: core.RunStats{Duration: time.Second}}
}

type countingSound struct{ n int }

func (c *countingSound) Play(events []core.Event) { c.n += len(events) }

func TestRunnerRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	sound := &countingSound{}
	r := NewRunner(&overGame{}, store, core.RuntimeConfig{TickRate: 60, Seed: 1}, Options{Sound: sound})

	if w, h := r.Layout(0, 0); w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, want 800x600", w, h)
	}

	for range 3 {
		r.step(core.NewInputFrame())
	}

	runs, err := store.AllRuns("over")
	if err != nil {
		t.Fatalf("AllRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 3 || runs[0].DurationMS != 1000 {
		t.Errorf("runs = %+v, want one run with score 3", runs)
	}
	if sound.n != 3 {
		t.Errorf("sound received %d events, want 3", sound.n)
	}
}
