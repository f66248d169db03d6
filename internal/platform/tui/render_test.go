package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

func TestScreenRendererScalesWorld(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewScreenRenderer(screen)

	r.BeginFrame(800, 600)
	r.FillRect(core.NewBox(0, 0, 100, 100), core.ColorRed)

	// 100x100 world units on an 800x600 world map to 10x4 cells.
	for y := range 4 {
		for x := range 10 {
			cell := screen.GetCell(x, y)
			if cell.Rune != fillGlyph || cell.Color != core.ColorRed {
				t.Fatalf("cell (%d,%d) = %+v, want red fill", x, y, cell)
			}
		}
	}
	if got := screen.Get(10, 0); got != ' ' {
		t.Errorf("cell right of the box = %q, want blank", got)
	}
	if got := screen.Get(0, 4); got != ' ' {
		t.Errorf("cell below the box = %q, want blank", got)
	}
}

func TestScreenRendererOutline(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewScreenRenderer(screen)

	r.BeginFrame(80, 24)
	r.OutlineRect(core.NewBox(2, 2, 4, 3), core.ColorBlue)

	if got := screen.GetCell(2, 2); got.Rune != '┌' || got.Color != core.ColorBlue {
		t.Errorf("top-left corner = %+v", got)
	}
	if got := screen.Get(5, 4); got != '┘' {
		t.Errorf("bottom-right corner = %q", got)
	}
	if got := screen.Get(3, 3); got != ' ' {
		t.Errorf("outline interior = %q, want blank", got)
	}
}

func TestScreenRendererBeginFrameClears(t *testing.T) {
	screen := core.NewScreen(20, 10)
	r := NewScreenRenderer(screen)

	r.BeginFrame(20, 10)
	r.FillRect(core.NewBox(0, 0, 20, 10), core.ColorGreen)
	r.BeginFrame(20, 10)

	if strings.TrimSpace(screen.String()) != "" {
		t.Error("BeginFrame should clear the previous frame")
	}
}

func TestScreenRendererHUDOverlays(t *testing.T) {
	screen := core.NewScreen(40, 12)
	r := NewScreenRenderer(screen)

	r.BeginFrame(800, 600)
	r.Overlay(core.OverlayScore, "Score: 3")
	r.Overlay(core.OverlayHighScore, "High Score: 9")

	if got := screen.Row(0); !strings.HasPrefix(got, " Score: 3") {
		t.Errorf("row 0 = %q", got)
	}
	if got := screen.Row(1); !strings.HasPrefix(got, " High Score: 9") {
		t.Errorf("row 1 = %q", got)
	}
}

func TestScreenRendererGameOverOverlays(t *testing.T) {
	screen := core.NewScreen(40, 12)
	r := NewScreenRenderer(screen)

	r.BeginFrame(800, 600)
	r.Overlay(core.OverlayBanner, "Game Over!")
	r.Overlay(core.OverlayFinalScore, "Final Score: 4")
	r.Overlay(core.OverlayHighScore, "High Score: 9")

	if got := strings.TrimSpace(screen.Row(6)); got != "Game Over!" {
		t.Errorf("banner row = %q", got)
	}
	if got := strings.TrimSpace(screen.Row(8)); got != "Final Score: 4" {
		t.Errorf("final score row = %q", got)
	}
	if got := strings.TrimSpace(screen.Row(10)); got != "High Score: 9" {
		t.Errorf("high score row = %q", got)
	}
	if strings.TrimSpace(screen.Row(1)) != "" {
		t.Error("high score should not use the HUD position on the game over screen")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(5, 1)
	screen.DrawTextColor(0, 0, "ab", core.ColorRed)
	screen.DrawTextColor(2, 0, "cd", core.ColorGreen)

	out := RenderScreen(screen)
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output %q missing %q", out, want)
		}
	}
}
