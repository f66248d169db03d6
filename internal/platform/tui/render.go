package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Glyphs used when rasterizing world boxes into cells.
const (
	fillGlyph = '█'
	hudColor  = core.ColorBrightWhite
)

// ScreenRenderer rasterizes draw commands onto a character Screen.
// World coordinates are scaled to the screen size, so the lane always fills
// the terminal regardless of its dimensions.
type ScreenRenderer struct {
	screen         *core.Screen
	worldW, worldH float64
	gameOver       bool
}

// NewScreenRenderer creates a renderer drawing onto s.
func NewScreenRenderer(s *core.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: s}
}

// Screen returns the target screen.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// BeginFrame clears the screen for a new frame.
func (r *ScreenRenderer) BeginFrame(worldW, worldH float64) {
	r.worldW = worldW
	r.worldH = worldH
	r.gameOver = false
	r.screen.Clear()
}

// FillRect fills the cells covered by b.
func (r *ScreenRenderer) FillRect(b core.Box, c core.Color) {
	r.screen.DrawRectColor(r.cells(b), fillGlyph, c)
}

// OutlineRect draws a box-drawing border around the cells covered by b.
func (r *ScreenRenderer) OutlineRect(b core.Box, c core.Color) {
	r.screen.DrawBoxColor(r.cells(b), c)
}

// Overlay places text for a slot. HUD slots sit in the top-left corner
// while running; once the banner arrives the remaining lines are centered.
func (r *ScreenRenderer) Overlay(slot core.OverlaySlot, text string) {
	h := r.screen.Height()
	switch slot {
	case core.OverlayBanner:
		r.gameOver = true
		r.centered(h/2, text)
	case core.OverlayFinalScore:
		r.centered(h/2+2, text)
	case core.OverlayHighScore:
		if r.gameOver {
			r.centered(h/2+4, text)
			return
		}
		r.screen.DrawTextColor(1, 1, text, hudColor)
	case core.OverlayScore:
		r.screen.DrawTextColor(1, 0, text, hudColor)
	}
}

func (r *ScreenRenderer) centered(y int, text string) {
	x := (r.screen.Width() - len([]rune(text))) / 2
	r.screen.DrawTextColor(core.Max(x, 0), y, text, hudColor)
}

func (r *ScreenRenderer) cells(b core.Box) core.Rect {
	return b.Scale(r.worldW, r.worldH, r.screen.Width(), r.screen.Height())
}

var _ core.Renderer = (*ScreenRenderer)(nil)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
