package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// glyphW is the advance of the ebitenutil debug font.
const glyphW = 6

const outlineWidth = 2

var background = color.RGBA{A: 0xff}

// imageRenderer draws commands onto an ebiten image whose size matches
// the world, so world units are pixels.
type imageRenderer struct {
	dst            *ebiten.Image
	worldW, worldH float64
	gameOver       bool
}

func (r *imageRenderer) BeginFrame(worldW, worldH float64) {
	r.worldW = worldW
	r.worldH = worldH
	r.gameOver = false
	r.dst.Fill(background)
}

func (r *imageRenderer) FillRect(b core.Box, c core.Color) {
	vector.DrawFilledRect(r.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(c), false)
}

func (r *imageRenderer) OutlineRect(b core.Box, c core.Color) {
	vector.StrokeRect(r.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), outlineWidth, rgba(c), false)
}

// Overlay mirrors the classic layout: HUD lines at the top-left while
// running, centered lines 50px apart on the game over screen.
func (r *imageRenderer) Overlay(slot core.OverlaySlot, text string) {
	switch slot {
	case core.OverlayScore:
		ebitenutil.DebugPrintAt(r.dst, text, 10, 10)
	case core.OverlayHighScore:
		if r.gameOver {
			r.centered(text, 100)
			return
		}
		ebitenutil.DebugPrintAt(r.dst, text, 10, 50)
	case core.OverlayBanner:
		r.gameOver = true
		r.centered(text, 0)
	case core.OverlayFinalScore:
		r.centered(text, 50)
	}
}

func (r *imageRenderer) centered(text string, offsetY int) {
	x, y := centeredText(text, int(r.worldW), int(r.worldH))
	ebitenutil.DebugPrintAt(r.dst, text, x, y+offsetY)
}

// centeredText returns the top-left position that centers text horizontally
// on a surface and puts its top edge at the vertical middle.
func centeredText(text string, w, h int) (x, y int) {
	return (w - len([]rune(text))*glyphW) / 2, h / 2
}

func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

var _ core.Renderer = (*imageRenderer)(nil)
