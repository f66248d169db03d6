package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/racer-arcade/internal/core"
)

// KeyState reports keyboard state for the current frame.
type KeyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings. Steering keys are level-triggered, the rest edge-triggered.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	restartKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// pollInput builds the input frame for one tick.
// It returns quit=true when a quit key went down this frame.
func pollInput(keys KeyState) (frame core.InputFrame, quit bool) {
	frame = core.NewInputFrame()

	if anyKey(leftKeys, keys.Pressed) {
		frame.Set(core.ActionLeft)
	}
	if anyKey(rightKeys, keys.Pressed) {
		frame.Set(core.ActionRight)
	}
	if anyKey(restartKeys, keys.JustPressed) {
		frame.Set(core.ActionRestart)
	}
	if anyKey(quitKeys, keys.JustPressed) {
		frame.Set(core.ActionQuit)
		quit = true
	}
	return frame, quit
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
