package core

// OverlaySlot names a text overlay. The renderer decides where each slot
// appears on its surface.
type OverlaySlot int

const (
	OverlayScore      OverlaySlot = iota // Current score (HUD, running)
	OverlayHighScore                     // High score (HUD or game over screen)
	OverlayBanner                        // Game over banner
	OverlayFinalScore                    // Final score on the game over screen
)

// String returns the slot name.
func (s OverlaySlot) String() string {
	switch s {
	case OverlayScore:
		return "score"
	case OverlayHighScore:
		return "high_score"
	case OverlayBanner:
		return "banner"
	case OverlayFinalScore:
		return "final_score"
	default:
		return "unknown"
	}
}

// Renderer accepts draw commands from a game. Games describe what to draw
// in world units; implementations decide how.
type Renderer interface {
	// BeginFrame starts a frame for a world of the given size.
	BeginFrame(worldW, worldH float64)

	// FillRect draws a filled box.
	FillRect(b Box, c Color)

	// OutlineRect draws the border of a box.
	OutlineRect(b Box, c Color)

	// Overlay draws a text overlay in the given slot.
	Overlay(slot OverlaySlot, text string)
}

// CommandKind identifies a recorded draw command.
type CommandKind int

const (
	CommandFill CommandKind = iota
	CommandOutline
	CommandOverlay
)

// DrawCommand is one recorded Renderer call.
type DrawCommand struct {
	Kind  CommandKind
	Box   Box
	Color Color
	Slot  OverlaySlot
	Text  string
}

// DrawList is a Renderer that records commands for later replay.
type DrawList struct {
	WorldW, WorldH float64
	Commands       []DrawCommand
}

// BeginFrame resets the list for a new frame.
func (d *DrawList) BeginFrame(worldW, worldH float64) {
	d.WorldW = worldW
	d.WorldH = worldH
	d.Commands = d.Commands[:0]
}

// FillRect records a fill command.
func (d *DrawList) FillRect(b Box, c Color) {
	d.Commands = append(d.Commands, DrawCommand{Kind: CommandFill, Box: b, Color: c})
}

// OutlineRect records an outline command.
func (d *DrawList) OutlineRect(b Box, c Color) {
	d.Commands = append(d.Commands, DrawCommand{Kind: CommandOutline, Box: b, Color: c})
}

// Overlay records a text overlay.
func (d *DrawList) Overlay(slot OverlaySlot, text string) {
	d.Commands = append(d.Commands, DrawCommand{Kind: CommandOverlay, Slot: slot, Text: text})
}

// Overlays returns the recorded overlays keyed by slot.
func (d *DrawList) Overlays() map[OverlaySlot]string {
	out := make(map[OverlaySlot]string)
	for _, c := range d.Commands {
		if c.Kind == CommandOverlay {
			out[c.Slot] = c.Text
		}
	}
	return out
}

// Replay sends every recorded command to another renderer.
func (d *DrawList) Replay(dst Renderer) {
	dst.BeginFrame(d.WorldW, d.WorldH)
	for _, c := range d.Commands {
		switch c.Kind {
		case CommandFill:
			dst.FillRect(c.Box, c.Color)
		case CommandOutline:
			dst.OutlineRect(c.Box, c.Color)
		case CommandOverlay:
			dst.Overlay(c.Slot, c.Text)
		}
	}
}

var _ Renderer = (*DrawList)(nil)
