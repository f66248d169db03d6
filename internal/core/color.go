package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)

// RGB returns an 8-bit RGB triple for surfaces that draw true color
// (the window platform). Values follow the classic VGA palette.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 255, 0, 0
	case ColorGreen:
		return 0, 255, 0
	case ColorYellow:
		return 255, 255, 0
	case ColorBlue:
		return 0, 0, 255
	case ColorMagenta:
		return 255, 0, 255
	case ColorCyan:
		return 0, 255, 255
	case ColorWhite, ColorDefault:
		return 255, 255, 255
	case ColorBrightRed:
		return 255, 85, 85
	case ColorBrightGreen:
		return 85, 255, 85
	case ColorBrightYellow:
		return 255, 255, 85
	case ColorBrightBlue:
		return 85, 85, 255
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorGray:
		return 128, 128, 128
	default:
		return 255, 255, 255
	}
}
