package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the frontends.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
)

// ANSI returns the 256-color palette index for c, or -1 for the terminal default.
func (c Color) ANSI() int {
	switch c {
	case ColorDefault:
		return -1
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	case ColorPink:
		return 213
	case ColorPurple:
		return 135
	default:
		if c <= ColorWhite {
			return int(c)
		}
		// Bright variants occupy 9..15.
		return int(c-ColorBrightRed) + 9
	}
}
