package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform render layer.
type Color uint8

// Predefined colors for board and HUD elements.
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
)

// paletteColors assigns a distinct, high-contrast color to each palette
// index. The order front-loads the colors that read best on dark terminals
// since most puzzles use small palettes.
var paletteColors = []Color{
	ColorBrightRed,
	ColorBrightBlue,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorWhite,
}

// PaletteColor returns the display color for a palette index, cycling when
// the palette is larger than the predefined set.
func PaletteColor(idx int) Color {
	if idx < 0 {
		return ColorDefault
	}
	return paletteColors[idx%len(paletteColors)]
}
