package core

// Color is a palette index for a screen cell. The platform layer maps it to
// a terminal color; games only pick from this list.
type Color uint8

// Palette used by the board and HUD.
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
	ColorBrightWhite
	ColorGray
	ColorSquareLight // light board square background
	ColorSquareDark  // dark board square background
	ColorCursor      // background of the cell under the cursor
)

// Cell is one character of the screen buffer with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' '}
