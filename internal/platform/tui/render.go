package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/queens-arcade/internal/core"
)

// fgCodes maps core.Color to ANSI foreground colors.
var fgCodes = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
	core.ColorGray:         "245",
}

// bgCodes maps the board background colors.
var bgCodes = map[core.Color]string{
	core.ColorSquareLight: "180",
	core.ColorSquareDark:  "94",
	core.ColorCursor:      "61",
}

type colorPair struct {
	fg, bg core.Color
}

// Palette turns screen colors into lipgloss styles for one renderer.
// SSH sessions get their own renderer so color detection follows the
// client terminal.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPalette creates a palette. A nil renderer uses lipgloss's default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Palette{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

// Style returns the cached style for a color pair.
func (p *Palette) Style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := p.styles[key]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if code, ok := fgCodes[fg]; ok {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code, ok := bgCodes[bg]; ok {
		s = s.Background(lipgloss.Color(code))
	}
	p.styles[key] = s
	return s
}

// NewStyle returns an empty style bound to the palette's renderer.
func (p *Palette) NewStyle() lipgloss.Style {
	return p.renderer.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == core.ColorDefault && start.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
