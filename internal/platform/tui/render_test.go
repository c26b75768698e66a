package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/queens-arcade/internal/core"
)

func testPalette(profile termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return NewPalette(r)
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "abc")
	s.DrawTextColor(0, 1, "Q", core.ColorBrightRed, core.ColorSquareDark)

	got := testPalette(termenv.Ascii).RenderScreen(s)
	assert.Equal(t, s.String(), got)
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextColor(0, 0, "QQQ", core.ColorBrightRed, core.ColorDefault)

	got := testPalette(termenv.ANSI256).RenderScreen(s)
	assert.Contains(t, got, "QQQ", "same-colored cells render as one run")
	assert.Contains(t, got, "\x1b[")
	assert.True(t, strings.HasSuffix(got, "   "))
}

func TestPaletteCachesStyles(t *testing.T) {
	p := testPalette(termenv.ANSI256)
	p.Style(core.ColorYellow, core.ColorSquareLight)
	p.Style(core.ColorYellow, core.ColorSquareLight)
	p.Style(core.ColorYellow, core.ColorSquareDark)
	assert.Len(t, p.styles, 2)
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab", centerText("ab", 6))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}
