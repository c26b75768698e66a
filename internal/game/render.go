package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/queens"
)

const (
	cellWidth = 3 // characters per board cell: " Q "
	hudHeight = 3 // title, status, blank
	footerH   = 4 // blank, message, two lines of controls
	minWidth  = 44
)

// layout is where the board was last drawn, used to map clicks to cells.
type layout struct {
	boardX, boardY int // top-left of the frame
	valid          bool
}

// cellAt maps a screen coordinate to a board cell.
func (l layout) cellAt(x, y, n int) (queens.Position, bool) {
	if !l.valid {
		return queens.Position{}, false
	}
	inner := core.NewRect(l.boardX+1, l.boardY+1, n*cellWidth, n)
	if !inner.Contains(x, y) {
		return queens.Position{}, false
	}
	return queens.Pos(y-inner.Y, (x-inner.X)/cellWidth), true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	s := g.engine.State()
	n := s.BoardSize()
	boardW := n*cellWidth + 2
	boardH := n + 2

	g.tooSmall = dst.Width() < minWidth || dst.Height() < hudHeight+boardH+footerH
	if g.tooSmall {
		g.layout = layout{}
		renderTooSmall(dst)
		return
	}

	g.layout = layout{
		boardX: (dst.Width() - boardW) / 2,
		boardY: hudHeight,
		valid:  true,
	}

	g.renderHUD(dst, s)
	g.renderBoard(dst, s)
	g.renderFooter(dst, s, hudHeight+boardH+1)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, queens left and the timer.
func (g *Game) renderHUD(dst *core.Screen, s queens.State) {
	cfg := s.Config()
	title := fmt.Sprintf("N-Queens  %dx%d (%s)", cfg.BoardSize(), cfg.BoardSize(), cfg.Difficulty().DisplayName())
	dst.DrawTextCenteredColor(0, title, core.ColorBrightWhite)

	left := fmt.Sprintf("Queens left: %d", s.QueensRemaining())
	timer := "Time " + FormatElapsed(s.ElapsedAt(g.now()))
	x := g.layout.boardX
	w := cfg.BoardSize()*cellWidth + 2
	dst.DrawTextColor(x, 1, left, ColorForRemaining(s.QueensRemaining()), core.ColorDefault)
	dst.DrawTextColor(x+w-len(timer), 1, timer, core.ColorCyan, core.ColorDefault)
}

// ColorForRemaining highlights the counter when one queen is left.
func ColorForRemaining(n int) core.Color {
	if n == 1 {
		return core.ColorBrightYellow
	}
	return core.ColorDefault
}

// renderBoard draws the frame and every cell from the board view.
func (g *Game) renderBoard(dst *core.Screen, s queens.State) {
	var board queens.Board
	if g.showHint {
		if hint, ok := queens.Hint(s.Queens(), s.BoardSize()); ok {
			board = queens.BuildBoard(s, hint)
		} else {
			board = queens.BuildBoard(s)
		}
	} else {
		board = queens.BuildBoard(s)
	}

	n := board.Size
	frame := core.NewRect(g.layout.boardX, g.layout.boardY, n*cellWidth+2, n+2)
	frameColor := core.ColorGray
	if board.IsSolved {
		frameColor = core.ColorBrightGreen
	}
	dst.DrawBox(frame, frameColor)

	for _, c := range board.Cells {
		x := frame.X + 1 + c.Position.Col*cellWidth
		y := frame.Y + 1 + c.Position.Row
		left, mid, right := cellGlyphs(c)
		bg := core.ColorSquareDark
		if c.IsLight {
			bg = core.ColorSquareLight
		}
		if c.Position == g.cursor && !board.IsSolved {
			bg = core.ColorCursor
		}
		fg := cellColor(c)
		dst.SetCell(x, y, core.Cell{Rune: left, FG: fg, BG: bg})
		dst.SetCell(x+1, y, core.Cell{Rune: mid, FG: fg, BG: bg})
		dst.SetCell(x+2, y, core.Cell{Rune: right, FG: fg, BG: bg})
	}
}

func cellGlyphs(c queens.CellState) (left, mid, right rune) {
	left, mid, right = ' ', ' ', ' '
	switch {
	case c.HasQueen:
		mid = 'Q'
	case c.IsHint:
		mid = '*'
	case c.IsAttacked:
		mid = '·'
	}
	if c.IsSelected {
		left, right = '[', ']'
	}
	return left, mid, right
}

func cellColor(c queens.CellState) core.Color {
	switch {
	case c.IsConflicting:
		return core.ColorBrightRed
	case c.HasQueen:
		return core.ColorBrightWhite
	case c.IsHint:
		return core.ColorBrightGreen
	case c.IsAttacked:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// renderFooter draws the last-move message and the key help.
func (g *Game) renderFooter(dst *core.Screen, s queens.State, y int) {
	if s.IsSolved() {
		msg := "Solved in " + FormatElapsed(s.Elapsed()) + "!"
		dst.DrawTextCenteredColor(y, msg, core.ColorBrightGreen)
	} else if msg, color := describe(s.LastAction()); msg != "" {
		dst.DrawTextCenteredColor(y, msg, color)
	}
	dst.DrawTextCenteredColor(y+1, "arrows/hjkl move  enter place  ? hint", core.ColorGray)
	dst.DrawTextCenteredColor(y+2, "+/- size  t difficulty  r restart  esc menu", core.ColorGray)
}

// describe turns an action tag into a status line.
func describe(a queens.Action) (string, core.Color) {
	switch v := a.(type) {
	case queens.QueenAdded:
		if v.CausedConflict {
			return "Conflict at " + v.Position.String(), core.ColorRed
		}
		return "Queen placed at " + v.Position.String(), core.ColorDefault
	case queens.QueenMoved:
		if v.CausedConflict {
			return "Still in conflict at " + v.To.String(), core.ColorRed
		}
		return "Moved " + v.From.String() + " to " + v.To.String(), core.ColorDefault
	case queens.QueenRemoved:
		return "Removed " + v.Position.String(), core.ColorDefault
	case queens.GameReset:
		return "New board", core.ColorDefault
	default:
		return "", core.ColorDefault
	}
}

// FormatElapsed renders a duration as m:ss, or h:mm:ss past an hour.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, sec := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
