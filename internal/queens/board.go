package queens

// CellState holds the render flags for one board cell. Every flag is read
// from a snapshot; nothing here recomputes conflicts or attacks.
type CellState struct {
	Position      Position
	HasQueen      bool
	IsConflicting bool
	IsAttacked    bool
	IsSelected    bool
	IsHint        bool
	IsLight       bool // checkerboard parity: (row+col) even
}

// Board is the render view of a snapshot.
type Board struct {
	Size            int
	Difficulty      Difficulty
	Cells           []CellState // row-major, Size*Size entries
	QueensRemaining int
	IsSolved        bool
}

// Cell returns the cell at (row, col). Out-of-range coordinates return a
// zero CellState.
func (b Board) Cell(row, col int) CellState {
	if row < 0 || row >= b.Size || col < 0 || col >= b.Size {
		return CellState{}
	}
	return b.Cells[row*b.Size+col]
}

// BuildBoard derives per-cell flags from a snapshot. hint, if given, marks an
// extra cell (typically the result of Hint) when it holds no queen.
func BuildBoard(s State, hint ...Position) Board {
	size := s.BoardSize()
	sel, hasSel := s.SelectedQueen()

	var hintPos Position
	hasHint := len(hint) > 0
	if hasHint {
		hintPos = hint[0]
	}

	cells := make([]CellState, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := Position{Row: row, Col: col}
			hasQueen := s.queens.Has(p)
			cells = append(cells, CellState{
				Position:      p,
				HasQueen:      hasQueen,
				IsConflicting: hasQueen && s.visibleConflicts.Has(p),
				IsAttacked:    !hasQueen && s.visibleAttackedCells.Has(p),
				IsSelected:    hasSel && sel == p,
				IsHint:        hasHint && hintPos == p && !hasQueen,
				IsLight:       (row+col)%2 == 0,
			})
		}
	}

	return Board{
		Size:            size,
		Difficulty:      s.config.Difficulty(),
		Cells:           cells,
		QueensRemaining: s.QueensRemaining(),
		IsSolved:        s.IsSolved(),
	}
}
