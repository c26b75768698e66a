package queens

// Hint returns the first empty cell, in row-major order, that conflicts with
// none of the placed queens. ok is false when no such cell exists.
func Hint(queens PositionSet, boardSize int) (hint Position, ok bool) {
	placed := queens.Slice()
	for row := 0; row < boardSize; row++ {
		for col := 0; col < boardSize; col++ {
			p := Position{Row: row, Col: col}
			if queens.Has(p) {
				continue
			}
			if safeFrom(p, placed) {
				return p, true
			}
		}
	}
	return Position{}, false
}

// Solve returns up to limit complete solutions for an NxN board, in
// lexicographic order of column placements by row. A limit <= 0 returns
// every solution.
func Solve(boardSize, limit int) []PositionSet {
	if boardSize <= 0 {
		return nil
	}

	var solutions []PositionSet
	cols := make([]int, 0, boardSize)

	var place func(row int) bool
	place = func(row int) bool {
		if row == boardSize {
			ps := make([]Position, boardSize)
			for r, c := range cols {
				ps[r] = Position{Row: r, Col: c}
			}
			solutions = append(solutions, NewPositionSet(ps...))
			return limit > 0 && len(solutions) >= limit
		}
		for col := 0; col < boardSize; col++ {
			if !columnSafe(cols, row, col) {
				continue
			}
			cols = append(cols, col)
			if place(row + 1) {
				return true
			}
			cols = cols[:len(cols)-1]
		}
		return false
	}

	place(0)
	return solutions
}

// CountSolutions returns the number of distinct solutions for an NxN board.
func CountSolutions(boardSize int) int {
	return len(Solve(boardSize, 0))
}

func safeFrom(p Position, placed []Position) bool {
	for _, q := range placed {
		if HasConflict(p, q) {
			return false
		}
	}
	return true
}

// columnSafe checks a candidate column against the queens in earlier rows.
func columnSafe(cols []int, row, col int) bool {
	for r, c := range cols {
		if c == col || abs(r-row) == abs(c-col) {
			return false
		}
	}
	return true
}
