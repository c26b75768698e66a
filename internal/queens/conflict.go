// Package queens implements the N-Queens puzzle engine: conflict and attack
// computation, and the state machine that applies player taps.
//
// The package has no dependencies outside the standard library and performs
// no I/O. Time is read through an injectable clock so hosts and tests
// control it.
package queens

// HasConflict reports whether two queens attack each other.
// A position never conflicts with itself.
func HasConflict(a, b Position) bool {
	if a == b {
		return false
	}
	if a.Row == b.Row || a.Col == b.Col {
		return true
	}
	return abs(a.Row-b.Row) == abs(a.Col-b.Col)
}

// FindConflictingQueens returns every queen that conflicts with at least one
// other queen. Pairwise comparison, O(n^2) in the number of queens.
func FindConflictingQueens(queens PositionSet) PositionSet {
	list := queens.Slice()
	var conflicting []Position
	seen := make(map[Position]bool, len(list))

	for i := 0; i < len(list); i++ {
		for j := i + 1; j < len(list); j++ {
			if !HasConflict(list[i], list[j]) {
				continue
			}
			if !seen[list[i]] {
				seen[list[i]] = true
				conflicting = append(conflicting, list[i])
			}
			if !seen[list[j]] {
				seen[list[j]] = true
				conflicting = append(conflicting, list[j])
			}
		}
	}

	return NewPositionSet(conflicting...)
}

// AttackedCells returns every cell on the queen's row, column and both
// diagonals, clipped to the board. The queen's own cell is excluded.
func AttackedCells(queen Position, boardSize int) PositionSet {
	cells := make([]Position, 0, 4*boardSize)

	for i := 0; i < boardSize; i++ {
		if i != queen.Col {
			cells = append(cells, Position{Row: queen.Row, Col: i})
		}
		if i != queen.Row {
			cells = append(cells, Position{Row: i, Col: queen.Col})
		}
	}

	// Walk the four diagonal rays outward from the queen.
	directions := [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	for _, d := range directions {
		for step := 1; step < boardSize; step++ {
			p := Position{Row: queen.Row + d[0]*step, Col: queen.Col + d[1]*step}
			if !p.InBounds(boardSize) {
				break
			}
			cells = append(cells, p)
		}
	}

	return NewPositionSet(cells...)
}

// IsSolved reports whether the queens form a complete solution:
// exactly boardSize queens with no pairwise conflicts.
func IsSolved(queens PositionSet, boardSize int) bool {
	if queens.Len() != boardSize {
		return false
	}
	return FindConflictingQueens(queens).IsEmpty()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
