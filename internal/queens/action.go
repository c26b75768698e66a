package queens

// Action describes what the last transition did. It is output only: the
// engine never reads it back. The set of variants is closed.
type Action interface {
	action()
	String() string
}

// QueenAdded is emitted when a queen is placed on an empty cell.
type QueenAdded struct {
	Position       Position
	CausedConflict bool
}

func (QueenAdded) action() {}

func (a QueenAdded) String() string {
	return "QueenAdded" + a.Position.String()
}

// QueenRemoved is emitted when a queen is tapped and taken off the board.
type QueenRemoved struct {
	Position Position
}

func (QueenRemoved) action() {}

func (a QueenRemoved) String() string {
	return "QueenRemoved" + a.Position.String()
}

// QueenMoved is emitted when a conflicting selected queen is relocated.
type QueenMoved struct {
	From           Position
	To             Position
	CausedConflict bool
}

func (QueenMoved) action() {}

func (a QueenMoved) String() string {
	return "QueenMoved" + a.From.String() + "->" + a.To.String()
}

// GameWon replaces the move tag on the transition that solves the puzzle.
type GameWon struct{}

func (GameWon) action() {}

func (GameWon) String() string { return "GameWon" }

// GameReset is emitted by Restart.
type GameReset struct{}

func (GameReset) action() {}

func (GameReset) String() string { return "GameReset" }

// CausedConflict reports whether an add or move landed on a conflicting cell.
// Other actions return false.
func CausedConflict(a Action) bool {
	switch v := a.(type) {
	case QueenAdded:
		return v.CausedConflict
	case QueenMoved:
		return v.CausedConflict
	default:
		return false
	}
}
