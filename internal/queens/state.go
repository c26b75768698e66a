package queens

import "time"

// State is an immutable snapshot of a puzzle. The engine replaces it
// wholesale on every transition; observers only ever read it.
type State struct {
	config               GameConfig
	queens               PositionSet
	selected             Position
	hasSelected          bool
	startTime            time.Time
	endTime              time.Time
	visibleConflicts     PositionSet
	visibleAttackedCells PositionSet
	lastAction           Action
}

func newState(cfg GameConfig, last Action) State {
	return State{config: cfg, lastAction: last}
}

// Config returns the configuration the puzzle was started with.
func (s State) Config() GameConfig { return s.config }

// BoardSize is shorthand for Config().BoardSize().
func (s State) BoardSize() int { return s.config.BoardSize() }

// Queens returns the placed queens.
func (s State) Queens() PositionSet { return s.queens }

// SelectedQueen returns the selected queen, if any.
func (s State) SelectedQueen() (Position, bool) {
	return s.selected, s.hasSelected
}

// StartTime returns when the first queen was placed. ok is false before that.
func (s State) StartTime() (t time.Time, ok bool) {
	return s.startTime, !s.startTime.IsZero()
}

// EndTime returns when the puzzle was solved. ok is false while unsolved.
func (s State) EndTime() (t time.Time, ok bool) {
	return s.endTime, !s.endTime.IsZero()
}

// VisibleConflicts returns the conflicting queens the difficulty lets the
// player see.
func (s State) VisibleConflicts() PositionSet { return s.visibleConflicts }

// VisibleAttackedCells returns the attack hints for the selected queen.
// Always empty above Easy.
func (s State) VisibleAttackedCells() PositionSet { return s.visibleAttackedCells }

// LastAction returns the tag of the transition that produced this snapshot.
// It is nil for the snapshot created with the engine.
func (s State) LastAction() Action { return s.lastAction }

// IsSolved returns true once the puzzle has been completed.
func (s State) IsSolved() bool {
	return !s.endTime.IsZero()
}

// QueensRemaining returns how many queens are still to be placed.
func (s State) QueensRemaining() int {
	return s.BoardSize() - s.queens.Len()
}

// Elapsed returns the solve time, or zero while the puzzle is unsolved.
func (s State) Elapsed() time.Duration {
	if s.startTime.IsZero() || s.endTime.IsZero() {
		return 0
	}
	return s.endTime.Sub(s.startTime)
}

// ElapsedAt returns the running time as of now. It stops at the solve time.
func (s State) ElapsedAt(now time.Time) time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	if !s.endTime.IsZero() {
		return s.endTime.Sub(s.startTime)
	}
	if now.Before(s.startTime) {
		return 0
	}
	return now.Sub(s.startTime)
}
