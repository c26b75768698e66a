package queens

import "time"

// Observer receives every snapshot the engine publishes.
type Observer func(State)

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the source of start and end timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// Engine owns the current puzzle state and applies taps and restarts to it.
//
// Engine is not safe for concurrent mutation. Hosts that call UserMove or
// Restart from several goroutines must serialize those calls.
type Engine struct {
	state     State
	now       func() time.Time
	observers map[int]Observer
	order     []int
	nextID    int
}

// NewEngine creates an engine with an empty board.
func NewEngine(cfg GameConfig, opts ...Option) *Engine {
	if cfg.boardSize == 0 {
		cfg = DefaultGameConfig()
	}
	e := &Engine{
		state:     newState(cfg, nil),
		now:       time.Now,
		observers: make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New validates the board size and creates an engine in one step.
func New(boardSize int, difficulty Difficulty, opts ...Option) (*Engine, error) {
	cfg, err := NewGameConfig(boardSize, difficulty)
	if err != nil {
		return nil, err
	}
	return NewEngine(cfg, opts...), nil
}

// State returns the current snapshot.
func (e *Engine) State() State {
	return e.state
}

// CurrentConfig returns the configuration of the running puzzle.
func (e *Engine) CurrentConfig() GameConfig {
	return e.state.config
}

// Observe registers fn, calls it with the current snapshot, and then calls it
// after every transition in the order transitions happen. Late subscribers
// see only the latest snapshot, not earlier history. The returned func
// unsubscribes.
func (e *Engine) Observe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	id := e.nextID
	e.nextID++
	e.observers[id] = fn
	e.order = append(e.order, id)

	fn(e.state)

	return func() {
		if _, ok := e.observers[id]; !ok {
			return
		}
		delete(e.observers, id)
		for i, oid := range e.order {
			if oid == id {
				e.order = append(e.order[:i:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// Restart discards the board and starts over. With no argument the current
// configuration is reused; otherwise the first config given is used.
func (e *Engine) Restart(cfg ...GameConfig) {
	next := e.state.config
	if len(cfg) > 0 && cfg[0].boardSize != 0 {
		next = cfg[0]
	}
	e.publish(newState(next, GameReset{}))
}

// UserMove applies a tap on pos. Taps on a solved board, and taps that cannot
// do anything (full board with no movable selection), are ignored.
func (e *Engine) UserMove(pos Position) {
	if e.state.IsSolved() {
		return
	}
	if next, changed := e.applyTap(e.state, pos); changed {
		e.publish(next)
	}
}

func (e *Engine) publish(next State) {
	e.state = next
	ids := append([]int(nil), e.order...)
	for _, id := range ids {
		if fn, ok := e.observers[id]; ok {
			fn(next)
		}
	}
}

func (e *Engine) applyTap(cur State, pos Position) (State, bool) {
	size := cur.BoardSize()
	sel, hasSel := cur.SelectedQueen()

	var (
		queens    PositionSet
		newSel    Position
		hasNewSel bool
		action    Action
	)

	switch {
	case cur.queens.Has(pos):
		queens = cur.queens.Without(pos)
		newSel, hasNewSel = sel, hasSel
		if hasSel && sel == pos {
			newSel, hasNewSel = Position{}, false
		}
		action = QueenRemoved{Position: pos}

	case hasSel && FindConflictingQueens(cur.queens).Has(sel):
		queens = cur.queens.Without(sel).With(pos)
		newSel, hasNewSel = pos, true
		action = QueenMoved{From: sel, To: pos}

	case cur.queens.Len() < size:
		queens = cur.queens.With(pos)
		newSel, hasNewSel = pos, true
		action = QueenAdded{Position: pos}

	default:
		return cur, false
	}

	next := cur
	next.queens = queens
	next.selected, next.hasSelected = newSel, hasNewSel

	if next.startTime.IsZero() && !queens.IsEmpty() {
		next.startTime = e.now()
	}

	solved := IsSolved(queens, size)
	if solved && next.endTime.IsZero() {
		next.endTime = e.now()
	}

	conflicts := FindConflictingQueens(queens)
	next.visibleConflicts = visibleConflicts(cur.config.Difficulty(), conflicts, newSel, hasNewSel)
	next.visibleAttackedCells = visibleAttacks(cur.config.Difficulty(), newSel, hasNewSel, size)

	switch a := action.(type) {
	case QueenAdded:
		a.CausedConflict = conflicts.Has(a.Position)
		action = a
	case QueenMoved:
		a.CausedConflict = conflicts.Has(a.To)
		action = a
	}
	if solved {
		action = GameWon{}
	}
	next.lastAction = action

	return next, true
}

func visibleConflicts(d Difficulty, all PositionSet, sel Position, hasSel bool) PositionSet {
	switch d {
	case Hard:
		if hasSel && all.Has(sel) {
			return NewPositionSet(sel)
		}
		return PositionSet{}
	default:
		return all
	}
}

func visibleAttacks(d Difficulty, sel Position, hasSel bool, size int) PositionSet {
	if d != Easy || !hasSel {
		return PositionSet{}
	}
	return AttackedCells(sel, size)
}
