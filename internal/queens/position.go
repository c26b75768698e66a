package queens

import (
	"fmt"
	"sort"
	"strings"
)

// Position is a board cell coordinate. Rows and columns are 0-indexed.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// InBounds returns true if the position lies on a board of the given size.
func (p Position) InBounds(boardSize int) bool {
	return p.Row >= 0 && p.Row < boardSize && p.Col >= 0 && p.Col < boardSize
}

// PositionSet is an immutable set of positions.
// The zero value is an empty set. Operations that change membership
// return a new set and leave the receiver untouched.
type PositionSet struct {
	m map[Position]struct{}
}

// NewPositionSet builds a set from the given positions. Duplicates collapse.
func NewPositionSet(ps ...Position) PositionSet {
	if len(ps) == 0 {
		return PositionSet{}
	}
	m := make(map[Position]struct{}, len(ps))
	for _, p := range ps {
		m[p] = struct{}{}
	}
	return PositionSet{m: m}
}

// Len returns the number of positions in the set.
func (s PositionSet) Len() int {
	return len(s.m)
}

// IsEmpty returns true if the set has no members.
func (s PositionSet) IsEmpty() bool {
	return len(s.m) == 0
}

// Has reports whether p is a member.
func (s PositionSet) Has(p Position) bool {
	_, ok := s.m[p]
	return ok
}

// With returns a copy of the set including p.
func (s PositionSet) With(p Position) PositionSet {
	m := make(map[Position]struct{}, len(s.m)+1)
	for q := range s.m {
		m[q] = struct{}{}
	}
	m[p] = struct{}{}
	return PositionSet{m: m}
}

// Without returns a copy of the set excluding p.
func (s PositionSet) Without(p Position) PositionSet {
	if !s.Has(p) {
		return s
	}
	m := make(map[Position]struct{}, len(s.m))
	for q := range s.m {
		if q != p {
			m[q] = struct{}{}
		}
	}
	return PositionSet{m: m}
}

// Equal reports whether both sets hold the same positions.
func (s PositionSet) Equal(other PositionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for p := range s.m {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Slice returns the members sorted by row, then column.
func (s PositionSet) Slice() []Position {
	out := make([]Position, 0, len(s.m))
	for p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// String returns the members in row-major order, e.g. "{(0,1) (2,3)}".
func (s PositionSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, p := range s.Slice() {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}
