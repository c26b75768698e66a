package queens

import (
	"errors"
	"fmt"
	"strings"
)

// Board size limits.
const (
	MinBoardSize     = 4
	MaxBoardSize     = 12
	DefaultBoardSize = 8
)

// Difficulty controls which conflict and attack hints are surfaced.
// It never changes placement rules or the win condition.
type Difficulty int

const (
	Easy   Difficulty = iota // full conflicts + attack hints for the selected queen
	Medium                   // full conflicts, no attack hints
	Hard                     // only the selected queen's own conflict
)

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// DisplayName returns the capitalized name shown in menus.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Difficulties lists every difficulty in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a name such as "easy" or "HARD" to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("queens: unknown difficulty %q", s)
	}
}

// ErrBoardSize is matched by every ConfigurationError.
var ErrBoardSize = errors.New("queens: board size out of range")

// ConfigurationError reports a board size outside [MinBoardSize, MaxBoardSize].
type ConfigurationError struct {
	Size int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("queens: board size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, e.Size)
}

// Is makes errors.Is(err, ErrBoardSize) succeed.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrBoardSize
}

// GameConfig is a validated, immutable puzzle configuration.
// The only way to obtain a non-default value is NewGameConfig.
type GameConfig struct {
	boardSize  int
	difficulty Difficulty
}

// NewGameConfig validates the board size and returns a config.
func NewGameConfig(boardSize int, difficulty Difficulty) (GameConfig, error) {
	if boardSize < MinBoardSize || boardSize > MaxBoardSize {
		return GameConfig{}, &ConfigurationError{Size: boardSize}
	}
	if difficulty < Easy || difficulty > Hard {
		difficulty = Easy
	}
	return GameConfig{boardSize: boardSize, difficulty: difficulty}, nil
}

// MustGameConfig is like NewGameConfig but panics on an invalid size.
// Intended for package-level presets and tests.
func MustGameConfig(boardSize int, difficulty Difficulty) GameConfig {
	cfg, err := NewGameConfig(boardSize, difficulty)
	if err != nil {
		panic(err)
	}
	return cfg
}

// DefaultGameConfig returns an 8x8 Easy config.
func DefaultGameConfig() GameConfig {
	return GameConfig{boardSize: DefaultBoardSize, difficulty: Easy}
}

// BoardSize returns N for an NxN board.
func (c GameConfig) BoardSize() int {
	if c.boardSize == 0 {
		return DefaultBoardSize
	}
	return c.boardSize
}

// Difficulty returns the visibility policy.
func (c GameConfig) Difficulty() Difficulty {
	return c.difficulty
}

// WithBoardSize returns a copy with a new, validated board size.
func (c GameConfig) WithBoardSize(size int) (GameConfig, error) {
	return NewGameConfig(size, c.difficulty)
}

// WithDifficulty returns a copy with a new difficulty.
func (c GameConfig) WithDifficulty(d Difficulty) GameConfig {
	next, _ := NewGameConfig(c.BoardSize(), d)
	return next
}

// String returns e.g. "8x8 easy".
func (c GameConfig) String() string {
	return fmt.Sprintf("%dx%d %s", c.BoardSize(), c.BoardSize(), c.difficulty)
}
