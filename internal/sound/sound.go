// Package sound turns engine action tags into audible cues.
package sound

import (
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/queens"
)

// Cue is a named sound event.
type Cue int

const (
	CueNone Cue = iota
	CuePlaced
	CueWarning
	CueVictory
	CueReset
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CuePlaced:
		return "placed"
	case CueWarning:
		return "warning"
	case CueVictory:
		return "victory"
	case CueReset:
		return "reset"
	default:
		return "unknown"
	}
}

// CueFor picks the cue for a transition. Removals and the initial
// snapshot (nil action) are silent.
func CueFor(a queens.Action) Cue {
	switch a.(type) {
	case queens.QueenAdded, queens.QueenMoved:
		if queens.CausedConflict(a) {
			return CueWarning
		}
		return CuePlaced
	case queens.GameWon:
		return CueVictory
	case queens.GameReset:
		return CueReset
	default:
		return CueNone
	}
}

// Player plays cues. Implementations must not block the caller.
type Player interface {
	Play(c Cue)
}

// Mute discards every cue.
type Mute struct{}

func (Mute) Play(Cue) {}

// BellPlayer rings the terminal bell: once for a placement or reset, twice
// for a warning, three times for a win.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellPlayer writes BEL characters to w (a terminal or SSH session).
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (p *BellPlayer) Play(c Cue) {
	n := bells(c)
	if n == 0 || p.w == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = io.WriteString(p.w, strings.Repeat("\a", n))
}

func bells(c Cue) int {
	switch c {
	case CuePlaced, CueReset:
		return 1
	case CueWarning:
		return 2
	case CueVictory:
		return 3
	default:
		return 0
	}
}

// LogPlayer records cues as debug log lines. Useful where no terminal is
// attached or to trace a session.
type LogPlayer struct {
	logger *log.Logger
}

// NewLogPlayer logs cues through logger.
func NewLogPlayer(logger *log.Logger) *LogPlayer {
	return &LogPlayer{logger: logger}
}

func (p *LogPlayer) Play(c Cue) {
	if c == CueNone || p.logger == nil {
		return
	}
	p.logger.Debug("sound cue", "cue", c.String())
}

// New builds the player selected by settings.
func New(s config.SoundSettings, w io.Writer, logger *log.Logger) Player {
	if !s.Enabled {
		return Mute{}
	}
	switch s.Mode {
	case config.SoundBell:
		return NewBellPlayer(w)
	case config.SoundLog:
		return NewLogPlayer(logger)
	default:
		return Mute{}
	}
}
