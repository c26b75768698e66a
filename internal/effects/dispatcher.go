// Package effects runs the side effects of engine transitions: sound cues
// and the jump to the results view when a puzzle is solved.
package effects

import (
	"time"

	"github.com/vovakirdan/queens-arcade/internal/queens"
	"github.com/vovakirdan/queens-arcade/internal/sound"
)

// Navigator opens the results view for a solved board.
type Navigator interface {
	ShowResults(boardSize int, elapsed time.Duration)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(boardSize int, elapsed time.Duration)

func (f NavigatorFunc) ShowResults(boardSize int, elapsed time.Duration) {
	f(boardSize, elapsed)
}

// Dispatcher reacts to engine snapshots. It reads only the action tag and
// the timing fields of each snapshot.
type Dispatcher struct {
	player sound.Player
	nav    Navigator
}

// NewDispatcher creates a dispatcher. A nil player or navigator disables
// that effect.
func NewDispatcher(player sound.Player, nav Navigator) *Dispatcher {
	if player == nil {
		player = sound.Mute{}
	}
	return &Dispatcher{player: player, nav: nav}
}

// Attach subscribes to e. The snapshot delivered at subscription time is
// skipped so a late subscriber does not replay an old win or reset.
func (d *Dispatcher) Attach(e *queens.Engine) (detach func()) {
	primed := false
	return e.Observe(func(s queens.State) {
		if !primed {
			primed = true
			return
		}
		d.Handle(s)
	})
}

// Handle runs the effects for one snapshot.
func (d *Dispatcher) Handle(s queens.State) {
	action := s.LastAction()
	if cue := sound.CueFor(action); cue != sound.CueNone {
		d.player.Play(cue)
	}
	if _, won := action.(queens.GameWon); won && d.nav != nil {
		d.nav.ShowResults(s.BoardSize(), s.Elapsed())
	}
}
