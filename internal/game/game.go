// Package game adapts the queens engine to the arcade platform: cursor and
// mouse input become taps, the board is drawn onto a core.Screen, and a win
// is turned into a results request.
package game

import (
	"time"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/effects"
	"github.com/vovakirdan/queens-arcade/internal/queens"
	"github.com/vovakirdan/queens-arcade/internal/registry"
	"github.com/vovakirdan/queens-arcade/internal/sound"
)

// CustomID is the variant used when the board comes from flags or settings
// rather than a preset.
const CustomID = "custom"

// Game is one playable queens variant.
type Game struct {
	preset registry.Preset
	now    func() time.Time
	player sound.Player

	engine *queens.Engine
	detach func()

	cursor   queens.Position
	showHint bool
	pending  *core.Results

	layout   layout
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source for the engine and the on-screen timer.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		if now != nil {
			g.now = now
		}
	}
}

// WithSoundPlayer sets the cue player.
func WithSoundPlayer(p sound.Player) Option {
	return func(g *Game) {
		g.SetSoundPlayer(p)
	}
}

// New creates a game for a preset.
func New(p registry.Preset, opts ...Option) *Game {
	g := &Game{
		preset: p,
		now:    time.Now,
		player: sound.Mute{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	for _, p := range registry.Presets() {
		p := p
		registry.Register(p.ID, func() registry.Game {
			return New(p)
		})
	}
	registry.Register(CustomID, func() registry.Game {
		return New(registry.Preset{
			ID:     CustomID,
			Title:  "Custom",
			Config: queens.DefaultGameConfig(),
		})
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.preset.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.preset.Title
}

// SetSoundPlayer swaps the cue player. A nil player mutes the game.
func (g *Game) SetSoundPlayer(p sound.Player) {
	if p == nil {
		p = sound.Mute{}
	}
	g.player = p
}

// Engine exposes the running engine, nil before the first Reset.
func (g *Game) Engine() *queens.Engine {
	return g.engine
}

// Reset starts a new puzzle. The first call creates the engine; later calls
// restart it, which plays the reset cue. The custom variant takes its board
// from the RuntimeConfig board fields when set and valid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gc := g.resolveConfig(cfg)

	g.cursor = queens.Position{}
	g.showHint = false
	g.pending = nil

	if g.engine == nil {
		g.engine = queens.NewEngine(gc, queens.WithClock(g.now))
		d := effects.NewDispatcher(cuePlayer{g}, effects.NavigatorFunc(g.showResults))
		g.detach = d.Attach(g.engine)
		return
	}
	g.engine.Restart(gc)
}

// resolveConfig applies RuntimeConfig overrides to the custom variant.
// Presets keep their board. Invalid overrides are ignored; callers validate
// flags before starting.
func (g *Game) resolveConfig(cfg core.RuntimeConfig) queens.GameConfig {
	gc := g.preset.Config
	if g.engine != nil {
		gc = g.engine.CurrentConfig()
	}
	if g.preset.ID != CustomID {
		return gc
	}
	if cfg.BoardSize != 0 {
		if next, err := gc.WithBoardSize(cfg.BoardSize); err == nil {
			gc = next
		}
	}
	if cfg.Difficulty != "" {
		if d, err := queens.ParseDifficulty(cfg.Difficulty); err == nil {
			gc = gc.WithDifficulty(d)
		}
	}
	return gc
}

func (g *Game) showResults(boardSize int, elapsed time.Duration) {
	g.pending = &core.Results{
		Variant:   g.preset.ID,
		BoardSize: boardSize,
		Elapsed:   elapsed,
	}
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if !g.tooSmall && g.changeBoard(in) {
		return core.StepResult{State: g.State()}
	}

	if !g.engine.State().IsSolved() && !g.tooSmall {
		g.handleInput(in)
	}

	res := core.StepResult{State: g.State(), Results: g.pending}
	g.pending = nil
	return res
}

// changeBoard restarts on a resized board or with the next difficulty.
// Sizes outside the allowed range are ignored. Reports whether it restarted.
func (g *Game) changeBoard(in core.InputFrame) bool {
	cfg := g.engine.CurrentConfig()
	next := cfg

	switch {
	case in.Has(core.ActionSizeUp), in.Has(core.ActionSizeDown):
		step := 1
		if in.Has(core.ActionSizeDown) {
			step = -1
		}
		resized, err := cfg.WithBoardSize(cfg.BoardSize() + step)
		if err != nil {
			return false
		}
		next = resized
	case in.Has(core.ActionDifficulty):
		next = cfg.WithDifficulty(nextDifficulty(cfg.Difficulty()))
	default:
		return false
	}

	g.cursor = queens.Position{}
	g.showHint = false
	g.pending = nil
	g.engine.Restart(next)
	return true
}

// nextDifficulty cycles Easy, Medium, Hard.
func nextDifficulty(d queens.Difficulty) queens.Difficulty {
	switch d {
	case queens.Easy:
		return queens.Medium
	case queens.Medium:
		return queens.Hard
	default:
		return queens.Easy
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	n := g.engine.State().BoardSize()

	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, n-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, n-1)

	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
	}

	if in.HasClick {
		if pos, ok := g.layout.cellAt(in.Click.X, in.Click.Y, n); ok {
			g.cursor = pos
			g.engine.UserMove(pos)
		}
		return
	}

	if in.Has(core.ActionConfirm) {
		g.engine.UserMove(g.cursor)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    s.Queens().Len(),
		GameOver: s.IsSolved(),
		Paused:   g.tooSmall,
	}
}

// Close detaches the effect dispatcher from the engine.
func (g *Game) Close() {
	if g.detach != nil {
		g.detach()
		g.detach = nil
	}
}

// cuePlayer forwards to the game's current player so SetSoundPlayer works
// after the engine exists.
type cuePlayer struct{ g *Game }

func (c cuePlayer) Play(cue sound.Cue) {
	c.g.player.Play(cue)
}
