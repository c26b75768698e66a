package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/queens"
	"github.com/vovakirdan/queens-arcade/internal/registry"
	"github.com/vovakirdan/queens-arcade/internal/sound"
)

type cueRecorder struct{ cues []sound.Cue }

func (r *cueRecorder) Play(c sound.Cue) { r.cues = append(r.cues, c) }

func stepClock() func() time.Time {
	t := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newMini(t *testing.T, opts ...Option) *Game {
	t.Helper()
	p, ok := registry.LookupPreset("mini")
	require.True(t, ok)
	g := New(p, append([]Option{WithClock(stepClock())}, opts...)...)
	g.Reset(core.DefaultConfig())
	t.Cleanup(g.Close)
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for _, a := range actions {
		in := core.NewInputFrame()
		in.Set(a)
		res = g.Step(in)
		if res.Results != nil {
			return res
		}
	}
	return res
}

func TestVariantsRegistered(t *testing.T) {
	for _, p := range registry.Presets() {
		assert.True(t, registry.Exists(p.ID), "preset %q", p.ID)
	}
	g, err := registry.Create(CustomID)
	require.NoError(t, err)
	assert.Equal(t, "Custom", g.Title())
}

func TestResetOverrides(t *testing.T) {
	g := New(registry.Preset{ID: CustomID, Title: "Custom", Config: queens.DefaultGameConfig()})
	defer g.Close()

	g.Reset(core.RuntimeConfig{BoardSize: 6, Difficulty: "hard"})
	cfg := g.Engine().CurrentConfig()
	assert.Equal(t, 6, cfg.BoardSize())
	assert.Equal(t, queens.Hard, cfg.Difficulty())

	// Invalid overrides are ignored, the running config is kept
	g.Reset(core.RuntimeConfig{BoardSize: 40, Difficulty: "nightmare"})
	cfg = g.Engine().CurrentConfig()
	assert.Equal(t, 6, cfg.BoardSize())
	assert.Equal(t, queens.Hard, cfg.Difficulty())
}

func TestPresetIgnoresBoardOverrides(t *testing.T) {
	g := newMini(t)

	g.Reset(core.RuntimeConfig{BoardSize: 8, Difficulty: "hard"})
	cfg := g.Engine().CurrentConfig()
	assert.Equal(t, 4, cfg.BoardSize())
	assert.Equal(t, queens.Easy, cfg.Difficulty())
}

func TestCursorClampsAndPlaces(t *testing.T) {
	g := newMini(t)

	press(g, core.ActionUp, core.ActionLeft)
	assert.Equal(t, queens.Pos(0, 0), g.cursor)

	press(g, core.ActionDown, core.ActionDown, core.ActionDown, core.ActionDown, core.ActionDown)
	assert.Equal(t, queens.Pos(3, 0), g.cursor)

	res := press(g, core.ActionRight, core.ActionConfirm)
	assert.Equal(t, 1, res.State.Score)
	assert.True(t, g.Engine().State().Queens().Has(queens.Pos(3, 1)))
}

func TestSolveRaisesResultsOnce(t *testing.T) {
	rec := &cueRecorder{}
	g := newMini(t, WithSoundPlayer(rec))

	// Cursor walk to the solution (0,1) (1,3) (2,0) (3,2)
	press(g, core.ActionRight, core.ActionConfirm)
	press(g, core.ActionDown, core.ActionRight, core.ActionRight, core.ActionConfirm)
	press(g, core.ActionDown, core.ActionLeft, core.ActionLeft, core.ActionLeft, core.ActionConfirm)
	res := press(g, core.ActionDown, core.ActionRight, core.ActionRight, core.ActionConfirm)

	require.NotNil(t, res.Results)
	assert.True(t, res.State.GameOver)
	assert.Equal(t, "mini", res.Results.Variant)
	assert.Equal(t, 4, res.Results.BoardSize)
	assert.Equal(t, g.Engine().State().Elapsed(), res.Results.Elapsed)
	assert.Positive(t, res.Results.Elapsed)

	assert.Equal(t, []sound.Cue{sound.CuePlaced, sound.CuePlaced, sound.CuePlaced, sound.CueVictory}, rec.cues)

	// No repeat request and no further moves
	res = press(g, core.ActionUp, core.ActionConfirm)
	assert.Nil(t, res.Results)
	assert.Equal(t, 4, res.State.Score)

	// Restart plays the reset cue and clears the board
	g.Reset(core.DefaultConfig())
	assert.Equal(t, sound.CueReset, rec.cues[len(rec.cues)-1])
	assert.Equal(t, 0, g.State().Score)
	assert.False(t, g.State().GameOver)
}

func TestBoardSizeAndDifficultyKeys(t *testing.T) {
	g := newMini(t)
	press(g, core.ActionRight, core.ActionConfirm)
	require.Equal(t, 1, g.State().Score)

	press(g, core.ActionSizeUp)
	cfg := g.Engine().CurrentConfig()
	assert.Equal(t, 5, cfg.BoardSize())
	assert.Equal(t, queens.Easy, cfg.Difficulty())
	assert.IsType(t, queens.GameReset{}, g.Engine().State().LastAction())
	assert.Equal(t, 0, g.State().Score)
	assert.Equal(t, queens.Pos(0, 0), g.cursor)

	press(g, core.ActionDifficulty)
	assert.Equal(t, queens.Medium, g.Engine().CurrentConfig().Difficulty())
	assert.Equal(t, 5, g.Engine().CurrentConfig().BoardSize())
	press(g, core.ActionDifficulty, core.ActionDifficulty)
	assert.Equal(t, queens.Easy, g.Engine().CurrentConfig().Difficulty(), "difficulty wraps around")

	press(g, core.ActionSizeDown)
	assert.Equal(t, 4, g.Engine().CurrentConfig().BoardSize())

	// Below the minimum size nothing restarts
	press(g, core.ActionConfirm)
	press(g, core.ActionSizeDown)
	assert.Equal(t, 4, g.Engine().CurrentConfig().BoardSize())
	assert.Equal(t, 1, g.State().Score)
	assert.IsType(t, queens.QueenAdded{}, g.Engine().State().LastAction())

	// Restart keeps the chosen board
	g.Reset(core.DefaultConfig())
	press(g, core.ActionSizeUp, core.ActionSizeUp)
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 6, g.Engine().CurrentConfig().BoardSize())
}

func TestBoardSizeUpStopsAtMaximum(t *testing.T) {
	g := New(registry.Preset{ID: "grand", Title: "Grand", Config: queens.MustGameConfig(queens.MaxBoardSize, queens.Hard)},
		WithClock(stepClock()))
	g.Reset(core.DefaultConfig())
	t.Cleanup(g.Close)

	press(g, core.ActionSizeUp)
	assert.Equal(t, queens.MaxBoardSize, g.Engine().CurrentConfig().BoardSize())
	assert.Nil(t, g.Engine().State().LastAction(), "no restart past the largest board")
}

func TestBoardChangeAfterWin(t *testing.T) {
	g := newMini(t)
	for _, p := range []queens.Position{queens.Pos(0, 1), queens.Pos(1, 3), queens.Pos(2, 0), queens.Pos(3, 2)} {
		g.Engine().UserMove(p)
	}
	require.True(t, g.Engine().State().IsSolved())

	res := press(g, core.ActionSizeUp)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 5, g.Engine().CurrentConfig().BoardSize())
}

func TestRenderBoardAndClick(t *testing.T) {
	g := newMini(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 4x4 board: frame is 14 wide, centered at x=33, top at y=3
	assert.Equal(t, '┌', screen.Get(33, 3))
	assert.Equal(t, '┘', screen.Get(46, 8))
	assert.Equal(t, core.ColorCursor, screen.GetCell(35, 4).BG)
	assert.Equal(t, core.ColorSquareDark, screen.GetCell(38, 4).BG)
	assert.Equal(t, core.ColorSquareLight, screen.GetCell(38, 5).BG)

	// Click cell (1,2): x = 34 + 2*3, y = 4 + 1
	in := core.NewInputFrame()
	in.SetClick(40, 5)
	g.Step(in)
	assert.True(t, g.Engine().State().Queens().Has(queens.Pos(1, 2)))
	assert.Equal(t, queens.Pos(1, 2), g.cursor)

	// Conflicting add on (1,0) shows both queens red, selection bracketed
	in = core.NewInputFrame()
	in.SetClick(35, 5)
	g.Step(in)
	g.Render(screen)
	assert.Equal(t, 'Q', screen.Get(41, 5))
	assert.Equal(t, core.ColorBrightRed, screen.GetCell(41, 5).FG)
	assert.Equal(t, '[', screen.Get(34, 5))
	assert.Equal(t, 'Q', screen.Get(35, 5))
	assert.Equal(t, ']', screen.Get(36, 5))
	assert.Contains(t, screen.String(), "Conflict at (1,0)")
	assert.Contains(t, screen.String(), "N-Queens  4x4 (Easy)")
	assert.Contains(t, screen.String(), "+/- size  t difficulty")

	// Clicks on the frame are ignored
	in = core.NewInputFrame()
	in.SetClick(33, 5)
	g.Step(in)
	assert.Equal(t, 2, g.State().Score)
}

func TestRenderHint(t *testing.T) {
	g := newMini(t)
	press(g, core.ActionConfirm, core.ActionHint) // queen at (0,0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hint, ok := queens.Hint(g.Engine().State().Queens(), 4)
	require.True(t, ok)
	x := 34 + hint.Col*cellWidth + 1
	y := 4 + hint.Row
	assert.Equal(t, '*', screen.Get(x, y))
	assert.Equal(t, core.ColorBrightGreen, screen.GetCell(x, y).FG)
}

func TestRenderTooSmall(t *testing.T) {
	g := newMini(t)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	assert.Contains(t, screen.String(), "Window too small")
	assert.True(t, g.State().Paused)

	res := press(g, core.ActionConfirm)
	assert.Equal(t, 0, res.State.Score, "input is ignored while the board cannot be shown")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{9 * time.Second, "0:09"},
		{83*time.Second + 900*time.Millisecond, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d))
	}
}
