package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/registry"
	"github.com/vovakirdan/queens-arcade/internal/sound"
	"github.com/vovakirdan/queens-arcade/internal/storage"
)

// saveTimeout bounds a single score write.
const saveTimeout = 3 * time.Second

// Env carries the collaborators shared by every screen of a session.
type Env struct {
	Store    storage.ScoreStore // may be nil: scores are not recorded
	Logger   *log.Logger
	Sound    sound.Player
	Renderer *lipgloss.Renderer
}

func (e Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

// soundSetter is implemented by games that play cues.
type soundSetter interface {
	SetSoundPlayer(sound.Player)
}

// closer is implemented by games holding engine subscriptions.
type closer interface {
	Close()
}

// Model is the Bubble Tea model for one puzzle run and its results screen.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    *Palette
	env        Env
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	results    *ResultsModel
	solved     int // board size of the last solved puzzle
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A standalone model quits on back instead of returning to a menu.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig, standalone bool) Model {
	if env.Sound != nil {
		if s, ok := game.(soundSetter); ok {
			s.SetSoundPlayer(env.Sound)
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    NewPalette(env.Renderer),
		env:        env,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		standalone: standalone,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.results != nil {
		return m.updateResults(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case action == core.ActionRestart:
		m.restart()
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The puzzle keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one game step and records a finished puzzle.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Results != nil {
		m.showResults(*result.Results)
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) restart() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.results = nil
}

// showResults saves the score and switches to the results screen.
// A failed save is logged and the results are still shown.
func (m *Model) showResults(res core.Results) {
	entry, scores, err := recordScore(m.env.Store, res)
	if err != nil {
		m.env.logger().Warn("could not save score",
			"board_size", res.BoardSize,
			"elapsed", res.Elapsed,
			"error", err,
		)
	}

	m.solved = res.BoardSize
	rm := NewResultsModel(res, entry, scores, m.palette, m.config.ScreenW, m.config.ScreenH)
	m.results = &rm
}

// recordScore stores a solve time and returns the entry with its board's
// leaderboard. A nil store records nothing.
func recordScore(store storage.ScoreStore, res core.Results) (storage.ScoreEntry, []storage.ScoreEntry, error) {
	if store == nil {
		return storage.ScoreEntry{}, nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	entry, err := store.AddScore(ctx, res.BoardSize, int64(res.Elapsed/time.Second))
	if err != nil {
		return storage.ScoreEntry{}, nil, err
	}

	scores, err := store.Scores(ctx, res.BoardSize)
	if err != nil {
		return entry, nil, err
	}
	return entry, scores, nil
}

// updateResults forwards messages to the results screen and acts on its choice.
func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
	}

	rm, cmd := m.results.Update(msg)
	m.results = &rm

	switch rm.Choice() {
	case ResultsPlayAgain:
		m.restart()
		return m, nil
	case ResultsBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case ResultsQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.Dir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.env.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.env.logger().Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.env.logger().Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.results != nil {
		return m.results.View()
	}

	m.game.Render(m.screen)
	return m.palette.RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to leave the puzzle.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SolvedBoard returns the board size of the last solved puzzle, 0 if none.
func (m Model) SolvedBoard() int {
	return m.solved
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Close releases the game's engine subscriptions.
func (m Model) Close() {
	if c, ok := m.game.(closer); ok {
		c.Close()
	}
}

// Run starts the Bubble Tea program for a single puzzle.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	model := NewModel(game, env, cfg, true)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
