package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/registry"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPlay
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> puzzle -> menu, with
// the scoreboard reachable from the menu. It drives both the local menu
// command and SSH sessions.
type SessionModel struct {
	env        Env
	config     core.RuntimeConfig
	palette    *Palette
	screen     sessionScreen
	menu       MenuModel
	play       *Model
	scoreboard ScoreboardModel
	lastBoard  int
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(env Env, cfg core.RuntimeConfig) SessionModel {
	p := NewPalette(env.Renderer)
	return SessionModel{
		env:     env,
		config:  cfg,
		palette: p,
		menu:    NewMenuModel(cfg, p),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.env.Store, m.palette, m.lastBoard, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScoreboard
		return m, nil

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.env.logger().Error("could not create puzzle", "id", m.menu.Selected().GameID, "error", err)
			m.menu = NewMenuModel(m.config, m.palette)
			return m, nil
		}

		play := NewModel(game, m.env, m.config, false)
		m.play = &play
		m.screen = screenPlay
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates while a puzzle is running.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.play.Update(msg)
	if pm, ok := next.(Model); ok {
		m.play = &pm
	}

	if m.play.IsQuitting() {
		m.play.Close()
		m.quitting = true
		return m, tea.Quit
	}

	if m.play.BackToMenu() {
		if size := m.play.SolvedBoard(); size > 0 {
			m.lastBoard = size
		}
		m.play.Close()
		m.play = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config, m.palette)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates on the scoreboard.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config, m.palette)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
