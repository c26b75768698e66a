package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/queens-arcade/internal/storage"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev board"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next board"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists the fastest times per board size.
type ScoreboardModel struct {
	store     storage.ScoreStore
	palette   *Palette
	sizes     []int
	cursor    int
	scores    []storage.ScoreEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on initialSize when that
// board has times, otherwise on the smallest recorded board.
func NewScoreboardModel(store storage.ScoreStore, p *Palette, initialSize, width, height int) ScoreboardModel {
	if p == nil {
		p = NewPalette(nil)
	}
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:   store,
		palette: p,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = newScoreTable(p, m.tableHeight())

	if store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		m.sizes, m.loadErr = store.BoardSizes(ctx)
		cancel()
	}
	for i, s := range m.sizes {
		if s == initialSize {
			m.cursor = i
		}
	}
	m.loadScores()

	return m
}

func (m ScoreboardModel) tableHeight() int {
	h := m.height - 10 // title, tabs, help and borders
	if h < 3 {
		h = 3
	}
	return h
}

// loadScores loads times for the selected board size.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.sizes) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		m.scores, m.loadErr = m.store.Scores(ctx, m.sizes[m.cursor])
		cancel()
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextBoard), key.Matches(msg, m.keys.Right):
			if len(m.sizes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.sizes)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard), key.Matches(msg, m.keys.Left):
			if len(m.sizes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.sizes)) % len(m.sizes)
				m.loadScores()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	return m, nil
}

// BoardSize returns the selected board size, 0 when nothing is recorded.
func (m ScoreboardModel) BoardSize() int {
	if len(m.sizes) == 0 {
		return 0
	}
	return m.sizes[m.cursor]
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := m.palette.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "BEST TIMES"
	if size := m.BoardSize(); size > 0 {
		title = fmt.Sprintf("BEST TIMES - %dx%d", size, size)
	}
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if tabs := m.renderTabs(); tabs != "" {
		b.WriteString(centerText(tabs, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := m.palette.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n\n")
	helpStyle := m.palette.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders one tab per recorded board size.
func (m ScoreboardModel) renderTabs() string {
	if len(m.sizes) == 0 {
		return ""
	}

	tabStyle := m.palette.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := m.palette.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.sizes))
	for i, size := range m.sizes {
		label := fmt.Sprintf("%dx%d", size, size)
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(" " + label + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		size := m.sizes[m.cursor]
		line = fmt.Sprintf("< %dx%d >", size, size)
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := m.palette.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Score storage is disabled.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load times.")
	case len(m.scores) == 0:
		return emptyStyle.Render("No times recorded yet.\nSolve a board to set one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
