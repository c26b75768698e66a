package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/storage"
)

// ResultsChoice is what the player picked on the results screen.
type ResultsChoice int

const (
	ResultsNone ResultsChoice = iota
	ResultsPlayAgain
	ResultsBack
	ResultsQuit
)

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Again key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Again, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Again, k.Back, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Again: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
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

// ResultsModel shows the solve time and the board's fastest times.
type ResultsModel struct {
	results core.Results
	entry   storage.ScoreEntry
	scores  []storage.ScoreEntry
	palette *Palette
	table   table.Model
	help    help.Model
	keys    ResultsKeyMap
	width   int
	height  int
	choice  ResultsChoice
}

// NewResultsModel creates the results screen. entry is the stored run; a
// zero entry means the time was not recorded.
func NewResultsModel(res core.Results, entry storage.ScoreEntry, scores []storage.ScoreEntry, p *Palette, width, height int) ResultsModel {
	if p == nil {
		p = NewPalette(nil)
	}
	h := help.New()
	h.Width = width

	m := ResultsModel{
		results: res,
		entry:   entry,
		scores:  scores,
		palette: p,
		help:    h,
		keys:    DefaultResultsKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = newScoreTable(p, m.tableHeight())
	m.table.SetRows(scoreRows(scores))
	if i := m.highlightIndex(); i >= 0 {
		m.table.SetCursor(i)
	}
	return m
}

func (m ResultsModel) tableHeight() int {
	h := m.height - 12 // title, summary, help and borders
	if h < 3 {
		h = 3
	}
	return h
}

// highlightIndex returns the row of the new entry, or -1.
func (m ResultsModel) highlightIndex() int {
	if m.entry.ID == "" {
		return -1
	}
	for i, s := range m.scores {
		if s.ID == m.entry.ID {
			return i
		}
	}
	return -1
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ResultsQuit
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.choice = ResultsBack
			return m, nil
		case key.Matches(msg, m.keys.Again):
			m.choice = ResultsPlayAgain
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

// Choice returns the player's pick, ResultsNone while undecided.
func (m ResultsModel) Choice() ResultsChoice {
	return m.choice
}

// Summary returns the one-line result shown under the title.
func (m ResultsModel) Summary() string {
	line := fmt.Sprintf("%dx%d solved in %s", m.results.BoardSize, m.results.BoardSize, game.FormatElapsed(m.results.Elapsed))
	switch {
	case m.entry.ID == "":
		return line
	case m.entry.Rank == 1:
		return line + "  New best time!"
	case m.entry.Rank > 0:
		return fmt.Sprintf("%s  Rank #%d", line, m.entry.Rank)
	default:
		return line + "  Not in the top times"
	}
}

// View renders the results screen.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := m.palette.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	summaryStyle := m.palette.NewStyle().
		Foreground(lipgloss.Color("10"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S O L V E D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(summaryStyle.Render(m.Summary()), m.width))
	b.WriteString("\n\n")

	tableStyle := m.palette.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.scores) == 0 {
		content = m.palette.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No times recorded.")
	} else {
		content = m.table.View()
	}
	b.WriteString(centerText(tableStyle.Render(content), m.width))
	b.WriteString("\n\n")

	helpStyle := m.palette.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// newScoreTable creates a leaderboard table with the shared styling.
func newScoreTable(p *Palette, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = p.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Cell = p.NewStyle().Padding(0, 1)
	s.Selected = p.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return t
}

// scoreRows formats entries as table rows, fastest first.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			game.FormatElapsed(s.Elapsed()),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}
