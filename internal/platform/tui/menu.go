package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/queens-arcade/internal/config"
	"github.com/vovakirdan/queens-arcade/internal/core"
	"github.com/vovakirdan/queens-arcade/internal/game"
	"github.com/vovakirdan/queens-arcade/internal/registry"
)

// MenuItem represents a selectable puzzle variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	palette        *Palette
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a variant
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, p *Palette) MenuModel {
	if p == nil {
		p = NewPalette(nil)
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: describeVariant(g.ID, cfg),
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		palette:   p,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// describeVariant returns the board summary shown next to a menu entry.
func describeVariant(id string, cfg core.RuntimeConfig) string {
	if p, ok := registry.LookupPreset(id); ok {
		return p.Description()
	}
	if id != game.CustomID {
		return ""
	}

	size := cfg.BoardSize
	if size == 0 {
		size = config.DefaultSettings().Board.Size
	}
	diff := cfg.Difficulty
	if diff == "" {
		diff = config.DefaultSettings().Board.Difficulty
	}
	d, err := config.ParseDifficulty(diff)
	if err != nil {
		return fmt.Sprintf("%dx%d", size, size)
	}
	return fmt.Sprintf("%dx%d, %s", size, size, d.DisplayName())
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.palette.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := m.palette.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := m.palette.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  N - Q U E E N S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %s", item.Title, dimStyle.Render(fmt.Sprintf("%-14s", item.Description)))
		if i == m.cursor {
			line = activeStyle.Render(fmt.Sprintf("> %-8s", item.Title)) + " " + dimStyle.Render(fmt.Sprintf("%-14s", item.Description))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
