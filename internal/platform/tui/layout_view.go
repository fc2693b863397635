package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkorolev/tiltmaze/internal/maze"
)

// FieldPreset is a named field size for the layout browser.
type FieldPreset struct {
	Name   string
	Width  float64
	Height float64
}

// LayoutPresets returns the field sizes the browser can show. The terminal
// entries match the field a maze session derives from those screen sizes.
func LayoutPresets() []FieldPreset {
	return []FieldPreset{
		{Name: "Phone portrait", Width: 400, Height: 800},
		{Name: "Terminal 80x24", Width: 936, Height: 504},
		{Name: "Terminal 120x40", Width: 1416, Height: 888},
		{Name: "Desktop", Width: 1920, Height: 1080},
	}
}

// LayoutKeyMap defines the key bindings for the layout browser.
type LayoutKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LayoutKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPreset, k.PrevPreset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k LayoutKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPreset, k.PrevPreset},
		{k.Back, k.Quit},
	}
}

// DefaultLayoutKeyMap returns default key bindings.
func DefaultLayoutKeyMap() LayoutKeyMap {
	return LayoutKeyMap{
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
			key.WithHelp("left/h", "prev size"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next size"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next size"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev size"),
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

// LayoutModel is the Bubble Tea model for the layout browser screen.
type LayoutModel struct {
	presets      []FieldPreset
	presetCursor int
	field        maze.Field
	obstacles    []maze.Obstacle
	table        table.Model
	help         help.Model
	keys         LayoutKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool // True if user pressed back (not quit)
}

// NewLayoutModel creates a new layout browser model.
func NewLayoutModel(width, height int) LayoutModel {
	keys := DefaultLayoutKeyMap()
	h := help.New()
	h.ShowAll = false

	m := LayoutModel{
		presets: LayoutPresets(),
		keys:    keys,
		help:    h,
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	m.loadPreset(0)

	return m
}

// createTable creates a new table with the obstacle columns.
func (m *LayoutModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Kind", Width: 8},
		{Title: "Left", Width: 7},
		{Title: "Top", Width: 7},
		{Title: "Width", Width: 7},
		{Title: "Height", Width: 7},
		{Title: "Right", Width: 7},
		{Title: "Bottom", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(6), // Four obstacles plus header room
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPreset rebuilds the obstacle set for the preset at index i.
func (m *LayoutModel) loadPreset(i int) {
	m.presetCursor = i
	p := m.presets[i]
	m.field = maze.Field{Width: p.Width, Height: p.Height}
	m.obstacles = maze.BuildLayout(m.field)
	m.updateTableRows()
}

// kindLabel names an obstacle kind for display.
func kindLabel(k maze.Kind) string {
	if k == maze.KindExit {
		return "exit"
	}
	return "barrier"
}

// updateTableRows updates the table with the current obstacle set.
func (m *LayoutModel) updateTableRows() {
	rows := make([]table.Row, len(m.obstacles))
	for i, o := range m.obstacles {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			kindLabel(o.Kind),
			fmt.Sprintf("%.1f", o.Left),
			fmt.Sprintf("%.1f", o.Top),
			fmt.Sprintf("%.1f", o.Width),
			fmt.Sprintf("%.1f", o.Height),
			fmt.Sprintf("%.1f", o.Right()),
			fmt.Sprintf("%.1f", o.Bottom()),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the layout browser model.
func (m LayoutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the layout browser.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPreset), key.Matches(msg, m.keys.Right):
			m.loadPreset((m.presetCursor + 1) % len(m.presets))
			return m, nil

		case key.Matches(msg, m.keys.PrevPreset), key.Matches(msg, m.keys.Left):
			prev := m.presetCursor - 1
			if prev < 0 {
				prev = len(m.presets) - 1
			}
			m.loadPreset(prev)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the layout browser.
func (m LayoutModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	// Title
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	p := m.presets[m.presetCursor]
	title := fmt.Sprintf("BARRIER LAYOUT - %s (%.0fx%.0f)", p.Name, p.Width, p.Height)

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	// Preset tabs
	b.WriteString(m.renderPresetTabs())
	b.WriteString("\n\n")

	// Table
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	b.WriteString("\n\n")

	// Footer with the fixed dimensions and the playable bound
	bound := maze.MinTraversableField()
	footer := fmt.Sprintf("Ball radius %.0f  |  Wall thickness %.0f  |  Playable above %.0fx%.0f",
		maze.BallRadius, maze.WallThickness, bound.Width, bound.Height)
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(footerStyle.Render(centerText(footer, m.width)))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPresetTabs renders the preset names as a horizontal tab line.
func (m LayoutModel) renderPresetTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.presets))
	for i, p := range m.presets {
		if i == m.presetCursor {
			tabs[i] = activeTabStyle.Render(p.Name)
		} else {
			tabs[i] = tabStyle.Render(" " + p.Name + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show current preset with arrows
		tabLine = fmt.Sprintf("< %s >", m.presets[m.presetCursor].Name)
	}

	return centerText(tabLine, m.width)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LayoutModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LayoutModel) IsQuitting() bool {
	return m.quitting
}

// RunLayoutBrowser runs the layout browser screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunLayoutBrowser(width, height int) (goBack bool, err error) {
	model := NewLayoutModel(width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(LayoutModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
