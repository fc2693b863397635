package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkorolev/tiltmaze/internal/core"
	"github.com/dkorolev/tiltmaze/internal/registry"
)

// Sentinel IDs for menu entries that are not registered modes.
const (
	menuEntryLayouts = "layouts"
	menuEntryFeel    = "feel"
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Desc   string
}

// MenuModel is the Bubble Tea model for the mode picker menu.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	feel        string
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	quitting    bool
	selected    *MenuItem // Set when user selects an entry
	openLayouts bool      // True if user pressed Tab for the layout browser
}

// NewMenuModel creates a new menu model. The feel name is shown next to the
// tilt feel entry so the active preset is visible before starting a run.
func NewMenuModel(cfg core.RuntimeConfig, feel string) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes)+2)

	for _, g := range modes {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Desc:   g.Desc,
		})
	}

	items = append(items,
		MenuItem{
			GameID: menuEntryLayouts,
			Title:  "Layout Browser",
			Desc:   "inspect the barrier layout at preset field sizes",
		},
		MenuItem{
			GameID: menuEntryFeel,
			Title:  "Tilt Feel",
			Desc:   "choose how sharply the field responds",
		},
	)

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		feel:      feel,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

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
			return m, tea.Quit // Exit menu to act on the selection
		}

	case MenuActionLayouts:
		m.openLayouts = true
		return m, tea.Quit // Exit menu to show the layout browser
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  T I L T M A Z E  "
	titleLine := centerText(title, m.width)
	b.WriteString("\n")
	b.WriteString(titleLine)
	b.WriteString("\n\n")

	// Subtitle
	subtitle := "Select a mode"
	subtitleLine := centerText(subtitle, m.width)
	b.WriteString(subtitleLine)
	b.WriteString("\n\n")

	// Entry list
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		title := item.Title
		if item.GameID == menuEntryFeel && m.feel != "" {
			title = fmt.Sprintf("%s  [%s]", title, m.feel)
		}

		line := fmt.Sprintf("%s%s", cursor, title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Description of the highlighted entry
	b.WriteString("\n")
	if len(m.items) > 0 {
		b.WriteString(centerText(m.items[m.cursor].Desc, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Layouts  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
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

// WantsLayouts returns true if user requested the layout browser.
func (m MenuModel) WantsLayouts() bool {
	return m.openLayouts
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Config       core.RuntimeConfig
	WantsLayouts bool
	WantsFeel    bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, feel string) (MenuResult, error) {
	model := NewMenuModel(cfg, feel)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsLayouts() {
		result.WantsLayouts = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	switch sel := m.Selected(); {
	case sel == nil:
		result.Quit = true
	case sel.GameID == menuEntryLayouts:
		result.WantsLayouts = true
	case sel.GameID == menuEntryFeel:
		result.WantsFeel = true
	default:
		result.GameID = sel.GameID
	}

	return result, nil
}
