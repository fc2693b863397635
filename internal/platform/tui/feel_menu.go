package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkorolev/tiltmaze/internal/config"
	"github.com/dkorolev/tiltmaze/internal/core"
)

// FeelModel lets users choose a tilt feel preset before a run.
type FeelModel struct {
	presets   []config.FeelPreset
	cursor    int
	active    config.FeelPreset
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.FeelPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewFeelModel creates a new feel selection model. The cursor starts on the
// currently active preset.
func NewFeelModel(width, height int, active config.FeelPreset) FeelModel {
	presets := config.Presets()

	cursor := 0
	for i, p := range presets {
		if p == active {
			cursor = i
			break
		}
	}

	return FeelModel{
		presets:   presets,
		cursor:    cursor,
		active:    active,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m FeelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m FeelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m FeelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// feelDesc gives a one-line description for each preset.
func feelDesc(p config.FeelPreset) string {
	switch p {
	case config.FeelGentle:
		return "softer impulses, lower top rate"
	case config.FeelTwitchy:
		return "harder impulses, higher top rate"
	default:
		return "as configured"
	}
}

// View renders the preset selection.
func (m FeelModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("TILT FEEL", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("How sharply should the field respond?", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		marker := " "
		if p == m.active {
			marker = "*"
		}

		line := fmt.Sprintf("%s%s %-10s %s", cursor, marker, string(p), feelDesc(p))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m FeelModel) Selected() *config.FeelPreset {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m FeelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m FeelModel) WantsBack() bool {
	return m.back
}

// RunFeelSelector runs the feel selection and returns the chosen preset.
// A nil preset means the user backed out or quit.
func RunFeelSelector(cfg core.RuntimeConfig, active config.FeelPreset) (*config.FeelPreset, error) {
	model := NewFeelModel(cfg.ScreenW, cfg.ScreenH, active)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(FeelModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
