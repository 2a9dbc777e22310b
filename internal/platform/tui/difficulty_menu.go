package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinfall/internal/config"
	"github.com/vovakirdan/coinfall/internal/core"
)

// DifficultyModel lets the player choose a difficulty preset after picking
// a mode.
type DifficultyModel struct {
	title     string
	presets   []config.DifficultyPreset
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	theme     Theme
	selected  *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates the picker with the cursor on initial.
func NewDifficultyModel(title string, initial config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		title:     title,
		presets:   config.Presets,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     currentTheme(),
	}
	for i, p := range m.presets {
		if p == initial {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
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
		p := m.presets[m.cursor]
		m.selected = &p
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Subtitle.Render("Select difficulty:"), m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		style := m.theme.ItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.ItemActive
		}
		line := style.Render(fmt.Sprintf("%s%-7s", cursor, p)) + "  " + m.theme.Description.Render(p.Description())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Controls.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m DifficultyModel) Selected() *config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the picker. The preset is nil when the player
// backed out; quit reports that they asked to leave entirely.
func RunDifficultySelector(title string, initial config.DifficultyPreset, cfg core.RuntimeConfig) (preset *config.DifficultyPreset, quit bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, initial, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("tui: difficulty: %w", err)
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
