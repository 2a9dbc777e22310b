package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles shared by the menus, the status line
// and the spectator view.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Value       lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// MonochromeTheme drops colour for terminals without it.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:       plain.Bold(true),
		Subtitle:    plain,
		ItemNormal:  plain,
		ItemActive:  plain.Reverse(true),
		Description: plain.Faint(true),
		Controls:    plain.Faint(true),
		Value:       plain,
		Warning:     plain.Bold(true),
	}
}

// currentTheme honours the NO_COLOR convention.
func currentTheme() Theme {
	if os.Getenv("NO_COLOR") != "" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}
