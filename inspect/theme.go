// Package inspect renders pickergrid layouts and realized node sets as text
// for terminals.
package inspect

import "github.com/charmbracelet/lipgloss"

// Theme centralizes the Lip Gloss styles used by the dumps.
type Theme struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Group   lipgloss.Style
	Loaded  lipgloss.Style
	Loading lipgloss.Style
	Failed  lipgloss.Style
	Label   lipgloss.Style
	Box     lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		Cell:    lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Group:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		Loaded:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}
