// ABOUTME: Defines lipgloss style constants for the panel layout, category tabs, list selection, and notices.
// ABOUTME: Provides StyleForSeverity to map notification severities to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/classdeck/panel"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Category tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			Padding(0, 1)

	// Name list
	ListItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Notices
	SuccessNoticeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)
	ErrorNoticeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Dim helper text
	HintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// StyleForSeverity returns the appropriate lipgloss style for a notification
// severity.
func StyleForSeverity(sev panel.Severity) lipgloss.Style {
	switch sev {
	case panel.SeveritySuccess:
		return SuccessNoticeStyle
	case panel.SeverityError:
		return ErrorNoticeStyle
	default:
		return HintStyle
	}
}
