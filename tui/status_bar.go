// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing backend, selection, and mode.
// ABOUTME: Also carries transient acknowledgements from placeholder actions.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays panel status in a single line.
type StatusBarModel struct {
	backend  string
	category string
	selected string
	count    int
	mode     string
	ack      string
	width    int
}

// NewStatusBarModel creates a StatusBarModel for the given backend URL.
func NewStatusBarModel(backend string) StatusBarModel {
	return StatusBarModel{backend: backend, mode: "view"}
}

// SetCategory sets the active category label and its name count.
func (m *StatusBarModel) SetCategory(label string, count int) {
	m.category = label
	m.count = count
}

// SetSelected sets the selected configuration name.
func (m *StatusBarModel) SetSelected(name string) {
	m.selected = name
}

// SetMode sets the mode indicator (view, edit, loading).
func (m *StatusBarModel) SetMode(mode string) {
	m.mode = mode
}

// SetAck sets a transient acknowledgement message shown until the next
// update clears it.
func (m *StatusBarModel) SetAck(msg string) {
	m.ack = msg
}

// ClearAck removes the acknowledgement message.
func (m *StatusBarModel) ClearAck() {
	m.ack = ""
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	selected := m.selected
	if selected == "" {
		selected = "(none)"
	}

	content := fmt.Sprintf("%s | %s (%d) | %s | %s",
		m.backend, m.category, m.count, selected, m.mode)
	if m.ack != "" {
		content += " | " + m.ack
	}

	style := StatusBarStyle.Width(m.width)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
