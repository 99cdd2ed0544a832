// ABOUTME: Bubble Tea sub-model rendering the fixed category tab strip across the top of the panel.
// ABOUTME: Highlights the active category and shows each tab's display label.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/classdeck/panel"
)

// CategoryBarModel renders the five resource categories as a tab strip.
type CategoryBarModel struct {
	active int
	width  int
}

// NewCategoryBarModel creates a CategoryBarModel with the first tab active.
func NewCategoryBarModel() CategoryBarModel {
	return CategoryBarModel{}
}

// SetActive marks the tab at the given index as active. Out-of-range indexes
// are ignored.
func (m *CategoryBarModel) SetActive(index int) {
	if index < 0 || index >= len(panel.ResourceTypes) {
		return
	}
	m.active = index
}

// Active returns the active tab index.
func (m CategoryBarModel) Active() int {
	return m.active
}

// SetWidth sets the available width for rendering.
func (m *CategoryBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the tab strip as a single line.
func (m CategoryBarModel) View() string {
	tabs := make([]string, 0, len(panel.ResourceTypes))
	for i, rt := range panel.ResourceTypes {
		if i == m.active {
			tabs = append(tabs, ActiveTabStyle.Render("["+rt.Label()+"]"))
		} else {
			tabs = append(tabs, TabStyle.Render(rt.Label()))
		}
	}
	line := strings.Join(tabs, " ")
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, line)
	}
	return line
}
