// ABOUTME: Bubble Tea sub-model for the scrollable list of configuration names in the active category.
// ABOUTME: Tracks a cursor over the loaded names and keeps it visible inside the available height.
package tui

import (
	"fmt"
	"strings"
)

// NameListModel displays the loaded configuration names with a selection
// cursor.
type NameListModel struct {
	names  []string
	cursor int
	offset int // first visible row
	width  int
	height int
}

// NewNameListModel creates an empty NameListModel.
func NewNameListModel() NameListModel {
	return NameListModel{}
}

// SetNames replaces the list contents and moves the cursor to the selected
// name. An unknown or empty selection resets the cursor to the top.
func (m *NameListModel) SetNames(names []string, selected string) {
	m.names = names
	m.cursor = 0
	for i, n := range names {
		if n == selected {
			m.cursor = i
			break
		}
	}
	m.scrollIntoView()
}

// Len returns the number of names in the list.
func (m NameListModel) Len() int {
	return len(m.names)
}

// Cursor returns the name under the cursor, or false when the list is empty.
func (m NameListModel) Cursor() (string, bool) {
	if len(m.names) == 0 {
		return "", false
	}
	return m.names[m.cursor], true
}

// MoveUp moves the cursor up one row and returns the newly cursored name.
// Returns false when the cursor did not move.
func (m *NameListModel) MoveUp() (string, bool) {
	if m.cursor <= 0 {
		return "", false
	}
	m.cursor--
	m.scrollIntoView()
	return m.names[m.cursor], true
}

// MoveDown moves the cursor down one row and returns the newly cursored
// name. Returns false when the cursor did not move.
func (m *NameListModel) MoveDown() (string, bool) {
	if m.cursor >= len(m.names)-1 {
		return "", false
	}
	m.cursor++
	m.scrollIntoView()
	return m.names[m.cursor], true
}

// SetSize sets the available dimensions.
func (m *NameListModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.scrollIntoView()
}

// View renders the name list panel.
func (m NameListModel) View() string {
	title := TitleStyle.Render(fmt.Sprintf("NAMES (%d)", len(m.names)))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	if len(m.names) == 0 {
		b.WriteString(HintStyle.Render("No configurations"))
	} else {
		visible := m.visibleRows()
		end := m.offset + visible
		if end > len(m.names) {
			end = len(m.names)
		}
		for i := m.offset; i < end; i++ {
			if i == m.cursor {
				b.WriteString(SelectedStyle.Render("> " + m.names[i]))
			} else {
				b.WriteString(ListItemStyle.Render("  " + m.names[i]))
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.height > 0 {
		style = style.Height(m.height - 2)
	}
	return style.Render(b.String())
}

// visibleRows returns how many names fit inside the border and title.
func (m NameListModel) visibleRows() int {
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollIntoView adjusts the offset so the cursor stays visible.
func (m *NameListModel) scrollIntoView() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
