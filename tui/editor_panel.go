// ABOUTME: Bubble Tea sub-model for viewing and editing a resource's pretty-printed JSON content.
// ABOUTME: Uses a bubbles viewport in view mode and a bubbles textarea while editing.
package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorPanelModel shows the selected resource's JSON content and hosts the
// textarea during edits.
type EditorPanelModel struct {
	viewport viewport.Model
	textarea textarea.Model
	editing  bool
	width    int
	height   int
}

// NewEditorPanelModel creates an EditorPanelModel in view mode.
func NewEditorPanelModel() EditorPanelModel {
	vp := viewport.New(80, 20)
	ta := textarea.New()
	ta.Placeholder = "{}"
	ta.CharLimit = 0
	return EditorPanelModel{
		viewport: vp,
		textarea: ta,
	}
}

// SetContent replaces the viewed content. Has no effect on an active edit;
// the caller decides when loaded content may overwrite the editor.
func (m *EditorPanelModel) SetContent(content string) {
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// StartEdit enters edit mode seeded with the given content.
func (m *EditorPanelModel) StartEdit(content string) {
	m.textarea.SetValue(content)
	m.textarea.Focus()
	m.editing = true
}

// StopEdit leaves edit mode.
func (m *EditorPanelModel) StopEdit() {
	if !m.editing {
		return
	}
	m.editing = false
	m.textarea.Blur()
}

// IsEditing reports whether the textarea is active.
func (m EditorPanelModel) IsEditing() bool {
	return m.editing
}

// Value returns the current textarea text.
func (m EditorPanelModel) Value() string {
	return m.textarea.Value()
}

// SetSize sets the available dimensions for both the viewport and textarea.
func (m *EditorPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	innerW := w - 2
	innerH := h - 3
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	m.viewport.Width = innerW
	m.viewport.Height = innerH
	m.textarea.SetWidth(innerW)
	m.textarea.SetHeight(innerH)
}

// Update forwards messages to the textarea while editing, or to the viewport
// for scrolling in view mode.
func (m EditorPanelModel) Update(msg tea.Msg) (EditorPanelModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.editing {
		m.textarea, cmd = m.textarea.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the editor panel with a mode-dependent title.
func (m EditorPanelModel) View() string {
	title := "CONTENT"
	var body string
	if m.editing {
		title = "CONTENT (editing)"
		body = m.textarea.View()
	} else {
		body = m.viewport.View()
	}

	rendered := TitleStyle.Render(title) + "\n" + body

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.height > 0 {
		style = style.Height(m.height - 2)
	}
	return style.Render(rendered)
}
