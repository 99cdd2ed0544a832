// ABOUTME: Bubble Tea sub-model rendering the transient success/error notification line.
// ABOUTME: Shows the active notice with a dismiss hint, or nothing when no notice is open.
package tui

import (
	"github.com/classkit/classdeck/panel"
)

// NoticeModel renders the panel's current notification.
type NoticeModel struct {
	notice *panel.Notification
	width  int
}

// NewNoticeModel creates an empty NoticeModel.
func NewNoticeModel() NoticeModel {
	return NoticeModel{}
}

// Set replaces the displayed notification. Pass nil to clear.
func (m *NoticeModel) Set(n *panel.Notification) {
	m.notice = n
}

// IsOpen reports whether a notification is currently shown.
func (m NoticeModel) IsOpen() bool {
	return m.notice != nil
}

// SetWidth sets the available width for rendering.
func (m *NoticeModel) SetWidth(w int) {
	m.width = w
}

// View renders the notification line, or an empty line when none is open.
func (m NoticeModel) View() string {
	if m.notice == nil {
		return ""
	}
	line := StyleForSeverity(m.notice.Severity).Render(m.notice.Message)
	return line + HintStyle.Render("  (x to dismiss)")
}
