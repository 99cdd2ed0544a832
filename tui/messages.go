// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: Each type wraps a panel event settlement for the tea.Msg interface.
package tui

// NamesLoadedMsg carries the settlement of a name-list fetch.
type NamesLoadedMsg struct {
	Gen   uint64
	Names []string
	Err   error
}

// ContentLoadedMsg carries the settlement of a content fetch.
type ContentLoadedMsg struct {
	Gen uint64
	Raw []byte
	Err error
}

// SaveResultMsg carries the settlement of a save request.
type SaveResultMsg struct {
	Err error
}

// NotificationExpiredMsg signals that a notification's display timer fired.
type NotificationExpiredMsg struct {
	Seq uint64
}
