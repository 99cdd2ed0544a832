// ABOUTME: Explicit state machine owning the configuration panel's view state.
// ABOUTME: Event-handler methods mutate state deterministically and return Command values describing fetches, saves, and timers.
package panel

import (
	"bytes"
	"encoding/json"
	"time"
)

// Fixed user-facing messages. The error messages are deliberately
// category-agnostic; recovery is always manual re-selection.
const (
	MsgListFetchFailed    = "Failed to load configuration list."
	MsgContentFetchFailed = "Failed to load configuration content."
	MsgSaveFailed         = "Failed to save configuration."
	MsgSaved              = "Configuration saved."
	MsgInvalidJSON        = "Edited content is not valid JSON."

	MsgAddNotImplemented    = "Adding resources is not implemented yet."
	MsgDeleteNotImplemented = "Deleting resources is not implemented yet."
)

// NotificationTTL is how long a notification stays visible before it
// auto-dismisses.
const NotificationTTL = 3 * time.Second

// Severity classifies a notification as a success or an error notice.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a transient user-facing message. Seq identifies which
// expiry timer belongs to it; a newer notification invalidates older timers.
type Notification struct {
	Message  string
	Severity Severity
	Seq      uint64
}

// Command describes a side effect the caller must execute after an event
// handler returns. The panel never performs I/O itself; it only records
// state transitions and emits commands.
type Command interface {
	isCommand()
}

// FetchNames requests the name list for a category. Gen tags the request so
// a settlement from an abandoned selection can be recognized as stale.
type FetchNames struct {
	Gen      uint64
	Category ResourceType
}

// FetchContent requests the JSON content of one named resource.
type FetchContent struct {
	Gen      uint64
	Category ResourceType
	Name     string
}

// PostSave submits edited content for one named resource.
type PostSave struct {
	Category ResourceType
	Name     string
	Content  json.RawMessage
}

// StartNotificationTimer schedules auto-dismissal of the notification
// identified by Seq.
type StartNotificationTimer struct {
	Seq uint64
	TTL time.Duration
}

func (FetchNames) isCommand()             {}
func (FetchContent) isCommand()           {}
func (PostSave) isCommand()               {}
func (StartNotificationTimer) isCommand() {}

// Panel owns the view state. All fields are mutated only by the event
// handlers below; callers read state through the accessor methods. A single
// goroutine must drive the panel — settlements arriving from concurrent
// fetches are serialized by the caller's event loop.
type Panel struct {
	category ResourceType
	names    []string
	selected string // empty means no selection
	content  string // pretty-printed JSON shown/edited
	editing  bool
	pending  int // outstanding fetch/save requests
	notice   *Notification

	namesGen   uint64
	contentGen uint64
	noticeSeq  uint64
}

// New creates a Panel with the first category active and nothing loaded.
func New() *Panel {
	return &Panel{}
}

// Init emits the initial name-list fetch for the first category. Call once
// when the panel is mounted.
func (p *Panel) Init() []Command {
	return p.fetchNames()
}

// SelectCategory activates the category at the given index, deselects the
// current name, and re-runs the name-list fetch. Out-of-range indexes are
// ignored. Re-selecting the active category acts as a refresh.
func (p *Panel) SelectCategory(index int) []Command {
	if index < 0 || index >= len(ResourceTypes) {
		return nil
	}
	p.category = ResourceTypes[index]
	p.selected = ""
	p.content = ""
	p.editing = false
	// No replacement content fetch is issued here; invalidate the content
	// generation so an in-flight fetch for the abandoned selection cannot
	// repopulate the cleared content.
	p.contentGen++
	return p.fetchNames()
}

// SelectName selects a name from the loaded list and fetches its content.
// Selecting while editing silently discards unsaved edits. An empty name
// deselects and clears the content without issuing a request; names not in
// the loaded list are ignored.
func (p *Panel) SelectName(name string) []Command {
	if name == "" {
		p.selected = ""
		p.content = ""
		p.editing = false
		p.contentGen++
		return nil
	}
	if !p.hasName(name) {
		return nil
	}
	p.selected = name
	p.editing = false
	return p.fetchContent()
}

// NamesLoaded applies the settlement of a FetchNames command. A settlement
// whose generation is stale releases the loading accounting but is otherwise
// discarded, so an abandoned category cannot overwrite newer state. On
// success with a non-empty list the first name is auto-selected and its
// content fetch is emitted.
func (p *Panel) NamesLoaded(gen uint64, names []string, err error) []Command {
	p.release()
	if gen != p.namesGen {
		return nil
	}
	if err != nil {
		p.names = nil
		p.selected = ""
		p.content = ""
		return p.notify(MsgListFetchFailed, SeverityError)
	}
	p.names = names
	if len(names) == 0 {
		p.selected = ""
		p.content = ""
		return nil
	}
	p.selected = names[0]
	return p.fetchContent()
}

// ContentLoaded applies the settlement of a FetchContent command. Content is
// re-indented with two spaces, preserving the key order the backend returned.
// Unparsable payloads take the same error path as a failed fetch.
func (p *Panel) ContentLoaded(gen uint64, raw []byte, err error) []Command {
	p.release()
	if gen != p.contentGen {
		return nil
	}
	if err != nil {
		p.content = ""
		return p.notify(MsgContentFetchFailed, SeverityError)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		p.content = ""
		return p.notify(MsgContentFetchFailed, SeverityError)
	}
	p.content = buf.String()
	return nil
}

// StartEdit enters edit mode. Returns false when no name is selected.
func (p *Panel) StartEdit() bool {
	if p.selected == "" {
		return false
	}
	p.editing = true
	return true
}

// SetContent replaces the edited text. Ignored outside edit mode.
func (p *Panel) SetContent(text string) {
	if !p.editing {
		return
	}
	p.content = text
}

// CancelEdit leaves edit mode without saving. The edited text stays visible
// until the next content load overwrites it.
func (p *Panel) CancelEdit() {
	p.editing = false
}

// Save validates the edited text and emits the save request. With no
// selection it is a no-op. Invalid JSON raises a validation notification and
// no request is issued.
func (p *Panel) Save() []Command {
	if p.selected == "" {
		return nil
	}
	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(p.content), &parsed); err != nil {
		return p.notify(MsgInvalidJSON, SeverityError)
	}
	p.pending++
	cmds := []Command{PostSave{Category: p.category, Name: p.selected, Content: parsed}}
	return cmds
}

// SaveFinished applies the settlement of a PostSave command. Success leaves
// edit mode and raises a success notice; failure leaves edit mode unchanged
// so the user can retry.
func (p *Panel) SaveFinished(err error) []Command {
	p.release()
	if err != nil {
		return p.notify(MsgSaveFailed, SeverityError)
	}
	p.editing = false
	return p.notify(MsgSaved, SeveritySuccess)
}

// CloseNotification dismisses the current notification explicitly.
func (p *Panel) CloseNotification() {
	p.notice = nil
}

// Clickaway is an incidental dismiss request from a pointer or key event
// outside the notification. It is ignored; only CloseNotification or expiry
// close the notice.
func (p *Panel) Clickaway() {}

// NotificationExpired dismisses the notification whose timer fired, unless a
// newer notification has replaced it in the meantime.
func (p *Panel) NotificationExpired(seq uint64) {
	if p.notice != nil && p.notice.Seq == seq {
		p.notice = nil
	}
}

// AddResource is a placeholder. It acknowledges the request and mutates
// nothing.
func (p *Panel) AddResource() string {
	return MsgAddNotImplemented
}

// DeleteResource is a placeholder. It acknowledges the request and mutates
// nothing.
func (p *Panel) DeleteResource() string {
	return MsgDeleteNotImplemented
}

// Category returns the active resource category.
func (p *Panel) Category() ResourceType {
	return p.category
}

// CategoryIndex returns the active category's index in ResourceTypes.
func (p *Panel) CategoryIndex() int {
	return int(p.category)
}

// Names returns the loaded name list for the active category.
func (p *Panel) Names() []string {
	return p.names
}

// Selected returns the selected name, or the empty string when nothing is
// selected.
func (p *Panel) Selected() string {
	return p.selected
}

// Content returns the pretty-printed JSON text currently shown or edited.
func (p *Panel) Content() string {
	return p.content
}

// IsLoading reports whether any fetch or save request is outstanding.
func (p *Panel) IsLoading() bool {
	return p.pending > 0
}

// IsEditing reports whether the user is actively modifying the content.
func (p *Panel) IsEditing() bool {
	return p.editing
}

// Notice returns the current notification, or nil when none is shown.
func (p *Panel) Notice() *Notification {
	return p.notice
}

// fetchNames bumps the names generation and emits the list fetch.
func (p *Panel) fetchNames() []Command {
	p.namesGen++
	p.pending++
	return []Command{FetchNames{Gen: p.namesGen, Category: p.category}}
}

// fetchContent bumps the content generation and emits the content fetch for
// the selected name.
func (p *Panel) fetchContent() []Command {
	p.contentGen++
	p.pending++
	return []Command{FetchContent{Gen: p.contentGen, Category: p.category, Name: p.selected}}
}

// release decrements the pending-request counter. Every settlement releases,
// stale or not, so the loading flag cannot leak.
func (p *Panel) release() {
	if p.pending > 0 {
		p.pending--
	}
}

// notify replaces the current notification and schedules its expiry.
func (p *Panel) notify(message string, sev Severity) []Command {
	p.noticeSeq++
	p.notice = &Notification{Message: message, Severity: sev, Seq: p.noticeSeq}
	return []Command{StartNotificationTimer{Seq: p.noticeSeq, TTL: NotificationTTL}}
}

func (p *Panel) hasName(name string) bool {
	for _, n := range p.names {
		if n == name {
			return true
		}
	}
	return false
}
