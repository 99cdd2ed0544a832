// ABOUTME: Top-level Bubble Tea AppModel that composes the configuration panel's TUI sub-panels.
// ABOUTME: Implements tea.Model (Init, Update, View), routes settlements into the panel state machine, and runs its commands.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/classkit/classdeck/client"
	"github.com/classkit/classdeck/panel"
)

// AppModel is the top-level Bubble Tea model. All state transitions go
// through the embedded panel; the sub-models only render what the panel
// holds.
type AppModel struct {
	pnl *panel.Panel
	api *client.Client
	ctx context.Context

	tabs   CategoryBarModel
	list   NameListModel
	editor EditorPanelModel
	notice NoticeModel
	status StatusBarModel
	spin   spinner.Model

	width  int
	height int
}

// NewAppModel creates an AppModel wired to the given backend client.
func NewAppModel(ctx context.Context, api *client.Client) AppModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := AppModel{
		pnl:    panel.New(),
		api:    api,
		ctx:    ctx,
		tabs:   NewCategoryBarModel(),
		list:   NewNameListModel(),
		editor: NewEditorPanelModel(),
		notice: NewNoticeModel(),
		status: NewStatusBarModel(api.BaseURL()),
		spin:   sp,
	}
	m.sync()
	return m
}

// Panel exposes the underlying state machine for tests and external wiring.
func (m *AppModel) Panel() *panel.Panel {
	return m.pnl
}

// Init implements tea.Model. Kicks off the initial name-list fetch and the
// spinner tick loop.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		DispatchCmds(m.ctx, m.api, m.pnl.Init()),
		m.spin.Tick,
	)
}

// Update implements tea.Model. Routes settlements into the panel and runs
// whatever follow-up commands it emits.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case NamesLoadedMsg:
		cmds := m.pnl.NamesLoaded(msg.Gen, msg.Names, msg.Err)
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case ContentLoadedMsg:
		cmds := m.pnl.ContentLoaded(msg.Gen, msg.Raw, msg.Err)
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case SaveResultMsg:
		cmds := m.pnl.SaveFinished(msg.Err)
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case NotificationExpiredMsg:
		m.pnl.NotificationExpired(msg.Seq)
		m.sync()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View implements tea.Model. Renders the tab strip, name list, editor,
// notice line, and status bar.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.editor.View())

	var b strings.Builder
	b.WriteString(m.tabs.View())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.notice.View())
	b.WriteString("\n")
	b.WriteString(m.status.View())
	return b.String()
}

// handleWindowSize recomputes the layout and pushes sizes into the sub-panels.
func (m AppModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// One line each for tabs, notice, and status bar.
	bodyHeight := m.height - 3
	if bodyHeight < 4 {
		bodyHeight = 4
	}
	listWidth := m.width * 30 / 100
	if listWidth < 16 {
		listWidth = 16
	}
	editorWidth := m.width - listWidth
	if editorWidth < 20 {
		editorWidth = 20
	}

	m.tabs.SetWidth(m.width)
	m.list.SetSize(listWidth, bodyHeight)
	m.editor.SetSize(editorWidth, bodyHeight)
	m.notice.SetWidth(m.width)
	m.status.SetWidth(m.width)
	return m, nil
}

// handleKeyMsg processes keyboard input. While editing, keys go to the
// textarea except for save and cancel; otherwise they drive navigation.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status.ClearAck()

	if m.pnl.IsEditing() {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.pnl.CancelEdit()
			m.editor.StopEdit()
			m.sync()
			return m, nil
		case "ctrl+s":
			m.pnl.SetContent(m.editor.Value())
			cmds := m.pnl.Save()
			m.sync()
			return m, DispatchCmds(m.ctx, m.api, cmds)
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "[", "shift+tab":
		idx := (m.pnl.CategoryIndex() + len(panel.ResourceTypes) - 1) % len(panel.ResourceTypes)
		cmds := m.pnl.SelectCategory(idx)
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case "right", "]", "tab":
		idx := (m.pnl.CategoryIndex() + 1) % len(panel.ResourceTypes)
		cmds := m.pnl.SelectCategory(idx)
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case "up", "k":
		if name, ok := m.list.MoveUp(); ok {
			cmds := m.pnl.SelectName(name)
			m.sync()
			return m, DispatchCmds(m.ctx, m.api, cmds)
		}
		return m, nil

	case "down", "j":
		if name, ok := m.list.MoveDown(); ok {
			cmds := m.pnl.SelectName(name)
			m.sync()
			return m, DispatchCmds(m.ctx, m.api, cmds)
		}
		return m, nil

	case "enter", "e":
		if m.pnl.StartEdit() {
			m.editor.StartEdit(m.pnl.Content())
			m.sync()
		}
		return m, nil

	case "r":
		cmds := m.pnl.SelectCategory(m.pnl.CategoryIndex())
		m.sync()
		return m, DispatchCmds(m.ctx, m.api, cmds)

	case "x":
		m.pnl.CloseNotification()
		m.sync()
		return m, nil

	case "n":
		m.status.SetAck(m.pnl.AddResource())
		return m, nil

	case "d":
		m.status.SetAck(m.pnl.DeleteResource())
		return m, nil
	}

	// Any other key is incidental input; it must not dismiss the notice.
	m.pnl.Clickaway()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// sync pushes the panel's state into the rendering sub-models.
func (m *AppModel) sync() {
	m.tabs.SetActive(m.pnl.CategoryIndex())
	m.list.SetNames(m.pnl.Names(), m.pnl.Selected())

	if !m.pnl.IsEditing() {
		m.editor.StopEdit()
		m.editor.SetContent(m.pnl.Content())
	}

	m.notice.Set(m.pnl.Notice())

	m.status.SetCategory(m.pnl.Category().Label(), len(m.pnl.Names()))
	m.status.SetSelected(m.pnl.Selected())
	switch {
	case m.pnl.IsLoading():
		m.status.SetMode("loading " + m.spin.View())
	case m.pnl.IsEditing():
		m.status.SetMode("edit (ctrl+s save, esc cancel)")
	default:
		m.status.SetMode("view")
	}
}
