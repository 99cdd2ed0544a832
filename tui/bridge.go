// ABOUTME: Bridge converting panel commands into Bubble Tea commands that run against the REST client.
// ABOUTME: Provides tea.Cmd factories for fetches, saves, and notification expiry timers.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/classkit/classdeck/client"
	"github.com/classkit/classdeck/panel"
)

// DispatchCmds converts the commands emitted by a panel event handler into a
// single Bubble Tea command. Returns nil when there is nothing to run.
func DispatchCmds(ctx context.Context, api *client.Client, cmds []panel.Command) tea.Cmd {
	var out []tea.Cmd
	for _, c := range cmds {
		switch c := c.(type) {
		case panel.FetchNames:
			out = append(out, FetchNamesCmd(ctx, api, c))
		case panel.FetchContent:
			out = append(out, FetchContentCmd(ctx, api, c))
		case panel.PostSave:
			out = append(out, SaveCmd(ctx, api, c))
		case panel.StartNotificationTimer:
			out = append(out, NotificationTimerCmd(c))
		}
	}
	if len(out) == 0 {
		return nil
	}
	if len(out) == 1 {
		return out[0]
	}
	return tea.Batch(out...)
}

// FetchNamesCmd returns a tea.Cmd that lists the category's names and
// delivers a NamesLoadedMsg tagged with the request generation.
func FetchNamesCmd(ctx context.Context, api *client.Client, cmd panel.FetchNames) tea.Cmd {
	return func() tea.Msg {
		names, err := api.ListNames(ctx, cmd.Category)
		return NamesLoadedMsg{Gen: cmd.Gen, Names: names, Err: err}
	}
}

// FetchContentCmd returns a tea.Cmd that fetches one resource's content and
// delivers a ContentLoadedMsg tagged with the request generation.
func FetchContentCmd(ctx context.Context, api *client.Client, cmd panel.FetchContent) tea.Cmd {
	return func() tea.Msg {
		raw, err := api.GetContent(ctx, cmd.Category, cmd.Name)
		return ContentLoadedMsg{Gen: cmd.Gen, Raw: raw, Err: err}
	}
}

// SaveCmd returns a tea.Cmd that posts edited content and delivers a
// SaveResultMsg.
func SaveCmd(ctx context.Context, api *client.Client, cmd panel.PostSave) tea.Cmd {
	return func() tea.Msg {
		err := api.SaveContent(ctx, cmd.Category, cmd.Name, cmd.Content)
		return SaveResultMsg{Err: err}
	}
}

// NotificationTimerCmd returns a tea.Cmd that fires a NotificationExpiredMsg
// for the given notification sequence after its TTL.
func NotificationTimerCmd(cmd panel.StartNotificationTimer) tea.Cmd {
	return tea.Tick(cmd.TTL, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{Seq: cmd.Seq}
	})
}
