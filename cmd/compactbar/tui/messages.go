package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/compactbar/internal/host"
)

// HostEventMsg delivers one host event to the plugin.
type HostEventMsg struct{ Event host.Event }

// deliver wraps events as commands that are processed in order.
func deliver(events ...host.Event) tea.Cmd {
	if len(events) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(events))
	for i, ev := range events {
		cmds[i] = func() tea.Msg { return HostEventMsg{Event: ev} }
	}
	return tea.Sequence(cmds...)
}
