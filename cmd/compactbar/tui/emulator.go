package tui

import (
	"fmt"
	"strings"

	"github.com/ruminaider/compactbar/internal/host"
)

// emulator is the Host the plugin talks to inside the demo. Commands mutate
// the session and queue the events a real multiplexer would send back.
type emulator struct {
	session    *Session
	outbox     []host.Event
	lines      []string
	selectable bool
	closed     bool
}

var _ host.Host = (*emulator)(nil)

func newEmulator(s *Session) *emulator {
	return &emulator{session: s, selectable: true}
}

func (e *emulator) logCommand(format string, args ...any) {
	e.lines = append(e.lines, CommandLineStyle.Render("← "+fmt.Sprintf(format, args...)))
}

func (e *emulator) logEvent(ev host.Event) {
	e.lines = append(e.lines, EventLineStyle.Render("→ "+describe(ev)))
}

func (e *emulator) logRedraw(redraw bool) {
	if redraw {
		e.lines = append(e.lines, RedrawLineStyle.Render("  redraw"))
	}
}

func (e *emulator) RequestPermission(perms ...host.PermissionType) {
	names := make([]string, len(perms))
	for i, p := range perms {
		names[i] = string(p)
	}
	e.logCommand("RequestPermission %s", strings.Join(names, ", "))
}

func (e *emulator) Subscribe(events ...host.EventType) {
	names := make([]string, len(events))
	for i, ev := range events {
		names[i] = string(ev)
	}
	e.logCommand("Subscribe %s", strings.Join(names, ", "))
}

func (e *emulator) SetSelectable(selectable bool) {
	e.selectable = selectable
	e.logCommand("SetSelectable %t", selectable)
}

func (e *emulator) CloseSelf() {
	e.closed = true
	e.logCommand("CloseSelf")
}

func (e *emulator) SwitchTabTo(position uint32) {
	e.logCommand("SwitchTabTo %d", position)
	if e.session.SetActive(int(position) - 1) {
		e.outbox = append(e.outbox, e.session.TabUpdate())
	}
}

// takeOutbox returns and clears the queued events.
func (e *emulator) takeOutbox() []host.Event {
	out := e.outbox
	e.outbox = nil
	return out
}

func describe(ev host.Event) string {
	switch ev := ev.(type) {
	case host.ModeUpdate:
		return fmt.Sprintf("ModeUpdate %s", ev.Mode.Mode)
	case host.TabUpdate:
		active := -1
		for i, t := range ev.Tabs {
			if t.Active {
				active = i
			}
		}
		return fmt.Sprintf("TabUpdate %d tabs, active %d", len(ev.Tabs), active+1)
	case host.Mouse:
		return fmt.Sprintf("Mouse %s col %d", ev.Action, ev.Column)
	case host.PermissionRequestResult:
		return fmt.Sprintf("PermissionRequestResult %s", ev.Status)
	default:
		return string(ev.Type())
	}
}
