package host

import (
	"fmt"
	"strings"
)

// Event is a single host notification. The set of variants is closed:
// ModeUpdate, TabUpdate, Mouse, PermissionRequestResult and Unknown.
type Event interface {
	Type() EventType
	event()
}

// ModeUpdate carries the new input mode.
type ModeUpdate struct {
	Mode ModeInfo
}

// TabUpdate carries the full, ordered tab list.
type TabUpdate struct {
	Tabs []TabInfo
}

// Mouse is a pointer event. Line and Column are 0-based; Lines is the scroll
// distance for wheel actions.
type Mouse struct {
	Action MouseAction
	Line   int
	Column int
	Lines  int
}

// PermissionRequestResult answers the permission request made at load time.
type PermissionRequestResult struct {
	Status PermissionStatus
}

// Unknown stands in for any event kind the plugin does not understand.
type Unknown struct {
	Kind EventType
}

func (ModeUpdate) Type() EventType              { return EventModeUpdate }
func (TabUpdate) Type() EventType               { return EventTabUpdate }
func (Mouse) Type() EventType                   { return EventMouse }
func (PermissionRequestResult) Type() EventType { return EventPermissionRequestResult }
func (u Unknown) Type() EventType               { return u.Kind }

func (ModeUpdate) event()              {}
func (TabUpdate) event()               {}
func (Mouse) event()                   {}
func (PermissionRequestResult) event() {}
func (Unknown) event()                 {}

// MouseAction distinguishes pointer events.
type MouseAction int

const (
	MouseLeftClick MouseAction = iota
	MouseRightClick
	MouseHold
	MouseRelease
	MouseScrollUp
	MouseScrollDown
)

var mouseActionNames = map[MouseAction]string{
	MouseLeftClick:  "LeftClick",
	MouseRightClick: "RightClick",
	MouseHold:       "Hold",
	MouseRelease:    "Release",
	MouseScrollUp:   "ScrollUp",
	MouseScrollDown: "ScrollDown",
}

func (a MouseAction) String() string {
	if name, ok := mouseActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("MouseAction(%d)", int(a))
}

// ParseMouseAction resolves names such as "LeftClick" or "scroll_up".
func ParseMouseAction(s string) (MouseAction, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", ""))
	for a, name := range mouseActionNames {
		if strings.ToLower(name) == norm {
			return a, nil
		}
	}
	return MouseLeftClick, fmt.Errorf("unknown mouse action %q", s)
}

// Click returns a left click at the given position.
func Click(line, column int) Mouse {
	return Mouse{Action: MouseLeftClick, Line: line, Column: column}
}

// Granted and Denied are the two permission results.
var (
	Granted = PermissionRequestResult{Status: PermissionGranted}
	Denied  = PermissionRequestResult{Status: PermissionDenied}
)
