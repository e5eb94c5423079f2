package host

import (
	"fmt"
	"strings"
)

// InputMode is the multiplexer's current input mode.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeLocked
	ModeResize
	ModePane
	ModeTab
	ModeScroll
	ModeEnterSearch
	ModeSearch
	ModeRenameTab
	ModeRenamePane
	ModeSession
	ModeMove
	ModePrompt
	ModeTmux
)

// AllModes lists every input mode in declaration order.
var AllModes = []InputMode{
	ModeNormal,
	ModeLocked,
	ModeResize,
	ModePane,
	ModeTab,
	ModeScroll,
	ModeEnterSearch,
	ModeSearch,
	ModeRenameTab,
	ModeRenamePane,
	ModeSession,
	ModeMove,
	ModePrompt,
	ModeTmux,
}

// String returns the label shown in the mode indicator.
func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeLocked:
		return "LOCKED"
	case ModeResize:
		return "RESIZE"
	case ModePane:
		return "PANE"
	case ModeTab:
		return "TAB"
	case ModeScroll:
		return "SCROLL"
	case ModeEnterSearch:
		return "ENTER SEARCH"
	case ModeSearch:
		return "SEARCH"
	case ModeRenameTab:
		return "RENAME TAB"
	case ModeRenamePane:
		return "RENAME PANE"
	case ModeSession:
		return "SESSION"
	case ModeMove:
		return "MOVE"
	case ModePrompt:
		return "PROMPT"
	case ModeTmux:
		return "TMUX"
	default:
		return "UNKNOWN"
	}
}

// ParseInputMode resolves a mode name such as "normal", "RENAME TAB" or
// "enter_search".
func ParseInputMode(s string) (InputMode, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for _, m := range AllModes {
		if m.String() == norm || strings.ReplaceAll(m.String(), " ", "") == norm {
			return m, nil
		}
	}
	return ModeNormal, fmt.Errorf("unknown input mode %q", s)
}

// ModeInfo is the mode state delivered with every mode update.
type ModeInfo struct {
	Mode        InputMode
	SessionName string
}

// TabInfo describes one open tab as reported by the host.
// The zero value is a valid, inactive tab at position 0.
type TabInfo struct {
	Position                int    `json:"position"`
	Name                    string `json:"name,omitempty"`
	Active                  bool   `json:"active"`
	PanesToHide             int    `json:"panes_to_hide,omitempty"`
	IsFullscreenActive      bool   `json:"is_fullscreen_active,omitempty"`
	IsSyncPanesActive       bool   `json:"is_sync_panes_active,omitempty"`
	AreFloatingPanesVisible bool   `json:"are_floating_panes_visible,omitempty"`
}

// PermissionType names a capability the plugin asks the host for.
type PermissionType string

const (
	ReadApplicationState   PermissionType = "ReadApplicationState"
	ChangeApplicationState PermissionType = "ChangeApplicationState"
)

// PermissionStatus is the host's answer to a permission request.
type PermissionStatus int

const (
	PermissionDenied PermissionStatus = iota
	PermissionGranted
)

func (s PermissionStatus) String() string {
	if s == PermissionGranted {
		return "Granted"
	}
	return "Denied"
}

// ParsePermissionStatus accepts "granted" or "denied" in any case.
func ParsePermissionStatus(s string) (PermissionStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "granted":
		return PermissionGranted, nil
	case "denied":
		return PermissionDenied, nil
	}
	return PermissionDenied, fmt.Errorf("unknown permission status %q", s)
}

// EventType names a kind of host event the plugin can subscribe to.
type EventType string

const (
	EventModeUpdate              EventType = "ModeUpdate"
	EventTabUpdate               EventType = "TabUpdate"
	EventMouse                   EventType = "Mouse"
	EventPermissionRequestResult EventType = "PermissionRequestResult"
)
