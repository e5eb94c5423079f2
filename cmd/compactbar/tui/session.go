package tui

import (
	"fmt"

	"github.com/ruminaider/compactbar/internal/host"
)

// Session is the emulated multiplexer state: an ordered tab list, the focused
// tab and the input mode. There is always at least one tab.
type Session struct {
	name   string
	tabs   []string // tab names in position order
	active int      // index of the focused tab
	mode   host.InputMode
}

// NewSession creates a session with the given tabs, focusing the first one.
// An empty list gets a single default tab.
func NewSession(name string, tabs []string) Session {
	if len(tabs) == 0 {
		tabs = []string{defaultTabName(0)}
	}
	return Session{name: name, tabs: append([]string(nil), tabs...)}
}

func defaultTabName(i int) string {
	return fmt.Sprintf("Tab #%d", i+1)
}

// ActiveTab returns the name of the focused tab.
func (s Session) ActiveTab() string {
	if s.active >= 0 && s.active < len(s.tabs) {
		return s.tabs[s.active]
	}
	return ""
}

// Active returns the 0-based index of the focused tab.
func (s Session) Active() int { return s.active }

// Len returns the number of tabs.
func (s Session) Len() int { return len(s.tabs) }

// Mode returns the current input mode.
func (s Session) Mode() host.InputMode { return s.mode }

// AddTab appends a tab and focuses it. An empty name gets a default one.
func (s *Session) AddTab(name string) {
	if name == "" {
		name = defaultTabName(len(s.tabs))
	}
	s.tabs = append(s.tabs, name)
	s.active = len(s.tabs) - 1
}

// SetActive focuses the tab at index i. It reports false when i is out of
// range or already focused.
func (s *Session) SetActive(i int) bool {
	if i < 0 || i >= len(s.tabs) || i == s.active {
		return false
	}
	s.active = i
	return true
}

// CycleNext focuses the next tab, wrapping around.
func (s *Session) CycleNext() {
	s.active = (s.active + 1) % len(s.tabs)
}

// CyclePrev focuses the previous tab, wrapping around.
func (s *Session) CyclePrev() {
	s.active = (s.active - 1 + len(s.tabs)) % len(s.tabs)
}

// CloseActive closes the focused tab; the tab before it takes focus. The last
// remaining tab cannot be closed.
func (s *Session) CloseActive() bool {
	if len(s.tabs) <= 1 {
		return false
	}
	s.tabs = append(s.tabs[:s.active], s.tabs[s.active+1:]...)
	if s.active > 0 {
		s.active--
	}
	return true
}

// NextMode advances through the input modes, wrapping around.
func (s *Session) NextMode() {
	s.mode = host.AllModes[(int(s.mode)+1)%len(host.AllModes)]
}

// ToggleLocked switches between locked and normal mode.
func (s *Session) ToggleLocked() {
	if s.mode == host.ModeLocked {
		s.mode = host.ModeNormal
		return
	}
	s.mode = host.ModeLocked
}

// TabUpdate builds the event the host sends after any tab change.
func (s Session) TabUpdate() host.TabUpdate {
	infos := make([]host.TabInfo, len(s.tabs))
	for i, name := range s.tabs {
		infos[i] = host.TabInfo{Position: i, Name: name, Active: i == s.active}
	}
	return host.TabUpdate{Tabs: infos}
}

// ModeUpdate builds the event the host sends after a mode change.
func (s Session) ModeUpdate() host.ModeUpdate {
	return host.ModeUpdate{Mode: host.ModeInfo{Mode: s.mode, SessionName: s.name}}
}
