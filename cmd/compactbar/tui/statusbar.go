package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with the plugin state and key bindings.
type StatusBar struct {
	state   string
	tab     string
	tabs    int
	redraws int
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{state: "awaiting-permission"}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar from the emulator state.
func (s *StatusBar) Update(state, tab string, tabs, redraws int) {
	s.state = state
	s.tab = tab
	s.tabs = tabs
	s.redraws = redraws
}

// View renders the status bar.
func (s StatusBar) View() string {
	left := StatusBarStateStyle.Render(s.state) + " " +
		StatusBarTextStyle.Render(fmt.Sprintf("%s · %d tabs · %d redraws", s.tab, s.tabs, s.redraws))

	shortcuts := []string{
		StatusBarKeyStyle.Render("n") + ": new",
		StatusBarKeyStyle.Render("x") + ": close",
		StatusBarKeyStyle.Render("Tab") + ": next",
		StatusBarKeyStyle.Render("m") + ": mode",
		StatusBarKeyStyle.Render("l") + ": lock",
		StatusBarKeyStyle.Render("q") + ": quit",
	}
	right := strings.Join(shortcuts, " · ")

	leftWidth := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right

	return StatusBarStyle.Width(s.width).Render(content)
}
