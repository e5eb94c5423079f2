package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette for the emulator chrome. The bar itself is painted
// by the plugin with its configured flavor.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Pane styles.
var (
	// HeaderStyle titles the host log pane.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// ClosedBarStyle replaces the bar once the plugin closed itself.
	ClosedBarStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Background(colorSurface0).
			Italic(true)

	// SeparatorStyle is the thin rule between the bar and the log.
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)
)

// Host log line styles.
var (
	// EventLineStyle marks events delivered to the plugin.
	EventLineStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	// CommandLineStyle marks commands the plugin sent to the host.
	CommandLineStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	// RedrawLineStyle marks redraw decisions.
	RedrawLineStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusBarStateStyle shows the plugin's permission state.
	StatusBarStateStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 1)

	// StatusBarTextStyle is plain status text.
	StatusBarTextStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0)
)
