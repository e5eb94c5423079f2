package frame

import (
	"sort"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is the catppuccin flavor used when none is configured.
const DefaultTheme = "mocha"

var flavors = map[string]catppuccin.Flavor{
	"latte":     catppuccin.Latte,
	"frappe":    catppuccin.Frappe,
	"macchiato": catppuccin.Macchiato,
	"mocha":     catppuccin.Mocha,
}

// Themes returns the known flavor names, sorted.
func Themes() []string {
	names := make([]string, 0, len(flavors))
	for name := range flavors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Styles are the four styles a frame is painted with.
type Styles struct {
	Fill        lipgloss.Style
	Mode        lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
}

// NewStyles builds the styles for a catppuccin flavor. Unknown names fall
// back to DefaultTheme.
func NewStyles(theme string) Styles {
	flavor, ok := flavors[theme]
	if !ok {
		flavor = flavors[DefaultTheme]
	}

	mantle := lipgloss.Color(flavor.Mantle().Hex)
	return Styles{
		Fill: lipgloss.NewStyle().
			Faint(true).
			Background(mantle),
		Mode: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(flavor.Text().Hex)).
			Background(mantle),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(flavor.Blue().Hex)).
			Background(lipgloss.Color(flavor.Surface0().Hex)),
		InactiveTab: lipgloss.NewStyle().
			Faint(true).
			Foreground(lipgloss.Color(flavor.Subtext0().Hex)).
			Background(mantle),
	}
}
