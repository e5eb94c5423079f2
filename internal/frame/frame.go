// Package frame paints the tab bar: numbered tab segments separated by single
// spaces, followed by a "(MODE)" indicator and a fill to the end of the line.
package frame

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/layout"
)

// Frame is everything needed to paint one line.
type Frame struct {
	Mode      host.ModeInfo
	ActiveTab int
	Segments  []layout.Segment
	Styles    Styles
	ShowMode  bool
}

// Render paints the frame. A positive width pads the line with the fill style
// and truncates anything beyond it. A frame without segments is empty.
func (f Frame) Render(width int) string {
	if len(f.Segments) == 0 {
		return ""
	}

	parts := make([]string, 0, len(f.Segments)+1)
	for _, s := range f.Segments {
		style := f.Styles.InactiveTab
		if s.Index == f.ActiveTab {
			style = f.Styles.ActiveTab
		}
		parts = append(parts, style.Render(s.Label))
	}
	if f.ShowMode {
		parts = append(parts,
			f.Styles.Fill.Render("(")+f.Styles.Mode.Render(f.Mode.Mode.String())+f.Styles.Fill.Render(")"))
	}

	line := strings.Join(parts, f.Styles.Fill.Render(" "))
	if width <= 0 {
		return line
	}
	if w := ansi.StringWidth(line); w < width {
		return line + f.Styles.Fill.Render(strings.Repeat(" ", width-w))
	} else if w > width {
		return ansi.Truncate(line, width, "")
	}
	return line
}

func (f Frame) String() string {
	return f.Render(0)
}

// Width returns the printable width of a rendered line.
func Width(line string) int {
	return ansi.StringWidth(line)
}
