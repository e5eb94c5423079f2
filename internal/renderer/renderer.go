// Package renderer holds the state the tab bar is drawn from and decides
// whether an update changes it.
package renderer

import (
	"slices"

	"github.com/ruminaider/compactbar/internal/dirty"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/ruminaider/compactbar/internal/layout"
)

// Renderer owns the latest mode, tab list, active tab and derived segments.
// len(segments) == len(tabs) holds after every update.
type Renderer struct {
	mode         host.ModeInfo
	tabs         []host.TabInfo
	segments     []layout.Segment
	activeTabIdx int
}

// New returns an empty renderer in normal mode with no tabs.
func New() *Renderer {
	return &Renderer{}
}

// View is the read-only input for composing a frame.
type View struct {
	Mode         host.ModeInfo
	ActiveTabIdx int
	Segments     []layout.Segment
}

// UpdateMode replaces the mode. An unchanged mode is Clean.
func (r *Renderer) UpdateMode(mode host.ModeInfo) dirty.Flag {
	if r.mode == mode {
		return dirty.Clean
	}
	r.mode = mode
	return dirty.Dirty
}

// UpdateTabs replaces the tab list and active index and regenerates every
// segment. An unchanged pair is Clean.
func (r *Renderer) UpdateTabs(activeTabIdx int, tabs []host.TabInfo) dirty.Flag {
	if r.activeTabIdx == activeTabIdx && slices.Equal(r.tabs, tabs) {
		return dirty.Clean
	}
	r.tabs = slices.Clone(tabs)
	r.segments = layout.Segments(len(r.tabs))
	r.activeTabIdx = activeTabIdx
	return dirty.Dirty
}

// View returns a snapshot of the state a frame is built from.
func (r *Renderer) View() View {
	return View{
		Mode:         r.mode,
		ActiveTabIdx: r.activeTabIdx,
		Segments:     slices.Clone(r.segments),
	}
}

// Mode returns the current mode.
func (r *Renderer) Mode() host.ModeInfo { return r.mode }

// ActiveTabIdx returns the 0-based index of the active tab.
func (r *Renderer) ActiveTabIdx() int { return r.activeTabIdx }

// TabCount returns the number of known tabs.
func (r *Renderer) TabCount() int { return len(r.tabs) }

// NextTabIdx is the scroll-up target. See layout.NextIndex.
func (r *Renderer) NextTabIdx() int {
	return layout.NextIndex(r.activeTabIdx, len(r.tabs))
}

// PrevTabIdx is the scroll-down target.
func (r *Renderer) PrevTabIdx() int {
	return layout.PrevIndex(r.activeTabIdx)
}

// TargetTab resolves a click at column to a tab other than the active one.
func (r *Renderer) TargetTab(column int) (int, bool) {
	return layout.TargetTab(r.segments, r.activeTabIdx, column)
}
