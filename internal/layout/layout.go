// Package layout derives the positioned tab segments of the bar and resolves
// pointer columns against them.
//
// Segments are laid out left to right with exactly one separator column
// between neighbours:
//
//	1 2 3 (NORMAL)
//	^ ^ ^
//	0 2 4
//
// Separator columns are not clickable.
package layout

import "strconv"

// Segment is the clickable label for one tab.
type Segment struct {
	Index int
	Label string
}

// NewSegment returns the segment for the tab at the 0-based index. Its label
// is the 1-based position.
func NewSegment(index int) Segment {
	return Segment{Index: index, Label: strconv.Itoa(index + 1)}
}

// Len is the number of columns the label occupies.
func (s Segment) Len() int {
	return len(s.Label)
}

// Segments builds one segment per tab, in tab order.
func Segments(count int) []Segment {
	if count <= 0 {
		return nil
	}
	out := make([]Segment, count)
	for i := range out {
		out[i] = NewSegment(i)
	}
	return out
}

// Width is the number of columns the segments and the separators between them
// occupy.
func Width(segments []Segment) int {
	if len(segments) == 0 {
		return 0
	}
	w := len(segments) - 1
	for _, s := range segments {
		w += s.Len()
	}
	return w
}

// HitTest returns the segment spanning column, if any.
func HitTest(segments []Segment, column int) (Segment, bool) {
	cursor := 0
	for _, s := range segments {
		if column >= cursor && column < cursor+s.Len() {
			return s, true
		}
		cursor += s.Len() + 1
	}
	return Segment{}, false
}

// TargetTab resolves a click to the tab it should switch to. Clicking the
// active tab, a separator, or anything past the last segment yields no target.
func TargetTab(segments []Segment, active, column int) (int, bool) {
	s, ok := HitTest(segments, column)
	if !ok || s.Index == active {
		return 0, false
	}
	return s.Index, true
}

// NextIndex is the tab after active. It may equal count, which is one past the
// last tab; callers decide what to do with an out-of-range target.
func NextIndex(active, count int) int {
	return min(active+1, count)
}

// PrevIndex is the tab before active, saturating at 0.
func PrevIndex(active int) int {
	return max(active-1, 0)
}
