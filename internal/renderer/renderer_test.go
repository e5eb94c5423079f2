package renderer

import (
	"testing"

	"github.com/ruminaider/compactbar/internal/dirty"
	"github.com/ruminaider/compactbar/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tabs(n, active int) []host.TabInfo {
	out := make([]host.TabInfo, n)
	for i := range out {
		out[i] = host.TabInfo{Position: i, Active: i == active}
	}
	return out
}

func TestUpdateModeIdempotent(t *testing.T) {
	r := New()
	locked := host.ModeInfo{Mode: host.ModeLocked}

	assert.Equal(t, dirty.Dirty, r.UpdateMode(locked))
	assert.Equal(t, dirty.Clean, r.UpdateMode(locked))
	assert.Equal(t, locked, r.Mode())
}

func TestUpdateModeInitialNormalIsClean(t *testing.T) {
	r := New()
	assert.Equal(t, dirty.Clean, r.UpdateMode(host.ModeInfo{Mode: host.ModeNormal}))
}

func TestUpdateModeSessionNameCounts(t *testing.T) {
	r := New()
	assert.Equal(t, dirty.Dirty, r.UpdateMode(host.ModeInfo{SessionName: "work"}))
}

func TestUpdateTabs(t *testing.T) {
	t.Run("first update is dirty", func(t *testing.T) {
		r := New()
		assert.Equal(t, dirty.Dirty, r.UpdateTabs(1, tabs(3, 1)))
		assert.Len(t, r.View().Segments, 3)
		assert.Equal(t, 1, r.ActiveTabIdx())
	})

	t.Run("unchanged pair is clean", func(t *testing.T) {
		r := New()
		r.UpdateTabs(1, tabs(3, 1))
		assert.Equal(t, dirty.Clean, r.UpdateTabs(1, tabs(3, 1)))
	})

	t.Run("active index change is dirty", func(t *testing.T) {
		r := New()
		r.UpdateTabs(1, tabs(3, 1))
		assert.Equal(t, dirty.Dirty, r.UpdateTabs(2, tabs(3, 1)))
		assert.Equal(t, 2, r.ActiveTabIdx())
	})

	t.Run("tab field change is dirty", func(t *testing.T) {
		r := New()
		r.UpdateTabs(0, tabs(2, 0))
		changed := tabs(2, 0)
		changed[1].Name = "logs"
		assert.Equal(t, dirty.Dirty, r.UpdateTabs(0, changed))
		assert.Len(t, r.View().Segments, 2)
	})

	t.Run("segments follow tab count", func(t *testing.T) {
		r := New()
		for _, n := range []int{4, 1, 7, 0, 2} {
			active := 0
			r.UpdateTabs(active, tabs(n, active))
			assert.Len(t, r.View().Segments, n)
			assert.Equal(t, n, r.TabCount())
		}
	})

	t.Run("caller slice is not aliased", func(t *testing.T) {
		r := New()
		in := tabs(2, 0)
		r.UpdateTabs(0, in)
		in[1].Name = "mutated"
		assert.Equal(t, dirty.Dirty, r.UpdateTabs(0, in))
	})
}

func TestViewIsSnapshot(t *testing.T) {
	r := New()
	r.UpdateTabs(0, tabs(2, 0))
	v := r.View()
	v.Segments[0].Label = "x"
	assert.Equal(t, "1", r.View().Segments[0].Label)
}

func TestNextPrevTabIdx(t *testing.T) {
	r := New()
	r.UpdateTabs(0, tabs(3, 0))
	assert.Equal(t, 0, r.PrevTabIdx())
	assert.Equal(t, 1, r.NextTabIdx())

	r.UpdateTabs(2, tabs(3, 2))
	assert.Equal(t, 3, r.NextTabIdx())
	assert.Equal(t, 1, r.PrevTabIdx())
}

func TestTargetTab(t *testing.T) {
	r := New()
	require.Equal(t, dirty.Dirty, r.UpdateTabs(2, tabs(5, 2)))

	idx, ok := r.TargetTab(0)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = r.TargetTab(4)
	assert.False(t, ok)

	_, ok = r.TargetTab(100)
	assert.False(t, ok)
}
