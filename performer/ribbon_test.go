package performer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomstream/loom/performer"
)

const frame = 1.0 / 60

func TestRibbonPushShiftsAndEvicts(t *testing.T) {
	r := performer.NewRibbonState(3)
	for i, d := range []int{3, 1, 4, 1} {
		r.Push(d, 10, i)
	}
	patches := r.Patches()
	require.Len(t, patches, 3, "capacity must evict the oldest patch")
	assert.Equal(t, 1, patches[0].Digit)
	assert.Equal(t, 4, patches[1].Digit)
	assert.Equal(t, 1, patches[2].Digit)
	assert.Equal(t, 3, patches[2].Index)
	// newest patch sits at the window edge, older ones are shifted away
	assert.Equal(t, 0.0, patches[2].Position)
	assert.Equal(t, 1.0, patches[1].Position)
	assert.Equal(t, 2.0, patches[0].Position)
}

func TestRibbonKickDecays(t *testing.T) {
	r := performer.NewRibbonState(4)
	r.Push(7, 10, 0)
	r.Kick(1.0)
	require.Equal(t, 1.0, r.Velocity())

	before := r.Patches()[0].Position
	r.Tick(frame)
	assert.Greater(t, r.Patches()[0].Position, before, "a kick must scroll the patches")
	assert.Less(t, r.Velocity(), 1.0, "friction must slow the scroll")

	for i := 0; i < 600; i++ {
		r.Tick(frame)
	}
	assert.Equal(t, 0.0, r.Velocity(), "the scroll must come to rest")
}

func TestDigitColorStable(t *testing.T) {
	c := performer.DigitColor(5, 10)
	assert.Equal(t, c, performer.DigitColor(5, 10))
	assert.NotEqual(t, c, performer.DigitColor(6, 10))
	assert.Equal(t, uint32(0xFF000000), c&0xFF000000, "colors are opaque")
}

func TestStitchLifecycle(t *testing.T) {
	var s performer.StitchState
	assert.Equal(t, performer.Unstitched, s.Phase())

	s.Begin()
	assert.Equal(t, performer.Stitching, s.Phase())
	settled := false
	for i := 0; i < 120 && !settled; i++ {
		settled = s.Tick(frame)
	}
	require.True(t, settled, "stitching must settle within two seconds of ticks")
	assert.Equal(t, performer.Stitched, s.Phase())
	assert.True(t, s.IsStitched())

	// beginning again while stitched changes nothing
	s.Begin()
	assert.Equal(t, performer.Stitched, s.Phase())

	s.End()
	assert.Equal(t, performer.Unstitching, s.Phase())
	settled = false
	for i := 0; i < 120 && !settled; i++ {
		settled = s.Tick(frame)
	}
	require.True(t, settled)
	assert.Equal(t, performer.Unstitched, s.Phase())
	assert.False(t, s.IsStitched())
}

func TestStitchReversesMidway(t *testing.T) {
	var s performer.StitchState
	s.Begin()
	for i := 0; i < 5; i++ {
		s.Tick(frame)
	}
	mid := s.Progress()
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 1.0)

	s.End()
	s.Tick(frame)
	assert.Less(t, s.Progress(), mid, "unstitching resumes from the current progress")
}

func TestScissorAnimationDoneOnce(t *testing.T) {
	a := performer.NewScissorAnimation("cut")
	doneCount := 0
	for i := 0; i < 120; i++ {
		if a.Tick(frame) {
			doneCount++
		}
	}
	assert.Equal(t, 1, doneCount, "done must be reported exactly once")
	assert.False(t, a.Active())
	assert.Equal(t, 1.0, a.Progress())
}

func TestSnippetTrayCap(t *testing.T) {
	var tray performer.SnippetTray
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		tray.Deposit(name)
	}
	require.Equal(t, 8, tray.Len(), "tray keeps at most eight entries")
	assert.Equal(t, []string{"j", "i", "h", "g", "f", "e", "d", "c"}, tray.Names())

	assert.Less(t, tray.Slide(0), 1.0)
	for i := 0; i < 60; i++ {
		tray.Tick(frame)
	}
	assert.Equal(t, 1.0, tray.Slide(0), "slide-in completes after enough ticks")
}
