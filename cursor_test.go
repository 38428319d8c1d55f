package loom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finiteSource terminates after its digits run out, standing in for the
// defensive exhaustion path that the built-in constants never take.
type finiteSource struct {
	digits []int
}

func (s *finiteSource) Next() (int, bool) {
	if len(s.digits) == 0 {
		return 0, false
	}
	d := s.digits[0]
	s.digits = s.digits[1:]
	return d, true
}

func finiteStream(left, right []int) *DualStream {
	return &DualStream{
		left:     &Cursor{src: &finiteSource{digits: left}},
		right:    &Cursor{src: &finiteSource{digits: right}},
		snippets: make(map[string]Snippet),
	}
}

func TestZipNextKeepsSidesAlignedOnExhaustion(t *testing.T) {
	d := finiteStream([]int{1, 2, 3}, []int{4})

	p, ok := d.ZipNext()
	require.True(t, ok)
	assert.Equal(t, Pair{Left: 1, Right: 4}, p)

	// the right side is done; the failed zip must not advance the left side
	_, ok = d.ZipNext()
	require.False(t, ok)
	assert.Equal(t, 1, d.LeftPos())
	assert.Equal(t, 1, d.RightPos())

	// and the left digit the failed zip looked at is still there
	digit, ok := d.Left().Next()
	require.True(t, ok)
	assert.Equal(t, 2, digit)
	assert.Equal(t, 2, d.LeftPos())
}

func TestZipNextLeftExhaustsFirst(t *testing.T) {
	d := finiteStream([]int{7}, []int{8, 9})

	_, ok := d.ZipNext()
	require.True(t, ok)
	_, ok = d.ZipNext()
	require.False(t, ok)
	assert.Equal(t, d.LeftPos(), d.RightPos())
}

func TestDropConsumesPeekedDigit(t *testing.T) {
	d := finiteStream([]int{1, 2, 3, 4}, []int{})

	// a failed zip leaves the left digit buffered; drop must consume it
	// first, not skip past it
	_, ok := d.ZipNext()
	require.False(t, ok)
	d.Left().Drop(1)
	assert.Equal(t, 1, d.LeftPos())

	digit, ok := d.Left().Next()
	require.True(t, ok)
	assert.Equal(t, 2, digit)
}

func TestCursorExhaustionStopsCleanly(t *testing.T) {
	c := &Cursor{src: &finiteSource{digits: []int{5, 6}}}
	assert.Equal(t, []int{5, 6}, c.Take(10))
	assert.Equal(t, 2, c.Pos())
	_, ok := c.Next()
	assert.False(t, ok)
	c.Drop(3)
	assert.Equal(t, 2, c.Pos())
}
