package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendVLQ(t *testing.T) {
	for _, c := range []struct {
		v    uint32
		want []byte
	}{
		{0x00, []byte{0x00}},
		{0x40, []byte{0x40}},
		{0x7F, []byte{0x7F}},
		{0x80, []byte{0x81, 0x00}},
		{0x2000, []byte{0xC0, 0x00}},
		{0x3FFF, []byte{0xFF, 0x7F}},
		{0x4000, []byte{0x81, 0x80, 0x00}},
		{0x1FFFFF, []byte{0xFF, 0xFF, 0x7F}},
		{0x0FFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0x7F}},
	} {
		assert.Equal(t, c.want, appendVLQ(nil, c.v), "value %#x", c.v)
	}
}

func TestTrackBytes(t *testing.T) {
	track := Track{
		Notes:           []Note{{Pitch: 60, Duration: 480, Velocity: 100}},
		TicksPerQuarter: 480,
		TempoBPM:        120,
		Program:         AcousticGrandPiano,
		Channel:         0,
		Name:            "t",
	}
	want := []byte{
		'M', 'T', 'h', 'd', 0, 0, 0, 6,
		0, 0, // format 0
		0, 1, // one track
		0x01, 0xE0, // 480 ticks per quarter
		'M', 'T', 'r', 'k', 0, 0, 0, 28,
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // 500000 us per beat
		0x00, 0xFF, 0x03, 0x01, 't',
		0x00, 0xC0, 0x00,
		0x00, 0x90, 60, 100,
		0x83, 0x60, 0x80, 60, 0x00, // note off after 480 ticks
		0x00, 0xFF, 0x2F, 0x00,
	}
	assert.Equal(t, want, track.Bytes())
}

func TestTrackChannelInStatusBytes(t *testing.T) {
	track := Track{
		Notes:           []Note{{Pitch: 40, Duration: 1, Velocity: 80}},
		TicksPerQuarter: 96,
		TempoBPM:        60,
		Program:         Gunshot,
		Channel:         9,
		Name:            "",
	}
	chunk := track.trackChunk()
	assert.Contains(t, string(chunk), string([]byte{0xC9, 127}))
	assert.Contains(t, string(chunk), string([]byte{0x99, 40, 80}))
	assert.Contains(t, string(chunk), string([]byte{0x89, 40, 0x00}))
}

func TestMultiTrackBytes(t *testing.T) {
	a := Track{TicksPerQuarter: 480, TempoBPM: 120, Name: "a"}
	b := Track{TicksPerQuarter: 480, TempoBPM: 120, Name: "b", Channel: 1}
	out := MultiTrackBytes([]Track{a, b})
	require.NotNil(t, out)

	assert.Equal(t, []byte{'M', 'T', 'h', 'd', 0, 0, 0, 6, 0, 1, 0, 2, 0x01, 0xE0}, out[:14])
	assert.Equal(t, []byte("MTrk"), out[14:18])

	assert.Nil(t, MultiTrackBytes(nil))
}

func TestTicksToMs(t *testing.T) {
	assert.Equal(t, 500, TicksToMs(480, 480, 120))
	assert.Equal(t, 250, TicksToMs(240, 480, 120))
	assert.Equal(t, 1000, TicksToMs(480, 480, 60))
	assert.Equal(t, 50, TicksToMs(1, 480, 120)) // floored
	assert.Equal(t, 50, TicksToMs(0, 480, 120))
}
