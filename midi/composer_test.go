package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomstream/loom"
	"github.com/loomstream/loom/spigot"
)

func piVsE(t *testing.T) *loom.DualStream {
	t.Helper()
	left, err := spigot.NewConfig(spigot.Pi, 10)
	require.NoError(t, err)
	right, err := spigot.NewConfig(spigot.E, 10)
	require.NoError(t, err)
	stream, err := loom.NewDualStream(left, right)
	require.NoError(t, err)
	return stream
}

func TestComposeDefaults(t *testing.T) {
	track, err := NewComposer(piVsE(t)).Compose(8)
	require.NoError(t, err)
	require.Len(t, track.Notes, 8)
	assert.Equal(t, 120, track.TempoBPM)
	assert.Equal(t, 480, track.TicksPerQuarter)
	assert.Equal(t, AcousticGrandPiano, track.Program)
	assert.Equal(t, "loom", track.Name)

	// first pair is (3, 2): e's digit 2 lands on E above middle C, pi's
	// digit 3 picks the 8th-note duration
	assert.Equal(t, byte(64), track.Notes[0].Pitch)
	assert.Equal(t, 240, track.Notes[0].Duration)
	assert.Equal(t, byte(100), track.Notes[0].Velocity)
}

func TestComposeConsumesTheZip(t *testing.T) {
	stream := piVsE(t)
	_, err := NewComposer(stream).Compose(16)
	require.NoError(t, err)
	assert.Equal(t, 16, stream.LeftPos())
	assert.Equal(t, 16, stream.RightPos())
}

func TestComposeDeterministic(t *testing.T) {
	a, err := NewComposer(piVsE(t)).Compose(32)
	require.NoError(t, err)
	b, err := NewComposer(piVsE(t)).Compose(32)
	require.NoError(t, err)
	assert.Equal(t, a.Notes, b.Notes)
}

func TestComposeTwistSwapsRoles(t *testing.T) {
	plain, err := NewComposer(piVsE(t)).Compose(1)
	require.NoError(t, err)
	twisted, err := NewComposer(piVsE(t)).Twist().Compose(1)
	require.NoError(t, err)

	// twisted first pair is (2, 3): pitch from pi's 3, duration from e's 2
	assert.NotEqual(t, plain.Notes[0], twisted.Notes[0])
	assert.Equal(t, byte(65), twisted.Notes[0].Pitch)
	assert.Equal(t, 180, twisted.Notes[0].Duration)
}

func TestComposeDropOffsets(t *testing.T) {
	track, err := NewComposer(piVsE(t)).DropLeft(1).DropRight(2).Compose(1)
	require.NoError(t, err)
	// left digit is now pi[1]=1, right digit e[2]=1
	assert.Equal(t, byte(62), track.Notes[0].Pitch)
	assert.Equal(t, 120, track.Notes[0].Duration)
}

func TestComposeValidation(t *testing.T) {
	_, err := NewComposer(piVsE(t)).Compose(0)
	assert.Error(t, err)
	_, err = NewComposer(piVsE(t)).Tempo(0).Compose(4)
	assert.Error(t, err)
	_, err = NewComposer(piVsE(t)).Tempo(301).Compose(4)
	assert.Error(t, err)
	_, err = NewComposer(piVsE(t)).TicksPerQuarter(0).Compose(4)
	assert.Error(t, err)
}

func TestComposeVelocityClamps(t *testing.T) {
	track, err := NewComposer(piVsE(t)).Velocity(200).Compose(1)
	require.NoError(t, err)
	assert.Equal(t, byte(127), track.Notes[0].Velocity)
	track, err = NewComposer(piVsE(t)).Velocity(-1).Compose(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0), track.Notes[0].Velocity)
}

func TestComposeFiltered(t *testing.T) {
	// keep only even right digits; still consumes all n pairs
	stream := piVsE(t)
	track, err := NewComposer(stream).ComposeFiltered(10, func(_, right int) bool {
		return right%2 == 0
	})
	require.NoError(t, err)
	assert.Less(t, len(track.Notes), 10)
	assert.NotEmpty(t, track.Notes)
	assert.Equal(t, 10, stream.LeftPos())

	_, err = NewComposer(piVsE(t)).ComposeFiltered(4, func(_, _ int) bool { return false })
	assert.Error(t, err)
}
