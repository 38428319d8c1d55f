package midi

import (
	"encoding/binary"
	"os"
)

// Note is a single resolved note ready for serialization or live playback.
type Note struct {
	Pitch    byte
	Duration int // ticks
	Velocity byte
}

// Track is a resolved note sequence plus the metadata needed to serialize it
// as a standard MIDI file.
type Track struct {
	Notes           []Note
	TicksPerQuarter int
	TempoBPM        int
	Program         GM
	Channel         byte
	Name            string
}

// Bytes serializes the track as a complete type-0 MIDI file.
func (t *Track) Bytes() []byte {
	chunk := t.trackChunk()

	out := make([]byte, 0, 14+8+len(chunk))
	out = append(out, "MThd"...)
	out = binary.BigEndian.AppendUint32(out, 6)
	out = binary.BigEndian.AppendUint16(out, 0) // format 0
	out = binary.BigEndian.AppendUint16(out, 1) // one track
	out = binary.BigEndian.AppendUint16(out, uint16(t.TicksPerQuarter))

	out = append(out, "MTrk"...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(chunk)))
	return append(out, chunk...)
}

// WriteFile writes the serialized type-0 file to path.
func (t *Track) WriteFile(path string) error {
	return os.WriteFile(path, t.Bytes(), 0644)
}

// trackChunk builds the MTrk payload: tempo and track-name meta events, the
// program change, one note-on/note-off pair per note, and end of track.
func (t *Track) trackChunk() []byte {
	ch := t.Channel & 0x0F
	var b []byte

	// tempo, microseconds per beat
	micros := uint32(60_000_000 / max(1, t.TempoBPM))
	b = append(b, 0x00, 0xFF, 0x51, 0x03, byte(micros>>16), byte(micros>>8), byte(micros))

	// track name
	b = append(b, 0x00, 0xFF, 0x03)
	b = appendVLQ(b, uint32(len(t.Name)))
	b = append(b, t.Name...)

	// program change
	b = append(b, 0x00, 0xC0|ch, t.Program.Program())

	for _, n := range t.Notes {
		b = append(b, 0x00, 0x90|ch, n.Pitch, n.Velocity)
		b = appendVLQ(b, uint32(n.Duration))
		b = append(b, 0x80|ch, n.Pitch, 0x00)
	}

	return append(b, 0x00, 0xFF, 0x2F, 0x00)
}

// appendVLQ appends v as a MIDI variable-length quantity: 7 bits per byte,
// big-endian significance order, high bit set on all but the last byte.
func appendVLQ(b []byte, v uint32) []byte {
	var tmp [5]byte
	i := 4
	tmp[i] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		tmp[i] = byte(v&0x7F) | 0x80
	}
	return append(b, tmp[i:]...)
}

// MultiTrackBytes serializes several tracks as a type-1 MIDI file. All tracks
// share the first track's resolution; each keeps its own instrument and
// channel.
func MultiTrackBytes(tracks []Track) []byte {
	if len(tracks) == 0 {
		return nil
	}
	var out []byte
	out = append(out, "MThd"...)
	out = binary.BigEndian.AppendUint32(out, 6)
	out = binary.BigEndian.AppendUint16(out, 1) // format 1
	out = binary.BigEndian.AppendUint16(out, uint16(len(tracks)))
	out = binary.BigEndian.AppendUint16(out, uint16(tracks[0].TicksPerQuarter))
	for i := range tracks {
		chunk := tracks[i].trackChunk()
		out = append(out, "MTrk"...)
		out = binary.BigEndian.AppendUint32(out, uint32(len(chunk)))
		out = append(out, chunk...)
	}
	return out
}

// WriteMultiTrack writes the tracks as a type-1 file to path.
func WriteMultiTrack(path string, tracks []Track) error {
	return os.WriteFile(path, MultiTrackBytes(tracks), 0644)
}

// TicksToMs converts a duration in ticks to wall-clock milliseconds at the
// given resolution and tempo, floored at 50 ms so that even the shortest
// digits remain audible.
func TicksToMs(ticks, tpq, bpm int) int {
	msPerBeat := 60_000 / max(1, bpm)
	ms := ticks * msPerBeat / max(1, tpq)
	if ms < 50 {
		return 50
	}
	return ms
}
