package midi

import (
	"fmt"

	"github.com/loomstream/loom"
)

// Composer consumes a DualStream zip and resolves the pairs into a Track:
// left digits pick durations, right digits pick pitches.
//
// The zero-value defaults are 120 BPM, Acoustic Grand Piano, C major from
// middle C, musical durations at 480 ticks per quarter, velocity 100 and
// channel 0.
type Composer struct {
	stream   *loom.DualStream
	tempoBPM int
	program  GM
	pitch    PitchMap
	duration DurationMap
	velocity byte
	channel  byte
	tpq      int
	name     string
}

func NewComposer(stream *loom.DualStream) *Composer {
	return &Composer{
		stream:   stream,
		tempoBPM: 120,
		program:  AcousticGrandPiano,
		pitch:    NewPitchMap(60, Major()),
		duration: MusicalDurations(480),
		velocity: 100,
		channel:  0,
		tpq:      480,
		name:     "loom",
	}
}

// Tempo sets the tempo in BPM. Validated in Compose.
func (c *Composer) Tempo(bpm int) *Composer {
	c.tempoBPM = bpm
	return c
}

func (c *Composer) Instrument(g GM) *Composer {
	c.program = g
	return c
}

func (c *Composer) PitchMap(p PitchMap) *Composer {
	c.pitch = p
	return c
}

func (c *Composer) DurationMap(d DurationMap) *Composer {
	c.duration = d
	return c
}

// TicksPerQuarter sets the MIDI resolution. Validated in Compose.
func (c *Composer) TicksPerQuarter(tpq int) *Composer {
	c.tpq = tpq
	return c
}

// Velocity clamps to 0–127.
func (c *Composer) Velocity(v int) *Composer {
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	c.velocity = byte(v)
	return c
}

// Channel keeps the low four bits.
func (c *Composer) Channel(ch byte) *Composer {
	c.channel = ch & 0x0F
	return c
}

// Name sets the label embedded as the MIDI track name.
func (c *Composer) Name(s string) *Composer {
	c.name = s
	return c
}

// DropLeft advances the left (duration) cursor before composing.
func (c *Composer) DropLeft(n int) *Composer {
	c.stream.Left().Drop(n)
	return c
}

// DropRight advances the right (pitch) cursor before composing.
func (c *Composer) DropRight(n int) *Composer {
	c.stream.Right().Drop(n)
	return c
}

// Twist swaps the duration and pitch streams.
func (c *Composer) Twist() *Composer {
	c.stream.Twist()
	return c
}

func (c *Composer) validate(n int) error {
	if n <= 0 {
		return fmt.Errorf("compose: note count must be > 0, got %d", n)
	}
	if c.tempoBPM <= 0 || c.tempoBPM > 300 {
		return fmt.Errorf("compose: tempo must be 1–300 BPM, got %d", c.tempoBPM)
	}
	if c.tpq <= 0 {
		return fmt.Errorf("compose: ticks per quarter must be > 0, got %d", c.tpq)
	}
	return nil
}

// Compose consumes n pairs from the zip and resolves each into one note.
func (c *Composer) Compose(n int) (Track, error) {
	return c.ComposeFiltered(n, nil)
}

// ComposeFiltered consumes exactly n pairs but keeps only those the predicate
// accepts. A nil predicate keeps everything.
func (c *Composer) ComposeFiltered(n int, pred func(left, right int) bool) (Track, error) {
	if err := c.validate(n); err != nil {
		return Track{}, err
	}
	notes := make([]Note, 0, n)
	for _, p := range c.stream.ZipTake(n) {
		if pred != nil && !pred(p.Left, p.Right) {
			continue
		}
		notes = append(notes, Note{
			Pitch:    c.pitch.NoteFor(p.Right),
			Duration: c.duration.TicksFor(p.Left),
			Velocity: c.velocity,
		})
	}
	if pred != nil && len(notes) == 0 {
		return Track{}, fmt.Errorf("compose: filter rejected all %d notes", n)
	}
	return Track{
		Notes:           notes,
		TicksPerQuarter: c.tpq,
		TempoBPM:        c.tempoBPM,
		Program:         c.program,
		Channel:         c.channel,
		Name:            c.name,
	}, nil
}
