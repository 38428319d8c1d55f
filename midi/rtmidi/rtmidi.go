//go:build cgo

// Package rtmidi is the gomidi/rtmidi backed live output sink. It is kept in
// its own package so that builds without cgo can leave it out entirely.
package rtmidi

import (
	"errors"
	"fmt"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/loomstream/loom/midi"
)

// Sink sends events to a real MIDI output port.
type Sink struct {
	driver *rtmididrv.Driver
	out    drivers.Out
	send   func(gomidi.Message) error
	name   string
}

var _ midi.Sink = (*Sink)(nil)

// NewSink opens the first available MIDI output port, preferring a visible
// softsynth. The returned error means no port could be opened and the caller
// should degrade to midi.NullSink.
func NewSink() (*Sink, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmidi: %w", err)
	}
	outs, err := driver.Outs()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("rtmidi: %w", err)
	}
	if len(outs) == 0 {
		driver.Close()
		return nil, errors.New("rtmidi: no MIDI output ports found")
	}
	out := outs[0]
	for _, o := range outs {
		if preferredPort(o.String()) {
			out = o
			break
		}
	}
	if err := out.Open(); err != nil {
		driver.Close()
		return nil, fmt.Errorf("rtmidi: opening %s: %w", out.String(), err)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		out.Close()
		driver.Close()
		return nil, fmt.Errorf("rtmidi: %w", err)
	}
	return &Sink{driver: driver, out: out, send: send, name: out.String()}, nil
}

// preferredPort recognizes common software synthesizers by port name.
func preferredPort(name string) bool {
	n := strings.ToLower(name)
	for _, hint := range []string{"fluid", "timidity", "microsoft", "gm", "synth"} {
		if strings.Contains(n, hint) {
			return true
		}
	}
	return false
}

// PortName is the name of the opened output port.
func (s *Sink) PortName() string { return s.name }

func (s *Sink) ProgramChange(channel, program byte) {
	s.send(gomidi.ProgramChange(channel, program))
}

func (s *Sink) NoteOn(channel, note, velocity byte) {
	s.send(gomidi.NoteOn(channel, note, velocity))
}

func (s *Sink) NoteOff(channel, note byte) {
	s.send(gomidi.NoteOff(channel, note))
}

func (s *Sink) Close() error {
	err := s.out.Close()
	s.driver.Close()
	return err
}
