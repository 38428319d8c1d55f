//go:build cgo

package cmd

import (
	"log/slog"

	"github.com/loomstream/loom/midi"
	"github.com/loomstream/loom/midi/rtmidi"
)

// NewSink opens a live MIDI output. When no port can be opened the system
// degrades to a silent sink instead of failing, warning once.
func NewSink(log *slog.Logger) midi.Sink {
	sink, err := rtmidi.NewSink()
	if err != nil {
		log.Warn("no MIDI output available, playing silently", "error", err)
		return midi.NullSink{}
	}
	log.Info("MIDI output opened", "port", sink.PortName())
	return sink
}
