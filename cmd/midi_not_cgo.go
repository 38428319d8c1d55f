//go:build !cgo

package cmd

import (
	"log/slog"

	"github.com/loomstream/loom/midi"
)

// NewSink returns a silent sink; without cgo no MIDI driver is available.
func NewSink(log *slog.Logger) midi.Sink {
	log.Warn("built without cgo, no MIDI output available, playing silently")
	return midi.NullSink{}
}
