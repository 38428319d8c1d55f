package midi

// Sink is the live instrument output the player drives. Implementations must
// be safe to move to the player goroutine but are only used from one
// goroutine at a time.
type Sink interface {
	ProgramChange(channel, program byte)
	NoteOn(channel, note, velocity byte)
	NoteOff(channel, note byte)
	Close() error
}

// NullSink swallows every event. It is the degraded mode used when no MIDI
// output port is reachable, and the sink of choice in tests.
type NullSink struct{}

func (NullSink) ProgramChange(channel, program byte) {}
func (NullSink) NoteOn(channel, note, velocity byte) {}
func (NullSink) NoteOff(channel, note byte)          {}
func (NullSink) Close() error                        { return nil }
