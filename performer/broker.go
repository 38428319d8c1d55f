// Package performer is the threaded core of the live performance: the player
// goroutine that turns digit pairs into timed notes, the gesture sources that
// feed the orchestrator, and the orchestrator itself with its ribbon, stitch,
// tray and scissor state machines.
package performer

import "time"

type (
	// Broker is the centralized message broker between the gesture sources,
	// the player and the orchestrator model. Communication is many-to-one,
	// one buffered channel per recipient, and every send is non-blocking: a
	// full channel drops the newest message rather than stalling a producer.
	// Dropped note events only cost a highlight frame; dropped gestures are
	// prevented in practice by the channel capacity.
	//
	// FinishedPlayer is closed by the player goroutine after it has handled
	// QuitMsg, so shutdown can wait on it, preferably combined with a
	// timeout via TimeoutReceive.
	Broker struct {
		ToPlayer chan any // PlayMsg, StopMsg, SetInstrumentMsg, SetTempoMsg, QuitMsg
		ToModel  chan NoteEvent
		Gestures chan any // gesture event structs, see gesture.go

		FinishedPlayer chan struct{}
	}

	// PlayMsg starts streaming notes.
	PlayMsg struct{}

	// StopMsg stops after the current note; an in-flight note still
	// completes its note-on/note-off pair.
	StopMsg struct{}

	// SetInstrumentMsg switches the General MIDI program.
	SetInstrumentMsg struct{ Program byte }

	// SetTempoMsg changes the tempo.
	SetTempoMsg struct{ BPM int }

	// QuitMsg terminates the player goroutine.
	QuitMsg struct{}
)

func NewBroker() *Broker {
	return &Broker{
		ToPlayer:       make(chan any, 64),
		ToModel:        make(chan NoteEvent, 256),
		Gestures:       make(chan any, 256),
		FinishedPlayer: make(chan struct{}),
	}
}

// TrySend sends v if the channel has room. It never blocks; the return value
// reports whether the message was delivered.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TryRecv receives a pending value without blocking. ok is false when the
// channel is empty.
func TryRecv[T any](c <-chan T) (v T, ok bool) {
	select {
	case v = <-c:
		return v, true
	default:
		return v, false
	}
}

// TimeoutReceive blocks until a value arrives or t elapses. ok is false on
// timeout or when the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}
