package performer

import (
	"time"

	"github.com/loomstream/loom"
	"github.com/loomstream/loom/midi"
)

type (
	// Player is the real-time production loop, run on its own goroutine. It
	// owns a private DualStream (never the orchestrator's live one), pulls
	// digit pairs from it while playing, resolves them through the injected
	// pitch and duration maps and drives the instrument sink with paced
	// note-on/note-off pairs. All sends back to the model are non-blocking
	// so the player can never deadlock on a slow consumer.
	//
	// Command handling is deliberately non-preemptive: commands are drained
	// between notes, so responsiveness is bounded by the current note's
	// duration plus the inter-note gap. A Stop never cuts a note short.
	Player struct {
		broker   *Broker
		stream   *loom.DualStream
		sink     midi.Sink
		pitch    midi.PitchMap
		duration midi.DurationMap
		program  byte
		bpm      int
		velocity byte
		channel  byte
		tpq      int
		playing  bool
	}

	// NoteEvent reports one generated note back to the orchestrator for
	// visual highlighting. Losing one is harmless.
	NoteEvent struct {
		Pitch    byte
		Duration int // ticks
		Velocity byte
		LeftPos  int
		RightPos int
	}

	// PlayerConfig carries the injected mappings and initial settings.
	// Velocity clamps to 0-127 and Channel keeps its low four bits.
	PlayerConfig struct {
		Pitch      midi.PitchMap
		Duration   midi.DurationMap
		Program    byte
		TempoBPM   int
		Velocity   byte
		Channel    byte
		TicksPerQc int
	}
)

const (
	idleSleep = 10 * time.Millisecond
	minGap    = 5 * time.Millisecond
)

// NewPlayer wires a player to the broker. stream must be a private
// DualStream instantiated for the player alone.
func NewPlayer(broker *Broker, stream *loom.DualStream, sink midi.Sink, cfg PlayerConfig) *Player {
	tpq := cfg.TicksPerQc
	if tpq <= 0 {
		tpq = 480
	}
	bpm := cfg.TempoBPM
	if bpm <= 0 {
		bpm = 120
	}
	vel := cfg.Velocity
	if vel > 127 {
		vel = 127
	}
	return &Player{
		broker:   broker,
		stream:   stream,
		sink:     sink,
		pitch:    cfg.Pitch,
		duration: cfg.Duration,
		program:  cfg.Program,
		bpm:      bpm,
		velocity: vel,
		channel:  cfg.Channel & 0x0F,
		tpq:      tpq,
	}
}

// Run is the playback loop. Start it with `go player.Run()`; it returns after
// a QuitMsg, closing broker.FinishedPlayer on the way out.
func (p *Player) Run() {
	defer close(p.broker.FinishedPlayer)
	p.sink.ProgramChange(p.channel, p.program)

	for {
		if quit := p.processMessages(); quit {
			return
		}
		if !p.playing {
			time.Sleep(idleSleep)
			continue
		}

		pair, ok := p.stream.ZipNext()
		if !ok {
			// a terminated source stops playback instead of crashing it
			p.playing = false
			continue
		}

		pitch := p.pitch.NoteFor(pair.Right)
		ticks := p.duration.TicksFor(pair.Left)
		ms := midi.TicksToMs(ticks, p.tpq, p.bpm)

		TrySend(p.broker.ToModel, NoteEvent{
			Pitch:    pitch,
			Duration: ticks,
			Velocity: p.velocity,
			LeftPos:  p.stream.LeftPos(),
			RightPos: p.stream.RightPos(),
		})

		p.sink.NoteOn(p.channel, pitch, p.velocity)
		time.Sleep(time.Duration(ms) * time.Millisecond)
		p.sink.NoteOff(p.channel, pitch)

		gap := time.Duration(ms/20) * time.Millisecond
		if gap < minGap {
			gap = minGap
		}
		time.Sleep(gap)
	}
}

// processMessages drains all pending commands without blocking.
func (p *Player) processMessages() (quit bool) {
	for {
		select {
		case msg := <-p.broker.ToPlayer:
			switch m := msg.(type) {
			case PlayMsg:
				p.playing = true
				p.sink.ProgramChange(p.channel, p.program)
			case StopMsg:
				p.playing = false
			case SetInstrumentMsg:
				p.program = m.Program
				p.sink.ProgramChange(p.channel, p.program)
			case SetTempoMsg:
				if m.BPM > 0 {
					p.bpm = m.BPM
				}
			case QuitMsg:
				return true
			}
		default:
			return false
		}
	}
}
