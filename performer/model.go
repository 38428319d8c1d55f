package performer

import (
	"fmt"
	"log/slog"

	"github.com/loomstream/loom"
)

type (
	// Model is the single-threaded orchestrator. It exclusively owns the
	// live DualStream and all display state, consumes gesture events and
	// player note reports once per frame and never blocks, except for the
	// one synchronous snippet-name prompt.
	Model struct {
		broker *Broker
		stream *loom.DualStream
		log    *slog.Logger

		leftRibbon  *RibbonState
		rightRibbon *RibbonState
		stitch      StitchState
		tray        SnippetTray
		scissors    []*ScissorAnimation
		playing     bool

		highlight    int // absolute left index of the highlighted patch, -1 none
		snipCount    int
		promptName   func() string
		lastNote     NoteEvent
		haveLastNote bool
	}

	// ModelConfig sizes the visible windows and injects the interactive
	// name prompt. A nil Prompt falls back to generated names.
	ModelConfig struct {
		RibbonCapacity int
		Prompt         func() string
		Logger         *slog.Logger
	}
)

// NewModel wires the orchestrator to the broker and the live stream it will
// own from here on.
func NewModel(broker *Broker, stream *loom.DualStream, cfg ModelConfig) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Model{
		broker:      broker,
		stream:      stream,
		log:         logger,
		leftRibbon:  NewRibbonState(cfg.RibbonCapacity),
		rightRibbon: NewRibbonState(cfg.RibbonCapacity),
		promptName:  cfg.Prompt,
		highlight:   -1,
	}
}

func (m *Model) Playing() bool             { return m.playing }
func (m *Model) Stitch() *StitchState      { return &m.stitch }
func (m *Model) Tray() *SnippetTray        { return &m.tray }
func (m *Model) LeftRibbon() *RibbonState  { return m.leftRibbon }
func (m *Model) RightRibbon() *RibbonState { return m.rightRibbon }
func (m *Model) Stream() *loom.DualStream  { return m.stream }
func (m *Model) Highlight() int            { return m.highlight }

// Scissors returns the running cut animations, oldest first.
func (m *Model) Scissors() []*ScissorAnimation { return m.scissors }

// HandleGesture applies one gesture event. It returns true when the event
// asks the application to quit.
func (m *Model) HandleGesture(ev any) (quit bool) {
	switch g := ev.(type) {
	case PullLeft:
		m.pull(m.stream.Left(), m.leftRibbon, g.Steps, g.Velocity)
	case PullRight:
		m.pull(m.stream.Right(), m.rightRibbon, g.Steps, g.Velocity)
	case Twist:
		m.stream.Twist()
		m.leftRibbon, m.rightRibbon = m.rightRibbon, m.leftRibbon
	case Clap:
		if !m.playing {
			m.playing = true
			m.stitch.Begin()
			if !TrySend(m.broker.ToPlayer, any(PlayMsg{})) {
				m.log.Warn("player command dropped", "cmd", "play")
			}
		}
	case Unclap:
		if m.playing {
			m.playing = false
			m.stitch.End()
			if !TrySend(m.broker.ToPlayer, any(StopMsg{})) {
				m.log.Warn("player command dropped", "cmd", "stop")
			}
		}
	case Scissors:
		name := g.Name
		if name == "" && m.promptName != nil {
			name = m.promptName()
		}
		if name == "" {
			m.snipCount++
			name = fmt.Sprintf("snippet-%d", m.snipCount)
		}
		if err := m.Snip(name); err != nil {
			m.log.Warn("snip failed", "name", name, "error", err)
		}
	case Quit:
		return true
	}
	return false
}

func (m *Model) pull(c *loom.Cursor, r *RibbonState, steps int, velocity float64) {
	if steps <= 0 {
		return
	}
	start := c.Pos()
	base := c.Config().Base
	for i, d := range c.Take(steps) {
		r.Push(d, base, start+i)
	}
	r.Kick(velocity)
}

// Snip captures the visible trailing window of the live stream into a named
// snippet, deposits it on the tray and starts a cut animation. The live
// cursors are not touched.
func (m *Model) Snip(name string) error {
	to := m.stream.LeftPos()
	from := to - len(m.leftRibbon.Patches())
	if from < 0 {
		from = 0
	}
	if _, err := m.stream.Snip(name, from, to); err != nil {
		return err
	}
	m.tray.Deposit(name)
	m.scissors = append(m.scissors, NewScissorAnimation(name))
	m.log.Info("snipped", "name", name, "from", from, "to", to)
	return nil
}

// Tick advances every animation by dt seconds and drains the player's note
// reports, highlighting the patch nearest the most recent note.
func (m *Model) Tick(dt float64) {
	m.leftRibbon.Tick(dt)
	m.rightRibbon.Tick(dt)
	m.stitch.Tick(dt)
	m.tray.Tick(dt)

	live := m.scissors[:0]
	for _, a := range m.scissors {
		a.Tick(dt)
		if a.Active() {
			live = append(live, a)
		}
	}
	m.scissors = live

	for {
		note, ok := TryRecv(m.broker.ToModel)
		if !ok {
			break
		}
		m.lastNote = note
		m.haveLastNote = true
	}
	if m.haveLastNote {
		m.highlight = m.nearestPatch(m.lastNote.LeftPos)
	}
}

// nearestPatch returns the absolute index of the leftmost visible patch at
// or past pos, or -1 when nothing qualifies.
func (m *Model) nearestPatch(pos int) int {
	best := -1
	for _, p := range m.leftRibbon.Patches() {
		if p.Index >= pos && (best == -1 || p.Index < best) {
			best = p.Index
		}
	}
	return best
}

// Status summarizes the live stream and play state for display.
func (m *Model) Status() string {
	state := "stopped"
	if m.playing {
		state = "playing"
	}
	return fmt.Sprintf("%s [%s]", m.stream.Status(), state)
}
