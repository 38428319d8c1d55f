package performer

import "time"

// DefaultFrameRate is the nominal render cadence in frames per second.
const DefaultFrameRate = 60

// RunFrames drives the orchestrator at the given frame rate until a Quit
// gesture arrives. Each frame drains the gesture channel in arrival order,
// advances the model by the measured elapsed time and invokes render with
// the up-to-date model. It then asks the player to quit and waits for its
// shutdown, bounded so a wedged sink cannot hang the exit.
func RunFrames(m *Model, fps int, render func(*Model)) {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	frame := time.Second / time.Duration(fps)
	last := time.Now()

	for {
		quit := false
		for {
			ev, ok := TryRecv(m.broker.Gestures)
			if !ok {
				break
			}
			if m.HandleGesture(ev) {
				quit = true
				break
			}
		}
		if quit {
			break
		}

		now := time.Now()
		m.Tick(now.Sub(last).Seconds())
		last = now

		if render != nil {
			render(m)
		}
		time.Sleep(frame)
	}

	// the player drains its queue every iteration, so this send cannot wedge
	m.broker.ToPlayer <- QuitMsg{}
	TimeoutReceive(m.broker.FinishedPlayer, 3*time.Second)
}
