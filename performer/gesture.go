package performer

type (
	// PullLeft advances the left (duration) stream by Steps digits.
	// Velocity is the normalized pull speed in 0–1 and only affects the
	// ribbon scroll animation.
	PullLeft struct {
		Steps    int
		Velocity float64
	}

	// PullRight advances the right (pitch) stream.
	PullRight struct {
		Steps    int
		Velocity float64
	}

	// Twist swaps the left and right streams.
	Twist struct{}

	// Clap begins playback.
	Clap struct{}

	// Unclap stops playback.
	Unclap struct{}

	// Scissors snips the visible window into a named snippet. An empty Name
	// asks the orchestrator to collect one interactively.
	Scissors struct{ Name string }

	// Quit terminates the application.
	Quit struct{}
)

// GestureSource produces normalized gesture events into a sink, forever, on
// its own goroutine. Consumers never learn whether the events came from real
// hardware or a simulator. Implementations must deliver events in the order
// they were recognized; coalescing (e.g. a fast pull worth 5 steps) happens
// before sending, never after.
type GestureSource interface {
	Run(sink chan<- any)
}

// SpawnGestureSource starts the source on its own goroutine, funneling its
// events into the broker's gesture channel.
func SpawnGestureSource(b *Broker, src GestureSource) {
	go src.Run(b.Gestures)
}

// SimKey is a simulated input key, the normalized form of whatever the
// front end reads from the keyboard.
type SimKey int

const (
	KeyPullLeft SimKey = iota
	KeyPullRight
	KeyPullLeftFast
	KeyPullRightFast
	KeyTwist
	KeyClap
	KeyUnclap
	KeyScissors
	KeyQuit
)

// SimSource translates simulated key presses into gesture events. The front
// end owns the Keys channel and closes it when input ends.
type SimSource struct {
	Keys <-chan SimKey
}

func (s SimSource) Run(sink chan<- any) {
	for key := range s.Keys {
		var ev any
		switch key {
		case KeyPullLeft:
			ev = PullLeft{Steps: 1, Velocity: 0.3}
		case KeyPullLeftFast:
			ev = PullLeft{Steps: 5, Velocity: 0.9}
		case KeyPullRight:
			ev = PullRight{Steps: 1, Velocity: 0.3}
		case KeyPullRightFast:
			ev = PullRight{Steps: 5, Velocity: 0.9}
		case KeyTwist:
			ev = Twist{}
		case KeyClap:
			ev = Clap{}
		case KeyUnclap:
			ev = Unclap{}
		case KeyScissors:
			ev = Scissors{} // name collected by the orchestrator
		case KeyQuit:
			TrySend(sink, any(Quit{}))
			return
		default:
			continue
		}
		TrySend(sink, ev)
	}
}
