package performer

import "math"

// Animation rates are expressed per second and scaled by the dt passed to
// each Tick, so the visuals stay consistent regardless of frame rate.
const (
	stitchRate   = 3.0  // stitch progress per second
	scissorsRate = 2.4  // scissor sweep per second
	traySlideMax = 4.8  // tray slide progress per second
	kickFriction = 0.88 // velocity retained per 1/60 s
	trayCapacity = 8
)

// Patch is one digit rendered on a ribbon. Index is the digit's absolute
// position in its stream. Position is measured in patch widths from the
// right edge of the visible window and grows as the ribbon scrolls left.
type Patch struct {
	Digit    int
	Index    int
	Color    uint32
	Position float64
}

// RibbonState animates one stream's recent digits. Pulling the stream pushes
// a patch at position 0 and shifts the rest; a kick adds scroll velocity that
// decays with friction so fast pulls visibly overshoot.
type RibbonState struct {
	patches  []Patch
	capacity int
	velocity float64
}

func NewRibbonState(capacity int) *RibbonState {
	if capacity <= 0 {
		capacity = 32
	}
	return &RibbonState{capacity: capacity}
}

// Push appends a freshly pulled digit at the window edge, evicting the
// oldest patch when the ribbon is full. index is the digit's absolute
// stream position.
func (r *RibbonState) Push(digit, base, index int) {
	for i := range r.patches {
		r.patches[i].Position += 1
	}
	r.patches = append(r.patches, Patch{
		Digit: digit,
		Index: index,
		Color: DigitColor(digit, base),
	})
	if len(r.patches) > r.capacity {
		r.patches = r.patches[len(r.patches)-r.capacity:]
	}
}

// Kick adds scroll velocity proportional to the pull speed.
func (r *RibbonState) Kick(velocity float64) {
	r.velocity += velocity
}

// Tick advances the scroll animation by dt seconds.
func (r *RibbonState) Tick(dt float64) {
	if r.velocity == 0 {
		return
	}
	for i := range r.patches {
		r.patches[i].Position += r.velocity * dt
	}
	r.velocity *= math.Pow(kickFriction, dt*60)
	if math.Abs(r.velocity) < 0.001 {
		r.velocity = 0
	}
}

// Patches returns the live patch slice, oldest first. Callers must not
// mutate it.
func (r *RibbonState) Patches() []Patch { return r.patches }

func (r *RibbonState) Velocity() float64 { return r.velocity }

// DigitColor maps a digit to an opaque ARGB color, spreading hues evenly
// around the wheel so adjacent digit values contrast.
func DigitColor(digit, base int) uint32 {
	if base < 2 {
		base = 2
	}
	hue := float64(digit%base) / float64(base) * 360
	return hsvToARGB(hue, 0.7, 0.9)
}

func hsvToARGB(h, s, v float64) uint32 {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	ri := uint32((r + m) * 255)
	gi := uint32((g + m) * 255)
	bi := uint32((b + m) * 255)
	return 0xFF000000 | ri<<16 | gi<<8 | bi
}

// StitchPhase is the clap animation: the two ribbons stitch together while
// playing and unstitch when stopped. It is purely visual; playback starts on
// the clap itself, not on reaching the stitched state.
type StitchPhase int

const (
	Unstitched StitchPhase = iota
	Stitching
	Stitched
	Unstitching
)

func (p StitchPhase) String() string {
	switch p {
	case Unstitched:
		return "unstitched"
	case Stitching:
		return "stitching"
	case Stitched:
		return "stitched"
	case Unstitching:
		return "unstitching"
	}
	return "unknown"
}

// StitchState tracks the stitch animation. Progress runs 0–1.
type StitchState struct {
	phase    StitchPhase
	progress float64
}

func (s *StitchState) Phase() StitchPhase { return s.phase }
func (s *StitchState) Progress() float64  { return s.progress }

// Begin starts stitching from the current progress, so a clap mid-unstitch
// reverses smoothly.
func (s *StitchState) Begin() {
	if s.phase == Stitched {
		return
	}
	s.phase = Stitching
}

// End starts unstitching from the current progress.
func (s *StitchState) End() {
	if s.phase == Unstitched {
		return
	}
	s.phase = Unstitching
}

// Tick advances the animation by dt seconds and reports whether the phase
// settled into Stitched or Unstitched on this tick.
func (s *StitchState) Tick(dt float64) (settled bool) {
	switch s.phase {
	case Stitching:
		s.progress += stitchRate * dt
		if s.progress >= 1 {
			s.progress = 1
			s.phase = Stitched
			return true
		}
	case Unstitching:
		s.progress -= stitchRate * dt
		if s.progress <= 0 {
			s.progress = 0
			s.phase = Unstitched
			return true
		}
	}
	return false
}

func (s *StitchState) IsStitched() bool { return s.phase == Stitched }

// ScissorAnimation sweeps a cut line across the visible window after a snip
// has been stored, purely for display.
type ScissorAnimation struct {
	Name     string
	progress float64
	active   bool
}

func NewScissorAnimation(name string) *ScissorAnimation {
	return &ScissorAnimation{Name: name, active: true}
}

// Tick advances the sweep and reports true exactly once, when it finishes.
func (a *ScissorAnimation) Tick(dt float64) (done bool) {
	if !a.active {
		return false
	}
	a.progress += scissorsRate * dt
	if a.progress >= 1 {
		a.progress = 1
		a.active = false
		return true
	}
	return false
}

func (a *ScissorAnimation) Progress() float64 { return a.progress }
func (a *ScissorAnimation) Active() bool      { return a.active }

type trayItem struct {
	Name  string
	slide float64 // 0 entering, 1 at rest
}

// SnippetTray shows the most recent snippets sliding into place. It holds at
// most trayCapacity entries; older ones fall off the end.
type SnippetTray struct {
	items []trayItem
}

// Deposit adds a snippet to the front of the tray with its slide-in
// animation at the start.
func (t *SnippetTray) Deposit(name string) {
	t.items = append([]trayItem{{Name: name}}, t.items...)
	if len(t.items) > trayCapacity {
		t.items = t.items[:trayCapacity]
	}
}

// Tick advances every slide-in animation by dt seconds.
func (t *SnippetTray) Tick(dt float64) {
	for i := range t.items {
		t.items[i].slide += traySlideMax * dt
		if t.items[i].slide > 1 {
			t.items[i].slide = 1
		}
	}
}

// Names returns the tray contents, newest first.
func (t *SnippetTray) Names() []string {
	names := make([]string, len(t.items))
	for i, it := range t.items {
		names[i] = it.Name
	}
	return names
}

// Slide returns the slide progress of entry i, 1 when fully at rest.
func (t *SnippetTray) Slide(i int) float64 {
	if i < 0 || i >= len(t.items) {
		return 1
	}
	return t.items[i].slide
}

func (t *SnippetTray) Len() int { return len(t.items) }
