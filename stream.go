package loom

import (
	"fmt"

	"github.com/loomstream/loom/spigot"
)

// Snippet is an immutable out-of-band capture of paired digits over the
// absolute range [From, To). Once stored it has no relation to live cursor
// positions.
type Snippet struct {
	Name  string
	Pairs []Pair
	From  int
	To    int
}

// DualStream owns exactly two cursors with independent positions plus the
// snippet store. It is not safe for concurrent use; each DualStream belongs
// to exactly one goroutine.
type DualStream struct {
	left     *Cursor
	right    *Cursor
	snippets map[string]Snippet
	keys     []string // snippet names in first-insertion order
}

// NewDualStream builds both cursors at position 0 from the two
// configurations. Streams built from the same configuration pair always
// produce identical digit sequences.
func NewDualStream(left, right spigot.Config) (*DualStream, error) {
	l, err := NewCursor(left)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	r, err := NewCursor(right)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	return &DualStream{
		left:     l,
		right:    r,
		snippets: make(map[string]Snippet),
	}, nil
}

// Left gives direct access to the left cursor for side-specific advancement.
func (d *DualStream) Left() *Cursor { return d.left }

// Right gives direct access to the right cursor.
func (d *DualStream) Right() *Cursor { return d.right }

func (d *DualStream) LeftPos() int  { return d.left.pos }
func (d *DualStream) RightPos() int { return d.right.pos }

func (d *DualStream) LeftConfig() spigot.Config  { return d.left.cfg }
func (d *DualStream) RightConfig() spigot.Config { return d.right.cfg }

// ZipNext advances both sides by one and returns the digit pair. ok is false
// if either side is exhausted, in which case neither side has advanced: the
// two positions stay in lock step even on the defensive exhaustion path.
func (d *DualStream) ZipNext() (Pair, bool) {
	if _, ok := d.left.peek(); !ok {
		return Pair{}, false
	}
	if _, ok := d.right.peek(); !ok {
		return Pair{}, false
	}
	l, _ := d.left.Next()
	r, _ := d.right.Next()
	return Pair{Left: l, Right: r}, true
}

// ZipTake collects up to n pairs, advancing both sides by the number of pairs
// returned.
func (d *DualStream) ZipTake(n int) []Pair {
	out := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		p, ok := d.ZipNext()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// ZipFoldN streams n pairs through combine without materializing them,
// advancing both sides by n.
func ZipFoldN[T any](d *DualStream, n int, seed T, combine func(T, Pair) T) T {
	acc := seed
	for i := 0; i < n; i++ {
		p, ok := d.ZipNext()
		if !ok {
			break
		}
		acc = combine(acc, p)
	}
	return acc
}

// Twist exchanges the Left and Right cursors as whole units: configuration,
// position and source state all move together. O(1), no recomputation.
func (d *DualStream) Twist() {
	d.left, d.right = d.right, d.left
}

// Snip captures the absolute range [from, to) of both sides into a named
// snippet without reading or mutating the live cursors: each side gets a
// fresh source replayed from position 0, which makes the cost O(to) rather
// than O(to−from). Re-depositing under an existing name overwrites the pairs
// but keeps the name's original place in SnippetKeys.
func (d *DualStream) Snip(name string, from, to int) (Snippet, error) {
	if from > to {
		return Snippet{}, fmt.Errorf("snip %q: from %d > to %d", name, from, to)
	}
	l, err := NewCursor(d.left.cfg)
	if err != nil {
		return Snippet{}, err
	}
	r, err := NewCursor(d.right.cfg)
	if err != nil {
		return Snippet{}, err
	}
	l.Drop(from)
	r.Drop(from)
	lv := l.Take(to - from)
	rv := r.Take(to - from)
	n := len(lv)
	if len(rv) < n {
		n = len(rv)
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Left: lv[i], Right: rv[i]}
	}
	s := Snippet{Name: name, Pairs: pairs, From: from, To: to}
	if _, exists := d.snippets[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.snippets[name] = s
	return s, nil
}

// Snippet returns the stored snippet, if any.
func (d *DualStream) Snippet(name string) (Snippet, bool) {
	s, ok := d.snippets[name]
	return s, ok
}

// SnippetKeys lists stored snippet names in insertion order.
func (d *DualStream) SnippetKeys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Status summarizes both sides for display.
func (d *DualStream) Status() string {
	return fmt.Sprintf("Left: %s @ %d  Right: %s @ %d  snippets: %d",
		d.left.cfg, d.left.pos, d.right.cfg, d.right.pos, len(d.keys))
}
