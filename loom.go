// Package loom pairs two infinite digit streams into a single instrument.
//
// A Cursor wraps one spigot digit source together with a monotonic position;
// a DualStream owns a Left and a Right cursor with independent positions,
// advances them in lock step (zip), exchanges them atomically (twist) and
// snapshots digit ranges out of band into named snippets (snip) without
// touching the live cursors.
package loom

import (
	"fmt"

	"github.com/loomstream/loom/spigot"
)

// Pair is one lock-step step of the two streams: the Left digit drives note
// durations and the Right digit drives pitches downstream.
type Pair struct {
	Left  int
	Right int
}

// Cursor is a digit source plus the count of digits it has ever emitted.
// Advancing is forward only; there is no seeking.
type Cursor struct {
	cfg     spigot.Config
	src     spigot.Source
	pos     int
	peeked  int
	hasPeek bool
}

// NewCursor builds a cursor at position 0 from a validated configuration.
func NewCursor(cfg spigot.Config) (*Cursor, error) {
	src, err := spigot.NewSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	return &Cursor{cfg: cfg, src: src}, nil
}

// Next produces one digit and advances the position. ok is false only if the
// underlying source is exhausted (defensive; the built-in constants never
// terminate).
func (c *Cursor) Next() (int, bool) {
	d, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.hasPeek = false
	c.pos++
	return d, true
}

// peek buffers the next digit without advancing the position, so paired
// advancement can check both sides before committing either.
func (c *Cursor) peek() (int, bool) {
	if c.hasPeek {
		return c.peeked, true
	}
	d, ok := c.src.Next()
	if !ok {
		return 0, false
	}
	c.peeked = d
	c.hasPeek = true
	return d, true
}

// Drop advances the position by n without retaining the digits.
func (c *Cursor) Drop(n int) {
	for i := 0; i < n; i++ {
		if _, ok := c.Next(); !ok {
			return
		}
	}
}

// Take collects the next n digits in order, advancing the position by up to n.
func (c *Cursor) Take(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		d, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, d)
	}
	return out
}

// Pos is the count of digits this cursor has emitted.
func (c *Cursor) Pos() int { return c.pos }

func (c *Cursor) Config() spigot.Config { return c.cfg }
