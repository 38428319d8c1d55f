package spigot

import "math/bits"

// The pattern constants have digit sequences that can be generated directly,
// without any arbitrary-precision arithmetic. All three have integer part 0.

// liouvilleSource emits Liouville's constant Σ base^(−k!): the fractional
// digit at position n is 1 exactly when n is a factorial.
type liouvilleSource struct {
	next    int   // fractional position of the next digit, starts at 1
	fact    int64 // next factorial position, k!
	k       int64
	started bool
}

func (s *liouvilleSource) Next() (int, bool) {
	if !s.started {
		s.started = true
		s.fact = 1
		s.k = 1
		return 0, true
	}
	pos := int64(s.next)
	s.next++
	if pos == s.fact {
		s.k++
		s.fact *= s.k
		return 1, true
	}
	return 0, true
}

// champernowneSource concatenates 1, 2, 3, … written in the configured base.
type champernowneSource struct {
	base    int
	n       int64 // number currently being spelled out
	buf     []int // remaining digits of n, most significant first
	started bool
}

func (s *champernowneSource) Next() (int, bool) {
	if !s.started {
		s.started = true
		return 0, true
	}
	if len(s.buf) == 0 {
		s.n++
		s.buf = s.buf[:0]
		for v := s.n; v > 0; v /= int64(s.base) {
			s.buf = append(s.buf, int(v%int64(s.base)))
		}
		for i, j := 0, len(s.buf)-1; i < j; i, j = i+1, j-1 {
			s.buf[i], s.buf[j] = s.buf[j], s.buf[i]
		}
	}
	d := s.buf[0]
	s.buf = s.buf[1:]
	return d, true
}

// thueMorseSource emits the Thue–Morse sequence t(n) = parity of ones in n.
// The digits are 0 and 1 in every base.
type thueMorseSource struct {
	n       uint64
	started bool
}

func (s *thueMorseSource) Next() (int, bool) {
	if !s.started {
		s.started = true
		return 0, true
	}
	d := bits.OnesCount64(s.n) & 1
	s.n++
	return d, true
}
