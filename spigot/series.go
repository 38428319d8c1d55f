package spigot

import "math/big"

// seriesGuard is the number of extra fractional digits computed beyond what a
// growth step exposes. The truncation error of the series is a handful of
// units in the last place, so the trusted digits are always exact.
const seriesGuard = 16

// seriesSource produces the digits of π, e and ln 2 by evaluating their
// series with scaled big.Int arithmetic. The whole expansion is recomputed
// with doubled precision each time the buffered digits run out; already
// emitted digits are never rewritten, so the sequence a cursor observes is
// stable across growth steps.
type seriesSource struct {
	constant Constant
	base     int
	digits   []int
	emitted  int
	frac     int // fractional digits trusted so far
}

func newSeriesSource(c Constant, base int) *seriesSource {
	return &seriesSource{constant: c, base: base}
}

func (s *seriesSource) Next() (int, bool) {
	for s.emitted >= len(s.digits) {
		s.grow()
	}
	d := s.digits[s.emitted]
	s.emitted++
	return d, true
}

func (s *seriesSource) grow() {
	frac := s.frac * 2
	if frac < 64 {
		frac = 64
	}
	s.frac = frac

	prec := frac + seriesGuard
	scale := new(big.Int).Exp(big.NewInt(int64(s.base)), big.NewInt(int64(prec)), nil)

	var scaled *big.Int
	switch s.constant {
	case Pi:
		scaled = machinPi(scale)
	case E:
		scaled = eulerE(scale)
	default:
		scaled = ln2Series(scale)
	}

	all := digitsOf(scaled, s.base, prec)
	intLen := len(all) - prec
	trusted := all[:intLen+frac]
	// append only past what was already handed out
	if len(trusted) > len(s.digits) {
		s.digits = append(s.digits, trusted[len(s.digits):]...)
	}
}

// digitsOf converts floor(C·base^prec) to its digit values, most significant
// first, padding with leading zeros so that at least one integer digit exists.
func digitsOf(v *big.Int, base, prec int) []int {
	text := v.Text(base)
	if len(text) < prec+1 {
		pad := make([]byte, prec+1-len(text))
		for i := range pad {
			pad[i] = '0'
		}
		text = string(pad) + text
	}
	digits := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c <= '9' {
			digits[i] = int(c - '0')
		} else {
			digits[i] = int(c-'a') + 10
		}
	}
	return digits
}

// machinPi returns floor(π·scale) via Machin's formula
// π = 16·atan(1/5) − 4·atan(1/239).
func machinPi(scale *big.Int) *big.Int {
	a := arctanRecip(5, new(big.Int).Mul(scale, big.NewInt(16)))
	b := arctanRecip(239, new(big.Int).Mul(scale, big.NewInt(4)))
	return a.Sub(a, b)
}

// arctanRecip computes floor(m·atan(1/x)) from the alternating series
// atan(1/x) = Σ (−1)^k / ((2k+1)·x^(2k+1)).
func arctanRecip(x int64, m *big.Int) *big.Int {
	sum := new(big.Int)
	term := new(big.Int).Quo(m, big.NewInt(x))
	xx := big.NewInt(x * x)
	t := new(big.Int)
	for k := int64(0); term.Sign() != 0; k++ {
		t.Quo(term, big.NewInt(2*k+1))
		if k%2 == 0 {
			sum.Add(sum, t)
		} else {
			sum.Sub(sum, t)
		}
		term.Quo(term, xx)
	}
	return sum
}

// eulerE returns floor(e·scale) from e = Σ 1/k!.
func eulerE(scale *big.Int) *big.Int {
	sum := new(big.Int)
	term := new(big.Int).Set(scale)
	for k := int64(1); term.Sign() != 0; k++ {
		sum.Add(sum, term)
		term.Quo(term, big.NewInt(k))
	}
	return sum
}

// ln2Series returns floor(ln2·scale) from ln 2 = Σ 1/(k·2^k).
func ln2Series(scale *big.Int) *big.Int {
	sum := new(big.Int)
	pow := new(big.Int).Set(scale)
	t := new(big.Int)
	for k := int64(1); ; k++ {
		pow.Rsh(pow, 1)
		if pow.Sign() == 0 {
			break
		}
		t.Quo(pow, big.NewInt(k))
		sum.Add(sum, t)
	}
	return sum
}
