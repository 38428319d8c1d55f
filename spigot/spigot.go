// Package spigot produces the digits of mathematical constants one at a time,
// in any base from 2 to 36, strictly in order from the first digit.
//
// A Source is sequential only: there is no random access, and reaching digit n
// always means producing the n digits before it. Sources constructed from the
// same Config are deterministic and produce identical digit sequences.
package spigot

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Constant identifies one of the supported mathematical constants.
type Constant int

const (
	Pi Constant = iota
	E
	Ln2
	Liouville
	Champernowne
	ThueMorse
	numConstants
)

// MinBase and MaxBase bound the numeric bases a Config accepts.
const (
	MinBase = 2
	MaxBase = 36
)

// Constants returns all supported constants in menu order.
func Constants() []Constant {
	return []Constant{Pi, E, Ln2, Liouville, Champernowne, ThueMorse}
}

func (c Constant) Name() string {
	switch c {
	case Pi:
		return "π (pi)"
	case E:
		return "e (Euler's number)"
	case Ln2:
		return "ln 2 (natural log of 2)"
	case Liouville:
		return "Liouville's constant"
	case Champernowne:
		return "Champernowne's constant"
	case ThueMorse:
		return "Thue–Morse sequence"
	}
	return "unknown"
}

// Approx returns a short reference expansion for display next to the name.
func (c Constant) Approx() string {
	switch c {
	case Pi:
		return "3.14159265358979…"
	case E:
		return "2.71828182845904…"
	case Ln2:
		return "0.69314718055994…"
	case Liouville:
		return "0.11000100000000…"
	case Champernowne:
		return "0.12345678910111…"
	case ThueMorse:
		return "0.01101001100101… (binary)"
	}
	return ""
}

func (c Constant) String() string {
	switch c {
	case Pi:
		return "pi"
	case E:
		return "e"
	case Ln2:
		return "ln2"
	case Liouville:
		return "liouville"
	case Champernowne:
		return "champernowne"
	case ThueMorse:
		return "thuemorse"
	}
	return fmt.Sprintf("Constant(%d)", int(c))
}

// ParseConstant is the inverse of String. It accepts the short identifiers
// used on command lines and in configuration files.
func ParseConstant(s string) (Constant, error) {
	for _, c := range Constants() {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown constant %q (want one of pi, e, ln2, liouville, champernowne, thuemorse)", s)
}

func (c Constant) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func (c *Constant) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseConstant(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Config picks a constant and a base. It is immutable and fully determines
// the digit sequence of any Source built from it.
type Config struct {
	Constant Constant `yaml:"constant"`
	Base     int      `yaml:"base"`
}

// NewConfig validates the base range before returning a Config.
func NewConfig(c Constant, base int) (Config, error) {
	cfg := Config{Constant: c, Base: base}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Constant < 0 || c.Constant >= numConstants {
		return fmt.Errorf("unknown constant %d", int(c.Constant))
	}
	if c.Base < MinBase || c.Base > MaxBase {
		return fmt.Errorf("base must be %d–%d, got %d", MinBase, MaxBase, c.Base)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%s base %d", c.Constant, c.Base)
}

// ParseConfig parses a "constant:base" string such as "pi:10" or "e:2". A
// missing ":base" part defaults to base 10.
func ParseConfig(s string) (Config, error) {
	name, baseStr, hasBase := strings.Cut(s, ":")
	constant, err := ParseConstant(name)
	if err != nil {
		return Config{}, err
	}
	base := 10
	if hasBase {
		if _, err := fmt.Sscanf(baseStr, "%d", &base); err != nil {
			return Config{}, fmt.Errorf("invalid base %q", baseStr)
		}
	}
	return NewConfig(constant, base)
}

// Source emits the digits of a constant strictly sequentially, starting from
// the most significant integer-part digit. Next reports ok=false only if the
// source is exhausted, which none of the built-in constants ever are.
type Source interface {
	Next() (digit int, ok bool)
}

// NewSource builds a fresh Source at position 0 for the given Config.
func NewSource(cfg Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Constant {
	case Pi, E, Ln2:
		return newSeriesSource(cfg.Constant, cfg.Base), nil
	case Liouville:
		return &liouvilleSource{next: 1}, nil
	case Champernowne:
		return &champernowneSource{base: cfg.Base}, nil
	case ThueMorse:
		return &thueMorseSource{}, nil
	}
	return nil, fmt.Errorf("unknown constant %d", int(cfg.Constant))
}

// DigitChar formats a digit value 0–35 as 0–9, a–z.
func DigitChar(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('a' + d - 10)
}
