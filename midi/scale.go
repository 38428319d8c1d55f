// Package midi turns digit pairs into symbolic MIDI: the left digit of a pair
// selects a note duration, the right digit a pitch. It also serializes note
// sequences into standard MIDI files and defines the live output sink.
package midi

import "strings"

// Scale is a pitch collection defined as semitone offsets from a root note.
type Scale struct {
	Intervals []int
	Name      string
}

func Chromatic() Scale {
	iv := make([]int, 12)
	for i := range iv {
		iv[i] = i
	}
	return Scale{Intervals: iv, Name: "Chromatic"}
}

func Major() Scale {
	return Scale{Intervals: []int{0, 2, 4, 5, 7, 9, 11}, Name: "Major"}
}

func Minor() Scale {
	return Scale{Intervals: []int{0, 2, 3, 5, 7, 8, 10}, Name: "Minor"}
}

func PentatonicMajor() Scale {
	return Scale{Intervals: []int{0, 2, 4, 7, 9}, Name: "Pentatonic Major"}
}

func PentatonicMinor() Scale {
	return Scale{Intervals: []int{0, 3, 5, 7, 10}, Name: "Pentatonic Minor"}
}

func Dorian() Scale {
	return Scale{Intervals: []int{0, 2, 3, 5, 7, 9, 10}, Name: "Dorian"}
}

func Phrygian() Scale {
	return Scale{Intervals: []int{0, 1, 3, 5, 7, 8, 10}, Name: "Phrygian"}
}

func Lydian() Scale {
	return Scale{Intervals: []int{0, 2, 4, 6, 7, 9, 11}, Name: "Lydian"}
}

func Mixolydian() Scale {
	return Scale{Intervals: []int{0, 2, 4, 5, 7, 9, 10}, Name: "Mixolydian"}
}

func WholeTone() Scale {
	return Scale{Intervals: []int{0, 2, 4, 6, 8, 10}, Name: "Whole Tone"}
}

func Diminished() Scale {
	return Scale{Intervals: []int{0, 2, 3, 5, 6, 8, 9, 11}, Name: "Diminished"}
}

func CustomScale(intervals []int) Scale {
	return Scale{Intervals: intervals, Name: "Custom"}
}

func (s Scale) Len() int { return len(s.Intervals) }

// ScaleByName resolves the scale names accepted on command lines and in
// configuration files. Case, spaces, hyphens and underscores are ignored, so
// "Pentatonic Major", "pentatonic-major" and "pentatonicmajor" all match.
func ScaleByName(name string) (Scale, bool) {
	want := normalizeScaleName(name)
	for _, s := range []Scale{
		Chromatic(), Major(), Minor(), PentatonicMajor(), PentatonicMinor(),
		Dorian(), Phrygian(), Lydian(), Mixolydian(), WholeTone(), Diminished(),
	} {
		if normalizeScaleName(s.Name) == want {
			return s, true
		}
	}
	return Scale{}, false
}

func normalizeScaleName(name string) string {
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// PitchMap resolves a digit value to a MIDI note number by indexing into a
// scale, wrapping across octaves from a root note. Results clamp to 0–127.
type PitchMap struct {
	Root  int
	Scale Scale
}

func NewPitchMap(root int, scale Scale) PitchMap {
	return PitchMap{Root: root, Scale: scale}
}

// NoteFor maps digit d to a MIDI note number.
func (p PitchMap) NoteFor(d int) byte {
	n := p.Scale.Len()
	if n == 0 {
		return clampNote(p.Root + d)
	}
	octave := d / n
	degree := d % n
	return clampNote(p.Root + octave*12 + p.Scale.Intervals[degree])
}

func clampNote(n int) byte {
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return byte(n)
}
