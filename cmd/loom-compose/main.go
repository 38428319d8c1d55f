// Command loom-compose weaves two digit streams into a standard MIDI file.
//
// Example:
//
//	loom-compose -left pi:10 -right e:10 -n 64 -scale pentatonic-major -o weave.mid
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/loomstream/loom"
	"github.com/loomstream/loom/midi"
	"github.com/loomstream/loom/spigot"
	"github.com/loomstream/loom/version"
)

func main() {
	left := flag.String("left", "pi:10", "left (duration) stream as constant:base")
	right := flag.String("right", "e:10", "right (pitch) stream as constant:base")
	notes := flag.Int("n", 64, "number of notes to compose")
	out := flag.String("o", "loom.mid", "output file")
	tempo := flag.Int("tempo", 120, "tempo in beats per minute")
	program := flag.Int("program", 0, "General MIDI program number 0-127")
	scaleName := flag.String("scale", "major", "pitch scale: chromatic, major, minor, pentatonic-major, pentatonic-minor, dorian, phrygian, lydian, mixolydian, whole-tone, diminished")
	root := flag.Int("root", 60, "root MIDI note of the scale")
	durations := flag.String("durations", "musical", "duration mapping: musical, linear, exponential, fixed")
	tpq := flag.Int("tpq", 480, "ticks per quarter note")
	velocity := flag.Int("velocity", 100, "note velocity 0-127")
	channel := flag.Int("channel", 0, "MIDI channel 0-15")
	name := flag.String("name", "loom", "track name")
	dropLeft := flag.Int("dropleft", 0, "skip this many left digits before composing")
	dropRight := flag.Int("dropright", 0, "skip this many right digits before composing")
	twist := flag.Bool("twist", false, "swap the two streams before composing")
	versionFlag := flag.Bool("v", false, "print version")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}

	leftCfg, err := spigot.ParseConfig(*left)
	if err != nil {
		fatal("invalid -left: %v", err)
	}
	rightCfg, err := spigot.ParseConfig(*right)
	if err != nil {
		fatal("invalid -right: %v", err)
	}
	scale, ok := midi.ScaleByName(*scaleName)
	if !ok {
		fatal("unknown scale %q", *scaleName)
	}
	dur, ok := midi.DurationsByName(*durations, *tpq, leftCfg.Base)
	if !ok {
		fatal("unknown duration mapping %q", *durations)
	}

	stream, err := loom.NewDualStream(leftCfg, rightCfg)
	if err != nil {
		fatal("%v", err)
	}
	composer := midi.NewComposer(stream).
		Tempo(*tempo).
		Instrument(midi.GM(*program)).
		PitchMap(midi.NewPitchMap(*root, scale)).
		DurationMap(dur).
		TicksPerQuarter(*tpq).
		Velocity(*velocity).
		Channel(byte(*channel)).
		Name(*name).
		DropLeft(*dropLeft).
		DropRight(*dropRight)
	if *twist {
		composer.Twist()
	}

	track, err := composer.Compose(*notes)
	if err != nil {
		fatal("compose: %v", err)
	}
	if err := track.WriteFile(*out); err != nil {
		fatal("write %s: %v", *out, err)
	}
	fmt.Printf("wrote %d notes from %s vs %s to %s\n", *notes, leftCfg, rightCfg, *out)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
