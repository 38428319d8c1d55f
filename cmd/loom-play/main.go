// Command loom-play runs a live gesture-driven performance in the terminal.
// Gestures are simulated on standard input, one command per line:
//
//	h / H   pull the left ribbon (H pulls fast)
//	l / L   pull the right ribbon (L pulls fast)
//	t       twist the two ribbons
//	c       clap (start playing)
//	u       unclap (stop playing)
//	s NAME  scissors: snip the visible window into NAME
//	q       quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/loomstream/loom"
	"github.com/loomstream/loom/cmd"
	"github.com/loomstream/loom/midi"
	"github.com/loomstream/loom/performer"
	"github.com/loomstream/loom/spigot"
	"github.com/loomstream/loom/version"
)

func main() {
	configPath := flag.String("c", "", "performance setup file (yaml)")
	left := flag.String("left", "", "override left stream as constant:base")
	right := flag.String("right", "", "override right stream as constant:base")
	fps := flag.Int("fps", 30, "render frames per second")
	versionFlag := flag.Bool("v", false, "print version")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := performer.DefaultAppConfig()
	if *configPath != "" {
		var err error
		cfg, err = performer.LoadAppConfig(*configPath)
		if err != nil {
			fatal("%v", err)
		}
	}
	if *left != "" {
		c, err := spigot.ParseConfig(*left)
		if err != nil {
			fatal("invalid -left: %v", err)
		}
		cfg.Left = c
	}
	if *right != "" {
		c, err := spigot.ParseConfig(*right)
		if err != nil {
			fatal("invalid -right: %v", err)
		}
		cfg.Right = c
	}

	live, err := loom.NewDualStream(cfg.Left, cfg.Right)
	if err != nil {
		fatal("%v", err)
	}
	// the player gets its own stream so playback never races the display
	private, err := loom.NewDualStream(cfg.Left, cfg.Right)
	if err != nil {
		fatal("%v", err)
	}

	scale, ok := midi.ScaleByName(cfg.Scale)
	if !ok {
		fatal("unknown scale %q", cfg.Scale)
	}
	durations, ok := midi.DurationsByName(cfg.Durations, cfg.TicksPerQc, cfg.Left.Base)
	if !ok {
		fatal("unknown duration mapping %q", cfg.Durations)
	}

	sink := cmd.NewSink(logger)
	defer sink.Close()

	broker := performer.NewBroker()
	player := performer.NewPlayer(broker, private, sink, performer.PlayerConfig{
		Pitch:      midi.NewPitchMap(int(cfg.Root), scale),
		Duration:   durations,
		Program:    cfg.Program,
		TempoBPM:   cfg.TempoBPM,
		Velocity:   cfg.Velocity,
		Channel:    cfg.Channel,
		TicksPerQc: cfg.TicksPerQc,
	})
	go player.Run()

	model := performer.NewModel(broker, live, performer.ModelConfig{
		RibbonCapacity: cfg.Ribbon,
		Logger:         logger,
	})
	performer.SpawnGestureSource(broker, stdinSource{})

	fmt.Printf("loom: %s against %s\n", cfg.Left, cfg.Right)
	performer.RunFrames(model, *fps, render)
}

// stdinSource reads line-oriented key commands and emits gesture events.
// Snippet names arrive inline ("s NAME"), so it never competes with anything
// else for standard input.
type stdinSource struct{}

func (stdinSource) Run(sink chan<- any) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		key, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		var ev any
		switch key {
		case "h":
			ev = performer.PullLeft{Steps: 1, Velocity: 0.3}
		case "H":
			ev = performer.PullLeft{Steps: 5, Velocity: 0.9}
		case "l":
			ev = performer.PullRight{Steps: 1, Velocity: 0.3}
		case "L":
			ev = performer.PullRight{Steps: 5, Velocity: 0.9}
		case "t":
			ev = performer.Twist{}
		case "c":
			ev = performer.Clap{}
		case "u":
			ev = performer.Unclap{}
		case "s":
			ev = performer.Scissors{Name: strings.TrimSpace(rest)}
		case "q":
			performer.TrySend(sink, any(performer.Quit{}))
			return
		default:
			continue
		}
		performer.TrySend(sink, ev)
	}
	performer.TrySend(sink, any(performer.Quit{}))
}

func render(m *performer.Model) {
	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	b.WriteString(m.Status())
	b.WriteString("\n\n")
	renderRibbon(&b, "left ", m.LeftRibbon(), m.Highlight())
	renderRibbon(&b, "right", m.RightRibbon(), -1)
	b.WriteString("\nstitch: ")
	b.WriteString(m.Stitch().Phase().String())
	if names := m.Tray().Names(); len(names) > 0 {
		b.WriteString("\ntray:   ")
		b.WriteString(strings.Join(names, ", "))
	}
	for _, a := range m.Scissors() {
		fmt.Fprintf(&b, "\ncutting %q %3.0f%%", a.Name, a.Progress()*100)
	}
	b.WriteString("\n")
	os.Stdout.WriteString(b.String())
}

func renderRibbon(b *strings.Builder, label string, r *performer.RibbonState, highlight int) {
	b.WriteString(label)
	b.WriteString(" ")
	for _, p := range r.Patches() {
		if p.Index == highlight {
			fmt.Fprintf(b, "[%c]", spigot.DigitChar(p.Digit))
		} else {
			fmt.Fprintf(b, " %c ", spigot.DigitChar(p.Digit))
		}
	}
	b.WriteString("\n")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
