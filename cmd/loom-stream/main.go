// Command loom-stream is an interactive shell around a dual digit stream.
// It exposes the cursor operations directly, which makes it handy for
// exploring constants and rehearsing snip ranges before a performance.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/loomstream/loom"
	"github.com/loomstream/loom/spigot"
	"github.com/loomstream/loom/version"
)

func main() {
	left := flag.String("left", "pi:10", "left stream as constant:base")
	right := flag.String("right", "e:10", "right stream as constant:base")
	versionFlag := flag.Bool("v", false, "print version")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}

	leftCfg, err := spigot.ParseConfig(*left)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -left: %v\n", err)
		os.Exit(1)
	}
	rightCfg, err := spigot.ParseConfig(*right)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -right: %v\n", err)
		os.Exit(1)
	}
	stream, err := loom.NewDualStream(leftCfg, rightCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := repl(stream); err != nil && err != io.EOF {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func repl(stream *loom.DualStream) error {
	rl, err := readline.New("loom> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(stream.Status())
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return err
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name, args := fields[0], fields[1:]
		if name == "quit" || name == "exit" {
			return nil
		}
		if err := eval(stream, name, args); err != nil {
			fmt.Println(err)
		}
	}
}

type command struct {
	name  string
	usage string
	run   func(*loom.DualStream, []string) error
	arity int // -n means len(args) must be >= n
}

var commands []command

// Assigned in init to avoid an initialization cycle: helpCommand's body
// ranges over commands.
func init() {
	commands = []command{
		{"next", "next", nextCommand, 0},
		{"zip", "zip <n>", zipCommand, 1},
		{"drop", "drop left|right <n>", dropCommand, 2},
		{"take", "take left|right <n>", takeCommand, 2},
		{"twist", "twist", twistCommand, 0},
		{"snip", "snip <name> <from> <to>", snipCommand, 3},
		{"show", "show <name>", showCommand, 1},
		{"snippets", "snippets", snippetsCommand, 0},
		{"status", "status", statusCommand, 0},
		{"help", "help", helpCommand, 0},
	}
}

func eval(stream *loom.DualStream, name string, args []string) error {
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if cmd.arity >= 0 && len(args) != cmd.arity {
			return fmt.Errorf("usage: %s", cmd.usage)
		}
		if cmd.arity < 0 && len(args) < -cmd.arity {
			return fmt.Errorf("usage: %s", cmd.usage)
		}
		return cmd.run(stream, args)
	}
	return fmt.Errorf("unknown command %q, try help", name)
}

func side(stream *loom.DualStream, s string) (*loom.Cursor, error) {
	switch s {
	case "left", "l":
		return stream.Left(), nil
	case "right", "r":
		return stream.Right(), nil
	}
	return nil, fmt.Errorf("side must be left or right, got %q", s)
}

func count(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count must be a non-negative integer, got %q", s)
	}
	return n, nil
}

func nextCommand(stream *loom.DualStream, _ []string) error {
	pair, ok := stream.ZipNext()
	if !ok {
		return fmt.Errorf("stream exhausted")
	}
	fmt.Printf("(%d, %d)\n", pair.Left, pair.Right)
	return nil
}

func zipCommand(stream *loom.DualStream, args []string) error {
	n, err := count(args[0])
	if err != nil {
		return err
	}
	for _, pair := range stream.ZipTake(n) {
		fmt.Printf("(%d, %d) ", pair.Left, pair.Right)
	}
	fmt.Println()
	return nil
}

func dropCommand(stream *loom.DualStream, args []string) error {
	c, err := side(stream, args[0])
	if err != nil {
		return err
	}
	n, err := count(args[1])
	if err != nil {
		return err
	}
	c.Drop(n)
	fmt.Printf("%s now at %d\n", args[0], c.Pos())
	return nil
}

func takeCommand(stream *loom.DualStream, args []string) error {
	c, err := side(stream, args[0])
	if err != nil {
		return err
	}
	n, err := count(args[1])
	if err != nil {
		return err
	}
	for _, d := range c.Take(n) {
		fmt.Printf("%c", spigot.DigitChar(d))
	}
	fmt.Println()
	return nil
}

func twistCommand(stream *loom.DualStream, _ []string) error {
	stream.Twist()
	fmt.Println(stream.Status())
	return nil
}

func snipCommand(stream *loom.DualStream, args []string) error {
	from, err := count(args[1])
	if err != nil {
		return err
	}
	to, err := count(args[2])
	if err != nil {
		return err
	}
	snippet, err := stream.Snip(args[0], from, to)
	if err != nil {
		return err
	}
	fmt.Printf("snipped %q: %d pairs over [%d, %d)\n",
		snippet.Name, len(snippet.Pairs), snippet.From, snippet.To)
	return nil
}

func showCommand(stream *loom.DualStream, args []string) error {
	snippet, ok := stream.Snippet(args[0])
	if !ok {
		return fmt.Errorf("no snippet named %q", args[0])
	}
	fmt.Printf("%q [%d, %d): ", snippet.Name, snippet.From, snippet.To)
	for _, pair := range snippet.Pairs {
		fmt.Printf("(%d, %d) ", pair.Left, pair.Right)
	}
	fmt.Println()
	return nil
}

func snippetsCommand(stream *loom.DualStream, _ []string) error {
	keys := stream.SnippetKeys()
	if len(keys) == 0 {
		fmt.Println("no snippets")
		return nil
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}

func statusCommand(stream *loom.DualStream, _ []string) error {
	fmt.Println(stream.Status())
	return nil
}

func helpCommand(_ *loom.DualStream, _ []string) error {
	for _, cmd := range commands {
		fmt.Println(cmd.usage)
	}
	fmt.Println("quit")
	return nil
}
