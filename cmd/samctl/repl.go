package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/gopherlabs/suffixautomaton/automaton"
)

// runRepl reads the source text from stdin, builds the automaton, and
// offers a four-option menu: [o]ccurrence, [f]irst, [a]ll positions,
// [q]uit.
func runRepl(cmd *cobra.Command, opts *cliOptions) error {
	a, body, err := buildFromStdin(cmd, opts)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("samctl: open readline: %w", err)
	}
	defer rl.Close()

	out := cmd.OutOrStdout()
	for {
		fmt.Fprintln(out, "Would you like to check for the [o]ccurrence of a substring, the [f]irst position of a substring, [a]ll positions of a substring, or [q]uit?")
		choice, err := readMenuChoice(rl)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return err
		}

		switch choice {
		case 'q':
			fmt.Fprintln(out, "Quitting")
			return nil
		case 'o':
			pattern, err := promptLine(rl, out, "Enter a substring to see if it occurs:")
			if err != nil {
				return replReadErr(err)
			}
			printOccurrence(out, body, pattern, a.Contains([]byte(pattern)))
		case 'f':
			pattern, err := promptLine(rl, out, "Enter a substring to see its first position:")
			if err != nil {
				return replReadErr(err)
			}
			printFirst(out, body, pattern, a)
		case 'a':
			pattern, err := promptLine(rl, out, "Enter a substring to see its positions:")
			if err != nil {
				return replReadErr(err)
			}
			printPositions(out, body, pattern, a)
		}
	}
}

func replReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

// readMenuChoice reads lines until one starts with o, f, a, or q.
func readMenuChoice(rl *readline.Instance) (byte, error) {
	for {
		line, err := rl.Readline()
		if err != nil {
			return 0, err
		}
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case 'o', 'f', 'a', 'q':
			return line[0], nil
		}
	}
}

func promptLine(rl *readline.Instance, out io.Writer, prompt string) (string, error) {
	fmt.Fprintln(out, prompt)
	return rl.Readline()
}

func printOccurrence(out io.Writer, body []byte, pattern string, found bool) {
	if found {
		fmt.Fprintf(out, "YES, %q contains the substring %q\n", body, pattern)
	} else {
		fmt.Fprintf(out, "No, %q does not contain the substring %q\n", body, pattern)
	}
}

func printFirst(out io.Writer, body []byte, pattern string, a *automaton.Automaton) {
	pos, ok := a.First([]byte(pattern))
	if !ok {
		fmt.Fprintf(out, "NO, %q does not contain the substring %q\n", body, pattern)
		return
	}
	fmt.Fprintf(out, "YES, %q contains the substring %q at position %d:\n", body, pattern, pos)
	printContext(out, body, pattern, pos)
}

func printPositions(out io.Writer, body []byte, pattern string, a *automaton.Automaton) {
	positions := a.Positions([]byte(pattern))
	if len(positions) == 0 {
		fmt.Fprintf(out, "NO, %q does not contain the substring %q\n", body, pattern)
		return
	}
	fmt.Fprintf(out, "YES, %q contains the substring %q at positions\n[ ", body, pattern)
	for _, p := range positions {
		fmt.Fprintf(out, "%d ", p)
	}
	fmt.Fprintln(out, "]")
	for _, p := range positions {
		printContext(out, body, pattern, p)
	}
}

// printContext renders up to 10 bytes of surrounding context around a
// match, matching the original CLI's windowed preview.
func printContext(out io.Writer, body []byte, pattern string, pos int) {
	const window = 10
	start := pos - window
	if start < 0 {
		start = 0
	}
	if pos > window {
		fmt.Fprint(out, "...")
	}
	fmt.Fprint(out, string(body[start:pos]))
	fmt.Fprintf(out, "(%s)", pattern)

	end := pos + len(pattern) + window
	if end > len(body) {
		end = len(body)
	}
	afterStart := pos + len(pattern)
	fmt.Fprint(out, string(body[afterStart:end]))
	if end < len(body) {
		fmt.Fprint(out, "...")
	}
	fmt.Fprintln(out)
}
