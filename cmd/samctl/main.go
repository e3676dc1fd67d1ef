// Command samctl is a thin CLI collaborator: a REPL over a suffix
// automaton built from stdin, and a batch subcommand that runs the
// positions.in test harness and emits a CSV report. Neither is part
// of the automaton package's contract; both talk to it only through
// package automaton's exported API.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
