// Package main is the entry point for datecalc.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/zorak1103/datecalc/cmd"
)

func main() {
	// Unhandled panics print the stack trace and exit with code 1, the same
	// exit code as a parse or configuration error.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n❌ PANIC: %v\n", r)
			fmt.Fprintf(os.Stderr, "\nStack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
