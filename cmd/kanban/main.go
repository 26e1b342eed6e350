// Package main provides the kanban CLI, the presentation-layer caller
// of the domain store. All domain logic lives in internal/store; the
// commands here parse input, issue store operations, and render output.
package main

import "os"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
