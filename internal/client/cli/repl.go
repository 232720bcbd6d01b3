package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. args holds the words typed after it.
type command struct {
	name string
	run  func(ctx context.Context, args []string) error
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	currentView() view
	commands(v view) []command
	handleError(ctx context.Context, err error)
}

// runREPL starts a simple read–eval–print loop for the InstaGuard CLI.
//
// It reads a line from reader, parses the first word as the command and
// dispatches to the command table of the current view. The loop exits on
// EOF or when the user types "exit" or "quit". Command errors are handed to
// a.handleError, which prints them and may switch the view.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ig %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		cmds := a.commands(a.currentView())

		switch name {
		case "help":
			printlnFn("Available commands: " + commandNames(cmds) + ", help, exit")
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := findCommand(cmds, name)
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if err := cmd.run(ctx, args); err != nil {
			a.handleError(ctx, err)
		}
	}
}

func findCommand(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func commandNames(cmds []command) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.name)
	}
	return strings.Join(names, ", ")
}
