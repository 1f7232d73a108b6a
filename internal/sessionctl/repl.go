package sessionctl

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	hasSession() bool
	Set(ctx context.Context) error
	Show(ctx context.Context) error
	Clear(ctx context.Context) error
	Rekey(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
// Handlers prompt through the same reader, so no read-ahead is allowed here.
// Handler errors are reported to the user and the loop continues.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		status := "logged out"
		if a.hasSession() {
			status = "logged in"
		}
		printlnFn(fmt.Sprintf("session (%s) > ", status))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		err = nil
		switch cmd {
		case "help":
			printlnFn("Available commands: set, show, clear, rekey, exit")
		case "set":
			err = a.Set(ctx)
		case "show":
			err = a.Show(ctx)
		case "clear":
			err = a.Clear(ctx)
		case "rekey":
			err = a.Rekey(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
