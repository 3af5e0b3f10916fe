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

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Open(ctx context.Context, args []string) error
	Header(ctx context.Context, args []string) error
	Click(ctx context.Context, args []string) error
	APIBase(ctx context.Context, args []string) error
	Storage(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                 show available commands
//	  - login                authenticate
//	  - open <page>          open a page
//	  - whoami               show the stored session
//	  - apibase [url]        show or override the API origin
//	  - storage              list locally stored keys
//	  - reset                forget all local data
//	  - exit | quit          leave the program
//
//	Logged in, additionally:
//	  - header [--html]      show the header state or its markup
//	  - click <target|#id>   click a header element
//	  - logout               log out
//
// Handler errors are printed and the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("wh %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: open, header, click, whoami, apibase, storage, reset, logout, exit")
			} else {
				printlnFn("Available commands: login, open, whoami, apibase, storage, reset, exit")
			}

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "whoami":
			report(a.WhoAmI(ctx))

		case "open":
			report(a.Open(ctx, args))

		case "header":
			report(a.Header(ctx, args))

		case "click":
			report(a.Click(ctx, args))

		case "apibase":
			report(a.APIBase(ctx, args))

		case "storage":
			report(a.Storage(ctx))

		case "reset":
			report(a.Reset(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err)
	}
}
