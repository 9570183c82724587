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
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Profile(ctx context.Context) error
	Cards(ctx context.Context) error
	Transactions(ctx context.Context) error
	Order(ctx context.Context) error
	Track(ctx context.Context, orderID string) error
}

// runREPL starts a simple read–eval–print loop for the Lufa CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate
//	  - status         show the session state
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - profile        show the account profile
//	  - cards          list saved payment cards
//	  - transactions   list the billing history
//	  - order          show the current order
//	  - track [id]     show delivery tracking (defaults to the current order)
//	  - status         show the session state
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("lufa%s> ", prefixStatus(statusFn(ctx))))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: profile, cards, transactions, order, track [id], status, logout, exit")
			} else {
				printlnFn("Available commands: login, status, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "status":
			cmdErr = a.Status(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "cards":
			cmdErr = a.Cards(ctx)

		case "transactions", "tx":
			cmdErr = a.Transactions(ctx)

		case "order":
			cmdErr = a.Order(ctx)

		case "track":
			orderID := ""
			if len(args) > 0 {
				orderID = args[0]
			}
			cmdErr = a.Track(ctx, orderID)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
	}
}

func prefixStatus(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
