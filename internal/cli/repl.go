package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	requireAuth(route string) bool
	flushToasts()
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	CreateTicket(ctx context.Context) error
	ListTickets(ctx context.Context) error
	ShowTicket(ctx context.Context) error
	EditTicket(ctx context.Context) error
	DeleteTicket(ctx context.Context) error
	SearchTickets(ctx context.Context) error
}

// routeTickets is recorded as the intended destination when an anonymous
// user tries a ticket command; the next login resumes there.
const routeTickets = "/tickets"

// runREPL starts a simple read–eval–print loop for the ticketapp CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current user (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - signup         - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in (ticket commands are auth-gated):
//	  - create         - create a ticket
//	  - list           - list all tickets
//	  - show           - show a single ticket (interactive ID prompt)
//	  - edit           - partially update a ticket
//	  - delete         - delete a ticket
//	  - search         - filter by status/priority/free text
//	  - logout         - log out
//
// Handler errors are reported inline and do not terminate the loop; pending
// notifications are flushed after every command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ticketapp %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: create, (l)ist, show, edit, delete, search, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "create":
			if a.requireAuth(routeTickets) {
				err = a.CreateTicket(ctx)
			}

		case "l", "list":
			if a.requireAuth(routeTickets) {
				err = a.ListTickets(ctx)
			}

		case "show":
			if a.requireAuth(routeTickets) {
				err = a.ShowTicket(ctx)
			}

		case "edit":
			if a.requireAuth(routeTickets) {
				err = a.EditTicket(ctx)
			}

		case "delete":
			if a.requireAuth(routeTickets) {
				err = a.DeleteTicket(ctx)
			}

		case "search":
			if a.requireAuth(routeTickets) {
				err = a.SearchTickets(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
		a.flushToasts()
	}
}
