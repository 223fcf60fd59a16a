package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) status() string {
	if u := a.sessions.CurrentUser(); u != "" {
		return fmt.Sprintf("(%s)", u)
	}
	return ""
}

// Run starts the interactive loop on stdin.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to ticketapp (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Logged in as %s\n", a.sessions.CurrentUser())
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
