package cli

import "fmt"

// flushToasts drains pending notifications and prints them in arrival
// order. In a terminal a notification's display lifetime collapses to
// printing once and moving on.
func (a *App) flushToasts() {
	for _, n := range a.notifier.Flush() {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Message)
	}
}
