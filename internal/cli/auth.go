package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketapp/internal/session"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Signup prompts for an email and password and attempts to create a new
// account. Business failures (duplicate email) are reported through the
// notification channel; they do not abort the REPL.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	err = a.sessions.Signup(ctx, email, string(password))
	if err != nil && !errors.Is(err, session.ErrAlreadyExists) {
		return err
	}
	if err == nil {
		a.navigate(session.RouteLogin)
	}
	return nil
}

// Login prompts for credentials and a "stay logged in" choice and tries to
// authenticate. On success it navigates to the recorded redirect target,
// when one is pending, or to the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	stayAnswer, err := getSimpleText(a.reader, "Stay logged in? (y/N)", a.out)
	if err != nil {
		return err
	}
	stayLoggedIn := strings.EqualFold(stayAnswer, "y") || strings.EqualFold(stayAnswer, "yes")

	redirectTo := a.pendingRedirect

	target, err := a.sessions.Login(ctx, email, string(password), stayLoggedIn, redirectTo)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return nil
		}
		return err
	}

	// the stored target is consumed exactly once
	a.pendingRedirect = ""
	a.navigate(target)
	return nil
}

// Logout ends the session and returns to the public landing view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.navigate(session.RouteLanding)
	return nil
}

// requireAuth refuses an auth-gated command for anonymous users, remembering
// the intended destination so the next login can resume there.
func (a *App) requireAuth(route string) bool {
	if a.isLoggedIn() {
		return true
	}
	a.pendingRedirect = route
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}

func (a *App) navigate(route string) {
	fmt.Fprintf(a.out, "-- %s\n", route)
}
