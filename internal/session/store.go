// Package session owns the simulated signup/login/logout lifecycle.
//
// Accounts and the session singleton live in the local key-value storage;
// there is no server and no real authentication. The account directory is an
// ordered JSON array under usersKey; the active session is a JSON singleton
// under sessionKey.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticketapp/internal/localstore"
	"ticketapp/internal/logging"
	"ticketapp/internal/models"
	"ticketapp/internal/notify"
)

const (
	usersKey   = "ticketapp_users"
	sessionKey = "ticketapp_session"
)

// Navigation targets the store hands back to the interface layer.
const (
	RouteLanding   = "/"
	RouteLogin     = "/auth/login"
	RouteDashboard = "/dashboard"
)

// Store manages the account directory and the current session.
//
// It is not safe for concurrent use: all operations run to completion in
// response to a single user action.
type Store struct {
	storage  localstore.Store
	notifier *notify.Center
	log      logging.Logger

	// now is an indirection for tests.
	now func() time.Time

	currentUser string
}

func NewStore(storage localstore.Store, notifier *notify.Center, log logging.Logger) *Store {
	return &Store{
		storage:  storage,
		notifier: notifier,
		log:      log.With("store", "session"),
		now:      time.Now,
	}
}

// CurrentUser returns the email of the authenticated user, or "" when
// nobody is logged in.
func (s *Store) CurrentUser() string { return s.currentUser }

// IsAuthenticated reports whether a user is currently logged in.
func (s *Store) IsAuthenticated() bool { return s.currentUser != "" }

// Signup registers a new account. Emails are compared exactly
// (case-sensitive). On success the caller should navigate to the login view.
func (s *Store) Signup(ctx context.Context, email, password string) error {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}

	for _, a := range accounts {
		if a.Email == email {
			s.notifier.Error("User already exists. Please log in.")
			return ErrAlreadyExists
		}
	}

	accounts = append(accounts, models.Account{Email: email, Password: password})
	if err := s.saveJSON(ctx, usersKey, accounts); err != nil {
		return err
	}

	s.log.Info(ctx, "account created", "email", email)
	s.notifier.Success("Signup successful! Please log in.")
	return nil
}

// Login authenticates against the account directory and, on success,
// persists a fresh session (overwriting any prior one) and returns the
// navigation target: redirectTo when one was recorded, otherwise the
// dashboard.
func (s *Store) Login(ctx context.Context, email, password string, stayLoggedIn bool, redirectTo string) (string, error) {
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return "", err
	}

	found := false
	for _, a := range accounts {
		if a.Email == email && a.Password == password {
			found = true
			break
		}
	}
	if !found {
		s.notifier.Error("Invalid credentials. Please try again.")
		return "", ErrInvalidCredentials
	}

	sess := models.Session{
		Token:        models.SessionToken,
		User:         email,
		StayLoggedIn: stayLoggedIn,
	}
	if !stayLoggedIn {
		sess.CreatedAt = s.now().UnixMilli()
	}
	if err := s.saveJSON(ctx, sessionKey, sess); err != nil {
		return "", err
	}

	s.currentUser = email
	s.log.Info(ctx, "login", "email", email, "stay_logged_in", stayLoggedIn)
	s.notifier.Success("Login successful!")

	if redirectTo != "" {
		return redirectTo, nil
	}
	return RouteDashboard, nil
}

// Logout clears the persisted session and the in-memory user. It is
// idempotent: with no active session only the notification is emitted.
// The caller should navigate to the public landing view.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, sessionKey); err != nil {
		return err
	}
	s.currentUser = ""
	s.notifier.Info("You have been logged out.")
	return nil
}

// Restore runs once at application start. A valid persisted session sets the
// current user; an expired or unreadable one is deleted. This is the only
// time-dependent check in the system.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.storage.GetItem(ctx, sessionKey)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.log.Warn(ctx, "discarding unreadable session record", "error", err)
		return s.storage.RemoveItem(ctx, sessionKey)
	}

	if !sess.Valid(s.now()) {
		s.log.Info(ctx, "session expired", "email", sess.User)
		return s.storage.RemoveItem(ctx, sessionKey)
	}

	s.currentUser = sess.User
	s.log.Info(ctx, "session restored", "email", sess.User)
	return nil
}

// loadAccounts reads the account directory. A missing or unreadable record
// yields an empty directory.
func (s *Store) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, err := s.storage.GetItem(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		s.log.Warn(ctx, "resetting unreadable account directory", "error", err)
		return nil, nil
	}
	return accounts, nil
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.storage.SetItem(ctx, key, data)
}
