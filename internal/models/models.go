// Package models defines the persisted data structures: accounts, the
// session singleton, and tickets.
package models

import "time"

// Account is a registered user: an email/password pair. Passwords are kept
// in clear text; there is no real security boundary in this application.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionToken is the constant placeholder written into every session.
// There is no real authentication behind it.
const SessionToken = "demo_token_123"

// SessionTTL limits the lifetime of sessions created without "stay logged in".
const SessionTTL = 30 * time.Minute

// Session marks the currently authenticated user. At most one session
// exists at a time. CreatedAt is a millisecond epoch timestamp and is set
// only when StayLoggedIn is false.
type Session struct {
	Token        string `json:"token"`
	User         string `json:"user"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
	StayLoggedIn bool   `json:"stayLoggedIn,omitempty"`
}

// Valid reports whether the session is still usable at the given moment.
// Sessions with StayLoggedIn never expire; others expire SessionTTL after
// creation.
func (s Session) Valid(now time.Time) bool {
	if s.StayLoggedIn {
		return true
	}
	created := time.UnixMilli(s.CreatedAt)
	return now.Sub(created) < SessionTTL
}

// Status classifies a ticket's progress.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

// ValidStatus reports whether s is one of the known status values.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Priority classifies a ticket's urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known priority values.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Ticket is a support-tracking record.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TicketPatch is a partial update: nil fields keep their prior values.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
}

// Apply merges the non-nil patch fields over t.
func (p TicketPatch) Apply(t *Ticket) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}
