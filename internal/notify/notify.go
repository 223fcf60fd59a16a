// Package notify implements the transient notification channel the stores
// use to report operation outcomes to the interface layer. Entries live in
// memory only; the interface layer is responsible for timed removal.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind styles a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultLifetime is how long a notification should stay visible.
const DefaultLifetime = 3 * time.Second

// Notification is a short-lived user-facing message.
type Notification struct {
	ID       string
	Message  string
	Kind     Kind
	Lifetime time.Duration
}

// Center is an append-only FIFO of pending notifications. Capacity is
// unbounded; with short lifetimes it holds at most a handful of entries.
type Center struct {
	mu      sync.Mutex
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Add appends a notification and returns it.
func (c *Center) Add(message string, kind Kind) Notification {
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Kind:     kind,
		Lifetime: DefaultLifetime,
	}
	c.mu.Lock()
	c.pending = append(c.pending, n)
	c.mu.Unlock()
	return n
}

func (c *Center) Success(message string) Notification { return c.Add(message, KindSuccess) }
func (c *Center) Error(message string) Notification   { return c.Add(message, KindError) }
func (c *Center) Info(message string) Notification    { return c.Add(message, KindInfo) }

// Pending returns a snapshot of the queued notifications in append order.
func (c *Center) Pending() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.pending))
	copy(out, c.pending)
	return out
}

// Flush returns the queued notifications in append order and empties the
// queue.
func (c *Center) Flush() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}

// Remove deletes the notification with the given id, if still pending.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.pending {
		if n.ID == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}
