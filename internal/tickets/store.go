// Package tickets owns the ticket collection: CRUD operations and the
// derived filter view. The collection persists as one JSON array in the
// local key-value storage and is written whole on every mutation.
package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ticketapp/internal/localstore"
	"ticketapp/internal/logging"
	"ticketapp/internal/models"
	"ticketapp/internal/notify"
)

const ticketsKey = "ticketapp_tickets"

// Store manages the in-memory ticket collection and its persisted copy.
//
// Like the session store, it is single-writer: operations run to completion
// in response to a discrete user action.
type Store struct {
	storage  localstore.Store
	notifier *notify.Center
	log      logging.Logger

	// indirections for tests
	now   func() time.Time
	newID func() string

	tickets []models.Ticket
}

func NewStore(storage localstore.Store, notifier *notify.Center, log logging.Logger) *Store {
	return &Store{
		storage:  storage,
		notifier: notifier,
		log:      log.With("store", "tickets"),
		now:      time.Now,
		newID:    newTicketID,
	}
}

// Init loads the persisted collection. A missing or unreadable record
// yields an empty collection.
func (s *Store) Init(ctx context.Context) error {
	raw, err := s.storage.GetItem(ctx, ticketsKey)
	if err != nil {
		return err
	}
	if raw == nil {
		s.tickets = nil
		return nil
	}

	var loaded []models.Ticket
	if err := json.Unmarshal(raw, &loaded); err != nil {
		s.log.Warn(ctx, "resetting unreadable ticket collection", "error", err)
		s.tickets = nil
		return nil
	}

	s.tickets = loaded
	return nil
}

// Create validates the input, appends a new ticket with a fresh id and the
// current timestamp, and persists the collection.
func (s *Store) Create(ctx context.Context, input TicketInput) (models.Ticket, error) {
	if errs := Validate(input); len(errs) > 0 {
		return models.Ticket{}, errs
	}

	ticket := models.Ticket{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		CreatedAt:   s.now(),
	}

	s.tickets = append(s.tickets, ticket)
	if err := s.persist(ctx); err != nil {
		s.tickets = s.tickets[:len(s.tickets)-1]
		return models.Ticket{}, err
	}

	s.log.Info(ctx, "ticket created", "id", ticket.ID)
	s.notifier.Success("Ticket created successfully!")
	return ticket, nil
}

// Update merges the patch over the ticket with the given id. A missing id is
// a silent no-op: the interface layer only supplies ids from the current
// snapshot.
func (s *Store) Update(ctx context.Context, id string, patch models.TicketPatch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		s.log.Debug(ctx, "update for unknown ticket ignored", "id", id)
		return nil
	}

	merged := s.tickets[idx]
	patch.Apply(&merged)

	if errs := Validate(TicketInput{
		Title:       merged.Title,
		Description: merged.Description,
		Status:      merged.Status,
		Priority:    merged.Priority,
	}); len(errs) > 0 {
		return errs
	}

	prev := s.tickets[idx]
	s.tickets[idx] = merged
	if err := s.persist(ctx); err != nil {
		s.tickets[idx] = prev
		return err
	}

	s.log.Info(ctx, "ticket updated", "id", id)
	s.notifier.Info("Ticket updated successfully!")
	return nil
}

// Delete removes the ticket with the given id if present and persists the
// collection. The notification is error-styled on purpose: deletions use
// the attention-getting kind, it does not signal a failure.
func (s *Store) Delete(ctx context.Context, id string) error {
	prev := s.tickets
	kept := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	s.tickets = kept
	if err := s.persist(ctx); err != nil {
		s.tickets = prev
		return err
	}

	s.log.Info(ctx, "ticket deleted", "id", id)
	s.notifier.Error("Ticket deleted successfully!")
	return nil
}

// List returns a read-only snapshot of the collection in insertion order.
func (s *Store) List() []models.Ticket {
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// FilterOptions are conjunctive predicates; zero values impose no
// constraint.
type FilterOptions struct {
	Status   models.Status
	Priority models.Priority
	// Query matches case-insensitively as a substring of title or
	// description.
	Query string
}

// Filter returns the subsequence of tickets satisfying all supplied
// predicates. The view is derived on every call; the collection is small
// and caching would only invite staleness.
func (s *Store) Filter(opts FilterOptions) []models.Ticket {
	query := strings.ToLower(opts.Query)

	out := make([]models.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		if opts.Status != "" && t.Status != opts.Status {
			continue
		}
		if opts.Priority != "" && t.Priority != opts.Priority {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.tickets)
	if err != nil {
		return fmt.Errorf("failed to encode tickets: %w", err)
	}
	return s.storage.SetItem(ctx, ticketsKey, data)
}
