package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketapp/internal/models"
	"ticketapp/internal/tickets"
)

// CreateTicket walks the user through a new-ticket form and persists it.
// Field violations are echoed back per field and leave the collection
// untouched.
func (a *App) CreateTicket(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	description, err := getMultiline(a.reader, "Enter description:", a.out)
	if err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Enter status (open/in_progress/closed, default open)", a.out)
	if err != nil {
		return err
	}
	if status == "" {
		status = string(models.StatusOpen)
	}

	priority, err := getSimpleText(a.reader, "Enter priority (low/medium/high, default medium)", a.out)
	if err != nil {
		return err
	}
	if priority == "" {
		priority = string(models.PriorityMedium)
	}

	input := tickets.TicketInput{
		Title:       title,
		Description: description,
		Status:      models.Status(status),
		Priority:    models.Priority(priority),
	}

	if _, err := a.tickets.Create(ctx, input); err != nil {
		if a.printValidationErrors(err) {
			return nil
		}
		return err
	}
	return nil
}

// ListTickets prints the whole collection in insertion order.
func (a *App) ListTickets(ctx context.Context) error {
	a.printTickets(a.tickets.List())
	return nil
}

// ShowTicket prints a single ticket in full.
func (a *App) ShowTicket(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter ticket id to show", a.out)
	if err != nil {
		return err
	}

	for _, t := range a.tickets.List() {
		if t.ID != id {
			continue
		}
		fmt.Fprintf(a.out, "Id:          %s\n", t.ID)
		fmt.Fprintf(a.out, "Title:       %s\n", t.Title)
		fmt.Fprintf(a.out, "Description: %s\n", t.Description)
		fmt.Fprintf(a.out, "Status:      %s\n", t.Status)
		fmt.Fprintf(a.out, "Priority:    %s\n", t.Priority)
		fmt.Fprintf(a.out, "Created:     %s\n", t.CreatedAt.Format(time.RFC3339))
		return nil
	}

	fmt.Fprintln(a.out, "Ticket not found.")
	return nil
}

// EditTicket prompts for a ticket id and new field values; empty answers
// keep the prior values (a partial update).
func (a *App) EditTicket(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter ticket id to edit", a.out)
	if err != nil {
		return err
	}

	found := false
	for _, t := range a.tickets.List() {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(a.out, "Ticket not found.")
		return nil
	}

	var patch models.TicketPatch

	title, err := getSimpleText(a.reader, "New title (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		patch.Title = &title
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if description != "" {
		patch.Description = &description
	}

	status, err := getSimpleText(a.reader, "New status (open/in_progress/closed, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		s := models.Status(status)
		patch.Status = &s
	}

	priority, err := getSimpleText(a.reader, "New priority (low/medium/high, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if priority != "" {
		p := models.Priority(priority)
		patch.Priority = &p
	}

	if err := a.tickets.Update(ctx, id, patch); err != nil {
		if a.printValidationErrors(err) {
			return nil
		}
		return err
	}
	return nil
}

// DeleteTicket removes a ticket by id.
func (a *App) DeleteTicket(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter ticket id to delete", a.out)
	if err != nil {
		return err
	}
	return a.tickets.Delete(ctx, id)
}

// SearchTickets prompts for the three optional predicates and prints the
// matching subsequence.
func (a *App) SearchTickets(ctx context.Context) error {
	status, err := getSimpleText(a.reader, "Status filter (open/in_progress/closed, empty for any)", a.out)
	if err != nil {
		return err
	}

	priority, err := getSimpleText(a.reader, "Priority filter (low/medium/high, empty for any)", a.out)
	if err != nil {
		return err
	}

	query, err := getSimpleText(a.reader, "Search text (empty for any)", a.out)
	if err != nil {
		return err
	}

	a.printTickets(a.tickets.Filter(tickets.FilterOptions{
		Status:   models.Status(status),
		Priority: models.Priority(priority),
		Query:    query,
	}))
	return nil
}

func (a *App) printTickets(list []models.Ticket) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No tickets.")
		return
	}
	for _, t := range list {
		fmt.Fprintf(a.out, "%s  [%s/%s]  %s\n", t.ID, t.Status, t.Priority, t.Title)
	}
}

// printValidationErrors reports field-level violations to the user and
// returns true when err was a validation error.
func (a *App) printValidationErrors(err error) bool {
	var verr tickets.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	for field, msg := range verr {
		fmt.Fprintf(a.out, "  %s: %s\n", field, msg)
	}
	return true
}
