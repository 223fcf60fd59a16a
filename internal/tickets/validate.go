package tickets

import (
	"sort"
	"strings"
	"unicode/utf8"

	"ticketapp/internal/models"
)

// Field bounds for ticket input.
const (
	titleMinLen       = 3
	titleMaxLen       = 100
	descriptionMaxLen = 2000
)

// TicketInput carries the user-editable fields of a ticket.
type TicketInput struct {
	Title       string
	Description string
	Status      models.Status
	Priority    models.Priority
}

// ValidationError maps field names to human-readable messages. A mutating
// operation must not proceed while the map is non-empty.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid ticket:")
	for _, f := range fields {
		b.WriteString(" ")
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(e[f])
	}
	return b.String()
}

// Validate checks a ticket's user-supplied fields: title trimmed length in
// [3,100], status one of the known values, description at most 2000 chars.
// An empty map means the input is acceptable.
func Validate(input TicketInput) ValidationError {
	errs := ValidationError{}

	title := strings.TrimSpace(input.Title)
	if utf8.RuneCountInString(title) < titleMinLen {
		errs["title"] = "Title is required (3-100 chars)."
	} else if utf8.RuneCountInString(title) > titleMaxLen {
		errs["title"] = "Title must be at most 100 chars."
	}

	if !models.ValidStatus(input.Status) {
		errs["status"] = "Status must be open, in_progress, or closed."
	}

	if utf8.RuneCountInString(input.Description) > descriptionMaxLen {
		errs["description"] = "Description is too long."
	}

	return errs
}
