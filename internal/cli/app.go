// Package cli implements the interactive terminal interface of ticketapp:
// a small REPL over the session and ticket stores. It is view glue: all
// state lives in the stores.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"ticketapp/internal/config"
	"ticketapp/internal/localstore"
	"ticketapp/internal/logging"
	"ticketapp/internal/models"
	"ticketapp/internal/notify"
	"ticketapp/internal/session"
	"ticketapp/internal/tickets"
)

// sessionService is the slice of the session store the CLI needs.
// The real *session.Store satisfies it; tests can provide a stub.
type sessionService interface {
	Signup(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string, stayLoggedIn bool, redirectTo string) (string, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	CurrentUser() string
	IsAuthenticated() bool
}

// ticketService is the slice of the ticket store the CLI needs.
type ticketService interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, input tickets.TicketInput) (models.Ticket, error)
	Update(ctx context.Context, id string, patch models.TicketPatch) error
	Delete(ctx context.Context, id string) error
	List() []models.Ticket
	Filter(opts tickets.FilterOptions) []models.Ticket
}

// App wires the stores to the REPL.
type App struct {
	config   *config.Config
	sessions sessionService
	tickets  ticketService
	notifier *notify.Center
	log      logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	// pendingRedirect remembers where a not-yet-authenticated user wanted
	// to go; the next successful login consumes it.
	pendingRedirect string
}

// NewApp opens the local storage, constructs both stores, restores any
// persisted session, and loads the ticket collection.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localstore.Open(ctx, cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	var storage localstore.Store = localstore.NewSQLiteStore(db)
	if cfg.SimulatedDelay > 0 || cfg.SimulatedFailRate > 0 {
		storage = localstore.NewSimulatedStore(storage, cfg.SimulatedDelay, cfg.SimulatedFailRate)
	}

	notifier := notify.NewCenter()
	sessions := session.NewStore(storage, notifier, log)
	ticketStore := tickets.NewStore(storage, notifier, log)

	if err := sessions.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ticketStore.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:   cfg,
		sessions: sessions,
		tickets:  ticketStore,
		notifier: notifier,
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Close releases the storage database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}
