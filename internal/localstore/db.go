package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"ticketapp/internal/localstore/migrations"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the sqlite database at dsn and brings the schema
// up to date.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate storage database: %w", err)
	}

	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}
