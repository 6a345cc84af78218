package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Registers the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// openDatabase opens a connection pool against the given Postgres URL and
// verifies connectivity with a ping before returning it.
func openDatabase(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
