package main

import (
	"database/sql"
	"log/slog"

	"github.com/taskwell/taskwell-api/internal/config"
	"github.com/taskwell/taskwell-api/internal/platform/postgres"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// application holds the long-lived dependencies shared by all request
// handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
}

// newApplication wires the stores and services from configuration and an
// open database connection.
func newApplication(cfg *config.Config, db *sql.DB, log *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	return &application{
		config:     cfg,
		logger:     log,
		userStore:  postgres.NewUserStore(db, log),
		taskStore:  postgres.NewTaskStore(db, log),
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(),
	}, nil
}
