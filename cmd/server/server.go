package main

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/metawork/server/internal/config"
	"codeberg.org/metawork/server/metawork/users"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// the whole API is a handful of point lookups; a small pool is plenty
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// uniqueness of email and google_id lives in the schema, not in
	// application locks; make sure the indexes exist before serving
	if err := users.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:       db,
		config:   cfg,
		userRepo: users.NewRepository(db),
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
