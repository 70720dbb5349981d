package storage

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"ScoringEngine/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema string

func NewPostgres(ctx context.Context, cfg *config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	return Connect(ctx, cfg.GetDSN(), log)
}

// Connect opens a pool for dsn and pings it.
func Connect(ctx context.Context, dsn string, log *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Error("failed to open connection to postgres", "error", err)
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error("failed to ping database", "error", err)
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}

	log.Info("successfully connected to postgres database")
	return pool, nil
}

// Migrate applies the embedded schema. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
