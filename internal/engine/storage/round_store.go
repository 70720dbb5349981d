package storage

import (
	"context"
	"fmt"

	"ScoringEngine/internal/engine/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type roundStore struct {
	pool *pgxpool.Pool
}

func NewRoundStore(pool *pgxpool.Pool) RoundStore {
	return &roundStore{pool: pool}
}

func (s *roundStore) LastRoundNumber(ctx context.Context) (int, error) {
	var number int
	err := s.pool.QueryRow(ctx, `SELECT COALESCE(MAX(number), 0) FROM rounds`).Scan(&number)
	if err != nil {
		return 0, fmt.Errorf("failed to get last round number: %w", err)
	}
	return number, nil
}

func (s *roundStore) Create(ctx context.Context, round *models.Round) error {
	query := `INSERT INTO rounds (number, started_at, job_count, skipped)
		VALUES ($1, $2, $3, $4)`

	_, err := s.pool.Exec(ctx, query, round.Number, round.StartedAt, round.JobCount, round.Skipped)
	if err != nil {
		return fmt.Errorf("failed to create round %d: %w", round.Number, err)
	}
	return nil
}
