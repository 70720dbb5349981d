package storage

import (
	"context"

	"ScoringEngine/internal/engine/models"
)

// ServiceStore reads the competition's services with their accounts and
// environments.
type ServiceStore interface {
	List(ctx context.Context) ([]*models.Service, error)
}

type RoundStore interface {
	// LastRoundNumber returns 0 when no round was recorded yet.
	LastRoundNumber(ctx context.Context) (int, error)
	Create(ctx context.Context, round *models.Round) error
}

// Queue is a named FIFO of jobs shared between processes. Pop never blocks;
// an empty queue yields a nil job.
type Queue interface {
	Push(ctx context.Context, job any) error
	Pop(ctx context.Context) (*models.Job, error)
	Size(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	Key() string
	Close() error
}
