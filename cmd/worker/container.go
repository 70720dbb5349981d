package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ScoringEngine/internal/config"
	"ScoringEngine/internal/engine/storage"
	"ScoringEngine/internal/shared/constants"
	"ScoringEngine/internal/worker/handlers"
	"ScoringEngine/internal/worker/runners"
)

type Container struct {
	Logger      *slog.Logger
	WorkQueue   storage.Queue
	ResultQueue storage.Queue
	Runner      runners.Runner
	Workers     []*handlers.Worker
}

func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	container := &Container{Logger: log}

	if err := container.initQueues(ctx, &cfg.Redis); err != nil {
		_ = container.Close()
		return nil, err
	}

	container.initRunner(cfg.Worker)
	container.initWorkers(cfg.Worker)

	return container, nil
}

func (c *Container) initQueues(ctx context.Context, cfg *config.RedisConfig) error {
	work, err := storage.NewRedisQueue(ctx, cfg, constants.QueueQueued, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to open work queue: %w", err)
	}
	c.WorkQueue = work

	results, err := storage.NewRedisQueue(ctx, cfg, constants.QueueFinished, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to open result queue: %w", err)
	}
	c.ResultQueue = results
	return nil
}

func (c *Container) initRunner(cfg config.WorkerConfig) {
	c.Runner = runners.NewShellRunner(runners.ShellRunnerConfig{BinPath: cfg.BinPath}, c.Logger)
}

func (c *Container) initWorkers(cfg config.WorkerConfig) {
	for range cfg.Concurrency {
		c.Workers = append(c.Workers, handlers.NewWorker(
			c.WorkQueue,
			c.ResultQueue,
			c.Runner,
			handlers.Config{
				CheckTimeout: cfg.CheckTimeout,
				PollInterval: cfg.PollInterval,
			},
			c.Logger.With("service", "worker"),
		))
	}
}

func (c *Container) Close() error {
	var errs []error
	for _, q := range []storage.Queue{c.WorkQueue, c.ResultQueue} {
		if q == nil {
			continue
		}
		if err := q.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
