package dependencies

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"ScoringEngine/internal/checks"
	"ScoringEngine/internal/checks/catalog"
	"ScoringEngine/internal/config"
	"ScoringEngine/internal/engine/services"
	"ScoringEngine/internal/engine/storage"
	"ScoringEngine/internal/shared/constants"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container wires the engine process.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Storage
	ServiceStore storage.ServiceStore
	RoundStore   storage.RoundStore
	WorkQueue    storage.Queue
	ResultQueue  storage.Queue

	Registry  *checks.Registry
	Scheduler *services.Scheduler

	DB *pgxpool.Pool
}

func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: log,
	}

	steps := []func(context.Context) error{
		container.initDatabase,
		container.initRedis,
		container.initStorage,
		container.initChecks,
		container.initServices,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			_ = container.Close()
			return nil, err
		}
	}

	log.Info("dependency container initialized successfully")
	return container, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	db, err := storage.NewPostgres(ctx, &c.Config.Database, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := storage.Migrate(ctx, db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	work, err := storage.NewRedisQueue(ctx, &c.Config.Redis, constants.QueueQueued, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to open work queue: %w", err)
	}
	c.WorkQueue = work

	results, err := storage.NewRedisQueue(ctx, &c.Config.Redis, constants.QueueFinished, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to open result queue: %w", err)
	}
	c.ResultQueue = results
	return nil
}

func (c *Container) initStorage(context.Context) error {
	c.ServiceStore = storage.NewServiceStore(c.DB)
	c.RoundStore = storage.NewRoundStore(c.DB)
	return nil
}

func (c *Container) initChecks(context.Context) error {
	registry, err := catalog.Load(c.Config.Checks.Protocols, c.Logger)
	if err != nil {
		return fmt.Errorf("failed to load checks: %w", err)
	}

	c.Registry = registry
	return nil
}

func (c *Container) initServices(context.Context) error {
	var rnd *rand.Rand
	if seed := c.Config.Engine.Seed; seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed))
	}

	c.Scheduler = services.NewScheduler(
		c.ServiceStore,
		c.RoundStore,
		c.WorkQueue,
		c.ResultQueue,
		c.Registry,
		services.SchedulerConfig{
			TotalRounds:     c.Config.Engine.TotalRounds,
			TargetRoundTime: c.Config.Engine.TargetRoundTime,
		},
		rnd,
		c.Logger.With("service", "scheduler"),
	)
	return nil
}

// Close releases every connection that was opened.
func (c *Container) Close() error {
	var errs []error

	if c.DB != nil {
		c.DB.Close()
	}

	for _, q := range []storage.Queue{c.WorkQueue, c.ResultQueue} {
		if q == nil {
			continue
		}
		if err := q.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("errors closing dependencies: %w", err)
	}
	return nil
}
