package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"ScoringEngine/internal/config"
	"ScoringEngine/internal/engine/models"
	"ScoringEngine/internal/shared/constants"

	"github.com/redis/go-redis/v9"
)

var ErrMalformedJob = errors.New("malformed job")

type redisQueue struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

// NewRedisQueue connects to Redis and addresses the list <namespace>:<name>.
func NewRedisQueue(ctx context.Context, cfg *config.RedisConfig, name string, log *slog.Logger) (Queue, error) {
	client := redis.NewClient(cfg.GetRedisOptions())

	pingCtx, cancel := context.WithTimeout(ctx, constants.QueueOpTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Error("failed to connect to Redis", "addr", cfg.Addr, "error", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := cfg.Namespace + ":" + name
	log.Info("connected to Redis", "queue", key)

	return &redisQueue{
		client: client,
		key:    key,
		logger: log.With("queue", key),
	}, nil
}

func (r *redisQueue) Key() string {
	return r.key
}

// Push appends job to the tail of the queue. Only jobs with a command are
// accepted; any other value is ErrMalformedJob.
func (r *redisQueue) Push(ctx context.Context, job any) error {
	var j *models.Job

	switch v := job.(type) {
	case *models.Job:
		j = v
	case models.Job:
		j = &v
	default:
		return fmt.Errorf("%w: unexpected type %T", ErrMalformedJob, job)
	}

	if j == nil {
		return fmt.Errorf("%w: nil job", ErrMalformedJob)
	}
	if err := j.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJob, err)
	}

	data, err := json.Marshal(j)
	if err != nil {
		return fmt.Errorf("failed to marshal the job: %w", err)
	}

	r.logger.Debug("pushing job", "ref", j.ServiceReference.String(), "length", len(data))

	if err := r.client.RPush(ctx, r.key, data).Err(); err != nil {
		return fmt.Errorf("redis RPush failed: %w", err)
	}
	return nil
}

// Pop removes the oldest job. It returns nil, nil when the queue is empty.
func (r *redisQueue) Pop(ctx context.Context) (*models.Job, error) {
	data, err := r.client.LPop(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, err
		}

		// queue is empty
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("redis LPop failed: %w", err)
	}

	var job models.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJob, err)
	}

	return &job, nil
}

func (r *redisQueue) Size(ctx context.Context) (int64, error) {
	n, err := r.client.LLen(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis LLen failed: %w", err)
	}
	return n, nil
}

// Clear drops every job left in the queue.
func (r *redisQueue) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis Del failed: %w", err)
	}
	return nil
}

func (r *redisQueue) Close() error {
	return r.client.Close()
}
